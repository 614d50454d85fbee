package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, []string{"en-US", "de", "es", "fr", "it", "ja", "pt-BR"}, cfg.Search.Languages)
	assert.True(t, cfg.Search.ChoiceCacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.Search.ChoiceCacheTTL)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("SEARCH_LANGUAGES", " en-US , fr ,,")
	v.Set("CHOICE_CACHE_TTL", "not-a-duration")
	v.Set("TRACING_SAMPLE_RATE", 4.2)
	v.Set("ALLOWED_ORIGINS", "https://support.example.com/")

	cfg := fromViper(v)
	assert.Equal(t, []string{"en-US", "fr"}, cfg.Search.Languages)
	assert.Equal(t, 10*time.Minute, cfg.Search.ChoiceCacheTTL)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
	assert.Equal(t, []string{"https://support.example.com/"}, cfg.CORS.AllowedOrigins)
}

func TestSearchConfigLocation(t *testing.T) {
	assert.Equal(t, time.Local, SearchConfig{}.Location())
	assert.Equal(t, time.Local, SearchConfig{Timezone: "local"}.Location())
	assert.Equal(t, time.Local, SearchConfig{Timezone: "Mars/Olympus"}.Location())

	loc := SearchConfig{Timezone: "UTC"}.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "UTC", loc.String())
}
