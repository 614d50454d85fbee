package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/support-search-api/internal/i18n"
)

const (
	localeContextKey = "locale"
	localeQueryParam = "lang"
)

// Locale negotiates the response language from ?lang= or Accept-Language and
// echoes it in Content-Language.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Negotiate(c.Query(localeQueryParam), c.GetHeader("Accept-Language"))
		c.Set(localeContextKey, locale)
		c.Header("Content-Language", locale)
		c.Next()
	}
}

// LocaleFromContext returns the negotiated locale, or the default when the
// middleware did not run.
func LocaleFromContext(c *gin.Context) string {
	if c == nil {
		return i18n.DefaultLocale
	}
	if v, exists := c.Get(localeContextKey); exists {
		if locale, ok := v.(string); ok && locale != "" {
			return locale
		}
	}
	return i18n.DefaultLocale
}
