package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/support-search-api/pkg/errors"
)

type fakeCacheRepo struct {
	getErr     error
	setErr     error
	deleteErr  error
	lastTTL    time.Duration
	lastKey    string
	deleted    []string
	getPayload string
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	f.lastKey = key
	if f.getErr != nil {
		return f.getErr
	}
	if s, ok := dest.(*string); ok {
		*s = f.getPayload
	}
	return nil
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
	f.lastKey = key
	f.lastTTL = ttl
	return f.setErr
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	f.deleted = append(f.deleted, pattern)
	return f.deleteErr
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &fakeCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	hit, err := svc.Get(context.Background(), "k", new(string))
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	require.NoError(t, svc.Invalidate(context.Background(), "k*"))
	assert.Empty(t, repo.lastKey)
	assert.Empty(t, repo.deleted)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}

func TestCacheServiceGet(t *testing.T) {
	repo := &fakeCacheRepo{getPayload: "cached"}
	svc := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)

	var dest string
	hit, err := svc.Get(context.Background(), "search:choices", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "cached", dest)

	repo.getErr = appErrors.ErrCacheMiss
	hit, err = svc.Get(context.Background(), "search:choices", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	repo.getErr = errors.New("i/o timeout")
	hit, err = svc.Get(context.Background(), "search:choices", &dest)
	require.Error(t, err)
	assert.False(t, hit)
}

func TestCacheServiceSetUsesDefaultTTL(t *testing.T) {
	repo := &fakeCacheRepo{}
	svc := NewCacheService(repo, nil, 0, nil, true)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	assert.Equal(t, 10*time.Minute, repo.lastTTL)

	require.NoError(t, svc.Set(context.Background(), "k", "v", time.Second))
	assert.Equal(t, time.Second, repo.lastTTL)
}

func TestCacheServiceInvalidate(t *testing.T) {
	repo := &fakeCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	require.NoError(t, svc.Invalidate(context.Background(), "search:choices*"))
	assert.Equal(t, []string{"search:choices*"}, repo.deleted)

	repo.deleteErr = errors.New("scan failed")
	require.Error(t, svc.Invalidate(context.Background(), "search:choices*"))
}
