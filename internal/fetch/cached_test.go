package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portfolioServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main><h1>Projects</h1><p>Go microservices and Docker.</p></main></body></html>`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDefaultCachedFetcherConfig(t *testing.T) {
	config := DefaultCachedFetcherConfig()

	require.NotNil(t, config)
	assert.Equal(t, DefaultCacheTTL, config.CacheTTL)
	assert.False(t, config.SkipCache)
	assert.NotNil(t, config.Options)
}

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, nil)

	require.NotNil(t, fetcher)
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
	assert.NotNil(t, fetcher.cache)
}

func TestNewCachedFetcher_EmptyConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, &CachedFetcherConfig{})

	require.NotNil(t, fetcher)
	// Zero values fall back to defaults
	assert.Equal(t, DefaultCacheTTL, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}

func TestCachedFetcher_SecondFetchHitsCache(t *testing.T) {
	var hits atomic.Int64
	server := portfolioServer(t, &hits)

	fetcher := NewCachedFetcher(NewTTLCache(), nil)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Contains(t, first.Text, "Go microservices")

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, int64(1), hits.Load())
}

func TestCachedFetcher_SkipCacheAlwaysFetches(t *testing.T) {
	var hits atomic.Int64
	server := portfolioServer(t, &hits)

	fetcher := NewCachedFetcher(NewTTLCache(), &CachedFetcherConfig{SkipCache: true})

	for i := 0; i < 2; i++ {
		result, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.False(t, result.FromCache)
	}
	assert.Equal(t, int64(2), hits.Load())
}

func TestCachedFetcher_InvalidateForcesRefetch(t *testing.T) {
	var hits atomic.Int64
	server := portfolioServer(t, &hits)

	fetcher := NewCachedFetcher(NewTTLCache(), nil)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	fetcher.InvalidateCache(server.URL)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int64(2), hits.Load())
}

func TestCachedFetcher_FetchError(t *testing.T) {
	fetcher := NewCachedFetcher(NewTTLCache(), nil)

	_, err := fetcher.Fetch(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestCachedFetcher_FetchMultiple(t *testing.T) {
	var hits atomic.Int64
	server := portfolioServer(t, &hits)

	fetcher := NewCachedFetcher(NewTTLCache(), nil)

	results, errs := fetcher.FetchMultiple(context.Background(), []string{server.URL, "not-a-valid-url"})
	require.Len(t, results, 2)
	require.Len(t, errs, 2)

	assert.NotNil(t, results[0])
	assert.NoError(t, errs[0])
	assert.Nil(t, results[1])
	assert.Error(t, errs[1])
}
