// Package fetch provides generic URL fetching with optional caching.
package fetch

import (
	"context"
	"time"
)

// CachedFetcher wraps URL fetching with in-memory TTL caching and an
// optional headless-browser fallback for JavaScript-rendered sites.
type CachedFetcher struct {
	cache      *TTLCache
	options    *Options
	cacheTTL   time.Duration
	skipCache  bool // For testing or forcing fresh fetches
	useBrowser bool
	verbose    bool
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL   time.Duration
	SkipCache  bool
	UseBrowser bool
	Verbose    bool
	Options    *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(cache *TTLCache, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if cache == nil {
		cache = NewTTLCache()
	}
	return &CachedFetcher{
		cache:      cache,
		options:    config.Options,
		cacheTTL:   config.CacheTTL,
		skipCache:  config.SkipCache,
		useBrowser: config.UseBrowser,
		verbose:    config.Verbose,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool // Whether this result came from cache
}

// Fetch retrieves a URL, using cache if available and fresh.
// Fresh fetches extract main text with platform-aware selectors; if the
// extracted text is short enough to suggest a client-rendered SPA and the
// browser fallback is enabled, the page is re-rendered in headless Chrome.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if cached, ok := f.cache.Get(urlStr); ok {
			if result, ok := cached.(*Result); ok {
				return &CachedResult{Result: result, FromCache: true}, nil
			}
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	result.Text = text

	if f.useBrowser && ShouldUseBrowser(text) {
		html, berr := WithBrowser(ctx, urlStr, f.options.Timeout, f.verbose)
		if berr == nil && html != "" {
			result.HTML = html
			if text, err := ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...); err == nil {
				result.Text = text
			}
		}
		// Browser failures are non-fatal; the HTTP result stands.
	}

	f.cache.Set(urlStr, result, f.cacheTTL)

	return &CachedResult{Result: result, FromCache: false}, nil
}

// FetchMultiple fetches multiple URLs sequentially with caching.
// Returns results in the same order as input URLs. Failed fetches are nil in the result slice.
func (f *CachedFetcher) FetchMultiple(ctx context.Context, urls []string) ([]*CachedResult, []error) {
	results := make([]*CachedResult, len(urls))
	errors := make([]error, len(urls))

	for i, url := range urls {
		result, err := f.Fetch(ctx, url)
		if err != nil {
			errors[i] = err
		} else {
			results[i] = result
		}
	}

	return results, errors
}

// InvalidateCache drops a cached page, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.cache.Delete(urlStr)
}
