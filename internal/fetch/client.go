package fetch

import (
	"context"
	"net/url"
	"time"
)

// Client is the production Fetcher: plain HTTP or headless-browser fetching
// with caching, per-host rate limiting, and not-found detection. Client holds
// no per-request state; all rendering behavior arrives through Options.
type Client struct {
	cache    PageCache
	limiter  *HostLimiter
	cacheTTL time.Duration
	defaults *Options
}

// ClientConfig configures a Client.
type ClientConfig struct {
	Cache        PageCache
	CacheTTL     time.Duration
	RequestDelay time.Duration
	Defaults     *Options
}

// DefaultClientConfig returns a config with an in-memory cache and standard
// politeness settings.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Cache:        NewMemoryCache(),
		CacheTTL:     DefaultCacheTTL,
		RequestDelay: DefaultRequestDelay,
		Defaults:     DefaultOptions(),
	}
}

// NewClient creates a fetch client.
func NewClient(cfg *ClientConfig) *Client {
	if cfg == nil {
		cfg = DefaultClientConfig()
	}
	if cfg.Defaults == nil {
		cfg.Defaults = DefaultOptions()
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Client{
		cache:    cfg.Cache,
		limiter:  NewHostLimiter(cfg.RequestDelay),
		cacheTTL: cfg.CacheTTL,
		defaults: cfg.Defaults,
	}
}

// Fetch retrieves a URL. Cached content is returned when fresh; otherwise the
// page is fetched (rendered in a browser when opts.RenderJS), its main text
// extracted, and the result cached. A detected not-found page is an error
// even on HTTP 200.
func (c *Client) Fetch(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = c.defaults
	}
	// Copy so filling in defaults never mutates the caller's options.
	o := *opts
	opts = &o
	if opts.Timeout == 0 {
		opts.Timeout = c.defaults.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = c.defaults.UserAgent
	}

	if opts.UseCache && c.cache != nil {
		cached, err := c.cache.Get(ctx, urlStr, c.cacheTTL)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "cache lookup failed", Cause: err}
		}
		if cached != nil {
			cached.FromCache = true
			return cached, nil
		}
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	if err := c.limiter.Wait(ctx, parsed.Host); err != nil {
		return nil, &Error{URL: urlStr, Message: "rate limit wait canceled", Cause: err}
	}

	var result *Result
	if opts.RenderJS {
		html, title, err := renderPage(ctx, urlStr, opts)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "browser fetch failed", Cause: err}
		}
		result = &Result{
			URL:        urlStr,
			HTML:       html,
			Title:      title,
			StatusCode: 200,
			FetchedAt:  time.Now().UTC(),
		}
	} else {
		result, err = httpFetch(ctx, urlStr, opts)
		if err != nil {
			return result, err
		}
		result.Title = ExtractTitle(result.HTML)
	}

	text, err := ExtractMainText(result.HTML, CompanyPageSelectors())
	if err != nil {
		return result, &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
	}
	result.Text = text

	if IsNotFound(result.Title, result.Text) {
		return result, &Error{URL: urlStr, Message: "not-found content detected"}
	}

	if opts.UseCache && c.cache != nil {
		if err := c.cache.Put(ctx, urlStr, result); err != nil {
			// A cache write failure does not fail the fetch.
			_ = err
		}
	}

	return result, nil
}
