package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Acme</title></head><body><main>Hello there</main></body></html>`))
	}))
	defer server.Close()

	result, err := httpFetch(context.Background(), server.URL, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Hello there")
	assert.False(t, result.FetchedAt.IsZero())
}

func TestHTTPFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	result, err := httpFetch(context.Background(), server.URL, DefaultOptions())
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
}

func TestHTTPFetch_InvalidURL(t *testing.T) {
	_, err := httpFetch(context.Background(), "not-a-url", DefaultOptions())
	assert.Error(t, err)
}

func TestExtractMainText_PrefersMainContent(t *testing.T) {
	html := `
		<html><body>
			<nav>Home About Careers</nav>
			<main>We build rockets.</main>
			<footer>Copyright</footer>
		</body></html>
	`
	text, err := ExtractMainText(html, CompanyPageSelectors())
	require.NoError(t, err)
	assert.Equal(t, "We build rockets.", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Just a paragraph.</p></body></html>`
	text, err := ExtractMainText(html, CompanyPageSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Just a paragraph.", text)
}

func TestExtractTitle(t *testing.T) {
	html := `<html><head><title>  Acme Corp  </title></head><body></body></html>`
	assert.Equal(t, "Acme Corp", ExtractTitle(html))
	assert.Equal(t, "", ExtractTitle("<html><body></body></html>"))
}

func TestIsNotFound_TitlePhrases(t *testing.T) {
	assert.True(t, IsNotFound("404 - Page Not Found", "some long body text"))
	assert.True(t, IsNotFound("Oops, page not found | Acme", ""))
	assert.True(t, IsNotFound("Server Error | Acme", ""))
	assert.False(t, IsNotFound("Careers at Acme", "We are hiring engineers."))
}

func TestIsNotFound_ErrorInProductNameIsNotAnErrorPage(t *testing.T) {
	long := strings.Repeat("Monitor exceptions across every service. ", 20)
	assert.False(t, IsNotFound("Error Tracking for Modern Teams | Acme", long))
	assert.False(t, IsNotFound("Acme Error Monitoring | Product", long))
}

func TestIsNotFound_ShortBodyPhrases(t *testing.T) {
	assert.True(t, IsNotFound("Acme", "The page you are looking for has moved."))
	// Long pages mentioning error phrases in prose are not error pages.
	long := "Our incident response team handles every 404 error our customers see. "
	for len(long) < notFoundBodyLimit+1 {
		long += long
	}
	assert.False(t, IsNotFound("Engineering at Acme", long))
}

func TestMemoryCache_PutGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	res := &Result{URL: "https://acme.com", Text: "hello", FetchedAt: time.Now()}
	require.NoError(t, cache.Put(ctx, res.URL, res))

	got, err := cache.Get(ctx, res.URL, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.Text)

	// Returned result is a copy, not an alias.
	got.Text = "mutated"
	again, err := cache.Get(ctx, res.URL, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Text)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	res := &Result{URL: "https://acme.com", Text: "hello", FetchedAt: time.Now().Add(-2 * time.Hour)}
	require.NoError(t, cache.Put(ctx, res.URL, res))

	got, err := cache.Get(ctx, res.URL, time.Hour)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache()
	got, err := cache.Get(context.Background(), "https://nowhere.com", time.Hour)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHostLimiter_DelaysSameHost(t *testing.T) {
	limiter := NewHostLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "acme.com"))
	require.NoError(t, limiter.Wait(ctx, "acme.com"))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestHostLimiter_CrossHostFloor(t *testing.T) {
	limiter := NewHostLimiter(200 * time.Millisecond)
	ctx := context.Background()

	// A different host skips the full per-host delay but still pays the
	// cross-host floor (a quarter of the delay), so sequential candidate
	// probes across subdomains stay paced.
	require.NoError(t, limiter.Wait(ctx, "careers.acme.com"))
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "jobs.acme.com"))
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 150*time.Millisecond)
}

func TestHostLimiter_ContextCancel(t *testing.T) {
	limiter := NewHostLimiter(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, limiter.Wait(ctx, "acme.com"))
	cancel()
	err := limiter.Wait(ctx, "acme.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_FetchUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`<html><head><title>Acme</title></head><body><main>Fresh content from the server.</main></body></html>`))
	}))
	defer server.Close()

	client := NewClient(&ClientConfig{
		Cache:        NewMemoryCache(),
		CacheTTL:     time.Hour,
		RequestDelay: 0,
	})

	ctx := context.Background()
	first, err := client.Fetch(ctx, server.URL, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := client.Fetch(ctx, server.URL, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Text, second.Text)
}

func TestClient_FetchSkipsCacheWhenDisabled(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`<html><head><title>Acme</title></head><body><main>Server content body here.</main></body></html>`))
	}))
	defer server.Close()

	client := NewClient(&ClientConfig{
		Cache:        NewMemoryCache(),
		CacheTTL:     time.Hour,
		RequestDelay: 0,
	})

	opts := DefaultOptions()
	opts.UseCache = false

	ctx := context.Background()
	_, err := client.Fetch(ctx, server.URL, opts)
	require.NoError(t, err)
	_, err = client.Fetch(ctx, server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestClient_FetchDetectsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// HTTP 200 but soft-404 content.
		_, _ = w.Write([]byte(`<html><head><title>404 Not Found</title></head><body><main>The page you requested is gone.</main></body></html>`))
	}))
	defer server.Close()

	client := NewClient(&ClientConfig{RequestDelay: 0})
	_, err := client.Fetch(context.Background(), server.URL, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-found content")
}

func TestClient_FetchDoesNotMutateCallerOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Acme</title></head><body><main>Some page content here.</main></body></html>`))
	}))
	defer server.Close()

	client := NewClient(&ClientConfig{RequestDelay: 0})
	opts := &Options{UseCache: false}
	_, err := client.Fetch(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Zero(t, opts.Timeout)
	assert.Empty(t, opts.UserAgent)
}
