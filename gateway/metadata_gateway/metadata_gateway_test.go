package metadata_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"readlog/config"
	"readlog/domain"
	"readlog/utils/rate_limiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(t *testing.T) *FetchMetadataGateway {
	t.Helper()
	cfg := config.MetadataConfig{
		FetchTimeout:     5 * time.Second,
		UserAgent:        "readlog-bot/1.0",
		HostRateInterval: time.Millisecond,
		MaxBodyBytes:     1 << 20,
	}
	g := NewFetchMetadataGateway(cfg)
	g.skipHostGuard = true
	return g
}

func TestExecute_ResolvesOpenGraphTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><head>
			<meta property="og:title" content="A Post" />
			<meta property="og:description" content="About things" />
			<meta property="og:image" content="https://cdn.example.com/a.png" />
			<meta property="og:site_name" content="Example Blog" />
		</head><body></body></html>`))
	}))
	defer server.Close()

	meta, err := testGateway(t).Execute(context.Background(), server.URL+"/post")
	require.NoError(t, err)
	assert.Equal(t, "A Post", meta.Title)
	assert.Equal(t, "About things", meta.Description)
	assert.Equal(t, "https://cdn.example.com/a.png", meta.Image)
	assert.Equal(t, "Example Blog", meta.SiteName)
	assert.Equal(t, server.URL+"/post", meta.URL)
}

func TestExecute_TwitterFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><head><meta name="twitter:title" content="Foo" /></head></html>`))
	}))
	defer server.Close()

	meta, err := testGateway(t).Execute(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Foo", meta.Title)
}

func TestExecute_InvalidURL(t *testing.T) {
	g := testGateway(t)

	for _, raw := range []string{"", "not a url", "/relative/path", "ftp://example.com/file"} {
		_, err := g.Execute(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "url %q", raw)
	}
}

func TestExecute_PrivateHostBlocked(t *testing.T) {
	cfg := config.MetadataConfig{
		FetchTimeout:     time.Second,
		UserAgent:        "readlog-bot/1.0",
		HostRateInterval: time.Millisecond,
		MaxBodyBytes:     1 << 20,
	}
	g := NewFetchMetadataGateway(cfg)

	for _, raw := range []string{
		"http://localhost/admin",
		"http://127.0.0.1:8080/",
		"http://10.1.2.3/",
		"http://169.254.169.254/latest/meta-data/",
		"http://internal.corp/secrets",
	} {
		_, err := g.Execute(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "url %q", raw)
	}
}

func TestExecute_Non2xxIsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	_, err := testGateway(t).Execute(context.Background(), server.URL)
	require.ErrorIs(t, err, domain.ErrMetadataFetchFailed)
}

func TestExecute_RobotsDisallowBlocksFetch(t *testing.T) {
	pageServed := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		pageServed = true
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	g := testGateway(t)

	_, err := g.Execute(context.Background(), server.URL+"/private/page")
	require.ErrorIs(t, err, domain.ErrMetadataFetchFailed)
	assert.False(t, pageServed, "disallowed path must not be fetched")

	// Paths outside the disallow rule still work.
	_, err = g.Execute(context.Background(), server.URL+"/public/page")
	require.NoError(t, err)
}

func TestExecute_SendsConfiguredUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	_, err := testGateway(t).Execute(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "readlog-bot/1.0", gotUA)
}

func TestExecute_HostRateLimiterSpacesRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	g := testGateway(t)
	g.limiter = rate_limiter.NewHostRateLimiter(200 * time.Millisecond)

	ctx := context.Background()
	_, err := g.Execute(ctx, server.URL)
	require.NoError(t, err)

	start := time.Now()
	_, err = g.Execute(ctx, server.URL)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}
