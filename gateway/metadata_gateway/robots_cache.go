package metadata_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"readlog/utils/logger"

	"github.com/temoto/robotstxt"
)

const robotsCacheTTL = time.Hour

type robotsEntry struct {
	data      *robotstxt.RobotsData
	fetchedAt time.Time
}

// robotsCache fetches and caches per-host robots.txt verdicts. Lookups fail
// open: an unreachable or unparseable robots.txt never blocks a fetch, only
// an explicit disallow does.
type robotsCache struct {
	client    *http.Client
	userAgent string

	mu      sync.Mutex
	entries map[string]robotsEntry
}

func newRobotsCache(client *http.Client, userAgent string) *robotsCache {
	return &robotsCache{
		client:    client,
		userAgent: userAgent,
		entries:   make(map[string]robotsEntry),
	}
}

// Allowed reports whether the host's robots.txt permits fetching target.
func (c *robotsCache) Allowed(ctx context.Context, target *url.URL) bool {
	data := c.dataForHost(ctx, target)
	if data == nil {
		return true
	}
	return data.TestAgent(target.Path, c.userAgent)
}

func (c *robotsCache) dataForHost(ctx context.Context, target *url.URL) *robotstxt.RobotsData {
	host := target.Host

	c.mu.Lock()
	entry, ok := c.entries[host]
	c.mu.Unlock()
	if ok && time.Since(entry.fetchedAt) < robotsCacheTTL {
		return entry.data
	}

	data := c.fetch(ctx, target.Scheme, host)

	c.mu.Lock()
	c.entries[host] = robotsEntry{data: data, fetchedAt: time.Now()}
	c.mu.Unlock()

	return data
}

func (c *robotsCache) fetch(ctx context.Context, scheme, host string) *robotstxt.RobotsData {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", scheme, host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.SafeWarnContext(ctx, "robots.txt unreachable, allowing fetch", "host", host, "error", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		logger.SafeWarnContext(ctx, "robots.txt unparseable, allowing fetch", "host", host, "error", err)
		return nil
	}
	return data
}
