package scraper

import (
	"context"
	"net/http"
	"time"
)

const defaultUserAgent = "tarificateur-sectorem/1.0"

// Client is the shared fetch client for all supplier adapters: bounded
// timeout, redirects followed (the default policy), one GET per lookup.
type Client struct {
	http *http.Client
	ua   string
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		ua:   defaultUserAgent,
	}
}

func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	return c.http.Do(req)
}
