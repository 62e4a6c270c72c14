// Package crawl discovers the child pages of a root page and sniffs each
// child page's network traffic for the document it loads.
package crawl

import (
	"context"
	"net/url"
	"time"
)

// Default settle delays applied after DOMContentLoaded.
const (
	DefaultRootSettle = 2 * time.Second
	DefaultPageSettle = 5 * time.Second
)

// settle waits for d so client-side rendering can finish.
// Returns the context error if ctx ends first.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// hostOf returns the host of rawURL, or "" if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
