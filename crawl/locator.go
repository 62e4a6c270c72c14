package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure Locator implements docgrab.DocumentLocator at compile time.
var _ docgrab.DocumentLocator = (*Locator)(nil)

// Locator visits a subpage in a Tab and captures the first document request
// the page makes while it loads.
type Locator struct {
	Tab docgrab.Tab
	// Settle is waited after DOMContentLoaded so that client-side viewers
	// get a chance to request their document.
	Settle time.Duration
	// RateLimiter, if set, throttles navigations per domain.
	RateLimiter docgrab.DomainLimiter
}

// Locate implements docgrab.DocumentLocator.
func (l *Locator) Locate(ctx context.Context, pageURL string) (string, error) {
	if l.RateLimiter != nil {
		if err := l.RateLimiter.Wait(ctx, hostOf(pageURL)); err != nil {
			return "", err
		}
	}

	var capture docgrab.RequestCapture
	if err := l.watch(ctx, pageURL, &capture); err != nil {
		return "", err
	}
	return capture.URL(), nil
}

// watch loads pageURL with capture subscribed to the Tab's requests.
// The subscription is released before watch returns, on every path.
func (l *Locator) watch(ctx context.Context, pageURL string, capture *docgrab.RequestCapture) error {
	release := l.Tab.ObserveRequests(ctx, capture.Observe)
	defer release()

	if err := l.Tab.Navigate(ctx, pageURL); err != nil {
		return err
	}
	return settle(ctx, l.Settle)
}
