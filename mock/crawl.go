package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

// Compile-time interface verification.
var (
	_ docgrab.LinkCollector   = (*LinkCollector)(nil)
	_ docgrab.AnchorExtractor = (*AnchorExtractor)(nil)
	_ docgrab.DocumentLocator = (*DocumentLocator)(nil)
	_ docgrab.DomainLimiter   = (*DomainLimiter)(nil)
)

// LinkCollector is a mock implementation of docgrab.LinkCollector.
type LinkCollector struct {
	CollectFn func(ctx context.Context, rootURL string) ([]string, error)
}

func (c *LinkCollector) Collect(ctx context.Context, rootURL string) ([]string, error) {
	return c.CollectFn(ctx, rootURL)
}

// AnchorExtractor is a mock implementation of docgrab.AnchorExtractor.
type AnchorExtractor struct {
	HrefsFn func(html string) ([]string, error)
}

func (e *AnchorExtractor) Hrefs(html string) ([]string, error) {
	return e.HrefsFn(html)
}

// DocumentLocator is a mock implementation of docgrab.DocumentLocator.
type DocumentLocator struct {
	LocateFn func(ctx context.Context, pageURL string) (string, error)
}

func (l *DocumentLocator) Locate(ctx context.Context, pageURL string) (string, error) {
	return l.LocateFn(ctx, pageURL)
}

// DomainLimiter is a mock implementation of docgrab.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
