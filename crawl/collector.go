package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure Collector implements docgrab.LinkCollector at compile time.
var _ docgrab.LinkCollector = (*Collector)(nil)

// Collector loads the root page in a Tab and filters its anchors down to
// subpages.
type Collector struct {
	Tab     docgrab.Tab
	Anchors docgrab.AnchorExtractor
	// Settle is waited after DOMContentLoaded before the DOM is read.
	Settle time.Duration
}

// Collect implements docgrab.LinkCollector. Navigation failures are returned
// as-is; the DOM is read once, so content added after the settle delay is
// not seen.
func (c *Collector) Collect(ctx context.Context, rootURL string) ([]string, error) {
	if err := c.Tab.Navigate(ctx, rootURL); err != nil {
		return nil, err
	}
	if err := settle(ctx, c.Settle); err != nil {
		return nil, err
	}

	html, err := c.Tab.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading root page: %w", err)
	}

	hrefs, err := c.Anchors.Hrefs(html)
	if err != nil {
		return nil, err
	}

	return docgrab.Subpages(rootURL, hrefs)
}
