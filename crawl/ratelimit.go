package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/docgrab"
	"golang.org/x/time/rate"
)

var _ docgrab.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out subpage navigations with one token bucket per
// host. A non-positive rate disables limiting.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps navigations per
// second to each host, with no bursting. rps <= 0 means unlimited.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until the host's bucket has a token.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	bucket, ok := d.buckets[domain]
	if !ok {
		bucket = rate.NewLimiter(d.limit, 1)
		d.buckets[domain] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}
