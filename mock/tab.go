package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.Tab = (*Tab)(nil)

// Tab is a mock implementation of docgrab.Tab.
type Tab struct {
	NavigateFn        func(ctx context.Context, url string) error
	HTMLFn            func(ctx context.Context) (string, error)
	ObserveRequestsFn func(ctx context.Context, observe func(url string)) func()
	CloseFn           func() error
}

func (t *Tab) Navigate(ctx context.Context, url string) error {
	return t.NavigateFn(ctx, url)
}

func (t *Tab) HTML(ctx context.Context) (string, error) {
	return t.HTMLFn(ctx)
}

func (t *Tab) ObserveRequests(ctx context.Context, observe func(url string)) func() {
	return t.ObserveRequestsFn(ctx, observe)
}

func (t *Tab) Close() error {
	return t.CloseFn()
}
