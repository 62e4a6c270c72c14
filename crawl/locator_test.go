package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docgrab/crawl"
	"github.com/fwojciec/docgrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storageURL = "https://firebasestorage.googleapis.com/v0/b/app/o/notes.pdf?alt=media&token=abc"
	slidesURL  = "https://cdn.example.com/o/PDFs%2FPPT%2Flesson.pdf?alt=media"
)

// trafficTab replays a fixed request trace to the active observer when the
// page is navigated, and records subscription lifecycle.
type trafficTab struct {
	mock.Tab
	trace       []string
	navErr      error
	subscribed  int
	released    int
	observe     func(string)
	navigations []string
}

func newTrafficTab(trace ...string) *trafficTab {
	tt := &trafficTab{trace: trace}
	tt.ObserveRequestsFn = func(_ context.Context, observe func(string)) func() {
		tt.subscribed++
		tt.observe = observe
		return func() {
			tt.released++
			tt.observe = nil
		}
	}
	tt.NavigateFn = func(_ context.Context, url string) error {
		tt.navigations = append(tt.navigations, url)
		if tt.navErr != nil {
			return tt.navErr
		}
		for _, u := range tt.trace {
			if tt.observe != nil {
				tt.observe(u)
			}
		}
		return nil
	}
	return tt
}

// Story: Document Sniffing
// The locator watches a subpage's requests and keeps the first one that
// points at a document.

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("returns the storage request seen during load", func(t *testing.T) {
		t.Parallel()

		tab := newTrafficTab("https://example.com/course/lesson-1", "https://example.com/app.js", storageURL)
		l := &crawl.Locator{Tab: tab}

		got, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")

		require.NoError(t, err)
		assert.Equal(t, storageURL, got)
		assert.Equal(t, []string{"https://example.com/course/lesson-1"}, tab.navigations)
	})

	t.Run("first match wins in trace order", func(t *testing.T) {
		t.Parallel()

		tab := newTrafficTab(slidesURL, storageURL)
		l := &crawl.Locator{Tab: tab}

		got, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")

		require.NoError(t, err)
		assert.Equal(t, slidesURL, got)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		t.Parallel()

		tab := newTrafficTab("https://example.com/app.js", "https://example.com/style.css")
		l := &crawl.Locator{Tab: tab}

		got, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("observer is released exactly once on success", func(t *testing.T) {
		t.Parallel()

		tab := newTrafficTab(storageURL)
		l := &crawl.Locator{Tab: tab}

		_, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")

		require.NoError(t, err)
		assert.Equal(t, 1, tab.subscribed)
		assert.Equal(t, 1, tab.released)
	})

	t.Run("observer is released when navigation fails", func(t *testing.T) {
		t.Parallel()

		navErr := errors.New("navigation timeout")
		tab := newTrafficTab(storageURL)
		tab.navErr = navErr
		l := &crawl.Locator{Tab: tab}

		_, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")

		require.ErrorIs(t, err, navErr)
		assert.Equal(t, 1, tab.subscribed)
		assert.Equal(t, 1, tab.released)
	})

	t.Run("requests after release are not captured", func(t *testing.T) {
		t.Parallel()

		tab := newTrafficTab("https://example.com/app.js")
		l := &crawl.Locator{Tab: tab}

		got, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")
		require.NoError(t, err)

		// A straggling request after the observer was torn down
		if tab.observe != nil {
			tab.observe(storageURL)
		}

		assert.Empty(t, got)
		assert.Nil(t, tab.observe)
	})

	t.Run("waits for the rate limiter with the page host", func(t *testing.T) {
		t.Parallel()

		var hosts []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				hosts = append(hosts, domain)
				return nil
			},
		}
		tab := newTrafficTab(storageURL)
		l := &crawl.Locator{Tab: tab, RateLimiter: limiter}

		_, err := l.Locate(context.Background(), "https://example.com:8443/course/lesson-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com:8443"}, hosts)
	})

	t.Run("rate limiter error skips navigation", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, _ string) error { return context.Canceled },
		}
		tab := newTrafficTab(storageURL)
		l := &crawl.Locator{Tab: tab, RateLimiter: limiter}

		_, err := l.Locate(context.Background(), "https://example.com/course/lesson-1")

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, tab.navigations)
		assert.Zero(t, tab.subscribed)
	})
}
