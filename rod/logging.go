package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure LoggingTab implements docgrab.Tab.
var _ docgrab.Tab = (*LoggingTab)(nil)

// LoggingTab wraps a Tab with debug logging.
type LoggingTab struct {
	next   docgrab.Tab
	logger *slog.Logger
}

// NewLoggingTab creates a new LoggingTab.
func NewLoggingTab(next docgrab.Tab, logger *slog.Logger) *LoggingTab {
	return &LoggingTab{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped tab.
func (t *LoggingTab) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		t.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Navigate(ctx, url)
}

// HTML logs the size of the serialized DOM and delegates to the wrapped tab.
func (t *LoggingTab) HTML(ctx context.Context) (html string, err error) {
	defer func() {
		t.logger.Debug("html", "bytes", len(html), "err", err)
	}()
	return t.next.HTML(ctx)
}

// ObserveRequests logs every observed request at debug level.
func (t *LoggingTab) ObserveRequests(ctx context.Context, observe func(url string)) func() {
	var count int
	release := t.next.ObserveRequests(ctx, func(url string) {
		count++
		t.logger.Debug("request", "url", url)
		observe(url)
	})
	return func() {
		release()
		t.logger.Info("observer released", "requests", count)
	}
}

// Close delegates to the wrapped tab.
func (t *LoggingTab) Close() error {
	return t.next.Close()
}
