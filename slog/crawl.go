// Package slog provides logging decorators for docgrab services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure LoggingCollector implements docgrab.LinkCollector.
var _ docgrab.LinkCollector = (*LoggingCollector)(nil)

// LoggingCollector wraps a LinkCollector with logging.
type LoggingCollector struct {
	next   docgrab.LinkCollector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next docgrab.LinkCollector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the operation.
func (c *LoggingCollector) Collect(ctx context.Context, rootURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("collect",
			"url", rootURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx, rootURL)
}

// Ensure LoggingLocator implements docgrab.DocumentLocator.
var _ docgrab.DocumentLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a DocumentLocator with logging.
type LoggingLocator struct {
	next   docgrab.DocumentLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next docgrab.DocumentLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs what it found.
func (l *LoggingLocator) Locate(ctx context.Context, pageURL string) (docURL string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate",
			"url", pageURL,
			"found", docURL != "",
			"document", docURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Locate(ctx, pageURL)
}
