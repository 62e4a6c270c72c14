package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure LoggingDownloader implements docgrab.Downloader.
var _ docgrab.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   docgrab.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next docgrab.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the bytes written.
func (d *LoggingDownloader) Download(ctx context.Context, url, path string, progress docgrab.DownloadProgressFunc) (err error) {
	var written int64
	defer func(begin time.Time) {
		d.logger.Info("download",
			"url", url,
			"path", path,
			"bytes", written,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url, path, func(p docgrab.DownloadProgress) {
		written = p.Written
		if progress != nil {
			progress(p)
		}
	})
}

// Ensure LoggingCombiner implements docgrab.Combiner.
var _ docgrab.Combiner = (*LoggingCombiner)(nil)

// LoggingCombiner wraps a Combiner with logging.
type LoggingCombiner struct {
	next   docgrab.Combiner
	logger *slog.Logger
}

// NewLoggingCombiner creates a new LoggingCombiner.
func NewLoggingCombiner(next docgrab.Combiner, logger *slog.Logger) *LoggingCombiner {
	return &LoggingCombiner{next: next, logger: logger}
}

// Combine delegates to the wrapped combiner and logs the operation.
func (c *LoggingCombiner) Combine(ctx context.Context, inFiles []string, outFile string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("combine",
			"inputs", len(inFiles),
			"out", outFile,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Combine(ctx, inFiles, outFile)
}
