package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/mock"
	dgslog "github.com/fwojciec/docgrab/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("logs bytes and forwards progress", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, path string, progress docgrab.DownloadProgressFunc) error {
				progress(docgrab.DownloadProgress{Path: path, Written: 1024, Total: 2000})
				progress(docgrab.DownloadProgress{Path: path, Written: 2000, Total: 2000})
				return nil
			},
		}
		var seen []int64

		downloader := dgslog.NewLoggingDownloader(inner, logger)
		err := downloader.Download(context.Background(), "https://cdn.example.com/a.pdf", "/out/a.pdf", func(p docgrab.DownloadProgress) {
			seen = append(seen, p.Written)
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{1024, 2000}, seen)
		output := buf.String()
		assert.Contains(t, output, "download")
		assert.Contains(t, output, "path=/out/a.pdf")
		assert.Contains(t, output, "bytes=2000")
	})

	t.Run("tolerates nil progress", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, path string, progress docgrab.DownloadProgressFunc) error {
				progress(docgrab.DownloadProgress{Path: path, Written: 10})
				return errors.New("HTTP 404 for https://cdn.example.com/a.pdf")
			},
		}

		downloader := dgslog.NewLoggingDownloader(inner, logger)
		err := downloader.Download(context.Background(), "https://cdn.example.com/a.pdf", "/out/a.pdf", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "HTTP 404")
	})
}

func TestLoggingCombiner_Combine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var got []string
	inner := &mock.Combiner{
		CombineFn: func(ctx context.Context, inFiles []string, outFile string) error {
			got = inFiles
			return nil
		},
	}

	combiner := dgslog.NewLoggingCombiner(inner, logger)
	err := combiner.Combine(context.Background(), []string{"a.pdf", "b.pdf"}, "combined.pdf")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, got)
	output := buf.String()
	assert.Contains(t, output, "combine")
	assert.Contains(t, output, "inputs=2")
	assert.Contains(t, output, "out=combined.pdf")
}
