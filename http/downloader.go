// Package http provides an HTTP implementation of docgrab.Downloader that
// streams documents to disk.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fwojciec/docgrab"
)

// ChunkSize is the number of bytes copied per write and progress report.
const ChunkSize = 1024

// DefaultTimeout bounds establishing the connection and reading response
// headers. The body itself is not time-limited, so large documents can take
// as long as they need.
const DefaultTimeout = 60 * time.Second

// Ensure Downloader implements docgrab.Downloader at compile time.
var _ docgrab.Downloader = (*Downloader)(nil)

// Downloader retrieves documents with streamed HTTP GET requests.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the response header timeout.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithClient replaces the underlying HTTP client. The timeout option is
// ignored when a client is supplied.
func WithClient(c *http.Client) Option {
	return func(dl *Downloader) {
		dl.client = c
	}
}

// NewDownloader creates a new HTTP-based Downloader.
func NewDownloader(opts ...Option) *Downloader {
	d := &Downloader{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.ResponseHeaderTimeout = d.timeout
		d.client = &http.Client{Transport: transport}
	}

	return d
}

// Download streams url into path, creating or truncating the file.
// A status of 400 or above fails before the file is created. Errors during
// the transfer leave the partial file on disk.
func (d *Downloader) Download(ctx context.Context, url, path string, progress docgrab.DownloadProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := copyChunks(f, resp.Body, path, total, progress); err != nil {
		return err
	}
	return f.Close()
}

// copyChunks copies src to dst ChunkSize bytes at a time, reporting progress
// after every non-empty chunk.
func copyChunks(dst io.Writer, src io.Reader, path string, total int64, progress docgrab.DownloadProgressFunc) error {
	buf := make([]byte, ChunkSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			m, err := dst.Write(buf[:n])
			written += int64(m)
			if err != nil {
				return err
			}
			if progress != nil {
				progress(docgrab.DownloadProgress{Path: path, Written: written, Total: total})
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}
