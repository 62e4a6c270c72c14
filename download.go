package docgrab

import "context"

// DownloadProgress reports bytes written during a download.
type DownloadProgress struct {
	Path    string
	Written int64
	// Total is the declared content length, or 0 when the server sent none.
	Total int64
}

// DownloadProgressFunc is called after every chunk written to disk.
type DownloadProgressFunc func(DownloadProgress)

// Downloader retrieves a document over HTTP into a local file.
type Downloader interface {
	// Download streams url into path. A partially written file is left in
	// place when the transfer fails.
	Download(ctx context.Context, url, path string, progress DownloadProgressFunc) error
}
