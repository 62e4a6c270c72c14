package docgrab

import (
	"context"
	"regexp"
	"strings"
	"sync"
)

// File naming for downloaded documents.
const (
	DocumentExt  = ".pdf"
	CombinedName = "combined" + DocumentExt
)

// Markers recognized in document request URLs.
const (
	StorageHostMarker = "firebasestorage.googleapis.com"
	SlidesPathMarker  = "PDFs%2FPPT"
	MediaMarker       = "alt=media"
)

// DocumentLocator finds the document a subpage loads over the network.
type DocumentLocator interface {
	// Locate visits pageURL and returns the first document request URL it
	// observes. It returns an empty string, not an error, when the page
	// makes no such request before the settle delay runs out.
	Locate(ctx context.Context, pageURL string) (string, error)
}

// IsStorageMediaURL reports whether u downloads an object from cloud storage.
func IsStorageMediaURL(u string) bool {
	return strings.Contains(u, StorageHostMarker) && strings.Contains(u, MediaMarker)
}

// IsSlidesMediaURL reports whether u downloads an object from the slides folder.
func IsSlidesMediaURL(u string) bool {
	return strings.Contains(u, SlidesPathMarker) && strings.Contains(u, MediaMarker)
}

// IsDocumentURL reports whether a request URL points at a document.
func IsDocumentURL(u string) bool {
	return IsStorageMediaURL(u) || IsSlidesMediaURL(u)
}

// RequestCapture holds the first document URL seen in a stream of request URLs.
// It is safe for concurrent use.
type RequestCapture struct {
	mu  sync.Mutex
	url string
}

// Observe records u if it is a document URL and nothing was recorded yet.
func (c *RequestCapture) Observe(u string) {
	if !IsDocumentURL(u) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.url == "" {
		c.url = u
	}
}

// URL returns the captured document URL, or "" if none matched.
func (c *RequestCapture) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.url
}

var unsafeRun = regexp.MustCompile(`[^a-z0-9\-]+`)

// SanitizeFilename lowercases name, replaces every run of characters outside
// [a-z0-9-] with a single hyphen and trims hyphens from both ends.
func SanitizeFilename(name string) string {
	return strings.Trim(unsafeRun.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// Slug returns the sanitized last path segment of pageURL.
// Trailing slashes are ignored.
func Slug(pageURL string) string {
	trimmed := strings.TrimRight(pageURL, "/")
	return SanitizeFilename(trimmed[strings.LastIndex(trimmed, "/")+1:])
}

// DocumentFilename returns the output filename for the document of pageURL.
// Distinct pages whose slugs coincide map to the same filename.
func DocumentFilename(pageURL string) string {
	return Slug(pageURL) + DocumentExt
}
