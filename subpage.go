package docgrab

import (
	"context"
	"net/url"
	"sort"
	"strings"
)

// LinkCollector discovers the child pages linked from a root page.
type LinkCollector interface {
	// Collect loads rootURL and returns the sorted, deduplicated subpage
	// URLs found among its anchors.
	Collect(ctx context.Context, rootURL string) ([]string, error)
}

// AnchorExtractor lists anchor targets in an HTML document.
type AnchorExtractor interface {
	// Hrefs returns the raw href attribute of every anchor in document
	// order. Values are not resolved or filtered.
	Hrefs(html string) ([]string, error)
}

// Subpages filters raw anchor hrefs down to the child pages of rootURL.
//
// Hrefs starting with "/" are resolved against the root's scheme and host,
// hrefs starting with "http" pass through unchanged, and everything else
// (mailto:, javascript:, fragments, relative paths) is dropped. A URL is
// kept when it lies under the root path and is not the root itself,
// ignoring trailing slashes. The result is sorted and has no duplicates.
func Subpages(rootURL string, hrefs []string) ([]string, error) {
	u, err := parseRoot(rootURL)
	if err != nil {
		return nil, err
	}

	domain := u.Scheme + "://" + u.Host
	prefix := domain + strings.TrimRight(u.Path, "/") + "/"
	root := strings.TrimRight(rootURL, "/")

	seen := make(map[string]struct{})
	for _, href := range hrefs {
		var full string
		switch {
		case href == "":
			continue
		case strings.HasPrefix(href, "/"):
			full = domain + href
		case strings.HasPrefix(href, "http"):
			full = href
		default:
			continue
		}

		if strings.HasPrefix(full, prefix) && strings.TrimRight(full, "/") != root {
			seen[full] = struct{}{}
		}
	}

	subpages := make([]string, 0, len(seen))
	for s := range seen {
		subpages = append(subpages, s)
	}
	sort.Strings(subpages)
	return subpages, nil
}

// ValidateRootURL reports an EINVALID error unless rootURL is absolute.
func ValidateRootURL(rootURL string) error {
	_, err := parseRoot(rootURL)
	return err
}

func parseRoot(rootURL string) (*url.URL, error) {
	u, err := url.Parse(rootURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "invalid root URL: %q", rootURL)
	}
	return u, nil
}
