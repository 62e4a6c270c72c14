// Package goquery implements docgrab.AnchorExtractor with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docgrab"
)

// Ensure AnchorExtractor implements docgrab.AnchorExtractor at compile time.
var _ docgrab.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor lists the href attributes of anchors in an HTML document.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// Hrefs returns the raw href value of every a[href] element in document
// order. Empty values are included; filtering is left to the caller.
func (e *AnchorExtractor) Hrefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		hrefs = append(hrefs, href)
	})
	return hrefs, nil
}
