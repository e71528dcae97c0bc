// Package goquery implements nxask.Cleaner using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nxask"
)

// ContentSelectors are tried in order; the first with non-blank text wins.
var ContentSelectors = []string{".content", ".main", "#main", ".body", ".documentation"}

// Ensure Cleaner implements nxask.Cleaner at compile time.
var _ nxask.Cleaner = (*Cleaner)(nil)

// Cleaner extracts readable text from documentation pages.
type Cleaner struct {
	selectors []string
}

// NewCleaner creates a Cleaner using ContentSelectors.
func NewCleaner() *Cleaner {
	return &Cleaner{selectors: ContentSelectors}
}

// Clean removes script and style elements and returns the text of the main
// content area. It falls back to the body text and then to the raw HTML, so
// it only returns an error for empty input.
func (c *Cleaner) Clean(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nxask.Errorf(nxask.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html, nil
	}

	doc.Find("script, style").Remove()

	for _, selector := range c.selectors {
		if text := strings.TrimSpace(doc.Find(selector).Text()); text != "" {
			return text, nil
		}
	}

	if text := strings.TrimSpace(doc.Find("body").Text()); text != "" {
		return text, nil
	}

	return html, nil
}
