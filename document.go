package nxask

import "context"

// Document is the cleaned text of one documentation page.
// It is built per request and never cached.
type Document struct {
	URL      string `json:"url"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Cleaner turns raw page markup into plain text.
type Cleaner interface {
	// Clean strips scripts and styles and returns the text of the main
	// content area. It degrades to coarser text instead of failing, so the
	// result is never empty for non-empty input.
	Clean(html string) (string, error)
}

// DocumentFetcher retrieves and cleans a documentation page.
type DocumentFetcher interface {
	// FetchDocument returns a *FetchError if the page cannot be retrieved.
	FetchDocument(ctx context.Context, src Source) (*Document, error)
}
