package presscut

import "time"

// ExtractResult holds what a generic extractor could recover from a page
// that no publisher rule table claims.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Author is the byline, if any.
	Author string

	// Description is the page summary from metadata.
	Description string

	// URL is the canonical page address.
	URL string

	// PublishedAt is the publication time. Zero when unknown.
	PublishedAt time.Time

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Metadata comes from meta tags, JSON+LD, etc.
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}
