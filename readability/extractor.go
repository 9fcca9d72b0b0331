package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/presscut"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements presscut.Extractor at compile time.
var _ presscut.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	// PageURL resolves relative links and becomes the result URL.
	PageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*presscut.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, presscut.Errorf(presscut.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.PageURL)
	if err != nil {
		return nil, err
	}

	result := &presscut.ExtractResult{
		Title:       article.Title,
		Author:      strings.TrimSpace(article.Byline),
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}
	if e.PageURL != nil {
		result.URL = e.PageURL.String()
	}
	if article.PublishedTime != nil {
		result.PublishedAt = *article.PublishedTime
	}
	return result, nil
}
