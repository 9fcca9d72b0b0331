// Package trafilatura recovers articles from pages no publisher rule table
// claims, using go-trafilatura's boilerplate removal and metadata
// heuristics.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/presscut"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements presscut.Extractor at compile time.
var _ presscut.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	// OriginalURL is used when the page itself does not name its address.
	OriginalURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content together with
// the byline, publication date, summary and canonical address.
func (e *Extractor) Extract(rawHTML string) (*presscut.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, presscut.Errorf(presscut.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
		OriginalURL:     e.OriginalURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	meta := result.Metadata
	return &presscut.ExtractResult{
		Title:       meta.Title,
		Author:      meta.Author,
		Description: meta.Description,
		URL:         meta.URL,
		PublishedAt: meta.Date,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
