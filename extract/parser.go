// Package extract recovers articles from pages no publisher rule table
// claims. It runs a generic boilerplate Extractor, marks the links left
// in the main content and converts that content to text.
package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/goquery"
)

var _ presscut.Parser = (*Parser)(nil)

// Parser builds articles from an Extractor and a Converter.
type Parser struct {
	extractor presscut.Extractor
	converter presscut.Converter
}

// NewParser creates a Parser.
func NewParser(extractor presscut.Extractor, converter presscut.Converter) *Parser {
	return &Parser{extractor: extractor, converter: converter}
}

// Publisher returns PublisherDefault: the parser knows no publisher.
func (p *Parser) Publisher() presscut.Publisher {
	return presscut.PublisherDefault
}

// Parse extracts the article from src. Fields the extractor cannot find
// get placeholders and are listed in Article.Errors, as with the rule
// based parsers.
func (p *Parser) Parse(src string) (*presscut.Article, error) {
	result, err := p.extractor.Extract(src)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	a := &presscut.Article{
		Publisher:   presscut.PublisherDefault,
		Title:       strings.TrimSpace(result.Title),
		Author:      result.Author,
		Description: result.Description,
		URL:         result.URL,
		PubDate:     result.PublishedAt,
	}

	if strings.TrimSpace(result.ContentHTML) != "" {
		marked, links, err := goquery.MarkLinks(result.ContentHTML, result.URL)
		if err != nil {
			return nil, err
		}
		content, err := p.converter.Convert(marked)
		if err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
		a.Content = content
		a.Links = links
	}

	a.Verify()
	return a, nil
}
