package html

import "github.com/fwojciec/presscut"

// RzeczpospolitaRules returns the rules for rp.pl.
func RzeczpospolitaRules() *Rules {
	return &Rules{
		Publisher:         presscut.PublisherRzeczpospolita,
		ContentRoot:       classContains("div", "articleBody"),
		Lead:              classContains("div", "article--lead"),
		Paragraph:         classContains("p", "articleBodyBlock"),
		Header:            tagIs("h2", "h3"),
		Link:              tagIs("a"),
		StopAt:            classContains("div", "article--related"),
		TitleFromTitleTag: true,
		Ignore: []TagRule{
			ClassRule("div", "ad-container"),
			AnyTag("aside"),
			AnyTag("figure"),
		},
		Suppress: []TagRule{
			ClassRule("div", "articleBody"),
		},
	}
}

// DefaultRules returns the table used for unknown publishers. It has no
// content root, so only metadata is extracted.
func DefaultRules() *Rules {
	return &Rules{
		Publisher:         presscut.PublisherDefault,
		TitleFromTitleTag: true,
	}
}
