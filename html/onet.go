package html

import (
	"strings"

	"github.com/fwojciec/presscut"
)

const (
	onetSourceLabel  = "Źródło:"
	onetVideoTeaser  = "Dalsza część artykułu pod materiałem wideo"
	onetOutletMarker = "Onet"
)

// OnetRules returns the rules for onet.pl.
func OnetRules() *Rules {
	r := &Rules{
		Publisher:   presscut.PublisherOnet,
		ContentRoot: classContains("div", "whitelistPremium"),
		Lead:        idIs("div", "lead"),
		Paragraph:   tagIs("p"),
		Header:      isHeading,
		Link:        tagIs("a"),
		Embed:       socialEmbed,
		StopAt:      classIs("div", "afterDetailModules"),
		Ignore: []TagRule{
			ClassRule("figure", "mainPhoto"),
			ClassRule("aside", "extraList"),
			ClassRule("div", "contentShareLeft"),
			ClassRule("div", "pulsevideo"),
			ClassRule("div", "placeholder", "embed"),
			ClassRule("ul", "narrow").With("data-scroll", Literal("bullet")),
		},
		Suppress: []TagRule{
			IDRule("div", "leadContainer"),
			ClassRule("div", "detailContentWrapper"),
			ClassRule("div", "detailContent"),
			ClassRule("div", "articleBody"),
		},
	}
	r.hooks.data = onetData
	r.hooks.italics = onetItalics
	r.hooks.finish = onetFinish
	return r
}

func onetData(t *traversal, n *Node) bool {
	if is(t.rules.ContentRoot, n) {
		flattenRootText(t, n)
		return true
	}
	trimLead(t, n)
	return insideReadAlso(t)
}

func onetItalics(t *traversal, n *Node) bool {
	if strings.HasPrefix(n.Text, onetSourceLabel) {
		t.article.Source = strings.TrimSpace(strings.TrimPrefix(n.Text, onetSourceLabel))
		return true
	}
	return strings.Contains(n.Text, onetVideoTeaser) || dropReadAlso(t, n)
}

// onetFinish brackets bylines naming the outlet rather than a person.
func onetFinish(t *traversal) {
	if strings.Contains(t.article.Author, onetOutletMarker) {
		t.article.Author = "(" + t.article.Author + ")"
	}
}
