package html

import "github.com/fwojciec/presscut"

// WiezHeaderMarker opens section headers in Więź articles.
const WiezHeaderMarker = "[H] "

// WiezRules returns the rules for wiez.pl. Pull-quotes are collected
// paragraph by paragraph and written as one "[Q] author: text" line.
func WiezRules() *Rules {
	r := &Rules{
		Publisher:   presscut.PublisherWiez,
		ContentRoot: classContains("div", "single__post__content"),
		Paragraph:   tagIs("p"),
		Quote:       classContains("blockquote", "quote"),
		Header: func(n *Node) bool {
			return n.Tag == "h3" && !n.HasAttrs()
		},
		Link:              tagIs("a"),
		Embed:             socialEmbed,
		HeaderMarker:      WiezHeaderMarker,
		TitleFromTitleTag: true,
		Ignore: []TagRule{
			AnyTag("aside"),
			AnyTag("figure"),
			AnyTag("h2"),
			ClassRule("div", "quote-socials"),
		},
		Suppress: []TagRule{
			ClassRule("div", "single__post__content"),
			ClassRule("blockquote", "quote-box"),
			ClassRule("div", "quote-content"),
			ClassRule("div", "quote-text-box"),
		},
	}
	r.hooks.data = wiezData
	r.hooks.end = wiezEnd
	return r
}

func wiezData(t *traversal, n *Node) bool {
	if is(t.rules.Quote, n) {
		return true
	}
	if n.Tag == "p" && inBlockquote(t) {
		t.quote = append(t.quote, n.Cleaned())
		return true
	}
	return false
}

func wiezEnd(t *traversal, n *Node) bool {
	switch {
	case is(t.rules.Quote, n):
		t.write(t.questionMarker() + formatQuote(t.quote) + "\n\n")
		t.quote = nil
		return true
	case n.Tag == "p" && inBlockquote(t):
		return true
	}
	return false
}

// formatQuote renders collected quote paragraphs. The second paragraph,
// when present, names the quoted person.
func formatQuote(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return parts[1] + ": " + parts[0]
}

func inBlockquote(t *traversal) bool {
	return t.stack.any(tagIs("blockquote"))
}
