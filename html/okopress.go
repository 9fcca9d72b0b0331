package html

import (
	"strings"

	"github.com/fwojciec/presscut"
)

// Class fragments of OKO.press paragraphs that belong to page furniture.
var okoFurnitureParagraphs = []string{"mt-1", "lg:mr-2"}

// Class fragments of OKO.press spans that hold no article text.
var okoHiddenSpans = []string{"sr-only", "select-none", "ml-3.5"}

// OKOPressRules returns the rules for oko.press.
func OKOPressRules() *Rules {
	r := &Rules{
		Publisher:   presscut.PublisherOKOPress,
		ContentRoot: classContains("div", "mt-16"),
		Lead:        classIs("div", "cg_article_lead"),
		Paragraph: func(n *Node) bool {
			class, ok := n.Attr("class")
			return n.Tag == "p" && ok && !containsAny(class, okoFurnitureParagraphs)
		},
		Quote:             classContains("blockquote", "typography__blockquote"),
		Header:            tagIs("h1", "h2"),
		Link:              tagIs("a"),
		Embed:             socialEmbed,
		StopAt:            classContains("p", "lg:mr-2"),
		TitleFromTitleTag: true,
		Ignore: []TagRule{
			ClassRule("div", "uppercase", "items-center"),
			ClassRule("div", "mt-4"),
			ClassRule("span", "sr-only"),
			ClassRule("div", "hidden"),
			ClassRule("div", "flex flex-col md:flex-row"),
			ClassRule("p", "uppercase", "leading-4", "text-right"),
			AnyTag("h3"),
			ClassRule("p", "mt-1"),
			ClassRule("p", "lg:mr-2"),
			ClassRule("div", "m-auto"),
			ClassRule("div", "footer-group__header", "mb-6"),
			ClassRule("span", "ml-3.5"),
			ClassRule("div", "mt-16", "text-center"),
			ClassRule("div", "flex", "flex-row", "flex-wrap"),
			ClassRule("div", "ml-4", "flex", "flex-col"),
			ClassRule("div", "mt-7", "xl:mt-10"),
			ClassRule("p", "hidden"),
			AnyTag("style"),
			AttrRule("div", "style", Literal("")),
		},
		Suppress: []TagRule{
			ClassRule("div", "mt-16"),
		},
	}
	r.hooks.data = okoData
	return r
}

func okoData(t *traversal, n *Node) bool {
	switch {
	case is(t.rules.Paragraph, n), is(t.rules.Lead, n):
		// Paragraphs arrive in several text runs split by inline tags.
		if t.content.Len() > 0 && !t.endsWith("\n") && !t.endsWith(" ") {
			t.write(" ")
		}
		t.write(n.Cleaned())
		return true
	case n.Tag == "div" && n.Attrs["type"] == "button":
		t.write("[BUTTON] " + n.Cleaned() + "\n")
		return true
	case is(t.rules.Header, n):
		if strings.Contains(n.Text, "Przeczytaj także:") {
			return true
		}
		if t.content.Len() > 0 && !t.endsWith("\n") {
			t.write("\n\n")
		}
		t.writeHeader(n)
		return true
	case n.Tag == "span":
		class, ok := n.Attr("class")
		if !ok || containsAny(class, okoHiddenSpans) {
			return false
		}
		t.logger.Warn("passing span text through", "text", n.Text)
		t.write(n.Cleaned())
		return true
	}
	return false
}

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
