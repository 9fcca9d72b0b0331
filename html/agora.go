package html

import (
	"slices"
	"strings"

	"github.com/fwojciec/presscut"
)

// Openings of promotional blocks placed inside Agora article bodies.
var agoraTeasers = []string{"CZYTAJ TAKŻE:", "POLECAMY"}

// Elements every Agora title skips.
var agoraIgnore = []TagRule{
	ClassRule("span", "banLabel"),
	IDRule("div", "-ADBOARD-"),
}

// agoraClasses names the CSS classes an Agora title uses for body roles.
type agoraClasses struct {
	paragraph string
	quote     string
	question  string
	header    string
	link      string
}

func agoraRules(p presscut.Publisher, c agoraClasses) *Rules {
	r := &Rules{
		Publisher:         p,
		Paragraph:         classIs("p", c.paragraph),
		Quote:             classContains("blockquote", c.quote),
		Question:          classContains("h4", c.question),
		Link:              classContains("a", c.link),
		Embed:             socialEmbed,
		TitleFromTitleTag: true,
	}
	if c.header != "" {
		r.Header = headingWithClass(c.header)
	}
	r.hooks.data = agoraData
	return r
}

// agoraData hides promotional blocks: the element opening with a teaser
// is ignored together with everything it still contains.
func agoraData(t *traversal, n *Node) bool {
	for _, teaser := range agoraTeasers {
		if strings.HasPrefix(n.Text, teaser) {
			n.Status = Ignored
			return true
		}
	}
	return false
}

// WyborczaRules returns the rules for wyborcza.pl and its regional sites.
func WyborczaRules() *Rules {
	r := agoraRules(presscut.PublisherWyborcza, agoraClasses{
		paragraph: "text--paragraph",
		quote:     "text--quote",
		question:  "text--question",
		header:    "text--title",
		link:      "text--link",
	})
	r.ContentRoot = func(n *Node) bool {
		return n.Tag == "div" && (n.ClassIs("paywall") || n.ClassContains("article--content"))
	}
	r.StopAt = classIs("div", "article--postcontent")
	r.Ignore = append(slices.Clone(agoraIgnore),
		ClassRule("div", "adview"),
		ClassRule("div", "text--embed"),
		ClassRule("div", "container mt+++"),
	)
	r.Suppress = []TagRule{
		ClassRule("div", "article--content"),
		ClassRule("div", "paywall"),
		ClassRule("div", "text--photo"),
		ClassRule("figure", "a-image"),
		ClassRule("span", "text--photo-title"),
		ClassRule("span", "text--photo-author"),
	}
	return r
}

// WysokieObcasyRules returns the rules for wysokieobcasy.pl. Its article
// bodies have no section headers.
func WysokieObcasyRules() *Rules {
	r := agoraRules(presscut.PublisherWysokieObcasy, agoraClasses{
		paragraph: "art_paragraph",
		quote:     "art_blockquote",
		question:  "art_interview_question",
		link:      "art_link",
	})
	r.ContentRoot = idContains("div", "wo_article_body")
	r.StopAt = classIs("section", "article-publio")
	r.Ignore = append(slices.Clone(agoraIgnore),
		IDRule("div", "adUnit-"),
		ClassRule("div", "art_embed"),
		ClassRule("span", "imageUOM"),
	)
	r.Suppress = []TagRule{
		IDRule("div", "wo_article_body"),
		ClassRule("div", "paywall"),
		ClassRule("section", "art_content").With("itemprop", Literal("articleSection")),
	}
	return r
}
