package html

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/presscut"
)

// Label of the inline "read also" teasers Polityka, Onet and PAP put in
// article bodies.
const readAlsoLabel = "Czytaj też:"

var spaceRuns = regexp.MustCompile(` +`)

// PolitykaRules returns the rules for polityka.pl.
func PolitykaRules() *Rules {
	r := &Rules{
		Publisher:         presscut.PublisherPolityka,
		ContentRoot:       classContains("div", "cg_article_content"),
		Lead:              classIs("div", "cg_article_lead"),
		Paragraph:         tagIs("p"),
		Header:            isHeading,
		Link:              tagIs("a"),
		TitleFromTitleTag: true,
		Ignore: []TagRule{
			ClassRule("div", "cg_ad_outer"),
			IDRule("script", "cg_nav_viewsettings_template"),
			IDRule("script", "cg_nav_user_template"),
			IDRule("script", "cg_nav_user_fav_list_template"),
		},
		Suppress: []TagRule{
			ClassRule("div", "general-container"),
			ClassRule("div", "cg_article_content"),
			ClassRule("div", "cg_article_meat"),
		},
	}
	r.hooks.data = politykaData
	r.hooks.italics = dropReadAlso
	return r
}

func politykaData(t *traversal, n *Node) bool {
	if is(t.rules.ContentRoot, n) {
		return true
	}
	trimLead(t, n)
	return insideReadAlso(t)
}

// trimLead drops trailing whitespace from article lead text.
func trimLead(t *traversal, n *Node) {
	if is(t.rules.Lead, n) {
		n.Text = strings.TrimRightFunc(n.Text, unicode.IsSpace)
	}
}

// insideReadAlso reports whether the text sits inside a "read also" teaser.
func insideReadAlso(t *traversal) bool {
	return t.stack.any(func(n *Node) bool {
		return n.Tag == "em" && strings.Contains(n.Text, readAlsoLabel)
	})
}

func dropReadAlso(_ *traversal, n *Node) bool {
	return strings.Contains(n.Text, readAlsoLabel)
}

// flattenRootText writes text found directly in the content root as one
// line.
func flattenRootText(t *traversal, n *Node) {
	if strings.TrimSpace(n.Text) == "" {
		return
	}
	text := strings.ReplaceAll(n.Cleaned(), "\n", " ")
	t.write(spaceRuns.ReplaceAllString(text, " "))
}
