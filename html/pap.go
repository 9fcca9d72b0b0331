package html

import (
	"regexp"
	"strings"

	"github.com/fwojciec/presscut"
)

const (
	papAgency       = "PAP"
	papAuthorLabel  = "Autor:"
	papStampLayout  = "2006-01-02 15:04"
	papOGTitleField = "og:title"
)

var (
	papPublished = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2} \d{1,2}:\d{2})\s*$`)
	papModified  = regexp.MustCompile(`^aktualizacja: \s*(\d{4}-\d{2}-\d{2}), (\d{1,2}:\d{2})\s*$`)
)

// PAPRules returns the rules for pap.pl.
func PAPRules() *Rules {
	r := &Rules{
		Publisher: presscut.PublisherPAP,
		ContentRoot: func(n *Node) bool {
			if n.Tag == "article" {
				role, ok := n.Attr("role")
				return ok && strings.Contains(role, "article")
			}
			return n.Tag == "div" && n.ClassContains("cg_article_printed_info")
		},
		Lead:      classContains("div", "field--name-field-lead"),
		Paragraph: tagIs("p"),
		Quote:     tagIs("blockquote"),
		Header:    isHeading,
		Link:      tagIs("a"),
		StopAt:    classContains("div", "field--name-field-tags"),
		Suppress: []TagRule{
			AnyTag("div"),
		},
	}
	r.hooks.text = papText
	r.hooks.meta = papMeta
	r.hooks.data = papData
	r.hooks.italics = dropReadAlso
	r.hooks.finish = papFinish
	return r
}

// papText picks up the publication and update stamps PAP prints as bare
// text next to the headline.
func papText(t *traversal, n *Node) {
	if m := papPublished.FindStringSubmatch(n.Text); m != nil {
		if d, ok := t.parseLayout("published", papStampLayout, m[1]); ok {
			t.inline.published = d
		}
	}
	if m := papModified.FindStringSubmatch(n.Text); m != nil {
		if d, ok := t.parseLayout("modified", papStampLayout, m[1]+" "+m[2]); ok {
			t.inline.modified = d
		}
	}
}

func papMeta(t *traversal, n *Node) {
	if property, _ := n.Attr("property"); property == papOGTitleField {
		t.article.Title, _ = n.Attr("content")
	}
}

func papData(t *traversal, n *Node) bool {
	if is(t.rules.ContentRoot, n) {
		flattenRootText(t, n)
		return true
	}
	trimLead(t, n)
	if insideReadAlso(t) {
		return true
	}
	if (is(t.rules.Paragraph, n) || is(t.rules.Lead, n)) && strings.HasPrefix(n.Text, papAuthorLabel) {
		t.article.Author = strings.TrimSpace(strings.TrimPrefix(n.Text, papAuthorLabel))
		return true
	}
	return false
}

// papFinish credits the agency when no byline was found.
func papFinish(t *traversal) {
	if t.article.Author == "" {
		t.article.Author = "(" + papAgency + ")"
	}
	if t.article.Source == "" {
		t.article.Source = papAgency
	}
}
