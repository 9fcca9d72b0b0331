package html

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	excessNewlines         = regexp.MustCompile(`\n{2,}`)
	spaceBeforePunctuation = regexp.MustCompile(` +([,.;])`)
	newlinesBeforeLower    = regexp.MustCompile(`\n+([a-z])`)
	newlinesBeforeBullet   = regexp.MustCompile(`\n+(  \*)`)
)

// finish turns the scan state into the final article.
func (t *traversal) finish() {
	t.applyStructuredData()
	if h := t.rules.hooks.finish; h != nil {
		h(t)
	}

	for _, e := range t.article.Verify() {
		t.logger.Error("missing required field", "error", string(e), "publisher", t.rules.Publisher)
	}
	t.article.Title = strings.TrimSpace(t.article.Title)

	t.removeNoisyMetadata()
	if len(t.metadata) > 0 {
		t.article.Metadata = t.metadata
	}
	t.article.Content = NormalizeContent(t.content.String())

	t.logger.Debug("scan finished", "tags", t.tags, "links", len(t.article.Links), "stopped", t.stopped)
}

// NormalizeContent cleans the emitted article text: it unifies spaces and
// quotation marks, drops empty italic pairs and collapses blank lines and
// space runs. Applying it twice gives the same result as applying it once,
// so trailing space left behind by the rewrites is trimmed again at the end.
func NormalizeContent(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = strings.ReplaceAll(s, "„", `"`)
	s = strings.ReplaceAll(s, "”", `"`)
	s = strings.ReplaceAll(s, ItalicsMarker+ItalicsMarker, "")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	s = collapseSpaces(s)
	s = spaceBeforePunctuation.ReplaceAllString(s, "$1")
	s = joinContinuationLines(s)
	s = newlinesBeforeBullet.ReplaceAllString(s, "\n$1")
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// joinContinuationLines drops the newlines in front of a lowercase letter.
// The address under an EMBED label keeps its own line.
func joinContinuationLines(s string) string {
	matches := newlinesBeforeLower.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		if strings.HasSuffix(s[:m[0]], EmbedLabel) {
			b.WriteString(s[m[0]:m[1]])
		} else {
			b.WriteString(s[m[1]-1 : m[1]])
		}
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// collapseSpaces shrinks every run of two or more spaces to one space.
// A run opening a line keeps two spaces so list indentation survives.
func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != ' ' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == ' ' {
			j++
		}
		switch n := j - i; {
		case n == 1:
			b.WriteByte(' ')
		case i == 0 || s[i-1] == '\n':
			b.WriteString("  ")
		default:
			b.WriteByte(' ')
		}
		i = j
	}
	return b.String()
}
