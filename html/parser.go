// Package html extracts articles from saved publisher pages by streaming
// the page through golang.org/x/net/html's tokenizer. Each element is
// pushed on a stack when it opens; a publisher's Rules decide which
// elements are skipped, which wrap the article body and what role each
// body element plays in the emitted text.
package html

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/presscut"
	"golang.org/x/net/html"
)

var _ presscut.Parser = (*Parser)(nil)

// Elements that never have content or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "input": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// Parser extracts articles from pages of one publisher.
// A Parser holds no per-document state and is safe for concurrent use.
type Parser struct {
	rules    *Rules
	ignore   []TagRule
	suppress []TagRule
	logger   *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger receiving scan diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser applying rules.
func NewParser(rules *Rules, opts ...Option) *Parser {
	p := &Parser{
		rules:    rules,
		ignore:   rules.IgnoreRules(),
		suppress: rules.SuppressRules(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publisher returns the publisher whose rules the parser applies.
func (p *Parser) Publisher() presscut.Publisher {
	return p.rules.Publisher
}

// Parse scans src once and returns the finished article.
func (p *Parser) Parse(src string) (*presscut.Article, error) {
	t := &traversal{
		rules:    p.rules,
		ignore:   p.ignore,
		suppress: p.suppress,
		logger:   p.logger,
		article:  &presscut.Article{Publisher: p.rules.Publisher},
		metadata: make(map[string]map[string]any),
	}
	if err := t.run(strings.NewReader(src)); err != nil {
		return nil, err
	}
	t.finish()
	return t.article, nil
}

type listMode int

const (
	listNone listMode = iota
	listOrdered
	listUnordered
)

func (m listMode) marker() string {
	if m == listOrdered {
		return "-"
	}
	return "*"
}

// dates collects publication and modification times from one kind of source.
type dates struct {
	published time.Time
	modified  time.Time
}

// traversal is the state of a single scan. It is owned by one Parse call.
type traversal struct {
	rules    *Rules
	ignore   []TagRule
	suppress []TagRule
	logger   *slog.Logger

	stack   stack
	article *presscut.Article
	content strings.Builder
	stopped bool
	list    listMode
	tags    int

	// inline holds dates read from <meta> tags and page text.
	inline dates

	// structured holds dates read from JSON-LD.
	structured dates

	metadata map[string]map[string]any

	// quote collects the paragraphs of the pull-quote being read.
	quote []string
}

func (t *traversal) run(r io.Reader) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("tokenize: %w", err)
			}
			return nil
		case html.StartTagToken:
			n := newNode(z.Token())
			if voidElements[n.Tag] {
				t.startEndTag(n)
			} else {
				t.startTag(n)
			}
		case html.SelfClosingTagToken:
			t.startEndTag(newNode(z.Token()))
		case html.EndTagToken:
			tok := z.Token()
			if !voidElements[tok.Data] {
				t.endTag(tok.Data)
			}
		case html.TextToken:
			if err := t.text(z.Token().Data); err != nil {
				return err
			}
		}
	}
}

// closeDanglingImage pops an <img> left open by markup that never closes
// it. Only images get this treatment.
func (t *traversal) closeDanglingImage() {
	if top := t.stack.top(); top != nil && top.Tag == "img" {
		t.logger.Warn("closing unclosed tag", "tag", "img")
		t.stack.pop()
	}
}

func (t *traversal) startTag(n *Node) {
	t.closeDanglingImage()
	t.tags++

	inherited := t.stack.ignored()
	if Matches(n, t.ignore) {
		n.Status = Ignored
	}
	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		status := n.Status.String()
		if inherited {
			status += "+R"
		}
		t.logger.Debug("open", "tag", n.Tag, "depth", t.stack.depth(), "status", status, "attrs", n.Attrs)
	}
	t.stack.push(n)

	if !t.stopped && t.rules.StopAt != nil && t.rules.StopAt(n) {
		t.logger.Warn("processing stopped", "tag", n.Tag, "attrs", n.Attrs)
		t.stopped = true
	}
	if t.stopped || t.stack.ignored() || !t.inContent() {
		return
	}

	switch n.Tag {
	case "ol":
		t.list = listOrdered
		n.opened = true
		return
	case "ul":
		t.list = listUnordered
		n.opened = true
		return
	case "i", "em":
		t.write(ItalicsMarker)
		n.opened = true
	case "li":
		if t.content.Len() > 0 && !t.endsWith("\n") {
			t.write("\n")
		}
		t.write("  " + t.list.marker() + " ")
	case "a":
		if href, ok := n.Attr("href"); ok && t.inEmbed() {
			t.write(EmbedLabel + "\n" + href + "\n\n")
		}
	}

	if is(t.rules.Question, n) {
		t.write(t.questionMarker())
	}
}

func (t *traversal) startEndTag(n *Node) {
	t.closeDanglingImage()
	t.tags++
	t.logger.Debug("open-close", "tag", n.Tag, "depth", t.stack.depth(), "attrs", n.Attrs)

	if t.stopped {
		return
	}
	switch n.Tag {
	case "link":
		if rel, _ := n.Attr("rel"); rel == "canonical" {
			if href, ok := n.Attr("href"); ok {
				t.article.URL = href
			}
		}
	case "meta":
		t.meta(n)
	case "br":
		if !t.stack.ignored() && t.inContent() {
			t.write("\n")
		}
	}
}

func (t *traversal) endTag(name string) {
	if name != "img" {
		t.closeDanglingImage()
	}
	n := t.stack.top()
	if n == nil {
		return
	}

	if !t.stopped && !t.stack.ignored() && t.inContent() {
		t.closeRole(n)
	}
	if n.opened {
		switch n.Tag {
		case "i", "em":
			if !t.stopped {
				t.write(ItalicsMarker)
			}
		case "ol", "ul":
			t.list = listNone
			if !t.stopped {
				t.write("\n")
			}
		}
	}

	t.stack.pop()
	t.logger.Debug("close", "tag", name, "depth", t.stack.depth())
}

// closeRole writes the separator that follows a finished body element.
func (t *traversal) closeRole(n *Node) {
	if h := t.rules.hooks.end; h != nil && h(t, n) {
		return
	}
	switch {
	case is(t.rules.Paragraph, n), is(t.rules.Question, n), is(t.rules.Lead, n):
		t.write("\n\n")
	case is(t.rules.Quote, n):
		t.write("\n")
	}
}

func (t *traversal) text(s string) error {
	if t.stack.depth() == 0 {
		return nil
	}
	t.closeDanglingImage()
	n := t.stack.top()
	if n == nil {
		return nil
	}
	n.Text = s

	if t.stopped {
		return nil
	}
	if h := t.rules.hooks.text; h != nil {
		h(t, n)
	}
	if t.stack.ignored() {
		return nil
	}

	switch n.Tag {
	case "script":
		if typ, _ := n.Attr("type"); typ == "application/ld+json" {
			t.structuredData(s)
			return nil
		}
	case "title":
		if t.rules.TitleFromTitleTag && !t.stack.any(tagIs("svg")) {
			t.article.Title += n.Cleaned()
		}
	}

	if !t.inContent() {
		return nil
	}
	return t.bodyText(n)
}

// bodyText dispatches text found inside the article body by the role of
// the element holding it.
func (t *traversal) bodyText(n *Node) error {
	switch n.Tag {
	case "ol", "ul":
		return nil
	case "i", "em":
		if h := t.rules.hooks.italics; h != nil && h(t, n) {
			return nil
		}
		t.write(n.Cleaned())
		return nil
	case "strong", "b":
		t.write(n.Cleaned())
		return nil
	case "li":
		text := n.Cleaned()
		t.write(text)
		if trimmed := strings.TrimRightFunc(text, unicode.IsSpace); strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, ".") {
			t.write("\n")
		}
		return nil
	}

	if h := t.rules.hooks.data; h != nil && h(t, n) {
		return nil
	}

	switch {
	case is(t.rules.Paragraph, n), is(t.rules.Question, n), is(t.rules.Lead, n):
		t.write(n.Cleaned())
	case is(t.rules.Quote, n):
		t.write(stripQuoteIndent(n.Cleaned()))
	case is(t.rules.Header, n):
		t.writeHeader(n)
	case n.Tag == "a":
		t.writeLink(n)
	default:
		return t.checkKnown(n)
	}
	return nil
}

func (t *traversal) writeHeader(n *Node) {
	t.write(t.headerMarker() + strings.TrimRightFunc(n.Cleaned(), unicode.IsSpace) + "\n\n")
}

func (t *traversal) writeLink(n *Node) {
	href, ok := n.Attr("href")
	if ok && t.inEmbed() {
		// Written as an EMBED block when the anchor opened.
		return
	}
	if !ok || !is(t.rules.Link, n) {
		t.write(n.Cleaned())
		return
	}
	href, _, _ = strings.Cut(href, "#")
	t.article.Links = append(t.article.Links, href)
	t.write(n.Cleaned() + "[L" + strconv.Itoa(len(t.article.Links)) + "]")
}

// checkKnown reports text under an element no rule accounts for.
func (t *traversal) checkKnown(n *Node) error {
	if Matches(n, t.ignore) || Matches(n, t.suppress) {
		return nil
	}
	return presscut.Errorf(presscut.EDRIFT, "Unknown tag: %s %s D=`%s`", n.Tag, formatAttrs(n.Attrs), n.Text)
}

func (t *traversal) inContent() bool {
	return t.stack.any(t.rules.ContentRoot)
}

func (t *traversal) inEmbed() bool {
	return t.stack.any(t.rules.Embed)
}

func (t *traversal) write(s string) {
	t.content.WriteString(s)
}

func (t *traversal) endsWith(s string) bool {
	return strings.HasSuffix(t.content.String(), s)
}

func (t *traversal) headerMarker() string {
	if t.rules.HeaderMarker != "" {
		return t.rules.HeaderMarker
	}
	return DefaultHeaderMarker
}

func (t *traversal) questionMarker() string {
	if t.rules.QuestionMarker != "" {
		return t.rules.QuestionMarker
	}
	return DefaultQuestionMarker
}

func is(p Predicate, n *Node) bool {
	return p != nil && p(n)
}

// stripQuoteIndent drops the newline and indentation that open a quote
// block in pretty-printed markup.
func stripQuoteIndent(s string) string {
	if !strings.HasPrefix(s, "\n") {
		return s
	}
	rest := strings.TrimLeftFunc(s[1:], unicode.IsSpace)
	if len(rest) == len(s)-1 {
		return s
	}
	return rest
}

func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strconv.Quote(k)+": "+strconv.Quote(attrs[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
