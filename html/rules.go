package html

import (
	"slices"
	"strings"

	"github.com/fwojciec/presscut"
)

// Predicate reports whether an element plays a given role.
type Predicate func(n *Node) bool

// Default markers written into the article text.
const (
	DefaultHeaderMarker   = "[HEADER] "
	DefaultQuestionMarker = "[Q] "
	ItalicsMarker         = "//"
	EmbedLabel            = "EMBED:"
)

// Rules is the extraction rule table of one publisher. The scan consults it
// for every element and never branches on the publisher itself. A nil
// predicate means the publisher has no element in that role.
type Rules struct {
	Publisher presscut.Publisher

	// ContentRoot marks the element wrapping the article body. Text is
	// emitted only while such an element is open.
	ContentRoot Predicate

	Lead      Predicate
	Paragraph Predicate
	Question  Predicate
	Quote     Predicate
	Header    Predicate

	// Link marks anchors pointing to other articles. Their hrefs are
	// collected and their text gets an [L<n>] marker.
	Link Predicate

	// Embed marks wrappers of embedded social posts whose anchors are
	// written out as EMBED blocks.
	Embed Predicate

	// StopAt marks the first element after the article body. Once one
	// opens nothing else is emitted or extracted.
	StopAt Predicate

	HeaderMarker   string
	QuestionMarker string

	// Ignore lists elements skipped together with their subtree, on top of
	// the rules every publisher shares.
	Ignore []TagRule

	// Suppress lists elements allowed to carry stray text inside the body
	// without being reported as unknown.
	Suppress []TagRule

	// TitleFromTitleTag takes the headline from <title> until structured
	// data provides a better one.
	TitleFromTitleTag bool

	hooks hooks
}

// hooks hold publisher behaviour that does not fit a predicate.
type hooks struct {
	// text sees every text run before ignore checks.
	text func(t *traversal, n *Node)

	// meta sees every <meta> element.
	meta func(t *traversal, n *Node)

	// data sees body text before the role dispatch. It returns true when
	// it has handled the text.
	data func(t *traversal, n *Node) bool

	// italics returns true when the text of an italic element must be dropped.
	italics func(t *traversal, n *Node) bool

	// end sees body end tags before the default closers and returns true
	// when it has handled the tag.
	end func(t *traversal, n *Node) bool

	// finish runs after structured data has been applied.
	finish func(t *traversal)
}

// socialEmbed marks the wrapper of an embedded social post.
var socialEmbed = classContains("div", "text--embed")

// Elements every publisher skips.
var baseIgnore = []TagRule{
	AnyTag("img"),
	AnyTag("button"),
	AnyTag("figcaption"),
	AttrRule("script", "type", Literal("text/javascript")),
	BareTag("script"),
	BareTag("picture"),
}

// Elements every publisher allows to carry stray text.
var baseSuppress = []TagRule{
	AnyTag("i"),
}

// IgnoreRules returns the shared ignore rules followed by the publisher's own.
func (r *Rules) IgnoreRules() []TagRule {
	return append(slices.Clip(baseIgnore), r.Ignore...)
}

// SuppressRules returns the shared suppressed-validation rules followed by
// the publisher's own.
func (r *Rules) SuppressRules() []TagRule {
	return append(slices.Clip(baseSuppress), r.Suppress...)
}

// Extend returns a copy of the rules with extra ignore and suppress entries
// appended after the existing ones.
func (r *Rules) Extend(ignore, suppress []TagRule) *Rules {
	c := *r
	c.Ignore = append(slices.Clip(r.Ignore), ignore...)
	c.Suppress = append(slices.Clip(r.Suppress), suppress...)
	return &c
}

// RulesFor returns the rule table of the publisher. Unknown publishers get
// the default table.
func RulesFor(p presscut.Publisher) *Rules {
	switch p {
	case presscut.PublisherWyborcza:
		return WyborczaRules()
	case presscut.PublisherWysokieObcasy:
		return WysokieObcasyRules()
	case presscut.PublisherOKOPress:
		return OKOPressRules()
	case presscut.PublisherPolityka:
		return PolitykaRules()
	case presscut.PublisherWiez:
		return WiezRules()
	case presscut.PublisherOnet:
		return OnetRules()
	case presscut.PublisherPAP:
		return PAPRules()
	case presscut.PublisherRzeczpospolita:
		return RzeczpospolitaRules()
	default:
		return DefaultRules()
	}
}

func tagIs(tags ...string) Predicate {
	return func(n *Node) bool {
		return slices.Contains(tags, n.Tag)
	}
}

func classContains(tag, class string) Predicate {
	return func(n *Node) bool {
		return n.Tag == tag && n.ClassContains(class)
	}
}

func classIs(tag, class string) Predicate {
	return func(n *Node) bool {
		return n.Tag == tag && n.ClassIs(class)
	}
}

func idContains(tag, id string) Predicate {
	return func(n *Node) bool {
		v, ok := n.Attr("id")
		return n.Tag == tag && ok && strings.Contains(v, id)
	}
}

func idIs(tag, id string) Predicate {
	return func(n *Node) bool {
		v, ok := n.Attr("id")
		return n.Tag == tag && ok && v == id
	}
}

func headingWithClass(class string) Predicate {
	return func(n *Node) bool {
		return n.IsHeading() && n.ClassContains(class)
	}
}

func isHeading(n *Node) bool {
	return n.IsHeading()
}

func anyOf(ps ...Predicate) Predicate {
	return func(n *Node) bool {
		for _, p := range ps {
			if p(n) {
				return true
			}
		}
		return false
	}
}
