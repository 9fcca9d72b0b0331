package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Status is the processing status of an open tag.
type Status int

// Tag statuses.
const (
	Processed Status = iota
	Ignored
)

func (s Status) String() string {
	if s == Ignored {
		return "I"
	}
	return "P"
}

// Node is one open element during a scan: its name, its attributes and the
// most recent run of text seen directly inside it.
type Node struct {
	Tag    string
	Attrs  map[string]string
	Text   string
	Status Status

	// opened records that an opening marker was emitted for the node, so
	// the closing marker is emitted only to balance it.
	opened bool
}

func newNode(tok html.Token) *Node {
	n := &Node{Tag: tok.Data}
	if len(tok.Attr) > 0 {
		n.Attrs = make(map[string]string, len(tok.Attr))
		for _, a := range tok.Attr {
			n.Attrs[a.Key] = a.Val
		}
	}
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// HasAttrs reports whether the tag carries any attribute at all.
func (n *Node) HasAttrs() bool {
	return len(n.Attrs) > 0
}

// ClassContains reports whether the class attribute contains s as a substring.
func (n *Node) ClassContains(s string) bool {
	class, ok := n.Attrs["class"]
	return ok && strings.Contains(class, s)
}

// ClassIs reports whether the class attribute equals s.
func (n *Node) ClassIs(s string) bool {
	class, ok := n.Attrs["class"]
	return ok && class == s
}

// IsHeading reports whether the tag is h1 to h6.
func (n *Node) IsHeading() bool {
	return len(n.Tag) == 2 && n.Tag[0] == 'h' && n.Tag[1] >= '1' && n.Tag[1] <= '6'
}

// Cleaned returns the node text with non-breaking spaces replaced by spaces.
func (n *Node) Cleaned() string {
	return cleanText(n.Text)
}

func cleanText(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}
