package html

import (
	"regexp"
	"sort"
	"strings"
)

type valueKind int

const (
	kindLiteral valueKind = iota
	kindAllOf
	kindPattern
)

// Value is the expectation a rule places on one attribute value.
type Value struct {
	kind    valueKind
	literal string
	all     []string
	pattern *regexp.Regexp
}

// Literal matches attribute values containing s.
func Literal(s string) Value {
	return Value{kind: kindLiteral, literal: s}
}

// AllOf matches attribute values containing every one of parts.
func AllOf(parts ...string) Value {
	return Value{kind: kindAllOf, all: parts}
}

// Pattern matches attribute values in which re finds a match.
func Pattern(re *regexp.Regexp) Value {
	return Value{kind: kindPattern, pattern: re}
}

func (v Value) match(s string) bool {
	switch v.kind {
	case kindAllOf:
		for _, part := range v.all {
			if !strings.Contains(s, part) {
				return false
			}
		}
		return true
	case kindPattern:
		return v.pattern.MatchString(s)
	default:
		return strings.Contains(s, v.literal)
	}
}

func (v Value) String() string {
	switch v.kind {
	case kindAllOf:
		return "{" + strings.Join(v.all, ", ") + "}"
	case kindPattern:
		return "/" + v.pattern.String() + "/"
	default:
		return "'" + v.literal + "'"
	}
}

// TagRule selects elements by tag name and attribute values.
type TagRule struct {
	Tag   string
	Attrs map[string]Value

	// Bare restricts the rule to elements without any attribute.
	Bare bool
}

// AnyTag matches every element with the given name.
func AnyTag(tag string) TagRule {
	return TagRule{Tag: tag}
}

// BareTag matches elements with the given name and no attributes.
func BareTag(tag string) TagRule {
	return TagRule{Tag: tag, Bare: true}
}

// AttrRule matches elements whose attribute key satisfies v.
func AttrRule(tag, key string, v Value) TagRule {
	return TagRule{Tag: tag, Attrs: map[string]Value{key: v}}
}

// ClassRule matches elements whose class attribute contains every given class.
func ClassRule(tag string, classes ...string) TagRule {
	if len(classes) == 1 {
		return AttrRule(tag, "class", Literal(classes[0]))
	}
	return AttrRule(tag, "class", AllOf(classes...))
}

// IDRule matches elements whose id attribute contains id.
func IDRule(tag, id string) TagRule {
	return AttrRule(tag, "id", Literal(id))
}

// With returns a copy of the rule that also requires key to satisfy v.
func (r TagRule) With(key string, v Value) TagRule {
	attrs := make(map[string]Value, len(r.Attrs)+1)
	for k, x := range r.Attrs {
		attrs[k] = x
	}
	attrs[key] = v
	r.Attrs = attrs
	r.Bare = false
	return r
}

// Match reports whether the rule selects n.
func (r TagRule) Match(n *Node) bool {
	if r.Tag != n.Tag {
		return false
	}
	if r.Bare {
		return !n.HasAttrs()
	}
	for key, v := range r.Attrs {
		s, ok := n.Attrs[key]
		if !ok || !v.match(s) {
			return false
		}
	}
	return true
}

func (r TagRule) String() string {
	if r.Bare {
		return r.Tag + "[]"
	}
	parts := make([]string, 0, len(r.Attrs))
	for k, v := range r.Attrs {
		parts = append(parts, k+"="+v.String())
	}
	sort.Strings(parts)
	return r.Tag + "[" + strings.Join(parts, " ") + "]"
}

// Matches reports whether any rule in rules selects n. Rules are tried in
// order and the first match wins.
func Matches(n *Node, rules []TagRule) bool {
	_, ok := firstMatch(n, rules)
	return ok
}

func firstMatch(n *Node, rules []TagRule) (TagRule, bool) {
	for _, r := range rules {
		if r.Match(n) {
			return r, true
		}
	}
	return TagRule{}, false
}
