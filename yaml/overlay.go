// Package yaml loads rule overlays: extra ignore and suppressed-validation
// rules per publisher, kept in a YAML file so maintainers can follow a
// publisher's markup changes without rebuilding.
//
// An overlay looks like this:
//
//	publishers:
//	  wyborcza:
//	    ignore:
//	      - tag: div
//	        attrs:
//	          class: promo-box
//	    suppress:
//	      - tag: span
//	        attrs:
//	          class: [caption, small]   # every class must be present
//	          id: {pattern: "^ad-\\d+$"}
//	      - tag: section
//	        bare: true
package yaml

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/html"
	"gopkg.in/yaml.v3"
)

// Overlay holds extra rules keyed by publisher identifier.
type Overlay struct {
	Publishers map[presscut.Publisher]PublisherRules `yaml:"publishers"`
}

// PublisherRules lists the rules added to one publisher's table.
type PublisherRules struct {
	Ignore   []Rule `yaml:"ignore"`
	Suppress []Rule `yaml:"suppress"`
}

// Rule is the YAML form of an html.TagRule.
type Rule struct {
	Tag   string           `yaml:"tag"`
	Bare  bool             `yaml:"bare"`
	Attrs map[string]Value `yaml:"attrs"`
}

// Value is the YAML form of an html.Value. A scalar is a substring, a
// sequence lists substrings that must all be present and a mapping with
// a pattern key holds a regular expression.
type Value struct {
	html.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v.Value = html.Literal(node.Value)
		return nil
	case yaml.SequenceNode:
		var parts []string
		if err := node.Decode(&parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			return fmt.Errorf("line %d: empty value list", node.Line)
		}
		v.Value = html.AllOf(parts...)
		return nil
	case yaml.MappingNode:
		var m struct {
			Pattern string `yaml:"pattern"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.Pattern == "" {
			return fmt.Errorf("line %d: mapping value needs a pattern", node.Line)
		}
		re, err := regexp.Compile(m.Pattern)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		v.Value = html.Pattern(re)
		return nil
	}
	return fmt.Errorf("line %d: unsupported attribute value", node.Line)
}

// Load reads and validates the overlay stored at path.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an overlay.
func Parse(data []byte) (*Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, presscut.Errorf(presscut.EINVALID, "failed to parse overlay: %v", err)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Overlay) validate() error {
	for p, rules := range o.Publishers {
		if _, err := presscut.ParsePublisher(string(p)); err != nil {
			return err
		}
		for i, r := range slices.Concat(rules.Ignore, rules.Suppress) {
			if r.Tag == "" {
				return presscut.Errorf(presscut.EINVALID, "%s: rule %d has no tag", p, i)
			}
			if r.Bare && len(r.Attrs) > 0 {
				return presscut.Errorf(presscut.EINVALID, "%s: bare rule %d has attributes", p, i)
			}
		}
	}
	return nil
}

// Apply returns rules extended with the overlay entries for their
// publisher. Rules of publishers the overlay does not mention are
// returned as they are.
func (o *Overlay) Apply(rules *html.Rules) *html.Rules {
	if o == nil {
		return rules
	}
	extra, ok := o.Publishers[rules.Publisher]
	if !ok {
		return rules
	}
	return rules.Extend(tagRules(extra.Ignore), tagRules(extra.Suppress))
}

// RulesFor returns the publisher's rule table with the overlay applied.
// It has the signature of html.RulesFor.
func (o *Overlay) RulesFor(p presscut.Publisher) *html.Rules {
	return o.Apply(html.RulesFor(p))
}

// TagRule converts r to the matcher form.
func (r Rule) TagRule() html.TagRule {
	if r.Bare {
		return html.BareTag(r.Tag)
	}
	t := html.AnyTag(r.Tag)
	for key, v := range r.Attrs {
		t = t.With(key, v.Value)
	}
	return t
}

func tagRules(rules []Rule) []html.TagRule {
	out := make([]html.TagRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.TagRule())
	}
	return out
}
