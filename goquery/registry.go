package goquery

import (
	"slices"

	"github.com/fwojciec/presscut"
)

var _ presscut.ParserRegistry = (*Registry)(nil)

// Registry manages publisher-specific parsers and auto-detects publishers
// from HTML content. It uses a Detector to identify the publisher and
// returns the appropriate parser, falling back to a generic parser when
// the publisher is unknown or no specific parser is registered.
type Registry struct {
	detector presscut.Detector
	fallback presscut.Parser
	parsers  map[presscut.Publisher]presscut.Parser
}

// NewRegistry creates a new Registry with the given detector and fallback parser.
// The fallback parser is used when GetForHTML cannot find a specific parser
// for the detected publisher.
func NewRegistry(detector presscut.Detector, fallback presscut.Parser) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		parsers:  make(map[presscut.Publisher]presscut.Parser),
	}
}

// Get returns the parser for a specific publisher.
// Returns nil if no parser is registered for the publisher.
func (r *Registry) Get(publisher presscut.Publisher) presscut.Parser {
	return r.parsers[publisher]
}

// GetForHTML detects the publisher from HTML and returns the appropriate parser.
// Falls back to the fallback parser if the publisher is unknown or no parser
// is registered for the detected publisher.
func (r *Registry) GetForHTML(html string) presscut.Parser {
	publisher := r.detector.Detect(html)
	if parser, ok := r.parsers[publisher]; ok {
		return parser
	}
	return r.fallback
}

// Register adds a parser for a publisher.
// If a parser is already registered for the publisher, it is replaced.
func (r *Registry) Register(publisher presscut.Publisher, parser presscut.Parser) {
	r.parsers[publisher] = parser
}

// List returns all registered publishers in sorted order.
func (r *Registry) List() []presscut.Publisher {
	publishers := make([]presscut.Publisher, 0, len(r.parsers))
	for p := range r.parsers {
		publishers = append(publishers, p)
	}
	slices.Sort(publishers)
	return publishers
}
