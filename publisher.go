package presscut

// Publisher identifies a supported news publisher. Each publisher has its
// own extraction rule table.
type Publisher string

// Supported publishers.
const (
	PublisherDefault        Publisher = "default"
	PublisherWyborcza       Publisher = "wyborcza"
	PublisherWysokieObcasy  Publisher = "wysokieobcasy"
	PublisherOKOPress       Publisher = "okopress"
	PublisherPolityka       Publisher = "polityka"
	PublisherWiez           Publisher = "wiez"
	PublisherOnet           Publisher = "onet"
	PublisherPAP            Publisher = "pap"
	PublisherRzeczpospolita Publisher = "rzeczpospolita"
)

var publisherNames = map[Publisher]string{
	PublisherDefault:        "Unknown publisher",
	PublisherWyborcza:       "Gazeta Wyborcza",
	PublisherWysokieObcasy:  "Wysokie Obcasy",
	PublisherOKOPress:       "OKO.press",
	PublisherPolityka:       "Polityka",
	PublisherWiez:           "Więź",
	PublisherOnet:           "Onet",
	PublisherPAP:            "Polska Agencja Prasowa",
	PublisherRzeczpospolita: "Rzeczpospolita",
}

// Publishers returns every supported publisher, default last.
func Publishers() []Publisher {
	return []Publisher{
		PublisherWyborcza,
		PublisherWysokieObcasy,
		PublisherOKOPress,
		PublisherPolityka,
		PublisherWiez,
		PublisherOnet,
		PublisherPAP,
		PublisherRzeczpospolita,
		PublisherDefault,
	}
}

// Name returns the human readable publisher name.
func (p Publisher) Name() string {
	if name, ok := publisherNames[p]; ok {
		return name
	}
	return string(p)
}

// ParsePublisher returns the publisher with the given identifier.
// Returns EINVALID for identifiers outside the supported set.
func ParsePublisher(s string) (Publisher, error) {
	p := Publisher(s)
	if _, ok := publisherNames[p]; !ok {
		return "", Errorf(EINVALID, "unknown publisher %q", s)
	}
	return p, nil
}

// Parser turns the full text of one saved article page into an Article.
type Parser interface {
	// Parse scans the page once and returns the finished record.
	// Returns EDRIFT when text turns up inside the article body under an
	// unrecognised tag. Missing fields are not errors: they are replaced by
	// placeholders and listed in Article.Errors.
	Parse(html string) (*Article, error)

	// Publisher returns the publisher whose rules the parser applies.
	Publisher() Publisher
}

// Detector identifies the publisher of a saved page.
type Detector interface {
	// Detect analyzes HTML and returns the identified publisher.
	// Returns PublisherDefault if the publisher cannot be determined.
	Detect(html string) Publisher
}

// ParserRegistry manages publisher-specific parsers.
type ParserRegistry interface {
	// Get returns the parser for a specific publisher.
	// Returns nil if no parser is registered for the publisher.
	Get(publisher Publisher) Parser

	// GetForHTML detects the publisher from HTML and returns the appropriate parser.
	// Falls back to a generic parser if the publisher is unknown.
	GetForHTML(html string) Parser

	// Register adds a parser for a publisher.
	Register(publisher Publisher, parser Parser)

	// List returns all registered publishers.
	List() []Publisher
}
