package mock

import "github.com/fwojciec/presscut"

var _ presscut.Parser = (*Parser)(nil)

// Parser is a mock implementation of presscut.Parser.
type Parser struct {
	ParseFn     func(html string) (*presscut.Article, error)
	PublisherFn func() presscut.Publisher
}

func (p *Parser) Parse(html string) (*presscut.Article, error) {
	return p.ParseFn(html)
}

func (p *Parser) Publisher() presscut.Publisher {
	return p.PublisherFn()
}

var _ presscut.Detector = (*Detector)(nil)

// Detector is a mock implementation of presscut.Detector.
type Detector struct {
	DetectFn func(html string) presscut.Publisher
}

func (d *Detector) Detect(html string) presscut.Publisher {
	return d.DetectFn(html)
}

var _ presscut.ParserRegistry = (*ParserRegistry)(nil)

// ParserRegistry is a mock implementation of presscut.ParserRegistry.
type ParserRegistry struct {
	GetFn        func(publisher presscut.Publisher) presscut.Parser
	GetForHTMLFn func(html string) presscut.Parser
	RegisterFn   func(publisher presscut.Publisher, parser presscut.Parser)
	ListFn       func() []presscut.Publisher
}

func (r *ParserRegistry) Get(publisher presscut.Publisher) presscut.Parser {
	return r.GetFn(publisher)
}

func (r *ParserRegistry) GetForHTML(html string) presscut.Parser {
	return r.GetForHTMLFn(html)
}

func (r *ParserRegistry) Register(publisher presscut.Publisher, parser presscut.Parser) {
	r.RegisterFn(publisher, parser)
}

func (r *ParserRegistry) List() []presscut.Publisher {
	return r.ListFn()
}
