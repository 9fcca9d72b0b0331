package mock

import "github.com/fwojciec/presscut"

var _ presscut.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of presscut.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*presscut.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*presscut.ExtractResult, error) {
	return e.ExtractFn(html)
}
