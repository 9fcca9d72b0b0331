package mock

import "github.com/fwojciec/presscut"

var _ presscut.Converter = (*Converter)(nil)

// Converter is a mock implementation of presscut.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
