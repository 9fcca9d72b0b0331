package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/presscut"
)

// Ensure Converter implements presscut.Converter at compile time.
var _ presscut.Converter = (*Converter)(nil)

// escapedLinkMarker matches an [L<n>] link marker escaped as Markdown.
var escapedLinkMarker = regexp.MustCompile(`\\\[(L\d+)\\?\]`)

// Converter wraps html-to-markdown to turn extracted article HTML into
// the text stored in Article.Content.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. Unordered list items get the same
// "*" bullet the publisher rule tables emit.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithBulletListMarker("*"),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. [L<n>] link markers in
// the text are kept verbatim.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", presscut.Errorf(presscut.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = escapedLinkMarker.ReplaceAllString(result, "[$1]")
	return strings.TrimSpace(result), nil
}
