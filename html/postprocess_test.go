package html_test

import (
	"testing"

	"github.com/fwojciec/presscut/html"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"non-breaking spaces", "A\u00a0B", "A B"},
		{"trailing whitespace", "Koniec.\n\n  ", "Koniec."},
		{"typographic quotes", "„Maxima culpa”", `"Maxima culpa"`},
		{"empty italics", "A////B", "AB"},
		{"blank lines", "A\n\n\n\nB", "A\n\nB"},
		{"space runs", "A    B", "A B"},
		{"list indentation", "A\n     * x", "A\n  * x"},
		{"space before punctuation", "A , B ; C .", "A, B; C."},
		{"line broken before lowercase", "Ala\nma kota", "Alama kota"},
		{"blank line before bullet", "Lista:\n\n  * x", "Lista:\n  * x"},
		{"first list item", "  * x\n  * y", "  * x\n  * y"},
		{"empty italics at the end", "A ////", "A"},
		{"embed address keeps its line", "Tekst.\n\nEMBED:\nhttps://twitter.com/x\n\nDalej", "Tekst.\n\nEMBED:\nhttps://twitter.com/x\n\nDalej"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, html.NormalizeContent(tt.in))
		})
	}
}

func TestNormalizeContent_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"„Tytuł”  , tekst //kursywa//////.\n\n\n\nDalej\nciąg   dalszy ;\n\n\n  * punkt\n\n  - drugi  .\n\n",
		"A ////",
		"Koniec //// \n\n////",
		"Zobacz:\n\nEMBED:\nhttps://twitter.com/x/status/1\n\n\nkoniec  ,",
	}
	for _, in := range inputs {
		once := html.NormalizeContent(in)
		assert.Equal(t, once, html.NormalizeContent(once), "input %q", in)
	}
}
