// Package charset decodes saved article pages into UTF-8 text. Pages come
// from several publishers and several decades of tooling, so the encoding
// is taken from the byte order mark, the page's own declaration or, when
// both are missing, from the bytes themselves.
package charset

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Fallback is the encoding assumed when nothing else identifies the page.
const Fallback = "iso-8859-2"

// Number of leading bytes searched for a <meta> declaration.
const prescanSize = 1024

var (
	metaCharset     = regexp.MustCompile(`(?i)<meta\s+charset=["']?([^"'\s/>]+)`)
	metaContentType = regexp.MustCompile(`(?i)<meta\s+[^>]*http-equiv=["']?content-type["']?[^>]*content=["']?[^;>]*;\s*charset=([^"'\s/>]+)`)
)

var boms = []struct {
	mark []byte
	name string
}{
	{[]byte{0xEF, 0xBB, 0xBF}, "utf-8"},
	{[]byte{0xFE, 0xFF}, "utf-16be"},
	{[]byte{0xFF, 0xFE}, "utf-16le"},
}

// Decoder turns raw page bytes into text.
type Decoder struct {
	// MinConfidence is the lowest statistical detection confidence (0-100)
	// accepted before falling back to ISO-8859-2.
	MinConfidence int
}

// NewDecoder returns a Decoder with the default detection threshold.
func NewDecoder() *Decoder {
	return &Decoder{MinConfidence: 50}
}

// Decode converts data with the default Decoder.
func Decode(data []byte) (string, string, error) {
	return NewDecoder().Decode(data)
}

// Decode converts data to UTF-8 and returns the text together with the
// canonical name of the encoding it was read in. The encoding is chosen
// in this order: byte order mark, <meta> declaration, UTF-8 validity,
// statistical detection, ISO-8859-2.
func (d *Decoder) Decode(data []byte) (string, string, error) {
	for _, bom := range boms {
		if bytes.HasPrefix(data, bom.mark) {
			return decode(data[len(bom.mark):], bom.name)
		}
	}

	if name, ok := declared(data); ok {
		// A page claiming UTF-8 that is not valid UTF-8 was re-saved by
		// some tool in another encoding.
		if name != "utf-8" || utf8.Valid(data) {
			return decode(data, name)
		}
	}

	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	if name, ok := d.detect(data); ok {
		return decode(data, name)
	}
	return decode(data, Fallback)
}

// declared returns the encoding named by a <meta> element near the top of
// the page, if it names one the decoder knows.
func declared(data []byte) (string, bool) {
	head := data[:min(len(data), prescanSize)]
	for _, re := range []*regexp.Regexp{metaCharset, metaContentType} {
		m := re.FindSubmatch(head)
		if m == nil {
			continue
		}
		if e, name := htmlcharset.Lookup(string(m[1])); e != nil {
			return name, true
		}
	}
	return "", false
}

func (d *Decoder) detect(data []byte) (string, bool) {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil || result.Confidence < d.MinConfidence {
		return "", false
	}
	if e, name := htmlcharset.Lookup(strings.ToLower(result.Charset)); e != nil {
		return name, true
	}
	return "", false
}

func decode(data []byte, name string) (string, string, error) {
	if name == "utf-8" {
		return string(data), name, nil
	}
	e := lookup(name)
	if e == nil {
		return "", "", fmt.Errorf("unsupported encoding %q", name)
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), name, nil
}

func lookup(name string) encoding.Encoding {
	if name == Fallback {
		return charmap.ISO8859_2
	}
	e, _ := htmlcharset.Lookup(name)
	return e
}
