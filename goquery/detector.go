package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/presscut"
)

var _ presscut.Detector = (*Detector)(nil)

// urlSignature maps an article address to the publisher serving it.
type urlSignature struct {
	pattern   *regexp.Regexp
	publisher presscut.Publisher
}

// Address patterns in the order they are tried.
var urlSignatures = []urlSignature{
	{regexp.MustCompile(`^https://(\w+\.)?wyborcza\.pl/`), presscut.PublisherWyborcza},
	{regexp.MustCompile(`^https://www\.wysokieobcasy\.pl/`), presscut.PublisherWysokieObcasy},
	{regexp.MustCompile(`^https://oko\.press/`), presscut.PublisherOKOPress},
	{regexp.MustCompile(`^https://(www\.)?wiez\.pl/`), presscut.PublisherWiez},
	{regexp.MustCompile(`^https://([\w-]+\.)*onet\.pl/`), presscut.PublisherOnet},
	{regexp.MustCompile(`^https://(www\.)?pap\.pl/`), presscut.PublisherPAP},
	{regexp.MustCompile(`^https://([\w-]+\.)?rp\.pl/`), presscut.PublisherRzeczpospolita},
	{regexp.MustCompile(`^https://(www\.)?polityka\.pl/`), presscut.PublisherPolityka},
}

// Detector identifies the publisher of a saved article page.
// It checks the canonical link first, then the application-name meta tag
// and finally the Open Graph URL.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified publisher.
// Returns PublisherDefault if the publisher cannot be determined.
func (d *Detector) Detect(html string) presscut.Publisher {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return presscut.PublisherDefault
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		if p := publisherForURL(href); p != presscut.PublisherDefault {
			return p
		}
	}

	// Polityka pages carry no canonical link in saved copies.
	if name, _ := doc.Find(`meta[name="application-name"]`).First().Attr("content"); name == "Polityka" {
		return presscut.PublisherPolityka
	}

	if u, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		return publisherForURL(u)
	}

	return presscut.PublisherDefault
}

func publisherForURL(u string) presscut.Publisher {
	u = strings.TrimSpace(u)
	for _, s := range urlSignatures {
		if s.pattern.MatchString(u) {
			return s.publisher
		}
	}
	return presscut.PublisherDefault
}
