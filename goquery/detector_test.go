package goquery_test

import (
	"testing"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements presscut.Detector at compile time.
var _ presscut.Detector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	canonical := func(href string) string {
		return `<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>Artykuł</title>
<link rel="canonical" href="` + href + `">
</head>
<body><p>Treść</p></body>
</html>`
	}

	tests := []struct {
		name string
		href string
		want presscut.Publisher
	}{
		{"Wyborcza", "https://wyborcza.pl/7,75398,29533445,tytul.html", presscut.PublisherWyborcza},
		{"Wyborcza regional site", "https://krakow.wyborcza.pl/krakow/7,44425,1,tytul.html", presscut.PublisherWyborcza},
		{"Wysokie Obcasy", "https://www.wysokieobcasy.pl/wysokie-obcasy/7,100865,1,tytul.html", presscut.PublisherWysokieObcasy},
		{"OKO.press", "https://oko.press/tytul-artykulu", presscut.PublisherOKOPress},
		{"Więź", "https://wiez.pl/2023/03/06/karol-wojtyla/", presscut.PublisherWiez},
		{"Onet", "https://wiadomosci.onet.pl/kraj/tytul/abc123", presscut.PublisherOnet},
		{"PAP", "https://www.pap.pl/aktualnosci/tytul", presscut.PublisherPAP},
		{"Rzeczpospolita", "https://www.rp.pl/kraj/art1-tytul", presscut.PublisherRzeczpospolita},
		{"unknown site", "https://example.com/article", presscut.PublisherDefault},
		{"plain http", "http://wyborcza.pl/7,1,2,tytul.html", presscut.PublisherDefault},
	}
	for _, tt := range tests {
		t.Run("detects "+tt.name+" from canonical link", func(t *testing.T) {
			t.Parallel()

			d := goquery.NewDetector()

			assert.Equal(t, tt.want, d.Detect(canonical(tt.href)))
		})
	}

	t.Run("detects Polityka from application-name meta tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="application-name" content="Polityka"><title>Polityka</title></head><body></body></html>`

		d := goquery.NewDetector()

		assert.Equal(t, presscut.PublisherPolityka, d.Detect(html))
	})

	t.Run("falls back to Open Graph URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:url" content="https://www.pap.pl/aktualnosci/news"></head><body></body></html>`

		d := goquery.NewDetector()

		assert.Equal(t, presscut.PublisherPAP, d.Detect(html))
	})

	t.Run("prefers canonical link over Open Graph URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>` +
			`<link rel="canonical" href="https://oko.press/a">` +
			`<meta property="og:url" content="https://www.pap.pl/b">` +
			`</head><body></body></html>`

		d := goquery.NewDetector()

		assert.Equal(t, presscut.PublisherOKOPress, d.Detect(html))
	})

	t.Run("returns default for page without signals", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDetector()

		assert.Equal(t, presscut.PublisherDefault, d.Detect(`<html><body><p>x</p></body></html>`))
		assert.Equal(t, presscut.PublisherDefault, d.Detect(""))
	})
}
