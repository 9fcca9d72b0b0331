package html_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/presscut/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page wraps head markup in a page without an article body.
func page(head string) string {
	return `<html><head>` + head + `</head><body></body></html>`
}

func ldJSON(payload string) string {
	return `<script type="application/ld+json">` + payload + `</script>`
}

func TestParser_Parse_Metadata(t *testing.T) {
	t.Parallel()

	t.Run("reads article fields from structured data", func(t *testing.T) {
		t.Parallel()

		a := parse(t, html.DefaultRules(), page(ldJSON(`{
			"@context": "https://schema.org",
			"@type": "NewsArticle",
			"headline": "Nowy &quot;ład&quot; w polityce",
			"author": [{"@type": "Person", "name": "Anna Nowak"}, {"@type": "Person", "name": "Jan Kowalski"}],
			"datePublished": "2023-03-06T10:00:00+01:00",
			"dateModified": "2023-03-07T08:30:00+01:00",
			"mainEntityOfPage": {"@id": "x", "url": "https://example.pl/a"},
			"image": "x.jpg",
			"wordCount": 1200
		}`)))

		assert.Equal(t, "Nowy „ład” w polityce", a.Title)
		assert.Equal(t, "Anna Nowak and Jan Kowalski", a.Author)
		assert.True(t, a.PubDate.Equal(time.Date(2023, 3, 6, 9, 0, 0, 0, time.UTC)))
		assert.True(t, a.LastUpdated.Equal(time.Date(2023, 3, 7, 7, 30, 0, 0, time.UTC)))
		assert.Equal(t, "https://example.pl/a", a.URL)

		require.Contains(t, a.Metadata, "NewsArticle")
		entry := a.Metadata["NewsArticle"]
		assert.Contains(t, entry, "headline")
		assert.Contains(t, entry, "wordCount")
		assert.NotContains(t, entry, "image")
		assert.NotContains(t, entry, "@context")
		assert.NotContains(t, entry, "mainEntityOfPage")
	})

	t.Run("reads a graph of entries", func(t *testing.T) {
		t.Parallel()

		a := parse(t, html.DefaultRules(), page(ldJSON(`{
			"@context": "https://schema.org",
			"@graph": [
				{"@type": "WebPage", "url": "https://wiez.pl/x"},
				{"@type": "BlogPosting", "headline": "Wpis", "datePublished": "2023-03-06T07:00:00+00:00"},
				{"@type": "Person", "name": "Marek Lasota"}
			]
		}`)))

		assert.Equal(t, "Wpis", a.Title)
		assert.Equal(t, "Marek Lasota", a.Author)
		assert.True(t, a.PubDate.Equal(time.Date(2023, 3, 6, 7, 0, 0, 0, time.UTC)))
		assert.Contains(t, a.Metadata, "WebPage")
		assert.Contains(t, a.Metadata, "BlogPosting")
		assert.Contains(t, a.Metadata, "Person")
	})

	t.Run("reads an array of entries", func(t *testing.T) {
		t.Parallel()

		a := parse(t, html.DefaultRules(), page(ldJSON(`[
			{"@type": "BreadcrumbList", "itemListElement": []},
			{"@type": ["NewsArticle"], "headline": "Z listy", "author": "Redakcja", "url": "https://example.pl/b"}
		]`)))

		assert.Equal(t, "Z listy", a.Title)
		assert.Equal(t, "Redakcja", a.Author)
		assert.Equal(t, "https://example.pl/b", a.URL)
		assert.NotContains(t, a.Metadata["BreadcrumbList"], "itemListElement")
	})

	t.Run("later entries replace duplicated types", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		a, err := html.NewParser(html.DefaultRules(), html.WithLogger(logger)).Parse(page(
			ldJSON(`{"@type": "NewsArticle", "headline": "Pierwszy"}`) +
				ldJSON(`{"@type": "NewsArticle", "headline": "Drugi"}`)))
		require.NoError(t, err)

		assert.Equal(t, "Drugi", a.Title)
		assert.Contains(t, buf.String(), "duplicated structured data type")
	})

	t.Run("survives malformed structured data", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		a, err := html.NewParser(html.DefaultRules(), html.WithLogger(logger)).Parse(page(
			`<title>Tytuł</title>` + ldJSON(`{"@type": "NewsArticle",`)))
		require.NoError(t, err)

		assert.Equal(t, "Tytuł", a.Title)
		assert.Nil(t, a.Metadata)
		assert.Contains(t, buf.String(), "malformed structured data")
	})

	t.Run("falls back to meta tags", func(t *testing.T) {
		t.Parallel()

		a := parse(t, html.DefaultRules(), page(
			`<meta charset="UTF-8">`+
				`<meta name="pubdate" content="2023/03/06 10:15:00">`+
				`<meta name="lastupdated" content="2023/03/08 09:00:00">`+
				`<meta name="Description" content="Opis artykułu">`+
				`<meta name="description" content="inny opis">`))

		assert.Equal(t, "utf-8", a.Charset)
		assert.Equal(t, "Opis artykułu", a.Description)
		assert.True(t, a.PubDate.Equal(time.Date(2023, 3, 6, 10, 15, 0, 0, time.UTC)))
		assert.True(t, a.LastUpdated.Equal(time.Date(2023, 3, 8, 9, 0, 0, 0, time.UTC)))
	})

	t.Run("reads the charset from http-equiv", func(t *testing.T) {
		t.Parallel()

		a := parse(t, html.DefaultRules(), page(
			`<meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-2">`))

		assert.Equal(t, "iso-8859-2", a.Charset)
	})

	t.Run("structured dates win over meta tags", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		a, err := html.NewParser(html.DefaultRules(), html.WithLogger(logger)).Parse(page(
			`<meta name="pubdate" content="2023/03/05 23:00:00">` +
				ldJSON(`{"@type": "NewsArticle", "datePublished": "2023-03-06T08:00:00Z"}`)))
		require.NoError(t, err)

		assert.True(t, a.PubDate.Equal(time.Date(2023, 3, 6, 8, 0, 0, 0, time.UTC)))
		assert.Contains(t, buf.String(), "date mismatch")
	})

	t.Run("canonical link sets the URL", func(t *testing.T) {
		t.Parallel()

		a := parse(t, html.DefaultRules(), page(`<link rel="canonical" href="https://oko.press/x/">`))

		assert.Equal(t, "https://oko.press/x/", a.URL)
	})
}
