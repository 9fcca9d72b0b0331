package presscut_test

import (
	"testing"
	"time"

	"github.com/fwojciec/presscut"
	"github.com/stretchr/testify/assert"
)

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	pub := time.Date(2023, 3, 6, 10, 0, 0, 0, time.UTC)

	t.Run("formats short report with links", func(t *testing.T) {
		t.Parallel()

		a := &presscut.Article{
			Title:       "Tytuł",
			URL:         "https://wyborcza.pl/7,1.html",
			Author:      "Jan Kowalski",
			PubDate:     pub,
			LastUpdated: pub.Add(2 * time.Hour),
			Charset:     "utf-8",
			Content:     "Akapit [L1].",
			Links:       []string{"https://wyborcza.pl/a"},
		}

		got := presscut.FormatArticle(a, false)

		expected := "TITLE: Tytuł\n" +
			"URL: https://wyborcza.pl/7,1.html\n" +
			"AUTHOR(s): Jan Kowalski\n" +
			"PUB_DATE: 2023-03-06\n" +
			"LAST_UPDATE: --\n" +
			"\n" +
			"\n" +
			"DESCRIPTION: \n" +
			"\n" +
			"\n" +
			"CONTENT:\n\nAkapit [L1].\n" +
			"\n" +
			"LINKS: \nL1 \thttps://wyborcza.pl/a\n"
		assert.Equal(t, expected, got)
	})

	t.Run("shows last update on a later day", func(t *testing.T) {
		t.Parallel()

		a := &presscut.Article{PubDate: pub, LastUpdated: pub.AddDate(0, 0, 2)}

		got := presscut.FormatArticle(a, false)

		assert.Contains(t, got, "LAST_UPDATE: 2023-03-08\n")
	})

	t.Run("uses question marks for unknown dates and dashes for no links", func(t *testing.T) {
		t.Parallel()

		got := presscut.FormatArticle(&presscut.Article{}, false)

		assert.Contains(t, got, "PUB_DATE: ?\n")
		assert.Contains(t, got, "LAST_UPDATE: ?\n")
		assert.Contains(t, got, "LINKS: \n--")
	})

	t.Run("full report includes charset and metadata", func(t *testing.T) {
		t.Parallel()

		a := &presscut.Article{
			Charset:  "utf-8",
			Metadata: map[string]map[string]any{"NewsArticle": {"headline": "H"}},
		}

		got := presscut.FormatArticle(a, true)

		assert.Contains(t, got, "\nCHARSET: utf-8\n")
		assert.Contains(t, got, "METADATA:\n{\n  \"NewsArticle\": {\n    \"headline\": \"H\"\n  }\n}")
	})
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()

	t.Run("lists recorded errors", func(t *testing.T) {
		t.Parallel()

		a := &presscut.Article{Errors: []presscut.DataError{presscut.MissingAuthor, presscut.MissingURL}}

		assert.Equal(t, "ERRORS:\n  MISSING_AUTHOR\n  MISSING_URL\n", presscut.FormatErrors(a))
	})

	t.Run("returns empty string without errors", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, presscut.FormatErrors(&presscut.Article{}))
	})
}
