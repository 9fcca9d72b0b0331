package trafilatura_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements presscut.Extractor at compile time.
var _ presscut.Extractor = (*trafilatura.Extractor)(nil)

const articlePage = `<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>Sejm przyjął ustawę o mediach | Gazeta Lokalna</title>
<meta property="og:title" content="Sejm przyjął ustawę o mediach">
<meta name="author" content="Anna Kowalska">
<meta name="description" content="Posłowie zagłosowali nad projektem po burzliwej debacie.">
<meta property="article:published_time" content="2024-03-05T10:00:00+01:00">
<link rel="canonical" href="https://gazeta.example.pl/kraj/sejm-ustawa">
</head>
<body>
<nav><a href="/">Strona główna</a><a href="/kraj">Kraj</a></nav>
<article>
<h1>Sejm przyjął ustawę o mediach</h1>
<p>Posłowie zagłosowali w piątek nad projektem ustawy, który od miesięcy budził spory w koalicji rządzącej i wśród dziennikarzy.</p>
<p>Za przyjęciem ustawy opowiedziało się 240 posłów, przeciw było 198, a od głosu wstrzymało się dwóch. Projekt trafi teraz do Senatu.</p>
<p>Więcej o sprawie pisaliśmy <a href="/kraj/debata">w relacji z debaty</a>, która trwała do późnej nocy.</p>
</article>
<aside>Najczęściej czytane</aside>
<footer>Copyright 2024 Gazeta Lokalna</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "zagłosowali w piątek")
		assert.Contains(t, result.ContentHTML, "trafi teraz do Senatu")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024")
	})

	t.Run("keeps links in content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<a ")
	})

	t.Run("extracts metadata", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Sejm przyjął ustawę o mediach")
		assert.Contains(t, result.Author, "Anna Kowalska")
		assert.Contains(t, result.Description, "burzliwej debacie")
		assert.Equal(t, "https://gazeta.example.pl/kraj/sejm-ustawa", result.URL)
		assert.Equal(t, 2024, result.PublishedAt.Year())
	})

	t.Run("uses original URL when page has none", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("https://gazeta.example.pl/swiat/wybory")
		require.NoError(t, err)
		ext := &trafilatura.Extractor{OriginalURL: u}

		result, err := ext.Extract(`<html><head><title>Wybory</title></head><body><article>
<p>Wyniki wyborów ogłoszono późnym wieczorem, a frekwencja okazała się najwyższa od trzydziestu lat.</p>
<p>Komisja wyborcza potwierdziła, że liczenie głosów przebiegło bez zakłóceń w całym kraju.</p>
</article></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "https://gazeta.example.pl/swiat/wybory", result.URL)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("  ")

		assert.Equal(t, presscut.EINVALID, presscut.ErrorCode(err))
	})
}
