// Package fs writes article reports to the file system.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/presscut"
)

// CurrentName is the report name that always holds the latest article.
const CurrentName = "current"

// URLToName derives a report name from an article URL: the last path
// segment without its extension, or the host for the site root.
// Example: https://wiez.pl/2023/03/06/karol-wojtyla/ → karol-wojtyla
func URLToName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", presscut.Errorf(presscut.EINVALID, "cannot derive report name from %q", rawURL)
	}

	p := strings.Trim(u.Path, "/")
	if p == "" {
		return u.Host, nil
	}

	name := path.Base(p)
	if ext := path.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name, nil
}

// Ensure Writer implements presscut.ReportWriter at compile time.
var _ presscut.ReportWriter = (*Writer)(nil)

// Writer writes article reports as text files to a directory. Every report
// is written twice: under its own name and as current.txt.
type Writer struct {
	baseDir string
	full    bool
}

// NewWriter creates a new Writer that writes to the given base directory.
// full selects the long report with charset and metadata.
func NewWriter(baseDir string, full bool) *Writer {
	return &Writer{baseDir: baseDir, full: full}
}

// WriteArticle writes the report of article to <dir>/<name>.txt and
// <dir>/current.txt. An empty name is derived from the article URL.
func (w *Writer) WriteArticle(ctx context.Context, name string, article *presscut.Article) error {
	if name == "" {
		var err error
		if name, err = URLToName(article.URL); err != nil {
			return err
		}
	}
	if name == CurrentName || strings.ContainsAny(name, `/\`) {
		return presscut.Errorf(presscut.EINVALID, "invalid report name %q", name)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := []byte(FormatReport(article, w.full))
	for _, n := range []string{name, CurrentName} {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeFileAtomic(filepath.Join(w.baseDir, n+".txt"), content); err != nil {
			return err
		}
	}
	return nil
}

// FormatReport formats the article report followed by the list of
// missing fields, if any.
func FormatReport(article *presscut.Article, full bool) string {
	var b strings.Builder
	b.WriteString(presscut.FormatArticle(article, full))
	b.WriteString("\n")
	if len(article.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString(presscut.FormatErrors(article))
	}
	return b.String()
}

// writeFileAtomic writes to a temporary file next to path and renames it
// into place, so readers never see a partial report.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
