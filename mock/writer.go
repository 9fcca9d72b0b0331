package mock

import (
	"context"

	"github.com/fwojciec/presscut"
)

var _ presscut.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of presscut.ReportWriter.
type ReportWriter struct {
	WriteArticleFn func(ctx context.Context, name string, article *presscut.Article) error
}

func (w *ReportWriter) WriteArticle(ctx context.Context, name string, article *presscut.Article) error {
	return w.WriteArticleFn(ctx, name, article)
}
