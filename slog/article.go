package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/presscut"
)

// Ensure LoggingArticleService implements presscut.ArticleService.
var _ presscut.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with logging.
type LoggingArticleService struct {
	next   presscut.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next presscut.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) CreateArticle(ctx context.Context, article *presscut.Article) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create article",
			"url", article.URL,
			"id", article.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateArticle(ctx, article)
}

// FindArticleByID delegates to the wrapped service.
func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (*presscut.Article, error) {
	return s.next.FindArticleByID(ctx, id)
}

// FindArticles delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticles(ctx context.Context, filter presscut.ArticleFilter) (articles []*presscut.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find articles",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticles(ctx, filter)
}

// DeleteArticle delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) DeleteArticle(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete article",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteArticle(ctx, id)
}
