package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/presscut"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ presscut.ArticleService = (*ArticleService)(nil)

const articleColumns = `id, publisher, url, title, author, pub_date, last_updated, charset,
	description, content, source, metadata, errors, content_hash, created_at`

// ArticleService implements presscut.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle stores a new article and its links in one transaction.
func (s *ArticleService) CreateArticle(ctx context.Context, article *presscut.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	metadata := "{}"
	if len(article.Metadata) > 0 {
		var err error
		if metadata, err = sonic.MarshalString(article.Metadata); err != nil {
			return presscut.Errorf(presscut.EINVALID, "unserializable metadata: %v", err)
		}
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, string(article.Publisher), article.URL, article.Title, article.Author,
		formatTime(article.PubDate), formatTime(article.LastUpdated), article.Charset,
		article.Description, article.Content, article.Source, metadata,
		joinErrors(article.Errors), article.ContentHash, article.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, link := range article.Links {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO article_links (article_id, position, url) VALUES (?, ?, ?)",
			article.ID, i+1, link); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*presscut.Article, error) {
	article, err := scanArticle(s.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, presscut.Errorf(presscut.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	if article.Links, err = s.findLinks(ctx, article.ID); err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter presscut.ArticleFilter) ([]*presscut.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Publisher != nil {
		query.WriteString(" AND publisher = ?")
		args = append(args, string(*filter.Publisher))
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*presscut.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Release the single connection before querying links.
	rows.Close()

	for _, article := range articles {
		if article.Links, err = s.findLinks(ctx, article.ID); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// DeleteArticle permanently removes an article and its links.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return presscut.Errorf(presscut.ENOTFOUND, "article not found")
	}

	return nil
}

func (s *ArticleService) findLinks(ctx context.Context, articleID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT url FROM article_links WHERE article_id = ? ORDER BY position ASC", articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []string
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*presscut.Article, error) {
	var a presscut.Article
	var publisher, pubDate, lastUpdated, metadata, errs, createdAt string

	if err := row.Scan(&a.ID, &publisher, &a.URL, &a.Title, &a.Author, &pubDate, &lastUpdated,
		&a.Charset, &a.Description, &a.Content, &a.Source, &metadata, &errs,
		&a.ContentHash, &createdAt); err != nil {
		return nil, err
	}
	a.Publisher = presscut.Publisher(publisher)
	a.Errors = splitErrors(errs)

	var err error
	if a.PubDate, err = parseOptionalTime(pubDate, "pub_date"); err != nil {
		return nil, err
	}
	if a.LastUpdated, err = parseOptionalTime(lastUpdated, "last_updated"); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if metadata != "" && metadata != "{}" {
		if err := sonic.UnmarshalString(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("failed to parse metadata: %w", err)
		}
	}
	return &a, nil
}

func joinErrors(errs []presscut.DataError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = string(e)
	}
	return strings.Join(parts, ",")
}

func splitErrors(s string) []presscut.DataError {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	errs := make([]presscut.DataError, len(parts))
	for i, p := range parts {
		errs[i] = presscut.DataError(p)
	}
	return errs
}
