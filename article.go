package presscut

import (
	"context"
	"time"
)

// Placeholders stored in place of required fields that could not be found.
var (
	PlaceholderText = "[MISSING]"
	PlaceholderDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DataError names a required field that was missing from a page.
type DataError string

// Data errors recorded on an Article.
const (
	MissingURL     DataError = "MISSING_URL"
	MissingTitle   DataError = "MISSING_TITLE"
	MissingAuthor  DataError = "MISSING_AUTHOR"
	MissingPubDate DataError = "MISSING_PUB_DATE"
)

// Article is the record produced from a single saved page.
type Article struct {
	ID          string    `json:"id"`
	Publisher   Publisher `json:"publisher"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PubDate     time.Time `json:"pubDate"`
	LastUpdated time.Time `json:"lastUpdated"`
	Charset     string    `json:"charset"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`

	// Links holds the hrefs of in-body links, in order. The n-th entry
	// corresponds to the [L<n>] marker in Content.
	Links []string `json:"links"`

	// Metadata holds the structured-data payloads keyed by declared type.
	Metadata map[string]map[string]any `json:"metadata"`

	// Source names the wire service or outlet the text was taken from.
	Source string `json:"source"`

	Errors []DataError `json:"errors"`

	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasError reports whether e was recorded for the article.
func (a *Article) HasError(e DataError) bool {
	for _, x := range a.Errors {
		if x == e {
			return true
		}
	}
	return false
}

// AddError records e once.
func (a *Article) AddError(e DataError) {
	if !a.HasError(e) {
		a.Errors = append(a.Errors, e)
	}
}

// Verify replaces missing required fields with placeholders and records a
// DataError for each. It returns the errors added by this call.
func (a *Article) Verify() []DataError {
	var added []DataError
	mark := func(e DataError) {
		if !a.HasError(e) {
			added = append(added, e)
		}
		a.AddError(e)
	}
	if isBlank(a.URL) {
		a.URL = PlaceholderText
		mark(MissingURL)
	}
	if isBlank(a.Title) {
		a.Title = PlaceholderText
		mark(MissingTitle)
	}
	if isBlank(a.Author) {
		a.Author = PlaceholderText
		mark(MissingAuthor)
	}
	if a.PubDate.IsZero() {
		a.PubDate = PlaceholderDate
		mark(MissingPubDate)
	}
	return added
}

// Validate returns an error if the article cannot be stored.
func (a *Article) Validate() error {
	if a.Publisher == "" {
		return Errorf(EINVALID, "article publisher required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// Updated reports whether the article was updated on a later day than it
// was published.
func (a *Article) Updated() bool {
	if a.LastUpdated.IsZero() || a.PubDate.IsZero() {
		return false
	}
	return a.LastUpdated.Format(time.DateOnly) != a.PubDate.Format(time.DateOnly)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// ArticleService represents a service for managing stored articles.
type ArticleService interface {
	// CreateArticle stores a new article and its links.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article and its links.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID          *string    `json:"id"`
	Publisher   *Publisher `json:"publisher"`
	URL         *string    `json:"url"`
	ContentHash *string    `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportWriter persists the text report of a parsed article.
type ReportWriter interface {
	// WriteArticle writes the report under name. An empty name is derived
	// from the article URL.
	WriteArticle(ctx context.Context, name string, article *Article) error
}
