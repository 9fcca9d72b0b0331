package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/presscut"
)

// Ensure LoggingParser implements presscut.Parser.
var _ presscut.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   presscut.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next presscut.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(html string) (article *presscut.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"publisher", p.next.Publisher(),
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs, "links", len(article.Links), "missing", len(article.Errors))
		}
		attrs = append(attrs, "err", err)
		p.logger.Info("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html)
}

// Publisher delegates to the wrapped parser.
func (p *LoggingParser) Publisher() presscut.Publisher {
	return p.next.Publisher()
}
