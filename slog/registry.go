package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/presscut"
)

// Ensure LoggingRegistry implements presscut.ParserRegistry.
var _ presscut.ParserRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ParserRegistry with logging for publisher detection.
type LoggingRegistry struct {
	next     presscut.ParserRegistry
	detector presscut.Detector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next presscut.ParserRegistry, detector presscut.Detector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(publisher presscut.Publisher) presscut.Parser {
	return r.next.Get(publisher)
}

// GetForHTML detects the publisher, logs it, and returns the appropriate parser.
func (r *LoggingRegistry) GetForHTML(html string) presscut.Parser {
	begin := time.Now()
	publisher := r.detector.Detect(html)
	publisherName := string(publisher)
	if publisher == presscut.PublisherDefault {
		publisherName = "(unknown)"
	}
	r.logger.Info("publisher detection",
		"publisher", publisherName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(publisher presscut.Publisher, parser presscut.Parser) {
	r.next.Register(publisher, parser)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []presscut.Publisher {
	return r.next.List()
}
