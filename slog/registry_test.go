package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/mock"
	pcslog "github.com/fwojciec/presscut/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("logs detected publisher with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockParser := &mock.Parser{}
		inner := &mock.ParserRegistry{
			GetForHTMLFn: func(html string) presscut.Parser {
				return mockParser
			},
		}
		detector := &mock.Detector{
			DetectFn: func(html string) presscut.Publisher {
				return presscut.PublisherWiez
			},
		}

		registry := pcslog.NewLoggingRegistry(inner, detector, logger)
		parser := registry.GetForHTML("<html>wiez</html>")

		assert.Equal(t, mockParser, parser)
		output := buf.String()
		assert.Contains(t, output, "publisher detection")
		assert.Contains(t, output, "publisher=wiez")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown publisher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ParserRegistry{
			GetForHTMLFn: func(html string) presscut.Parser {
				return &mock.Parser{}
			},
		}
		detector := &mock.Detector{
			DetectFn: func(html string) presscut.Publisher {
				return presscut.PublisherDefault
			},
		}

		registry := pcslog.NewLoggingRegistry(inner, detector, logger)
		registry.GetForHTML("<html>unknown</html>")

		assert.Contains(t, buf.String(), "publisher=(unknown)")
	})
}

func TestLoggingRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockParser := &mock.Parser{}
		inner := &mock.ParserRegistry{
			GetFn: func(publisher presscut.Publisher) presscut.Parser {
				return mockParser
			},
		}

		registry := pcslog.NewLoggingRegistry(inner, nil, logger)
		parser := registry.Get(presscut.PublisherOnet)

		assert.Equal(t, mockParser, parser)
	})
}

func TestLoggingRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var registeredPublisher presscut.Publisher
		var registeredParser presscut.Parser
		mockParser := &mock.Parser{}
		inner := &mock.ParserRegistry{
			RegisterFn: func(publisher presscut.Publisher, parser presscut.Parser) {
				registeredPublisher = publisher
				registeredParser = parser
			},
		}

		registry := pcslog.NewLoggingRegistry(inner, nil, logger)
		registry.Register(presscut.PublisherPAP, mockParser)

		assert.Equal(t, presscut.PublisherPAP, registeredPublisher)
		assert.Equal(t, mockParser, registeredParser)
	})
}

func TestLoggingRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ParserRegistry{
			ListFn: func() []presscut.Publisher {
				return []presscut.Publisher{presscut.PublisherOnet, presscut.PublisherPAP}
			},
		}

		registry := pcslog.NewLoggingRegistry(inner, nil, logger)

		assert.Equal(t, []presscut.Publisher{presscut.PublisherOnet, presscut.PublisherPAP}, registry.List())
	})
}
