package goquery_test

import (
	"testing"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/goquery"
	"github.com/fwojciec/presscut/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Registry implements presscut.ParserRegistry at compile time.
var _ presscut.ParserRegistry = (*goquery.Registry)(nil)

func parserFor(p presscut.Publisher) *mock.Parser {
	return &mock.Parser{PublisherFn: func() presscut.Publisher { return p }}
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns registered parser for publisher", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.Detector{}, parserFor(presscut.PublisherDefault))
		registry.Register(presscut.PublisherWiez, parserFor(presscut.PublisherWiez))

		got := registry.Get(presscut.PublisherWiez)

		require.NotNil(t, got)
		assert.Equal(t, presscut.PublisherWiez, got.Publisher())
	})

	t.Run("returns nil for unregistered publisher", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.Detector{}, parserFor(presscut.PublisherDefault))

		assert.Nil(t, registry.Get(presscut.PublisherOnet))
	})
}

func TestRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns parser for detected publisher", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectFn: func(html string) presscut.Publisher {
				return presscut.PublisherOnet
			},
		}
		registry := goquery.NewRegistry(detector, parserFor(presscut.PublisherDefault))
		registry.Register(presscut.PublisherOnet, parserFor(presscut.PublisherOnet))

		got := registry.GetForHTML("<html>onet</html>")

		require.NotNil(t, got)
		assert.Equal(t, presscut.PublisherOnet, got.Publisher())
	})

	t.Run("returns fallback parser for unknown publisher", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectFn: func(html string) presscut.Publisher {
				return presscut.PublisherDefault
			},
		}
		registry := goquery.NewRegistry(detector, parserFor(presscut.PublisherDefault))

		got := registry.GetForHTML("<html>unknown</html>")

		require.NotNil(t, got)
		assert.Equal(t, presscut.PublisherDefault, got.Publisher())
	})

	t.Run("returns fallback when publisher detected but no parser registered", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectFn: func(html string) presscut.Publisher {
				return presscut.PublisherPAP
			},
		}
		registry := goquery.NewRegistry(detector, parserFor(presscut.PublisherDefault))

		got := registry.GetForHTML("<html>pap</html>")

		require.NotNil(t, got)
		assert.Equal(t, presscut.PublisherDefault, got.Publisher())
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("overwrites existing parser for publisher", func(t *testing.T) {
		t.Parallel()

		first := &mock.Parser{ParseFn: func(string) (*presscut.Article, error) {
			return &presscut.Article{Title: "first"}, nil
		}}
		second := &mock.Parser{ParseFn: func(string) (*presscut.Article, error) {
			return &presscut.Article{Title: "second"}, nil
		}}

		registry := goquery.NewRegistry(&mock.Detector{}, parserFor(presscut.PublisherDefault))
		registry.Register(presscut.PublisherPAP, first)
		registry.Register(presscut.PublisherPAP, second)

		a, err := registry.Get(presscut.PublisherPAP).Parse("")

		require.NoError(t, err)
		assert.Equal(t, "second", a.Title)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice when no parsers registered", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.Detector{}, parserFor(presscut.PublisherDefault))

		assert.Empty(t, registry.List())
	})

	t.Run("returns registered publishers sorted", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(&mock.Detector{}, parserFor(presscut.PublisherDefault))
		registry.Register(presscut.PublisherWyborcza, parserFor(presscut.PublisherWyborcza))
		registry.Register(presscut.PublisherOnet, parserFor(presscut.PublisherOnet))

		assert.Equal(t, []presscut.Publisher{presscut.PublisherOnet, presscut.PublisherWyborcza}, registry.List())
	})
}
