package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/presscut"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Registry presscut.ParserRegistry
	Articles presscut.ArticleService
	Reports  presscut.ReportWriter

	// ReadFile returns the decoded text of a saved page and the name of
	// the encoding it was stored in.
	ReadFile func(path string) (string, string, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log every tag the scanner opens and closes"`
	DB      string `name:"db" env:"PRESSCUT_DB" help:"Archive database path"`

	Parse      ParseCmd      `cmd:"" help:"Extract articles from saved pages"`
	Publishers PublishersCmd `cmd:"" help:"List supported publishers"`
	List       ListCmd       `cmd:"" help:"List archived articles"`
	Show       ShowCmd       `cmd:"" help:"Print the report of an archived article"`
	Delete     DeleteCmd     `cmd:"" help:"Delete an archived article"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files       []string `arg:"" name:"file" help:"Saved article pages"`
	Publisher   string   `short:"p" help:"Use this publisher's rules instead of detecting it"`
	Full        bool     `short:"f" help:"Include charset and metadata in reports"`
	Out         string   `short:"o" help:"Write reports to <out>/<name>.txt and <out>/current.txt"`
	Save        bool     `short:"s" help:"Store parsed articles in the archive"`
	Rules       string   `type:"existingfile" help:"YAML file with extra ignore and suppress rules"`
	Fallback    string   `enum:"none,trafilatura,readability" default:"none" help:"Extractor for pages of unknown publishers (none, trafilatura, readability)"`
	Concurrency int      `short:"c" default:"4" help:"Number of pages parsed at once"`
}

// PublishersCmd is the "publishers" subcommand.
type PublishersCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Publisher string `short:"p" help:"Only list articles of this publisher"`
	Limit     int    `short:"n" default:"20" help:"Maximum number of articles"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Article ID"`
	Full bool   `short:"f" help:"Include charset and metadata"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
