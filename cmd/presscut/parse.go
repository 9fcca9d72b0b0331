package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/fs"
	"golang.org/x/sync/errgroup"
)

// parseResult is the outcome of parsing one saved page.
type parseResult struct {
	path    string
	article *presscut.Article
	err     error
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	var forced presscut.Parser
	if c.Publisher != "" {
		p, err := presscut.ParsePublisher(c.Publisher)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presscut.ErrorMessage(err))
			return err
		}
		if forced = deps.Registry.Get(p); forced == nil {
			fmt.Fprintf(deps.Stderr, "error: no parser for publisher %q\n", p)
			return presscut.Errorf(presscut.ENOTFOUND, "no parser for publisher %q", p)
		}
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]parseResult, len(c.Files))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, path := range c.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = parseResult{path: path, err: err}
				return nil
			}
			results[i] = c.parseFile(deps, forced, path)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.path, errorText(r.err))
			continue
		}
		if err := c.emit(deps, i, r); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.path, errorText(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(c.Files))
	}
	return nil
}

func (c *ParseCmd) parseFile(deps *Dependencies, forced presscut.Parser, path string) parseResult {
	text, encoding, err := deps.ReadFile(path)
	if err != nil {
		return parseResult{path: path, err: err}
	}

	parser := forced
	if parser == nil {
		parser = deps.Registry.GetForHTML(text)
	}

	article, err := parser.Parse(text)
	if err != nil {
		return parseResult{path: path, err: err}
	}
	if article.Charset == "" {
		article.Charset = encoding
	}
	return parseResult{path: path, article: article}
}

// emit hands a finished article to the report writer, the archive and,
// when no report directory is set, standard output.
func (c *ParseCmd) emit(deps *Dependencies, i int, r parseResult) error {
	if deps.Reports != nil {
		if err := deps.Reports.WriteArticle(deps.Ctx, reportName(r.path), r.article); err != nil {
			return err
		}
	} else {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprint(deps.Stdout, fs.FormatReport(r.article, c.Full))
	}

	if c.Save && deps.Articles != nil {
		if err := deps.Articles.CreateArticle(deps.Ctx, r.article); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %s as %s\n", r.path, r.article.ID)
	}
	return nil
}

// reportName names the report after the saved page: articles/x.html
// becomes x.
func reportName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// errorText renders application errors by message and drift errors with
// their code, so markup changes stand out.
func errorText(err error) string {
	switch presscut.ErrorCode(err) {
	case presscut.EINTERNAL:
		return err.Error()
	case presscut.EDRIFT:
		return "markup changed: " + presscut.ErrorMessage(err)
	default:
		return presscut.ErrorMessage(err)
	}
}
