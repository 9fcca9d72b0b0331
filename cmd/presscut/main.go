package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/charset"
	"github.com/fwojciec/presscut/extract"
	"github.com/fwojciec/presscut/fs"
	"github.com/fwojciec/presscut/goquery"
	"github.com/fwojciec/presscut/html"
	"github.com/fwojciec/presscut/htmltomarkdown"
	"github.com/fwojciec/presscut/readability"
	pcslog "github.com/fwojciec/presscut/slog"
	"github.com/fwojciec/presscut/sqlite"
	"github.com/fwojciec/presscut/trafilatura"
	"github.com/fwojciec/presscut/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService presscut.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		ReadFile: readFile,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("presscut"),
		kong.Description("Extract article records from saved pages of Polish news publishers."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'presscut --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	var overlay *yaml.Overlay
	if cli.Parse.Rules != "" {
		if overlay, err = yaml.Load(cli.Parse.Rules); err != nil {
			return fmt.Errorf("failed to load rules %q: %w", cli.Parse.Rules, err)
		}
	}
	deps.Registry = newRegistry(overlay, cli.Parse.Fallback, logger)

	if cli.Parse.Out != "" {
		deps.Reports = fs.NewWriter(cli.Parse.Out, cli.Parse.Full)
	}

	if needsArchive(kongCtx.Command(), cli) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PRESSCUT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ArticleService = pcslog.NewLoggingArticleService(sqlite.NewArticleService(m.DB), logger)
		deps.Articles = m.ArticleService
	}

	return kongCtx.Run(deps)
}

// needsArchive reports whether the selected command reads or writes the
// article archive.
func needsArchive(command string, cli *CLI) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "list", "show", "delete":
		return true
	case "parse":
		return cli.Parse.Save
	}
	return false
}

// newRegistry wires a rule-based parser for every supported publisher.
// Pages of unknown publishers go to the default rule table or to a
// generic extractor.
func newRegistry(overlay *yaml.Overlay, fallback string, logger *slog.Logger) presscut.ParserRegistry {
	rulesFor := html.RulesFor
	if overlay != nil {
		rulesFor = overlay.RulesFor
	}

	newParser := func(p presscut.Publisher) presscut.Parser {
		rules := rulesFor(p)
		return pcslog.NewLoggingParser(html.NewParser(rules, html.WithLogger(logger.With("publisher", p))), logger)
	}

	var fallbackParser presscut.Parser
	switch fallback {
	case "trafilatura":
		fallbackParser = pcslog.NewLoggingParser(extract.NewParser(trafilatura.NewExtractor(), htmltomarkdown.NewConverter()), logger)
	case "readability":
		fallbackParser = pcslog.NewLoggingParser(extract.NewParser(readability.NewExtractor(), htmltomarkdown.NewConverter()), logger)
	default:
		fallbackParser = newParser(presscut.PublisherDefault)
	}

	detector := goquery.NewDetector()
	registry := goquery.NewRegistry(detector, fallbackParser)
	for _, p := range presscut.Publishers() {
		if p == presscut.PublisherDefault {
			registry.Register(p, fallbackParser)
			continue
		}
		registry.Register(p, newParser(p))
	}
	return pcslog.NewLoggingRegistry(registry, detector, logger)
}

// readFile reads a saved page and decodes it to UTF-8.
func readFile(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return charset.Decode(data)
}

func defaultDBPath() string {
	if path := os.Getenv("PRESSCUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "presscut.db"
	}
	dir := filepath.Join(home, ".presscut")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "presscut.db")
}
