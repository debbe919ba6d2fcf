package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/fs"
	"github.com/fwojciec/sitechat/goquery"
	"github.com/fwojciec/sitechat/htmltomarkdown"
	"github.com/fwojciec/sitechat/readability"
	"github.com/fwojciec/sitechat/regexp"
	sitechatslog "github.com/fwojciec/sitechat/slog"
	"github.com/fwojciec/sitechat/sqlite"
	"github.com/fwojciec/sitechat/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite mirror, opened only when --db is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
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
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteindex"),
		kong.Description("Build the page index used by the website assistant."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if slices.ContainsFunc(args, isHelpFlag) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	extractor, err := NewExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	indexes := []sitechat.IndexWriter{
		sitechatslog.NewLoggingIndexWriter(fs.NewIndexFile(cli.Out), cli.Out, deps.Logger),
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SITECHAT_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		store := &changeLoggingStore{store: sqlite.NewDocumentStore(m.DB), logger: deps.Logger}
		indexes = append(indexes, sitechatslog.NewLoggingIndexWriter(store, cli.DB, deps.Logger))
	}

	deps.Crawler = &crawl.Crawler{
		Extractor:   sitechatslog.NewLoggingExtractor(extractor, deps.Logger),
		Indexes:     indexes,
		Concurrency: cli.Concurrency,
	}

	return kongCtx.Run(deps)
}

// changeLoggingStore logs how many pages changed since the generation
// already in the database, then replaces it.
type changeLoggingStore struct {
	store  *sqlite.DocumentStore
	logger *slog.Logger
}

func (s *changeLoggingStore) WriteIndex(ctx context.Context, docs []*sitechat.Document) error {
	changed, err := s.store.ChangedPaths(ctx, docs)
	if err != nil {
		return err
	}
	if err := s.store.WriteIndex(ctx, docs); err != nil {
		return err
	}
	s.logger.Info("pages changed", "count", len(changed))
	for _, path := range changed {
		s.logger.Debug("changed page", "path", path)
	}
	return nil
}

// Extractor names accepted by --extractor.
const (
	ExtractorRegexp      = "regexp"
	ExtractorGoquery     = "goquery"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
	ExtractorMarkdown    = "markdown"
)

// NewExtractor returns the extractor registered under name.
func NewExtractor(name string) (sitechat.Extractor, error) {
	switch name {
	case ExtractorRegexp, "":
		return regexp.NewExtractor(), nil
	case ExtractorGoquery:
		return goquery.NewExtractor(), nil
	case ExtractorReadability:
		return readability.NewExtractor(), nil
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor(), nil
	case ExtractorMarkdown:
		return htmltomarkdown.NewExtractor(), nil
	default:
		return nil, sitechat.Errorf(sitechat.EINVALID, "unknown extractor %q", name)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isHelpFlag(arg string) bool {
	return arg == "--help" || arg == "-h" || arg == "help"
}
