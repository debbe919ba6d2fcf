package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/chat"
	"github.com/fwojciec/sitechat/fs"
	sitechathttp "github.com/fwojciec/sitechat/http"
	"github.com/fwojciec/sitechat/image"
	sitechatslog "github.com/fwojciec/sitechat/slog"
	"github.com/fwojciec/sitechat/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real environment variables win.
	_ = godotenv.Load()

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
	// Listener overrides --addr when set. Set before calling Run().
	Listener net.Listener

	// SQLite database, opened only when --db is given.
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

// Run executes the CLI with the given arguments. It blocks until ctx is
// cancelled and the server has shut down.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Listener: m.Listener,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitechat"),
		kong.Description("Serve the website assistant over HTTP."),
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

	var index sitechat.IndexReader = fs.NewIndexFile(cli.Index)
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Run siteindex with --db first, or drop --db to read %s\n", cli.Index)
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		index = sqlite.NewDocumentStore(m.DB)
	}

	assistant := chat.NewAssistant(
		sitechatslog.NewLoggingIndexReader(index, deps.Logger),
		image.NewValidator(),
		chat.WithLogger(deps.Logger),
	)
	deps.Server = sitechathttp.NewServer(assistant, sitechathttp.WithLogger(deps.Logger))

	return kongCtx.Run(deps)
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
