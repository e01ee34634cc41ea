package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/goquery"
	"github.com/fwojciec/jobscout/htmltomarkdown"
	jobhttp "github.com/fwojciec/jobscout/http"
	"github.com/fwojciec/jobscout/rod"
	jobslog "github.com/fwojciec/jobscout/slog"
	"github.com/fwojciec/jobscout/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
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
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscout"),
		kong.Description("Scrape Ukrainian job boards into a local database"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscout --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Listing supported sites needs no database.
	if kongCtx.Command() == "sites" {
		return kongCtx.Run(deps)
	}

	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JOBSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Jobs = jobslog.NewLoggingJobService(sqlite.NewJobService(m.DB), logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewPage = func(static bool) (jobscout.Page, error) {
		if static {
			return goquery.NewPage(jobslog.NewLoggingFetcher(jobhttp.NewFetcher(), logger)), nil
		}
		var opts []rod.Option
		if bin := os.Getenv("JOBSCOUT_CHROME"); bin != "" {
			opts = append(opts, rod.WithManagerOptions(rod.WithBrowserBin(bin)))
		}
		fetcher, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed (or set JOBSCOUT_CHROME), or pass --static")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return goquery.NewPage(jobslog.NewLoggingFetcher(fetcher, logger)), nil
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("JOBSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobs.db"
	}
	return filepath.Join(home, ".jobscout", "jobs.db")
}
