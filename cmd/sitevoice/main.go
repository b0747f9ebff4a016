package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/crawl"
	"github.com/fwojciec/sitevoice/fs"
	svhttp "github.com/fwojciec/sitevoice/http"
	"github.com/fwojciec/sitevoice/rod"
	svslog "github.com/fwojciec/sitevoice/slog"
	"github.com/fwojciec/sitevoice/sqlite"
	"github.com/fwojciec/sitevoice/trafilatura"
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
	ResultService sitevoice.ResultService
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
		kong.Name("sitevoice"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitevoice --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEVOICE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ResultService = sqlite.NewResultService(m.DB)
	deps.DB = m.DB
	deps.Results = m.ResultService

	if cmd == "scrape" {
		if cli.Scrape.Out != "" {
			deps.Writer = fs.NewResultWriter(cli.Scrape.Out)
		}

		var fetcher sitevoice.Fetcher = svhttp.NewFetcher(
			svhttp.WithTimeout(cli.Scrape.Timeout),
			svhttp.WithMaxRetries(cli.Scrape.Retries),
		)

		var browser sitevoice.Browser
		if !cli.Scrape.NoDynamic {
			b, err := rod.NewBrowser()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --no-dynamic")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			browser = b
		}

		if cli.Scrape.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = svslog.NewLoggingFetcher(fetcher, logger)
			if browser != nil {
				browser = svslog.NewLoggingBrowser(browser, logger)
			}
		}
		defer fetcher.Close()
		if browser != nil {
			defer browser.Close()
		}

		deps.Scraper = &crawl.Scraper{
			Fetcher:        fetcher,
			Browser:        browser,
			Content:        trafilatura.NewExtractor(),
			Stories:        svhttp.NewSitemapService(nil),
			Limiter:        crawl.NewDomainLimiter(1.0),
			Concurrency:    cli.Scrape.Concurrency,
			SettleDelay:    cli.Scrape.Settle,
			VisibilityWait: cli.Scrape.VisibilityWait,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SITEVOICE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitevoice.db"
	}
	dir := filepath.Join(home, ".sitevoice")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitevoice.db")
}
