package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/crawl"
	"github.com/fwojciec/docgrab/fs"
	"github.com/fwojciec/docgrab/goquery"
	dghttp "github.com/fwojciec/docgrab/http"
	"github.com/fwojciec/docgrab/pdfcpu"
	"github.com/fwojciec/docgrab/rod"
	dgslog "github.com/fwojciec/docgrab/slog"
	"github.com/fwojciec/docgrab/term"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads configuration variables.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docgrab"),
		kong.Description("Download the documents embedded in the child pages of a site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := docgrab.ValidateRootURL(cli.RootURL); err != nil {
		return fmt.Errorf("%s", docgrab.ErrorMessage(err))
	}

	cfg, err := LoadConfig(m.Getenv)
	if err != nil {
		return fmt.Errorf("%s", docgrab.ErrorMessage(err))
	}

	logger := slog.New(charmlog.NewWithOptions(stderr, charmlog.Options{
		Level:           cfg.LogLevel,
		ReportTimestamp: true,
	})).With("run", uuid.NewString())

	session, err := rod.NewSession(rod.WithNavigationTimeout(cfg.NavTimeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer session.Close()

	tab := rod.NewLoggingTab(session, logger)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Collector: dgslog.NewLoggingCollector(&crawl.Collector{
			Tab:     tab,
			Anchors: goquery.NewAnchorExtractor(),
			Settle:  cfg.RootSettle,
		}, logger),
		Locator: dgslog.NewLoggingLocator(&crawl.Locator{
			Tab:         tab,
			Settle:      cfg.PageSettle,
			RateLimiter: crawl.NewDomainLimiter(cfg.Rate),
		}, logger),
		Downloader: dgslog.NewLoggingDownloader(dghttp.NewDownloader(), logger),
		Store:      fs.NewStore(cli.OutputFolder),
		Combiner:   dgslog.NewLoggingCombiner(pdfcpu.NewCombiner(), logger),
		Indicator:  term.NewSpinner(stdout),
		Progress:   term.NewProgressBar(stdout),
	}

	cmd := &GrabCmd{
		RootURL: cli.RootURL,
		Combine: cli.Combine,
	}

	return cmd.Run(deps)
}
