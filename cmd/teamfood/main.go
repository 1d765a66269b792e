package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/teamfood"
	"github.com/fwojciec/teamfood/fs"
	"github.com/fwojciec/teamfood/goquery"
	tfhttp "github.com/fwojciec/teamfood/http"
	"github.com/fwojciec/teamfood/rod"
	tfslog "github.com/fwojciec/teamfood/slog"
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
	// Fetcher replaces the fetcher selected by the config when set.
	Fetcher teamfood.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("teamfood"),
		kong.Description("Fetch the TeamFood weekly menu and save it as a text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" || arg == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if cli.Config != "" {
		if err := LoadConfig(cli.Config, &cfg); err != nil {
			return err
		}
	}
	cli.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Verbose)

	fetcher := m.Fetcher
	if fetcher == nil {
		if fetcher, err = newFetcher(cfg); err != nil {
			return err
		}
	}
	defer fetcher.Close()

	extractorOpts := []goquery.Option{
		goquery.WithAnchorID(cfg.AnchorID),
		goquery.WithLogger(logger),
	}
	if cfg.Strict {
		extractorOpts = append(extractorOpts, goquery.WithStrictHeaders())
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   tfslog.NewLoggingFetcher(fetcher, logger),
		Extractor: tfslog.NewLoggingExtractor(goquery.NewExtractor(extractorOpts...), logger),
		Writer:    tfslog.NewLoggingWriter(fs.NewWriter(cfg.Output), logger),
	}

	cmd := &ScrapeCmd{
		URL:   cfg.URL,
		Print: cfg.Print,
	}
	return cmd.Run(deps)
}

// newFetcher returns the browser fetcher when rendering is requested and
// the plain HTTP fetcher otherwise.
func newFetcher(cfg Config) (teamfood.Fetcher, error) {
	if cfg.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}

	opts := []tfhttp.Option{tfhttp.WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		opts = append(opts, tfhttp.WithUserAgent(cfg.UserAgent))
	}
	return tfhttp.NewFetcher(opts...), nil
}

// newLogger logs warnings and errors by default, everything with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
