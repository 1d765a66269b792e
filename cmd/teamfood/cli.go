package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/teamfood"
)

// Dependencies holds all services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   teamfood.Fetcher
	Extractor teamfood.MenuExtractor
	Writer    teamfood.MenuWriter
}

// CLI defines the command-line interface structure for Kong.
// Flags left at their zero value do not override the config file.
type CLI struct {
	Config    string        `short:"c" type:"path" help:"YAML config file"`
	URL       string        `arg:"" optional:"" help:"Menu page URL (default: TeamFood weekly menu)"`
	Output    string        `short:"o" type:"path" help:"Menu file to write (default: TeamFood Speiseplan.txt)"`
	AnchorID  string        `name:"anchor" help:"Id of the element holding the week tables"`
	Timeout   time.Duration `short:"t" help:"Fetch timeout (default: 10s)"`
	UserAgent string        `name:"user-agent" help:"User-Agent header for HTTP fetches"`
	Strict    bool          `help:"Fail on week headers without a start and end date instead of skipping them"`
	Print     bool          `short:"p" help:"Print the menu to stdout"`
	Render    bool          `help:"Fetch with a headless browser (requires Chrome)"`
	Verbose   bool          `short:"v" help:"Log every step"`
}

// apply overrides cfg with the flags that were set.
func (c *CLI) apply(cfg *Config) {
	if c.URL != "" {
		cfg.URL = c.URL
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.AnchorID != "" {
		cfg.AnchorID = c.AnchorID
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	cfg.Strict = cfg.Strict || c.Strict
	cfg.Print = cfg.Print || c.Print
	cfg.Render = cfg.Render || c.Render
	cfg.Verbose = cfg.Verbose || c.Verbose
}
