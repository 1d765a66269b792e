package main

import (
	"fmt"

	"github.com/fwojciec/teamfood"
)

// ScrapeCmd fetches the menu page, extracts the weeks and writes the menu
// file. Nothing is written when fetching or extraction fails.
type ScrapeCmd struct {
	URL   string
	Print bool
}

// Run executes the scrape.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", c.URL, err)
	}

	menu, err := deps.Extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extract menu: %w", err)
	}

	if err := deps.Writer.WriteMenu(deps.Ctx, menu); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}

	if c.Print {
		fmt.Fprint(deps.Stdout, teamfood.FormatMenu(menu))
	}
	return nil
}
