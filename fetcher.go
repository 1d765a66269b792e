package teamfood

import "context"

// Fetcher retrieves the raw HTML of the menu page.
type Fetcher interface {
	// Fetch performs a single request for url and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
