package keyterms

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
