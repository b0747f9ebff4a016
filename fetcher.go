package sitevoice

import (
	"context"
	"time"
)

// PageSnapshot is the raw markup of a fetched page. It is immutable once
// fetched and not retained beyond the extraction pass that consumes it.
type PageSnapshot struct {
	URL       string
	FetchedAt time.Time
	RawMarkup string
}

// Fetcher retrieves raw HTML from URLs.
// An empty 200 response is a valid snapshot, not an error.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the page snapshot.
	// Implementations retry transient failures internally; an error
	// carries the EFETCH code once all attempts are exhausted.
	// The context controls timeout and cancellation across retries.
	Fetch(ctx context.Context, url string) (*PageSnapshot, error)

	// Close releases client resources.
	Close() error
}
