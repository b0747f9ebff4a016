package sitevoice

import (
	"context"
	"time"
)

// Browser is the capability boundary around a scriptable headless browser.
// Any browser-automation backend can be substituted without touching the
// extraction logic that runs on top of it.
type Browser interface {
	// Open navigates a fresh page to the URL and returns it once the
	// initial load completes. The caller must Close the page.
	Open(ctx context.Context, url string) (BrowserPage, error)

	// Close releases browser resources, including the underlying
	// browser process. Must be called on every exit path.
	Close() error
}

// BrowserPage is a single navigated browser page.
type BrowserPage interface {
	// WaitSettle blocks for a fixed delay so asynchronously rendered
	// content can appear. It returns early if the context is canceled.
	WaitSettle(ctx context.Context, delay time.Duration) error

	// Elements returns all elements matching the CSS selector.
	Elements(selector string) ([]BrowserElement, error)

	// Close releases the page.
	Close() error
}

// BrowserElement is a handle to one element on a live page.
type BrowserElement interface {
	// WaitVisible blocks until the element becomes visible or the
	// timeout elapses.
	WaitVisible(timeout time.Duration) error

	// Text returns the element's rendered text.
	Text() (string, error)

	// TextOf returns the rendered text of the first descendant matching
	// the CSS selector, or "" when no descendant matches.
	TextOf(selector string) (string, error)
}
