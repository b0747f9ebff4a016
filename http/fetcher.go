// Package http provides an HTTP-based implementation of sitevoice.Fetcher
// with retry and exponential backoff, plus sitemap-based discovery of
// customer-story URLs.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sitevoice"
)

// Defaults for the retrying fetcher.
const (
	// DefaultTimeout bounds a single fetch attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the total number of fetch attempts.
	DefaultMaxRetries = 3

	// DefaultBackoffUnit is the base delay unit; the delay before
	// attempt n+1 is backoffUnit * 2^n.
	DefaultBackoffUnit = time.Second

	// DefaultUserAgent is a browser-like User-Agent. Many marketing
	// sites serve degraded or empty markup to obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Ensure Fetcher implements sitevoice.Fetcher at compile time.
var _ sitevoice.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML over HTTP with retries and exponential
// backoff. It does not execute JavaScript; dynamic content is the rod
// package's job.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxRetries  int
	backoffUnit time.Duration
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxRetries sets the total number of fetch attempts.
// Defaults to DefaultMaxRetries.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) {
		f.maxRetries = n
	}
}

// WithBackoffUnit sets the base backoff delay unit. Useful for tests that
// should not wait on real delays.
func WithBackoffUnit(d time.Duration) Option {
	return func(f *Fetcher) {
		f.backoffUnit = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new retrying HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultTimeout,
		maxRetries:  DefaultMaxRetries,
		backoffUnit: DefaultBackoffUnit,
		userAgent:   DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{}

	return f
}

// Fetch issues a GET for the URL, retrying transient failures with
// exponential backoff. A non-2xx status counts as a failure; an empty
// 200 body is a valid snapshot. After exhausting all attempts the
// returned error carries the EFETCH code.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
	var lastErr error

	for attempt := 0; attempt < f.maxRetries; attempt++ {
		if attempt > 0 {
			delay := f.backoffUnit * (1 << (attempt - 1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		snapshot, err := f.fetchOnce(ctx, url)
		if err == nil {
			return snapshot, nil
		}
		lastErr = err

		// The retry loop must respect the caller's deadline rather
		// than retrying indefinitely.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s: %v", url, lastErr)
}

// fetchOnce performs a single GET attempt bounded by the per-attempt
// timeout.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &sitevoice.PageSnapshot{
		URL:       url,
		FetchedAt: time.Now(),
		RawMarkup: string(body),
	}, nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
