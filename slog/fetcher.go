// Package slog provides logging decorators for sitevoice services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitevoice"
)

// Ensure LoggingFetcher implements sitevoice.Fetcher.
var _ sitevoice.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   sitevoice.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitevoice.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (snap *sitevoice.PageSnapshot, err error) {
	defer func(begin time.Time) {
		var bytes int
		if snap != nil {
			bytes = len(snap.RawMarkup)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
