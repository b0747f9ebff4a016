package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitevoice"
)

// Ensure LoggingBrowser implements sitevoice.Browser.
var _ sitevoice.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging of page opens.
type LoggingBrowser struct {
	next   sitevoice.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next sitevoice.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open logs the URL being rendered and delegates to the wrapped browser.
func (b *LoggingBrowser) Open(ctx context.Context, url string) (page sitevoice.BrowserPage, err error) {
	defer func(begin time.Time) {
		b.logger.Info("render",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Open(ctx, url)
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}
