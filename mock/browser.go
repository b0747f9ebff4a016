package mock

import (
	"context"
	"time"

	"github.com/fwojciec/sitevoice"
)

var _ sitevoice.Browser = (*Browser)(nil)

// Browser is a mock implementation of sitevoice.Browser.
type Browser struct {
	OpenFn  func(ctx context.Context, url string) (sitevoice.BrowserPage, error)
	CloseFn func() error
}

func (b *Browser) Open(ctx context.Context, url string) (sitevoice.BrowserPage, error) {
	return b.OpenFn(ctx, url)
}

func (b *Browser) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}

var _ sitevoice.BrowserPage = (*BrowserPage)(nil)

// BrowserPage is a mock implementation of sitevoice.BrowserPage.
type BrowserPage struct {
	WaitSettleFn func(ctx context.Context, delay time.Duration) error
	ElementsFn   func(selector string) ([]sitevoice.BrowserElement, error)
	CloseFn      func() error
}

func (p *BrowserPage) WaitSettle(ctx context.Context, delay time.Duration) error {
	if p.WaitSettleFn == nil {
		return nil
	}
	return p.WaitSettleFn(ctx, delay)
}

func (p *BrowserPage) Elements(selector string) ([]sitevoice.BrowserElement, error) {
	return p.ElementsFn(selector)
}

func (p *BrowserPage) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

var _ sitevoice.BrowserElement = (*BrowserElement)(nil)

// BrowserElement is a mock implementation of sitevoice.BrowserElement.
type BrowserElement struct {
	WaitVisibleFn func(timeout time.Duration) error
	TextFn        func() (string, error)
	TextOfFn      func(selector string) (string, error)
}

func (e *BrowserElement) WaitVisible(timeout time.Duration) error {
	if e.WaitVisibleFn == nil {
		return nil
	}
	return e.WaitVisibleFn(timeout)
}

func (e *BrowserElement) Text() (string, error) {
	return e.TextFn()
}

func (e *BrowserElement) TextOf(selector string) (string, error) {
	if e.TextOfFn == nil {
		return "", nil
	}
	return e.TextOfFn(selector)
}
