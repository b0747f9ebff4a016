package mock

import (
	"context"

	"github.com/fwojciec/sitevoice"
)

var _ sitevoice.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitevoice.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
