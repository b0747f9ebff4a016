package mock

import (
	"context"

	"github.com/fwojciec/sitevoice"
)

var _ sitevoice.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of sitevoice.ResultService.
type ResultService struct {
	CreateResultFn   func(ctx context.Context, result *sitevoice.ScrapeResult) error
	FindResultByIDFn func(ctx context.Context, id string) (*sitevoice.ScrapeResult, error)
	FindResultsFn    func(ctx context.Context, filter sitevoice.ResultFilter) ([]*sitevoice.ScrapeResult, error)
	DeleteResultFn   func(ctx context.Context, id string) error
}

func (s *ResultService) CreateResult(ctx context.Context, result *sitevoice.ScrapeResult) error {
	return s.CreateResultFn(ctx, result)
}

func (s *ResultService) FindResultByID(ctx context.Context, id string) (*sitevoice.ScrapeResult, error) {
	return s.FindResultByIDFn(ctx, id)
}

func (s *ResultService) FindResults(ctx context.Context, filter sitevoice.ResultFilter) ([]*sitevoice.ScrapeResult, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	return s.DeleteResultFn(ctx, id)
}

var _ sitevoice.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of sitevoice.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *sitevoice.ScrapeResult) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *sitevoice.ScrapeResult) error {
	return w.WriteResultFn(ctx, result)
}
