package mock

import (
	"context"

	"github.com/fwojciec/sitevoice"
)

var _ sitevoice.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of sitevoice.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(rawMarkup string) (*sitevoice.PageContent, error)
}

func (e *ContentExtractor) Extract(rawMarkup string) (*sitevoice.PageContent, error) {
	return e.ExtractFn(rawMarkup)
}

var _ sitevoice.StoryURLSource = (*StoryURLSource)(nil)

// StoryURLSource is a mock implementation of sitevoice.StoryURLSource.
type StoryURLSource struct {
	DiscoverStoryURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *StoryURLSource) DiscoverStoryURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverStoryURLsFn(ctx, baseURL)
}

var _ sitevoice.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitevoice.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
