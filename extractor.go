package sitevoice

import "context"

// PageContent holds main-content metadata extracted from raw HTML by a
// boilerplate-removing extractor. Used as a fallback when keyword-based
// section matching finds nothing.
type PageContent struct {
	Title       string
	Description string
	Text        string
}

// ContentExtractor extracts main content and metadata from HTML pages.
type ContentExtractor interface {
	Extract(rawMarkup string) (*PageContent, error)
}

// StoryURLSource discovers customer-story URLs for a site beyond the
// conventional relative paths (e.g. from its sitemap).
type StoryURLSource interface {
	DiscoverStoryURLs(ctx context.Context, baseURL string) ([]string, error)
}

// DomainLimiter rate-limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
