package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/sitevoice"
)

// MaxStoryPages caps how many customer-story pages are fetched per
// scrape, keeping runaway sitemaps from dominating a run.
const MaxStoryPages = 10

// storyURLs returns the customer-story URLs to probe for a site: the
// conventional relative paths resolved against the base, supplemented by
// sitemap discovery when a source is configured. The list is
// deduplicated, excludes the base page itself, and is capped at
// MaxStoryPages. Discovery failures are swallowed; probing conventional
// paths proceeds regardless.
func (s *Scraper) storyURLs(ctx context.Context, base *url.URL) []string {
	var urls []string
	for _, path := range sitevoice.StoryPaths {
		u := *base
		u.Path = path
		u.RawQuery = ""
		u.Fragment = ""
		urls = append(urls, u.String())
	}

	if s.Stories != nil {
		if extra, err := s.Stories.DiscoverStoryURLs(ctx, base.String()); err == nil {
			urls = append(urls, extra...)
		}
	}

	seen := map[string]bool{base.String(): true}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
		if len(out) >= MaxStoryPages {
			break
		}
	}
	return out
}
