// Package crawl provides website scraping orchestration.
// It coordinates page fetching, static and dynamic extraction, story-page
// discovery, and assembly of the final scrape result.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of concurrent page scrapes in
// a batch run.
const DefaultConcurrency = 4

// Scraper orchestrates the scraping of a company website. Fetcher is
// required; every other collaborator is optional and its absence simply
// disables the corresponding enrichment.
type Scraper struct {
	Fetcher sitevoice.Fetcher
	Browser sitevoice.Browser
	Content sitevoice.ContentExtractor
	Stories sitevoice.StoryURLSource
	Limiter sitevoice.DomainLimiter

	Concurrency    int
	SettleDelay    time.Duration
	VisibilityWait time.Duration
}

// Scrape fetches the URL and assembles the full scrape result: metadata,
// keyword-matched sections, and testimonials merged from every source.
// A failed primary fetch is fatal; story pages and dynamic rendering are
// best-effort and degrade to empty contributions.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*sitevoice.ScrapeResult, error) {
	if err := sitevoice.ValidateScrapeURL(rawURL); err != nil {
		return nil, err
	}
	base, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, sitevoice.Errorf(sitevoice.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if err := s.wait(ctx, base.Host); err != nil {
		return nil, err
	}
	snap, err := s.Fetcher.Fetch(ctx, base.String())
	if err != nil {
		return nil, err
	}

	page, err := goquery.Parse(snap.RawMarkup)
	if err != nil {
		return nil, sitevoice.Errorf(sitevoice.EINTERNAL, "parsing %s: %v", base, err)
	}

	result := &sitevoice.ScrapeResult{
		URL:             base.String(),
		Timestamp:       snap.FetchedAt,
		Title:           page.Title(),
		MetaDescription: page.MetaDescription(),
		Sections:        page.Sections(),
		Stats:           page.Stats(),
		ValueProps:      page.ValueProps(),
		Images:          page.Images(),
		Links:           page.Links(),
		ContentHash:     ContentHash(snap.RawMarkup),
	}

	static := page.Testimonials()
	embedded := page.EmbeddedTestimonials()

	// Story pages and dynamic rendering are independent and slow; run
	// them side by side. Both swallow their own failures.
	var dynamic, stories []sitevoice.Candidate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dynamic = s.dynamicCandidates(gctx, base.String())
		return nil
	})
	g.Go(func() error {
		stories = s.storyCandidates(gctx, base)
		return nil
	})
	_ = g.Wait()

	result.Testimonials = sitevoice.AggregateTestimonials(static, dynamic, stories, embedded)

	s.backfill(result, snap.RawMarkup)

	return result, nil
}

// dynamicCandidates renders the page in a browser and extracts
// client-side testimonials. Any rendering failure degrades to zero
// candidates rather than failing the scrape.
func (s *Scraper) dynamicCandidates(ctx context.Context, url string) []sitevoice.Candidate {
	if s.Browser == nil {
		return nil
	}
	ext := &DynamicExtractor{
		Browser:        s.Browser,
		SettleDelay:    s.SettleDelay,
		VisibilityWait: s.VisibilityWait,
	}
	candidates, err := ext.Extract(ctx, url)
	if err != nil {
		return nil
	}
	return candidates
}

// storyCandidates fetches discovered customer-story pages and extracts
// their testimonials. Individual page failures are skipped.
func (s *Scraper) storyCandidates(ctx context.Context, base *url.URL) []sitevoice.Candidate {
	var candidates []sitevoice.Candidate
	for _, storyURL := range s.storyURLs(ctx, base) {
		if ctx.Err() != nil {
			break
		}
		if err := s.wait(ctx, base.Host); err != nil {
			break
		}
		snap, err := s.Fetcher.Fetch(ctx, storyURL)
		if err != nil {
			continue
		}
		page, err := goquery.Parse(snap.RawMarkup)
		if err != nil {
			continue
		}
		candidates = append(candidates, page.StoryTestimonials()...)
	}
	return candidates
}

// backfill fills title, description and the about section from the
// boilerplate-removing extractor when selector-based extraction came up
// empty. Existing content is never overwritten.
func (s *Scraper) backfill(result *sitevoice.ScrapeResult, rawMarkup string) {
	if s.Content == nil {
		return
	}
	_, hasAbout := result.Sections[sitevoice.SectionAbout]
	if result.Title != "" && result.MetaDescription != "" && hasAbout {
		return
	}

	content, err := s.Content.Extract(rawMarkup)
	if err != nil {
		return
	}
	if result.Title == "" {
		result.Title = content.Title
	}
	if result.MetaDescription == "" {
		result.MetaDescription = content.Description
	}
	if !hasAbout {
		result.Sections.Append(sitevoice.SectionAbout, sitevoice.CleanText(content.Text))
	}
}

// wait applies the per-domain rate limit if one is configured.
func (s *Scraper) wait(ctx context.Context, domain string) error {
	if s.Limiter == nil {
		return nil
	}
	return s.Limiter.Wait(ctx, domain)
}

// ContentHash computes a hash of page content using xxhash. Storage uses
// it to detect unchanged pages between scrapes.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
