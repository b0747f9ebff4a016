package crawl_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/crawl"
	"github.com/fwojciec/sitevoice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homepageHTML = `<html>
<head><title>Acme</title><meta name="description" content="Acme helps teams hear their customers."></head>
<body>
<div class="about">We build tools that help teams hear their customers clearly every day.</div>
<blockquote class="testimonial">This product transformed our workflow overnight.</blockquote>
<span class="author">Jane Doe at Acme Corp</span>
</body>
</html>`

const storyHTML = `<html><body>
<div class="case-study">
<p>Beta LLC cut onboarding time in half within the first month of rollout.</p>
<span class="customer-name">John Roe</span>
<p class="company">Beta LLC</p>
</div>
</body></html>`

// siteFetcher serves the homepage at the base URL and a story page at
// /testimonials; every other path fails.
func siteFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
			switch {
			case url == "https://acme.test":
				return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: homepageHTML}, nil
			case strings.HasSuffix(url, "/testimonials"):
				return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: storyHTML}, nil
			default:
				return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s failed", url)
			}
		},
	}
}

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("assembles metadata, sections and merged testimonials", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{Fetcher: siteFetcher()}

		result, err := s.Scrape(context.Background(), "https://acme.test")
		require.NoError(t, err)

		assert.Equal(t, "https://acme.test", result.URL)
		assert.Equal(t, "Acme", result.Title)
		assert.Equal(t, "Acme helps teams hear their customers.", result.MetaDescription)
		assert.Contains(t, result.Sections[sitevoice.SectionAbout], "hear their customers")
		assert.NotEmpty(t, result.ContentHash)
		assert.False(t, result.Timestamp.IsZero())

		require.Len(t, result.Testimonials, 2)
		// Static homepage quotes come before case-study quotes.
		assert.Equal(t, sitevoice.SourceStatic, result.Testimonials[0].Source)
		assert.Equal(t, "Jane Doe", result.Testimonials[0].Author)
		assert.Equal(t, "Acme Corp", result.Testimonials[0].Company)
		assert.Equal(t, sitevoice.SourceCaseStudy, result.Testimonials[1].Source)
		assert.Equal(t, "John Roe", result.Testimonials[1].Author)
	})

	t.Run("rejects invalid URLs", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{Fetcher: siteFetcher()}

		_, err := s.Scrape(context.Background(), "ftp://acme.test")
		require.Error(t, err)
		assert.Equal(t, sitevoice.EINVALID, sitevoice.ErrorCode(err))
	})

	t.Run("primary fetch failure is fatal", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
					return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s failed", url)
				},
			},
		}

		_, err := s.Scrape(context.Background(), "https://acme.test")
		require.Error(t, err)
		assert.Equal(t, sitevoice.EFETCH, sitevoice.ErrorCode(err))
	})

	t.Run("render failure degrades to static results", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{
			Fetcher: siteFetcher(),
			Browser: &mock.Browser{
				OpenFn: func(ctx context.Context, url string) (sitevoice.BrowserPage, error) {
					return nil, sitevoice.Errorf(sitevoice.ERENDER, "browser crashed")
				},
			},
		}

		result, err := s.Scrape(context.Background(), "https://acme.test")
		require.NoError(t, err)
		require.NotEmpty(t, result.Testimonials)
		assert.Equal(t, sitevoice.SourceStatic, result.Testimonials[0].Source)
	})

	t.Run("includes sitemap-discovered story pages", func(t *testing.T) {
		t.Parallel()

		extraHTML := `<html><body><div class="testimonial-block">
<p>Gamma Inc doubled their qualified pipeline within one quarter of adoption.</p>
</div></body></html>`

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
				switch url {
				case "https://acme.test":
					return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: homepageHTML}, nil
				case "https://acme.test/customers/gamma":
					return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: extraHTML}, nil
				default:
					return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s failed", url)
				}
			},
		}

		s := &crawl.Scraper{
			Fetcher: fetcher,
			Stories: &mock.StoryURLSource{
				DiscoverStoryURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
					return []string{"https://acme.test/customers/gamma"}, nil
				},
			},
		}

		result, err := s.Scrape(context.Background(), "https://acme.test")
		require.NoError(t, err)

		var found bool
		for _, tm := range result.Testimonials {
			if strings.Contains(tm.Text, "Gamma Inc") {
				found = true
			}
		}
		assert.True(t, found, "sitemap-discovered story page should contribute testimonials")
	})

	t.Run("backfills metadata from the content extractor", func(t *testing.T) {
		t.Parallel()

		bareHTML := `<html><body><p>Nothing keyword-matched lives here at all.</p></body></html>`
		s := &crawl.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
					if url == "https://bare.test" {
						return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: bareHTML}, nil
					}
					return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s failed", url)
				},
			},
			Content: &mock.ContentExtractor{
				ExtractFn: func(rawMarkup string) (*sitevoice.PageContent, error) {
					return &sitevoice.PageContent{
						Title:       "Bare Site",
						Description: "A fallback description.",
						Text:        "Main content recovered by the fallback extractor.",
					}, nil
				},
			},
		}

		result, err := s.Scrape(context.Background(), "https://bare.test")
		require.NoError(t, err)
		assert.Equal(t, "Bare Site", result.Title)
		assert.Equal(t, "A fallback description.", result.MetaDescription)
		assert.Contains(t, result.Sections[sitevoice.SectionAbout], "fallback extractor")
	})

	t.Run("rate limits every request", func(t *testing.T) {
		t.Parallel()

		var waits int
		s := &crawl.Scraper{
			Fetcher: siteFetcher(),
			Limiter: &mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					waits++
					assert.Equal(t, "acme.test", domain)
					return nil
				},
			},
		}

		_, err := s.Scrape(context.Background(), "https://acme.test")
		require.NoError(t, err)
		// One wait for the primary page plus one per probed story path.
		assert.Greater(t, waits, 1)
	})
}
