package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/crawl"
	"github.com/fwojciec/sitevoice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_ScrapeAll(t *testing.T) {
	t.Parallel()

	pageFor := func(title string) string {
		return `<html><head><title>` + title + `</title></head><body></body></html>`
	}

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
			switch url {
			case "https://a.test":
				return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: pageFor("A")}, nil
			case "https://b.test":
				return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: pageFor("B")}, nil
			default:
				return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s failed", url)
			}
		},
	}

	t.Run("deduplicates, collects and counts", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{Fetcher: fetcher, Concurrency: 2}

		urls := []string{"https://a.test", "https://a.test", "https://b.test", "https://down.test"}
		var events []crawl.ProgressEvent
		results, stats, err := s.ScrapeAll(context.Background(), urls, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Scraped)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, 1, stats.Failed)

		require.Len(t, results, 2)
		// Results keep input order regardless of completion order.
		assert.Equal(t, "https://a.test", results[0].URL)
		assert.Equal(t, "https://b.test", results[1].URL)

		require.NotEmpty(t, events)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, crawl.ProgressFinished, events[len(events)-1].Type)
	})

	t.Run("canceled context fails the batch", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{Fetcher: fetcher}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := s.ScrapeAll(ctx, []string{"https://a.test"}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	h1 := crawl.ContentHash("<html>one</html>")
	h2 := crawl.ContentHash("<html>one</html>")
	h3 := crawl.ContentHash("<html>two</html>")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEmpty(t, h1)
}
