package crawl

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for batch URL deduplication.
const (
	batchExpectedURLs      = 10000
	batchFalsePositiveRate = 0.01
)

// BatchResult holds the outcome of a batch scrape.
type BatchResult struct {
	Scraped int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// scrapeOutcome holds the outcome of scraping a single URL.
type scrapeOutcome struct {
	position int
	url      string
	result   *sitevoice.ScrapeResult
	err      error
	skipped  bool
}

// ScrapeAll scrapes every URL concurrently and returns the successful
// results in input order, together with batch statistics. Duplicate URLs
// are skipped via a Bloom filter. Per-URL failures are recorded in the
// statistics and reported through the progress callback; only a canceled
// context fails the batch as a whole.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*sitevoice.ScrapeResult, *BatchResult, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	seen := bloom.NewFilter(batchExpectedURLs, batchFalsePositiveRate)
	outcomeCh := make(chan scrapeOutcome, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			if seen.Seen(url) {
				outcomeCh <- scrapeOutcome{position: i, url: url, skipped: true}
				continue
			}
			i, url := i, url
			g.Go(func() error {
				result, err := s.Scrape(gctx, url)
				outcomeCh <- scrapeOutcome{position: i, url: url, result: result, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	outcomes := make([]scrapeOutcome, total)
	var stats BatchResult
	for outcome := range outcomeCh {
		completed.Add(1)
		outcomes[outcome.position] = outcome

		switch {
		case outcome.skipped:
			stats.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       outcome.url,
				})
			}
		case outcome.err != nil:
			stats.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       outcome.url,
					Error:     outcome.err,
				})
			}
		default:
			stats.Scraped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       outcome.url,
				})
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	results := make([]*sitevoice.ScrapeResult, 0, stats.Scraped)
	for _, outcome := range outcomes {
		if outcome.err == nil && outcome.result != nil {
			results = append(results, outcome.result)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return results, &stats, nil
}
