package main

import (
	"fmt"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/crawl"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: duplicate\n", event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	results, stats, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitevoice.ErrorMessage(err))
		return err
	}

	var saved int
	for _, result := range results {
		if err := deps.Results.CreateResult(deps.Ctx, result); err != nil {
			fmt.Fprintf(deps.Stderr, "  save %s: %s\n", result.URL, sitevoice.ErrorMessage(err))
			continue
		}
		saved++

		if deps.Writer != nil {
			if err := deps.Writer.WriteResult(deps.Ctx, result); err != nil {
				fmt.Fprintf(deps.Stderr, "  write %s: %s\n", result.URL, sitevoice.ErrorMessage(err))
			}
		}

		fmt.Fprintf(deps.Stdout, "  %s  %s  (%d testimonials)\n",
			result.ID, result.URL, len(result.Testimonials))
	}

	fmt.Fprintf(deps.Stdout, "Saved %d results (%d skipped, %d failed)\n",
		saved, stats.Skipped, stats.Failed)

	if stats.Failed > 0 && saved == 0 {
		return sitevoice.Errorf(sitevoice.EFETCH, "all %d URLs failed", stats.Failed)
	}
	return nil
}
