package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitevoice"
	main "github.com/fwojciec/sitevoice/cmd/sitevoice"
	"github.com/fwojciec/sitevoice/crawl"
	"github.com/fwojciec/sitevoice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scrapePageHTML = `<html>
<head><title>Acme</title></head>
<body>
<blockquote class="testimonial">This product transformed our workflow overnight.</blockquote>
</body>
</html>`

func scrapeDeps(stdout, stderr *bytes.Buffer, results sitevoice.ResultService, writer sitevoice.ResultWriter) *main.Dependencies {
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*sitevoice.PageSnapshot, error) {
			if url == "https://acme.test" {
				return &sitevoice.PageSnapshot{URL: url, FetchedAt: time.Now(), RawMarkup: scrapePageHTML}, nil
			}
			return nil, sitevoice.Errorf(sitevoice.EFETCH, "fetching %s failed", url)
		},
	}

	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Results: results,
		Writer:  writer,
		Scraper: &crawl.Scraper{Fetcher: fetcher},
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scrapes, saves and reports", func(t *testing.T) {
		t.Parallel()

		var saved *sitevoice.ScrapeResult
		results := &mock.ResultService{
			CreateResultFn: func(_ context.Context, result *sitevoice.ScrapeResult) error {
				result.ID = "res-123"
				saved = result
				return nil
			},
		}

		var written *sitevoice.ScrapeResult
		writer := &mock.ResultWriter{
			WriteResultFn: func(_ context.Context, result *sitevoice.ScrapeResult) error {
				written = result
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := scrapeDeps(stdout, &bytes.Buffer{}, results, writer)

		cmd := &main.ScrapeCmd{URLs: []string{"https://acme.test"}}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "https://acme.test", saved.URL)
		require.Len(t, saved.Testimonials, 1)
		require.NotNil(t, written)
		assert.Same(t, saved, written)

		output := stdout.String()
		assert.Contains(t, output, "res-123")
		assert.Contains(t, output, "1 testimonials")
		assert.Contains(t, output, "Saved 1 results")
	})

	t.Run("fails when every URL fails", func(t *testing.T) {
		t.Parallel()

		results := &mock.ResultService{}
		stderr := &bytes.Buffer{}
		deps := scrapeDeps(&bytes.Buffer{}, stderr, results, nil)

		cmd := &main.ScrapeCmd{URLs: []string{"https://down.test"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "skip https://down.test")
	})

	t.Run("continues when saving one result fails", func(t *testing.T) {
		t.Parallel()

		results := &mock.ResultService{
			CreateResultFn: func(_ context.Context, result *sitevoice.ScrapeResult) error {
				return sitevoice.Errorf(sitevoice.EINTERNAL, "disk full")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := scrapeDeps(stdout, stderr, results, nil)

		cmd := &main.ScrapeCmd{URLs: []string{"https://acme.test"}}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "disk full")
		assert.Contains(t, stdout.String(), "Saved 0 results")
	})
}
