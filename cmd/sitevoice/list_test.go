package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitevoice"
	main "github.com/fwojciec/sitevoice/cmd/sitevoice"
	"github.com/fwojciec/sitevoice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists results with ID, time, URL and testimonial count", func(t *testing.T) {
		t.Parallel()

		results := &mock.ResultService{
			FindResultsFn: func(_ context.Context, filter sitevoice.ResultFilter) ([]*sitevoice.ScrapeResult, error) {
				assert.Equal(t, 20, filter.Limit)
				return []*sitevoice.ScrapeResult{
					{
						ID:        "res-123",
						URL:       "https://acme.test",
						Timestamp: time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
						Testimonials: []sitevoice.Testimonial{
							{Text: "This product transformed our workflow overnight."},
						},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Results: results,
		}

		cmd := &main.ListCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "res-123")
		assert.Contains(t, output, "https://acme.test")
		assert.Contains(t, output, "2026-08-31 14:30")
		assert.Contains(t, output, "1 testimonials")
	})

	t.Run("shows helpful message when no results exist", func(t *testing.T) {
		t.Parallel()

		results := &mock.ResultService{
			FindResultsFn: func(_ context.Context, _ sitevoice.ResultFilter) ([]*sitevoice.ScrapeResult, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Results: results,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No results found")
	})

	t.Run("passes the URL filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter sitevoice.ResultFilter
		results := &mock.ResultService{
			FindResultsFn: func(_ context.Context, filter sitevoice.ResultFilter) ([]*sitevoice.ScrapeResult, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Results: results,
		}

		cmd := &main.ListCmd{URL: "https://acme.test", Limit: 5, Offset: 10}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://acme.test", *gotFilter.URL)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Equal(t, 10, gotFilter.Offset)
	})
}
