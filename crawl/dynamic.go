package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/sitevoice"
)

// Defaults for dynamic extraction timing.
const (
	// DefaultSettleDelay is how long a rendered page is given for
	// client-side widgets to finish after the load event.
	DefaultSettleDelay = 5 * time.Second

	// DefaultVisibilityWait is how long each candidate element is given
	// to become visible before it is skipped.
	DefaultVisibilityWait = 5 * time.Second
)

// DynamicSelector matches testimonial containers on a rendered page.
const DynamicSelector = `[class*="testimonial"], [class*="review"], [class*="quote"], [class*="customer-story"]`

const (
	dynamicAuthorSelector  = `[class*="author"], [class*="name"], [class*="customer"]`
	dynamicCompanySelector = `[class*="company"], [class*="organization"]`
)

// DynamicExtractor extracts testimonials that only exist after
// client-side rendering, using a headless browser.
type DynamicExtractor struct {
	Browser        sitevoice.Browser
	SettleDelay    time.Duration
	VisibilityWait time.Duration
}

// Extract renders the URL and returns the testimonial candidates found
// on the live page. Failures on individual elements are skipped; only
// page-level failures return an error.
func (d *DynamicExtractor) Extract(ctx context.Context, url string) ([]sitevoice.Candidate, error) {
	settle := d.SettleDelay
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	visibility := d.VisibilityWait
	if visibility <= 0 {
		visibility = DefaultVisibilityWait
	}

	page, err := d.Browser.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if err := page.WaitSettle(ctx, settle); err != nil {
		return nil, err
	}

	elements, err := page.Elements(DynamicSelector)
	if err != nil {
		return nil, err
	}

	var candidates []sitevoice.Candidate
	for _, el := range elements {
		if ctx.Err() != nil {
			return candidates, ctx.Err()
		}
		if err := el.WaitVisible(visibility); err != nil {
			continue
		}
		raw, err := el.Text()
		if err != nil {
			continue
		}
		text := sitevoice.CleanText(raw)
		if len(text) < sitevoice.MinQuoteLength || sitevoice.HasCodePrefix(text) {
			continue
		}

		author, _ := el.TextOf(dynamicAuthorSelector)
		company, _ := el.TextOf(dynamicCompanySelector)

		candidates = append(candidates, sitevoice.Candidate{
			Text:    text,
			Author:  sitevoice.CleanText(author),
			Company: sitevoice.CleanText(company),
			Source:  sitevoice.SourceDynamic,
		})
	}

	return candidates, nil
}
