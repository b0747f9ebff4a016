package sitevoice

import "strings"

// Source identifies the extraction strategy that produced a candidate.
type Source string

// Candidate sources, in aggregation priority order.
const (
	SourceStatic    Source = "static"
	SourceDynamic   Source = "dynamic"
	SourceCaseStudy Source = "case-study"
	SourceVideo     Source = "embedded-video"
	SourceWidget    Source = "embedded-widget"
)

// Candidate is a not-yet-deduplicated testimonial produced by one specific
// extraction strategy. Candidates are immutable and consumed only by the
// aggregator.
type Candidate struct {
	Text     string
	Author   string
	Company  string
	Source   Source
	Platform string // set for embedded-video candidates
}

// Testimonial is an attributed quoted statement of customer sentiment.
// Within one ScrapeResult no two testimonials share a normalized text,
// and every text is at least MinQuoteLength characters long.
type Testimonial struct {
	Text     string `json:"text"`
	Author   string `json:"author,omitempty"`
	Company  string `json:"company,omitempty"`
	Source   Source `json:"source,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// NormalizeQuote produces the deduplication key for a testimonial text:
// lower-cased with whitespace runs collapsed to single spaces.
func NormalizeQuote(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
