package sitevoice

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// SectionKind identifies a labeled block of marketing content on a page.
type SectionKind string

// Section kinds recognized by the static section extractor.
const (
	SectionAbout        SectionKind = "about"
	SectionProducts     SectionKind = "products"
	SectionPricing      SectionKind = "pricing"
	SectionTestimonials SectionKind = "testimonials"
	SectionContact      SectionKind = "contact"
)

// SectionKinds returns all section kinds in extraction order.
func SectionKinds() []SectionKind {
	return []SectionKind{
		SectionAbout,
		SectionProducts,
		SectionPricing,
		SectionTestimonials,
		SectionContact,
	}
}

// ContentSections maps a section kind to its concatenated, cleaned text.
// Later contributions for the same kind never overwrite earlier content;
// they are appended with a separator via Append.
type ContentSections map[SectionKind]string

// Append adds text to a section, separating it from existing content
// with a single space. Empty text is a no-op.
func (cs ContentSections) Append(kind SectionKind, text string) {
	if text == "" {
		return
	}
	if existing, ok := cs[kind]; ok && existing != "" {
		cs[kind] = existing + " " + text
		return
	}
	cs[kind] = text
}

// Image is an image reference extracted from a page.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Link is a hyperlink extracted from a page.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// ScrapeResult is the complete output of scraping a single website URL.
// It is created fresh per scrape invocation, handed to the caller, and
// never mutated afterward.
type ScrapeResult struct {
	ID              string          `json:"id,omitempty"`
	URL             string          `json:"url"`
	Timestamp       time.Time       `json:"timestamp"`
	Title           string          `json:"title"`
	MetaDescription string          `json:"meta_description"`
	Sections        ContentSections `json:"sections"`
	Testimonials    []Testimonial   `json:"testimonials"`
	Stats           []string        `json:"stats"`
	ValueProps      []string        `json:"value_props"`
	Images          []Image         `json:"images"`
	Links           []Link          `json:"links"`

	// ContentHash is a hash of the raw primary page markup, used by
	// storage to detect unchanged pages.
	ContentHash string `json:"content_hash,omitempty"`
}

// Validate returns an error if the result contains invalid fields.
func (r *ScrapeResult) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	u, err := url.Parse(r.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "result URL must be absolute http(s): %q", r.URL)
	}
	return nil
}

// ValidateScrapeURL checks that a URL is an absolute http(s) URL suitable
// for scraping.
func ValidateScrapeURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL scheme must be http or https: %q", rawURL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL host required: %q", rawURL)
	}
	return nil
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ResultService represents a service for managing stored scrape results.
type ResultService interface {
	// CreateResult persists a new scrape result.
	CreateResult(ctx context.Context, result *ScrapeResult) error

	// FindResultByID retrieves a result by ID.
	// Returns ENOTFOUND if the result does not exist.
	FindResultByID(ctx context.Context, id string) (*ScrapeResult, error)

	// FindResults retrieves results matching the filter.
	FindResults(ctx context.Context, filter ResultFilter) ([]*ScrapeResult, error)

	// DeleteResult permanently removes a result.
	// Returns ENOTFOUND if the result does not exist.
	DeleteResult(ctx context.Context, id string) error
}

// ResultWriter writes scrape results to external storage (e.g. JSON files).
type ResultWriter interface {
	WriteResult(ctx context.Context, result *ScrapeResult) error
}
