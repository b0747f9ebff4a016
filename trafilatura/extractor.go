package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/sitevoice"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements sitevoice.ContentExtractor at compile time.
var _ sitevoice.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML. It
// backs the fallback path used when selector-based extraction finds
// nothing usable on a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title, description and
// main text content.
func (e *Extractor) Extract(rawMarkup string) (*sitevoice.PageContent, error) {
	if rawMarkup == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawMarkup), opts)
	if err != nil {
		return nil, err
	}

	return &sitevoice.PageContent{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		Text:        result.ContentText,
	}, nil
}
