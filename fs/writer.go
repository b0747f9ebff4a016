// Package fs provides file-based output for scrape results.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitevoice"
)

// Ensure ResultWriter implements sitevoice.ResultWriter at compile time.
var _ sitevoice.ResultWriter = (*ResultWriter)(nil)

// ResultWriter writes scrape results as indented JSON files named after
// the scraped domain and timestamp, e.g. sitevoice_acme_com_20260831_143000.json.
type ResultWriter struct {
	dir string
}

// NewResultWriter creates a writer that places files under dir. The
// directory is created on first write if it does not exist.
func NewResultWriter(dir string) *ResultWriter {
	return &ResultWriter{dir: dir}
}

// WriteResult writes the result to a JSON file and returns an error if
// the result is invalid or the file cannot be written.
func (w *ResultWriter) WriteResult(ctx context.Context, result *sitevoice.ScrapeResult) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.dir, Filename(result)), data, 0644)
}

// Filename derives the output filename for a result from its URL host
// and timestamp.
func Filename(result *sitevoice.ScrapeResult) string {
	host := "unknown"
	if u, err := url.Parse(result.URL); err == nil && u.Host != "" {
		host = strings.ReplaceAll(u.Host, ".", "_")
	}
	return "sitevoice_" + host + "_" + result.Timestamp.Format("20060102_150405") + ".json"
}
