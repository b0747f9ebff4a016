package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/sitevoice"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitevoice.ResultService = (*ResultService)(nil)

// ResultService implements sitevoice.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

const resultColumns = "id, url, timestamp, title, meta_description, sections, testimonials, stats, value_props, images, links, content_hash"

// CreateResult persists a new scrape result, assigning it an ID and a
// timestamp if one is not already set.
func (s *ResultService) CreateResult(ctx context.Context, result *sitevoice.ScrapeResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now().UTC()
	}

	sections, err := marshalField(result.Sections, "sections")
	if err != nil {
		return err
	}
	testimonials, err := marshalField(result.Testimonials, "testimonials")
	if err != nil {
		return err
	}
	stats, err := marshalField(result.Stats, "stats")
	if err != nil {
		return err
	}
	valueProps, err := marshalField(result.ValueProps, "value_props")
	if err != nil {
		return err
	}
	images, err := marshalField(result.Images, "images")
	if err != nil {
		return err
	}
	links, err := marshalField(result.Links, "links")
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (`+resultColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.URL, result.Timestamp.Format(time.RFC3339), result.Title,
		result.MetaDescription, sections, testimonials, stats, valueProps, images,
		links, result.ContentHash)

	return err
}

// FindResultByID retrieves a result by ID.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*sitevoice.ScrapeResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+resultColumns+`
		FROM results
		WHERE id = ?
	`, id)

	result, err := scanResult(row.Scan)
	if err == sql.ErrNoRows {
		return nil, sitevoice.Errorf(sitevoice.ENOTFOUND, "result not found")
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindResults retrieves results matching the filter, most recent first.
func (s *ResultService) FindResults(ctx context.Context, filter sitevoice.ResultFilter) ([]*sitevoice.ScrapeResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + resultColumns + " FROM results WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY timestamp DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*sitevoice.ScrapeResult
	for rows.Next() {
		result, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// DeleteResult permanently removes a result.
func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitevoice.Errorf(sitevoice.ENOTFOUND, "result not found")
	}

	return nil
}

// scanResult reads one result row via the given scan function and
// unmarshals its JSON columns.
func scanResult(scan func(dest ...any) error) (*sitevoice.ScrapeResult, error) {
	var result sitevoice.ScrapeResult
	var timestamp, sections, testimonials, stats, valueProps, images, links string

	if err := scan(&result.ID, &result.URL, &timestamp, &result.Title,
		&result.MetaDescription, &sections, &testimonials, &stats, &valueProps,
		&images, &links, &result.ContentHash); err != nil {
		return nil, err
	}

	var err error
	result.Timestamp, err = parseRFC3339(timestamp, "timestamp")
	if err != nil {
		return nil, err
	}

	fields := []struct {
		data string
		dest any
	}{
		{sections, &result.Sections},
		{testimonials, &result.Testimonials},
		{stats, &result.Stats},
		{valueProps, &result.ValueProps},
		{images, &result.Images},
		{links, &result.Links},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.data), f.dest); err != nil {
			return nil, fmt.Errorf("failed to decode result field: %w", err)
		}
	}

	return &result, nil
}

// marshalField encodes a structured field as JSON for storage. Nil
// slices and maps encode as "null", which round-trips back to nil.
func marshalField(v any, name string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return string(b), nil
}
