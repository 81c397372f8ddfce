package datasource

import (
	"context"
	"time"

	"github.com/yourusername/fixture-scout/internal/schema"
)

// DataSource defines the interface for fetching tabular snapshots from
// external providers. The engine never calls a source: loading completes
// before any pipeline run.
type DataSource interface {
	// FetchSnapshot retrieves the full historical input set.
	FetchSnapshot(ctx context.Context) (*Snapshot, error)

	// Name returns the name of the data source
	Name() string
}

// Snapshot carries the raw record tables of one upstream dump. Field names
// vary by schema variant; the service normalizer resolves them through the
// schema adapter.
type Snapshot struct {
	Teams        []schema.Record `json:"teams"`
	Fixtures     []schema.Record `json:"fixtures"`
	Participants []schema.Record `json:"participants"`
	Stats        []schema.Record `json:"stats"`
	FetchedAt    time.Time       `json:"fetched_at"`
}

// Empty reports whether the snapshot carries no usable records.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Teams) == 0 && len(s.Fixtures) == 0 && len(s.Stats) == 0)
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeNotFound          = "not_found"
	ErrCodeDecodeFailed      = "decode_failed"
	ErrCodeUnavailable       = "unavailable"
)
