// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"
)

// RateSource fetches the authoritative long-form RPM for a category from an
// external data source. Implementations must honor context cancellation; the
// resolver treats any error as recoverable and falls back to the static table.
type RateSource interface {
	FetchRate(ctx context.Context, categoryID string) (float64, error)
}

// MappedCategory is the result of a semantic category-mapping attempt.
type MappedCategory struct {
	CategoryID  string
	Reasoning   string
	Suggestions []string
	Confidence  float64
}

// CategoryMapper maps a free-text query to a category using broader
// heuristics than string similarity. Used as the classifier's semantic
// fallback tier; results are accepted only above a confidence threshold.
type CategoryMapper interface {
	MapCategory(ctx context.Context, query string) (*MappedCategory, error)
}

// UnknownNiche is a query that fell through every matching tier, queued for
// manual catalog curation.
type UnknownNiche struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Query     string
	RawQuery  string
	HitCount  int
}

// EstimateRecord is one persisted revenue estimate.
type EstimateRecord struct {
	CreatedAt      time.Time
	CategoryID     string
	ID             int64
	LongFormViews  int64
	ShortFormViews int64
	LongFormRPM    float64
	ShortFormRPM   float64
	TotalRevenue   float64
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Review queue operations
	RecordUnknownQuery(ctx context.Context, normalized, raw string) error
	GetReviewQueue(ctx context.Context) ([]UnknownNiche, error)
	ResolveUnknownQuery(ctx context.Context, normalized string) error

	// Estimate history operations
	SaveEstimate(ctx context.Context, record *EstimateRecord) error
	GetRecentEstimates(ctx context.Context, limit int) ([]EstimateRecord, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for external calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
