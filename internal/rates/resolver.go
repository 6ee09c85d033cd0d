package rates

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/common"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/service"
)

// Config holds resolver tuning knobs. Zero values get safe defaults.
type Config struct {
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	MaxRetries   int
}

// Resolver returns the long-form RPM for a category id. Lookup never fails:
// unknown ids resolve to the general category, and any external-source
// failure falls back to the static table, with the fallback cached so
// repeated failures don't hammer the source inside the TTL window.
type Resolver struct {
	catalog      *catalog.Catalog
	source       service.RateSource
	cache        *rateCache
	logger       *slog.Logger
	retryOpts    service.RetryOptions
	fetchTimeout time.Duration
}

// NewResolver creates a resolver. source may be nil, in which case rates come
// from the static table only (still cached, so behavior is uniform).
func NewResolver(cat *catalog.Catalog, source service.RateSource, cfg Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 5 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}

	return &Resolver{
		catalog:      cat,
		source:       source,
		cache:        newRateCache(cfg.CacheTTL, nil),
		logger:       logger,
		fetchTimeout: cfg.FetchTimeout,
		retryOpts: service.RetryOptions{
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     cfg.FetchTimeout,
			Multiplier:   2.0,
		},
	}
}

// ResolveRate returns the effective long-form RPM for categoryID. Rate lookup
// must never block revenue computation, so every failure path resolves
// locally.
func (r *Resolver) ResolveRate(ctx context.Context, categoryID string) float64 {
	canonical := r.catalog.CanonicalCategory(categoryID)
	if canonical == "" {
		r.logger.Debug("unknown category, resolving as general", "category", categoryID)
		canonical = model.GeneralCategoryID
	}

	if rate, ok := r.cache.get(canonical); ok {
		return rate
	}

	if r.source != nil {
		rate, err := r.fetchLive(ctx, canonical)
		if err == nil {
			r.cache.set(canonical, rate)
			return rate
		}
		r.logger.Warn("live rate fetch failed, using static table",
			"category", canonical,
			"error", err)
	}

	static := r.staticRate(canonical)
	// Cache the fallback too: a flapping source shouldn't be retried on
	// every estimate inside the TTL window.
	r.cache.set(canonical, static)
	return static
}

// fetchLive calls the external source with a bounded timeout and retry.
func (r *Resolver) fetchLive(ctx context.Context, categoryID string) (float64, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	var rate float64
	err := common.WithRetry(fetchCtx, func() error {
		fetched, err := r.source.FetchRate(fetchCtx, categoryID)
		if err != nil {
			if !common.IsRetryable(err) {
				return &common.RetryableError{Err: err, Retryable: false}
			}
			return err
		}
		rate = fetched
		return nil
	}, r.retryOpts)
	if err != nil {
		return 0, err
	}

	return rate, nil
}

func (r *Resolver) staticRate(categoryID string) float64 {
	if cat, ok := r.catalog.Category(categoryID); ok {
		return cat.LongFormRPMUSD
	}
	return r.catalog.General().LongFormRPMUSD
}

// CacheSize reports how many categories currently have cache entries.
func (r *Resolver) CacheSize() int {
	return r.cache.size()
}

// FlushCache drops all cached rates.
func (r *Resolver) FlushCache() {
	r.cache.clear()
}
