// Package engine wires the catalog, classifier, rate resolver, estimator,
// and benchmark validator into the public entry points the presentation
// layer calls.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/classifier"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/rates"
	"github.com/Veraticus/nichewise/internal/revenue"
	"github.com/Veraticus/nichewise/internal/service"
)

// Engine is the facade over the estimation core. Storage is optional: when
// nil, unknown queries and estimate history are simply not persisted.
type Engine struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	resolver   *rates.Resolver
	estimator  *revenue.Estimator
	store      service.Storage
	logger     *slog.Logger
}

// New creates an engine from its collaborators.
func New(cat *catalog.Catalog, cls *classifier.Classifier, resolver *rates.Resolver, est *revenue.Estimator, store service.Storage, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		catalog:    cat,
		classifier: cls,
		resolver:   resolver,
		estimator:  est,
		store:      store,
		logger:     logger,
	}
}

// Catalog exposes the underlying catalog for listing commands.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ClassifyNiche classifies a free-text niche query. Unknown queries are
// recorded in the review queue as a curation signal; that write is
// best-effort and never fails the classification.
func (e *Engine) ClassifyNiche(ctx context.Context, query string) *model.ClassificationResult {
	result := e.classifier.Classify(ctx, query)

	if result.IsUnknown && e.store != nil {
		norm := catalog.Normalize(query)
		if norm != "" {
			if err := e.store.RecordUnknownQuery(ctx, norm, query); err != nil {
				e.logger.Warn("failed to record unknown query for review",
					"query", query,
					"error", err)
			}
		}
	}

	return result
}

// EstimateRevenue estimates revenue for the given view counts. The third
// argument accepts either a category id (or synonym) or a free-text niche
// query; raw category ids skip classification entirely.
func (e *Engine) EstimateRevenue(ctx context.Context, longFormViews, shortFormViews int64, nicheOrCategory string) (*model.RevenueBreakdown, error) {
	categoryID := e.catalog.CanonicalCategory(nicheOrCategory)
	if categoryID == "" {
		result := e.ClassifyNiche(ctx, nicheOrCategory)
		categoryID = result.Category.ID
	}

	breakdown, err := e.estimator.Estimate(ctx, longFormViews, shortFormViews, categoryID)
	if err != nil {
		return nil, err
	}

	if e.store != nil {
		record := &service.EstimateRecord{
			CategoryID:     breakdown.CategoryID,
			LongFormViews:  breakdown.LongFormViews,
			ShortFormViews: breakdown.ShortFormViews,
			LongFormRPM:    breakdown.LongFormRPMUSD,
			ShortFormRPM:   breakdown.ShortFormRPMUSD,
			TotalRevenue:   breakdown.TotalRevenue,
			CreatedAt:      time.Now().UTC(),
		}
		if err := e.store.SaveEstimate(ctx, record); err != nil {
			e.logger.Warn("failed to save estimate history", "error", err)
		}
	}

	return breakdown, nil
}

// ValidateAgainstBenchmark compares a breakdown against the independent
// industry formula.
func (e *Engine) ValidateAgainstBenchmark(breakdown *model.RevenueBreakdown, totalViews int64) (*model.ValidationComparison, error) {
	return revenue.Validate(breakdown, totalViews)
}
