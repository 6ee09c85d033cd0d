// Package revenue computes revenue breakdowns from view counts and resolved
// RPM rates, and validates them against an independent industry benchmark.
package revenue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/nichewise/internal/common"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/rates"
)

// Estimator turns view counts into a revenue breakdown. Pure aside from the
// rate resolution, which is cached and never fails.
type Estimator struct {
	resolver *rates.Resolver
	logger   *slog.Logger
}

// NewEstimator creates an estimator backed by the given rate resolver.
func NewEstimator(resolver *rates.Resolver, logger *slog.Logger) *Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{
		resolver: resolver,
		logger:   logger,
	}
}

// Estimate computes revenue for the two content streams. Negative view counts
// are a caller bug and the one validation error this package surfaces; all
// rate-lookup failures degrade silently inside the resolver.
func (e *Estimator) Estimate(ctx context.Context, longFormViews, shortFormViews int64, categoryID string) (*model.RevenueBreakdown, error) {
	if longFormViews < 0 || shortFormViews < 0 {
		return nil, common.NewUserError(
			fmt.Sprintf("got long=%d short=%d", longFormViews, shortFormViews),
			common.ErrNegativeViews,
		)
	}

	longRPM := e.resolver.ResolveRate(ctx, categoryID)
	shortRPM := model.ShortFormRPMUSD

	longRevenue := float64(longFormViews) / 1000 * longRPM
	shortRevenue := float64(shortFormViews) / 1000 * shortRPM
	total := longRevenue + shortRevenue

	breakdown := &model.RevenueBreakdown{
		CategoryID:       categoryID,
		LongFormViews:    longFormViews,
		ShortFormViews:   shortFormViews,
		LongFormRPMUSD:   longRPM,
		ShortFormRPMUSD:  shortRPM,
		LongFormRevenue:  longRevenue,
		ShortFormRevenue: shortRevenue,
		TotalRevenue:     total,
		Methodology: fmt.Sprintf(
			"Long-form: %d views / 1000 x $%.2f RPM = $%.2f. "+
				"Shorts: %d views / 1000 x $%.2f RPM = $%.2f. "+
				"Total estimated revenue: $%.2f.",
			longFormViews, longRPM, longRevenue,
			shortFormViews, shortRPM, shortRevenue,
			total,
		),
	}

	e.logger.Debug("revenue estimated",
		"category", categoryID,
		"long_views", longFormViews,
		"short_views", shortFormViews,
		"total_usd", total)

	return breakdown, nil
}
