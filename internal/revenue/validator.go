package revenue

import (
	"fmt"
	"math"

	"github.com/Veraticus/nichewise/internal/common"
	"github.com/Veraticus/nichewise/internal/model"
)

// Benchmark constants: a deliberately different formula family from the RPM
// tables, so the comparison is an independent sanity check. Flat CPM range
// times an assumed monetized-view share times the platform's 55% cut.
const (
	benchmarkCPMLowUSD   = 0.25
	benchmarkCPMHighUSD  = 4.00
	monetizedShareLow    = 0.40
	monetizedShareMid    = 0.60
	monetizedShareHigh   = 0.80
	platformRevenueShare = 0.55
)

// Accuracy thresholds as percentage difference from the realistic midpoint.
const (
	highAccuracyPct   = 20.0
	mediumAccuracyPct = 50.0
)

// Validate compares a breakdown's total against the industry benchmark for
// the given total view count. Read-only and diagnostic; never feeds back into
// estimation.
func Validate(breakdown *model.RevenueBreakdown, totalViews int64) (*model.ValidationComparison, error) {
	if totalViews < 0 {
		return nil, common.NewUserError(
			fmt.Sprintf("got totalViews=%d", totalViews),
			common.ErrNegativeViews,
		)
	}

	mille := float64(totalViews) / 1000
	ours := breakdown.TotalRevenue

	rawLow := mille * benchmarkCPMLowUSD
	rawHigh := mille * benchmarkCPMHighUSD

	realisticLow := rawLow * monetizedShareLow * platformRevenueShare
	realisticHigh := rawHigh * monetizedShareHigh * platformRevenueShare
	realisticMid := mille * (benchmarkCPMLowUSD + benchmarkCPMHighUSD) / 2 *
		monetizedShareMid * platformRevenueShare

	cmp := &model.ValidationComparison{
		OurEstimateUSD:       ours,
		TotalViews:           totalViews,
		RawLowUSD:            rawLow,
		RawHighUSD:           rawHigh,
		RealisticLowUSD:      realisticLow,
		RealisticHighUSD:     realisticHigh,
		RealisticMidUSD:      realisticMid,
		WithinRawRange:       ours >= rawLow && ours <= rawHigh,
		WithinRealisticRange: ours >= realisticLow && ours <= realisticHigh,
	}

	switch {
	case realisticMid == 0 && ours == 0:
		cmp.PercentDiff = 0
	case realisticMid == 0:
		cmp.PercentDiff = math.Inf(1)
	default:
		cmp.PercentDiff = math.Abs(ours-realisticMid) / realisticMid * 100
	}

	switch {
	case cmp.PercentDiff <= highAccuracyPct:
		cmp.Accuracy = model.AccuracyHigh
	case cmp.PercentDiff <= mediumAccuracyPct:
		cmp.Accuracy = model.AccuracyMedium
	default:
		cmp.Accuracy = model.AccuracyLow
	}

	return cmp, nil
}
