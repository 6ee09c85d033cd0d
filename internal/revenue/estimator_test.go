package revenue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/common"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/rates"
)

func newTestEstimator(t *testing.T) *Estimator {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	resolver := rates.NewResolver(cat, nil, rates.Config{CacheTTL: 30 * time.Minute}, nil)
	return NewEstimator(resolver, nil)
}

func TestEstimate_FinanceChannel(t *testing.T) {
	e := newTestEstimator(t)

	breakdown, err := e.Estimate(context.Background(), 1_000_000, 5_000_000, "finance")
	require.NoError(t, err)

	// finance RPM is 22.0; shorts pay a flat 0.15 regardless of category.
	assert.InDelta(t, 22000.00, breakdown.LongFormRevenue, 0.001)
	assert.InDelta(t, 750.00, breakdown.ShortFormRevenue, 0.001)
	assert.InDelta(t, 22750.00, breakdown.TotalRevenue, 0.001)

	assert.Equal(t, int64(1_000_000), breakdown.LongFormViews)
	assert.Equal(t, int64(5_000_000), breakdown.ShortFormViews)
	assert.InDelta(t, 22.0, breakdown.LongFormRPMUSD, 0.001)
	assert.InDelta(t, model.ShortFormRPMUSD, breakdown.ShortFormRPMUSD, 0.001)
}

func TestEstimate_ZeroViews(t *testing.T) {
	e := newTestEstimator(t)

	breakdown, err := e.Estimate(context.Background(), 0, 0, "gaming")
	require.NoError(t, err)
	assert.Zero(t, breakdown.LongFormRevenue)
	assert.Zero(t, breakdown.ShortFormRevenue)
	assert.Zero(t, breakdown.TotalRevenue)
}

func TestEstimate_NegativeViewsRejected(t *testing.T) {
	e := newTestEstimator(t)
	ctx := context.Background()

	_, err := e.Estimate(ctx, -1, 0, "gaming")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNegativeViews)

	_, err = e.Estimate(ctx, 0, -1, "gaming")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNegativeViews)
}

func TestEstimate_UnknownCategoryUsesGeneralRate(t *testing.T) {
	e := newTestEstimator(t)

	breakdown, err := e.Estimate(context.Background(), 1_000_000, 0, "no-such-category")
	require.NoError(t, err)
	assert.InDelta(t, 3000.00, breakdown.LongFormRevenue, 0.001)
}

func TestEstimate_Methodology(t *testing.T) {
	e := newTestEstimator(t)

	breakdown, err := e.Estimate(context.Background(), 1_000_000, 5_000_000, "finance")
	require.NoError(t, err)

	assert.Contains(t, breakdown.Methodology, "1000000 views / 1000 x $22.00 RPM = $22000.00")
	assert.Contains(t, breakdown.Methodology, "5000000 views / 1000 x $0.15 RPM = $750.00")
	assert.Contains(t, breakdown.Methodology, "Total estimated revenue: $22750.00")
}

func TestEstimate_StreamsAreAdditive(t *testing.T) {
	e := newTestEstimator(t)
	ctx := context.Background()

	longOnly, err := e.Estimate(ctx, 500_000, 0, "technology")
	require.NoError(t, err)
	shortOnly, err := e.Estimate(ctx, 0, 2_000_000, "technology")
	require.NoError(t, err)
	both, err := e.Estimate(ctx, 500_000, 2_000_000, "technology")
	require.NoError(t, err)

	assert.InDelta(t, longOnly.TotalRevenue+shortOnly.TotalRevenue, both.TotalRevenue, 0.001)
}
