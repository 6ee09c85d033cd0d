package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/classifier"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/rates"
	"github.com/Veraticus/nichewise/internal/revenue"
	"github.com/Veraticus/nichewise/internal/service"
)

// memStore is an in-memory service.Storage for engine tests.
type memStore struct {
	unknown    map[string]*service.UnknownNiche
	estimates  []service.EstimateRecord
	recordErr  error
	saveErr    error
	saveCalled int
}

func newMemStore() *memStore {
	return &memStore{unknown: make(map[string]*service.UnknownNiche)}
}

func (m *memStore) RecordUnknownQuery(_ context.Context, normalized, raw string) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	if n, ok := m.unknown[normalized]; ok {
		n.HitCount++
		return nil
	}
	m.unknown[normalized] = &service.UnknownNiche{Query: normalized, RawQuery: raw, HitCount: 1}
	return nil
}

func (m *memStore) GetReviewQueue(_ context.Context) ([]service.UnknownNiche, error) {
	var queue []service.UnknownNiche
	for _, n := range m.unknown {
		queue = append(queue, *n)
	}
	return queue, nil
}

func (m *memStore) ResolveUnknownQuery(_ context.Context, normalized string) error {
	delete(m.unknown, normalized)
	return nil
}

func (m *memStore) SaveEstimate(_ context.Context, record *service.EstimateRecord) error {
	m.saveCalled++
	if m.saveErr != nil {
		return m.saveErr
	}
	record.ID = int64(len(m.estimates) + 1)
	m.estimates = append(m.estimates, *record)
	return nil
}

func (m *memStore) GetRecentEstimates(_ context.Context, _ int) ([]service.EstimateRecord, error) {
	return m.estimates, nil
}

func (m *memStore) Migrate(_ context.Context) error { return nil }
func (m *memStore) Close() error                    { return nil }

func newTestEngine(t *testing.T, store service.Storage) *Engine {
	t.Helper()

	cat, err := catalog.New()
	require.NoError(t, err)
	resolver := rates.NewResolver(cat, nil, rates.Config{CacheTTL: 30 * time.Minute}, nil)
	cls := classifier.New(cat, nil, nil)
	est := revenue.NewEstimator(resolver, nil)
	return New(cat, cls, resolver, est, store, nil)
}

func TestClassifyNiche_KnownQuery(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store)

	result := e.ClassifyNiche(context.Background(), "minecraft")
	assert.Equal(t, model.MatchExact, result.MatchType)
	assert.Empty(t, store.unknown)
}

func TestClassifyNiche_UnknownRecordedForReview(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store)
	ctx := context.Background()

	e.ClassifyNiche(ctx, "Hairdresser")
	e.ClassifyNiche(ctx, "hairdresser!!")

	require.Len(t, store.unknown, 1)
	assert.Equal(t, 2, store.unknown["hairdresser"].HitCount)
	assert.Equal(t, "Hairdresser", store.unknown["hairdresser"].RawQuery)
}

func TestClassifyNiche_BlankQueryNotQueued(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store)

	result := e.ClassifyNiche(context.Background(), "   ")
	assert.True(t, result.IsUnknown)
	assert.Empty(t, store.unknown)
}

func TestClassifyNiche_StoreFailureDoesNotFailClassification(t *testing.T) {
	store := newMemStore()
	store.recordErr = errors.New("disk full")
	e := newTestEngine(t, store)

	result := e.ClassifyNiche(context.Background(), "Hairdresser")
	assert.Equal(t, model.MatchDefault, result.MatchType)
}

func TestClassifyNiche_NoStore(t *testing.T) {
	e := newTestEngine(t, nil)

	result := e.ClassifyNiche(context.Background(), "Hairdresser")
	assert.True(t, result.IsUnknown)
}

func TestEstimateRevenue_CategoryIDSkipsClassification(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store)

	breakdown, err := e.EstimateRevenue(context.Background(), 1_000_000, 5_000_000, "finance")
	require.NoError(t, err)
	assert.InDelta(t, 22750.00, breakdown.TotalRevenue, 0.001)

	// A raw category id must not land in the review queue.
	assert.Empty(t, store.unknown)
}

func TestEstimateRevenue_CategorySynonym(t *testing.T) {
	e := newTestEngine(t, nil)

	breakdown, err := e.EstimateRevenue(context.Background(), 1_000_000, 0, "fitness")
	require.NoError(t, err)
	assert.Equal(t, "health", breakdown.CategoryID)
	assert.InDelta(t, 10000.00, breakdown.LongFormRevenue, 0.001)
}

func TestEstimateRevenue_FreeTextClassifiedFirst(t *testing.T) {
	e := newTestEngine(t, nil)

	breakdown, err := e.EstimateRevenue(context.Background(), 1_000_000, 0, "minecraft")
	require.NoError(t, err)
	assert.Equal(t, "gaming", breakdown.CategoryID)
}

func TestEstimateRevenue_PersistsHistory(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store)

	_, err := e.EstimateRevenue(context.Background(), 1_000_000, 5_000_000, "finance")
	require.NoError(t, err)

	require.Len(t, store.estimates, 1)
	saved := store.estimates[0]
	assert.Equal(t, "finance", saved.CategoryID)
	assert.InDelta(t, 22750.00, saved.TotalRevenue, 0.001)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestEstimateRevenue_SaveFailureDoesNotFailEstimate(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	e := newTestEngine(t, store)

	breakdown, err := e.EstimateRevenue(context.Background(), 1_000_000, 0, "finance")
	require.NoError(t, err)
	assert.InDelta(t, 22000.00, breakdown.TotalRevenue, 0.001)
	assert.Equal(t, 1, store.saveCalled)
}

func TestEstimateRevenue_NegativeViews(t *testing.T) {
	store := newMemStore()
	e := newTestEngine(t, store)

	_, err := e.EstimateRevenue(context.Background(), -1, 0, "finance")
	require.Error(t, err)
	assert.Empty(t, store.estimates)
}

func TestValidateAgainstBenchmark(t *testing.T) {
	e := newTestEngine(t, nil)

	breakdown, err := e.EstimateRevenue(context.Background(), 1_000_000, 5_000_000, "finance")
	require.NoError(t, err)

	cmp, err := e.ValidateAgainstBenchmark(breakdown, 6_000_000)
	require.NoError(t, err)
	assert.Equal(t, model.AccuracyLow, cmp.Accuracy)
	assert.True(t, cmp.WithinRawRange)
}
