package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/service"
)

// stubMapper returns a fixed mapping for every query.
type stubMapper struct {
	result *service.MappedCategory
	err    error
	calls  int
}

func (m *stubMapper) MapCategory(_ context.Context, _ string) (*service.MappedCategory, error) {
	m.calls++
	return m.result, m.err
}

func newTestClassifier(t *testing.T, mapper service.CategoryMapper) *Classifier {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return New(cat, mapper, nil)
}

func TestClassify_ExactMatch(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		wantNiche string
		wantCat   string
	}{
		{"keyword", "minecraft", "minecraft", "gaming"},
		{"mixed case and punctuation", "Minecraft!", "minecraft", "gaming"},
		{"alias", "web3", "crypto", "finance"},
		{"display name", "Personal Finance", "personal-finance", "finance"},
		{"multi-word keyword", "stock market", "investing", "finance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(ctx, tt.query)
			assert.Equal(t, model.MatchExact, result.MatchType)
			require.NotNil(t, result.Niche)
			assert.Equal(t, tt.wantNiche, result.Niche.ID)
			assert.Equal(t, tt.wantCat, result.Category.ID)
			assert.False(t, result.IsUnknown)
		})
	}
}

func TestClassify_TierPrecedence(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	// "minecraft" is both an exact keyword and a substring of "minecraft
	// gameplay"; exact must win.
	result := c.Classify(ctx, "minecraft")
	assert.Equal(t, model.MatchExact, result.MatchType)

	// A query that is only a substring of a keyword lands on partial.
	result = c.Classify(ctx, "minecraft game")
	assert.Equal(t, model.MatchPartial, result.MatchType)
	require.NotNil(t, result.Niche)
	assert.Equal(t, "minecraft", result.Niche.ID)
}

func TestClassify_PartialMatch(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		wantNiche string
	}{
		{"query inside keyword", "invest", "investing"},
		{"keyword inside query", "my channel is about budget travel hacks", "budget-travel"},
		{"display name fragment", "skincare routines", "skincare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(ctx, tt.query)
			assert.Equal(t, model.MatchPartial, result.MatchType)
			require.NotNil(t, result.Niche)
			assert.Equal(t, tt.wantNiche, result.Niche.ID)
		})
	}
}

func TestClassify_PartialMatch_CatalogOrderBreaksTies(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	// "minecraft fortnite" contains keywords of two niches; the niche
	// declared first in the catalog wins, with no length-based ranking.
	result := c.Classify(ctx, "minecraft fortnite")
	assert.Equal(t, model.MatchPartial, result.MatchType)
	require.NotNil(t, result.Niche)
	assert.Equal(t, "minecraft", result.Niche.ID)
}

func TestClassify_FuzzyMatch(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	t.Run("single edit matches", func(t *testing.T) {
		// A substitution, not a deletion: "minecraf" would be caught by
		// the partial tier as a substring of "minecraft".
		result := c.Classify(ctx, "minecroft")
		assert.Equal(t, model.MatchFuzzy, result.MatchType)
		require.NotNil(t, result.Niche)
		assert.Equal(t, "minecraft", result.Niche.ID)
	})

	t.Run("transposed letters match", func(t *testing.T) {
		result := c.Classify(ctx, "minecarft")
		assert.Equal(t, model.MatchFuzzy, result.MatchType)
		require.NotNil(t, result.Niche)
		assert.Equal(t, "minecraft", result.Niche.ID)
	})

	t.Run("short query tolerates zero edits", func(t *testing.T) {
		// len 2 => min(3, floor(0.6)) = 0 allowed edits, and "qq" is
		// no catalog term, so it falls through to default.
		result := c.Classify(ctx, "qq")
		assert.Equal(t, model.MatchDefault, result.MatchType)
	})

	t.Run("too many edits falls through", func(t *testing.T) {
		result := c.Classify(ctx, "zzzzzzzzzzzz")
		assert.Equal(t, model.MatchDefault, result.MatchType)
		assert.True(t, result.IsUnknown)
	})
}

func TestClassify_DefaultSafetyNet(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t\n"} {
		result := c.Classify(ctx, query)
		assert.Equal(t, model.MatchDefault, result.MatchType)
		assert.True(t, result.IsUnknown)
		require.NotNil(t, result.Category)
		assert.Equal(t, model.GeneralCategoryID, result.Category.ID)
		assert.NotEmpty(t, result.Reasoning)
	}
}

func TestClassify_UnknownWithoutMapper(t *testing.T) {
	c := newTestClassifier(t, nil)

	result := c.Classify(context.Background(), "Hairdresser")
	assert.Equal(t, model.MatchDefault, result.MatchType)
	assert.True(t, result.IsUnknown)
	assert.Equal(t, model.GeneralCategoryID, result.Category.ID)
}

func TestClassify_SemanticFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted above confidence floor", func(t *testing.T) {
		mapper := &stubMapper{result: &service.MappedCategory{
			CategoryID: "beauty",
			Confidence: 0.55,
			Reasoning:  "hair styling content maps to beauty",
		}}
		c := newTestClassifier(t, mapper)

		result := c.Classify(ctx, "Hairdresser")
		assert.Equal(t, model.MatchSemantic, result.MatchType)
		assert.Nil(t, result.Niche)
		assert.Equal(t, "beauty", result.Category.ID)
		assert.InDelta(t, 0.55, result.Confidence, 0.001)
		assert.Equal(t, "intelligent-beauty", result.NicheID())
		assert.False(t, result.IsUnknown)
	})

	t.Run("rejected at or below confidence floor", func(t *testing.T) {
		mapper := &stubMapper{result: &service.MappedCategory{
			CategoryID: "beauty",
			Confidence: 0.3,
		}}
		c := newTestClassifier(t, mapper)

		result := c.Classify(ctx, "Hairdresser")
		assert.Equal(t, model.MatchDefault, result.MatchType)
		assert.True(t, result.IsUnknown)
	})

	t.Run("mapper error degrades to default", func(t *testing.T) {
		mapper := &stubMapper{err: errors.New("mapper offline")}
		c := newTestClassifier(t, mapper)

		result := c.Classify(ctx, "Hairdresser")
		assert.Equal(t, model.MatchDefault, result.MatchType)
		assert.True(t, result.IsUnknown)
	})

	t.Run("unknown mapped category degrades to default", func(t *testing.T) {
		mapper := &stubMapper{result: &service.MappedCategory{
			CategoryID: "astrology",
			Confidence: 0.9,
		}}
		c := newTestClassifier(t, mapper)

		result := c.Classify(ctx, "Hairdresser")
		assert.Equal(t, model.MatchDefault, result.MatchType)
	})

	t.Run("mapper not consulted when a string tier hits", func(t *testing.T) {
		mapper := &stubMapper{result: &service.MappedCategory{
			CategoryID: "beauty",
			Confidence: 0.9,
		}}
		c := newTestClassifier(t, mapper)

		result := c.Classify(ctx, "minecraft")
		assert.Equal(t, model.MatchExact, result.MatchType)
		assert.Zero(t, mapper.calls)
	})
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier(t, nil)
	ctx := context.Background()

	queries := []string{"minecraft", "invest", "minecroft", "Hairdresser", ""}
	for _, q := range queries {
		first := c.Classify(ctx, q)
		second := c.Classify(ctx, q)
		assert.Equal(t, first.MatchType, second.MatchType, "query %q", q)
		assert.Equal(t, first.NicheID(), second.NicheID(), "query %q", q)
	}
}

func TestClassificationResult_LongFormRPM(t *testing.T) {
	c := newTestClassifier(t, nil)

	// Niche-level override beats the parent category rate.
	result := c.Classify(context.Background(), "minecraft")
	assert.InDelta(t, 4.2, result.LongFormRPM(), 0.001)

	gaming := result.Category
	assert.InDelta(t, 4.0, gaming.LongFormRPMUSD, 0.001)
}
