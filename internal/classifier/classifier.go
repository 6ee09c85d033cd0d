// Package classifier implements the tiered niche-matching pipeline: exact,
// partial, fuzzy, semantic fallback, then the general default. The first
// successful tier wins.
package classifier

import (
	"context"
	"log/slog"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/model"
	"github.com/Veraticus/nichewise/internal/service"
)

// semanticConfidenceFloor is the minimum mapper confidence the semantic tier
// accepts. Below this we'd rather flag the query for curation than guess.
const semanticConfidenceFloor = 0.3

// maxFuzzyDistance caps edit tolerance regardless of query length.
const maxFuzzyDistance = 3

// minContainedTermLen is the shortest catalog term the partial tier will
// look for inside a longer query. Without it, two-letter aliases like "ai"
// match inside unrelated words ("hairdresser").
const minContainedTermLen = 3

// Classifier resolves free-text niche queries against the catalog.
type Classifier struct {
	catalog *catalog.Catalog
	mapper  service.CategoryMapper
	logger  *slog.Logger
}

// New creates a classifier. mapper may be nil, in which case the semantic
// tier is skipped and unmatched queries fall straight through to default.
func New(cat *catalog.Catalog, mapper service.CategoryMapper, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		catalog: cat,
		mapper:  mapper,
		logger:  logger,
	}
}

// Classify runs the query through the matching tiers. It never returns an
// error: unmatchable input degrades to the general category with IsUnknown
// set, and the result is built fresh per call.
func (c *Classifier) Classify(ctx context.Context, query string) *model.ClassificationResult {
	norm := catalog.Normalize(query)
	if norm == "" {
		return c.defaultResult(query, "empty query; nothing to classify")
	}

	if n, ok := c.catalog.ExactMatch(norm); ok {
		return c.nicheResult(query, n, model.MatchExact)
	}

	if n := c.partialMatch(norm); n != nil {
		return c.nicheResult(query, n, model.MatchPartial)
	}

	if n := c.fuzzyMatch(norm); n != nil {
		return c.nicheResult(query, n, model.MatchFuzzy)
	}

	if res := c.semanticMatch(ctx, query); res != nil {
		return res
	}

	return c.defaultResult(query, "no relevant category found; queued for manual catalog review")
}

// partialMatch finds the first catalog term that contains the query, or that
// appears inside the query. Ties are broken by catalog declaration order
// only; there is deliberately no ranking by substring length.
func (c *Classifier) partialMatch(norm string) *model.NicheEntry {
	for _, term := range c.catalog.Terms() {
		if strings.Contains(term.Text, norm) {
			return term.Niche
		}
		if len(term.Text) >= minContainedTermLen && strings.Contains(norm, term.Text) {
			return term.Niche
		}
	}
	return nil
}

// fuzzyMatch scans keywords and aliases for the smallest edit distance within
// min(3, floor(0.3 * len(query))) edits. Short queries tolerate zero edits,
// which keeps two-character typos from matching everything.
func (c *Classifier) fuzzyMatch(norm string) *model.NicheEntry {
	maxDist := int(0.3 * float64(len(norm)))
	if maxDist > maxFuzzyDistance {
		maxDist = maxFuzzyDistance
	}

	var best *model.NicheEntry
	bestDist := maxDist + 1

	for _, term := range c.catalog.Terms() {
		if term.Kind == catalog.TermDisplayName {
			continue
		}
		if dist := levenshtein.Distance(norm, term.Text, nil); dist < bestDist {
			best = term.Niche
			bestDist = dist
			if bestDist == 0 {
				break
			}
		}
	}

	return best
}

// semanticMatch delegates to the injected category mapper. Results are
// accepted only above the confidence floor and only when the mapped category
// actually exists in the rate table.
func (c *Classifier) semanticMatch(ctx context.Context, query string) *model.ClassificationResult {
	if c.mapper == nil {
		return nil
	}

	mapped, err := c.mapper.MapCategory(ctx, query)
	if err != nil {
		c.logger.Debug("semantic mapper failed, falling through to default",
			"query", query,
			"error", err)
		return nil
	}
	if mapped == nil || mapped.Confidence <= semanticConfidenceFloor {
		return nil
	}

	canonical := c.catalog.CanonicalCategory(mapped.CategoryID)
	if canonical == "" {
		c.logger.Warn("semantic mapper returned unknown category",
			"query", query,
			"category", mapped.CategoryID)
		return nil
	}
	cat, _ := c.catalog.Category(canonical)

	c.logger.Info("semantic match accepted",
		"query", query,
		"category", canonical,
		"confidence", mapped.Confidence)

	return &model.ClassificationResult{
		Query:       query,
		MatchType:   model.MatchSemantic,
		Category:    cat,
		Confidence:  mapped.Confidence,
		Reasoning:   mapped.Reasoning,
		Suggestions: mapped.Suggestions,
	}
}

func (c *Classifier) nicheResult(query string, n *model.NicheEntry, mt model.MatchType) *model.ClassificationResult {
	return &model.ClassificationResult{
		Query:     query,
		MatchType: mt,
		Niche:     n,
		Category:  c.catalog.ParentOf(n),
	}
}

func (c *Classifier) defaultResult(query, reasoning string) *model.ClassificationResult {
	return &model.ClassificationResult{
		Query:     query,
		MatchType: model.MatchDefault,
		Niche:     c.catalog.GeneralNiche(),
		Category:  c.catalog.General(),
		Reasoning: reasoning,
		IsUnknown: true,
	}
}
