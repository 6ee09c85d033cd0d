package model

// MatchType indicates which tier of the matching pipeline produced a
// classification.
type MatchType string

// Match type constants, in tier precedence order.
const (
	MatchExact    MatchType = "exact"
	MatchPartial  MatchType = "partial"
	MatchFuzzy    MatchType = "fuzzy"
	MatchSemantic MatchType = "semantic"
	MatchDefault  MatchType = "default"
)

// ClassificationResult is the outcome of classifying one free-text niche
// query. Created fresh per call and never cached.
//
// Niche is nil for semantic matches: the semantic tier only knows the parent
// category, and fabricating a catalog-shaped niche there would violate the
// catalog invariant that every real niche carries keywords. Callers should go
// through NicheID and NicheDisplayName rather than reading Niche directly.
type ClassificationResult struct {
	Niche       *NicheEntry
	Category    *CategoryRate
	Query       string
	MatchType   MatchType
	Reasoning   string
	Suggestions []string
	Confidence  float64
	IsUnknown   bool
}

// NicheID returns the matched niche id, or a synthetic "intelligent-" id for
// semantic matches that carry only a category.
func (r *ClassificationResult) NicheID() string {
	if r.Niche != nil {
		return r.Niche.ID
	}
	if r.Category != nil {
		return "intelligent-" + r.Category.ID
	}
	return ""
}

// NicheDisplayName returns a human-readable name for the match.
func (r *ClassificationResult) NicheDisplayName() string {
	if r.Niche != nil {
		return r.Niche.DisplayName
	}
	if r.Category != nil {
		return r.Category.DisplayName + " (intelligent match)"
	}
	return ""
}

// LongFormRPM returns the niche-level rate override when a real niche
// matched, otherwise the category rate.
func (r *ClassificationResult) LongFormRPM() float64 {
	if r.Niche != nil && r.Niche.LongFormRPMUSD > 0 {
		return r.Niche.LongFormRPMUSD
	}
	if r.Category != nil {
		return r.Category.LongFormRPMUSD
	}
	return 0
}
