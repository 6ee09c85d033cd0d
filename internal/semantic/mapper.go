// Package semantic provides the default in-process category mapper used as
// the classifier's last matching tier before the general fallback. It scores
// query tokens against per-category co-occurrence vocabularies, which are
// deliberately broader than the catalog's keyword lists.
package semantic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/service"
)

// categoryVocab associates a category with terms that commonly co-occur with
// it in channel descriptions. Order is the deterministic tie-break.
type categoryVocab struct {
	categoryID string
	terms      []string
}

var vocabularies = []categoryVocab{
	{"finance", []string{
		"money", "wealth", "trading", "trader", "bank", "banking", "loan",
		"mortgage", "tax", "taxes", "retirement", "salary", "economy",
		"portfolio", "savings", "credit", "broker", "forex",
	}},
	{"business", []string{
		"marketing", "sales", "agency", "branding", "freelance", "freelancing",
		"consulting", "ceo", "hustle", "passive", "income", "advertising",
	}},
	{"technology", []string{
		"computer", "computers", "laptop", "phone", "app", "apps", "robotics",
		"cybersecurity", "cloud", "developer", "engineering", "automation",
		"linux", "hardware",
	}},
	{"education", []string{
		"teacher", "teaching", "school", "college", "university", "math",
		"history", "lecture", "lessons", "tutorial", "tutorials", "course",
		"courses", "homework",
	}},
	{"health", []string{
		"exercise", "running", "cardio", "muscle", "weight", "wellbeing",
		"meditation", "sleep", "therapy", "calisthenics", "marathon",
	}},
	{"beauty", []string{
		"hairstyle", "nails", "outfit", "outfits", "style", "styling",
		"grooming", "perfume", "lipstick",
	}},
	{"travel", []string{
		"destination", "destinations", "flight", "flights", "hotel", "hostel",
		"itinerary", "abroad", "expat", "roadtrip", "airline",
	}},
	{"food", []string{
		"restaurant", "restaurants", "foodie", "kitchen", "grilling", "bbq",
		"vegan", "vegetarian", "streetfood", "tasting",
	}},
	{"lifestyle", []string{
		"routine", "routines", "organization", "journaling", "morning",
		"aesthetic", "declutter", "goals",
	}},
	{"entertainment", []string{
		"celebrity", "drama", "podcast", "sketch", "skits", "pranks",
		"interviews", "gossip", "tv", "series",
	}},
	{"gaming", []string{
		"gamer", "gameplay", "playthrough", "speedrun", "twitch", "console",
		"rpg", "fps", "multiplayer", "stream", "streaming",
	}},
	{"music", []string{
		"song", "band", "guitar", "piano", "drums", "vocals", "rapper",
		"album", "concert", "dj", "remix",
	}},
}

// HeuristicMapper is the built-in service.CategoryMapper.
type HeuristicMapper struct {
	logger *slog.Logger
}

// NewHeuristicMapper creates the default mapper.
func NewHeuristicMapper(logger *slog.Logger) *HeuristicMapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &HeuristicMapper{logger: logger}
}

// MapCategory scores the query's tokens against every category vocabulary and
// returns the best candidate. Confidence is zero when nothing co-occurs; the
// caller decides the acceptance threshold.
func (m *HeuristicMapper) MapCategory(_ context.Context, query string) (*service.MappedCategory, error) {
	tokens := strings.Fields(catalog.Normalize(query))
	if len(tokens) == 0 {
		return &service.MappedCategory{}, nil
	}

	type candidate struct {
		categoryID string
		matched    []string
		score      float64
	}

	var candidates []candidate
	for _, vocab := range vocabularies {
		terms := make(map[string]struct{}, len(vocab.terms))
		for _, t := range vocab.terms {
			terms[t] = struct{}{}
		}

		var matched []string
		for _, tok := range tokens {
			if _, ok := terms[tok]; ok {
				matched = append(matched, tok)
			}
		}
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			categoryID: vocab.categoryID,
			matched:    matched,
			score:      float64(len(matched)) / float64(len(tokens)),
		})
	}

	if len(candidates) == 0 {
		return &service.MappedCategory{}, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	suggestions := make([]string, 0, 3)
	for _, c := range candidates {
		if len(suggestions) == 3 {
			break
		}
		suggestions = append(suggestions, c.categoryID)
	}

	confidence := 0.3 + 0.6*best.score
	if confidence > 0.9 {
		confidence = 0.9
	}

	m.logger.Debug("heuristic category mapping",
		"query", query,
		"category", best.categoryID,
		"confidence", confidence,
		"matched_terms", best.matched)

	return &service.MappedCategory{
		CategoryID: best.categoryID,
		Confidence: confidence,
		Reasoning: fmt.Sprintf("query terms %s commonly co-occur with %s content",
			strings.Join(best.matched, ", "), best.categoryID),
		Suggestions: suggestions,
	}, nil
}
