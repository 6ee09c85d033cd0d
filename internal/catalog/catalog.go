// Package catalog holds the static category rate table and niche catalog,
// validated and indexed once at load time.
package catalog

import (
	"fmt"

	"github.com/Veraticus/nichewise/internal/common"
	"github.com/Veraticus/nichewise/internal/model"
)

// TermKind identifies which niche field a matchable term came from.
type TermKind string

// Term kinds. The fuzzy tier only considers keywords and aliases.
const (
	TermKeyword     TermKind = "keyword"
	TermAlias       TermKind = "alias"
	TermDisplayName TermKind = "display_name"
)

// Term is one normalized matchable string in catalog order.
type Term struct {
	Niche *model.NicheEntry
	Text  string
	Kind  TermKind
}

// Catalog is the immutable, indexed niche catalog plus category rate table.
// Iteration order everywhere follows declaration order: ties between equally
// good matches are broken by whichever entry was declared first.
type Catalog struct {
	categories    map[string]*model.CategoryRate
	nichesByID    map[string]*model.NicheEntry
	exact         map[string]*model.NicheEntry
	categoryOrder []*model.CategoryRate
	niches        []*model.NicheEntry
	terms         []Term
}

// New builds the catalog from the built-in data set.
func New() (*Catalog, error) {
	return Load(defaultCategories, defaultNiches)
}

// Load validates and indexes an arbitrary data set. Malformed data is fatal
// here rather than producing silently-broken matches at query time.
func Load(categories []model.CategoryRate, niches []model.NicheEntry) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[string]*model.CategoryRate, len(categories)),
		nichesByID: make(map[string]*model.NicheEntry, len(niches)),
		exact:      make(map[string]*model.NicheEntry),
	}

	for i := range categories {
		cat := &categories[i]
		if cat.LongFormRPMUSD <= 0 || cat.ShortFormRPMUSD <= 0 {
			return nil, fmt.Errorf("category %q: %w", cat.ID, common.ErrInvalidRate)
		}
		if _, exists := c.categories[cat.ID]; exists {
			return nil, fmt.Errorf("category %q: %w", cat.ID, common.ErrDuplicateNiche)
		}
		c.categories[cat.ID] = cat
		c.categoryOrder = append(c.categoryOrder, cat)
	}

	if _, ok := c.categories[model.GeneralCategoryID]; !ok {
		return nil, fmt.Errorf("catalog must define the %q category: %w",
			model.GeneralCategoryID, common.ErrInvalidConfig)
	}

	for i := range niches {
		n := &niches[i]
		if _, exists := c.nichesByID[n.ID]; exists {
			return nil, fmt.Errorf("niche %q: %w", n.ID, common.ErrDuplicateNiche)
		}
		if _, ok := c.categories[n.ParentCategory]; !ok {
			return nil, fmt.Errorf("niche %q parent %q: %w", n.ID, n.ParentCategory, common.ErrUnknownCategory)
		}
		if err := c.indexNiche(n); err != nil {
			return nil, err
		}
		c.nichesByID[n.ID] = n
		c.niches = append(c.niches, n)
	}

	return c, nil
}

// indexNiche normalizes and indexes one niche's terms, rejecting entries that
// end up with no usable keywords.
func (c *Catalog) indexNiche(n *model.NicheEntry) error {
	usable := 0
	addTerm := func(raw string, kind TermKind) {
		norm := Normalize(raw)
		if norm == "" {
			return
		}
		if kind == TermKeyword {
			usable++
		}
		c.terms = append(c.terms, Term{Text: norm, Niche: n, Kind: kind})
		// First declaration wins for the exact-match index.
		if _, exists := c.exact[norm]; !exists {
			c.exact[norm] = n
		}
	}

	for _, kw := range n.Keywords {
		addTerm(kw, TermKeyword)
	}
	for _, alias := range n.Aliases {
		addTerm(alias, TermAlias)
	}
	addTerm(n.DisplayName, TermDisplayName)

	if usable == 0 {
		return fmt.Errorf("niche %q: %w", n.ID, common.ErrEmptyKeywords)
	}
	return nil
}

// Category returns the rate table entry for a canonical category id.
func (c *Catalog) Category(id string) (*model.CategoryRate, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}

// General returns the reserved fallback category.
func (c *Catalog) General() *model.CategoryRate {
	return c.categories[model.GeneralCategoryID]
}

// GeneralNiche returns the reserved fallback niche.
func (c *Catalog) GeneralNiche() *model.NicheEntry {
	return c.nichesByID[model.GeneralCategoryID]
}

// Niche returns a niche by id.
func (c *Catalog) Niche(id string) (*model.NicheEntry, bool) {
	n, ok := c.nichesByID[id]
	return n, ok
}

// Categories returns the rate table in declaration order.
func (c *Catalog) Categories() []*model.CategoryRate {
	return c.categoryOrder
}

// Niches returns all niches in declaration order.
func (c *Catalog) Niches() []*model.NicheEntry {
	return c.niches
}

// ExactMatch looks up an already-normalized query in the exact-match index.
func (c *Catalog) ExactMatch(norm string) (*model.NicheEntry, bool) {
	n, ok := c.exact[norm]
	return n, ok
}

// Terms returns every normalized matchable term in catalog order. Callers
// must not mutate the returned slice.
func (c *Catalog) Terms() []Term {
	return c.terms
}

// ParentOf returns the parent category of a niche.
func (c *Catalog) ParentOf(n *model.NicheEntry) *model.CategoryRate {
	if cat, ok := c.categories[n.ParentCategory]; ok {
		return cat
	}
	return c.General()
}
