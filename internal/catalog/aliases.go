package catalog

// categoryAliases maps common synonyms to canonical category ids. The same
// table is used at ingestion time and by the rate resolver, so "fitness",
// "health", and "wellness" all land on one cache key.
var categoryAliases = map[string]string{
	"fitness":            "health",
	"wellness":           "health",
	"health and fitness": "health",
	"tech":               "technology",
	"software":           "technology",
	"investing":          "finance",
	"personal finance":   "finance",
	"money":              "finance",
	"entrepreneurship":   "business",
	"startups":           "business",
	"cooking":            "food",
	"culinary":           "food",
	"fashion":            "beauty",
	"makeup":             "beauty",
	"vlog":               "lifestyle",
	"vlogging":           "lifestyle",
	"games":              "gaming",
	"video games":        "gaming",
	"learning":           "education",
	"edu":                "education",
	"movies":             "entertainment",
	"comedy":             "entertainment",
	"tourism":            "travel",
	"travelling":         "travel",
	"songs":              "music",
}

// CanonicalCategory resolves a raw category id or synonym to a canonical
// category id present in the catalog. Returns "" when nothing matches.
func (c *Catalog) CanonicalCategory(id string) string {
	norm := Normalize(id)
	if norm == "" {
		return ""
	}
	if alias, ok := categoryAliases[norm]; ok {
		norm = alias
	}
	if _, ok := c.categories[norm]; ok {
		return norm
	}
	return ""
}
