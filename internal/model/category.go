// Package model defines the core domain models used throughout the application.
package model

// ShortFormRPMUSD is the platform-wide flat rate paid per 1,000 short-form
// views. Shorts inventory is priced uniformly across all categories, so this
// is a constant rather than a per-category rate.
const ShortFormRPMUSD = 0.15

// GeneralCategoryID is the reserved fallback category for queries that match
// nothing in the catalog.
const GeneralCategoryID = "general"

// CategoryRate is one row of the static rate table: a coarse content grouping
// with its canonical long-form RPM. Loaded once at startup and never mutated.
type CategoryRate struct {
	ID              string
	DisplayName     string
	Description     string
	LongFormRPMUSD  float64
	ShortFormRPMUSD float64
}
