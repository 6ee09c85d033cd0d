package model

// NicheEntry is a granular content topic mapped to exactly one parent
// category. Keywords and aliases are matched case-insensitively against user
// queries; LongFormRPMUSD may override the parent category's rate slightly.
type NicheEntry struct {
	ID             string
	DisplayName    string
	ParentCategory string
	Description    string
	Keywords       []string
	Aliases        []string
	LongFormRPMUSD float64
}
