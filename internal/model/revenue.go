package model

// RevenueBreakdown is the result of one revenue estimate: per-stream revenue
// plus a methodology string that restates the arithmetic so a human can audit
// the numbers without re-deriving them. Pure value object.
type RevenueBreakdown struct {
	Methodology      string
	CategoryID       string
	LongFormViews    int64
	ShortFormViews   int64
	LongFormRPMUSD   float64
	ShortFormRPMUSD  float64
	LongFormRevenue  float64
	ShortFormRevenue float64
	TotalRevenue     float64
}
