package model

// AccuracyLevel classifies how closely our estimate tracks the independent
// industry benchmark.
type AccuracyLevel string

// Accuracy levels by percentage difference from the realistic midpoint.
const (
	AccuracyHigh   AccuracyLevel = "high"   // within 20%
	AccuracyMedium AccuracyLevel = "medium" // within 50%
	AccuracyLow    AccuracyLevel = "low"
)

// ValidationComparison compares a RevenueBreakdown against a simplified
// industry formula (flat CPM range, monetization-rate assumptions, platform
// revenue share). Diagnostic only; never feeds back into estimation.
type ValidationComparison struct {
	Accuracy             AccuracyLevel
	OurEstimateUSD       float64
	TotalViews           int64
	RawLowUSD            float64
	RawHighUSD           float64
	RealisticLowUSD      float64
	RealisticHighUSD     float64
	RealisticMidUSD      float64
	PercentDiff          float64
	WithinRawRange       bool
	WithinRealisticRange bool
}
