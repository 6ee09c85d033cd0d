package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/nichewise/internal/model"
)

// FormatMoney renders a dollar amount with thousands separators.
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	s := FormatCount(whole)
	out := fmt.Sprintf("$%s.%02d", s, cents)
	if neg {
		return "-" + out
	}
	return out
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// RenderClassification renders a classification result panel.
func RenderClassification(result *model.ClassificationResult) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TagIcon+" Niche Classification") + "\n")
	b.WriteString(LabelStyle.Render("Query:") + BoldStyle.Render(result.Query) + "\n")
	b.WriteString(LabelStyle.Render("Niche:") + result.NicheDisplayName() + "\n")
	b.WriteString(LabelStyle.Render("Category:") + result.Category.DisplayName + "\n")
	b.WriteString(LabelStyle.Render("Match type:") + string(result.MatchType) + "\n")
	b.WriteString(LabelStyle.Render("Long-form RPM:") + MoneyStyle.Render(FormatMoney(result.LongFormRPM())) + "\n")

	if result.MatchType == model.MatchSemantic {
		b.WriteString(LabelStyle.Render("Confidence:") + fmt.Sprintf("%.0f%%", result.Confidence*100) + "\n")
	}
	if result.Reasoning != "" {
		b.WriteString(SubtleStyle.Render(result.Reasoning) + "\n")
	}
	if result.IsUnknown {
		b.WriteString(FormatWarning("Niche not recognized; queued for catalog review.") + "\n")
	}

	return b.String()
}

// RenderBreakdown renders a revenue breakdown panel, including the
// methodology string verbatim.
func RenderBreakdown(b *model.RevenueBreakdown) string {
	var out strings.Builder

	out.WriteString(TitleStyle.Render(MoneyIcon+" Revenue Estimate") + "\n")
	out.WriteString(LabelStyle.Render("Category:") + b.CategoryID + "\n")
	out.WriteString(fmt.Sprintf("%s%s views x %s RPM = %s\n",
		LabelStyle.Render("Long-form:"),
		FormatCount(b.LongFormViews),
		FormatMoney(b.LongFormRPMUSD),
		MoneyStyle.Render(FormatMoney(b.LongFormRevenue))))
	out.WriteString(fmt.Sprintf("%s%s views x %s RPM = %s\n",
		LabelStyle.Render("Shorts:"),
		FormatCount(b.ShortFormViews),
		FormatMoney(b.ShortFormRPMUSD),
		MoneyStyle.Render(FormatMoney(b.ShortFormRevenue))))
	out.WriteString(LabelStyle.Render("Total:") + MoneyStyle.Render(FormatMoney(b.TotalRevenue)) + "\n")
	out.WriteString(SubtleStyle.Render(b.Methodology) + "\n")

	return out.String()
}

// RenderComparison renders the benchmark validation panel.
func RenderComparison(c *model.ValidationComparison) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(ChartIcon+" Benchmark Comparison") + "\n")
	b.WriteString(LabelStyle.Render("Our estimate:") + FormatMoney(c.OurEstimateUSD) + "\n")
	b.WriteString(fmt.Sprintf("%s%s - %s\n",
		LabelStyle.Render("Raw CPM range:"),
		FormatMoney(c.RawLowUSD), FormatMoney(c.RawHighUSD)))
	b.WriteString(fmt.Sprintf("%s%s - %s (mid %s)\n",
		LabelStyle.Render("Realistic range:"),
		FormatMoney(c.RealisticLowUSD), FormatMoney(c.RealisticHighUSD),
		FormatMoney(c.RealisticMidUSD)))
	b.WriteString(LabelStyle.Render("Difference:") + fmt.Sprintf("%.1f%%", c.PercentDiff) + "\n")

	accuracy := string(c.Accuracy)
	switch c.Accuracy {
	case model.AccuracyHigh:
		accuracy = SuccessStyle.Render(accuracy)
	case model.AccuracyMedium:
		accuracy = WarningStyle.Render(accuracy)
	case model.AccuracyLow:
		accuracy = ErrorStyle.Render(accuracy)
	}
	b.WriteString(LabelStyle.Render("Accuracy:") + accuracy + "\n")

	if c.WithinRealisticRange {
		b.WriteString(FormatSuccess("Estimate falls inside the realistic industry range.") + "\n")
	} else if c.WithinRawRange {
		b.WriteString(FormatSuccess("Estimate falls inside the raw CPM range.") + "\n")
	} else {
		b.WriteString(FormatWarning("Estimate falls outside both industry ranges.") + "\n")
	}

	return b.String()
}
