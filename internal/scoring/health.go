package scoring

import "math"

const (
	HealthLabelStrong = "Strong"
	HealthLabelGood   = "Good"
	HealthLabelFair   = "Fair"
	HealthLabelAtRisk = "At Risk"
)

// Sub-score weights sum to 100; margin is the dominant signal.
const (
	marginWeight = 45
	runwayWeight = 30
	debtWeight   = 25

	// runwayCeilingMonths is the sentinel when burn is zero, and also the
	// scale denominator's upper bound for the trend display.
	runwayCeilingMonths = 12
	// fullRunwayCredit is the months of runway at which the runway
	// sub-score saturates.
	fullRunwayCredit = 6
	// debtHorizonMonths is the revenue horizon the debt load is measured
	// against.
	debtHorizonMonths = 6
)

// HealthInputs carries the four self-reported figures the health score is
// derived from. Negatives are clamped to zero.
type HealthInputs struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Debt     float64 `json:"debt"`
	Cash     float64 `json:"cash"`
}

// HealthMetrics are the intermediate ratios behind a health score.
type HealthMetrics struct {
	Margin   float64 `json:"margin"`
	Runway   float64 `json:"runway"`
	DebtLoad float64 `json:"debtLoad"`
}

// HealthResult is a computed 0-100 financial-health score with its
// sub-metrics.
type HealthResult struct {
	Score   int           `json:"score"`
	Metrics HealthMetrics `json:"metrics"`
}

// ComputeHealthScore derives a composite 0-100 health score from revenue,
// expenses, debt and cash. Division-by-zero cases resolve to fixed
// sentinels: margin 0 and debt load 1 at zero revenue, runway 12 months at
// zero burn.
func ComputeHealthScore(in HealthInputs) HealthResult {
	revenue := clampNonNegative(in.Revenue)
	expenses := clampNonNegative(in.Expenses)
	debt := clampNonNegative(in.Debt)
	cash := clampNonNegative(in.Cash)

	margin := 0.0
	if revenue > 0 {
		margin = (revenue - expenses) / revenue
	}
	// Rescales the [-25%, +50%] margin band onto [0,1].
	marginScore := clamp01((margin + 0.25) / 0.75)

	burn := math.Max(0, expenses-revenue)
	runway := float64(runwayCeilingMonths)
	if burn > 0 {
		runway = cash / burn
	}
	runwayScore := clamp01(runway / fullRunwayCredit)

	debtLoad := 1.0
	if revenue > 0 {
		debtLoad = debt / (revenue * debtHorizonMonths)
	}
	debtScore := 1 - clamp01(debtLoad)

	score := int(math.Round(marginScore*marginWeight + runwayScore*runwayWeight + debtScore*debtWeight))

	return HealthResult{
		Score: score,
		Metrics: HealthMetrics{
			Margin:   margin,
			Runway:   runway,
			DebtLoad: debtLoad,
		},
	}
}

// HealthLabel maps a health score onto its qualitative band.
func HealthLabel(score int) string {
	switch {
	case score >= 85:
		return HealthLabelStrong
	case score >= 70:
		return HealthLabelGood
	case score >= 55:
		return HealthLabelFair
	default:
		return HealthLabelAtRisk
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
