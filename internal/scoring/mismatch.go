package scoring

import "fmt"

const (
	RiskLabelLow    = "Low"
	RiskLabelMedium = "Medium"
	RiskLabelHigh   = "High"

	AccountTypePersonal = "personal"
	AccountTypeBusiness = "business"
)

// Additive rule weights for the mismatch score. Each rule is independent;
// the two revenue rules are mutually exclusive.
const (
	weightPersonalAccount  = 30
	weightCashDeposits     = 20
	weightLowRevenue       = 25
	weightModerateRevenue  = 10
	weightWantsGrants      = 10
	weightHighFeeBurden    = 15
	lowRevenueThreshold    = 5000
	moderateRevenueCeiling = 10000
	feeBurdenPercentFloor  = 2
	maxScore               = 100
)

// ProfileFacts is the plain-data input to the mismatch scorer. Negative or
// NaN numeric fields are clamped to zero before any rule evaluates, so the
// scorer is total over all inputs.
type ProfileFacts struct {
	AccountType      string
	MonthlyRevenue   float64
	MonthlyFees      float64
	CashDeposits     bool
	WantsGrants      bool
	VeteranOwned     bool
	ImmigrantFounder bool
	ZipCode          string
}

// MismatchResult is the outcome of scoring one business profile.
type MismatchResult struct {
	Score           int      `json:"score"`
	Reasons         []string `json:"reasons"`
	FeeWastePercent float64  `json:"feeWastePercent"`
}

// CalculateMismatchScore derives a 0-100 banking-fit score from a business
// profile. Higher means a worse fit. Rules are evaluated in a fixed order so
// the reasons list reads consistently.
func CalculateMismatchScore(p ProfileFacts) MismatchResult {
	score := 0
	reasons := []string{}

	revenue := clampNonNegative(p.MonthlyRevenue)
	fees := clampNonNegative(p.MonthlyFees)

	if p.AccountType == AccountTypePersonal {
		score += weightPersonalAccount
		reasons = append(reasons, "Using personal account for business")
	}

	if p.CashDeposits {
		score += weightCashDeposits
		reasons = append(reasons, "Frequent cash deposits (higher scrutiny)")
	}

	if revenue < lowRevenueThreshold {
		score += weightLowRevenue
		reasons = append(reasons, "Low monthly revenue (<$5k)")
	} else if revenue < moderateRevenueCeiling {
		score += weightModerateRevenue
		reasons = append(reasons, "Moderate revenue ($5k-$10k)")
	}

	if p.WantsGrants {
		score += weightWantsGrants
		reasons = append(reasons, "Seeking grant guidance")
	}

	feePercentage := 0.0
	if revenue > 0 {
		feePercentage = fees / revenue * 100
	}

	if feePercentage > feeBurdenPercentFloor {
		score += weightHighFeeBurden
		reasons = append(reasons, fmt.Sprintf("High fee burden (%.1f%% of revenue)", feePercentage))
	}

	if score > maxScore {
		score = maxScore
	}

	return MismatchResult{
		Score:           score,
		Reasons:         reasons,
		FeeWastePercent: feePercentage,
	}
}

// RiskLabel maps a mismatch score onto the three risk bands.
func RiskLabel(score int) string {
	switch {
	case score >= 60:
		return RiskLabelHigh
	case score >= 30:
		return RiskLabelMedium
	default:
		return RiskLabelLow
	}
}

func clampNonNegative(v float64) float64 {
	// NaN compares false against everything, so it falls through to 0 too.
	if v > 0 {
		return v
	}
	return 0
}
