package models

import "olibranch/internal/scoring"

// Scorecard is the flattened advisory result for one profile: the mismatch
// score with its reasons, up to two bank matches, the suggested grants and
// the state resource links resolved from the ZIP code.
type Scorecard struct {
	Email           string                        `json:"email"`
	MismatchScore   int                           `json:"mismatchScore"`
	RiskLabel       string                        `json:"riskLabel"`
	FeeWastePercent float64                       `json:"feeWastePercent"`
	KeyReasons      []string                      `json:"keyReasons"`
	BankMatch1      string                        `json:"bankMatch1"`
	Why1            string                        `json:"why1"`
	BankMatch2      string                        `json:"bankMatch2"`
	Why2            string                        `json:"why2"`
	GrantsSuggested []scoring.GrantRecommendation `json:"grantsSuggested"`
	State           string                        `json:"state"`
	Abbr            string                        `json:"abbr"`
	SBALink         string                        `json:"sbaLink"`
	SSBCILink       string                        `json:"ssbciLink"`
}

// RiskSlice is one bucket of the risk-distribution chart.
type RiskSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
