package scoring

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryFee = "fee"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	FeeTypeOverdraft      = "overdraft"
	FeeTypeMaintenance    = "maintenance"
	FeeTypeATM            = "atm"
	FeeTypeWire           = "wire"
	FeeTypeForeign        = "foreign"
	FeeTypeMinimumBalance = "minimum_balance"
	FeeTypeStatement      = "statement"
	FeeTypeACHReturn      = "ach_return"
)

// FeeRule is a static reference record describing one fee category.
type FeeRule struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Avoidable      bool   `json:"avoidable"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"`
}

// feeRules is the fixed taxonomy. Wire transfers are the only category
// treated as unavoidable.
var feeRules = map[string]FeeRule{
	FeeTypeOverdraft: {
		Name:           "Overdraft Fees",
		Description:    "Charged when account balance goes negative",
		Avoidable:      true,
		Recommendation: "Set up low balance alerts and link a savings account for overdraft protection",
		Severity:       SeverityHigh,
	},
	FeeTypeMaintenance: {
		Name:           "Monthly Maintenance Fees",
		Description:    "Regular account maintenance charges",
		Avoidable:      true,
		Recommendation: "Switch to a no-fee business checking account like Novo or Bluevine",
		Severity:       SeverityMedium,
	},
	FeeTypeATM: {
		Name:           "ATM Fees",
		Description:    "Out-of-network ATM withdrawal charges",
		Avoidable:      true,
		Recommendation: "Use in-network ATMs or choose a bank with ATM fee rebates",
		Severity:       SeverityLow,
	},
	FeeTypeWire: {
		Name:           "Wire Transfer Fees",
		Description:    "Domestic and international wire transfer charges",
		Avoidable:      false,
		Recommendation: "Use ACH transfers when possible, or batch wire transfers",
		Severity:       SeverityMedium,
	},
	FeeTypeForeign: {
		Name:           "Foreign Transaction Fees",
		Description:    "Charges for international purchases",
		Avoidable:      true,
		Recommendation: "Use a card with no foreign transaction fees",
		Severity:       SeverityMedium,
	},
	FeeTypeMinimumBalance: {
		Name:           "Minimum Balance Fees",
		Description:    "Charged when balance falls below minimum requirement",
		Avoidable:      true,
		Recommendation: "Maintain minimum balance or switch to an account without minimums",
		Severity:       SeverityMedium,
	},
	FeeTypeStatement: {
		Name:           "Paper Statement Fees",
		Description:    "Charges for paper statements",
		Avoidable:      true,
		Recommendation: "Switch to electronic statements",
		Severity:       SeverityLow,
	},
	FeeTypeACHReturn: {
		Name:           "ACH Return Fees",
		Description:    "Charged when ACH payments are returned",
		Avoidable:      true,
		Recommendation: "Verify account details before initiating transfers",
		Severity:       SeverityHigh,
	},
}

// LookupFeeRule returns the rule for a fee-type code. Unknown codes
// synthesize a safe fallback rule instead of failing.
func LookupFeeRule(feeType string) (FeeRule, bool) {
	if rule, ok := feeRules[feeType]; ok {
		return rule, true
	}
	return FeeRule{
		Name:      feeType,
		Avoidable: false,
		Severity:  SeverityLow,
	}, false
}

// FeeRules returns a copy of the full taxonomy keyed by fee-type code.
func FeeRules() map[string]FeeRule {
	out := make(map[string]FeeRule, len(feeRules))
	for k, v := range feeRules {
		out[k] = v
	}
	return out
}

// LedgerLine is one bank-ledger transaction as seen by the fee aggregator.
// Fee amounts are negative; the aggregator works with absolute values.
type LedgerLine struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	FeeType     string          `json:"feeType"`
}

// FeeGroup is the per-category breakdown inside a FeeAnalysis.
type FeeGroup struct {
	Type         string          `json:"type"`
	Rule         FeeRule         `json:"rule"`
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	Transactions []LedgerLine    `json:"transactions"`
}

// FeeAnalysis is the derived aggregate over a transaction list. It is
// superseded wholesale on each recomputation.
type FeeAnalysis struct {
	TotalFees        decimal.Decimal `json:"totalFees"`
	AvoidableFees    decimal.Decimal `json:"avoidableFees"`
	SavingsPotential decimal.Decimal `json:"savingsPotential"`
	FeeCount         int             `json:"feeCount"`
	FeesByType       []FeeGroup      `json:"feesByType"`
	MismatchScore    int             `json:"mismatchScore"`
	AnalyzedAt       time.Time       `json:"analyzedAt"`
}

// RunFeeAnalysis reduces a transaction list into per-category fee totals and
// an avoidable-fraction mismatch score. Non-fee lines are ignored; unknown
// fee codes get the fallback rule. The per-type groups come back sorted
// descending by total.
func RunFeeAnalysis(transactions []LedgerLine) FeeAnalysis {
	groups := make(map[string]*FeeGroup)
	order := []string{}
	totalFees := decimal.Zero
	avoidableFees := decimal.Zero
	feeCount := 0

	for _, line := range transactions {
		if line.Category != CategoryFee {
			continue
		}
		feeCount++

		group, ok := groups[line.FeeType]
		if !ok {
			rule, _ := LookupFeeRule(line.FeeType)
			group = &FeeGroup{
				Type:         line.FeeType,
				Rule:         rule,
				Total:        decimal.Zero,
				Transactions: []LedgerLine{},
			}
			groups[line.FeeType] = group
			order = append(order, line.FeeType)
		}

		amount := line.Amount.Abs()
		group.Count++
		group.Total = group.Total.Add(amount)
		group.Transactions = append(group.Transactions, line)

		totalFees = totalFees.Add(amount)
		if group.Rule.Avoidable {
			avoidableFees = avoidableFees.Add(amount)
		}
	}

	sorted := make([]FeeGroup, 0, len(order))
	for _, feeType := range order {
		sorted = append(sorted, *groups[feeType])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})

	mismatchScore := 0
	if totalFees.GreaterThan(decimal.Zero) {
		ratio, _ := avoidableFees.Div(totalFees).Mul(decimal.NewFromInt(100)).Round(0).Float64()
		mismatchScore = int(ratio)
		if mismatchScore > 100 {
			mismatchScore = 100
		}
	}

	return FeeAnalysis{
		TotalFees:        totalFees,
		AvoidableFees:    avoidableFees,
		SavingsPotential: avoidableFees,
		FeeCount:         feeCount,
		FeesByType:       sorted,
		MismatchScore:    mismatchScore,
		AnalyzedAt:       time.Now().UTC(),
	}
}
