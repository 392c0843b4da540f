package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FeeAnalysisTestSuite struct {
	suite.Suite
}

func TestFeeAnalysisSuite(t *testing.T) {
	suite.Run(t, new(FeeAnalysisTestSuite))
}

func feeLine(id, feeType string, amount float64) LedgerLine {
	return LedgerLine{
		ID:       id,
		Amount:   decimal.NewFromFloat(amount),
		Category: CategoryFee,
		FeeType:  feeType,
	}
}

func (s *FeeAnalysisTestSuite) TestEmptyLedger() {
	analysis := RunFeeAnalysis(nil)

	s.True(analysis.TotalFees.IsZero())
	s.True(analysis.AvoidableFees.IsZero())
	s.Zero(analysis.FeeCount)
	s.Empty(analysis.FeesByType)
	s.Zero(analysis.MismatchScore)
}

func (s *FeeAnalysisTestSuite) TestNonFeeLinesIgnored() {
	lines := []LedgerLine{
		{ID: "1", Amount: decimal.NewFromFloat(2500), Category: "deposit"},
		{ID: "2", Amount: decimal.NewFromFloat(-120), Category: "withdrawal"},
	}

	analysis := RunFeeAnalysis(lines)
	s.Zero(analysis.FeeCount)
	s.True(analysis.TotalFees.IsZero())
}

func (s *FeeAnalysisTestSuite) TestAvoidableSplit() {
	// Overdraft is avoidable, wire is not: 35 of 60 total is avoidable,
	// round(35/60*100) = 58.
	lines := []LedgerLine{
		feeLine("1", FeeTypeOverdraft, -35),
		feeLine("2", FeeTypeWire, -25),
	}

	analysis := RunFeeAnalysis(lines)

	s.True(decimal.NewFromInt(60).Equal(analysis.TotalFees))
	s.True(decimal.NewFromInt(35).Equal(analysis.AvoidableFees))
	s.True(analysis.SavingsPotential.Equal(analysis.AvoidableFees))
	s.Equal(2, analysis.FeeCount)
	s.Equal(58, analysis.MismatchScore)
}

func (s *FeeAnalysisTestSuite) TestGroupingAndSortOrder() {
	lines := []LedgerLine{
		feeLine("1", FeeTypeATM, -3.50),
		feeLine("2", FeeTypeOverdraft, -35),
		feeLine("3", FeeTypeOverdraft, -35),
		feeLine("4", FeeTypeMaintenance, -15),
		feeLine("5", FeeTypeATM, -3),
	}

	analysis := RunFeeAnalysis(lines)

	s.Len(analysis.FeesByType, 3)
	s.Equal(FeeTypeOverdraft, analysis.FeesByType[0].Type)
	s.Equal(2, analysis.FeesByType[0].Count)
	s.Equal(FeeTypeMaintenance, analysis.FeesByType[1].Type)
	s.Equal(FeeTypeATM, analysis.FeesByType[2].Type)
	s.Len(analysis.FeesByType[2].Transactions, 2)
}

func (s *FeeAnalysisTestSuite) TestGroupTotalsSumToTotalFees() {
	lines := []LedgerLine{
		feeLine("1", FeeTypeOverdraft, -35),
		feeLine("2", FeeTypeWire, -25),
		feeLine("3", FeeTypeATM, -3.50),
		feeLine("4", FeeTypeForeign, -12.50),
		feeLine("5", FeeTypeStatement, -5),
	}

	analysis := RunFeeAnalysis(lines)

	sum := decimal.Zero
	for _, group := range analysis.FeesByType {
		sum = sum.Add(group.Total)
	}
	s.True(sum.Equal(analysis.TotalFees), "group totals %s != total %s", sum, analysis.TotalFees)
}

func (s *FeeAnalysisTestSuite) TestIdempotentExceptTimestamp() {
	lines := []LedgerLine{
		feeLine("1", FeeTypeOverdraft, -35),
		feeLine("2", FeeTypeMaintenance, -15),
	}

	first := RunFeeAnalysis(lines)
	second := RunFeeAnalysis(lines)

	first.AnalyzedAt = second.AnalyzedAt
	s.Equal(first, second)
}

func (s *FeeAnalysisTestSuite) TestUnknownFeeTypeGetsFallbackRule() {
	analysis := RunFeeAnalysis([]LedgerLine{feeLine("1", "mystery_charge", -9.99)})

	s.Equal(1, analysis.FeeCount)
	s.Len(analysis.FeesByType, 1)

	group := analysis.FeesByType[0]
	s.Equal("mystery_charge", group.Rule.Name)
	s.False(group.Rule.Avoidable)
	s.Equal(SeverityLow, group.Rule.Severity)
	s.Zero(analysis.MismatchScore, "unknown fees count as unavoidable")
}

func (s *FeeAnalysisTestSuite) TestAllAvoidableScoresHundred() {
	analysis := RunFeeAnalysis([]LedgerLine{
		feeLine("1", FeeTypeOverdraft, -35),
		feeLine("2", FeeTypeStatement, -5),
	})
	s.Equal(100, analysis.MismatchScore)
}

func (s *FeeAnalysisTestSuite) TestTaxonomy() {
	rules := FeeRules()
	s.Len(rules, 8)

	for feeType, rule := range rules {
		s.Run(feeType, func() {
			s.NotEmpty(rule.Name)
			s.NotEmpty(rule.Description)
			s.NotEmpty(rule.Recommendation)
			s.Contains([]string{SeverityLow, SeverityMedium, SeverityHigh}, rule.Severity)
		})
	}

	// Wire transfers are the single unavoidable category.
	for feeType, rule := range rules {
		if feeType == FeeTypeWire {
			s.False(rule.Avoidable)
		} else {
			s.True(rule.Avoidable, "%s should be avoidable", feeType)
		}
	}
}

func (s *FeeAnalysisTestSuite) TestLookupFeeRule() {
	rule, known := LookupFeeRule(FeeTypeOverdraft)
	s.True(known)
	s.Equal("Overdraft Fees", rule.Name)

	fallback, known := LookupFeeRule("gremlin")
	s.False(known)
	s.Equal("gremlin", fallback.Name)
}
