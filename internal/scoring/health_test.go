package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type HealthScoreTestSuite struct {
	suite.Suite
}

func TestHealthScoreSuite(t *testing.T) {
	suite.Run(t, new(HealthScoreTestSuite))
}

func (s *HealthScoreTestSuite) TestAllZeroInputs() {
	// Zero revenue pins margin at 0 and debt load at the fully-penalized
	// sentinel; zero burn pins runway at the 12-month ceiling. That works
	// out to round(15 + 30 + 0) = 45.
	result := ComputeHealthScore(HealthInputs{})

	s.Equal(45, result.Score)
	s.Zero(result.Metrics.Margin)
	s.Equal(12.0, result.Metrics.Runway)
	s.Equal(1.0, result.Metrics.DebtLoad)
}

func (s *HealthScoreTestSuite) TestScoreBands() {
	testCases := []struct {
		description string
		inputs      HealthInputs
		expected    int
	}{
		{
			description: "profitable, cash-rich, debt-free business maxes out",
			inputs:      HealthInputs{Revenue: 20000, Expenses: 10000, Debt: 0, Cash: 50000},
			expected:    100,
		},
		{
			description: "break-even with healthy cash and no debt",
			inputs:      HealthInputs{Revenue: 10000, Expenses: 10000, Cash: 20000},
			expected:    70,
		},
		{
			description: "heavy burn with thin cash",
			inputs:      HealthInputs{Revenue: 5000, Expenses: 10000, Cash: 5000, Debt: 30000},
			expected:    5,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			result := ComputeHealthScore(tc.inputs)
			s.Equal(tc.expected, result.Score)
		})
	}
}

func (s *HealthScoreTestSuite) TestMetricsDerivation() {
	result := ComputeHealthScore(HealthInputs{Revenue: 10000, Expenses: 12000, Debt: 30000, Cash: 8000})

	s.InDelta(-0.2, result.Metrics.Margin, 0.0001)
	s.InDelta(4.0, result.Metrics.Runway, 0.0001) // 8000 cash / 2000 burn
	s.InDelta(0.5, result.Metrics.DebtLoad, 0.0001)
}

func (s *HealthScoreTestSuite) TestRunwaySentinelAtZeroBurn() {
	result := ComputeHealthScore(HealthInputs{Revenue: 10000, Expenses: 8000, Cash: 0})
	s.Equal(12.0, result.Metrics.Runway)
}

func (s *HealthScoreTestSuite) TestNegativeInputsClampToZero() {
	negative := ComputeHealthScore(HealthInputs{Revenue: -5000, Expenses: -100, Debt: -1, Cash: -99})
	zero := ComputeHealthScore(HealthInputs{})
	s.Equal(zero, negative)
}

func (s *HealthScoreTestSuite) TestScoreWithinBounds() {
	inputs := []HealthInputs{
		{},
		{Revenue: 1, Expenses: 1e9, Debt: 1e9, Cash: 0},
		{Revenue: 1e9, Expenses: 0, Debt: 0, Cash: 1e9},
	}

	for _, in := range inputs {
		result := ComputeHealthScore(in)
		s.GreaterOrEqual(result.Score, 0)
		s.LessOrEqual(result.Score, 100)
	}
}

func (s *HealthScoreTestSuite) TestHealthLabelBands() {
	testCases := []struct {
		score    int
		expected string
	}{
		{100, HealthLabelStrong},
		{85, HealthLabelStrong},
		{84, HealthLabelGood},
		{70, HealthLabelGood},
		{69, HealthLabelFair},
		{55, HealthLabelFair},
		{54, HealthLabelAtRisk},
		{0, HealthLabelAtRisk},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, HealthLabel(tc.score), "score %d", tc.score)
	}
}
