package services

import (
	"testing"

	"olibranch/internal/database"
	"olibranch/internal/models"
	"olibranch/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// HealthServiceSuite defines the test suite for HealthService
type HealthServiceSuite struct {
	suite.Suite
	db      *database.DB
	service HealthServiceInterface
}

// SetupTest runs before each test in the suite
func (s *HealthServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewHealthRepository(s.db.DB)
	s.service = NewHealthService(repo, NewNoopMetrics())
}

// TearDownTest runs after each test in the suite
func (s *HealthServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestHealthServiceSuite runs the test suite
func TestHealthServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthServiceSuite))
}

func (s *HealthServiceSuite) TestSaveInputs_ComputesAndRecordsScore() {
	inputs := &models.HealthInputs{
		Revenue:  decimal.NewFromInt(10000),
		Expenses: decimal.NewFromInt(8000),
		Debt:     decimal.NewFromInt(12000),
		Cash:     decimal.NewFromInt(15000),
	}

	snapshot, err := s.service.SaveInputs(inputs)
	s.NoError(err)

	// margin 0.2 -> 0.6 of 45; no burn -> full runway 30; debt load
	// 12000/60000 -> 0.8 of 25. round(27+30+20) = 77.
	s.Equal(77, snapshot.Score)
	s.Equal("Good", snapshot.Label)
	s.InDelta(0.2, snapshot.Margin, 1e-9)
	s.InDelta(12.0, snapshot.Runway, 1e-9)
	s.InDelta(0.2, snapshot.DebtLoad, 1e-9)

	current, err := s.service.CurrentScore()
	s.NoError(err)
	s.Equal(snapshot.Score, current.Score)
}

func (s *HealthServiceSuite) TestSaveInputs_ZeroInputsBaseline() {
	snapshot, err := s.service.SaveInputs(&models.HealthInputs{})
	s.NoError(err)
	s.Equal(45, snapshot.Score)
	s.Equal("At Risk", snapshot.Label)
}

func (s *HealthServiceSuite) TestSaveInputs_AppendsHistory() {
	for i := 1; i <= 3; i++ {
		inputs := &models.HealthInputs{
			Revenue:  decimal.NewFromInt(int64(i * 1000)),
			Expenses: decimal.NewFromInt(500),
		}
		_, err := s.service.SaveInputs(inputs)
		s.NoError(err)
	}

	history, err := s.service.History()
	s.NoError(err)
	s.Len(history, 3)
}

func (s *HealthServiceSuite) TestSaveInputs_HistoryCapped() {
	for i := 0; i < models.HealthHistoryLimit+5; i++ {
		_, err := s.service.SaveInputs(&models.HealthInputs{
			Revenue: decimal.NewFromInt(int64(1000 + i)),
		})
		s.NoError(err)
	}

	history, err := s.service.History()
	s.NoError(err)
	s.Len(history, models.HealthHistoryLimit)
}

func (s *HealthServiceSuite) TestClearInputs_KeepsHistory() {
	_, err := s.service.SaveInputs(&models.HealthInputs{
		Revenue: decimal.NewFromInt(5000),
	})
	s.NoError(err)

	s.NoError(s.service.ClearInputs())

	_, err = s.service.GetInputs()
	s.ErrorIs(err, repositories.ErrHealthInputsNotFound)

	history, err := s.service.History()
	s.NoError(err)
	s.Len(history, 1)
}
