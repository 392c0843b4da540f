package repositories

import (
	"testing"
	"time"

	"olibranch/internal/database"
	"olibranch/internal/models"

	"github.com/stretchr/testify/suite"
)

// SubscriptionRepositorySuite defines the test suite for SubscriptionRepository
type SubscriptionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SubscriptionRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *SubscriptionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSubscriptionRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *SubscriptionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestSubscriptionRepositorySuite runs the test suite
func TestSubscriptionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SubscriptionRepositorySuite))
}

func (s *SubscriptionRepositorySuite) TestGet_CreatesFreeDefault() {
	sub, err := s.repo.Get()
	s.NoError(err)
	s.Equal(models.PlanFree, sub.Plan)
	s.Equal(0, sub.AnalysisCount)
	s.Nil(sub.LastAnalysisAt)
	s.NotZero(sub.WeekStartAt)
}

func (s *SubscriptionRepositorySuite) TestGet_ReturnsSameRecord() {
	first, err := s.repo.Get()
	s.NoError(err)

	second, err := s.repo.Get()
	s.NoError(err)
	s.Equal(first.ID, second.ID)
}

func (s *SubscriptionRepositorySuite) TestSave_PersistsQuotaState() {
	sub, err := s.repo.Get()
	s.NoError(err)

	now := time.Now().UTC()
	sub.RecordAnalysis(now)
	sub.RecordAnalysis(now)
	s.NoError(s.repo.Save(sub))

	got, err := s.repo.Get()
	s.NoError(err)
	s.Equal(2, got.AnalysisCount)
	s.NotNil(got.LastAnalysisAt)
}

func (s *SubscriptionRepositorySuite) TestSave_PlanUpgrade() {
	sub, err := s.repo.Get()
	s.NoError(err)

	sub.Plan = models.PlanPremium
	s.NoError(s.repo.Save(sub))

	got, err := s.repo.Get()
	s.NoError(err)
	s.True(got.IsPremium())
}
