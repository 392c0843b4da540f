package repositories

import (
	"testing"
	"time"

	"olibranch/internal/database"
	"olibranch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ProfileRepositorySuite defines the test suite for ProfileRepository
type ProfileRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ProfileRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *ProfileRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewProfileRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *ProfileRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestProfileRepositorySuite runs the test suite
func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}

func (s *ProfileRepositorySuite) newProfile(email string) *models.BusinessProfile {
	return &models.BusinessProfile{
		Email:          email,
		BusinessName:   "Maria's Bakery LLC",
		EntityType:     "LLC",
		MonthlyRevenue: decimal.NewFromInt(4000),
		MonthlyFees:    decimal.NewFromInt(25),
		AccountType:    models.AccountTypePersonal,
		WantsGrants:    true,
		ZipCode:        "90015",
		Consent:        true,
	}
}

func (s *ProfileRepositorySuite) TestCreate() {
	profile := s.newProfile("maria@bakery.com")

	err := s.repo.Create(profile)
	s.NoError(err)
	s.NotEqual(uuid.Nil, profile.ID)
	s.NotZero(profile.SubmittedAt)
	s.NotZero(profile.CreatedAt)
}

func (s *ProfileRepositorySuite) TestCreate_RejectsMissingConsent() {
	profile := s.newProfile("maria@bakery.com")
	profile.Consent = false

	err := s.repo.Create(profile)
	s.ErrorIs(err, models.ErrConsentRequired)
}

func (s *ProfileRepositorySuite) TestCreate_RejectsInvalidAccountType() {
	profile := s.newProfile("maria@bakery.com")
	profile.AccountType = "joint"

	err := s.repo.Create(profile)
	s.ErrorIs(err, models.ErrInvalidAccountType)
}

func (s *ProfileRepositorySuite) TestGetByID() {
	profile := s.newProfile("maria@bakery.com")
	s.NoError(s.repo.Create(profile))

	got, err := s.repo.GetByID(profile.ID)
	s.NoError(err)
	s.Equal(profile.ID, got.ID)
	s.Equal("Maria's Bakery LLC", got.BusinessName)
	s.True(got.MonthlyRevenue.Equal(decimal.NewFromInt(4000)))
}

func (s *ProfileRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *ProfileRepositorySuite) TestGetAll_NewestFirst() {
	older := s.newProfile("first@example.com")
	older.SubmittedAt = time.Now().UTC().Add(-2 * time.Hour)
	s.NoError(s.repo.Create(older))

	newer := s.newProfile("second@example.com")
	newer.SubmittedAt = time.Now().UTC()
	s.NoError(s.repo.Create(newer))

	profiles, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(profiles, 2)
	s.Equal("second@example.com", profiles[0].Email)
	s.Equal("first@example.com", profiles[1].Email)
}

func (s *ProfileRepositorySuite) TestGetPage() {
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		s.NoError(s.repo.Create(s.newProfile(email)))
	}

	page, total, err := s.repo.GetPage(0, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(page, 2)
}

func (s *ProfileRepositorySuite) TestDeleteAll() {
	s.NoError(s.repo.Create(s.newProfile("a@x.com")))
	s.NoError(s.repo.Create(s.newProfile("b@x.com")))

	removed, err := s.repo.DeleteAll()
	s.NoError(err)
	s.Equal(int64(2), removed)

	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(0), count)
}
