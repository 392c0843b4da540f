package services

import (
	"fmt"
	"log/slog"

	"olibranch/internal/models"
	"olibranch/internal/repositories"
	"olibranch/internal/scoring"

	"github.com/google/uuid"
)

type profileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	metrics     MetricsRecorderInterface
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	metrics MetricsRecorderInterface,
) ProfileServiceInterface {
	return &profileService{
		profileRepo: profileRepo,
		metrics:     metrics,
	}
}

// CreateProfile validates and stores a new intake submission
func (s *profileService) CreateProfile(profile *models.BusinessProfile) (*models.BusinessProfile, error) {
	if err := s.profileRepo.Create(profile); err != nil {
		slog.Error("failed to store intake submission",
			"business_name", profile.BusinessName,
			"error", err)
		return nil, err
	}

	s.metrics.RecordProfileCreated()

	slog.Info("intake submission stored",
		"profile_id", profile.ID,
		"business_name", profile.BusinessName,
		"account_type", profile.AccountType)

	return profile, nil
}

// GetProfile retrieves a stored profile by ID
func (s *profileService) GetProfile(id uuid.UUID) (*models.BusinessProfile, error) {
	return s.profileRepo.GetByID(id)
}

// ListProfiles retrieves all stored profiles, newest first
func (s *profileService) ListProfiles() ([]models.BusinessProfile, error) {
	return s.profileRepo.GetAll()
}

// ListProfilesPage retrieves one page of stored profiles, newest first
func (s *profileService) ListProfilesPage(offset, limit int) ([]models.BusinessProfile, int64, error) {
	return s.profileRepo.GetPage(offset, limit)
}

// ClearProfiles removes every stored profile
func (s *profileService) ClearProfiles() (int64, error) {
	removed, err := s.profileRepo.DeleteAll()
	if err != nil {
		return 0, err
	}

	slog.Info("intake submissions cleared", "removed", removed)
	return removed, nil
}

// ScoreProfile computes the full advisory scorecard for a profile: mismatch
// score, risk label, bank matches, grant suggestions and state resources.
func (s *profileService) ScoreProfile(profile *models.BusinessProfile) *models.Scorecard {
	facts := profileFacts(profile)

	result := scoring.CalculateMismatchScore(facts)
	riskLabel := scoring.RiskLabel(result.Score)
	banks := scoring.BankRecommendations(facts.MonthlyRevenue)
	grants := scoring.GrantRecommendations(facts)
	state := scoring.StateFromZip(profile.ZipCode)

	card := &models.Scorecard{
		Email:           profile.Email,
		MismatchScore:   result.Score,
		RiskLabel:       riskLabel,
		FeeWastePercent: result.FeeWastePercent,
		KeyReasons:      result.Reasons,
		GrantsSuggested: grants,
		State:           state.Name,
		Abbr:            state.Abbr,
		SBALink:         state.SBALink,
		SSBCILink:       state.SSBCILink,
	}
	if len(banks) > 0 {
		card.BankMatch1 = banks[0].Bank
		card.Why1 = banks[0].Why
	}
	if len(banks) > 1 {
		card.BankMatch2 = banks[1].Bank
		card.Why2 = banks[1].Why
	}

	s.metrics.RecordProfileScored(riskLabel)
	s.metrics.ObserveMismatchScore(result.Score)

	return card
}

// ScoreProfileByID loads a profile and computes its scorecard
func (s *profileService) ScoreProfileByID(id uuid.UUID) (*models.Scorecard, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.ScoreProfile(profile), nil
}

// RiskChart buckets every stored profile by risk label for the dashboard
// distribution chart. Buckets are always emitted in High, Medium, Low order
// even when empty.
func (s *profileService) RiskChart() ([]models.RiskSlice, error) {
	profiles, err := s.profileRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles for chart: %w", err)
	}

	counts := map[string]int{}
	for i := range profiles {
		result := scoring.CalculateMismatchScore(profileFacts(&profiles[i]))
		counts[scoring.RiskLabel(result.Score)]++
	}

	return []models.RiskSlice{
		{Name: "High Risk", Value: counts[scoring.RiskLabelHigh]},
		{Name: "Medium Risk", Value: counts[scoring.RiskLabelMedium]},
		{Name: "Low Risk", Value: counts[scoring.RiskLabelLow]},
	}, nil
}

// profileFacts maps a stored profile onto the scoring inputs
func profileFacts(profile *models.BusinessProfile) scoring.ProfileFacts {
	return scoring.ProfileFacts{
		AccountType:      profile.AccountType,
		MonthlyRevenue:   profile.MonthlyRevenue.InexactFloat64(),
		MonthlyFees:      profile.MonthlyFees.InexactFloat64(),
		CashDeposits:     profile.CashDeposits,
		WantsGrants:      profile.WantsGrants,
		VeteranOwned:     profile.VeteranOwned,
		ImmigrantFounder: profile.ImmigrantFounder,
		ZipCode:          profile.ZipCode,
	}
}
