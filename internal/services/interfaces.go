package services

import (
	"olibranch/internal/models"
	"olibranch/internal/scoring"

	"github.com/google/uuid"
)

// ProfileServiceInterface defines intake and advisory scoring operations
type ProfileServiceInterface interface {
	CreateProfile(profile *models.BusinessProfile) (*models.BusinessProfile, error)
	GetProfile(id uuid.UUID) (*models.BusinessProfile, error)
	ListProfiles() ([]models.BusinessProfile, error)
	ListProfilesPage(offset, limit int) ([]models.BusinessProfile, int64, error)
	ClearProfiles() (int64, error)
	ScoreProfile(profile *models.BusinessProfile) *models.Scorecard
	ScoreProfileByID(id uuid.UUID) (*models.Scorecard, error)
	RiskChart() ([]models.RiskSlice, error)
}

// HealthServiceInterface defines financial health scoring operations
type HealthServiceInterface interface {
	SaveInputs(inputs *models.HealthInputs) (*models.HealthSnapshot, error)
	GetInputs() (*models.HealthInputs, error)
	CurrentScore() (*models.HealthSnapshot, error)
	History() ([]models.HealthSnapshot, error)
	ClearInputs() error
}

// SubscriptionServiceInterface defines plan and quota operations
type SubscriptionServiceInterface interface {
	Get() (*models.Subscription, error)
	CanPerformAnalysis() (allowed bool, reason string, err error)
	RecordAnalysis() error
	UpgradeToPremium() (*models.Subscription, error)
	CancelPremium() (*models.Subscription, error)
}

// BankServiceInterface defines bank linking and mock ledger operations.
// Linking seeds the demo statement and runs an analysis; unlinking the last
// bank clears both.
type BankServiceInterface interface {
	LinkBank(bankName string) (*models.LinkedBank, error)
	UnlinkBank(id uuid.UUID) error
	ListBanks() ([]models.LinkedBank, error)
	Transactions() ([]models.BankTransaction, error)
}

// FeeAnalysisServiceInterface defines quota-gated fee analysis operations
type FeeAnalysisServiceInterface interface {
	RunAnalysis() (*scoring.FeeAnalysis, error)
	LatestAnalysis() (*scoring.FeeAnalysis, error)
	FeeTaxonomy() map[string]scoring.FeeRule
}

// SettingsServiceInterface defines preference and payment link operations
type SettingsServiceInterface interface {
	Get() (*models.Settings, error)
	Update(update *models.Settings) (*models.Settings, error)
	UpdatePaymentLinks(links models.PaymentLinks) (*models.Settings, error)
}

// StatementGeneratorInterface produces the demo bank statement seeded when a
// bank is linked
type StatementGeneratorInterface interface {
	GenerateStatement() []models.BankTransaction
	GenerateAccountMask() string
}

// MetricsRecorderInterface defines the contract for recording business metrics
type MetricsRecorderInterface interface {
	RecordProfileCreated()
	RecordProfileScored(riskLabel string)
	ObserveMismatchScore(score int)
	RecordFeeAnalysis(status string)
	ObserveHealthScore(score int)
	SetLinkedBanks(count int)
	RecordBankLink(operation string)
	RecordSubscriptionChange(plan string)
}
