package repositories

import (
	"olibranch/internal/models"

	"github.com/google/uuid"
)

// ProfileRepositoryInterface defines the contract for intake-profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.BusinessProfile) error
	GetByID(id uuid.UUID) (*models.BusinessProfile, error)
	GetAll() ([]models.BusinessProfile, error)
	GetPage(offset, limit int) ([]models.BusinessProfile, int64, error)
	Count() (int64, error)
	DeleteAll() (int64, error)
}

// BankRepositoryInterface defines the contract for linked banks and their mock ledgers
type BankRepositoryInterface interface {
	Link(bank *models.LinkedBank) error
	Unlink(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.LinkedBank, error)
	GetByName(bankName string) (*models.LinkedBank, error)
	GetAll() ([]models.LinkedBank, error)
	Count() (int64, error)
	TouchSync(id uuid.UUID) error

	ReplaceTransactions(transactions []models.BankTransaction) error
	GetTransactions() ([]models.BankTransaction, error)
	GetFeeTransactions() ([]models.BankTransaction, error)
	ClearTransactions() (int64, error)
}

// HealthRepositoryInterface defines the contract for health inputs and the score history
type HealthRepositoryInterface interface {
	SaveInputs(inputs *models.HealthInputs) error
	GetInputs() (*models.HealthInputs, error)
	DeleteInputs() error
	AppendSnapshot(snapshot *models.HealthSnapshot) error
	GetHistory() ([]models.HealthSnapshot, error)
	LatestSnapshot() (*models.HealthSnapshot, error)
}

// SubscriptionRepositoryInterface defines the contract for the singleton subscription record
type SubscriptionRepositoryInterface interface {
	Get() (*models.Subscription, error)
	Save(sub *models.Subscription) error
}

// SettingsRepositoryInterface defines the contract for the singleton settings record
type SettingsRepositoryInterface interface {
	Get() (*models.Settings, error)
	Save(settings *models.Settings) error
}

// FeeAnalysisRepositoryInterface defines the contract for persisted fee analyses
type FeeAnalysisRepositoryInterface interface {
	Save(record *models.FeeAnalysisRecord) error
	Latest() (*models.FeeAnalysisRecord, error)
	DeleteAll() (int64, error)
}
