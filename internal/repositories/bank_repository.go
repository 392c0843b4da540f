package repositories

import (
	"errors"
	"fmt"
	"time"

	"olibranch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBankNotFound      = errors.New("linked bank not found")
	ErrBankAlreadyLinked = errors.New("bank is already linked")
)

// bankRepository implements BankRepositoryInterface
type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) BankRepositoryInterface {
	return &bankRepository{db: db}
}

// Link stores a new bank connection. Linking the same bank name twice is
// rejected.
func (r *bankRepository) Link(bank *models.LinkedBank) error {
	var existing models.LinkedBank
	err := r.db.Where("bank_name = ?", bank.BankName).First(&existing).Error
	if err == nil {
		return ErrBankAlreadyLinked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing link: %w", err)
	}

	if err := r.db.Create(bank).Error; err != nil {
		return fmt.Errorf("failed to link bank: %w", err)
	}
	return nil
}

// Unlink removes a bank connection
func (r *bankRepository) Unlink(id uuid.UUID) error {
	result := r.db.Delete(&models.LinkedBank{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to unlink bank: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBankNotFound
	}
	return nil
}

// GetByID retrieves a linked bank by ID
func (r *bankRepository) GetByID(id uuid.UUID) (*models.LinkedBank, error) {
	bank := &models.LinkedBank{ID: id}
	if err := r.db.First(bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get linked bank: %w", err)
	}
	return bank, nil
}

// GetByName retrieves a linked bank by its bank name
func (r *bankRepository) GetByName(bankName string) (*models.LinkedBank, error) {
	var bank models.LinkedBank
	if err := r.db.Where("bank_name = ?", bankName).First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get linked bank by name: %w", err)
	}
	return &bank, nil
}

// GetAll retrieves all linked banks, oldest link first
func (r *bankRepository) GetAll() ([]models.LinkedBank, error) {
	var banks []models.LinkedBank
	if err := r.db.Order("linked_at ASC").Find(&banks).Error; err != nil {
		return nil, fmt.Errorf("failed to get linked banks: %w", err)
	}
	return banks, nil
}

// Count returns the number of linked banks
func (r *bankRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.LinkedBank{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count linked banks: %w", err)
	}
	return total, nil
}

// TouchSync updates the last sync timestamp for a linked bank
func (r *bankRepository) TouchSync(id uuid.UUID) error {
	result := r.db.Model(&models.LinkedBank{}).Where("id = ?", id).
		Update("last_sync_at", time.Now().UTC())
	if result.Error != nil {
		return fmt.Errorf("failed to update sync time: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBankNotFound
	}
	return nil
}

// ReplaceTransactions swaps the entire mock ledger atomically
func (r *bankRepository) ReplaceTransactions(transactions []models.BankTransaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.BankTransaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear ledger: %w", err)
		}
		if len(transactions) == 0 {
			return nil
		}
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to seed ledger: %w", err)
		}
		return nil
	})
}

// GetTransactions retrieves the full ledger, oldest line first
func (r *bankRepository) GetTransactions() ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	if err := r.db.Order("posted_on ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetFeeTransactions retrieves only the fee lines of the ledger
func (r *bankRepository) GetFeeTransactions() ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	if err := r.db.Where("category = ?", models.TransactionCategoryFee).
		Order("posted_on ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get fee transactions: %w", err)
	}
	return transactions, nil
}

// ClearTransactions empties the mock ledger
func (r *bankRepository) ClearTransactions() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.BankTransaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
