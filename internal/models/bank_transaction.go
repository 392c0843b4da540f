package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionCategoryFee        = "fee"
	TransactionCategoryDeposit    = "deposit"
	TransactionCategoryWithdrawal = "withdrawal"
	TransactionCategoryTransfer   = "transfer"
	TransactionCategoryOther      = "other"
)

var (
	ErrMissingFeeType     = errors.New("fee transactions require a fee type code")
	ErrInvalidTxnCategory = errors.New("invalid transaction category")
)

// BankTransaction is one line of a (mocked) bank ledger. Fee lines carry a
// negative amount and a fee-type code joining into the fee taxonomy.
type BankTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PostedOn    time.Time       `gorm:"not null;index" json:"postedOn"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(20);not null;index" json:"category"`
	FeeType     string          `gorm:"type:varchar(30)" json:"feeType,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
}

// BeforeCreate hook for BankTransaction
func (t *BankTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *BankTransaction) Validate() error {
	if !IsValidTransactionCategory(t.Category) {
		return ErrInvalidTxnCategory
	}
	if t.Category == TransactionCategoryFee && t.FeeType == "" {
		return ErrMissingFeeType
	}
	return nil
}

// IsFee returns true when the line is a fee charge.
func (t *BankTransaction) IsFee() bool {
	return t.Category == TransactionCategoryFee
}

// TableName returns the table name for BankTransaction
func (t *BankTransaction) TableName() string {
	return "bank_transactions"
}

// IsValidTransactionCategory checks if the ledger category is valid
func IsValidTransactionCategory(category string) bool {
	switch category {
	case TransactionCategoryFee, TransactionCategoryDeposit,
		TransactionCategoryWithdrawal, TransactionCategoryTransfer,
		TransactionCategoryOther:
		return true
	default:
		return false
	}
}
