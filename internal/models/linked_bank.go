package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBankNameRequired = errors.New("bank name is required")

// LinkedBank is one simulated bank connection. Linking seeds the mock
// transaction ledger; unlinking the last connection clears it.
type LinkedBank struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BankName    string    `gorm:"type:varchar(100);not null" json:"bankName"`
	AccountMask string    `gorm:"type:varchar(10)" json:"accountMask"`
	LinkedAt    time.Time `gorm:"not null" json:"linkedAt"`
	LastSyncAt  time.Time `gorm:"not null" json:"lastSyncAt"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for LinkedBank
func (b *LinkedBank) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now().UTC()
	if b.LinkedAt.IsZero() {
		b.LinkedAt = now
	}
	if b.LastSyncAt.IsZero() {
		b.LastSyncAt = now
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// Validate validates the linked bank fields
func (b *LinkedBank) Validate() error {
	if b.BankName == "" {
		return ErrBankNameRequired
	}
	return nil
}

// TableName returns the table name for LinkedBank
func (b *LinkedBank) TableName() string {
	return "linked_banks"
}
