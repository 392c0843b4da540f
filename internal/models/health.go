package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HealthHistoryLimit caps the rolling health-score history kept for the
// trend display.
const HealthHistoryLimit = 12

// HealthInputs is the latest self-reported financial snapshot. One logical
// record; saving replaces the previous one.
type HealthInputs struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Revenue   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"revenue"`
	Expenses  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"expenses"`
	Debt      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"debt"`
	Cash      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"cash"`
	CreatedAt time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for HealthInputs
func (h *HealthInputs) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for HealthInputs
func (h *HealthInputs) TableName() string {
	return "health_inputs"
}

// HealthSnapshot is one computed health score kept for trend history.
type HealthSnapshot struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Score    int       `gorm:"not null" json:"score"`
	Label    string    `gorm:"type:varchar(20);not null" json:"label"`
	Margin   float64   `gorm:"not null" json:"margin"`
	Runway   float64   `gorm:"not null" json:"runway"`
	DebtLoad float64   `gorm:"not null" json:"debtLoad"`
	TakenAt  time.Time `gorm:"not null;index" json:"takenAt"`
}

// BeforeCreate hook for HealthSnapshot
func (h *HealthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.TakenAt.IsZero() {
		h.TakenAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for HealthSnapshot
func (h *HealthSnapshot) TableName() string {
	return "health_snapshots"
}
