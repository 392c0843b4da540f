package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"olibranch/internal/scoring"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeeGroupList is the per-category breakdown persisted as JSON text.
type FeeGroupList []scoring.FeeGroup

// Value implements driver.Valuer.
func (l FeeGroupList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner.
func (l *FeeGroupList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FeeGroupList", value)
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// FeeAnalysisRecord is the persisted form of a fee analysis. Each
// recomputation supersedes the previous record entirely.
type FeeAnalysisRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TotalFees     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"totalFees"`
	AvoidableFees decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"avoidableFees"`
	FeeCount      int             `gorm:"not null;default:0" json:"feeCount"`
	MismatchScore int             `gorm:"not null;default:0" json:"mismatchScore"`
	FeesByType    FeeGroupList    `gorm:"type:text" json:"feesByType"`
	AnalyzedAt    time.Time       `gorm:"not null" json:"analyzedAt"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
}

// BeforeCreate hook for FeeAnalysisRecord
func (r *FeeAnalysisRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.AnalyzedAt.IsZero() {
		r.AnalyzedAt = time.Now().UTC()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for FeeAnalysisRecord
func (r *FeeAnalysisRecord) TableName() string {
	return "fee_analyses"
}

// FromAnalysis builds the persisted record from a computed analysis.
func FromAnalysis(a scoring.FeeAnalysis) *FeeAnalysisRecord {
	return &FeeAnalysisRecord{
		TotalFees:     a.TotalFees,
		AvoidableFees: a.AvoidableFees,
		FeeCount:      a.FeeCount,
		MismatchScore: a.MismatchScore,
		FeesByType:    FeeGroupList(a.FeesByType),
		AnalyzedAt:    a.AnalyzedAt,
	}
}

// ToAnalysis reconstructs the computed analysis from the persisted record.
func (r *FeeAnalysisRecord) ToAnalysis() scoring.FeeAnalysis {
	return scoring.FeeAnalysis{
		TotalFees:        r.TotalFees,
		AvoidableFees:    r.AvoidableFees,
		SavingsPotential: r.AvoidableFees,
		FeeCount:         r.FeeCount,
		FeesByType:       []scoring.FeeGroup(r.FeesByType),
		MismatchScore:    r.MismatchScore,
		AnalyzedAt:       r.AnalyzedAt,
	}
}
