package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypePersonal = "personal"
	AccountTypeBusiness = "business"
)

var (
	ErrInvalidAccountType = errors.New("account type must be 'personal' or 'business'")
	ErrNegativeRevenue    = errors.New("monthly revenue cannot be negative")
	ErrNegativeFees       = errors.New("monthly fees cannot be negative")
	ErrConsentRequired    = errors.New("consent is required to store an intake submission")
)

// BusinessProfile is one intake-form submission. Profiles are insert-only:
// they are never mutated after creation and removable only by bulk clear.
type BusinessProfile struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SubmittedAt      time.Time       `gorm:"not null;index" json:"submittedAt"`
	Email            string          `gorm:"type:varchar(255);not null" json:"email"`
	BusinessName     string          `gorm:"type:varchar(255);not null" json:"businessName"`
	EntityType       string          `gorm:"type:varchar(50)" json:"entityType"`
	MonthlyRevenue   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthlyRevenue"`
	AccountType      string          `gorm:"type:varchar(20);not null" json:"accountType"`
	CashDeposits     bool            `gorm:"not null;default:false" json:"cashDeposits"`
	MonthlyFees      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthlyFees"`
	WantsGrants      bool            `gorm:"not null;default:false" json:"wantsGrants"`
	VeteranOwned     bool            `gorm:"not null;default:false" json:"veteranOwned"`
	ImmigrantFounder bool            `gorm:"not null;default:false" json:"immigrantFounder"`
	ZipCode          string          `gorm:"type:varchar(10)" json:"zipCode"`
	Consent          bool            `gorm:"not null;default:false" json:"consent"`
	CreatedAt        time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for BusinessProfile
func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now().UTC()
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// Validate checks the profile invariants. Numeric coercion for sloppy client
// input happens at the DTO boundary; by the time a profile reaches the model
// its amounts must be well-formed and non-negative.
func (p *BusinessProfile) Validate() error {
	if !IsValidAccountType(p.AccountType) {
		return ErrInvalidAccountType
	}
	if p.MonthlyRevenue.IsNegative() {
		return ErrNegativeRevenue
	}
	if p.MonthlyFees.IsNegative() {
		return ErrNegativeFees
	}
	if !p.Consent {
		return ErrConsentRequired
	}
	return nil
}

// TableName returns the table name for BusinessProfile
func (p *BusinessProfile) TableName() string {
	return "business_profiles"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypePersonal, AccountTypeBusiness:
		return true
	default:
		return false
	}
}
