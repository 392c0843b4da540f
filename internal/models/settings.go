package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultGPSRadiusMiles is the default search radius for the nearby-banks
// view.
const DefaultGPSRadiusMiles = 3

// Settings holds user-tunable preferences and payment links. One logical
// record per installation.
type Settings struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	GPSRadiusMiles float64   `gorm:"not null;default:3" json:"gpsRadius"`
	CompanyName    string    `gorm:"type:varchar(255)" json:"companyName"`
	ContactEmail   string    `gorm:"type:varchar(255)" json:"contactEmail"`
	CashAppLink    string    `gorm:"type:varchar(255)" json:"cashApp"`
	ZelleLink      string    `gorm:"type:varchar(255)" json:"zelle"`
	VenmoLink      string    `gorm:"type:varchar(255)" json:"venmo"`
	BankLink       string    `gorm:"type:varchar(255)" json:"bankLink"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Settings
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.GPSRadiusMiles <= 0 {
		s.GPSRadiusMiles = DefaultGPSRadiusMiles
	}
	return nil
}

// TableName returns the table name for Settings
func (s *Settings) TableName() string {
	return "settings"
}

// PaymentLinks is the set of payment handles shown on the profile page.
// Updates replace the whole set; an empty string clears a handle.
type PaymentLinks struct {
	CashApp  string `json:"cashApp"`
	Zelle    string `json:"zelle"`
	Venmo    string `json:"venmo"`
	BankLink string `json:"bankLink"`
}

// Links returns the payment handles stored in the settings record.
func (s *Settings) Links() PaymentLinks {
	return PaymentLinks{
		CashApp:  s.CashAppLink,
		Zelle:    s.ZelleLink,
		Venmo:    s.VenmoLink,
		BankLink: s.BankLink,
	}
}
