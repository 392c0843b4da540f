package dto

import "olibranch/internal/models"

// UpdateSettingsRequest is the preferences payload. Omitted fields are left
// unchanged.
type UpdateSettingsRequest struct {
	GPSRadiusMiles float64 `json:"gpsRadius" validate:"gte=0,lte=100"`
	CompanyName    string  `json:"companyName" validate:"max=255"`
	ContactEmail   string  `json:"contactEmail" validate:"omitempty,email"`
}

// ToModel converts the request into a settings update
func (r *UpdateSettingsRequest) ToModel() *models.Settings {
	return &models.Settings{
		GPSRadiusMiles: r.GPSRadiusMiles,
		CompanyName:    r.CompanyName,
		ContactEmail:   r.ContactEmail,
	}
}

// PaymentLinksRequest replaces the whole set of payment handles
type PaymentLinksRequest struct {
	CashApp  string `json:"cashApp" validate:"max=255"`
	Zelle    string `json:"zelle" validate:"max=255"`
	Venmo    string `json:"venmo" validate:"max=255"`
	BankLink string `json:"bankLink" validate:"max=255"`
}

// ToLinks converts the request into the links value
func (r *PaymentLinksRequest) ToLinks() models.PaymentLinks {
	return models.PaymentLinks{
		CashApp:  r.CashApp,
		Zelle:    r.Zelle,
		Venmo:    r.Venmo,
		BankLink: r.BankLink,
	}
}

// SettingsResponse is the stored preferences with payment handles
type SettingsResponse struct {
	GPSRadiusMiles float64             `json:"gpsRadius"`
	CompanyName    string              `json:"companyName,omitempty"`
	ContactEmail   string              `json:"contactEmail,omitempty"`
	PaymentLinks   models.PaymentLinks `json:"paymentLinks"`
}

// NewSettingsResponse maps the settings model onto the response shape
func NewSettingsResponse(s *models.Settings) SettingsResponse {
	return SettingsResponse{
		GPSRadiusMiles: s.GPSRadiusMiles,
		CompanyName:    s.CompanyName,
		ContactEmail:   s.ContactEmail,
		PaymentLinks:   s.Links(),
	}
}
