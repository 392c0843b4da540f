package dto

import (
	"time"

	"olibranch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProfileRequest is the intake form payload
type CreateProfileRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	BusinessName     string  `json:"businessName" validate:"required,max=255"`
	EntityType       string  `json:"entityType" validate:"max=50"`
	MonthlyRevenue   float64 `json:"monthlyRevenue" validate:"money_amount"`
	AccountType      string  `json:"accountType" validate:"required,account_type"`
	CashDeposits     bool    `json:"cashDeposits"`
	MonthlyFees      float64 `json:"monthlyFees" validate:"money_amount"`
	WantsGrants      bool    `json:"wantsGrants"`
	VeteranOwned     bool    `json:"veteranOwned"`
	ImmigrantFounder bool    `json:"immigrantFounder"`
	ZipCode          string  `json:"zipCode" validate:"omitempty,zip_code"`
	Consent          bool    `json:"consent" validate:"required"`
}

// ToModel converts the request into a profile model
func (r *CreateProfileRequest) ToModel() *models.BusinessProfile {
	return &models.BusinessProfile{
		Email:            r.Email,
		BusinessName:     r.BusinessName,
		EntityType:       r.EntityType,
		MonthlyRevenue:   decimal.NewFromFloat(r.MonthlyRevenue),
		AccountType:      r.AccountType,
		CashDeposits:     r.CashDeposits,
		MonthlyFees:      decimal.NewFromFloat(r.MonthlyFees),
		WantsGrants:      r.WantsGrants,
		VeteranOwned:     r.VeteranOwned,
		ImmigrantFounder: r.ImmigrantFounder,
		ZipCode:          r.ZipCode,
		Consent:          r.Consent,
	}
}

// ProfileResponse is one stored intake submission
type ProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	SubmittedAt      time.Time `json:"submittedAt"`
	Email            string    `json:"email"`
	BusinessName     string    `json:"businessName"`
	EntityType       string    `json:"entityType,omitempty"`
	MonthlyRevenue   string    `json:"monthlyRevenue"`
	AccountType      string    `json:"accountType"`
	CashDeposits     bool      `json:"cashDeposits"`
	MonthlyFees      string    `json:"monthlyFees"`
	WantsGrants      bool      `json:"wantsGrants"`
	VeteranOwned     bool      `json:"veteranOwned"`
	ImmigrantFounder bool      `json:"immigrantFounder"`
	ZipCode          string    `json:"zipCode,omitempty"`
}

// NewProfileResponse maps a profile model onto the response shape
func NewProfileResponse(p *models.BusinessProfile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		SubmittedAt:      p.SubmittedAt,
		Email:            p.Email,
		BusinessName:     p.BusinessName,
		EntityType:       p.EntityType,
		MonthlyRevenue:   p.MonthlyRevenue.StringFixed(2),
		AccountType:      p.AccountType,
		CashDeposits:     p.CashDeposits,
		MonthlyFees:      p.MonthlyFees.StringFixed(2),
		WantsGrants:      p.WantsGrants,
		VeteranOwned:     p.VeteranOwned,
		ImmigrantFounder: p.ImmigrantFounder,
		ZipCode:          p.ZipCode,
	}
}

// ListProfilesResponse is the profile listing with its total count
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int               `json:"total"`
}
