package dto

import (
	"time"

	"olibranch/internal/models"

	"github.com/shopspring/decimal"
)

// HealthInputsRequest is the self-reported financial snapshot payload
type HealthInputsRequest struct {
	Revenue  float64 `json:"revenue" validate:"gte=0"`
	Expenses float64 `json:"expenses" validate:"gte=0"`
	Debt     float64 `json:"debt" validate:"gte=0"`
	Cash     float64 `json:"cash" validate:"gte=0"`
}

// ToModel converts the request into the inputs model
func (r *HealthInputsRequest) ToModel() *models.HealthInputs {
	return &models.HealthInputs{
		Revenue:  decimal.NewFromFloat(r.Revenue),
		Expenses: decimal.NewFromFloat(r.Expenses),
		Debt:     decimal.NewFromFloat(r.Debt),
		Cash:     decimal.NewFromFloat(r.Cash),
	}
}

// HealthInputsResponse is the stored financial snapshot
type HealthInputsResponse struct {
	Revenue  string `json:"revenue"`
	Expenses string `json:"expenses"`
	Debt     string `json:"debt"`
	Cash     string `json:"cash"`
}

// NewHealthInputsResponse maps the inputs model onto the response shape
func NewHealthInputsResponse(i *models.HealthInputs) HealthInputsResponse {
	return HealthInputsResponse{
		Revenue:  i.Revenue.StringFixed(2),
		Expenses: i.Expenses.StringFixed(2),
		Debt:     i.Debt.StringFixed(2),
		Cash:     i.Cash.StringFixed(2),
	}
}

// HealthScoreResponse is one computed health score with its metric breakdown
type HealthScoreResponse struct {
	Score    int       `json:"score"`
	Label    string    `json:"label"`
	Margin   float64   `json:"margin"`
	Runway   float64   `json:"runway"`
	DebtLoad float64   `json:"debtLoad"`
	TakenAt  time.Time `json:"takenAt"`
}

// NewHealthScoreResponse maps a snapshot onto the response shape
func NewHealthScoreResponse(s *models.HealthSnapshot) HealthScoreResponse {
	return HealthScoreResponse{
		Score:    s.Score,
		Label:    s.Label,
		Margin:   s.Margin,
		Runway:   s.Runway,
		DebtLoad: s.DebtLoad,
		TakenAt:  s.TakenAt,
	}
}

// HealthHistoryEntry is one point of the score trend
type HealthHistoryEntry struct {
	TakenAt time.Time `json:"t"`
	Score   int       `json:"score"`
}

// HealthHistoryResponse is the retained score trend, oldest first
type HealthHistoryResponse struct {
	History []HealthHistoryEntry `json:"history"`
}

// NewHealthHistoryResponse maps the snapshot list onto the trend shape
func NewHealthHistoryResponse(snapshots []models.HealthSnapshot) HealthHistoryResponse {
	entries := make([]HealthHistoryEntry, 0, len(snapshots))
	for _, s := range snapshots {
		entries = append(entries, HealthHistoryEntry{TakenAt: s.TakenAt, Score: s.Score})
	}
	return HealthHistoryResponse{History: entries}
}
