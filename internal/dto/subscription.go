package dto

import (
	"time"

	"olibranch/internal/models"
)

// SubscriptionResponse is the plan and quota state
type SubscriptionResponse struct {
	Plan            string     `json:"plan"`
	AnalysisCount   int        `json:"analysisCount"`
	AnalysisLimit   int        `json:"analysisLimit"`
	LastAnalysisAt  *time.Time `json:"lastAnalysisAt,omitempty"`
	WeekStartAt     time.Time  `json:"weekStartAt"`
	AnalysesAllowed bool       `json:"analysesAllowed"`
}

// NewSubscriptionResponse maps the subscription model onto the response.
// The limit only applies on the free plan; premium reports unlimited via
// analysesAllowed.
func NewSubscriptionResponse(s *models.Subscription, allowed bool) SubscriptionResponse {
	limit := models.FreeWeeklyAnalysisLimit
	if s.IsPremium() {
		limit = 0
	}
	return SubscriptionResponse{
		Plan:            s.Plan,
		AnalysisCount:   s.AnalysisCount,
		AnalysisLimit:   limit,
		LastAnalysisAt:  s.LastAnalysisAt,
		WeekStartAt:     s.WeekStartAt,
		AnalysesAllowed: allowed,
	}
}
