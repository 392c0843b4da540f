package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"

	// FreeWeeklyAnalysisLimit is the number of fee analyses a free plan may
	// run inside one rolling 7-day window.
	FreeWeeklyAnalysisLimit = 2

	quotaWindowDays = 7
)

var ErrInvalidPlan = errors.New("plan must be 'free' or 'premium'")

// Subscription tracks the plan and the rolling weekly analysis quota. One
// logical record per installation.
type Subscription struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Plan           string     `gorm:"type:varchar(20);not null;default:'free'" json:"plan"`
	AnalysisCount  int        `gorm:"not null;default:0" json:"analysisCount"`
	LastAnalysisAt *time.Time `json:"lastAnalysisAt,omitempty"`
	WeekStartAt    time.Time  `gorm:"not null" json:"weekStartAt"`
	CreatedAt      time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Subscription
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Plan == "" {
		s.Plan = PlanFree
	}
	if s.WeekStartAt.IsZero() {
		s.WeekStartAt = time.Now().UTC()
	}
	return s.Validate()
}

// Validate validates the subscription fields
func (s *Subscription) Validate() error {
	if s.Plan != PlanFree && s.Plan != PlanPremium {
		return ErrInvalidPlan
	}
	return nil
}

// IsPremium returns true for the premium plan.
func (s *Subscription) IsPremium() bool {
	return s.Plan == PlanPremium
}

// WindowExpired reports whether the rolling quota window has lapsed and the
// counter should reset.
func (s *Subscription) WindowExpired(now time.Time) bool {
	return now.Sub(s.WeekStartAt) >= quotaWindowDays*24*time.Hour
}

// ResetWindow starts a fresh quota window at now.
func (s *Subscription) ResetWindow(now time.Time) {
	s.AnalysisCount = 0
	s.WeekStartAt = now
}

// RecordAnalysis counts one analysis against the current window.
func (s *Subscription) RecordAnalysis(now time.Time) {
	s.AnalysisCount++
	s.LastAnalysisAt = &now
}

// TableName returns the table name for Subscription
func (s *Subscription) TableName() string {
	return "subscriptions"
}
