package services

import (
	"log/slog"
	"time"

	"olibranch/internal/models"
	"olibranch/internal/repositories"
)

// QuotaExceededReason is returned when the free weekly allowance is used up.
const QuotaExceededReason = "Weekly limit reached (2 free analyses per week)"

type subscriptionService struct {
	subRepo repositories.SubscriptionRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subRepo repositories.SubscriptionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SubscriptionServiceInterface {
	return &subscriptionService{
		subRepo: subRepo,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Get retrieves the current subscription state
func (s *subscriptionService) Get() (*models.Subscription, error) {
	return s.subRepo.Get()
}

// CanPerformAnalysis reports whether an analysis is allowed right now.
// Premium is unmetered. On the free plan the counter resets once the rolling
// 7-day window lapses; checking past the window performs the reset.
func (s *subscriptionService) CanPerformAnalysis() (bool, string, error) {
	sub, err := s.subRepo.Get()
	if err != nil {
		return false, "", err
	}

	if sub.IsPremium() {
		return true, "", nil
	}

	now := s.now()
	if sub.WindowExpired(now) {
		sub.ResetWindow(now)
		if err := s.subRepo.Save(sub); err != nil {
			return false, "", err
		}
		return true, "", nil
	}

	if sub.AnalysisCount >= models.FreeWeeklyAnalysisLimit {
		return false, QuotaExceededReason, nil
	}

	return true, "", nil
}

// RecordAnalysis counts one analysis against the current window
func (s *subscriptionService) RecordAnalysis() error {
	sub, err := s.subRepo.Get()
	if err != nil {
		return err
	}

	sub.RecordAnalysis(s.now())
	return s.subRepo.Save(sub)
}

// UpgradeToPremium switches to the premium plan
func (s *subscriptionService) UpgradeToPremium() (*models.Subscription, error) {
	return s.setPlan(models.PlanPremium)
}

// CancelPremium reverts to the free plan. The quota window is left as-is, so
// analyses already run this week still count.
func (s *subscriptionService) CancelPremium() (*models.Subscription, error) {
	return s.setPlan(models.PlanFree)
}

func (s *subscriptionService) setPlan(plan string) (*models.Subscription, error) {
	sub, err := s.subRepo.Get()
	if err != nil {
		return nil, err
	}

	sub.Plan = plan
	if err := s.subRepo.Save(sub); err != nil {
		return nil, err
	}

	s.metrics.RecordSubscriptionChange(plan)
	slog.Info("subscription plan changed", "plan", plan)
	return sub, nil
}
