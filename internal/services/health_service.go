package services

import (
	"log/slog"
	"time"

	"olibranch/internal/models"
	"olibranch/internal/repositories"
	"olibranch/internal/scoring"
)

type healthService struct {
	healthRepo repositories.HealthRepositoryInterface
	metrics    MetricsRecorderInterface
	now        func() time.Time
}

// NewHealthService creates a new financial health service
func NewHealthService(
	healthRepo repositories.HealthRepositoryInterface,
	metrics MetricsRecorderInterface,
) HealthServiceInterface {
	return &healthService{
		healthRepo: healthRepo,
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SaveInputs stores a new financial snapshot, scores it and appends the
// score to the rolling history.
func (s *healthService) SaveInputs(inputs *models.HealthInputs) (*models.HealthSnapshot, error) {
	if err := s.healthRepo.SaveInputs(inputs); err != nil {
		slog.Error("failed to save health inputs", "error", err)
		return nil, err
	}

	result := scoring.ComputeHealthScore(scoring.HealthInputs{
		Revenue:  inputs.Revenue.InexactFloat64(),
		Expenses: inputs.Expenses.InexactFloat64(),
		Debt:     inputs.Debt.InexactFloat64(),
		Cash:     inputs.Cash.InexactFloat64(),
	})

	snapshot := &models.HealthSnapshot{
		Score:    result.Score,
		Label:    scoring.HealthLabel(result.Score),
		Margin:   result.Metrics.Margin,
		Runway:   result.Metrics.Runway,
		DebtLoad: result.Metrics.DebtLoad,
		TakenAt:  s.now(),
	}

	if err := s.healthRepo.AppendSnapshot(snapshot); err != nil {
		slog.Error("failed to record health snapshot", "error", err)
		return nil, err
	}

	s.metrics.ObserveHealthScore(result.Score)

	slog.Info("health score computed",
		"score", result.Score,
		"label", snapshot.Label)

	return snapshot, nil
}

// GetInputs retrieves the current financial snapshot
func (s *healthService) GetInputs() (*models.HealthInputs, error) {
	return s.healthRepo.GetInputs()
}

// CurrentScore retrieves the most recent health snapshot
func (s *healthService) CurrentScore() (*models.HealthSnapshot, error) {
	return s.healthRepo.LatestSnapshot()
}

// History retrieves the retained score history, oldest first
func (s *healthService) History() ([]models.HealthSnapshot, error) {
	return s.healthRepo.GetHistory()
}

// ClearInputs removes the stored financial snapshot. The score history is
// kept for the trend display.
func (s *healthService) ClearInputs() error {
	return s.healthRepo.DeleteInputs()
}
