package services

import (
	"errors"
	"log/slog"

	"olibranch/internal/models"
	"olibranch/internal/repositories"
	"olibranch/internal/scoring"
)

var (
	ErrAnalysisQuotaExceeded = errors.New("weekly analysis limit reached")
	ErrNoLedger              = errors.New("no bank transactions to analyze")
)

type feeAnalysisService struct {
	bankRepo     repositories.BankRepositoryInterface
	analysisRepo repositories.FeeAnalysisRepositoryInterface
	subscription SubscriptionServiceInterface
	metrics      MetricsRecorderInterface
}

// NewFeeAnalysisService creates a new fee analysis service
func NewFeeAnalysisService(
	bankRepo repositories.BankRepositoryInterface,
	analysisRepo repositories.FeeAnalysisRepositoryInterface,
	subscription SubscriptionServiceInterface,
	metrics MetricsRecorderInterface,
) FeeAnalysisServiceInterface {
	return &feeAnalysisService{
		bankRepo:     bankRepo,
		analysisRepo: analysisRepo,
		subscription: subscription,
		metrics:      metrics,
	}
}

// RunAnalysis recomputes the fee analysis over the current ledger. The run
// is metered: free-plan users get a fixed weekly allowance and the quota is
// consumed only when an analysis actually executes.
func (s *feeAnalysisService) RunAnalysis() (*scoring.FeeAnalysis, error) {
	allowed, reason, err := s.subscription.CanPerformAnalysis()
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.metrics.RecordFeeAnalysis("denied")
		slog.Warn("fee analysis denied", "reason", reason)
		return nil, ErrAnalysisQuotaExceeded
	}

	transactions, err := s.bankRepo.GetTransactions()
	if err != nil {
		s.metrics.RecordFeeAnalysis("error")
		return nil, err
	}
	if len(transactions) == 0 {
		s.metrics.RecordFeeAnalysis("empty")
		return nil, ErrNoLedger
	}

	analysis := scoring.RunFeeAnalysis(toLedgerLines(transactions))

	if err := s.analysisRepo.Save(models.FromAnalysis(analysis)); err != nil {
		s.metrics.RecordFeeAnalysis("error")
		return nil, err
	}
	if err := s.subscription.RecordAnalysis(); err != nil {
		return nil, err
	}

	s.metrics.RecordFeeAnalysis("completed")

	slog.Info("fee analysis completed",
		"fee_count", analysis.FeeCount,
		"total_fees", analysis.TotalFees,
		"avoidable_fees", analysis.AvoidableFees,
		"mismatch_score", analysis.MismatchScore)

	return &analysis, nil
}

// LatestAnalysis retrieves the most recent stored analysis
func (s *feeAnalysisService) LatestAnalysis() (*scoring.FeeAnalysis, error) {
	record, err := s.analysisRepo.Latest()
	if err != nil {
		return nil, err
	}
	analysis := record.ToAnalysis()
	return &analysis, nil
}

// FeeTaxonomy exposes the full fee rule catalog
func (s *feeAnalysisService) FeeTaxonomy() map[string]scoring.FeeRule {
	return scoring.FeeRules()
}
