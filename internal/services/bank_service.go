package services

import (
	"log/slog"

	"olibranch/internal/models"
	"olibranch/internal/repositories"
	"olibranch/internal/scoring"

	"github.com/google/uuid"
)

type bankService struct {
	bankRepo     repositories.BankRepositoryInterface
	analysisRepo repositories.FeeAnalysisRepositoryInterface
	generator    StatementGeneratorInterface
	metrics      MetricsRecorderInterface
}

// NewBankService creates a new bank linking service
func NewBankService(
	bankRepo repositories.BankRepositoryInterface,
	analysisRepo repositories.FeeAnalysisRepositoryInterface,
	generator StatementGeneratorInterface,
	metrics MetricsRecorderInterface,
) BankServiceInterface {
	return &bankService{
		bankRepo:     bankRepo,
		analysisRepo: analysisRepo,
		generator:    generator,
		metrics:      metrics,
	}
}

// LinkBank connects a bank, seeds the demo statement and runs an immediate
// fee analysis over it. The seed analysis does not count against the weekly
// quota; only user-requested reruns do.
func (s *bankService) LinkBank(bankName string) (*models.LinkedBank, error) {
	bank := &models.LinkedBank{
		BankName:    bankName,
		AccountMask: s.generator.GenerateAccountMask(),
	}

	if err := s.bankRepo.Link(bank); err != nil {
		return nil, err
	}

	statement := s.generator.GenerateStatement()
	if err := s.bankRepo.ReplaceTransactions(statement); err != nil {
		slog.Error("failed to seed demo statement", "bank", bankName, "error", err)
		return nil, err
	}

	analysis := scoring.RunFeeAnalysis(toLedgerLines(statement))
	if err := s.analysisRepo.Save(models.FromAnalysis(analysis)); err != nil {
		slog.Error("failed to store seed analysis", "bank", bankName, "error", err)
		return nil, err
	}

	s.metrics.RecordBankLink("link")
	s.refreshLinkGauge()

	slog.Info("bank linked",
		"bank", bankName,
		"bank_id", bank.ID,
		"statement_lines", len(statement),
		"fee_total", analysis.TotalFees)

	return bank, nil
}

// UnlinkBank disconnects a bank. Removing the last connection also clears
// the ledger and any stored analysis.
func (s *bankService) UnlinkBank(id uuid.UUID) error {
	if err := s.bankRepo.Unlink(id); err != nil {
		return err
	}

	remaining, err := s.bankRepo.Count()
	if err != nil {
		return err
	}

	if remaining == 0 {
		if _, err := s.bankRepo.ClearTransactions(); err != nil {
			return err
		}
		if _, err := s.analysisRepo.DeleteAll(); err != nil {
			return err
		}
		slog.Info("last bank unlinked, ledger cleared", "bank_id", id)
	} else {
		slog.Info("bank unlinked", "bank_id", id, "remaining", remaining)
	}

	s.metrics.RecordBankLink("unlink")
	s.refreshLinkGauge()

	return nil
}

// ListBanks retrieves all linked banks
func (s *bankService) ListBanks() ([]models.LinkedBank, error) {
	return s.bankRepo.GetAll()
}

// Transactions retrieves the current mock ledger
func (s *bankService) Transactions() ([]models.BankTransaction, error) {
	return s.bankRepo.GetTransactions()
}

func (s *bankService) refreshLinkGauge() {
	if count, err := s.bankRepo.Count(); err == nil {
		s.metrics.SetLinkedBanks(int(count))
	}
}

// toLedgerLines maps stored ledger rows onto the scoring inputs
func toLedgerLines(transactions []models.BankTransaction) []scoring.LedgerLine {
	lines := make([]scoring.LedgerLine, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, scoring.LedgerLine{
			ID:          t.ID.String(),
			Date:        t.PostedOn.Format("2006-01-02"),
			Description: t.Description,
			Amount:      t.Amount,
			Category:    t.Category,
			FeeType:     t.FeeType,
		})
	}
	return lines
}
