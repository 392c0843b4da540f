package services

import (
	"testing"

	"olibranch/internal/database"
	"olibranch/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// BankServiceSuite defines the test suite for BankService
type BankServiceSuite struct {
	suite.Suite
	db           *database.DB
	service      BankServiceInterface
	analysisRepo repositories.FeeAnalysisRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *BankServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	bankRepo := repositories.NewBankRepository(s.db.DB)
	s.analysisRepo = repositories.NewFeeAnalysisRepository(s.db.DB)
	s.service = NewBankService(bankRepo, s.analysisRepo, NewStatementGenerator(), NewNoopMetrics())
}

// TearDownTest runs after each test in the suite
func (s *BankServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBankServiceSuite runs the test suite
func TestBankServiceSuite(t *testing.T) {
	suite.Run(t, new(BankServiceSuite))
}

func (s *BankServiceSuite) TestLinkBank_SeedsStatementAndAnalysis() {
	bank, err := s.service.LinkBank("Chase")
	s.NoError(err)
	s.NotEqual(uuid.Nil, bank.ID)
	s.NotEmpty(bank.AccountMask)

	transactions, err := s.service.Transactions()
	s.NoError(err)
	s.Len(transactions, 12)

	record, err := s.analysisRepo.Latest()
	s.NoError(err)
	s.Equal(12, record.FeeCount)
	s.True(record.TotalFees.IsPositive())
}

func (s *BankServiceSuite) TestLinkBank_Duplicate() {
	_, err := s.service.LinkBank("Chase")
	s.NoError(err)

	_, err = s.service.LinkBank("Chase")
	s.ErrorIs(err, repositories.ErrBankAlreadyLinked)
}

func (s *BankServiceSuite) TestUnlinkBank_LastLinkClearsLedger() {
	bank, err := s.service.LinkBank("Novo")
	s.NoError(err)

	s.NoError(s.service.UnlinkBank(bank.ID))

	transactions, err := s.service.Transactions()
	s.NoError(err)
	s.Empty(transactions)

	_, err = s.analysisRepo.Latest()
	s.ErrorIs(err, repositories.ErrNoFeeAnalysis)
}

func (s *BankServiceSuite) TestUnlinkBank_OthersRemainKeepsLedger() {
	first, err := s.service.LinkBank("Chase")
	s.NoError(err)
	_, err = s.service.LinkBank("Mercury")
	s.NoError(err)

	s.NoError(s.service.UnlinkBank(first.ID))

	transactions, err := s.service.Transactions()
	s.NoError(err)
	s.NotEmpty(transactions)

	banks, err := s.service.ListBanks()
	s.NoError(err)
	s.Len(banks, 1)
	s.Equal("Mercury", banks[0].BankName)
}

func (s *BankServiceSuite) TestUnlinkBank_NotFound() {
	err := s.service.UnlinkBank(uuid.New())
	s.ErrorIs(err, repositories.ErrBankNotFound)
}
