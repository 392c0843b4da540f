package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"olibranch/internal/database"
	"olibranch/internal/dto"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type BankHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *BankHandler
}

func TestBankHandlerSuite(t *testing.T) {
	suite.Run(t, new(BankHandlerTestSuite))
}

func (s *BankHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())

	bankRepo := repositories.NewBankRepository(s.db.DB)
	analysisRepo := repositories.NewFeeAnalysisRepository(s.db.DB)
	bankService := services.NewBankService(bankRepo, analysisRepo, services.NewStatementGenerator(), services.NewNoopMetrics())
	s.handler = NewBankHandler(bankService)
}

func (s *BankHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BankHandlerTestSuite) linkBank(name string) dto.LinkedBankResponse {
	body := `{"bankName":"` + name + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.LinkBank(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.LinkedBankResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *BankHandlerTestSuite) TestLinkBank() {
	bank := s.linkBank("Chase")
	s.Equal("Chase", bank.BankName)
	s.NotEmpty(bank.AccountMask)
	s.True(strings.HasPrefix(bank.AccountMask, "****"))
}

func (s *BankHandlerTestSuite) TestLinkBank_MissingName() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.LinkBank(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BankHandlerTestSuite) TestLinkBank_Duplicate() {
	s.linkBank("Chase")

	body := `{"bankName":"Chase"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.LinkBank(c))
	s.Equal(http.StatusConflict, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("BANK_003", resp.Error.Code)
}

func (s *BankHandlerTestSuite) TestListTransactions_SeededByLink() {
	s.linkBank("Mercury")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banks/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Transactions, 12)
	for _, t := range resp.Transactions {
		s.Equal("fee", t.Category)
		s.NotEmpty(t.FeeType)
		s.True(strings.HasPrefix(t.Amount, "-"))
	}
}

func (s *BankHandlerTestSuite) TestUnlinkBank_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.NoError(s.handler.UnlinkBank(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BankHandlerTestSuite) TestUnlinkBank_LastClearsLedger() {
	bank := s.linkBank("Novo")

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(bank.ID.String())
	s.NoError(s.handler.UnlinkBank(c))
	s.Equal(http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/banks/transactions", nil)
	list := httptest.NewRecorder()
	c = s.echo.NewContext(req, list)
	s.NoError(s.handler.ListTransactions(c))

	var resp dto.ListTransactionsResponse
	s.NoError(json.Unmarshal(list.Body.Bytes(), &resp))
	s.Empty(resp.Transactions)
}
