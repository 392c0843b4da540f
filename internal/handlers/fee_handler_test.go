package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"olibranch/internal/database"
	"olibranch/internal/models"
	"olibranch/internal/repositories"
	"olibranch/internal/scoring"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type FeeHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	db          *database.DB
	handler     *FeeHandler
	bankHandler *BankHandler
}

func TestFeeHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeeHandlerTestSuite))
}

func (s *FeeHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())

	bankRepo := repositories.NewBankRepository(s.db.DB)
	analysisRepo := repositories.NewFeeAnalysisRepository(s.db.DB)
	subRepo := repositories.NewSubscriptionRepository(s.db.DB)
	metrics := services.NewNoopMetrics()

	subscription := services.NewSubscriptionService(subRepo, metrics)
	bankService := services.NewBankService(bankRepo, analysisRepo, services.NewStatementGenerator(), metrics)
	feeService := services.NewFeeAnalysisService(bankRepo, analysisRepo, subscription, metrics)

	s.handler = NewFeeHandler(feeService)
	s.bankHandler = NewBankHandler(bankService)
}

func (s *FeeHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *FeeHandlerTestSuite) linkBank(name string) {
	body := `{"bankName":"` + name + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.bankHandler.LinkBank(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *FeeHandlerTestSuite) runAnalysis() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fees/analysis", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.RunAnalysis(c))
	return rec
}

func (s *FeeHandlerTestSuite) TestRunAnalysis() {
	s.linkBank("Chase")

	rec := s.runAnalysis()
	s.Equal(http.StatusOK, rec.Code)

	var analysis scoring.FeeAnalysis
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &analysis))
	s.Equal(12, analysis.FeeCount)
	s.Equal(88, analysis.MismatchScore)
	s.Equal("overdraft", analysis.FeesByType[0].Type)
}

func (s *FeeHandlerTestSuite) TestRunAnalysis_NoLedger() {
	rec := s.runAnalysis()
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ANALYSIS_003", resp.Error.Code)
}

func (s *FeeHandlerTestSuite) TestRunAnalysis_QuotaExceeded() {
	s.linkBank("Chase")

	for i := 0; i < models.FreeWeeklyAnalysisLimit; i++ {
		rec := s.runAnalysis()
		s.Equal(http.StatusOK, rec.Code)
	}

	rec := s.runAnalysis()
	s.Equal(http.StatusTooManyRequests, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ANALYSIS_002", resp.Error.Code)
	s.Contains(resp.Error.Message, "Weekly limit reached")
}

func (s *FeeHandlerTestSuite) TestLatestAnalysis_NoneStored() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/analysis", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.LatestAnalysis(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *FeeHandlerTestSuite) TestLatestAnalysis_AfterLink() {
	// Linking stores a seed analysis without consuming quota.
	s.linkBank("Chase")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/analysis", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.LatestAnalysis(c))
	s.Equal(http.StatusOK, rec.Code)

	var analysis scoring.FeeAnalysis
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &analysis))
	s.Equal(12, analysis.FeeCount)
}

func (s *FeeHandlerTestSuite) TestFeeRules() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/rules", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.FeeRules(c))
	s.Equal(http.StatusOK, rec.Code)

	var rules map[string]scoring.FeeRule
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &rules))
	s.Len(rules, 8)
	s.Equal("Overdraft Fees", rules["overdraft"].Name)
}
