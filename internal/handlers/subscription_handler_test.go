package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"olibranch/internal/database"
	"olibranch/internal/dto"
	"olibranch/internal/models"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *SubscriptionHandler
	subRepo repositories.SubscriptionRepositoryInterface
}

func TestSubscriptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())

	s.subRepo = repositories.NewSubscriptionRepository(s.db.DB)
	service := services.NewSubscriptionService(s.subRepo, services.NewNoopMetrics())
	s.handler = NewSubscriptionHandler(service)
}

func (s *SubscriptionHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SubscriptionHandlerTestSuite) get() dto.SubscriptionResponse {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.GetSubscription(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SubscriptionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *SubscriptionHandlerTestSuite) TestGetSubscription_DefaultsToFree() {
	resp := s.get()
	s.Equal(models.PlanFree, resp.Plan)
	s.Equal(0, resp.AnalysisCount)
	s.Equal(models.FreeWeeklyAnalysisLimit, resp.AnalysisLimit)
	s.True(resp.AnalysesAllowed)
}

func (s *SubscriptionHandlerTestSuite) TestUpgradeAndCancel() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/upgrade", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.Upgrade(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SubscriptionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.PlanPremium, resp.Plan)
	s.Equal(0, resp.AnalysisLimit)
	s.True(resp.AnalysesAllowed)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/subscription/cancel", nil)
	rec = httptest.NewRecorder()
	c = s.echo.NewContext(req, rec)
	s.NoError(s.handler.Cancel(c))
	s.Equal(http.StatusOK, rec.Code)

	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.PlanFree, resp.Plan)
	s.Equal(models.FreeWeeklyAnalysisLimit, resp.AnalysisLimit)
}

func (s *SubscriptionHandlerTestSuite) TestGetSubscription_QuotaExhausted() {
	sub, err := s.subRepo.Get()
	s.Require().NoError(err)
	sub.RecordAnalysis(sub.WeekStartAt)
	sub.RecordAnalysis(sub.WeekStartAt)
	s.Require().NoError(s.subRepo.Save(sub))

	resp := s.get()
	s.Equal(2, resp.AnalysisCount)
	s.False(resp.AnalysesAllowed)
}
