package handlers

import (
	"net/http"

	"olibranch/internal/dto"
	"olibranch/internal/errors"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
)

// FinancialHealthHandler handles financial health scoring HTTP requests
type FinancialHealthHandler struct {
	healthService services.HealthServiceInterface
}

// NewFinancialHealthHandler creates a new financial health handler
func NewFinancialHealthHandler(healthService services.HealthServiceInterface) *FinancialHealthHandler {
	return &FinancialHealthHandler{healthService: healthService}
}

// SaveInputs stores a financial snapshot and returns the computed score
// @Summary Save health inputs
// @Description Store self-reported revenue, expenses, debt and cash, compute the health score and append it to the trend
// @Tags Health
// @Accept json
// @Produce json
// @Param request body dto.HealthInputsRequest true "Financial snapshot"
// @Success 200 {object} dto.HealthScoreResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /health-score/inputs [put]
func (h *FinancialHealthHandler) SaveInputs(c echo.Context) error {
	var req dto.HealthInputsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	snapshot, err := h.healthService.SaveInputs(req.ToModel())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewHealthScoreResponse(snapshot))
}

// GetInputs returns the stored financial snapshot
// @Summary Get health inputs
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthInputsResponse
// @Failure 404 {object} errors.ErrorResponse "HEALTH_001 - Inputs not recorded"
// @Router /health-score/inputs [get]
func (h *FinancialHealthHandler) GetInputs(c echo.Context) error {
	inputs, err := h.healthService.GetInputs()
	if err != nil {
		if err == repositories.ErrHealthInputsNotFound {
			return SendError(c, errors.HealthInputsMissing)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewHealthInputsResponse(inputs))
}

// ClearInputs removes the stored financial snapshot
// @Summary Clear health inputs
// @Description Remove the stored snapshot. The score trend is retained.
// @Tags Health
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /health-score/inputs [delete]
func (h *FinancialHealthHandler) ClearInputs(c echo.Context) error {
	if err := h.healthService.ClearInputs(); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Health inputs cleared"})
}

// GetScore returns the most recent health score
// @Summary Get current health score
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthScoreResponse
// @Failure 404 {object} errors.ErrorResponse "HEALTH_001 - No score computed yet"
// @Router /health-score [get]
func (h *FinancialHealthHandler) GetScore(c echo.Context) error {
	snapshot, err := h.healthService.CurrentScore()
	if err != nil {
		if err == repositories.ErrNoHealthHistory {
			return SendError(c, errors.HealthInputsMissing,
				errors.WithDetails("No health score computed yet"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewHealthScoreResponse(snapshot))
}

// GetHistory returns the retained score trend
// @Summary Get health score history
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthHistoryResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /health-score/history [get]
func (h *FinancialHealthHandler) GetHistory(c echo.Context) error {
	history, err := h.healthService.History()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewHealthHistoryResponse(history))
}
