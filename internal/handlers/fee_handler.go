package handlers

import (
	"net/http"

	"olibranch/internal/errors"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
)

// FeeHandler handles fee analysis HTTP requests
type FeeHandler struct {
	feeService services.FeeAnalysisServiceInterface
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(feeService services.FeeAnalysisServiceInterface) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// RunAnalysis recomputes the fee analysis over the current ledger
// @Summary Run fee analysis
// @Description Aggregate the ledger's fee lines by category and score the avoidable share. Metered on the free plan.
// @Tags Fees
// @Produce json
// @Success 200 {object} scoring.FeeAnalysis
// @Failure 422 {object} errors.ErrorResponse "ANALYSIS_003 - No transactions to analyze"
// @Failure 429 {object} errors.ErrorResponse "ANALYSIS_002 - Weekly quota exceeded"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fees/analysis [post]
func (h *FeeHandler) RunAnalysis(c echo.Context) error {
	analysis, err := h.feeService.RunAnalysis()
	if err != nil {
		switch err {
		case services.ErrAnalysisQuotaExceeded:
			return SendError(c, errors.AnalysisQuotaExceeded)
		case services.ErrNoLedger:
			return SendError(c, errors.AnalysisNoLedger)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, analysis)
}

// LatestAnalysis returns the most recent stored analysis
// @Summary Get latest fee analysis
// @Tags Fees
// @Produce json
// @Success 200 {object} scoring.FeeAnalysis
// @Failure 404 {object} errors.ErrorResponse "ANALYSIS_001 - No analysis stored"
// @Router /fees/analysis [get]
func (h *FeeHandler) LatestAnalysis(c echo.Context) error {
	analysis, err := h.feeService.LatestAnalysis()
	if err != nil {
		if err == repositories.ErrNoFeeAnalysis {
			return SendError(c, errors.AnalysisNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, analysis)
}

// FeeRules returns the fee taxonomy
// @Summary Get fee rules
// @Description The full fee-type catalog with avoidability, severity and recommendations
// @Tags Fees
// @Produce json
// @Success 200 {object} map[string]scoring.FeeRule
// @Router /fees/rules [get]
func (h *FeeHandler) FeeRules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.feeService.FeeTaxonomy())
}
