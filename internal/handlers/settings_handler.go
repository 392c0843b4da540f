package handlers

import (
	"net/http"

	"olibranch/internal/dto"
	"olibranch/internal/errors"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles preference and payment link HTTP requests
type SettingsHandler struct {
	settingsService services.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the stored preferences
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsService.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// UpdateSettings merges preference changes into the stored record
// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Preference changes"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings [patch]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	settings, err := h.settingsService.Update(req.ToModel())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// UpdatePaymentLinks replaces the stored payment handles
// @Summary Update payment links
// @Description Replace the whole set of payment handles. Empty strings clear a handle.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.PaymentLinksRequest true "Payment handles"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings/payment-links [put]
func (h *SettingsHandler) UpdatePaymentLinks(c echo.Context) error {
	var req dto.PaymentLinksRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	settings, err := h.settingsService.UpdatePaymentLinks(req.ToLinks())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}
