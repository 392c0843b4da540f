package handlers

import (
	"net/http"

	"olibranch/internal/dto"
	"olibranch/internal/services"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler handles plan and quota HTTP requests
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService services.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// GetSubscription returns the plan and quota state
// @Summary Get subscription
// @Tags Subscription
// @Produce json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /subscription [get]
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	sub, err := h.subscriptionService.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	allowed, _, err := h.subscriptionService.CanPerformAnalysis()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSubscriptionResponse(sub, allowed))
}

// Upgrade switches to the premium plan
// @Summary Upgrade to premium
// @Tags Subscription
// @Produce json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /subscription/upgrade [post]
func (h *SubscriptionHandler) Upgrade(c echo.Context) error {
	sub, err := h.subscriptionService.UpgradeToPremium()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSubscriptionResponse(sub, true))
}

// Cancel reverts to the free plan
// @Summary Cancel premium
// @Tags Subscription
// @Produce json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /subscription/cancel [post]
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	sub, err := h.subscriptionService.CancelPremium()
	if err != nil {
		return SendSystemError(c, err)
	}

	allowed, _, err := h.subscriptionService.CanPerformAnalysis()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSubscriptionResponse(sub, allowed))
}
