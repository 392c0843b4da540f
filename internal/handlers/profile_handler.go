package handlers

import (
	"net/http"

	"olibranch/internal/dto"
	"olibranch/internal/errors"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProfileHandler handles intake and advisory scoring HTTP requests
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfile stores a new intake submission and returns its scorecard
// @Summary Submit intake form
// @Description Store a business intake submission and immediately compute its advisory scorecard
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "Intake form"
// @Success 201 {object} SuccessResponse "Stored profile with scorecard"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 422 {object} errors.ErrorResponse "PROFILE_003 - Consent missing"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req dto.CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	if !req.Consent {
		return SendError(c, errors.ProfileConsentRequired)
	}

	profile, err := h.profileService.CreateProfile(req.ToModel())
	if err != nil {
		return SendSystemError(c, err)
	}

	card := h.profileService.ScoreProfile(profile)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"profile":   dto.NewProfileResponse(profile),
			"scorecard": card,
		},
		Message: "Intake submission stored",
	})
}

// ListProfiles returns stored submissions, newest first
// @Summary List profiles
// @Tags Profiles
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListProfilesResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	profiles, total, err := h.profileService.ListProfilesPage(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, dto.NewProfileResponse(&profiles[i]))
	}

	return c.JSON(http.StatusOK, dto.ListProfilesResponse{
		Profiles: responses,
		Total:    int(total),
	})
}

// GetProfile returns one stored submission
// @Summary Get profile
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} errors.ErrorResponse "PROFILE_002 - Invalid profile ID"
// @Failure 404 {object} errors.ErrorResponse "PROFILE_001 - Profile not found"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ProfileInvalidID)
	}

	profile, err := h.profileService.GetProfile(id)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// GetScorecard computes the advisory scorecard for one stored submission
// @Summary Get scorecard
// @Description Compute mismatch score, risk label, bank matches, grant suggestions and state resources for a profile
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} models.Scorecard
// @Failure 400 {object} errors.ErrorResponse "PROFILE_002 - Invalid profile ID"
// @Failure 404 {object} errors.ErrorResponse "PROFILE_001 - Profile not found"
// @Router /profiles/{id}/scorecard [get]
func (h *ProfileHandler) GetScorecard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ProfileInvalidID)
	}

	card, err := h.profileService.ScoreProfileByID(id)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, card)
}

// ClearProfiles deletes every stored submission
// @Summary Clear profiles
// @Tags Profiles
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /profiles [delete]
func (h *ProfileHandler) ClearProfiles(c echo.Context) error {
	removed, err := h.profileService.ClearProfiles()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Profiles cleared",
		Meta:    map[string]int64{"removed": removed},
	})
}

// RiskChart returns the dashboard risk distribution
// @Summary Risk distribution chart
// @Description Bucket every stored profile by mismatch risk label
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.RiskSlice
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/risk-chart [get]
func (h *ProfileHandler) RiskChart(c echo.Context) error {
	chart, err := h.profileService.RiskChart()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, chart)
}
