package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// SettingsHandler handles per-user settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest represents the request payload for updating settings.
// Omitted fields keep their stored values.
type UpdateSettingsRequest struct {
	CurrencyCode *string `json:"currency_code" binding:"omitempty,len=3,alpha"`
	CycleMonths  *int    `json:"cycle_months" binding:"omitempty,cycle_months"`
}

// GetSettings returns the authenticated user's settings, creating defaults
// on first access.
// @Summary     Get settings
// @Description Get the authenticated user's settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Settings "User settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings":        settings,
		"currency_symbol": models.CurrencySymbol(settings.CurrencyCode),
	})
}

// UpdateSettings handles merge-style updates to the user's settings.
// @Summary     Update settings
// @Description Update the authenticated user's settings; omitted fields are unchanged
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Settings changes"
// @Success     200 {object} models.Settings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, req.CurrencyCode, req.CycleMonths)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SETTINGS", "settings", settings.ID, c.ClientIP(),
		map[string]interface{}{"currency_code": settings.CurrencyCode, "cycle_months": settings.CycleMonths})

	c.JSON(http.StatusOK, gin.H{
		"settings":        settings,
		"currency_symbol": models.CurrencySymbol(settings.CurrencyCode),
	})
}
