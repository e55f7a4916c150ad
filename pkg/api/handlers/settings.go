package handlers

import (
	"net/http"

	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/barracuda-partners/backend/pkg/settings"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SettingsHandler handles the back-office settings endpoints
type SettingsHandler struct {
	settings  *settings.Service
	validator *validator.Validate
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		settings:  settingsService,
		validator: validator.New(),
	}
}

// List godoc
// @Summary List settings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SuccessResponse "Settings"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/settings [get]
func (h *SettingsHandler) List(c echo.Context) error {
	all, err := h.settings.All(c.Request().Context())
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    all,
	})
}

// Put godoc
// @Summary Create or update a setting
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SettingRequest true "Setting"
// @Success 200 {object} models.SuccessResponse "Setting saved"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /admin/settings [put]
func (h *SettingsHandler) Put(c echo.Context) error {
	var req models.SettingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.settings.Set(c.Request().Context(), req.Key, req.Value); err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Setting saved successfully",
	})
}
