package handlers

import (
	"net/http"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/pkg/api/errors"
	"github.com/barracuda-partners/backend/pkg/auth"
	"github.com/barracuda-partners/backend/pkg/metrics"
	"github.com/barracuda-partners/backend/pkg/middleware"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AdminAuthHandler handles the back-office login and profile endpoints
type AdminAuthHandler struct {
	auth      *auth.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAdminAuthHandler creates a new admin auth handler
func NewAdminAuthHandler(authService *auth.Service, m *metrics.Metrics) *AdminAuthHandler {
	return &AdminAuthHandler{
		auth:      authService,
		metrics:   m,
		validator: validator.New(),
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchange credentials for an opaque session token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse "Session token"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /admin/auth/login [post]
func (h *AdminAuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	admin, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.RecordLoginAttempt(false)
		if err == auth.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return errors.DatabaseError(c, err)
	}

	h.metrics.RecordLoginAttempt(true)

	return c.JSON(http.StatusOK, models.AuthResponse{
		Success: true,
		Data: models.AuthData{
			Token: token,
			Email: admin.Email,
			Name:  admin.Name,
			Role:  admin.Role,
		},
	})
}

// Profile godoc
// @Summary Admin profile
// @Description Return the identity behind the presented session token
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileData "Admin identity"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /admin/auth/profile [get]
func (h *AdminAuthHandler) Profile(c echo.Context) error {
	admin, ok := c.Get(middleware.AdminContextKey).(*ent.Admin)
	if !ok {
		return errors.UnauthorizedError(c, "Invalid token")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data": models.ProfileData{
			Email: admin.Email,
			Name:  admin.Name,
			Role:  admin.Role,
		},
	})
}
