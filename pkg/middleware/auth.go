package middleware

import (
	"net/http"
	"strings"

	"github.com/barracuda-partners/backend/pkg/auth"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/labstack/echo/v4"
)

// AdminContextKey is where the authenticated admin is stored on the
// echo context.
const AdminContextKey = "admin"

// AdminAuth guards admin routes with opaque bearer tokens. The token is
// hashed and matched against the stored session hash; no state lives in
// the token itself.
func AdminAuth(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "No token provided",
				})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			account, err := authService.AdminByToken(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid token",
				})
			}

			c.Set(AdminContextKey, account)
			return next(c)
		}
	}
}
