package middleware

import (
	"github.com/labstack/echo/v4"
)

// APIVersion describes the version advertised on API responses and,
// when the version is scheduled for retirement, its deprecation window.
type APIVersion struct {
	Version           string
	LatestVersion     string
	DeprecationDate   string // empty while the version is current
	SunsetDate        string
	DeprecationNotice string
}

// CurrentAPIVersion is the version served by this deployment.
var CurrentAPIVersion = APIVersion{
	Version:       "1.0.0",
	LatestVersion: "1.0.0",
}

// APIVersionMiddleware stamps version headers on every API response so
// integrators can detect upcoming deprecations.
func APIVersionMiddleware(version APIVersion) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", version.Version)
			h.Set("X-API-Latest-Version", version.LatestVersion)

			if version.DeprecationDate != "" {
				h.Set("Deprecation", "true")
				h.Set("X-API-Deprecation-Date", version.DeprecationDate)
				if version.SunsetDate != "" {
					h.Set("Sunset", version.SunsetDate)
					h.Set("X-API-Sunset-Date", version.SunsetDate)
				}
				if version.DeprecationNotice != "" {
					h.Set("X-API-Deprecation-Notice", version.DeprecationNotice)
				}
			}

			return next(c)
		}
	}
}
