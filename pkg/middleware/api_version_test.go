package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAPIVersionMiddlewareCurrent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/goals/postback", nil)
	rec := httptest.NewRecorder()

	handler := APIVersionMiddleware(CurrentAPIVersion)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Latest-Version"))
	assert.Empty(t, rec.Header().Get("Deprecation"))
	assert.Empty(t, rec.Header().Get("X-API-Deprecation-Date"))
}

func TestAPIVersionMiddlewareDeprecated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/goals/postback", nil)
	rec := httptest.NewRecorder()

	version := APIVersion{
		Version:           "1.0.0",
		LatestVersion:     "2.0.0",
		DeprecationDate:   "2026-06-01",
		SunsetDate:        "2026-12-01",
		DeprecationNotice: "Please migrate to v2. See https://docs.barracuda-partners.com/migration",
	}

	handler := APIVersionMiddleware(version)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "2.0.0", rec.Header().Get("X-API-Latest-Version"))
	assert.Equal(t, "true", rec.Header().Get("Deprecation"))
	assert.Equal(t, "2026-06-01", rec.Header().Get("X-API-Deprecation-Date"))
	assert.Equal(t, "2026-12-01", rec.Header().Get("Sunset"))
	assert.Equal(t, "2026-12-01", rec.Header().Get("X-API-Sunset-Date"))
	assert.Equal(t, "Please migrate to v2. See https://docs.barracuda-partners.com/migration", rec.Header().Get("X-API-Deprecation-Notice"))
}
