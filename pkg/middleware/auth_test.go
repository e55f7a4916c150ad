package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/barracuda-partners/backend/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupAuthTest(t *testing.T) (*auth.Service, string, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	cfg := &config.Config{
		DefaultAdminEmail:    "admin@barracuda.com",
		DefaultAdminPassword: "admin123",
	}
	service := auth.NewService(client, cfg)

	_, token, err := service.Login(context.Background(), "admin@barracuda.com", "admin123")
	require.NoError(t, err)
	return service, token, client
}

func runAdminAuth(t *testing.T, service *auth.Service, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminAuth(service)(func(c echo.Context) error {
		account, ok := c.Get(AdminContextKey).(*ent.Admin)
		require.True(t, ok)
		return c.String(http.StatusOK, account.Email)
	})
	return rec, handler(c)
}

func TestAdminAuthValidToken(t *testing.T) {
	service, token, client := setupAuthTest(t)
	defer client.Close()

	rec, err := runAdminAuth(t, service, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@barracuda.com", rec.Body.String())
}

func TestAdminAuthMissingHeader(t *testing.T) {
	service, _, client := setupAuthTest(t)
	defer client.Close()

	rec, err := runAdminAuth(t, service, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}

func TestAdminAuthBadToken(t *testing.T) {
	service, _, client := setupAuthTest(t)
	defer client.Close()

	rec, err := runAdminAuth(t, service, "Bearer bogus")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAdminAuthWrongScheme(t *testing.T) {
	service, token, client := setupAuthTest(t)
	defer client.Close()

	rec, err := runAdminAuth(t, service, "Basic "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
