package auth

import (
	"context"
	"testing"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	cfg := &config.Config{
		DefaultAdminEmail:    "admin@barracuda.com",
		DefaultAdminPassword: "admin123",
	}
	return NewService(client, cfg), client
}

func TestLoginBootstrapSeedsAdmin(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	account, token, err := service.Login(ctx, "admin@barracuda.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@barracuda.com", account.Email)
	assert.Equal(t, "admin", account.Role)
	assert.Len(t, token, 64)
	require.NotNil(t, account.LastLogin)

	total, err := client.Admin.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestLoginInvalidCredentials(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, _, err := service.Login(ctx, "admin@barracuda.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "nobody@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBcryptAccount(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	_, err = client.Admin.Create().
		SetEmail("ops@barracuda.com").
		SetPasswordHash(hash).
		SetName("Ops").
		Save(ctx)
	require.NoError(t, err)

	account, token, err := service.Login(ctx, "ops@barracuda.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ops", account.Name)
	assert.NotEmpty(t, token)

	_, _, err = service.Login(ctx, "ops@barracuda.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminByToken(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, token, err := service.Login(ctx, "admin@barracuda.com", "admin123")
	require.NoError(t, err)

	account, err := service.AdminByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@barracuda.com", account.Email)

	_, err = service.AdminByToken(ctx, "not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginRotatesToken(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, first, err := service.Login(ctx, "admin@barracuda.com", "admin123")
	require.NoError(t, err)
	_, second, err := service.Login(ctx, "admin@barracuda.com", "admin123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Only the latest token resolves.
	_, err = service.AdminByToken(ctx, first)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = service.AdminByToken(ctx, second)
	assert.NoError(t, err)
}
