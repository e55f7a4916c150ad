package settings

import (
	"context"
	"testing"

	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestSetGetUpsert(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	service := NewService(client)
	ctx := context.Background()

	value, err := service.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, service.Set(ctx, "notify_email", "ops@barracuda.com"))
	require.NoError(t, service.Set(ctx, "notify_email", "team@barracuda.com"))

	value, err = service.Get(ctx, "notify_email")
	require.NoError(t, err)
	assert.Equal(t, "team@barracuda.com", value)

	require.NoError(t, service.Set(ctx, "export_bucket", "exports"))

	all, err := service.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "exports", all["export_bucket"])

	total, err := client.Setting.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
