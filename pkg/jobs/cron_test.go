package jobs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/barracuda-partners/backend/pkg/cache"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestWarmStatsCache(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer cacheClient.Close()

	contactsService := contacts.NewService(client)
	conversionsService := conversions.NewService(client)
	ctx := context.Background()

	_, err = contactsService.Create(ctx, contacts.CreateInput{
		Email: "warm@example.com", Type: "affiliate",
	})
	require.NoError(t, err)
	_, _, err = conversionsService.Upsert(ctx, conversions.Record{
		ClickID: "warm-1", GoalID: "6", GoalType: "deposit", Amount: 100, Status: "approved",
	})
	require.NoError(t, err)

	cm := NewCronManager(contactsService, conversionsService, cacheClient, nil)
	require.NoError(t, cm.WarmStatsCache(ctx))

	cached, err := cacheClient.Get(ctx, ContactStatsCacheKey)
	require.NoError(t, err)
	var contactStats models.ContactDashboard
	require.NoError(t, json.Unmarshal([]byte(cached), &contactStats))
	assert.Equal(t, 1, contactStats.Total)

	cached, err = cacheClient.Get(ctx, ConversionStatsCacheKey)
	require.NoError(t, err)
	var conversionStats models.ConversionDashboard
	require.NoError(t, json.Unmarshal([]byte(cached), &conversionStats))
	assert.Equal(t, 1, conversionStats.Total)
	assert.Equal(t, float64(100), conversionStats.TotalRevenue)
}
