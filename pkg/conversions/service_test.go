package conversions

import (
	"context"
	"testing"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return NewService(client), client
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	rec := Record{
		ClickID:     "click-1",
		GoalID:      "5",
		GoalType:    "registration",
		AffiliateID: "42",
		OfferID:     "2",
		Amount:      0,
		Status:      "approved",
		Sub1:        "campaign-a",
		Metadata:    map[string]interface{}{"postbackResponse": "ok"},
	}

	conv, isNew, err := service.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "click-1", conv.ClickID)
	assert.Equal(t, "approved", string(conv.Status))

	// Same (click_id, goal_id) pair must update, not insert.
	rec.Amount = 150
	rec.Status = "pending"
	dup, isNew, err := service.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, conv.ID, dup.ID)
	assert.Equal(t, float64(150), dup.Amount)
	assert.Equal(t, "pending", string(dup.Status))

	total, err := client.Conversion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestUpsertDistinctGoalsAreSeparateRows(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, isNew, err := service.Upsert(ctx, Record{
		ClickID: "click-2", GoalID: "5", GoalType: "registration", Status: "approved",
	})
	require.NoError(t, err)
	assert.True(t, isNew)

	_, isNew, err = service.Upsert(ctx, Record{
		ClickID: "click-2", GoalID: "6", GoalType: "deposit", Amount: 100, Status: "approved",
	})
	require.NoError(t, err)
	assert.True(t, isNew)

	total, err := client.Conversion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestRecordPostbackDuplicate(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	written, err := service.RecordPostback(ctx, "click-3", "registration", "42", "2", 0, "s1", "", "")
	require.NoError(t, err)
	assert.True(t, written)

	written, err = service.RecordPostback(ctx, "click-3", "registration", "42", "2", 0, "s1", "", "")
	require.NoError(t, err)
	assert.False(t, written)

	// Different goal for the same click is a new event.
	written, err = service.RecordPostback(ctx, "click-3", "deposit", "42", "2", 100, "s1", "", "")
	require.NoError(t, err)
	assert.True(t, written)

	total, err := client.Postback.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestRecordFTDDuplicate(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	written, err := service.RecordFTD(ctx, "click-4", "42", "2", 250, 0)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = service.RecordFTD(ctx, "click-4", "42", "2", 300, 0)
	require.NoError(t, err)
	assert.False(t, written)

	total, err := client.FTD.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestFindClickHash(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	hash, err := service.FindClickHash(ctx, "unknown-click")
	require.NoError(t, err)
	assert.Empty(t, hash)

	_, _, err = service.Upsert(ctx, Record{
		ClickID: "click-5", GoalID: "5", GoalType: "registration",
		Status: "approved", ClickHash: "stored-hash",
	})
	require.NoError(t, err)

	hash, err = service.FindClickHash(ctx, "click-5")
	require.NoError(t, err)
	assert.Equal(t, "stored-hash", hash)
}

func TestListFiltersAndPagination(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := service.Upsert(ctx, Record{
			ClickID: "reg-" + string(rune('a'+i)), GoalID: "5", GoalType: "registration",
			AffiliateID: "42", Status: "approved",
		})
		require.NoError(t, err)
	}
	_, _, err := service.Upsert(ctx, Record{
		ClickID: "dep-a", GoalID: "6", GoalType: "deposit",
		AffiliateID: "7", Amount: 100, Status: "pending",
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.ConversionFilter{GoalType: "registration"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Pagination.Total)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 4, resp.Stats.Total)
	assert.Equal(t, 3, resp.Stats.ByGoalType["registration"])
	assert.Equal(t, 1, resp.Stats.ByStatus["pending"])

	resp, err = service.List(ctx, models.ConversionFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	resp, err = service.List(ctx, models.ConversionFilter{AffiliateID: "7", Status: "pending"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "dep-a", resp.Data[0].ClickID)
}

func TestDashboard(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, _, err := service.Upsert(ctx, Record{
		ClickID: "c1", GoalID: "5", GoalType: "registration", AffiliateID: "42", Status: "approved",
	})
	require.NoError(t, err)
	_, _, err = service.Upsert(ctx, Record{
		ClickID: "c2", GoalID: "6", GoalType: "deposit", AffiliateID: "42", Amount: 200, Status: "approved",
	})
	require.NoError(t, err)
	_, _, err = service.Upsert(ctx, Record{
		ClickID: "c3", GoalID: "6", GoalType: "deposit", AffiliateID: "7", Amount: 50, Status: "pending",
	})
	require.NoError(t, err)

	stats, err := service.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByGoalType["deposit"].Count)
	assert.Equal(t, "66.67", stats.ByGoalType["deposit"].Percentage)
	assert.Equal(t, 2, stats.ByStatus["approved"])
	assert.Equal(t, float64(250), stats.TotalRevenue)
	assert.Equal(t, 2, stats.ApprovedCount)
	assert.Equal(t, float64(200), stats.ApprovedRevenue)
	assert.Equal(t, 3, stats.ThisMonthCount)
	assert.Equal(t, "66.67%", stats.ConversionRatePct)

	require.Len(t, stats.TopAffiliates, 2)
	assert.Equal(t, "42", stats.TopAffiliates[0].AffiliateID)
	assert.Equal(t, 2, stats.TopAffiliates[0].Conversions)
	assert.Equal(t, float64(200), stats.TopAffiliates[0].Revenue)
}
