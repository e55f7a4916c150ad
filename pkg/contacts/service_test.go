package contacts

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

func createTestContact(t *testing.T, s *Service, email, contactType string) *ent.Contact {
	c, err := s.Create(context.Background(), CreateInput{
		Email: email,
		Type:  contactType,
		Name:  "Test Contact",
	})
	require.NoError(t, err)
	return c
}

func TestCreateDuplicateEmail(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, err := service.Create(ctx, CreateInput{Email: "dup@example.com", Type: "affiliate"})
	require.NoError(t, err)

	_, err = service.Create(ctx, CreateInput{Email: "dup@example.com", Type: "user"})
	assert.ErrorIs(t, err, ErrEmailExists)

	total, err := client.Contact.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestUpdateRestrictedFields(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	c := createTestContact(t, service, "update@example.com", "affiliate")

	status := "contacted"
	notes := "reached out on telegram"
	affStatus := "approved"
	updated, err := service.Update(ctx, c.ID, models.ContactUpdateRequest{
		Status:          &status,
		Notes:           &notes,
		AffiliateStatus: &affStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, "contacted", string(updated.Status))
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, "approved", string(updated.AffiliateStatus))

	missing, err := service.Update(ctx, 99999, models.ContactUpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDelete(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	c := createTestContact(t, service, "delete@example.com", "user")

	deleted, err := service.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListSearchIsAccentInsensitive(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	_, err := service.Create(ctx, CreateInput{
		Email: "jose@example.com", Type: "affiliate", Name: "Jose Martinez",
	})
	require.NoError(t, err)
	_, err = service.Create(ctx, CreateInput{
		Email: "other@example.com", Type: "user", Name: "Maria Lopez",
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.ContactFilter{Search: "José"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "jose@example.com", resp.Data[0].Email)
}

func TestListFiltersAndStats(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	createTestContact(t, service, "a1@example.com", "affiliate")
	createTestContact(t, service, "a2@example.com", "affiliate")
	c := createTestContact(t, service, "u1@example.com", "user")

	require.NoError(t, service.MarkFTD(ctx, c.ID, 150))

	resp, err := service.List(ctx, models.ContactFilter{Type: "affiliate"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Total)

	require.NotNil(t, resp.Stats)
	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 2, resp.Stats.ByType["affiliate"])
	assert.Equal(t, 3, resp.Stats.ByStatus["new"])
	assert.Equal(t, 2, resp.Stats.AffiliateStats["pending"])
	assert.Equal(t, 3, resp.Stats.ThisMonth)
	assert.Equal(t, 1, resp.Stats.FTDCount)
	assert.Equal(t, float64(150), resp.Stats.TotalFTDAmount)
}

func TestDashboardIncludesFTDLog(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	createTestContact(t, service, "d1@example.com", "affiliate")

	_, err := client.FTD.Create().SetClickID("c1").SetAmount(100).Save(ctx)
	require.NoError(t, err)
	_, err = client.FTD.Create().SetClickID("c2").SetAmount(250).Save(ctx)
	require.NoError(t, err)

	dashboard, err := service.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.Total)
	assert.Equal(t, 2, dashboard.FTD.Total)
	assert.Equal(t, float64(350), dashboard.FTD.Revenue)
}

func TestSetAffiliateOutcome(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	c := createTestContact(t, service, "outcome@example.com", "affiliate")

	require.NoError(t, service.SetAffiliateOutcome(ctx, c.ID, false, "tracker unreachable"))

	reloaded, err := service.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.False(t, reloaded.AffiliateRegistered)
	assert.Equal(t, "tracker unreachable", reloaded.AffiliateError)
}
