package goals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/models"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func testConfig() *config.Config {
	return &config.Config{
		TrackerOfferID:       "2",
		GoalRegistration:     "5",
		GoalDeposit:          "6",
		DefaultDepositAmount: 100,
	}
}

func setupTestService(t *testing.T, trackerURL string) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	trackerClient := tracker.NewClient(trackerURL, "test-hash", 5*time.Second)
	service := NewService(client, trackerClient, conversions.NewService(client), testConfig())
	return service, client
}

func TestSendPostbackApproved(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "click-1", r.URL.Query().Get("click_id"))
		assert.Equal(t, "42", r.URL.Query().Get("affiliate_id"))
		assert.Equal(t, "registration", r.URL.Query().Get("goal_type"))
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	service, client := setupTestService(t, server.URL)
	defer client.Close()

	result, err := service.SendPostback(context.Background(), models.GoalPostbackRequest{
		ClickID:     "click-1",
		AffiliateID: "42",
		GoalType:    "registration",
		Sub1:        "campaign-a",
	})

	require.NoError(t, err)
	assert.Equal(t, "/goal/5", gotPath)
	assert.True(t, result.Tracker.Success)
	assert.False(t, result.IsDuplicate)
	assert.Equal(t, "approved", string(result.Conversion.Status))
	assert.Equal(t, "OK", result.Conversion.Metadata["postbackResponse"])
}

func TestSendPostbackTrackerDownStillPersists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service, client := setupTestService(t, server.URL)
	defer client.Close()

	result, err := service.SendPostback(context.Background(), models.GoalPostbackRequest{
		ClickID:       "click-2",
		AffiliateID:   "42",
		GoalType:      "deposit",
		DepositAmount: 150,
	})

	require.NoError(t, err)
	assert.False(t, result.Tracker.Success)
	assert.Equal(t, http.StatusServiceUnavailable, result.Tracker.StatusCode)
	assert.Equal(t, "pending", string(result.Conversion.Status))
	assert.Equal(t, float64(150), result.Conversion.Amount)
}

func TestSendPostbackDuplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	service, client := setupTestService(t, server.URL)
	defer client.Close()

	req := models.GoalPostbackRequest{
		ClickID:     "click-3",
		AffiliateID: "42",
		GoalType:    "registration",
	}

	first, err := service.SendPostback(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.IsDuplicate)

	second, err := service.SendPostback(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.IsDuplicate)
	assert.Equal(t, first.Conversion.ID, second.Conversion.ID)
}

func TestSendPostbackUpdatesContacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	service, client := setupTestService(t, server.URL)
	defer client.Close()
	ctx := context.Background()

	_, err := client.Contact.Create().
		SetEmail("aff@example.com").
		SetType(contact.TypeAffiliate).
		SetSub1("campaign-a").
		SetAffiliateID("42").
		Save(ctx)
	require.NoError(t, err)

	_, err = service.SendPostback(ctx, models.GoalPostbackRequest{
		ClickID:     "click-4",
		AffiliateID: "42",
		GoalType:    "registration",
		Sub1:        "campaign-a",
	})
	require.NoError(t, err)

	updated, err := client.Contact.Query().Where(contact.EmailEQ("aff@example.com")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, updated.AffiliateRegistered)
	assert.False(t, updated.Ftd)

	_, err = service.SendPostback(ctx, models.GoalPostbackRequest{
		ClickID:     "click-4",
		AffiliateID: "42",
		GoalType:    "deposit",
		Amount:      250,
		Sub1:        "campaign-a",
	})
	require.NoError(t, err)

	updated, err = client.Contact.Query().Where(contact.EmailEQ("aff@example.com")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, updated.Ftd)
	assert.Equal(t, float64(250), updated.FtdAmount)
	require.NotNil(t, updated.FtdDate)
}

func TestCompleteRegistrationAndDeposit(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	service, client := setupTestService(t, server.URL)
	defer client.Close()

	registration, deposit, err := service.CompleteRegistrationAndDeposit(context.Background(), "click-5", "42", "campaign-a", 0)
	require.NoError(t, err)

	// Registration first, then deposit with the default amount.
	require.Equal(t, []string{"/goal/5", "/goal/6"}, paths)
	assert.Equal(t, "registration", string(registration.Conversion.GoalType))
	assert.Equal(t, "deposit", string(deposit.Conversion.GoalType))
	assert.Equal(t, float64(100), deposit.Conversion.Amount)
}
