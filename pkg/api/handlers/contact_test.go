package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/ent/conversion"
	"github.com/barracuda-partners/backend/ent/enttest"
	"github.com/barracuda-partners/backend/ent/ftd"
	"github.com/barracuda-partners/backend/ent/postback"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/email"
	"github.com/barracuda-partners/backend/pkg/goals"
	"github.com/barracuda-partners/backend/pkg/metrics"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promauto registers on the default registry; one instance per test binary.
var testMetrics = metrics.New()

func testConfig(trackerURL string) *config.Config {
	return &config.Config{
		TrackerBaseURL:       trackerURL,
		TrackerHash:          "testhash",
		TrackerOfferID:       "2",
		GoalRegistration:     "5",
		GoalDeposit:          "6",
		TrackerTimeoutSec:    5,
		DefaultAdminEmail:    "admin@barracuda.com",
		DefaultAdminPassword: "admin123",
		DefaultDepositAmount: 100,
	}
}

func openTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
}

func newContactHandler(t *testing.T, db *ent.Client, cfg *config.Config, notifier *tracker.Notifier) *ContactHandler {
	t.Helper()
	trackerClient := tracker.NewClient(cfg.TrackerBaseURL, cfg.TrackerHash, 5*time.Second)
	conversionsService := conversions.NewService(db)
	goalsService := goals.NewService(db, trackerClient, conversionsService, cfg)
	contactsService := contacts.NewService(db)
	emailService := email.NewService("noreply@test.com", "Test", "", "")
	if notifier == nil {
		notifier = tracker.NewNotifier(trackerClient, 4, 1)
		t.Cleanup(notifier.Close)
	}
	return NewContactHandler(contactsService, goalsService, conversionsService, trackerClient, notifier, emailService, testMetrics, cfg)
}

func ctxFor(t *testing.T) context.Context {
	t.Helper()
	return context.Background()
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestSubmitCreatesContact(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/api/contact", `{"email":"new@example.com","type":"advertiser","name":"Ad Corp"}`)
	rec := httptest.NewRecorder()

	err := h.Submit(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["isAffiliate"])

	saved := db.Contact.Query().Where(contact.EmailEQ("new@example.com")).OnlyX(ctxFor(t))
	assert.Equal(t, "Ad Corp", saved.Name)
	assert.Equal(t, contact.TypeAdvertiser, saved.Type)
	// defaults applied when the form leaves tracking fields empty
	assert.Equal(t, "2", saved.AffiliateID)
	assert.Equal(t, "contact_form", saved.TrackingSource)
}

func TestSubmitDuplicateEmailConflicts(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	body := `{"email":"dup@example.com","type":"affiliate"}`

	rec := httptest.NewRecorder()
	require.NoError(t, h.Submit(e.NewContext(jsonRequest(http.MethodPost, "/api/contact", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.Submit(e.NewContext(jsonRequest(http.MethodPost, "/api/contact", body), rec)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	count := db.Contact.Query().CountX(ctxFor(t))
	assert.Equal(t, 1, count)
}

func TestSubmitValidation(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Submit(e.NewContext(jsonRequest(http.MethodPost, "/api/contact", `{"type":"affiliate"}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.Submit(e.NewContext(jsonRequest(http.MethodPost, "/api/contact", `{"email":"x@y.com","type":"martian"}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAutoCompletePipeline(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	var goalPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goalPaths = append(goalPaths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.AutoCompleteRegistrationAndFTD = true

	h := newContactHandler(t, db, cfg, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/api/contact", `{"email":"a@x.com","type":"affiliate","affiliate_id":"7","sub1":"abc123"}`)
	require.NoError(t, h.Submit(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"/goal/5", "/goal/6"}, goalPaths)

	convCount := db.Conversion.Query().Where(conversion.ClickIDEQ("abc123")).CountX(ctxFor(t))
	assert.Equal(t, 2, convCount)

	saved := db.Contact.Query().Where(contact.EmailEQ("a@x.com")).OnlyX(ctxFor(t))
	assert.True(t, saved.AffiliateRegistered)
	assert.True(t, saved.Ftd)
	assert.Equal(t, 100.0, saved.FtdAmount)
	assert.Equal(t, contact.AffiliateStatusPending, saved.AffiliateStatus)
}

func TestSubmitAutoCompleteDisabledByDefault(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("tracker called with auto-complete disabled: %s", r.URL.Path)
	}))
	defer server.Close()

	h := newContactHandler(t, db, testConfig(server.URL), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/api/contact", `{"email":"b@x.com","type":"affiliate","sub1":"def456"}`)
	require.NoError(t, h.Submit(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 0, db.Conversion.Query().CountX(ctxFor(t)))
}

func TestRegisterAffiliateQueuesOfferNotification(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	hits := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- r.URL.Path + "?" + r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	trackerClient := tracker.NewClient(cfg.TrackerBaseURL, cfg.TrackerHash, 5*time.Second)
	notifier := tracker.NewNotifier(trackerClient, 4, 1)
	defer notifier.Close()

	h := newContactHandler(t, db, cfg, notifier)

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"name":"Jane Doe","email":"jane@x.com","company":"Traffic Inc","type":"affiliate","sub1":"click1"}`
	require.NoError(t, h.Register(e.NewContext(jsonRequest(http.MethodPost, "/api/register", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["isAffiliate"])
	assert.Equal(t, true, data["affiliatePosted"])
	assert.Contains(t, data["trackingLink"], "/offer/2?")
	assert.Contains(t, data["dashboardUrl"], "irev.com")

	select {
	case hit := <-hits:
		assert.Contains(t, hit, "/offer/2")
		assert.Contains(t, hit, "sub1=click1")
	case <-time.After(2 * time.Second):
		t.Fatal("offer notification never reached the tracker")
	}
}

func TestRegisterNonAffiliate(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("tracker called for non-affiliate registration: %s", r.URL.Path)
	}))
	defer server.Close()

	h := newContactHandler(t, db, testConfig(server.URL), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"name":"Bob","email":"bob@x.com","company":"Media Co","type":"advertiser"}`
	require.NoError(t, h.Register(e.NewContext(jsonRequest(http.MethodPost, "/api/register", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["isAffiliate"])
	assert.Equal(t, true, data["posted"])
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	// name and company are required on the application form
	body := `{"email":"c@x.com","type":"affiliate"}`
	require.NoError(t, h.Register(e.NewContext(jsonRequest(http.MethodPost, "/api/register", body), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFTDRespondsWithCommissionEstimate(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h := newContactHandler(t, db, testConfig(server.URL), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"affiliate_id":"7","sub1":"clk9","deposit_amount":250}`
	require.NoError(t, h.FTD(e.NewContext(jsonRequest(http.MethodPost, "/api/ftd", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp["redirectUrl"], "affiliate_id=7")

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 75.0, data["commission"])

	row := db.FTD.Query().Where(ftd.ClickIDEQ("clk9")).OnlyX(ctxFor(t))
	assert.Equal(t, 250.0, row.Amount)
	assert.Equal(t, "7", row.AffiliateID)
}

func TestFTDValidation(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.FTD(e.NewContext(jsonRequest(http.MethodPost, "/api/ftd", `{"affiliate_id":"7"}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostbackRecordsEvent(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/postback?aff_click_id=pb1&goal=deposit&affiliate_id=7&amount=50", nil)
	require.NoError(t, h.Postback(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	row := db.Postback.Query().Where(postback.ClickIDEQ("pb1")).OnlyX(ctxFor(t))
	assert.Equal(t, postback.GoalDeposit, row.Goal)
	assert.Equal(t, 50.0, row.Amount)

	// duplicate pair is acknowledged without a second row
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/postback?aff_click_id=pb1&goal=deposit", nil)
	require.NoError(t, h.Postback(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, db.Postback.Query().CountX(ctxFor(t)))
}

func TestPostbackMissingParameters(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := newContactHandler(t, db, testConfig("http://tracker.invalid"), nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/postback?goal=deposit", nil)
	require.NoError(t, h.Postback(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing parameters", resp["message"])
}
