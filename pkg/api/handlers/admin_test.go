package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/barracuda-partners/backend/ent"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/pkg/auth"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/middleware"
	"github.com/barracuda-partners/backend/pkg/settings"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContacts(t *testing.T, db *ent.Client) {
	t.Helper()
	ctx := ctxFor(t)
	db.Contact.Create().
		SetEmail("jose@x.com").
		SetName("Jose Martinez").
		SetCompany("Traffic LLC").
		SetType(contact.TypeAffiliate).
		SetSub1("clk1").
		SetFtd(true).
		SetFtdAmount(150).
		SaveX(ctx)
	db.Contact.Create().
		SetEmail("anna@x.com").
		SetName("Anna Lee").
		SetType(contact.TypeAdvertiser).
		SetStatus(contact.StatusContacted).
		SaveX(ctx)
}

func TestAdminLogin(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	cfg := testConfig("http://tracker.invalid")
	h := NewAdminAuthHandler(auth.NewService(db, cfg), testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"email":"admin@barracuda.com","password":"admin123"}`
	require.NoError(t, h.Login(e.NewContext(jsonRequest(http.MethodPost, "/api/admin/auth/login", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["token"], 64)
	assert.Equal(t, "admin@barracuda.com", data["email"])
	assert.Equal(t, "admin", data["role"])
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	cfg := testConfig("http://tracker.invalid")
	h := NewAdminAuthHandler(auth.NewService(db, cfg), testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"email":"admin@barracuda.com","password":"wrong"}`
	require.NoError(t, h.Login(e.NewContext(jsonRequest(http.MethodPost, "/api/admin/auth/login", body), rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminProfile(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	cfg := testConfig("http://tracker.invalid")
	authService := auth.NewService(db, cfg)
	admin, _, err := authService.Login(ctxFor(t), cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
	require.NoError(t, err)

	h := NewAdminAuthHandler(authService, testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/auth/profile", nil), rec)
	c.Set(middleware.AdminContextKey, admin)

	require.NoError(t, h.Profile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "admin@barracuda.com", data["email"])
}

func TestAdminContactsList(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	seedContacts(t, db)

	h := NewAdminContactHandler(contacts.NewService(db), nil, nil, testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?type=affiliate&page=1&limit=10", nil)
	require.NoError(t, h.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "jose@x.com", data[0].(map[string]interface{})["email"])

	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total"])
	assert.Equal(t, 1.0, stats["ftdCount"])
	assert.Equal(t, 150.0, stats["totalFtdAmount"])

	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, 1.0, pagination["total"])
}

func TestAdminContactExportCSV(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	seedContacts(t, db)

	h := NewAdminContactHandler(contacts.NewService(db), nil, nil, testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/api/admin/contacts/export", `{}`)
	require.NoError(t, h.Export(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, ".csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Company,Type,Status,Messenger,Username,Affiliate ID,Sub1,Traffic Source,Campaign ID,FTD,FTD Amount,FTD Date,Created At", lines[0])
	assert.Contains(t, rec.Body.String(), `"jose@x.com"`)
}

func TestAdminContactExportXLSX(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	seedContacts(t, db)

	h := NewAdminContactHandler(contacts.NewService(db), nil, nil, testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/api/admin/contacts/export?format=xlsx", `{}`)
	require.NoError(t, h.Export(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestAdminContactGetUpdateDelete(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	seedContacts(t, db)

	created := db.Contact.Query().Where(contact.EmailEQ("jose@x.com")).OnlyX(ctxFor(t))
	h := NewAdminContactHandler(contacts.NewService(db), nil, nil, testMetrics)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("99999")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPut, "/", `{"status":"qualified","notes":"called twice"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	updated := db.Contact.GetX(ctxFor(t), created.ID)
	assert.Equal(t, contact.StatusQualified, updated.Status)
	assert.Equal(t, "called twice", updated.Notes)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, db.Contact.Query().CountX(ctxFor(t)))
}

func TestAdminContactStats(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	seedContacts(t, db)

	h := NewAdminContactHandler(contacts.NewService(db), nil, nil, testMetrics)

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Stats(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/contacts/stats", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["total"])
	byType := data["byType"].(map[string]interface{})
	assert.Equal(t, 1.0, byType["affiliate"])
}

func TestAdminConversionCreateAndStats(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := NewAdminConversionHandler(conversions.NewService(db), nil, testMetrics)
	e := echo.New()

	body := `{"click_id":"c1","affiliate_id":"7","goal_id":"6","goal_type":"deposit","amount":200,"status":"approved"}`
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(jsonRequest(http.MethodPost, "/api/admin/conversions", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["isDuplicate"])

	// repeating the pair updates in place
	rec = httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(jsonRequest(http.MethodPost, "/api/admin/conversions", body), rec)))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["isDuplicate"])

	rec = httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/conversions?goal_type=deposit", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["data"], 1)

	rec = httptest.NewRecorder()
	require.NoError(t, h.Stats(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/conversions/stats", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["total"])
	assert.Equal(t, 200.0, data["approvedRevenue"])
}

func TestSettingsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	h := NewSettingsHandler(settings.NewService(db))
	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, h.Put(e.NewContext(jsonRequest(http.MethodPut, "/api/admin/settings", `{"key":"notify_email","value":"ops@x.com"}`), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ops@x.com", data["notify_email"])
}
