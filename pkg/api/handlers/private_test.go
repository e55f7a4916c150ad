package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barracuda-partners/backend/ent/conversion"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateCreateConversion(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users/conversions":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		case r.Method == http.MethodPost && r.URL.Path == "/users/conversions":
			assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"conversions": []interface{}{map[string]interface{}{"id": float64(42), "hash": "h1"}},
			})
		default:
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	api := tracker.NewPrivateAPI(server.URL, "token123", 5*time.Second)
	cfg := testConfig("http://tracker.invalid")
	h := NewPrivateHandler(api, conversions.NewService(db), cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"click_hash":"h1","goal_type_id":6,"affiliate_id":"7","deposit_amount":90}`
	require.NoError(t, h.CreateConversion(e.NewContext(jsonRequest(http.MethodPost, "/api/private/conversions", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, false, resp["isDuplicate"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "deposit", data["goal_type"])
	assert.Equal(t, "approved", data["status"])

	row := db.Conversion.Query().Where(conversion.ClickIDEQ("h1")).OnlyX(ctxFor(t))
	assert.Equal(t, "h1", row.ClickHash)
	assert.Equal(t, "6", row.GoalID)
	assert.Equal(t, 90.0, row.Amount)
}

func TestPrivateCreateConversionAPIDown(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"upstream down"}`, http.StatusBadGateway)
	}))
	defer server.Close()

	api := tracker.NewPrivateAPI(server.URL, "token123", 5*time.Second)
	h := NewPrivateHandler(api, conversions.NewService(db), testConfig("http://tracker.invalid"))

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"click_hash":"h2","goal_type_id":5}`
	require.NoError(t, h.CreateConversion(e.NewContext(jsonRequest(http.MethodPost, "/api/private/conversions", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Conversion saved locally (open API failed)", resp["message"])

	row := db.Conversion.Query().Where(conversion.ClickIDEQ("h2")).OnlyX(ctxFor(t))
	assert.Equal(t, conversion.StatusPending, row.Status)
	assert.Equal(t, conversion.GoalTypeRegistration, row.GoalType)
}

func TestPrivateCreateConversionValidation(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	api := tracker.NewPrivateAPI("http://api.invalid", "", 5*time.Second)
	h := NewPrivateHandler(api, conversions.NewService(db), testConfig("http://tracker.invalid"))

	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateConversion(e.NewContext(jsonRequest(http.MethodPost, "/api/private/conversions", `{"goal_type_id":5}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.CreateConversion(e.NewContext(jsonRequest(http.MethodPost, "/api/private/conversions", `{"click_hash":"h3"}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrivateListConversions(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/conversions", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("affiliate_id"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":  []interface{}{map[string]interface{}{"id": float64(1)}},
			"total": 1,
			"page":  1,
			"pages": 1,
		})
	}))
	defer server.Close()

	api := tracker.NewPrivateAPI(server.URL, "token123", 5*time.Second)
	h := NewPrivateHandler(api, conversions.NewService(db), testConfig("http://tracker.invalid"))

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/private/conversions?affiliate_id=7&per_page=25", nil)
	require.NoError(t, h.ListConversions(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["data"], 1)

	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, 1.0, pagination["total"])
}
