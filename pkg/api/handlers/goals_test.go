package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/goals"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalHandler(t *testing.T, trackerURL string) (*GoalHandler, func()) {
	t.Helper()
	db := openTestDB(t)
	cfg := testConfig(trackerURL)
	trackerClient := tracker.NewClient(cfg.TrackerBaseURL, cfg.TrackerHash, 5*time.Second)
	conversionsService := conversions.NewService(db)
	goalsService := goals.NewService(db, trackerClient, conversionsService, cfg)
	return NewGoalHandler(goalsService, testMetrics, cfg), func() { db.Close() }
}

func TestGoalPostbackHandler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	h, cleanup := newGoalHandler(t, server.URL)
	defer cleanup()

	e := echo.New()
	body := `{"click_id":"clk1","affiliate_id":"7","goal_type":"registration","sub1":"s1"}`
	rec := httptest.NewRecorder()
	require.NoError(t, h.SendPostback(e.NewContext(jsonRequest(http.MethodPost, "/api/goals/postback", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, `Goal "registration" postback sent successfully`, resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "5", data["goal_id"])
	assert.Equal(t, "approved", data["status"])
	assert.Equal(t, "OK", data["postbackResponse"])
	assert.Equal(t, 200.0, data["postbackStatusCode"])
	assert.Equal(t, false, data["isDuplicate"])

	// same click and goal again flags the duplicate
	rec = httptest.NewRecorder()
	require.NoError(t, h.SendPostback(e.NewContext(jsonRequest(http.MethodPost, "/api/goals/postback", body), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["data"].(map[string]interface{})["isDuplicate"])
}

func TestGoalPostbackHandlerTrackerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	h, cleanup := newGoalHandler(t, server.URL)
	defer cleanup()

	e := echo.New()
	body := `{"click_id":"clk2","affiliate_id":"7","goal_type":"deposit","amount":120}`
	rec := httptest.NewRecorder()
	require.NoError(t, h.SendPostback(e.NewContext(jsonRequest(http.MethodPost, "/api/goals/postback", body), rec)))

	// tracker status is reflected; the conversion is still persisted as pending
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, `Goal "deposit" postback failed`, resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 120.0, data["amount"])
}

func TestGoalPostbackHandlerValidation(t *testing.T) {
	h, cleanup := newGoalHandler(t, "http://tracker.invalid")
	defer cleanup()

	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, h.SendPostback(e.NewContext(jsonRequest(http.MethodPost, "/api/goals/postback", `{"goal_type":"deposit"}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.SendPostback(e.NewContext(jsonRequest(http.MethodPost, "/api/goals/postback", `{"click_id":"c","affiliate_id":"a","goal_type":"purchase"}`), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoalPostbackConfig(t *testing.T) {
	h, cleanup := newGoalHandler(t, "https://hooplaseft.com/api/v3")
	defer cleanup()

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/goals/postback", nil)
	require.NoError(t, h.Config(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	cfg := resp["config"].(map[string]interface{})
	assert.Equal(t, "5", cfg["goalRegistration"])
	assert.Equal(t, "6", cfg["goalDeposit"])
	assert.Equal(t, true, cfg["hashSet"])
}
