package tracker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGoal(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-hash", 5*time.Second)
	result := client.SendGoal(context.Background(), "5", "click-123", "42", map[string]string{
		"sub1":      "campaign-a",
		"goal_type": "registration",
	})

	require.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, result.Message)
	assert.Equal(t, "/goal/5", gotPath)
	assert.Equal(t, "test-hash", gotQuery.Get("hash"))
	assert.Equal(t, "click-123", gotQuery.Get("click_id"))
	assert.Equal(t, "42", gotQuery.Get("affiliate_id"))
	assert.Equal(t, "campaign-a", gotQuery.Get("sub1"))
}

func TestSendGoalFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid hash", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-hash", 5*time.Second)
	result := client.SendGoal(context.Background(), "6", "click-1", "1", nil)

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
}

func TestSendGoalUnreachable(t *testing.T) {
	// Closed server: the client must report failure, never panic or error out.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "hash", 1*time.Second)
	result := client.SendGoal(context.Background(), "5", "c", "a", nil)

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.NotEmpty(t, result.Message)
}

func TestSendOffer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/offer/2", r.URL.Path)
		assert.Equal(t, "contact_form", r.URL.Query().Get("source"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("affiliate_id", "2")
	params.Set("source", "contact_form")

	client := NewClient(server.URL, "hash", 5*time.Second)
	result := client.SendOffer(context.Background(), "2", params)

	assert.True(t, result.Success)
}

func TestOfferURL(t *testing.T) {
	client := NewClient("https://tracker.example.com/api/v3", "hash", 5*time.Second)

	params := url.Values{}
	params.Set("affiliate_id", "2")
	params.Set("url_id", "2")

	link := client.OfferURL("2", params)
	assert.Equal(t, "https://tracker.example.com/api/v3/offer/2?affiliate_id=2&url_id=2", link)
}
