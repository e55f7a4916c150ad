package tracker

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDelivers(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, "/offer/2", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hash", 5*time.Second)
	notifier := NewNotifier(client, 8, 1)

	params := url.Values{}
	params.Set("affiliate_id", "2")
	require.True(t, notifier.NotifyOffer("2", params))

	notifier.Close()
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// No failures expected.
	_, open := <-notifier.Errors()
	assert.False(t, open)
}

func TestNotifierReportsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hash", 5*time.Second)
	notifier := NewNotifier(client, 8, 1)

	require.True(t, notifier.NotifyOffer("2", url.Values{}))
	notifier.Close()

	err, open := <-notifier.Errors()
	require.True(t, open)
	assert.Contains(t, err.Error(), "status 502")
}

func TestNotifierRejectsAfterClose(t *testing.T) {
	client := NewClient("http://unused", "hash", time.Second)
	notifier := NewNotifier(client, 1, 1)
	notifier.Close()

	assert.False(t, notifier.NotifyOffer("2", url.Values{}))
}
