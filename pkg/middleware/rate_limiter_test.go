package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	// 60 req/min (1 req/sec) with a burst of 5
	rl := NewRateLimiter(60, 5)
	limiter := rl.limiterFor("192.168.1.1")

	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow() {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed, "should allow exactly the burst size")

	time.Sleep(1100 * time.Millisecond)
	assert.True(t, limiter.Allow(), "should allow one request after refill")
}

func TestRateLimiterSeparatesClients(t *testing.T) {
	rl := NewRateLimiter(2, 1)

	first := rl.limiterFor("192.168.1.1")
	second := rl.limiterFor("192.168.1.2")

	assert.True(t, first.Allow())
	assert.True(t, second.Allow())
	assert.False(t, first.Allow(), "burst exhausted for first client")
	assert.False(t, second.Allow(), "burst exhausted for second client")
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(2, 1)

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.168.1.1:12346"
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// A different client is not affected.
	req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
