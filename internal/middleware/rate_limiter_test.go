package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"internal-tools-api/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(perSecond, burst int) (*RateLimiter, *time.Time) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: perSecond, RateLimitBurst: burst})
	rl.now = func() time.Time { return now }
	return rl, &now
}

func serveLimited(e *echo.Echo, rl *RateLimiter, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	rl, _ := newTestLimiter(1, 2)

	assert.Equal(t, http.StatusOK, serveLimited(e, rl, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serveLimited(e, rl, "10.0.0.1").Code)

	rec := serveLimited(e, rl, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_Refills(t *testing.T) {
	e := echo.New()
	rl, now := newTestLimiter(1, 1)

	assert.Equal(t, http.StatusOK, serveLimited(e, rl, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, rl, "10.0.0.1").Code)

	*now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serveLimited(e, rl, "10.0.0.1").Code)
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	rl, _ := newTestLimiter(1, 1)

	assert.Equal(t, http.StatusOK, serveLimited(e, rl, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serveLimited(e, rl, "10.0.0.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, rl, "10.0.0.1").Code)
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl, now := newTestLimiter(1, 1)

	require.True(t, rl.allow("10.0.0.1"))
	*now = now.Add(2 * time.Minute)
	require.True(t, rl.allow("10.0.0.2"))

	*now = now.Add(2 * time.Minute)
	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{"forwarded for first hop", map[string]string{echo.HeaderXForwardedFor: "203.0.113.7, 10.0.0.1"}, "10.0.0.9:1", "203.0.113.7"},
		{"invalid forwarded for falls back to real ip", map[string]string{echo.HeaderXForwardedFor: "garbage", echo.HeaderXRealIP: "198.51.100.4"}, "10.0.0.9:1", "198.51.100.4"},
		{"real ip", map[string]string{echo.HeaderXRealIP: "198.51.100.4"}, "10.0.0.9:1", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.10:4321", "192.0.2.10"},
	}

	e := echo.New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tc.expected, clientIP(c))
		})
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	rl, _ := newTestLimiter(1, 10)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if rl.allow(fmt.Sprintf("10.0.1.%d", i%2)) {
				allowed.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(20), allowed.Load())
}
