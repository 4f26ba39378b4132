package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wassup1201/Simple-Agent/internal/config"
)

func TestRateLimitOnChat(t *testing.T) {
	f := newFixture(t, config.ShopifyConfig{}, config.ServerConfig{RateLimitRPS: 1, RateLimitBurst: 1})

	rec := f.do(http.MethodPost, "/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
	assert.Equal(t, 1, f.chat.calls)

	// reads are not limited
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
	}
}

func TestRateLimitPerIP(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewIPRateLimiter(ctx, 1, 1, nil)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5001"))
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.2:5000"))
}

func TestEvictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewIPRateLimiter(ctx, 5, 10, nil)

	now := time.Now()
	rl.now = func() time.Time { return now }
	rl.limiter("10.0.0.1")

	rl.now = func() time.Time { return now.Add(visitorTTL + time.Second) }
	rl.limiter("10.0.0.2")
	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, "1", retryAfter(200*time.Millisecond))
	assert.Equal(t, "3", retryAfter(2100*time.Millisecond))
}

func TestClientIPBehindTrustedProxy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewIPRateLimiter(ctx, 5, 10, []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")})

	req := func(remote, xff string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/chat", nil)
		r.RemoteAddr = remote
		if xff != "" {
			r.Header.Set("X-Forwarded-For", xff)
		}
		return r
	}

	assert.Equal(t, "203.0.113.9", rl.clientIP(req("10.1.2.3:443", "203.0.113.9")))
	assert.Equal(t, "203.0.113.9", rl.clientIP(req("10.1.2.3:443", "198.51.100.1, 203.0.113.9, 10.0.0.5")))
	assert.Equal(t, "10.1.2.3", rl.clientIP(req("10.1.2.3:443", "")))
	assert.Equal(t, "10.1.2.3", rl.clientIP(req("10.1.2.3:443", "garbage")))
	// untrusted peers cannot pick their own bucket
	assert.Equal(t, "198.51.100.7", rl.clientIP(req("198.51.100.7:5000", "203.0.113.9")))

	untrusting := NewIPRateLimiter(ctx, 5, 10, nil)
	assert.Equal(t, "10.1.2.3", untrusting.clientIP(req("10.1.2.3:443", "203.0.113.9")))
}

func TestRateLimitSeparatesClientsBehindProxy(t *testing.T) {
	f := newFixture(t, config.ShopifyConfig{}, config.ServerConfig{
		RateLimitRPS:   1,
		RateLimitBurst: 1,
		TrustedProxies: []netip.Prefix{netip.MustParsePrefix("192.0.2.0/24")},
	})

	post := func(xff string) int {
		r := httptest.NewRequest(http.MethodPost, "/chat", nil)
		r.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("203.0.113.1"))
	assert.Equal(t, http.StatusOK, post("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, post("203.0.113.1"))
}
