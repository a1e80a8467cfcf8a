package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock RateLimiter ──

type mockLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (m *mockLimiter) CheckRateLimit(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowed, m.err
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── RequestID ──

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	if rid := w.Header().Get(requestIDHeader); len(rid) != 36 {
		t.Errorf("expected a generated uuid, got %q", rid)
	}
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := serve(r, req)

	if rid := w.Header().Get(requestIDHeader); rid != "abc-123" {
		t.Errorf("expected abc-123, got %q", rid)
	}
}

func TestRequestID_RejectsOversizedValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("a", requestIDMaxLen+1))
	w := serve(r, req)

	if rid := w.Header().Get(requestIDHeader); len(rid) > requestIDMaxLen {
		t.Errorf("oversized request id should be replaced, got %d chars", len(rid))
	}
}

// ── Logger ──

func TestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", okHandler)
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/missing", "/boom"} {
		serve(r, httptest.NewRequest(http.MethodGet, p, nil))
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
	want := []string{"info", "warn", "error"}
	for i, e := range entries {
		if e.Level.String() != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], e.Level)
		}
		if e.ContextMap()["request_id"] == "" {
			t.Errorf("entry %d: missing request_id", i)
		}
	}
}

// ── RateLimit ──

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limiter RateLimiter
		limit   int
		status  int
	}{
		{"no backend passes", nil, 10, http.StatusOK},
		{"disabled passes", &mockLimiter{allowed: false}, 0, http.StatusOK},
		{"allowed", &mockLimiter{allowed: true}, 10, http.StatusOK},
		{"rejected", &mockLimiter{allowed: false}, 10, http.StatusTooManyRequests},
		{"backend error degrades open", &mockLimiter{err: errors.New("redis down")}, 10, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimit(tt.limiter, tt.limit, time.Minute, zap.NewNop()))
			r.GET("/api/employee/:id", okHandler)

			w := serve(r, httptest.NewRequest(http.MethodGet, "/api/employee/1", nil))
			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestRateLimit_KeyUsesRoutePattern(t *testing.T) {
	limiter := &mockLimiter{allowed: true}
	r := gin.New()
	r.Use(RateLimit(limiter, 5, time.Minute, zap.NewNop()))
	r.GET("/api/employee/:id", okHandler)

	serve(r, httptest.NewRequest(http.MethodGet, "/api/employee/1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/employee/2", nil))

	if len(limiter.keys) != 2 || limiter.keys[0] != limiter.keys[1] {
		t.Errorf("different ids on the same route should share a key, got %v", limiter.keys)
	}
	if !strings.HasSuffix(limiter.keys[0], "/api/employee/:id") {
		t.Errorf("unexpected key %s", limiter.keys[0])
	}
}

// ── BodyLimit ──

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	if w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small"))); w.Code != http.StatusOK {
		t.Errorf("small body: expected 200, got %d", w.Code)
	}
	if w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is too large"))); w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("large body: expected 413, got %d", w.Code)
	}
}

// ── CORS / SecurityHeaders ──

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000/"}))
	r.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	if w := serve(r, req); w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("listed origin should be allowed")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	if w := serve(r, req); w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("unlisted origin should not be allowed")
	}

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	if w := serve(r, req); w.Code != http.StatusNoContent {
		t.Errorf("preflight: expected 204, got %d", w.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/api/department", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/department", nil))
	if w.Header().Get("X-Content-Type-Options") != "nosniff" || w.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("missing security headers: %v", w.Header())
	}
}
