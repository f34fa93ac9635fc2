package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"multi-calendar-sync/config"
	"multi-calendar-sync/pkg/log"
)

func newTestEngine(cfg *config.Config, register func(*gin.Engine, Middleware)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	register(engine, New(log.NewTestLogger(), cfg))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRequestIDGenerated(t *testing.T) {
	engine := newTestEngine(&config.Config{}, func(e *gin.Engine, mw Middleware) {
		e.Use(mw.RequestID())
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if got := w.Header().Get(HeaderXRequestID); got == "" {
		t.Error("expected a generated request id header")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	engine := newTestEngine(&config.Config{}, func(e *gin.Engine, mw Middleware) {
		e.Use(mw.RequestID())
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, "req-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderXRequestID); got != "req-123" {
		t.Errorf("expected incoming request id echoed, got %q", got)
	}
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTPServer.RateLimitPerMin = 2

	engine := newTestEngine(cfg, func(e *gin.Engine, mw Middleware) {
		e.Use(mw.RateLimit())
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests within burst, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request limited, got %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTPServer.RateLimitPerMin = 0

	engine := newTestEngine(cfg, func(e *gin.Engine, mw Middleware) {
		e.Use(mw.RateLimit())
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected no throttling when disabled, got %d on request %d", w.Code, i)
		}
	}
}

func TestCorsDevelopmentAllowsAnyOrigin(t *testing.T) {
	cfg := &config.Config{}
	cfg.Environment.Name = "development"
	cfg.Google.RedirectURL = "http://localhost:3000/google/redirect"

	engine := newTestEngine(cfg, func(e *gin.Engine, mw Middleware) {
		e.Use(mw.Cors())
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin in development, got %q", got)
	}
}
