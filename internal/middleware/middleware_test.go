package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/middleware"
	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})

	var got model.Scope
	r := newEngine(mw.Auth(), func(c *gin.Context) {
		got, _ = middleware.GetScope(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("id and name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(middleware.HeaderUserID, "u1")
		req.Header.Set(middleware.HeaderUserName, "Ada")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got != (model.Scope{UserID: "u1", UserName: "Ada"}) {
			t.Errorf("unexpected scope %+v", got)
		}
	})

	t.Run("name defaults to id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(middleware.HeaderUserID, "u2")
		r.ServeHTTP(w, req)
		if got.UserName != "u2" {
			t.Errorf("expected name fallback, got %+v", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60 rpm gives a burst of 6.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60})
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	if codes[http.StatusOK] != 6 || codes[http.StatusTooManyRequests] != 4 {
		t.Errorf("unexpected status distribution %v", codes)
	}

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected second client to pass, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d throttled with limiting disabled", i)
		}
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})

	var seen string
	r := newEngine(mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)
	if seen != "req-42" || w.Header().Get(middleware.HeaderRequestID) != "req-42" {
		t.Errorf("expected propagated id, got ctx=%q header=%q", seen, w.Header().Get(middleware.HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	if seen == "" || w.Header().Get(middleware.HeaderRequestID) != seen {
		t.Errorf("expected generated id, got ctx=%q header=%q", seen, w.Header().Get(middleware.HeaderRequestID))
	}
}
