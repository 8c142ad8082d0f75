package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homeez_booking/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got entities.User
	r := gin.New()
	r.Use(Identity())
	r.GET("/me", func(c *gin.Context) {
		got = UserFrom(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderUserID, " user-1 ")
	req.Header.Set(HeaderUserEmail, "asha@example.com")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got.ID != "user-1" || got.Email != "asha@example.com" {
		t.Fatalf("unexpected user %+v", got)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))
	if got.Authenticated() {
		t.Fatalf("expected anonymous caller, got %+v", got)
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.WarnLevel)
	rl := NewRateLimiter(2, zap.New(core))
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
	if logs.Len() != 1 || logs.All()[0].ContextMap()["ip"] != "10.0.0.1" {
		t.Fatalf("expected one warn for 10.0.0.1, got %+v", logs.All())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.168.1.9:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("other clients must have their own bucket, got %d", w.Code)
	}
}

func TestRecoveryAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	r := gin.New()
	r.Use(RequestLogger(logger), Recovery(logger))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if logs.FilterMessage("[http] recovered from panic").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
	if logs.FilterMessage("[http] request").Len() != 1 {
		t.Fatalf("expected request line")
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS())
	r.GET("/v1/services", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/v1/services", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", HeaderUserID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("unexpected allow origin %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
