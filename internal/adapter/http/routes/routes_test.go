package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homeez_booking/internal/adapter/http/handlers"
	"homeez_booking/internal/adapter/http/handlers/mocks"
	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	catalogUC := mocks.NewMockICatalogUseCase(ctrl)
	cfg := config.Config{Env: "test", MaxRequestsPerMin: 100}
	r := NewRouter(cfg, zap.NewNop(), Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogUC),
		Wizard:   handlers.NewWizardHandler(mocks.NewMockIBookingWizardUseCase(ctrl), nil),
		Bookings: handlers.NewBookingHandler(mocks.NewMockIBookingUseCase(ctrl)),
	})
	return r, catalogUC
}

func TestNewRouter_Ping(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"message":"pong"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestNewRouter_Routes(t *testing.T) {
	r, _ := testRouter(t)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	want := []string{
		"GET /v1/services",
		"GET /v1/services/:service_id",
		"GET /v1/services/:service_id/providers",
		"GET /v1/time-slots",
		"POST /v1/wizards",
		"GET /v1/wizards/:session_id",
		"DELETE /v1/wizards/:session_id",
		"PUT /v1/wizards/:session_id/option",
		"PUT /v1/wizards/:session_id/provider",
		"PUT /v1/wizards/:session_id/date",
		"PUT /v1/wizards/:session_id/time-slot",
		"PATCH /v1/wizards/:session_id/address",
		"PUT /v1/wizards/:session_id/payment-method",
		"POST /v1/wizards/:session_id/next",
		"POST /v1/wizards/:session_id/back",
		"POST /v1/wizards/:session_id/handoff/retry",
		"GET /v1/bookings",
		"GET /v1/bookings/:booking_id",
		"PATCH /v1/bookings/:booking_id/cancel",
		"GET /swagger/*any",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %s not registered", route)
		}
	}
}

func TestNewRouter_Middleware(t *testing.T) {
	r, catalogUC := testRouter(t)
	catalogUC.EXPECT().ListTimeSlots(gomock.Any()).Return([]entities.TimeSlot{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/time-slots", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected CORS headers, got %v", w.Header())
	}
}
