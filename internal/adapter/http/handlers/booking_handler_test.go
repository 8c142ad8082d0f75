package handlers

import (
	"net/http"
	"testing"

	"homeez_booking/internal/adapter/http/handlers/mocks"
	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func bookingRouter(h *BookingHandler) *gin.Engine {
	r := newTestRouter()
	r.GET("/v1/bookings", h.ListBookings)
	r.GET("/v1/bookings/:booking_id", h.GetBooking)
	r.PATCH("/v1/bookings/:booking_id/cancel", h.CancelBooking)
	return r
}

func TestBookingHandler(t *testing.T) {
	t.Run("list requires user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc))

		uc.EXPECT().ListMine(gomock.Any(), entities.User{}).Return(nil, usecase.ErrUnauthenticated)

		w := perform(r, http.MethodGet, "/v1/bookings", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc))

		uc.EXPECT().ListMine(gomock.Any(), gomock.Any()).Return([]entities.Booking{{ID: "b1"}}, nil)

		w := perform(r, http.MethodGet, "/v1/bookings", "", "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: usecase.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "forbidden", err: usecase.ErrBookingForbidden, want: http.StatusForbidden},
		{name: "not cancellable", err: usecase.ErrBookingNotCancellable, want: http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run("cancel "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBookingUseCase(ctrl)
			r := bookingRouter(NewBookingHandler(uc))

			uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "b1").Return(entities.Booking{}, tc.err)

			w := perform(r, http.MethodPatch, "/v1/bookings/b1/cancel", "", "user-1")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "b1").Return(entities.Booking{ID: "b1"}, nil)

		w := perform(r, http.MethodGet, "/v1/bookings/b1", "", "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
