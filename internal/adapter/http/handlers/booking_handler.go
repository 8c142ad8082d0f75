package handlers

import (
	"net/http"

	response "homeez_booking/internal/adapter/http/dto/response"
	"homeez_booking/internal/adapter/http/middleware"
	"homeez_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the caller's persisted bookings (dashboard).

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// ListBookings godoc
// @Summary  List the caller's bookings
// @Tags     bookings
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Success  200 {array} response.BookingResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	items, err := h.usecase.ListMine(c.Request.Context(), middleware.UserFrom(c))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(items))
}

// GetBooking godoc
// @Summary  Get one booking
// @Tags     bookings
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    booking_id path string true "Booking ID"
// @Success  200 {object} response.BookingResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), middleware.UserFrom(c), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// CancelBooking godoc
// @Summary  Cancel a booking
// @Tags     bookings
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    booking_id path string true "Booking ID"
// @Success  200 {object} response.BookingResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /bookings/{booking_id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.usecase.Cancel(c.Request.Context(), middleware.UserFrom(c), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}
