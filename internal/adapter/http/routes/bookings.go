package routes

import (
	"homeez_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", h.ListBookings)
		bookings.GET("/:booking_id", h.GetBooking)
		bookings.PATCH("/:booking_id/cancel", h.CancelBooking)
	}
}
