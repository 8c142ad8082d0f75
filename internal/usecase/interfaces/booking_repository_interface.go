package interfaces

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/mock_booking_repository_interface.go -package=mock_interfaces

import (
	"context"
	"homeez_booking/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for confirmed bookings.
//
// Missing records are reported as a zero Booking, not an error.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
