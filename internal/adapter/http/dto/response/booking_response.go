package response

import (
	"time"

	"homeez_booking/internal/domain/entities"
)

type BookingResponse struct {
	ID            string           `json:"id"`
	BookingID     string           `json:"booking_id"`
	ServiceID     string           `json:"service_id"`
	OptionID      string           `json:"option_id"`
	ProviderID    string           `json:"provider_id"`
	Date          string           `json:"date"`
	TimeSlot      string           `json:"time_slot"`
	Address       entities.Address `json:"address"`
	PaymentMethod string           `json:"payment_method"`
	PaymentID     string           `json:"payment_id,omitempty"`
	TotalPrice    int64            `json:"total_price"`
	Status        string           `json:"status"`
	Cancellable   bool             `json:"cancellable"`
	ConfirmedAt   time.Time        `json:"confirmed_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		BookingID:     b.BookingID,
		ServiceID:     b.ServiceID,
		OptionID:      b.OptionID,
		ProviderID:    b.ProviderID,
		Date:          formatDate(b.Date),
		TimeSlot:      b.TimeSlot,
		Address:       b.Address,
		PaymentMethod: string(b.PaymentMethod),
		PaymentID:     b.PaymentID,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		Cancellable:   b.Status.Cancellable(),
		ConfirmedAt:   b.ConfirmedAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBookings(items []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBooking(b))
	}
	return out
}
