package entities

import "time"

// BookingStatus represents the lifecycle of a persisted booking.
//
// The wizard only ever produces "confirmed"; completion and cancellation are
// driven by the persistence side.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Cancellable reports whether a booking in this status may still be cancelled.
func (s BookingStatus) Cancellable() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// ConfirmedBooking is the record produced by the wizard on confirmation.
//
// BookingID is a display identifier only (fixed prefix + 6 random digits);
// it is not guaranteed to be unique. The persistence collaborator assigns the
// authoritative id (see Booking.ID).
type ConfirmedBooking struct {
	BookingID     string        `json:"booking_id"`
	UserID        string        `json:"user_id"`
	ServiceID     string        `json:"service_id"`
	OptionID      string        `json:"option_id"`
	ProviderID    string        `json:"provider_id"`
	Date          time.Time     `json:"date"`
	TimeSlot      string        `json:"time_slot"`
	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	TotalPrice    int64         `json:"total_price"`
	Status        BookingStatus `json:"status"`
	ConfirmedAt   time.Time     `json:"confirmed_at"`
}

// Booking is a ConfirmedBooking after it has been persisted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Booking struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id,omitempty"`
	ConfirmedBooking
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
