package response

import (
	"time"

	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase"
)

const dateLayout = "2006-01-02"

type NoticeResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type QuoteResponse struct {
	Subtotal       int64 `json:"subtotal"`
	ConvenienceFee int64 `json:"convenience_fee"`
	Total          int64 `json:"total"`
}

type ConfirmedBookingResponse struct {
	BookingID     string           `json:"booking_id"`
	ServiceID     string           `json:"service_id"`
	OptionID      string           `json:"option_id"`
	ProviderID    string           `json:"provider_id"`
	Date          string           `json:"date"`
	TimeSlot      string           `json:"time_slot"`
	Address       entities.Address `json:"address"`
	PaymentMethod string           `json:"payment_method"`
	TotalPrice    int64            `json:"total_price"`
	Status        string           `json:"status"`
	ConfirmedAt   time.Time        `json:"confirmed_at"`
}

// HandoffResponse reports the background hand-off of the confirmed booking.
// PersistedID is only meaningful once Status is "persisted".
type HandoffResponse struct {
	Status      string          `json:"status"`
	PersistedID string          `json:"persisted_id,omitempty"`
	PaymentID   string          `json:"payment_id,omitempty"`
	Attempts    int             `json:"attempts"`
	Retryable   bool            `json:"retryable"`
	Notice      *NoticeResponse `json:"notice,omitempty"`
}

type WizardResponse struct {
	SessionID         string                    `json:"session_id"`
	Step              string                    `json:"step"`
	Steps             []string                  `json:"steps"`
	CanAdvance        bool                      `json:"can_advance"`
	CanGoBack         bool                      `json:"can_go_back"`
	ServiceID         string                    `json:"service_id"`
	Option            entities.ServiceOption    `json:"option"`
	Provider          *ProviderResponse         `json:"provider,omitempty"`
	EligibleProviders []ProviderResponse        `json:"eligible_providers"`
	Date              string                    `json:"date"`
	TimeSlot          *TimeSlotResponse         `json:"time_slot,omitempty"`
	Address           entities.Address          `json:"address"`
	PaymentMethod     string                    `json:"payment_method"`
	Quote             QuoteResponse             `json:"quote"`
	Notice            *NoticeResponse           `json:"notice,omitempty"`
	Booking           *ConfirmedBookingResponse `json:"booking,omitempty"`
	Handoff           *HandoffResponse          `json:"handoff,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func FromWizardView(v usecase.WizardView) WizardResponse {
	d := v.Session.Draft
	_, canGoBack := wizard.Transition(d.Step, wizard.EventBack)

	steps := make([]string, 0, len(wizard.Steps()))
	for _, s := range wizard.Steps() {
		steps = append(steps, s.String())
	}

	eligible := make([]ProviderResponse, 0, len(v.EligibleProviders))
	for _, p := range v.EligibleProviders {
		eligible = append(eligible, FromProvider(p, d.ServiceID))
	}

	out := WizardResponse{
		SessionID:         v.Session.ID,
		Step:              d.Step.String(),
		Steps:             steps,
		CanAdvance:        v.CanAdvance,
		CanGoBack:         canGoBack,
		ServiceID:         d.ServiceID,
		Option:            d.Option,
		EligibleProviders: eligible,
		Date:              formatDate(d.Date),
		Address:           d.Address,
		PaymentMethod:     string(d.PaymentMethod),
		Quote: QuoteResponse{
			Subtotal:       v.Quote.Subtotal,
			ConvenienceFee: v.Quote.ConvenienceFee,
			Total:          v.Quote.Total,
		},
		Notice:    FromNotice(d.Notice),
		CreatedAt: v.Session.CreatedAt,
		UpdatedAt: v.Session.UpdatedAt,
	}
	if d.Provider != nil {
		p := FromProvider(*d.Provider, d.ServiceID)
		out.Provider = &p
	}
	if d.TimeSlot != nil {
		s := FromTimeSlot(*d.TimeSlot)
		out.TimeSlot = &s
	}
	if d.Booking != nil {
		b := FromConfirmedBooking(*d.Booking)
		out.Booking = &b
	}
	if h := v.Session.Handoff; h.Status != wizard.HandoffNone {
		out.Handoff = &HandoffResponse{
			Status:      string(h.Status),
			PersistedID: h.PersistedID,
			PaymentID:   h.PaymentID,
			Attempts:    h.Attempts,
			Retryable:   h.Retryable(),
			Notice:      FromNotice(h.Notice),
		}
	}
	return out
}

func FromNotice(n *wizard.Notice) *NoticeResponse {
	if n == nil {
		return nil
	}
	return &NoticeResponse{Code: string(n.Code), Message: n.Message, Fields: n.Fields}
}

func FromConfirmedBooking(b entities.ConfirmedBooking) ConfirmedBookingResponse {
	return ConfirmedBookingResponse{
		BookingID:     b.BookingID,
		ServiceID:     b.ServiceID,
		OptionID:      b.OptionID,
		ProviderID:    b.ProviderID,
		Date:          formatDate(b.Date),
		TimeSlot:      b.TimeSlot,
		Address:       b.Address,
		PaymentMethod: string(b.PaymentMethod),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		ConfirmedAt:   b.ConfirmedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
