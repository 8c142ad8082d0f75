package request

import (
	"errors"
	"strings"
	"time"

	"homeez_booking/internal/domain/entities"
)

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must use the YYYY-MM-DD format")

// StartWizardRequest opens a booking wizard for one service option, the way
// the "Book Now" button on the service page does.
type StartWizardRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	OptionID  string `json:"option_id" binding:"required"`
}

type SelectOptionRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

type SelectProviderRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required" example:"2026-03-12"`
}

// ResolveDate parses the calendar day. The time of day is irrelevant.
func (r SelectDateRequest) ResolveDate() (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

type SelectTimeSlotRequest struct {
	TimeSlotID string `json:"time_slot_id" binding:"required"`
}

// AddressPatchRequest updates only the fields present in the body.
type AddressPatchRequest struct {
	Name    *string `json:"name"`
	Line1   *string `json:"line1"`
	Line2   *string `json:"line2"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Pincode *string `json:"pincode"`
	Phone   *string `json:"phone"`
}

func (r AddressPatchRequest) ToPatch() entities.AddressPatch {
	return entities.AddressPatch{
		Name:    r.Name,
		Line1:   r.Line1,
		Line2:   r.Line2,
		City:    r.City,
		State:   r.State,
		Pincode: r.Pincode,
		Phone:   r.Phone,
	}
}

// Empty reports whether the body carried no field at all.
func (r AddressPatchRequest) Empty() bool {
	return r.Name == nil && r.Line1 == nil && r.Line2 == nil && r.City == nil &&
		r.State == nil && r.Pincode == nil && r.Phone == nil
}

type SelectPaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required" example:"cash"`
}

// ResolvePaymentMethod normalises the value; unknown methods are rejected by
// the wizard with a notice.
func (r SelectPaymentMethodRequest) ResolvePaymentMethod() entities.PaymentMethod {
	if m, ok := entities.ParsePaymentMethod(r.PaymentMethod); ok {
		return m
	}
	return entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
}
