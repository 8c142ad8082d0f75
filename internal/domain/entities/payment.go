package entities

import "strings"

// PaymentMethod is how the customer pays for a booking.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
)

// DefaultPaymentMethod is preselected when the wizard reaches the payment step.
const DefaultPaymentMethod = PaymentMethodCash

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return m, true
	}
	return "", false
}

// RequiresGateway reports whether the method is charged online at hand-off.
// Cash is collected by the provider after the service.
func (m PaymentMethod) RequiresGateway() bool {
	return m == PaymentMethodCard || m == PaymentMethodUPI
}
