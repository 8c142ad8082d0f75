package wizard

import "homeez_booking/internal/domain/entities"

// ConvenienceFee is added once to every booking.
const ConvenienceFee int64 = 49

type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	ConvenienceFee int64 `json:"convenience_fee"`
	Total          int64 `json:"total"`
}

// QuoteFor prices an option. No taxes, discounts or promo codes apply.
func QuoteFor(o entities.ServiceOption) Quote {
	return Quote{
		Subtotal:       o.Price,
		ConvenienceFee: ConvenienceFee,
		Total:          o.Price + ConvenienceFee,
	}
}
