package request

import (
	"errors"
	"testing"
	"time"

	"homeez_booking/internal/domain/entities"
)

func TestSelectDateRequest_ResolveDate(t *testing.T) {
	got, err := SelectDateRequest{Date: " 2026-03-12 "}.ResolveDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}

	for _, raw := range []string{"12/03/2026", "2026-02-30", "2026-03-12T10:00:00Z"} {
		if _, err := (SelectDateRequest{Date: raw}).ResolveDate(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", raw, err)
		}
	}
}

func TestAddressPatchRequest(t *testing.T) {
	if !(AddressPatchRequest{}).Empty() {
		t.Fatalf("expected empty patch")
	}
	pin := "560001"
	r := AddressPatchRequest{Pincode: &pin}
	if r.Empty() {
		t.Fatalf("expected non-empty patch")
	}
	p := r.ToPatch()
	if p.Pincode == nil || *p.Pincode != "560001" || p.Name != nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}

func TestSelectPaymentMethodRequest_ResolvePaymentMethod(t *testing.T) {
	if got := (SelectPaymentMethodRequest{PaymentMethod: " UPI "}).ResolvePaymentMethod(); got != entities.PaymentMethodUPI {
		t.Fatalf("expected upi, got %q", got)
	}
	if got := (SelectPaymentMethodRequest{PaymentMethod: "crypto"}).ResolvePaymentMethod(); got != "crypto" {
		t.Fatalf("expected unknown value passed through, got %q", got)
	}
}
