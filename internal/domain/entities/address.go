package entities

import "strings"

// Address is the service location entered in the wizard.
//
// Validation is presence-only: every field except Line2 must be non-empty.
// Pincode and phone formats are not checked.
type Address struct {
	Name    string `json:"name"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// AddressPatch carries a partial address update. Nil fields are left untouched.
type AddressPatch struct {
	Name    *string
	Line1   *string
	Line2   *string
	City    *string
	State   *string
	Pincode *string
	Phone   *string
}

// Merge applies the non-nil fields of p on top of a.
func (a Address) Merge(p AddressPatch) Address {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.Name, p.Name)
	set(&a.Line1, p.Line1)
	set(&a.Line2, p.Line2)
	set(&a.City, p.City)
	set(&a.State, p.State)
	set(&a.Pincode, p.Pincode)
	set(&a.Phone, p.Phone)
	return a
}

// Missing returns the json names of the required fields that are blank,
// in display order.
func (a Address) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"line1", a.Line1},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
		{"phone", a.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (a Address) Complete() bool {
	return len(a.Missing()) == 0
}

// String renders the address on a single line, the way it is stored on a booking.
func (a Address) String() string {
	parts := []string{a.Name, a.Line1, a.Line2, a.City, a.State, a.Pincode}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
