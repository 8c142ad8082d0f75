package entities

// ServiceOption is a purchasable variant of a service with a fixed price.
//
// Monetary representation:
//   - Price is expressed in whole currency units (no fractional amounts).
type ServiceOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Service is a category of home service (cleaning, plumbing, ...).
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Image       string          `json:"image"`
	Popular     bool            `json:"popular"`
	Options     []ServiceOption `json:"options"`
}

// Option returns the option with the given id.
func (s Service) Option(id string) (ServiceOption, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOption{}, false
}

// Provider is a professional eligible to fulfil one or more services.

type Provider struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Experience string   `json:"experience"`
	ServiceIDs []string `json:"service_ids"`
	Featured   bool     `json:"featured"`
	TrustScore int      `json:"trust_score"`
	Busy       bool     `json:"busy"`
}

func (p Provider) Supports(serviceID string) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Eligible reports whether the provider can be picked for serviceID right now.
func (p Provider) Eligible(serviceID string) bool {
	return !p.Busy && p.Supports(serviceID)
}

// TimeSlot is shared reference data; there is no per-user reservation.
type TimeSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}
