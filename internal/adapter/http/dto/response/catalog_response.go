package response

import "homeez_booking/internal/domain/entities"

type ServiceResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Icon        string                   `json:"icon"`
	Image       string                   `json:"image"`
	Popular     bool                     `json:"popular"`
	StartingAt  int64                    `json:"starting_at"`
	Options     []entities.ServiceOption `json:"options"`
}

type ProviderResponse struct {
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
	// Eligible is set relative to the service in the request.
	Eligible bool `json:"eligible"`
}

type TimeSlotResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

func FromService(s entities.Service) ServiceResponse {
	options := s.Options
	if options == nil {
		options = []entities.ServiceOption{}
	}
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		Image:       s.Image,
		Popular:     s.Popular,
		StartingAt:  startingPrice(s.Options),
		Options:     options,
	}
}

// startingPrice is the cheapest option price, shown as "starting at".
func startingPrice(options []entities.ServiceOption) int64 {
	var min int64
	for i, o := range options {
		if i == 0 || o.Price < min {
			min = o.Price
		}
	}
	return min
}

func FromServices(items []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromService(s))
	}
	return out
}

func FromProvider(p entities.Provider, serviceID string) ProviderResponse {
	return ProviderResponse{
		ID:         p.ID,
		Name:       p.Name,
		Image:      p.Image,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		Experience: p.Experience,
		ServiceIDs: p.ServiceIDs,
		Featured:   p.Featured,
		TrustScore: p.TrustScore,
		Busy:       p.Busy,
		Eligible:   p.Eligible(serviceID),
	}
}

func FromProviders(items []entities.Provider, serviceID string) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProvider(p, serviceID))
	}
	return out
}

func FromTimeSlot(s entities.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{ID: s.ID, Label: s.Label, Available: s.Available}
}

func FromTimeSlots(items []entities.TimeSlot) []TimeSlotResponse {
	out := make([]TimeSlotResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromTimeSlot(s))
	}
	return out
}
