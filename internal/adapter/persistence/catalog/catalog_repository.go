package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/usecase/interfaces"
)

//go:embed catalog.json
var embedded []byte

type document struct {
	Services  []entities.Service  `json:"services"`
	Providers []entities.Provider `json:"providers"`
	TimeSlots []entities.TimeSlot `json:"time_slots"`
}

// StaticRepository serves the reference catalog from the embedded JSON file.
// The data is immutable; callers receive copies.

type StaticRepository struct {
	services  []entities.Service
	byID      map[string]int
	providers []entities.Provider
	slots     []entities.TimeSlot
}

var _ interfaces.ICatalogRepository = (*StaticRepository)(nil)

// NewStaticRepository loads the embedded catalog.
func NewStaticRepository() (*StaticRepository, error) {
	return Load(embedded)
}

// Load parses a catalog document with the same layout as catalog.json.
func Load(raw []byte) (*StaticRepository, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	r := &StaticRepository{
		services:  doc.Services,
		byID:      make(map[string]int, len(doc.Services)),
		providers: doc.Providers,
		slots:     doc.TimeSlots,
	}
	for i, s := range doc.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog service %d has no id", i)
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog service %q", s.ID)
		}
		r.byID[s.ID] = i
	}
	return r, nil
}

func (r *StaticRepository) ListServices(_ context.Context) ([]entities.Service, error) {
	out := make([]entities.Service, len(r.services))
	for i, s := range r.services {
		out[i] = copyService(s)
	}
	return out, nil
}

func (r *StaticRepository) GetService(_ context.Context, id string) (entities.Service, error) {
	i, ok := r.byID[id]
	if !ok {
		return entities.Service{}, nil
	}
	return copyService(r.services[i]), nil
}

func (r *StaticRepository) ListProviders(_ context.Context) ([]entities.Provider, error) {
	out := make([]entities.Provider, len(r.providers))
	for i, p := range r.providers {
		p.ServiceIDs = append([]string(nil), p.ServiceIDs...)
		out[i] = p
	}
	return out, nil
}

func (r *StaticRepository) ListTimeSlots(_ context.Context) ([]entities.TimeSlot, error) {
	return append([]entities.TimeSlot(nil), r.slots...), nil
}

func copyService(s entities.Service) entities.Service {
	s.Options = append([]entities.ServiceOption(nil), s.Options...)
	return s
}
