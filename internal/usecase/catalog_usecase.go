package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

import (
	"context"
	"errors"
	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/usecase/interfaces"
	"strings"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service_id")
)

// ICatalogUseCase exposes the read-only reference data used by the booking pages.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListProviders(ctx context.Context, serviceID string) ([]entities.Provider, error)
	ListTimeSlots(ctx context.Context) ([]entities.TimeSlot, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repo.ListServices(ctx)
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetService(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// ListProviders returns every provider offering the service, busy ones
// included so the page can show them as unavailable.
func (u *CatalogUseCase) ListProviders(ctx context.Context, serviceID string) ([]entities.Provider, error) {
	s, err := u.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	all, err := u.repo.ListProviders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Provider, 0, len(all))
	for _, p := range all {
		if p.Supports(s.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) ListTimeSlots(ctx context.Context) ([]entities.TimeSlot, error) {
	return u.repo.ListTimeSlots(ctx)
}
