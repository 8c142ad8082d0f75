package interfaces

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository_interface.go -package=mock_interfaces

import (
	"context"
	"homeez_booking/internal/domain/entities"
)

// ICatalogRepository is the read-only data-access collaborator for reference
// data. GetService returns a zero Service when the id is unknown.

type ICatalogRepository interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListProviders(ctx context.Context) ([]entities.Provider, error)
	ListTimeSlots(ctx context.Context) ([]entities.TimeSlot, error)
}
