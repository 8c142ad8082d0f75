package usecase

//go:generate mockgen -source=booking_usecase.go -destination=../adapter/http/handlers/mocks/mock_booking_usecase.go -package=mocks

import (
	"context"
	"errors"
	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/usecase/interfaces"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrBookingForbidden      = errors.New("booking belongs to another user")
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")
)

// IBookingUseCase covers persisted bookings after the wizard handed them off.
//
//   - "My bookings" dashboard => ListMine()
//   - booking details         => GetByID()
//   - cancel booking          => Cancel()

type IBookingUseCase interface {
	ListMine(ctx context.Context, user entities.User) ([]entities.Booking, error)
	GetByID(ctx context.Context, user entities.User, id string) (entities.Booking, error)
	Cancel(ctx context.Context, user entities.User, id string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo   interfaces.IBookingRepository
	logger *zap.Logger
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, logger *zap.Logger) *BookingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingUseCase{repo: repo, logger: logger}
}

// ListMine returns the caller's bookings, latest booking date first.
func (u *BookingUseCase) ListMine(ctx context.Context, user entities.User) ([]entities.Booking, error) {
	if !user.Authenticated() {
		return nil, ErrUnauthenticated
	}

	items, err := u.repo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, user entities.User, id string) (entities.Booking, error) {
	if !user.Authenticated() {
		return entities.Booking{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.UserID != user.ID {
		return entities.Booking{}, ErrBookingForbidden
	}
	return b, nil
}

func (u *BookingUseCase) Cancel(ctx context.Context, user entities.User, id string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, user, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !b.Status.Cancellable() {
		u.logger.Info("[booking][usecase] cancel refused", zap.String("booking_id", b.ID), zap.String("status", string(b.Status)))
		return entities.Booking{}, ErrBookingNotCancellable
	}

	updated, err := u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusCancelled)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	u.logger.Info("[booking][usecase] cancelled", zap.String("booking_id", updated.ID), zap.String("user_id", user.ID))
	return updated, nil
}
