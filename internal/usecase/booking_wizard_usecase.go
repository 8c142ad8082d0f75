package usecase

//go:generate mockgen -source=booking_wizard_usecase.go -destination=../adapter/http/handlers/mocks/mock_booking_wizard_usecase.go -package=mocks

import (
	"context"
	"errors"
	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated     = errors.New("authentication required")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidOptionID     = errors.New("invalid option_id")
	ErrOptionNotFound      = errors.New("service option not found")
	ErrSessionNotFound     = errors.New("booking session not found")
	ErrSessionForbidden    = errors.New("booking session belongs to another user")
	ErrHandoffNotRetryable = errors.New("booking hand-off cannot be retried")
)

const defaultHandoffTimeout = 15 * time.Second

// WizardView is a session plus the values the client renders for its step.
type WizardView struct {
	Session           wizard.Session
	EligibleProviders []entities.Provider
	Quote             wizard.Quote
	CanAdvance        bool
}

// IBookingWizardUseCase drives one user's booking wizard across requests.
//
// Every mutating call returns the updated view. When the wizard rejects the
// input the error is a *wizard.Notice, the view is still returned and the
// notice is stored on the session.

type IBookingWizardUseCase interface {
	Start(ctx context.Context, user entities.User, serviceID, optionID string) (WizardView, error)
	Get(ctx context.Context, user entities.User, sessionID string) (WizardView, error)
	SelectOption(ctx context.Context, user entities.User, sessionID, optionID string) (WizardView, error)
	SelectProvider(ctx context.Context, user entities.User, sessionID, providerID string) (WizardView, error)
	SelectDate(ctx context.Context, user entities.User, sessionID string, date time.Time) (WizardView, error)
	SelectTimeSlot(ctx context.Context, user entities.User, sessionID, slotID string) (WizardView, error)
	SetAddress(ctx context.Context, user entities.User, sessionID string, patch entities.AddressPatch) (WizardView, error)
	SelectPaymentMethod(ctx context.Context, user entities.User, sessionID string, method entities.PaymentMethod) (WizardView, error)
	Next(ctx context.Context, user entities.User, sessionID string) (WizardView, error)
	Back(ctx context.Context, user entities.User, sessionID string) (WizardView, error)
	Discard(ctx context.Context, user entities.User, sessionID string) error
	RetryHandoff(ctx context.Context, user entities.User, sessionID string) (WizardView, error)
}

type WizardConfig struct {
	// HandoffTimeout bounds one hand-off attempt (payment + persistence).
	HandoffTimeout time.Duration
}

type BookingWizardUseCase struct {
	catalog  interfaces.ICatalogRepository
	sessions interfaces.ISessionRepository
	bookings interfaces.IBookingRepository
	gateway  interfaces.IPaymentGateway
	logger   *zap.Logger
	cfg      WizardConfig

	now      func() time.Time
	random   wizard.RandomSource
	newID    func() string
	inflight sync.WaitGroup
}

var _ IBookingWizardUseCase = (*BookingWizardUseCase)(nil)

func NewBookingWizardUseCase(
	catalog interfaces.ICatalogRepository,
	sessions interfaces.ISessionRepository,
	bookings interfaces.IBookingRepository,
	gateway interfaces.IPaymentGateway,
	logger *zap.Logger,
	cfg WizardConfig,
) *BookingWizardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.HandoffTimeout <= 0 {
		cfg.HandoffTimeout = defaultHandoffTimeout
	}
	return &BookingWizardUseCase{
		catalog:  catalog,
		sessions: sessions,
		bookings: bookings,
		gateway:  gateway,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (u *BookingWizardUseCase) Start(ctx context.Context, user entities.User, serviceID, optionID string) (WizardView, error) {
	if !user.Authenticated() {
		return WizardView{}, ErrUnauthenticated
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return WizardView{}, ErrInvalidServiceID
	}
	optionID = strings.TrimSpace(optionID)
	if optionID == "" {
		return WizardView{}, ErrInvalidOptionID
	}

	cat, err := u.loadCatalog(ctx, serviceID)
	if err != nil {
		return WizardView{}, err
	}
	w, err := wizard.New(wizard.Params{User: user, Catalog: cat, OptionID: optionID}, u.wizardOptions()...)
	if err != nil {
		if errors.Is(err, wizard.ErrUnknownOption) {
			return WizardView{}, ErrOptionNotFound
		}
		return WizardView{}, err
	}

	now := u.now().UTC()
	s := wizard.Session{
		ID:        u.newID(),
		Draft:     w.Draft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		u.logger.Error("[wizard][usecase] session create failed", zap.String("user_id", user.ID), zap.Error(err))
		return WizardView{}, err
	}
	u.logger.Info("[wizard][usecase] session started",
		zap.String("session_id", s.ID),
		zap.String("user_id", user.ID),
		zap.String("service_id", serviceID),
		zap.String("option_id", optionID))
	return u.view(s, w), nil
}

func (u *BookingWizardUseCase) Get(ctx context.Context, user entities.User, sessionID string) (WizardView, error) {
	s, err := u.ownedSession(ctx, user, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	cat, err := u.loadCatalog(ctx, s.Draft.ServiceID)
	if err != nil {
		return WizardView{}, err
	}
	w, err := wizard.Restore(s.Draft, cat, u.wizardOptions()...)
	if err != nil {
		return WizardView{}, err
	}
	return u.view(s, w), nil
}

func (u *BookingWizardUseCase) SelectOption(ctx context.Context, user entities.User, sessionID, optionID string) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "select-option", func(w *wizard.Wizard) error {
		return w.SelectOption(strings.TrimSpace(optionID))
	})
}

func (u *BookingWizardUseCase) SelectProvider(ctx context.Context, user entities.User, sessionID, providerID string) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "select-provider", func(w *wizard.Wizard) error {
		return w.SelectProvider(strings.TrimSpace(providerID))
	})
}

func (u *BookingWizardUseCase) SelectDate(ctx context.Context, user entities.User, sessionID string, date time.Time) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "select-date", func(w *wizard.Wizard) error {
		return w.SelectDate(date)
	})
}

func (u *BookingWizardUseCase) SelectTimeSlot(ctx context.Context, user entities.User, sessionID, slotID string) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "select-time-slot", func(w *wizard.Wizard) error {
		return w.SelectTimeSlot(strings.TrimSpace(slotID))
	})
}

func (u *BookingWizardUseCase) SetAddress(ctx context.Context, user entities.User, sessionID string, patch entities.AddressPatch) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "set-address", func(w *wizard.Wizard) error {
		return w.SetAddress(patch)
	})
}

func (u *BookingWizardUseCase) SelectPaymentMethod(ctx context.Context, user entities.User, sessionID string, method entities.PaymentMethod) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "select-payment-method", func(w *wizard.Wizard) error {
		return w.SelectPaymentMethod(method)
	})
}

func (u *BookingWizardUseCase) Next(ctx context.Context, user entities.User, sessionID string) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "next", func(w *wizard.Wizard) error {
		return w.Next()
	})
}

func (u *BookingWizardUseCase) Back(ctx context.Context, user entities.User, sessionID string) (WizardView, error) {
	return u.apply(ctx, user, sessionID, "back", func(w *wizard.Wizard) error {
		return w.Back()
	})
}

// Discard drops the draft, e.g. when the user navigates away.
func (u *BookingWizardUseCase) Discard(ctx context.Context, user entities.User, sessionID string) error {
	s, err := u.ownedSession(ctx, user, sessionID)
	if err != nil {
		return err
	}
	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		return err
	}
	u.logger.Info("[wizard][usecase] session discarded", zap.String("session_id", s.ID), zap.String("step", s.Draft.Step.String()))
	return nil
}

// RetryHandoff re-runs a failed hand-off. Hand-offs are never retried automatically.
func (u *BookingWizardUseCase) RetryHandoff(ctx context.Context, user entities.User, sessionID string) (WizardView, error) {
	if !user.Authenticated() {
		return WizardView{}, ErrUnauthenticated
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return WizardView{}, ErrInvalidSessionID
	}

	updated, err := u.sessions.Update(ctx, sessionID, func(s *wizard.Session) error {
		if !s.OwnedBy(user.ID) {
			return ErrSessionForbidden
		}
		if !s.Handoff.Retryable() {
			return ErrHandoffNotRetryable
		}
		u.markPending(s)
		return nil
	})
	if err != nil {
		return WizardView{}, err
	}
	if updated.ID == "" {
		return WizardView{}, ErrSessionNotFound
	}
	u.logger.Info("[wizard][usecase] hand-off retry requested", zap.String("session_id", updated.ID), zap.Int("attempt", updated.Handoff.Attempts))
	u.startHandoff(updated)
	return u.Get(ctx, user, sessionID)
}

// Drain waits for in-flight hand-offs or until ctx is done.
func (u *BookingWizardUseCase) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// apply runs op against the stored draft atomically. The draft is saved even
// when op is rejected so the notice reaches the client.
func (u *BookingWizardUseCase) apply(ctx context.Context, user entities.User, sessionID, op string, fn func(w *wizard.Wizard) error) (WizardView, error) {
	if !user.Authenticated() {
		return WizardView{}, ErrUnauthenticated
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return WizardView{}, ErrInvalidSessionID
	}

	var (
		w         *wizard.Wizard
		notice    error
		confirmed bool
	)
	updated, err := u.sessions.Update(ctx, sessionID, func(s *wizard.Session) error {
		confirmed = false
		if !s.OwnedBy(user.ID) {
			return ErrSessionForbidden
		}
		cat, err := u.loadCatalog(ctx, s.Draft.ServiceID)
		if err != nil {
			return err
		}
		restored, err := wizard.Restore(s.Draft, cat, u.wizardOptions()...)
		if err != nil {
			return err
		}

		wasTerminal := restored.Step().Terminal()
		notice = fn(restored)
		s.Draft = restored.Draft()
		s.UpdatedAt = u.now().UTC()
		if !wasTerminal && restored.Step().Terminal() {
			u.markPending(s)
			confirmed = true
		}
		w = restored
		return nil
	})
	if err != nil {
		return WizardView{}, err
	}
	if updated.ID == "" {
		return WizardView{}, ErrSessionNotFound
	}

	if confirmed {
		b, _ := w.Booking()
		u.logger.Info("[wizard][usecase] booking confirmed",
			zap.String("session_id", updated.ID),
			zap.String("booking_id", b.BookingID),
			zap.Int64("total_price", b.TotalPrice))
		u.startHandoff(updated)
	}

	view := u.view(updated, w)
	if notice != nil {
		u.logger.Debug("[wizard][usecase] input rejected",
			zap.String("session_id", updated.ID),
			zap.String("op", op),
			zap.String("step", updated.Draft.Step.String()),
			zap.Error(notice))
		return view, notice
	}
	return view, nil
}

func (u *BookingWizardUseCase) ownedSession(ctx context.Context, user entities.User, sessionID string) (wizard.Session, error) {
	if !user.Authenticated() {
		return wizard.Session{}, ErrUnauthenticated
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return wizard.Session{}, ErrInvalidSessionID
	}

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return wizard.Session{}, err
	}
	if s.ID == "" {
		return wizard.Session{}, ErrSessionNotFound
	}
	if !s.OwnedBy(user.ID) {
		return wizard.Session{}, ErrSessionForbidden
	}
	return s, nil
}

func (u *BookingWizardUseCase) loadCatalog(ctx context.Context, serviceID string) (wizard.Catalog, error) {
	svc, err := u.catalog.GetService(ctx, serviceID)
	if err != nil {
		return wizard.Catalog{}, err
	}
	if svc.ID == "" {
		return wizard.Catalog{}, ErrServiceNotFound
	}
	providers, err := u.catalog.ListProviders(ctx)
	if err != nil {
		return wizard.Catalog{}, err
	}
	slots, err := u.catalog.ListTimeSlots(ctx)
	if err != nil {
		return wizard.Catalog{}, err
	}
	return wizard.Catalog{Service: svc, Providers: providers, TimeSlots: slots}, nil
}

func (u *BookingWizardUseCase) wizardOptions() []wizard.Option {
	opts := []wizard.Option{wizard.WithClock(u.now)}
	if u.random != nil {
		opts = append(opts, wizard.WithRandom(u.random))
	}
	return opts
}

func (u *BookingWizardUseCase) view(s wizard.Session, w *wizard.Wizard) WizardView {
	return WizardView{
		Session:           s,
		EligibleProviders: w.EligibleProviders(),
		Quote:             w.Quote(),
		CanAdvance:        w.CanAdvance(),
	}
}
