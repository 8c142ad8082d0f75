package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase/interfaces"
	mock_interfaces "homeez_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var wizardNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type fixedDigits int

func (f fixedDigits) IntN(int) int { return int(f) }

// memorySessions is a minimal ISessionRepository for use case tests.
type memorySessions struct {
	mu    sync.Mutex
	items map[string]wizard.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{items: map[string]wizard.Session{}}
}

func (m *memorySessions) Create(_ context.Context, s wizard.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[s.ID] = s
	return nil
}

func (m *memorySessions) Get(_ context.Context, id string) (wizard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id], nil
}

func (m *memorySessions) Update(_ context.Context, id string, fn func(*wizard.Session) error) (wizard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return wizard.Session{}, nil
	}
	if err := fn(&s); err != nil {
		return wizard.Session{}, err
	}
	m.items[id] = s
	return s, nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

var _ interfaces.ISessionRepository = (*memorySessions)(nil)

func cleaningService() entities.Service {
	return entities.Service{
		ID:   "home-cleaning",
		Name: "Home Cleaning",
		Options: []entities.ServiceOption{
			{ID: "clean-1bhk-furnished", Name: "Cleaning for Furnished 1BHK", Price: 1299},
			{ID: "clean-kitchen", Name: "Kitchen Cleaning", Price: 699},
		},
	}
}

func catalogProviders() []entities.Provider {
	return []entities.Provider{
		{ID: "sp1", Name: "Rajesh Kumar", ServiceIDs: []string{"home-cleaning"}},
		{ID: "sp3", Name: "Mohammed Ali", ServiceIDs: []string{"home-cleaning"}, Busy: true},
	}
}

func catalogSlots() []entities.TimeSlot {
	return []entities.TimeSlot{
		{ID: "0800", Label: "08:00 AM", Available: true},
		{ID: "0900", Label: "09:00 AM", Available: false},
	}
}

type wizardFixture struct {
	uc       *BookingWizardUseCase
	sessions *memorySessions
	bookings *mock_interfaces.MockIBookingRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newWizardFixture(t *testing.T) wizardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	catalog.EXPECT().GetService(gomock.Any(), "home-cleaning").Return(cleaningService(), nil).AnyTimes()
	catalog.EXPECT().GetService(gomock.Any(), gomock.Not("home-cleaning")).Return(entities.Service{}, nil).AnyTimes()
	catalog.EXPECT().ListProviders(gomock.Any()).Return(catalogProviders(), nil).AnyTimes()
	catalog.EXPECT().ListTimeSlots(gomock.Any()).Return(catalogSlots(), nil).AnyTimes()

	f := wizardFixture{
		sessions: newMemorySessions(),
		bookings: mock_interfaces.NewMockIBookingRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewBookingWizardUseCase(catalog, f.sessions, f.bookings, f.gateway, nil, WizardConfig{HandoffTimeout: time.Second})
	f.uc.now = func() time.Time { return wizardNow }
	f.uc.random = fixedDigits(482913)
	ids := 0
	f.uc.newID = func() string {
		ids++
		return []string{"sess-1", "persist-1", "persist-2", "persist-3"}[ids-1]
	}
	return f
}

var asha = entities.User{ID: "user-1", Email: "asha@example.com"}

func fullPatch() entities.AddressPatch {
	s := func(v string) *string { return &v }
	return entities.AddressPatch{
		Name:    s("Asha Rao"),
		Line1:   s("12 MG Road"),
		City:    s("Bengaluru"),
		State:   s("Karnataka"),
		Pincode: s("560001"),
		Phone:   s("9876543210"),
	}
}

// toPayment walks a fresh session up to the Payment step.
func toPayment(t *testing.T, f wizardFixture) string {
	t.Helper()
	ctx := context.Background()
	v, err := f.uc.Start(ctx, asha, "home-cleaning", "clean-1bhk-furnished")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := v.Session.ID
	steps := []func() (WizardView, error){
		func() (WizardView, error) { return f.uc.SelectProvider(ctx, asha, id, "sp1") },
		func() (WizardView, error) { return f.uc.Next(ctx, asha, id) },
		func() (WizardView, error) { return f.uc.SelectDate(ctx, asha, id, wizardNow.AddDate(0, 0, 2)) },
		func() (WizardView, error) { return f.uc.SelectTimeSlot(ctx, asha, id, "0800") },
		func() (WizardView, error) { return f.uc.Next(ctx, asha, id) },
		func() (WizardView, error) { return f.uc.SetAddress(ctx, asha, id, fullPatch()) },
		func() (WizardView, error) { return f.uc.Next(ctx, asha, id) },
	}
	for i, step := range steps {
		if _, err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return id
}

func TestBookingWizardUseCase_Start(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		f := newWizardFixture(t)
		_, err := f.uc.Start(context.Background(), entities.User{}, "home-cleaning", "clean-kitchen")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		f := newWizardFixture(t)
		if _, err := f.uc.Start(context.Background(), asha, " ", "clean-kitchen"); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
		if _, err := f.uc.Start(context.Background(), asha, "home-cleaning", ""); !errors.Is(err, ErrInvalidOptionID) {
			t.Fatalf("expected ErrInvalidOptionID, got %v", err)
		}
	})

	t.Run("unknown service or option", func(t *testing.T) {
		f := newWizardFixture(t)
		if _, err := f.uc.Start(context.Background(), asha, "pest-control", "x"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
		if _, err := f.uc.Start(context.Background(), asha, "home-cleaning", "nope"); !errors.Is(err, ErrOptionNotFound) {
			t.Fatalf("expected ErrOptionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newWizardFixture(t)
		v, err := f.uc.Start(context.Background(), asha, " home-cleaning ", "clean-kitchen")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Session.ID != "sess-1" || v.Session.Draft.Step != wizard.StepDetails {
			t.Fatalf("unexpected session: %+v", v.Session)
		}
		if len(v.EligibleProviders) != 1 || v.EligibleProviders[0].ID != "sp1" {
			t.Fatalf("expected only sp1 eligible, got %+v", v.EligibleProviders)
		}
		if v.Quote.Total != 699+wizard.ConvenienceFee || v.CanAdvance {
			t.Fatalf("unexpected view: %+v", v)
		}
		stored, _ := f.sessions.Get(context.Background(), "sess-1")
		if stored.Draft.UserID != "user-1" || stored.Draft.UserEmail != "asha@example.com" {
			t.Fatalf("unexpected stored draft: %+v", stored.Draft)
		}
	})
}

func TestBookingWizardUseCase_Ownership(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	v, err := f.uc.Start(ctx, asha, "home-cleaning", "clean-kitchen")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	other := entities.User{ID: "user-2"}

	if _, err := f.uc.Get(ctx, other, v.Session.ID); !errors.Is(err, ErrSessionForbidden) {
		t.Fatalf("expected ErrSessionForbidden on get, got %v", err)
	}
	if _, err := f.uc.SelectProvider(ctx, other, v.Session.ID, "sp1"); !errors.Is(err, ErrSessionForbidden) {
		t.Fatalf("expected ErrSessionForbidden on select, got %v", err)
	}
	if err := f.uc.Discard(ctx, other, v.Session.ID); !errors.Is(err, ErrSessionForbidden) {
		t.Fatalf("expected ErrSessionForbidden on discard, got %v", err)
	}
	if _, err := f.uc.Get(ctx, asha, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := f.uc.Next(ctx, asha, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on next, got %v", err)
	}
	if _, err := f.uc.Back(ctx, asha, "  "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestBookingWizardUseCase_NoticeIsStored(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	v, _ := f.uc.Start(ctx, asha, "home-cleaning", "clean-kitchen")

	view, err := f.uc.SelectProvider(ctx, asha, v.Session.ID, "sp3")
	n, ok := wizard.AsNotice(err)
	if !ok || n.Code != wizard.NoticeProviderUnavailable {
		t.Fatalf("expected provider_unavailable notice, got %v", err)
	}
	if view.Session.Draft.Notice == nil || view.Session.Draft.Provider != nil {
		t.Fatalf("expected notice and no provider, got %+v", view.Session.Draft)
	}

	stored, _ := f.sessions.Get(ctx, v.Session.ID)
	if stored.Draft.Notice == nil || stored.Draft.Notice.Code != wizard.NoticeProviderUnavailable {
		t.Fatalf("expected stored notice, got %+v", stored.Draft.Notice)
	}

	view, err = f.uc.SelectProvider(ctx, asha, v.Session.ID, "sp1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Session.Draft.Notice != nil || !view.CanAdvance {
		t.Fatalf("expected notice cleared and advance allowed, got %+v", view)
	}
}

func TestBookingWizardUseCase_CashHandoff(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := toPayment(t, f)

	created := make(chan entities.Booking, 1)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			created <- b
			return b, nil
		},
	)

	v, err := f.uc.Next(ctx, asha, id)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if v.Session.Draft.Step != wizard.StepConfirmation {
		t.Fatalf("expected confirmation, got %s", v.Session.Draft.Step)
	}
	if v.Session.Handoff.Status != wizard.HandoffPending {
		t.Fatalf("expected pending hand-off in the returned view, got %q", v.Session.Handoff.Status)
	}
	if err := f.uc.Drain(ctx); err != nil {
		t.Fatalf("drain: %v", err)
	}

	b := <-created
	if b.ID != "persist-1" || b.BookingID != "BK482913" || b.TotalPrice != 1348 || b.PaymentID != "" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.Status != entities.BookingStatusConfirmed || b.UserID != "user-1" || b.ProviderID != "sp1" {
		t.Fatalf("unexpected booking fields: %+v", b)
	}

	got, err := f.uc.Get(ctx, asha, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Session.Handoff.Status != wizard.HandoffPersisted || got.Session.Handoff.PersistedID != "persist-1" {
		t.Fatalf("unexpected hand-off: %+v", got.Session.Handoff)
	}

	if _, err := f.uc.Next(ctx, asha, id); err == nil {
		t.Fatalf("expected notice when advancing past confirmation")
	}
	if _, err := f.uc.RetryHandoff(ctx, asha, id); !errors.Is(err, ErrHandoffNotRetryable) {
		t.Fatalf("expected ErrHandoffNotRetryable, got %v", err)
	}
}

func TestBookingWizardUseCase_CardHandoff(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := toPayment(t, f)
	if _, err := f.uc.SelectPaymentMethod(ctx, asha, id, entities.PaymentMethodCard); err != nil {
		t.Fatalf("select method: %v", err)
	}

	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if req["transaction_amount"] != float64(1348) || req["external_reference"] != "persist-1" {
				t.Fatalf("unexpected payload: %v", req)
			}
			payer, _ := req["payer"].(map[string]any)
			if payer["email"] != "asha@example.com" {
				t.Fatalf("unexpected payer: %v", req["payer"])
			}
			return "mp-77", "approved", json.RawMessage(`{}`), nil
		},
	)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			if b.PaymentID != "mp-77" || b.PaymentMethod != entities.PaymentMethodCard {
				t.Fatalf("unexpected booking: %+v", b)
			}
			return b, nil
		},
	)

	if _, err := f.uc.Next(ctx, asha, id); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	_ = f.uc.Drain(ctx)

	got, _ := f.sessions.Get(ctx, id)
	if got.Handoff.Status != wizard.HandoffPersisted || got.Handoff.PaymentID != "mp-77" {
		t.Fatalf("unexpected hand-off: %+v", got.Handoff)
	}
}

func TestBookingWizardUseCase_FailedHandoffRetry(t *testing.T) {
	t.Run("persistence failure then manual retry", func(t *testing.T) {
		f := newWizardFixture(t)
		ctx := context.Background()
		id := toPayment(t, f)

		gomock.InOrder(
			f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, errors.New("dynamo down")),
			f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.Booking) (entities.Booking, error) {
					if b.ID != "persist-1" {
						t.Fatalf("retry must reuse the persisted id, got %q", b.ID)
					}
					return b, nil
				},
			),
		)

		if _, err := f.uc.Next(ctx, asha, id); err != nil {
			t.Fatalf("confirm: %v", err)
		}
		_ = f.uc.Drain(ctx)

		got, _ := f.sessions.Get(ctx, id)
		if got.Handoff.Status != wizard.HandoffFailed || got.Handoff.Notice == nil || got.Handoff.Notice.Code != NoticeHandoffFailed {
			t.Fatalf("expected failed hand-off, got %+v", got.Handoff)
		}
		if got.Draft.Step != wizard.StepConfirmation || got.Draft.Booking == nil {
			t.Fatalf("confirmation must survive a failed hand-off, got %+v", got.Draft)
		}

		v, err := f.uc.RetryHandoff(ctx, asha, id)
		if err != nil {
			t.Fatalf("retry: %v", err)
		}
		if v.Session.Handoff.Attempts != 2 {
			t.Fatalf("expected 2 attempts, got %d", v.Session.Handoff.Attempts)
		}
		_ = f.uc.Drain(ctx)

		got, _ = f.sessions.Get(ctx, id)
		if got.Handoff.Status != wizard.HandoffPersisted || got.Handoff.Notice != nil {
			t.Fatalf("expected persisted after retry, got %+v", got.Handoff)
		}
	})

	t.Run("rejected payment is not charged twice once approved", func(t *testing.T) {
		f := newWizardFixture(t)
		ctx := context.Background()
		id := toPayment(t, f)
		_, _ = f.uc.SelectPaymentMethod(ctx, asha, id, entities.PaymentMethodUPI)

		gomock.InOrder(
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "rejected", nil, nil),
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", nil, nil),
		)
		gomock.InOrder(
			f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, errors.New("timeout")),
			f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, interfaces.ErrBookingAlreadyExists),
		)

		_, _ = f.uc.Next(ctx, asha, id)
		_ = f.uc.Drain(ctx)
		got, _ := f.sessions.Get(ctx, id)
		if got.Handoff.Notice == nil || got.Handoff.Notice.Code != NoticePaymentFailed {
			t.Fatalf("expected payment_failed, got %+v", got.Handoff)
		}

		// approved charge, persistence fails
		_, _ = f.uc.RetryHandoff(ctx, asha, id)
		_ = f.uc.Drain(ctx)
		got, _ = f.sessions.Get(ctx, id)
		if got.Handoff.Status != wizard.HandoffFailed || got.Handoff.PaymentID != "mp-1" {
			t.Fatalf("expected failed hand-off keeping payment id, got %+v", got.Handoff)
		}

		// no further charge; duplicate create counts as persisted
		_, _ = f.uc.RetryHandoff(ctx, asha, id)
		_ = f.uc.Drain(ctx)
		got, _ = f.sessions.Get(ctx, id)
		if got.Handoff.Status != wizard.HandoffPersisted {
			t.Fatalf("expected persisted, got %+v", got.Handoff)
		}
	})
}

func TestBookingWizardUseCase_DiscardDuringHandoff(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := toPayment(t, f)

	release := make(chan struct{})
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			<-release
			return b, nil
		},
	)

	if _, err := f.uc.Next(ctx, asha, id); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := f.uc.Discard(ctx, asha, id); err != nil {
		t.Fatalf("discard: %v", err)
	}
	close(release)
	_ = f.uc.Drain(ctx)

	if got, _ := f.sessions.Get(ctx, id); got.ID != "" {
		t.Fatalf("hand-off must not recreate a discarded session, got %+v", got)
	}
}

func TestBookingWizardUseCase_Drain(t *testing.T) {
	f := newWizardFixture(t)
	id := toPayment(t, f)

	release := make(chan struct{})
	defer close(release)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			<-release
			return b, nil
		},
	)
	if _, err := f.uc.Next(context.Background(), asha, id); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := f.uc.Drain(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
