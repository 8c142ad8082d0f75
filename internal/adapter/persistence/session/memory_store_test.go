package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"homeez_booking/internal/domain/wizard"
)

func testSession(id string) wizard.Session {
	return wizard.Session{
		ID:    id,
		Draft: wizard.Draft{UserID: "user-1", ServiceID: "home-cleaning", Step: wizard.StepDetails},
	}
}

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute)

	if err := m.Create(ctx, testSession("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.Create(ctx, testSession("s1")); !errors.Is(err, ErrDuplicateSession) {
		t.Fatalf("expected ErrDuplicateSession, got %v", err)
	}

	got, err := m.Get(ctx, "s1")
	if err != nil || got.ID != "s1" {
		t.Fatalf("unexpected get: %+v err=%v", got, err)
	}

	updated, err := m.Update(ctx, "s1", func(s *wizard.Session) error {
		s.Draft.Step = wizard.StepDateTime
		return nil
	})
	if err != nil || updated.Draft.Step != wizard.StepDateTime {
		t.Fatalf("unexpected update: %+v err=%v", updated, err)
	}

	t.Run("fn error leaves session untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := m.Update(ctx, "s1", func(s *wizard.Session) error {
			s.Draft.Step = wizard.StepPayment
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		got, _ := m.Get(ctx, "s1")
		if got.Draft.Step != wizard.StepDateTime {
			t.Fatalf("expected step unchanged, got %s", got.Draft.Step)
		}
	})

	t.Run("missing session is not created", func(t *testing.T) {
		called := false
		got, err := m.Update(ctx, "nope", func(*wizard.Session) error {
			called = true
			return nil
		})
		if err != nil || got.ID != "" || called {
			t.Fatalf("expected zero session without calling fn, got %+v called=%v err=%v", got, called, err)
		}
	})

	if err := m.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := m.Get(ctx, "s1"); got.ID != "" {
		t.Fatalf("expected deleted session, got %+v", got)
	}
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	m := NewMemoryStore(10 * time.Minute)
	m.now = func() time.Time { return now }

	_ = m.Create(ctx, testSession("s1"))
	_ = m.Create(ctx, testSession("s2"))

	now = now.Add(8 * time.Minute)
	if _, err := m.Update(ctx, "s1", func(*wizard.Session) error { return nil }); err != nil {
		t.Fatalf("touch: %v", err)
	}

	now = now.Add(5 * time.Minute)
	if got, _ := m.Get(ctx, "s1"); got.ID != "s1" {
		t.Fatalf("expected touched session to be alive")
	}
	if got, _ := m.Get(ctx, "s2"); got.ID != "" {
		t.Fatalf("expected s2 to be expired")
	}
	if n := m.Len(); n != 1 {
		t.Fatalf("expected 1 live session, got %d", n)
	}
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Minute)
	_ = m.Create(ctx, testSession("s1"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Update(ctx, "s1", func(s *wizard.Session) error {
				s.Handoff.Attempts++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := m.Get(ctx, "s1")
	if got.Handoff.Attempts != 50 {
		t.Fatalf("expected 50 updates, got %d", got.Handoff.Attempts)
	}
}
