package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase/interfaces"
)

// DefaultTTL is how long an untouched draft is kept.
const DefaultTTL = 30 * time.Minute

var ErrDuplicateSession = errors.New("session id already in use")

type memoryEntry struct {
	session   wizard.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Drafts are lost on restart,
// which matches their in-memory nature; use RedisStore to share them between
// instances.

type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

var _ interfaces.ISessionRepository = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{items: map[string]memoryEntry{}, ttl: ttl, now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, s wizard.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	if _, ok := m.items[s.ID]; ok {
		return ErrDuplicateSession
	}
	m.items[s.ID] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (wizard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(id, m.now())
	if !ok {
		return wizard.Session{}, nil
	}
	return e.session, nil
}

// Update holds the store lock while fn runs, so fn must not call back into
// the store.
func (m *MemoryStore) Update(_ context.Context, id string, fn func(*wizard.Session) error) (wizard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, ok := m.live(id, now)
	if !ok {
		return wizard.Session{}, nil
	}
	s := e.session
	if err := fn(&s); err != nil {
		return wizard.Session{}, err
	}
	s.ID = id
	m.items[id] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Len reports the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep(m.now())
	return len(m.items)
}

func (m *MemoryStore) live(id string, now time.Time) (memoryEntry, bool) {
	e, ok := m.items[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !now.Before(e.expiresAt) {
		delete(m.items, id)
		return memoryEntry{}, false
	}
	return e, true
}

func (m *MemoryStore) sweep(now time.Time) {
	for id, e := range m.items {
		if !now.Before(e.expiresAt) {
			delete(m.items, id)
		}
	}
}
