package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"bodyshop-chat/internal/booking"
)

type memoryEntry struct {
	session   booking.Session
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Sessions are lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns a MemoryStore. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (booking.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return booking.Session{}, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, id)
		return booking.Session{}, false, nil
	}
	return e.session, true, nil
}

func (m *MemoryStore) Set(_ context.Context, s booking.Session) error {
	if s.ID == "" {
		return errors.New("session: Set: id must not be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.ID] = memoryEntry{session: s, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// Len reports the number of stored entries, expired ones included until
// they are next read.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
