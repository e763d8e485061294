package session

import "sync"

// MemoryStore is an in-process Store implementation. It is useful in tests
// and anywhere persistence across invocations isn't wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
	present bool
}

// NewMemoryStore returns an in-process Store implementation.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Commit(session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	m.present = true
	return nil
}

func (m *MemoryStore) Current() (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session, m.present, nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = Session{}
	m.present = false
	return nil
}
