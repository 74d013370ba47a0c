package cart

import "sync"

// Manager keys carts by session id. Get never fails: an unknown id gets a
// fresh empty cart, so a stale cookie degrades to an empty cart instead of
// an error.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}

func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

// DropIfEmpty evicts the session's cart when it holds nothing, so abandoned
// sessions do not accumulate. A later Get mints a fresh cart either way.
func (m *Manager) DropIfEmpty(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok && c.Len() == 0 {
		delete(m.carts, sessionID)
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts)
}
