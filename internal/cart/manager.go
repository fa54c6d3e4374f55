package cart

import "sync"

// Manager drži korpe po ID-u sesije. Korpa nastaje pri prvom pristupu i
// živi dok se sesija ne odbaci — nema trajnog skladišta.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Get vraća korpu za sesiju, praveći novu ako ne postoji.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.RLock()
	store, ok := m.stores[sessionID]
	m.mu.RUnlock()
	if ok {
		return store
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok := m.stores[sessionID]; ok {
		return store
	}
	store = NewStore()
	m.stores[sessionID] = store
	return store
}

// Drop odbacuje korpu sesije.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
