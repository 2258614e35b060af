package sprite

import (
	"fmt"
	"sync"
)

// Manager is the image sub-manager: a store of decoded sheets keyed by
// canonical asset key. It satisfies the registry's Store contract.
type Manager struct {
	mu     sync.RWMutex
	sheets map[string]*Sheet
}

// NewManager creates an empty image store.
func NewManager() *Manager {
	return &Manager{
		sheets: make(map[string]*Sheet),
	}
}

// Add stores a decoded sheet under key. The payload must be a *Sheet.
func (m *Manager) Add(key string, payload any) error {
	sheet, ok := payload.(*Sheet)
	if !ok {
		return fmt.Errorf("sprite: payload for %q is %T, want *Sheet", key, payload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[key] = sheet
	return nil
}

// Remove drops the sheet under key. With evict the pixel data reference is
// released immediately; either way a missing key is a no-op, since
// pre-loaded assets are served by the registrar without ever being
// dispatched here.
func (m *Manager) Remove(key string, evict bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if evict {
		if sheet, ok := m.sheets[key]; ok {
			sheet.Img = nil
		}
	}
	delete(m.sheets, key)
}

// Get returns the sheet stored under key.
func (m *Manager) Get(key string) (*Sheet, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sheet, ok := m.sheets[key]
	return sheet, ok
}

// Len returns the number of stored sheets.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sheets)
}

// CleanUp empties the store.
func (m *Manager) CleanUp() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets = make(map[string]*Sheet)
}
