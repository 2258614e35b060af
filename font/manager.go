package font

import (
	"fmt"
	"sync"
)

// Manager is the font sub-manager: decoded faces keyed by canonical asset
// key. It satisfies the registry's Store contract.
type Manager struct {
	mu    sync.RWMutex
	faces map[string]*Face
}

// NewManager creates an empty face store.
func NewManager() *Manager {
	return &Manager{
		faces: make(map[string]*Face),
	}
}

// Add stores a decoded face under key. The payload must be a *Face.
func (m *Manager) Add(key string, payload any) error {
	face, ok := payload.(*Face)
	if !ok {
		return fmt.Errorf("font: payload for %q is %T, want *Face", key, payload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces[key] = face
	return nil
}

// Remove drops the face under key. With evict the sheet reference is
// released immediately. A missing key is a no-op.
func (m *Manager) Remove(key string, evict bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if evict {
		if face, ok := m.faces[key]; ok {
			face.Sheet = nil
			face.glyphs = nil
		}
	}
	delete(m.faces, key)
}

// Get returns the face stored under key.
func (m *Manager) Get(key string) (*Face, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	face, ok := m.faces[key]
	return face, ok
}

// Len returns the number of stored faces.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.faces)
}

// CleanUp empties the store.
func (m *Manager) CleanUp() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = make(map[string]*Face)
}
