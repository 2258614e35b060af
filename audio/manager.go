package audio

import (
	"fmt"
	"sync"
)

// Manager is the audio sub-manager: decoded clips keyed by canonical
// asset key. It satisfies the registry's Store contract.
type Manager struct {
	mu    sync.RWMutex
	clips map[string]*Clip
}

// NewManager creates an empty clip store.
func NewManager() *Manager {
	return &Manager{
		clips: make(map[string]*Clip),
	}
}

// Add stores a decoded clip under key. The payload must be a *Clip.
func (m *Manager) Add(key string, payload any) error {
	clip, ok := payload.(*Clip)
	if !ok {
		return fmt.Errorf("audio: payload for %q is %T, want *Clip", key, payload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clips[key] = clip
	return nil
}

// Remove drops the clip under key. With evict the sample buffer reference
// is released immediately. A missing key is a no-op.
func (m *Manager) Remove(key string, evict bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if evict {
		if clip, ok := m.clips[key]; ok {
			clip.Buffer = nil
		}
	}
	delete(m.clips, key)
}

// Get returns the clip stored under key.
func (m *Manager) Get(key string) (*Clip, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	clip, ok := m.clips[key]
	return clip, ok
}

// Len returns the number of stored clips.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clips)
}

// CleanUp empties the store.
func (m *Manager) CleanUp() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clips = make(map[string]*Clip)
}
