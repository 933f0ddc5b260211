// Package session keeps per-session dashboard state for the lifetime of the process.
package session

import (
	"sync"

	"github.com/RichardoC/senior-care/internal/vitals"
	"github.com/google/uuid"
)

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*vitals.Readings
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*vitals.Readings)}
}

// Get returns the readings for id, creating a fresh session when id is empty or
// unknown. The returned id is the one the caller should keep using.
func (m *Manager) Get(id string) (string, *vitals.Readings) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if r, ok := m.sessions[id]; ok {
			return id, r
		}
		if _, err := uuid.Parse(id); err != nil {
			id = ""
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	r := &vitals.Readings{}
	m.sessions[id] = r
	return id, r
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
