package catalog

import (
	"sync"

	"go.uber.org/zap"
)

// Manager hands out one catalog Session per browser session id, creating
// them on first use.
//
// TODO: expire sessions idle for longer than the cart TTL so the map does
// not grow unbounded.
type Manager struct {
	mu       sync.Mutex
	source   ProductSource
	logger   *zap.Logger
	pageSize int
	sessions map[string]*Session
}

// NewManager creates a session registry with a fixed page size
func NewManager(source ProductSource, pageSize int, logger *zap.Logger) *Manager {
	return &Manager{
		source:   source,
		logger:   logger,
		pageSize: pageSize,
		sessions: make(map[string]*Session),
	}
}

// Session returns the catalog session for the given id
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := NewSession(m.source, m.pageSize, m.logger)
	m.sessions[id] = s
	return s
}
