package debate

import (
	"sort"
	"sync"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// MemoryStore is the in-process session registry. Sessions live for the
// process lifetime; no eviction policy is defined, so long-running hosts
// accumulate terminal sessions until restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*core.Session
}

// NewMemoryStore creates an empty registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[core.SessionID]*core.Session),
	}
}

// Put registers or replaces a session.
func (s *MemoryStore) Put(session *core.Session) error {
	if session == nil || session.ID == "" {
		return core.ErrValidation("EMPTY_SESSION", "session must have an id")
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return nil
}

// Get returns the session for an id.
func (s *MemoryStore) Get(id core.SessionID) (*core.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, core.ErrSessionNotFound(id)
	}
	return session, nil
}

// List returns all known sessions ordered by creation time.
func (s *MemoryStore) List() []*core.Session {
	s.mu.RLock()
	out := make([]*core.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

var _ core.SessionStore = (*MemoryStore)(nil)
