package session

import (
	"sync"
	"time"

	"github.com/inamate/roomplanner/internal/engine"
)

// Session is one user's editing session. The engine is not safe for concurrent
// use, so every access goes through mu.
type Session struct {
	ID        string
	LevelID   string
	CreatedAt time.Time

	mu       sync.Mutex
	engine   *engine.Engine
	lastSeen time.Time
	client   *Client // guarded by Hub.mu
}

func newSession(id string, e *engine.Engine, now time.Time) *Session {
	return &Session{
		ID:        id,
		LevelID:   e.LevelID(),
		CreatedAt: now,
		engine:    e,
		lastSeen:  now,
	}
}

// Apply runs one command and returns its result with the state after it.
func (s *Session) Apply(cmd engine.Command) (engine.Result, engine.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	r := s.engine.Apply(cmd)
	return r, s.engine.Snapshot()
}

// ApplyAll runs a batch of commands under one lock. A rejected command does
// not stop the batch.
func (s *Session) ApplyAll(cmds []engine.Command) ([]engine.Result, engine.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	results := make([]engine.Result, 0, len(cmds))
	for _, cmd := range cmds {
		results = append(results, s.engine.Apply(cmd))
	}
	return results, s.engine.Snapshot()
}

func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	return s.engine.Snapshot()
}

// Render returns the current draw commands as JSON.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	return s.engine.Render()
}

// Reset restores the level's initial layout.
func (s *Session) Reset() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	s.engine.Reset()
	return s.engine.Snapshot()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
