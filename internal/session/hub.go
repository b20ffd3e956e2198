package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inamate/roomplanner/internal/engine"
	"github.com/inamate/roomplanner/internal/layout"
	"github.com/inamate/roomplanner/internal/typeid"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrAttached = errors.New("session already has a client attached")
)

const minReapInterval = time.Second

// Hub owns every live session. Sessions that see no activity for the idle TTL
// and have no client attached are reaped by Run.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewHub(ttl time.Duration) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run reaps idle sessions until Stop is called.
func (h *Hub) Run() {
	defer close(h.done)

	interval := max(h.ttl/4, minReapInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			h.Reap(now)
		case <-h.stop:
			return
		}
	}
}

// Stop ends Run and disconnects every client.
func (h *Hub) Stop() {
	h.once.Do(func() {
		close(h.stop)
	})

	h.mu.Lock()
	for _, s := range h.sessions {
		h.detachLocked(s)
	}
	h.mu.Unlock()
}

// Done is closed when Run returns.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Create starts a session on the given level.
func (h *Hub) Create(levelID string) (*Session, error) {
	lvl, err := layout.LevelByID(levelID)
	if err != nil {
		return nil, err
	}

	e, err := engine.New(lvl)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	s := newSession(typeid.NewSessionID(), e, time.Now())

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	slog.Info("session created", "session", s.ID, "level", levelID)
	return s, nil
}

func (h *Hub) Get(id string) (*Session, error) {
	if typeid.Validate(id, typeid.PrefixSession) != nil {
		return nil, ErrNotFound
	}

	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete ends a session and disconnects its client, if any.
func (h *Hub) Delete(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	if !ok {
		h.mu.Unlock()
		return ErrNotFound
	}
	delete(h.sessions, id)
	h.detachLocked(s)
	h.mu.Unlock()

	slog.Info("session deleted", "session", id)
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Reap removes sessions idle since before now-ttl and returns their ids.
// Sessions with an attached client are kept alive by the connection.
func (h *Hub) Reap(now time.Time) []string {
	cutoff := now.Add(-h.ttl)

	h.mu.Lock()
	var reaped []string
	for id, s := range h.sessions {
		if s.client != nil || !s.idleSince().Before(cutoff) {
			continue
		}
		delete(h.sessions, id)
		reaped = append(reaped, id)
	}
	h.mu.Unlock()

	for _, id := range reaped {
		slog.Info("session reaped", "session", id, "ttl", h.ttl)
	}
	return reaped
}

// CanAttach reports whether a client could attach to session id right now.
// Attach still decides; this lets callers refuse before upgrading.
func (h *Hub) CanAttach(id string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if s.client != nil {
		return ErrAttached
	}
	return nil
}

// Attach makes c the session's only client and greets it.
func (h *Hub) Attach(c *Client) error {
	h.mu.Lock()
	s, ok := h.sessions[c.SessionID]
	if !ok {
		h.mu.Unlock()
		return ErrNotFound
	}
	if s.client != nil {
		h.mu.Unlock()
		return ErrAttached
	}
	s.client = c
	h.mu.Unlock()

	welcome, err := newMessage(TypeWelcome, 0, WelcomePayload{
		SessionID: s.ID,
		ClientID:  c.ClientID,
		LevelID:   s.LevelID,
		Snapshot:  s.Snapshot(),
	})
	if err == nil {
		c.Send(welcome)
	}

	slog.Info("client attached", "session", s.ID, "client", c.ClientID)
	return nil
}

// Detach releases c from its session. It is safe to call more than once.
func (h *Hub) Detach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[c.SessionID]
	if !ok || s.client != c {
		return
	}
	h.detachLocked(s)
	slog.Info("client detached", "session", s.ID, "client", c.ClientID)
}

// detachLocked closes the attached client's send channel; whoever clears
// s.client owns that close.
func (h *Hub) detachLocked(s *Session) {
	if s.client == nil {
		return
	}
	close(s.client.send)
	s.client = nil
}

func (h *Hub) handleMessage(c *Client, msg *Message) {
	s, err := h.Get(c.SessionID)
	if err != nil {
		c.sendError(msg.Seq, err.Error())
		return
	}

	switch msg.Type {
	case TypeCommand:
		var cmd engine.Command
		if err := json.Unmarshal(msg.Payload, &cmd); err != nil {
			slog.Warn("invalid command payload", "error", err, "session", s.ID)
			c.sendError(msg.Seq, "invalid command payload")
			return
		}

		result, snap := s.Apply(cmd)
		if result.Outcome == engine.OutcomeRejected {
			slog.Debug("command rejected", "session", s.ID, "type", cmd.Type, "object", result.ObjectID, "reason", result.Reason)
		}
		c.sendPayload(TypeResult, msg.Seq, ResultPayload{Result: result, Snapshot: snap})

	case TypeSnapshot:
		c.sendPayload(TypeSnapshot, msg.Seq, s.Snapshot())

	case TypeReset:
		c.sendPayload(TypeSnapshot, msg.Seq, s.Reset())

	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", s.ID)
		c.sendError(msg.Seq, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}
