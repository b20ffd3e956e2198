package session

import (
	"encoding/json"

	"github.com/inamate/roomplanner/internal/engine"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Connection
	TypeWelcome = "welcome"
	TypeError   = "error"

	// Client -> server
	TypeCommand  = "command"
	TypeSnapshot = "snapshot"
	TypeReset    = "reset"

	// Server -> client
	TypeResult = "result"
)

// WelcomePayload is sent once after a client attaches.
type WelcomePayload struct {
	SessionID string          `json:"sessionId"`
	ClientID  string          `json:"clientId"`
	LevelID   string          `json:"levelId"`
	Snapshot  engine.Snapshot `json:"snapshot"`
}

// ResultPayload answers a command with its outcome and the resulting state.
type ResultPayload struct {
	Result   engine.Result   `json:"result"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, seq int64, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: typ, Seq: seq, Payload: data}, nil
}
