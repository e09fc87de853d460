package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/startupsole/solechat/pkg/domain/types"
)

// SessionID is an opaque token identifying a widget conversation.
// It is generated server-side when the client does not supply one and
// echoed back so the client can carry it into the next request.
type SessionID string

// NewSessionID generates a new UUID v7 SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.Must(uuid.NewV7()).String())
}

// Message is a single conversation turn
type Message struct {
	Role    types.Role
	Content string
}

// Session holds the conversation history for one widget session.
// Each chat request appends exactly one user turn and, when a reply was
// produced, exactly one assistant turn.
type Session struct {
	ID        SessionID
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tail returns at most the last n messages without mutating the session
func (s *Session) Tail(n int) []Message {
	if n <= 0 || len(s.Messages) == 0 {
		return nil
	}
	if len(s.Messages) <= n {
		out := make([]Message, len(s.Messages))
		copy(out, s.Messages)
		return out
	}
	out := make([]Message, n)
	copy(out, s.Messages[len(s.Messages)-n:])
	return out
}
