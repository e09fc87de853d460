package interfaces

import (
	"context"

	"github.com/startupsole/solechat/pkg/domain/model"
)

// SessionRepository defines the interface for conversation session persistence
type SessionRepository interface {
	// Get retrieves a session by ID. Returns (nil, nil) when no session
	// record exists for the ID.
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)

	// Put creates or replaces a session record. The stored message list is
	// overwritten as a whole, not appended to.
	Put(ctx context.Context, session *model.Session) (*model.Session, error)

	// Delete removes a session record
	Delete(ctx context.Context, id model.SessionID) error
}
