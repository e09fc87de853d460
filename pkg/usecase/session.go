package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/interfaces"
	"github.com/startupsole/solechat/pkg/domain/model"
)

// SessionManager loads and persists bounded conversation histories.
// Only the most recent window messages are ever read back, and the same
// cap is enforced at save time so the stored record cannot grow without
// bound. A session is read-modify-written within one request; two
// concurrent requests on the same session ID can lose one writer's
// update, which is an accepted limitation for a single-user widget
// session.
type SessionManager struct {
	repo   interfaces.Repository
	window int
}

// NewSessionManager creates a SessionManager with the given history window
func NewSessionManager(repo interfaces.Repository, window int) *SessionManager {
	if window <= 0 {
		window = 10
	}
	return &SessionManager{
		repo:   repo,
		window: window,
	}
}

// Window returns the configured history window
func (m *SessionManager) Window() int {
	return m.window
}

// Load retrieves the session, creating an empty record when none exists.
// The returned session carries at most the window most recent messages.
func (m *SessionManager) Load(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := m.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load session", goerr.V("sessionID", id))
	}

	if session == nil {
		created, err := m.repo.Session().Put(ctx, &model.Session{ID: id})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create session", goerr.V("sessionID", id))
		}
		return created, nil
	}

	session.Messages = session.Tail(m.window)
	return session, nil
}

// Save overwrites the stored message list with the session's messages,
// truncated to the window
func (m *SessionManager) Save(ctx context.Context, session *model.Session) (*model.Session, error) {
	session.Messages = session.Tail(m.window)

	saved, err := m.repo.Session().Put(ctx, session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save session", goerr.V("sessionID", session.ID))
	}
	return saved, nil
}

// AppendTurn returns a new message list with msg appended. The input
// slice is never mutated, so callers can keep aliases to it.
func AppendTurn(messages []model.Message, msg model.Message) []model.Message {
	out := make([]model.Message, 0, len(messages)+1)
	out = append(out, messages...)
	out = append(out, msg)
	return out
}
