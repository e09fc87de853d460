package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
	"github.com/startupsole/solechat/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// messageDoc is one conversation turn inside a session document
type messageDoc struct {
	Role    string `firestore:"Role"`
	Content string `firestore:"Content"`
}

// sessionDoc is the Firestore document representation of model.Session.
// The whole message list is replaced on every Put; there is no
// server-side append.
type sessionDoc struct {
	ID        model.SessionID `firestore:"ID"`
	Messages  []messageDoc    `firestore:"Messages"`
	CreatedAt time.Time       `firestore:"CreatedAt"`
	UpdatedAt time.Time       `firestore:"UpdatedAt"`
}

func toSessionDoc(s *model.Session) *sessionDoc {
	doc := &sessionDoc{
		ID:        s.ID,
		Messages:  make([]messageDoc, len(s.Messages)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	for i, m := range s.Messages {
		doc.Messages[i] = messageDoc{Role: string(m.Role), Content: m.Content}
	}
	return doc
}

func fromSessionDoc(d *sessionDoc) *model.Session {
	s := &model.Session{
		ID:        d.ID,
		Messages:  make([]model.Message, len(d.Messages)),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for i, m := range d.Messages {
		s.Messages[i] = model.Message{Role: types.Role(m.Role), Content: m.Content}
	}
	return s
}

type sessionRepository struct {
	client *firestore.Client
}

func newSessionRepository(client *firestore.Client) *sessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("chat_sessions")
}

func (r *sessionRepository) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	doc, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get session", goerr.V("id", id))
	}

	var d sessionDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal session", goerr.V("id", id))
	}

	return fromSessionDoc(&d), nil
}

func (r *sessionRepository) Put(ctx context.Context, session *model.Session) (*model.Session, error) {
	if session.ID == "" {
		return nil, goerr.New("session ID is required")
	}

	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	docRef := r.collection().Doc(string(session.ID))
	if _, err := docRef.Set(ctx, toSessionDoc(session)); err != nil {
		return nil, goerr.Wrap(err, "failed to put session", goerr.V("id", session.ID))
	}

	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id model.SessionID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get session", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete session", goerr.V("id", id))
	}

	return nil
}
