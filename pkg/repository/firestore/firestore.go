package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/interfaces"
)

// Firestore implements interfaces.Repository on Cloud Firestore.
// Collection names follow the imported data: faqs, blog_articles,
// popular_keywords, chat_sessions.
type Firestore struct {
	client  *firestore.Client
	faq     *faqRepository
	article *articleRepository
	keyword *keywordRepository
	session *sessionRepository
}

var _ interfaces.Repository = &Firestore{}

// New creates a Firestore-backed repository. An empty databaseID selects
// the project's default database.
func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Firestore{
		client:  client,
		faq:     newFAQRepository(client),
		article: newArticleRepository(client),
		keyword: newKeywordRepository(client),
		session: newSessionRepository(client),
	}, nil
}

func (f *Firestore) FAQ() interfaces.FAQRepository {
	return f.faq
}

func (f *Firestore) Article() interfaces.ArticleRepository {
	return f.article
}

func (f *Firestore) Keyword() interfaces.KeywordRepository {
	return f.keyword
}

func (f *Firestore) Session() interfaces.SessionRepository {
	return f.session
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
