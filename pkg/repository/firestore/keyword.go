package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// keywordDoc is the Firestore document representation of model.Keyword
type keywordDoc struct {
	ID        model.KeywordID `firestore:"ID"`
	Keyword   string          `firestore:"Keyword"`
	Link      string          `firestore:"Link"`
	CreatedAt time.Time       `firestore:"CreatedAt"`
}

func docToKeyword(doc *firestore.DocumentSnapshot) (*model.Keyword, error) {
	var d keywordDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.Keyword{
		ID:        d.ID,
		Keyword:   d.Keyword,
		Link:      d.Link,
		CreatedAt: d.CreatedAt,
	}, nil
}

type keywordRepository struct {
	client *firestore.Client
}

func newKeywordRepository(client *firestore.Client) *keywordRepository {
	return &keywordRepository{client: client}
}

func (r *keywordRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("popular_keywords")
}

func (r *keywordRepository) Create(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error) {
	if keyword.ID == "" {
		keyword.ID = model.NewKeywordID()
	}
	keyword.CreatedAt = time.Now().UTC()

	docRef := r.collection().Doc(string(keyword.ID))
	if _, err := docRef.Set(ctx, &keywordDoc{
		ID:        keyword.ID,
		Keyword:   keyword.Keyword,
		Link:      keyword.Link,
		CreatedAt: keyword.CreatedAt,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to create keyword")
	}

	return keyword, nil
}

// List returns keywords ordered by creation time so the first-match scan
// sees a stable iteration order across requests.
func (r *keywordRepository) List(ctx context.Context) ([]*model.Keyword, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	keywords := make([]*model.Keyword, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate keywords")
		}

		k, err := docToKeyword(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal keyword")
		}

		keywords = append(keywords, k)
	}

	return keywords, nil
}

func (r *keywordRepository) Delete(ctx context.Context, id model.KeywordID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get keyword", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete keyword", goerr.V("id", id))
	}

	return nil
}
