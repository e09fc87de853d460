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

// faqDoc is the Firestore document representation of model.FAQ
type faqDoc struct {
	ID        model.FAQID `firestore:"ID"`
	Question  string      `firestore:"Question"`
	Answer    string      `firestore:"Answer"`
	Category  string      `firestore:"Category"`
	Priority  int         `firestore:"Priority"`
	CreatedAt time.Time   `firestore:"CreatedAt"`
	UpdatedAt time.Time   `firestore:"UpdatedAt"`
}

func toFAQDoc(f *model.FAQ) *faqDoc {
	return &faqDoc{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		Priority:  f.Priority,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func fromFAQDoc(d *faqDoc) *model.FAQ {
	return &model.FAQ{
		ID:        d.ID,
		Question:  d.Question,
		Answer:    d.Answer,
		Category:  d.Category,
		Priority:  d.Priority,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func docToFAQ(doc *firestore.DocumentSnapshot) (*model.FAQ, error) {
	var d faqDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromFAQDoc(&d), nil
}

type faqRepository struct {
	client *firestore.Client
}

func newFAQRepository(client *firestore.Client) *faqRepository {
	return &faqRepository{client: client}
}

func (r *faqRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("faqs")
}

func (r *faqRepository) Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	now := time.Now().UTC()
	if faq.ID == "" {
		faq.ID = model.NewFAQID()
	}
	faq.CreatedAt = now
	faq.UpdatedAt = now

	docRef := r.collection().Doc(string(faq.ID))
	if _, err := docRef.Set(ctx, toFAQDoc(faq)); err != nil {
		return nil, goerr.Wrap(err, "failed to create FAQ")
	}

	return faq, nil
}

func (r *faqRepository) Get(ctx context.Context, id model.FAQID) (*model.FAQ, error) {
	doc, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "FAQ not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get FAQ", goerr.V("id", id))
	}

	f, err := docToFAQ(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal FAQ", goerr.V("id", id))
	}

	return f, nil
}

func (r *faqRepository) List(ctx context.Context) ([]*model.FAQ, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	faqs := make([]*model.FAQ, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate FAQs")
		}

		f, err := docToFAQ(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal FAQ")
		}

		faqs = append(faqs, f)
	}

	return faqs, nil
}

func (r *faqRepository) Delete(ctx context.Context, id model.FAQID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "FAQ not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get FAQ", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete FAQ", goerr.V("id", id))
	}

	return nil
}
