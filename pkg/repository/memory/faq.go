package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
)

type faqRepository struct {
	mu   sync.RWMutex
	faqs map[model.FAQID]*model.FAQ
}

func newFAQRepository() *faqRepository {
	return &faqRepository{
		faqs: make(map[model.FAQID]*model.FAQ),
	}
}

func copyFAQ(f *model.FAQ) *model.FAQ {
	copied := *f
	return &copied
}

func (r *faqRepository) Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyFAQ(faq)
	if created.ID == "" {
		created.ID = model.NewFAQID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.faqs[created.ID] = created
	return copyFAQ(created), nil
}

func (r *faqRepository) Get(ctx context.Context, id model.FAQID) (*model.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	faq, exists := r.faqs[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "FAQ not found", goerr.V("id", id))
	}

	return copyFAQ(faq), nil
}

func (r *faqRepository) List(ctx context.Context) ([]*model.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.FAQ, 0, len(r.faqs))
	for _, f := range r.faqs {
		result = append(result, copyFAQ(f))
	}

	// ID tie-break keeps the order deterministic when creation times collide
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *faqRepository) Delete(ctx context.Context, id model.FAQID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.faqs[id]; !exists {
		return goerr.Wrap(ErrNotFound, "FAQ not found", goerr.V("id", id))
	}

	delete(r.faqs, id)
	return nil
}
