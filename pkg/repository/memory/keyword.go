package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
)

type keywordRepository struct {
	mu       sync.RWMutex
	keywords map[model.KeywordID]*model.Keyword
}

func newKeywordRepository() *keywordRepository {
	return &keywordRepository{
		keywords: make(map[model.KeywordID]*model.Keyword),
	}
}

func copyKeyword(k *model.Keyword) *model.Keyword {
	copied := *k
	return &copied
}

func (r *keywordRepository) Create(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyKeyword(keyword)
	if created.ID == "" {
		created.ID = model.NewKeywordID()
	}
	created.CreatedAt = time.Now().UTC()

	r.keywords[created.ID] = created
	return copyKeyword(created), nil
}

func (r *keywordRepository) List(ctx context.Context) ([]*model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Keyword, 0, len(r.keywords))
	for _, k := range r.keywords {
		result = append(result, copyKeyword(k))
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

func (r *keywordRepository) Delete(ctx context.Context, id model.KeywordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keywords[id]; !exists {
		return goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", id))
	}

	delete(r.keywords, id)
	return nil
}
