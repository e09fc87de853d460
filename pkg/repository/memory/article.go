package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
)

type articleRepository struct {
	mu       sync.RWMutex
	articles map[model.ArticleID]*model.Article
}

func newArticleRepository() *articleRepository {
	return &articleRepository{
		articles: make(map[model.ArticleID]*model.Article),
	}
}

// copyArticle creates a deep copy of an article
func copyArticle(a *model.Article) *model.Article {
	copied := *a
	if a.Embedding != nil {
		copied.Embedding = make([]float32, len(a.Embedding))
		copy(copied.Embedding, a.Embedding)
	}
	return &copied
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyArticle(article)
	if created.ID == "" {
		created.ID = model.NewArticleID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.articles[created.ID] = created
	return copyArticle(created), nil
}

func (r *articleRepository) Get(ctx context.Context, id model.ArticleID) (*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, exists := r.articles[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "article not found", goerr.V("id", id))
	}

	return copyArticle(article), nil
}

func (r *articleRepository) List(ctx context.Context) ([]*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Article, 0, len(r.articles))
	for _, a := range r.articles {
		result = append(result, copyArticle(a))
	}

	// ID tie-break keeps the order deterministic when publish times collide
	sort.Slice(result, func(i, j int) bool {
		if result[i].PublishedAt.Equal(result[j].PublishedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})

	return result, nil
}

func (r *articleRepository) UpdateEmbedding(ctx context.Context, id model.ArticleID, embedding []float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, exists := r.articles[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "article not found", goerr.V("id", id))
	}

	article.Embedding = make([]float32, len(embedding))
	copy(article.Embedding, embedding)
	article.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id model.ArticleID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.articles[id]; !exists {
		return goerr.Wrap(ErrNotFound, "article not found", goerr.V("id", id))
	}

	delete(r.articles, id)
	return nil
}
