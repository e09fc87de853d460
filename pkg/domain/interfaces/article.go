package interfaces

import (
	"context"

	"github.com/startupsole/solechat/pkg/domain/model"
)

// ArticleRepository defines the interface for blog article persistence
type ArticleRepository interface {
	// Create creates a new article
	Create(ctx context.Context, article *model.Article) (*model.Article, error)

	// Get retrieves an article by ID
	Get(ctx context.Context, id model.ArticleID) (*model.Article, error)

	// List retrieves all articles
	List(ctx context.Context) ([]*model.Article, error)

	// UpdateEmbedding writes the cached embedding vector onto an existing
	// article document without touching its other fields
	UpdateEmbedding(ctx context.Context, id model.ArticleID, embedding []float32) error

	// Delete deletes an article by ID
	Delete(ctx context.Context, id model.ArticleID) error
}
