package interfaces

import (
	"context"

	"github.com/startupsole/solechat/pkg/domain/model"
)

// KeywordRepository defines the interface for popular keyword persistence
type KeywordRepository interface {
	// Create creates a new keyword entry
	Create(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error)

	// List retrieves all keyword entries in stable iteration order
	List(ctx context.Context) ([]*model.Keyword, error)

	// Delete deletes a keyword entry by ID
	Delete(ctx context.Context, id model.KeywordID) error
}
