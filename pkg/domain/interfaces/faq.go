package interfaces

import (
	"context"

	"github.com/startupsole/solechat/pkg/domain/model"
)

// FAQRepository defines the interface for FAQ data persistence
type FAQRepository interface {
	// Create creates a new FAQ entry
	Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error)

	// Get retrieves a FAQ entry by ID
	Get(ctx context.Context, id model.FAQID) (*model.FAQ, error)

	// List retrieves all FAQ entries
	List(ctx context.Context) ([]*model.FAQ, error)

	// Delete deletes a FAQ entry by ID
	Delete(ctx context.Context, id model.FAQID) error
}
