package embedding

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/startupsole/solechat/pkg/domain/model"
)

// ErrEmptyText is returned when there is nothing to embed. Callers treat
// it as "no semantic match possible" rather than a request failure.
var ErrEmptyText = goerr.New("text to embed is empty")

// Service generates embedding vectors for free text and articles
type Service interface {
	// Embed generates an embedding vector for the given text. It fails
	// with ErrEmptyText when the text is blank and wraps any upstream
	// inference error.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedArticle generates an embedding for an article using its
	// embedding text (content, falling back to excerpt, then title)
	EmbedArticle(ctx context.Context, article *model.Article) ([]float32, error)
}

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// New creates a new embedding service with the provided LLM client.
// A nil client yields a nil Service, which callers treat as "embedding
// disabled".
func New(llmClient gollem.LLMClient) Service {
	if llmClient == nil {
		return nil
	}

	return &client{llmClient: llmClient}
}

func (c *client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrEmptyText, "cannot embed blank text")
	}

	embeddings, err := c.llmClient.GenerateEmbedding(ctx, model.EmbeddingDimension, []string{text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate embedding")
	}

	if len(embeddings) == 0 {
		return nil, goerr.New("no embedding returned")
	}

	// Convert float64 to float32
	result := make([]float32, len(embeddings[0]))
	for i, v := range embeddings[0] {
		result[i] = float32(v)
	}

	return result, nil
}

func (c *client) EmbedArticle(ctx context.Context, article *model.Article) ([]float32, error) {
	vec, err := c.Embed(ctx, article.EmbeddingText())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to embed article", goerr.V("articleID", article.ID))
	}
	return vec, nil
}
