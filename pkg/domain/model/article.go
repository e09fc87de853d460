package model

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddingDimension is the dimension of the embedding vector.
// OpenAI text-embedding-3-small uses 1536 dimensions.
const EmbeddingDimension = 1536

// ArticleID is a UUID-based identifier for blog articles
type ArticleID string

// NewArticleID generates a new UUID v4 ArticleID
func NewArticleID() ArticleID {
	return ArticleID(uuid.New().String())
}

// Article represents a blog article used as grounding material for answers.
//
// Embedding is lazily computed: it stays empty until the first semantic
// match touches the article, then it is computed once from the embedding
// text (Content, falling back to Excerpt, then Title) and written back.
// It is not recomputed when the article is edited afterwards, so a cached
// vector may go stale relative to the current content.
type Article struct {
	ID          ArticleID
	Title       string
	Content     string
	Excerpt     string
	Link        string
	PublishedAt time.Time
	Embedding   []float32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmbeddingText returns the text the article's embedding is derived from:
// Content when present, otherwise Excerpt, otherwise Title.
func (a *Article) EmbeddingText() string {
	if a.Content != "" {
		return a.Content
	}
	if a.Excerpt != "" {
		return a.Excerpt
	}
	return a.Title
}
