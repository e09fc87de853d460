package model

import (
	"time"

	"github.com/google/uuid"
)

// KeywordID is a UUID-based identifier for popular keyword entries
type KeywordID string

// NewKeywordID generates a new UUID v4 KeywordID
func NewKeywordID() KeywordID {
	return KeywordID(uuid.New().String())
}

// Keyword represents a popular keyword mapped to a reference link.
// Entries form a static lookup table keyed by the keyword text.
type Keyword struct {
	ID        KeywordID
	Keyword   string
	Link      string
	CreatedAt time.Time
}
