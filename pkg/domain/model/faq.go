package model

import (
	"time"

	"github.com/google/uuid"
)

// FAQID is a UUID-based identifier for FAQ entries.
// The question text is the natural key in the imported data, but questions
// get edited and occasionally repeated, so a generated ID is used instead.
type FAQID string

// NewFAQID generates a new UUID v4 FAQID
func NewFAQID() FAQID {
	return FAQID(uuid.New().String())
}

// FAQ represents a frequently-asked-question entry. FAQ entries are
// reference data created by an import process and read-only to the
// matching pipeline.
type FAQ struct {
	ID        FAQID
	Question  string
	Answer    string
	Category  string
	Priority  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
