package models

import (
	"time"

	"github.com/google/uuid"
)

// PageTemplate is a reusable structure skeleton. Structure is never rendered
// directly; it is deep-copied into a new page at instantiation time.
type PageTemplate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	Structure   []Section `json:"structure"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
