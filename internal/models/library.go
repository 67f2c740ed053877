package models

import (
	"time"

	"github.com/google/uuid"
)

// LibraryComponent is a reusable component fragment. System entries are
// built-in and can be neither archived nor deleted.
type LibraryComponent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Component  Component `json:"component"`
	IsSystem   bool      `json:"is_system"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
