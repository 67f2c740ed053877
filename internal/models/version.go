package models

import (
	"time"

	"github.com/google/uuid"
)

// PageVersion is an immutable snapshot of a page's structure. Versions are
// owned by their page and removed with it.
type PageVersion struct {
	ID        uuid.UUID  `json:"id"`
	PageID    uuid.UUID  `json:"page_id"`
	Name      string     `json:"name"`
	Content   []Section  `json:"content"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}
