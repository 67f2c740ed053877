package dto

import (
	"time"

	"github.com/dkovac/pagecraft-api/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateLibraryComponentRequest struct {
	Name      string           `json:"name"`
	Category  string           `json:"category,omitempty"`
	Component models.Component `json:"component"`
}

func (r CreateLibraryComponentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

type LibraryComponentResponse struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Component  models.Component `json:"component"`
	IsSystem   bool             `json:"is_system"`
	IsArchived bool             `json:"is_archived"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func NewLibraryComponentResponse(c *models.LibraryComponent) LibraryComponentResponse {
	return LibraryComponentResponse{
		ID:         c.ID,
		Name:       c.Name,
		Category:   c.Category,
		Component:  c.Component,
		IsSystem:   c.IsSystem,
		IsArchived: c.IsArchived,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
