package dto

import (
	"time"

	"github.com/dkovac/pagecraft-api/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name        string           `json:"name"`
	Slug        string           `json:"slug,omitempty"`
	Description string           `json:"description,omitempty"`
	Thumbnail   string           `json:"thumbnail,omitempty"`
	Category    string           `json:"category,omitempty"`
	Structure   []models.Section `json:"structure,omitempty"`
}

func (r CreateTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.Length(0, 200)),
	)
}

type UpdateTemplateRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Thumbnail   *string          `json:"thumbnail,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Structure   []models.Section `json:"structure,omitempty"`
}

func (r UpdateTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

// ArchiveRequest toggles a soft-delete flag. An empty body means archive.
type ArchiveRequest struct {
	Archived bool `json:"archived"`
}

// InstantiateTemplateRequest creates a page seeded from a template's structure.
type InstantiateTemplateRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

func (r InstantiateTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Language, validation.Length(2, 8)),
	)
}

type TemplateResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail"`
	Category    string           `json:"category"`
	Structure   []models.Section `json:"structure"`
	IsArchived  bool             `json:"is_archived"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func NewTemplateResponse(t *models.PageTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Thumbnail:   t.Thumbnail,
		Category:    t.Category,
		Structure:   t.Structure,
		IsArchived:  t.IsArchived,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
