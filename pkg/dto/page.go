package dto

import (
	"time"

	"github.com/dkovac/pagecraft-api/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatePageRequest struct {
	Title       string           `json:"title"`
	Slug        string           `json:"slug,omitempty"`
	Description string           `json:"description,omitempty"`
	Language    string           `json:"language,omitempty"`
	Content     []models.Section `json:"content,omitempty"`
	TemplateID  *uuid.UUID       `json:"template_id,omitempty"`
}

func (r CreatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.Length(0, 200)),
		validation.Field(&r.Language, validation.Length(2, 8)),
	)
}

type UpdatePageMetaRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	OGImage         *string `json:"og_image,omitempty"`
}

func (r UpdatePageMetaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.MetaTitle, validation.Length(0, 200)),
	)
}

type UpdatePageContentRequest struct {
	Content []models.Section `json:"content"`
}

func (r UpdatePageContentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.NotNil),
	)
}

type UpdatePageStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdatePageStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required,
			validation.In("draft", "published", "archived")),
	)
}

// ReorderPageRequest moves a section, or a component within a section when
// ComponentID is set. Position is the target index; out-of-range values clamp.
type ReorderPageRequest struct {
	SectionID   string `json:"section_id"`
	ComponentID string `json:"component_id,omitempty"`
	Position    int    `json:"position"`
}

func (r ReorderPageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SectionID, validation.Required),
		validation.Field(&r.Position, validation.Min(0)),
	)
}

type PageResponse struct {
	ID              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description"`
	Content         []models.Section  `json:"content"`
	MetaTitle       string            `json:"meta_title"`
	MetaDescription string            `json:"meta_description"`
	OGImage         string            `json:"og_image"`
	Status          models.PageStatus `json:"status"`
	TemplateID      *uuid.UUID        `json:"template_id,omitempty"`
	Language        string            `json:"language"`
	AuthorID        *uuid.UUID        `json:"author_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	PublishedAt     *time.Time        `json:"published_at,omitempty"`
}

func NewPageResponse(p *models.Page) PageResponse {
	return PageResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		OGImage:         p.OGImage,
		Status:          p.Status,
		TemplateID:      p.TemplateID,
		Language:        p.Language,
		AuthorID:        p.AuthorID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		PublishedAt:     p.PublishedAt,
	}
}
