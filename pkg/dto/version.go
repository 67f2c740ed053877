package dto

import (
	"time"

	"github.com/dkovac/pagecraft-api/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateVersionRequest struct {
	Name string `json:"name"`
}

func (r CreateVersionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

type VersionResponse struct {
	ID        uuid.UUID        `json:"id"`
	PageID    uuid.UUID        `json:"page_id"`
	Name      string           `json:"name"`
	Content   []models.Section `json:"content"`
	CreatedBy *uuid.UUID       `json:"created_by,omitempty"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewVersionResponse(v *models.PageVersion) VersionResponse {
	return VersionResponse{
		ID:        v.ID,
		PageID:    v.PageID,
		Name:      v.Name,
		Content:   v.Content,
		CreatedBy: v.CreatedBy,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}
