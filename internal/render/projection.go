// Package render turns a stored page into the public-facing read model.
// The projection is pure: it never touches storage and never fails on
// content that was valid under an older registry.
package render

import (
	"errors"

	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/schema"
)

var ErrPageNotPublished = errors.New("page is not published")

// Model is the consumer-facing shape of a published page. Sections and
// components appear in stored order with registry defaults filled in, so
// renderers never need to null-check optional fields.
type Model struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description,omitempty"`
	Language        string         `json:"language"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	OGImage         string         `json:"og_image,omitempty"`
	Sections        []SectionModel `json:"sections"`
}

type SectionModel struct {
	ID         string                 `json:"id"`
	Title      string                 `json:"title"`
	Type       string                 `json:"type,omitempty"`
	Settings   models.SectionSettings `json:"settings"`
	Components []ComponentModel       `json:"components"`
}

// ComponentModel is one resolved component. Unsupported marks types absent
// from the registry; the UI renders those as a visible diagnostic instead of
// a silent gap.
type ComponentModel struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Content     map[string]any `json:"content"`
	Unsupported bool           `json:"unsupported,omitempty"`
}

// Project walks the page's structure tree and produces the render model.
// Draft and archived pages are filtered out entirely (ErrPageNotPublished);
// the authenticated admin path fetches those through the page store instead.
func Project(page *models.Page, registry *schema.Registry) (*Model, error) {
	if page.Status != models.PageStatusPublished {
		return nil, ErrPageNotPublished
	}

	sections := make([]SectionModel, len(page.Content))
	for si, section := range page.Content {
		components := make([]ComponentModel, len(section.Components))
		for ci, component := range section.Components {
			components[ci] = projectComponent(component, registry)
		}
		sections[si] = SectionModel{
			ID:         section.ID,
			Title:      section.Title,
			Type:       section.Type,
			Settings:   section.Settings,
			Components: components,
		}
	}

	return &Model{
		ID:              page.ID.String(),
		Title:           page.Title,
		Slug:            page.Slug,
		Description:     page.Description,
		Language:        page.Language,
		MetaTitle:       page.MetaTitle,
		MetaDescription: page.MetaDescription,
		OGImage:         page.OGImage,
		Sections:        sections,
	}, nil
}

func projectComponent(component models.Component, registry *schema.Registry) ComponentModel {
	resolved, err := registry.ApplyDefaults(component)
	if err != nil {
		// Unknown type: keep the node in position as a placeholder rather
		// than dropping it, so stored content survives registry drift.
		return ComponentModel{
			ID:          component.ID,
			Type:        component.Type,
			Content:     map[string]any{},
			Unsupported: true,
		}
	}

	return ComponentModel{
		ID:      resolved.ID,
		Type:    resolved.Type,
		Content: resolved.Content,
	}
}
