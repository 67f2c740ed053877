package models

import (
	"time"

	"github.com/google/uuid"
)

type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// ValidPageStatus reports whether s is one of the known page statuses.
func ValidPageStatus(s PageStatus) bool {
	switch s {
	case PageStatusDraft, PageStatusPublished, PageStatusArchived:
		return true
	}
	return false
}

// Component is a typed leaf node of a page's structure tree. Content holds
// the fields selected by Type; the schema registry decides which keys are
// required and which get defaults.
type Component struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	ParentSectionID string         `json:"parent_section_id,omitempty"`
	Content         map[string]any `json:"content"`
}

// SectionSettings are layout knobs; all fields are optional.
type SectionSettings struct {
	Background string `json:"background,omitempty"`
	Padding    string `json:"padding,omitempty"`
	MaxWidth   string `json:"max_width,omitempty"`
	FullWidth  bool   `json:"full_width,omitempty"`
	CSSClasses string `json:"css_classes,omitempty"`
}

// Section is an ordered container of components. Array order is render order.
type Section struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Type       string          `json:"type,omitempty"`
	Settings   SectionSettings `json:"settings"`
	Components []Component     `json:"components"`
}

type Page struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	Content         []Section  `json:"content"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	OGImage         string     `json:"og_image"`
	Status          PageStatus `json:"status"`
	TemplateID      *uuid.UUID `json:"template_id,omitempty"`
	Language        string     `json:"language"`
	AuthorID        *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}
