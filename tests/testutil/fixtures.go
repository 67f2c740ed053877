package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dkovac/pagecraft-api/internal/database"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/google/uuid"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// SampleStructure returns a small valid section tree: a hero section with a
// heading and a call-to-action button.
func SampleStructure() []models.Section {
	return []models.Section{
		{
			ID:    "fixture-hero",
			Title: "Hero",
			Type:  "hero",
			Components: []models.Component{
				{
					ID:              "fixture-heading",
					Type:            "text",
					ParentSectionID: "fixture-hero",
					Content: map[string]any{
						"text": "Welcome", "size": "xl", "alignment": "center",
					},
				},
				{
					ID:              "fixture-cta",
					Type:            "button",
					ParentSectionID: "fixture-hero",
					Content: map[string]any{
						"label": "Get a quote", "url": "/contact",
					},
				},
			},
		},
	}
}

// PageOption customizes a fixture page before insert
type PageOption func(*services.CreatePageInput)

func WithLanguage(language string) PageOption {
	return func(input *services.CreatePageInput) { input.Language = language }
}

func WithSlug(slug string) PageOption {
	return func(input *services.CreatePageInput) { input.Slug = slug }
}

func WithContent(content []models.Section) PageOption {
	return func(input *services.CreatePageInput) { input.Content = content }
}

// CreatePage creates a test page through the real PageService
func (f *Fixtures) CreatePage(t *testing.T, opts ...PageOption) *models.Page {
	t.Helper()
	f.counter++

	input := services.CreatePageInput{
		Title:    fmt.Sprintf("Test Page %d", f.counter),
		Content:  SampleStructure(),
		Language: "en",
	}
	for _, opt := range opts {
		opt(&input)
	}

	svc := services.NewPageService(f.db, schema.NewRegistry())
	page, err := svc.Create(context.Background(), input, uuid.New())
	if err != nil {
		t.Fatalf("failed to create fixture page: %v", err)
	}
	return page
}

// CreateTemplate creates a test template through the real TemplateService
func (f *Fixtures) CreateTemplate(t *testing.T) *models.PageTemplate {
	t.Helper()
	f.counter++

	svc := services.NewTemplateService(f.db, schema.NewRegistry())
	template, err := svc.Create(context.Background(), services.CreateTemplateInput{
		Name:      fmt.Sprintf("Test Template %d", f.counter),
		Category:  "marketing",
		Structure: SampleStructure(),
	})
	if err != nil {
		t.Fatalf("failed to create fixture template: %v", err)
	}
	return template
}

// CreateVersion snapshots a page's current content as a named version
func (f *Fixtures) CreateVersion(t *testing.T, pageID uuid.UUID, name string) *models.PageVersion {
	t.Helper()

	svc := services.NewVersionService(f.db)
	version, err := svc.Create(context.Background(), pageID, name, uuid.New())
	if err != nil {
		t.Fatalf("failed to create fixture version: %v", err)
	}
	return version
}
