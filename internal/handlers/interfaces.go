package handlers

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/internal/sse"
	"github.com/google/uuid"
)

// PageServiceInterface defines the methods used by handlers from PageService
type PageServiceInterface interface {
	List(ctx context.Context, filter services.PageFilter) ([]models.Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Page, error)
	GetBySlug(ctx context.Context, slug, language string) (*models.Page, error)
	Create(ctx context.Context, input services.CreatePageInput, authorID uuid.UUID) (*models.Page, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content []models.Section) (*models.Page, error)
	UpdateMeta(ctx context.Context, id uuid.UUID, input services.UpdatePageMetaInput) (*models.Page, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.PageStatus) (*models.Page, error)
	ReorderSection(ctx context.Context, id uuid.UUID, sectionID string, toIndex int) (*models.Page, error)
	ReorderComponent(ctx context.Context, id uuid.UUID, sectionID, componentID string, toIndex int) (*models.Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TemplateServiceInterface defines the methods used by handlers from TemplateService
type TemplateServiceInterface interface {
	List(ctx context.Context, filter services.TemplateFilter) ([]models.PageTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PageTemplate, error)
	Create(ctx context.Context, input services.CreateTemplateInput) (*models.PageTemplate, error)
	Update(ctx context.Context, id uuid.UUID, input services.UpdateTemplateInput) (*models.PageTemplate, error)
	Instantiate(ctx context.Context, id uuid.UUID) ([]models.Section, error)
	Archive(ctx context.Context, id uuid.UUID, archived bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VersionServiceInterface defines the methods used by handlers from VersionService
type VersionServiceInterface interface {
	Create(ctx context.Context, pageID uuid.UUID, name string, createdBy uuid.UUID) (*models.PageVersion, error)
	List(ctx context.Context, pageID uuid.UUID) ([]models.PageVersion, error)
	GetByID(ctx context.Context, versionID uuid.UUID) (*models.PageVersion, error)
	Activate(ctx context.Context, pageID, versionID uuid.UUID) (*models.PageVersion, error)
	Delete(ctx context.Context, versionID uuid.UUID) error
}

// LibraryServiceInterface defines the methods used by handlers from LibraryService
type LibraryServiceInterface interface {
	List(ctx context.Context, filter services.LibraryFilter) ([]models.LibraryComponent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.LibraryComponent, error)
	Create(ctx context.Context, input services.CreateLibraryComponentInput) (*models.LibraryComponent, error)
	Archive(ctx context.Context, id uuid.UUID, archived bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HubInterface defines the methods used by handlers from the Hub
type HubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
	SubscribeToPage(clientID string, pageID uuid.UUID)
	UnsubscribeFromPage(clientID string, pageID uuid.UUID)
	BroadcastPageUpdate(pageID, updatedBy uuid.UUID)
	BroadcastStatusChange(pageID uuid.UUID, status string, changedBy uuid.UUID)
	BroadcastVersionActivated(pageID, versionID, activatedBy uuid.UUID)
}
