package testutil

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/internal/sse"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPageService mocks the PageService
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) List(ctx context.Context, filter services.PageFilter) ([]models.Page, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Page), args.Error(1)
}

func (m *MockPageService) GetByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) GetBySlug(ctx context.Context, slug, language string) (*models.Page, error) {
	args := m.Called(ctx, slug, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) Create(ctx context.Context, input services.CreatePageInput, authorID uuid.UUID) (*models.Page, error) {
	args := m.Called(ctx, input, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) UpdateContent(ctx context.Context, id uuid.UUID, content []models.Section) (*models.Page, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) UpdateMeta(ctx context.Context, id uuid.UUID, input services.UpdatePageMetaInput) (*models.Page, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) SetStatus(ctx context.Context, id uuid.UUID, status models.PageStatus) (*models.Page, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) ReorderSection(ctx context.Context, id uuid.UUID, sectionID string, toIndex int) (*models.Page, error) {
	args := m.Called(ctx, id, sectionID, toIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) ReorderComponent(ctx context.Context, id uuid.UUID, sectionID, componentID string, toIndex int) (*models.Page, error) {
	args := m.Called(ctx, id, sectionID, componentID, toIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockPageService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTemplateService mocks the TemplateService
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context, filter services.TemplateFilter) ([]models.PageTemplate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PageTemplate), args.Error(1)
}

func (m *MockTemplateService) GetByID(ctx context.Context, id uuid.UUID) (*models.PageTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageTemplate), args.Error(1)
}

func (m *MockTemplateService) Create(ctx context.Context, input services.CreateTemplateInput) (*models.PageTemplate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageTemplate), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, id uuid.UUID, input services.UpdateTemplateInput) (*models.PageTemplate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageTemplate), args.Error(1)
}

func (m *MockTemplateService) Instantiate(ctx context.Context, id uuid.UUID) ([]models.Section, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockTemplateService) Archive(ctx context.Context, id uuid.UUID, archived bool) error {
	args := m.Called(ctx, id, archived)
	return args.Error(0)
}

func (m *MockTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVersionService mocks the VersionService
type MockVersionService struct {
	mock.Mock
}

func (m *MockVersionService) Create(ctx context.Context, pageID uuid.UUID, name string, createdBy uuid.UUID) (*models.PageVersion, error) {
	args := m.Called(ctx, pageID, name, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageVersion), args.Error(1)
}

func (m *MockVersionService) List(ctx context.Context, pageID uuid.UUID) ([]models.PageVersion, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PageVersion), args.Error(1)
}

func (m *MockVersionService) GetByID(ctx context.Context, versionID uuid.UUID) (*models.PageVersion, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageVersion), args.Error(1)
}

func (m *MockVersionService) Activate(ctx context.Context, pageID, versionID uuid.UUID) (*models.PageVersion, error) {
	args := m.Called(ctx, pageID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageVersion), args.Error(1)
}

func (m *MockVersionService) Delete(ctx context.Context, versionID uuid.UUID) error {
	args := m.Called(ctx, versionID)
	return args.Error(0)
}

// MockLibraryService mocks the LibraryService
type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) List(ctx context.Context, filter services.LibraryFilter) ([]models.LibraryComponent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LibraryComponent), args.Error(1)
}

func (m *MockLibraryService) GetByID(ctx context.Context, id uuid.UUID) (*models.LibraryComponent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LibraryComponent), args.Error(1)
}

func (m *MockLibraryService) Create(ctx context.Context, input services.CreateLibraryComponentInput) (*models.LibraryComponent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LibraryComponent), args.Error(1)
}

func (m *MockLibraryService) Archive(ctx context.Context, id uuid.UUID, archived bool) error {
	args := m.Called(ctx, id, archived)
	return args.Error(0)
}

func (m *MockLibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSSEHub mocks the sse.Hub
type MockSSEHub struct {
	mock.Mock
}

func (m *MockSSEHub) Register(client *sse.Client) {
	m.Called(client)
}

func (m *MockSSEHub) Unregister(client *sse.Client) {
	m.Called(client)
}

func (m *MockSSEHub) SubscribeToPage(clientID string, pageID uuid.UUID) {
	m.Called(clientID, pageID)
}

func (m *MockSSEHub) UnsubscribeFromPage(clientID string, pageID uuid.UUID) {
	m.Called(clientID, pageID)
}

func (m *MockSSEHub) BroadcastPageUpdate(pageID, updatedBy uuid.UUID) {
	m.Called(pageID, updatedBy)
}

func (m *MockSSEHub) BroadcastStatusChange(pageID uuid.UUID, status string, changedBy uuid.UUID) {
	m.Called(pageID, status, changedBy)
}

func (m *MockSSEHub) BroadcastVersionActivated(pageID, versionID, activatedBy uuid.UUID) {
	m.Called(pageID, versionID, activatedBy)
}
