package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/pkg/dto"
	"github.com/dkovac/pagecraft-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTemplateTest(t *testing.T) (*testutil.MockTemplateService, *testutil.MockPageService, *TemplateHandler, *services.JWTService) {
	t.Helper()
	mockTemplateService := new(testutil.MockTemplateService)
	mockPageService := new(testutil.MockPageService)
	handler := NewTemplateHandler(mockTemplateService, mockPageService)
	jwtSvc := services.NewJWTService("test-secret-key", 15*time.Minute)
	return mockTemplateService, mockPageService, handler, jwtSvc
}

func TestTemplateHandler_Create_Success(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	template := &models.PageTemplate{
		ID:        uuid.New(),
		Name:      "Landing Page",
		Slug:      "landing-page",
		Category:  "marketing",
		Structure: testutil.SampleStructure(),
	}

	mockTemplateService.On("Create", mock.Anything, mock.Anything).Return(template, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/page-templates", handler.Create)

	body, _ := json.Marshal(dto.CreateTemplateRequest{
		Name:      "Landing Page",
		Category:  "marketing",
		Structure: testutil.SampleStructure(),
	})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/page-templates", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "landing-page", response.Slug)
	assert.Len(t, response.Structure, 1)

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_Create_MissingName(t *testing.T) {
	_, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/page-templates", handler.Create)

	body, _ := json.Marshal(dto.CreateTemplateRequest{Name: ""})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/page-templates", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")
}

func TestTemplateHandler_Instantiate_CreatesPage(t *testing.T) {
	mockTemplateService, mockPageService, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()
	content := testutil.SampleStructure()

	page := &models.Page{
		ID:         uuid.New(),
		Title:      "Spring Campaign",
		Slug:       "spring-campaign",
		Content:    content,
		Status:     models.PageStatusDraft,
		TemplateID: &templateID,
		Language:   "en",
	}

	mockTemplateService.On("Instantiate", mock.Anything, templateID).Return(content, nil)
	mockPageService.On("Create", mock.Anything, mock.MatchedBy(func(input services.CreatePageInput) bool {
		return input.Title == "Spring Campaign" &&
			input.TemplateID != nil && *input.TemplateID == templateID &&
			len(input.Content) == len(content)
	}), userID).Return(page, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/page-templates/:id/instantiate", handler.Instantiate)

	body, _ := json.Marshal(dto.InstantiateTemplateRequest{Title: "Spring Campaign"})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/page-templates/"+templateID.String()+"/instantiate", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.PageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, page.ID, response.ID)
	require.NotNil(t, response.TemplateID)
	assert.Equal(t, templateID, *response.TemplateID)

	mockTemplateService.AssertExpectations(t)
	mockPageService.AssertExpectations(t)
}

func TestTemplateHandler_Instantiate_TemplateNotFound(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()

	mockTemplateService.On("Instantiate", mock.Anything, templateID).Return(nil, services.ErrNotFound)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/page-templates/:id/instantiate", handler.Instantiate)

	body, _ := json.Marshal(dto.InstantiateTemplateRequest{Title: "Spring Campaign"})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/page-templates/"+templateID.String()+"/instantiate", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "template not found")

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_Archive_DefaultsToArchived(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()

	mockTemplateService.On("Archive", mock.Anything, templateID, true).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/page-templates/:id/archive", handler.Archive)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/page-templates/"+templateID.String()+"/archive", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_Archive_Unarchive(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()

	mockTemplateService.On("Archive", mock.Anything, templateID, false).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/page-templates/:id/archive", handler.Archive)

	body, _ := json.Marshal(dto.ArchiveRequest{Archived: false})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/page-templates/"+templateID.String()+"/archive", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_Delete_Success(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()

	mockTemplateService.On("Delete", mock.Anything, templateID).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Delete("/page-templates/:id", handler.Delete)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodDelete, "/page-templates/"+templateID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "template deleted")

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_List_Success(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templates := []models.PageTemplate{
		{ID: uuid.New(), Name: "Contact", Slug: "contact", Category: "forms"},
		{ID: uuid.New(), Name: "Landing", Slug: "landing", Category: "marketing"},
	}

	mockTemplateService.On("List", mock.Anything, services.TemplateFilter{Category: "forms"}).
		Return(templates[:1], nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/page-templates", handler.List)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodGet, "/page-templates?category=forms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "Contact", response[0].Name)

	mockTemplateService.AssertExpectations(t)
}
