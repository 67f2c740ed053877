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

func setupVersionTest(t *testing.T) (*testutil.MockVersionService, *testutil.MockSSEHub, *VersionHandler, *services.JWTService) {
	t.Helper()
	mockVersionService := new(testutil.MockVersionService)
	mockHub := new(testutil.MockSSEHub)
	handler := NewVersionHandler(mockVersionService, mockHub)
	jwtSvc := services.NewJWTService("test-secret-key", 15*time.Minute)
	return mockVersionService, mockHub, handler, jwtSvc
}

func TestVersionHandler_Create_Success(t *testing.T) {
	mockVersionService, _, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()
	version := &models.PageVersion{
		ID:      uuid.New(),
		PageID:  pageID,
		Name:    "before redesign",
		Content: testutil.SampleStructure(),
	}

	mockVersionService.On("Create", mock.Anything, pageID, "before redesign", userID).Return(version, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/pages/:id/versions", handler.Create)

	body, _ := json.Marshal(dto.CreateVersionRequest{Name: "before redesign"})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/pages/"+pageID.String()+"/versions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, version.ID, response.ID)
	assert.Equal(t, "before redesign", response.Name)
	assert.False(t, response.IsActive)

	mockVersionService.AssertExpectations(t)
}

func TestVersionHandler_Create_MissingName(t *testing.T) {
	_, _, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/pages/:id/versions", handler.Create)

	body, _ := json.Marshal(dto.CreateVersionRequest{Name: ""})

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/pages/"+pageID.String()+"/versions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")
}

func TestVersionHandler_List_Success(t *testing.T) {
	mockVersionService, _, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()
	versions := []models.PageVersion{
		{ID: uuid.New(), PageID: pageID, Name: "v2", IsActive: true},
		{ID: uuid.New(), PageID: pageID, Name: "v1"},
	}

	mockVersionService.On("List", mock.Anything, pageID).Return(versions, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/pages/:id/versions", handler.List)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodGet, "/pages/"+pageID.String()+"/versions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "v2", response[0].Name)
	assert.True(t, response[0].IsActive)

	mockVersionService.AssertExpectations(t)
}

func TestVersionHandler_Activate_Success_Broadcasts(t *testing.T) {
	mockVersionService, mockHub, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()
	versionID := uuid.New()
	version := &models.PageVersion{
		ID:       versionID,
		PageID:   pageID,
		Name:     "v1",
		IsActive: true,
	}

	mockVersionService.On("Activate", mock.Anything, pageID, versionID).Return(version, nil)
	mockHub.On("BroadcastVersionActivated", pageID, versionID, userID).Return()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/pages/:id/versions/:versionId/activate", handler.Activate)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/pages/"+pageID.String()+"/versions/"+versionID.String()+"/activate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.IsActive)

	mockVersionService.AssertExpectations(t)
	mockHub.AssertExpectations(t)
}

func TestVersionHandler_Activate_NotFound(t *testing.T) {
	mockVersionService, _, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()
	versionID := uuid.New()

	mockVersionService.On("Activate", mock.Anything, pageID, versionID).Return(nil, services.ErrNotFound)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/pages/:id/versions/:versionId/activate", handler.Activate)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodPost, "/pages/"+pageID.String()+"/versions/"+versionID.String()+"/activate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "version not found")

	mockVersionService.AssertExpectations(t)
}

func TestVersionHandler_Delete_ActiveVersionConflict(t *testing.T) {
	mockVersionService, _, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()
	versionID := uuid.New()

	mockVersionService.On("Delete", mock.Anything, versionID).Return(services.ErrCannotDeleteActiveVersion)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Delete("/pages/:id/versions/:versionId", handler.Delete)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodDelete, "/pages/"+pageID.String()+"/versions/"+versionID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACTIVE_VERSION")

	mockVersionService.AssertExpectations(t)
}

func TestVersionHandler_Delete_Success(t *testing.T) {
	mockVersionService, _, handler, jwtSvc := setupVersionTest(t)

	userID := uuid.New()
	pageID := uuid.New()
	versionID := uuid.New()

	mockVersionService.On("Delete", mock.Anything, versionID).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Delete("/pages/:id/versions/:versionId", handler.Delete)

	token := generateTestToken(t, jwtSvc, userID, "editor@example.com")
	req := httptest.NewRequest(http.MethodDelete, "/pages/"+pageID.String()+"/versions/"+versionID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "version deleted")

	mockVersionService.AssertExpectations(t)
}
