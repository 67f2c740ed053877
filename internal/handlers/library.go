package handlers

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type LibraryHandler struct {
	libraryService LibraryServiceInterface
}

func NewLibraryHandler(libraryService LibraryServiceInterface) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

func (h *LibraryHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	components, err := h.libraryService.List(context.Background(), services.LibraryFilter{
		Category:        c.QueryParam("category"),
		IncludeArchived: c.QueryParam("include_archived") == "true",
	})
	if err != nil {
		c.InternalServerError("failed to list library components")
		return
	}

	response := make([]dto.LibraryComponentResponse, len(components))
	for i := range components {
		response[i] = dto.NewLibraryComponentResponse(&components[i])
	}

	_ = c.JSON(200, response)
}

func (h *LibraryHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid component id")
		return
	}

	component, err := h.libraryService.GetByID(context.Background(), componentID)
	if err != nil {
		respondServiceError(c, err, "library component")
		return
	}

	_ = c.JSON(200, dto.NewLibraryComponentResponse(component))
}

func (h *LibraryHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateLibraryComponentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	component, err := h.libraryService.Create(context.Background(), services.CreateLibraryComponentInput{
		Name:      req.Name,
		Category:  req.Category,
		Component: req.Component,
	})
	if err != nil {
		respondServiceError(c, err, "library component")
		return
	}

	_ = c.JSON(201, dto.NewLibraryComponentResponse(component))
}

func (h *LibraryHandler) Archive(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid component id")
		return
	}

	req := dto.ArchiveRequest{Archived: true}
	_ = c.BindJSON(&req)

	if err := h.libraryService.Archive(context.Background(), componentID, req.Archived); err != nil {
		respondServiceError(c, err, "library component")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "library component archive state updated"})
}

func (h *LibraryHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid component id")
		return
	}

	if err := h.libraryService.Delete(context.Background(), componentID); err != nil {
		respondServiceError(c, err, "library component")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "library component deleted"})
}
