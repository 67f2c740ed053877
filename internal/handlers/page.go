package handlers

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type PageHandler struct {
	pageService PageServiceInterface
	hub         HubInterface
}

func NewPageHandler(pageService PageServiceInterface, hub HubInterface) *PageHandler {
	return &PageHandler{
		pageService: pageService,
		hub:         hub,
	}
}

func (h *PageHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := context.Background()

	pages, err := h.pageService.List(ctx, services.PageFilter{
		Status:   models.PageStatus(c.QueryParam("status")),
		Language: c.QueryParam("lang"),
	})
	if err != nil {
		c.InternalServerError("failed to list pages")
		return
	}

	response := make([]dto.PageResponse, len(pages))
	for i := range pages {
		response[i] = dto.NewPageResponse(&pages[i])
	}

	_ = c.JSON(200, response)
}

func (h *PageHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreatePageRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	page, err := h.pageService.Create(context.Background(), services.CreatePageInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Language:    req.Language,
		Content:     req.Content,
		TemplateID:  req.TemplateID,
	}, userID)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	_ = c.JSON(201, dto.NewPageResponse(page))
}

func (h *PageHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	page, err := h.pageService.GetByID(context.Background(), pageID)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	_ = c.JSON(200, dto.NewPageResponse(page))
}

func (h *PageHandler) UpdateMeta(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	var req dto.UpdatePageMetaRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	page, err := h.pageService.UpdateMeta(context.Background(), pageID, services.UpdatePageMetaInput{
		Title:           req.Title,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		OGImage:         req.OGImage,
	})
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	_ = c.JSON(200, dto.NewPageResponse(page))
}

func (h *PageHandler) UpdateContent(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	var req dto.UpdatePageContentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	page, err := h.pageService.UpdateContent(context.Background(), pageID, req.Content)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	h.hub.BroadcastPageUpdate(page.ID, userID)

	_ = c.JSON(200, dto.NewPageResponse(page))
}

func (h *PageHandler) SetStatus(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	var req dto.UpdatePageStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	page, err := h.pageService.SetStatus(context.Background(), pageID, models.PageStatus(req.Status))
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	h.hub.BroadcastStatusChange(page.ID, string(page.Status), userID)

	_ = c.JSON(200, dto.NewPageResponse(page))
}

func (h *PageHandler) Reorder(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	var req dto.ReorderPageRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	ctx := context.Background()

	var page *models.Page
	if req.ComponentID == "" {
		page, err = h.pageService.ReorderSection(ctx, pageID, req.SectionID, req.Position)
	} else {
		page, err = h.pageService.ReorderComponent(ctx, pageID, req.SectionID, req.ComponentID, req.Position)
	}
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	h.hub.BroadcastPageUpdate(page.ID, userID)

	_ = c.JSON(200, dto.NewPageResponse(page))
}

func (h *PageHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	if err := h.pageService.Delete(context.Background(), pageID); err != nil {
		respondServiceError(c, err, "page")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "page deleted"})
}
