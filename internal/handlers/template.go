package handlers

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type TemplateHandler struct {
	templateService TemplateServiceInterface
	pageService     PageServiceInterface
}

func NewTemplateHandler(templateService TemplateServiceInterface, pageService PageServiceInterface) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		pageService:     pageService,
	}
}

func (h *TemplateHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templates, err := h.templateService.List(context.Background(), services.TemplateFilter{
		Category:        c.QueryParam("category"),
		IncludeArchived: c.QueryParam("include_archived") == "true",
		GroupByCategory: c.QueryParam("group_by_category") == "true",
	})
	if err != nil {
		c.InternalServerError("failed to list templates")
		return
	}

	response := make([]dto.TemplateResponse, len(templates))
	for i := range templates {
		response[i] = dto.NewTemplateResponse(&templates[i])
	}

	_ = c.JSON(200, response)
}

func (h *TemplateHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	template, err := h.templateService.GetByID(context.Background(), templateID)
	if err != nil {
		respondServiceError(c, err, "template")
		return
	}

	_ = c.JSON(200, dto.NewTemplateResponse(template))
}

func (h *TemplateHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	template, err := h.templateService.Create(context.Background(), services.CreateTemplateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Structure:   req.Structure,
	})
	if err != nil {
		respondServiceError(c, err, "template")
		return
	}

	_ = c.JSON(201, dto.NewTemplateResponse(template))
}

func (h *TemplateHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	template, err := h.templateService.Update(context.Background(), templateID, services.UpdateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Structure:   req.Structure,
	})
	if err != nil {
		respondServiceError(c, err, "template")
		return
	}

	_ = c.JSON(200, dto.NewTemplateResponse(template))
}

// Instantiate builds a page from a template: the structure is deep-copied with
// fresh node ids, so later template edits never leak into the page.
func (h *TemplateHandler) Instantiate(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	var req dto.InstantiateTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	ctx := context.Background()

	content, err := h.templateService.Instantiate(ctx, templateID)
	if err != nil {
		respondServiceError(c, err, "template")
		return
	}

	page, err := h.pageService.Create(ctx, services.CreatePageInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Language:    req.Language,
		Content:     content,
		TemplateID:  &templateID,
	}, userID)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	_ = c.JSON(201, dto.NewPageResponse(page))
}

func (h *TemplateHandler) Archive(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	req := dto.ArchiveRequest{Archived: true}
	_ = c.BindJSON(&req)

	if err := h.templateService.Archive(context.Background(), templateID, req.Archived); err != nil {
		respondServiceError(c, err, "template")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "template archive state updated"})
}

func (h *TemplateHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	if err := h.templateService.Delete(context.Background(), templateID); err != nil {
		respondServiceError(c, err, "template")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "template deleted"})
}
