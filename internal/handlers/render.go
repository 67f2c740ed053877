package handlers

import (
	"context"
	"errors"

	"github.com/dkovac/pagecraft-api/internal/render"
	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

// RenderHandler serves the public read model. It is the only unauthenticated
// surface besides the health check.
type RenderHandler struct {
	pageService     PageServiceInterface
	registry        *schema.Registry
	defaultLanguage string
}

func NewRenderHandler(pageService PageServiceInterface, registry *schema.Registry, defaultLanguage string) *RenderHandler {
	return &RenderHandler{
		pageService:     pageService,
		registry:        registry,
		defaultLanguage: defaultLanguage,
	}
}

func (h *RenderHandler) Get(c *drift.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.BadRequest("slug is required")
		return
	}

	language := c.QueryParam("lang")
	if language == "" {
		language = h.defaultLanguage
	}

	page, err := h.pageService.GetBySlug(context.Background(), slug, language)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("page not found")
			return
		}
		c.InternalServerError("failed to load page")
		return
	}

	model, err := render.Project(page, h.registry)
	if err != nil {
		// Drafts and archived pages are indistinguishable from missing ones.
		if errors.Is(err, render.ErrPageNotPublished) {
			c.NotFound("page not found")
			return
		}
		c.InternalServerError("failed to render page")
		return
	}

	_ = c.JSON(200, model)
}
