package handlers

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type VersionHandler struct {
	versionService VersionServiceInterface
	hub            HubInterface
}

func NewVersionHandler(versionService VersionServiceInterface, hub HubInterface) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
		hub:            hub,
	}
}

func (h *VersionHandler) List(c *drift.Context) {
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

	versions, err := h.versionService.List(context.Background(), pageID)
	if err != nil {
		c.InternalServerError("failed to list versions")
		return
	}

	response := make([]dto.VersionResponse, len(versions))
	for i := range versions {
		response[i] = dto.NewVersionResponse(&versions[i])
	}

	_ = c.JSON(200, response)
}

func (h *VersionHandler) Create(c *drift.Context) {
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

	var req dto.CreateVersionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	version, err := h.versionService.Create(context.Background(), pageID, req.Name, userID)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	_ = c.JSON(201, dto.NewVersionResponse(version))
}

func (h *VersionHandler) Activate(c *drift.Context) {
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

	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		c.BadRequest("invalid version id")
		return
	}

	version, err := h.versionService.Activate(context.Background(), pageID, versionID)
	if err != nil {
		respondServiceError(c, err, "version")
		return
	}

	h.hub.BroadcastVersionActivated(version.PageID, version.ID, userID)

	_ = c.JSON(200, dto.NewVersionResponse(version))
}

func (h *VersionHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		c.BadRequest("invalid version id")
		return
	}

	if err := h.versionService.Delete(context.Background(), versionID); err != nil {
		respondServiceError(c, err, "version")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "version deleted"})
}
