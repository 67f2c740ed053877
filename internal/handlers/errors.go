package handlers

import (
	"errors"

	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// respondServiceError maps service sentinels onto the uniform error payload.
// resource names the thing being operated on, for 404 messages.
func respondServiceError(c *drift.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(resource + " not found")
	case errors.Is(err, services.ErrInvalidSlug):
		_ = c.JSON(400, dto.ErrorResponse{
			Code:    "INVALID_SLUG",
			Message: "a url-safe slug could not be derived; provide one explicitly",
		})
	case errors.Is(err, services.ErrInvalidStatus):
		_ = c.JSON(400, dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
	case errors.Is(err, services.ErrInvalidStructure):
		resp := dto.ErrorResponse{Code: "INVALID_STRUCTURE", Message: err.Error()}
		var structErr *schema.StructureError
		if errors.As(err, &structErr) {
			resp.Path = structErr.Path
			resp.Message = structErr.Message
		}
		_ = c.JSON(400, resp)
	case errors.Is(err, services.ErrDuplicateSlug):
		_ = c.JSON(409, dto.ErrorResponse{
			Code:    "DUPLICATE_SLUG",
			Message: "slug is already in use",
		})
	case errors.Is(err, services.ErrConcurrencyConflict):
		_ = c.JSON(409, dto.ErrorResponse{
			Code:    "CONCURRENCY_CONFLICT",
			Message: "the resource was modified concurrently, retry",
		})
	case errors.Is(err, services.ErrCannotDeleteActiveVersion):
		_ = c.JSON(409, dto.ErrorResponse{
			Code:    "ACTIVE_VERSION",
			Message: "cannot delete the active version while other versions exist",
		})
	case errors.Is(err, services.ErrSystemComponent):
		_ = c.JSON(403, dto.ErrorResponse{
			Code:    "SYSTEM_COMPONENT",
			Message: "system components cannot be modified",
		})
	default:
		c.InternalServerError("unexpected error")
	}
}
