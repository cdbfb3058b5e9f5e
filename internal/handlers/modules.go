package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/specboard/internal/domain"
	"github.com/nfrund/specboard/internal/middleware"
)

// ModuleCatalog is the read side the API handlers depend on.
type ModuleCatalog interface {
	Lookup(ctx context.Context, id string) (json.RawMessage, error)
	Presence(ctx context.Context) domain.Presence
}

// ModuleHandler serves module documents and the presence check.
type ModuleHandler struct {
	catalog ModuleCatalog
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(catalog ModuleCatalog) *ModuleHandler {
	return &ModuleHandler{catalog: catalog}
}

// ModuleGet returns the module named by the :id path parameter verbatim.
// Unknown and invalid identifiers both answer 404 so the response never
// reveals anything about paths outside the modules directory.
func (h *ModuleHandler) ModuleGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req ModuleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
	}
	if err := c.Validate(&req); err != nil {
		logger.Debug("Rejected module identifier", slog.String("id", req.ID))
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
	}

	doc, err := h.catalog.Lookup(ctx, req.ID)
	switch {
	case err == nil:
		return c.JSONBlob(http.StatusOK, doc)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidIdentifier):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
	case errors.Is(err, domain.ErrMalformedModule):
		logger.Error("Module file is not valid JSON", slog.String("id", req.ID))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgMalformedModule})
	default:
		return fmt.Errorf("failed to read module %q: %w", req.ID, err)
	}
}

// CheckGet reports whether module1 and module2 exist.
func (h *ModuleHandler) CheckGet(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Presence(c.Request().Context()))
}
