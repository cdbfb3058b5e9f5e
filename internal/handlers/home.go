package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/specboard/internal/domain"
	"github.com/nfrund/specboard/internal/view"
	"github.com/nfrund/specboard/web/templates/components"
	"github.com/nfrund/specboard/web/templates/layouts"
	"github.com/nfrund/specboard/web/templates/pages"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TabsPath is where the landing page fetches its tab strip from.
const TabsPath = "/partials/tabs"

// PresenceChecker reports which well-known modules exist.
type PresenceChecker interface {
	Presence(ctx context.Context) domain.Presence
}

// HomeHandler handles requests for the landing page and its fragments.
type HomeHandler struct {
	presence PresenceChecker
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(presence PresenceChecker) *HomeHandler {
	return &HomeHandler{presence: presence}
}

// HomeGet renders the landing page. It does not touch the modules directory;
// the tab strip is fetched separately.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	page := layouts.Base("Modules", pages.Home(TabsPath))
	return c.Render(http.StatusOK, "", view.AdaptGomponentToTempl(page))
}

// TabsGet renders the tab strip fragment for htmx.
func (h *HomeHandler) TabsGet(c echo.Context) error {
	presence := h.presence.Presence(c.Request().Context())

	// Casers keep state and must not be shared between requests.
	caser := cases.Title(language.English)
	tabs := make([]components.Tab, 0, len(domain.WellKnownModules))
	for _, id := range domain.WellKnownModules {
		tabs = append(tabs, components.Tab{
			Module:  id,
			Label:   caser.String(id),
			Enabled: presence.Has(id),
		})
	}

	return c.Render(http.StatusOK, "", components.Tabs(tabs))
}
