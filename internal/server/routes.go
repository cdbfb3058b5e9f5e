package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/specboard/internal/handlers"
	"github.com/nfrund/specboard/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET(handlers.TabsPath, s.homeHandler.TabsGet)

	// Static routes win over parameters in echo's router, so /api/check is
	// never treated as a module named "check".
	api := s.E.Group("/api")
	api.GET("/check", s.moduleHandler.CheckGet)
	api.GET("/:id", s.moduleHandler.ModuleGet)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
