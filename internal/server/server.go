package server

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/specboard/internal/catalog"
	"github.com/nfrund/specboard/internal/config"
	"github.com/nfrund/specboard/internal/handlers"
	appmiddleware "github.com/nfrund/specboard/internal/middleware"
	"github.com/nfrund/specboard/internal/rendering"
	"github.com/nfrund/specboard/internal/storage"
	"github.com/nfrund/specboard/internal/watcher"
)

// Dependencies holds everything the server needs. Only Config is required;
// Store defaults to the on-disk modules directory from the configuration.
type Dependencies struct {
	Config config.Provider
	Store  storage.ModuleStore
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	Catalog *catalog.Service

	homeHandler   *handlers.HomeHandler
	moduleHandler *handlers.ModuleHandler
	watcher       *watcher.Watcher
}

// New creates a new Server instance.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	cfg := deps.Config

	store := deps.Store
	if store == nil {
		store = storage.NewDiskStore(cfg.GetModulesDir())
	}
	svc := catalog.NewService(store)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.GetDebug()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = newErrorHandler(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	s := &Server{
		E:             e,
		Cfg:           cfg,
		Catalog:       svc,
		homeHandler:   handlers.NewHomeHandler(svc),
		moduleHandler: handlers.NewModuleHandler(svc),
	}
	if cfg.GetDebug() {
		s.watcher = watcher.New(cfg.GetModulesDir(), nil)
	}
	return s, nil
}
