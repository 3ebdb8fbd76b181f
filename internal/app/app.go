package app

import (
	"fmt"

	"github.com/bobmcallan/mcp-demo/internal/catalog"
	"github.com/bobmcallan/mcp-demo/internal/common"
	"github.com/bobmcallan/mcp-demo/internal/config"
	"github.com/bobmcallan/mcp-demo/internal/handlers"
	"github.com/bobmcallan/mcp-demo/internal/mcp"
)

// App holds all application components and dependencies.
type App struct {
	Config   *config.Config
	Logger   *common.Logger
	Registry *catalog.Registry

	// HTTP handlers
	CatalogHandler *handlers.CatalogHandler
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	MCPHandler     *mcp.Handler
}

// New initializes the application with all dependencies. The endpoint
// catalog is built once here and shared read-only by every handler.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	registry, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to build endpoint catalog: %w", err)
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
	}

	if err := a.initHandlers(); err != nil {
		return nil, err
	}

	logger.Info().
		Int("endpoints", len(registry.Endpoints())).
		Str("environment", cfg.Environment).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() error {
	a.CatalogHandler = handlers.NewCatalogHandler(a.Logger, a.Registry)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)

	mcpHandler, err := mcp.NewHandler(a.Registry, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize MCP handlers: %w", err)
	}
	a.MCPHandler = mcpHandler

	a.Logger.Debug().Msg("HTTP handlers initialized")
	return nil
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
