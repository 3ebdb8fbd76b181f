// Package mcp serves each catalog endpoint as a live MCP server over
// streamable HTTP. The servers are stateless and expose exactly the static
// tool tables from the catalog registry; tool calls return simulated
// demo results.
package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bobmcallan/mcp-demo/internal/catalog"
	"github.com/bobmcallan/mcp-demo/internal/common"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handler routes POST /mcp/{endpoint} to the per-endpoint MCP server.
type Handler struct {
	logger     *common.Logger
	endpoints  []string
	servers    map[string]*mcpserver.MCPServer
	streamable map[string]*mcpserver.StreamableHTTPServer
}

// NewHandler builds one stateless MCP server per catalog endpoint, named
// and versioned from the endpoint's server metadata.
func NewHandler(registry *catalog.Registry, logger *common.Logger) (*Handler, error) {
	h := &Handler{
		logger:     logger,
		endpoints:  registry.Endpoints(),
		servers:    make(map[string]*mcpserver.MCPServer, len(registry.Endpoints())),
		streamable: make(map[string]*mcpserver.StreamableHTTPServer, len(registry.Endpoints())),
	}

	for _, name := range h.endpoints {
		cfg, err := registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("building MCP server for %q: %w", name, err)
		}

		srv := mcpserver.NewMCPServer(
			cfg.Server.Name,
			cfg.Server.Version,
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithInstructions(cfg.Server.Description),
		)

		count, err := RegisterCatalogTools(srv, name, cfg.Tools)
		if err != nil {
			return nil, fmt.Errorf("registering tools for %q: %w", name, err)
		}

		h.servers[name] = srv
		h.streamable[name] = mcpserver.NewStreamableHTTPServer(srv,
			mcpserver.WithStateLess(true),
		)

		logger.Debug().
			Str("endpoint", name).
			Int("tools", count).
			Msg("MCP server initialized")
	}

	logger.Info().
		Int("endpoints", len(h.servers)).
		Msg("MCP handlers initialized")

	return h, nil
}

// Server returns the underlying MCP server for the named endpoint, or nil
// if the endpoint is not registered.
func (h *Handler) Server(name string) *mcpserver.MCPServer {
	return h.servers[name]
}

// ServeHTTP resolves the endpoint from the request path and delegates to
// its streamable MCP server. An unknown endpoint gets the same JSON 404
// shape as the catalog GET routes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("endpoint")
	srv, ok := h.streamable[name]
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "error",
			"error": fmt.Sprintf("MCP endpoint %q does not exist. Available endpoints: %s",
				name, strings.Join(h.endpoints, ", ")),
		})
		return
	}

	srv.ServeHTTP(w, r)
}
