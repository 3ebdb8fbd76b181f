package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog routes (read-only JSON)
	mux.HandleFunc("GET /{$}", s.app.CatalogHandler.HandleIndex)
	mux.HandleFunc("GET /list-endpoints", s.app.CatalogHandler.HandleListEndpoints)
	mux.HandleFunc("GET /mcp/{endpoint}", s.app.CatalogHandler.HandleConfig)
	mux.HandleFunc("GET /mcp/{endpoint}/server", s.app.CatalogHandler.HandleServerInfo)
	mux.HandleFunc("GET /mcp/{endpoint}/tools", s.app.CatalogHandler.HandleTools)
	mux.HandleFunc("GET /mcp/{endpoint}/tools/{tool}", s.app.CatalogHandler.HandleTool)

	// Live MCP endpoint (JSON-RPC over HTTP, one server per catalog endpoint)
	if s.app.MCPHandler != nil {
		mux.Handle("POST /mcp/{endpoint}", s.app.MCPHandler)
	}

	// API routes
	mux.HandleFunc("GET /api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("GET /api/version", s.app.VersionHandler.ServeHTTP)

	// JSON 404 for everything unmatched
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
