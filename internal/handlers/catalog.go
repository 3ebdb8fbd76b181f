package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bobmcallan/mcp-demo/internal/catalog"
	"github.com/bobmcallan/mcp-demo/internal/common"
)

// CatalogHandler serves the static MCP endpoint catalog over HTTP.
// All routes are read-only projections of the catalog registry.
type CatalogHandler struct {
	logger   *common.Logger
	registry *catalog.Registry
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(logger *common.Logger, registry *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{logger: logger, registry: registry}
}

// endpointInfo is the per-endpoint summary on the index route.
type endpointInfo struct {
	ServerName string `json:"server_name"`
	ToolsCount int    `json:"tools_count"`
}

// indexResponse is the body of GET /.
type indexResponse struct {
	Message            string                  `json:"message"`
	AvailableEndpoints []string                `json:"available_endpoints"`
	EndpointsInfo      map[string]endpointInfo `json:"endpoints_info"`
}

// toolSummary is the abbreviated tool record on /list-endpoints.
type toolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// endpointSummary is the per-endpoint record on /list-endpoints.
type endpointSummary struct {
	Endpoint          string        `json:"endpoint"`
	ServerName        string        `json:"server_name"`
	ServerVersion     string        `json:"server_version"`
	ServerDescription string        `json:"server_description"`
	Tools             []toolSummary `json:"tools"`
}

// HandleIndex handles GET /, returning the available endpoint names and
// a short per-endpoint summary.
func (h *CatalogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	names := h.registry.Endpoints()
	info := make(map[string]endpointInfo, len(names))
	for _, name := range names {
		cfg, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		info[name] = endpointInfo{
			ServerName: cfg.Server.Name,
			ToolsCount: len(cfg.Tools),
		}
	}

	WriteJSON(w, http.StatusOK, indexResponse{
		Message:            "Dynamic MCP Demo Server",
		AvailableEndpoints: names,
		EndpointsInfo:      info,
	})
}

// HandleConfig handles GET /mcp/{endpoint}, returning the full
// endpoint configuration.
func (h *CatalogHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("endpoint")
	cfg, err := h.registry.Get(name)
	if err != nil {
		h.writeNotFound(w, name, err)
		return
	}
	WriteJSON(w, http.StatusOK, cfg)
}

// HandleServerInfo handles GET /mcp/{endpoint}/server.
func (h *CatalogHandler) HandleServerInfo(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("endpoint")
	server, err := h.registry.Server(name)
	if err != nil {
		h.writeNotFound(w, name, err)
		return
	}
	WriteJSON(w, http.StatusOK, server)
}

// HandleTools handles GET /mcp/{endpoint}/tools.
func (h *CatalogHandler) HandleTools(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("endpoint")
	tools, err := h.registry.Tools(name)
	if err != nil {
		h.writeNotFound(w, name, err)
		return
	}
	WriteJSON(w, http.StatusOK, tools)
}

// HandleTool handles GET /mcp/{endpoint}/tools/{tool}.
func (h *CatalogHandler) HandleTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("endpoint")
	toolName := r.PathValue("tool")

	tool, err := h.registry.Tool(name, toolName)
	if err != nil {
		if errors.Is(err, catalog.ErrToolNotFound) {
			available, _ := h.registry.ToolNames(name)
			WriteError(w, http.StatusNotFound, fmt.Sprintf(
				"tool %q does not exist in endpoint %q. Available tools: %s",
				toolName, name, strings.Join(available, ", ")))
			return
		}
		h.writeNotFound(w, name, err)
		return
	}
	WriteJSON(w, http.StatusOK, tool)
}

// HandleListEndpoints handles GET /list-endpoints, returning every endpoint
// with its server metadata and abbreviated tool list.
func (h *CatalogHandler) HandleListEndpoints(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	names := h.registry.Endpoints()
	summaries := make([]endpointSummary, 0, len(names))
	for _, name := range names {
		cfg, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		tools := make([]toolSummary, len(cfg.Tools))
		for i, t := range cfg.Tools {
			tools[i] = toolSummary{Name: t.Name, Description: t.Description}
		}
		summaries = append(summaries, endpointSummary{
			Endpoint:          name,
			ServerName:        cfg.Server.Name,
			ServerVersion:     cfg.Server.Version,
			ServerDescription: cfg.Server.Description,
			Tools:             tools,
		})
	}

	WriteJSON(w, http.StatusOK, map[string][]endpointSummary{
		"endpoints": summaries,
	})
}

// writeNotFound writes the standard endpoint-miss response, naming the
// missing endpoint and listing the registered alternatives.
func (h *CatalogHandler) writeNotFound(w http.ResponseWriter, name string, err error) {
	if !errors.Is(err, catalog.ErrEndpointNotFound) {
		WriteError(w, http.StatusInternalServerError, "catalog lookup failed")
		return
	}
	WriteError(w, http.StatusNotFound, fmt.Sprintf(
		"MCP endpoint %q does not exist. Available endpoints: %s",
		name, strings.Join(h.registry.Endpoints(), ", ")))
}
