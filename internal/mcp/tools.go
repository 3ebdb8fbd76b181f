package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bobmcallan/mcp-demo/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterCatalogTools registers the endpoint's catalog tools on the MCP
// server, carrying each tool's input schema through verbatim.
func RegisterCatalogTools(s *mcpserver.MCPServer, endpoint string, tools []catalog.Tool) (int, error) {
	for _, t := range tools {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			return 0, fmt.Errorf("marshaling schema for tool %q: %w", t.Name, err)
		}
		tool := mcp.NewToolWithRawSchema(t.Name, t.Description, schema)
		s.AddTool(tool, DemoToolHandler(endpoint, t.Name))
	}
	return len(tools), nil
}

// demoCallResult is the simulated tool response body.
type demoCallResult struct {
	Endpoint  string         `json:"endpoint"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Simulated bool           `json:"simulated"`
}

// DemoToolHandler returns a handler that echoes the call back as a
// simulated result. The demo catalog describes fictitious servers, so
// there is nothing real to execute.
func DemoToolHandler(endpoint, tool string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := demoCallResult{
			Endpoint:  endpoint,
			Tool:      tool,
			Arguments: r.GetArguments(),
			Simulated: true,
		}

		body, err := json.Marshal(result)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(string(body))}}, nil
	}
}

// errorResult builds a CallToolResult flagged as an error.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{mcp.NewTextContent(msg)},
	}
}
