package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/mcp-demo/internal/catalog"
	"github.com/bobmcallan/mcp-demo/internal/common"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	registry, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	h, err := NewHandler(registry, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to build MCP handler: %v", err)
	}
	return h
}

// listTools calls tools/list on the MCPServer and returns the tools.
func listTools(t *testing.T, s *mcpserver.MCPServer) []mcpgo.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolsResult mcpgo.ListToolsResult
	if err := json.Unmarshal(resultJSON, &toolsResult); err != nil {
		t.Fatalf("failed to unmarshal ListToolsResult: %v", err)
	}

	return toolsResult.Tools
}

// callTool calls a tool on the MCPServer and returns the result.
func callTool(t *testing.T, s *mcpserver.MCPServer, name string, args map[string]interface{}) *mcpgo.CallToolResult {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(paramsJSON) + `}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolResult mcpgo.CallToolResult
	if err := json.Unmarshal(resultJSON, &toolResult); err != nil {
		t.Fatalf("failed to unmarshal CallToolResult: %v", err)
	}

	return &toolResult
}

// extractText extracts the text field from an MCP content block.
func extractText(t *testing.T, content mcpgo.Content) string {
	t.Helper()
	contentJSON, _ := json.Marshal(content)
	var tc struct {
		Text string `json:"text"`
	}
	json.Unmarshal(contentJSON, &tc)
	return tc.Text
}

func TestNewHandler_BuildsAllEndpoints(t *testing.T) {
	h := newTestHandler(t)

	for _, name := range []string{"weather", "database", "file", "api"} {
		if h.Server(name) == nil {
			t.Errorf("expected an MCP server for endpoint %q", name)
		}
	}
	if h.Server("nonexistent") != nil {
		t.Error("expected no MCP server for an unregistered endpoint")
	}
}

func TestHandler_ToolsListMatchesCatalog(t *testing.T) {
	h := newTestHandler(t)

	tools := listTools(t, h.Server("database"))
	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"query_database", "execute_command", "list_tables"} {
		if !names[want] {
			t.Errorf("expected tools/list to include %q, got %v", want, names)
		}
	}
}

func TestHandler_ToolsListCarriesSchema(t *testing.T) {
	h := newTestHandler(t)

	tools := listTools(t, h.Server("weather"))
	var getWeather *mcpgo.Tool
	for i := range tools {
		if tools[i].Name == "get_weather" {
			getWeather = &tools[i]
		}
	}
	if getWeather == nil {
		t.Fatal("expected get_weather in tools/list")
	}

	if _, ok := getWeather.InputSchema.Properties["city"]; !ok {
		t.Errorf("expected get_weather schema to declare city, got %v", getWeather.InputSchema.Properties)
	}
	required := false
	for _, name := range getWeather.InputSchema.Required {
		if name == "city" {
			required = true
		}
	}
	if !required {
		t.Error("expected city to be required in the get_weather schema")
	}
}

func TestHandler_ToolCallEchoesSimulatedResult(t *testing.T) {
	h := newTestHandler(t)

	result := callTool(t, h.Server("weather"), "get_weather", map[string]interface{}{
		"city": "Sydney",
		"unit": "celsius",
	})

	if result.IsError {
		t.Fatalf("expected successful call, got error result: %+v", result)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content in call result")
	}

	text := extractText(t, result.Content[0])
	var echo struct {
		Endpoint  string         `json:"endpoint"`
		Tool      string         `json:"tool"`
		Arguments map[string]any `json:"arguments"`
		Simulated bool           `json:"simulated"`
	}
	if err := json.Unmarshal([]byte(text), &echo); err != nil {
		t.Fatalf("failed to unmarshal echoed result: %v", err)
	}
	if echo.Endpoint != "weather" || echo.Tool != "get_weather" {
		t.Errorf("unexpected echo identity: %+v", echo)
	}
	if echo.Arguments["city"] != "Sydney" {
		t.Errorf("expected city argument to round-trip, got %v", echo.Arguments)
	}
	if !echo.Simulated {
		t.Error("expected the result to be flagged as simulated")
	}
}

func TestHandler_UnknownEndpointReturns404(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("POST", "/mcp/nonexistent", strings.NewReader(`{}`))
	req.SetPathValue("endpoint", "nonexistent")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if !strings.Contains(body["error"], "nonexistent") {
		t.Errorf("expected error to name the missing endpoint, got %q", body["error"])
	}
}

func TestHandler_StreamableEndpointHandlesInitialize(t *testing.T) {
	h := newTestHandler(t)

	init := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	req := httptest.NewRequest("POST", "/mcp/weather", strings.NewReader(init))
	req.SetPathValue("endpoint", "weather")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Weather MCP Server") {
		t.Errorf("expected initialize response to carry the endpoint's server name, got %s", w.Body.String())
	}
}
