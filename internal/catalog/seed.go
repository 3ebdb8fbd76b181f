package catalog

// intp returns a pointer to n, for optional schema bounds.
func intp(n int) *int { return &n }

// Default builds the registry with the reference demo catalog: four
// endpoints, each describing a fictitious MCP server and its tools.
func Default() (*Registry, error) {
	return New(
		Entry{
			Name: "weather",
			Config: EndpointConfig{
				Server: ServerInfo{
					Name:        "Weather MCP Server",
					Version:     "1.0.0",
					Description: "Provides weather lookup tools",
				},
				Tools: []Tool{
					{
						Name:        "get_weather",
						Description: "Get current weather for a city",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"city": {
									Type:        "string",
									Description: "Name of the city to look up",
								},
								"unit": {
									Type:        "string",
									Enum:        []string{"celsius", "fahrenheit"},
									Description: "Temperature unit",
									Default:     "celsius",
								},
							},
							Required: []string{"city"},
						},
					},
					{
						Name:        "get_forecast",
						Description: "Get the weather forecast for a city",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"city": {
									Type:        "string",
									Description: "Name of the city to forecast",
								},
								"days": {
									Type:        "integer",
									Description: "Number of forecast days (1-7)",
									Minimum:     intp(1),
									Maximum:     intp(7),
									Default:     3,
								},
							},
							Required: []string{"city"},
						},
					},
				},
			},
		},
		Entry{
			Name: "database",
			Config: EndpointConfig{
				Server: ServerInfo{
					Name:        "Database MCP Server",
					Version:     "1.0.0",
					Description: "Provides database operation tools",
				},
				Tools: []Tool{
					{
						Name:        "query_database",
						Description: "Execute a SQL query",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"sql": {
									Type:        "string",
									Description: "SQL query to execute",
								},
								"database": {
									Type:        "string",
									Description: "Database name",
									Default:     "default",
								},
							},
							Required: []string{"sql"},
						},
					},
					{
						Name:        "execute_command",
						Description: "Execute a database command (INSERT, UPDATE, DELETE)",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"command": {
									Type:        "string",
									Description: "SQL command to execute",
								},
								"database": {
									Type:        "string",
									Description: "Database name",
									Default:     "default",
								},
							},
							Required: []string{"command"},
						},
					},
					{
						Name:        "list_tables",
						Description: "List all tables in a database",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"database": {
									Type:        "string",
									Description: "Database name",
									Default:     "default",
								},
							},
							Required: []string{},
						},
					},
				},
			},
		},
		Entry{
			Name: "file",
			Config: EndpointConfig{
				Server: ServerInfo{
					Name:        "File System MCP Server",
					Version:     "1.0.0",
					Description: "Provides file system operation tools",
				},
				Tools: []Tool{
					{
						Name:        "read_file",
						Description: "Read the contents of a file",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"path": {
									Type:        "string",
									Description: "Path of the file to read",
								},
								"encoding": {
									Type:        "string",
									Description: "File encoding",
									Default:     "utf-8",
								},
							},
							Required: []string{"path"},
						},
					},
					{
						Name:        "write_file",
						Description: "Write content to a file",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"path": {
									Type:        "string",
									Description: "Path of the file to write",
								},
								"content": {
									Type:        "string",
									Description: "Content to write",
								},
								"encoding": {
									Type:        "string",
									Description: "File encoding",
									Default:     "utf-8",
								},
							},
							Required: []string{"path", "content"},
						},
					},
					{
						Name:        "list_directory",
						Description: "List the contents of a directory",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"path": {
									Type:        "string",
									Description: "Directory path to list",
									Default:     ".",
								},
								"recursive": {
									Type:        "boolean",
									Description: "Recurse into subdirectories",
									Default:     false,
								},
							},
							Required: []string{},
						},
					},
				},
			},
		},
		Entry{
			Name: "api",
			Config: EndpointConfig{
				Server: ServerInfo{
					Name:        "API Client MCP Server",
					Version:     "1.0.0",
					Description: "Provides HTTP API client tools",
				},
				Tools: []Tool{
					{
						Name:        "http_get",
						Description: "Send an HTTP GET request",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"url": {
									Type:        "string",
									Description: "URL to request",
								},
								"headers": {
									Type:                 "object",
									Description:          "HTTP request headers",
									AdditionalProperties: &SchemaProperty{Type: "string"},
								},
							},
							Required: []string{"url"},
						},
					},
					{
						Name:        "http_post",
						Description: "Send an HTTP POST request",
						InputSchema: InputSchema{
							Type: "object",
							Properties: map[string]SchemaProperty{
								"url": {
									Type:        "string",
									Description: "URL to request",
								},
								"body": {
									Type:        "object",
									Description: "Request body (JSON)",
								},
								"headers": {
									Type:                 "object",
									Description:          "HTTP request headers",
									AdditionalProperties: &SchemaProperty{Type: "string"},
								},
							},
							Required: []string{"url", "body"},
						},
					},
				},
			},
		},
	)
}
