package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "dev",
		Server: ServerConfig{
			Port: 8000,
			Host: "0.0.0.0",
		},
		Logging: LoggingConfig{
			Level:      "info",
			FilePath:   "logs/mcp-demo.log",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}
