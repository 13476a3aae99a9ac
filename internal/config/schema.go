package config

import "fmt"

// Config holds indexcards configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	Log    LogCfg    `mapstructure:"log" yaml:"log"`
	Export ExportCfg `mapstructure:"export" yaml:"export"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// LogCfg configures logging output.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level"`   // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// ExportCfg configures export behavior.
type ExportCfg struct {
	// DefaultFormat is used when a CLI export does not name a format.
	DefaultFormat string `mapstructure:"default_format" yaml:"default_format"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "localhost",
			Port: 3000,
		},
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
		Export: ExportCfg{
			DefaultFormat: "csv",
		},
	}
}

// Addr returns the host:port address the server should listen on.
func (c *Config) Addr() string {
	host := c.Server.Host
	port := c.Server.Port
	if port == 0 {
		port = 3000
	}
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s:%d", host, port)
}
