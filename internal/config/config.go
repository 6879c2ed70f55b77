// Package config loads the csvview host configuration
// from environment variables with defaults
// and validates it on startup.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all host configuration.
type Config struct {
	Server  ServerConfig
	Files   FilesConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"CSVVIEW_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"CSVVIEW_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"CSVVIEW_READ_TIMEOUT" default:"15s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"CSVVIEW_SHUTDOWN_TIMEOUT" default:"10s"`
}

// FilesConfig holds settings for the served table files.
type FilesConfig struct {
	// Root is the directory tables are served from (default: .)
	Root string `env:"CSVVIEW_ROOT" default:"."`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log output format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the listen address of the server.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
