package api

import "time"

// Config holds server configuration.
type Config struct {
	Port              int
	AllowedOrigins    []string   // CORS allowed origins (empty = allow all)
	RateLimitRequests int        // Requests per minute (0 = disabled)
	RateLimitBurst    int        // Burst size
	Auth              AuthConfig // Authentication configuration
	MaxInputBytes     int64      // Request body limit (0 = DefaultMaxInputBytes)
	ShutdownTimeout   time.Duration
	Version           string
	SourceName        string // reported by /health
}

// DefaultMaxInputBytes bounds the size of a POSTed citation list.
const DefaultMaxInputBytes = 64 << 10

func (c Config) withDefaults() Config {
	if c.MaxInputBytes <= 0 {
		c.MaxInputBytes = DefaultMaxInputBytes
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	if c.Version == "" {
		c.Version = "dev"
	}
	return c
}
