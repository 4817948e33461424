// Package config defines the application configuration, loaded from
// environment variables with github.com/caarlos0/env. Domain-specific
// settings live in separate files:
//   - database.go: PostgreSQL and Redis configuration
//   - http.go: HTTP server configuration
//   - ai.go: model provider configuration
//   - services.go: service mode and worker configuration
//   - storage.go: document blob storage configuration
package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
type AppConfig struct {
	// IsDev controls development mode behavior. Set DEV=true for
	// development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// Chat session cache configuration
	Chat ChatConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Model provider configuration
	AI AIConfig `envPrefix:"AI_"`

	// Document blob storage configuration
	Storage StorageConfig

	// Services is a comma-delimited list of enabled services.
	// Valid values: http, worker
	Services string `env:"SERVICES" envDefault:"http,worker"`

	// Worker pool configuration
	Worker WorkerConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.AI.Sanitize()
	c.Worker.Sanitize()
	c.Chat.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks NODE_ENV as a fallback for the DEV flag.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the HTTP server service is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsWorkerEnabled returns true if the background worker pool is enabled.
func (c *AppConfig) IsWorkerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeWorker]
}
