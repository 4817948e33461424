package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"gencertify"`
	Password string `env:"PASSWORD" envDefault:"gencertify"`
	Name     string `env:"NAME"     envDefault:"gencertify"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration for the chat session cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// ChatConfig contains chat session cache configuration.
type ChatConfig struct {
	// SessionTTL is how long an idle chat session survives in the cache.
	SessionTTL time.Duration `env:"CHAT_SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to chat configuration values.
func (c *ChatConfig) Sanitize() {
	if c.SessionTTL < time.Minute {
		c.SessionTTL = time.Minute
	}
}
