package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestParseServices(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    map[ServiceMode]bool
		expectError bool
	}{
		{
			name:  "single service - http",
			input: "http",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP: true,
			},
			expectError: false,
		},
		{
			name:  "single service - worker",
			input: "worker",
			expected: map[ServiceMode]bool{
				ServiceModeWorker: true,
			},
			expectError: false,
		},
		{
			name:  "both services",
			input: "http,worker",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:   true,
				ServiceModeWorker: true,
			},
			expectError: false,
		},
		{
			name:  "services with spaces",
			input: " http , worker ",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:   true,
				ServiceModeWorker: true,
			},
			expectError: false,
		},
		{
			name:  "duplicate services",
			input: "http,http,worker",
			expected: map[ServiceMode]bool{
				ServiceModeHTTP:   true,
				ServiceModeWorker: true,
			},
			expectError: false,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "invalid service name",
			input:       "http,scheduler",
			expectError: true,
		},
		{
			name:        "only commas",
			input:       ",,,",
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseServices(tc.input)
			if tc.expectError {
				if err == nil {
					t.Fatalf("expected error for input %q, got none", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ParseServices(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Postgres.Host != "localhost" || cfg.Postgres.Port != 5432 {
		t.Errorf("unexpected postgres defaults: %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected redis default: %s", cfg.Redis.Addr)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("unexpected http addr default: %s", cfg.HTTP.Addr)
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("unexpected provider default: %s", cfg.AI.Provider)
	}
	if cfg.Chat.SessionTTL != 24*time.Hour {
		t.Errorf("unexpected chat ttl default: %s", cfg.Chat.SessionTTL)
	}
	if !cfg.IsHTTPServerEnabled() || !cfg.IsWorkerEnabled() {
		t.Error("expected http and worker enabled by default")
	}
}

func TestAppConfigEnvOverrides(t *testing.T) {
	t.Setenv("AI_MODEL_PROVIDER", "anthropic")
	t.Setenv("WORKER_CONCURRENCY", "0")
	t.Setenv("CHAT_SESSION_TTL", "5s")
	t.Setenv("SERVICES", "http")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.AI.Provider != "anthropic" {
		t.Errorf("provider = %s, want anthropic", cfg.AI.Provider)
	}
	// Sanitize clamps out-of-range values.
	if cfg.Worker.Concurrency != 1 {
		t.Errorf("concurrency = %d, want clamped to 1", cfg.Worker.Concurrency)
	}
	if cfg.Chat.SessionTTL != time.Minute {
		t.Errorf("chat ttl = %s, want clamped to 1m", cfg.Chat.SessionTTL)
	}
	if cfg.IsWorkerEnabled() {
		t.Error("worker should be disabled when SERVICES=http")
	}
}
