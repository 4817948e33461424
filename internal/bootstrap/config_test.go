package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencertify/gencertify/config"
)

func TestValidateServiceConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.AppConfig
		expectErr bool
	}{
		{name: "nil config", cfg: nil, expectErr: true},
		{name: "default services", cfg: &config.AppConfig{Services: "http,worker"}, expectErr: false},
		{name: "http only", cfg: &config.AppConfig{Services: "http"}, expectErr: false},
		{name: "empty services", cfg: &config.AppConfig{Services: ""}, expectErr: true},
		{name: "invalid service", cfg: &config.AppConfig{Services: "http,reaper"}, expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateServiceConfig(tc.cfg)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGetEnabledServices(t *testing.T) {
	assert.Empty(t, GetEnabledServices(nil))

	cfg := &config.AppConfig{Services: "http,worker"}
	enabled := GetEnabledServices(cfg)
	assert.ElementsMatch(t, []string{"http", "worker"}, enabled)

	cfg = &config.AppConfig{Services: "bogus"}
	assert.Empty(t, GetEnabledServices(cfg))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.IsHTTPServerEnabled())
}
