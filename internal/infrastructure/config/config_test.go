package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "HTTP_PORT", "GRPC_PORT", "ENVIRONMENT", "LOG_LEVEL",
	"LOG_FORMAT", "OTEL_EXPORTER_OTLP_ENDPOINT", "GRPC_REFLECTION", "NOISE_SPREAD",
}

// clearEnv unsets every key Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "9000", cfg.GRPCPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.False(t, cfg.GRPCReflection)
	assert.Equal(t, 0.1, cfg.NoiseSpread)
	assert.Equal(t, ":8000", cfg.HTTPAddress())
	assert.Equal(t, ":9000", cfg.GRPCAddress())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("GRPC_PORT", "9091")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("GRPC_REFLECTION", "true")
	t.Setenv("NOISE_SPREAD", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTPAddress())
	assert.Equal(t, ":9091", cfg.GRPCAddress())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.GRPCReflection)
	assert.Zero(t, cfg.NoiseSpread)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "scoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_port: "7000"
grpc_port: "7001"
log_level: debug
noise_spread: 0.05
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GRPC_PORT", "7777")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "7777", cfg.GRPCPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.05, cfg.NoiseSpread)
	// Unset keys keep their defaults.
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing config file", map[string]string{"CONFIG_FILE": "/nonexistent/scoring.yaml"}},
		{"bad reflection flag", map[string]string{"GRPC_REFLECTION": "maybe"}},
		{"bad noise spread", map[string]string{"NOISE_SPREAD": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: [unclosed"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"non-numeric http port", func(c *Config) { c.HTTPPort = "http" }, "http_port"},
		{"grpc port out of range", func(c *Config) { c.GRPCPort = "70000" }, "grpc_port"},
		{"ports collide", func(c *Config) { c.GRPCPort = c.HTTPPort }, "must differ"},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"negative noise spread", func(c *Config) { c.NoiseSpread = -0.1 }, "noise_spread"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
