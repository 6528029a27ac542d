package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the scoring service.
type Config struct {
	HTTPPort       string  `yaml:"http_port"`
	GRPCPort       string  `yaml:"grpc_port"`
	Environment    string  `yaml:"environment"`
	LogLevel       string  `yaml:"log_level"`
	LogFormat      string  `yaml:"log_format"`
	OTLPEndpoint   string  `yaml:"otlp_endpoint"`
	GRPCReflection bool    `yaml:"grpc_reflection"`
	NoiseSpread    float64 `yaml:"noise_spread"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HTTPPort:    "8000",
		GRPCPort:    "9000",
		Environment: "development",
		LogLevel:    "info",
		LogFormat:   "json",
		NoiseSpread: 0.1,
	}
}

// Load reads configuration from an optional YAML file named by CONFIG_FILE,
// then overlays environment variables.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.HTTPPort = getEnv("HTTP_PORT", c.HTTPPort)
	c.GRPCPort = getEnv("GRPC_PORT", c.GRPCPort)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.OTLPEndpoint)

	if v, ok := os.LookupEnv("GRPC_REFLECTION"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GRPC_REFLECTION %q: %w", v, err)
		}
		c.GRPCReflection = b
	}

	if v, ok := os.LookupEnv("NOISE_SPREAD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid NOISE_SPREAD %q: %w", v, err)
		}
		c.NoiseSpread = f
	}

	return nil
}

// Validate checks that the configuration can be served.
func (c *Config) Validate() error {
	var errs []error

	if err := validatePort("http_port", c.HTTPPort); err != nil {
		errs = append(errs, err)
	}
	if err := validatePort("grpc_port", c.GRPCPort); err != nil {
		errs = append(errs, err)
	}
	if c.HTTPPort == c.GRPCPort {
		errs = append(errs, fmt.Errorf("http_port and grpc_port must differ (both %s)", c.HTTPPort))
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log_format must be json or text, got %q", c.LogFormat))
	}

	if c.NoiseSpread < 0 {
		errs = append(errs, fmt.Errorf("noise_spread must not be negative, got %v", c.NoiseSpread))
	}

	return errors.Join(errs...)
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func validatePort(name, port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s must be a port number between 1 and 65535, got %q", name, port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
