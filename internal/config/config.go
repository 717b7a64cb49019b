package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port                int      `mapstructure:"port"`
	GRPCPort            int      `mapstructure:"grpc_port"`
	LogLevel            string   `mapstructure:"log_level"`
	LogJSON             bool     `mapstructure:"log_json"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	RequestTimeoutSec   int      `mapstructure:"request_timeout_sec"`  // HTTP read/write; 0 = use server default
	ShutdownTimeoutSec  int      `mapstructure:"shutdown_timeout_sec"` // Graceful shutdown wait
	SeedEnabled         bool     `mapstructure:"seed_enabled"`         // Load the reference network at startup
	SeedPath            string   `mapstructure:"seed_path"`            // YAML dataset; empty = embedded
	MonotonicIDs        bool     `mapstructure:"monotonic_ids"`        // Never reuse ids after deletion
	ExportCacheSize     int      `mapstructure:"export_cache_size"`    // 0 = cache disabled
	ExportCacheTTLSec   int      `mapstructure:"export_cache_ttl_sec"` // 0 = cache disabled
	RateLimitPerMin     int      `mapstructure:"rate_limit_per_min"`   // Writes per minute per IP; GETs and pointer events get 10x
	MaxBodyBytes        int64    `mapstructure:"max_body_bytes"`
	TracingEndpoint     string   `mapstructure:"tracing_endpoint"` // OTLP collector; empty = tracing disabled
	TracingSamplingRate float64  `mapstructure:"tracing_sampling_rate"`
}

// Load reads config.yaml (if present) and NETWORKFAULT_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/networkfault/")
	v.AddConfigPath("$HOME/.networkfault")
	v.AddConfigPath(".")

	// Defaults
	v.SetDefault("port", 8080)
	v.SetDefault("grpc_port", 9090)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", true)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("request_timeout_sec", 30)
	v.SetDefault("shutdown_timeout_sec", 15)
	v.SetDefault("seed_enabled", true)
	v.SetDefault("seed_path", "")
	v.SetDefault("monotonic_ids", false)
	v.SetDefault("export_cache_size", 32)
	v.SetDefault("export_cache_ttl_sec", 60)
	v.SetDefault("rate_limit_per_min", 600)
	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("tracing_endpoint", "")
	v.SetDefault("tracing_sampling_rate", 1.0)

	// Environment variables
	v.SetEnvPrefix("NETWORKFAULT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; using defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	// env values are comma separated
	cfg.AllowedOrigins = splitList(strings.Join(cfg.AllowedOrigins, ","))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid grpc_port %d", c.GRPCPort)
	}
	if c.GRPCPort != 0 && c.GRPCPort == c.Port {
		return fmt.Errorf("port and grpc_port must differ (both %d)", c.Port)
	}
	if c.TracingSamplingRate < 0 || c.TracingSamplingRate > 1 {
		return fmt.Errorf("tracing_sampling_rate must be in [0, 1], got %v", c.TracingSamplingRate)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
