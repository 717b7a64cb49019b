package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.GRPCPort != 9090 {
		t.Errorf("Expected default grpc port 9090, got %d", cfg.GRPCPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.LogLevel)
	}
	if !cfg.SeedEnabled {
		t.Error("Expected seeding to be enabled by default")
	}
	if cfg.MonotonicIDs {
		t.Error("Expected length-based ids by default")
	}
	if cfg.ExportCacheSize != 32 || cfg.ExportCacheTTLSec != 60 {
		t.Errorf("Unexpected export cache defaults %d/%d", cfg.ExportCacheSize, cfg.ExportCacheTTLSec)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NETWORKFAULT_PORT", "9000")
	t.Setenv("NETWORKFAULT_LOG_LEVEL", "debug")
	t.Setenv("NETWORKFAULT_MONOTONIC_IDS", "true")
	t.Setenv("NETWORKFAULT_ALLOWED_ORIGINS", "http://a.local, http://b.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if !cfg.MonotonicIDs {
		t.Error("Expected monotonic ids from env")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.local" {
		t.Errorf("Unexpected allowed origins %v", cfg.AllowedOrigins)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	body := "port: 8181\nseed_enabled: false\nexport_cache_size: 0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != 8181 || cfg.SeedEnabled || cfg.ExportCacheSize != 0 {
		t.Errorf("config file values not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Port: 8080, GRPCPort: 9090, TracingSamplingRate: 1}, true},
		{"grpc disabled", Config{Port: 8080}, true},
		{"bad port", Config{Port: 0}, false},
		{"same ports", Config{Port: 8080, GRPCPort: 8080}, false},
		{"bad sampling", Config{Port: 8080, TracingSamplingRate: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
