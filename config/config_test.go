// Package config provides configuration for the meetmind command-line tool.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies default configuration values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.OutputFormat != DefaultOutputFormat {
		t.Errorf("OutputFormat = %v, want %v", cfg.OutputFormat, DefaultOutputFormat)
	}
	if cfg.Analysis.WindowUtterances != DefaultWindowUtterances {
		t.Errorf("WindowUtterances = %v, want %v", cfg.Analysis.WindowUtterances, DefaultWindowUtterances)
	}
	if cfg.Index.Dimension != DefaultVectorDimension {
		t.Errorf("Index.Dimension = %v, want %v", cfg.Index.Dimension, DefaultVectorDimension)
	}
	if cfg.Index.ChunkSize != DefaultChunkSize {
		t.Errorf("Index.ChunkSize = %v, want %v", cfg.Index.ChunkSize, DefaultChunkSize)
	}
	if cfg.Index.ChunkOverlap != DefaultChunkOverlap {
		t.Errorf("Index.ChunkOverlap = %v, want %v", cfg.Index.ChunkOverlap, DefaultChunkOverlap)
	}
	if cfg.Debug {
		t.Error("Debug should be false by default")
	}
	if cfg.Storage != nil {
		t.Error("Storage should be nil by default")
	}
}

// TestOutputFormat_IsValid verifies output format validation.
func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{OutputFormatText, true},
		{OutputFormatJSON, true},
		{OutputFormatYAML, true},
		{"invalid", false},
		{"", false},
		{"JSON", false}, // Case sensitive
	}

	for _, tc := range tests {
		if got := tc.format.IsValid(); got != tc.valid {
			t.Errorf("OutputFormat(%q).IsValid() = %v, want %v", tc.format, got, tc.valid)
		}
	}
}

// TestConfigDir verifies config directory resolution.
func TestConfigDir(t *testing.T) {
	t.Run("with env var", func(t *testing.T) {
		customDir := t.TempDir()
		t.Setenv("MEETMIND_CONFIG_DIR", customDir)

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}
		if dir != customDir {
			t.Errorf("ConfigDir() = %v, want %v", dir, customDir)
		}
	})

	t.Run("default without env var", func(t *testing.T) {
		t.Setenv("MEETMIND_CONFIG_DIR", "")
		os.Unsetenv("MEETMIND_CONFIG_DIR")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultConfigDir)
		if dir != expected {
			t.Errorf("ConfigDir() = %v, want %v", dir, expected)
		}
	})
}

// TestLoadConfig_Defaults verifies default values when no config exists.
func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MEETMIND_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.OutputFormat != DefaultOutputFormat {
		t.Errorf("OutputFormat = %v, want %v", cfg.OutputFormat, DefaultOutputFormat)
	}
	if cfg.Index.Dimension != DefaultVectorDimension {
		t.Errorf("Index.Dimension = %v, want %v", cfg.Index.Dimension, DefaultVectorDimension)
	}
	if cfg.Index.Dir == "" {
		t.Error("Index.Dir should be resolved to a default path")
	}
}

// TestLoadConfig_WithEnvOverrides verifies environment variable overrides.
func TestLoadConfig_WithEnvOverrides(t *testing.T) {
	t.Setenv("MEETMIND_CONFIG_DIR", t.TempDir())
	t.Setenv("MEETMIND_OUTPUT_FORMAT", "json")
	t.Setenv("MEETMIND_DEBUG", "true")
	t.Setenv("MEETMIND_WINDOW_UTTERANCES", "20")
	t.Setenv("MEETMIND_INDEX_DIR", "/tmp/meetmind-index")
	t.Setenv("MEETMIND_INDEX_DIMENSION", "128")
	t.Setenv("MEETMIND_POSTGRES_DSN", "postgres://localhost/meetmind")
	t.Setenv("MEETMIND_REDIS_ADDR", "localhost:6379")
	t.Setenv("MEETMIND_CACHE_TTL", "30m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.OutputFormat != OutputFormatJSON {
		t.Errorf("OutputFormat = %v, want json", cfg.OutputFormat)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.Analysis.WindowUtterances != 20 {
		t.Errorf("WindowUtterances = %v, want 20", cfg.Analysis.WindowUtterances)
	}
	if cfg.Index.Dir != "/tmp/meetmind-index" {
		t.Errorf("Index.Dir = %v, want /tmp/meetmind-index", cfg.Index.Dir)
	}
	if cfg.Index.Dimension != 128 {
		t.Errorf("Index.Dimension = %v, want 128", cfg.Index.Dimension)
	}
	if cfg.Storage == nil {
		t.Fatal("Storage should be configured")
	}
	if cfg.Storage.PostgresDSN != "postgres://localhost/meetmind" {
		t.Errorf("PostgresDSN = %v", cfg.Storage.PostgresDSN)
	}
	if cfg.Storage.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %v", cfg.Storage.RedisAddr)
	}
	if cfg.Storage.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.Storage.CacheTTL)
	}
}

// TestLoadConfig_FromFile verifies YAML file loading.
func TestLoadConfig_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("MEETMIND_CONFIG_DIR", tempDir)

	yaml := `
output_format: yaml
debug: true
analysis:
  window_utterances: 15
  window_minutes: 10
index:
  dir: /var/lib/meetmind/index
  dimension: 256
  chunk_size: 800
  chunk_overlap: 100
storage:
  postgres_dsn: postgres://db.local/meetmind
  redis_addr: cache.local:6379
  cache_ttl: 1h
`
	if err := os.WriteFile(filepath.Join(tempDir, DefaultConfigFile), []byte(yaml), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.OutputFormat != OutputFormatYAML {
		t.Errorf("OutputFormat = %v, want yaml", cfg.OutputFormat)
	}
	if cfg.Analysis.WindowUtterances != 15 {
		t.Errorf("WindowUtterances = %v, want 15", cfg.Analysis.WindowUtterances)
	}
	if cfg.Analysis.WindowMinutes != 10 {
		t.Errorf("WindowMinutes = %v, want 10", cfg.Analysis.WindowMinutes)
	}
	if cfg.Index.Dir != "/var/lib/meetmind/index" {
		t.Errorf("Index.Dir = %v", cfg.Index.Dir)
	}
	if cfg.Index.Dimension != 256 {
		t.Errorf("Index.Dimension = %v, want 256", cfg.Index.Dimension)
	}
	if cfg.Index.ChunkSize != 800 {
		t.Errorf("Index.ChunkSize = %v, want 800", cfg.Index.ChunkSize)
	}
	if cfg.Storage == nil || cfg.Storage.CacheTTL != time.Hour {
		t.Errorf("Storage.CacheTTL not loaded: %+v", cfg.Storage)
	}
}

// TestLoadConfig_EnvOverridesFile verifies precedence: env beats file.
func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("MEETMIND_CONFIG_DIR", tempDir)

	yaml := "output_format: yaml\n"
	if err := os.WriteFile(filepath.Join(tempDir, DefaultConfigFile), []byte(yaml), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("MEETMIND_OUTPUT_FORMAT", "json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputFormat != OutputFormatJSON {
		t.Errorf("OutputFormat = %v, want json (env should win)", cfg.OutputFormat)
	}
}

// TestCLIConfig_Validate verifies configuration validation.
func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CLIConfig)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*CLIConfig) {},
			wantErr: false,
		},
		{
			name:    "invalid output format",
			mutate:  func(c *CLIConfig) { c.OutputFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "zero dimension",
			mutate:  func(c *CLIConfig) { c.Index.Dimension = 0 },
			wantErr: true,
		},
		{
			name:    "overlap not smaller than chunk size",
			mutate:  func(c *CLIConfig) { c.Index.ChunkOverlap = c.Index.ChunkSize },
			wantErr: true,
		},
		{
			name:    "zero window utterances",
			mutate:  func(c *CLIConfig) { c.Analysis.WindowUtterances = 0 },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

// TestSaveConfig verifies round-tripping through the config file.
func TestSaveConfig(t *testing.T) {
	t.Setenv("MEETMIND_CONFIG_DIR", t.TempDir())

	cfg := DefaultConfig()
	cfg.OutputFormat = OutputFormatJSON
	cfg.Analysis.WindowUtterances = 25

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.OutputFormat != OutputFormatJSON {
		t.Errorf("OutputFormat = %v, want json", loaded.OutputFormat)
	}
	if loaded.Analysis.WindowUtterances != 25 {
		t.Errorf("WindowUtterances = %v, want 25", loaded.Analysis.WindowUtterances)
	}
}

// TestEnsureConfigDir verifies directory creation.
func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	t.Setenv("MEETMIND_CONFIG_DIR", dir)

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("config path is not a directory")
	}
}
