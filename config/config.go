// Package config provides configuration for the meetmind command-line
// tool. It supports loading configuration from YAML files, environment
// variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML is YAML-formatted output for machine processing.
	OutputFormatYAML OutputFormat = "yaml"
)

// Default configuration values.
const (
	DefaultOutputFormat     = OutputFormatText
	DefaultConfigDir        = ".meetmind"
	DefaultConfigFile       = "config.yaml"
	DefaultIndexDir         = ".meetmind/index"
	DefaultVectorDimension  = 384
	DefaultChunkSize        = 500
	DefaultChunkOverlap     = 50
	DefaultWindowUtterances = 10
	DefaultWindowMinutes    = 5
	DefaultCacheTTL         = 24 * time.Hour
)

// AnalysisConfig holds transcript analysis settings.
type AnalysisConfig struct {
	// WindowUtterances is the number of utterances per engagement window.
	WindowUtterances int `yaml:"window_utterances,omitempty"`

	// WindowMinutes is the synthetic minute span per window label.
	WindowMinutes int `yaml:"window_minutes,omitempty"`

	// MaxTextLength caps the combined transcript text fed to the
	// extraction stages. Zero means the built-in default.
	MaxTextLength int `yaml:"max_text_length,omitempty"`
}

// IndexConfig holds vector index settings.
type IndexConfig struct {
	// Dir is the directory holding the index files. Supports ~ expansion.
	Dir string `yaml:"dir,omitempty"`

	// Dimension is the vector dimensionality. All indexed vectors and
	// every query must match it.
	Dimension int `yaml:"dimension,omitempty"`

	// ChunkSize is the character length of document chunks.
	ChunkSize int `yaml:"chunk_size,omitempty"`

	// ChunkOverlap is the character overlap between adjacent chunks.
	ChunkOverlap int `yaml:"chunk_overlap,omitempty"`
}

// ResolvePaths expands ~ in the index directory and applies defaults.
func (c *IndexConfig) ResolvePaths() {
	if c.Dir == "" {
		c.Dir = "~/" + DefaultIndexDir
	}
	c.Dir = expandPath(c.Dir)
}

// StorageConfig holds optional external storage settings. When Postgres
// is not configured, analyses live only in the command output.
type StorageConfig struct {
	// PostgresDSN is the PostgreSQL connection string for persisting
	// analyses and the participant directory.
	PostgresDSN string `yaml:"postgres_dsn,omitempty"`

	// RedisAddr enables the analysis read-through cache when set
	// (host:port).
	RedisAddr string `yaml:"redis_addr,omitempty"`

	// RedisPassword is the optional Redis auth password.
	RedisPassword string `yaml:"redis_password,omitempty"`

	// CacheTTL is how long cached analyses stay valid.
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`
}

// IsConfigured returns true if a Postgres DSN is set.
func (c *StorageConfig) IsConfigured() bool {
	return c != nil && c.PostgresDSN != ""
}

// CLIConfig holds the CLI configuration settings.
type CLIConfig struct {
	// OutputFormat specifies the default output format for commands.
	OutputFormat OutputFormat `yaml:"output_format"`

	// Debug enables verbose debug logging.
	Debug bool `yaml:"debug,omitempty"`

	// Analysis contains transcript analysis settings.
	Analysis AnalysisConfig `yaml:"analysis,omitempty"`

	// Index contains vector index settings.
	Index IndexConfig `yaml:"index,omitempty"`

	// Storage contains optional Postgres and Redis settings.
	Storage *StorageConfig `yaml:"storage,omitempty"`
}

// DefaultConfig returns a CLIConfig with default values.
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		OutputFormat: DefaultOutputFormat,
		Analysis: AnalysisConfig{
			WindowUtterances: DefaultWindowUtterances,
			WindowMinutes:    DefaultWindowMinutes,
		},
		Index: IndexConfig{
			Dimension:    DefaultVectorDimension,
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
		},
	}
}

// ConfigDir returns the configuration directory path.
// Uses $MEETMIND_CONFIG_DIR if set, otherwise ~/.meetmind
func ConfigDir() (string, error) {
	if dir := os.Getenv("MEETMIND_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// LoadConfig loads the CLI configuration from file and environment variables.
// Configuration is loaded in this order (later sources override earlier):
// 1. Default values
// 2. Config file (~/.meetmind/config.yaml or $MEETMIND_CONFIG_DIR/config.yaml)
// 3. Environment variables (MEETMIND_OUTPUT_FORMAT, MEETMIND_INDEX_DIR, ...)
func LoadConfig() (*CLIConfig, error) {
	cfg := DefaultConfig()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.Index.ResolvePaths()

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *CLIConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	// A temp struct so the cache TTL can be written as a duration string.
	type storageFile struct {
		PostgresDSN   string `yaml:"postgres_dsn"`
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		CacheTTL      string `yaml:"cache_ttl"`
	}
	type configFile struct {
		OutputFormat OutputFormat   `yaml:"output_format"`
		Debug        bool           `yaml:"debug"`
		Analysis     AnalysisConfig `yaml:"analysis"`
		Index        IndexConfig    `yaml:"index"`
		Storage      *storageFile   `yaml:"storage"`
	}

	var fileCfg configFile
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.OutputFormat != "" {
		cfg.OutputFormat = fileCfg.OutputFormat
	}
	cfg.Debug = fileCfg.Debug

	if fileCfg.Analysis.WindowUtterances > 0 {
		cfg.Analysis.WindowUtterances = fileCfg.Analysis.WindowUtterances
	}
	if fileCfg.Analysis.WindowMinutes > 0 {
		cfg.Analysis.WindowMinutes = fileCfg.Analysis.WindowMinutes
	}
	if fileCfg.Analysis.MaxTextLength > 0 {
		cfg.Analysis.MaxTextLength = fileCfg.Analysis.MaxTextLength
	}

	if fileCfg.Index.Dir != "" {
		cfg.Index.Dir = fileCfg.Index.Dir
	}
	if fileCfg.Index.Dimension > 0 {
		cfg.Index.Dimension = fileCfg.Index.Dimension
	}
	if fileCfg.Index.ChunkSize > 0 {
		cfg.Index.ChunkSize = fileCfg.Index.ChunkSize
	}
	if fileCfg.Index.ChunkOverlap > 0 {
		cfg.Index.ChunkOverlap = fileCfg.Index.ChunkOverlap
	}

	if fileCfg.Storage != nil {
		cfg.Storage = &StorageConfig{
			PostgresDSN:   fileCfg.Storage.PostgresDSN,
			RedisAddr:     fileCfg.Storage.RedisAddr,
			RedisPassword: fileCfg.Storage.RedisPassword,
		}
		if fileCfg.Storage.CacheTTL != "" {
			ttl, err := time.ParseDuration(fileCfg.Storage.CacheTTL)
			if err != nil {
				return fmt.Errorf("parsing cache_ttl: %w", err)
			}
			cfg.Storage.CacheTTL = ttl
		}
	}

	return nil
}

// loadFromEnv overlays environment variables onto the configuration.
func loadFromEnv(cfg *CLIConfig) {
	if v := os.Getenv("MEETMIND_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = OutputFormat(v)
	}

	if v := os.Getenv("MEETMIND_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}

	if v := os.Getenv("MEETMIND_WINDOW_UTTERANCES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Analysis.WindowUtterances = n
		}
	}

	if v := os.Getenv("MEETMIND_INDEX_DIR"); v != "" {
		cfg.Index.Dir = v
	}

	if v := os.Getenv("MEETMIND_INDEX_DIMENSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Index.Dimension = n
		}
	}

	if v := os.Getenv("MEETMIND_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Index.ChunkSize = n
		}
	}

	if v := os.Getenv("MEETMIND_CHUNK_OVERLAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Index.ChunkOverlap = n
		}
	}

	loadStorageFromEnv(cfg)
}

// loadStorageFromEnv overlays storage environment variables.
func loadStorageFromEnv(cfg *CLIConfig) {
	dsn := os.Getenv("MEETMIND_POSTGRES_DSN")
	redisAddr := os.Getenv("MEETMIND_REDIS_ADDR")

	if dsn == "" && redisAddr == "" {
		return // No env vars set.
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}

	if dsn != "" {
		cfg.Storage.PostgresDSN = dsn
	}
	if redisAddr != "" {
		cfg.Storage.RedisAddr = redisAddr
	}
	if v := os.Getenv("MEETMIND_REDIS_PASSWORD"); v != "" {
		cfg.Storage.RedisPassword = v
	}
	if v := os.Getenv("MEETMIND_CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Storage.CacheTTL = ttl
		}
	}
}

// Validate checks that the configuration is valid.
func (c *CLIConfig) Validate() error {
	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("invalid output_format: %q (must be text, json, or yaml)", c.OutputFormat)
	}

	if c.Index.Dimension <= 0 {
		return fmt.Errorf("index dimension must be positive")
	}

	if c.Index.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive")
	}

	if c.Index.ChunkOverlap < 0 || c.Index.ChunkOverlap >= c.Index.ChunkSize {
		return fmt.Errorf("chunk_overlap must be non-negative and smaller than chunk_size")
	}

	if c.Analysis.WindowUtterances <= 0 {
		return fmt.Errorf("window_utterances must be positive")
	}

	return nil
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *CLIConfig) error {
	configDir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("getting config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFile)

	// A temp struct so the cache TTL round-trips as a duration string.
	type storageFile struct {
		PostgresDSN   string `yaml:"postgres_dsn,omitempty"`
		RedisAddr     string `yaml:"redis_addr,omitempty"`
		RedisPassword string `yaml:"redis_password,omitempty"`
		CacheTTL      string `yaml:"cache_ttl,omitempty"`
	}
	type configFile struct {
		OutputFormat OutputFormat   `yaml:"output_format"`
		Debug        bool           `yaml:"debug,omitempty"`
		Analysis     AnalysisConfig `yaml:"analysis,omitempty"`
		Index        IndexConfig    `yaml:"index,omitempty"`
		Storage      *storageFile   `yaml:"storage,omitempty"`
	}

	fileCfg := configFile{
		OutputFormat: cfg.OutputFormat,
		Debug:        cfg.Debug,
		Analysis:     cfg.Analysis,
		Index:        cfg.Index,
	}
	if cfg.Storage != nil {
		fileCfg.Storage = &storageFile{
			PostgresDSN:   cfg.Storage.PostgresDSN,
			RedisAddr:     cfg.Storage.RedisAddr,
			RedisPassword: cfg.Storage.RedisPassword,
		}
		if cfg.Storage.CacheTTL > 0 {
			fileCfg.Storage.CacheTTL = cfg.Storage.CacheTTL.String()
		}
	}

	data, err := yaml.Marshal(&fileCfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return original if home dir lookup fails.
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
