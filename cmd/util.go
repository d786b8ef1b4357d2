// Package cmd provides CLI commands for the meetmind tool.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/otherjamesbrown/meetmind/config"
	"github.com/otherjamesbrown/meetmind/pkg/db"
	"github.com/otherjamesbrown/meetmind/pkg/logging"
	"github.com/otherjamesbrown/meetmind/pkg/store"
)

// newCLILogger builds the logger used by commands. Debug mode enables
// verbose console output; otherwise only warnings and errors surface so
// command results stay readable.
func newCLILogger(cfg *config.CLIConfig) logging.Logger {
	level := logging.LevelWarn
	if cfg.Debug {
		level = logging.LevelDebug
	}
	return logging.NewLogger(&logging.Config{
		Level:       level,
		ServiceName: "meetmind",
		JSONFormat:  false,
	})
}

// connectToRedis establishes a Redis connection.
func connectToRedis(ctx context.Context, storage *config.StorageConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     storage.RedisAddr,
		Password: storage.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("testing connection: %w", err)
	}

	return client, nil
}

// openRepository builds the configured analysis store: Postgres,
// optionally fronted by a Redis cache. Returns ErrStorageNotConfigured
// when no DSN is set. The returned closer releases all connections.
func openRepository(ctx context.Context, cfg *config.CLIConfig, logger logging.Logger) (store.Repository, func(), error) {
	if !cfg.Storage.IsConfigured() {
		return nil, nil, ErrStorageNotConfigured
	}

	pool, err := db.Connect(ctx, cfg.Storage.PostgresDSN, db.DefaultOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if _, err := db.RegisterPoolCollector(pool, "cli", prometheus.DefaultRegisterer); err != nil {
		logger.Warn("Failed to register pool stats collector", logging.Err(err))
	}
	if cfg.Debug {
		health := db.Check(ctx, pool)
		logger.Debug("database connected",
			logging.F("latency", health.Latency),
			logging.F("total_conns", int64(health.TotalConns)))
	}

	repo, err := store.NewPostgres(ctx, pool, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	if cfg.Storage.RedisAddr == "" {
		return repo, pool.Close, nil
	}

	client, err := connectToRedis(ctx, cfg.Storage)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	cached := store.NewCached(repo, client, cfg.Storage.CacheTTL, logger)
	closer := func() {
		client.Close()
		pool.Close()
	}
	return cached, closer, nil
}

// ErrStorageNotConfigured is returned by commands that need a database
// when none is configured.
var ErrStorageNotConfigured = fmt.Errorf(
	"storage is not configured: set storage.postgres_dsn in %s or MEETMIND_POSTGRES_DSN",
	config.DefaultConfigFile)

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML writes v as a YAML document.
func outputYAML(w io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
