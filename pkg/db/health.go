package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthStatus reports the result of a connectivity check.
type HealthStatus struct {
	Healthy       bool
	Latency       time.Duration
	TotalConns    int32
	IdleConns     int32
	AcquiredConns int32
	Error         error
}

// Check pings the database and snapshots the pool statistics.
func Check(ctx context.Context, pool *pgxpool.Pool) HealthStatus {
	if pool == nil {
		return HealthStatus{Error: errors.New("pool is nil")}
	}

	start := time.Now()
	if err := pool.Ping(ctx); err != nil {
		return HealthStatus{
			Latency: time.Since(start),
			Error:   fmt.Errorf("ping failed: %w", err),
		}
	}

	stats := pool.Stat()
	return HealthStatus{
		Healthy:       true,
		Latency:       time.Since(start),
		TotalConns:    stats.TotalConns(),
		IdleConns:     stats.IdleConns(),
		AcquiredConns: stats.AcquiredConns(),
	}
}
