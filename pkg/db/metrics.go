package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// poolGauge pairs a metric descriptor with the pool stat it reports.
type poolGauge struct {
	desc  *prometheus.Desc
	value func(*pgxpool.Stat) float64
}

// PoolCollector exposes pgx pool statistics as meetmind_db_pool_*
// gauges. Stats are read from the pool on every scrape so the values
// are always current. A nil pool produces no samples.
type PoolCollector struct {
	pool   *pgxpool.Pool
	gauges []poolGauge
}

// NewPoolCollector builds a collector for pool. The component label
// identifies which part of the program owns the pool.
func NewPoolCollector(pool *pgxpool.Pool, component string) *PoolCollector {
	labels := prometheus.Labels{"component": component}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName("meetmind", "db_pool", name),
			help, nil, labels)
	}

	return &PoolCollector{
		pool: pool,
		gauges: []poolGauge{
			{desc("total_conns", "Connections currently open in the pool"),
				func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }},
			{desc("idle_conns", "Idle connections in the pool"),
				func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }},
			{desc("acquired_conns", "Connections currently checked out of the pool"),
				func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }},
			{desc("max_conns", "Maximum connections the pool may open"),
				func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }},
		},
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, g := range c.gauges {
		ch <- g.desc
	}
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	if c.pool == nil {
		return
	}
	stats := c.pool.Stat()
	for _, g := range c.gauges {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, g.value(stats))
	}
}

// RegisterPoolCollector registers a pool collector with reg. Registering
// an equivalent collector twice is not an error.
func RegisterPoolCollector(pool *pgxpool.Pool, component string, reg prometheus.Registerer) (*PoolCollector, error) {
	c := NewPoolCollector(pool, component)
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
	}
	return c, nil
}
