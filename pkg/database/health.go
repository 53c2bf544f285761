package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the database slice of /health/system: liveness plus the
// connection pool counters that matter when workers starve for connections.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and snapshots pool statistics. On ping failure
// the partial status is returned alongside the error so callers can still
// report the response time.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		return &HealthStatus{Status: "unhealthy", ResponseTime: elapsed}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    elapsed,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
