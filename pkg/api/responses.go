package api

import (
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/database"
	"github.com/codeready-toolchain/maestro/pkg/queue"
)

// AcceptedResponse is returned with 202 when a synchronous request exceeds
// its wait budget and the caller should poll instead.
type AcceptedResponse struct {
	WorkflowID string `json:"workflow_id"`
	SessionID  string `json:"session_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// CancelResponse is returned by POST /api/v1/workflows/:id/cancel.
type CancelResponse struct {
	WorkflowID string `json:"workflow_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// HealthCheck is a single component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// EndpointHealth summarizes one LLM endpoint for the system health report.
type EndpointHealth struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Status      string  `json:"status"`
	Healthy     bool    `json:"healthy"`
	AvgLatency  float64 `json:"avg_latency_ms"`
	Successes   int64   `json:"successes"`
	Failures    int64   `json:"failures"`
	LastChecked string  `json:"last_checked"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	Endpoints int `json:"endpoints"`
	Features  int `json:"features"`
}

// SystemHealthResponse is returned by GET /health/system. Unlike /health it
// includes external dependencies, so it is meant for dashboards rather than
// liveness probes.
type SystemHealthResponse struct {
	Status            string                 `json:"status"`
	Version           string                 `json:"version"`
	Database          *database.HealthStatus `json:"database,omitempty"`
	WorkerPool        *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Endpoints         []EndpointHealth       `json:"endpoints"`
	ActiveConnections int                    `json:"active_connections"`
	Configuration     ConfigurationStats     `json:"configuration"`
}

func configStats(cfg *config.Config) ConfigurationStats {
	if cfg == nil {
		return ConfigurationStats{}
	}
	stats := cfg.Stats()
	return ConfigurationStats{
		Endpoints: stats.Endpoints,
		Features:  stats.Features,
	}
}
