package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/maestro/pkg/database"
	"github.com/codeready-toolchain/maestro/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the platform's own components (database, worker pool) are checked.
// External dependencies (LLM endpoints) are excluded so a flaky provider
// cannot make the orchestrator restart this process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health(reqCtx)
		if poolHealth.HealthyWorkers < poolHealth.Workers {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: "some workers unhealthy"}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// systemHealthHandler handles GET /health/system. It reports the full
// platform picture including LLM endpoint health and live connections.
func (s *Server) systemHealthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	response := &SystemHealthResponse{
		Status:        healthStatusHealthy,
		Version:       version.GitCommit,
		Endpoints:     []EndpointHealth{},
		Configuration: configStats(s.cfg),
	}

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	response.Database = dbHealth
	if err != nil {
		response.Status = healthStatusUnhealthy
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health(reqCtx)
		response.WorkerPool = &poolHealth
		if poolHealth.HealthyWorkers < poolHealth.Workers && response.Status == healthStatusHealthy {
			response.Status = healthStatusDegraded
		}
	}

	if s.registry != nil {
		endpoints, err := s.registry.ListEndpoints(reqCtx)
		if err == nil {
			anyHealthy := len(endpoints) == 0
			for _, ep := range endpoints {
				response.Endpoints = append(response.Endpoints, EndpointHealth{
					Name:        ep.Name,
					Model:       ep.Model,
					Status:      string(ep.Status),
					Healthy:     ep.Healthy,
					AvgLatency:  ep.AvgLatencyMs,
					Successes:   ep.Successes,
					Failures:    ep.Failures,
					LastChecked: ep.LastHealthCheck.Format(time.RFC3339),
				})
				if ep.Healthy {
					anyHealthy = true
				}
			}
			if !anyHealthy && response.Status == healthStatusHealthy {
				response.Status = healthStatusDegraded
			}
		}
	}

	if s.connManager != nil {
		response.ActiveConnections = s.connManager.ActiveConnections()
	}

	httpStatus := http.StatusOK
	if response.Status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, response)
}
