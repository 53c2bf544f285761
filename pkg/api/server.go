// Package api exposes the HTTP surface of the orchestrator: request intake,
// plan lifecycle, approvals, registry administration, health, and the
// WebSocket event stream. Handlers stay thin; all behavior lives in the
// service layer and the domain packages.
package api

import (
	"context"
	"net/http"
	"os"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/database"
	"github.com/codeready-toolchain/maestro/pkg/events"
	"github.com/codeready-toolchain/maestro/pkg/queue"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	workflows   *services.WorkflowService
	plans       *services.PlanService
	gate        *approval.Gate
	registry    *registry.Registry
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	workflows *services.WorkflowService,
	plans *services.PlanService,
	gate *approval.Gate,
	reg *registry.Registry,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		workflows:   workflows,
		plans:       plans,
		gate:        gate,
		registry:    reg,
		workerPool:  workerPool,
		connManager: connManager,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	// Unauthenticated probes and metrics.
	e.GET("/health", s.healthHandler)
	e.GET("/health/system", s.systemHealthHandler)
	e.GET("/metrics", func(c *echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	var token string
	if s.cfg != nil && s.cfg.Server != nil && s.cfg.Server.AuthTokenEnv != "" {
		token = os.Getenv(s.cfg.Server.AuthTokenEnv)
	}

	e.GET("/ws", s.wsHandler, bearerAuth(token))

	api := e.Group("/api/v1", bearerAuth(token))

	// Request intake.
	api.POST("/requests", s.createRequestHandler)

	// Workflows.
	api.GET("/workflows", s.listWorkflowsHandler)
	api.GET("/workflows/:id", s.getWorkflowHandler)
	api.GET("/workflows/:id/events", s.workflowEventsHandler)
	api.POST("/workflows/:id/cancel", s.cancelWorkflowHandler)

	// Plans.
	api.POST("/plans", s.createPlanHandler)
	api.GET("/plans/:id", s.getPlanHandler)
	api.GET("/plans/:id/steps", s.planStepsHandler)
	api.GET("/plans/:id/tree", s.planTreeHandler)
	api.GET("/plans/:id/alternatives", s.planAlternativesHandler)
	api.GET("/plans/:id/execution-state", s.planExecutionStateHandler)
	api.POST("/plans/:id/approve", s.approvePlanHandler)
	api.POST("/plans/:id/execute", s.executePlanHandler)
	api.POST("/plans/:id/replan", s.replanHandler)
	api.POST("/plans/:id/pause", s.pausePlanHandler)
	api.POST("/plans/:id/resume", s.resumePlanHandler)

	// Approvals.
	api.GET("/approvals", s.listApprovalsHandler)
	api.GET("/approvals/:id", s.getApprovalHandler)
	api.POST("/approvals/:id/approve", s.approveHandler)
	api.POST("/approvals/:id/reject", s.rejectHandler)
	api.POST("/approvals/:id/modify", s.modifyHandler)

	// Registry: prompts.
	api.POST("/prompts", s.publishPromptHandler)
	api.GET("/prompts/:id/versions/:version", s.getPromptHandler)
	api.POST("/prompt-assignments", s.assignPromptHandler)

	// Registry: agents and tools.
	api.GET("/agents", s.listAgentsHandler)
	api.POST("/agents", s.createAgentHandler)
	api.GET("/agents/:name", s.getAgentHandler)
	api.PUT("/agents/:name", s.updateAgentHandler)
	api.POST("/agents/:name/status", s.transitionAgentHandler)
	api.GET("/tools", s.listToolsHandler)
	api.POST("/tools", s.createToolHandler)
	api.GET("/tools/:name", s.getToolHandler)
	api.POST("/tools/:name/status", s.transitionToolHandler)

	// Registry: model endpoints.
	api.GET("/models", s.listModelsHandler)
	api.GET("/models/:name", s.getModelHandler)

	return e
}

// Start begins serving on the given address. Blocks until the listener
// closes; returns http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
