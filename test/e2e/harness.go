package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/maestro/ent"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/checkpoint"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/executor"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/orchestrator"
	"github.com/codeready-toolchain/maestro/pkg/planner"
	"github.com/codeready-toolchain/maestro/pkg/queue"
	"github.com/codeready-toolchain/maestro/pkg/reflector"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
	"github.com/codeready-toolchain/maestro/pkg/services"
	"github.com/codeready-toolchain/maestro/test/util"
)

// TestApp wires the full pipeline against a real PostgreSQL database with a
// scripted LLM in place of the gateway. Mirrors the production wiring in
// cmd/maestro minus the HTTP server and streaming infrastructure.
type TestApp struct {
	Client    *ent.Client
	Config    *config.Config
	LLM       *ScriptedLLMClient
	Log       *eventlog.Log
	Registry  *registry.Registry
	Queue     *queue.Queue
	Sandbox   *sandbox.Sandbox
	Gate      *approval.Gate
	Pool      *queue.WorkerPool
	Workflows *services.WorkflowService
}

// TestAppOption customizes the harness before wiring.
type TestAppOption func(*testAppSettings)

type testAppSettings struct {
	cfg *config.Config
	llm *ScriptedLLMClient
}

// WithConfig mutates the test configuration before components are built.
func WithConfig(fn func(*config.Config)) TestAppOption {
	return func(s *testAppSettings) { fn(s.cfg) }
}

// WithLLMClient injects a pre-built scripted client.
func WithLLMClient(llm *ScriptedLLMClient) TestAppOption {
	return func(s *testAppSettings) { s.llm = llm }
}

// WithWorkerCount overrides the worker pool size.
func WithWorkerCount(n int) TestAppOption {
	return func(s *testAppSettings) { s.cfg.Queue.WorkerCount = n }
}

func testConfig() *config.Config {
	cfg := &config.Config{
		LLM:       &config.LLMConfig{},
		Planner:   config.DefaultPlannerConfig(),
		Approval:  config.DefaultApprovalConfig(),
		Queue:     config.DefaultQueueConfig(),
		Sandbox:   config.DefaultSandboxConfig(),
		Gateway:   config.DefaultGatewayConfig(),
		Retention: config.DefaultRetentionConfig(),
		Notifier:  config.DefaultNotifierConfig(),
		Server:    config.DefaultServerConfig(),
		Features:  config.DefaultFeatureFlags(),
	}

	// Tight polling so scenarios finish in seconds, not minutes.
	cfg.Queue.WorkerCount = 2
	cfg.Queue.PollInterval = 100 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	cfg.Queue.Defaults.BaseBackoffMS = 50
	cfg.Queue.Defaults.MaxBackoffMS = 200
	cfg.Queue.WorkflowTimeout = 60 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	cfg.Queue.HeartbeatInterval = 1 * time.Second
	return cfg
}

// NewTestApp builds the pipeline on a fresh test schema and starts the worker
// pool. Everything shuts down via t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	settings := &testAppSettings{cfg: testConfig()}
	for _, opt := range opts {
		opt(settings)
	}
	if settings.llm == nil {
		settings.llm = NewScriptedLLMClient()
	}
	cfg := settings.cfg

	// 1. Database (per-test schema, dropped on cleanup)
	entClient, _ := util.SetupTestDatabase(t)

	// 2. Event log and registry
	log := eventlog.New(entClient)
	reg := registry.New(entClient)
	require.NoError(t, reg.Seed(ctx, *cfg.LLM))

	// 3. Queue and pipeline components
	q := queue.New(entClient, log, *cfg.Queue)
	sb := sandbox.New(sandbox.Limits{
		WallMS: cfg.Sandbox.Limits.WallMS,
		MemMB:  cfg.Sandbox.Limits.MemMB,
		CPUMS:  cfg.Sandbox.Limits.CPUMS,
	})
	checkpoints := checkpoint.New(entClient)
	plnr := planner.New(entClient, *cfg.Planner)
	gate := approval.New(entClient, log, reg, nil, *cfg.Approval)
	exec := executor.New(entClient, q)
	refl := reflector.New(entClient, reg, gate)

	// 4. Orchestrator with the scripted generator in the gateway seat
	orch := orchestrator.New(entClient, log, reg, settings.llm, sb, checkpoints, plnr, gate, exec, refl, cfg)

	// 5. Worker pool and workflow service
	pool := queue.NewWorkerPool(entClient, q, orch, nil, *cfg.Queue)
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	workflows := services.NewWorkflowService(entClient, q, log, pool)

	return &TestApp{
		Client:    entClient,
		Config:    cfg,
		LLM:       settings.llm,
		Log:       log,
		Registry:  reg,
		Queue:     q,
		Sandbox:   sb,
		Gate:      gate,
		Pool:      pool,
		Workflows: workflows,
	}
}

// Submit creates a workflow and returns it after the intake enqueue.
func (a *TestApp) Submit(t *testing.T, req models.CreateWorkflowRequest) *ent.Workflow {
	t.Helper()
	wf, err := a.Workflows.CreateWorkflow(context.Background(), req)
	require.NoError(t, err)
	return wf
}

// AwaitTerminal blocks until the workflow reaches a terminal status or the
// timeout elapses.
func (a *TestApp) AwaitTerminal(t *testing.T, workflowID string, timeout time.Duration) *models.WorkflowResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, err := a.Workflows.Await(ctx, workflowID)
	require.NoError(t, err, "workflow %s did not reach a terminal status", workflowID)
	return result
}

// PendingApproval polls until an approval request for the workflow shows up.
func (a *TestApp) PendingApproval(t *testing.T, workflowID string, timeout time.Duration) *ent.ApprovalRequest {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		pending, err := a.Gate.Pending(context.Background())
		require.NoError(t, err)
		for _, req := range pending {
			if req.WorkflowID == workflowID {
				return req
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("no pending approval request for workflow %s within %s", workflowID, timeout)
	return nil
}

// EventsOf returns the full event trail for a workflow in sequence order.
func (a *TestApp) EventsOf(t *testing.T, workflowID string) []*models.EventRecord {
	t.Helper()
	events, err := a.Workflows.Events(context.Background(), workflowID, models.EventFilters{})
	require.NoError(t, err)
	return events
}

// PlansOf returns the workflow's plans ordered by version.
func (a *TestApp) PlansOf(t *testing.T, workflowID string) []*ent.Plan {
	t.Helper()
	plans, err := a.Client.Plan.Query().
		Where(entplan.WorkflowID(workflowID)).
		Order(ent.Asc(entplan.FieldVersion)).
		All(context.Background())
	require.NoError(t, err)
	return plans
}

// StepsOf returns a plan's steps ordered by index.
func (a *TestApp) StepsOf(t *testing.T, planID string) []*ent.Step {
	t.Helper()
	steps, err := a.Client.Step.Query().
		Where(entstep.PlanID(planID)).
		Order(ent.Asc(entstep.FieldIndex)).
		All(context.Background())
	require.NoError(t, err)
	return steps
}
