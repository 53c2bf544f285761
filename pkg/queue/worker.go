package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/workflow"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// WorkflowExecutor runs one workflow to completion. The executor owns the
// terminal workflow status; the worker only provides the lease, heartbeat,
// and a failure fallback when the executor dies without writing one.
type WorkflowExecutor interface {
	Execute(ctx context.Context, workflowID string) error
}

// Notifier is told about terminal workflows. May be nil.
type Notifier interface {
	WorkflowCompleted(ctx context.Context, workflowID string, status models.WorkflowStatus, response string)
}

// Permanent wraps an executor error that must not be retried: the task goes
// straight to dead instead of requeueing.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string { return p.Err.Error() }
func (p *Permanent) Unwrap() error { return p.Err }

// registry is the slice of the pool a worker needs: cancellation tracking
// for the workflows it is running.
type registry interface {
	registerWorkflow(workflowID string, cancel context.CancelFunc)
	unregisterWorkflow(workflowID string)
}

// Worker polls the workflow queue and drives claimed workflows through the
// executor. Each worker processes one workflow at a time.
type Worker struct {
	id       string
	client   *ent.Client
	queue    *Queue
	pool     registry
	executor WorkflowExecutor
	notifier Notifier
	cfg      config.QueueConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	healthy  atomic.Bool
	active   atomic.Int64
}

func newWorker(id string, client *ent.Client, q *Queue, pool registry, executor WorkflowExecutor, notifier Notifier, cfg config.QueueConfig) *Worker {
	w := &Worker{
		id:       id,
		client:   client,
		queue:    q,
		pool:     pool,
		executor: executor,
		notifier: notifier,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
	w.healthy.Store(true)
	return w
}

// run is the worker loop: claim, process, sleep, repeat until stopped.
func (w *Worker) run(ctx context.Context) {
	slog.Info("Workflow worker started", "worker_id", w.id)
	for {
		select {
		case <-w.stopCh:
			slog.Info("Workflow worker stopped", "worker_id", w.id)
			return
		case <-ctx.Done():
			return
		default:
		}

		task, err := w.claim(ctx)
		if err != nil {
			if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
				w.healthy.Store(true)
			} else {
				w.healthy.Store(false)
				slog.Error("Failed to claim workflow task", "worker_id", w.id, "error", err)
			}
			w.sleep(w.pollInterval())
			continue
		}
		w.healthy.Store(true)
		w.process(ctx, task)
	}
}

func (w *Worker) stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// claim leases the next runnable workflow task, honoring the global
// concurrency ceiling across replicas.
func (w *Worker) claim(ctx context.Context) (*ent.QueueTask, error) {
	return w.queue.Lease(ctx, w.id, QueueWorkflows, w.cfg.MaxConcurrentWorkflows)
}

// process runs one claimed workflow end to end.
func (w *Worker) process(ctx context.Context, task *ent.QueueTask) {
	workflowID, _ := task.Payload["workflow_id"].(string)
	if workflowID == "" {
		slog.Error("Workflow task has no workflow_id", "task_id", task.ID)
		_ = w.queue.Fail(context.Background(), task.ID, "malformed payload: missing workflow_id", false)
		return
	}

	wf, err := w.markRunning(ctx, workflowID)
	if err != nil {
		slog.Error("Failed to mark workflow running", "workflow_id", workflowID, "error", err)
		_ = w.queue.Fail(context.Background(), task.ID, err.Error(), true)
		return
	}
	if wf == nil {
		// Already terminal (cancelled before any worker picked it up).
		_ = w.queue.Succeed(context.Background(), task.ID)
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, w.cfg.WorkflowTimeout)
	defer cancel()
	w.pool.registerWorkflow(workflowID, cancel)
	defer w.pool.unregisterWorkflow(workflowID)

	heartbeatDone := make(chan struct{})
	go w.heartbeat(runCtx, task.ID, workflowID, heartbeatDone)
	defer close(heartbeatDone)

	w.active.Add(1)
	metricActiveWorkflows.Inc()
	start := time.Now()
	execErr := w.executor.Execute(runCtx, workflowID)
	metricActiveWorkflows.Dec()
	w.active.Add(-1)

	// Terminal bookkeeping survives caller cancellation.
	bg := context.Background()
	w.ensureTerminal(bg, workflowID, runCtx, execErr)

	if execErr == nil {
		_ = w.queue.Succeed(bg, task.ID)
	} else {
		var perm *Permanent
		retry := !errors.As(execErr, &perm) &&
			!errors.Is(execErr, context.Canceled) &&
			!errors.Is(execErr, context.DeadlineExceeded)
		_ = w.queue.Fail(bg, task.ID, execErr.Error(), retry)
	}

	slog.Info("Workflow run finished",
		"worker_id", w.id,
		"workflow_id", workflowID,
		"duration", time.Since(start).Round(time.Millisecond),
		"error", execErr)
	w.notifyTerminal(bg, workflowID)
}

// markRunning claims the workflow row for this worker. Returns nil when the
// workflow is already terminal and there is nothing to run.
func (w *Worker) markRunning(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := w.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	if models.WorkflowStatus(wf.Status).IsTerminal() {
		return nil, nil
	}

	wf, err = wf.Update().
		SetStatus(workflow.StatusRunning).
		SetWorkerID(w.id).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}
	return wf, nil
}

// heartbeat extends the task lease and the workflow heartbeat while the
// executor works. Losing the lease means a reaper decided this worker was
// dead; cancel the run rather than race a second claimant.
func (w *Worker) heartbeat(ctx context.Context, taskID, workflowID string, done <-chan struct{}) {
	interval := w.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.queue.ExtendLease(ctx, taskID, w.id); err != nil {
				slog.Warn("Lost workflow lease, abandoning run",
					"worker_id", w.id, "workflow_id", workflowID, "error", err)
				w.pool.unregisterWorkflow(workflowID)
				return
			}
			err := w.client.Workflow.UpdateOneID(workflowID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx)
			if err != nil {
				slog.Warn("Failed to record workflow heartbeat",
					"workflow_id", workflowID, "error", err)
			}
		}
	}
}

// ensureTerminal writes a terminal status when the executor did not. The
// orchestrator normally sets completed/failed itself; this is the fallback
// for panics upstream, timeouts, and cancellation.
func (w *Worker) ensureTerminal(ctx context.Context, workflowID string, runCtx context.Context, execErr error) {
	wf, err := w.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		slog.Error("Failed to reload workflow for terminal check", "workflow_id", workflowID, "error", err)
		return
	}
	if models.WorkflowStatus(wf.Status).IsTerminal() || wf.Status == workflow.StatusPaused {
		return
	}

	status := workflow.StatusFailed
	reason := "executor_error"
	switch {
	case execErr == nil:
		status = workflow.StatusCompleted
		reason = ""
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		reason = "workflow_timeout"
	case errors.Is(execErr, context.Canceled):
		status = workflow.StatusCancelled
		reason = "cancelled"
	}

	update := w.client.Workflow.UpdateOneID(workflowID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if reason != "" {
		update.SetReasonCode(reason)
	}
	if execErr != nil {
		update.SetErrorKind("execution_error")
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to write terminal workflow status", "workflow_id", workflowID, "error", err)
	}
}

func (w *Worker) notifyTerminal(ctx context.Context, workflowID string) {
	if w.notifier == nil {
		return
	}
	wf, err := w.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		return
	}
	status := models.WorkflowStatus(wf.Status)
	if !status.IsTerminal() {
		return
	}
	response := ""
	if wf.Response != nil {
		response = *wf.Response
	}
	w.notifier.WorkflowCompleted(ctx, workflowID, status, response)
}

// pollInterval returns the next sleep with jitter so workers of one pod do
// not stampede the queue table.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	if base <= 0 {
		base = time.Second
	}
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 || jitter >= base {
		return base
	}
	return base - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
}

// sleep waits for d unless the worker is stopped first.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}
