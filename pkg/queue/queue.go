// Package queue is the Postgres-backed task queue: durable tasks, lease
// claiming via FOR UPDATE SKIP LOCKED, visibility timeouts, retry backoff,
// and the worker pool that drives workflow execution.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/queuetask"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// Logical queue ids. Step queues are per-plan: "steps:<plan_id>".
const (
	QueueWorkflows  = "workflows.run"
	QueueReflection = "reflection.run"
)

// StepQueueID returns the logical queue id for one plan's steps.
func StepQueueID(planID string) string {
	return "steps:" + planID
}

// ErrNoTasksAvailable means the queue has nothing claimable right now.
var ErrNoTasksAvailable = errors.New("no tasks available")

// ErrAtCapacity means the queue's max_concurrent leases are all taken.
var ErrAtCapacity = errors.New("queue at capacity")

// minStepVisibility floors the step-queue visibility timeout.
const minStepVisibility = 300 * time.Second

// Task is the enqueue request.
type Task struct {
	QueueID     string
	Kind        string
	Priority    int // 0 lowest, 9 highest
	Payload     map[string]any
	MaxAttempts int
}

// Queue provides durable task operations. One instance is shared by all
// workers of a process; the database serializes claims across replicas.
type Queue struct {
	client *ent.Client
	log    *eventlog.Log // dead-letter events; may be nil
	cfg    config.QueueConfig

	// recent completed-task durations per queue, for adaptive step
	// visibility (10× median, floored)
	durMu     sync.Mutex
	durations map[string][]time.Duration
}

// New creates a queue. log may be nil; dead letters are then only logged.
func New(client *ent.Client, log *eventlog.Log, cfg config.QueueConfig) *Queue {
	return &Queue{
		client:    client,
		log:       log,
		cfg:       cfg,
		durations: make(map[string][]time.Duration),
	}
}

// Enqueue persists one task and returns its id.
func (q *Queue) Enqueue(ctx context.Context, t Task) (string, error) {
	if t.QueueID == "" || t.Kind == "" {
		return "", fmt.Errorf("queue_id and kind are required")
	}
	maxAttempts := t.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = q.cfg.Defaults.MaxRetries
	}

	create := q.client.QueueTask.Create().
		SetID(uuid.NewString()).
		SetQueueID(t.QueueID).
		SetKind(t.Kind).
		SetPayload(t.Payload).
		SetMaxAttempts(maxAttempts)
	if t.Priority > 0 {
		create.SetPriority(t.Priority)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue task: %w", err)
	}
	metricQueueDepth.WithLabelValues(queueLabel(t.QueueID)).Inc()
	return row.ID, nil
}

// Lease claims the next visible task of a queue for workerID, or returns
// ErrNoTasksAvailable / ErrAtCapacity. maxConcurrent <= 0 means unlimited.
func (q *Queue) Lease(ctx context.Context, workerID, queueID string, maxConcurrent int) (*ent.QueueTask, error) {
	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if maxConcurrent > 0 {
		live, err := tx.QueueTask.Query().
			Where(
				queuetask.QueueID(queueID),
				queuetask.StateEQ(queuetask.StateLeased),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count live leases: %w", err)
		}
		if live >= maxConcurrent {
			return nil, ErrAtCapacity
		}
	}

	task, err := tx.QueueTask.Query().
		Where(
			queuetask.QueueID(queueID),
			queuetask.StateEQ(queuetask.StateQueued),
			queuetask.NextVisibleAtLTE(time.Now()),
		).
		Order(ent.Desc(queuetask.FieldPriority), ent.Asc(queuetask.FieldEnqueuedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query claimable task: %w", err)
	}

	now := time.Now()
	task, err = task.Update().
		SetState(queuetask.StateLeased).
		SetLeaseOwner(workerID).
		SetLeasedAt(now).
		SetLeaseExpiresAt(now.Add(q.visibilityFor(queueID))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark task leased: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	metricQueueDepth.WithLabelValues(queueLabel(queueID)).Dec()
	metricLeasedTasks.WithLabelValues(queueLabel(queueID)).Inc()
	return task, nil
}

// Succeed marks a leased task done. Results live on the domain rows the
// task updated; the queue only records completion and timing.
func (q *Queue) Succeed(ctx context.Context, taskID string) error {
	task, err := q.client.QueueTask.Get(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to load task: %w", err)
	}
	if err := q.client.QueueTask.UpdateOneID(taskID).
		SetState(queuetask.StateSucceeded).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark task succeeded: %w", err)
	}
	metricLeasedTasks.WithLabelValues(queueLabel(task.QueueID)).Dec()
	if d, ok := completionDuration(task, time.Now()); ok {
		q.recordDuration(task.QueueID, d)
	}
	return nil
}

// completionDuration measures the task's execution under its current lease.
// Queue wait is excluded: the adaptive step visibility window tracks how
// long steps run, not how long they sat queued.
func completionDuration(task *ent.QueueTask, now time.Time) (time.Duration, bool) {
	if task.LeasedAt == nil {
		return 0, false
	}
	return now.Sub(*task.LeasedAt), true
}

// Fail records a failed attempt. Retryable failures with attempts left
// requeue behind exponential backoff; otherwise the task goes dead and a
// dead-letter event is emitted for the reflector.
func (q *Queue) Fail(ctx context.Context, taskID, errMsg string, retry bool) error {
	tx, err := q.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.QueueTask.Query().
		Where(queuetask.ID(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load task: %w", err)
	}

	attempts := task.Attempts + 1
	update := tx.QueueTask.UpdateOne(task).
		SetAttempts(attempts).
		SetLastError(errMsg).
		ClearLeaseOwner().
		ClearLeaseExpiresAt()

	dead := !retry || attempts >= task.MaxAttempts
	if dead {
		update.SetState(queuetask.StateDead)
	} else {
		update.SetState(queuetask.StateQueued).
			SetNextVisibleAt(time.Now().Add(Backoff(attempts, q.cfg.Defaults)))
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record task failure: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task failure: %w", err)
	}

	metricLeasedTasks.WithLabelValues(queueLabel(task.QueueID)).Dec()
	if dead {
		metricDeadLetters.WithLabelValues(queueLabel(task.QueueID)).Inc()
		q.emitDeadLetter(ctx, task, errMsg)
	} else {
		metricQueueDepth.WithLabelValues(queueLabel(task.QueueID)).Inc()
	}
	return nil
}

// ExtendLease pushes the visibility deadline out for a heartbeating owner.
// A lost race (reaper already took the lease back) returns an error so the
// worker knows it no longer owns the task.
func (q *Queue) ExtendLease(ctx context.Context, taskID, workerID string) error {
	n, err := q.client.QueueTask.Update().
		Where(
			queuetask.ID(taskID),
			queuetask.StateEQ(queuetask.StateLeased),
			queuetask.LeaseOwner(workerID),
		).
		SetLeaseExpiresAt(time.Now().Add(q.visibilityFor(""))).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to extend lease: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("lease on task %s no longer held by %s", taskID, workerID)
	}
	return nil
}

// Depth returns the claimable backlog of one queue.
func (q *Queue) Depth(ctx context.Context, queueID string) (int, error) {
	return q.client.QueueTask.Query().
		Where(
			queuetask.QueueID(queueID),
			queuetask.StateEQ(queuetask.StateQueued),
		).
		Count(ctx)
}

// visibilityFor computes the lease duration. Step queues adapt to observed
// durations (10× median, floored at 5 minutes); everything else uses the
// configured visibility timeout.
func (q *Queue) visibilityFor(queueID string) time.Duration {
	if !strings.HasPrefix(queueID, "steps:") {
		return q.cfg.VisibilityTimeout
	}

	q.durMu.Lock()
	recent := append([]time.Duration(nil), q.durations[queueID]...)
	q.durMu.Unlock()

	visibility := 10 * median(recent)
	if visibility < minStepVisibility {
		visibility = minStepVisibility
	}
	return visibility
}

const durationWindow = 32

func (q *Queue) recordDuration(queueID string, d time.Duration) {
	if !strings.HasPrefix(queueID, "steps:") {
		return
	}
	q.durMu.Lock()
	defer q.durMu.Unlock()
	window := append(q.durations[queueID], d)
	if len(window) > durationWindow {
		window = window[len(window)-durationWindow:]
	}
	q.durations[queueID] = window
}

// emitDeadLetter appends a queue.dead_letter event when the task payload
// identifies its workflow; reflection picks these up.
func (q *Queue) emitDeadLetter(ctx context.Context, task *ent.QueueTask, errMsg string) {
	if q.log == nil {
		return
	}
	workflowID, _ := task.Payload["workflow_id"].(string)
	sessionID, _ := task.Payload["session_id"].(string)
	if workflowID == "" || sessionID == "" {
		slog.Warn("Dead task has no workflow attribution", "task_id", task.ID, "queue_id", task.QueueID)
		return
	}

	_, err := q.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     workflowID,
		SessionID:      sessionID,
		EventType:      models.EventQueueDeadLetter,
		Stage:          models.StageExecution,
		ComponentRole:  "queue",
		ComponentName:  "queue_" + task.QueueID,
		DecisionSource: models.SourceComponent,
		Status:         "dead",
		OutputSummary:  errMsg,
		ReasonCode:     "max_attempts_exhausted",
		Metadata: map[string]any{
			"task_id":  task.ID,
			"kind":     task.Kind,
			"attempts": task.Attempts + 1,
		},
	})
	if err != nil {
		slog.Error("Failed to append dead-letter event", "task_id", task.ID, "error", err)
	}

	// Feed the reflection lane so dead tasks become error_recovery
	// observations. Reflection's own dead tasks stay dead.
	if task.QueueID == QueueReflection {
		return
	}
	_, err = q.Enqueue(ctx, Task{
		QueueID: QueueReflection,
		Kind:    "reflection.run",
		Payload: map[string]any{
			"workflow_id": workflowID,
			"session_id":  sessionID,
			"queue_id":    task.QueueID,
			"task_kind":   task.Kind,
			"step_id":     task.Payload["step_id"],
			"error":       errMsg,
		},
	})
	if err != nil {
		slog.Error("Failed to enqueue reflection task for dead letter", "task_id", task.ID, "error", err)
	}
}

// queueLabel collapses per-plan step queues into one metric label to keep
// cardinality bounded.
func queueLabel(queueID string) string {
	if strings.HasPrefix(queueID, "steps:") {
		return "steps"
	}
	return queueID
}
