package reflector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/queue"
	"github.com/codeready-toolchain/maestro/pkg/registry"
)

const (
	digesterSlots        = 2
	digesterPollInterval = 5 * time.Second
)

// Digester is the async reflection lane: it consumes reflection.run tasks
// that the queue files for dead-lettered work and turns each into an
// error_recovery observation. Patterns accumulate per (task kind, reason),
// so the planner can learn which shapes of work keep dying.
type Digester struct {
	reflector *Reflector
	queue     *queue.Queue

	workerID string
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// NewDigester creates the reflection lane consumer.
func NewDigester(r *Reflector, q *queue.Queue) *Digester {
	host, _ := os.Hostname()
	if host == "" {
		host = "reflector"
	}
	return &Digester{
		reflector: r,
		queue:     q,
		workerID:  host + "-reflect",
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the digestion loop until Stop or context end.
func (d *Digester) Start(ctx context.Context) {
	go d.run(ctx)
}

func (d *Digester) run(ctx context.Context) {
	defer close(d.doneCh)
	slog.Info("Reflection digester started", "worker_id", d.workerID)
	for {
		select {
		case <-d.stopCh:
			slog.Info("Reflection digester stopped")
			return
		case <-ctx.Done():
			return
		default:
		}

		task, err := d.queue.Lease(ctx, d.workerID, queue.QueueReflection, digesterSlots)
		if err != nil {
			if !errors.Is(err, queue.ErrNoTasksAvailable) && !errors.Is(err, queue.ErrAtCapacity) && ctx.Err() == nil {
				slog.Error("Failed to lease reflection task", "error", err)
			}
			d.sleep(digesterPollInterval)
			continue
		}

		if err := d.digest(ctx, task.Payload); err != nil {
			slog.Warn("Failed to digest dead letter", "task_id", task.ID, "error", err)
			_ = d.queue.Fail(context.WithoutCancel(ctx), task.ID, err.Error(), true)
			continue
		}
		_ = d.queue.Succeed(context.WithoutCancel(ctx), task.ID)
	}
}

// Stop ends the loop and waits for the in-flight digestion to finish.
func (d *Digester) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	<-d.doneCh
}

// digest folds one dead letter into the error_recovery pattern keyed by
// the kind of work that died.
func (d *Digester) digest(ctx context.Context, payload map[string]any) error {
	taskKind, _ := payload["task_kind"].(string)
	if taskKind == "" {
		return fmt.Errorf("dead letter has no task_kind")
	}
	errMsg, _ := payload["error"].(string)
	workflowID, _ := payload["workflow_id"].(string)
	stepID, _ := payload["step_id"].(string)

	_, err := d.reflector.registry.UpsertPattern(ctx, registry.PatternObservation{
		Kind:      models.PatternErrorRecovery,
		Level:     models.PatternMicro,
		Signature: "err:" + taskKind,
		Body: map[string]any{
			"task_kind":     taskKind,
			"last_error":    errMsg,
			"last_workflow": workflowID,
			"last_step":     stepID,
		},
		Success: false,
	})
	return err
}

func (d *Digester) sleep(duration time.Duration) {
	select {
	case <-d.stopCh:
	case <-time.After(duration):
	}
}
