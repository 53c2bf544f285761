package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/queuetask"
)

// Reaper returns expired leases to the queue so work abandoned by a dead
// worker becomes claimable again. Reaping counts as a failed attempt; tasks
// out of attempts go dead. Safe to run on every replica.
type Reaper struct {
	queue    *Queue
	interval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// NewReaper creates a reaper over the given queue.
func NewReaper(q *Queue, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Reaper{
		queue:    q,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the reap loop.
func (r *Reaper) Start(ctx context.Context) {
	go func() {
		defer close(r.doneCh)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				reaped, err := r.reapExpired(ctx)
				if err != nil {
					slog.Error("Lease reap pass failed", "error", err)
				} else if reaped > 0 {
					slog.Info("Reaped expired leases", "count", reaped)
				}
			}
		}
	}()
}

// Stop halts the loop and waits for the in-flight pass to finish.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	<-r.doneCh
}

// reapExpired processes expired leases one at a time so concurrent reapers
// on other replicas skip rather than block each other.
func (r *Reaper) reapExpired(ctx context.Context) (int, error) {
	reaped := 0
	for {
		ok, err := r.reapOne(ctx)
		if err != nil {
			return reaped, err
		}
		if !ok {
			return reaped, nil
		}
		reaped++
	}
}

func (r *Reaper) reapOne(ctx context.Context) (bool, error) {
	tx, err := r.queue.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.QueueTask.Query().
		Where(
			queuetask.StateEQ(queuetask.StateLeased),
			queuetask.LeaseExpiresAtLT(time.Now()),
		).
		Order(ent.Asc(queuetask.FieldLeaseExpiresAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query expired lease: %w", err)
	}

	attempts := task.Attempts + 1
	update := tx.QueueTask.UpdateOne(task).
		SetAttempts(attempts).
		SetLastError("lease expired").
		ClearLeaseOwner().
		ClearLeaseExpiresAt()

	dead := attempts >= task.MaxAttempts
	if dead {
		update.SetState(queuetask.StateDead)
	} else {
		update.SetState(queuetask.StateQueued).
			SetNextVisibleAt(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to reap lease on task %s: %w", task.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit lease reap: %w", err)
	}

	metricReapedLeases.Inc()
	metricLeasedTasks.WithLabelValues(queueLabel(task.QueueID)).Dec()
	if dead {
		metricDeadLetters.WithLabelValues(queueLabel(task.QueueID)).Inc()
		r.queue.emitDeadLetter(ctx, task, "lease expired after max attempts")
	} else {
		metricQueueDepth.WithLabelValues(queueLabel(task.QueueID)).Inc()
	}
	slog.Warn("Reclaimed expired lease",
		"task_id", task.ID,
		"queue_id", task.QueueID,
		"owner", task.LeaseOwner,
		"attempts", attempts,
		"dead", dead)
	return true, nil
}
