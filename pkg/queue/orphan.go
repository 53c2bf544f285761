package queue

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// orphanLoop periodically rescues workflows whose worker stopped
// heartbeating: the row goes back to pending and a fresh run task is
// enqueued. The compare-and-set on (running, stale heartbeat) makes the
// pass safe to run on every replica.
func (p *WorkerPool) orphanLoop(ctx context.Context) {
	threshold := p.cfg.OrphanThreshold
	if threshold <= 0 {
		threshold = 2 * time.Minute
	}
	interval := threshold / 2

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := p.recoverOrphans(ctx, threshold); n > 0 {
				slog.Warn("Recovered orphaned workflows", "count", n)
			}
		}
	}
}

func (p *WorkerPool) recoverOrphans(ctx context.Context, threshold time.Duration) int {
	cutoff := time.Now().Add(-threshold)
	orphans, err := p.client.Workflow.Query().
		Where(
			workflow.StatusEQ(workflow.StatusRunning),
			workflow.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Orphan scan failed", "error", err)
		return 0
	}

	recovered := 0
	for _, wf := range orphans {
		// Only the replica that wins the reset enqueues the retry task.
		n, err := p.client.Workflow.Update().
			Where(
				workflow.ID(wf.ID),
				workflow.StatusEQ(workflow.StatusRunning),
				workflow.LastHeartbeatAtLT(cutoff),
			).
			SetStatus(workflow.StatusPending).
			ClearWorkerID().
			ClearLastHeartbeatAt().
			Save(ctx)
		if err != nil {
			slog.Error("Failed to reset orphaned workflow", "workflow_id", wf.ID, "error", err)
			continue
		}
		if n == 0 {
			continue
		}

		_, err = p.queue.Enqueue(ctx, Task{
			QueueID: QueueWorkflows,
			Kind:    "workflow.run",
			Payload: map[string]any{
				"workflow_id": wf.ID,
				"session_id":  wf.SessionID,
			},
		})
		if err != nil {
			slog.Error("Failed to requeue orphaned workflow", "workflow_id", wf.ID, "error", err)
			continue
		}

		recovered++
		p.orphansRecovered.Add(1)
		metricOrphansRecovered.Inc()
		slog.Warn("Requeued orphaned workflow",
			"workflow_id", wf.ID,
			"last_worker", stringOrEmpty(wf.WorkerID),
			"stale_since", wf.LastHeartbeatAt)
	}
	return recovered
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func workerHostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "maestro"
	}
	return host
}
