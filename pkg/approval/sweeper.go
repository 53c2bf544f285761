package approval

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
)

// Sweeper expires overdue approval requests: request → expired, plan →
// failed with reason_code=approval_expired, and an approval.decided event.
// Idempotent across replicas thanks to the compare-and-set on pending.
type Sweeper struct {
	gate     *Gate
	interval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// NewSweeper creates a sweeper over the gate.
func NewSweeper(gate *Gate, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		gate:     gate,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.sweep(ctx); n > 0 {
					slog.Info("Expired overdue approval requests", "count", n)
				}
			}
		}
	}()
}

// Stop halts the loop and waits for the in-flight pass.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

func (s *Sweeper) sweep(ctx context.Context) int {
	overdue, err := s.gate.client.ApprovalRequest.Query().
		Where(
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
			approvalrequest.DecisionDeadlineLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		slog.Error("Approval sweep failed", "error", err)
		return 0
	}

	expired := 0
	for _, req := range overdue {
		n, err := s.gate.client.ApprovalRequest.Update().
			Where(
				approvalrequest.ID(req.ID),
				approvalrequest.StatusEQ(approvalrequest.StatusPending),
			).
			SetStatus(approvalrequest.StatusExpired).
			SetDecidedAt(time.Now()).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to expire approval request", "request_id", req.ID, "error", err)
			continue
		}
		if n == 0 {
			continue // another replica won
		}

		if req.PlanID != nil {
			err := s.gate.client.Plan.UpdateOneID(*req.PlanID).
				SetStatus(entplan.StatusFailed).
				SetReasonCode("approval_expired").
				Exec(ctx)
			if err != nil {
				slog.Error("Failed to fail plan on approval expiry", "plan_id", *req.PlanID, "error", err)
			}
		}
		s.gate.emitDecided(ctx, req, "expired", "no decision before deadline")
		expired++
	}
	return expired
}
