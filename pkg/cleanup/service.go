// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal workflows past the retention window
//   - Purges execution events of soft-deleted workflows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config    *config.RetentionConfig
	workflows *services.WorkflowService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, workflows *services.WorkflowService) *Service {
	return &Service{
		config:    cfg,
		workflows: workflows,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"workflow_retention_days", s.config.WorkflowRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldWorkflows(ctx)
	s.purgeDeletedWorkflowEvents(ctx)
}

func (s *Service) softDeleteOldWorkflows(_ context.Context) {
	count, err := s.workflows.SoftDeleteOldWorkflows(context.Background(), s.config.WorkflowRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete workflows failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old workflows", "count", count)
	}
}

func (s *Service) purgeDeletedWorkflowEvents(_ context.Context) {
	count, err := s.workflows.PurgeDeletedWorkflowEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged events of deleted workflows", "count", count)
	}
}
