package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/config"
)

// WorkerPool owns the workflow workers of one process: their lifecycle,
// the cancellation registry, orphan recovery, and the lease reaper.
type WorkerPool struct {
	client   *ent.Client
	queue    *Queue
	executor WorkflowExecutor
	notifier Notifier
	cfg      config.QueueConfig

	workers []*Worker
	reaper  *Reaper

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	started bool

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup

	orphansRecovered atomic.Int64
}

// NewWorkerPool creates the pool. notifier may be nil.
func NewWorkerPool(client *ent.Client, q *Queue, executor WorkflowExecutor, notifier Notifier, cfg config.QueueConfig) *WorkerPool {
	return &WorkerPool{
		client:   client,
		queue:    q,
		executor: executor,
		notifier: notifier,
		cfg:      cfg,
		cancels:  make(map[string]context.CancelFunc),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the workers, the reaper, and the orphan detector.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	p.started = true

	count := p.cfg.WorkerCount
	if count <= 0 {
		count = 2
	}
	hostname := workerHostname()
	for i := 0; i < count; i++ {
		w := newWorker(fmt.Sprintf("%s-w%d", hostname, i), p.client, p.queue, p, p.executor, p.notifier, p.cfg)
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.run(ctx)
		}()
	}

	p.reaper = NewReaper(p.queue, p.cfg.ReapInterval)
	p.reaper.Start(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.orphanLoop(ctx)
	}()

	slog.Info("Worker pool started", "workers", count)
	return nil
}

// Stop drains the pool: workers stop claiming, active workflows get up to
// the graceful timeout to finish, then their contexts are cancelled.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.mu.Lock()
		workers := p.workers
		reaper := p.reaper
		p.mu.Unlock()

		for _, w := range workers {
			w.stop()
		}

		deadline := p.cfg.GracefulShutdownTimeout
		if deadline <= 0 {
			deadline = 30 * time.Second
		}
		if !p.drain(deadline) {
			slog.Warn("Graceful drain timed out, cancelling active workflows")
			p.mu.Lock()
			for workflowID, cancel := range p.cancels {
				slog.Info("Cancelling workflow at shutdown", "workflow_id", workflowID)
				cancel()
			}
			p.mu.Unlock()
		}

		if reaper != nil {
			reaper.Stop()
		}
		p.wg.Wait()
		slog.Info("Worker pool stopped")
	})
}

// drain waits for active workflows to reach zero, up to the deadline.
func (p *WorkerPool) drain(deadline time.Duration) bool {
	timer := time.NewTimer(deadline)
	defer timer.Stop()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		if p.ActiveWorkflows() == 0 {
			return true
		}
		select {
		case <-timer.C:
			return false
		case <-ticker.C:
		}
	}
}

// CancelWorkflow cancels a workflow running in this process. Returns false
// when no worker here holds it (another replica might).
func (p *WorkerPool) CancelWorkflow(workflowID string) bool {
	p.mu.Lock()
	cancel, ok := p.cancels[workflowID]
	p.mu.Unlock()
	if !ok {
		return false
	}
	slog.Info("Cancelling workflow", "workflow_id", workflowID)
	cancel()
	return true
}

func (p *WorkerPool) registerWorkflow(workflowID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancels[workflowID] = cancel
}

func (p *WorkerPool) unregisterWorkflow(workflowID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cancels, workflowID)
}

// ActiveWorkflows is the number of workflows executing in this process.
func (p *WorkerPool) ActiveWorkflows() int64 {
	var active int64
	p.mu.Lock()
	workers := p.workers
	p.mu.Unlock()
	for _, w := range workers {
		active += w.active.Load()
	}
	return active
}

// PoolHealth is the health snapshot exposed on /health/system.
type PoolHealth struct {
	Workers          int   `json:"workers"`
	HealthyWorkers   int   `json:"healthy_workers"`
	ActiveWorkflows  int64 `json:"active_workflows"`
	QueueDepth       int   `json:"queue_depth"`
	OrphansRecovered int64 `json:"orphans_recovered"`
}

// Health reports the pool state.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	p.mu.Lock()
	workers := p.workers
	p.mu.Unlock()

	health := PoolHealth{
		Workers:          len(workers),
		ActiveWorkflows:  p.ActiveWorkflows(),
		OrphansRecovered: p.orphansRecovered.Load(),
	}
	for _, w := range workers {
		if w.healthy.Load() {
			health.HealthyWorkers++
		}
	}
	if depth, err := p.queue.Depth(ctx, QueueWorkflows); err == nil {
		health.QueueDepth = depth
	}
	return health
}
