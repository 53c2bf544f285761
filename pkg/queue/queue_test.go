package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/config"
)

func testQueueConfig() config.QueueConfig {
	return config.QueueConfig{
		Defaults: config.TaskDefaults{
			MaxRetries:    3,
			BaseBackoffMS: 1_000,
			MaxBackoffMS:  3_600_000,
		},
		PollInterval:       2 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
		VisibilityTimeout:  60 * time.Second,
		HeartbeatInterval:  15 * time.Second,
	}
}

func TestBackoff(t *testing.T) {
	defaults := config.TaskDefaults{BaseBackoffMS: 1_000, MaxBackoffMS: 3_600_000}

	tests := []struct {
		name     string
		attempts int
		min      time.Duration
		max      time.Duration
	}{
		{"first retry", 1, time.Second, 2 * time.Second},
		{"second retry doubles", 2, 2 * time.Second, 3 * time.Second},
		{"fourth retry", 4, 8 * time.Second, 9 * time.Second},
		{"zero attempts treated as one", 0, time.Second, 2 * time.Second},
		{"capped at max", 30, time.Hour, time.Hour + time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				got := Backoff(tt.attempts, defaults)
				assert.GreaterOrEqual(t, got, tt.min)
				assert.LessOrEqual(t, got, tt.max)
			}
		})
	}

	t.Run("zero config falls back to sane defaults", func(t *testing.T) {
		got := Backoff(1, config.TaskDefaults{})
		assert.GreaterOrEqual(t, got, time.Second)
		assert.LessOrEqual(t, got, 2*time.Second)
	})
}

func TestMedian(t *testing.T) {
	assert.Equal(t, time.Duration(0), median(nil))
	assert.Equal(t, 5*time.Second, median([]time.Duration{5 * time.Second}))
	assert.Equal(t, 3*time.Second,
		median([]time.Duration{5 * time.Second, time.Second, 3 * time.Second}))
	assert.Equal(t, 2500*time.Millisecond,
		median([]time.Duration{4 * time.Second, time.Second, 2 * time.Second, 3 * time.Second}))
}

func TestVisibilityFor(t *testing.T) {
	q := New(nil, nil, testQueueConfig())

	t.Run("non-step queues use the configured timeout", func(t *testing.T) {
		assert.Equal(t, 60*time.Second, q.visibilityFor(QueueWorkflows))
	})

	t.Run("step queues floor at five minutes without samples", func(t *testing.T) {
		assert.Equal(t, 5*time.Minute, q.visibilityFor(StepQueueID("plan-1")))
	})

	t.Run("step queues scale to ten times the median duration", func(t *testing.T) {
		queueID := StepQueueID("plan-2")
		for i := 0; i < 5; i++ {
			q.recordDuration(queueID, 90*time.Second)
		}
		assert.Equal(t, 15*time.Minute, q.visibilityFor(queueID))
	})

	t.Run("duration window is bounded", func(t *testing.T) {
		queueID := StepQueueID("plan-3")
		for i := 0; i < durationWindow*2; i++ {
			q.recordDuration(queueID, time.Second)
		}
		q.durMu.Lock()
		defer q.durMu.Unlock()
		assert.Len(t, q.durations[queueID], durationWindow)
	})
}

func TestCompletionDuration(t *testing.T) {
	now := time.Now()
	enqueued := now.Add(-10 * time.Minute)
	leased := now.Add(-2 * time.Second)

	t.Run("measures from the lease, not the enqueue", func(t *testing.T) {
		task := &ent.QueueTask{EnqueuedAt: enqueued, LeasedAt: &leased}
		d, ok := completionDuration(task, now)
		assert.True(t, ok)
		assert.Equal(t, 2*time.Second, d)
	})

	t.Run("never-leased task records nothing", func(t *testing.T) {
		_, ok := completionDuration(&ent.QueueTask{EnqueuedAt: enqueued}, now)
		assert.False(t, ok)
	})
}

func TestQueueLabel(t *testing.T) {
	assert.Equal(t, "workflows.run", queueLabel(QueueWorkflows))
	assert.Equal(t, "steps", queueLabel(StepQueueID("plan-9")))
	assert.Equal(t, "reflection.run", queueLabel(QueueReflection))
}

func TestWorkerPollInterval(t *testing.T) {
	w := newWorker("test-w0", nil, nil, nil, nil, nil, testQueueConfig())
	for i := 0; i < 100; i++ {
		got := w.pollInterval()
		assert.GreaterOrEqual(t, got, 1500*time.Millisecond)
		assert.Less(t, got, 2500*time.Millisecond)
	}

	t.Run("no jitter configured", func(t *testing.T) {
		cfg := testQueueConfig()
		cfg.PollIntervalJitter = 0
		w := newWorker("test-w1", nil, nil, nil, nil, nil, cfg)
		assert.Equal(t, 2*time.Second, w.pollInterval())
	})
}

func TestPermanentError(t *testing.T) {
	inner := errors.New("plan rejected")
	err := error(&Permanent{Err: inner})

	var perm *Permanent
	assert.True(t, errors.As(err, &perm))
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "plan rejected", err.Error())
}

func TestPoolCancelRegistry(t *testing.T) {
	p := NewWorkerPool(nil, New(nil, nil, testQueueConfig()), nil, nil, testQueueConfig())

	ctx, cancel := context.WithCancel(context.Background())
	p.registerWorkflow("wf-1", cancel)

	assert.True(t, p.CancelWorkflow("wf-1"))
	assert.Error(t, ctx.Err())

	p.unregisterWorkflow("wf-1")
	assert.False(t, p.CancelWorkflow("wf-1"))
	assert.False(t, p.CancelWorkflow("wf-unknown"))
}
