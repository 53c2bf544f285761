package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "maestro",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Claimable tasks per logical queue.",
	}, []string{"queue"})

	metricLeasedTasks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "maestro",
		Subsystem: "queue",
		Name:      "leased_tasks",
		Help:      "Tasks currently under lease per logical queue.",
	}, []string{"queue"})

	metricDeadLetters = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maestro",
		Subsystem: "queue",
		Name:      "dead_letters_total",
		Help:      "Tasks moved to the dead state after exhausting retries.",
	}, []string{"queue"})

	metricActiveWorkflows = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "maestro",
		Subsystem: "queue",
		Name:      "active_workflows",
		Help:      "Workflows currently executing in this process.",
	})

	metricOrphansRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maestro",
		Subsystem: "queue",
		Name:      "orphans_recovered_total",
		Help:      "Workflows requeued after their worker stopped heartbeating.",
	})

	metricReapedLeases = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maestro",
		Subsystem: "queue",
		Name:      "reaped_leases_total",
		Help:      "Expired leases returned to the queue by the reaper.",
	})
)
