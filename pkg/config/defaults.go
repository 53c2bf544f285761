package config

import "time"

// DefaultPlannerConfig returns the built-in planner defaults.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		DefaultAlternatives: 0,
		EvaluationWeights: map[string]float64{
			"time":            0.3,
			"approval_points": 0.2,
			"risk":            0.3,
			"efficiency":      0.2,
		},
		AnalysisTimeout:      300 * time.Second,
		DecompositionTimeout: 300 * time.Second,
	}
}

// DefaultApprovalConfig returns the built-in approval defaults.
func DefaultApprovalConfig() *ApprovalConfig {
	return &ApprovalConfig{
		DefaultDeadlineHours: 24,
		SweepInterval:        1 * time.Minute,
	}
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Defaults: TaskDefaults{
			MaxRetries:    3,
			BaseBackoffMS: 1000,
			MaxBackoffMS:  3_600_000,
		},
		WorkerCount:             5,
		MaxConcurrentWorkflows:  5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		WorkflowTimeout:         15 * time.Minute,
		VisibilityTimeout:       300 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		ReapInterval:            1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}

// DefaultSandboxConfig returns the built-in sandbox limits.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Limits: SandboxLimits{
			WallMS: 60_000,
			MemMB:  512,
			CPUMS:  30_000,
		},
	}
}

// DefaultGatewayConfig returns the built-in gateway defaults.
func DefaultGatewayConfig() *GatewayConfig {
	return &GatewayConfig{
		CacheTTL:       5 * time.Minute,
		HealthInterval: 5 * time.Minute,
		RequestTimeout: 300 * time.Second,
		Breaker: BreakerConfig{
			MaxFailures: 5,
			OpenTimeout: 30 * time.Second,
		},
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		WorkflowRetentionDays: 365,
		EventTTL:              24 * time.Hour,
		CleanupInterval:       12 * time.Hour,
	}
}

// DefaultNotifierConfig returns the built-in notifier defaults.
func DefaultNotifierConfig() *NotifierConfig {
	return &NotifierConfig{
		Slack: SlackConfig{
			Enabled:  false,
			TokenEnv: "SLACK_BOT_TOKEN",
		},
	}
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:               8080,
		SyncRequestTimeout: 5 * time.Minute,
	}
}

// DefaultFeatureFlags returns the built-in feature flags.
func DefaultFeatureFlags() *FeatureFlags {
	return &FeatureFlags{
		GenerateAlternatives:  false,
		WebSearch:             false,
		ProceduralRecall:      true,
		ApprovalNotifications: false,
	}
}
