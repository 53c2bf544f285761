package config

import "time"

// EndpointConfig describes one local LLM serving endpoint.
type EndpointConfig struct {
	// Name uniquely identifies the endpoint (registry key).
	Name string `yaml:"name"`

	// URL is the gRPC address of the serving process (host:port).
	URL string `yaml:"url"`

	// Model is the model identifier the endpoint serves.
	Model string `yaml:"model"`

	// Capabilities tags the endpoint for model selection:
	// "reasoning" and/or "coding".
	Capabilities []string `yaml:"capabilities"`

	// MaxConcurrent caps in-flight requests to this endpoint.
	MaxConcurrent int `yaml:"max_concurrent"`

	// Priority breaks ties during selection; lower wins.
	Priority int `yaml:"priority"`
}

// HasCapability reports whether the endpoint carries the given tag.
func (e *EndpointConfig) HasCapability(cap string) bool {
	for _, c := range e.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// LLMConfig groups the configured serving endpoints.
type LLMConfig struct {
	Endpoints []EndpointConfig `yaml:"endpoints"`
}

// PlannerConfig controls plan generation.
type PlannerConfig struct {
	// DefaultAlternatives is how many alternative plans to generate when the
	// caller does not say. 0 disables alternative generation.
	DefaultAlternatives int `yaml:"default_alternatives"`

	// EvaluationWeights score alternatives. Lower time, fewer approval
	// points, and lower risk win; higher efficiency wins.
	EvaluationWeights map[string]float64 `yaml:"evaluation_weights"`

	// AnalysisTimeout bounds the task-analysis LLM call.
	AnalysisTimeout time.Duration `yaml:"analysis_timeout"`

	// DecompositionTimeout bounds the decomposition LLM call.
	DecompositionTimeout time.Duration `yaml:"decomposition_timeout"`
}

// ApprovalConfig controls the human approval gate.
type ApprovalConfig struct {
	// DefaultDeadlineHours is how long an approval request stays pending
	// before it expires.
	DefaultDeadlineHours int `yaml:"default_deadline_hours"`

	// SweepInterval is how often the expiry sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// TaskDefaults are the per-task retry defaults applied when a task or step
// does not carry its own policy.
type TaskDefaults struct {
	MaxRetries    int   `yaml:"max_retries"`
	BaseBackoffMS int64 `yaml:"base_backoff_ms"`
	MaxBackoffMS  int64 `yaml:"max_backoff_ms"`
}

// QueueConfig contains task queue and worker pool configuration.
type QueueConfig struct {
	// Defaults are the retry defaults for enqueued tasks.
	Defaults TaskDefaults `yaml:"defaults"`

	// WorkerCount is the number of workflow worker goroutines per pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentWorkflows is the global limit of workflows executing
	// across all pods. Enforced by a database count before claiming.
	MaxConcurrentWorkflows int `yaml:"max_concurrent_workflows"`

	// PollInterval is the base interval for checking queued tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter spreads worker polls: actual interval is
	// PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// WorkflowTimeout is the maximum wall time for one workflow run.
	WorkflowTimeout time.Duration `yaml:"workflow_timeout"`

	// VisibilityTimeout is the lease duration floor. Step queues use
	// max(10x median recent step duration, VisibilityTimeout).
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// HeartbeatInterval is how often a worker extends its lease and the
	// workflow heartbeat while processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// ReapInterval is how often expired leases are scanned back to queued.
	ReapInterval time.Duration `yaml:"reap_interval"`

	// OrphanThreshold is how long a workflow may go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// GracefulShutdownTimeout bounds the drain of active workflows at
	// shutdown. Should match WorkflowTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// SandboxLimits are the resource ceilings for one function call.
type SandboxLimits struct {
	WallMS int64 `yaml:"wall_ms"`
	MemMB  int64 `yaml:"mem_mb"`
	CPUMS  int64 `yaml:"cpu_ms"`
}

// SandboxConfig controls function-call execution.
type SandboxConfig struct {
	Limits SandboxLimits `yaml:"limits"`
}

// BreakerConfig tunes the per-endpoint circuit breaker.
type BreakerConfig struct {
	// MaxFailures is the consecutive-failure count that opens the breaker.
	MaxFailures int `yaml:"max_failures"`

	// OpenTimeout is how long the breaker stays open before half-open probes.
	OpenTimeout time.Duration `yaml:"open_timeout"`
}

// GatewayConfig controls the LLM gateway.
type GatewayConfig struct {
	// CacheTTL is the fingerprint cache lifetime.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// HealthInterval is the period of the endpoint health prober.
	HealthInterval time.Duration `yaml:"health_interval"`

	// RequestTimeout is the fallback deadline for generate calls that carry
	// no step timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	Breaker BreakerConfig `yaml:"breaker"`
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// WorkflowRetentionDays is how many days to keep terminal workflows
	// before soft-deleting them (setting deleted_at).
	WorkflowRetentionDays int `yaml:"workflow_retention_days"`

	// EventTTL is how long execution events of soft-deleted workflows are
	// kept before purging.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// SlackConfig holds Slack notification settings.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// NotifierConfig groups outbound notification settings.
type NotifierConfig struct {
	Slack SlackConfig `yaml:"slack"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port the API listens on.
	Port int `yaml:"port"`

	// AuthTokenEnv names the environment variable holding the static bearer
	// token. Empty disables auth.
	AuthTokenEnv string `yaml:"auth_token_env"`

	// SyncRequestTimeout bounds how long POST /requests waits for a
	// terminal workflow in sync mode.
	SyncRequestTimeout time.Duration `yaml:"sync_request_timeout"`
}

// FeatureFlags gate optional behavior.
type FeatureFlags struct {
	GenerateAlternatives  bool `yaml:"generate_alternatives"`
	WebSearch             bool `yaml:"web_search"`
	ProceduralRecall      bool `yaml:"procedural_recall"`
	ApprovalNotifications bool `yaml:"approval_notifications"`
}
