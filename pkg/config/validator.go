package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// knownCapabilities are the endpoint capability tags model selection
// understands.
var knownCapabilities = map[string]bool{
	"reasoning": true,
	"coding":    true,
}

// evaluationCriteria are the plan-scoring weight keys the planner accepts.
var evaluationCriteria = map[string]bool{
	"time":            true,
	"approval_points": true,
	"risk":            true,
	"efficiency":      true,
}

// Validate checks the full configuration and returns all problems joined,
// each with a dotted field path.
func Validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateEndpoints(cfg.LLM)...)
	errs = append(errs, validatePlanner(cfg.Planner)...)
	errs = append(errs, validateApproval(cfg.Approval)...)
	errs = append(errs, validateQueue(cfg.Queue)...)
	errs = append(errs, validateSandbox(cfg.Sandbox)...)
	errs = append(errs, validateServer(cfg.Server)...)

	return errors.Join(errs...)
}

func validateEndpoints(llm *LLMConfig) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, ep := range llm.Endpoints {
		path := fmt.Sprintf("llm.endpoints[%d]", i)
		if ep.Name == "" {
			errs = append(errs, NewFieldError(path+".name", "is required"))
		} else if seen[ep.Name] {
			errs = append(errs, NewFieldError(path+".name", "duplicate endpoint name "+ep.Name))
		}
		seen[ep.Name] = true

		if ep.URL == "" {
			errs = append(errs, NewFieldError(path+".url", "is required"))
		} else if strings.Contains(ep.URL, "://") {
			// gRPC targets are host:port; a scheme is a common misconfig.
			if u, err := url.Parse(ep.URL); err != nil || u.Scheme != "dns" {
				errs = append(errs, NewFieldError(path+".url", "must be a host:port gRPC target, not a URL"))
			}
		}
		if ep.Model == "" {
			errs = append(errs, NewFieldError(path+".model", "is required"))
		}
		if len(ep.Capabilities) == 0 {
			errs = append(errs, NewFieldError(path+".capabilities", "at least one capability is required"))
		}
		for _, c := range ep.Capabilities {
			if !knownCapabilities[c] {
				errs = append(errs, NewFieldError(path+".capabilities", "unknown capability "+c))
			}
		}
		if ep.MaxConcurrent < 1 {
			errs = append(errs, NewFieldError(path+".max_concurrent", "must be >= 1"))
		}
	}
	return errs
}

func validatePlanner(p *PlannerConfig) []error {
	var errs []error
	if p.DefaultAlternatives < 0 || p.DefaultAlternatives > 3 {
		errs = append(errs, NewFieldError("planner.default_alternatives", "must be between 0 and 3"))
	}
	var total float64
	for k, w := range p.EvaluationWeights {
		if !evaluationCriteria[k] {
			errs = append(errs, NewFieldError("planner.evaluation_weights", "unknown criterion "+k))
		}
		if w < 0 {
			errs = append(errs, NewFieldError("planner.evaluation_weights."+k, "must be >= 0"))
		}
		total += w
	}
	if total <= 0 {
		errs = append(errs, NewFieldError("planner.evaluation_weights", "weights must sum to a positive value"))
	}
	return errs
}

func validateApproval(a *ApprovalConfig) []error {
	var errs []error
	if a.DefaultDeadlineHours < 1 {
		errs = append(errs, NewFieldError("approval.default_deadline_hours", "must be >= 1"))
	}
	return errs
}

func validateQueue(q *QueueConfig) []error {
	var errs []error
	if q.Defaults.MaxRetries < 0 {
		errs = append(errs, NewFieldError("queue.defaults.max_retries", "must be >= 0"))
	}
	if q.Defaults.BaseBackoffMS < 1 {
		errs = append(errs, NewFieldError("queue.defaults.base_backoff_ms", "must be >= 1"))
	}
	if q.Defaults.MaxBackoffMS < q.Defaults.BaseBackoffMS {
		errs = append(errs, NewFieldError("queue.defaults.max_backoff_ms", "must be >= base_backoff_ms"))
	}
	if q.WorkerCount < 1 {
		errs = append(errs, NewFieldError("queue.worker_count", "must be >= 1"))
	}
	if q.MaxConcurrentWorkflows < 1 {
		errs = append(errs, NewFieldError("queue.max_concurrent_workflows", "must be >= 1"))
	}
	if q.PollInterval <= 0 {
		errs = append(errs, NewFieldError("queue.poll_interval", "must be positive"))
	}
	if q.VisibilityTimeout <= 0 {
		errs = append(errs, NewFieldError("queue.visibility_timeout", "must be positive"))
	}
	return errs
}

func validateSandbox(s *SandboxConfig) []error {
	var errs []error
	if s.Limits.WallMS < 1 {
		errs = append(errs, NewFieldError("sandbox.limits.wall_ms", "must be >= 1"))
	}
	if s.Limits.MemMB < 1 {
		errs = append(errs, NewFieldError("sandbox.limits.mem_mb", "must be >= 1"))
	}
	if s.Limits.CPUMS < 1 {
		errs = append(errs, NewFieldError("sandbox.limits.cpu_ms", "must be >= 1"))
	}
	return errs
}

func validateServer(s *ServerConfig) []error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, NewFieldError("server.port", "must be a valid port"))
	}
	return errs
}
