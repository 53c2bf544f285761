// Package registry is the platform's configuration backbone: prompts and
// their scoped assignments, agent and tool specs, model endpoints, and the
// learning patterns the reflector accumulates. Every component resolves its
// prompt and model through here so provenance is always attributable.
package registry

import (
	"github.com/codeready-toolchain/maestro/ent"
)

// latencyAlpha is the exponential-moving-average weight for latency
// tracking on agents, tools, and model endpoints.
const latencyAlpha = 0.2

// Registry provides prompt resolution, model selection, spec CRUD, and
// success-metric recording over the shared ent client.
type Registry struct {
	client *ent.Client
}

// New creates a registry backed by the given ent client.
func New(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// Trust is the Laplace-smoothed success estimate used to rank agents and
// seed plan scoring: (successes+1)/(successes+failures+2). A spec with no
// history scores 0.5 rather than 0 or 1.
func Trust(successes, failures int64) float64 {
	return float64(successes+1) / float64(successes+failures+2)
}

// movingAverage folds one latency sample into the running EMA. The first
// sample seeds the average directly.
func movingAverage(avg, sample float64) float64 {
	if avg == 0 {
		return sample
	}
	return avg*(1-latencyAlpha) + sample*latencyAlpha
}
