package planner

import (
	"context"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
)

// riskScore is the planning risk heuristic:
//
//	clamp(0.2*frac_high_risk + 0.2*frac_requires_approval +
//	      0.3*(1-known_tool_ratio) + 0.3*novelty, 0, 1)
//
// novelty is 1 when no similar pattern was recalled, 0 otherwise.
func riskScore(steps []models.StepDraft, knownToolRatio float64, recalled bool) float64 {
	if len(steps) == 0 {
		return 1
	}
	var high, approvals float64
	for _, s := range steps {
		if s.RiskLevel == models.RiskHigh {
			high++
		}
		if s.ApprovalRequired {
			approvals++
		}
	}
	n := float64(len(steps))
	novelty := 1.0
	if recalled {
		novelty = 0
	}

	score := 0.2*(high/n) + 0.2*(approvals/n) + 0.3*(1-knownToolRatio) + 0.3*novelty
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// knownToolRatio is the fraction of referenced tools with an active
// registry entry. A plan with no tool steps counts as fully known.
func knownToolRatio(ctx context.Context, reg *registry.Registry, steps []models.StepDraft) float64 {
	total, known := 0, 0
	seen := make(map[string]bool)
	for _, s := range steps {
		if s.ExecutorKind != models.ExecutorTool || s.ExecutorRef == "" || seen[s.ExecutorRef] {
			continue
		}
		seen[s.ExecutorRef] = true
		total++
		if _, err := reg.GetActiveTool(ctx, s.ExecutorRef); err == nil {
			known++
		} else if !ent.IsNotFound(err) {
			// Lookup failure is indistinguishable from unknown here; the
			// conservative reading raises risk.
			continue
		}
	}
	if total == 0 {
		return 1
	}
	return float64(known) / float64(total)
}
