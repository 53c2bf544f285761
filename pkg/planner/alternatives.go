package planner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

// strategyBiases in generation order. NumAlternatives beyond three repeats
// nothing; there are three distinct stances.
var strategyBiases = []string{"conservative", "balanced", "aggressive"}

// generateAlternatives produces candidates under distinct strategy biases
// in parallel. Any candidate failing fails the whole generation; partial
// alternative sets would make the weighted selection meaningless.
func (p *Planner) generateAlternatives(ctx context.Context, rctx *workflow.RuntimeContext, req Request, res *registry.Resolution, recalled *ent.LearningPattern) ([]*candidate, error) {
	n := req.NumAlternatives
	if n <= 0 {
		n = p.cfg.DefaultAlternatives
	}
	if n <= 0 || n > len(strategyBiases) {
		n = len(strategyBiases)
	}

	candidates := make([]*candidate, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			c, err := p.generateCandidate(gctx, rctx, req, res, recalled, strategyBiases[i])
			if err != nil {
				return err
			}
			candidates[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// selectWinner scores every candidate on the four criteria and returns the
// index of the lowest weighted score. Time normalizes against the slowest
// sibling; efficiency is the parallelism of the DAG (1 − (critical path −
// 1)/steps), so flatter plans score better.
func (p *Planner) selectWinner(candidates []*candidate) int {
	weights := p.weights()

	maxDuration := int64(1)
	for _, c := range candidates {
		if d := expectedDurationMS(c.steps); d > maxDuration {
			maxDuration = d
		}
	}

	best, bestScore := 0, 0.0
	for i, c := range candidates {
		s := scoreCandidate(c, maxDuration)
		total := weights["time"]*s.Time +
			weights["approval_points"]*s.ApprovalPoints +
			weights["risk"]*s.Risk +
			weights["efficiency"]*(1-s.Efficiency)
		if i == 0 || total < bestScore {
			best, bestScore = i, total
		}
	}
	return best
}

func scoreCandidate(c *candidate, maxDuration int64) models.PlanScores {
	n := float64(len(c.steps))
	approvals := 0.0
	for _, s := range c.steps {
		if s.ApprovalRequired {
			approvals++
		}
	}

	efficiency := 1.0
	if n > 0 {
		efficiency = 1 - float64(criticalPathLength(c.steps)-1)/n
	}
	return models.PlanScores{
		Time:           float64(expectedDurationMS(c.steps)) / float64(maxDuration),
		ApprovalPoints: approvals / max(n, 1),
		Risk:           c.risk,
		Efficiency:     efficiency,
	}
}

func expectedDurationMS(steps []models.StepDraft) int64 {
	var total int64
	for _, s := range steps {
		total += s.TimeoutMS
	}
	return total
}

func (p *Planner) weights() map[string]float64 {
	defaults := map[string]float64{
		"time":            0.3,
		"approval_points": 0.2,
		"risk":            0.3,
		"efficiency":      0.2,
	}
	for k, v := range p.cfg.EvaluationWeights {
		if _, ok := defaults[k]; ok {
			defaults[k] = v
		}
	}
	return defaults
}
