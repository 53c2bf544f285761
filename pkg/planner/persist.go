package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
)

// persist writes all candidates in one transaction: the winner first and
// primary, siblings after it, every plan carrying its siblings' ids in
// alternatives.
func (p *Planner) persist(ctx context.Context, req Request, candidates []*candidate, winner int) (*Result, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, len(candidates))
	for i := range candidates {
		ids[i] = uuid.NewString()
	}

	result := &Result{}
	for i, c := range candidates {
		siblings := make([]string, 0, len(ids)-1)
		for j, id := range ids {
			if j != i {
				siblings = append(siblings, id)
			}
		}

		strategyMap, err := toMap(c.strategy)
		if err != nil {
			return nil, err
		}
		plan, err := tx.Plan.Create().
			SetID(ids[i]).
			SetWorkflowID(req.WorkflowID).
			SetVersion(req.Version).
			SetGoal(req.Goal).
			SetStrategyName(c.strategyName).
			SetStrategy(strategyMap).
			SetRiskScore(c.risk).
			SetAlternatives(siblings).
			SetPrimary(i == winner).
			SetStatus(entplan.StatusDraft).
			SetExpectedDurationMs(expectedDurationMS(c.steps)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist plan: %w", err)
		}

		steps, err := p.persistSteps(ctx, tx, plan, c)
		if err != nil {
			return nil, err
		}

		if i == winner {
			result.Plan = plan
			result.Steps = steps
		} else {
			result.Alternatives = append(result.Alternatives, plan)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit plan: %w", err)
	}
	return result, nil
}

func (p *Planner) persistSteps(ctx context.Context, tx *ent.Tx, plan *ent.Plan, c *candidate) ([]*ent.Step, error) {
	stepIDs := make(map[string]string, len(c.steps))
	for _, d := range c.steps {
		stepIDs[d.Name] = uuid.NewString()
	}

	steps := make([]*ent.Step, 0, len(c.steps))
	for i, d := range c.steps {
		deps := make([]string, 0, len(d.DependsOn))
		for _, name := range d.DependsOn {
			deps = append(deps, stepIDs[name])
		}

		create := tx.Step.Create().
			SetID(stepIDs[d.Name]).
			SetPlanID(plan.ID).
			SetWorkflowID(plan.WorkflowID).
			SetIndex(i).
			SetName(d.Name).
			SetDescription(d.Description).
			SetType(entstep.Type(d.Type)).
			SetExecutorKind(entstep.ExecutorKind(d.ExecutorKind)).
			SetExecutorRef(d.ExecutorRef).
			SetTeamMembers(d.TeamMembers).
			SetInputs(d.Inputs).
			SetOutputs(map[string]any{}).
			SetDependencies(deps).
			SetTimeoutMs(d.TimeoutMS).
			SetMaxAttempts(d.Retry.MaxAttempts).
			SetBackoffBaseMs(d.Retry.BackoffBaseMS).
			SetApprovalRequired(d.ApprovalRequired).
			SetRiskLevel(entstep.RiskLevel(d.RiskLevel)).
			SetState(entstep.StateWaiting)
		if d.FunctionCall != nil {
			callMap, err := toMap(d.FunctionCall)
			if err != nil {
				return nil, err
			}
			create.SetFunctionCall(callMap)
		}
		if d.Checks != nil {
			checksMap, err := toMap(d.Checks)
			if err != nil {
				return nil, err
			}
			create.SetChecks(checksMap)
		}

		step, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist step %s: %w", d.Name, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// toMap round-trips a struct through JSON for ent's map columns.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal for storage: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal for storage: %w", err)
	}
	return m, nil
}
