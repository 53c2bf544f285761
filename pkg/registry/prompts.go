package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/prompt"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// Resolution is the outcome of a prompt lookup. Scope records which
// precedence level matched: "experiment", "agent", "default", or "builtin"
// for the legacy-exempt fallback.
type Resolution struct {
	PromptID      string
	PromptVersion int
	Body          string
	Scope         string
}

// ResolveHints narrows prompt resolution. LegacyExempt lets a caller with
// no assignment at all fall back to the builtin body instead of failing.
type ResolveHints struct {
	ExperimentID string
	AgentName    string
	LegacyExempt bool
}

// ResolvePrompt finds the prompt bound to (stage, componentRole), applying
// experiment → agent → component-default precedence. A miss is an error
// unless the matched assignment (or the caller's hint) is legacy-exempt, in
// which case the documented builtin body is returned with
// prompt_id "builtin:<stage>/<role>" and version 0.
func (r *Registry) ResolvePrompt(ctx context.Context, stage models.Stage, componentRole string, hints ResolveHints) (*Resolution, error) {
	type scope struct {
		kind  promptassignment.ScopeType
		value string
	}
	scopes := make([]scope, 0, 3)
	if hints.ExperimentID != "" {
		scopes = append(scopes, scope{promptassignment.ScopeTypeExperiment, hints.ExperimentID})
	}
	if hints.AgentName != "" {
		scopes = append(scopes, scope{promptassignment.ScopeTypeAgent, hints.AgentName})
	}
	scopes = append(scopes, scope{promptassignment.ScopeTypeDefault, ""})

	for _, s := range scopes {
		assignment, err := r.client.PromptAssignment.Query().
			Where(
				promptassignment.StageEQ(promptassignment.Stage(stage)),
				promptassignment.ComponentRole(componentRole),
				promptassignment.ScopeTypeEQ(s.kind),
				promptassignment.ScopeValue(s.value),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to query prompt assignment: %w", err)
		}

		body, err := r.client.Prompt.Query().
			Where(
				prompt.PromptID(assignment.PromptID),
				prompt.Version(assignment.PromptVersion),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) && assignment.LegacyExempt {
				return builtinResolution(stage, componentRole), nil
			}
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: assignment for %s/%s points at missing prompt %s v%d",
					ErrPromptUnresolved, stage, componentRole, assignment.PromptID, assignment.PromptVersion)
			}
			return nil, fmt.Errorf("failed to load prompt body: %w", err)
		}

		return &Resolution{
			PromptID:      body.PromptID,
			PromptVersion: body.Version,
			Body:          body.Body,
			Scope:         string(s.kind),
		}, nil
	}

	if hints.LegacyExempt {
		return builtinResolution(stage, componentRole), nil
	}
	return nil, fmt.Errorf("%w: no assignment for %s/%s", ErrPromptUnresolved, stage, componentRole)
}

// PublishPrompt appends a new immutable version of a logical prompt and
// returns the stored row. Version numbering starts at 1 and is assigned
// here, not by the caller.
func (r *Registry) PublishPrompt(ctx context.Context, promptID, body, description string) (*ent.Prompt, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	latest, err := tx.Prompt.Query().
		Where(prompt.PromptID(promptID)).
		Order(ent.Desc(prompt.FieldVersion)).
		ForUpdate().
		First(ctx)
	version := 1
	switch {
	case err == nil:
		version = latest.Version + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query latest prompt version: %w", err)
	}

	row, err := tx.Prompt.Create().
		SetID(uuid.NewString()).
		SetPromptID(promptID).
		SetVersion(version).
		SetBody(body).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit prompt version: %w", err)
	}
	return row, nil
}

// GetPrompt returns one stored prompt version. version <= 0 means latest.
func (r *Registry) GetPrompt(ctx context.Context, promptID string, version int) (*ent.Prompt, error) {
	q := r.client.Prompt.Query().Where(prompt.PromptID(promptID))
	if version > 0 {
		return q.Where(prompt.Version(version)).Only(ctx)
	}
	return q.Order(ent.Desc(prompt.FieldVersion)).First(ctx)
}

// AssignPromptRequest binds a prompt version to (stage, role) at one scope.
type AssignPromptRequest struct {
	Stage         models.Stage
	ComponentRole string
	ScopeType     string // "experiment", "agent", "default"
	ScopeValue    string
	PromptID      string
	PromptVersion int
	LegacyExempt  bool
}

// AssignPrompt creates or replaces the assignment at the given scope. The
// referenced prompt version must exist.
func (r *Registry) AssignPrompt(ctx context.Context, req AssignPromptRequest) (*ent.PromptAssignment, error) {
	exists, err := r.client.Prompt.Query().
		Where(prompt.PromptID(req.PromptID), prompt.Version(req.PromptVersion)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check prompt existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("prompt %s v%d does not exist", req.PromptID, req.PromptVersion)
	}

	existing, err := r.client.PromptAssignment.Query().
		Where(
			promptassignment.StageEQ(promptassignment.Stage(req.Stage)),
			promptassignment.ComponentRole(req.ComponentRole),
			promptassignment.ScopeTypeEQ(promptassignment.ScopeType(req.ScopeType)),
			promptassignment.ScopeValue(req.ScopeValue),
		).
		Only(ctx)
	if err == nil {
		return r.client.PromptAssignment.UpdateOne(existing).
			SetPromptID(req.PromptID).
			SetPromptVersion(req.PromptVersion).
			SetLegacyExempt(req.LegacyExempt).
			Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query assignment: %w", err)
	}

	return r.client.PromptAssignment.Create().
		SetID(uuid.NewString()).
		SetStage(promptassignment.Stage(req.Stage)).
		SetComponentRole(req.ComponentRole).
		SetScopeType(promptassignment.ScopeType(req.ScopeType)).
		SetScopeValue(req.ScopeValue).
		SetPromptID(req.PromptID).
		SetPromptVersion(req.PromptVersion).
		SetLegacyExempt(req.LegacyExempt).
		Save(ctx)
}
