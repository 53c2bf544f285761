package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// PatternObservation is one reflector sighting of a pattern.
type PatternObservation struct {
	Kind      models.PatternKind
	Level     models.PatternLevel
	Signature string
	Body      map[string]any
	Success   bool
}

// UpsertPattern folds an observation into the pattern keyed by
// (kind, signature): the success rate becomes the incremental mean over all
// sightings and the body is replaced by the newest non-empty one.
func (r *Registry) UpsertPattern(ctx context.Context, obs PatternObservation) (*ent.LearningPattern, error) {
	if obs.Signature == "" {
		return nil, fmt.Errorf("pattern signature is required")
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	observed := 0.0
	if obs.Success {
		observed = 1.0
	}

	existing, err := tx.LearningPattern.Query().
		Where(
			learningpattern.KindEQ(learningpattern.Kind(obs.Kind)),
			learningpattern.Signature(obs.Signature),
		).
		ForUpdate().
		Only(ctx)
	switch {
	case err == nil:
		count := existing.SampleCount + 1
		rate := existing.ObservedSuccessRate + (observed-existing.ObservedSuccessRate)/float64(count)
		update := tx.LearningPattern.UpdateOne(existing).
			SetSampleCount(count).
			SetObservedSuccessRate(rate).
			SetLastObservedAt(time.Now())
		if obs.Body != nil {
			update.SetBody(obs.Body)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fold pattern observation: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return updated, nil

	case ent.IsNotFound(err):
		level := obs.Level
		if level == "" {
			level = models.PatternMacro
		}
		created, err := tx.LearningPattern.Create().
			SetID(uuid.NewString()).
			SetKind(learningpattern.Kind(obs.Kind)).
			SetLevel(learningpattern.Level(level)).
			SetSignature(obs.Signature).
			SetBody(obs.Body).
			SetObservedSuccessRate(observed).
			SetSampleCount(1).
			SetLastObservedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create pattern: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return created, nil

	default:
		return nil, fmt.Errorf("failed to query pattern: %w", err)
	}
}

// FindPattern returns the pattern for an exact (kind, signature) key, or
// nil when none has been observed.
func (r *Registry) FindPattern(ctx context.Context, kind models.PatternKind, signature string) (*ent.LearningPattern, error) {
	row, err := r.client.LearningPattern.Query().
		Where(
			learningpattern.KindEQ(learningpattern.Kind(kind)),
			learningpattern.Signature(signature),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return row, err
}

// MatchPatterns returns patterns of one kind whose signature starts with
// the given prefix, best-observed first. Procedural recall in the planner
// uses this.
func (r *Registry) MatchPatterns(ctx context.Context, kind models.PatternKind, signaturePrefix string, limit int) ([]*ent.LearningPattern, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.client.LearningPattern.Query().
		Where(
			learningpattern.KindEQ(learningpattern.Kind(kind)),
			learningpattern.SignatureHasPrefix(signaturePrefix),
		).
		Order(
			ent.Desc(learningpattern.FieldObservedSuccessRate),
			ent.Desc(learningpattern.FieldSampleCount),
		).
		Limit(limit).
		All(ctx)
}
