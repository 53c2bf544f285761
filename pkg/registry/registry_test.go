package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/maestro/pkg/models"
)

func TestTrust(t *testing.T) {
	tests := []struct {
		name      string
		successes int64
		failures  int64
		want      float64
	}{
		{"no history is neutral", 0, 0, 0.5},
		{"one success", 1, 0, 2.0 / 3.0},
		{"one failure", 0, 1, 1.0 / 3.0},
		{"mixed record", 8, 2, 9.0 / 12.0},
		{"long record approaches raw rate", 998, 0, 999.0 / 1000.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Trust(tt.successes, tt.failures), 1e-9)
		})
	}
}

func TestMovingAverage(t *testing.T) {
	t.Run("first sample seeds directly", func(t *testing.T) {
		assert.Equal(t, 120.0, movingAverage(0, 120))
	})

	t.Run("later samples blend", func(t *testing.T) {
		got := movingAverage(100, 200)
		assert.InDelta(t, 100*(1-latencyAlpha)+200*latencyAlpha, got, 1e-9)
		assert.Greater(t, got, 100.0)
		assert.Less(t, got, 200.0)
	})
}

func TestBuiltinResolution(t *testing.T) {
	t.Run("known stage and role", func(t *testing.T) {
		res := builtinResolution(models.StagePlanning, "planning")
		assert.Equal(t, "builtin:planning/planning", res.PromptID)
		assert.Equal(t, 0, res.PromptVersion)
		assert.Equal(t, "builtin", res.Scope)
		assert.Contains(t, res.Body, "steps")
	})

	t.Run("unknown role falls back to generic body", func(t *testing.T) {
		res := builtinResolution(models.StageExecution, "does_not_exist")
		assert.Equal(t, "builtin:execution/does_not_exist", res.PromptID)
		assert.Equal(t, genericBuiltinPrompt, res.Body)
	})

	t.Run("every builtin key names a canonical stage", func(t *testing.T) {
		for key := range builtinPrompts {
			stageName, _, ok := strings.Cut(key, "/")
			assert.True(t, ok, "key %q must be stage/role", key)
			assert.True(t, models.Stage(stageName).IsValid(), "stage %q must be canonical", stageName)
		}
	})
}

func TestRegistryLifecycleLattice(t *testing.T) {
	tests := []struct {
		from, to models.RegistryStatus
		want     bool
	}{
		{models.RegistryDraft, models.RegistryWaitingApproval, true},
		{models.RegistryDraft, models.RegistryActive, true},
		{models.RegistryWaitingApproval, models.RegistryActive, true},
		{models.RegistryWaitingApproval, models.RegistryDraft, true},
		{models.RegistryActive, models.RegistryPaused, true},
		{models.RegistryPaused, models.RegistryActive, true},
		{models.RegistryActive, models.RegistryDeprecated, true},
		{models.RegistryDeprecated, models.RegistryActive, false},
		{models.RegistryDeprecated, models.RegistryDraft, false},
		{models.RegistryActive, models.RegistryDraft, false},
		{models.RegistryPaused, models.RegistryWaitingApproval, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
