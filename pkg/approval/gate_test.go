package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

func toolStep(risk step.RiskLevel, approvalRequired bool) *ent.Step {
	return &ent.Step{
		ExecutorKind:     step.ExecutorKindTool,
		ExecutorRef:      "search_docs",
		RiskLevel:        risk,
		ApprovalRequired: approvalRequired,
	}
}

// The matrix cases below avoid agent executors so no registry lookup is
// needed; agent trust paths are covered by the integration tests.
func TestEvaluatePolicyMatrix(t *testing.T) {
	gate := New(nil, nil, nil, nil, config.ApprovalConfig{})

	tests := []struct {
		name        string
		requestType models.RequestType
		risk        float64
		steps       []*ent.Step
		required    bool
	}{
		{"simple question always auto", models.RequestTypeSimpleQuestion, 0.9,
			[]*ent.Step{toolStep(step.RiskLevelHigh, true)}, false},
		{"planning only always auto", models.RequestTypePlanningOnly, 0.9,
			[]*ent.Step{toolStep(step.RiskLevelHigh, true)}, false},
		{"information query low risk auto", models.RequestTypeInformationQuery, 0.5,
			[]*ent.Step{toolStep(step.RiskLevelLow, false)}, false},
		{"information query high-risk step gated", models.RequestTypeInformationQuery, 0.1,
			[]*ent.Step{toolStep(step.RiskLevelHigh, false)}, true},
		{"code generation within limits auto", models.RequestTypeCodeGeneration, 0.3,
			[]*ent.Step{toolStep(step.RiskLevelMedium, false)}, false},
		{"code generation risky gated", models.RequestTypeCodeGeneration, 0.31,
			[]*ent.Step{toolStep(step.RiskLevelLow, false)}, true},
		{"complex task low risk auto", models.RequestTypeComplexTask, 0.2,
			[]*ent.Step{toolStep(step.RiskLevelLow, false)}, false},
		{"complex task risky gated", models.RequestTypeComplexTask, 0.21,
			[]*ent.Step{toolStep(step.RiskLevelLow, false)}, true},
		{"complex task flagged step gated", models.RequestTypeComplexTask, 0.1,
			[]*ent.Step{toolStep(step.RiskLevelLow, true)}, true},
		{"unknown type gated", models.RequestType("MYSTERY"), 0.0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &ent.Plan{RiskScore: tt.risk}
			d, err := gate.Evaluate(context.Background(), plan, tt.steps, tt.requestType)
			require.NoError(t, err)
			assert.Equal(t, tt.required, d.Required, "rationale: %s", d.Rationale)
			assert.NotEmpty(t, d.Rationale)
			assert.Equal(t, tt.risk, d.RiskScore)
			assert.Equal(t, 1.0, d.AgentTrust) // no agent executors referenced
		})
	}
}

func TestStepPredicates(t *testing.T) {
	assert.False(t, hasHighRiskStep(nil))
	assert.True(t, hasHighRiskStep([]*ent.Step{
		toolStep(step.RiskLevelLow, false),
		toolStep(step.RiskLevelHigh, false),
	}))

	assert.False(t, anyStepRequiresApproval([]*ent.Step{toolStep(step.RiskLevelHigh, false)}))
	assert.True(t, anyStepRequiresApproval([]*ent.Step{toolStep(step.RiskLevelLow, true)}))
}

func TestDeadlineDefault(t *testing.T) {
	assert.Equal(t, 24*time.Hour, New(nil, nil, nil, nil, config.ApprovalConfig{}).deadline())
	assert.Equal(t, 4*time.Hour, New(nil, nil, nil, nil, config.ApprovalConfig{DefaultDeadlineHours: 4}).deadline())
}
