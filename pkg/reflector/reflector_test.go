package reflector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/maestro/ent"
)

func TestPlanQuality(t *testing.T) {
	tests := []struct {
		name        string
		successRate float64
		riskScore   float64
		expectedMS  int64
		actualMS    int64
		want        float64
	}{
		{
			name:        "perfect run on budget",
			successRate: 1, riskScore: 0, expectedMS: 1000, actualMS: 1000,
			want: 1.0,
		},
		{
			name:        "perfect run under budget caps the time term",
			successRate: 1, riskScore: 0, expectedMS: 1000, actualMS: 500,
			want: 1.0,
		},
		{
			name:        "run twice over budget",
			successRate: 1, riskScore: 0, expectedMS: 1000, actualMS: 2000,
			want: 0.6 + 0.2 + 0.5*0.2,
		},
		{
			name:        "half the steps failed on a risky plan",
			successRate: 0.5, riskScore: 0.6, expectedMS: 1000, actualMS: 1000,
			want: 0.5*0.6 + 0.4*0.2 + 0.2,
		},
		{
			name:        "no duration recorded counts as on budget",
			successRate: 0.8, riskScore: 0.2, expectedMS: 1000, actualMS: 0,
			want: 0.8*0.6 + 0.8*0.2 + 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planQuality(tt.successRate, tt.riskScore, tt.expectedMS, tt.actualMS)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSuccessRate(t *testing.T) {
	t.Run("skipped steps do not count", func(t *testing.T) {
		steps := []*ent.Step{
			{State: "succeeded"},
			{State: "skipped"},
			{State: "succeeded"},
			{State: "failed"},
		}
		assert.InDelta(t, 2.0/3.0, successRate(steps), 1e-9)
	})

	t.Run("cancelled counts as attempted", func(t *testing.T) {
		steps := []*ent.Step{
			{State: "succeeded"},
			{State: "cancelled"},
		}
		assert.InDelta(t, 0.5, successRate(steps), 1e-9)
	})

	t.Run("nothing attempted", func(t *testing.T) {
		assert.Equal(t, 0.0, successRate([]*ent.Step{{State: "skipped"}}))
		assert.Equal(t, 0.0, successRate(nil))
	})
}

func TestDigestRequiresTaskKind(t *testing.T) {
	d := &Digester{reflector: &Reflector{}}
	err := d.digest(context.Background(), map[string]any{"error": "boom"})
	assert.ErrorContains(t, err, "task_kind")
}
