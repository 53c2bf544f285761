package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"direct object", `{"a": 1}`, `{"a": 1}`},
		{"direct array", `[1, 2]`, `[1, 2]`},
		{"leading prose", `Here is the plan: {"a": 1} hope it helps`, `{"a": 1}`},
		{"nested braces", `x {"a": {"b": 2}} y`, `{"a": {"b": 2}}`},
		{"braces inside strings", `{"a": "close } brace"}`, `{"a": "close } brace"}`},
		{"trailing comma repaired", `{"a": 1,}`, `{"a": 1}`},
		{"trailing comma in array", `result: [1, 2,]`, `[1, 2]`},
		{"fenced block", "prose\n```json\n{\"a\": 1}\n```\nmore", `{"a": 1}`},
		{"fence without language", "```\n[3]\n```", `[3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}

	t.Run("no json at all", func(t *testing.T) {
		_, err := extractJSON("I could not produce a plan, sorry.")
		assert.ErrorIs(t, err, errNoJSON)
	})
}

func TestAnalysisPrompt(t *testing.T) {
	req := Request{RequestType: models.RequestTypeCodeGeneration, Goal: "build the exporter"}

	t.Run("no recall", func(t *testing.T) {
		prompt := analysisPrompt(req, nil, "")
		assert.Contains(t, prompt, "build the exporter")
		assert.NotContains(t, prompt, "previously successful strategy")
	})

	t.Run("recalled body embedded as JSON", func(t *testing.T) {
		recalled := &ent.LearningPattern{
			Body:                map[string]any{"approach": "fetch then transform"},
			ObservedSuccessRate: 0.8,
		}
		prompt := analysisPrompt(req, recalled, "")
		assert.Contains(t, prompt, "success rate 80%")
		assert.Contains(t, prompt, `"approach":"fetch then transform"`)
	})

	t.Run("recalled pattern without a body is ignored", func(t *testing.T) {
		prompt := analysisPrompt(req, &ent.LearningPattern{ObservedSuccessRate: 0.5}, "")
		assert.NotContains(t, prompt, "previously successful strategy")
	})
}

func draft(name string, deps ...string) models.StepDraft {
	return models.StepDraft{
		Name:         name,
		Type:         models.StepAction,
		ExecutorKind: models.ExecutorInlineLLM,
		DependsOn:    deps,
		TimeoutMS:    1000,
		RiskLevel:    models.RiskLow,
	}
}

func TestOrderSteps(t *testing.T) {
	t.Run("topological order with first-seen ties", func(t *testing.T) {
		ordered, err := orderSteps([]models.StepDraft{
			draft("c", "a", "b"),
			draft("a"),
			draft("b", "a"),
			draft("d"),
		})
		require.NoError(t, err)

		names := make([]string, len(ordered))
		for i, d := range ordered {
			names[i] = d.Name
		}
		// a and d are both ready at the start; a was seen first among roots
		// of the original list order.
		assert.Equal(t, []string{"a", "d", "b", "c"}, names)
	})

	t.Run("cycle detected", func(t *testing.T) {
		_, err := orderSteps([]models.StepDraft{
			draft("a", "b"),
			draft("b", "a"),
		})
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, PhaseStructure, perr.Phase)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		_, err := orderSteps([]models.StepDraft{draft("a", "ghost")})
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, perr.Detail, "ghost")
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := orderSteps([]models.StepDraft{draft("a"), draft("a")})
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("self dependency", func(t *testing.T) {
		_, err := orderSteps([]models.StepDraft{draft("a", "a")})
		require.Error(t, err)
	})
}

func TestCriticalPathLength(t *testing.T) {
	assert.Equal(t, 0, criticalPathLength(nil))
	assert.Equal(t, 1, criticalPathLength([]models.StepDraft{draft("a"), draft("b")}))
	assert.Equal(t, 3, criticalPathLength([]models.StepDraft{
		draft("a"),
		draft("b", "a"),
		draft("c", "b"),
		draft("d"),
	}))
}

func TestRiskScore(t *testing.T) {
	t.Run("benign recalled plan with known tools", func(t *testing.T) {
		steps := []models.StepDraft{draft("a"), draft("b")}
		assert.InDelta(t, 0.0, riskScore(steps, 1.0, true), 1e-9)
	})

	t.Run("novel plan with unknown tools maxes the heuristic terms", func(t *testing.T) {
		steps := []models.StepDraft{draft("a")}
		steps[0].RiskLevel = models.RiskHigh
		steps[0].ApprovalRequired = true
		assert.InDelta(t, 1.0, riskScore(steps, 0.0, false), 1e-9)
	})

	t.Run("mixed", func(t *testing.T) {
		steps := []models.StepDraft{draft("a"), draft("b"), draft("c"), draft("d")}
		steps[0].RiskLevel = models.RiskHigh
		steps[1].ApprovalRequired = true
		// 0.2*0.25 + 0.2*0.25 + 0.3*0.5 + 0.3*0
		assert.InDelta(t, 0.25, riskScore(steps, 0.5, true), 1e-9)
	})

	t.Run("empty plan is maximally risky", func(t *testing.T) {
		assert.Equal(t, 1.0, riskScore(nil, 1.0, true))
	})
}

func TestParseStrategy(t *testing.T) {
	t.Run("complete object", func(t *testing.T) {
		s, err := parseStrategy(`{"approach":"stepwise","assumptions":["x"],"constraints":[],"success_criteria":["done"]}`)
		require.NoError(t, err)
		assert.Equal(t, "stepwise", s.Approach)
		assert.Equal(t, []string{"x"}, s.Assumptions)
	})

	t.Run("absent keys default-filled", func(t *testing.T) {
		s, err := parseStrategy(`{"approach":""}`)
		require.NoError(t, err)
		assert.Equal(t, "direct", s.Approach)
		assert.NotNil(t, s.Assumptions)
		assert.Equal(t, []string{"request satisfied"}, s.SuccessCriteria)
	})

	t.Run("unparseable", func(t *testing.T) {
		_, err := parseStrategy("no json here")
		assert.Error(t, err)
	})
}

func TestParseSteps(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		steps, err := parseSteps(`[{"name":"analyze","type":"action","executor_kind":"inline_llm"}]`, "wf-1")
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, int64(300_000), steps[0].TimeoutMS)
		assert.Equal(t, models.RiskMedium, steps[0].RiskLevel)
		assert.Equal(t, 3, steps[0].Retry.MaxAttempts)
	})

	t.Run("wrapped in steps key", func(t *testing.T) {
		steps, err := parseSteps(`{"steps":[{"name":"a"},{"name":"b","depends_on":["a"]}]}`, "wf-1")
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, models.StepAction, steps[0].Type)
		assert.Equal(t, models.ExecutorInlineLLM, steps[1].ExecutorKind)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := parseSteps(`[]`, "wf-1")
		assert.Error(t, err)
	})
}

// The alternative-selection scenario: conservative is slow but safe,
// aggressive is fast but risky, balanced wins under the default weights.
func TestSelectWinner(t *testing.T) {
	conservative := &candidate{
		strategyName: "conservative",
		risk:         0.1,
		steps: []models.StepDraft{
			draft("a"), draft("b", "a"), draft("c", "b"), draft("d", "c"),
		},
	}
	balanced := &candidate{
		strategyName: "balanced",
		risk:         0.3,
		steps: []models.StepDraft{
			draft("a"), draft("b", "a"), draft("c", "a"),
		},
	}
	aggressive := &candidate{
		strategyName: "aggressive",
		risk:         0.7,
		steps: []models.StepDraft{
			draft("a"), draft("b"),
		},
	}
	aggressive.steps[0].ApprovalRequired = true
	aggressive.steps[1].ApprovalRequired = true

	p := New(nil, config.PlannerConfig{})
	winner := p.selectWinner([]*candidate{conservative, balanced, aggressive})
	assert.Equal(t, "balanced", []*candidate{conservative, balanced, aggressive}[winner].strategyName)
}

func TestScoreCandidate(t *testing.T) {
	c := &candidate{
		risk: 0.4,
		steps: []models.StepDraft{
			draft("a"), draft("b", "a"), draft("c", "a"), draft("d"),
		},
	}
	c.steps[3].ApprovalRequired = true

	s := scoreCandidate(c, 8000)
	assert.InDelta(t, 0.5, s.Time, 1e-9) // 4×1000ms over a max of 8000ms
	assert.InDelta(t, 0.25, s.ApprovalPoints, 1e-9)
	assert.InDelta(t, 0.4, s.Risk, 1e-9)
	assert.InDelta(t, 0.75, s.Efficiency, 1e-9) // critical path 2 of 4 steps
}

func TestWeightsOverride(t *testing.T) {
	p := New(nil, config.PlannerConfig{EvaluationWeights: map[string]float64{
		"risk":    0.6,
		"unknown": 9,
	}})
	w := p.weights()
	assert.Equal(t, 0.6, w["risk"])
	assert.Equal(t, 0.3, w["time"])
	assert.NotContains(t, w, "unknown")
}

func TestPlanIndex(t *testing.T) {
	// Winner is emitted first; remaining candidates follow in order.
	assert.Equal(t, 1, planIndex(0, 1))
	assert.Equal(t, 0, planIndex(1, 1))
	assert.Equal(t, 2, planIndex(2, 1))
	assert.Equal(t, 0, planIndex(0, 0))
	assert.Equal(t, 1, planIndex(1, 0))
}

func TestRequestSignatureStability(t *testing.T) {
	a := models.RequestSignature(models.RequestTypeCodeGeneration, "Write a factorial function in Go")
	b := models.RequestSignature(models.RequestTypeCodeGeneration, "write a FACTORIAL function, in go!")
	c := models.RequestSignature(models.RequestTypeCodeGeneration, "Deploy service X to production")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "req:CODE_GENERATION:")
}
