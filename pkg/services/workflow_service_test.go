package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

func TestCreateWorkflowValidation(t *testing.T) {
	svc := &WorkflowService{}
	model := "llama-70b"
	badTemp := 3.5

	tests := []struct {
		name  string
		req   models.CreateWorkflowRequest
		field string
	}{
		{
			name:  "message is required",
			req:   models.CreateWorkflowRequest{},
			field: "message",
		},
		{
			name: "pinned model needs a server",
			req: models.CreateWorkflowRequest{
				Message:       "do the thing",
				ModelOverride: &model,
			},
			field: "model",
		},
		{
			name: "temperature out of range",
			req: models.CreateWorkflowRequest{
				Message:     "do the thing",
				Temperature: &badTemp,
			},
			field: "temperature",
		},
		{
			name: "unknown task type",
			req: models.CreateWorkflowRequest{
				Message:     "do the thing",
				RequestType: "BANANA",
			},
			field: "task_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWorkflow(context.Background(), tt.req)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreatePlanningWorkflowValidation(t *testing.T) {
	svc := &PlanService{}
	_, err := svc.CreatePlanningWorkflow(context.Background(), CreatePlanOnlyRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRemapIDs(t *testing.T) {
	idMap := map[string]string{"a": "x", "b": "y"}

	assert.Equal(t, []string{"x", "y"}, remapIDs([]string{"a", "b"}, idMap))
	assert.Equal(t, []string{"x"}, remapIDs([]string{"a", "unknown"}, idMap))
	assert.Nil(t, remapIDs(nil, idMap))
}

func TestResultOf(t *testing.T) {
	created := time.Now().Add(-3 * time.Second)
	completed := created.Add(2500 * time.Millisecond)
	response := "forty two"
	model := "qwen-32b"

	wf := &ent.Workflow{
		ID:          "wf-1",
		SessionID:   "sess-1",
		Status:      "completed",
		RequestType: "SIMPLE_QUESTION",
		Response:    &response,
		ModelUsed:   &model,
		CreatedAt:   created,
		CompletedAt: &completed,
	}

	result := resultOf(wf)
	assert.Equal(t, "wf-1", result.WorkflowID)
	assert.Equal(t, models.WorkflowCompleted, result.Status)
	assert.Equal(t, models.RequestTypeSimpleQuestion, result.TaskType)
	assert.Equal(t, "forty two", result.Response)
	assert.Equal(t, "qwen-32b", result.Model)
	assert.Equal(t, int64(2500), result.DurationMS)
}
