// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/maestro/ent/agentspec"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/checkpoint"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/prompt"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
	"github.com/codeready-toolchain/maestro/ent/queuetask"
	"github.com/codeready-toolchain/maestro/ent/schema"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentspecFields := schema.AgentSpec{}.Fields()
	_ = agentspecFields
	// agentspecDescModelClass is the schema descriptor for model_class field.
	agentspecDescModelClass := agentspecFields[4].Descriptor()
	// agentspec.DefaultModelClass holds the default value on creation for the model_class field.
	agentspec.DefaultModelClass = agentspecDescModelClass.Default.(string)
	// agentspecDescTotalRuns is the schema descriptor for total_runs field.
	agentspecDescTotalRuns := agentspecFields[6].Descriptor()
	// agentspec.DefaultTotalRuns holds the default value on creation for the total_runs field.
	agentspec.DefaultTotalRuns = agentspecDescTotalRuns.Default.(int64)
	// agentspecDescSuccesses is the schema descriptor for successes field.
	agentspecDescSuccesses := agentspecFields[7].Descriptor()
	// agentspec.DefaultSuccesses holds the default value on creation for the successes field.
	agentspec.DefaultSuccesses = agentspecDescSuccesses.Default.(int64)
	// agentspecDescFailures is the schema descriptor for failures field.
	agentspecDescFailures := agentspecFields[8].Descriptor()
	// agentspec.DefaultFailures holds the default value on creation for the failures field.
	agentspec.DefaultFailures = agentspecDescFailures.Default.(int64)
	// agentspecDescAvgLatencyMs is the schema descriptor for avg_latency_ms field.
	agentspecDescAvgLatencyMs := agentspecFields[9].Descriptor()
	// agentspec.DefaultAvgLatencyMs holds the default value on creation for the avg_latency_ms field.
	agentspec.DefaultAvgLatencyMs = agentspecDescAvgLatencyMs.Default.(float64)
	// agentspecDescVersion is the schema descriptor for version field.
	agentspecDescVersion := agentspecFields[10].Descriptor()
	// agentspec.DefaultVersion holds the default value on creation for the version field.
	agentspec.DefaultVersion = agentspecDescVersion.Default.(int)
	// agentspecDescCreatedAt is the schema descriptor for created_at field.
	agentspecDescCreatedAt := agentspecFields[11].Descriptor()
	// agentspec.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentspec.DefaultCreatedAt = agentspecDescCreatedAt.Default.(func() time.Time)
	// agentspecDescUpdatedAt is the schema descriptor for updated_at field.
	agentspecDescUpdatedAt := agentspecFields[12].Descriptor()
	// agentspec.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentspec.DefaultUpdatedAt = agentspecDescUpdatedAt.Default.(func() time.Time)
	// agentspec.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentspec.UpdateDefaultUpdatedAt = agentspecDescUpdatedAt.UpdateDefault.(func() time.Time)
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescCreatedAt is the schema descriptor for created_at field.
	approvalrequestDescCreatedAt := approvalrequestFields[11].Descriptor()
	// approvalrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrequest.DefaultCreatedAt = approvalrequestDescCreatedAt.Default.(func() time.Time)
	// approvalrequestDescUpdatedAt is the schema descriptor for updated_at field.
	approvalrequestDescUpdatedAt := approvalrequestFields[12].Descriptor()
	// approvalrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approvalrequest.DefaultUpdatedAt = approvalrequestDescUpdatedAt.Default.(func() time.Time)
	// approvalrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approvalrequest.UpdateDefaultUpdatedAt = approvalrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[7].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	executioneventFields := schema.ExecutionEvent{}.Fields()
	_ = executioneventFields
	// executioneventDescCreatedAt is the schema descriptor for created_at field.
	executioneventDescCreatedAt := executioneventFields[17].Descriptor()
	// executionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionevent.DefaultCreatedAt = executioneventDescCreatedAt.Default.(func() time.Time)
	learningpatternFields := schema.LearningPattern{}.Fields()
	_ = learningpatternFields
	// learningpatternDescObservedSuccessRate is the schema descriptor for observed_success_rate field.
	learningpatternDescObservedSuccessRate := learningpatternFields[5].Descriptor()
	// learningpattern.DefaultObservedSuccessRate holds the default value on creation for the observed_success_rate field.
	learningpattern.DefaultObservedSuccessRate = learningpatternDescObservedSuccessRate.Default.(float64)
	// learningpatternDescSampleCount is the schema descriptor for sample_count field.
	learningpatternDescSampleCount := learningpatternFields[6].Descriptor()
	// learningpattern.DefaultSampleCount holds the default value on creation for the sample_count field.
	learningpattern.DefaultSampleCount = learningpatternDescSampleCount.Default.(int64)
	// learningpatternDescLastObservedAt is the schema descriptor for last_observed_at field.
	learningpatternDescLastObservedAt := learningpatternFields[7].Descriptor()
	// learningpattern.DefaultLastObservedAt holds the default value on creation for the last_observed_at field.
	learningpattern.DefaultLastObservedAt = learningpatternDescLastObservedAt.Default.(func() time.Time)
	// learningpatternDescCreatedAt is the schema descriptor for created_at field.
	learningpatternDescCreatedAt := learningpatternFields[8].Descriptor()
	// learningpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningpattern.DefaultCreatedAt = learningpatternDescCreatedAt.Default.(func() time.Time)
	// learningpatternDescUpdatedAt is the schema descriptor for updated_at field.
	learningpatternDescUpdatedAt := learningpatternFields[9].Descriptor()
	// learningpattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningpattern.DefaultUpdatedAt = learningpatternDescUpdatedAt.Default.(func() time.Time)
	// learningpattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningpattern.UpdateDefaultUpdatedAt = learningpatternDescUpdatedAt.UpdateDefault.(func() time.Time)
	modelendpointFields := schema.ModelEndpoint{}.Fields()
	_ = modelendpointFields
	// modelendpointDescMaxConcurrent is the schema descriptor for max_concurrent field.
	modelendpointDescMaxConcurrent := modelendpointFields[5].Descriptor()
	// modelendpoint.DefaultMaxConcurrent holds the default value on creation for the max_concurrent field.
	modelendpoint.DefaultMaxConcurrent = modelendpointDescMaxConcurrent.Default.(int)
	// modelendpoint.MaxConcurrentValidator is a validator for the "max_concurrent" field. It is called by the builders before save.
	modelendpoint.MaxConcurrentValidator = modelendpointDescMaxConcurrent.Validators[0].(func(int) error)
	// modelendpointDescPriority is the schema descriptor for priority field.
	modelendpointDescPriority := modelendpointFields[6].Descriptor()
	// modelendpoint.DefaultPriority holds the default value on creation for the priority field.
	modelendpoint.DefaultPriority = modelendpointDescPriority.Default.(int)
	// modelendpointDescHealthy is the schema descriptor for healthy field.
	modelendpointDescHealthy := modelendpointFields[8].Descriptor()
	// modelendpoint.DefaultHealthy holds the default value on creation for the healthy field.
	modelendpoint.DefaultHealthy = modelendpointDescHealthy.Default.(bool)
	// modelendpointDescTotalRequests is the schema descriptor for total_requests field.
	modelendpointDescTotalRequests := modelendpointFields[10].Descriptor()
	// modelendpoint.DefaultTotalRequests holds the default value on creation for the total_requests field.
	modelendpoint.DefaultTotalRequests = modelendpointDescTotalRequests.Default.(int64)
	// modelendpointDescSuccesses is the schema descriptor for successes field.
	modelendpointDescSuccesses := modelendpointFields[11].Descriptor()
	// modelendpoint.DefaultSuccesses holds the default value on creation for the successes field.
	modelendpoint.DefaultSuccesses = modelendpointDescSuccesses.Default.(int64)
	// modelendpointDescFailures is the schema descriptor for failures field.
	modelendpointDescFailures := modelendpointFields[12].Descriptor()
	// modelendpoint.DefaultFailures holds the default value on creation for the failures field.
	modelendpoint.DefaultFailures = modelendpointDescFailures.Default.(int64)
	// modelendpointDescAvgLatencyMs is the schema descriptor for avg_latency_ms field.
	modelendpointDescAvgLatencyMs := modelendpointFields[13].Descriptor()
	// modelendpoint.DefaultAvgLatencyMs holds the default value on creation for the avg_latency_ms field.
	modelendpoint.DefaultAvgLatencyMs = modelendpointDescAvgLatencyMs.Default.(float64)
	// modelendpointDescVersion is the schema descriptor for version field.
	modelendpointDescVersion := modelendpointFields[14].Descriptor()
	// modelendpoint.DefaultVersion holds the default value on creation for the version field.
	modelendpoint.DefaultVersion = modelendpointDescVersion.Default.(int)
	// modelendpointDescCreatedAt is the schema descriptor for created_at field.
	modelendpointDescCreatedAt := modelendpointFields[15].Descriptor()
	// modelendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelendpoint.DefaultCreatedAt = modelendpointDescCreatedAt.Default.(func() time.Time)
	// modelendpointDescUpdatedAt is the schema descriptor for updated_at field.
	modelendpointDescUpdatedAt := modelendpointFields[16].Descriptor()
	// modelendpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelendpoint.DefaultUpdatedAt = modelendpointDescUpdatedAt.Default.(func() time.Time)
	// modelendpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelendpoint.UpdateDefaultUpdatedAt = modelendpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescRiskScore is the schema descriptor for risk_score field.
	planDescRiskScore := planFields[6].Descriptor()
	// plan.DefaultRiskScore holds the default value on creation for the risk_score field.
	plan.DefaultRiskScore = planDescRiskScore.Default.(float64)
	// planDescPrimary is the schema descriptor for primary field.
	planDescPrimary := planFields[8].Descriptor()
	// plan.DefaultPrimary holds the default value on creation for the primary field.
	plan.DefaultPrimary = planDescPrimary.Default.(bool)
	// planDescExpectedDurationMs is the schema descriptor for expected_duration_ms field.
	planDescExpectedDurationMs := planFields[10].Descriptor()
	// plan.DefaultExpectedDurationMs holds the default value on creation for the expected_duration_ms field.
	plan.DefaultExpectedDurationMs = planDescExpectedDurationMs.Default.(int64)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[13].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planFields[14].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescVersion is the schema descriptor for version field.
	promptDescVersion := promptFields[2].Descriptor()
	// prompt.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	prompt.VersionValidator = promptDescVersion.Validators[0].(func(int) error)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[5].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	promptassignmentFields := schema.PromptAssignment{}.Fields()
	_ = promptassignmentFields
	// promptassignmentDescScopeValue is the schema descriptor for scope_value field.
	promptassignmentDescScopeValue := promptassignmentFields[4].Descriptor()
	// promptassignment.DefaultScopeValue holds the default value on creation for the scope_value field.
	promptassignment.DefaultScopeValue = promptassignmentDescScopeValue.Default.(string)
	// promptassignmentDescPromptVersion is the schema descriptor for prompt_version field.
	promptassignmentDescPromptVersion := promptassignmentFields[6].Descriptor()
	// promptassignment.PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	promptassignment.PromptVersionValidator = promptassignmentDescPromptVersion.Validators[0].(func(int) error)
	// promptassignmentDescLegacyExempt is the schema descriptor for legacy_exempt field.
	promptassignmentDescLegacyExempt := promptassignmentFields[7].Descriptor()
	// promptassignment.DefaultLegacyExempt holds the default value on creation for the legacy_exempt field.
	promptassignment.DefaultLegacyExempt = promptassignmentDescLegacyExempt.Default.(bool)
	// promptassignmentDescCreatedAt is the schema descriptor for created_at field.
	promptassignmentDescCreatedAt := promptassignmentFields[8].Descriptor()
	// promptassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptassignment.DefaultCreatedAt = promptassignmentDescCreatedAt.Default.(func() time.Time)
	// promptassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	promptassignmentDescUpdatedAt := promptassignmentFields[9].Descriptor()
	// promptassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	promptassignment.DefaultUpdatedAt = promptassignmentDescUpdatedAt.Default.(func() time.Time)
	// promptassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	promptassignment.UpdateDefaultUpdatedAt = promptassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	queuetaskFields := schema.QueueTask{}.Fields()
	_ = queuetaskFields
	// queuetaskDescPriority is the schema descriptor for priority field.
	queuetaskDescPriority := queuetaskFields[3].Descriptor()
	// queuetask.DefaultPriority holds the default value on creation for the priority field.
	queuetask.DefaultPriority = queuetaskDescPriority.Default.(int)
	// queuetask.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	queuetask.PriorityValidator = func() func(int) error {
		validators := queuetaskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// queuetaskDescAttempts is the schema descriptor for attempts field.
	queuetaskDescAttempts := queuetaskFields[5].Descriptor()
	// queuetask.DefaultAttempts holds the default value on creation for the attempts field.
	queuetask.DefaultAttempts = queuetaskDescAttempts.Default.(int)
	// queuetaskDescMaxAttempts is the schema descriptor for max_attempts field.
	queuetaskDescMaxAttempts := queuetaskFields[6].Descriptor()
	// queuetask.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	queuetask.DefaultMaxAttempts = queuetaskDescMaxAttempts.Default.(int)
	// queuetaskDescNextVisibleAt is the schema descriptor for next_visible_at field.
	queuetaskDescNextVisibleAt := queuetaskFields[11].Descriptor()
	// queuetask.DefaultNextVisibleAt holds the default value on creation for the next_visible_at field.
	queuetask.DefaultNextVisibleAt = queuetaskDescNextVisibleAt.Default.(func() time.Time)
	// queuetaskDescEnqueuedAt is the schema descriptor for enqueued_at field.
	queuetaskDescEnqueuedAt := queuetaskFields[13].Descriptor()
	// queuetask.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	queuetask.DefaultEnqueuedAt = queuetaskDescEnqueuedAt.Default.(func() time.Time)
	// queuetaskDescUpdatedAt is the schema descriptor for updated_at field.
	queuetaskDescUpdatedAt := queuetaskFields[14].Descriptor()
	// queuetask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queuetask.DefaultUpdatedAt = queuetaskDescUpdatedAt.Default.(func() time.Time)
	// queuetask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queuetask.UpdateDefaultUpdatedAt = queuetaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescTimeoutMs is the schema descriptor for timeout_ms field.
	stepDescTimeoutMs := stepFields[13].Descriptor()
	// step.DefaultTimeoutMs holds the default value on creation for the timeout_ms field.
	step.DefaultTimeoutMs = stepDescTimeoutMs.Default.(int64)
	// stepDescMaxAttempts is the schema descriptor for max_attempts field.
	stepDescMaxAttempts := stepFields[14].Descriptor()
	// step.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	step.DefaultMaxAttempts = stepDescMaxAttempts.Default.(int)
	// stepDescBackoffBaseMs is the schema descriptor for backoff_base_ms field.
	stepDescBackoffBaseMs := stepFields[15].Descriptor()
	// step.DefaultBackoffBaseMs holds the default value on creation for the backoff_base_ms field.
	step.DefaultBackoffBaseMs = stepDescBackoffBaseMs.Default.(int64)
	// stepDescApprovalRequired is the schema descriptor for approval_required field.
	stepDescApprovalRequired := stepFields[16].Descriptor()
	// step.DefaultApprovalRequired holds the default value on creation for the approval_required field.
	step.DefaultApprovalRequired = stepDescApprovalRequired.Default.(bool)
	// stepDescAttempts is the schema descriptor for attempts field.
	stepDescAttempts := stepFields[21].Descriptor()
	// step.DefaultAttempts holds the default value on creation for the attempts field.
	step.DefaultAttempts = stepDescAttempts.Default.(int)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[27].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	// stepDescUpdatedAt is the schema descriptor for updated_at field.
	stepDescUpdatedAt := stepFields[28].Descriptor()
	// step.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	step.DefaultUpdatedAt = stepDescUpdatedAt.Default.(func() time.Time)
	// step.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	step.UpdateDefaultUpdatedAt = stepDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolspecFields := schema.ToolSpec{}.Fields()
	_ = toolspecFields
	// toolspecDescDefaultTimeoutMs is the schema descriptor for default_timeout_ms field.
	toolspecDescDefaultTimeoutMs := toolspecFields[8].Descriptor()
	// toolspec.DefaultDefaultTimeoutMs holds the default value on creation for the default_timeout_ms field.
	toolspec.DefaultDefaultTimeoutMs = toolspecDescDefaultTimeoutMs.Default.(int64)
	// toolspecDescTotalRuns is the schema descriptor for total_runs field.
	toolspecDescTotalRuns := toolspecFields[9].Descriptor()
	// toolspec.DefaultTotalRuns holds the default value on creation for the total_runs field.
	toolspec.DefaultTotalRuns = toolspecDescTotalRuns.Default.(int64)
	// toolspecDescSuccesses is the schema descriptor for successes field.
	toolspecDescSuccesses := toolspecFields[10].Descriptor()
	// toolspec.DefaultSuccesses holds the default value on creation for the successes field.
	toolspec.DefaultSuccesses = toolspecDescSuccesses.Default.(int64)
	// toolspecDescFailures is the schema descriptor for failures field.
	toolspecDescFailures := toolspecFields[11].Descriptor()
	// toolspec.DefaultFailures holds the default value on creation for the failures field.
	toolspec.DefaultFailures = toolspecDescFailures.Default.(int64)
	// toolspecDescAvgLatencyMs is the schema descriptor for avg_latency_ms field.
	toolspecDescAvgLatencyMs := toolspecFields[12].Descriptor()
	// toolspec.DefaultAvgLatencyMs holds the default value on creation for the avg_latency_ms field.
	toolspec.DefaultAvgLatencyMs = toolspecDescAvgLatencyMs.Default.(float64)
	// toolspecDescVersion is the schema descriptor for version field.
	toolspecDescVersion := toolspecFields[13].Descriptor()
	// toolspec.DefaultVersion holds the default value on creation for the version field.
	toolspec.DefaultVersion = toolspecDescVersion.Default.(int)
	// toolspecDescCreatedAt is the schema descriptor for created_at field.
	toolspecDescCreatedAt := toolspecFields[14].Descriptor()
	// toolspec.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolspec.DefaultCreatedAt = toolspecDescCreatedAt.Default.(func() time.Time)
	// toolspecDescUpdatedAt is the schema descriptor for updated_at field.
	toolspecDescUpdatedAt := toolspecFields[15].Descriptor()
	// toolspec.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	toolspec.DefaultUpdatedAt = toolspecDescUpdatedAt.Default.(func() time.Time)
	// toolspec.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	toolspec.UpdateDefaultUpdatedAt = toolspecDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescEventSequence is the schema descriptor for event_sequence field.
	workflowDescEventSequence := workflowFields[16].Descriptor()
	// workflow.DefaultEventSequence holds the default value on creation for the event_sequence field.
	workflow.DefaultEventSequence = workflowDescEventSequence.Default.(int64)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[20].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[21].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
