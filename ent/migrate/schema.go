// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSpecsColumns holds the columns for the "agent_specs" table.
	AgentSpecsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "waiting_approval", "active", "paused", "deprecated"}, Default: "draft"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "model_class", Type: field.TypeString, Default: "reasoning"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_runs", Type: field.TypeInt64, Default: 0},
		{Name: "successes", Type: field.TypeInt64, Default: 0},
		{Name: "failures", Type: field.TypeInt64, Default: 0},
		{Name: "avg_latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentSpecsTable holds the schema information for the "agent_specs" table.
	AgentSpecsTable = &schema.Table{
		Name:       "agent_specs",
		Columns:    AgentSpecsColumns,
		PrimaryKey: []*schema.Column{AgentSpecsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentspec_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSpecsColumns[2]},
			},
		},
	}
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "plan_id", Type: field.TypeString, Nullable: true},
		{Name: "artifact_ref", Type: field.TypeString},
		{Name: "risk_assessment", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "modified", "expired"}, Default: "pending"},
		{Name: "decision_deadline", Type: field.TypeTime},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_requests_workflows_approval_requests",
				Columns:    []*schema.Column{ApprovalRequestsColumns[12]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_status_decision_deadline",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[5], ApprovalRequestsColumns[6]},
			},
			{
				Name:    "approvalrequest_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[12]},
			},
			{
				Name:    "approvalrequest_plan_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[1]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "state_blob", Type: field.TypeBytes},
		{Name: "integrity_hash", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_entity_type_entity_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[2], CheckpointsColumns[7]},
			},
		},
	}
	// ExecutionEventsColumns holds the columns for the "execution_events" table.
	ExecutionEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"workflow.start", "workflow.complete", "workflow.failed", "workflow.cancelled", "workflow.paused", "workflow.resumed", "stage.started", "stage.completed", "stage.failed", "model_request", "model_response", "step.started", "step.completed", "step.failed", "step.skipped", "step.cancelled", "plan.created", "plan.superseded", "plan.completed", "plan.failed", "approval.requested", "approval.decided", "checkpoint.created", "slow_progress", "queue.dead_letter", "subscriber.lag"}},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"interpretation", "validator_a", "routing", "planning", "validator_b", "execution", "reflection", "registry_update"}},
		{Name: "component_role", Type: field.TypeString},
		{Name: "component_name", Type: field.TypeString},
		{Name: "decision_source", Type: field.TypeEnum, Enums: []string{"component", "registry", "human"}},
		{Name: "status", Type: field.TypeString},
		{Name: "input_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reason_code", Type: field.TypeString, Nullable: true},
		{Name: "parent_event_id", Type: field.TypeString, Nullable: true},
		{Name: "prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version", Type: field.TypeInt, Nullable: true},
		{Name: "event_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// ExecutionEventsTable holds the schema information for the "execution_events" table.
	ExecutionEventsTable = &schema.Table{
		Name:       "execution_events",
		Columns:    ExecutionEventsColumns,
		PrimaryKey: []*schema.Column{ExecutionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_events_workflows_execution_events",
				Columns:    []*schema.Column{ExecutionEventsColumns[17]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionevent_workflow_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ExecutionEventsColumns[17], ExecutionEventsColumns[2]},
			},
			{
				Name:    "executionevent_workflow_id_parent_event_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[17], ExecutionEventsColumns[12]},
			},
			{
				Name:    "executionevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[16]},
			},
		},
	}
	// LearningPatternsColumns holds the columns for the "learning_patterns" table.
	LearningPatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"strategy", "prompt", "tool_selection", "code_pattern", "error_recovery"}},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"micro", "meso", "macro"}, Default: "macro"},
		{Name: "signature", Type: field.TypeString},
		{Name: "body", Type: field.TypeJSON, Nullable: true},
		{Name: "observed_success_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "sample_count", Type: field.TypeInt64, Default: 0},
		{Name: "last_observed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningPatternsTable holds the schema information for the "learning_patterns" table.
	LearningPatternsTable = &schema.Table{
		Name:       "learning_patterns",
		Columns:    LearningPatternsColumns,
		PrimaryKey: []*schema.Column{LearningPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpattern_kind_signature",
				Unique:  true,
				Columns: []*schema.Column{LearningPatternsColumns[1], LearningPatternsColumns[3]},
			},
			{
				Name:    "learningpattern_kind_observed_success_rate",
				Unique:  false,
				Columns: []*schema.Column{LearningPatternsColumns[1], LearningPatternsColumns[5]},
			},
		},
	}
	// ModelEndpointsColumns holds the columns for the "model_endpoints" table.
	ModelEndpointsColumns = []*schema.Column{
		{Name: "model_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "capabilities", Type: field.TypeJSON},
		{Name: "max_concurrent", Type: field.TypeInt, Default: 4},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "waiting_approval", "active", "paused", "deprecated"}, Default: "active"},
		{Name: "healthy", Type: field.TypeBool, Default: false},
		{Name: "last_health_check", Type: field.TypeTime, Nullable: true},
		{Name: "total_requests", Type: field.TypeInt64, Default: 0},
		{Name: "successes", Type: field.TypeInt64, Default: 0},
		{Name: "failures", Type: field.TypeInt64, Default: 0},
		{Name: "avg_latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelEndpointsTable holds the schema information for the "model_endpoints" table.
	ModelEndpointsTable = &schema.Table{
		Name:       "model_endpoints",
		Columns:    ModelEndpointsColumns,
		PrimaryKey: []*schema.Column{ModelEndpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelendpoint_status_healthy",
				Unique:  false,
				Columns: []*schema.Column{ModelEndpointsColumns[7], ModelEndpointsColumns[8]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "strategy_name", Type: field.TypeString, Nullable: true},
		{Name: "strategy", Type: field.TypeJSON},
		{Name: "risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "alternatives", Type: field.TypeJSON, Nullable: true},
		{Name: "primary", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending_approval", "approved", "executing", "paused", "completed", "failed", "superseded"}, Default: "draft"},
		{Name: "expected_duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "actual_duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "reason_code", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plans_workflows_plans",
				Columns:    []*schema.Column{PlansColumns[14]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plan_workflow_id_version",
				Unique:  true,
				Columns: []*schema.Column{PlansColumns[14], PlansColumns[1]},
			},
			{
				Name:    "plan_status",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[8]},
			},
			{
				Name:    "plan_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[14], PlansColumns[8]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_prompt_id_version",
				Unique:  true,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[2]},
			},
		},
	}
	// PromptAssignmentsColumns holds the columns for the "prompt_assignments" table.
	PromptAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"interpretation", "validator_a", "routing", "planning", "validator_b", "execution", "reflection", "registry_update"}},
		{Name: "component_role", Type: field.TypeString},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"experiment", "agent", "default"}, Default: "default"},
		{Name: "scope_value", Type: field.TypeString, Default: ""},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeInt},
		{Name: "legacy_exempt", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptAssignmentsTable holds the schema information for the "prompt_assignments" table.
	PromptAssignmentsTable = &schema.Table{
		Name:       "prompt_assignments",
		Columns:    PromptAssignmentsColumns,
		PrimaryKey: []*schema.Column{PromptAssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptassignment_stage_component_role_scope_type_scope_value",
				Unique:  true,
				Columns: []*schema.Column{PromptAssignmentsColumns[1], PromptAssignmentsColumns[2], PromptAssignmentsColumns[3], PromptAssignmentsColumns[4]},
			},
			{
				Name:    "promptassignment_prompt_id",
				Unique:  false,
				Columns: []*schema.Column{PromptAssignmentsColumns[5]},
			},
		},
	}
	// QueueTasksColumns holds the columns for the "queue_tasks" table.
	QueueTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "queue_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 4},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"queued", "leased", "succeeded", "failed", "dead"}, Default: "queued"},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "leased_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_visible_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueueTasksTable holds the schema information for the "queue_tasks" table.
	QueueTasksTable = &schema.Table{
		Name:       "queue_tasks",
		Columns:    QueueTasksColumns,
		PrimaryKey: []*schema.Column{QueueTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuetask_queue_id_state_next_visible_at_priority_enqueued_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[1], QueueTasksColumns[7], QueueTasksColumns[11], QueueTasksColumns[3], QueueTasksColumns[13]},
			},
			{
				Name:    "queuetask_state_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{QueueTasksColumns[7], QueueTasksColumns[9]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "index", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"action", "decision", "validation"}, Default: "action"},
		{Name: "executor_kind", Type: field.TypeEnum, Enums: []string{"agent", "tool", "team", "inline_llm"}, Default: "inline_llm"},
		{Name: "executor_ref", Type: field.TypeString, Nullable: true},
		{Name: "team_members", Type: field.TypeJSON, Nullable: true},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "timeout_ms", Type: field.TypeInt64, Default: 300000},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "backoff_base_ms", Type: field.TypeInt64, Default: 1000},
		{Name: "approval_required", Type: field.TypeBool, Default: false},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "function_call", Type: field.TypeJSON, Nullable: true},
		{Name: "checks", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"waiting", "ready", "running", "succeeded", "failed", "skipped", "cancelled"}, Default: "waiting"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "reason_code", Type: field.TypeString, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_plans_plan_steps",
				Columns:    []*schema.Column{StepsColumns[27]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "steps_workflows_steps",
				Columns:    []*schema.Column{StepsColumns[28]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_plan_id_index",
				Unique:  true,
				Columns: []*schema.Column{StepsColumns[27], StepsColumns[1]},
			},
			{
				Name:    "step_plan_id_state",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[27], StepsColumns[18]},
			},
			{
				Name:    "step_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[28]},
			},
		},
	}
	// ToolSpecsColumns holds the columns for the "tool_specs" table.
	ToolSpecsColumns = []*schema.Column{
		{Name: "tool_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "waiting_approval", "active", "paused", "deprecated"}, Default: "draft"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "input_schema", Type: field.TypeJSON},
		{Name: "output_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "command", Type: field.TypeJSON, Nullable: true},
		{Name: "handler", Type: field.TypeString, Nullable: true},
		{Name: "default_timeout_ms", Type: field.TypeInt64, Default: 300000},
		{Name: "total_runs", Type: field.TypeInt64, Default: 0},
		{Name: "successes", Type: field.TypeInt64, Default: 0},
		{Name: "failures", Type: field.TypeInt64, Default: 0},
		{Name: "avg_latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ToolSpecsTable holds the schema information for the "tool_specs" table.
	ToolSpecsTable = &schema.Table{
		Name:       "tool_specs",
		Columns:    ToolSpecsColumns,
		PrimaryKey: []*schema.Column{ToolSpecsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolspec_status",
				Unique:  false,
				Columns: []*schema.Column{ToolSpecsColumns[2]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "request_type", Type: field.TypeEnum, Enums: []string{"SIMPLE_QUESTION", "INFORMATION_QUERY", "CODE_GENERATION", "COMPLEX_TASK", "PLANNING_ONLY"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_override", Type: field.TypeString, Nullable: true},
		{Name: "server_override", Type: field.TypeString, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "current_stage", Type: field.TypeEnum, Enums: []string{"interpretation", "validator_a", "routing", "planning", "validator_b", "execution", "reflection", "registry_update"}, Default: "interpretation"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "reason_code", Type: field.TypeString, Nullable: true},
		{Name: "failing_event_id", Type: field.TypeString, Nullable: true},
		{Name: "event_sequence", Type: field.TypeInt64, Default: 0},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[9]},
			},
			{
				Name:    "workflow_session_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[1]},
			},
			{
				Name:    "workflow_request_type",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[2]},
			},
			{
				Name:    "workflow_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[9], WorkflowsColumns[20]},
			},
			{
				Name:    "workflow_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[9], WorkflowsColumns[18]},
			},
			{
				Name:    "workflow_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[23]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSpecsTable,
		ApprovalRequestsTable,
		CheckpointsTable,
		ExecutionEventsTable,
		LearningPatternsTable,
		ModelEndpointsTable,
		PlansTable,
		PromptsTable,
		PromptAssignmentsTable,
		QueueTasksTable,
		StepsTable,
		ToolSpecsTable,
		WorkflowsTable,
	}
)

func init() {
	ApprovalRequestsTable.ForeignKeys[0].RefTable = WorkflowsTable
	ExecutionEventsTable.ForeignKeys[0].RefTable = WorkflowsTable
	PlansTable.ForeignKeys[0].RefTable = WorkflowsTable
	StepsTable.ForeignKeys[0].RefTable = PlansTable
	StepsTable.ForeignKeys[1].RefTable = WorkflowsTable
}
