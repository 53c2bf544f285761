// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSpec is the predicate function for agentspec builders.
type AgentSpec func(*sql.Selector)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// ExecutionEvent is the predicate function for executionevent builders.
type ExecutionEvent func(*sql.Selector)

// LearningPattern is the predicate function for learningpattern builders.
type LearningPattern func(*sql.Selector)

// ModelEndpoint is the predicate function for modelendpoint builders.
type ModelEndpoint func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// PromptAssignment is the predicate function for promptassignment builders.
type PromptAssignment func(*sql.Selector)

// QueueTask is the predicate function for queuetask builders.
type QueueTask func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// ToolSpec is the predicate function for toolspec builders.
type ToolSpec func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
