// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/maestro/ent/agentspec"
	"github.com/codeready-toolchain/maestro/ent/approvalrequest"
	"github.com/codeready-toolchain/maestro/ent/checkpoint"
	"github.com/codeready-toolchain/maestro/ent/executionevent"
	"github.com/codeready-toolchain/maestro/ent/learningpattern"
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
	"github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/ent/predicate"
	"github.com/codeready-toolchain/maestro/ent/prompt"
	"github.com/codeready-toolchain/maestro/ent/promptassignment"
	"github.com/codeready-toolchain/maestro/ent/queuetask"
	"github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
	"github.com/codeready-toolchain/maestro/ent/workflow"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSpec        = "AgentSpec"
	TypeApprovalRequest  = "ApprovalRequest"
	TypeCheckpoint       = "Checkpoint"
	TypeExecutionEvent   = "ExecutionEvent"
	TypeLearningPattern  = "LearningPattern"
	TypeModelEndpoint    = "ModelEndpoint"
	TypePlan             = "Plan"
	TypePrompt           = "Prompt"
	TypePromptAssignment = "PromptAssignment"
	TypeQueueTask        = "QueueTask"
	TypeStep             = "Step"
	TypeToolSpec         = "ToolSpec"
	TypeWorkflow         = "Workflow"
)

// AgentSpecMutation represents an operation that mutates the AgentSpec nodes in the graph.
type AgentSpecMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	status             *agentspec.Status
	capabilities       *[]string
	appendcapabilities []string
	model_class        *string
	description        *string
	total_runs         *int64
	addtotal_runs      *int64
	successes          *int64
	addsuccesses       *int64
	failures           *int64
	addfailures        *int64
	avg_latency_ms     *float64
	addavg_latency_ms  *float64
	version            *int
	addversion         *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AgentSpec, error)
	predicates         []predicate.AgentSpec
}

var _ ent.Mutation = (*AgentSpecMutation)(nil)

// agentspecOption allows management of the mutation configuration using functional options.
type agentspecOption func(*AgentSpecMutation)

// newAgentSpecMutation creates new mutation for the AgentSpec entity.
func newAgentSpecMutation(c config, op Op, opts ...agentspecOption) *AgentSpecMutation {
	m := &AgentSpecMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSpecID sets the ID field of the mutation.
func withAgentSpecID(id string) agentspecOption {
	return func(m *AgentSpecMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSpec
		)
		m.oldValue = func(ctx context.Context) (*AgentSpec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSpec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSpec sets the old AgentSpec of the mutation.
func withAgentSpec(node *AgentSpec) agentspecOption {
	return func(m *AgentSpecMutation) {
		m.oldValue = func(context.Context) (*AgentSpec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSpec entities.
func (m *AgentSpecMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSpecMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSpecMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSpec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentSpecMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentSpecMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentSpecMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *AgentSpecMutation) SetStatus(a agentspec.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSpecMutation) Status() (r agentspec.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldStatus(ctx context.Context) (v agentspec.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSpecMutation) ResetStatus() {
	m.status = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentSpecMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentSpecMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentSpecMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentSpecMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentSpecMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agentspec.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentSpecMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agentspec.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentSpecMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agentspec.FieldCapabilities)
}

// SetModelClass sets the "model_class" field.
func (m *AgentSpecMutation) SetModelClass(s string) {
	m.model_class = &s
}

// ModelClass returns the value of the "model_class" field in the mutation.
func (m *AgentSpecMutation) ModelClass() (r string, exists bool) {
	v := m.model_class
	if v == nil {
		return
	}
	return *v, true
}

// OldModelClass returns the old "model_class" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldModelClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelClass: %w", err)
	}
	return oldValue.ModelClass, nil
}

// ResetModelClass resets all changes to the "model_class" field.
func (m *AgentSpecMutation) ResetModelClass() {
	m.model_class = nil
}

// SetDescription sets the "description" field.
func (m *AgentSpecMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentSpecMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AgentSpecMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[agentspec.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AgentSpecMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[agentspec.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentSpecMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, agentspec.FieldDescription)
}

// SetTotalRuns sets the "total_runs" field.
func (m *AgentSpecMutation) SetTotalRuns(i int64) {
	m.total_runs = &i
	m.addtotal_runs = nil
}

// TotalRuns returns the value of the "total_runs" field in the mutation.
func (m *AgentSpecMutation) TotalRuns() (r int64, exists bool) {
	v := m.total_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRuns returns the old "total_runs" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldTotalRuns(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRuns: %w", err)
	}
	return oldValue.TotalRuns, nil
}

// AddTotalRuns adds i to the "total_runs" field.
func (m *AgentSpecMutation) AddTotalRuns(i int64) {
	if m.addtotal_runs != nil {
		*m.addtotal_runs += i
	} else {
		m.addtotal_runs = &i
	}
}

// AddedTotalRuns returns the value that was added to the "total_runs" field in this mutation.
func (m *AgentSpecMutation) AddedTotalRuns() (r int64, exists bool) {
	v := m.addtotal_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRuns resets all changes to the "total_runs" field.
func (m *AgentSpecMutation) ResetTotalRuns() {
	m.total_runs = nil
	m.addtotal_runs = nil
}

// SetSuccesses sets the "successes" field.
func (m *AgentSpecMutation) SetSuccesses(i int64) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *AgentSpecMutation) Successes() (r int64, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldSuccesses(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *AgentSpecMutation) AddSuccesses(i int64) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *AgentSpecMutation) AddedSuccesses() (r int64, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *AgentSpecMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetFailures sets the "failures" field.
func (m *AgentSpecMutation) SetFailures(i int64) {
	m.failures = &i
	m.addfailures = nil
}

// Failures returns the value of the "failures" field in the mutation.
func (m *AgentSpecMutation) Failures() (r int64, exists bool) {
	v := m.failures
	if v == nil {
		return
	}
	return *v, true
}

// OldFailures returns the old "failures" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldFailures(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailures: %w", err)
	}
	return oldValue.Failures, nil
}

// AddFailures adds i to the "failures" field.
func (m *AgentSpecMutation) AddFailures(i int64) {
	if m.addfailures != nil {
		*m.addfailures += i
	} else {
		m.addfailures = &i
	}
}

// AddedFailures returns the value that was added to the "failures" field in this mutation.
func (m *AgentSpecMutation) AddedFailures() (r int64, exists bool) {
	v := m.addfailures
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailures resets all changes to the "failures" field.
func (m *AgentSpecMutation) ResetFailures() {
	m.failures = nil
	m.addfailures = nil
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (m *AgentSpecMutation) SetAvgLatencyMs(f float64) {
	m.avg_latency_ms = &f
	m.addavg_latency_ms = nil
}

// AvgLatencyMs returns the value of the "avg_latency_ms" field in the mutation.
func (m *AgentSpecMutation) AvgLatencyMs() (r float64, exists bool) {
	v := m.avg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgLatencyMs returns the old "avg_latency_ms" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldAvgLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgLatencyMs: %w", err)
	}
	return oldValue.AvgLatencyMs, nil
}

// AddAvgLatencyMs adds f to the "avg_latency_ms" field.
func (m *AgentSpecMutation) AddAvgLatencyMs(f float64) {
	if m.addavg_latency_ms != nil {
		*m.addavg_latency_ms += f
	} else {
		m.addavg_latency_ms = &f
	}
}

// AddedAvgLatencyMs returns the value that was added to the "avg_latency_ms" field in this mutation.
func (m *AgentSpecMutation) AddedAvgLatencyMs() (r float64, exists bool) {
	v := m.addavg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgLatencyMs resets all changes to the "avg_latency_ms" field.
func (m *AgentSpecMutation) ResetAvgLatencyMs() {
	m.avg_latency_ms = nil
	m.addavg_latency_ms = nil
}

// SetVersion sets the "version" field.
func (m *AgentSpecMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentSpecMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentSpecMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentSpecMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentSpecMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentSpecMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentSpecMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentSpec entity.
// If the AgentSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSpecMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentSpecMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentSpecMutation builder.
func (m *AgentSpecMutation) Where(ps ...predicate.AgentSpec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSpec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSpec).
func (m *AgentSpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSpecMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.name != nil {
		fields = append(fields, agentspec.FieldName)
	}
	if m.status != nil {
		fields = append(fields, agentspec.FieldStatus)
	}
	if m.capabilities != nil {
		fields = append(fields, agentspec.FieldCapabilities)
	}
	if m.model_class != nil {
		fields = append(fields, agentspec.FieldModelClass)
	}
	if m.description != nil {
		fields = append(fields, agentspec.FieldDescription)
	}
	if m.total_runs != nil {
		fields = append(fields, agentspec.FieldTotalRuns)
	}
	if m.successes != nil {
		fields = append(fields, agentspec.FieldSuccesses)
	}
	if m.failures != nil {
		fields = append(fields, agentspec.FieldFailures)
	}
	if m.avg_latency_ms != nil {
		fields = append(fields, agentspec.FieldAvgLatencyMs)
	}
	if m.version != nil {
		fields = append(fields, agentspec.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, agentspec.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentspec.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentspec.FieldName:
		return m.Name()
	case agentspec.FieldStatus:
		return m.Status()
	case agentspec.FieldCapabilities:
		return m.Capabilities()
	case agentspec.FieldModelClass:
		return m.ModelClass()
	case agentspec.FieldDescription:
		return m.Description()
	case agentspec.FieldTotalRuns:
		return m.TotalRuns()
	case agentspec.FieldSuccesses:
		return m.Successes()
	case agentspec.FieldFailures:
		return m.Failures()
	case agentspec.FieldAvgLatencyMs:
		return m.AvgLatencyMs()
	case agentspec.FieldVersion:
		return m.Version()
	case agentspec.FieldCreatedAt:
		return m.CreatedAt()
	case agentspec.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentspec.FieldName:
		return m.OldName(ctx)
	case agentspec.FieldStatus:
		return m.OldStatus(ctx)
	case agentspec.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agentspec.FieldModelClass:
		return m.OldModelClass(ctx)
	case agentspec.FieldDescription:
		return m.OldDescription(ctx)
	case agentspec.FieldTotalRuns:
		return m.OldTotalRuns(ctx)
	case agentspec.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case agentspec.FieldFailures:
		return m.OldFailures(ctx)
	case agentspec.FieldAvgLatencyMs:
		return m.OldAvgLatencyMs(ctx)
	case agentspec.FieldVersion:
		return m.OldVersion(ctx)
	case agentspec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentspec.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSpec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentspec.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentspec.FieldStatus:
		v, ok := value.(agentspec.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentspec.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agentspec.FieldModelClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelClass(v)
		return nil
	case agentspec.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agentspec.FieldTotalRuns:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRuns(v)
		return nil
	case agentspec.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case agentspec.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailures(v)
		return nil
	case agentspec.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgLatencyMs(v)
		return nil
	case agentspec.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentspec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentspec.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSpec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSpecMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_runs != nil {
		fields = append(fields, agentspec.FieldTotalRuns)
	}
	if m.addsuccesses != nil {
		fields = append(fields, agentspec.FieldSuccesses)
	}
	if m.addfailures != nil {
		fields = append(fields, agentspec.FieldFailures)
	}
	if m.addavg_latency_ms != nil {
		fields = append(fields, agentspec.FieldAvgLatencyMs)
	}
	if m.addversion != nil {
		fields = append(fields, agentspec.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSpecMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentspec.FieldTotalRuns:
		return m.AddedTotalRuns()
	case agentspec.FieldSuccesses:
		return m.AddedSuccesses()
	case agentspec.FieldFailures:
		return m.AddedFailures()
	case agentspec.FieldAvgLatencyMs:
		return m.AddedAvgLatencyMs()
	case agentspec.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentspec.FieldTotalRuns:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRuns(v)
		return nil
	case agentspec.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case agentspec.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailures(v)
		return nil
	case agentspec.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgLatencyMs(v)
		return nil
	case agentspec.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSpec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSpecMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentspec.FieldCapabilities) {
		fields = append(fields, agentspec.FieldCapabilities)
	}
	if m.FieldCleared(agentspec.FieldDescription) {
		fields = append(fields, agentspec.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSpecMutation) ClearField(name string) error {
	switch name {
	case agentspec.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agentspec.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown AgentSpec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSpecMutation) ResetField(name string) error {
	switch name {
	case agentspec.FieldName:
		m.ResetName()
		return nil
	case agentspec.FieldStatus:
		m.ResetStatus()
		return nil
	case agentspec.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agentspec.FieldModelClass:
		m.ResetModelClass()
		return nil
	case agentspec.FieldDescription:
		m.ResetDescription()
		return nil
	case agentspec.FieldTotalRuns:
		m.ResetTotalRuns()
		return nil
	case agentspec.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case agentspec.FieldFailures:
		m.ResetFailures()
		return nil
	case agentspec.FieldAvgLatencyMs:
		m.ResetAvgLatencyMs()
		return nil
	case agentspec.FieldVersion:
		m.ResetVersion()
		return nil
	case agentspec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentspec.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSpec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSpecMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSpecMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSpecMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSpecMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentSpec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSpecMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentSpec edge %s", name)
}

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op                Op
	typ               string
	id                *string
	plan_id           *string
	artifact_ref      *string
	risk_assessment   *map[string]interface{}
	recommendation    *string
	status            *approvalrequest.Status
	decision_deadline *time.Time
	feedback          *string
	decided_by        *string
	decided_at        *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	workflow          *string
	clearedworkflow   bool
	done              bool
	oldValue          func(context.Context) (*ApprovalRequest, error)
	predicates        []predicate.ApprovalRequest
}

var _ ent.Mutation = (*ApprovalRequestMutation)(nil)

// approvalrequestOption allows management of the mutation configuration using functional options.
type approvalrequestOption func(*ApprovalRequestMutation)

// newApprovalRequestMutation creates new mutation for the ApprovalRequest entity.
func newApprovalRequestMutation(c config, op Op, opts ...approvalrequestOption) *ApprovalRequestMutation {
	m := &ApprovalRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRequestID sets the ID field of the mutation.
func withApprovalRequestID(id string) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRequest
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRequest sets the old ApprovalRequest of the mutation.
func withApprovalRequest(node *ApprovalRequest) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		m.oldValue = func(context.Context) (*ApprovalRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRequest entities.
func (m *ApprovalRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ApprovalRequestMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ApprovalRequestMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ApprovalRequestMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetPlanID sets the "plan_id" field.
func (m *ApprovalRequestMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *ApprovalRequestMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldPlanID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ClearPlanID clears the value of the "plan_id" field.
func (m *ApprovalRequestMutation) ClearPlanID() {
	m.plan_id = nil
	m.clearedFields[approvalrequest.FieldPlanID] = struct{}{}
}

// PlanIDCleared returns if the "plan_id" field was cleared in this mutation.
func (m *ApprovalRequestMutation) PlanIDCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldPlanID]
	return ok
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *ApprovalRequestMutation) ResetPlanID() {
	m.plan_id = nil
	delete(m.clearedFields, approvalrequest.FieldPlanID)
}

// SetArtifactRef sets the "artifact_ref" field.
func (m *ApprovalRequestMutation) SetArtifactRef(s string) {
	m.artifact_ref = &s
}

// ArtifactRef returns the value of the "artifact_ref" field in the mutation.
func (m *ApprovalRequestMutation) ArtifactRef() (r string, exists bool) {
	v := m.artifact_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactRef returns the old "artifact_ref" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldArtifactRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactRef: %w", err)
	}
	return oldValue.ArtifactRef, nil
}

// ResetArtifactRef resets all changes to the "artifact_ref" field.
func (m *ApprovalRequestMutation) ResetArtifactRef() {
	m.artifact_ref = nil
}

// SetRiskAssessment sets the "risk_assessment" field.
func (m *ApprovalRequestMutation) SetRiskAssessment(value map[string]interface{}) {
	m.risk_assessment = &value
}

// RiskAssessment returns the value of the "risk_assessment" field in the mutation.
func (m *ApprovalRequestMutation) RiskAssessment() (r map[string]interface{}, exists bool) {
	v := m.risk_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskAssessment returns the old "risk_assessment" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRiskAssessment(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskAssessment: %w", err)
	}
	return oldValue.RiskAssessment, nil
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (m *ApprovalRequestMutation) ClearRiskAssessment() {
	m.risk_assessment = nil
	m.clearedFields[approvalrequest.FieldRiskAssessment] = struct{}{}
}

// RiskAssessmentCleared returns if the "risk_assessment" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RiskAssessmentCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRiskAssessment]
	return ok
}

// ResetRiskAssessment resets all changes to the "risk_assessment" field.
func (m *ApprovalRequestMutation) ResetRiskAssessment() {
	m.risk_assessment = nil
	delete(m.clearedFields, approvalrequest.FieldRiskAssessment)
}

// SetRecommendation sets the "recommendation" field.
func (m *ApprovalRequestMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *ApprovalRequestMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ClearRecommendation clears the value of the "recommendation" field.
func (m *ApprovalRequestMutation) ClearRecommendation() {
	m.recommendation = nil
	m.clearedFields[approvalrequest.FieldRecommendation] = struct{}{}
}

// RecommendationCleared returns if the "recommendation" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RecommendationCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRecommendation]
	return ok
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *ApprovalRequestMutation) ResetRecommendation() {
	m.recommendation = nil
	delete(m.clearedFields, approvalrequest.FieldRecommendation)
}

// SetStatus sets the "status" field.
func (m *ApprovalRequestMutation) SetStatus(a approvalrequest.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalRequestMutation) Status() (r approvalrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStatus(ctx context.Context) (v approvalrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalRequestMutation) ResetStatus() {
	m.status = nil
}

// SetDecisionDeadline sets the "decision_deadline" field.
func (m *ApprovalRequestMutation) SetDecisionDeadline(t time.Time) {
	m.decision_deadline = &t
}

// DecisionDeadline returns the value of the "decision_deadline" field in the mutation.
func (m *ApprovalRequestMutation) DecisionDeadline() (r time.Time, exists bool) {
	v := m.decision_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionDeadline returns the old "decision_deadline" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecisionDeadline(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionDeadline: %w", err)
	}
	return oldValue.DecisionDeadline, nil
}

// ResetDecisionDeadline resets all changes to the "decision_deadline" field.
func (m *ApprovalRequestMutation) ResetDecisionDeadline() {
	m.decision_deadline = nil
}

// SetFeedback sets the "feedback" field.
func (m *ApprovalRequestMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *ApprovalRequestMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *ApprovalRequestMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[approvalrequest.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *ApprovalRequestMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *ApprovalRequestMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, approvalrequest.FieldFeedback)
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalRequestMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalRequestMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalRequestMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approvalrequest.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalRequestMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approvalrequest.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalRequestMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalRequestMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalRequestMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approvalrequest.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalRequestMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approvalrequest.FieldDecidedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApprovalRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApprovalRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApprovalRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *ApprovalRequestMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[approvalrequest.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *ApprovalRequestMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *ApprovalRequestMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *ApprovalRequestMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the ApprovalRequestMutation builder.
func (m *ApprovalRequestMutation) Where(ps ...predicate.ApprovalRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRequest).
func (m *ApprovalRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRequestMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workflow != nil {
		fields = append(fields, approvalrequest.FieldWorkflowID)
	}
	if m.plan_id != nil {
		fields = append(fields, approvalrequest.FieldPlanID)
	}
	if m.artifact_ref != nil {
		fields = append(fields, approvalrequest.FieldArtifactRef)
	}
	if m.risk_assessment != nil {
		fields = append(fields, approvalrequest.FieldRiskAssessment)
	}
	if m.recommendation != nil {
		fields = append(fields, approvalrequest.FieldRecommendation)
	}
	if m.status != nil {
		fields = append(fields, approvalrequest.FieldStatus)
	}
	if m.decision_deadline != nil {
		fields = append(fields, approvalrequest.FieldDecisionDeadline)
	}
	if m.feedback != nil {
		fields = append(fields, approvalrequest.FieldFeedback)
	}
	if m.decided_by != nil {
		fields = append(fields, approvalrequest.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, approvalrequest.FieldDecidedAt)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, approvalrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldWorkflowID:
		return m.WorkflowID()
	case approvalrequest.FieldPlanID:
		return m.PlanID()
	case approvalrequest.FieldArtifactRef:
		return m.ArtifactRef()
	case approvalrequest.FieldRiskAssessment:
		return m.RiskAssessment()
	case approvalrequest.FieldRecommendation:
		return m.Recommendation()
	case approvalrequest.FieldStatus:
		return m.Status()
	case approvalrequest.FieldDecisionDeadline:
		return m.DecisionDeadline()
	case approvalrequest.FieldFeedback:
		return m.Feedback()
	case approvalrequest.FieldDecidedBy:
		return m.DecidedBy()
	case approvalrequest.FieldDecidedAt:
		return m.DecidedAt()
	case approvalrequest.FieldCreatedAt:
		return m.CreatedAt()
	case approvalrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case approvalrequest.FieldPlanID:
		return m.OldPlanID(ctx)
	case approvalrequest.FieldArtifactRef:
		return m.OldArtifactRef(ctx)
	case approvalrequest.FieldRiskAssessment:
		return m.OldRiskAssessment(ctx)
	case approvalrequest.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case approvalrequest.FieldStatus:
		return m.OldStatus(ctx)
	case approvalrequest.FieldDecisionDeadline:
		return m.OldDecisionDeadline(ctx)
	case approvalrequest.FieldFeedback:
		return m.OldFeedback(ctx)
	case approvalrequest.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approvalrequest.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case approvalrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approvalrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case approvalrequest.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case approvalrequest.FieldArtifactRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactRef(v)
		return nil
	case approvalrequest.FieldRiskAssessment:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskAssessment(v)
		return nil
	case approvalrequest.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case approvalrequest.FieldStatus:
		v, ok := value.(approvalrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalrequest.FieldDecisionDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionDeadline(v)
		return nil
	case approvalrequest.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case approvalrequest.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approvalrequest.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case approvalrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approvalrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldPlanID) {
		fields = append(fields, approvalrequest.FieldPlanID)
	}
	if m.FieldCleared(approvalrequest.FieldRiskAssessment) {
		fields = append(fields, approvalrequest.FieldRiskAssessment)
	}
	if m.FieldCleared(approvalrequest.FieldRecommendation) {
		fields = append(fields, approvalrequest.FieldRecommendation)
	}
	if m.FieldCleared(approvalrequest.FieldFeedback) {
		fields = append(fields, approvalrequest.FieldFeedback)
	}
	if m.FieldCleared(approvalrequest.FieldDecidedBy) {
		fields = append(fields, approvalrequest.FieldDecidedBy)
	}
	if m.FieldCleared(approvalrequest.FieldDecidedAt) {
		fields = append(fields, approvalrequest.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ClearField(name string) error {
	switch name {
	case approvalrequest.FieldPlanID:
		m.ClearPlanID()
		return nil
	case approvalrequest.FieldRiskAssessment:
		m.ClearRiskAssessment()
		return nil
	case approvalrequest.FieldRecommendation:
		m.ClearRecommendation()
		return nil
	case approvalrequest.FieldFeedback:
		m.ClearFeedback()
		return nil
	case approvalrequest.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approvalrequest.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case approvalrequest.FieldPlanID:
		m.ResetPlanID()
		return nil
	case approvalrequest.FieldArtifactRef:
		m.ResetArtifactRef()
		return nil
	case approvalrequest.FieldRiskAssessment:
		m.ResetRiskAssessment()
		return nil
	case approvalrequest.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case approvalrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalrequest.FieldDecisionDeadline:
		m.ResetDecisionDeadline()
		return nil
	case approvalrequest.FieldFeedback:
		m.ResetFeedback()
		return nil
	case approvalrequest.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approvalrequest.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case approvalrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approvalrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, approvalrequest.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, approvalrequest.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalrequest.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	switch name {
	case approvalrequest.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	switch name {
	case approvalrequest.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op             Op
	typ            string
	id             *string
	entity_type    *string
	entity_id      *string
	state_blob     *[]byte
	integrity_hash *string
	reason         *string
	trace_id       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Checkpoint, error)
	predicates     []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *CheckpointMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *CheckpointMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *CheckpointMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *CheckpointMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *CheckpointMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *CheckpointMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetStateBlob sets the "state_blob" field.
func (m *CheckpointMutation) SetStateBlob(b []byte) {
	m.state_blob = &b
}

// StateBlob returns the value of the "state_blob" field in the mutation.
func (m *CheckpointMutation) StateBlob() (r []byte, exists bool) {
	v := m.state_blob
	if v == nil {
		return
	}
	return *v, true
}

// OldStateBlob returns the old "state_blob" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStateBlob(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateBlob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateBlob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateBlob: %w", err)
	}
	return oldValue.StateBlob, nil
}

// ResetStateBlob resets all changes to the "state_blob" field.
func (m *CheckpointMutation) ResetStateBlob() {
	m.state_blob = nil
}

// SetIntegrityHash sets the "integrity_hash" field.
func (m *CheckpointMutation) SetIntegrityHash(s string) {
	m.integrity_hash = &s
}

// IntegrityHash returns the value of the "integrity_hash" field in the mutation.
func (m *CheckpointMutation) IntegrityHash() (r string, exists bool) {
	v := m.integrity_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrityHash returns the old "integrity_hash" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldIntegrityHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrityHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrityHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrityHash: %w", err)
	}
	return oldValue.IntegrityHash, nil
}

// ResetIntegrityHash resets all changes to the "integrity_hash" field.
func (m *CheckpointMutation) ResetIntegrityHash() {
	m.integrity_hash = nil
}

// SetReason sets the "reason" field.
func (m *CheckpointMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CheckpointMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *CheckpointMutation) ResetReason() {
	m.reason = nil
}

// SetTraceID sets the "trace_id" field.
func (m *CheckpointMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *CheckpointMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *CheckpointMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[checkpoint.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *CheckpointMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *CheckpointMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, checkpoint.FieldTraceID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.entity_type != nil {
		fields = append(fields, checkpoint.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, checkpoint.FieldEntityID)
	}
	if m.state_blob != nil {
		fields = append(fields, checkpoint.FieldStateBlob)
	}
	if m.integrity_hash != nil {
		fields = append(fields, checkpoint.FieldIntegrityHash)
	}
	if m.reason != nil {
		fields = append(fields, checkpoint.FieldReason)
	}
	if m.trace_id != nil {
		fields = append(fields, checkpoint.FieldTraceID)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldEntityType:
		return m.EntityType()
	case checkpoint.FieldEntityID:
		return m.EntityID()
	case checkpoint.FieldStateBlob:
		return m.StateBlob()
	case checkpoint.FieldIntegrityHash:
		return m.IntegrityHash()
	case checkpoint.FieldReason:
		return m.Reason()
	case checkpoint.FieldTraceID:
		return m.TraceID()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldEntityType:
		return m.OldEntityType(ctx)
	case checkpoint.FieldEntityID:
		return m.OldEntityID(ctx)
	case checkpoint.FieldStateBlob:
		return m.OldStateBlob(ctx)
	case checkpoint.FieldIntegrityHash:
		return m.OldIntegrityHash(ctx)
	case checkpoint.FieldReason:
		return m.OldReason(ctx)
	case checkpoint.FieldTraceID:
		return m.OldTraceID(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case checkpoint.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case checkpoint.FieldStateBlob:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateBlob(v)
		return nil
	case checkpoint.FieldIntegrityHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrityHash(v)
		return nil
	case checkpoint.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case checkpoint.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldTraceID) {
		fields = append(fields, checkpoint.FieldTraceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldTraceID:
		m.ClearTraceID()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldEntityType:
		m.ResetEntityType()
		return nil
	case checkpoint.FieldEntityID:
		m.ResetEntityID()
		return nil
	case checkpoint.FieldStateBlob:
		m.ResetStateBlob()
		return nil
	case checkpoint.FieldIntegrityHash:
		m.ResetIntegrityHash()
		return nil
	case checkpoint.FieldReason:
		m.ResetReason()
		return nil
	case checkpoint.FieldTraceID:
		m.ResetTraceID()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// ExecutionEventMutation represents an operation that mutates the ExecutionEvent nodes in the graph.
type ExecutionEventMutation struct {
	config
	op                Op
	typ               string
	id                *string
	session_id        *string
	sequence          *int64
	addsequence       *int64
	event_type        *executionevent.EventType
	stage             *executionevent.Stage
	component_role    *string
	component_name    *string
	decision_source   *executionevent.DecisionSource
	status            *string
	input_summary     *string
	output_summary    *string
	reason_code       *string
	parent_event_id   *string
	prompt_id         *string
	prompt_version    *int
	addprompt_version *int
	event_metadata    *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	workflow          *string
	clearedworkflow   bool
	done              bool
	oldValue          func(context.Context) (*ExecutionEvent, error)
	predicates        []predicate.ExecutionEvent
}

var _ ent.Mutation = (*ExecutionEventMutation)(nil)

// executioneventOption allows management of the mutation configuration using functional options.
type executioneventOption func(*ExecutionEventMutation)

// newExecutionEventMutation creates new mutation for the ExecutionEvent entity.
func newExecutionEventMutation(c config, op Op, opts ...executioneventOption) *ExecutionEventMutation {
	m := &ExecutionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionEventID sets the ID field of the mutation.
func withExecutionEventID(id string) executioneventOption {
	return func(m *ExecutionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionEvent
		)
		m.oldValue = func(ctx context.Context) (*ExecutionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionEvent sets the old ExecutionEvent of the mutation.
func withExecutionEvent(node *ExecutionEvent) executioneventOption {
	return func(m *ExecutionEventMutation) {
		m.oldValue = func(context.Context) (*ExecutionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionEvent entities.
func (m *ExecutionEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ExecutionEventMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ExecutionEventMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ExecutionEventMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetSessionID sets the "session_id" field.
func (m *ExecutionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExecutionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExecutionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSequence sets the "sequence" field.
func (m *ExecutionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExecutionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExecutionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExecutionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExecutionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *ExecutionEventMutation) SetEventType(et executionevent.EventType) {
	m.event_type = &et
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ExecutionEventMutation) EventType() (r executionevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldEventType(ctx context.Context) (v executionevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ExecutionEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStage sets the "stage" field.
func (m *ExecutionEventMutation) SetStage(e executionevent.Stage) {
	m.stage = &e
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ExecutionEventMutation) Stage() (r executionevent.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldStage(ctx context.Context) (v executionevent.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ExecutionEventMutation) ResetStage() {
	m.stage = nil
}

// SetComponentRole sets the "component_role" field.
func (m *ExecutionEventMutation) SetComponentRole(s string) {
	m.component_role = &s
}

// ComponentRole returns the value of the "component_role" field in the mutation.
func (m *ExecutionEventMutation) ComponentRole() (r string, exists bool) {
	v := m.component_role
	if v == nil {
		return
	}
	return *v, true
}

// OldComponentRole returns the old "component_role" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldComponentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponentRole: %w", err)
	}
	return oldValue.ComponentRole, nil
}

// ResetComponentRole resets all changes to the "component_role" field.
func (m *ExecutionEventMutation) ResetComponentRole() {
	m.component_role = nil
}

// SetComponentName sets the "component_name" field.
func (m *ExecutionEventMutation) SetComponentName(s string) {
	m.component_name = &s
}

// ComponentName returns the value of the "component_name" field in the mutation.
func (m *ExecutionEventMutation) ComponentName() (r string, exists bool) {
	v := m.component_name
	if v == nil {
		return
	}
	return *v, true
}

// OldComponentName returns the old "component_name" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldComponentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponentName: %w", err)
	}
	return oldValue.ComponentName, nil
}

// ResetComponentName resets all changes to the "component_name" field.
func (m *ExecutionEventMutation) ResetComponentName() {
	m.component_name = nil
}

// SetDecisionSource sets the "decision_source" field.
func (m *ExecutionEventMutation) SetDecisionSource(es executionevent.DecisionSource) {
	m.decision_source = &es
}

// DecisionSource returns the value of the "decision_source" field in the mutation.
func (m *ExecutionEventMutation) DecisionSource() (r executionevent.DecisionSource, exists bool) {
	v := m.decision_source
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionSource returns the old "decision_source" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldDecisionSource(ctx context.Context) (v executionevent.DecisionSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionSource: %w", err)
	}
	return oldValue.DecisionSource, nil
}

// ResetDecisionSource resets all changes to the "decision_source" field.
func (m *ExecutionEventMutation) ResetDecisionSource() {
	m.decision_source = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionEventMutation) ResetStatus() {
	m.status = nil
}

// SetInputSummary sets the "input_summary" field.
func (m *ExecutionEventMutation) SetInputSummary(s string) {
	m.input_summary = &s
}

// InputSummary returns the value of the "input_summary" field in the mutation.
func (m *ExecutionEventMutation) InputSummary() (r string, exists bool) {
	v := m.input_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSummary returns the old "input_summary" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldInputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSummary: %w", err)
	}
	return oldValue.InputSummary, nil
}

// ClearInputSummary clears the value of the "input_summary" field.
func (m *ExecutionEventMutation) ClearInputSummary() {
	m.input_summary = nil
	m.clearedFields[executionevent.FieldInputSummary] = struct{}{}
}

// InputSummaryCleared returns if the "input_summary" field was cleared in this mutation.
func (m *ExecutionEventMutation) InputSummaryCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldInputSummary]
	return ok
}

// ResetInputSummary resets all changes to the "input_summary" field.
func (m *ExecutionEventMutation) ResetInputSummary() {
	m.input_summary = nil
	delete(m.clearedFields, executionevent.FieldInputSummary)
}

// SetOutputSummary sets the "output_summary" field.
func (m *ExecutionEventMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *ExecutionEventMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *ExecutionEventMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[executionevent.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *ExecutionEventMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *ExecutionEventMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, executionevent.FieldOutputSummary)
}

// SetReasonCode sets the "reason_code" field.
func (m *ExecutionEventMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *ExecutionEventMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldReasonCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ClearReasonCode clears the value of the "reason_code" field.
func (m *ExecutionEventMutation) ClearReasonCode() {
	m.reason_code = nil
	m.clearedFields[executionevent.FieldReasonCode] = struct{}{}
}

// ReasonCodeCleared returns if the "reason_code" field was cleared in this mutation.
func (m *ExecutionEventMutation) ReasonCodeCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldReasonCode]
	return ok
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *ExecutionEventMutation) ResetReasonCode() {
	m.reason_code = nil
	delete(m.clearedFields, executionevent.FieldReasonCode)
}

// SetParentEventID sets the "parent_event_id" field.
func (m *ExecutionEventMutation) SetParentEventID(s string) {
	m.parent_event_id = &s
}

// ParentEventID returns the value of the "parent_event_id" field in the mutation.
func (m *ExecutionEventMutation) ParentEventID() (r string, exists bool) {
	v := m.parent_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentEventID returns the old "parent_event_id" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldParentEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentEventID: %w", err)
	}
	return oldValue.ParentEventID, nil
}

// ClearParentEventID clears the value of the "parent_event_id" field.
func (m *ExecutionEventMutation) ClearParentEventID() {
	m.parent_event_id = nil
	m.clearedFields[executionevent.FieldParentEventID] = struct{}{}
}

// ParentEventIDCleared returns if the "parent_event_id" field was cleared in this mutation.
func (m *ExecutionEventMutation) ParentEventIDCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldParentEventID]
	return ok
}

// ResetParentEventID resets all changes to the "parent_event_id" field.
func (m *ExecutionEventMutation) ResetParentEventID() {
	m.parent_event_id = nil
	delete(m.clearedFields, executionevent.FieldParentEventID)
}

// SetPromptID sets the "prompt_id" field.
func (m *ExecutionEventMutation) SetPromptID(s string) {
	m.prompt_id = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *ExecutionEventMutation) PromptID() (r string, exists bool) {
	v := m.prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ClearPromptID clears the value of the "prompt_id" field.
func (m *ExecutionEventMutation) ClearPromptID() {
	m.prompt_id = nil
	m.clearedFields[executionevent.FieldPromptID] = struct{}{}
}

// PromptIDCleared returns if the "prompt_id" field was cleared in this mutation.
func (m *ExecutionEventMutation) PromptIDCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldPromptID]
	return ok
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *ExecutionEventMutation) ResetPromptID() {
	m.prompt_id = nil
	delete(m.clearedFields, executionevent.FieldPromptID)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ExecutionEventMutation) SetPromptVersion(i int) {
	m.prompt_version = &i
	m.addprompt_version = nil
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ExecutionEventMutation) PromptVersion() (r int, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldPromptVersion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// AddPromptVersion adds i to the "prompt_version" field.
func (m *ExecutionEventMutation) AddPromptVersion(i int) {
	if m.addprompt_version != nil {
		*m.addprompt_version += i
	} else {
		m.addprompt_version = &i
	}
}

// AddedPromptVersion returns the value that was added to the "prompt_version" field in this mutation.
func (m *ExecutionEventMutation) AddedPromptVersion() (r int, exists bool) {
	v := m.addprompt_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *ExecutionEventMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.addprompt_version = nil
	m.clearedFields[executionevent.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *ExecutionEventMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ExecutionEventMutation) ResetPromptVersion() {
	m.prompt_version = nil
	m.addprompt_version = nil
	delete(m.clearedFields, executionevent.FieldPromptVersion)
}

// SetEventMetadata sets the "event_metadata" field.
func (m *ExecutionEventMutation) SetEventMetadata(value map[string]interface{}) {
	m.event_metadata = &value
}

// EventMetadata returns the value of the "event_metadata" field in the mutation.
func (m *ExecutionEventMutation) EventMetadata() (r map[string]interface{}, exists bool) {
	v := m.event_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldEventMetadata returns the old "event_metadata" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldEventMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventMetadata: %w", err)
	}
	return oldValue.EventMetadata, nil
}

// ClearEventMetadata clears the value of the "event_metadata" field.
func (m *ExecutionEventMutation) ClearEventMetadata() {
	m.event_metadata = nil
	m.clearedFields[executionevent.FieldEventMetadata] = struct{}{}
}

// EventMetadataCleared returns if the "event_metadata" field was cleared in this mutation.
func (m *ExecutionEventMutation) EventMetadataCleared() bool {
	_, ok := m.clearedFields[executionevent.FieldEventMetadata]
	return ok
}

// ResetEventMetadata resets all changes to the "event_metadata" field.
func (m *ExecutionEventMutation) ResetEventMetadata() {
	m.event_metadata = nil
	delete(m.clearedFields, executionevent.FieldEventMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionEvent entity.
// If the ExecutionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *ExecutionEventMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[executionevent.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *ExecutionEventMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *ExecutionEventMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *ExecutionEventMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the ExecutionEventMutation builder.
func (m *ExecutionEventMutation) Where(ps ...predicate.ExecutionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionEvent).
func (m *ExecutionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionEventMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.workflow != nil {
		fields = append(fields, executionevent.FieldWorkflowID)
	}
	if m.session_id != nil {
		fields = append(fields, executionevent.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, executionevent.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, executionevent.FieldEventType)
	}
	if m.stage != nil {
		fields = append(fields, executionevent.FieldStage)
	}
	if m.component_role != nil {
		fields = append(fields, executionevent.FieldComponentRole)
	}
	if m.component_name != nil {
		fields = append(fields, executionevent.FieldComponentName)
	}
	if m.decision_source != nil {
		fields = append(fields, executionevent.FieldDecisionSource)
	}
	if m.status != nil {
		fields = append(fields, executionevent.FieldStatus)
	}
	if m.input_summary != nil {
		fields = append(fields, executionevent.FieldInputSummary)
	}
	if m.output_summary != nil {
		fields = append(fields, executionevent.FieldOutputSummary)
	}
	if m.reason_code != nil {
		fields = append(fields, executionevent.FieldReasonCode)
	}
	if m.parent_event_id != nil {
		fields = append(fields, executionevent.FieldParentEventID)
	}
	if m.prompt_id != nil {
		fields = append(fields, executionevent.FieldPromptID)
	}
	if m.prompt_version != nil {
		fields = append(fields, executionevent.FieldPromptVersion)
	}
	if m.event_metadata != nil {
		fields = append(fields, executionevent.FieldEventMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, executionevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionevent.FieldWorkflowID:
		return m.WorkflowID()
	case executionevent.FieldSessionID:
		return m.SessionID()
	case executionevent.FieldSequence:
		return m.Sequence()
	case executionevent.FieldEventType:
		return m.EventType()
	case executionevent.FieldStage:
		return m.Stage()
	case executionevent.FieldComponentRole:
		return m.ComponentRole()
	case executionevent.FieldComponentName:
		return m.ComponentName()
	case executionevent.FieldDecisionSource:
		return m.DecisionSource()
	case executionevent.FieldStatus:
		return m.Status()
	case executionevent.FieldInputSummary:
		return m.InputSummary()
	case executionevent.FieldOutputSummary:
		return m.OutputSummary()
	case executionevent.FieldReasonCode:
		return m.ReasonCode()
	case executionevent.FieldParentEventID:
		return m.ParentEventID()
	case executionevent.FieldPromptID:
		return m.PromptID()
	case executionevent.FieldPromptVersion:
		return m.PromptVersion()
	case executionevent.FieldEventMetadata:
		return m.EventMetadata()
	case executionevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionevent.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case executionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case executionevent.FieldSequence:
		return m.OldSequence(ctx)
	case executionevent.FieldEventType:
		return m.OldEventType(ctx)
	case executionevent.FieldStage:
		return m.OldStage(ctx)
	case executionevent.FieldComponentRole:
		return m.OldComponentRole(ctx)
	case executionevent.FieldComponentName:
		return m.OldComponentName(ctx)
	case executionevent.FieldDecisionSource:
		return m.OldDecisionSource(ctx)
	case executionevent.FieldStatus:
		return m.OldStatus(ctx)
	case executionevent.FieldInputSummary:
		return m.OldInputSummary(ctx)
	case executionevent.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case executionevent.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case executionevent.FieldParentEventID:
		return m.OldParentEventID(ctx)
	case executionevent.FieldPromptID:
		return m.OldPromptID(ctx)
	case executionevent.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case executionevent.FieldEventMetadata:
		return m.OldEventMetadata(ctx)
	case executionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionevent.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case executionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case executionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case executionevent.FieldEventType:
		v, ok := value.(executionevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case executionevent.FieldStage:
		v, ok := value.(executionevent.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case executionevent.FieldComponentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponentRole(v)
		return nil
	case executionevent.FieldComponentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponentName(v)
		return nil
	case executionevent.FieldDecisionSource:
		v, ok := value.(executionevent.DecisionSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionSource(v)
		return nil
	case executionevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionevent.FieldInputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSummary(v)
		return nil
	case executionevent.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case executionevent.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case executionevent.FieldParentEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentEventID(v)
		return nil
	case executionevent.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case executionevent.FieldPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case executionevent.FieldEventMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventMetadata(v)
		return nil
	case executionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, executionevent.FieldSequence)
	}
	if m.addprompt_version != nil {
		fields = append(fields, executionevent.FieldPromptVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionevent.FieldSequence:
		return m.AddedSequence()
	case executionevent.FieldPromptVersion:
		return m.AddedPromptVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case executionevent.FieldPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionevent.FieldInputSummary) {
		fields = append(fields, executionevent.FieldInputSummary)
	}
	if m.FieldCleared(executionevent.FieldOutputSummary) {
		fields = append(fields, executionevent.FieldOutputSummary)
	}
	if m.FieldCleared(executionevent.FieldReasonCode) {
		fields = append(fields, executionevent.FieldReasonCode)
	}
	if m.FieldCleared(executionevent.FieldParentEventID) {
		fields = append(fields, executionevent.FieldParentEventID)
	}
	if m.FieldCleared(executionevent.FieldPromptID) {
		fields = append(fields, executionevent.FieldPromptID)
	}
	if m.FieldCleared(executionevent.FieldPromptVersion) {
		fields = append(fields, executionevent.FieldPromptVersion)
	}
	if m.FieldCleared(executionevent.FieldEventMetadata) {
		fields = append(fields, executionevent.FieldEventMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionEventMutation) ClearField(name string) error {
	switch name {
	case executionevent.FieldInputSummary:
		m.ClearInputSummary()
		return nil
	case executionevent.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case executionevent.FieldReasonCode:
		m.ClearReasonCode()
		return nil
	case executionevent.FieldParentEventID:
		m.ClearParentEventID()
		return nil
	case executionevent.FieldPromptID:
		m.ClearPromptID()
		return nil
	case executionevent.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case executionevent.FieldEventMetadata:
		m.ClearEventMetadata()
		return nil
	}
	return fmt.Errorf("unknown ExecutionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionEventMutation) ResetField(name string) error {
	switch name {
	case executionevent.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case executionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case executionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case executionevent.FieldEventType:
		m.ResetEventType()
		return nil
	case executionevent.FieldStage:
		m.ResetStage()
		return nil
	case executionevent.FieldComponentRole:
		m.ResetComponentRole()
		return nil
	case executionevent.FieldComponentName:
		m.ResetComponentName()
		return nil
	case executionevent.FieldDecisionSource:
		m.ResetDecisionSource()
		return nil
	case executionevent.FieldStatus:
		m.ResetStatus()
		return nil
	case executionevent.FieldInputSummary:
		m.ResetInputSummary()
		return nil
	case executionevent.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case executionevent.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case executionevent.FieldParentEventID:
		m.ResetParentEventID()
		return nil
	case executionevent.FieldPromptID:
		m.ResetPromptID()
		return nil
	case executionevent.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case executionevent.FieldEventMetadata:
		m.ResetEventMetadata()
		return nil
	case executionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, executionevent.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionevent.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, executionevent.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case executionevent.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionEventMutation) ClearEdge(name string) error {
	switch name {
	case executionevent.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown ExecutionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionEventMutation) ResetEdge(name string) error {
	switch name {
	case executionevent.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown ExecutionEvent edge %s", name)
}

// LearningPatternMutation represents an operation that mutates the LearningPattern nodes in the graph.
type LearningPatternMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	kind                     *learningpattern.Kind
	level                    *learningpattern.Level
	signature                *string
	body                     *map[string]interface{}
	observed_success_rate    *float64
	addobserved_success_rate *float64
	sample_count             *int64
	addsample_count          *int64
	last_observed_at         *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*LearningPattern, error)
	predicates               []predicate.LearningPattern
}

var _ ent.Mutation = (*LearningPatternMutation)(nil)

// learningpatternOption allows management of the mutation configuration using functional options.
type learningpatternOption func(*LearningPatternMutation)

// newLearningPatternMutation creates new mutation for the LearningPattern entity.
func newLearningPatternMutation(c config, op Op, opts ...learningpatternOption) *LearningPatternMutation {
	m := &LearningPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningPatternID sets the ID field of the mutation.
func withLearningPatternID(id string) learningpatternOption {
	return func(m *LearningPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningPattern
		)
		m.oldValue = func(ctx context.Context) (*LearningPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningPattern sets the old LearningPattern of the mutation.
func withLearningPattern(node *LearningPattern) learningpatternOption {
	return func(m *LearningPatternMutation) {
		m.oldValue = func(context.Context) (*LearningPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearningPattern entities.
func (m *LearningPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *LearningPatternMutation) SetKind(l learningpattern.Kind) {
	m.kind = &l
}

// Kind returns the value of the "kind" field in the mutation.
func (m *LearningPatternMutation) Kind() (r learningpattern.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldKind(ctx context.Context) (v learningpattern.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *LearningPatternMutation) ResetKind() {
	m.kind = nil
}

// SetLevel sets the "level" field.
func (m *LearningPatternMutation) SetLevel(l learningpattern.Level) {
	m.level = &l
}

// Level returns the value of the "level" field in the mutation.
func (m *LearningPatternMutation) Level() (r learningpattern.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldLevel(ctx context.Context) (v learningpattern.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *LearningPatternMutation) ResetLevel() {
	m.level = nil
}

// SetSignature sets the "signature" field.
func (m *LearningPatternMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *LearningPatternMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ResetSignature resets all changes to the "signature" field.
func (m *LearningPatternMutation) ResetSignature() {
	m.signature = nil
}

// SetBody sets the "body" field.
func (m *LearningPatternMutation) SetBody(value map[string]interface{}) {
	m.body = &value
}

// Body returns the value of the "body" field in the mutation.
func (m *LearningPatternMutation) Body() (r map[string]interface{}, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldBody(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *LearningPatternMutation) ClearBody() {
	m.body = nil
	m.clearedFields[learningpattern.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *LearningPatternMutation) BodyCleared() bool {
	_, ok := m.clearedFields[learningpattern.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *LearningPatternMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, learningpattern.FieldBody)
}

// SetObservedSuccessRate sets the "observed_success_rate" field.
func (m *LearningPatternMutation) SetObservedSuccessRate(f float64) {
	m.observed_success_rate = &f
	m.addobserved_success_rate = nil
}

// ObservedSuccessRate returns the value of the "observed_success_rate" field in the mutation.
func (m *LearningPatternMutation) ObservedSuccessRate() (r float64, exists bool) {
	v := m.observed_success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedSuccessRate returns the old "observed_success_rate" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldObservedSuccessRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedSuccessRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedSuccessRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedSuccessRate: %w", err)
	}
	return oldValue.ObservedSuccessRate, nil
}

// AddObservedSuccessRate adds f to the "observed_success_rate" field.
func (m *LearningPatternMutation) AddObservedSuccessRate(f float64) {
	if m.addobserved_success_rate != nil {
		*m.addobserved_success_rate += f
	} else {
		m.addobserved_success_rate = &f
	}
}

// AddedObservedSuccessRate returns the value that was added to the "observed_success_rate" field in this mutation.
func (m *LearningPatternMutation) AddedObservedSuccessRate() (r float64, exists bool) {
	v := m.addobserved_success_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservedSuccessRate resets all changes to the "observed_success_rate" field.
func (m *LearningPatternMutation) ResetObservedSuccessRate() {
	m.observed_success_rate = nil
	m.addobserved_success_rate = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *LearningPatternMutation) SetSampleCount(i int64) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *LearningPatternMutation) SampleCount() (r int64, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldSampleCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *LearningPatternMutation) AddSampleCount(i int64) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *LearningPatternMutation) AddedSampleCount() (r int64, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *LearningPatternMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetLastObservedAt sets the "last_observed_at" field.
func (m *LearningPatternMutation) SetLastObservedAt(t time.Time) {
	m.last_observed_at = &t
}

// LastObservedAt returns the value of the "last_observed_at" field in the mutation.
func (m *LearningPatternMutation) LastObservedAt() (r time.Time, exists bool) {
	v := m.last_observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastObservedAt returns the old "last_observed_at" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldLastObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastObservedAt: %w", err)
	}
	return oldValue.LastObservedAt, nil
}

// ResetLastObservedAt resets all changes to the "last_observed_at" field.
func (m *LearningPatternMutation) ResetLastObservedAt() {
	m.last_observed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearningPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearningPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearningPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearningPatternMutation builder.
func (m *LearningPatternMutation) Where(ps ...predicate.LearningPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningPattern).
func (m *LearningPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningPatternMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.kind != nil {
		fields = append(fields, learningpattern.FieldKind)
	}
	if m.level != nil {
		fields = append(fields, learningpattern.FieldLevel)
	}
	if m.signature != nil {
		fields = append(fields, learningpattern.FieldSignature)
	}
	if m.body != nil {
		fields = append(fields, learningpattern.FieldBody)
	}
	if m.observed_success_rate != nil {
		fields = append(fields, learningpattern.FieldObservedSuccessRate)
	}
	if m.sample_count != nil {
		fields = append(fields, learningpattern.FieldSampleCount)
	}
	if m.last_observed_at != nil {
		fields = append(fields, learningpattern.FieldLastObservedAt)
	}
	if m.created_at != nil {
		fields = append(fields, learningpattern.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learningpattern.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningpattern.FieldKind:
		return m.Kind()
	case learningpattern.FieldLevel:
		return m.Level()
	case learningpattern.FieldSignature:
		return m.Signature()
	case learningpattern.FieldBody:
		return m.Body()
	case learningpattern.FieldObservedSuccessRate:
		return m.ObservedSuccessRate()
	case learningpattern.FieldSampleCount:
		return m.SampleCount()
	case learningpattern.FieldLastObservedAt:
		return m.LastObservedAt()
	case learningpattern.FieldCreatedAt:
		return m.CreatedAt()
	case learningpattern.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningpattern.FieldKind:
		return m.OldKind(ctx)
	case learningpattern.FieldLevel:
		return m.OldLevel(ctx)
	case learningpattern.FieldSignature:
		return m.OldSignature(ctx)
	case learningpattern.FieldBody:
		return m.OldBody(ctx)
	case learningpattern.FieldObservedSuccessRate:
		return m.OldObservedSuccessRate(ctx)
	case learningpattern.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case learningpattern.FieldLastObservedAt:
		return m.OldLastObservedAt(ctx)
	case learningpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learningpattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningpattern.FieldKind:
		v, ok := value.(learningpattern.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case learningpattern.FieldLevel:
		v, ok := value.(learningpattern.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case learningpattern.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case learningpattern.FieldBody:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case learningpattern.FieldObservedSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedSuccessRate(v)
		return nil
	case learningpattern.FieldSampleCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case learningpattern.FieldLastObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastObservedAt(v)
		return nil
	case learningpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learningpattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningPatternMutation) AddedFields() []string {
	var fields []string
	if m.addobserved_success_rate != nil {
		fields = append(fields, learningpattern.FieldObservedSuccessRate)
	}
	if m.addsample_count != nil {
		fields = append(fields, learningpattern.FieldSampleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningpattern.FieldObservedSuccessRate:
		return m.AddedObservedSuccessRate()
	case learningpattern.FieldSampleCount:
		return m.AddedSampleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningpattern.FieldObservedSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservedSuccessRate(v)
		return nil
	case learningpattern.FieldSampleCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningpattern.FieldBody) {
		fields = append(fields, learningpattern.FieldBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningPatternMutation) ClearField(name string) error {
	switch name {
	case learningpattern.FieldBody:
		m.ClearBody()
		return nil
	}
	return fmt.Errorf("unknown LearningPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningPatternMutation) ResetField(name string) error {
	switch name {
	case learningpattern.FieldKind:
		m.ResetKind()
		return nil
	case learningpattern.FieldLevel:
		m.ResetLevel()
		return nil
	case learningpattern.FieldSignature:
		m.ResetSignature()
		return nil
	case learningpattern.FieldBody:
		m.ResetBody()
		return nil
	case learningpattern.FieldObservedSuccessRate:
		m.ResetObservedSuccessRate()
		return nil
	case learningpattern.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case learningpattern.FieldLastObservedAt:
		m.ResetLastObservedAt()
		return nil
	case learningpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learningpattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningPattern edge %s", name)
}

// ModelEndpointMutation represents an operation that mutates the ModelEndpoint nodes in the graph.
type ModelEndpointMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	url                *string
	model              *string
	capabilities       *[]string
	appendcapabilities []string
	max_concurrent     *int
	addmax_concurrent  *int
	priority           *int
	addpriority        *int
	status             *modelendpoint.Status
	healthy            *bool
	last_health_check  *time.Time
	total_requests     *int64
	addtotal_requests  *int64
	successes          *int64
	addsuccesses       *int64
	failures           *int64
	addfailures        *int64
	avg_latency_ms     *float64
	addavg_latency_ms  *float64
	version            *int
	addversion         *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ModelEndpoint, error)
	predicates         []predicate.ModelEndpoint
}

var _ ent.Mutation = (*ModelEndpointMutation)(nil)

// modelendpointOption allows management of the mutation configuration using functional options.
type modelendpointOption func(*ModelEndpointMutation)

// newModelEndpointMutation creates new mutation for the ModelEndpoint entity.
func newModelEndpointMutation(c config, op Op, opts ...modelendpointOption) *ModelEndpointMutation {
	m := &ModelEndpointMutation{
		config:        c,
		op:            op,
		typ:           TypeModelEndpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelEndpointID sets the ID field of the mutation.
func withModelEndpointID(id string) modelendpointOption {
	return func(m *ModelEndpointMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelEndpoint
		)
		m.oldValue = func(ctx context.Context) (*ModelEndpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelEndpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelEndpoint sets the old ModelEndpoint of the mutation.
func withModelEndpoint(node *ModelEndpoint) modelendpointOption {
	return func(m *ModelEndpointMutation) {
		m.oldValue = func(context.Context) (*ModelEndpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelEndpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelEndpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelEndpoint entities.
func (m *ModelEndpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelEndpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelEndpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelEndpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ModelEndpointMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ModelEndpointMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ModelEndpointMutation) ResetName() {
	m.name = nil
}

// SetURL sets the "url" field.
func (m *ModelEndpointMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ModelEndpointMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ModelEndpointMutation) ResetURL() {
	m.url = nil
}

// SetModel sets the "model" field.
func (m *ModelEndpointMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ModelEndpointMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ModelEndpointMutation) ResetModel() {
	m.model = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *ModelEndpointMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *ModelEndpointMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *ModelEndpointMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *ModelEndpointMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *ModelEndpointMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
}

// SetMaxConcurrent sets the "max_concurrent" field.
func (m *ModelEndpointMutation) SetMaxConcurrent(i int) {
	m.max_concurrent = &i
	m.addmax_concurrent = nil
}

// MaxConcurrent returns the value of the "max_concurrent" field in the mutation.
func (m *ModelEndpointMutation) MaxConcurrent() (r int, exists bool) {
	v := m.max_concurrent
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrent returns the old "max_concurrent" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldMaxConcurrent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrent: %w", err)
	}
	return oldValue.MaxConcurrent, nil
}

// AddMaxConcurrent adds i to the "max_concurrent" field.
func (m *ModelEndpointMutation) AddMaxConcurrent(i int) {
	if m.addmax_concurrent != nil {
		*m.addmax_concurrent += i
	} else {
		m.addmax_concurrent = &i
	}
}

// AddedMaxConcurrent returns the value that was added to the "max_concurrent" field in this mutation.
func (m *ModelEndpointMutation) AddedMaxConcurrent() (r int, exists bool) {
	v := m.addmax_concurrent
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrent resets all changes to the "max_concurrent" field.
func (m *ModelEndpointMutation) ResetMaxConcurrent() {
	m.max_concurrent = nil
	m.addmax_concurrent = nil
}

// SetPriority sets the "priority" field.
func (m *ModelEndpointMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ModelEndpointMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ModelEndpointMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ModelEndpointMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ModelEndpointMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *ModelEndpointMutation) SetStatus(value modelendpoint.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *ModelEndpointMutation) Status() (r modelendpoint.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldStatus(ctx context.Context) (v modelendpoint.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ModelEndpointMutation) ResetStatus() {
	m.status = nil
}

// SetHealthy sets the "healthy" field.
func (m *ModelEndpointMutation) SetHealthy(b bool) {
	m.healthy = &b
}

// Healthy returns the value of the "healthy" field in the mutation.
func (m *ModelEndpointMutation) Healthy() (r bool, exists bool) {
	v := m.healthy
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthy returns the old "healthy" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldHealthy(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthy: %w", err)
	}
	return oldValue.Healthy, nil
}

// ResetHealthy resets all changes to the "healthy" field.
func (m *ModelEndpointMutation) ResetHealthy() {
	m.healthy = nil
}

// SetLastHealthCheck sets the "last_health_check" field.
func (m *ModelEndpointMutation) SetLastHealthCheck(t time.Time) {
	m.last_health_check = &t
}

// LastHealthCheck returns the value of the "last_health_check" field in the mutation.
func (m *ModelEndpointMutation) LastHealthCheck() (r time.Time, exists bool) {
	v := m.last_health_check
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHealthCheck returns the old "last_health_check" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldLastHealthCheck(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHealthCheck is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHealthCheck requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHealthCheck: %w", err)
	}
	return oldValue.LastHealthCheck, nil
}

// ClearLastHealthCheck clears the value of the "last_health_check" field.
func (m *ModelEndpointMutation) ClearLastHealthCheck() {
	m.last_health_check = nil
	m.clearedFields[modelendpoint.FieldLastHealthCheck] = struct{}{}
}

// LastHealthCheckCleared returns if the "last_health_check" field was cleared in this mutation.
func (m *ModelEndpointMutation) LastHealthCheckCleared() bool {
	_, ok := m.clearedFields[modelendpoint.FieldLastHealthCheck]
	return ok
}

// ResetLastHealthCheck resets all changes to the "last_health_check" field.
func (m *ModelEndpointMutation) ResetLastHealthCheck() {
	m.last_health_check = nil
	delete(m.clearedFields, modelendpoint.FieldLastHealthCheck)
}

// SetTotalRequests sets the "total_requests" field.
func (m *ModelEndpointMutation) SetTotalRequests(i int64) {
	m.total_requests = &i
	m.addtotal_requests = nil
}

// TotalRequests returns the value of the "total_requests" field in the mutation.
func (m *ModelEndpointMutation) TotalRequests() (r int64, exists bool) {
	v := m.total_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRequests returns the old "total_requests" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldTotalRequests(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRequests: %w", err)
	}
	return oldValue.TotalRequests, nil
}

// AddTotalRequests adds i to the "total_requests" field.
func (m *ModelEndpointMutation) AddTotalRequests(i int64) {
	if m.addtotal_requests != nil {
		*m.addtotal_requests += i
	} else {
		m.addtotal_requests = &i
	}
}

// AddedTotalRequests returns the value that was added to the "total_requests" field in this mutation.
func (m *ModelEndpointMutation) AddedTotalRequests() (r int64, exists bool) {
	v := m.addtotal_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRequests resets all changes to the "total_requests" field.
func (m *ModelEndpointMutation) ResetTotalRequests() {
	m.total_requests = nil
	m.addtotal_requests = nil
}

// SetSuccesses sets the "successes" field.
func (m *ModelEndpointMutation) SetSuccesses(i int64) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *ModelEndpointMutation) Successes() (r int64, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldSuccesses(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *ModelEndpointMutation) AddSuccesses(i int64) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *ModelEndpointMutation) AddedSuccesses() (r int64, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *ModelEndpointMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetFailures sets the "failures" field.
func (m *ModelEndpointMutation) SetFailures(i int64) {
	m.failures = &i
	m.addfailures = nil
}

// Failures returns the value of the "failures" field in the mutation.
func (m *ModelEndpointMutation) Failures() (r int64, exists bool) {
	v := m.failures
	if v == nil {
		return
	}
	return *v, true
}

// OldFailures returns the old "failures" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldFailures(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailures: %w", err)
	}
	return oldValue.Failures, nil
}

// AddFailures adds i to the "failures" field.
func (m *ModelEndpointMutation) AddFailures(i int64) {
	if m.addfailures != nil {
		*m.addfailures += i
	} else {
		m.addfailures = &i
	}
}

// AddedFailures returns the value that was added to the "failures" field in this mutation.
func (m *ModelEndpointMutation) AddedFailures() (r int64, exists bool) {
	v := m.addfailures
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailures resets all changes to the "failures" field.
func (m *ModelEndpointMutation) ResetFailures() {
	m.failures = nil
	m.addfailures = nil
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (m *ModelEndpointMutation) SetAvgLatencyMs(f float64) {
	m.avg_latency_ms = &f
	m.addavg_latency_ms = nil
}

// AvgLatencyMs returns the value of the "avg_latency_ms" field in the mutation.
func (m *ModelEndpointMutation) AvgLatencyMs() (r float64, exists bool) {
	v := m.avg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgLatencyMs returns the old "avg_latency_ms" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldAvgLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgLatencyMs: %w", err)
	}
	return oldValue.AvgLatencyMs, nil
}

// AddAvgLatencyMs adds f to the "avg_latency_ms" field.
func (m *ModelEndpointMutation) AddAvgLatencyMs(f float64) {
	if m.addavg_latency_ms != nil {
		*m.addavg_latency_ms += f
	} else {
		m.addavg_latency_ms = &f
	}
}

// AddedAvgLatencyMs returns the value that was added to the "avg_latency_ms" field in this mutation.
func (m *ModelEndpointMutation) AddedAvgLatencyMs() (r float64, exists bool) {
	v := m.addavg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgLatencyMs resets all changes to the "avg_latency_ms" field.
func (m *ModelEndpointMutation) ResetAvgLatencyMs() {
	m.avg_latency_ms = nil
	m.addavg_latency_ms = nil
}

// SetVersion sets the "version" field.
func (m *ModelEndpointMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ModelEndpointMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ModelEndpointMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ModelEndpointMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ModelEndpointMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelEndpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelEndpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelEndpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelEndpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelEndpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelEndpoint entity.
// If the ModelEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEndpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelEndpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelEndpointMutation builder.
func (m *ModelEndpointMutation) Where(ps ...predicate.ModelEndpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelEndpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelEndpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelEndpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelEndpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelEndpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelEndpoint).
func (m *ModelEndpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelEndpointMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.name != nil {
		fields = append(fields, modelendpoint.FieldName)
	}
	if m.url != nil {
		fields = append(fields, modelendpoint.FieldURL)
	}
	if m.model != nil {
		fields = append(fields, modelendpoint.FieldModel)
	}
	if m.capabilities != nil {
		fields = append(fields, modelendpoint.FieldCapabilities)
	}
	if m.max_concurrent != nil {
		fields = append(fields, modelendpoint.FieldMaxConcurrent)
	}
	if m.priority != nil {
		fields = append(fields, modelendpoint.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, modelendpoint.FieldStatus)
	}
	if m.healthy != nil {
		fields = append(fields, modelendpoint.FieldHealthy)
	}
	if m.last_health_check != nil {
		fields = append(fields, modelendpoint.FieldLastHealthCheck)
	}
	if m.total_requests != nil {
		fields = append(fields, modelendpoint.FieldTotalRequests)
	}
	if m.successes != nil {
		fields = append(fields, modelendpoint.FieldSuccesses)
	}
	if m.failures != nil {
		fields = append(fields, modelendpoint.FieldFailures)
	}
	if m.avg_latency_ms != nil {
		fields = append(fields, modelendpoint.FieldAvgLatencyMs)
	}
	if m.version != nil {
		fields = append(fields, modelendpoint.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, modelendpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelendpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelEndpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelendpoint.FieldName:
		return m.Name()
	case modelendpoint.FieldURL:
		return m.URL()
	case modelendpoint.FieldModel:
		return m.Model()
	case modelendpoint.FieldCapabilities:
		return m.Capabilities()
	case modelendpoint.FieldMaxConcurrent:
		return m.MaxConcurrent()
	case modelendpoint.FieldPriority:
		return m.Priority()
	case modelendpoint.FieldStatus:
		return m.Status()
	case modelendpoint.FieldHealthy:
		return m.Healthy()
	case modelendpoint.FieldLastHealthCheck:
		return m.LastHealthCheck()
	case modelendpoint.FieldTotalRequests:
		return m.TotalRequests()
	case modelendpoint.FieldSuccesses:
		return m.Successes()
	case modelendpoint.FieldFailures:
		return m.Failures()
	case modelendpoint.FieldAvgLatencyMs:
		return m.AvgLatencyMs()
	case modelendpoint.FieldVersion:
		return m.Version()
	case modelendpoint.FieldCreatedAt:
		return m.CreatedAt()
	case modelendpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelEndpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelendpoint.FieldName:
		return m.OldName(ctx)
	case modelendpoint.FieldURL:
		return m.OldURL(ctx)
	case modelendpoint.FieldModel:
		return m.OldModel(ctx)
	case modelendpoint.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case modelendpoint.FieldMaxConcurrent:
		return m.OldMaxConcurrent(ctx)
	case modelendpoint.FieldPriority:
		return m.OldPriority(ctx)
	case modelendpoint.FieldStatus:
		return m.OldStatus(ctx)
	case modelendpoint.FieldHealthy:
		return m.OldHealthy(ctx)
	case modelendpoint.FieldLastHealthCheck:
		return m.OldLastHealthCheck(ctx)
	case modelendpoint.FieldTotalRequests:
		return m.OldTotalRequests(ctx)
	case modelendpoint.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case modelendpoint.FieldFailures:
		return m.OldFailures(ctx)
	case modelendpoint.FieldAvgLatencyMs:
		return m.OldAvgLatencyMs(ctx)
	case modelendpoint.FieldVersion:
		return m.OldVersion(ctx)
	case modelendpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelendpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelEndpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelEndpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelendpoint.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case modelendpoint.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case modelendpoint.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case modelendpoint.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case modelendpoint.FieldMaxConcurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrent(v)
		return nil
	case modelendpoint.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case modelendpoint.FieldStatus:
		v, ok := value.(modelendpoint.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case modelendpoint.FieldHealthy:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthy(v)
		return nil
	case modelendpoint.FieldLastHealthCheck:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHealthCheck(v)
		return nil
	case modelendpoint.FieldTotalRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRequests(v)
		return nil
	case modelendpoint.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case modelendpoint.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailures(v)
		return nil
	case modelendpoint.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgLatencyMs(v)
		return nil
	case modelendpoint.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case modelendpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelendpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelEndpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelEndpointMutation) AddedFields() []string {
	var fields []string
	if m.addmax_concurrent != nil {
		fields = append(fields, modelendpoint.FieldMaxConcurrent)
	}
	if m.addpriority != nil {
		fields = append(fields, modelendpoint.FieldPriority)
	}
	if m.addtotal_requests != nil {
		fields = append(fields, modelendpoint.FieldTotalRequests)
	}
	if m.addsuccesses != nil {
		fields = append(fields, modelendpoint.FieldSuccesses)
	}
	if m.addfailures != nil {
		fields = append(fields, modelendpoint.FieldFailures)
	}
	if m.addavg_latency_ms != nil {
		fields = append(fields, modelendpoint.FieldAvgLatencyMs)
	}
	if m.addversion != nil {
		fields = append(fields, modelendpoint.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelEndpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelendpoint.FieldMaxConcurrent:
		return m.AddedMaxConcurrent()
	case modelendpoint.FieldPriority:
		return m.AddedPriority()
	case modelendpoint.FieldTotalRequests:
		return m.AddedTotalRequests()
	case modelendpoint.FieldSuccesses:
		return m.AddedSuccesses()
	case modelendpoint.FieldFailures:
		return m.AddedFailures()
	case modelendpoint.FieldAvgLatencyMs:
		return m.AddedAvgLatencyMs()
	case modelendpoint.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelEndpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelendpoint.FieldMaxConcurrent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrent(v)
		return nil
	case modelendpoint.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case modelendpoint.FieldTotalRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRequests(v)
		return nil
	case modelendpoint.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case modelendpoint.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailures(v)
		return nil
	case modelendpoint.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgLatencyMs(v)
		return nil
	case modelendpoint.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ModelEndpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelEndpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelendpoint.FieldLastHealthCheck) {
		fields = append(fields, modelendpoint.FieldLastHealthCheck)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelEndpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelEndpointMutation) ClearField(name string) error {
	switch name {
	case modelendpoint.FieldLastHealthCheck:
		m.ClearLastHealthCheck()
		return nil
	}
	return fmt.Errorf("unknown ModelEndpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelEndpointMutation) ResetField(name string) error {
	switch name {
	case modelendpoint.FieldName:
		m.ResetName()
		return nil
	case modelendpoint.FieldURL:
		m.ResetURL()
		return nil
	case modelendpoint.FieldModel:
		m.ResetModel()
		return nil
	case modelendpoint.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case modelendpoint.FieldMaxConcurrent:
		m.ResetMaxConcurrent()
		return nil
	case modelendpoint.FieldPriority:
		m.ResetPriority()
		return nil
	case modelendpoint.FieldStatus:
		m.ResetStatus()
		return nil
	case modelendpoint.FieldHealthy:
		m.ResetHealthy()
		return nil
	case modelendpoint.FieldLastHealthCheck:
		m.ResetLastHealthCheck()
		return nil
	case modelendpoint.FieldTotalRequests:
		m.ResetTotalRequests()
		return nil
	case modelendpoint.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case modelendpoint.FieldFailures:
		m.ResetFailures()
		return nil
	case modelendpoint.FieldAvgLatencyMs:
		m.ResetAvgLatencyMs()
		return nil
	case modelendpoint.FieldVersion:
		m.ResetVersion()
		return nil
	case modelendpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelendpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelEndpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelEndpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelEndpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelEndpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelEndpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelEndpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelEndpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelEndpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelEndpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelEndpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelEndpoint edge %s", name)
}

// PlanMutation represents an operation that mutates the Plan nodes in the graph.
type PlanMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	version                 *int
	addversion              *int
	goal                    *string
	strategy_name           *string
	strategy                *map[string]interface{}
	risk_score              *float64
	addrisk_score           *float64
	alternatives            *[]string
	appendalternatives      []string
	primary                 *bool
	status                  *plan.Status
	expected_duration_ms    *int64
	addexpected_duration_ms *int64
	actual_duration_ms      *int64
	addactual_duration_ms   *int64
	reason_code             *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	workflow                *string
	clearedworkflow         bool
	plan_steps              map[string]struct{}
	removedplan_steps       map[string]struct{}
	clearedplan_steps       bool
	done                    bool
	oldValue                func(context.Context) (*Plan, error)
	predicates              []predicate.Plan
}

var _ ent.Mutation = (*PlanMutation)(nil)

// planOption allows management of the mutation configuration using functional options.
type planOption func(*PlanMutation)

// newPlanMutation creates new mutation for the Plan entity.
func newPlanMutation(c config, op Op, opts ...planOption) *PlanMutation {
	m := &PlanMutation{
		config:        c,
		op:            op,
		typ:           TypePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanID sets the ID field of the mutation.
func withPlanID(id string) planOption {
	return func(m *PlanMutation) {
		var (
			err   error
			once  sync.Once
			value *Plan
		)
		m.oldValue = func(ctx context.Context) (*Plan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlan sets the old Plan of the mutation.
func withPlan(node *Plan) planOption {
	return func(m *PlanMutation) {
		m.oldValue = func(context.Context) (*Plan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Plan entities.
func (m *PlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *PlanMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *PlanMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *PlanMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetVersion sets the "version" field.
func (m *PlanMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PlanMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PlanMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PlanMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PlanMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetGoal sets the "goal" field.
func (m *PlanMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *PlanMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *PlanMutation) ResetGoal() {
	m.goal = nil
}

// SetStrategyName sets the "strategy_name" field.
func (m *PlanMutation) SetStrategyName(s string) {
	m.strategy_name = &s
}

// StrategyName returns the value of the "strategy_name" field in the mutation.
func (m *PlanMutation) StrategyName() (r string, exists bool) {
	v := m.strategy_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyName returns the old "strategy_name" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStrategyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyName: %w", err)
	}
	return oldValue.StrategyName, nil
}

// ClearStrategyName clears the value of the "strategy_name" field.
func (m *PlanMutation) ClearStrategyName() {
	m.strategy_name = nil
	m.clearedFields[plan.FieldStrategyName] = struct{}{}
}

// StrategyNameCleared returns if the "strategy_name" field was cleared in this mutation.
func (m *PlanMutation) StrategyNameCleared() bool {
	_, ok := m.clearedFields[plan.FieldStrategyName]
	return ok
}

// ResetStrategyName resets all changes to the "strategy_name" field.
func (m *PlanMutation) ResetStrategyName() {
	m.strategy_name = nil
	delete(m.clearedFields, plan.FieldStrategyName)
}

// SetStrategy sets the "strategy" field.
func (m *PlanMutation) SetStrategy(value map[string]interface{}) {
	m.strategy = &value
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *PlanMutation) Strategy() (r map[string]interface{}, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStrategy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *PlanMutation) ResetStrategy() {
	m.strategy = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *PlanMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *PlanMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *PlanMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *PlanMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *PlanMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetAlternatives sets the "alternatives" field.
func (m *PlanMutation) SetAlternatives(s []string) {
	m.alternatives = &s
	m.appendalternatives = nil
}

// Alternatives returns the value of the "alternatives" field in the mutation.
func (m *PlanMutation) Alternatives() (r []string, exists bool) {
	v := m.alternatives
	if v == nil {
		return
	}
	return *v, true
}

// OldAlternatives returns the old "alternatives" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldAlternatives(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlternatives is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlternatives requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlternatives: %w", err)
	}
	return oldValue.Alternatives, nil
}

// AppendAlternatives adds s to the "alternatives" field.
func (m *PlanMutation) AppendAlternatives(s []string) {
	m.appendalternatives = append(m.appendalternatives, s...)
}

// AppendedAlternatives returns the list of values that were appended to the "alternatives" field in this mutation.
func (m *PlanMutation) AppendedAlternatives() ([]string, bool) {
	if len(m.appendalternatives) == 0 {
		return nil, false
	}
	return m.appendalternatives, true
}

// ClearAlternatives clears the value of the "alternatives" field.
func (m *PlanMutation) ClearAlternatives() {
	m.alternatives = nil
	m.appendalternatives = nil
	m.clearedFields[plan.FieldAlternatives] = struct{}{}
}

// AlternativesCleared returns if the "alternatives" field was cleared in this mutation.
func (m *PlanMutation) AlternativesCleared() bool {
	_, ok := m.clearedFields[plan.FieldAlternatives]
	return ok
}

// ResetAlternatives resets all changes to the "alternatives" field.
func (m *PlanMutation) ResetAlternatives() {
	m.alternatives = nil
	m.appendalternatives = nil
	delete(m.clearedFields, plan.FieldAlternatives)
}

// SetPrimary sets the "primary" field.
func (m *PlanMutation) SetPrimary(b bool) {
	m.primary = &b
}

// Primary returns the value of the "primary" field in the mutation.
func (m *PlanMutation) Primary() (r bool, exists bool) {
	v := m.primary
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimary returns the old "primary" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimary: %w", err)
	}
	return oldValue.Primary, nil
}

// ResetPrimary resets all changes to the "primary" field.
func (m *PlanMutation) ResetPrimary() {
	m.primary = nil
}

// SetStatus sets the "status" field.
func (m *PlanMutation) SetStatus(pl plan.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanMutation) Status() (r plan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStatus(ctx context.Context) (v plan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanMutation) ResetStatus() {
	m.status = nil
}

// SetExpectedDurationMs sets the "expected_duration_ms" field.
func (m *PlanMutation) SetExpectedDurationMs(i int64) {
	m.expected_duration_ms = &i
	m.addexpected_duration_ms = nil
}

// ExpectedDurationMs returns the value of the "expected_duration_ms" field in the mutation.
func (m *PlanMutation) ExpectedDurationMs() (r int64, exists bool) {
	v := m.expected_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedDurationMs returns the old "expected_duration_ms" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldExpectedDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedDurationMs: %w", err)
	}
	return oldValue.ExpectedDurationMs, nil
}

// AddExpectedDurationMs adds i to the "expected_duration_ms" field.
func (m *PlanMutation) AddExpectedDurationMs(i int64) {
	if m.addexpected_duration_ms != nil {
		*m.addexpected_duration_ms += i
	} else {
		m.addexpected_duration_ms = &i
	}
}

// AddedExpectedDurationMs returns the value that was added to the "expected_duration_ms" field in this mutation.
func (m *PlanMutation) AddedExpectedDurationMs() (r int64, exists bool) {
	v := m.addexpected_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpectedDurationMs resets all changes to the "expected_duration_ms" field.
func (m *PlanMutation) ResetExpectedDurationMs() {
	m.expected_duration_ms = nil
	m.addexpected_duration_ms = nil
}

// SetActualDurationMs sets the "actual_duration_ms" field.
func (m *PlanMutation) SetActualDurationMs(i int64) {
	m.actual_duration_ms = &i
	m.addactual_duration_ms = nil
}

// ActualDurationMs returns the value of the "actual_duration_ms" field in the mutation.
func (m *PlanMutation) ActualDurationMs() (r int64, exists bool) {
	v := m.actual_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldActualDurationMs returns the old "actual_duration_ms" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldActualDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualDurationMs: %w", err)
	}
	return oldValue.ActualDurationMs, nil
}

// AddActualDurationMs adds i to the "actual_duration_ms" field.
func (m *PlanMutation) AddActualDurationMs(i int64) {
	if m.addactual_duration_ms != nil {
		*m.addactual_duration_ms += i
	} else {
		m.addactual_duration_ms = &i
	}
}

// AddedActualDurationMs returns the value that was added to the "actual_duration_ms" field in this mutation.
func (m *PlanMutation) AddedActualDurationMs() (r int64, exists bool) {
	v := m.addactual_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearActualDurationMs clears the value of the "actual_duration_ms" field.
func (m *PlanMutation) ClearActualDurationMs() {
	m.actual_duration_ms = nil
	m.addactual_duration_ms = nil
	m.clearedFields[plan.FieldActualDurationMs] = struct{}{}
}

// ActualDurationMsCleared returns if the "actual_duration_ms" field was cleared in this mutation.
func (m *PlanMutation) ActualDurationMsCleared() bool {
	_, ok := m.clearedFields[plan.FieldActualDurationMs]
	return ok
}

// ResetActualDurationMs resets all changes to the "actual_duration_ms" field.
func (m *PlanMutation) ResetActualDurationMs() {
	m.actual_duration_ms = nil
	m.addactual_duration_ms = nil
	delete(m.clearedFields, plan.FieldActualDurationMs)
}

// SetReasonCode sets the "reason_code" field.
func (m *PlanMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *PlanMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldReasonCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ClearReasonCode clears the value of the "reason_code" field.
func (m *PlanMutation) ClearReasonCode() {
	m.reason_code = nil
	m.clearedFields[plan.FieldReasonCode] = struct{}{}
}

// ReasonCodeCleared returns if the "reason_code" field was cleared in this mutation.
func (m *PlanMutation) ReasonCodeCleared() bool {
	_, ok := m.clearedFields[plan.FieldReasonCode]
	return ok
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *PlanMutation) ResetReasonCode() {
	m.reason_code = nil
	delete(m.clearedFields, plan.FieldReasonCode)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *PlanMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[plan.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *PlanMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *PlanMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *PlanMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// AddPlanStepIDs adds the "plan_steps" edge to the Step entity by ids.
func (m *PlanMutation) AddPlanStepIDs(ids ...string) {
	if m.plan_steps == nil {
		m.plan_steps = make(map[string]struct{})
	}
	for i := range ids {
		m.plan_steps[ids[i]] = struct{}{}
	}
}

// ClearPlanSteps clears the "plan_steps" edge to the Step entity.
func (m *PlanMutation) ClearPlanSteps() {
	m.clearedplan_steps = true
}

// PlanStepsCleared reports if the "plan_steps" edge to the Step entity was cleared.
func (m *PlanMutation) PlanStepsCleared() bool {
	return m.clearedplan_steps
}

// RemovePlanStepIDs removes the "plan_steps" edge to the Step entity by IDs.
func (m *PlanMutation) RemovePlanStepIDs(ids ...string) {
	if m.removedplan_steps == nil {
		m.removedplan_steps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.plan_steps, ids[i])
		m.removedplan_steps[ids[i]] = struct{}{}
	}
}

// RemovedPlanSteps returns the removed IDs of the "plan_steps" edge to the Step entity.
func (m *PlanMutation) RemovedPlanStepsIDs() (ids []string) {
	for id := range m.removedplan_steps {
		ids = append(ids, id)
	}
	return
}

// PlanStepsIDs returns the "plan_steps" edge IDs in the mutation.
func (m *PlanMutation) PlanStepsIDs() (ids []string) {
	for id := range m.plan_steps {
		ids = append(ids, id)
	}
	return
}

// ResetPlanSteps resets all changes to the "plan_steps" edge.
func (m *PlanMutation) ResetPlanSteps() {
	m.plan_steps = nil
	m.clearedplan_steps = false
	m.removedplan_steps = nil
}

// Where appends a list predicates to the PlanMutation builder.
func (m *PlanMutation) Where(ps ...predicate.Plan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plan).
func (m *PlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workflow != nil {
		fields = append(fields, plan.FieldWorkflowID)
	}
	if m.version != nil {
		fields = append(fields, plan.FieldVersion)
	}
	if m.goal != nil {
		fields = append(fields, plan.FieldGoal)
	}
	if m.strategy_name != nil {
		fields = append(fields, plan.FieldStrategyName)
	}
	if m.strategy != nil {
		fields = append(fields, plan.FieldStrategy)
	}
	if m.risk_score != nil {
		fields = append(fields, plan.FieldRiskScore)
	}
	if m.alternatives != nil {
		fields = append(fields, plan.FieldAlternatives)
	}
	if m.primary != nil {
		fields = append(fields, plan.FieldPrimary)
	}
	if m.status != nil {
		fields = append(fields, plan.FieldStatus)
	}
	if m.expected_duration_ms != nil {
		fields = append(fields, plan.FieldExpectedDurationMs)
	}
	if m.actual_duration_ms != nil {
		fields = append(fields, plan.FieldActualDurationMs)
	}
	if m.reason_code != nil {
		fields = append(fields, plan.FieldReasonCode)
	}
	if m.created_at != nil {
		fields = append(fields, plan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldWorkflowID:
		return m.WorkflowID()
	case plan.FieldVersion:
		return m.Version()
	case plan.FieldGoal:
		return m.Goal()
	case plan.FieldStrategyName:
		return m.StrategyName()
	case plan.FieldStrategy:
		return m.Strategy()
	case plan.FieldRiskScore:
		return m.RiskScore()
	case plan.FieldAlternatives:
		return m.Alternatives()
	case plan.FieldPrimary:
		return m.Primary()
	case plan.FieldStatus:
		return m.Status()
	case plan.FieldExpectedDurationMs:
		return m.ExpectedDurationMs()
	case plan.FieldActualDurationMs:
		return m.ActualDurationMs()
	case plan.FieldReasonCode:
		return m.ReasonCode()
	case plan.FieldCreatedAt:
		return m.CreatedAt()
	case plan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plan.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case plan.FieldVersion:
		return m.OldVersion(ctx)
	case plan.FieldGoal:
		return m.OldGoal(ctx)
	case plan.FieldStrategyName:
		return m.OldStrategyName(ctx)
	case plan.FieldStrategy:
		return m.OldStrategy(ctx)
	case plan.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case plan.FieldAlternatives:
		return m.OldAlternatives(ctx)
	case plan.FieldPrimary:
		return m.OldPrimary(ctx)
	case plan.FieldStatus:
		return m.OldStatus(ctx)
	case plan.FieldExpectedDurationMs:
		return m.OldExpectedDurationMs(ctx)
	case plan.FieldActualDurationMs:
		return m.OldActualDurationMs(ctx)
	case plan.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case plan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Plan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plan.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case plan.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case plan.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case plan.FieldStrategyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyName(v)
		return nil
	case plan.FieldStrategy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case plan.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case plan.FieldAlternatives:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlternatives(v)
		return nil
	case plan.FieldPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimary(v)
		return nil
	case plan.FieldStatus:
		v, ok := value.(plan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plan.FieldExpectedDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedDurationMs(v)
		return nil
	case plan.FieldActualDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualDurationMs(v)
		return nil
	case plan.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case plan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, plan.FieldVersion)
	}
	if m.addrisk_score != nil {
		fields = append(fields, plan.FieldRiskScore)
	}
	if m.addexpected_duration_ms != nil {
		fields = append(fields, plan.FieldExpectedDurationMs)
	}
	if m.addactual_duration_ms != nil {
		fields = append(fields, plan.FieldActualDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldVersion:
		return m.AddedVersion()
	case plan.FieldRiskScore:
		return m.AddedRiskScore()
	case plan.FieldExpectedDurationMs:
		return m.AddedExpectedDurationMs()
	case plan.FieldActualDurationMs:
		return m.AddedActualDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plan.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case plan.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case plan.FieldExpectedDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedDurationMs(v)
		return nil
	case plan.FieldActualDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Plan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plan.FieldStrategyName) {
		fields = append(fields, plan.FieldStrategyName)
	}
	if m.FieldCleared(plan.FieldAlternatives) {
		fields = append(fields, plan.FieldAlternatives)
	}
	if m.FieldCleared(plan.FieldActualDurationMs) {
		fields = append(fields, plan.FieldActualDurationMs)
	}
	if m.FieldCleared(plan.FieldReasonCode) {
		fields = append(fields, plan.FieldReasonCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanMutation) ClearField(name string) error {
	switch name {
	case plan.FieldStrategyName:
		m.ClearStrategyName()
		return nil
	case plan.FieldAlternatives:
		m.ClearAlternatives()
		return nil
	case plan.FieldActualDurationMs:
		m.ClearActualDurationMs()
		return nil
	case plan.FieldReasonCode:
		m.ClearReasonCode()
		return nil
	}
	return fmt.Errorf("unknown Plan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanMutation) ResetField(name string) error {
	switch name {
	case plan.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case plan.FieldVersion:
		m.ResetVersion()
		return nil
	case plan.FieldGoal:
		m.ResetGoal()
		return nil
	case plan.FieldStrategyName:
		m.ResetStrategyName()
		return nil
	case plan.FieldStrategy:
		m.ResetStrategy()
		return nil
	case plan.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case plan.FieldAlternatives:
		m.ResetAlternatives()
		return nil
	case plan.FieldPrimary:
		m.ResetPrimary()
		return nil
	case plan.FieldStatus:
		m.ResetStatus()
		return nil
	case plan.FieldExpectedDurationMs:
		m.ResetExpectedDurationMs()
		return nil
	case plan.FieldActualDurationMs:
		m.ResetActualDurationMs()
		return nil
	case plan.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case plan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workflow != nil {
		edges = append(edges, plan.EdgeWorkflow)
	}
	if m.plan_steps != nil {
		edges = append(edges, plan.EdgePlanSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case plan.EdgePlanSteps:
		ids := make([]ent.Value, 0, len(m.plan_steps))
		for id := range m.plan_steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedplan_steps != nil {
		edges = append(edges, plan.EdgePlanSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgePlanSteps:
		ids := make([]ent.Value, 0, len(m.removedplan_steps))
		for id := range m.removedplan_steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkflow {
		edges = append(edges, plan.EdgeWorkflow)
	}
	if m.clearedplan_steps {
		edges = append(edges, plan.EdgePlanSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanMutation) EdgeCleared(name string) bool {
	switch name {
	case plan.EdgeWorkflow:
		return m.clearedworkflow
	case plan.EdgePlanSteps:
		return m.clearedplan_steps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanMutation) ClearEdge(name string) error {
	switch name {
	case plan.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Plan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanMutation) ResetEdge(name string) error {
	switch name {
	case plan.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case plan.EdgePlanSteps:
		m.ResetPlanSteps()
		return nil
	}
	return fmt.Errorf("unknown Plan edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	prompt_id     *string
	version       *int
	addversion    *int
	body          *string
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Prompt, error)
	predicates    []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPromptID sets the "prompt_id" field.
func (m *PromptMutation) SetPromptID(s string) {
	m.prompt_id = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *PromptMutation) PromptID() (r string, exists bool) {
	v := m.prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldPromptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *PromptMutation) ResetPromptID() {
	m.prompt_id = nil
}

// SetVersion sets the "version" field.
func (m *PromptMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PromptMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PromptMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetBody sets the "body" field.
func (m *PromptMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *PromptMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *PromptMutation) ResetBody() {
	m.body = nil
}

// SetDescription sets the "description" field.
func (m *PromptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PromptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PromptMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[prompt.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PromptMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[prompt.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PromptMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, prompt.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.prompt_id != nil {
		fields = append(fields, prompt.FieldPromptID)
	}
	if m.version != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	if m.body != nil {
		fields = append(fields, prompt.FieldBody)
	}
	if m.description != nil {
		fields = append(fields, prompt.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldPromptID:
		return m.PromptID()
	case prompt.FieldVersion:
		return m.Version()
	case prompt.FieldBody:
		return m.Body()
	case prompt.FieldDescription:
		return m.Description()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldPromptID:
		return m.OldPromptID(ctx)
	case prompt.FieldVersion:
		return m.OldVersion(ctx)
	case prompt.FieldBody:
		return m.OldBody(ctx)
	case prompt.FieldDescription:
		return m.OldDescription(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case prompt.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case prompt.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldDescription) {
		fields = append(fields, prompt.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldPromptID:
		m.ResetPromptID()
		return nil
	case prompt.FieldVersion:
		m.ResetVersion()
		return nil
	case prompt.FieldBody:
		m.ResetBody()
		return nil
	case prompt.FieldDescription:
		m.ResetDescription()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prompt edge %s", name)
}

// PromptAssignmentMutation represents an operation that mutates the PromptAssignment nodes in the graph.
type PromptAssignmentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	stage             *promptassignment.Stage
	component_role    *string
	scope_type        *promptassignment.ScopeType
	scope_value       *string
	prompt_id         *string
	prompt_version    *int
	addprompt_version *int
	legacy_exempt     *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PromptAssignment, error)
	predicates        []predicate.PromptAssignment
}

var _ ent.Mutation = (*PromptAssignmentMutation)(nil)

// promptassignmentOption allows management of the mutation configuration using functional options.
type promptassignmentOption func(*PromptAssignmentMutation)

// newPromptAssignmentMutation creates new mutation for the PromptAssignment entity.
func newPromptAssignmentMutation(c config, op Op, opts ...promptassignmentOption) *PromptAssignmentMutation {
	m := &PromptAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypePromptAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptAssignmentID sets the ID field of the mutation.
func withPromptAssignmentID(id string) promptassignmentOption {
	return func(m *PromptAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptAssignment
		)
		m.oldValue = func(ctx context.Context) (*PromptAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptAssignment sets the old PromptAssignment of the mutation.
func withPromptAssignment(node *PromptAssignment) promptassignmentOption {
	return func(m *PromptAssignmentMutation) {
		m.oldValue = func(context.Context) (*PromptAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptAssignment entities.
func (m *PromptAssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptAssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptAssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStage sets the "stage" field.
func (m *PromptAssignmentMutation) SetStage(pr promptassignment.Stage) {
	m.stage = &pr
}

// Stage returns the value of the "stage" field in the mutation.
func (m *PromptAssignmentMutation) Stage() (r promptassignment.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldStage(ctx context.Context) (v promptassignment.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *PromptAssignmentMutation) ResetStage() {
	m.stage = nil
}

// SetComponentRole sets the "component_role" field.
func (m *PromptAssignmentMutation) SetComponentRole(s string) {
	m.component_role = &s
}

// ComponentRole returns the value of the "component_role" field in the mutation.
func (m *PromptAssignmentMutation) ComponentRole() (r string, exists bool) {
	v := m.component_role
	if v == nil {
		return
	}
	return *v, true
}

// OldComponentRole returns the old "component_role" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldComponentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponentRole: %w", err)
	}
	return oldValue.ComponentRole, nil
}

// ResetComponentRole resets all changes to the "component_role" field.
func (m *PromptAssignmentMutation) ResetComponentRole() {
	m.component_role = nil
}

// SetScopeType sets the "scope_type" field.
func (m *PromptAssignmentMutation) SetScopeType(pt promptassignment.ScopeType) {
	m.scope_type = &pt
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *PromptAssignmentMutation) ScopeType() (r promptassignment.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldScopeType(ctx context.Context) (v promptassignment.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *PromptAssignmentMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeValue sets the "scope_value" field.
func (m *PromptAssignmentMutation) SetScopeValue(s string) {
	m.scope_value = &s
}

// ScopeValue returns the value of the "scope_value" field in the mutation.
func (m *PromptAssignmentMutation) ScopeValue() (r string, exists bool) {
	v := m.scope_value
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeValue returns the old "scope_value" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldScopeValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeValue: %w", err)
	}
	return oldValue.ScopeValue, nil
}

// ResetScopeValue resets all changes to the "scope_value" field.
func (m *PromptAssignmentMutation) ResetScopeValue() {
	m.scope_value = nil
}

// SetPromptID sets the "prompt_id" field.
func (m *PromptAssignmentMutation) SetPromptID(s string) {
	m.prompt_id = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *PromptAssignmentMutation) PromptID() (r string, exists bool) {
	v := m.prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldPromptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *PromptAssignmentMutation) ResetPromptID() {
	m.prompt_id = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *PromptAssignmentMutation) SetPromptVersion(i int) {
	m.prompt_version = &i
	m.addprompt_version = nil
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *PromptAssignmentMutation) PromptVersion() (r int, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldPromptVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// AddPromptVersion adds i to the "prompt_version" field.
func (m *PromptAssignmentMutation) AddPromptVersion(i int) {
	if m.addprompt_version != nil {
		*m.addprompt_version += i
	} else {
		m.addprompt_version = &i
	}
}

// AddedPromptVersion returns the value that was added to the "prompt_version" field in this mutation.
func (m *PromptAssignmentMutation) AddedPromptVersion() (r int, exists bool) {
	v := m.addprompt_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *PromptAssignmentMutation) ResetPromptVersion() {
	m.prompt_version = nil
	m.addprompt_version = nil
}

// SetLegacyExempt sets the "legacy_exempt" field.
func (m *PromptAssignmentMutation) SetLegacyExempt(b bool) {
	m.legacy_exempt = &b
}

// LegacyExempt returns the value of the "legacy_exempt" field in the mutation.
func (m *PromptAssignmentMutation) LegacyExempt() (r bool, exists bool) {
	v := m.legacy_exempt
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyExempt returns the old "legacy_exempt" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldLegacyExempt(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyExempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyExempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyExempt: %w", err)
	}
	return oldValue.LegacyExempt, nil
}

// ResetLegacyExempt resets all changes to the "legacy_exempt" field.
func (m *PromptAssignmentMutation) ResetLegacyExempt() {
	m.legacy_exempt = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptAssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptAssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PromptAssignment entity.
// If the PromptAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptAssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptAssignmentMutation builder.
func (m *PromptAssignmentMutation) Where(ps ...predicate.PromptAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptAssignment).
func (m *PromptAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.stage != nil {
		fields = append(fields, promptassignment.FieldStage)
	}
	if m.component_role != nil {
		fields = append(fields, promptassignment.FieldComponentRole)
	}
	if m.scope_type != nil {
		fields = append(fields, promptassignment.FieldScopeType)
	}
	if m.scope_value != nil {
		fields = append(fields, promptassignment.FieldScopeValue)
	}
	if m.prompt_id != nil {
		fields = append(fields, promptassignment.FieldPromptID)
	}
	if m.prompt_version != nil {
		fields = append(fields, promptassignment.FieldPromptVersion)
	}
	if m.legacy_exempt != nil {
		fields = append(fields, promptassignment.FieldLegacyExempt)
	}
	if m.created_at != nil {
		fields = append(fields, promptassignment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, promptassignment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptassignment.FieldStage:
		return m.Stage()
	case promptassignment.FieldComponentRole:
		return m.ComponentRole()
	case promptassignment.FieldScopeType:
		return m.ScopeType()
	case promptassignment.FieldScopeValue:
		return m.ScopeValue()
	case promptassignment.FieldPromptID:
		return m.PromptID()
	case promptassignment.FieldPromptVersion:
		return m.PromptVersion()
	case promptassignment.FieldLegacyExempt:
		return m.LegacyExempt()
	case promptassignment.FieldCreatedAt:
		return m.CreatedAt()
	case promptassignment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptassignment.FieldStage:
		return m.OldStage(ctx)
	case promptassignment.FieldComponentRole:
		return m.OldComponentRole(ctx)
	case promptassignment.FieldScopeType:
		return m.OldScopeType(ctx)
	case promptassignment.FieldScopeValue:
		return m.OldScopeValue(ctx)
	case promptassignment.FieldPromptID:
		return m.OldPromptID(ctx)
	case promptassignment.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case promptassignment.FieldLegacyExempt:
		return m.OldLegacyExempt(ctx)
	case promptassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case promptassignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptassignment.FieldStage:
		v, ok := value.(promptassignment.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case promptassignment.FieldComponentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponentRole(v)
		return nil
	case promptassignment.FieldScopeType:
		v, ok := value.(promptassignment.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case promptassignment.FieldScopeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeValue(v)
		return nil
	case promptassignment.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case promptassignment.FieldPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case promptassignment.FieldLegacyExempt:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyExempt(v)
		return nil
	case promptassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case promptassignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptAssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_version != nil {
		fields = append(fields, promptassignment.FieldPromptVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptassignment.FieldPromptVersion:
		return m.AddedPromptVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptassignment.FieldPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PromptAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptAssignmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptAssignmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PromptAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptAssignmentMutation) ResetField(name string) error {
	switch name {
	case promptassignment.FieldStage:
		m.ResetStage()
		return nil
	case promptassignment.FieldComponentRole:
		m.ResetComponentRole()
		return nil
	case promptassignment.FieldScopeType:
		m.ResetScopeType()
		return nil
	case promptassignment.FieldScopeValue:
		m.ResetScopeValue()
		return nil
	case promptassignment.FieldPromptID:
		m.ResetPromptID()
		return nil
	case promptassignment.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case promptassignment.FieldLegacyExempt:
		m.ResetLegacyExempt()
		return nil
	case promptassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case promptassignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptAssignmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptAssignmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptAssignmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptAssignmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptAssignment edge %s", name)
}

// QueueTaskMutation represents an operation that mutates the QueueTask nodes in the graph.
type QueueTaskMutation struct {
	config
	op               Op
	typ              string
	id               *string
	queue_id         *string
	kind             *string
	priority         *int
	addpriority      *int
	payload          *map[string]interface{}
	attempts         *int
	addattempts      *int
	max_attempts     *int
	addmax_attempts  *int
	state            *queuetask.State
	lease_owner      *string
	lease_expires_at *time.Time
	leased_at        *time.Time
	next_visible_at  *time.Time
	last_error       *string
	enqueued_at      *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*QueueTask, error)
	predicates       []predicate.QueueTask
}

var _ ent.Mutation = (*QueueTaskMutation)(nil)

// queuetaskOption allows management of the mutation configuration using functional options.
type queuetaskOption func(*QueueTaskMutation)

// newQueueTaskMutation creates new mutation for the QueueTask entity.
func newQueueTaskMutation(c config, op Op, opts ...queuetaskOption) *QueueTaskMutation {
	m := &QueueTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueTaskID sets the ID field of the mutation.
func withQueueTaskID(id string) queuetaskOption {
	return func(m *QueueTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueTask
		)
		m.oldValue = func(ctx context.Context) (*QueueTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueTask sets the old QueueTask of the mutation.
func withQueueTask(node *QueueTask) queuetaskOption {
	return func(m *QueueTaskMutation) {
		m.oldValue = func(context.Context) (*QueueTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueTask entities.
func (m *QueueTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueueID sets the "queue_id" field.
func (m *QueueTaskMutation) SetQueueID(s string) {
	m.queue_id = &s
}

// QueueID returns the value of the "queue_id" field in the mutation.
func (m *QueueTaskMutation) QueueID() (r string, exists bool) {
	v := m.queue_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueID returns the old "queue_id" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldQueueID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueID: %w", err)
	}
	return oldValue.QueueID, nil
}

// ResetQueueID resets all changes to the "queue_id" field.
func (m *QueueTaskMutation) ResetQueueID() {
	m.queue_id = nil
}

// SetKind sets the "kind" field.
func (m *QueueTaskMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QueueTaskMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QueueTaskMutation) ResetKind() {
	m.kind = nil
}

// SetPriority sets the "priority" field.
func (m *QueueTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QueueTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *QueueTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *QueueTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *QueueTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetPayload sets the "payload" field.
func (m *QueueTaskMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueTaskMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueTaskMutation) ResetPayload() {
	m.payload = nil
}

// SetAttempts sets the "attempts" field.
func (m *QueueTaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *QueueTaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *QueueTaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *QueueTaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *QueueTaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *QueueTaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *QueueTaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *QueueTaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *QueueTaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *QueueTaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetState sets the "state" field.
func (m *QueueTaskMutation) SetState(q queuetask.State) {
	m.state = &q
}

// State returns the value of the "state" field in the mutation.
func (m *QueueTaskMutation) State() (r queuetask.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldState(ctx context.Context) (v queuetask.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *QueueTaskMutation) ResetState() {
	m.state = nil
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *QueueTaskMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *QueueTaskMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *QueueTaskMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[queuetask.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *QueueTaskMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *QueueTaskMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, queuetask.FieldLeaseOwner)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *QueueTaskMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *QueueTaskMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *QueueTaskMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[queuetask.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *QueueTaskMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *QueueTaskMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, queuetask.FieldLeaseExpiresAt)
}

// SetLeasedAt sets the "leased_at" field.
func (m *QueueTaskMutation) SetLeasedAt(t time.Time) {
	m.leased_at = &t
}

// LeasedAt returns the value of the "leased_at" field in the mutation.
func (m *QueueTaskMutation) LeasedAt() (r time.Time, exists bool) {
	v := m.leased_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedAt returns the old "leased_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLeasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedAt: %w", err)
	}
	return oldValue.LeasedAt, nil
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (m *QueueTaskMutation) ClearLeasedAt() {
	m.leased_at = nil
	m.clearedFields[queuetask.FieldLeasedAt] = struct{}{}
}

// LeasedAtCleared returns if the "leased_at" field was cleared in this mutation.
func (m *QueueTaskMutation) LeasedAtCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldLeasedAt]
	return ok
}

// ResetLeasedAt resets all changes to the "leased_at" field.
func (m *QueueTaskMutation) ResetLeasedAt() {
	m.leased_at = nil
	delete(m.clearedFields, queuetask.FieldLeasedAt)
}

// SetNextVisibleAt sets the "next_visible_at" field.
func (m *QueueTaskMutation) SetNextVisibleAt(t time.Time) {
	m.next_visible_at = &t
}

// NextVisibleAt returns the value of the "next_visible_at" field in the mutation.
func (m *QueueTaskMutation) NextVisibleAt() (r time.Time, exists bool) {
	v := m.next_visible_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextVisibleAt returns the old "next_visible_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldNextVisibleAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextVisibleAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextVisibleAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextVisibleAt: %w", err)
	}
	return oldValue.NextVisibleAt, nil
}

// ResetNextVisibleAt resets all changes to the "next_visible_at" field.
func (m *QueueTaskMutation) ResetNextVisibleAt() {
	m.next_visible_at = nil
}

// SetLastError sets the "last_error" field.
func (m *QueueTaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *QueueTaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *QueueTaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[queuetask.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *QueueTaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *QueueTaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, queuetask.FieldLastError)
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *QueueTaskMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *QueueTaskMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *QueueTaskMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueueTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueueTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueueTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueueTaskMutation builder.
func (m *QueueTaskMutation) Where(ps ...predicate.QueueTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueTask).
func (m *QueueTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueTaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.queue_id != nil {
		fields = append(fields, queuetask.FieldQueueID)
	}
	if m.kind != nil {
		fields = append(fields, queuetask.FieldKind)
	}
	if m.priority != nil {
		fields = append(fields, queuetask.FieldPriority)
	}
	if m.payload != nil {
		fields = append(fields, queuetask.FieldPayload)
	}
	if m.attempts != nil {
		fields = append(fields, queuetask.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, queuetask.FieldMaxAttempts)
	}
	if m.state != nil {
		fields = append(fields, queuetask.FieldState)
	}
	if m.lease_owner != nil {
		fields = append(fields, queuetask.FieldLeaseOwner)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, queuetask.FieldLeaseExpiresAt)
	}
	if m.leased_at != nil {
		fields = append(fields, queuetask.FieldLeasedAt)
	}
	if m.next_visible_at != nil {
		fields = append(fields, queuetask.FieldNextVisibleAt)
	}
	if m.last_error != nil {
		fields = append(fields, queuetask.FieldLastError)
	}
	if m.enqueued_at != nil {
		fields = append(fields, queuetask.FieldEnqueuedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, queuetask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldQueueID:
		return m.QueueID()
	case queuetask.FieldKind:
		return m.Kind()
	case queuetask.FieldPriority:
		return m.Priority()
	case queuetask.FieldPayload:
		return m.Payload()
	case queuetask.FieldAttempts:
		return m.Attempts()
	case queuetask.FieldMaxAttempts:
		return m.MaxAttempts()
	case queuetask.FieldState:
		return m.State()
	case queuetask.FieldLeaseOwner:
		return m.LeaseOwner()
	case queuetask.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case queuetask.FieldLeasedAt:
		return m.LeasedAt()
	case queuetask.FieldNextVisibleAt:
		return m.NextVisibleAt()
	case queuetask.FieldLastError:
		return m.LastError()
	case queuetask.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case queuetask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuetask.FieldQueueID:
		return m.OldQueueID(ctx)
	case queuetask.FieldKind:
		return m.OldKind(ctx)
	case queuetask.FieldPriority:
		return m.OldPriority(ctx)
	case queuetask.FieldPayload:
		return m.OldPayload(ctx)
	case queuetask.FieldAttempts:
		return m.OldAttempts(ctx)
	case queuetask.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case queuetask.FieldState:
		return m.OldState(ctx)
	case queuetask.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case queuetask.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case queuetask.FieldLeasedAt:
		return m.OldLeasedAt(ctx)
	case queuetask.FieldNextVisibleAt:
		return m.OldNextVisibleAt(ctx)
	case queuetask.FieldLastError:
		return m.OldLastError(ctx)
	case queuetask.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case queuetask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldQueueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueID(v)
		return nil
	case queuetask.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case queuetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case queuetask.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuetask.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case queuetask.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case queuetask.FieldState:
		v, ok := value.(queuetask.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case queuetask.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case queuetask.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case queuetask.FieldLeasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedAt(v)
		return nil
	case queuetask.FieldNextVisibleAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextVisibleAt(v)
		return nil
	case queuetask.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case queuetask.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case queuetask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, queuetask.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, queuetask.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, queuetask.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldPriority:
		return m.AddedPriority()
	case queuetask.FieldAttempts:
		return m.AddedAttempts()
	case queuetask.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case queuetask.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case queuetask.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuetask.FieldLeaseOwner) {
		fields = append(fields, queuetask.FieldLeaseOwner)
	}
	if m.FieldCleared(queuetask.FieldLeaseExpiresAt) {
		fields = append(fields, queuetask.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(queuetask.FieldLeasedAt) {
		fields = append(fields, queuetask.FieldLeasedAt)
	}
	if m.FieldCleared(queuetask.FieldLastError) {
		fields = append(fields, queuetask.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueTaskMutation) ClearField(name string) error {
	switch name {
	case queuetask.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case queuetask.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case queuetask.FieldLeasedAt:
		m.ClearLeasedAt()
		return nil
	case queuetask.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown QueueTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueTaskMutation) ResetField(name string) error {
	switch name {
	case queuetask.FieldQueueID:
		m.ResetQueueID()
		return nil
	case queuetask.FieldKind:
		m.ResetKind()
		return nil
	case queuetask.FieldPriority:
		m.ResetPriority()
		return nil
	case queuetask.FieldPayload:
		m.ResetPayload()
		return nil
	case queuetask.FieldAttempts:
		m.ResetAttempts()
		return nil
	case queuetask.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case queuetask.FieldState:
		m.ResetState()
		return nil
	case queuetask.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case queuetask.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case queuetask.FieldLeasedAt:
		m.ResetLeasedAt()
		return nil
	case queuetask.FieldNextVisibleAt:
		m.ResetNextVisibleAt()
		return nil
	case queuetask.FieldLastError:
		m.ResetLastError()
		return nil
	case queuetask.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case queuetask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueTask edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	index              *int
	addindex           *int
	name               *string
	description        *string
	_type              *step.Type
	executor_kind      *step.ExecutorKind
	executor_ref       *string
	team_members       *[]string
	appendteam_members []string
	inputs             *map[string]interface{}
	outputs            *map[string]interface{}
	dependencies       *[]string
	appenddependencies []string
	timeout_ms         *int64
	addtimeout_ms      *int64
	max_attempts       *int
	addmax_attempts    *int
	backoff_base_ms    *int64
	addbackoff_base_ms *int64
	approval_required  *bool
	risk_level         *step.RiskLevel
	function_call      *map[string]interface{}
	checks             *map[string]interface{}
	state              *step.State
	attempts           *int
	addattempts        *int
	error_kind         *string
	reason_code        *string
	quality_score      *float64
	addquality_score   *float64
	started_at         *time.Time
	completed_at       *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	plan               *string
	clearedplan        bool
	workflow           *string
	clearedworkflow    bool
	done               bool
	oldValue           func(context.Context) (*Step, error)
	predicates         []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *StepMutation) SetPlanID(s string) {
	m.plan = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *StepMutation) PlanID() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *StepMutation) ResetPlanID() {
	m.plan = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *StepMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *StepMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *StepMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetIndex sets the "index" field.
func (m *StepMutation) SetIndex(i int) {
	m.index = &i
	m.addindex = nil
}

// Index returns the value of the "index" field in the mutation.
func (m *StepMutation) Index() (r int, exists bool) {
	v := m.index
	if v == nil {
		return
	}
	return *v, true
}

// OldIndex returns the old "index" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndex: %w", err)
	}
	return oldValue.Index, nil
}

// AddIndex adds i to the "index" field.
func (m *StepMutation) AddIndex(i int) {
	if m.addindex != nil {
		*m.addindex += i
	} else {
		m.addindex = &i
	}
}

// AddedIndex returns the value that was added to the "index" field in this mutation.
func (m *StepMutation) AddedIndex() (r int, exists bool) {
	v := m.addindex
	if v == nil {
		return
	}
	return *v, true
}

// ResetIndex resets all changes to the "index" field.
func (m *StepMutation) ResetIndex() {
	m.index = nil
	m.addindex = nil
}

// SetName sets the "name" field.
func (m *StepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StepMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *StepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StepMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[step.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StepMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[step.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StepMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, step.FieldDescription)
}

// SetType sets the "type" field.
func (m *StepMutation) SetType(s step.Type) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *StepMutation) GetType() (r step.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldType(ctx context.Context) (v step.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *StepMutation) ResetType() {
	m._type = nil
}

// SetExecutorKind sets the "executor_kind" field.
func (m *StepMutation) SetExecutorKind(sk step.ExecutorKind) {
	m.executor_kind = &sk
}

// ExecutorKind returns the value of the "executor_kind" field in the mutation.
func (m *StepMutation) ExecutorKind() (r step.ExecutorKind, exists bool) {
	v := m.executor_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutorKind returns the old "executor_kind" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldExecutorKind(ctx context.Context) (v step.ExecutorKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutorKind: %w", err)
	}
	return oldValue.ExecutorKind, nil
}

// ResetExecutorKind resets all changes to the "executor_kind" field.
func (m *StepMutation) ResetExecutorKind() {
	m.executor_kind = nil
}

// SetExecutorRef sets the "executor_ref" field.
func (m *StepMutation) SetExecutorRef(s string) {
	m.executor_ref = &s
}

// ExecutorRef returns the value of the "executor_ref" field in the mutation.
func (m *StepMutation) ExecutorRef() (r string, exists bool) {
	v := m.executor_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutorRef returns the old "executor_ref" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldExecutorRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutorRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutorRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutorRef: %w", err)
	}
	return oldValue.ExecutorRef, nil
}

// ClearExecutorRef clears the value of the "executor_ref" field.
func (m *StepMutation) ClearExecutorRef() {
	m.executor_ref = nil
	m.clearedFields[step.FieldExecutorRef] = struct{}{}
}

// ExecutorRefCleared returns if the "executor_ref" field was cleared in this mutation.
func (m *StepMutation) ExecutorRefCleared() bool {
	_, ok := m.clearedFields[step.FieldExecutorRef]
	return ok
}

// ResetExecutorRef resets all changes to the "executor_ref" field.
func (m *StepMutation) ResetExecutorRef() {
	m.executor_ref = nil
	delete(m.clearedFields, step.FieldExecutorRef)
}

// SetTeamMembers sets the "team_members" field.
func (m *StepMutation) SetTeamMembers(s []string) {
	m.team_members = &s
	m.appendteam_members = nil
}

// TeamMembers returns the value of the "team_members" field in the mutation.
func (m *StepMutation) TeamMembers() (r []string, exists bool) {
	v := m.team_members
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamMembers returns the old "team_members" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTeamMembers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamMembers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamMembers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamMembers: %w", err)
	}
	return oldValue.TeamMembers, nil
}

// AppendTeamMembers adds s to the "team_members" field.
func (m *StepMutation) AppendTeamMembers(s []string) {
	m.appendteam_members = append(m.appendteam_members, s...)
}

// AppendedTeamMembers returns the list of values that were appended to the "team_members" field in this mutation.
func (m *StepMutation) AppendedTeamMembers() ([]string, bool) {
	if len(m.appendteam_members) == 0 {
		return nil, false
	}
	return m.appendteam_members, true
}

// ClearTeamMembers clears the value of the "team_members" field.
func (m *StepMutation) ClearTeamMembers() {
	m.team_members = nil
	m.appendteam_members = nil
	m.clearedFields[step.FieldTeamMembers] = struct{}{}
}

// TeamMembersCleared returns if the "team_members" field was cleared in this mutation.
func (m *StepMutation) TeamMembersCleared() bool {
	_, ok := m.clearedFields[step.FieldTeamMembers]
	return ok
}

// ResetTeamMembers resets all changes to the "team_members" field.
func (m *StepMutation) ResetTeamMembers() {
	m.team_members = nil
	m.appendteam_members = nil
	delete(m.clearedFields, step.FieldTeamMembers)
}

// SetInputs sets the "inputs" field.
func (m *StepMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *StepMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *StepMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[step.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *StepMutation) InputsCleared() bool {
	_, ok := m.clearedFields[step.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *StepMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, step.FieldInputs)
}

// SetOutputs sets the "outputs" field.
func (m *StepMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *StepMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *StepMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[step.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *StepMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[step.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *StepMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, step.FieldOutputs)
}

// SetDependencies sets the "dependencies" field.
func (m *StepMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *StepMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *StepMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *StepMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *StepMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[step.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *StepMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[step.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *StepMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, step.FieldDependencies)
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *StepMutation) SetTimeoutMs(i int64) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *StepMutation) TimeoutMs() (r int64, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTimeoutMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *StepMutation) AddTimeoutMs(i int64) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *StepMutation) AddedTimeoutMs() (r int64, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *StepMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *StepMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *StepMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *StepMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *StepMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *StepMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (m *StepMutation) SetBackoffBaseMs(i int64) {
	m.backoff_base_ms = &i
	m.addbackoff_base_ms = nil
}

// BackoffBaseMs returns the value of the "backoff_base_ms" field in the mutation.
func (m *StepMutation) BackoffBaseMs() (r int64, exists bool) {
	v := m.backoff_base_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffBaseMs returns the old "backoff_base_ms" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldBackoffBaseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffBaseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffBaseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffBaseMs: %w", err)
	}
	return oldValue.BackoffBaseMs, nil
}

// AddBackoffBaseMs adds i to the "backoff_base_ms" field.
func (m *StepMutation) AddBackoffBaseMs(i int64) {
	if m.addbackoff_base_ms != nil {
		*m.addbackoff_base_ms += i
	} else {
		m.addbackoff_base_ms = &i
	}
}

// AddedBackoffBaseMs returns the value that was added to the "backoff_base_ms" field in this mutation.
func (m *StepMutation) AddedBackoffBaseMs() (r int64, exists bool) {
	v := m.addbackoff_base_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffBaseMs resets all changes to the "backoff_base_ms" field.
func (m *StepMutation) ResetBackoffBaseMs() {
	m.backoff_base_ms = nil
	m.addbackoff_base_ms = nil
}

// SetApprovalRequired sets the "approval_required" field.
func (m *StepMutation) SetApprovalRequired(b bool) {
	m.approval_required = &b
}

// ApprovalRequired returns the value of the "approval_required" field in the mutation.
func (m *StepMutation) ApprovalRequired() (r bool, exists bool) {
	v := m.approval_required
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalRequired returns the old "approval_required" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldApprovalRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalRequired: %w", err)
	}
	return oldValue.ApprovalRequired, nil
}

// ResetApprovalRequired resets all changes to the "approval_required" field.
func (m *StepMutation) ResetApprovalRequired() {
	m.approval_required = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *StepMutation) SetRiskLevel(sl step.RiskLevel) {
	m.risk_level = &sl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *StepMutation) RiskLevel() (r step.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldRiskLevel(ctx context.Context) (v step.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *StepMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetFunctionCall sets the "function_call" field.
func (m *StepMutation) SetFunctionCall(value map[string]interface{}) {
	m.function_call = &value
}

// FunctionCall returns the value of the "function_call" field in the mutation.
func (m *StepMutation) FunctionCall() (r map[string]interface{}, exists bool) {
	v := m.function_call
	if v == nil {
		return
	}
	return *v, true
}

// OldFunctionCall returns the old "function_call" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldFunctionCall(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFunctionCall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFunctionCall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFunctionCall: %w", err)
	}
	return oldValue.FunctionCall, nil
}

// ClearFunctionCall clears the value of the "function_call" field.
func (m *StepMutation) ClearFunctionCall() {
	m.function_call = nil
	m.clearedFields[step.FieldFunctionCall] = struct{}{}
}

// FunctionCallCleared returns if the "function_call" field was cleared in this mutation.
func (m *StepMutation) FunctionCallCleared() bool {
	_, ok := m.clearedFields[step.FieldFunctionCall]
	return ok
}

// ResetFunctionCall resets all changes to the "function_call" field.
func (m *StepMutation) ResetFunctionCall() {
	m.function_call = nil
	delete(m.clearedFields, step.FieldFunctionCall)
}

// SetChecks sets the "checks" field.
func (m *StepMutation) SetChecks(value map[string]interface{}) {
	m.checks = &value
}

// Checks returns the value of the "checks" field in the mutation.
func (m *StepMutation) Checks() (r map[string]interface{}, exists bool) {
	v := m.checks
	if v == nil {
		return
	}
	return *v, true
}

// OldChecks returns the old "checks" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldChecks(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecks: %w", err)
	}
	return oldValue.Checks, nil
}

// ClearChecks clears the value of the "checks" field.
func (m *StepMutation) ClearChecks() {
	m.checks = nil
	m.clearedFields[step.FieldChecks] = struct{}{}
}

// ChecksCleared returns if the "checks" field was cleared in this mutation.
func (m *StepMutation) ChecksCleared() bool {
	_, ok := m.clearedFields[step.FieldChecks]
	return ok
}

// ResetChecks resets all changes to the "checks" field.
func (m *StepMutation) ResetChecks() {
	m.checks = nil
	delete(m.clearedFields, step.FieldChecks)
}

// SetState sets the "state" field.
func (m *StepMutation) SetState(s step.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *StepMutation) State() (r step.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldState(ctx context.Context) (v step.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *StepMutation) ResetState() {
	m.state = nil
}

// SetAttempts sets the "attempts" field.
func (m *StepMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StepMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StepMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StepMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StepMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *StepMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *StepMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *StepMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[step.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *StepMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[step.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *StepMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, step.FieldErrorKind)
}

// SetReasonCode sets the "reason_code" field.
func (m *StepMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *StepMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldReasonCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ClearReasonCode clears the value of the "reason_code" field.
func (m *StepMutation) ClearReasonCode() {
	m.reason_code = nil
	m.clearedFields[step.FieldReasonCode] = struct{}{}
}

// ReasonCodeCleared returns if the "reason_code" field was cleared in this mutation.
func (m *StepMutation) ReasonCodeCleared() bool {
	_, ok := m.clearedFields[step.FieldReasonCode]
	return ok
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *StepMutation) ResetReasonCode() {
	m.reason_code = nil
	delete(m.clearedFields, step.FieldReasonCode)
}

// SetQualityScore sets the "quality_score" field.
func (m *StepMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *StepMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *StepMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *StepMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *StepMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[step.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *StepMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[step.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *StepMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, step.FieldQualityScore)
}

// SetStartedAt sets the "started_at" field.
func (m *StepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[step.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, step.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[step.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, step.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *StepMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[step.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *StepMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *StepMutation) PlanIDs() (ids []string) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *StepMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *StepMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[step.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *StepMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *StepMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *StepMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.plan != nil {
		fields = append(fields, step.FieldPlanID)
	}
	if m.workflow != nil {
		fields = append(fields, step.FieldWorkflowID)
	}
	if m.index != nil {
		fields = append(fields, step.FieldIndex)
	}
	if m.name != nil {
		fields = append(fields, step.FieldName)
	}
	if m.description != nil {
		fields = append(fields, step.FieldDescription)
	}
	if m._type != nil {
		fields = append(fields, step.FieldType)
	}
	if m.executor_kind != nil {
		fields = append(fields, step.FieldExecutorKind)
	}
	if m.executor_ref != nil {
		fields = append(fields, step.FieldExecutorRef)
	}
	if m.team_members != nil {
		fields = append(fields, step.FieldTeamMembers)
	}
	if m.inputs != nil {
		fields = append(fields, step.FieldInputs)
	}
	if m.outputs != nil {
		fields = append(fields, step.FieldOutputs)
	}
	if m.dependencies != nil {
		fields = append(fields, step.FieldDependencies)
	}
	if m.timeout_ms != nil {
		fields = append(fields, step.FieldTimeoutMs)
	}
	if m.max_attempts != nil {
		fields = append(fields, step.FieldMaxAttempts)
	}
	if m.backoff_base_ms != nil {
		fields = append(fields, step.FieldBackoffBaseMs)
	}
	if m.approval_required != nil {
		fields = append(fields, step.FieldApprovalRequired)
	}
	if m.risk_level != nil {
		fields = append(fields, step.FieldRiskLevel)
	}
	if m.function_call != nil {
		fields = append(fields, step.FieldFunctionCall)
	}
	if m.checks != nil {
		fields = append(fields, step.FieldChecks)
	}
	if m.state != nil {
		fields = append(fields, step.FieldState)
	}
	if m.attempts != nil {
		fields = append(fields, step.FieldAttempts)
	}
	if m.error_kind != nil {
		fields = append(fields, step.FieldErrorKind)
	}
	if m.reason_code != nil {
		fields = append(fields, step.FieldReasonCode)
	}
	if m.quality_score != nil {
		fields = append(fields, step.FieldQualityScore)
	}
	if m.started_at != nil {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, step.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, step.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldPlanID:
		return m.PlanID()
	case step.FieldWorkflowID:
		return m.WorkflowID()
	case step.FieldIndex:
		return m.Index()
	case step.FieldName:
		return m.Name()
	case step.FieldDescription:
		return m.Description()
	case step.FieldType:
		return m.GetType()
	case step.FieldExecutorKind:
		return m.ExecutorKind()
	case step.FieldExecutorRef:
		return m.ExecutorRef()
	case step.FieldTeamMembers:
		return m.TeamMembers()
	case step.FieldInputs:
		return m.Inputs()
	case step.FieldOutputs:
		return m.Outputs()
	case step.FieldDependencies:
		return m.Dependencies()
	case step.FieldTimeoutMs:
		return m.TimeoutMs()
	case step.FieldMaxAttempts:
		return m.MaxAttempts()
	case step.FieldBackoffBaseMs:
		return m.BackoffBaseMs()
	case step.FieldApprovalRequired:
		return m.ApprovalRequired()
	case step.FieldRiskLevel:
		return m.RiskLevel()
	case step.FieldFunctionCall:
		return m.FunctionCall()
	case step.FieldChecks:
		return m.Checks()
	case step.FieldState:
		return m.State()
	case step.FieldAttempts:
		return m.Attempts()
	case step.FieldErrorKind:
		return m.ErrorKind()
	case step.FieldReasonCode:
		return m.ReasonCode()
	case step.FieldQualityScore:
		return m.QualityScore()
	case step.FieldStartedAt:
		return m.StartedAt()
	case step.FieldCompletedAt:
		return m.CompletedAt()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	case step.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldPlanID:
		return m.OldPlanID(ctx)
	case step.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case step.FieldIndex:
		return m.OldIndex(ctx)
	case step.FieldName:
		return m.OldName(ctx)
	case step.FieldDescription:
		return m.OldDescription(ctx)
	case step.FieldType:
		return m.OldType(ctx)
	case step.FieldExecutorKind:
		return m.OldExecutorKind(ctx)
	case step.FieldExecutorRef:
		return m.OldExecutorRef(ctx)
	case step.FieldTeamMembers:
		return m.OldTeamMembers(ctx)
	case step.FieldInputs:
		return m.OldInputs(ctx)
	case step.FieldOutputs:
		return m.OldOutputs(ctx)
	case step.FieldDependencies:
		return m.OldDependencies(ctx)
	case step.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case step.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case step.FieldBackoffBaseMs:
		return m.OldBackoffBaseMs(ctx)
	case step.FieldApprovalRequired:
		return m.OldApprovalRequired(ctx)
	case step.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case step.FieldFunctionCall:
		return m.OldFunctionCall(ctx)
	case step.FieldChecks:
		return m.OldChecks(ctx)
	case step.FieldState:
		return m.OldState(ctx)
	case step.FieldAttempts:
		return m.OldAttempts(ctx)
	case step.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case step.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case step.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case step.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case step.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case step.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case step.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case step.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndex(v)
		return nil
	case step.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case step.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case step.FieldType:
		v, ok := value.(step.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case step.FieldExecutorKind:
		v, ok := value.(step.ExecutorKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutorKind(v)
		return nil
	case step.FieldExecutorRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutorRef(v)
		return nil
	case step.FieldTeamMembers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamMembers(v)
		return nil
	case step.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case step.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case step.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case step.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case step.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case step.FieldBackoffBaseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffBaseMs(v)
		return nil
	case step.FieldApprovalRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalRequired(v)
		return nil
	case step.FieldRiskLevel:
		v, ok := value.(step.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case step.FieldFunctionCall:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFunctionCall(v)
		return nil
	case step.FieldChecks:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecks(v)
		return nil
	case step.FieldState:
		v, ok := value.(step.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case step.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case step.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case step.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case step.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case step.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case step.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case step.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.addindex != nil {
		fields = append(fields, step.FieldIndex)
	}
	if m.addtimeout_ms != nil {
		fields = append(fields, step.FieldTimeoutMs)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, step.FieldMaxAttempts)
	}
	if m.addbackoff_base_ms != nil {
		fields = append(fields, step.FieldBackoffBaseMs)
	}
	if m.addattempts != nil {
		fields = append(fields, step.FieldAttempts)
	}
	if m.addquality_score != nil {
		fields = append(fields, step.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldIndex:
		return m.AddedIndex()
	case step.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case step.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case step.FieldBackoffBaseMs:
		return m.AddedBackoffBaseMs()
	case step.FieldAttempts:
		return m.AddedAttempts()
	case step.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIndex(v)
		return nil
	case step.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case step.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case step.FieldBackoffBaseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffBaseMs(v)
		return nil
	case step.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case step.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldDescription) {
		fields = append(fields, step.FieldDescription)
	}
	if m.FieldCleared(step.FieldExecutorRef) {
		fields = append(fields, step.FieldExecutorRef)
	}
	if m.FieldCleared(step.FieldTeamMembers) {
		fields = append(fields, step.FieldTeamMembers)
	}
	if m.FieldCleared(step.FieldInputs) {
		fields = append(fields, step.FieldInputs)
	}
	if m.FieldCleared(step.FieldOutputs) {
		fields = append(fields, step.FieldOutputs)
	}
	if m.FieldCleared(step.FieldDependencies) {
		fields = append(fields, step.FieldDependencies)
	}
	if m.FieldCleared(step.FieldFunctionCall) {
		fields = append(fields, step.FieldFunctionCall)
	}
	if m.FieldCleared(step.FieldChecks) {
		fields = append(fields, step.FieldChecks)
	}
	if m.FieldCleared(step.FieldErrorKind) {
		fields = append(fields, step.FieldErrorKind)
	}
	if m.FieldCleared(step.FieldReasonCode) {
		fields = append(fields, step.FieldReasonCode)
	}
	if m.FieldCleared(step.FieldQualityScore) {
		fields = append(fields, step.FieldQualityScore)
	}
	if m.FieldCleared(step.FieldStartedAt) {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.FieldCleared(step.FieldCompletedAt) {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldDescription:
		m.ClearDescription()
		return nil
	case step.FieldExecutorRef:
		m.ClearExecutorRef()
		return nil
	case step.FieldTeamMembers:
		m.ClearTeamMembers()
		return nil
	case step.FieldInputs:
		m.ClearInputs()
		return nil
	case step.FieldOutputs:
		m.ClearOutputs()
		return nil
	case step.FieldDependencies:
		m.ClearDependencies()
		return nil
	case step.FieldFunctionCall:
		m.ClearFunctionCall()
		return nil
	case step.FieldChecks:
		m.ClearChecks()
		return nil
	case step.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case step.FieldReasonCode:
		m.ClearReasonCode()
		return nil
	case step.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	case step.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldPlanID:
		m.ResetPlanID()
		return nil
	case step.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case step.FieldIndex:
		m.ResetIndex()
		return nil
	case step.FieldName:
		m.ResetName()
		return nil
	case step.FieldDescription:
		m.ResetDescription()
		return nil
	case step.FieldType:
		m.ResetType()
		return nil
	case step.FieldExecutorKind:
		m.ResetExecutorKind()
		return nil
	case step.FieldExecutorRef:
		m.ResetExecutorRef()
		return nil
	case step.FieldTeamMembers:
		m.ResetTeamMembers()
		return nil
	case step.FieldInputs:
		m.ResetInputs()
		return nil
	case step.FieldOutputs:
		m.ResetOutputs()
		return nil
	case step.FieldDependencies:
		m.ResetDependencies()
		return nil
	case step.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case step.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case step.FieldBackoffBaseMs:
		m.ResetBackoffBaseMs()
		return nil
	case step.FieldApprovalRequired:
		m.ResetApprovalRequired()
		return nil
	case step.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case step.FieldFunctionCall:
		m.ResetFunctionCall()
		return nil
	case step.FieldChecks:
		m.ResetChecks()
		return nil
	case step.FieldState:
		m.ResetState()
		return nil
	case step.FieldAttempts:
		m.ResetAttempts()
		return nil
	case step.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case step.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case step.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case step.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case step.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.plan != nil {
		edges = append(edges, step.EdgePlan)
	}
	if m.workflow != nil {
		edges = append(edges, step.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedplan {
		edges = append(edges, step.EdgePlan)
	}
	if m.clearedworkflow {
		edges = append(edges, step.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgePlan:
		return m.clearedplan
	case step.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgePlan:
		m.ClearPlan()
		return nil
	case step.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgePlan:
		m.ResetPlan()
		return nil
	case step.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}

// ToolSpecMutation represents an operation that mutates the ToolSpec nodes in the graph.
type ToolSpecMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	status                *toolspec.Status
	capabilities          *[]string
	appendcapabilities    []string
	input_schema          *map[string]interface{}
	output_schema         *map[string]interface{}
	command               *[]string
	appendcommand         []string
	handler               *string
	default_timeout_ms    *int64
	adddefault_timeout_ms *int64
	total_runs            *int64
	addtotal_runs         *int64
	successes             *int64
	addsuccesses          *int64
	failures              *int64
	addfailures           *int64
	avg_latency_ms        *float64
	addavg_latency_ms     *float64
	version               *int
	addversion            *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ToolSpec, error)
	predicates            []predicate.ToolSpec
}

var _ ent.Mutation = (*ToolSpecMutation)(nil)

// toolspecOption allows management of the mutation configuration using functional options.
type toolspecOption func(*ToolSpecMutation)

// newToolSpecMutation creates new mutation for the ToolSpec entity.
func newToolSpecMutation(c config, op Op, opts ...toolspecOption) *ToolSpecMutation {
	m := &ToolSpecMutation{
		config:        c,
		op:            op,
		typ:           TypeToolSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolSpecID sets the ID field of the mutation.
func withToolSpecID(id string) toolspecOption {
	return func(m *ToolSpecMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolSpec
		)
		m.oldValue = func(ctx context.Context) (*ToolSpec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolSpec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolSpec sets the old ToolSpec of the mutation.
func withToolSpec(node *ToolSpec) toolspecOption {
	return func(m *ToolSpecMutation) {
		m.oldValue = func(context.Context) (*ToolSpec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolSpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolSpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolSpec entities.
func (m *ToolSpecMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolSpecMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolSpecMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolSpec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ToolSpecMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolSpecMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolSpecMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *ToolSpecMutation) SetStatus(t toolspec.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolSpecMutation) Status() (r toolspec.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldStatus(ctx context.Context) (v toolspec.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolSpecMutation) ResetStatus() {
	m.status = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *ToolSpecMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *ToolSpecMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *ToolSpecMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *ToolSpecMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *ToolSpecMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[toolspec.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *ToolSpecMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[toolspec.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *ToolSpecMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, toolspec.FieldCapabilities)
}

// SetInputSchema sets the "input_schema" field.
func (m *ToolSpecMutation) SetInputSchema(value map[string]interface{}) {
	m.input_schema = &value
}

// InputSchema returns the value of the "input_schema" field in the mutation.
func (m *ToolSpecMutation) InputSchema() (r map[string]interface{}, exists bool) {
	v := m.input_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSchema returns the old "input_schema" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldInputSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSchema: %w", err)
	}
	return oldValue.InputSchema, nil
}

// ResetInputSchema resets all changes to the "input_schema" field.
func (m *ToolSpecMutation) ResetInputSchema() {
	m.input_schema = nil
}

// SetOutputSchema sets the "output_schema" field.
func (m *ToolSpecMutation) SetOutputSchema(value map[string]interface{}) {
	m.output_schema = &value
}

// OutputSchema returns the value of the "output_schema" field in the mutation.
func (m *ToolSpecMutation) OutputSchema() (r map[string]interface{}, exists bool) {
	v := m.output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSchema returns the old "output_schema" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldOutputSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSchema: %w", err)
	}
	return oldValue.OutputSchema, nil
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (m *ToolSpecMutation) ClearOutputSchema() {
	m.output_schema = nil
	m.clearedFields[toolspec.FieldOutputSchema] = struct{}{}
}

// OutputSchemaCleared returns if the "output_schema" field was cleared in this mutation.
func (m *ToolSpecMutation) OutputSchemaCleared() bool {
	_, ok := m.clearedFields[toolspec.FieldOutputSchema]
	return ok
}

// ResetOutputSchema resets all changes to the "output_schema" field.
func (m *ToolSpecMutation) ResetOutputSchema() {
	m.output_schema = nil
	delete(m.clearedFields, toolspec.FieldOutputSchema)
}

// SetCommand sets the "command" field.
func (m *ToolSpecMutation) SetCommand(s []string) {
	m.command = &s
	m.appendcommand = nil
}

// Command returns the value of the "command" field in the mutation.
func (m *ToolSpecMutation) Command() (r []string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldCommand(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// AppendCommand adds s to the "command" field.
func (m *ToolSpecMutation) AppendCommand(s []string) {
	m.appendcommand = append(m.appendcommand, s...)
}

// AppendedCommand returns the list of values that were appended to the "command" field in this mutation.
func (m *ToolSpecMutation) AppendedCommand() ([]string, bool) {
	if len(m.appendcommand) == 0 {
		return nil, false
	}
	return m.appendcommand, true
}

// ClearCommand clears the value of the "command" field.
func (m *ToolSpecMutation) ClearCommand() {
	m.command = nil
	m.appendcommand = nil
	m.clearedFields[toolspec.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *ToolSpecMutation) CommandCleared() bool {
	_, ok := m.clearedFields[toolspec.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *ToolSpecMutation) ResetCommand() {
	m.command = nil
	m.appendcommand = nil
	delete(m.clearedFields, toolspec.FieldCommand)
}

// SetHandler sets the "handler" field.
func (m *ToolSpecMutation) SetHandler(s string) {
	m.handler = &s
}

// Handler returns the value of the "handler" field in the mutation.
func (m *ToolSpecMutation) Handler() (r string, exists bool) {
	v := m.handler
	if v == nil {
		return
	}
	return *v, true
}

// OldHandler returns the old "handler" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldHandler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandler: %w", err)
	}
	return oldValue.Handler, nil
}

// ClearHandler clears the value of the "handler" field.
func (m *ToolSpecMutation) ClearHandler() {
	m.handler = nil
	m.clearedFields[toolspec.FieldHandler] = struct{}{}
}

// HandlerCleared returns if the "handler" field was cleared in this mutation.
func (m *ToolSpecMutation) HandlerCleared() bool {
	_, ok := m.clearedFields[toolspec.FieldHandler]
	return ok
}

// ResetHandler resets all changes to the "handler" field.
func (m *ToolSpecMutation) ResetHandler() {
	m.handler = nil
	delete(m.clearedFields, toolspec.FieldHandler)
}

// SetDefaultTimeoutMs sets the "default_timeout_ms" field.
func (m *ToolSpecMutation) SetDefaultTimeoutMs(i int64) {
	m.default_timeout_ms = &i
	m.adddefault_timeout_ms = nil
}

// DefaultTimeoutMs returns the value of the "default_timeout_ms" field in the mutation.
func (m *ToolSpecMutation) DefaultTimeoutMs() (r int64, exists bool) {
	v := m.default_timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultTimeoutMs returns the old "default_timeout_ms" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldDefaultTimeoutMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultTimeoutMs: %w", err)
	}
	return oldValue.DefaultTimeoutMs, nil
}

// AddDefaultTimeoutMs adds i to the "default_timeout_ms" field.
func (m *ToolSpecMutation) AddDefaultTimeoutMs(i int64) {
	if m.adddefault_timeout_ms != nil {
		*m.adddefault_timeout_ms += i
	} else {
		m.adddefault_timeout_ms = &i
	}
}

// AddedDefaultTimeoutMs returns the value that was added to the "default_timeout_ms" field in this mutation.
func (m *ToolSpecMutation) AddedDefaultTimeoutMs() (r int64, exists bool) {
	v := m.adddefault_timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultTimeoutMs resets all changes to the "default_timeout_ms" field.
func (m *ToolSpecMutation) ResetDefaultTimeoutMs() {
	m.default_timeout_ms = nil
	m.adddefault_timeout_ms = nil
}

// SetTotalRuns sets the "total_runs" field.
func (m *ToolSpecMutation) SetTotalRuns(i int64) {
	m.total_runs = &i
	m.addtotal_runs = nil
}

// TotalRuns returns the value of the "total_runs" field in the mutation.
func (m *ToolSpecMutation) TotalRuns() (r int64, exists bool) {
	v := m.total_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRuns returns the old "total_runs" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldTotalRuns(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRuns: %w", err)
	}
	return oldValue.TotalRuns, nil
}

// AddTotalRuns adds i to the "total_runs" field.
func (m *ToolSpecMutation) AddTotalRuns(i int64) {
	if m.addtotal_runs != nil {
		*m.addtotal_runs += i
	} else {
		m.addtotal_runs = &i
	}
}

// AddedTotalRuns returns the value that was added to the "total_runs" field in this mutation.
func (m *ToolSpecMutation) AddedTotalRuns() (r int64, exists bool) {
	v := m.addtotal_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRuns resets all changes to the "total_runs" field.
func (m *ToolSpecMutation) ResetTotalRuns() {
	m.total_runs = nil
	m.addtotal_runs = nil
}

// SetSuccesses sets the "successes" field.
func (m *ToolSpecMutation) SetSuccesses(i int64) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *ToolSpecMutation) Successes() (r int64, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldSuccesses(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *ToolSpecMutation) AddSuccesses(i int64) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *ToolSpecMutation) AddedSuccesses() (r int64, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *ToolSpecMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetFailures sets the "failures" field.
func (m *ToolSpecMutation) SetFailures(i int64) {
	m.failures = &i
	m.addfailures = nil
}

// Failures returns the value of the "failures" field in the mutation.
func (m *ToolSpecMutation) Failures() (r int64, exists bool) {
	v := m.failures
	if v == nil {
		return
	}
	return *v, true
}

// OldFailures returns the old "failures" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldFailures(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailures: %w", err)
	}
	return oldValue.Failures, nil
}

// AddFailures adds i to the "failures" field.
func (m *ToolSpecMutation) AddFailures(i int64) {
	if m.addfailures != nil {
		*m.addfailures += i
	} else {
		m.addfailures = &i
	}
}

// AddedFailures returns the value that was added to the "failures" field in this mutation.
func (m *ToolSpecMutation) AddedFailures() (r int64, exists bool) {
	v := m.addfailures
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailures resets all changes to the "failures" field.
func (m *ToolSpecMutation) ResetFailures() {
	m.failures = nil
	m.addfailures = nil
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (m *ToolSpecMutation) SetAvgLatencyMs(f float64) {
	m.avg_latency_ms = &f
	m.addavg_latency_ms = nil
}

// AvgLatencyMs returns the value of the "avg_latency_ms" field in the mutation.
func (m *ToolSpecMutation) AvgLatencyMs() (r float64, exists bool) {
	v := m.avg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgLatencyMs returns the old "avg_latency_ms" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldAvgLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgLatencyMs: %w", err)
	}
	return oldValue.AvgLatencyMs, nil
}

// AddAvgLatencyMs adds f to the "avg_latency_ms" field.
func (m *ToolSpecMutation) AddAvgLatencyMs(f float64) {
	if m.addavg_latency_ms != nil {
		*m.addavg_latency_ms += f
	} else {
		m.addavg_latency_ms = &f
	}
}

// AddedAvgLatencyMs returns the value that was added to the "avg_latency_ms" field in this mutation.
func (m *ToolSpecMutation) AddedAvgLatencyMs() (r float64, exists bool) {
	v := m.addavg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgLatencyMs resets all changes to the "avg_latency_ms" field.
func (m *ToolSpecMutation) ResetAvgLatencyMs() {
	m.avg_latency_ms = nil
	m.addavg_latency_ms = nil
}

// SetVersion sets the "version" field.
func (m *ToolSpecMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ToolSpecMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ToolSpecMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ToolSpecMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ToolSpecMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolSpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolSpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolSpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolSpecMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolSpecMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ToolSpec entity.
// If the ToolSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolSpecMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ToolSpecMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ToolSpecMutation builder.
func (m *ToolSpecMutation) Where(ps ...predicate.ToolSpec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolSpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolSpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolSpec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolSpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolSpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolSpec).
func (m *ToolSpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolSpecMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, toolspec.FieldName)
	}
	if m.status != nil {
		fields = append(fields, toolspec.FieldStatus)
	}
	if m.capabilities != nil {
		fields = append(fields, toolspec.FieldCapabilities)
	}
	if m.input_schema != nil {
		fields = append(fields, toolspec.FieldInputSchema)
	}
	if m.output_schema != nil {
		fields = append(fields, toolspec.FieldOutputSchema)
	}
	if m.command != nil {
		fields = append(fields, toolspec.FieldCommand)
	}
	if m.handler != nil {
		fields = append(fields, toolspec.FieldHandler)
	}
	if m.default_timeout_ms != nil {
		fields = append(fields, toolspec.FieldDefaultTimeoutMs)
	}
	if m.total_runs != nil {
		fields = append(fields, toolspec.FieldTotalRuns)
	}
	if m.successes != nil {
		fields = append(fields, toolspec.FieldSuccesses)
	}
	if m.failures != nil {
		fields = append(fields, toolspec.FieldFailures)
	}
	if m.avg_latency_ms != nil {
		fields = append(fields, toolspec.FieldAvgLatencyMs)
	}
	if m.version != nil {
		fields = append(fields, toolspec.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, toolspec.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, toolspec.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolSpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolspec.FieldName:
		return m.Name()
	case toolspec.FieldStatus:
		return m.Status()
	case toolspec.FieldCapabilities:
		return m.Capabilities()
	case toolspec.FieldInputSchema:
		return m.InputSchema()
	case toolspec.FieldOutputSchema:
		return m.OutputSchema()
	case toolspec.FieldCommand:
		return m.Command()
	case toolspec.FieldHandler:
		return m.Handler()
	case toolspec.FieldDefaultTimeoutMs:
		return m.DefaultTimeoutMs()
	case toolspec.FieldTotalRuns:
		return m.TotalRuns()
	case toolspec.FieldSuccesses:
		return m.Successes()
	case toolspec.FieldFailures:
		return m.Failures()
	case toolspec.FieldAvgLatencyMs:
		return m.AvgLatencyMs()
	case toolspec.FieldVersion:
		return m.Version()
	case toolspec.FieldCreatedAt:
		return m.CreatedAt()
	case toolspec.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolSpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolspec.FieldName:
		return m.OldName(ctx)
	case toolspec.FieldStatus:
		return m.OldStatus(ctx)
	case toolspec.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case toolspec.FieldInputSchema:
		return m.OldInputSchema(ctx)
	case toolspec.FieldOutputSchema:
		return m.OldOutputSchema(ctx)
	case toolspec.FieldCommand:
		return m.OldCommand(ctx)
	case toolspec.FieldHandler:
		return m.OldHandler(ctx)
	case toolspec.FieldDefaultTimeoutMs:
		return m.OldDefaultTimeoutMs(ctx)
	case toolspec.FieldTotalRuns:
		return m.OldTotalRuns(ctx)
	case toolspec.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case toolspec.FieldFailures:
		return m.OldFailures(ctx)
	case toolspec.FieldAvgLatencyMs:
		return m.OldAvgLatencyMs(ctx)
	case toolspec.FieldVersion:
		return m.OldVersion(ctx)
	case toolspec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case toolspec.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolSpec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolSpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolspec.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case toolspec.FieldStatus:
		v, ok := value.(toolspec.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolspec.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case toolspec.FieldInputSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSchema(v)
		return nil
	case toolspec.FieldOutputSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSchema(v)
		return nil
	case toolspec.FieldCommand:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case toolspec.FieldHandler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandler(v)
		return nil
	case toolspec.FieldDefaultTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultTimeoutMs(v)
		return nil
	case toolspec.FieldTotalRuns:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRuns(v)
		return nil
	case toolspec.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case toolspec.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailures(v)
		return nil
	case toolspec.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgLatencyMs(v)
		return nil
	case toolspec.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case toolspec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case toolspec.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolSpec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolSpecMutation) AddedFields() []string {
	var fields []string
	if m.adddefault_timeout_ms != nil {
		fields = append(fields, toolspec.FieldDefaultTimeoutMs)
	}
	if m.addtotal_runs != nil {
		fields = append(fields, toolspec.FieldTotalRuns)
	}
	if m.addsuccesses != nil {
		fields = append(fields, toolspec.FieldSuccesses)
	}
	if m.addfailures != nil {
		fields = append(fields, toolspec.FieldFailures)
	}
	if m.addavg_latency_ms != nil {
		fields = append(fields, toolspec.FieldAvgLatencyMs)
	}
	if m.addversion != nil {
		fields = append(fields, toolspec.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolSpecMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolspec.FieldDefaultTimeoutMs:
		return m.AddedDefaultTimeoutMs()
	case toolspec.FieldTotalRuns:
		return m.AddedTotalRuns()
	case toolspec.FieldSuccesses:
		return m.AddedSuccesses()
	case toolspec.FieldFailures:
		return m.AddedFailures()
	case toolspec.FieldAvgLatencyMs:
		return m.AddedAvgLatencyMs()
	case toolspec.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolSpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolspec.FieldDefaultTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultTimeoutMs(v)
		return nil
	case toolspec.FieldTotalRuns:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRuns(v)
		return nil
	case toolspec.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case toolspec.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailures(v)
		return nil
	case toolspec.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgLatencyMs(v)
		return nil
	case toolspec.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ToolSpec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolSpecMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolspec.FieldCapabilities) {
		fields = append(fields, toolspec.FieldCapabilities)
	}
	if m.FieldCleared(toolspec.FieldOutputSchema) {
		fields = append(fields, toolspec.FieldOutputSchema)
	}
	if m.FieldCleared(toolspec.FieldCommand) {
		fields = append(fields, toolspec.FieldCommand)
	}
	if m.FieldCleared(toolspec.FieldHandler) {
		fields = append(fields, toolspec.FieldHandler)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolSpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolSpecMutation) ClearField(name string) error {
	switch name {
	case toolspec.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case toolspec.FieldOutputSchema:
		m.ClearOutputSchema()
		return nil
	case toolspec.FieldCommand:
		m.ClearCommand()
		return nil
	case toolspec.FieldHandler:
		m.ClearHandler()
		return nil
	}
	return fmt.Errorf("unknown ToolSpec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolSpecMutation) ResetField(name string) error {
	switch name {
	case toolspec.FieldName:
		m.ResetName()
		return nil
	case toolspec.FieldStatus:
		m.ResetStatus()
		return nil
	case toolspec.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case toolspec.FieldInputSchema:
		m.ResetInputSchema()
		return nil
	case toolspec.FieldOutputSchema:
		m.ResetOutputSchema()
		return nil
	case toolspec.FieldCommand:
		m.ResetCommand()
		return nil
	case toolspec.FieldHandler:
		m.ResetHandler()
		return nil
	case toolspec.FieldDefaultTimeoutMs:
		m.ResetDefaultTimeoutMs()
		return nil
	case toolspec.FieldTotalRuns:
		m.ResetTotalRuns()
		return nil
	case toolspec.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case toolspec.FieldFailures:
		m.ResetFailures()
		return nil
	case toolspec.FieldAvgLatencyMs:
		m.ResetAvgLatencyMs()
		return nil
	case toolspec.FieldVersion:
		m.ResetVersion()
		return nil
	case toolspec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case toolspec.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolSpec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolSpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolSpecMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolSpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolSpecMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolSpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolSpecMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolSpecMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolSpec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolSpecMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolSpec edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	session_id               *string
	request_type             *workflow.RequestType
	message                  *string
	system_prompt            *string
	model_override           *string
	server_override          *string
	temperature              *float64
	addtemperature           *float64
	current_stage            *workflow.CurrentStage
	status                   *workflow.Status
	response                 *string
	reasoning                *string
	model_used               *string
	error_kind               *string
	reason_code              *string
	failing_event_id         *string
	event_sequence           *int64
	addevent_sequence        *int64
	worker_id                *string
	last_heartbeat_at        *time.Time
	metadata                 *map[string]interface{}
	created_at               *time.Time
	updated_at               *time.Time
	completed_at             *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	plans                    map[string]struct{}
	removedplans             map[string]struct{}
	clearedplans             bool
	steps                    map[string]struct{}
	removedsteps             map[string]struct{}
	clearedsteps             bool
	execution_events         map[string]struct{}
	removedexecution_events  map[string]struct{}
	clearedexecution_events  bool
	approval_requests        map[string]struct{}
	removedapproval_requests map[string]struct{}
	clearedapproval_requests bool
	done                     bool
	oldValue                 func(context.Context) (*Workflow, error)
	predicates               []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *WorkflowMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WorkflowMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WorkflowMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRequestType sets the "request_type" field.
func (m *WorkflowMutation) SetRequestType(wt workflow.RequestType) {
	m.request_type = &wt
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *WorkflowMutation) RequestType() (r workflow.RequestType, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldRequestType(ctx context.Context) (v workflow.RequestType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *WorkflowMutation) ResetRequestType() {
	m.request_type = nil
}

// SetMessage sets the "message" field.
func (m *WorkflowMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *WorkflowMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *WorkflowMutation) ResetMessage() {
	m.message = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *WorkflowMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *WorkflowMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSystemPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *WorkflowMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[workflow.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *WorkflowMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[workflow.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *WorkflowMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, workflow.FieldSystemPrompt)
}

// SetModelOverride sets the "model_override" field.
func (m *WorkflowMutation) SetModelOverride(s string) {
	m.model_override = &s
}

// ModelOverride returns the value of the "model_override" field in the mutation.
func (m *WorkflowMutation) ModelOverride() (r string, exists bool) {
	v := m.model_override
	if v == nil {
		return
	}
	return *v, true
}

// OldModelOverride returns the old "model_override" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldModelOverride(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelOverride: %w", err)
	}
	return oldValue.ModelOverride, nil
}

// ClearModelOverride clears the value of the "model_override" field.
func (m *WorkflowMutation) ClearModelOverride() {
	m.model_override = nil
	m.clearedFields[workflow.FieldModelOverride] = struct{}{}
}

// ModelOverrideCleared returns if the "model_override" field was cleared in this mutation.
func (m *WorkflowMutation) ModelOverrideCleared() bool {
	_, ok := m.clearedFields[workflow.FieldModelOverride]
	return ok
}

// ResetModelOverride resets all changes to the "model_override" field.
func (m *WorkflowMutation) ResetModelOverride() {
	m.model_override = nil
	delete(m.clearedFields, workflow.FieldModelOverride)
}

// SetServerOverride sets the "server_override" field.
func (m *WorkflowMutation) SetServerOverride(s string) {
	m.server_override = &s
}

// ServerOverride returns the value of the "server_override" field in the mutation.
func (m *WorkflowMutation) ServerOverride() (r string, exists bool) {
	v := m.server_override
	if v == nil {
		return
	}
	return *v, true
}

// OldServerOverride returns the old "server_override" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldServerOverride(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerOverride: %w", err)
	}
	return oldValue.ServerOverride, nil
}

// ClearServerOverride clears the value of the "server_override" field.
func (m *WorkflowMutation) ClearServerOverride() {
	m.server_override = nil
	m.clearedFields[workflow.FieldServerOverride] = struct{}{}
}

// ServerOverrideCleared returns if the "server_override" field was cleared in this mutation.
func (m *WorkflowMutation) ServerOverrideCleared() bool {
	_, ok := m.clearedFields[workflow.FieldServerOverride]
	return ok
}

// ResetServerOverride resets all changes to the "server_override" field.
func (m *WorkflowMutation) ResetServerOverride() {
	m.server_override = nil
	delete(m.clearedFields, workflow.FieldServerOverride)
}

// SetTemperature sets the "temperature" field.
func (m *WorkflowMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *WorkflowMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *WorkflowMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *WorkflowMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *WorkflowMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[workflow.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *WorkflowMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[workflow.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *WorkflowMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, workflow.FieldTemperature)
}

// SetCurrentStage sets the "current_stage" field.
func (m *WorkflowMutation) SetCurrentStage(ws workflow.CurrentStage) {
	m.current_stage = &ws
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *WorkflowMutation) CurrentStage() (r workflow.CurrentStage, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCurrentStage(ctx context.Context) (v workflow.CurrentStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *WorkflowMutation) ResetCurrentStage() {
	m.current_stage = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetResponse sets the "response" field.
func (m *WorkflowMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *WorkflowMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *WorkflowMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[workflow.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *WorkflowMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[workflow.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *WorkflowMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, workflow.FieldResponse)
}

// SetReasoning sets the "reasoning" field.
func (m *WorkflowMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *WorkflowMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *WorkflowMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[workflow.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *WorkflowMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[workflow.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *WorkflowMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, workflow.FieldReasoning)
}

// SetModelUsed sets the "model_used" field.
func (m *WorkflowMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *WorkflowMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldModelUsed(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *WorkflowMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[workflow.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *WorkflowMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[workflow.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *WorkflowMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, workflow.FieldModelUsed)
}

// SetErrorKind sets the "error_kind" field.
func (m *WorkflowMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *WorkflowMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *WorkflowMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[workflow.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *WorkflowMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[workflow.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *WorkflowMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, workflow.FieldErrorKind)
}

// SetReasonCode sets the "reason_code" field.
func (m *WorkflowMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *WorkflowMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldReasonCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ClearReasonCode clears the value of the "reason_code" field.
func (m *WorkflowMutation) ClearReasonCode() {
	m.reason_code = nil
	m.clearedFields[workflow.FieldReasonCode] = struct{}{}
}

// ReasonCodeCleared returns if the "reason_code" field was cleared in this mutation.
func (m *WorkflowMutation) ReasonCodeCleared() bool {
	_, ok := m.clearedFields[workflow.FieldReasonCode]
	return ok
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *WorkflowMutation) ResetReasonCode() {
	m.reason_code = nil
	delete(m.clearedFields, workflow.FieldReasonCode)
}

// SetFailingEventID sets the "failing_event_id" field.
func (m *WorkflowMutation) SetFailingEventID(s string) {
	m.failing_event_id = &s
}

// FailingEventID returns the value of the "failing_event_id" field in the mutation.
func (m *WorkflowMutation) FailingEventID() (r string, exists bool) {
	v := m.failing_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFailingEventID returns the old "failing_event_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldFailingEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailingEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailingEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailingEventID: %w", err)
	}
	return oldValue.FailingEventID, nil
}

// ClearFailingEventID clears the value of the "failing_event_id" field.
func (m *WorkflowMutation) ClearFailingEventID() {
	m.failing_event_id = nil
	m.clearedFields[workflow.FieldFailingEventID] = struct{}{}
}

// FailingEventIDCleared returns if the "failing_event_id" field was cleared in this mutation.
func (m *WorkflowMutation) FailingEventIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldFailingEventID]
	return ok
}

// ResetFailingEventID resets all changes to the "failing_event_id" field.
func (m *WorkflowMutation) ResetFailingEventID() {
	m.failing_event_id = nil
	delete(m.clearedFields, workflow.FieldFailingEventID)
}

// SetEventSequence sets the "event_sequence" field.
func (m *WorkflowMutation) SetEventSequence(i int64) {
	m.event_sequence = &i
	m.addevent_sequence = nil
}

// EventSequence returns the value of the "event_sequence" field in the mutation.
func (m *WorkflowMutation) EventSequence() (r int64, exists bool) {
	v := m.event_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldEventSequence returns the old "event_sequence" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldEventSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventSequence: %w", err)
	}
	return oldValue.EventSequence, nil
}

// AddEventSequence adds i to the "event_sequence" field.
func (m *WorkflowMutation) AddEventSequence(i int64) {
	if m.addevent_sequence != nil {
		*m.addevent_sequence += i
	} else {
		m.addevent_sequence = &i
	}
}

// AddedEventSequence returns the value that was added to the "event_sequence" field in this mutation.
func (m *WorkflowMutation) AddedEventSequence() (r int64, exists bool) {
	v := m.addevent_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventSequence resets all changes to the "event_sequence" field.
func (m *WorkflowMutation) ResetEventSequence() {
	m.event_sequence = nil
	m.addevent_sequence = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *WorkflowMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *WorkflowMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *WorkflowMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[workflow.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *WorkflowMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *WorkflowMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, workflow.FieldWorkerID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflow.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflow.FieldLastHeartbeatAt)
}

// SetMetadata sets the "metadata" field.
func (m *WorkflowMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *WorkflowMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *WorkflowMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[workflow.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *WorkflowMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[workflow.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *WorkflowMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, workflow.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflow.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflow.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkflowMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkflowMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkflowMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workflow.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkflowMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkflowMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workflow.FieldDeletedAt)
}

// AddPlanIDs adds the "plans" edge to the Plan entity by ids.
func (m *WorkflowMutation) AddPlanIDs(ids ...string) {
	if m.plans == nil {
		m.plans = make(map[string]struct{})
	}
	for i := range ids {
		m.plans[ids[i]] = struct{}{}
	}
}

// ClearPlans clears the "plans" edge to the Plan entity.
func (m *WorkflowMutation) ClearPlans() {
	m.clearedplans = true
}

// PlansCleared reports if the "plans" edge to the Plan entity was cleared.
func (m *WorkflowMutation) PlansCleared() bool {
	return m.clearedplans
}

// RemovePlanIDs removes the "plans" edge to the Plan entity by IDs.
func (m *WorkflowMutation) RemovePlanIDs(ids ...string) {
	if m.removedplans == nil {
		m.removedplans = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.plans, ids[i])
		m.removedplans[ids[i]] = struct{}{}
	}
}

// RemovedPlans returns the removed IDs of the "plans" edge to the Plan entity.
func (m *WorkflowMutation) RemovedPlansIDs() (ids []string) {
	for id := range m.removedplans {
		ids = append(ids, id)
	}
	return
}

// PlansIDs returns the "plans" edge IDs in the mutation.
func (m *WorkflowMutation) PlansIDs() (ids []string) {
	for id := range m.plans {
		ids = append(ids, id)
	}
	return
}

// ResetPlans resets all changes to the "plans" edge.
func (m *WorkflowMutation) ResetPlans() {
	m.plans = nil
	m.clearedplans = false
	m.removedplans = nil
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *WorkflowMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *WorkflowMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *WorkflowMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *WorkflowMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *WorkflowMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *WorkflowMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *WorkflowMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddExecutionEventIDs adds the "execution_events" edge to the ExecutionEvent entity by ids.
func (m *WorkflowMutation) AddExecutionEventIDs(ids ...string) {
	if m.execution_events == nil {
		m.execution_events = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_events[ids[i]] = struct{}{}
	}
}

// ClearExecutionEvents clears the "execution_events" edge to the ExecutionEvent entity.
func (m *WorkflowMutation) ClearExecutionEvents() {
	m.clearedexecution_events = true
}

// ExecutionEventsCleared reports if the "execution_events" edge to the ExecutionEvent entity was cleared.
func (m *WorkflowMutation) ExecutionEventsCleared() bool {
	return m.clearedexecution_events
}

// RemoveExecutionEventIDs removes the "execution_events" edge to the ExecutionEvent entity by IDs.
func (m *WorkflowMutation) RemoveExecutionEventIDs(ids ...string) {
	if m.removedexecution_events == nil {
		m.removedexecution_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_events, ids[i])
		m.removedexecution_events[ids[i]] = struct{}{}
	}
}

// RemovedExecutionEvents returns the removed IDs of the "execution_events" edge to the ExecutionEvent entity.
func (m *WorkflowMutation) RemovedExecutionEventsIDs() (ids []string) {
	for id := range m.removedexecution_events {
		ids = append(ids, id)
	}
	return
}

// ExecutionEventsIDs returns the "execution_events" edge IDs in the mutation.
func (m *WorkflowMutation) ExecutionEventsIDs() (ids []string) {
	for id := range m.execution_events {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionEvents resets all changes to the "execution_events" edge.
func (m *WorkflowMutation) ResetExecutionEvents() {
	m.execution_events = nil
	m.clearedexecution_events = false
	m.removedexecution_events = nil
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by ids.
func (m *WorkflowMutation) AddApprovalRequestIDs(ids ...string) {
	if m.approval_requests == nil {
		m.approval_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.approval_requests[ids[i]] = struct{}{}
	}
}

// ClearApprovalRequests clears the "approval_requests" edge to the ApprovalRequest entity.
func (m *WorkflowMutation) ClearApprovalRequests() {
	m.clearedapproval_requests = true
}

// ApprovalRequestsCleared reports if the "approval_requests" edge to the ApprovalRequest entity was cleared.
func (m *WorkflowMutation) ApprovalRequestsCleared() bool {
	return m.clearedapproval_requests
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (m *WorkflowMutation) RemoveApprovalRequestIDs(ids ...string) {
	if m.removedapproval_requests == nil {
		m.removedapproval_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approval_requests, ids[i])
		m.removedapproval_requests[ids[i]] = struct{}{}
	}
}

// RemovedApprovalRequests returns the removed IDs of the "approval_requests" edge to the ApprovalRequest entity.
func (m *WorkflowMutation) RemovedApprovalRequestsIDs() (ids []string) {
	for id := range m.removedapproval_requests {
		ids = append(ids, id)
	}
	return
}

// ApprovalRequestsIDs returns the "approval_requests" edge IDs in the mutation.
func (m *WorkflowMutation) ApprovalRequestsIDs() (ids []string) {
	for id := range m.approval_requests {
		ids = append(ids, id)
	}
	return
}

// ResetApprovalRequests resets all changes to the "approval_requests" edge.
func (m *WorkflowMutation) ResetApprovalRequests() {
	m.approval_requests = nil
	m.clearedapproval_requests = false
	m.removedapproval_requests = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.session_id != nil {
		fields = append(fields, workflow.FieldSessionID)
	}
	if m.request_type != nil {
		fields = append(fields, workflow.FieldRequestType)
	}
	if m.message != nil {
		fields = append(fields, workflow.FieldMessage)
	}
	if m.system_prompt != nil {
		fields = append(fields, workflow.FieldSystemPrompt)
	}
	if m.model_override != nil {
		fields = append(fields, workflow.FieldModelOverride)
	}
	if m.server_override != nil {
		fields = append(fields, workflow.FieldServerOverride)
	}
	if m.temperature != nil {
		fields = append(fields, workflow.FieldTemperature)
	}
	if m.current_stage != nil {
		fields = append(fields, workflow.FieldCurrentStage)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m.response != nil {
		fields = append(fields, workflow.FieldResponse)
	}
	if m.reasoning != nil {
		fields = append(fields, workflow.FieldReasoning)
	}
	if m.model_used != nil {
		fields = append(fields, workflow.FieldModelUsed)
	}
	if m.error_kind != nil {
		fields = append(fields, workflow.FieldErrorKind)
	}
	if m.reason_code != nil {
		fields = append(fields, workflow.FieldReasonCode)
	}
	if m.failing_event_id != nil {
		fields = append(fields, workflow.FieldFailingEventID)
	}
	if m.event_sequence != nil {
		fields = append(fields, workflow.FieldEventSequence)
	}
	if m.worker_id != nil {
		fields = append(fields, workflow.FieldWorkerID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflow.FieldLastHeartbeatAt)
	}
	if m.metadata != nil {
		fields = append(fields, workflow.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workflow.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldSessionID:
		return m.SessionID()
	case workflow.FieldRequestType:
		return m.RequestType()
	case workflow.FieldMessage:
		return m.Message()
	case workflow.FieldSystemPrompt:
		return m.SystemPrompt()
	case workflow.FieldModelOverride:
		return m.ModelOverride()
	case workflow.FieldServerOverride:
		return m.ServerOverride()
	case workflow.FieldTemperature:
		return m.Temperature()
	case workflow.FieldCurrentStage:
		return m.CurrentStage()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldResponse:
		return m.Response()
	case workflow.FieldReasoning:
		return m.Reasoning()
	case workflow.FieldModelUsed:
		return m.ModelUsed()
	case workflow.FieldErrorKind:
		return m.ErrorKind()
	case workflow.FieldReasonCode:
		return m.ReasonCode()
	case workflow.FieldFailingEventID:
		return m.FailingEventID()
	case workflow.FieldEventSequence:
		return m.EventSequence()
	case workflow.FieldWorkerID:
		return m.WorkerID()
	case workflow.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workflow.FieldMetadata:
		return m.Metadata()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflow.FieldCompletedAt:
		return m.CompletedAt()
	case workflow.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldSessionID:
		return m.OldSessionID(ctx)
	case workflow.FieldRequestType:
		return m.OldRequestType(ctx)
	case workflow.FieldMessage:
		return m.OldMessage(ctx)
	case workflow.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case workflow.FieldModelOverride:
		return m.OldModelOverride(ctx)
	case workflow.FieldServerOverride:
		return m.OldServerOverride(ctx)
	case workflow.FieldTemperature:
		return m.OldTemperature(ctx)
	case workflow.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldResponse:
		return m.OldResponse(ctx)
	case workflow.FieldReasoning:
		return m.OldReasoning(ctx)
	case workflow.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case workflow.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case workflow.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case workflow.FieldFailingEventID:
		return m.OldFailingEventID(ctx)
	case workflow.FieldEventSequence:
		return m.OldEventSequence(ctx)
	case workflow.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case workflow.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workflow.FieldMetadata:
		return m.OldMetadata(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflow.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflow.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case workflow.FieldRequestType:
		v, ok := value.(workflow.RequestType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case workflow.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case workflow.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case workflow.FieldModelOverride:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelOverride(v)
		return nil
	case workflow.FieldServerOverride:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerOverride(v)
		return nil
	case workflow.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case workflow.FieldCurrentStage:
		v, ok := value.(workflow.CurrentStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case workflow.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case workflow.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case workflow.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case workflow.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case workflow.FieldFailingEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailingEventID(v)
		return nil
	case workflow.FieldEventSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventSequence(v)
		return nil
	case workflow.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case workflow.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workflow.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflow.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflow.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, workflow.FieldTemperature)
	}
	if m.addevent_sequence != nil {
		fields = append(fields, workflow.FieldEventSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldTemperature:
		return m.AddedTemperature()
	case workflow.FieldEventSequence:
		return m.AddedEventSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case workflow.FieldEventSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldSystemPrompt) {
		fields = append(fields, workflow.FieldSystemPrompt)
	}
	if m.FieldCleared(workflow.FieldModelOverride) {
		fields = append(fields, workflow.FieldModelOverride)
	}
	if m.FieldCleared(workflow.FieldServerOverride) {
		fields = append(fields, workflow.FieldServerOverride)
	}
	if m.FieldCleared(workflow.FieldTemperature) {
		fields = append(fields, workflow.FieldTemperature)
	}
	if m.FieldCleared(workflow.FieldResponse) {
		fields = append(fields, workflow.FieldResponse)
	}
	if m.FieldCleared(workflow.FieldReasoning) {
		fields = append(fields, workflow.FieldReasoning)
	}
	if m.FieldCleared(workflow.FieldModelUsed) {
		fields = append(fields, workflow.FieldModelUsed)
	}
	if m.FieldCleared(workflow.FieldErrorKind) {
		fields = append(fields, workflow.FieldErrorKind)
	}
	if m.FieldCleared(workflow.FieldReasonCode) {
		fields = append(fields, workflow.FieldReasonCode)
	}
	if m.FieldCleared(workflow.FieldFailingEventID) {
		fields = append(fields, workflow.FieldFailingEventID)
	}
	if m.FieldCleared(workflow.FieldWorkerID) {
		fields = append(fields, workflow.FieldWorkerID)
	}
	if m.FieldCleared(workflow.FieldLastHeartbeatAt) {
		fields = append(fields, workflow.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(workflow.FieldMetadata) {
		fields = append(fields, workflow.FieldMetadata)
	}
	if m.FieldCleared(workflow.FieldCompletedAt) {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.FieldCleared(workflow.FieldDeletedAt) {
		fields = append(fields, workflow.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case workflow.FieldModelOverride:
		m.ClearModelOverride()
		return nil
	case workflow.FieldServerOverride:
		m.ClearServerOverride()
		return nil
	case workflow.FieldTemperature:
		m.ClearTemperature()
		return nil
	case workflow.FieldResponse:
		m.ClearResponse()
		return nil
	case workflow.FieldReasoning:
		m.ClearReasoning()
		return nil
	case workflow.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	case workflow.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case workflow.FieldReasonCode:
		m.ClearReasonCode()
		return nil
	case workflow.FieldFailingEventID:
		m.ClearFailingEventID()
		return nil
	case workflow.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case workflow.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case workflow.FieldMetadata:
		m.ClearMetadata()
		return nil
	case workflow.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflow.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldSessionID:
		m.ResetSessionID()
		return nil
	case workflow.FieldRequestType:
		m.ResetRequestType()
		return nil
	case workflow.FieldMessage:
		m.ResetMessage()
		return nil
	case workflow.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case workflow.FieldModelOverride:
		m.ResetModelOverride()
		return nil
	case workflow.FieldServerOverride:
		m.ResetServerOverride()
		return nil
	case workflow.FieldTemperature:
		m.ResetTemperature()
		return nil
	case workflow.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldResponse:
		m.ResetResponse()
		return nil
	case workflow.FieldReasoning:
		m.ResetReasoning()
		return nil
	case workflow.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case workflow.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case workflow.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case workflow.FieldFailingEventID:
		m.ResetFailingEventID()
		return nil
	case workflow.FieldEventSequence:
		m.ResetEventSequence()
		return nil
	case workflow.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case workflow.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workflow.FieldMetadata:
		m.ResetMetadata()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflow.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.plans != nil {
		edges = append(edges, workflow.EdgePlans)
	}
	if m.steps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.execution_events != nil {
		edges = append(edges, workflow.EdgeExecutionEvents)
	}
	if m.approval_requests != nil {
		edges = append(edges, workflow.EdgeApprovalRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgePlans:
		ids := make([]ent.Value, 0, len(m.plans))
		for id := range m.plans {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeExecutionEvents:
		ids := make([]ent.Value, 0, len(m.execution_events))
		for id := range m.execution_events {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeApprovalRequests:
		ids := make([]ent.Value, 0, len(m.approval_requests))
		for id := range m.approval_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedplans != nil {
		edges = append(edges, workflow.EdgePlans)
	}
	if m.removedsteps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.removedexecution_events != nil {
		edges = append(edges, workflow.EdgeExecutionEvents)
	}
	if m.removedapproval_requests != nil {
		edges = append(edges, workflow.EdgeApprovalRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgePlans:
		ids := make([]ent.Value, 0, len(m.removedplans))
		for id := range m.removedplans {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeExecutionEvents:
		ids := make([]ent.Value, 0, len(m.removedexecution_events))
		for id := range m.removedexecution_events {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeApprovalRequests:
		ids := make([]ent.Value, 0, len(m.removedapproval_requests))
		for id := range m.removedapproval_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedplans {
		edges = append(edges, workflow.EdgePlans)
	}
	if m.clearedsteps {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.clearedexecution_events {
		edges = append(edges, workflow.EdgeExecutionEvents)
	}
	if m.clearedapproval_requests {
		edges = append(edges, workflow.EdgeApprovalRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgePlans:
		return m.clearedplans
	case workflow.EdgeSteps:
		return m.clearedsteps
	case workflow.EdgeExecutionEvents:
		return m.clearedexecution_events
	case workflow.EdgeApprovalRequests:
		return m.clearedapproval_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgePlans:
		m.ResetPlans()
		return nil
	case workflow.EdgeSteps:
		m.ResetSteps()
		return nil
	case workflow.EdgeExecutionEvents:
		m.ResetExecutionEvents()
		return nil
	case workflow.EdgeApprovalRequests:
		m.ResetApprovalRequests()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}
