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
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
	"github.com/subhashitt/LogPiolt/ent/predicate"
	"github.com/subhashitt/LogPiolt/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisJob = "AnalysisJob"
	TypeLogBatch    = "LogBatch"
)

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	status        *analysisjob.Status
	result        *string
	error_message *string
	pod_id        *string
	created_at    *time.Time
	started_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	batch         *string
	clearedbatch  bool
	done          bool
	oldValue      func(context.Context) (*AnalysisJob, error)
	predicates    []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id string) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisJob entities.
func (m *AnalysisJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *AnalysisJobMutation) SetBatchID(s string) {
	m.batch = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *AnalysisJobMutation) BatchID() (r string, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *AnalysisJobMutation) ResetBatchID() {
	m.batch = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(a analysisjob.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r analysisjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v analysisjob.Status, err error) {
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
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *AnalysisJobMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AnalysisJobMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AnalysisJobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[analysisjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AnalysisJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AnalysisJobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, analysisjob.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *AnalysisJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AnalysisJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AnalysisJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[analysisjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AnalysisJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AnalysisJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, analysisjob.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnalysisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *AnalysisJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[analysisjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, analysisjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *AnalysisJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysisjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysisjob.FieldCompletedAt)
}

// ClearBatch clears the "batch" edge to the LogBatch entity.
func (m *AnalysisJobMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[analysisjob.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the LogBatch entity was cleared.
func (m *AnalysisJobMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *AnalysisJobMutation) BatchIDs() (ids []string) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *AnalysisJobMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.batch != nil {
		fields = append(fields, analysisjob.FieldBatchID)
	}
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, analysisjob.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, analysisjob.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, analysisjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldBatchID:
		return m.BatchID()
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldResult:
		return m.Result()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldPodID:
		return m.PodID()
	case analysisjob.FieldCreatedAt:
		return m.CreatedAt()
	case analysisjob.FieldStartedAt:
		return m.StartedAt()
	case analysisjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldBatchID:
		return m.OldBatchID(ctx)
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldResult:
		return m.OldResult(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldPodID:
		return m.OldPodID(ctx)
	case analysisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysisjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case analysisjob.FieldStatus:
		v, ok := value.(analysisjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case analysisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysisjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldResult) {
		fields = append(fields, analysisjob.FieldResult)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.FieldCleared(analysisjob.FieldPodID) {
		fields = append(fields, analysisjob.FieldPodID)
	}
	if m.FieldCleared(analysisjob.FieldStartedAt) {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.FieldCleared(analysisjob.FieldCompletedAt) {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldResult:
		m.ClearResult()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysisjob.FieldPodID:
		m.ClearPodID()
		return nil
	case analysisjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldBatchID:
		m.ResetBatchID()
		return nil
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldResult:
		m.ResetResult()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldPodID:
		m.ResetPodID()
		return nil
	case analysisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, analysisjob.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisjob.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, analysisjob.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisjob.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	switch name {
	case analysisjob.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	switch name {
	case analysisjob.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}

// LogBatchMutation represents an operation that mutates the LogBatch nodes in the graph.
type LogBatchMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	source               *string
	author               *string
	line_count           *int
	addline_count        *int
	record_count         *int
	addrecord_count      *int
	fallback_count       *int
	addfallback_count    *int
	records              *[]models.LogRecord
	appendrecords        []models.LogRecord
	created_at           *time.Time
	clearedFields        map[string]struct{}
	analysis_jobs        map[string]struct{}
	removedanalysis_jobs map[string]struct{}
	clearedanalysis_jobs bool
	done                 bool
	oldValue             func(context.Context) (*LogBatch, error)
	predicates           []predicate.LogBatch
}

var _ ent.Mutation = (*LogBatchMutation)(nil)

// logbatchOption allows management of the mutation configuration using functional options.
type logbatchOption func(*LogBatchMutation)

// newLogBatchMutation creates new mutation for the LogBatch entity.
func newLogBatchMutation(c config, op Op, opts ...logbatchOption) *LogBatchMutation {
	m := &LogBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeLogBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogBatchID sets the ID field of the mutation.
func withLogBatchID(id string) logbatchOption {
	return func(m *LogBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *LogBatch
		)
		m.oldValue = func(ctx context.Context) (*LogBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogBatch sets the old LogBatch of the mutation.
func withLogBatch(node *LogBatch) logbatchOption {
	return func(m *LogBatchMutation) {
		m.oldValue = func(context.Context) (*LogBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LogBatch entities.
func (m *LogBatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogBatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogBatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *LogBatchMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LogBatchMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *LogBatchMutation) ClearSource() {
	m.source = nil
	m.clearedFields[logbatch.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *LogBatchMutation) SourceCleared() bool {
	_, ok := m.clearedFields[logbatch.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *LogBatchMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, logbatch.FieldSource)
}

// SetAuthor sets the "author" field.
func (m *LogBatchMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *LogBatchMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *LogBatchMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[logbatch.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *LogBatchMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[logbatch.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *LogBatchMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, logbatch.FieldAuthor)
}

// SetLineCount sets the "line_count" field.
func (m *LogBatchMutation) SetLineCount(i int) {
	m.line_count = &i
	m.addline_count = nil
}

// LineCount returns the value of the "line_count" field in the mutation.
func (m *LogBatchMutation) LineCount() (r int, exists bool) {
	v := m.line_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLineCount returns the old "line_count" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldLineCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineCount: %w", err)
	}
	return oldValue.LineCount, nil
}

// AddLineCount adds i to the "line_count" field.
func (m *LogBatchMutation) AddLineCount(i int) {
	if m.addline_count != nil {
		*m.addline_count += i
	} else {
		m.addline_count = &i
	}
}

// AddedLineCount returns the value that was added to the "line_count" field in this mutation.
func (m *LogBatchMutation) AddedLineCount() (r int, exists bool) {
	v := m.addline_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineCount resets all changes to the "line_count" field.
func (m *LogBatchMutation) ResetLineCount() {
	m.line_count = nil
	m.addline_count = nil
}

// SetRecordCount sets the "record_count" field.
func (m *LogBatchMutation) SetRecordCount(i int) {
	m.record_count = &i
	m.addrecord_count = nil
}

// RecordCount returns the value of the "record_count" field in the mutation.
func (m *LogBatchMutation) RecordCount() (r int, exists bool) {
	v := m.record_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordCount returns the old "record_count" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldRecordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordCount: %w", err)
	}
	return oldValue.RecordCount, nil
}

// AddRecordCount adds i to the "record_count" field.
func (m *LogBatchMutation) AddRecordCount(i int) {
	if m.addrecord_count != nil {
		*m.addrecord_count += i
	} else {
		m.addrecord_count = &i
	}
}

// AddedRecordCount returns the value that was added to the "record_count" field in this mutation.
func (m *LogBatchMutation) AddedRecordCount() (r int, exists bool) {
	v := m.addrecord_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordCount resets all changes to the "record_count" field.
func (m *LogBatchMutation) ResetRecordCount() {
	m.record_count = nil
	m.addrecord_count = nil
}

// SetFallbackCount sets the "fallback_count" field.
func (m *LogBatchMutation) SetFallbackCount(i int) {
	m.fallback_count = &i
	m.addfallback_count = nil
}

// FallbackCount returns the value of the "fallback_count" field in the mutation.
func (m *LogBatchMutation) FallbackCount() (r int, exists bool) {
	v := m.fallback_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackCount returns the old "fallback_count" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldFallbackCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackCount: %w", err)
	}
	return oldValue.FallbackCount, nil
}

// AddFallbackCount adds i to the "fallback_count" field.
func (m *LogBatchMutation) AddFallbackCount(i int) {
	if m.addfallback_count != nil {
		*m.addfallback_count += i
	} else {
		m.addfallback_count = &i
	}
}

// AddedFallbackCount returns the value that was added to the "fallback_count" field in this mutation.
func (m *LogBatchMutation) AddedFallbackCount() (r int, exists bool) {
	v := m.addfallback_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFallbackCount resets all changes to the "fallback_count" field.
func (m *LogBatchMutation) ResetFallbackCount() {
	m.fallback_count = nil
	m.addfallback_count = nil
}

// SetRecords sets the "records" field.
func (m *LogBatchMutation) SetRecords(mr []models.LogRecord) {
	m.records = &mr
	m.appendrecords = nil
}

// Records returns the value of the "records" field in the mutation.
func (m *LogBatchMutation) Records() (r []models.LogRecord, exists bool) {
	v := m.records
	if v == nil {
		return
	}
	return *v, true
}

// OldRecords returns the old "records" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldRecords(ctx context.Context) (v []models.LogRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecords: %w", err)
	}
	return oldValue.Records, nil
}

// AppendRecords adds mr to the "records" field.
func (m *LogBatchMutation) AppendRecords(mr []models.LogRecord) {
	m.appendrecords = append(m.appendrecords, mr...)
}

// AppendedRecords returns the list of values that were appended to the "records" field in this mutation.
func (m *LogBatchMutation) AppendedRecords() ([]models.LogRecord, bool) {
	if len(m.appendrecords) == 0 {
		return nil, false
	}
	return m.appendrecords, true
}

// ResetRecords resets all changes to the "records" field.
func (m *LogBatchMutation) ResetRecords() {
	m.records = nil
	m.appendrecords = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LogBatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LogBatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LogBatch entity.
// If the LogBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogBatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LogBatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by ids.
func (m *LogBatchMutation) AddAnalysisJobIDs(ids ...string) {
	if m.analysis_jobs == nil {
		m.analysis_jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.analysis_jobs[ids[i]] = struct{}{}
	}
}

// ClearAnalysisJobs clears the "analysis_jobs" edge to the AnalysisJob entity.
func (m *LogBatchMutation) ClearAnalysisJobs() {
	m.clearedanalysis_jobs = true
}

// AnalysisJobsCleared reports if the "analysis_jobs" edge to the AnalysisJob entity was cleared.
func (m *LogBatchMutation) AnalysisJobsCleared() bool {
	return m.clearedanalysis_jobs
}

// RemoveAnalysisJobIDs removes the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (m *LogBatchMutation) RemoveAnalysisJobIDs(ids ...string) {
	if m.removedanalysis_jobs == nil {
		m.removedanalysis_jobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analysis_jobs, ids[i])
		m.removedanalysis_jobs[ids[i]] = struct{}{}
	}
}

// RemovedAnalysisJobs returns the removed IDs of the "analysis_jobs" edge to the AnalysisJob entity.
func (m *LogBatchMutation) RemovedAnalysisJobsIDs() (ids []string) {
	for id := range m.removedanalysis_jobs {
		ids = append(ids, id)
	}
	return
}

// AnalysisJobsIDs returns the "analysis_jobs" edge IDs in the mutation.
func (m *LogBatchMutation) AnalysisJobsIDs() (ids []string) {
	for id := range m.analysis_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetAnalysisJobs resets all changes to the "analysis_jobs" edge.
func (m *LogBatchMutation) ResetAnalysisJobs() {
	m.analysis_jobs = nil
	m.clearedanalysis_jobs = false
	m.removedanalysis_jobs = nil
}

// Where appends a list predicates to the LogBatchMutation builder.
func (m *LogBatchMutation) Where(ps ...predicate.LogBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogBatch).
func (m *LogBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogBatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.source != nil {
		fields = append(fields, logbatch.FieldSource)
	}
	if m.author != nil {
		fields = append(fields, logbatch.FieldAuthor)
	}
	if m.line_count != nil {
		fields = append(fields, logbatch.FieldLineCount)
	}
	if m.record_count != nil {
		fields = append(fields, logbatch.FieldRecordCount)
	}
	if m.fallback_count != nil {
		fields = append(fields, logbatch.FieldFallbackCount)
	}
	if m.records != nil {
		fields = append(fields, logbatch.FieldRecords)
	}
	if m.created_at != nil {
		fields = append(fields, logbatch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logbatch.FieldSource:
		return m.Source()
	case logbatch.FieldAuthor:
		return m.Author()
	case logbatch.FieldLineCount:
		return m.LineCount()
	case logbatch.FieldRecordCount:
		return m.RecordCount()
	case logbatch.FieldFallbackCount:
		return m.FallbackCount()
	case logbatch.FieldRecords:
		return m.Records()
	case logbatch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logbatch.FieldSource:
		return m.OldSource(ctx)
	case logbatch.FieldAuthor:
		return m.OldAuthor(ctx)
	case logbatch.FieldLineCount:
		return m.OldLineCount(ctx)
	case logbatch.FieldRecordCount:
		return m.OldRecordCount(ctx)
	case logbatch.FieldFallbackCount:
		return m.OldFallbackCount(ctx)
	case logbatch.FieldRecords:
		return m.OldRecords(ctx)
	case logbatch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LogBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logbatch.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case logbatch.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case logbatch.FieldLineCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineCount(v)
		return nil
	case logbatch.FieldRecordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordCount(v)
		return nil
	case logbatch.FieldFallbackCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackCount(v)
		return nil
	case logbatch.FieldRecords:
		v, ok := value.([]models.LogRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecords(v)
		return nil
	case logbatch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LogBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogBatchMutation) AddedFields() []string {
	var fields []string
	if m.addline_count != nil {
		fields = append(fields, logbatch.FieldLineCount)
	}
	if m.addrecord_count != nil {
		fields = append(fields, logbatch.FieldRecordCount)
	}
	if m.addfallback_count != nil {
		fields = append(fields, logbatch.FieldFallbackCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case logbatch.FieldLineCount:
		return m.AddedLineCount()
	case logbatch.FieldRecordCount:
		return m.AddedRecordCount()
	case logbatch.FieldFallbackCount:
		return m.AddedFallbackCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case logbatch.FieldLineCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineCount(v)
		return nil
	case logbatch.FieldRecordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordCount(v)
		return nil
	case logbatch.FieldFallbackCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFallbackCount(v)
		return nil
	}
	return fmt.Errorf("unknown LogBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logbatch.FieldSource) {
		fields = append(fields, logbatch.FieldSource)
	}
	if m.FieldCleared(logbatch.FieldAuthor) {
		fields = append(fields, logbatch.FieldAuthor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogBatchMutation) ClearField(name string) error {
	switch name {
	case logbatch.FieldSource:
		m.ClearSource()
		return nil
	case logbatch.FieldAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown LogBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogBatchMutation) ResetField(name string) error {
	switch name {
	case logbatch.FieldSource:
		m.ResetSource()
		return nil
	case logbatch.FieldAuthor:
		m.ResetAuthor()
		return nil
	case logbatch.FieldLineCount:
		m.ResetLineCount()
		return nil
	case logbatch.FieldRecordCount:
		m.ResetRecordCount()
		return nil
	case logbatch.FieldFallbackCount:
		m.ResetFallbackCount()
		return nil
	case logbatch.FieldRecords:
		m.ResetRecords()
		return nil
	case logbatch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LogBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analysis_jobs != nil {
		edges = append(edges, logbatch.EdgeAnalysisJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logbatch.EdgeAnalysisJobs:
		ids := make([]ent.Value, 0, len(m.analysis_jobs))
		for id := range m.analysis_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedanalysis_jobs != nil {
		edges = append(edges, logbatch.EdgeAnalysisJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogBatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case logbatch.EdgeAnalysisJobs:
		ids := make([]ent.Value, 0, len(m.removedanalysis_jobs))
		for id := range m.removedanalysis_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalysis_jobs {
		edges = append(edges, logbatch.EdgeAnalysisJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case logbatch.EdgeAnalysisJobs:
		return m.clearedanalysis_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogBatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown LogBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogBatchMutation) ResetEdge(name string) error {
	switch name {
	case logbatch.EdgeAnalysisJobs:
		m.ResetAnalysisJobs()
		return nil
	}
	return fmt.Errorf("unknown LogBatch edge %s", name)
}
