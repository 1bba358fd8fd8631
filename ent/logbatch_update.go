// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
	"github.com/subhashitt/LogPiolt/ent/predicate"
	"github.com/subhashitt/LogPiolt/pkg/models"
)

// LogBatchUpdate is the builder for updating LogBatch entities.
type LogBatchUpdate struct {
	config
	hooks    []Hook
	mutation *LogBatchMutation
}

// Where appends a list predicates to the LogBatchUpdate builder.
func (_u *LogBatchUpdate) Where(ps ...predicate.LogBatch) *LogBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *LogBatchUpdate) SetSource(v string) *LogBatchUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LogBatchUpdate) SetNillableSource(v *string) *LogBatchUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LogBatchUpdate) ClearSource() *LogBatchUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *LogBatchUpdate) SetAuthor(v string) *LogBatchUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *LogBatchUpdate) SetNillableAuthor(v *string) *LogBatchUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *LogBatchUpdate) ClearAuthor() *LogBatchUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetLineCount sets the "line_count" field.
func (_u *LogBatchUpdate) SetLineCount(v int) *LogBatchUpdate {
	_u.mutation.ResetLineCount()
	_u.mutation.SetLineCount(v)
	return _u
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_u *LogBatchUpdate) SetNillableLineCount(v *int) *LogBatchUpdate {
	if v != nil {
		_u.SetLineCount(*v)
	}
	return _u
}

// AddLineCount adds value to the "line_count" field.
func (_u *LogBatchUpdate) AddLineCount(v int) *LogBatchUpdate {
	_u.mutation.AddLineCount(v)
	return _u
}

// SetRecordCount sets the "record_count" field.
func (_u *LogBatchUpdate) SetRecordCount(v int) *LogBatchUpdate {
	_u.mutation.ResetRecordCount()
	_u.mutation.SetRecordCount(v)
	return _u
}

// SetNillableRecordCount sets the "record_count" field if the given value is not nil.
func (_u *LogBatchUpdate) SetNillableRecordCount(v *int) *LogBatchUpdate {
	if v != nil {
		_u.SetRecordCount(*v)
	}
	return _u
}

// AddRecordCount adds value to the "record_count" field.
func (_u *LogBatchUpdate) AddRecordCount(v int) *LogBatchUpdate {
	_u.mutation.AddRecordCount(v)
	return _u
}

// SetFallbackCount sets the "fallback_count" field.
func (_u *LogBatchUpdate) SetFallbackCount(v int) *LogBatchUpdate {
	_u.mutation.ResetFallbackCount()
	_u.mutation.SetFallbackCount(v)
	return _u
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_u *LogBatchUpdate) SetNillableFallbackCount(v *int) *LogBatchUpdate {
	if v != nil {
		_u.SetFallbackCount(*v)
	}
	return _u
}

// AddFallbackCount adds value to the "fallback_count" field.
func (_u *LogBatchUpdate) AddFallbackCount(v int) *LogBatchUpdate {
	_u.mutation.AddFallbackCount(v)
	return _u
}

// SetRecords sets the "records" field.
func (_u *LogBatchUpdate) SetRecords(v []models.LogRecord) *LogBatchUpdate {
	_u.mutation.SetRecords(v)
	return _u
}

// AppendRecords appends value to the "records" field.
func (_u *LogBatchUpdate) AppendRecords(v []models.LogRecord) *LogBatchUpdate {
	_u.mutation.AppendRecords(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LogBatchUpdate) SetCreatedAt(v time.Time) *LogBatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LogBatchUpdate) SetNillableCreatedAt(v *time.Time) *LogBatchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (_u *LogBatchUpdate) AddAnalysisJobIDs(ids ...string) *LogBatchUpdate {
	_u.mutation.AddAnalysisJobIDs(ids...)
	return _u
}

// AddAnalysisJobs adds the "analysis_jobs" edges to the AnalysisJob entity.
func (_u *LogBatchUpdate) AddAnalysisJobs(v ...*AnalysisJob) *LogBatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisJobIDs(ids...)
}

// Mutation returns the LogBatchMutation object of the builder.
func (_u *LogBatchUpdate) Mutation() *LogBatchMutation {
	return _u.mutation
}

// ClearAnalysisJobs clears all "analysis_jobs" edges to the AnalysisJob entity.
func (_u *LogBatchUpdate) ClearAnalysisJobs() *LogBatchUpdate {
	_u.mutation.ClearAnalysisJobs()
	return _u
}

// RemoveAnalysisJobIDs removes the "analysis_jobs" edge to AnalysisJob entities by IDs.
func (_u *LogBatchUpdate) RemoveAnalysisJobIDs(ids ...string) *LogBatchUpdate {
	_u.mutation.RemoveAnalysisJobIDs(ids...)
	return _u
}

// RemoveAnalysisJobs removes "analysis_jobs" edges to AnalysisJob entities.
func (_u *LogBatchUpdate) RemoveAnalysisJobs(v ...*AnalysisJob) *LogBatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LogBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LogBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LogBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(logbatch.Table, logbatch.Columns, sqlgraph.NewFieldSpec(logbatch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(logbatch.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(logbatch.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(logbatch.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(logbatch.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.LineCount(); ok {
		_spec.SetField(logbatch.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineCount(); ok {
		_spec.AddField(logbatch.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordCount(); ok {
		_spec.SetField(logbatch.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordCount(); ok {
		_spec.AddField(logbatch.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackCount(); ok {
		_spec.SetField(logbatch.FieldFallbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFallbackCount(); ok {
		_spec.AddField(logbatch.FieldFallbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Records(); ok {
		_spec.SetField(logbatch.FieldRecords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logbatch.FieldRecords, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(logbatch.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logbatch.AnalysisJobsTable,
			Columns: []string{logbatch.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysisJobsIDs(); len(nodes) > 0 && !_u.mutation.AnalysisJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logbatch.AnalysisJobsTable,
			Columns: []string{logbatch.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logbatch.AnalysisJobsTable,
			Columns: []string{logbatch.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LogBatchUpdateOne is the builder for updating a single LogBatch entity.
type LogBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LogBatchMutation
}

// SetSource sets the "source" field.
func (_u *LogBatchUpdateOne) SetSource(v string) *LogBatchUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LogBatchUpdateOne) SetNillableSource(v *string) *LogBatchUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LogBatchUpdateOne) ClearSource() *LogBatchUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *LogBatchUpdateOne) SetAuthor(v string) *LogBatchUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *LogBatchUpdateOne) SetNillableAuthor(v *string) *LogBatchUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *LogBatchUpdateOne) ClearAuthor() *LogBatchUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetLineCount sets the "line_count" field.
func (_u *LogBatchUpdateOne) SetLineCount(v int) *LogBatchUpdateOne {
	_u.mutation.ResetLineCount()
	_u.mutation.SetLineCount(v)
	return _u
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_u *LogBatchUpdateOne) SetNillableLineCount(v *int) *LogBatchUpdateOne {
	if v != nil {
		_u.SetLineCount(*v)
	}
	return _u
}

// AddLineCount adds value to the "line_count" field.
func (_u *LogBatchUpdateOne) AddLineCount(v int) *LogBatchUpdateOne {
	_u.mutation.AddLineCount(v)
	return _u
}

// SetRecordCount sets the "record_count" field.
func (_u *LogBatchUpdateOne) SetRecordCount(v int) *LogBatchUpdateOne {
	_u.mutation.ResetRecordCount()
	_u.mutation.SetRecordCount(v)
	return _u
}

// SetNillableRecordCount sets the "record_count" field if the given value is not nil.
func (_u *LogBatchUpdateOne) SetNillableRecordCount(v *int) *LogBatchUpdateOne {
	if v != nil {
		_u.SetRecordCount(*v)
	}
	return _u
}

// AddRecordCount adds value to the "record_count" field.
func (_u *LogBatchUpdateOne) AddRecordCount(v int) *LogBatchUpdateOne {
	_u.mutation.AddRecordCount(v)
	return _u
}

// SetFallbackCount sets the "fallback_count" field.
func (_u *LogBatchUpdateOne) SetFallbackCount(v int) *LogBatchUpdateOne {
	_u.mutation.ResetFallbackCount()
	_u.mutation.SetFallbackCount(v)
	return _u
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_u *LogBatchUpdateOne) SetNillableFallbackCount(v *int) *LogBatchUpdateOne {
	if v != nil {
		_u.SetFallbackCount(*v)
	}
	return _u
}

// AddFallbackCount adds value to the "fallback_count" field.
func (_u *LogBatchUpdateOne) AddFallbackCount(v int) *LogBatchUpdateOne {
	_u.mutation.AddFallbackCount(v)
	return _u
}

// SetRecords sets the "records" field.
func (_u *LogBatchUpdateOne) SetRecords(v []models.LogRecord) *LogBatchUpdateOne {
	_u.mutation.SetRecords(v)
	return _u
}

// AppendRecords appends value to the "records" field.
func (_u *LogBatchUpdateOne) AppendRecords(v []models.LogRecord) *LogBatchUpdateOne {
	_u.mutation.AppendRecords(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LogBatchUpdateOne) SetCreatedAt(v time.Time) *LogBatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LogBatchUpdateOne) SetNillableCreatedAt(v *time.Time) *LogBatchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (_u *LogBatchUpdateOne) AddAnalysisJobIDs(ids ...string) *LogBatchUpdateOne {
	_u.mutation.AddAnalysisJobIDs(ids...)
	return _u
}

// AddAnalysisJobs adds the "analysis_jobs" edges to the AnalysisJob entity.
func (_u *LogBatchUpdateOne) AddAnalysisJobs(v ...*AnalysisJob) *LogBatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisJobIDs(ids...)
}

// Mutation returns the LogBatchMutation object of the builder.
func (_u *LogBatchUpdateOne) Mutation() *LogBatchMutation {
	return _u.mutation
}

// ClearAnalysisJobs clears all "analysis_jobs" edges to the AnalysisJob entity.
func (_u *LogBatchUpdateOne) ClearAnalysisJobs() *LogBatchUpdateOne {
	_u.mutation.ClearAnalysisJobs()
	return _u
}

// RemoveAnalysisJobIDs removes the "analysis_jobs" edge to AnalysisJob entities by IDs.
func (_u *LogBatchUpdateOne) RemoveAnalysisJobIDs(ids ...string) *LogBatchUpdateOne {
	_u.mutation.RemoveAnalysisJobIDs(ids...)
	return _u
}

// RemoveAnalysisJobs removes "analysis_jobs" edges to AnalysisJob entities.
func (_u *LogBatchUpdateOne) RemoveAnalysisJobs(v ...*AnalysisJob) *LogBatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisJobIDs(ids...)
}

// Where appends a list predicates to the LogBatchUpdate builder.
func (_u *LogBatchUpdateOne) Where(ps ...predicate.LogBatch) *LogBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LogBatchUpdateOne) Select(field string, fields ...string) *LogBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LogBatch entity.
func (_u *LogBatchUpdateOne) Save(ctx context.Context) (*LogBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogBatchUpdateOne) SaveX(ctx context.Context) *LogBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LogBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LogBatchUpdateOne) sqlSave(ctx context.Context) (_node *LogBatch, err error) {
	_spec := sqlgraph.NewUpdateSpec(logbatch.Table, logbatch.Columns, sqlgraph.NewFieldSpec(logbatch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LogBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logbatch.FieldID)
		for _, f := range fields {
			if !logbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != logbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(logbatch.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(logbatch.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(logbatch.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(logbatch.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.LineCount(); ok {
		_spec.SetField(logbatch.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineCount(); ok {
		_spec.AddField(logbatch.FieldLineCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordCount(); ok {
		_spec.SetField(logbatch.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordCount(); ok {
		_spec.AddField(logbatch.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackCount(); ok {
		_spec.SetField(logbatch.FieldFallbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFallbackCount(); ok {
		_spec.AddField(logbatch.FieldFallbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Records(); ok {
		_spec.SetField(logbatch.FieldRecords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logbatch.FieldRecords, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(logbatch.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logbatch.AnalysisJobsTable,
			Columns: []string{logbatch.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysisJobsIDs(); len(nodes) > 0 && !_u.mutation.AnalysisJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logbatch.AnalysisJobsTable,
			Columns: []string{logbatch.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logbatch.AnalysisJobsTable,
			Columns: []string{logbatch.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LogBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
