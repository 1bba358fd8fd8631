// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
	"github.com/subhashitt/LogPiolt/pkg/models"
)

// LogBatchCreate is the builder for creating a LogBatch entity.
type LogBatchCreate struct {
	config
	mutation *LogBatchMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *LogBatchCreate) SetSource(v string) *LogBatchCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LogBatchCreate) SetNillableSource(v *string) *LogBatchCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *LogBatchCreate) SetAuthor(v string) *LogBatchCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *LogBatchCreate) SetNillableAuthor(v *string) *LogBatchCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetLineCount sets the "line_count" field.
func (_c *LogBatchCreate) SetLineCount(v int) *LogBatchCreate {
	_c.mutation.SetLineCount(v)
	return _c
}

// SetRecordCount sets the "record_count" field.
func (_c *LogBatchCreate) SetRecordCount(v int) *LogBatchCreate {
	_c.mutation.SetRecordCount(v)
	return _c
}

// SetFallbackCount sets the "fallback_count" field.
func (_c *LogBatchCreate) SetFallbackCount(v int) *LogBatchCreate {
	_c.mutation.SetFallbackCount(v)
	return _c
}

// SetRecords sets the "records" field.
func (_c *LogBatchCreate) SetRecords(v []models.LogRecord) *LogBatchCreate {
	_c.mutation.SetRecords(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LogBatchCreate) SetCreatedAt(v time.Time) *LogBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LogBatchCreate) SetNillableCreatedAt(v *time.Time) *LogBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LogBatchCreate) SetID(v string) *LogBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (_c *LogBatchCreate) AddAnalysisJobIDs(ids ...string) *LogBatchCreate {
	_c.mutation.AddAnalysisJobIDs(ids...)
	return _c
}

// AddAnalysisJobs adds the "analysis_jobs" edges to the AnalysisJob entity.
func (_c *LogBatchCreate) AddAnalysisJobs(v ...*AnalysisJob) *LogBatchCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisJobIDs(ids...)
}

// Mutation returns the LogBatchMutation object of the builder.
func (_c *LogBatchCreate) Mutation() *LogBatchMutation {
	return _c.mutation
}

// Save creates the LogBatch in the database.
func (_c *LogBatchCreate) Save(ctx context.Context) (*LogBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogBatchCreate) SaveX(ctx context.Context) *LogBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogBatchCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := logbatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogBatchCreate) check() error {
	if _, ok := _c.mutation.LineCount(); !ok {
		return &ValidationError{Name: "line_count", err: errors.New(`ent: missing required field "LogBatch.line_count"`)}
	}
	if _, ok := _c.mutation.RecordCount(); !ok {
		return &ValidationError{Name: "record_count", err: errors.New(`ent: missing required field "LogBatch.record_count"`)}
	}
	if _, ok := _c.mutation.FallbackCount(); !ok {
		return &ValidationError{Name: "fallback_count", err: errors.New(`ent: missing required field "LogBatch.fallback_count"`)}
	}
	if _, ok := _c.mutation.Records(); !ok {
		return &ValidationError{Name: "records", err: errors.New(`ent: missing required field "LogBatch.records"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LogBatch.created_at"`)}
	}
	return nil
}

func (_c *LogBatchCreate) sqlSave(ctx context.Context) (*LogBatch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LogBatch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LogBatchCreate) createSpec() (*LogBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &LogBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logbatch.Table, sqlgraph.NewFieldSpec(logbatch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(logbatch.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(logbatch.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.LineCount(); ok {
		_spec.SetField(logbatch.FieldLineCount, field.TypeInt, value)
		_node.LineCount = value
	}
	if value, ok := _c.mutation.RecordCount(); ok {
		_spec.SetField(logbatch.FieldRecordCount, field.TypeInt, value)
		_node.RecordCount = value
	}
	if value, ok := _c.mutation.FallbackCount(); ok {
		_spec.SetField(logbatch.FieldFallbackCount, field.TypeInt, value)
		_node.FallbackCount = value
	}
	if value, ok := _c.mutation.Records(); ok {
		_spec.SetField(logbatch.FieldRecords, field.TypeJSON, value)
		_node.Records = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(logbatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AnalysisJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LogBatchCreateBulk is the builder for creating many LogBatch entities in bulk.
type LogBatchCreateBulk struct {
	config
	err      error
	builders []*LogBatchCreate
}

// Save creates the LogBatch entities in the database.
func (_c *LogBatchCreateBulk) Save(ctx context.Context) ([]*LogBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LogBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogBatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LogBatchCreateBulk) SaveX(ctx context.Context) []*LogBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
