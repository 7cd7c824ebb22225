// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/schema"
	"github.com/ksuri/mindtriage/ent/selectionevent"
)

// SelectionEventCreate is the builder for creating a SelectionEvent entity.
type SelectionEventCreate struct {
	config
	mutation *SelectionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SelectionEventCreate) SetSequence(v int64) *SelectionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SelectionEventCreate) SetTimestamp(v time.Time) *SelectionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SelectionEventCreate) SetNillableTimestamp(v *time.Time) *SelectionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *SelectionEventCreate) SetAssessmentID(v string) *SelectionEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetConcern sets the "concern" field.
func (_c *SelectionEventCreate) SetConcern(v string) *SelectionEventCreate {
	_c.mutation.SetConcern(v)
	return _c
}

// SetMaxModules sets the "max_modules" field.
func (_c *SelectionEventCreate) SetMaxModules(v int) *SelectionEventCreate {
	_c.mutation.SetMaxModules(v)
	return _c
}

// SetMinThreshold sets the "min_threshold" field.
func (_c *SelectionEventCreate) SetMinThreshold(v float64) *SelectionEventCreate {
	_c.mutation.SetMinThreshold(v)
	return _c
}

// SetSelected sets the "selected" field.
func (_c *SelectionEventCreate) SetSelected(v []schema.SelectedModule) *SelectionEventCreate {
	_c.mutation.SetSelected(v)
	return _c
}

// Mutation returns the SelectionEventMutation object of the builder.
func (_c *SelectionEventCreate) Mutation() *SelectionEventMutation {
	return _c.mutation
}

// Save creates the SelectionEvent in the database.
func (_c *SelectionEventCreate) Save(ctx context.Context) (*SelectionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SelectionEventCreate) SaveX(ctx context.Context) *SelectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelectionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelectionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SelectionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := selectionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SelectionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SelectionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SelectionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "SelectionEvent.assessment_id"`)}
	}
	if _, ok := _c.mutation.Concern(); !ok {
		return &ValidationError{Name: "concern", err: errors.New(`ent: missing required field "SelectionEvent.concern"`)}
	}
	if _, ok := _c.mutation.MaxModules(); !ok {
		return &ValidationError{Name: "max_modules", err: errors.New(`ent: missing required field "SelectionEvent.max_modules"`)}
	}
	if _, ok := _c.mutation.MinThreshold(); !ok {
		return &ValidationError{Name: "min_threshold", err: errors.New(`ent: missing required field "SelectionEvent.min_threshold"`)}
	}
	return nil
}

func (_c *SelectionEventCreate) sqlSave(ctx context.Context) (*SelectionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SelectionEventCreate) createSpec() (*SelectionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SelectionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(selectionevent.Table, sqlgraph.NewFieldSpec(selectionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(selectionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(selectionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(selectionevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Concern(); ok {
		_spec.SetField(selectionevent.FieldConcern, field.TypeString, value)
		_node.Concern = value
	}
	if value, ok := _c.mutation.MaxModules(); ok {
		_spec.SetField(selectionevent.FieldMaxModules, field.TypeInt, value)
		_node.MaxModules = value
	}
	if value, ok := _c.mutation.MinThreshold(); ok {
		_spec.SetField(selectionevent.FieldMinThreshold, field.TypeFloat64, value)
		_node.MinThreshold = value
	}
	if value, ok := _c.mutation.Selected(); ok {
		_spec.SetField(selectionevent.FieldSelected, field.TypeJSON, value)
		_node.Selected = value
	}
	return _node, _spec
}

// SelectionEventCreateBulk is the builder for creating many SelectionEvent entities in bulk.
type SelectionEventCreateBulk struct {
	config
	err      error
	builders []*SelectionEventCreate
}

// Save creates the SelectionEvent entities in the database.
func (_c *SelectionEventCreateBulk) Save(ctx context.Context) ([]*SelectionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SelectionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SelectionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SelectionEventCreateBulk) SaveX(ctx context.Context) []*SelectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelectionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelectionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
