// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/riskevent"
)

// RiskEventCreate is the builder for creating a RiskEvent entity.
type RiskEventCreate struct {
	config
	mutation *RiskEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RiskEventCreate) SetSequence(v int64) *RiskEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RiskEventCreate) SetTimestamp(v time.Time) *RiskEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RiskEventCreate) SetNillableTimestamp(v *time.Time) *RiskEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *RiskEventCreate) SetAssessmentID(v string) *RiskEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *RiskEventCreate) SetRiskLevel(v string) *RiskEventCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetRiskValue sets the "risk_value" field.
func (_c *RiskEventCreate) SetRiskValue(v float64) *RiskEventCreate {
	_c.mutation.SetRiskValue(v)
	return _c
}

// SetFactors sets the "factors" field.
func (_c *RiskEventCreate) SetFactors(v []string) *RiskEventCreate {
	_c.mutation.SetFactors(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *RiskEventCreate) SetRationale(v string) *RiskEventCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *RiskEventCreate) SetNillableRationale(v *string) *RiskEventCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// Mutation returns the RiskEventMutation object of the builder.
func (_c *RiskEventCreate) Mutation() *RiskEventMutation {
	return _c.mutation
}

// Save creates the RiskEvent in the database.
func (_c *RiskEventCreate) Save(ctx context.Context) (*RiskEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskEventCreate) SaveX(ctx context.Context) *RiskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := riskevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		v := riskevent.DefaultRationale
		_c.mutation.SetRationale(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RiskEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RiskEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "RiskEvent.assessment_id"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "RiskEvent.risk_level"`)}
	}
	if _, ok := _c.mutation.RiskValue(); !ok {
		return &ValidationError{Name: "risk_value", err: errors.New(`ent: missing required field "RiskEvent.risk_value"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "RiskEvent.rationale"`)}
	}
	return nil
}

func (_c *RiskEventCreate) sqlSave(ctx context.Context) (*RiskEvent, error) {
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

func (_c *RiskEventCreate) createSpec() (*RiskEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RiskEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(riskevent.Table, sqlgraph.NewFieldSpec(riskevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(riskevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(riskevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(riskevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(riskevent.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.RiskValue(); ok {
		_spec.SetField(riskevent.FieldRiskValue, field.TypeFloat64, value)
		_node.RiskValue = value
	}
	if value, ok := _c.mutation.Factors(); ok {
		_spec.SetField(riskevent.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(riskevent.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	return _node, _spec
}

// RiskEventCreateBulk is the builder for creating many RiskEvent entities in bulk.
type RiskEventCreateBulk struct {
	config
	err      error
	builders []*RiskEventCreate
}

// Save creates the RiskEvent entities in the database.
func (_c *RiskEventCreateBulk) Save(ctx context.Context) ([]*RiskEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RiskEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskEventMutation)
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
func (_c *RiskEventCreateBulk) SaveX(ctx context.Context) []*RiskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
