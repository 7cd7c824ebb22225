// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/administrationevent"
)

// AdministrationEventCreate is the builder for creating a AdministrationEvent entity.
type AdministrationEventCreate struct {
	config
	mutation *AdministrationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AdministrationEventCreate) SetSequence(v int64) *AdministrationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdministrationEventCreate) SetTimestamp(v time.Time) *AdministrationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AdministrationEventCreate) SetNillableTimestamp(v *time.Time) *AdministrationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AdministrationEventCreate) SetAssessmentID(v string) *AdministrationEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *AdministrationEventCreate) SetModuleID(v string) *AdministrationEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetModuleName sets the "module_name" field.
func (_c *AdministrationEventCreate) SetModuleName(v string) *AdministrationEventCreate {
	_c.mutation.SetModuleName(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *AdministrationEventCreate) SetTotalScore(v float64) *AdministrationEventCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *AdministrationEventCreate) SetMaxScore(v float64) *AdministrationEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *AdministrationEventCreate) SetPercentage(v float64) *AdministrationEventCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetCriteriaMet sets the "criteria_met" field.
func (_c *AdministrationEventCreate) SetCriteriaMet(v bool) *AdministrationEventCreate {
	_c.mutation.SetCriteriaMet(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AdministrationEventCreate) SetSeverity(v string) *AdministrationEventCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *AdministrationEventCreate) SetNillableSeverity(v *string) *AdministrationEventCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetSymptomCount sets the "symptom_count" field.
func (_c *AdministrationEventCreate) SetSymptomCount(v int) *AdministrationEventCreate {
	_c.mutation.SetSymptomCount(v)
	return _c
}

// SetNillableSymptomCount sets the "symptom_count" field if the given value is not nil.
func (_c *AdministrationEventCreate) SetNillableSymptomCount(v *int) *AdministrationEventCreate {
	if v != nil {
		_c.SetSymptomCount(*v)
	}
	return _c
}

// SetAdminTimeMins sets the "admin_time_mins" field.
func (_c *AdministrationEventCreate) SetAdminTimeMins(v int) *AdministrationEventCreate {
	_c.mutation.SetAdminTimeMins(v)
	return _c
}

// SetNillableAdminTimeMins sets the "admin_time_mins" field if the given value is not nil.
func (_c *AdministrationEventCreate) SetNillableAdminTimeMins(v *int) *AdministrationEventCreate {
	if v != nil {
		_c.SetAdminTimeMins(*v)
	}
	return _c
}

// SetQuestionScores sets the "question_scores" field.
func (_c *AdministrationEventCreate) SetQuestionScores(v map[string]float64) *AdministrationEventCreate {
	_c.mutation.SetQuestionScores(v)
	return _c
}

// Mutation returns the AdministrationEventMutation object of the builder.
func (_c *AdministrationEventCreate) Mutation() *AdministrationEventMutation {
	return _c.mutation
}

// Save creates the AdministrationEvent in the database.
func (_c *AdministrationEventCreate) Save(ctx context.Context) (*AdministrationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdministrationEventCreate) SaveX(ctx context.Context) *AdministrationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdministrationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdministrationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdministrationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := administrationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := administrationevent.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.SymptomCount(); !ok {
		v := administrationevent.DefaultSymptomCount
		_c.mutation.SetSymptomCount(v)
	}
	if _, ok := _c.mutation.AdminTimeMins(); !ok {
		v := administrationevent.DefaultAdminTimeMins
		_c.mutation.SetAdminTimeMins(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdministrationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdministrationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdministrationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AdministrationEvent.assessment_id"`)}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "AdministrationEvent.module_id"`)}
	}
	if _, ok := _c.mutation.ModuleName(); !ok {
		return &ValidationError{Name: "module_name", err: errors.New(`ent: missing required field "AdministrationEvent.module_name"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "AdministrationEvent.total_score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "AdministrationEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "AdministrationEvent.percentage"`)}
	}
	if _, ok := _c.mutation.CriteriaMet(); !ok {
		return &ValidationError{Name: "criteria_met", err: errors.New(`ent: missing required field "AdministrationEvent.criteria_met"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "AdministrationEvent.severity"`)}
	}
	if _, ok := _c.mutation.SymptomCount(); !ok {
		return &ValidationError{Name: "symptom_count", err: errors.New(`ent: missing required field "AdministrationEvent.symptom_count"`)}
	}
	if _, ok := _c.mutation.AdminTimeMins(); !ok {
		return &ValidationError{Name: "admin_time_mins", err: errors.New(`ent: missing required field "AdministrationEvent.admin_time_mins"`)}
	}
	return nil
}

func (_c *AdministrationEventCreate) sqlSave(ctx context.Context) (*AdministrationEvent, error) {
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

func (_c *AdministrationEventCreate) createSpec() (*AdministrationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdministrationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(administrationevent.Table, sqlgraph.NewFieldSpec(administrationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(administrationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(administrationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(administrationevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(administrationevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.ModuleName(); ok {
		_spec.SetField(administrationevent.FieldModuleName, field.TypeString, value)
		_node.ModuleName = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(administrationevent.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(administrationevent.FieldMaxScore, field.TypeFloat64, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(administrationevent.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.CriteriaMet(); ok {
		_spec.SetField(administrationevent.FieldCriteriaMet, field.TypeBool, value)
		_node.CriteriaMet = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(administrationevent.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.SymptomCount(); ok {
		_spec.SetField(administrationevent.FieldSymptomCount, field.TypeInt, value)
		_node.SymptomCount = value
	}
	if value, ok := _c.mutation.AdminTimeMins(); ok {
		_spec.SetField(administrationevent.FieldAdminTimeMins, field.TypeInt, value)
		_node.AdminTimeMins = value
	}
	if value, ok := _c.mutation.QuestionScores(); ok {
		_spec.SetField(administrationevent.FieldQuestionScores, field.TypeJSON, value)
		_node.QuestionScores = value
	}
	return _node, _spec
}

// AdministrationEventCreateBulk is the builder for creating many AdministrationEvent entities in bulk.
type AdministrationEventCreateBulk struct {
	config
	err      error
	builders []*AdministrationEventCreate
}

// Save creates the AdministrationEvent entities in the database.
func (_c *AdministrationEventCreateBulk) Save(ctx context.Context) ([]*AdministrationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdministrationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdministrationEventMutation)
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
func (_c *AdministrationEventCreateBulk) SaveX(ctx context.Context) []*AdministrationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdministrationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdministrationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
