// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/predicate"
	"github.com/ksuri/mindtriage/ent/riskevent"
)

// RiskEventUpdate is the builder for updating RiskEvent entities.
type RiskEventUpdate struct {
	config
	hooks    []Hook
	mutation *RiskEventMutation
}

// Where appends a list predicates to the RiskEventUpdate builder.
func (_u *RiskEventUpdate) Where(ps ...predicate.RiskEvent) *RiskEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *RiskEventUpdate) SetAssessmentID(v string) *RiskEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *RiskEventUpdate) SetNillableAssessmentID(v *string) *RiskEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *RiskEventUpdate) SetRiskLevel(v string) *RiskEventUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *RiskEventUpdate) SetNillableRiskLevel(v *string) *RiskEventUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskValue sets the "risk_value" field.
func (_u *RiskEventUpdate) SetRiskValue(v float64) *RiskEventUpdate {
	_u.mutation.ResetRiskValue()
	_u.mutation.SetRiskValue(v)
	return _u
}

// SetNillableRiskValue sets the "risk_value" field if the given value is not nil.
func (_u *RiskEventUpdate) SetNillableRiskValue(v *float64) *RiskEventUpdate {
	if v != nil {
		_u.SetRiskValue(*v)
	}
	return _u
}

// AddRiskValue adds value to the "risk_value" field.
func (_u *RiskEventUpdate) AddRiskValue(v float64) *RiskEventUpdate {
	_u.mutation.AddRiskValue(v)
	return _u
}

// SetFactors sets the "factors" field.
func (_u *RiskEventUpdate) SetFactors(v []string) *RiskEventUpdate {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *RiskEventUpdate) AppendFactors(v []string) *RiskEventUpdate {
	_u.mutation.AppendFactors(v)
	return _u
}

// ClearFactors clears the value of the "factors" field.
func (_u *RiskEventUpdate) ClearFactors() *RiskEventUpdate {
	_u.mutation.ClearFactors()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *RiskEventUpdate) SetRationale(v string) *RiskEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *RiskEventUpdate) SetNillableRationale(v *string) *RiskEventUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the RiskEventMutation object of the builder.
func (_u *RiskEventUpdate) Mutation() *RiskEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RiskEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(riskevent.Table, riskevent.Columns, sqlgraph.NewFieldSpec(riskevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(riskevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(riskevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskValue(); ok {
		_spec.SetField(riskevent.FieldRiskValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskValue(); ok {
		_spec.AddField(riskevent.FieldRiskValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(riskevent.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskevent.FieldFactors, value)
		})
	}
	if _u.mutation.FactorsCleared() {
		_spec.ClearField(riskevent.FieldFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(riskevent.FieldRationale, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskEventUpdateOne is the builder for updating a single RiskEvent entity.
type RiskEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *RiskEventUpdateOne) SetAssessmentID(v string) *RiskEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *RiskEventUpdateOne) SetNillableAssessmentID(v *string) *RiskEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *RiskEventUpdateOne) SetRiskLevel(v string) *RiskEventUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *RiskEventUpdateOne) SetNillableRiskLevel(v *string) *RiskEventUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskValue sets the "risk_value" field.
func (_u *RiskEventUpdateOne) SetRiskValue(v float64) *RiskEventUpdateOne {
	_u.mutation.ResetRiskValue()
	_u.mutation.SetRiskValue(v)
	return _u
}

// SetNillableRiskValue sets the "risk_value" field if the given value is not nil.
func (_u *RiskEventUpdateOne) SetNillableRiskValue(v *float64) *RiskEventUpdateOne {
	if v != nil {
		_u.SetRiskValue(*v)
	}
	return _u
}

// AddRiskValue adds value to the "risk_value" field.
func (_u *RiskEventUpdateOne) AddRiskValue(v float64) *RiskEventUpdateOne {
	_u.mutation.AddRiskValue(v)
	return _u
}

// SetFactors sets the "factors" field.
func (_u *RiskEventUpdateOne) SetFactors(v []string) *RiskEventUpdateOne {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *RiskEventUpdateOne) AppendFactors(v []string) *RiskEventUpdateOne {
	_u.mutation.AppendFactors(v)
	return _u
}

// ClearFactors clears the value of the "factors" field.
func (_u *RiskEventUpdateOne) ClearFactors() *RiskEventUpdateOne {
	_u.mutation.ClearFactors()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *RiskEventUpdateOne) SetRationale(v string) *RiskEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *RiskEventUpdateOne) SetNillableRationale(v *string) *RiskEventUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the RiskEventMutation object of the builder.
func (_u *RiskEventUpdateOne) Mutation() *RiskEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RiskEventUpdate builder.
func (_u *RiskEventUpdateOne) Where(ps ...predicate.RiskEvent) *RiskEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskEventUpdateOne) Select(field string, fields ...string) *RiskEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RiskEvent entity.
func (_u *RiskEventUpdateOne) Save(ctx context.Context) (*RiskEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskEventUpdateOne) SaveX(ctx context.Context) *RiskEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RiskEventUpdateOne) sqlSave(ctx context.Context) (_node *RiskEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(riskevent.Table, riskevent.Columns, sqlgraph.NewFieldSpec(riskevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RiskEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, riskevent.FieldID)
		for _, f := range fields {
			if !riskevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != riskevent.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(riskevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(riskevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskValue(); ok {
		_spec.SetField(riskevent.FieldRiskValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskValue(); ok {
		_spec.AddField(riskevent.FieldRiskValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(riskevent.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskevent.FieldFactors, value)
		})
	}
	if _u.mutation.FactorsCleared() {
		_spec.ClearField(riskevent.FieldFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(riskevent.FieldRationale, field.TypeString, value)
	}
	_node = &RiskEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
