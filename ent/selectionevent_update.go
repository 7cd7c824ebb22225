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
	"github.com/ksuri/mindtriage/ent/schema"
	"github.com/ksuri/mindtriage/ent/selectionevent"
)

// SelectionEventUpdate is the builder for updating SelectionEvent entities.
type SelectionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SelectionEventMutation
}

// Where appends a list predicates to the SelectionEventUpdate builder.
func (_u *SelectionEventUpdate) Where(ps ...predicate.SelectionEvent) *SelectionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *SelectionEventUpdate) SetAssessmentID(v string) *SelectionEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableAssessmentID(v *string) *SelectionEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetConcern sets the "concern" field.
func (_u *SelectionEventUpdate) SetConcern(v string) *SelectionEventUpdate {
	_u.mutation.SetConcern(v)
	return _u
}

// SetNillableConcern sets the "concern" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableConcern(v *string) *SelectionEventUpdate {
	if v != nil {
		_u.SetConcern(*v)
	}
	return _u
}

// SetMaxModules sets the "max_modules" field.
func (_u *SelectionEventUpdate) SetMaxModules(v int) *SelectionEventUpdate {
	_u.mutation.ResetMaxModules()
	_u.mutation.SetMaxModules(v)
	return _u
}

// SetNillableMaxModules sets the "max_modules" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableMaxModules(v *int) *SelectionEventUpdate {
	if v != nil {
		_u.SetMaxModules(*v)
	}
	return _u
}

// AddMaxModules adds value to the "max_modules" field.
func (_u *SelectionEventUpdate) AddMaxModules(v int) *SelectionEventUpdate {
	_u.mutation.AddMaxModules(v)
	return _u
}

// SetMinThreshold sets the "min_threshold" field.
func (_u *SelectionEventUpdate) SetMinThreshold(v float64) *SelectionEventUpdate {
	_u.mutation.ResetMinThreshold()
	_u.mutation.SetMinThreshold(v)
	return _u
}

// SetNillableMinThreshold sets the "min_threshold" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableMinThreshold(v *float64) *SelectionEventUpdate {
	if v != nil {
		_u.SetMinThreshold(*v)
	}
	return _u
}

// AddMinThreshold adds value to the "min_threshold" field.
func (_u *SelectionEventUpdate) AddMinThreshold(v float64) *SelectionEventUpdate {
	_u.mutation.AddMinThreshold(v)
	return _u
}

// SetSelected sets the "selected" field.
func (_u *SelectionEventUpdate) SetSelected(v []schema.SelectedModule) *SelectionEventUpdate {
	_u.mutation.SetSelected(v)
	return _u
}

// AppendSelected appends value to the "selected" field.
func (_u *SelectionEventUpdate) AppendSelected(v []schema.SelectedModule) *SelectionEventUpdate {
	_u.mutation.AppendSelected(v)
	return _u
}

// ClearSelected clears the value of the "selected" field.
func (_u *SelectionEventUpdate) ClearSelected() *SelectionEventUpdate {
	_u.mutation.ClearSelected()
	return _u
}

// Mutation returns the SelectionEventMutation object of the builder.
func (_u *SelectionEventUpdate) Mutation() *SelectionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SelectionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelectionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SelectionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelectionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SelectionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(selectionevent.Table, selectionevent.Columns, sqlgraph.NewFieldSpec(selectionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(selectionevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concern(); ok {
		_spec.SetField(selectionevent.FieldConcern, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxModules(); ok {
		_spec.SetField(selectionevent.FieldMaxModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxModules(); ok {
		_spec.AddField(selectionevent.FieldMaxModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinThreshold(); ok {
		_spec.SetField(selectionevent.FieldMinThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinThreshold(); ok {
		_spec.AddField(selectionevent.FieldMinThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(selectionevent.FieldSelected, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelected(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, selectionevent.FieldSelected, value)
		})
	}
	if _u.mutation.SelectedCleared() {
		_spec.ClearField(selectionevent.FieldSelected, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SelectionEventUpdateOne is the builder for updating a single SelectionEvent entity.
type SelectionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SelectionEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *SelectionEventUpdateOne) SetAssessmentID(v string) *SelectionEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableAssessmentID(v *string) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetConcern sets the "concern" field.
func (_u *SelectionEventUpdateOne) SetConcern(v string) *SelectionEventUpdateOne {
	_u.mutation.SetConcern(v)
	return _u
}

// SetNillableConcern sets the "concern" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableConcern(v *string) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetConcern(*v)
	}
	return _u
}

// SetMaxModules sets the "max_modules" field.
func (_u *SelectionEventUpdateOne) SetMaxModules(v int) *SelectionEventUpdateOne {
	_u.mutation.ResetMaxModules()
	_u.mutation.SetMaxModules(v)
	return _u
}

// SetNillableMaxModules sets the "max_modules" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableMaxModules(v *int) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetMaxModules(*v)
	}
	return _u
}

// AddMaxModules adds value to the "max_modules" field.
func (_u *SelectionEventUpdateOne) AddMaxModules(v int) *SelectionEventUpdateOne {
	_u.mutation.AddMaxModules(v)
	return _u
}

// SetMinThreshold sets the "min_threshold" field.
func (_u *SelectionEventUpdateOne) SetMinThreshold(v float64) *SelectionEventUpdateOne {
	_u.mutation.ResetMinThreshold()
	_u.mutation.SetMinThreshold(v)
	return _u
}

// SetNillableMinThreshold sets the "min_threshold" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableMinThreshold(v *float64) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetMinThreshold(*v)
	}
	return _u
}

// AddMinThreshold adds value to the "min_threshold" field.
func (_u *SelectionEventUpdateOne) AddMinThreshold(v float64) *SelectionEventUpdateOne {
	_u.mutation.AddMinThreshold(v)
	return _u
}

// SetSelected sets the "selected" field.
func (_u *SelectionEventUpdateOne) SetSelected(v []schema.SelectedModule) *SelectionEventUpdateOne {
	_u.mutation.SetSelected(v)
	return _u
}

// AppendSelected appends value to the "selected" field.
func (_u *SelectionEventUpdateOne) AppendSelected(v []schema.SelectedModule) *SelectionEventUpdateOne {
	_u.mutation.AppendSelected(v)
	return _u
}

// ClearSelected clears the value of the "selected" field.
func (_u *SelectionEventUpdateOne) ClearSelected() *SelectionEventUpdateOne {
	_u.mutation.ClearSelected()
	return _u
}

// Mutation returns the SelectionEventMutation object of the builder.
func (_u *SelectionEventUpdateOne) Mutation() *SelectionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SelectionEventUpdate builder.
func (_u *SelectionEventUpdateOne) Where(ps ...predicate.SelectionEvent) *SelectionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SelectionEventUpdateOne) Select(field string, fields ...string) *SelectionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SelectionEvent entity.
func (_u *SelectionEventUpdateOne) Save(ctx context.Context) (*SelectionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelectionEventUpdateOne) SaveX(ctx context.Context) *SelectionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SelectionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelectionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SelectionEventUpdateOne) sqlSave(ctx context.Context) (_node *SelectionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(selectionevent.Table, selectionevent.Columns, sqlgraph.NewFieldSpec(selectionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SelectionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, selectionevent.FieldID)
		for _, f := range fields {
			if !selectionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != selectionevent.FieldID {
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
		_spec.SetField(selectionevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concern(); ok {
		_spec.SetField(selectionevent.FieldConcern, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxModules(); ok {
		_spec.SetField(selectionevent.FieldMaxModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxModules(); ok {
		_spec.AddField(selectionevent.FieldMaxModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinThreshold(); ok {
		_spec.SetField(selectionevent.FieldMinThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinThreshold(); ok {
		_spec.AddField(selectionevent.FieldMinThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(selectionevent.FieldSelected, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelected(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, selectionevent.FieldSelected, value)
		})
	}
	if _u.mutation.SelectedCleared() {
		_spec.ClearField(selectionevent.FieldSelected, field.TypeJSON)
	}
	_node = &SelectionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
