// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/patientsnapshot"
	"github.com/ksuri/mindtriage/ent/predicate"
)

// PatientSnapshotUpdate is the builder for updating PatientSnapshot entities.
type PatientSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PatientSnapshotMutation
}

// Where appends a list predicates to the PatientSnapshotUpdate builder.
func (_u *PatientSnapshotUpdate) Where(ps ...predicate.PatientSnapshot) *PatientSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PatientSnapshotUpdate) SetSequence(v int64) *PatientSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PatientSnapshotUpdate) SetNillableSequence(v *int64) *PatientSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PatientSnapshotUpdate) AddSequence(v int64) *PatientSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PatientSnapshotUpdate) SetTimestamp(v time.Time) *PatientSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PatientSnapshotUpdate) SetNillableTimestamp(v *time.Time) *PatientSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *PatientSnapshotUpdate) SetAssessmentID(v string) *PatientSnapshotUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *PatientSnapshotUpdate) SetNillableAssessmentID(v *string) *PatientSnapshotUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PatientSnapshotUpdate) SetData(v map[string]interface{}) *PatientSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PatientSnapshotMutation object of the builder.
func (_u *PatientSnapshotUpdate) Mutation() *PatientSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PatientSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(patientsnapshot.Table, patientsnapshot.Columns, sqlgraph.NewFieldSpec(patientsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(patientsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(patientsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(patientsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(patientsnapshot.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(patientsnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientSnapshotUpdateOne is the builder for updating a single PatientSnapshot entity.
type PatientSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientSnapshotMutation
}

// SetSequence sets the "sequence" field.
func (_u *PatientSnapshotUpdateOne) SetSequence(v int64) *PatientSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PatientSnapshotUpdateOne) SetNillableSequence(v *int64) *PatientSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PatientSnapshotUpdateOne) AddSequence(v int64) *PatientSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PatientSnapshotUpdateOne) SetTimestamp(v time.Time) *PatientSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PatientSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *PatientSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *PatientSnapshotUpdateOne) SetAssessmentID(v string) *PatientSnapshotUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *PatientSnapshotUpdateOne) SetNillableAssessmentID(v *string) *PatientSnapshotUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PatientSnapshotUpdateOne) SetData(v map[string]interface{}) *PatientSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PatientSnapshotMutation object of the builder.
func (_u *PatientSnapshotUpdateOne) Mutation() *PatientSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientSnapshotUpdate builder.
func (_u *PatientSnapshotUpdateOne) Where(ps ...predicate.PatientSnapshot) *PatientSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientSnapshotUpdateOne) Select(field string, fields ...string) *PatientSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientSnapshot entity.
func (_u *PatientSnapshotUpdateOne) Save(ctx context.Context) (*PatientSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientSnapshotUpdateOne) SaveX(ctx context.Context) *PatientSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PatientSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PatientSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(patientsnapshot.Table, patientsnapshot.Columns, sqlgraph.NewFieldSpec(patientsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatientSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientsnapshot.FieldID)
		for _, f := range fields {
			if !patientsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patientsnapshot.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(patientsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(patientsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(patientsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(patientsnapshot.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(patientsnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &PatientSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
