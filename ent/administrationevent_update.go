// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksuri/mindtriage/ent/administrationevent"
	"github.com/ksuri/mindtriage/ent/predicate"
)

// AdministrationEventUpdate is the builder for updating AdministrationEvent entities.
type AdministrationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdministrationEventMutation
}

// Where appends a list predicates to the AdministrationEventUpdate builder.
func (_u *AdministrationEventUpdate) Where(ps ...predicate.AdministrationEvent) *AdministrationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AdministrationEventUpdate) SetAssessmentID(v string) *AdministrationEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableAssessmentID(v *string) *AdministrationEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *AdministrationEventUpdate) SetModuleID(v string) *AdministrationEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableModuleID(v *string) *AdministrationEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *AdministrationEventUpdate) SetModuleName(v string) *AdministrationEventUpdate {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableModuleName(v *string) *AdministrationEventUpdate {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AdministrationEventUpdate) SetTotalScore(v float64) *AdministrationEventUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableTotalScore(v *float64) *AdministrationEventUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AdministrationEventUpdate) AddTotalScore(v float64) *AdministrationEventUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AdministrationEventUpdate) SetMaxScore(v float64) *AdministrationEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableMaxScore(v *float64) *AdministrationEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AdministrationEventUpdate) AddMaxScore(v float64) *AdministrationEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AdministrationEventUpdate) SetPercentage(v float64) *AdministrationEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillablePercentage(v *float64) *AdministrationEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AdministrationEventUpdate) AddPercentage(v float64) *AdministrationEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetCriteriaMet sets the "criteria_met" field.
func (_u *AdministrationEventUpdate) SetCriteriaMet(v bool) *AdministrationEventUpdate {
	_u.mutation.SetCriteriaMet(v)
	return _u
}

// SetNillableCriteriaMet sets the "criteria_met" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableCriteriaMet(v *bool) *AdministrationEventUpdate {
	if v != nil {
		_u.SetCriteriaMet(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AdministrationEventUpdate) SetSeverity(v string) *AdministrationEventUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableSeverity(v *string) *AdministrationEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSymptomCount sets the "symptom_count" field.
func (_u *AdministrationEventUpdate) SetSymptomCount(v int) *AdministrationEventUpdate {
	_u.mutation.ResetSymptomCount()
	_u.mutation.SetSymptomCount(v)
	return _u
}

// SetNillableSymptomCount sets the "symptom_count" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableSymptomCount(v *int) *AdministrationEventUpdate {
	if v != nil {
		_u.SetSymptomCount(*v)
	}
	return _u
}

// AddSymptomCount adds value to the "symptom_count" field.
func (_u *AdministrationEventUpdate) AddSymptomCount(v int) *AdministrationEventUpdate {
	_u.mutation.AddSymptomCount(v)
	return _u
}

// SetAdminTimeMins sets the "admin_time_mins" field.
func (_u *AdministrationEventUpdate) SetAdminTimeMins(v int) *AdministrationEventUpdate {
	_u.mutation.ResetAdminTimeMins()
	_u.mutation.SetAdminTimeMins(v)
	return _u
}

// SetNillableAdminTimeMins sets the "admin_time_mins" field if the given value is not nil.
func (_u *AdministrationEventUpdate) SetNillableAdminTimeMins(v *int) *AdministrationEventUpdate {
	if v != nil {
		_u.SetAdminTimeMins(*v)
	}
	return _u
}

// AddAdminTimeMins adds value to the "admin_time_mins" field.
func (_u *AdministrationEventUpdate) AddAdminTimeMins(v int) *AdministrationEventUpdate {
	_u.mutation.AddAdminTimeMins(v)
	return _u
}

// SetQuestionScores sets the "question_scores" field.
func (_u *AdministrationEventUpdate) SetQuestionScores(v map[string]float64) *AdministrationEventUpdate {
	_u.mutation.SetQuestionScores(v)
	return _u
}

// ClearQuestionScores clears the value of the "question_scores" field.
func (_u *AdministrationEventUpdate) ClearQuestionScores() *AdministrationEventUpdate {
	_u.mutation.ClearQuestionScores()
	return _u
}

// Mutation returns the AdministrationEventMutation object of the builder.
func (_u *AdministrationEventUpdate) Mutation() *AdministrationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdministrationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdministrationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdministrationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdministrationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AdministrationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(administrationevent.Table, administrationevent.Columns, sqlgraph.NewFieldSpec(administrationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(administrationevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(administrationevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(administrationevent.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(administrationevent.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(administrationevent.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(administrationevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(administrationevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(administrationevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(administrationevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriteriaMet(); ok {
		_spec.SetField(administrationevent.FieldCriteriaMet, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(administrationevent.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SymptomCount(); ok {
		_spec.SetField(administrationevent.FieldSymptomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSymptomCount(); ok {
		_spec.AddField(administrationevent.FieldSymptomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdminTimeMins(); ok {
		_spec.SetField(administrationevent.FieldAdminTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdminTimeMins(); ok {
		_spec.AddField(administrationevent.FieldAdminTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionScores(); ok {
		_spec.SetField(administrationevent.FieldQuestionScores, field.TypeJSON, value)
	}
	if _u.mutation.QuestionScoresCleared() {
		_spec.ClearField(administrationevent.FieldQuestionScores, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{administrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdministrationEventUpdateOne is the builder for updating a single AdministrationEvent entity.
type AdministrationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdministrationEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AdministrationEventUpdateOne) SetAssessmentID(v string) *AdministrationEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableAssessmentID(v *string) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *AdministrationEventUpdateOne) SetModuleID(v string) *AdministrationEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableModuleID(v *string) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *AdministrationEventUpdateOne) SetModuleName(v string) *AdministrationEventUpdateOne {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableModuleName(v *string) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AdministrationEventUpdateOne) SetTotalScore(v float64) *AdministrationEventUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableTotalScore(v *float64) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AdministrationEventUpdateOne) AddTotalScore(v float64) *AdministrationEventUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AdministrationEventUpdateOne) SetMaxScore(v float64) *AdministrationEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableMaxScore(v *float64) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AdministrationEventUpdateOne) AddMaxScore(v float64) *AdministrationEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *AdministrationEventUpdateOne) SetPercentage(v float64) *AdministrationEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillablePercentage(v *float64) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *AdministrationEventUpdateOne) AddPercentage(v float64) *AdministrationEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetCriteriaMet sets the "criteria_met" field.
func (_u *AdministrationEventUpdateOne) SetCriteriaMet(v bool) *AdministrationEventUpdateOne {
	_u.mutation.SetCriteriaMet(v)
	return _u
}

// SetNillableCriteriaMet sets the "criteria_met" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableCriteriaMet(v *bool) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetCriteriaMet(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AdministrationEventUpdateOne) SetSeverity(v string) *AdministrationEventUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableSeverity(v *string) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSymptomCount sets the "symptom_count" field.
func (_u *AdministrationEventUpdateOne) SetSymptomCount(v int) *AdministrationEventUpdateOne {
	_u.mutation.ResetSymptomCount()
	_u.mutation.SetSymptomCount(v)
	return _u
}

// SetNillableSymptomCount sets the "symptom_count" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableSymptomCount(v *int) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetSymptomCount(*v)
	}
	return _u
}

// AddSymptomCount adds value to the "symptom_count" field.
func (_u *AdministrationEventUpdateOne) AddSymptomCount(v int) *AdministrationEventUpdateOne {
	_u.mutation.AddSymptomCount(v)
	return _u
}

// SetAdminTimeMins sets the "admin_time_mins" field.
func (_u *AdministrationEventUpdateOne) SetAdminTimeMins(v int) *AdministrationEventUpdateOne {
	_u.mutation.ResetAdminTimeMins()
	_u.mutation.SetAdminTimeMins(v)
	return _u
}

// SetNillableAdminTimeMins sets the "admin_time_mins" field if the given value is not nil.
func (_u *AdministrationEventUpdateOne) SetNillableAdminTimeMins(v *int) *AdministrationEventUpdateOne {
	if v != nil {
		_u.SetAdminTimeMins(*v)
	}
	return _u
}

// AddAdminTimeMins adds value to the "admin_time_mins" field.
func (_u *AdministrationEventUpdateOne) AddAdminTimeMins(v int) *AdministrationEventUpdateOne {
	_u.mutation.AddAdminTimeMins(v)
	return _u
}

// SetQuestionScores sets the "question_scores" field.
func (_u *AdministrationEventUpdateOne) SetQuestionScores(v map[string]float64) *AdministrationEventUpdateOne {
	_u.mutation.SetQuestionScores(v)
	return _u
}

// ClearQuestionScores clears the value of the "question_scores" field.
func (_u *AdministrationEventUpdateOne) ClearQuestionScores() *AdministrationEventUpdateOne {
	_u.mutation.ClearQuestionScores()
	return _u
}

// Mutation returns the AdministrationEventMutation object of the builder.
func (_u *AdministrationEventUpdateOne) Mutation() *AdministrationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdministrationEventUpdate builder.
func (_u *AdministrationEventUpdateOne) Where(ps ...predicate.AdministrationEvent) *AdministrationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdministrationEventUpdateOne) Select(field string, fields ...string) *AdministrationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdministrationEvent entity.
func (_u *AdministrationEventUpdateOne) Save(ctx context.Context) (*AdministrationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdministrationEventUpdateOne) SaveX(ctx context.Context) *AdministrationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdministrationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdministrationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AdministrationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdministrationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(administrationevent.Table, administrationevent.Columns, sqlgraph.NewFieldSpec(administrationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdministrationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, administrationevent.FieldID)
		for _, f := range fields {
			if !administrationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != administrationevent.FieldID {
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
		_spec.SetField(administrationevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(administrationevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(administrationevent.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(administrationevent.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(administrationevent.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(administrationevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(administrationevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(administrationevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(administrationevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriteriaMet(); ok {
		_spec.SetField(administrationevent.FieldCriteriaMet, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(administrationevent.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SymptomCount(); ok {
		_spec.SetField(administrationevent.FieldSymptomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSymptomCount(); ok {
		_spec.AddField(administrationevent.FieldSymptomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdminTimeMins(); ok {
		_spec.SetField(administrationevent.FieldAdminTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdminTimeMins(); ok {
		_spec.AddField(administrationevent.FieldAdminTimeMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionScores(); ok {
		_spec.SetField(administrationevent.FieldQuestionScores, field.TypeJSON, value)
	}
	if _u.mutation.QuestionScoresCleared() {
		_spec.ClearField(administrationevent.FieldQuestionScores, field.TypeJSON)
	}
	_node = &AdministrationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{administrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
