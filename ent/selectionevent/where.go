// Code generated by ent, DO NOT EDIT.

package selectionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// Concern applies equality check predicate on the "concern" field. It's identical to ConcernEQ.
func Concern(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldConcern, v))
}

// MaxModules applies equality check predicate on the "max_modules" field. It's identical to MaxModulesEQ.
func MaxModules(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldMaxModules, v))
}

// MinThreshold applies equality check predicate on the "min_threshold" field. It's identical to MinThresholdEQ.
func MinThreshold(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldMinThreshold, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// ConcernEQ applies the EQ predicate on the "concern" field.
func ConcernEQ(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldConcern, v))
}

// ConcernNEQ applies the NEQ predicate on the "concern" field.
func ConcernNEQ(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldConcern, v))
}

// ConcernIn applies the In predicate on the "concern" field.
func ConcernIn(vs ...string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldConcern, vs...))
}

// ConcernNotIn applies the NotIn predicate on the "concern" field.
func ConcernNotIn(vs ...string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldConcern, vs...))
}

// ConcernGT applies the GT predicate on the "concern" field.
func ConcernGT(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldConcern, v))
}

// ConcernGTE applies the GTE predicate on the "concern" field.
func ConcernGTE(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldConcern, v))
}

// ConcernLT applies the LT predicate on the "concern" field.
func ConcernLT(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldConcern, v))
}

// ConcernLTE applies the LTE predicate on the "concern" field.
func ConcernLTE(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldConcern, v))
}

// ConcernContains applies the Contains predicate on the "concern" field.
func ConcernContains(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldContains(FieldConcern, v))
}

// ConcernHasPrefix applies the HasPrefix predicate on the "concern" field.
func ConcernHasPrefix(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldHasPrefix(FieldConcern, v))
}

// ConcernHasSuffix applies the HasSuffix predicate on the "concern" field.
func ConcernHasSuffix(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldHasSuffix(FieldConcern, v))
}

// ConcernEqualFold applies the EqualFold predicate on the "concern" field.
func ConcernEqualFold(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEqualFold(FieldConcern, v))
}

// ConcernContainsFold applies the ContainsFold predicate on the "concern" field.
func ConcernContainsFold(v string) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldContainsFold(FieldConcern, v))
}

// MaxModulesEQ applies the EQ predicate on the "max_modules" field.
func MaxModulesEQ(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldMaxModules, v))
}

// MaxModulesNEQ applies the NEQ predicate on the "max_modules" field.
func MaxModulesNEQ(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldMaxModules, v))
}

// MaxModulesIn applies the In predicate on the "max_modules" field.
func MaxModulesIn(vs ...int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldMaxModules, vs...))
}

// MaxModulesNotIn applies the NotIn predicate on the "max_modules" field.
func MaxModulesNotIn(vs ...int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldMaxModules, vs...))
}

// MaxModulesGT applies the GT predicate on the "max_modules" field.
func MaxModulesGT(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldMaxModules, v))
}

// MaxModulesGTE applies the GTE predicate on the "max_modules" field.
func MaxModulesGTE(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldMaxModules, v))
}

// MaxModulesLT applies the LT predicate on the "max_modules" field.
func MaxModulesLT(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldMaxModules, v))
}

// MaxModulesLTE applies the LTE predicate on the "max_modules" field.
func MaxModulesLTE(v int) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldMaxModules, v))
}

// MinThresholdEQ applies the EQ predicate on the "min_threshold" field.
func MinThresholdEQ(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldEQ(FieldMinThreshold, v))
}

// MinThresholdNEQ applies the NEQ predicate on the "min_threshold" field.
func MinThresholdNEQ(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNEQ(FieldMinThreshold, v))
}

// MinThresholdIn applies the In predicate on the "min_threshold" field.
func MinThresholdIn(vs ...float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIn(FieldMinThreshold, vs...))
}

// MinThresholdNotIn applies the NotIn predicate on the "min_threshold" field.
func MinThresholdNotIn(vs ...float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotIn(FieldMinThreshold, vs...))
}

// MinThresholdGT applies the GT predicate on the "min_threshold" field.
func MinThresholdGT(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGT(FieldMinThreshold, v))
}

// MinThresholdGTE applies the GTE predicate on the "min_threshold" field.
func MinThresholdGTE(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldGTE(FieldMinThreshold, v))
}

// MinThresholdLT applies the LT predicate on the "min_threshold" field.
func MinThresholdLT(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLT(FieldMinThreshold, v))
}

// MinThresholdLTE applies the LTE predicate on the "min_threshold" field.
func MinThresholdLTE(v float64) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldLTE(FieldMinThreshold, v))
}

// SelectedIsNil applies the IsNil predicate on the "selected" field.
func SelectedIsNil() predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldIsNull(FieldSelected))
}

// SelectedNotNil applies the NotNil predicate on the "selected" field.
func SelectedNotNil() predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.FieldNotNull(FieldSelected))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SelectionEvent) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SelectionEvent) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SelectionEvent) predicate.SelectionEvent {
	return predicate.SelectionEvent(sql.NotPredicates(p))
}
