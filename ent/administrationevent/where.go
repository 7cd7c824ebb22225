// Code generated by ent, DO NOT EDIT.

package administrationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleName applies equality check predicate on the "module_name" field. It's identical to ModuleNameEQ.
func ModuleName(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldModuleName, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldTotalScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldMaxScore, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldPercentage, v))
}

// CriteriaMet applies equality check predicate on the "criteria_met" field. It's identical to CriteriaMetEQ.
func CriteriaMet(v bool) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldCriteriaMet, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldSeverity, v))
}

// SymptomCount applies equality check predicate on the "symptom_count" field. It's identical to SymptomCountEQ.
func SymptomCount(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldSymptomCount, v))
}

// AdminTimeMins applies equality check predicate on the "admin_time_mins" field. It's identical to AdminTimeMinsEQ.
func AdminTimeMins(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldAdminTimeMins, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// ModuleNameEQ applies the EQ predicate on the "module_name" field.
func ModuleNameEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldModuleName, v))
}

// ModuleNameNEQ applies the NEQ predicate on the "module_name" field.
func ModuleNameNEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldModuleName, v))
}

// ModuleNameIn applies the In predicate on the "module_name" field.
func ModuleNameIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldModuleName, vs...))
}

// ModuleNameNotIn applies the NotIn predicate on the "module_name" field.
func ModuleNameNotIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldModuleName, vs...))
}

// ModuleNameGT applies the GT predicate on the "module_name" field.
func ModuleNameGT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldModuleName, v))
}

// ModuleNameGTE applies the GTE predicate on the "module_name" field.
func ModuleNameGTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldModuleName, v))
}

// ModuleNameLT applies the LT predicate on the "module_name" field.
func ModuleNameLT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldModuleName, v))
}

// ModuleNameLTE applies the LTE predicate on the "module_name" field.
func ModuleNameLTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldModuleName, v))
}

// ModuleNameContains applies the Contains predicate on the "module_name" field.
func ModuleNameContains(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContains(FieldModuleName, v))
}

// ModuleNameHasPrefix applies the HasPrefix predicate on the "module_name" field.
func ModuleNameHasPrefix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasPrefix(FieldModuleName, v))
}

// ModuleNameHasSuffix applies the HasSuffix predicate on the "module_name" field.
func ModuleNameHasSuffix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasSuffix(FieldModuleName, v))
}

// ModuleNameEqualFold applies the EqualFold predicate on the "module_name" field.
func ModuleNameEqualFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEqualFold(FieldModuleName, v))
}

// ModuleNameContainsFold applies the ContainsFold predicate on the "module_name" field.
func ModuleNameContainsFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContainsFold(FieldModuleName, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldTotalScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldMaxScore, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v float64) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldPercentage, v))
}

// CriteriaMetEQ applies the EQ predicate on the "criteria_met" field.
func CriteriaMetEQ(v bool) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldCriteriaMet, v))
}

// CriteriaMetNEQ applies the NEQ predicate on the "criteria_met" field.
func CriteriaMetNEQ(v bool) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldCriteriaMet, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldContainsFold(FieldSeverity, v))
}

// SymptomCountEQ applies the EQ predicate on the "symptom_count" field.
func SymptomCountEQ(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldSymptomCount, v))
}

// SymptomCountNEQ applies the NEQ predicate on the "symptom_count" field.
func SymptomCountNEQ(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldSymptomCount, v))
}

// SymptomCountIn applies the In predicate on the "symptom_count" field.
func SymptomCountIn(vs ...int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldSymptomCount, vs...))
}

// SymptomCountNotIn applies the NotIn predicate on the "symptom_count" field.
func SymptomCountNotIn(vs ...int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldSymptomCount, vs...))
}

// SymptomCountGT applies the GT predicate on the "symptom_count" field.
func SymptomCountGT(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldSymptomCount, v))
}

// SymptomCountGTE applies the GTE predicate on the "symptom_count" field.
func SymptomCountGTE(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldSymptomCount, v))
}

// SymptomCountLT applies the LT predicate on the "symptom_count" field.
func SymptomCountLT(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldSymptomCount, v))
}

// SymptomCountLTE applies the LTE predicate on the "symptom_count" field.
func SymptomCountLTE(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldSymptomCount, v))
}

// AdminTimeMinsEQ applies the EQ predicate on the "admin_time_mins" field.
func AdminTimeMinsEQ(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldEQ(FieldAdminTimeMins, v))
}

// AdminTimeMinsNEQ applies the NEQ predicate on the "admin_time_mins" field.
func AdminTimeMinsNEQ(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNEQ(FieldAdminTimeMins, v))
}

// AdminTimeMinsIn applies the In predicate on the "admin_time_mins" field.
func AdminTimeMinsIn(vs ...int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIn(FieldAdminTimeMins, vs...))
}

// AdminTimeMinsNotIn applies the NotIn predicate on the "admin_time_mins" field.
func AdminTimeMinsNotIn(vs ...int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotIn(FieldAdminTimeMins, vs...))
}

// AdminTimeMinsGT applies the GT predicate on the "admin_time_mins" field.
func AdminTimeMinsGT(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGT(FieldAdminTimeMins, v))
}

// AdminTimeMinsGTE applies the GTE predicate on the "admin_time_mins" field.
func AdminTimeMinsGTE(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldGTE(FieldAdminTimeMins, v))
}

// AdminTimeMinsLT applies the LT predicate on the "admin_time_mins" field.
func AdminTimeMinsLT(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLT(FieldAdminTimeMins, v))
}

// AdminTimeMinsLTE applies the LTE predicate on the "admin_time_mins" field.
func AdminTimeMinsLTE(v int) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldLTE(FieldAdminTimeMins, v))
}

// QuestionScoresIsNil applies the IsNil predicate on the "question_scores" field.
func QuestionScoresIsNil() predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldIsNull(FieldQuestionScores))
}

// QuestionScoresNotNil applies the NotNil predicate on the "question_scores" field.
func QuestionScoresNotNil() predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.FieldNotNull(FieldQuestionScores))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdministrationEvent) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdministrationEvent) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdministrationEvent) predicate.AdministrationEvent {
	return predicate.AdministrationEvent(sql.NotPredicates(p))
}
