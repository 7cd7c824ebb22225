// Code generated by ent, DO NOT EDIT.

package riskevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskValue applies equality check predicate on the "risk_value" field. It's identical to RiskValueEQ.
func RiskValue(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldRiskValue, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldRationale, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldContainsFold(FieldRiskLevel, v))
}

// RiskValueEQ applies the EQ predicate on the "risk_value" field.
func RiskValueEQ(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldRiskValue, v))
}

// RiskValueNEQ applies the NEQ predicate on the "risk_value" field.
func RiskValueNEQ(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldRiskValue, v))
}

// RiskValueIn applies the In predicate on the "risk_value" field.
func RiskValueIn(vs ...float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldRiskValue, vs...))
}

// RiskValueNotIn applies the NotIn predicate on the "risk_value" field.
func RiskValueNotIn(vs ...float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldRiskValue, vs...))
}

// RiskValueGT applies the GT predicate on the "risk_value" field.
func RiskValueGT(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldRiskValue, v))
}

// RiskValueGTE applies the GTE predicate on the "risk_value" field.
func RiskValueGTE(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldRiskValue, v))
}

// RiskValueLT applies the LT predicate on the "risk_value" field.
func RiskValueLT(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldRiskValue, v))
}

// RiskValueLTE applies the LTE predicate on the "risk_value" field.
func RiskValueLTE(v float64) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldRiskValue, v))
}

// FactorsIsNil applies the IsNil predicate on the "factors" field.
func FactorsIsNil() predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIsNull(FieldFactors))
}

// FactorsNotNil applies the NotNil predicate on the "factors" field.
func FactorsNotNil() predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotNull(FieldFactors))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.RiskEvent {
	return predicate.RiskEvent(sql.FieldContainsFold(FieldRationale, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RiskEvent) predicate.RiskEvent {
	return predicate.RiskEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RiskEvent) predicate.RiskEvent {
	return predicate.RiskEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RiskEvent) predicate.RiskEvent {
	return predicate.RiskEvent(sql.NotPredicates(p))
}
