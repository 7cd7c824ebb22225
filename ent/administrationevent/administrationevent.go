// Code generated by ent, DO NOT EDIT.

package administrationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the administrationevent type in the database.
	Label = "administration_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldModuleName holds the string denoting the module_name field in the database.
	FieldModuleName = "module_name"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldPercentage holds the string denoting the percentage field in the database.
	FieldPercentage = "percentage"
	// FieldCriteriaMet holds the string denoting the criteria_met field in the database.
	FieldCriteriaMet = "criteria_met"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldSymptomCount holds the string denoting the symptom_count field in the database.
	FieldSymptomCount = "symptom_count"
	// FieldAdminTimeMins holds the string denoting the admin_time_mins field in the database.
	FieldAdminTimeMins = "admin_time_mins"
	// FieldQuestionScores holds the string denoting the question_scores field in the database.
	FieldQuestionScores = "question_scores"
	// Table holds the table name of the administrationevent in the database.
	Table = "administration_events"
)

// Columns holds all SQL columns for administrationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAssessmentID,
	FieldModuleID,
	FieldModuleName,
	FieldTotalScore,
	FieldMaxScore,
	FieldPercentage,
	FieldCriteriaMet,
	FieldSeverity,
	FieldSymptomCount,
	FieldAdminTimeMins,
	FieldQuestionScores,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
	// DefaultSymptomCount holds the default value on creation for the "symptom_count" field.
	DefaultSymptomCount int
	// DefaultAdminTimeMins holds the default value on creation for the "admin_time_mins" field.
	DefaultAdminTimeMins int
)

// OrderOption defines the ordering options for the AdministrationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByModuleName orders the results by the module_name field.
func ByModuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleName, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByPercentage orders the results by the percentage field.
func ByPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentage, opts...).ToFunc()
}

// ByCriteriaMet orders the results by the criteria_met field.
func ByCriteriaMet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriteriaMet, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// BySymptomCount orders the results by the symptom_count field.
func BySymptomCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymptomCount, opts...).ToFunc()
}

// ByAdminTimeMins orders the results by the admin_time_mins field.
func ByAdminTimeMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminTimeMins, opts...).ToFunc()
}
