// Code generated by ent, DO NOT EDIT.

package selectionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the selectionevent type in the database.
	Label = "selection_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldConcern holds the string denoting the concern field in the database.
	FieldConcern = "concern"
	// FieldMaxModules holds the string denoting the max_modules field in the database.
	FieldMaxModules = "max_modules"
	// FieldMinThreshold holds the string denoting the min_threshold field in the database.
	FieldMinThreshold = "min_threshold"
	// FieldSelected holds the string denoting the selected field in the database.
	FieldSelected = "selected"
	// Table holds the table name of the selectionevent in the database.
	Table = "selection_events"
)

// Columns holds all SQL columns for selectionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAssessmentID,
	FieldConcern,
	FieldMaxModules,
	FieldMinThreshold,
	FieldSelected,
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
)

// OrderOption defines the ordering options for the SelectionEvent queries.
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

// ByConcern orders the results by the concern field.
func ByConcern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcern, opts...).ToFunc()
}

// ByMaxModules orders the results by the max_modules field.
func ByMaxModules(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxModules, opts...).ToFunc()
}

// ByMinThreshold orders the results by the min_threshold field.
func ByMinThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinThreshold, opts...).ToFunc()
}
