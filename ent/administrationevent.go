// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/administrationevent"
)

// AdministrationEvent is the model entity for the AdministrationEvent schema.
type AdministrationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping selection, administration, and risk events
	AssessmentID string `json:"assessment_id,omitempty"`
	// Administered module, e.g. MDD, GAD
	ModuleID string `json:"module_id,omitempty"`
	// ModuleName holds the value of the "module_name" field.
	ModuleName string `json:"module_name,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore float64 `json:"total_score,omitempty"`
	// MaxScore holds the value of the "max_score" field.
	MaxScore float64 `json:"max_score,omitempty"`
	// total_score / max_score in [0,1]
	Percentage float64 `json:"percentage,omitempty"`
	// CriteriaMet holds the value of the "criteria_met" field.
	CriteriaMet bool `json:"criteria_met,omitempty"`
	// mild, moderate, severe, extreme, or empty when criteria unmet
	Severity string `json:"severity,omitempty"`
	// Symptoms extracted from positive responses
	SymptomCount int `json:"symptom_count,omitempty"`
	// AdminTimeMins holds the value of the "admin_time_mins" field.
	AdminTimeMins int `json:"admin_time_mins,omitempty"`
	// Per-question normalized scores
	QuestionScores map[string]float64 `json:"question_scores,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdministrationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case administrationevent.FieldQuestionScores:
			values[i] = new([]byte)
		case administrationevent.FieldCriteriaMet:
			values[i] = new(sql.NullBool)
		case administrationevent.FieldTotalScore, administrationevent.FieldMaxScore, administrationevent.FieldPercentage:
			values[i] = new(sql.NullFloat64)
		case administrationevent.FieldID, administrationevent.FieldSequence, administrationevent.FieldSymptomCount, administrationevent.FieldAdminTimeMins:
			values[i] = new(sql.NullInt64)
		case administrationevent.FieldAssessmentID, administrationevent.FieldModuleID, administrationevent.FieldModuleName, administrationevent.FieldSeverity:
			values[i] = new(sql.NullString)
		case administrationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdministrationEvent fields.
func (_m *AdministrationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case administrationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case administrationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case administrationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case administrationevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case administrationevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case administrationevent.FieldModuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_name", values[i])
			} else if value.Valid {
				_m.ModuleName = value.String
			}
		case administrationevent.FieldTotalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = value.Float64
			}
		case administrationevent.FieldMaxScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = value.Float64
			}
		case administrationevent.FieldPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = value.Float64
			}
		case administrationevent.FieldCriteriaMet:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field criteria_met", values[i])
			} else if value.Valid {
				_m.CriteriaMet = value.Bool
			}
		case administrationevent.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case administrationevent.FieldSymptomCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field symptom_count", values[i])
			} else if value.Valid {
				_m.SymptomCount = int(value.Int64)
			}
		case administrationevent.FieldAdminTimeMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_time_mins", values[i])
			} else if value.Valid {
				_m.AdminTimeMins = int(value.Int64)
			}
		case administrationevent.FieldQuestionScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionScores); err != nil {
					return fmt.Errorf("unmarshal field question_scores: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdministrationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdministrationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdministrationEvent.
// Note that you need to call AdministrationEvent.Unwrap() before calling this method if this AdministrationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdministrationEvent) Update() *AdministrationEventUpdateOne {
	return NewAdministrationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdministrationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdministrationEvent) Unwrap() *AdministrationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdministrationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdministrationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdministrationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("module_name=")
	builder.WriteString(_m.ModuleName)
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("criteria_met=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriteriaMet))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("symptom_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SymptomCount))
	builder.WriteString(", ")
	builder.WriteString("admin_time_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdminTimeMins))
	builder.WriteString(", ")
	builder.WriteString("question_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionScores))
	builder.WriteByte(')')
	return builder.String()
}

// AdministrationEvents is a parsable slice of AdministrationEvent.
type AdministrationEvents []*AdministrationEvent
