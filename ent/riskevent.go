// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/riskevent"
)

// RiskEvent is the model entity for the RiskEvent schema.
type RiskEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping selection, administration, and risk events
	AssessmentID string `json:"assessment_id,omitempty"`
	// low, moderate, high, critical
	RiskLevel string `json:"risk_level,omitempty"`
	// Clamped aggregate in [0,1]
	RiskValue float64 `json:"risk_value,omitempty"`
	// Contributing factor names in evaluation order
	Factors []string `json:"factors,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale    string `json:"rationale,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RiskEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case riskevent.FieldFactors:
			values[i] = new([]byte)
		case riskevent.FieldRiskValue:
			values[i] = new(sql.NullFloat64)
		case riskevent.FieldID, riskevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case riskevent.FieldAssessmentID, riskevent.FieldRiskLevel, riskevent.FieldRationale:
			values[i] = new(sql.NullString)
		case riskevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RiskEvent fields.
func (_m *RiskEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case riskevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case riskevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case riskevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case riskevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case riskevent.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case riskevent.FieldRiskValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_value", values[i])
			} else if value.Valid {
				_m.RiskValue = value.Float64
			}
		case riskevent.FieldFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Factors); err != nil {
					return fmt.Errorf("unmarshal field factors: %w", err)
				}
			}
		case riskevent.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RiskEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RiskEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RiskEvent.
// Note that you need to call RiskEvent.Unwrap() before calling this method if this RiskEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RiskEvent) Update() *RiskEventUpdateOne {
	return NewRiskEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RiskEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RiskEvent) Unwrap() *RiskEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RiskEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RiskEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RiskEvent(")
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
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("risk_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskValue))
	builder.WriteString(", ")
	builder.WriteString("factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Factors))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteByte(')')
	return builder.String()
}

// RiskEvents is a parsable slice of RiskEvent.
type RiskEvents []*RiskEvent
