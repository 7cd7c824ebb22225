// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ksuri/mindtriage/ent/schema"
	"github.com/ksuri/mindtriage/ent/selectionevent"
)

// SelectionEvent is the model entity for the SelectionEvent schema.
type SelectionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping selection, administration, and risk events
	AssessmentID string `json:"assessment_id,omitempty"`
	// Presenting concern text at selection time
	Concern string `json:"concern,omitempty"`
	// Requested result cap
	MaxModules int `json:"max_modules,omitempty"`
	// Relevancy cutoff applied
	MinThreshold float64 `json:"min_threshold,omitempty"`
	// Ranked modules with scores, highest first
	Selected     []schema.SelectedModule `json:"selected,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SelectionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case selectionevent.FieldSelected:
			values[i] = new([]byte)
		case selectionevent.FieldMinThreshold:
			values[i] = new(sql.NullFloat64)
		case selectionevent.FieldID, selectionevent.FieldSequence, selectionevent.FieldMaxModules:
			values[i] = new(sql.NullInt64)
		case selectionevent.FieldAssessmentID, selectionevent.FieldConcern:
			values[i] = new(sql.NullString)
		case selectionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SelectionEvent fields.
func (_m *SelectionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case selectionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case selectionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case selectionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case selectionevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case selectionevent.FieldConcern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concern", values[i])
			} else if value.Valid {
				_m.Concern = value.String
			}
		case selectionevent.FieldMaxModules:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_modules", values[i])
			} else if value.Valid {
				_m.MaxModules = int(value.Int64)
			}
		case selectionevent.FieldMinThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_threshold", values[i])
			} else if value.Valid {
				_m.MinThreshold = value.Float64
			}
		case selectionevent.FieldSelected:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field selected", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Selected); err != nil {
					return fmt.Errorf("unmarshal field selected: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SelectionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SelectionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SelectionEvent.
// Note that you need to call SelectionEvent.Unwrap() before calling this method if this SelectionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SelectionEvent) Update() *SelectionEventUpdateOne {
	return NewSelectionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SelectionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SelectionEvent) Unwrap() *SelectionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SelectionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SelectionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SelectionEvent(")
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
	builder.WriteString("concern=")
	builder.WriteString(_m.Concern)
	builder.WriteString(", ")
	builder.WriteString("max_modules=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxModules))
	builder.WriteString(", ")
	builder.WriteString("min_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinThreshold))
	builder.WriteString(", ")
	builder.WriteString("selected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Selected))
	builder.WriteByte(')')
	return builder.String()
}

// SelectionEvents is a parsable slice of SelectionEvent.
type SelectionEvents []*SelectionEvent
