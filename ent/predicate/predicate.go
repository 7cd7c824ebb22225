// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdministrationEvent is the predicate function for administrationevent builders.
type AdministrationEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PatientSnapshot is the predicate function for patientsnapshot builders.
type PatientSnapshot func(*sql.Selector)

// RiskEvent is the predicate function for riskevent builders.
type RiskEvent func(*sql.Selector)

// SelectionEvent is the predicate function for selectionevent builders.
type SelectionEvent func(*sql.Selector)
