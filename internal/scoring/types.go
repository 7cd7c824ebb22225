// Package scoring turns a completed module administration into a
// diagnostic-threshold decision, a severity tier, and extracted symptom
// summaries. Responses arrive as loosely typed values (JSON input), are
// validated against the question definitions, and scored onto [0,1].
package scoring

import (
	"time"

	"github.com/ksuri/mindtriage/internal/registry"
)

// Responses maps question IDs to raw answers. Accepted value shapes per
// response type: bool/string/number for yes-no, numbers for scales,
// a string or []string for choices, strings for text and dates.
type Responses map[string]any

// SymptomExtraction is a symptom recovered from a positive response.
type SymptomExtraction struct {
	Name        string
	Present     bool
	Severity    *registry.Severity
	Frequency   string
	Triggers    []string
	ImpactAreas []string
	Confidence  float64
}

// Result is the outcome of one completed module administration.
type Result struct {
	ModuleID         string
	ModuleName       string
	TotalScore       float64
	MaxPossibleScore float64
	// Percentage is TotalScore/MaxPossibleScore in [0,1].
	Percentage  float64
	CriteriaMet bool
	// Severity is nil when diagnostic criteria are not met.
	Severity          *registry.Severity
	SymptomsPresent   []SymptomExtraction
	PerQuestionScores map[string]float64
	// AdministrationTimeMins estimates interview time from response count.
	AdministrationTimeMins int
	CompletedAt            time.Time
}

// State tracks an administration through its lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
