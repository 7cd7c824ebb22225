// Package risk aggregates suicide and safety risk from a structured
// safety screen plus the patient's presenting-concern text.
package risk

import "time"

// Level is a safety-risk tier.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelHigh
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelModerate:
		return "moderate"
	case LevelHigh:
		return "high"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Answers holds the structured safety-screen answer set. String fields
// carry the raw answer text so plan and attempt details survive into the
// rationale; booleans capture the yes/no screens directly.
type Answers struct {
	SuicideIdeation   bool
	SuicidePlan       string
	SuicideIntent     bool
	PastAttempts      string
	SelfHarm          string
	HomicidalThoughts bool
	AccessMeans       string
	ProtectiveFactors string
}

// Assessment is the outcome of one safety screen.
type Assessment struct {
	Level      Level
	Value      float64
	Factors    []string
	Rationale  string
	AssessedAt time.Time
}
