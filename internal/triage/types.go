// Package triage ranks diagnostic interview modules against a patient's
// presentation. Six weighted signals feed a per-module relevancy score
// with an explanation trail; the selector applies threshold, severity
// prioritization, and truncation across the whole registry.
package triage

// Symptom is one patient-reported symptom with free-text detail.
type Symptom struct {
	Name     string
	Detail   string
	Severity string // free text, e.g. "severe", "moderate"
}

// Patient is the transient per-request snapshot the engine scores against.
// The engine is a pure function of this snapshot plus the static indices;
// nothing here is persisted.
type Patient struct {
	Age    int // 0 = unknown
	Gender string

	PreviousDiagnoses []string
	FamilyHistory     []string

	Concern        string
	ChiefComplaint string

	Symptoms      []Symptom
	SeverityLevel string
	OnsetTime     string
	Triggers      []string
	Stressors     []string
}

// ReasonKind identifies which signal produced an explanation.
type ReasonKind int

const (
	ReasonSymptomMatch ReasonKind = iota
	ReasonCriteriaMatch
	ReasonConcernMatch
	ReasonDemographicMatch
	ReasonComorbidityRisk
	ReasonTemporalMatch
	ReasonSeverityMatch
)

func (k ReasonKind) String() string {
	switch k {
	case ReasonSymptomMatch:
		return "symptom_match"
	case ReasonCriteriaMatch:
		return "criteria_match"
	case ReasonConcernMatch:
		return "presenting_concern_match"
	case ReasonDemographicMatch:
		return "demographic_match"
	case ReasonComorbidityRisk:
		return "comorbidity_risk"
	case ReasonTemporalMatch:
		return "temporal_match"
	case ReasonSeverityMatch:
		return "severity_match"
	default:
		return "unknown"
	}
}

// Reason is one entry in a relevancy explanation trail.
type Reason struct {
	Kind        ReasonKind
	Score       float64
	Explanation string
}

// Priority is the administration urgency tier for a selected module.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// Relevancy is one module's scored triage result. Immutable once returned.
type Relevancy struct {
	ModuleID          string
	ModuleName        string
	Score             float64
	Confidence        float64
	Priority          Priority
	Reasons           []Reason
	EstimatedTimeMins int
}
