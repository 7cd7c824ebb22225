package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit        int       // max results (0 = unlimited)
	After        int64     // sequence > After
	Before       int64     // sequence < Before
	From         time.Time // timestamp >= From
	To           time.Time // timestamp <= To
	AssessmentID string    // filter by assessment UUID where applicable
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SelectedModule is one ranked entry of a recorded selection.
type SelectedModule struct {
	ModuleID   string
	ModuleName string
	Score      float64
	Confidence float64
	Priority   string
}

// SelectionEventData captures one module-selection run.
type SelectionEventData struct {
	AssessmentID string
	Concern      string
	MaxModules   int
	MinThreshold float64
	Selected     []SelectedModule
}

// SelectionRecord is a stored selection event.
type SelectionRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SelectionEventData
}

// AdministrationEventData captures one completed module administration.
type AdministrationEventData struct {
	AssessmentID   string
	ModuleID       string
	ModuleName     string
	TotalScore     float64
	MaxScore       float64
	Percentage     float64
	CriteriaMet    bool
	Severity       string
	SymptomCount   int
	AdminTimeMins  int
	QuestionScores map[string]float64
}

// AdministrationRecord is a stored administration event.
type AdministrationRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AdministrationEventData
}

// RiskEventData captures one safety-risk assessment outcome.
type RiskEventData struct {
	AssessmentID string
	Level        string
	Value        float64
	Factors      []string
	Rationale    string
}

// RiskRecord is a stored risk event.
type RiskRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RiskEventData
}

// PatientSnapshot is the structured patient input captured alongside a
// selection run. Data round-trips through JSON.
type PatientSnapshot struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	AssessmentID string
	Data         map[string]any
}

// PatientSnapshotRepo manages stored patient snapshots.
type PatientSnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *PatientSnapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*PatientSnapshot, error)

	// ByAssessment returns the snapshot for an assessment, or nil.
	ByAssessment(ctx context.Context, assessmentID string) (*PatientSnapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendSelection records a module-selection run.
	AppendSelection(ctx context.Context, data SelectionEventData) error

	// QuerySelections returns selection events, newest first.
	QuerySelections(ctx context.Context, opts QueryOpts) ([]*SelectionRecord, error)

	// AppendAdministration records a completed module administration.
	AppendAdministration(ctx context.Context, data AdministrationEventData) error

	// QueryAdministrations returns administration events, newest first.
	QueryAdministrations(ctx context.Context, opts QueryOpts) ([]*AdministrationRecord, error)

	// AppendRisk records a safety-risk assessment outcome.
	AppendRisk(ctx context.Context, data RiskEventData) error

	// QueryRisks returns risk events, newest first.
	QueryRisks(ctx context.Context, opts QueryOpts) ([]*RiskRecord, error)
}
