package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ExportData is the JSON shape of a full history export. Events of all
// types are included so a clinician can reconstruct the assessment
// timeline from the sequence numbers.
type ExportData struct {
	ExportedAt      time.Time               `json:"exported_at"`
	Selections      []*SelectionRecord      `json:"selections,omitempty"`
	Administrations []*AdministrationRecord `json:"administrations,omitempty"`
	Risks           []*RiskRecord           `json:"risk_assessments,omitempty"`
	Snapshots       []*PatientSnapshot      `json:"patient_snapshots,omitempty"`
}

// Export collects all stored assessment events into one JSON document.
// opts applies to every event type; LLM request bodies are excluded.
func Export(ctx context.Context, s *Store, opts QueryOpts) ([]byte, error) {
	repo := s.EventRepo()

	selections, err := repo.QuerySelections(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("export selections: %w", err)
	}
	administrations, err := repo.QueryAdministrations(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("export administrations: %w", err)
	}
	risks, err := repo.QueryRisks(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("export risk assessments: %w", err)
	}

	var snapshots []*PatientSnapshot
	if opts.AssessmentID != "" {
		snap, err := s.PatientSnapshotRepo().ByAssessment(ctx, opts.AssessmentID)
		if err != nil {
			return nil, fmt.Errorf("export patient snapshot: %w", err)
		}
		if snap != nil {
			snapshots = append(snapshots, snap)
		}
	} else if latest, err := s.PatientSnapshotRepo().Latest(ctx); err == nil && latest != nil {
		snapshots = append(snapshots, latest)
	}

	data := ExportData{
		ExportedAt:      time.Now().UTC(),
		Selections:      selections,
		Administrations: administrations,
		Risks:           risks,
		Snapshots:       snapshots,
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}
