package store

import (
	"context"
	"fmt"

	"github.com/ksuri/mindtriage/ent"
	"github.com/ksuri/mindtriage/ent/patientsnapshot"
)

// patientSnapshotRepo implements PatientSnapshotRepo using the ent client.
type patientSnapshotRepo struct {
	client *ent.Client
}

func (r *patientSnapshotRepo) Save(ctx context.Context, snap *PatientSnapshot) error {
	_, err := r.client.PatientSnapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetAssessmentID(snap.AssessmentID).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save patient snapshot: %w", err)
	}
	return nil
}

func (r *patientSnapshotRepo) Latest(ctx context.Context) (*PatientSnapshot, error) {
	row, err := r.client.PatientSnapshot.Query().
		Order(ent.Desc(patientsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest patient snapshot: %w", err)
	}
	return snapshotFromRow(row), nil
}

func (r *patientSnapshotRepo) ByAssessment(ctx context.Context, assessmentID string) (*PatientSnapshot, error) {
	row, err := r.client.PatientSnapshot.Query().
		Where(patientsnapshot.AssessmentID(assessmentID)).
		Order(ent.Desc(patientsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query patient snapshot for %s: %w", assessmentID, err)
	}
	return snapshotFromRow(row), nil
}

func (r *patientSnapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	rows, err := r.client.PatientSnapshot.Query().
		Order(ent.Desc(patientsnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := rows[0].Timestamp
	_, err = r.client.PatientSnapshot.Delete().
		Where(patientsnapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune patient snapshots: %w", err)
	}
	return nil
}

func snapshotFromRow(row *ent.PatientSnapshot) *PatientSnapshot {
	return &PatientSnapshot{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		AssessmentID: row.AssessmentID,
		Data:         row.Data,
	}
}
