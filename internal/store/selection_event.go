package store

import (
	"context"
	"fmt"

	"github.com/ksuri/mindtriage/ent"
	"github.com/ksuri/mindtriage/ent/selectionevent"
	entschema "github.com/ksuri/mindtriage/ent/schema"
)

func (r *eventRepo) AppendSelection(ctx context.Context, data SelectionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var selected []entschema.SelectedModule
	for _, m := range data.Selected {
		selected = append(selected, entschema.SelectedModule{
			ModuleID:   m.ModuleID,
			ModuleName: m.ModuleName,
			Score:      m.Score,
			Confidence: m.Confidence,
			Priority:   m.Priority,
		})
	}

	builder := r.client.SelectionEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetConcern(data.Concern).
		SetMaxModules(data.MaxModules).
		SetMinThreshold(data.MinThreshold)

	if len(selected) > 0 {
		builder = builder.SetSelected(selected)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save selection event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySelections(ctx context.Context, opts QueryOpts) ([]*SelectionRecord, error) {
	q := r.client.SelectionEvent.Query()
	if opts.AssessmentID != "" {
		q = q.Where(selectionevent.AssessmentID(opts.AssessmentID))
	}
	if opts.After > 0 {
		q = q.Where(selectionevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(selectionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(selectionevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(selectionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query selection events: %w", err)
	}

	records := make([]*SelectionRecord, len(rows))
	for i, row := range rows {
		var selected []SelectedModule
		for _, m := range row.Selected {
			selected = append(selected, SelectedModule{
				ModuleID:   m.ModuleID,
				ModuleName: m.ModuleName,
				Score:      m.Score,
				Confidence: m.Confidence,
				Priority:   m.Priority,
			})
		}
		records[i] = &SelectionRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			SelectionEventData: SelectionEventData{
				AssessmentID: row.AssessmentID,
				Concern:      row.Concern,
				MaxModules:   row.MaxModules,
				MinThreshold: row.MinThreshold,
				Selected:     selected,
			},
		}
	}
	return records, nil
}
