package store

import (
	"context"
	"fmt"

	"github.com/ksuri/mindtriage/ent"
	"github.com/ksuri/mindtriage/ent/administrationevent"
)

func (r *eventRepo) AppendAdministration(ctx context.Context, data AdministrationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AdministrationEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetModuleID(data.ModuleID).
		SetModuleName(data.ModuleName).
		SetTotalScore(data.TotalScore).
		SetMaxScore(data.MaxScore).
		SetPercentage(data.Percentage).
		SetCriteriaMet(data.CriteriaMet).
		SetSeverity(data.Severity).
		SetSymptomCount(data.SymptomCount).
		SetAdminTimeMins(data.AdminTimeMins)

	if len(data.QuestionScores) > 0 {
		builder = builder.SetQuestionScores(data.QuestionScores)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save administration event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAdministrations(ctx context.Context, opts QueryOpts) ([]*AdministrationRecord, error) {
	q := r.client.AdministrationEvent.Query()
	if opts.AssessmentID != "" {
		q = q.Where(administrationevent.AssessmentID(opts.AssessmentID))
	}
	if opts.After > 0 {
		q = q.Where(administrationevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(administrationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(administrationevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(administrationevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query administration events: %w", err)
	}

	records := make([]*AdministrationRecord, len(rows))
	for i, row := range rows {
		records[i] = &AdministrationRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AdministrationEventData: AdministrationEventData{
				AssessmentID:   row.AssessmentID,
				ModuleID:       row.ModuleID,
				ModuleName:     row.ModuleName,
				TotalScore:     row.TotalScore,
				MaxScore:       row.MaxScore,
				Percentage:     row.Percentage,
				CriteriaMet:    row.CriteriaMet,
				Severity:       row.Severity,
				SymptomCount:   row.SymptomCount,
				AdminTimeMins:  row.AdminTimeMins,
				QuestionScores: row.QuestionScores,
			},
		}
	}
	return records, nil
}
