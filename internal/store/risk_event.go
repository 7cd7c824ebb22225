package store

import (
	"context"
	"fmt"

	"github.com/ksuri/mindtriage/ent"
	"github.com/ksuri/mindtriage/ent/riskevent"
)

func (r *eventRepo) AppendRisk(ctx context.Context, data RiskEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RiskEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetRiskLevel(data.Level).
		SetRiskValue(data.Value).
		SetRationale(data.Rationale)

	if len(data.Factors) > 0 {
		builder = builder.SetFactors(data.Factors)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save risk event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRisks(ctx context.Context, opts QueryOpts) ([]*RiskRecord, error) {
	q := r.client.RiskEvent.Query()
	if opts.AssessmentID != "" {
		q = q.Where(riskevent.AssessmentID(opts.AssessmentID))
	}
	if opts.After > 0 {
		q = q.Where(riskevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(riskevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(riskevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(riskevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query risk events: %w", err)
	}

	records := make([]*RiskRecord, len(rows))
	for i, row := range rows {
		records[i] = &RiskRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			RiskEventData: RiskEventData{
				AssessmentID: row.AssessmentID,
				Level:        row.RiskLevel,
				Value:        row.RiskValue,
				Factors:      row.Factors,
				Rationale:    row.Rationale,
			},
		}
	}
	return records, nil
}
