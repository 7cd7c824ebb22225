package triage

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksuri/mindtriage/internal/fingerprint"
	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/ksuri/mindtriage/internal/semantic"
)

// Signal is one independent relevancy judgment. Evaluate returns a score
// in [0,1] and the reasons behind it; an empty reason list means the
// signal found nothing to say about this module.
type Signal interface {
	Name() string
	Evaluate(ctx context.Context, module *registry.Module, p *Patient) (float64, []Reason, error)
}

// weightedSignal pairs a signal with its fixed contribution weight.
type weightedSignal struct {
	signal Signal
	weight float64
}

// crisisKeywords trigger the urgent priority tier regardless of score.
var crisisKeywords = []string{"suicidal", "self-harm", "psychosis", "mania", "severe", "crisis"}

// Scorer computes the relevancy of one module to one patient by combining
// the six signals with fixed weights.
type Scorer struct {
	reg     *registry.Registry
	signals []weightedSignal
}

// NewScorer wires the standard signal chain over a registry and its
// fingerprint index. The semantic scorer drives the presenting-concern
// signal; pass semantic.NewKeywordScorer() for fully local operation.
func NewScorer(reg *registry.Registry, idx *fingerprint.Index, sem semantic.Scorer) *Scorer {
	return &Scorer{
		reg: reg,
		signals: []weightedSignal{
			{&symptomSignal{idx: idx}, 0.30},
			{&criteriaSignal{idx: idx}, 0.25},
			{&concernSignal{sem: sem}, 0.20},
			{&demographicSignal{}, 0.10},
			{&comorbiditySignal{}, 0.10},
			{&temporalSignal{}, 0.05},
		},
	}
}

// ScoreModule evaluates all signals for one module and combines them into
// a Relevancy. Score and confidence are in [0,1].
func (s *Scorer) ScoreModule(ctx context.Context, moduleID string, p *Patient) (*Relevancy, error) {
	m := s.reg.Get(moduleID)
	if m == nil {
		return nil, fmt.Errorf("score module: unknown module %q", moduleID)
	}

	rel := &Relevancy{
		ModuleID:          m.ID,
		ModuleName:        m.Name,
		EstimatedTimeMins: m.EstimatedTimeMins,
	}

	var total, totalWeight float64
	for _, ws := range s.signals {
		score, reasons, err := ws.signal.Evaluate(ctx, m, p)
		if err != nil {
			return nil, fmt.Errorf("signal %s for module %s: %w", ws.signal.Name(), m.ID, err)
		}
		total += score * ws.weight
		totalWeight += ws.weight
		rel.Reasons = append(rel.Reasons, reasons...)
	}
	if totalWeight > 0 {
		rel.Score = total / totalWeight
	}

	rel.Confidence = confidence(rel.Reasons)
	rel.Priority = priorityFor(rel.Score, p)
	return rel, nil
}

// confidence grows with both the strength and the number of reasons,
// saturating at five reasons.
func confidence(reasons []Reason) float64 {
	if len(reasons) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reasons {
		sum += r.Score
	}
	avg := sum / float64(len(reasons))
	countFactor := float64(len(reasons)) / 5
	if countFactor > 1 {
		countFactor = 1
	}
	return avg*0.7 + countFactor*0.3
}

// priorityFor assigns the urgency tier. Crisis wording in the presenting
// text forces urgent; otherwise the score thresholds decide.
func priorityFor(score float64, p *Patient) Priority {
	text := strings.ToLower(p.Concern + " " + p.ChiefComplaint)
	for _, kw := range crisisKeywords {
		if strings.Contains(text, kw) {
			return PriorityUrgent
		}
	}
	switch {
	case score >= 0.8:
		return PriorityHigh
	case score >= 0.6:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// patientText gathers all free text describing the patient's presentation.
func patientText(p *Patient) string {
	var b strings.Builder
	b.WriteString(p.Concern)
	b.WriteString(" ")
	b.WriteString(p.ChiefComplaint)
	for _, sym := range p.Symptoms {
		b.WriteString(" ")
		b.WriteString(sym.Name)
		b.WriteString(" ")
		b.WriteString(sym.Detail)
	}
	return b.String()
}
