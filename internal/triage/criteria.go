package triage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ksuri/mindtriage/internal/fingerprint"
	"github.com/ksuri/mindtriage/internal/keywords"
	"github.com/ksuri/mindtriage/internal/registry"
)

// criteriaSignal measures how much of the module's diagnostic-criteria
// vocabulary appears in the patient's combined free text. The score is the
// covered fraction of the criteria keyword set.
type criteriaSignal struct {
	idx *fingerprint.Index
}

func (s *criteriaSignal) Name() string { return "criteria_match" }

func (s *criteriaSignal) Evaluate(_ context.Context, m *registry.Module, p *Patient) (float64, []Reason, error) {
	fp := s.idx.Get(m.ID)
	if fp == nil || len(fp.Criteria) == 0 {
		return 0, nil, nil
	}

	patientSet := keywords.Set(patientText(p))

	var matched []string
	for kw := range fp.Criteria {
		if patientSet[kw] {
			matched = append(matched, kw)
		}
	}
	score := float64(len(matched)) / float64(len(fp.Criteria))

	var reasons []Reason
	if len(matched) > 0 {
		sort.Strings(matched)
		if len(matched) > 5 {
			matched = matched[:5]
		}
		reasons = append(reasons, Reason{
			Kind:        ReasonCriteriaMatch,
			Score:       score,
			Explanation: fmt.Sprintf("Diagnostic criteria keywords match: %s", strings.Join(matched, ", ")),
		})
	}
	return score, reasons, nil
}
