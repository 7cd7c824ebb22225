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

// symptomSignal matches reported symptoms against the module's keyword
// fingerprint. Each keyword hit contributes its fingerprint weight scaled
// by the symptom's reported severity; the sum is normalized by the
// fingerprint's total weight.
type symptomSignal struct {
	idx *fingerprint.Index
}

func (s *symptomSignal) Name() string { return "symptom_match" }

func (s *symptomSignal) Evaluate(_ context.Context, m *registry.Module, p *Patient) (float64, []Reason, error) {
	fp := s.idx.Get(m.ID)
	if fp == nil || len(p.Symptoms) == 0 {
		return 0, nil, nil
	}

	type hit struct {
		keyword string
		score   float64
	}
	var hits []hit
	var total float64

	for _, sym := range p.Symptoms {
		mult := severityMultiplier(sym.Severity)
		for _, kw := range keywords.Extract(sym.Name + " " + sym.Detail) {
			if w, ok := fp.Weights[kw]; ok {
				score := w * mult
				total += score
				hits = append(hits, hit{kw, score})
			}
		}
	}

	if fp.Total == 0 {
		return 0, nil, nil
	}
	score := total / fp.Total
	if score > 1 {
		score = 1
	}

	var reasons []Reason
	if len(hits) > 0 {
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
		if len(hits) > 3 {
			hits = hits[:3]
		}
		names := make([]string, len(hits))
		for i, h := range hits {
			names[i] = h.keyword
		}
		reasons = append(reasons, Reason{
			Kind:        ReasonSymptomMatch,
			Score:       score,
			Explanation: fmt.Sprintf("Symptom keywords match: %s", strings.Join(names, ", ")),
		})
	}
	return score, reasons, nil
}

// severityMultiplier scales a keyword hit by the symptom's reported
// severity wording.
func severityMultiplier(severity string) float64 {
	s := strings.ToLower(severity)
	switch {
	case strings.Contains(s, "severe"):
		return 1.5
	case strings.Contains(s, "moderate"):
		return 1.2
	default:
		return 1.0
	}
}
