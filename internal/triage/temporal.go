package triage

import (
	"context"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

// temporalSignal adds small bonuses when the reported onset pattern or
// severity wording aligns with the disorder's typical course.
type temporalSignal struct{}

func (s *temporalSignal) Name() string { return "temporal_match" }

// acuteOnsetModules present suddenly; gradualOnsetModules build over time.
var (
	acuteOnsetModules   = map[string]bool{"PANIC": true, "PTSD": true, "ADJUSTMENT": true}
	gradualOnsetModules = map[string]bool{"MDD": true, "GAD": true, "SOCIAL_ANXIETY": true}
	highImpactModules   = map[string]bool{"MDD": true, "BIPOLAR": true, "PTSD": true}
)

func (s *temporalSignal) Evaluate(_ context.Context, m *registry.Module, p *Patient) (float64, []Reason, error) {
	var score float64
	var reasons []Reason

	if p.OnsetTime != "" {
		onset := strings.ToLower(p.OnsetTime)
		switch {
		case strings.Contains(onset, "sudden") || strings.Contains(onset, "acute"):
			if acuteOnsetModules[m.ID] {
				score += 0.5
				reasons = append(reasons, Reason{
					Kind:        ReasonTemporalMatch,
					Score:       0.5,
					Explanation: "Acute onset matches disorder pattern",
				})
			}
		case strings.Contains(onset, "gradual") || strings.Contains(onset, "chronic"):
			if gradualOnsetModules[m.ID] {
				score += 0.5
				reasons = append(reasons, Reason{
					Kind:        ReasonTemporalMatch,
					Score:       0.5,
					Explanation: "Gradual onset matches disorder pattern",
				})
			}
		}
	}

	if p.SeverityLevel != "" {
		if strings.Contains(strings.ToLower(p.SeverityLevel), "severe") && highImpactModules[m.ID] {
			score += 0.3
			reasons = append(reasons, Reason{
				Kind:        ReasonSeverityMatch,
				Score:       0.3,
				Explanation: "High severity indicates serious mood or trauma disorder",
			})
		}
	}

	if score > 1 {
		score = 1
	}
	return score, reasons, nil
}
