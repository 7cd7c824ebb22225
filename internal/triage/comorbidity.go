package triage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

// comorbidityEdge is one directed comorbidity risk: a patient with the
// pattern disorder carries the given risk weight for the target module.
type comorbidityEdge struct {
	Target string
	Weight float64
}

// comorbidityPatterns encodes known comorbidity prevalence between the
// registered disorders.
var comorbidityPatterns = map[string][]comorbidityEdge{
	"MDD": {
		{"GAD", 0.7}, {"PANIC", 0.5}, {"PTSD", 0.6},
		{"EATING_DISORDERS", 0.4}, {"ALCOHOL_USE", 0.5},
	},
	"GAD": {
		{"MDD", 0.7}, {"PANIC", 0.8}, {"SOCIAL_ANXIETY", 0.6},
		{"SPECIFIC_PHOBIA", 0.4},
	},
	"PANIC": {
		{"AGORAPHOBIA", 0.9}, {"GAD", 0.8}, {"MDD", 0.5},
		{"SOCIAL_ANXIETY", 0.4},
	},
	"BIPOLAR": {
		{"SUBSTANCE_USE", 0.6}, {"ALCOHOL_USE", 0.5},
		{"EATING_DISORDERS", 0.3},
	},
	"PTSD": {
		{"MDD", 0.6}, {"SUBSTANCE_USE", 0.7}, {"ALCOHOL_USE", 0.6},
		{"PANIC", 0.4},
	},
	"ADHD": {
		{"SUBSTANCE_USE", 0.4}, {"BIPOLAR", 0.3}, {"GAD", 0.3},
	},
	"EATING_DISORDERS": {
		{"MDD", 0.4}, {"GAD", 0.5}, {"OCD", 0.3}, {"SUBSTANCE_USE", 0.3},
	},
}

// comorbiditySignal propagates risk from reported prior diagnoses to the
// module being scored. A prior diagnosis matches a pattern disorder when
// any token of the disorder's ID appears in the diagnosis text; matching
// is deliberately loose since diagnoses arrive as free text.
type comorbiditySignal struct{}

func (s *comorbiditySignal) Name() string { return "comorbidity_risk" }

func (s *comorbiditySignal) Evaluate(_ context.Context, m *registry.Module, p *Patient) (float64, []Reason, error) {
	if len(p.PreviousDiagnoses) == 0 {
		return 0, nil, nil
	}

	patterns := make([]string, 0, len(comorbidityPatterns))
	for pattern := range comorbidityPatterns {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	var total float64
	var sources []string
	for _, diagnosis := range p.PreviousDiagnoses {
		lower := strings.ToLower(diagnosis)
		for _, pattern := range patterns {
			if !diagnosisMatchesPattern(lower, pattern) {
				continue
			}
			for _, edge := range comorbidityPatterns[pattern] {
				if edge.Target == m.ID {
					total += edge.Weight
					sources = append(sources, pattern)
				}
			}
		}
	}

	score := total
	if score > 1 {
		score = 1
	}

	var reasons []Reason
	if len(sources) > 0 {
		reasons = append(reasons, Reason{
			Kind:        ReasonComorbidityRisk,
			Score:       score,
			Explanation: fmt.Sprintf("Comorbidity risk from: %s", strings.Join(sources, ", ")),
		})
	}
	return score, reasons, nil
}

func diagnosisMatchesPattern(diagnosisLower, pattern string) bool {
	for _, token := range strings.Split(strings.ToLower(pattern), "_") {
		if strings.Contains(diagnosisLower, token) {
			return true
		}
	}
	return false
}
