package triage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

// demographicSignal matches the patient's age bracket, gender, and family
// history against per-module epidemiological risk-factor tables. Matched
// weights are summed and normalized by the module's total configured
// weight, so a module with many factors needs several hits to score high.
type demographicSignal struct{}

func (s *demographicSignal) Name() string { return "demographic_match" }

// ageBrackets maps factor keys to inclusive age ranges.
var ageBrackets = map[string][2]int{
	"age_6_18":  {6, 18},
	"age_12_25": {12, 25},
	"age_13_25": {13, 25},
	"age_18_25": {18, 25},
	"age_18_30": {18, 30},
	"age_18_35": {18, 35},
	"age_20_40": {20, 40},
	"age_26_45": {26, 45},
	"age_30_50": {30, 50},
	"age_31_45": {31, 45},
	"age_46_65": {46, 65},
}

// familyHistoryKeys are the recognized family-history factor keys. A key
// matches when its last segment appears in a reported diagnosis.
var familyHistoryKeys = []string{
	"family_history_mood",
	"family_history_anxiety",
	"family_history_bipolar",
	"family_history_adhd",
	"family_history_ocd",
	"family_history_substance",
}

// demographicRiskFactors holds the per-module factor weights. Keys beyond
// age, gender, and family history describe contextual risks the snapshot
// cannot surface yet; they still widen the denominator.
var demographicRiskFactors = map[string]map[string]float64{
	"MDD": {
		"age_18_25": 0.3, "age_26_45": 0.4, "age_46_65": 0.3,
		"female": 0.6, "male": 0.4,
		"recent_life_changes": 0.5,
	},
	"BIPOLAR": {
		"age_18_30": 0.7, "age_31_45": 0.3,
		"family_history_bipolar": 0.8,
		"family_history_mood":    0.5,
	},
	"GAD": {
		"age_30_50": 0.5, "female": 0.6,
		"chronic_stress": 0.7,
	},
	"PANIC": {
		"age_20_40": 0.6, "female": 0.7,
		"family_history_anxiety": 0.5,
	},
	"PTSD": {
		"trauma_history":  0.9,
		"military":        0.6,
		"first_responder": 0.6,
	},
	"SOCIAL_ANXIETY": {
		"age_13_25":    0.6,
		"introversion": 0.4,
	},
	"OCD": {
		"age_18_35":          0.5,
		"family_history_ocd": 0.7,
	},
	"ADHD": {
		"age_6_18": 0.8, "age_18_30": 0.4,
		"male": 0.6, "female": 0.4,
		"family_history_adhd": 0.6,
	},
	"EATING_DISORDERS": {
		"age_12_25": 0.7, "female": 0.9,
		"perfectionism": 0.5, "body_image": 0.8,
	},
	"ALCOHOL_USE": {
		"age_18_30": 0.5, "male": 0.6,
		"family_history_substance": 0.6,
	},
	"SUBSTANCE_USE": {
		"age_18_35": 0.6, "male": 0.6,
		"peer_influence": 0.4,
	},
}

func (s *demographicSignal) Evaluate(_ context.Context, m *registry.Module, p *Patient) (float64, []Reason, error) {
	factors := demographicRiskFactors[m.ID]
	if len(factors) == 0 {
		return 0, nil, nil
	}

	type match struct {
		key    string
		weight float64
	}
	var matches []match

	if p.Age > 0 {
		keys := make([]string, 0, len(ageBrackets))
		for key := range ageBrackets {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			bracket := ageBrackets[key]
			if w, ok := factors[key]; ok && p.Age >= bracket[0] && p.Age <= bracket[1] {
				matches = append(matches, match{key, w})
			}
		}
	}

	if p.Gender != "" {
		if w, ok := factors[strings.ToLower(p.Gender)]; ok {
			matches = append(matches, match{strings.ToLower(p.Gender), w})
		}
	}

	for _, diagnosis := range p.FamilyHistory {
		lower := strings.ToLower(diagnosis)
		for _, key := range familyHistoryKeys {
			w, ok := factors[key]
			if !ok {
				continue
			}
			segments := strings.Split(key, "_")
			if strings.Contains(lower, segments[len(segments)-1]) {
				matches = append(matches, match{key, w})
			}
		}
	}

	var totalWeight float64
	for _, w := range factors {
		totalWeight += w
	}
	var matched float64
	for _, mt := range matches {
		matched += mt.weight
	}
	score := matched / totalWeight
	if score > 1 {
		score = 1
	}

	var reasons []Reason
	if len(matches) > 0 {
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].weight > matches[j].weight })
		if len(matches) > 2 {
			matches = matches[:2]
		}
		names := make([]string, len(matches))
		for i, mt := range matches {
			names[i] = strings.ReplaceAll(mt.key, "_", " ")
		}
		reasons = append(reasons, Reason{
			Kind:        ReasonDemographicMatch,
			Score:       score,
			Explanation: fmt.Sprintf("Demographic risk factors: %s", strings.Join(names, ", ")),
		})
	}
	return score, reasons, nil
}
