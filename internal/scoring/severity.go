package scoring

import (
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

// Default severity breakpoints used when a module declares none.
const (
	defaultMildThreshold     = 0.4
	defaultModerateThreshold = 0.6
	defaultSevereThreshold   = 0.8
)

// DetermineSeverity assigns a severity tier once diagnostic criteria are
// met. Declared module thresholds are scanned most severe first; without
// them the default breakpoints apply, escalated by the count of severe or
// moderate symptoms. Returns nil when criteria are unmet or no symptoms
// were extracted.
func DetermineSeverity(m *registry.Module, percentage float64, symptoms []SymptomExtraction) *registry.Severity {
	if len(symptoms) == 0 || percentage < m.DiagnosticThreshold {
		return nil
	}

	if len(m.SeverityThresholds) > 0 {
		scan := []registry.Severity{
			registry.SeverityExtreme,
			registry.SeveritySevere,
			registry.SeverityModerate,
			registry.SeverityMild,
		}
		for _, sev := range scan {
			if threshold, ok := m.SeverityThresholds[sev]; ok && percentage >= threshold {
				s := sev
				return &s
			}
		}
	}

	var severeCount, moderateCount int
	for _, sym := range symptoms {
		if sym.Severity == nil {
			continue
		}
		switch *sym.Severity {
		case registry.SeveritySevere:
			severeCount++
		case registry.SeverityModerate:
			moderateCount++
		}
	}

	var sev registry.Severity
	switch {
	case percentage >= defaultSevereThreshold || severeCount >= 2:
		sev = registry.SeveritySevere
	case percentage >= defaultModerateThreshold || moderateCount >= 3 || severeCount >= 1:
		sev = registry.SeverityModerate
	default:
		sev = registry.SeverityMild
	}
	return &sev
}

// ExtractSymptoms recovers symptom summaries from positive responses.
func ExtractSymptoms(m *registry.Module, responses Responses, perQuestion map[string]float64) []SymptomExtraction {
	var symptoms []SymptomExtraction
	for i := range m.Questions {
		q := &m.Questions[i]
		score, answered := perQuestion[q.ID]
		if !answered || score <= 0 {
			continue
		}
		if sym := extractSymptom(q, responses[q.ID], score); sym != nil {
			symptoms = append(symptoms, *sym)
		}
	}
	return symptoms
}

func extractSymptom(q *registry.Question, answer any, score float64) *SymptomExtraction {
	name := strings.TrimSpace(strings.ReplaceAll(q.SymptomCategory, "_", " "))
	switch strings.ToLower(name) {
	case "", "other", "misc":
		return nil
	}

	sym := &SymptomExtraction{
		Name:       titleWords(name),
		Present:    true,
		Confidence: score,
		Severity:   symptomSeverity(q, score),
		Frequency:  frequencyFrom(q.SimpleText),
	}

	if q.ResponseType == registry.ResponseMultipleChoice {
		switch v := answer.(type) {
		case []string:
			sym.Triggers = v
		case []any:
			for _, raw := range v {
				if s, ok := raw.(string); ok {
					sym.Triggers = append(sym.Triggers, s)
				}
			}
		}
	}

	sym.ImpactAreas = impactAreas(name)
	return sym
}

// symptomSeverity bands a per-question score. Scales get a finer banding
// than the binary question types.
func symptomSeverity(q *registry.Question, score float64) *registry.Severity {
	var sev registry.Severity
	if q.ResponseType == registry.ResponseScale {
		switch {
		case score >= 0.75:
			sev = registry.SeveritySevere
		case score >= 0.5:
			sev = registry.SeverityModerate
		case score > 0:
			sev = registry.SeverityMild
		default:
			return nil
		}
		return &sev
	}
	switch {
	case score > 0.7:
		sev = registry.SeverityModerate
	case score > 0:
		sev = registry.SeverityMild
	default:
		return nil
	}
	return &sev
}

func frequencyFrom(simpleText string) string {
	lower := strings.ToLower(simpleText)
	switch {
	case strings.Contains(lower, "daily") || strings.Contains(lower, "every day"):
		return "daily"
	case strings.Contains(lower, "week"):
		return "weekly"
	case strings.Contains(lower, "month"):
		return "monthly"
	}
	return ""
}

func impactAreas(symptomName string) []string {
	lower := strings.ToLower(symptomName)
	var areas []string
	if containsAny(lower, "work", "school", "job") {
		areas = append(areas, "occupational")
	}
	if containsAny(lower, "social", "relationship", "family") {
		areas = append(areas, "interpersonal")
	}
	if containsAny(lower, "daily", "activities", "function") {
		areas = append(areas, "daily_functioning")
	}
	return areas
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func titleWords(s string) string {
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
