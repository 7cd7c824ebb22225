package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

// noSymptomPatterns mark multiple-choice options that deny the symptom.
var noSymptomPatterns = []string{
	"no", "normal", "none", "never", "not at all",
	"no significant", "no change", "no problem",
}

// Validate checks a full response set against the module's questions.
// It returns every problem found, or nil.
func Validate(m *registry.Module, responses Responses) ValidationErrors {
	var errs ValidationErrors

	for _, id := range m.RequiredQuestionIDs() {
		if _, ok := responses[id]; !ok {
			errs = append(errs, &ValidationError{QuestionID: id, Reason: "missing required response"})
		}
	}

	for id, answer := range responses {
		q := m.QuestionByID(id)
		if q == nil {
			errs = append(errs, &ValidationError{QuestionID: id, Reason: "unknown question ID"})
			continue
		}
		if ve := validateAnswer(q, answer); ve != nil {
			errs = append(errs, ve)
		}
	}
	return errs
}

func validateAnswer(q *registry.Question, answer any) *ValidationError {
	switch q.ResponseType {
	case registry.ResponseYesNo:
		if !isYesNoAnswer(answer) {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("invalid yes/no response: %v", answer)}
		}
	case registry.ResponseScale:
		val, ok := numeric(answer)
		if !ok {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("invalid scale response: %v", answer)}
		}
		if val < float64(q.ScaleMin) || val > float64(q.ScaleMax) {
			return &ValidationError{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("scale response %v out of range [%d,%d]", val, q.ScaleMin, q.ScaleMax),
			}
		}
	case registry.ResponseMultipleChoice:
		switch v := answer.(type) {
		case string:
			if !optionValid(q, v) {
				return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("invalid option %q", v)}
			}
		case []string:
			for _, opt := range v {
				if !optionValid(q, opt) {
					return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("invalid option %q", opt)}
				}
			}
		case []any:
			for _, raw := range v {
				opt, ok := raw.(string)
				if !ok || !optionValid(q, opt) {
					return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("invalid option %v", raw)}
				}
			}
		default:
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("invalid choice response: %v", answer)}
		}
	}
	return nil
}

// Score computes the weighted scores for a validated response set.
// Unanswered questions score zero but still count toward the maximum.
func Score(m *registry.Module, responses Responses) (total, max float64, perQuestion map[string]float64) {
	perQuestion = make(map[string]float64, len(m.Questions))
	for i := range m.Questions {
		q := &m.Questions[i]
		max += q.CriteriaWeight

		answer, ok := responses[q.ID]
		if !ok {
			perQuestion[q.ID] = 0
			continue
		}
		score := ScoreResponse(q, answer)
		perQuestion[q.ID] = score
		total += score * q.CriteriaWeight
	}
	return total, max, perQuestion
}

// ScoreResponse maps one raw answer onto [0,1].
func ScoreResponse(q *registry.Question, answer any) float64 {
	switch q.ResponseType {
	case registry.ResponseYesNo:
		if isAffirmative(answer) {
			return 1.0
		}
		return 0.0

	case registry.ResponseScale:
		val, ok := numeric(answer)
		if !ok {
			return 0.0
		}
		if q.ScaleMax > q.ScaleMin {
			return (val - float64(q.ScaleMin)) / float64(q.ScaleMax-q.ScaleMin)
		}
		return 0.0

	case registry.ResponseMultipleChoice:
		if len(q.Options) == 0 {
			return 0.0
		}
		switch v := answer.(type) {
		case string:
			if deniesSymptom(v) {
				return 0.0
			}
			if optionValid(q, v) {
				return 1.0
			}
			return 0.0
		case []string:
			return scoreMultiSelect(q, v)
		case []any:
			opts := make([]string, 0, len(v))
			for _, raw := range v {
				if s, ok := raw.(string); ok {
					opts = append(opts, s)
				}
			}
			return scoreMultiSelect(q, opts)
		}
		return 0.0

	case registry.ResponseText:
		if s, ok := answer.(string); ok && strings.TrimSpace(s) != "" {
			return 1.0
		}
		return 0.0

	case registry.ResponseDate:
		if answer == nil {
			return 0.0
		}
		if s, ok := answer.(string); ok && strings.TrimSpace(s) == "" {
			return 0.0
		}
		return 1.0
	}
	return 0.0
}

// scoreMultiSelect scores selected options by the count of symptomatic
// selections relative to the option count, excluding the customary
// leading "none" option from the denominator.
func scoreMultiSelect(q *registry.Question, selected []string) float64 {
	var symptomatic int
	for _, opt := range selected {
		if !optionValid(q, opt) {
			continue
		}
		if !deniesSymptom(opt) {
			symptomatic++
		}
	}
	if symptomatic == 0 {
		return 0.0
	}
	denom := len(q.Options) - 1
	if denom < 1 {
		denom = 1
	}
	score := float64(symptomatic) / float64(denom)
	if score > 1 {
		score = 1
	}
	return score
}

func optionValid(q *registry.Question, opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

func deniesSymptom(option string) bool {
	lower := strings.ToLower(option)
	for _, pattern := range noSymptomPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// isAffirmative reports whether the answer counts as "yes".
func isAffirmative(answer any) bool {
	switch v := answer.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "yes")
	case int:
		return v == 1
	case float64:
		return v == 1
	}
	return false
}

// isYesNoAnswer reports whether the answer is a recognizable yes/no value.
func isYesNoAnswer(answer any) bool {
	switch v := answer.(type) {
	case bool:
		return true
	case string:
		return strings.EqualFold(v, "yes") || strings.EqualFold(v, "no")
	case int:
		return v == 0 || v == 1
	case float64:
		return v == 0 || v == 1
	}
	return false
}

func numeric(answer any) (float64, bool) {
	switch v := answer.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
