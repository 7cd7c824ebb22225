package scoring

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ksuri/mindtriage/internal/registry"
)

// Administration is a stateful question-by-question run of one module.
// It moves NotStarted -> InProgress on the first recorded answer and
// InProgress -> Completed on Complete.
type Administration struct {
	module    *registry.Module
	responses Responses
	state     State
	result    *Result
}

// NewAdministration starts an empty administration for a module.
func NewAdministration(m *registry.Module) *Administration {
	return &Administration{
		module:    m,
		responses: make(Responses),
		state:     StateNotStarted,
	}
}

// State returns the current lifecycle state.
func (a *Administration) State() State { return a.state }

// Record validates and stores one answer. The first answer moves the
// administration into progress. Recording after completion is an error.
func (a *Administration) Record(questionID string, answer any) error {
	if a.state == StateCompleted {
		return fmt.Errorf("record response: administration already completed")
	}
	q := a.module.QuestionByID(questionID)
	if q == nil {
		return &ValidationError{QuestionID: questionID, Reason: "unknown question ID"}
	}
	if ve := validateAnswer(q, answer); ve != nil {
		return ve
	}
	a.responses[questionID] = answer
	a.state = StateInProgress
	return nil
}

// Complete validates the full response set, scores it, and transitions to
// Completed. Validation failures leave the administration in progress.
func (a *Administration) Complete() (*Result, error) {
	if a.state == StateCompleted {
		return a.result, nil
	}
	result, err := ScoreModule(a.module, a.responses)
	if err != nil {
		return nil, err
	}
	a.state = StateCompleted
	a.result = result
	return result, nil
}

// Result returns the completed result, or an error if not yet completed.
func (a *Administration) Result() (*Result, error) {
	if a.state != StateCompleted {
		return nil, &ErrNotCompleted{State: a.state}
	}
	return a.result, nil
}

// ScoreModule validates and scores a full response set in one step.
func ScoreModule(m *registry.Module, responses Responses) (*Result, error) {
	if errs := Validate(m, responses); len(errs) > 0 {
		return nil, errs
	}

	total, max, perQuestion := Score(m, responses)
	percentage := 0.0
	if max > 0 {
		percentage = total / max
	}
	criteriaMet := percentage >= m.DiagnosticThreshold
	symptoms := ExtractSymptoms(m, responses, perQuestion)

	adminTime := len(responses) / 2
	if adminTime < 1 {
		adminTime = 1
	}

	return &Result{
		ModuleID:               m.ID,
		ModuleName:             m.Name,
		TotalScore:             total,
		MaxPossibleScore:       max,
		Percentage:             percentage,
		CriteriaMet:            criteriaMet,
		Severity:               DetermineSeverity(m, percentage, symptoms),
		SymptomsPresent:        symptoms,
		PerQuestionScores:      perQuestion,
		AdministrationTimeMins: adminTime,
		CompletedAt:            time.Now(),
	}, nil
}

// Administrator scores modules and keeps a history of completed results.
type Administrator struct {
	history []*Result
	logf    func(format string, args ...any)
}

// NewAdministrator creates an Administrator. logf receives per-module
// failures during batch administration; nil routes them to stderr.
func NewAdministrator(logf func(format string, args ...any)) *Administrator {
	if logf == nil {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		}
	}
	return &Administrator{logf: logf}
}

// Administer validates, scores, and records one module's responses.
func (ad *Administrator) Administer(m *registry.Module, responses Responses) (*Result, error) {
	result, err := ScoreModule(m, responses)
	if err != nil {
		return nil, err
	}
	ad.history = append(ad.history, result)
	return result, nil
}

// AdministerAll scores several modules. Modules without responses are
// skipped; a scoring failure is logged and skipped, never fatal.
func (ad *Administrator) AdministerAll(modules []*registry.Module, responses map[string]Responses) map[string]*Result {
	results := make(map[string]*Result)
	for _, m := range modules {
		moduleResponses, ok := responses[m.ID]
		if !ok || len(moduleResponses) == 0 {
			continue
		}
		result, err := ad.Administer(m, moduleResponses)
		if err != nil {
			ad.logf("administering module %s failed: %v", m.ID, err)
			continue
		}
		results[m.ID] = result
	}
	return results
}

// History returns a copy of all completed results in order.
func (ad *Administrator) History() []*Result {
	out := make([]*Result, len(ad.history))
	copy(out, ad.history)
	return out
}

// ClearHistory discards the recorded results.
func (ad *Administrator) ClearHistory() {
	ad.history = nil
}

// SummaryStats aggregates a set of results.
type SummaryStats struct {
	AverageScore            float64
	MinScore                float64
	MaxScore                float64
	PositiveModules         []string
	TotalSymptoms           int
	MostSevereModule        string
	MostSevereScore         float64
	TotalAdministrationMins int
}

// Summarize computes summary statistics over completed results.
func Summarize(results []*Result) SummaryStats {
	var stats SummaryStats
	if len(results) == 0 {
		return stats
	}

	stats.MinScore = results[0].Percentage
	for _, r := range results {
		stats.AverageScore += r.Percentage
		if r.Percentage > stats.MaxScore {
			stats.MaxScore = r.Percentage
		}
		if r.Percentage < stats.MinScore {
			stats.MinScore = r.Percentage
		}
		if r.CriteriaMet {
			stats.PositiveModules = append(stats.PositiveModules, r.ModuleName)
			if r.Percentage > stats.MostSevereScore || stats.MostSevereModule == "" {
				stats.MostSevereModule = r.ModuleName
				stats.MostSevereScore = r.Percentage
			}
		}
		stats.TotalSymptoms += len(r.SymptomsPresent)
		stats.TotalAdministrationMins += r.AdministrationTimeMins
	}
	stats.AverageScore /= float64(len(results))
	return stats
}

// SummaryReport renders a human-readable administration summary.
func SummaryReport(results []*Result, now time.Time) string {
	if len(results) == 0 {
		return "No results to summarize."
	}

	stats := Summarize(results)
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(rule)
	line("MODULE ADMINISTRATION SUMMARY REPORT")
	line(rule)
	line("")
	line("Assessment Date: %s", now.Format("2006-01-02 15:04:05"))
	line("Total Modules Administered: %d", len(results))
	line("Modules Meeting Diagnostic Criteria: %d", len(stats.PositiveModules))
	line("Average Score: %.1f%%", stats.AverageScore*100)
	line("Total Administration Time: %d minutes", stats.TotalAdministrationMins)
	line("")
	line("MODULE RESULTS:")
	line("%s", strings.Repeat("-", 20))

	sorted := make([]*Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Percentage > sorted[j].Percentage })

	for _, r := range sorted {
		status := "NEGATIVE"
		if r.CriteriaMet {
			status = "POSITIVE"
		}
		severity := ""
		if r.Severity != nil {
			severity = fmt.Sprintf(" (%s)", r.Severity)
		}
		line("%s: %.1f%% [%s]%s", r.ModuleName, r.Percentage*100, status, severity)
		line("  - Symptoms Present: %d", len(r.SymptomsPresent))
		line("  - Administration Time: %d minutes", r.AdministrationTimeMins)
		line("")
	}

	if len(stats.PositiveModules) > 0 {
		line("POSITIVE MODULES:")
		line("%s", strings.Repeat("-", 15))
		for _, name := range stats.PositiveModules {
			line("- %s", name)
		}
		line("")
	}

	line("%s", rule)
	line("END OF REPORT")
	b.WriteString(rule)
	return b.String()
}
