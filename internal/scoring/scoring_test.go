package scoring

import (
	"errors"
	"strings"
	"testing"

	"github.com/ksuri/mindtriage/internal/registry"
)

func scaleModule() *registry.Module {
	return &registry.Module{
		ID:                  "TEST",
		Name:                "Test Module",
		DiagnosticThreshold: 0.5,
		Questions: []registry.Question{
			{ID: "yn", Text: "?", ResponseType: registry.ResponseYesNo, Required: true, CriteriaWeight: 2.0, SymptomCategory: "depressed_mood"},
			{ID: "sc", Text: "?", ResponseType: registry.ResponseScale, ScaleMin: 0, ScaleMax: 4, CriteriaWeight: 1.0, SymptomCategory: "sleep_disturbance"},
			{ID: "mc", Text: "?", ResponseType: registry.ResponseMultipleChoice, Options: []string{"No change", "Eating less", "Eating more"}, CriteriaWeight: 1.0, SymptomCategory: "appetite_change"},
		},
	}
}

func TestScoreResponseYesNo(t *testing.T) {
	q := &registry.Question{ResponseType: registry.ResponseYesNo}
	tests := []struct {
		answer any
		want   float64
	}{
		{true, 1.0},
		{false, 0.0},
		{"yes", 1.0},
		{"Yes", 1.0},
		{"YES", 1.0},
		{"no", 0.0},
		{1, 1.0},
		{0, 0.0},
		{float64(1), 1.0},
	}
	for _, tt := range tests {
		if got := ScoreResponse(q, tt.answer); got != tt.want {
			t.Errorf("ScoreResponse(%v) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestScoreResponseScale(t *testing.T) {
	q := &registry.Question{ResponseType: registry.ResponseScale, ScaleMin: 0, ScaleMax: 4}
	if got := ScoreResponse(q, 2); got != 0.5 {
		t.Errorf("scale 2 of [0,4] = %v, want 0.5", got)
	}
	if got := ScoreResponse(q, 4); got != 1.0 {
		t.Errorf("scale max = %v, want 1.0", got)
	}
	if got := ScoreResponse(q, 0); got != 0.0 {
		t.Errorf("scale min = %v, want 0.0", got)
	}
	if got := ScoreResponse(q, "3"); got != 0.75 {
		t.Errorf("scale string = %v, want 0.75", got)
	}
	if got := ScoreResponse(q, "garbage"); got != 0.0 {
		t.Errorf("unparseable = %v, want 0.0", got)
	}
}

func TestScoreResponseMultipleChoice(t *testing.T) {
	q := &registry.Question{
		ResponseType: registry.ResponseMultipleChoice,
		Options:      []string{"None", "Racing heart", "Sweating", "Chest pain"},
	}
	if got := ScoreResponse(q, "None"); got != 0.0 {
		t.Errorf("no-symptom option = %v, want 0.0", got)
	}
	if got := ScoreResponse(q, "Racing heart"); got != 1.0 {
		t.Errorf("symptom option = %v, want 1.0", got)
	}
	if got := ScoreResponse(q, "Unlisted option"); got != 0.0 {
		t.Errorf("unlisted option = %v, want 0.0", got)
	}

	// Multi-select: 2 symptomatic of (4-1) options.
	got := ScoreResponse(q, []string{"Racing heart", "Sweating"})
	want := 2.0 / 3.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("multi-select = %v, want %v", got, want)
	}
	if got := ScoreResponse(q, []string{"None"}); got != 0.0 {
		t.Errorf("only no-symptom selections = %v, want 0.0", got)
	}
	if got := ScoreResponse(q, []string{"Racing heart", "Sweating", "Chest pain"}); got != 1.0 {
		t.Errorf("full selection = %v, want clamp to 1.0", got)
	}
}

func TestScoreResponseTextAndDate(t *testing.T) {
	text := &registry.Question{ResponseType: registry.ResponseText}
	if got := ScoreResponse(text, "some description"); got != 1.0 {
		t.Errorf("non-empty text = %v, want 1.0", got)
	}
	if got := ScoreResponse(text, "   "); got != 0.0 {
		t.Errorf("blank text = %v, want 0.0", got)
	}

	date := &registry.Question{ResponseType: registry.ResponseDate}
	if got := ScoreResponse(date, "2024-06-01"); got != 1.0 {
		t.Errorf("date = %v, want 1.0", got)
	}
	if got := ScoreResponse(date, nil); got != 0.0 {
		t.Errorf("nil date = %v, want 0.0", got)
	}
}

func TestValidate(t *testing.T) {
	m := scaleModule()

	errs := Validate(m, Responses{"yn": "yes", "sc": 2, "mc": "Eating less"})
	if errs != nil {
		t.Fatalf("valid responses rejected: %v", errs)
	}

	tests := []struct {
		name      string
		responses Responses
		wantSub   string
	}{
		{"missing required", Responses{"sc": 2}, "missing required"},
		{"unknown question", Responses{"yn": "yes", "zz": 1}, "unknown question"},
		{"bad yes/no", Responses{"yn": "maybe"}, "invalid yes/no"},
		{"scale out of range", Responses{"yn": "yes", "sc": 9}, "out of range"},
		{"bad option", Responses{"yn": "yes", "mc": "Fasting"}, "invalid option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(m, tt.responses)
			if errs == nil {
				t.Fatal("want validation errors")
			}
			if !strings.Contains(errs.Error(), tt.wantSub) {
				t.Errorf("errors = %v, want substring %q", errs, tt.wantSub)
			}
		})
	}
}

func TestScoreModuleThresholdBoundary(t *testing.T) {
	// yn yes (2.0) of max 4.0 = exactly the 0.5 threshold: criteria met.
	m := scaleModule()
	result, err := ScoreModule(m, Responses{"yn": "yes"})
	if err != nil {
		t.Fatalf("ScoreModule: %v", err)
	}
	if result.Percentage != 0.5 {
		t.Errorf("percentage = %v, want 0.5", result.Percentage)
	}
	if !result.CriteriaMet {
		t.Error("score exactly at threshold must meet criteria")
	}
}

func TestScoreModuleBelowThreshold(t *testing.T) {
	m := scaleModule()
	result, err := ScoreModule(m, Responses{"yn": "no", "sc": 1})
	if err != nil {
		t.Fatalf("ScoreModule: %v", err)
	}
	if result.CriteriaMet {
		t.Errorf("criteria met at %v, threshold %v", result.Percentage, m.DiagnosticThreshold)
	}
	if result.Severity != nil {
		t.Errorf("severity = %v for unmet criteria, want nil", result.Severity)
	}
}

func TestScoreModuleValidationErrorTyped(t *testing.T) {
	m := scaleModule()
	_, err := ScoreModule(m, Responses{"yn": "maybe"})
	if err == nil {
		t.Fatal("want error")
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
}

func TestScoreModuleUnansweredCountTowardMax(t *testing.T) {
	m := scaleModule()
	result, err := ScoreModule(m, Responses{"yn": "yes"})
	if err != nil {
		t.Fatal(err)
	}
	if result.MaxPossibleScore != 4.0 {
		t.Errorf("max = %v, want 4.0 including unanswered", result.MaxPossibleScore)
	}
	if result.PerQuestionScores["sc"] != 0 || result.PerQuestionScores["mc"] != 0 {
		t.Errorf("unanswered question scores = %v, want 0", result.PerQuestionScores)
	}
}

func TestDetermineSeverityDeclaredThresholds(t *testing.T) {
	m := &registry.Module{
		ID:                  "X",
		DiagnosticThreshold: 0.5,
		SeverityThresholds: map[registry.Severity]float64{
			registry.SeverityMild:     0.5,
			registry.SeverityModerate: 0.65,
			registry.SeveritySevere:   0.8,
		},
	}
	symptoms := []SymptomExtraction{{Name: "X", Present: true}}

	tests := []struct {
		percentage float64
		want       registry.Severity
	}{
		{0.5, registry.SeverityMild},
		{0.65, registry.SeverityModerate},
		{0.79, registry.SeverityModerate},
		{0.8, registry.SeveritySevere},
		{0.99, registry.SeveritySevere},
	}
	for _, tt := range tests {
		got := DetermineSeverity(m, tt.percentage, symptoms)
		if got == nil || *got != tt.want {
			t.Errorf("DetermineSeverity(%v) = %v, want %v", tt.percentage, got, tt.want)
		}
	}

	if got := DetermineSeverity(m, 0.4, symptoms); got != nil {
		t.Errorf("below diagnostic threshold: severity = %v, want nil", got)
	}
	if got := DetermineSeverity(m, 0.9, nil); got != nil {
		t.Errorf("no symptoms: severity = %v, want nil", got)
	}
}

func TestDetermineSeverityDefaults(t *testing.T) {
	m := &registry.Module{ID: "X", DiagnosticThreshold: 0.4}
	symptoms := []SymptomExtraction{{Name: "X", Present: true}}

	tests := []struct {
		percentage float64
		want       registry.Severity
	}{
		{0.45, registry.SeverityMild},
		{0.6, registry.SeverityModerate},
		{0.8, registry.SeveritySevere},
	}
	for _, tt := range tests {
		got := DetermineSeverity(m, tt.percentage, symptoms)
		if got == nil || *got != tt.want {
			t.Errorf("DetermineSeverity(%v) = %v, want %v", tt.percentage, got, tt.want)
		}
	}
}

func TestDetermineSeveritySymptomEscalation(t *testing.T) {
	m := &registry.Module{ID: "X", DiagnosticThreshold: 0.4}
	severe := registry.SeveritySevere
	symptoms := []SymptomExtraction{
		{Name: "A", Severity: &severe},
		{Name: "B", Severity: &severe},
	}
	got := DetermineSeverity(m, 0.45, symptoms)
	if got == nil || *got != registry.SeveritySevere {
		t.Errorf("two severe symptoms at 0.45 = %v, want severe", got)
	}
}

func TestExtractSymptoms(t *testing.T) {
	m := scaleModule()
	responses := Responses{"yn": "yes", "sc": 3, "mc": "No change"}
	_, _, perQuestion := Score(m, responses)
	symptoms := ExtractSymptoms(m, responses, perQuestion)

	names := make(map[string]bool)
	for _, s := range symptoms {
		names[s.Name] = true
	}
	if !names["Depressed Mood"] {
		t.Errorf("missing Depressed Mood in %v", symptoms)
	}
	if !names["Sleep Disturbance"] {
		t.Errorf("missing Sleep Disturbance in %v", symptoms)
	}
	if names["Appetite Change"] {
		t.Error("no-symptom answer produced a symptom")
	}

	// Scale 3 of [0,4] = 0.75: severe band for scales.
	for _, s := range symptoms {
		if s.Name == "Sleep Disturbance" {
			if s.Severity == nil || *s.Severity != registry.SeveritySevere {
				t.Errorf("sleep severity = %v, want severe", s.Severity)
			}
		}
	}
}

func TestAdministrationStateMachine(t *testing.T) {
	m := scaleModule()
	a := NewAdministration(m)
	if a.State() != StateNotStarted {
		t.Errorf("initial state = %v", a.State())
	}
	if _, err := a.Result(); err == nil {
		t.Error("Result before completion: want error")
	}

	if err := a.Record("yn", "yes"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if a.State() != StateInProgress {
		t.Errorf("state after record = %v, want in_progress", a.State())
	}

	if err := a.Record("sc", 99); err == nil {
		t.Error("out-of-range answer accepted")
	}
	if err := a.Record("nope", 1); err == nil {
		t.Error("unknown question accepted")
	}

	result, err := a.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if a.State() != StateCompleted {
		t.Errorf("state after complete = %v", a.State())
	}
	if result.ModuleID != "TEST" {
		t.Errorf("result module = %s", result.ModuleID)
	}
	if err := a.Record("sc", 2); err == nil {
		t.Error("Record after completion accepted")
	}

	again, err := a.Complete()
	if err != nil || again != result {
		t.Errorf("second Complete = %v, %v, want cached result", again, err)
	}
}

func TestAdministrationCompleteMissingRequired(t *testing.T) {
	m := scaleModule()
	a := NewAdministration(m)
	if err := a.Record("sc", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Complete(); err == nil {
		t.Fatal("Complete without required answers: want error")
	}
	if a.State() != StateInProgress {
		t.Errorf("failed completion changed state to %v", a.State())
	}
}

func TestAdministratorBatch(t *testing.T) {
	m := scaleModule()
	var warnings int
	ad := NewAdministrator(func(string, ...any) { warnings++ })

	results := ad.AdministerAll(
		[]*registry.Module{m},
		map[string]Responses{"TEST": {"yn": "yes", "sc": 2}},
	)
	if len(results) != 1 {
		t.Fatalf("results = %v", results)
	}
	if len(ad.History()) != 1 {
		t.Errorf("history length = %d", len(ad.History()))
	}

	// Invalid batch entry: logged and skipped.
	results = ad.AdministerAll(
		[]*registry.Module{m},
		map[string]Responses{"TEST": {"yn": "maybe"}},
	)
	if len(results) != 0 {
		t.Errorf("invalid batch produced results: %v", results)
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}

	ad.ClearHistory()
	if len(ad.History()) != 0 {
		t.Error("ClearHistory left results")
	}
}

func TestSummaryReport(t *testing.T) {
	m := scaleModule()
	ad := NewAdministrator(nil)
	if _, err := ad.Administer(m, Responses{"yn": "yes", "sc": 3}); err != nil {
		t.Fatal(err)
	}

	report := SummaryReport(ad.History(), ad.History()[0].CompletedAt)
	for _, want := range []string{"ADMINISTRATION SUMMARY REPORT", "Test Module", "POSITIVE"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if got := SummaryReport(nil, ad.History()[0].CompletedAt); got != "No results to summarize." {
		t.Errorf("empty report = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{ModuleName: "A", Percentage: 0.8, CriteriaMet: true, AdministrationTimeMins: 3},
		{ModuleName: "B", Percentage: 0.2, AdministrationTimeMins: 2},
	}
	stats := Summarize(results)
	if diff := stats.AverageScore - 0.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AverageScore = %v", stats.AverageScore)
	}
	if stats.MinScore != 0.2 || stats.MaxScore != 0.8 {
		t.Errorf("range = [%v, %v]", stats.MinScore, stats.MaxScore)
	}
	if stats.MostSevereModule != "A" {
		t.Errorf("MostSevereModule = %q", stats.MostSevereModule)
	}
	if stats.TotalAdministrationMins != 5 {
		t.Errorf("TotalAdministrationMins = %d", stats.TotalAdministrationMins)
	}
}
