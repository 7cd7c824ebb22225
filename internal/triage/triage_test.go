package triage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ksuri/mindtriage/internal/fingerprint"
	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/ksuri/mindtriage/internal/semantic"
)

func newTestScorer(t *testing.T) (*registry.Registry, *Scorer) {
	t.Helper()
	reg := registry.MustDefault()
	idx := fingerprint.Build(reg)
	return reg, NewScorer(reg, idx, semantic.NewKeywordScorer())
}

func depressedPatient() *Patient {
	return &Patient{
		Age:     32,
		Gender:  "female",
		Concern: "I have been feeling depressed and hopeless for months, nothing interests me anymore",
		Symptoms: []Symptom{
			{Name: "depressed mood", Detail: "sad and empty most of the day", Severity: "moderate"},
			{Name: "loss of interest", Detail: "stopped seeing friends, hobbies feel pointless"},
			{Name: "sleep disturbance", Detail: "waking up too early every night"},
		},
		SeverityLevel: "moderate",
		OnsetTime:     "gradual, over the past year",
	}
}

func TestScoreModuleRange(t *testing.T) {
	reg, scorer := newTestScorer(t)
	p := depressedPatient()
	for _, m := range reg.Modules() {
		rel, err := scorer.ScoreModule(context.Background(), m.ID, p)
		if err != nil {
			t.Fatalf("ScoreModule(%s): %v", m.ID, err)
		}
		if rel.Score < 0 || rel.Score > 1 {
			t.Errorf("%s score = %v, outside [0,1]", m.ID, rel.Score)
		}
		if rel.Confidence < 0 || rel.Confidence > 1 {
			t.Errorf("%s confidence = %v, outside [0,1]", m.ID, rel.Confidence)
		}
	}
}

func TestScoreModuleIdempotent(t *testing.T) {
	_, scorer := newTestScorer(t)
	p := depressedPatient()
	first, err := scorer.ScoreModule(context.Background(), "MDD", p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := scorer.ScoreModule(context.Background(), "MDD", p)
	if err != nil {
		t.Fatal(err)
	}
	if first.Score != second.Score || first.Confidence != second.Confidence {
		t.Errorf("not idempotent: %+v vs %+v", first, second)
	}
}

func TestScoreModuleUnknown(t *testing.T) {
	_, scorer := newTestScorer(t)
	if _, err := scorer.ScoreModule(context.Background(), "NOPE", depressedPatient()); err == nil {
		t.Fatal("want error for unknown module")
	}
}

func TestDepressedPatientRanksMDDHighest(t *testing.T) {
	reg, scorer := newTestScorer(t)
	sel := NewSelector(reg, scorer, func(string, ...any) {})
	results := sel.Select(context.Background(), depressedPatient(), SelectOptions{MaxModules: 5, MinThreshold: 0.1})
	if len(results) == 0 {
		t.Fatal("no modules selected")
	}
	if results[0].ModuleID != "MDD" {
		t.Errorf("top module = %s, want MDD (results: %v)", results[0].ModuleID, moduleIDs(results))
	}
}

func TestMonotonicityMoreSymptoms(t *testing.T) {
	_, scorer := newTestScorer(t)

	few := &Patient{
		Concern:  "feeling down",
		Symptoms: []Symptom{{Name: "depressed mood", Detail: "sad most days"}},
	}
	more := &Patient{
		Concern: "feeling down",
		Symptoms: []Symptom{
			{Name: "depressed mood", Detail: "sad most days"},
			{Name: "worthlessness", Detail: "feel like a burden, blame myself"},
			{Name: "concentration problems", Detail: "hard to concentrate or make decisions"},
		},
	}

	relFew, err := scorer.ScoreModule(context.Background(), "MDD", few)
	if err != nil {
		t.Fatal(err)
	}
	relMore, err := scorer.ScoreModule(context.Background(), "MDD", more)
	if err != nil {
		t.Fatal(err)
	}
	if relMore.Score < relFew.Score {
		t.Errorf("adding matching symptoms lowered score: %v -> %v", relFew.Score, relMore.Score)
	}
}

func TestSeverityMultiplierRaisesSymptomSignal(t *testing.T) {
	_, scorer := newTestScorer(t)
	mild := &Patient{Symptoms: []Symptom{{Name: "depressed mood", Severity: "mild"}}}
	severe := &Patient{Symptoms: []Symptom{{Name: "depressed mood", Severity: "severe"}}}

	relMild, _ := scorer.ScoreModule(context.Background(), "MDD", mild)
	relSevere, _ := scorer.ScoreModule(context.Background(), "MDD", severe)
	if relSevere.Score <= relMild.Score {
		t.Errorf("severe symptom did not outscore mild: %v <= %v", relSevere.Score, relMild.Score)
	}
}

func TestSelectHighThresholdEmptyNotError(t *testing.T) {
	reg, scorer := newTestScorer(t)
	sel := NewSelector(reg, scorer, func(string, ...any) {})
	results := sel.Select(context.Background(), depressedPatient(), SelectOptions{MaxModules: 5, MinThreshold: 0.9})
	if len(results) != 0 {
		t.Errorf("threshold 0.9 returned %v, want empty", moduleIDs(results))
	}
}

func TestSelectTruncates(t *testing.T) {
	reg, scorer := newTestScorer(t)
	sel := NewSelector(reg, scorer, func(string, ...any) {})
	results := sel.Select(context.Background(), depressedPatient(), SelectOptions{MaxModules: 2, MinThreshold: 0.0})
	if len(results) > 2 {
		t.Errorf("got %d results, want at most 2", len(results))
	}
}

func TestSelectSortedDescending(t *testing.T) {
	reg, scorer := newTestScorer(t)
	sel := NewSelector(reg, scorer, func(string, ...any) {})
	results := sel.Select(context.Background(), depressedPatient(), SelectOptions{MaxModules: 14, MinThreshold: 0.0})
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted at %d: %v", i, moduleIDs(results))
		}
	}
}

func TestSelectSkipsFailingModule(t *testing.T) {
	reg := registry.MustDefault()
	idx := fingerprint.Build(reg)
	failing := semantic.ScorerFunc(func(_ context.Context, m semantic.ModuleDescriptor, _ semantic.PatientInput) (float64, error) {
		if m.ID == "MDD" {
			return 0, context.DeadlineExceeded
		}
		return 0.5, nil
	})
	scorer := NewScorer(reg, idx, failing)

	var warnings int
	sel := NewSelector(reg, scorer, func(string, ...any) { warnings++ })
	results := sel.Select(context.Background(), depressedPatient(), SelectOptions{MaxModules: 14, MinThreshold: 0.0})

	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
	for _, rel := range results {
		if rel.ModuleID == "MDD" {
			t.Error("failing module present in results")
		}
	}
	if len(results) == 0 {
		t.Error("all modules skipped, want only the failing one")
	}
}

func TestSeverityBoostReordersHighImpact(t *testing.T) {
	results := []Relevancy{
		{ModuleID: "GAD", Score: 0.62},
		{ModuleID: "MDD", Score: 0.58},
	}
	boosted := applySeverityBoost(results, "severe")
	if boosted[0].ModuleID != "MDD" {
		t.Errorf("after severe boost top = %s, want MDD", boosted[0].ModuleID)
	}
	if got := boosted[0].Score; got < 0.73-1e-9 || got > 0.73+1e-9 {
		t.Errorf("boosted score = %v, want 0.73", got)
	}
	if len(boosted[0].Reasons) != 1 || boosted[0].Reasons[0].Kind != ReasonSeverityMatch {
		t.Errorf("boost reason missing: %+v", boosted[0].Reasons)
	}
}

func TestSeverityBoostClamps(t *testing.T) {
	results := []Relevancy{{ModuleID: "PTSD", Score: 0.95}}
	boosted := applySeverityBoost(results, "extreme")
	if boosted[0].Score != 1 {
		t.Errorf("score = %v, want clamp to 1", boosted[0].Score)
	}
}

func TestPriorityTiers(t *testing.T) {
	calm := &Patient{Concern: "mild worry now and then"}
	tests := []struct {
		score float64
		want  Priority
	}{
		{0.85, PriorityHigh},
		{0.8, PriorityHigh},
		{0.7, PriorityMedium},
		{0.6, PriorityMedium},
		{0.3, PriorityLow},
	}
	for _, tt := range tests {
		if got := priorityFor(tt.score, calm); got != tt.want {
			t.Errorf("priorityFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestCrisisKeywordForcesUrgent(t *testing.T) {
	p := &Patient{Concern: "having suicidal thoughts"}
	if got := priorityFor(0.1, p); got != PriorityUrgent {
		t.Errorf("priority = %v, want urgent", got)
	}
	p = &Patient{ChiefComplaint: "family says this is a crisis"}
	if got := priorityFor(0.1, p); got != PriorityUrgent {
		t.Errorf("priority from chief complaint = %v, want urgent", got)
	}
}

func TestConfidence(t *testing.T) {
	if got := confidence(nil); got != 0 {
		t.Errorf("confidence(nil) = %v, want 0", got)
	}

	// One reason at 0.5: 0.7*0.5 + 0.3*(1/5) = 0.41.
	got := confidence([]Reason{{Score: 0.5}})
	if diff := got - 0.41; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want 0.41", got)
	}

	// Reason count factor saturates at five.
	many := make([]Reason, 8)
	for i := range many {
		many[i].Score = 1.0
	}
	if got := confidence(many); got != 1.0 {
		t.Errorf("confidence = %v, want 1.0", got)
	}
}

func TestComorbiditySignal(t *testing.T) {
	reg := registry.MustDefault()
	sig := &comorbiditySignal{}
	p := &Patient{PreviousDiagnoses: []string{"major depressive disorder (mdd)"}}

	// MDD -> GAD edge carries 0.7.
	score, reasons, err := sig.Evaluate(context.Background(), reg.Get("GAD"), p)
	if err != nil {
		t.Fatal(err)
	}
	if score != 0.7 {
		t.Errorf("score = %v, want 0.7", score)
	}
	if len(reasons) != 1 || !strings.Contains(reasons[0].Explanation, "MDD") {
		t.Errorf("reasons = %+v", reasons)
	}

	// No prior diagnoses, no signal.
	score, reasons, _ = sig.Evaluate(context.Background(), reg.Get("GAD"), &Patient{})
	if score != 0 || reasons != nil {
		t.Errorf("empty history: score = %v, reasons = %v", score, reasons)
	}
}

func TestDemographicSignal(t *testing.T) {
	reg := registry.MustDefault()
	sig := &demographicSignal{}

	// EATING_DISORDERS factors: age_12_25 0.7, female 0.9, perfectionism
	// 0.5, body_image 0.8 (total 2.9). Matching age and gender: 1.6/2.9.
	p := &Patient{Age: 19, Gender: "Female"}
	score, reasons, err := sig.Evaluate(context.Background(), reg.Get("EATING_DISORDERS"), p)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.6 / 2.9
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want %v", score, want)
	}
	if len(reasons) != 1 {
		t.Fatalf("reasons = %+v", reasons)
	}

	// Family history token containment.
	p = &Patient{FamilyHistory: []string{"Mother diagnosed with bipolar disorder"}}
	score, _, _ = sig.Evaluate(context.Background(), reg.Get("BIPOLAR"), p)
	if score <= 0 {
		t.Errorf("family history match score = %v, want > 0", score)
	}
}

func TestTemporalSignal(t *testing.T) {
	reg := registry.MustDefault()
	sig := &temporalSignal{}

	p := &Patient{OnsetTime: "sudden, last week"}
	score, _, _ := sig.Evaluate(context.Background(), reg.Get("PANIC"), p)
	if score != 0.5 {
		t.Errorf("acute onset for PANIC = %v, want 0.5", score)
	}
	score, _, _ = sig.Evaluate(context.Background(), reg.Get("GAD"), p)
	if score != 0 {
		t.Errorf("acute onset for GAD = %v, want 0", score)
	}

	p = &Patient{OnsetTime: "gradual decline", SeverityLevel: "severe"}
	score, reasons, _ := sig.Evaluate(context.Background(), reg.Get("MDD"), p)
	if score != 0.8 {
		t.Errorf("gradual severe MDD = %v, want 0.8", score)
	}
	if len(reasons) != 2 {
		t.Errorf("reasons = %+v, want temporal and severity entries", reasons)
	}
}

func TestReport(t *testing.T) {
	reg, scorer := newTestScorer(t)
	sel := NewSelector(reg, scorer, func(string, ...any) {})
	p := depressedPatient()
	results := sel.Select(context.Background(), p, SelectOptions{MaxModules: 3, MinThreshold: 0.1})

	report := Report(results, p, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	for _, want := range []string{
		"MODULE SELECTION REPORT",
		"RECOMMENDED MODULES",
		"Relevancy Score",
		"2026-03-14 10:00:00",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if got := Report(nil, p, time.Now()); !strings.Contains(got, "No relevant modules") {
		t.Errorf("empty report = %q", got)
	}
}

func TestSelectionStatistics(t *testing.T) {
	stats := SelectionStatistics([]Relevancy{
		{Score: 0.8, Confidence: 0.75, Priority: PriorityHigh, EstimatedTimeMins: 25},
		{Score: 0.4, Confidence: 0.3, Priority: PriorityLow, EstimatedTimeMins: 15},
	})
	if stats.TotalModules != 2 {
		t.Errorf("TotalModules = %d", stats.TotalModules)
	}
	if diff := stats.AverageRelevancy - 0.6; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AverageRelevancy = %v, want 0.6", stats.AverageRelevancy)
	}
	if stats.HighestRelevancy != 0.8 || stats.LowestRelevancy != 0.4 {
		t.Errorf("range = [%v, %v]", stats.LowestRelevancy, stats.HighestRelevancy)
	}
	if stats.TotalEstimatedMins != 40 {
		t.Errorf("TotalEstimatedMins = %d", stats.TotalEstimatedMins)
	}
	if stats.HighConfidenceModules != 1 {
		t.Errorf("HighConfidenceModules = %d", stats.HighConfidenceModules)
	}
	if stats.PriorityDistribution["high"] != 1 || stats.PriorityDistribution["low"] != 1 {
		t.Errorf("PriorityDistribution = %v", stats.PriorityDistribution)
	}
}

func moduleIDs(results []Relevancy) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ModuleID
	}
	return ids
}
