package risk

import (
	"math"
	"strings"
	"testing"
)

func TestAnalyzeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"neutral", "I have trouble sleeping lately", 0.0},
		{"moderate keyword", "I feel hopeless and have been thinking about ending my life", 0.3},
		{"high risk phrase", "I want to end my life", 0.8},
		{"compounding capped", "I want to kill myself, end my life, suicide", 1.0},
		{"self harm", "I cut myself when stressed", 0.6},
		{"violence", "I have dangerous thoughts about revenge", 1.0},
		{"protective reduces", "hopeless but my family keeps me going", 0.3 - 0.2},
		{"protective can go negative", "my family and friends give me hope", -0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeText(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AnalyzeText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAssessTextOnlyModerate(t *testing.T) {
	// Moderate-risk language alone must register before any structured
	// answers are collected.
	text := "I feel hopeless and have been thinking about ending my life"
	if got := AnalyzeText(text); got < 0.3 {
		t.Errorf("text risk = %v, want >= 0.3", got)
	}

	a := Assess(Answers{}, text)
	if a.Value <= 0 {
		t.Errorf("assessment value = %v, want > 0", a.Value)
	}
}

func TestAssessStructuredHigh(t *testing.T) {
	answers := Answers{
		SuicideIdeation:   true,
		SuicidePlan:       "yes, I have thought about a method",
		SuicideIntent:     true,
		ProtectiveFactors: "my family and my daughter",
	}
	a := Assess(answers, "")

	want := 0.25 + 0.20 + 0.15 - 0.02
	if math.Abs(a.Value-want) > 1e-9 {
		t.Errorf("value = %v, want %v", a.Value, want)
	}
	if a.Level != LevelHigh {
		t.Errorf("level = %v, want high", a.Level)
	}
	wantFactors := []string{"current suicidal thoughts", "specific suicide plan", "intent to act on thoughts"}
	if len(a.Factors) != len(wantFactors) {
		t.Fatalf("factors = %v", a.Factors)
	}
	for i, f := range wantFactors {
		if a.Factors[i] != f {
			t.Errorf("factor[%d] = %q, want %q", i, a.Factors[i], f)
		}
	}
}

func TestAssessClampAndCritical(t *testing.T) {
	answers := Answers{
		SuicideIdeation:   true,
		SuicidePlan:       "yes",
		SuicideIntent:     true,
		PastAttempts:      "yes, tried twice",
		SelfHarm:          "yes, cutting",
		HomicidalThoughts: true,
		AccessMeans:       "yes, medication at home",
	}
	a := Assess(answers, "I want to kill myself and end it all")
	if a.Value != 1.0 {
		t.Errorf("value = %v, want clamp to 1.0", a.Value)
	}
	if a.Level != LevelCritical {
		t.Errorf("level = %v, want critical", a.Level)
	}
}

func TestAssessNoConcerns(t *testing.T) {
	a := Assess(Answers{ProtectiveFactors: "my family, my friends, therapy"}, "trouble sleeping")
	if a.Value != 0.0 {
		t.Errorf("value = %v, want 0", a.Value)
	}
	if a.Level != LevelLow {
		t.Errorf("level = %v, want low", a.Level)
	}
	if len(a.Factors) != 0 {
		t.Errorf("factors = %v, want none", a.Factors)
	}
	if !strings.Contains(a.Rationale, "minimal safety concerns") {
		t.Errorf("rationale = %q", a.Rationale)
	}
}

func TestAssessProtectiveCap(t *testing.T) {
	// Six matched protective keywords would reduce 0.12 uncapped.
	answers := Answers{
		SuicideIdeation:   true,
		ProtectiveFactors: "family, children, pets, friends, hope, therapy",
	}
	a := Assess(answers, "")
	want := 0.25 - 0.10
	if math.Abs(a.Value-want) > 1e-9 {
		t.Errorf("value = %v, want %v (capped reduction)", a.Value, want)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0.0, LevelLow},
		{0.19, LevelLow},
		{0.2, LevelModerate},
		{0.49, LevelModerate},
		{0.5, LevelHigh},
		{0.79, LevelHigh},
		{0.8, LevelCritical},
		{1.0, LevelCritical},
	}
	for _, tt := range tests {
		if got := classify(tt.score); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestRationaleLimitsFactors(t *testing.T) {
	answers := Answers{
		SuicideIdeation:   true,
		SuicidePlan:       "yes",
		SuicideIntent:     true,
		PastAttempts:      "attempted once",
		HomicidalThoughts: true,
	}
	a := Assess(answers, "")
	if !strings.Contains(a.Rationale, "Additional factors considered") {
		t.Errorf("rationale missing overflow note: %q", a.Rationale)
	}
	if !strings.Contains(a.Rationale, "Limited protective factors") {
		t.Errorf("rationale missing protective note: %q", a.Rationale)
	}
	if strings.Contains(a.Rationale, "history of suicide attempts") {
		t.Errorf("rationale names a fourth factor: %q", a.Rationale)
	}
}

func TestNextQuestionFlows(t *testing.T) {
	if got := NextQuestion(nil, false); got != QSafetyScreen {
		t.Errorf("first question = %q, want safety_screen", got)
	}

	answered := map[string]bool{QSafetyScreen: true}
	if got := NextQuestion(answered, false); got != QSuicideIdeation {
		t.Errorf("full flow second = %q", got)
	}
	if got := NextQuestion(answered, true); got != QHomicidalThoughts {
		t.Errorf("short flow second = %q", got)
	}

	all := make(map[string]bool)
	for _, id := range fullFlow {
		all[id] = true
	}
	if got := NextQuestion(all, false); got != "" {
		t.Errorf("exhausted flow returned %q", got)
	}
}

func TestInterviewShortFlow(t *testing.T) {
	iv := NewInterview("trouble sleeping")

	q := iv.Next()
	if q == nil || q.ID != QSafetyScreen {
		t.Fatalf("first question = %v", q)
	}
	if _, err := iv.Record(QSafetyScreen, "no", ""); err != nil {
		t.Fatal(err)
	}

	var asked []string
	for {
		q := iv.Next()
		if q == nil {
			break
		}
		asked = append(asked, q.ID)
		if _, err := iv.Record(q.ID, "no", "none of that"); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{QHomicidalThoughts, QProtectiveFactors, QAccessMeans}
	if len(asked) != len(want) {
		t.Fatalf("short flow asked %v", asked)
	}
	for i := range want {
		if asked[i] != want[i] {
			t.Errorf("asked[%d] = %q, want %q", i, asked[i], want[i])
		}
	}
	if !iv.Done() {
		t.Error("interview not done after short flow")
	}

	a := iv.Assess()
	if a.Level != LevelLow {
		t.Errorf("level = %v, want low", a.Level)
	}
}

func TestInterviewFollowUpAndAnswers(t *testing.T) {
	iv := NewInterview("")
	if _, err := iv.Record(QSafetyScreen, "yes", "yes, I have been having these thoughts"); err != nil {
		t.Fatal(err)
	}
	if _, err := iv.Record(QSuicideIdeation, "", "started two weeks ago"); err != nil {
		t.Fatal(err)
	}

	followUp, err := iv.Record(QSuicidePlan, "yes", "")
	if err != nil {
		t.Fatal(err)
	}
	if followUp == "" {
		t.Error("yes to plan question: want follow-up prompt")
	}
	if _, err := iv.Record(QSuicidePlan, "yes", "thought about how"); err != nil {
		t.Fatal(err)
	}

	answers := iv.Answers()
	if !answers.SuicideIdeation {
		t.Error("ideation not recorded")
	}
	if answers.SuicidePlan != "thought about how" {
		t.Errorf("plan = %q", answers.SuicidePlan)
	}
}

func TestInterviewRejectsBadInput(t *testing.T) {
	iv := NewInterview("")
	if _, err := iv.Record("nope", "yes", ""); err == nil {
		t.Error("unknown question accepted")
	}
	if _, err := iv.Record(QSafetyScreen, "", "   "); err == nil {
		t.Error("empty response accepted")
	}
}

func TestInterviewQuestionCap(t *testing.T) {
	iv := NewInterview("")
	iv.maxQuestions = 2
	if _, err := iv.Record(QSafetyScreen, "yes", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := iv.Record(QSuicideIdeation, "", "recent thoughts"); err != nil {
		t.Fatal(err)
	}
	if q := iv.Next(); q != nil {
		t.Errorf("question beyond cap: %v", q)
	}
	if !iv.Done() {
		t.Error("capped interview not done")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelLow, "low"},
		{LevelModerate, "moderate"},
		{LevelHigh, "high"},
		{LevelCritical, "critical"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
