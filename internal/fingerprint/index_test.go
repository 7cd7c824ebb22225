package fingerprint

import (
	"math"
	"testing"

	"github.com/ksuri/mindtriage/internal/registry"
)

func testModule() registry.Module {
	return registry.Module{
		ID:                  "TEST",
		Name:                "Test",
		DiagnosticThreshold: 0.5,
		Criteria: []string{
			"Depressed mood nearly every day",
			"Loss of interest in activities",
		},
		Questions: []registry.Question{
			{
				ID:              "q1",
				Text:            "Clinical phrasing here?",
				SimpleText:      "feeling sad",
				ResponseType:    registry.ResponseYesNo,
				CriteriaWeight:  1,
				SymptomCategory: "depressed_mood",
				HelpText:        "persistent sadness",
				Examples:        []string{"crying often"},
			},
		},
	}
}

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	reg, err := registry.New([]registry.Module{testModule()})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return Build(reg)
}

func TestBuildWeights(t *testing.T) {
	fp := buildTestIndex(t).Get("TEST")
	if fp == nil {
		t.Fatal("Get(TEST) = nil")
	}

	tests := []struct {
		keyword string
		want    float64
	}{
		{"feeling", 0.3},
		{"sad", 0.3},
		{"feeling sad", 0.3},
		{"crying", 0.5},
		{"crying often", 0.5},
		{"persistent", 0.2},
		{"depressed", 0.7},
		{"mood", 0.7},
	}
	for _, tt := range tests {
		if got := fp.Weights[tt.keyword]; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("weight[%q] = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}

func TestTotalIsSumOfWeights(t *testing.T) {
	fp := buildTestIndex(t).Get("TEST")
	var sum float64
	for _, w := range fp.Weights {
		sum += w
	}
	if math.Abs(fp.Total-sum) > 1e-9 {
		t.Errorf("Total = %v, want %v", fp.Total, sum)
	}
}

func TestMatchShare(t *testing.T) {
	fp := &Fingerprint{
		ModuleID: "TEST",
		Weights:  map[string]float64{"sleep": 2, "appetite": 2, "mood": 6},
		Total:    10,
	}
	matched, share := fp.Match([]string{"sleep", "mood", "unknown"})
	if matched != 8 {
		t.Errorf("matched = %v, want 8", matched)
	}
	if share != 0.8 {
		t.Errorf("share = %v, want 0.8", share)
	}

	// A fingerprint with 10 total weight and 6 matched yields 0.6.
	_, share = fp.Match([]string{"mood"})
	if share != 0.6 {
		t.Errorf("share = %v, want 0.6", share)
	}
}

func TestMatchShareClamped(t *testing.T) {
	fp := &Fingerprint{Weights: map[string]float64{"a": 5}, Total: 3}
	if _, share := fp.Match([]string{"a"}); share != 1 {
		t.Errorf("share = %v, want clamp to 1", share)
	}
}

func TestMatchEmptyFingerprint(t *testing.T) {
	fp := &Fingerprint{Weights: map[string]float64{}}
	matched, share := fp.Match([]string{"anything"})
	if matched != 0 || share != 0 {
		t.Errorf("Match on empty fingerprint = %v, %v, want 0, 0", matched, share)
	}
}

func TestCriteriaOverlap(t *testing.T) {
	fp := buildTestIndex(t).Get("TEST")
	if len(fp.Criteria) == 0 {
		t.Fatal("criteria keywords empty")
	}
	if got := fp.CriteriaOverlap(map[string]bool{}); got != 0 {
		t.Errorf("overlap with empty set = %v, want 0", got)
	}

	all := make(map[string]bool, len(fp.Criteria))
	for kw := range fp.Criteria {
		all[kw] = true
	}
	if got := fp.CriteriaOverlap(all); got != 1 {
		t.Errorf("overlap with full set = %v, want 1", got)
	}
}

func TestCategoryTokens(t *testing.T) {
	got := categoryTokens("loss_of_interest")
	want := []string{"loss", "interest"}
	if len(got) != len(want) {
		t.Fatalf("categoryTokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categoryTokens[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if categoryTokens("") != nil {
		t.Error("categoryTokens(\"\") != nil")
	}
}
