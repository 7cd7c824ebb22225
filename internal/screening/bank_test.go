package screening

import (
	"math"
	"testing"

	"github.com/ksuri/mindtriage/internal/registry"
)

func testBank(t *testing.T) *Bank {
	t.Helper()
	return New(registry.MustDefault())
}

func TestModuleScoresEmptyConcern(t *testing.T) {
	b := testBank(t)
	if got := b.ModuleScores("", 0.3); got != nil {
		t.Errorf("ModuleScores(\"\") = %v, want nil", got)
	}
	if got := b.ModuleScores("   ", 0.3); got != nil {
		t.Errorf("ModuleScores(whitespace) = %v, want nil", got)
	}
}

func TestModuleScoresPanicConcern(t *testing.T) {
	b := testBank(t)
	scores := b.ModuleScores("I keep having sudden panic attacks with my heart racing and intense fear", 0.3)
	if len(scores) == 0 {
		t.Fatal("no modules scored")
	}
	if scores[0].ModuleID != "PANIC" {
		t.Errorf("top module = %s, want PANIC (all: %v)", scores[0].ModuleID, scores)
	}
	for _, s := range scores {
		if s.Score < 0 || s.Score > 1 {
			t.Errorf("score for %s = %v, outside [0,1]", s.ModuleID, s.Score)
		}
	}
}

func TestModuleScoresSortedDescending(t *testing.T) {
	b := testBank(t)
	scores := b.ModuleScores("feeling depressed and hopeless, constant worry, nightmares about the accident", 0.1)
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			t.Errorf("scores not descending at %d: %v", i, scores)
		}
	}
}

func TestModuleScoresThreshold(t *testing.T) {
	b := testBank(t)
	concern := "I feel depressed and sad all the time"
	loose := b.ModuleScores(concern, 0.0)
	strict := b.ModuleScores(concern, 0.99)
	if len(strict) >= len(loose) && len(loose) > 0 {
		t.Errorf("strict threshold kept %d of %d modules", len(strict), len(loose))
	}
}

func TestModuleScoresDeterministic(t *testing.T) {
	b := testBank(t)
	concern := "worried and anxious about everything"
	first := b.ModuleScores(concern, 0.1)
	second := b.ModuleScores(concern, 0.1)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestKeywordBoostWithoutSimilarity(t *testing.T) {
	reg, err := registry.New([]registry.Module{{
		ID:                  "M1",
		Name:                "M1",
		DiagnosticThreshold: 0.5,
		PriorityWeight:      1.0,
		Questions: []registry.Question{
			{ID: "q", Text: "?", ResponseType: registry.ResponseText},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}
	bank := NewWithItems(reg, []Item{{
		ID:            "I1",
		Text:          "completely unrelated wording here",
		LinkedModules: []string{"M1"},
		Severity:      SeverityMedium,
		Keywords:      []string{"zebra", "quagga"},
	}})

	// Two keyword hits at 0.2 each and no text overlap: score near 0.4.
	scores := bank.ModuleScores("saw a zebra and a quagga", 0.3)
	if len(scores) != 1 {
		t.Fatalf("scores = %v, want one entry", scores)
	}
	if math.Abs(scores[0].Score-0.4) > 0.05 {
		t.Errorf("score = %v, want about 0.4", scores[0].Score)
	}
}

func TestSeverityWeight(t *testing.T) {
	tests := []struct {
		sev  ItemSeverity
		want float64
	}{
		{SeverityLow, 0.8},
		{SeverityMedium, 1.0},
		{SeverityHigh, 1.2},
		{ItemSeverity("unknown"), 1.0},
	}
	for _, tt := range tests {
		if got := tt.sev.Weight(); got != tt.want {
			t.Errorf("Weight(%s) = %v, want %v", tt.sev, got, tt.want)
		}
	}
}

func TestDefaultItemsLinkKnownModules(t *testing.T) {
	reg := registry.MustDefault()
	for _, item := range defaultItems() {
		for _, moduleID := range item.LinkedModules {
			if reg.Get(moduleID) == nil {
				t.Errorf("item %s links unknown module %s", item.ID, moduleID)
			}
		}
	}
}

func TestVectorizerSimilarity(t *testing.T) {
	v := newVectorizer([]string{
		"sudden panic attacks with racing heart",
		"restricting food because of weight concerns",
	})
	same := v.similarity("sudden panic attacks with racing heart", 0)
	cross := v.similarity("sudden panic attacks with racing heart", 1)
	if same < 0.99 {
		t.Errorf("self similarity = %v, want about 1", same)
	}
	if cross >= same {
		t.Errorf("cross similarity %v not below self similarity %v", cross, same)
	}
	if cross < 0 || cross > 1 {
		t.Errorf("similarity %v outside [0,1]", cross)
	}
}
