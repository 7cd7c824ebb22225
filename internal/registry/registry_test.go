package registry

import (
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if r.Len() != 14 {
		t.Errorf("Len() = %d, want 14", r.Len())
	}

	mdd := r.Get("MDD")
	if mdd == nil {
		t.Fatal("Get(MDD) = nil")
	}
	if mdd.Name != "Major Depressive Disorder" {
		t.Errorf("MDD name = %q", mdd.Name)
	}
	if got := r.Get("NO_SUCH_MODULE"); got != nil {
		t.Errorf("Get(NO_SUCH_MODULE) = %v, want nil", got)
	}
}

func TestModulesOrderStable(t *testing.T) {
	r := MustDefault()
	first := r.Modules()
	second := r.Modules()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("module order changed between calls at index %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestNewRejectsDuplicateModuleID(t *testing.T) {
	m := validModule("DUP")
	_, err := New([]Module{m, m})
	if err == nil {
		t.Fatal("New with duplicate module IDs: want error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error = %v, want mention of duplicate", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Module)
		wantErr string
	}{
		{"valid", func(m *Module) {}, ""},
		{"no questions", func(m *Module) { m.Questions = nil }, "at least one question"},
		{"threshold above one", func(m *Module) { m.DiagnosticThreshold = 1.2 }, "outside [0,1]"},
		{"threshold negative", func(m *Module) { m.DiagnosticThreshold = -0.1 }, "outside [0,1]"},
		{"duplicate question ID", func(m *Module) {
			m.Questions = append(m.Questions, m.Questions[0])
		}, "duplicate question ID"},
		{"negative weight", func(m *Module) { m.Questions[0].CriteriaWeight = -1 }, "negative criteria weight"},
		{"empty scale range", func(m *Module) {
			m.Questions[0].ResponseType = ResponseScale
			m.Questions[0].ScaleMin = 3
			m.Questions[0].ScaleMax = 3
		}, "scale range"},
		{"choice without options", func(m *Module) {
			m.Questions[0].ResponseType = ResponseMultipleChoice
			m.Questions[0].Options = nil
		}, "no options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModule("TEST")
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestSeverityRoundTrip(t *testing.T) {
	for _, s := range AllSeverities() {
		got, ok := ParseSeverity(s.String())
		if !ok || got != s {
			t.Errorf("ParseSeverity(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSeverity("catastrophic"); ok {
		t.Error("ParseSeverity accepted unknown label")
	}
}

func TestTotalWeight(t *testing.T) {
	m := Module{Questions: []Question{
		{ID: "a", CriteriaWeight: 2.0},
		{ID: "b", CriteriaWeight: 1.5},
		{ID: "c", CriteriaWeight: 0.5},
	}}
	if got := m.TotalWeight(); got != 4.0 {
		t.Errorf("TotalWeight() = %v, want 4.0", got)
	}
}

func TestRequiredQuestionIDs(t *testing.T) {
	m := validModule("X")
	m.Questions = []Question{
		{ID: "a", Required: true},
		{ID: "b"},
		{ID: "c", Required: true},
	}
	got := m.RequiredQuestionIDs()
	want := []string{"a", "c"}
	if len(got) != len(want) {
		t.Fatalf("RequiredQuestionIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RequiredQuestionIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func validModule(id string) Module {
	return Module{
		ID:                  id,
		Name:                "Test Module",
		Description:         "test",
		DiagnosticThreshold: 0.6,
		Questions: []Question{
			{ID: "q1", Text: "first?", ResponseType: ResponseYesNo, CriteriaWeight: 1.0},
			{ID: "q2", Text: "second?", ResponseType: ResponseScale, ScaleMin: 0, ScaleMax: 3, CriteriaWeight: 1.0},
		},
	}
}
