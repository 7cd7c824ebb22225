package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "module-relevance",
		InputTokens:  120,
		OutputTokens: 18,
		LatencyMs:    420,
		Success:      true,
		RequestBody:  `{"prompt":"..."}`,
		ResponseBody: `{"relevance_score":0.7}`,
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, data))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "module-relevance", events[0].Purpose)
	require.Equal(t, 120, events[0].InputTokens)
	require.Equal(t, int64(1), events[0].Sequence)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, data.ResponseBody, got.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: "module-relevance",
			InputTokens: 100, OutputTokens: 10, LatencyMs: 300, Success: true,
		}))
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "validation",
		InputTokens: 50, OutputTokens: 5, LatencyMs: 100, Success: true,
	}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	stats := make(map[string]PurposeUsage)
	for _, u := range byPurpose {
		stats[u.Purpose] = u
	}
	require.Equal(t, 3, stats["module-relevance"].Calls)
	require.Equal(t, 300, stats["module-relevance"].InputTokens)
	require.Equal(t, 1, stats["validation"].Calls)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	require.Equal(t, 4, byModel[0].Calls)
	require.Equal(t, 350, byModel[0].InputTokens)
}

func TestSelectionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := SelectionEventData{
		AssessmentID: "a1b2c3",
		Concern:      "persistent sadness and loss of interest",
		MaxModules:   5,
		MinThreshold: 0.3,
		Selected: []SelectedModule{
			{ModuleID: "MDD", ModuleName: "Major Depressive Disorder", Score: 0.82, Confidence: 0.7, Priority: "high"},
			{ModuleID: "GAD", ModuleName: "Generalized Anxiety Disorder", Score: 0.44, Confidence: 0.5, Priority: "low"},
		},
	}
	require.NoError(t, repo.AppendSelection(ctx, data))

	records, err := repo.QuerySelections(ctx, QueryOpts{AssessmentID: "a1b2c3"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, data.Concern, records[0].Concern)
	require.Len(t, records[0].Selected, 2)
	require.Equal(t, "MDD", records[0].Selected[0].ModuleID)
	require.Equal(t, 0.82, records[0].Selected[0].Score)

	none, err := repo.QuerySelections(ctx, QueryOpts{AssessmentID: "other"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestAdministrationEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := AdministrationEventData{
		AssessmentID:   "a1b2c3",
		ModuleID:       "MDD",
		ModuleName:     "Major Depressive Disorder",
		TotalScore:     6.5,
		MaxScore:       9.0,
		Percentage:     6.5 / 9.0,
		CriteriaMet:    true,
		Severity:       "moderate",
		SymptomCount:   4,
		AdminTimeMins:  3,
		QuestionScores: map[string]float64{"mdd_mood": 1.0, "mdd_sleep": 0.5},
	}
	require.NoError(t, repo.AppendAdministration(ctx, data))

	records, err := repo.QueryAdministrations(ctx, QueryOpts{AssessmentID: "a1b2c3"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "moderate", records[0].Severity)
	require.True(t, records[0].CriteriaMet)
	require.Equal(t, 1.0, records[0].QuestionScores["mdd_mood"])
}

func TestRiskEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := RiskEventData{
		AssessmentID: "a1b2c3",
		Level:        "high",
		Value:        0.58,
		Factors:      []string{"current suicidal thoughts", "specific suicide plan"},
		Rationale:    "Risk level high (score: 0.58) based on: current suicidal thoughts, specific suicide plan.",
	}
	require.NoError(t, repo.AppendRisk(ctx, data))

	records, err := repo.QueryRisks(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "high", records[0].Level)
	require.Equal(t, 0.58, records[0].Value)
	require.Len(t, records[0].Factors, 2)
}

func TestGlobalSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSelection(ctx, SelectionEventData{AssessmentID: "x", Concern: "worry", MaxModules: 5, MinThreshold: 0.3}))
	require.NoError(t, repo.AppendRisk(ctx, RiskEventData{AssessmentID: "x", Level: "low", Value: 0.0}))
	require.NoError(t, repo.AppendAdministration(ctx, AdministrationEventData{AssessmentID: "x", ModuleID: "GAD", ModuleName: "GAD"}))

	selections, err := repo.QuerySelections(ctx, QueryOpts{})
	require.NoError(t, err)
	risks, err := repo.QueryRisks(ctx, QueryOpts{})
	require.NoError(t, err)
	admins, err := repo.QueryAdministrations(ctx, QueryOpts{})
	require.NoError(t, err)

	require.Equal(t, int64(1), selections[0].Sequence)
	require.Equal(t, int64(2), risks[0].Sequence)
	require.Equal(t, int64(3), admins[0].Sequence)
}

func TestPatientSnapshotRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.PatientSnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, &PatientSnapshot{
			Sequence:     int64(i + 1),
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
			AssessmentID: "assess-" + string(rune('a'+i)),
			Data:         map[string]any{"age": 25 + i, "concern": "worry"},
		}))
	}

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, int64(7), snap.Sequence)

	byID, err := repo.ByAssessment(ctx, "assess-c")
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, int64(3), byID.Sequence)

	require.NoError(t, repo.Prune(ctx, 5))
	count, err := s.Client().PatientSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, count)
}

func TestExport(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSelection(ctx, SelectionEventData{
		AssessmentID: "exp-1", Concern: "low mood", MaxModules: 5, MinThreshold: 0.3,
		Selected: []SelectedModule{{ModuleID: "MDD", ModuleName: "Major Depressive Disorder", Score: 0.8, Priority: "high"}},
	}))
	require.NoError(t, repo.AppendRisk(ctx, RiskEventData{AssessmentID: "exp-1", Level: "moderate", Value: 0.3}))

	out, err := Export(ctx, s, QueryOpts{AssessmentID: "exp-1"})
	require.NoError(t, err)
	require.Contains(t, string(out), `"selections"`)
	require.Contains(t, string(out), `"risk_assessments"`)
	require.Contains(t, string(out), "MDD")
}
