package semantic

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ksuri/mindtriage/internal/llm"
)

var depressionModule = ModuleDescriptor{
	ID:          "MDD",
	Name:        "Major Depressive Disorder",
	Description: "Persistent depressed mood and loss of interest",
}

func TestKeywordScorerOverlap(t *testing.T) {
	s := NewKeywordScorer()

	score, err := s.Score(context.Background(), depressionModule, PatientInput{
		Concern: "I have a persistent depressed mood lately",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score <= 0 || score > 1 {
		t.Errorf("score = %v, want in (0,1]", score)
	}

	zero, err := s.Score(context.Background(), depressionModule, PatientInput{
		Concern: "completely unrelated automotive trouble",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if zero != 0 {
		t.Errorf("score for unrelated concern = %v, want 0", zero)
	}
}

func TestKeywordScorerUsesSymptoms(t *testing.T) {
	s := NewKeywordScorer()
	bare, _ := s.Score(context.Background(), depressionModule, PatientInput{Concern: "not sleeping"})
	withSymptoms, _ := s.Score(context.Background(), depressionModule, PatientInput{
		Concern:  "not sleeping",
		Symptoms: []string{"depressed mood", "loss of interest"},
	})
	if withSymptoms <= bare {
		t.Errorf("symptoms did not raise score: %v <= %v", withSymptoms, bare)
	}
}

func TestKeywordScorerEmptyDescription(t *testing.T) {
	s := NewKeywordScorer()
	score, err := s.Score(context.Background(), ModuleDescriptor{ID: "X"}, PatientInput{Concern: "anything"})
	if err != nil || score != 0 {
		t.Errorf("Score = %v, %v, want 0, nil", score, err)
	}
}

func TestLLMScorer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"relevance": 0.85, "reasoning": "strong topical match"}`),
	})
	s := NewLLMScorer(mock, DefaultLLMScorerConfig())

	score, err := s.Score(context.Background(), depressionModule, PatientInput{
		Concern: "feeling hopeless and empty",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score != 0.85 {
		t.Errorf("score = %v, want 0.85", score)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "module-relevance" {
		t.Errorf("request schema = %+v, want module-relevance", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Major Depressive Disorder") {
		t.Errorf("prompt missing module name: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "feeling hopeless") {
		t.Errorf("prompt missing concern: %q", req.Messages[0].Content)
	}
}

func TestLLMScorerClampsOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"relevance": 1.7}`),
	})
	s := NewLLMScorer(mock, DefaultLLMScorerConfig())
	score, err := s.Score(context.Background(), depressionModule, PatientInput{Concern: "x"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score != 1 {
		t.Errorf("score = %v, want clamp to 1", score)
	}
}

func TestLLMScorerMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	s := NewLLMScorer(mock, DefaultLLMScorerConfig())
	if _, err := s.Score(context.Background(), depressionModule, PatientInput{Concern: "x"}); err == nil {
		t.Fatal("want error for malformed response")
	}
}

func TestFallbackScorer(t *testing.T) {
	boom := errors.New("provider down")
	failing := ScorerFunc(func(context.Context, ModuleDescriptor, PatientInput) (float64, error) {
		return 0, boom
	})
	constant := ScorerFunc(func(context.Context, ModuleDescriptor, PatientInput) (float64, error) {
		return 0.42, nil
	})

	var logged []string
	f := WithFallback(failing, constant, func(format string, args ...any) {
		logged = append(logged, format)
	})

	score, err := f.Score(context.Background(), depressionModule, PatientInput{Concern: "x"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score != 0.42 {
		t.Errorf("score = %v, want fallback 0.42", score)
	}
	if len(logged) != 1 {
		t.Errorf("logged %d times, want 1", len(logged))
	}
}

func TestFallbackScorerPrimarySuccess(t *testing.T) {
	primary := ScorerFunc(func(context.Context, ModuleDescriptor, PatientInput) (float64, error) {
		return 0.9, nil
	})
	secondary := ScorerFunc(func(context.Context, ModuleDescriptor, PatientInput) (float64, error) {
		t.Fatal("secondary called despite primary success")
		return 0, nil
	})
	f := WithFallback(primary, secondary, func(string, ...any) {})
	score, err := f.Score(context.Background(), depressionModule, PatientInput{Concern: "x"})
	if err != nil || score != 0.9 {
		t.Errorf("Score = %v, %v, want 0.9, nil", score, err)
	}
}
