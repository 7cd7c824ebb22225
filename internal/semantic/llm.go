package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/ksuri/mindtriage/internal/llm"
)

// LLMScorerConfig holds configuration for the LLM relevance scorer.
type LLMScorerConfig struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single relevance judgment. A slow provider must not
	// stall batch module scoring.
	Timeout time.Duration
}

// DefaultLLMScorerConfig returns sensible defaults.
func DefaultLLMScorerConfig() LLMScorerConfig {
	return LLMScorerConfig{
		MaxTokens:   128,
		Temperature: 0.0,
		Timeout:     10 * time.Second,
	}
}

// LLMScorer judges module relevance with a structured LLM call.
type LLMScorer struct {
	provider llm.Provider
	cfg      LLMScorerConfig
}

// NewLLMScorer creates an LLM-backed relevance scorer.
func NewLLMScorer(provider llm.Provider, cfg LLMScorerConfig) *LLMScorer {
	return &LLMScorer{provider: provider, cfg: cfg}
}

// relevanceOutput is the raw LLM response.
type relevanceOutput struct {
	Relevance float64 `json:"relevance"`
	Reasoning string  `json:"reasoning"`
}

// RelevanceSchema is the structured output contract for relevance judgments.
var RelevanceSchema = &llm.Schema{
	Name:        "module-relevance",
	Description: "Relevance of a patient's presenting concern to one diagnostic interview module",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relevance": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How relevant the module is to this presentation, 0.0 to 1.0",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One-sentence justification",
			},
		},
		"required":             []string{"relevance"},
		"additionalProperties": false,
	},
}

// Score asks the LLM how relevant the module is to the patient's
// presentation. The result is clamped to [0,1].
func (s *LLMScorer) Score(ctx context.Context, module ModuleDescriptor, patient PatientInput) (float64, error) {
	ctx = llm.WithPurpose(ctx, "module-relevance")
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	userMsg, err := buildRelevanceMessage(module, patient)
	if err != nil {
		return 0, fmt.Errorf("build relevance prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: relevanceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      RelevanceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return 0, fmt.Errorf("LLM relevance scoring failed: %w", err)
	}

	var raw relevanceOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return 0, fmt.Errorf("failed to parse relevance response: %w", err)
	}
	return clamp01(raw.Relevance), nil
}

const relevanceSystemPrompt = `You are a clinical intake triage assistant. Given a patient's presenting concern and a structured interview module, judge how relevant the module is to this patient.

Instructions:
- Return a relevance score between 0.0 (clearly irrelevant) and 1.0 (clearly the right module).
- Judge only topical relevance. Do not diagnose.
- Keep reasoning to one sentence.`

var relevanceUserTemplate = template.Must(template.New("relevance").Parse(`Module: {{.ModuleName}}
Module focus: {{.ModuleDescription}}

Presenting concern: {{.Concern}}
{{if .Symptoms}}Reported symptoms: {{.Symptoms}}{{end}}`))

func buildRelevanceMessage(module ModuleDescriptor, patient PatientInput) (string, error) {
	var buf bytes.Buffer
	err := relevanceUserTemplate.Execute(&buf, struct {
		ModuleName        string
		ModuleDescription string
		Concern           string
		Symptoms          string
	}{
		ModuleName:        module.Name,
		ModuleDescription: module.Description,
		Concern:           patient.Concern,
		Symptoms:          strings.Join(patient.Symptoms, "; "),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
