// Package semantic scores how well a patient's presenting concern matches
// a module's clinical focus. The interface is pluggable: an LLM-backed
// scorer when a provider is configured, a keyword-overlap scorer otherwise.
// Degradation is explicit wiring via WithFallback, not hidden in callers.
package semantic

import "context"

// ModuleDescriptor is the module-side input to a relevance judgment.
type ModuleDescriptor struct {
	ID          string
	Name        string
	Description string
}

// PatientInput is the patient-side input to a relevance judgment.
type PatientInput struct {
	Concern  string
	Symptoms []string
}

// Scorer judges the relevance of a patient presentation to one module.
// Score returns a value in [0,1].
type Scorer interface {
	Score(ctx context.Context, module ModuleDescriptor, patient PatientInput) (float64, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, module ModuleDescriptor, patient PatientInput) (float64, error)

func (f ScorerFunc) Score(ctx context.Context, module ModuleDescriptor, patient PatientInput) (float64, error) {
	return f(ctx, module, patient)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
