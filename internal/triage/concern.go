package triage

import (
	"context"
	"fmt"

	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/ksuri/mindtriage/internal/semantic"
)

// concernSignal judges topical relevance of the presenting concern to the
// module's clinical focus through the injected semantic scorer. With an
// LLM-backed scorer this is the one signal that leaves the process;
// degradation to the keyword scorer is wired inside the semantic package.
type concernSignal struct {
	sem semantic.Scorer
}

func (s *concernSignal) Name() string { return "presenting_concern_match" }

func (s *concernSignal) Evaluate(ctx context.Context, m *registry.Module, p *Patient) (float64, []Reason, error) {
	if p.Concern == "" {
		return 0, nil, nil
	}

	symptoms := make([]string, 0, len(p.Symptoms))
	for _, sym := range p.Symptoms {
		text := sym.Name
		if sym.Detail != "" {
			text += ": " + sym.Detail
		}
		symptoms = append(symptoms, text)
	}

	score, err := s.sem.Score(ctx,
		semantic.ModuleDescriptor{ID: m.ID, Name: m.Name, Description: m.Description},
		semantic.PatientInput{Concern: p.Concern, Symptoms: symptoms},
	)
	if err != nil {
		return 0, nil, err
	}

	var reasons []Reason
	if score > 0 {
		reasons = append(reasons, Reason{
			Kind:        ReasonConcernMatch,
			Score:       score,
			Explanation: fmt.Sprintf("Presenting concern matches the focus of %s", m.Name),
		})
	}
	return score, reasons, nil
}
