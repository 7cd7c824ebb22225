package semantic

import (
	"context"

	"github.com/ksuri/mindtriage/internal/keywords"
)

// KeywordScorer is the local relevance scorer: the fraction of the
// module description's keywords present in the patient's concern and
// symptom text. No network, no dependencies, always available.
type KeywordScorer struct{}

// NewKeywordScorer creates the keyword-overlap scorer.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

func (s *KeywordScorer) Score(_ context.Context, module ModuleDescriptor, patient PatientInput) (float64, error) {
	descKeywords := keywords.Extract(module.Description)
	if len(descKeywords) == 0 {
		return 0, nil
	}

	text := patient.Concern
	for _, sym := range patient.Symptoms {
		text += " " + sym
	}
	patientSet := keywords.Set(text)

	var overlap int
	for _, kw := range descKeywords {
		if patientSet[kw] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(descKeywords)), nil
}
