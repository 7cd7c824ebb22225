package registry

import "fmt"

// Module is one disorder-specific structured interview: its question set,
// diagnostic-criteria sentences, and scoring thresholds. Modules are
// immutable reference data once registered.
type Module struct {
	ID                  string
	Name                string
	Description         string
	Category            string
	Questions           []Question
	DiagnosticThreshold float64
	SeverityThresholds  map[Severity]float64
	Criteria            []string // Diagnostic-criterion sentences
	EstimatedTimeMins   int
	PriorityWeight      float64
}

// Validate checks the module's configuration. Violations here are fatal at
// registration time so that scoring never has to deal with a malformed module.
func (m *Module) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("module has no ID")
	}
	if len(m.Questions) == 0 {
		return fmt.Errorf("module %s: must have at least one question", m.ID)
	}
	if m.DiagnosticThreshold < 0 || m.DiagnosticThreshold > 1 {
		return fmt.Errorf("module %s: diagnostic threshold %v outside [0,1]", m.ID, m.DiagnosticThreshold)
	}

	seen := make(map[string]bool, len(m.Questions))
	for _, q := range m.Questions {
		if q.ID == "" {
			return fmt.Errorf("module %s: question with empty ID", m.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("module %s: duplicate question ID %q", m.ID, q.ID)
		}
		seen[q.ID] = true

		if q.CriteriaWeight < 0 {
			return fmt.Errorf("module %s: question %s has negative criteria weight", m.ID, q.ID)
		}
		if q.ResponseType == ResponseScale && q.ScaleMax <= q.ScaleMin {
			return fmt.Errorf("module %s: question %s scale range [%d,%d] is empty", m.ID, q.ID, q.ScaleMin, q.ScaleMax)
		}
		if q.ResponseType == ResponseMultipleChoice && len(q.Options) == 0 {
			return fmt.Errorf("module %s: question %s has no options", m.ID, q.ID)
		}
	}

	for sev, threshold := range m.SeverityThresholds {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("module %s: %s threshold %v outside [0,1]", m.ID, sev, threshold)
		}
	}

	return nil
}

// QuestionByID returns the question with the given ID, or nil.
func (m *Module) QuestionByID(id string) *Question {
	for i := range m.Questions {
		if m.Questions[i].ID == id {
			return &m.Questions[i]
		}
	}
	return nil
}

// RequiredQuestionIDs returns the IDs of all required questions.
func (m *Module) RequiredQuestionIDs() []string {
	var ids []string
	for _, q := range m.Questions {
		if q.Required {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// TotalWeight returns the maximum possible weighted score for this module.
func (m *Module) TotalWeight() float64 {
	var total float64
	for _, q := range m.Questions {
		total += q.CriteriaWeight
	}
	return total
}
