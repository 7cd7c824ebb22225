package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ksuri/mindtriage/internal/fingerprint"
	"github.com/ksuri/mindtriage/internal/llm"
	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/ksuri/mindtriage/internal/semantic"
	"github.com/ksuri/mindtriage/internal/store"
	"github.com/ksuri/mindtriage/internal/triage"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Rank interview modules for a patient",
	Long: `Score every registered interview module against the patient's presenting
concern, symptoms, demographics, and history, then print the ranked modules
that should be administered.`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().String("concern", "", "Presenting concern text (required)")
	selectCmd.Flags().String("complaint", "", "Chief complaint, if distinct from the concern")
	selectCmd.Flags().Int("age", 0, "Patient age in years")
	selectCmd.Flags().String("gender", "", "Patient gender")
	selectCmd.Flags().StringArray("symptom", nil, "Reported symptom as name[:severity[:detail]] (repeatable)")
	selectCmd.Flags().StringArray("diagnosis", nil, "Previous diagnosis (repeatable)")
	selectCmd.Flags().StringArray("family-history", nil, "Family psychiatric history entry (repeatable)")
	selectCmd.Flags().String("severity", "", "Overall severity level: mild, moderate, severe, extreme")
	selectCmd.Flags().String("onset", "", "Onset description, e.g. sudden, gradual, chronic")
	selectCmd.Flags().StringArray("stressor", nil, "Current stressor (repeatable)")
	selectCmd.Flags().Int("max", 0, "Maximum modules to select (default 5)")
	selectCmd.Flags().Float64("threshold", -1, "Minimum relevancy score (default 0.3)")
	selectCmd.Flags().Bool("no-severity-boost", false, "Disable the severity boost for high-impact modules")
	selectCmd.Flags().Bool("semantic", false, "Use the configured LLM for the concern-similarity signal")
	selectCmd.Flags().Bool("report", false, "Print the full clinician report instead of the ranked table")
	selectCmd.Flags().Bool("save", false, "Record the selection in the assessment history")
	_ = selectCmd.MarkFlagRequired("concern")
}

func runSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	patient, err := patientFromFlags(cmd)
	if err != nil {
		return err
	}

	reg, err := registry.Default()
	if err != nil {
		return fmt.Errorf("load module registry: %w", err)
	}

	var st *store.Store
	save, _ := cmd.Flags().GetBool("save")
	useSemantic, _ := cmd.Flags().GetBool("semantic")
	if save || useSemantic {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
	}

	sem := buildSemanticScorer(ctx, st, useSemantic)

	idx := fingerprint.Build(reg)
	scorer := triage.NewScorer(reg, idx, sem)
	selector := triage.NewSelector(reg, scorer, nil)

	opts := triage.DefaultSelectOptions()
	if max, _ := cmd.Flags().GetInt("max"); max > 0 {
		opts.MaxModules = max
	}
	if threshold, _ := cmd.Flags().GetFloat64("threshold"); threshold >= 0 {
		opts.MinThreshold = threshold
	}
	if noBoost, _ := cmd.Flags().GetBool("no-severity-boost"); noBoost {
		opts.PrioritizeBySeverity = false
	}

	selected := selector.Select(ctx, patient, opts)

	if report, _ := cmd.Flags().GetBool("report"); report {
		fmt.Println(triage.Report(selected, patient, time.Now()))
	} else {
		printSelection(selected)
	}

	if save {
		assessmentID := uuid.NewString()
		if err := saveSelection(ctx, st, assessmentID, patient, selected, opts); err != nil {
			return err
		}
		fmt.Printf("\nSaved as assessment %s\n", assessmentID)
	}
	return nil
}

func printSelection(selected []triage.Relevancy) {
	if len(selected) == 0 {
		fmt.Println("No modules met the relevancy threshold.")
		return
	}

	fmt.Printf("%-4s  %-22s  %-6s  %-6s  %-8s  %s\n",
		"Rank", "Module", "Score", "Conf", "Priority", "Est. Time")
	fmt.Println(strings.Repeat("─", 72))
	for i, r := range selected {
		fmt.Printf("%-4d  %-22s  %.3f  %.3f  %-8s  %d min\n",
			i+1, r.ModuleID, r.Score, r.Confidence, r.Priority, r.EstimatedTimeMins)
	}
}

func saveSelection(ctx context.Context, st *store.Store, assessmentID string, patient *triage.Patient, selected []triage.Relevancy, opts triage.SelectOptions) error {
	var modules []store.SelectedModule
	for _, r := range selected {
		modules = append(modules, store.SelectedModule{
			ModuleID:   r.ModuleID,
			ModuleName: r.ModuleName,
			Score:      r.Score,
			Confidence: r.Confidence,
			Priority:   r.Priority.String(),
		})
	}
	err := st.EventRepo().AppendSelection(ctx, store.SelectionEventData{
		AssessmentID: assessmentID,
		Concern:      patient.Concern,
		MaxModules:   opts.MaxModules,
		MinThreshold: opts.MinThreshold,
		Selected:     modules,
	})
	if err != nil {
		return fmt.Errorf("record selection: %w", err)
	}

	snap := &store.PatientSnapshot{
		Timestamp:    time.Now().UTC(),
		AssessmentID: assessmentID,
		Data:         patientSnapshotData(patient),
	}
	if err := st.PatientSnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("record patient snapshot: %w", err)
	}
	return nil
}

func patientSnapshotData(p *triage.Patient) map[string]any {
	symptoms := make([]map[string]any, 0, len(p.Symptoms))
	for _, s := range p.Symptoms {
		symptoms = append(symptoms, map[string]any{
			"name": s.Name, "detail": s.Detail, "severity": s.Severity,
		})
	}
	return map[string]any{
		"age":                p.Age,
		"gender":             p.Gender,
		"concern":            p.Concern,
		"chief_complaint":    p.ChiefComplaint,
		"symptoms":           symptoms,
		"previous_diagnoses": p.PreviousDiagnoses,
		"family_history":     p.FamilyHistory,
		"severity_level":     p.SeverityLevel,
		"onset_time":         p.OnsetTime,
		"stressors":          p.Stressors,
	}
}

// buildSemanticScorer wires the concern-similarity signal. With --semantic
// and a configured provider it uses the LLM with keyword fallback;
// otherwise the local keyword scorer alone.
func buildSemanticScorer(ctx context.Context, st *store.Store, useSemantic bool) semantic.Scorer {
	keyword := semantic.NewKeywordScorer()
	if !useSemantic {
		return keyword
	}

	var eventRepo store.EventRepo
	if st != nil {
		eventRepo = st.EventRepo()
	}
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no LLM provider configured (%v), using keyword similarity\n", err)
		return keyword
	}
	primary := semantic.NewLLMScorer(provider, semantic.DefaultLLMScorerConfig())
	return semantic.WithFallback(primary, keyword, nil)
}

func patientFromFlags(cmd *cobra.Command) (*triage.Patient, error) {
	concern, _ := cmd.Flags().GetString("concern")
	if strings.TrimSpace(concern) == "" {
		return nil, fmt.Errorf("--concern must not be empty")
	}

	complaint, _ := cmd.Flags().GetString("complaint")
	age, _ := cmd.Flags().GetInt("age")
	gender, _ := cmd.Flags().GetString("gender")
	diagnoses, _ := cmd.Flags().GetStringArray("diagnosis")
	familyHistory, _ := cmd.Flags().GetStringArray("family-history")
	severity, _ := cmd.Flags().GetString("severity")
	onset, _ := cmd.Flags().GetString("onset")
	stressors, _ := cmd.Flags().GetStringArray("stressor")
	rawSymptoms, _ := cmd.Flags().GetStringArray("symptom")

	var symptoms []triage.Symptom
	for _, raw := range rawSymptoms {
		parts := strings.SplitN(raw, ":", 3)
		s := triage.Symptom{Name: strings.TrimSpace(parts[0])}
		if s.Name == "" {
			return nil, fmt.Errorf("invalid --symptom %q: empty name", raw)
		}
		if len(parts) > 1 {
			s.Severity = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			s.Detail = strings.TrimSpace(parts[2])
		}
		symptoms = append(symptoms, s)
	}

	return &triage.Patient{
		Age:               age,
		Gender:            gender,
		PreviousDiagnoses: diagnoses,
		FamilyHistory:     familyHistory,
		Concern:           concern,
		ChiefComplaint:    complaint,
		Symptoms:          symptoms,
		SeverityLevel:     severity,
		OnsetTime:         onset,
		Stressors:         stressors,
	}, nil
}
