package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/ksuri/mindtriage/internal/scoring"
	"github.com/ksuri/mindtriage/internal/store"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <module-id>",
	Short: "Score a completed module administration",
	Long: `Validate and score a full response set for one interview module.
Responses come from a JSON file ({"question_id": answer, ...}) via
--responses, or from repeated --answer question_id=value flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("responses", "", "Path to a JSON file of responses")
	scoreCmd.Flags().StringArray("answer", nil, "Single response as question_id=value (repeatable)")
	scoreCmd.Flags().String("assessment", "", "Assessment ID to group with a saved selection")
	scoreCmd.Flags().Bool("save", false, "Record the result in the assessment history")
}

func runScore(cmd *cobra.Command, args []string) error {
	moduleID := strings.ToUpper(args[0])

	reg, err := registry.Default()
	if err != nil {
		return fmt.Errorf("load module registry: %w", err)
	}
	module := reg.Get(moduleID)
	if module == nil {
		return fmt.Errorf("unknown module %q (run 'mindtriage modules' to list)", moduleID)
	}

	responses, err := responsesFromFlags(cmd)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		return fmt.Errorf("no responses given: use --responses or --answer")
	}

	result, err := scoring.ScoreModule(module, responses)
	if err != nil {
		return fmt.Errorf("score module: %w", err)
	}

	printResult(result)

	if save, _ := cmd.Flags().GetBool("save"); save {
		assessmentID, _ := cmd.Flags().GetString("assessment")
		if assessmentID == "" {
			assessmentID = uuid.NewString()
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		severity := ""
		if result.Severity != nil {
			severity = result.Severity.String()
		}
		err = st.EventRepo().AppendAdministration(cmd.Context(), store.AdministrationEventData{
			AssessmentID:   assessmentID,
			ModuleID:       result.ModuleID,
			ModuleName:     result.ModuleName,
			TotalScore:     result.TotalScore,
			MaxScore:       result.MaxPossibleScore,
			Percentage:     result.Percentage,
			CriteriaMet:    result.CriteriaMet,
			Severity:       severity,
			SymptomCount:   len(result.SymptomsPresent),
			AdminTimeMins:  result.AdministrationTimeMins,
			QuestionScores: result.PerQuestionScores,
		})
		if err != nil {
			return fmt.Errorf("record administration: %w", err)
		}
		fmt.Printf("\nSaved under assessment %s\n", assessmentID)
	}
	return nil
}

func printResult(result *scoring.Result) {
	status := "NEGATIVE"
	if result.CriteriaMet {
		status = "POSITIVE"
	}

	fmt.Printf("Module:       %s (%s)\n", result.ModuleName, result.ModuleID)
	fmt.Printf("Score:        %.1f / %.1f (%.1f%%)\n",
		result.TotalScore, result.MaxPossibleScore, result.Percentage*100)
	fmt.Printf("Criteria:     %s\n", status)
	if result.Severity != nil {
		fmt.Printf("Severity:     %s\n", result.Severity)
	}
	fmt.Printf("Admin time:   %d min\n", result.AdministrationTimeMins)

	if len(result.SymptomsPresent) > 0 {
		fmt.Println("\nSymptoms present:")
		for _, s := range result.SymptomsPresent {
			line := "  - " + s.Name
			if s.Severity != nil {
				line += fmt.Sprintf(" (%s)", s.Severity)
			}
			fmt.Println(line)
		}
	}
}

func responsesFromFlags(cmd *cobra.Command) (scoring.Responses, error) {
	responses := make(scoring.Responses)

	if path, _ := cmd.Flags().GetString("responses"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read responses file: %w", err)
		}
		if err := json.Unmarshal(data, &responses); err != nil {
			return nil, fmt.Errorf("parse responses file: %w", err)
		}
	}

	answers, _ := cmd.Flags().GetStringArray("answer")
	for _, raw := range answers {
		id, value, ok := strings.Cut(raw, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --answer %q: want question_id=value", raw)
		}
		responses[id] = parseAnswerValue(value)
	}
	return responses, nil
}

// parseAnswerValue keeps flag answers in the same shapes a JSON responses
// file would produce: bools, numbers, arrays, or plain strings.
func parseAnswerValue(value string) any {
	var parsed any
	if err := json.Unmarshal([]byte(value), &parsed); err == nil {
		return parsed
	}
	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		items := make([]any, len(parts))
		for i, p := range parts {
			items[i] = strings.TrimSpace(p)
		}
		return items
	}
	return value
}
