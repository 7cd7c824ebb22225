package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ksuri/mindtriage/internal/risk"
	"github.com/ksuri/mindtriage/internal/store"
	"github.com/spf13/cobra"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Aggregate suicide/safety risk from safety-screen answers",
	Long: `Combine structured safety-screen answers with a keyword scan of the
presenting concern into a clamped risk value and tier, with a rationale
naming the contributing factors.`,
	RunE: runRisk,
}

func init() {
	riskCmd.Flags().String("concern", "", "Presenting concern text to scan for risk language")
	riskCmd.Flags().Bool("ideation", false, "Current suicidal ideation reported")
	riskCmd.Flags().String("plan", "", "Answer to the suicide-plan question")
	riskCmd.Flags().Bool("intent", false, "Intent to act on the thoughts")
	riskCmd.Flags().String("attempts", "", "Answer to the past-attempts question")
	riskCmd.Flags().String("self-harm", "", "Answer to the current self-harm question")
	riskCmd.Flags().Bool("homicidal", false, "Homicidal thoughts reported")
	riskCmd.Flags().String("access", "", "Answer to the access-to-means question")
	riskCmd.Flags().String("protective", "", "Protective factors free text")
	riskCmd.Flags().String("assessment", "", "Assessment ID to group with a saved selection")
	riskCmd.Flags().Bool("save", false, "Record the assessment in the history")
	riskCmd.Flags().Bool("questions", false, "Print the safety-screen question bank and exit")
}

func runRisk(cmd *cobra.Command, args []string) error {
	if show, _ := cmd.Flags().GetBool("questions"); show {
		printSafetyQuestions()
		return nil
	}

	concern, _ := cmd.Flags().GetString("concern")
	ideation, _ := cmd.Flags().GetBool("ideation")
	plan, _ := cmd.Flags().GetString("plan")
	intent, _ := cmd.Flags().GetBool("intent")
	attempts, _ := cmd.Flags().GetString("attempts")
	selfHarm, _ := cmd.Flags().GetString("self-harm")
	homicidal, _ := cmd.Flags().GetBool("homicidal")
	access, _ := cmd.Flags().GetString("access")
	protective, _ := cmd.Flags().GetString("protective")

	answers := risk.Answers{
		SuicideIdeation:   ideation,
		SuicidePlan:       plan,
		SuicideIntent:     intent,
		PastAttempts:      attempts,
		SelfHarm:          selfHarm,
		HomicidalThoughts: homicidal,
		AccessMeans:       access,
		ProtectiveFactors: protective,
	}
	assessment := risk.Assess(answers, concern)

	fmt.Printf("Risk level:   %s\n", strings.ToUpper(assessment.Level.String()))
	fmt.Printf("Risk value:   %.2f\n", assessment.Value)
	if len(assessment.Factors) > 0 {
		fmt.Println("\nContributing factors:")
		for _, f := range assessment.Factors {
			fmt.Println("  -", f)
		}
	}
	fmt.Println("\n" + assessment.Rationale)

	if assessment.Level == risk.LevelCritical || assessment.Level == risk.LevelHigh {
		fmt.Println("\nImmediate professional evaluation is recommended.")
	}

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

		err = st.EventRepo().AppendRisk(cmd.Context(), store.RiskEventData{
			AssessmentID: assessmentID,
			Level:        assessment.Level.String(),
			Value:        assessment.Value,
			Factors:      assessment.Factors,
			Rationale:    assessment.Rationale,
		})
		if err != nil {
			return fmt.Errorf("record risk assessment: %w", err)
		}
		fmt.Printf("\nSaved under assessment %s\n", assessmentID)
	}
	return nil
}

func printSafetyQuestions() {
	questions := risk.Questions()
	answered := make(map[string]bool)
	for i := 1; ; i++ {
		id := risk.NextQuestion(answered, false)
		if id == "" {
			break
		}
		q := questions[id]
		fmt.Printf("%d. [%s] %s\n", i, q.ID, q.Text)
		if len(q.Options) > 0 {
			fmt.Printf("   Options: %s\n", strings.Join(q.Options, ", "))
		}
		answered[id] = true
	}
}
