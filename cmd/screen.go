package cmd

import (
	"fmt"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/ksuri/mindtriage/internal/screening"
	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the TF-IDF item screen against a presenting concern",
	Long: `Match the presenting concern against the screening item bank using
TF-IDF cosine similarity plus keyword boosts, and print the module scores
that exceed the threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		concern, _ := cmd.Flags().GetString("concern")
		if strings.TrimSpace(concern) == "" {
			return fmt.Errorf("--concern must not be empty")
		}
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		reg, err := registry.Default()
		if err != nil {
			return fmt.Errorf("load module registry: %w", err)
		}

		bank := screening.New(reg)
		scores := bank.ModuleScores(concern, threshold)
		if len(scores) == 0 {
			fmt.Println("No screening items matched the concern.")
			return nil
		}

		fmt.Printf("%-22s  %s\n", "Module", "Score")
		fmt.Println(strings.Repeat("─", 32))
		for _, ms := range scores {
			fmt.Printf("%-22s  %.3f\n", ms.ModuleID, ms.Score)
		}
		return nil
	},
}

func init() {
	screenCmd.Flags().String("concern", "", "Presenting concern text (required)")
	screenCmd.Flags().Float64("threshold", 0.1, "Minimum combined item score before module weighting")
	_ = screenCmd.MarkFlagRequired("concern")
}
