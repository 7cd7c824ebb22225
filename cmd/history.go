package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksuri/mindtriage/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded selections, administrations, and risk screens",
}

var historySelectionsCmd = &cobra.Command{
	Use:   "selections",
	Short: "List recorded module selections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistoryStore(cmd, func(ctx context.Context, repo store.EventRepo, opts store.QueryOpts) error {
			records, err := repo.QuerySelections(ctx, opts)
			if err != nil {
				return fmt.Errorf("query selections: %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No selections recorded.")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s  %s\n", r.Timestamp.Local().Format("2006-01-02 15:04"), r.AssessmentID)
				fmt.Printf("  concern: %s\n", truncate(r.Concern, 70))
				for i, m := range r.Selected {
					fmt.Printf("  %d. %-22s %.3f (%s)\n", i+1, m.ModuleID, m.Score, m.Priority)
				}
				fmt.Println()
			}
			return nil
		})
	},
}

var historyAdministrationsCmd = &cobra.Command{
	Use:   "administrations",
	Short: "List recorded module administrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistoryStore(cmd, func(ctx context.Context, repo store.EventRepo, opts store.QueryOpts) error {
			records, err := repo.QueryAdministrations(ctx, opts)
			if err != nil {
				return fmt.Errorf("query administrations: %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No administrations recorded.")
				return nil
			}
			fmt.Printf("%-16s  %-22s  %-7s  %-9s  %-9s  %s\n",
				"Date", "Module", "Score", "Criteria", "Severity", "Assessment")
			fmt.Println(strings.Repeat("─", 96))
			for _, r := range records {
				status := "neg"
				if r.CriteriaMet {
					status = "POS"
				}
				severity := r.Severity
				if severity == "" {
					severity = "-"
				}
				fmt.Printf("%-16s  %-22s  %5.1f%%  %-9s  %-9s  %s\n",
					r.Timestamp.Local().Format("2006-01-02 15:04"),
					r.ModuleID, r.Percentage*100, status, severity, r.AssessmentID)
			}
			return nil
		})
	},
}

var historyRisksCmd = &cobra.Command{
	Use:   "risks",
	Short: "List recorded risk assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistoryStore(cmd, func(ctx context.Context, repo store.EventRepo, opts store.QueryOpts) error {
			records, err := repo.QueryRisks(ctx, opts)
			if err != nil {
				return fmt.Errorf("query risk assessments: %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No risk assessments recorded.")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s  %-8s  %.2f  %s\n",
					r.Timestamp.Local().Format("2006-01-02 15:04"),
					strings.ToUpper(r.Level), r.Value, r.AssessmentID)
				if len(r.Factors) > 0 {
					fmt.Printf("  factors: %s\n", strings.Join(r.Factors, "; "))
				}
			}
			return nil
		})
	},
}

func withHistoryStore(cmd *cobra.Command, fn func(context.Context, store.EventRepo, store.QueryOpts) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	assessment, _ := cmd.Flags().GetString("assessment")
	opts := store.QueryOpts{Limit: limit, AssessmentID: assessment}

	return fn(cmd.Context(), s.EventRepo(), opts)
}

func init() {
	for _, sub := range []*cobra.Command{historySelectionsCmd, historyAdministrationsCmd, historyRisksCmd} {
		sub.Flags().IntP("limit", "n", 20, "Number of records to show")
		sub.Flags().String("assessment", "", "Filter by assessment ID")
		historyCmd.AddCommand(sub)
	}
}
