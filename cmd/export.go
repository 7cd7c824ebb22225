package cmd

import (
	"fmt"
	"os"

	"github.com/ksuri/mindtriage/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the assessment history as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		assessment, _ := cmd.Flags().GetString("assessment")
		out, err := store.Export(cmd.Context(), s, store.QueryOpts{AssessmentID: assessment})
		if err != nil {
			return fmt.Errorf("export history: %w", err)
		}

		if path, _ := cmd.Flags().GetString("out"); path != "" {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("assessment", "", "Export a single assessment by ID")
	exportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}
