package cmd

import (
	"fmt"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules [module-id]",
	Short: "List interview modules, or show one module's questions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Default()
		if err != nil {
			return fmt.Errorf("load module registry: %w", err)
		}

		if len(args) == 1 {
			return showModule(reg, strings.ToUpper(args[0]))
		}

		fmt.Printf("%-22s  %-34s  %-9s  %-9s  %s\n",
			"ID", "Name", "Questions", "Threshold", "Est. Time")
		fmt.Println(strings.Repeat("─", 92))
		for _, m := range reg.Modules() {
			fmt.Printf("%-22s  %-34s  %-9d  %-9.2f  %d min\n",
				m.ID, m.Name, len(m.Questions), m.DiagnosticThreshold, m.EstimatedTimeMins)
		}
		return nil
	},
}

func showModule(reg *registry.Registry, id string) error {
	m := reg.Get(id)
	if m == nil {
		return fmt.Errorf("unknown module %q", id)
	}

	fmt.Printf("%s — %s\n", m.ID, m.Name)
	fmt.Printf("Diagnostic threshold: %.2f   Priority weight: %.2f   Est. time: %d min\n",
		m.DiagnosticThreshold, m.PriorityWeight, m.EstimatedTimeMins)

	if len(m.Criteria) > 0 {
		fmt.Println("\nDiagnostic criteria:")
		for _, c := range m.Criteria {
			fmt.Println("  -", c)
		}
	}

	fmt.Println("\nQuestions:")
	for _, q := range m.Questions {
		required := ""
		if q.Required {
			required = " (required)"
		}
		fmt.Printf("  [%s] %s%s\n", q.ID, q.Text, required)
		fmt.Printf("       type=%s weight=%.1f", q.ResponseType, q.CriteriaWeight)
		switch {
		case len(q.Options) > 0:
			fmt.Printf(" options=%s", strings.Join(q.Options, "|"))
		case q.ResponseType.String() == "scale":
			fmt.Printf(" range=[%d,%d]", q.ScaleMin, q.ScaleMax)
		}
		fmt.Println()
	}
	return nil
}
