package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <session-id>",
	Short: "Generate or show the session's competency report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replace, _ := cmd.Flags().GetBool("replace")

		g, _, cleanup, err := openGateway(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		rep, err := g.EvaluateSession(context.Background(), args[0], replace)
		if err != nil {
			return err
		}

		fmt.Printf("Report:        %s\n", rep.ReportID)
		fmt.Printf("Competency:    %s\n", rep.Competency)
		fmt.Printf("Overall:       %.2f\n", rep.OverallScore)
		fmt.Printf("AI dependency: %.2f\n", rep.AIDependency)

		fmt.Println("\nDimensions")
		fmt.Println(strings.Repeat("─", 40))
		keys := make([]string, 0, len(rep.Dimensions))
		for k := range rep.Dimensions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%-22s  %.2f\n", k, rep.Dimensions[k])
		}

		if len(rep.Strengths) > 0 {
			fmt.Println("\nStrengths")
			for _, s := range rep.Strengths {
				fmt.Printf("  + %s\n", s)
			}
		}
		if len(rep.Improvements) > 0 {
			fmt.Println("\nImprovements")
			for _, s := range rep.Improvements {
				fmt.Printf("  - %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().Bool("replace", false, "Regenerate even if a report exists")
}
