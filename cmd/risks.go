package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/praxislabs/praxis/internal/store"
	"github.com/spf13/cobra"
)

var risksCmd = &cobra.Command{
	Use:   "risks",
	Short: "Inspect and manage risk findings",
}

var risksListCmd = &cobra.Command{
	Use:   "list <session-id>",
	Short: "List a session's risk findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dimension, _ := cmd.Flags().GetString("dimension")
		unresolvedOnly, _ := cmd.Flags().GetBool("unresolved")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		filter := store.RiskFilter{Dimension: dimension}
		if unresolvedOnly {
			f := false
			filter.Resolved = &f
		}
		risks, err := st.Risks().BySession(context.Background(), args[0], filter)
		if err != nil {
			return err
		}
		if len(risks) == 0 {
			fmt.Println("No risk findings.")
			return nil
		}

		for _, r := range risks {
			status := "open"
			if r.Resolved {
				status = "resolved"
			}
			fmt.Printf("%s  [%s/%s]  %s  (%s)\n", r.RiskID, r.Dimension, r.Level, r.Type, status)
			fmt.Printf("    %s\n", r.Description)
			for _, rec := range r.Recommendations {
				fmt.Printf("    -> %s\n", rec)
			}
		}
		return nil
	},
}

var risksScanCmd = &cobra.Command{
	Use:   "scan <session-id>",
	Short: "Run a risk scan now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, cleanup, err := openGateway(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		found, err := g.ScanSession(context.Background(), args[0])
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Println("No new findings.")
			return nil
		}
		for _, r := range found {
			fmt.Printf("%s  [%s/%s]  %s\n", r.RiskID, r.Dimension, r.Level, r.Description)
		}
		return nil
	},
}

var risksResolveCmd = &cobra.Command{
	Use:   "resolve <risk-id>",
	Short: "Mark a risk finding resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return st.Risks().Resolve(context.Background(), args[0], notes)
	},
}

var risksStatsCmd = &cobra.Command{
	Use:   "stats <session-id>",
	Short: "Aggregate a session's risk findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.Risks().Stats(context.Background(), args[0])
		if err != nil {
			return err
		}
		if stats.Total == 0 {
			fmt.Println("No risk findings.")
			return nil
		}

		fmt.Printf("Total findings:  %d\n", stats.Total)
		fmt.Printf("Resolved:        %.0f%%\n", stats.ResolutionRate*100)

		fmt.Println("\nBy dimension")
		fmt.Println(strings.Repeat("─", 32))
		for dim, n := range stats.ByDimension {
			fmt.Printf("%-14s  %d\n", dim, n)
		}

		fmt.Println("\nBy level")
		fmt.Println(strings.Repeat("─", 32))
		for _, level := range []string{"critical", "high", "medium", "low"} {
			if n, ok := stats.ByLevel[level]; ok {
				fmt.Printf("%-14s  %d\n", level, n)
			}
		}
		return nil
	},
}

func init() {
	risksListCmd.Flags().StringP("dimension", "d", "", "Filter by dimension (cognitive, ethical, epistemic, technical, governance)")
	risksListCmd.Flags().Bool("unresolved", false, "Show only unresolved findings")
	risksResolveCmd.Flags().StringP("notes", "m", "", "Resolution notes")

	risksCmd.AddCommand(risksListCmd)
	risksCmd.AddCommand(risksScanCmd)
	risksCmd.AddCommand(risksResolveCmd)
	risksCmd.AddCommand(risksStatsCmd)
}
