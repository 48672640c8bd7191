package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/praxislabs/praxis/internal/gittrace"
	"github.com/praxislabs/praxis/internal/store"
	"github.com/spf13/cobra"
)

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Link repository commits to a session's trace stream",
}

var gitSyncCmd = &cobra.Command{
	Use:   "sync <session-id>",
	Short: "Capture repository commits as session traces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoPath, _ := cmd.Flags().GetString("repo")
		since, _ := cmd.Flags().GetString("since")
		limit, _ := cmd.Flags().GetInt("limit")

		var w gittrace.Window
		if since != "" {
			d, err := time.ParseDuration(since)
			if err != nil {
				return fmt.Errorf("invalid --since: %w", err)
			}
			w.Since = time.Now().Add(-d)
		}
		w.Limit = limit

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		syncer := gittrace.NewSyncer(st.Sessions(), st.Traces())
		res, err := syncer.Sync(context.Background(), args[0], repoPath, w)
		if err != nil {
			return err
		}

		fmt.Printf("Synced %d commits (%d already traced).\n", res.Synced, res.Skipped)
		return nil
	},
}

var gitEvolutionCmd = &cobra.Command{
	Use:   "evolution <session-id>",
	Short: "Summarize how the code changed during a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		traces, err := st.Traces().BySession(context.Background(), args[0], store.QueryOpts{})
		if err != nil {
			return err
		}

		ev := gittrace.AnalyzeEvolution(args[0], traces)
		if ev.TotalCommits == 0 {
			fmt.Println("No commits traced. Run `praxis git sync` first.")
			return nil
		}

		fmt.Printf("Commits:       %d\n", ev.TotalCommits)
		fmt.Printf("Lines added:   %d\n", ev.LinesAdded)
		fmt.Printf("Lines deleted: %d\n", ev.LinesDeleted)
		fmt.Printf("Net change:    %+d\n", ev.NetChange)
		fmt.Printf("Files touched: %d\n", ev.UniqueFiles)

		fmt.Println("\nBy pattern")
		fmt.Println(strings.Repeat("─", 32))
		patterns := make([]string, 0, len(ev.Patterns))
		for p := range ev.Patterns {
			patterns = append(patterns, string(p))
		}
		sort.Strings(patterns)
		for _, p := range patterns {
			fmt.Printf("%-14s  %d\n", p, ev.Patterns[gittrace.Pattern(p)])
		}

		fmt.Println("\nBy cognitive state")
		fmt.Println(strings.Repeat("─", 32))
		states := make([]string, 0, len(ev.ByState))
		for s := range ev.ByState {
			states = append(states, s)
		}
		sort.Strings(states)
		for _, s := range states {
			fmt.Printf("%-14s  %d\n", s, ev.ByState[s])
		}

		fmt.Println("\nTimeline")
		fmt.Println(strings.Repeat("─", 64))
		for _, p := range ev.Timeline {
			fmt.Printf("%s  %s  %+5d  %-8s  %s\n",
				p.When.Format("15:04:05"), p.Hash[:7], p.Net, p.Pattern, strings.ToLower(p.State))
		}
		return nil
	},
}

var gitCorrelateCmd = &cobra.Command{
	Use:   "correlate <session-id>",
	Short: "Match commits against nearby session interactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		traces, err := st.Traces().BySession(context.Background(), args[0], store.QueryOpts{})
		if err != nil {
			return err
		}

		cor := gittrace.Correlate(args[0], traces)
		if len(cor.Pairs) == 0 {
			fmt.Println("No commits traced. Run `praxis git sync` first.")
			return nil
		}

		for _, p := range cor.Pairs {
			if p.Isolated {
				fmt.Printf("%s  %s  no interaction nearby\n", p.When.Format("15:04:05"), p.Hash[:7])
				continue
			}
			fmt.Printf("%s  %s  %s from trace %s\n",
				p.When.Format("15:04:05"), p.Hash[:7], p.Gap.Round(time.Second), p.TraceID)
		}

		fmt.Printf("\nAverage commit-interaction gap: %s\n", cor.AvgGap.Round(time.Second))
		fmt.Printf("Interactions per commit:        %.1f\n", cor.InteractionsPerCommit)
		if cor.Isolated > 0 {
			fmt.Printf("Unexplained commits:            %d (no session activity within 15m)\n", cor.Isolated)
		}
		return nil
	},
}

func init() {
	gitSyncCmd.Flags().String("repo", ".", "Path to the working copy")
	gitSyncCmd.Flags().String("since", "", "Only sync commits newer than this lookback (e.g. 24h)")
	gitSyncCmd.Flags().Int("limit", 0, "Maximum commits to sync (0 = all)")

	gitCmd.AddCommand(gitSyncCmd)
	gitCmd.AddCommand(gitEvolutionCmd)
	gitCmd.AddCommand(gitCorrelateCmd)
}
