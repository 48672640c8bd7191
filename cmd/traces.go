package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/praxislabs/praxis/internal/store"
	"github.com/spf13/cobra"
)

var tracesCmd = &cobra.Command{
	Use:   "traces <session-id>",
	Short: "List a session's trace stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		full, _ := cmd.Flags().GetBool("full")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		traces, err := st.Traces().BySession(context.Background(), args[0], store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		if len(traces) == 0 {
			fmt.Println("No traces recorded.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-15s  %-15s  %-5s  %s\n",
			"Seq", "Timestamp", "Type", "State", "AI", "Content")
		fmt.Println(strings.Repeat("─", 110))
		for _, t := range traces {
			content := strings.ReplaceAll(t.Content, "\n", " ")
			if !full && len(content) > 48 {
				content = content[:48] + "…"
			}
			marker := ""
			if t.Metadata["blocked"] == "true" {
				marker = " [blocked]"
			}
			fmt.Printf("%-6d  %-19s  %-15s  %-15s  %-5.2f  %s%s\n",
				t.Sequence,
				t.Timestamp.Local().Format("2006-01-02 15:04:05"),
				t.Type,
				strings.ToLower(t.State),
				t.AIInvolvement,
				content,
				marker,
			)
		}
		return nil
	},
}

func init() {
	tracesCmd.Flags().IntP("limit", "n", 0, "Max traces to show (0 = all)")
	tracesCmd.Flags().Bool("full", false, "Do not truncate content")
}
