package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/praxislabs/praxis/internal/gateway"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <session-id> [prompt]",
	Short: "Send a prompt through the gateway",
	Long: `Send one prompt, or start an interactive loop when no prompt is given.
In the loop, end input with Ctrl-D or /quit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, cleanup, err := openGateway(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		sessionID := args[0]
		ctx := context.Background()

		if len(args) > 1 {
			return sendPrompt(ctx, g, sessionID, strings.Join(args[1:], " "))
		}

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "/quit" {
				return nil
			}
			if err := sendPrompt(ctx, g, sessionID, line); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		}
	},
}

func sendPrompt(ctx context.Context, g *gateway.Gateway, sessionID, prompt string) error {
	res, err := g.ProcessInteraction(ctx, sessionID, prompt)
	if err != nil {
		return err
	}

	if res.Blocked {
		fmt.Printf("[blocked] %s\n", res.BlockReason)
		return nil
	}

	fmt.Println(res.Response)
	fmt.Printf("\n(%s · %s · ai %.2f)\n", res.Agent, strings.ToLower(res.State), res.AIInvolvement)
	return nil
}
