package cmd

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/internal/store"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage learning sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		activity, _ := cmd.Flags().GetString("activity")
		mode, _ := cmd.Flags().GetString("mode")

		g, _, cleanup, err := openGateway(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		sess, err := g.StartSession(context.Background(), student, activity, store.SessionMode(mode))
		if err != nil {
			return err
		}
		fmt.Println(sess.SessionID)
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status <session-id>",
	Short: "Show a session's state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := st.Sessions().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Session:   %s\n", sess.SessionID)
		fmt.Printf("Student:   %s\n", sess.StudentID)
		if sess.ActivityID != "" {
			fmt.Printf("Activity:  %s\n", sess.ActivityID)
		}
		fmt.Printf("Mode:      %s\n", sess.Mode)
		fmt.Printf("Status:    %s\n", sess.Status)
		fmt.Printf("Started:   %s\n", sess.StartedAt.Local().Format("2006-01-02 15:04:05"))
		if sess.EndedAt != nil {
			fmt.Printf("Ended:     %s\n", sess.EndedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var sessionModeCmd = &cobra.Command{
	Use:   "mode <session-id> <tutor|evaluator|simulator|risk_analyst>",
	Short: "Switch the session's active agent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return st.Sessions().SetMode(context.Background(), args[0], store.SessionMode(args[1]))
	},
}

func transitionCmd(use, short string, to store.SessionStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <session-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, cleanup, err := openGateway(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return g.Transition(context.Background(), args[0], to)
		},
	}
}

func init() {
	sessionStartCmd.Flags().StringP("student", "s", "", "Student identifier")
	sessionStartCmd.Flags().StringP("activity", "a", "", "Activity identifier (optional)")
	sessionStartCmd.Flags().StringP("mode", "m", "tutor", "Agent mode: tutor, evaluator, simulator, risk_analyst")
	sessionStartCmd.MarkFlagRequired("student")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionModeCmd)
	sessionCmd.AddCommand(transitionCmd("end", "Complete a session", store.StatusCompleted))
	sessionCmd.AddCommand(transitionCmd("pause", "Pause an active session", store.StatusPaused))
	sessionCmd.AddCommand(transitionCmd("resume", "Resume a paused session", store.StatusActive))
	sessionCmd.AddCommand(transitionCmd("abort", "Abort a session", store.StatusAborted))
}
