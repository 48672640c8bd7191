package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/praxislabs/praxis/internal/governance"
	"github.com/praxislabs/praxis/internal/store"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Author activities and their policies",
}

var activityCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		teacher, _ := cmd.Flags().GetString("teacher")
		name, _ := cmd.Flags().GetString("name")
		descr, _ := cmd.Flags().GetString("description")

		policy, err := policyFromFlags(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec := &store.ActivityRecord{
			ActivityID: uuid.NewString(),
			TeacherID:  teacher,
			Name:       name,
			Descr:      descr,
			Policy:     policy,
		}
		if err := st.Activities().Create(context.Background(), rec); err != nil {
			return err
		}
		fmt.Println(rec.ActivityID)
		return nil
	},
}

var activityShowCmd = &cobra.Command{
	Use:   "show <activity-id>",
	Short: "Show an activity and its policy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.Activities().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Activity:  %s\n", rec.ActivityID)
		fmt.Printf("Teacher:   %s\n", rec.TeacherID)
		fmt.Printf("Name:      %s\n", rec.Name)
		if rec.Descr != "" {
			fmt.Printf("About:     %s\n", rec.Descr)
		}

		out, err := yaml.Marshal(rec.Policy)
		if err != nil {
			return err
		}
		fmt.Printf("\nPolicy:\n%s", out)
		return nil
	},
}

var activityPolicyCmd = &cobra.Command{
	Use:   "set-policy <activity-id>",
	Short: "Replace an activity's policy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teacher, _ := cmd.Flags().GetString("teacher")

		policy, err := policyFromFlags(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return st.Activities().UpdatePolicy(context.Background(), args[0], teacher, policy)
	},
}

// policyFromFlags builds a policy from --policy-file when given, otherwise
// from the individual flags layered over the defaults.
func policyFromFlags(cmd *cobra.Command) (governance.Policy, error) {
	policy := governance.DefaultPolicy()

	if path, _ := cmd.Flags().GetString("policy-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return policy, fmt.Errorf("read policy file: %w", err)
		}
		if err := yaml.Unmarshal(data, &policy); err != nil {
			return policy, fmt.Errorf("parse policy file: %w", err)
		}
		return policy, nil
	}

	if cmd.Flags().Changed("help-level") {
		policy.MaxHelpLevel, _ = cmd.Flags().GetInt("help-level")
	}
	if cmd.Flags().Changed("allow-solutions") {
		allow, _ := cmd.Flags().GetBool("allow-solutions")
		policy.BlockCompleteSolutions = !allow
	}
	if cmd.Flags().Changed("require-justification") {
		policy.RequireJustification, _ = cmd.Flags().GetBool("require-justification")
	}
	if cmd.Flags().Changed("delegation-threshold") {
		policy.DelegationThreshold, _ = cmd.Flags().GetFloat64("delegation-threshold")
	}
	return policy, nil
}

func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().String("policy-file", "", "YAML file with the full policy")
	cmd.Flags().Int("help-level", 3, "Max scaffolding level (1-5)")
	cmd.Flags().Bool("allow-solutions", false, "Permit complete-solution requests")
	cmd.Flags().Bool("require-justification", false, "Require students to justify implementation asks")
	cmd.Flags().Float64("delegation-threshold", 0.7, "AI-involvement moving-average ceiling")
}

func init() {
	activityCreateCmd.Flags().StringP("teacher", "t", "", "Teacher identifier")
	activityCreateCmd.Flags().StringP("name", "n", "", "Activity name")
	activityCreateCmd.Flags().String("description", "", "Activity description")
	activityCreateCmd.MarkFlagRequired("teacher")
	activityCreateCmd.MarkFlagRequired("name")
	addPolicyFlags(activityCreateCmd)

	activityPolicyCmd.Flags().StringP("teacher", "t", "", "Teacher identifier (must own the activity)")
	activityPolicyCmd.MarkFlagRequired("teacher")
	addPolicyFlags(activityPolicyCmd)

	activityCmd.AddCommand(activityCreateCmd)
	activityCmd.AddCommand(activityShowCmd)
	activityCmd.AddCommand(activityPolicyCmd)
}
