package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [tasks.csv]",
	Short: "Validate every task and list all conflicts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd, args)
	if err != nil {
		return err
	}
	plan, err := svc.Check(cmd.Context())
	if plan == nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, c := range plan.Conflicts {
		if _, ferr := fmt.Fprintln(out, c); ferr != nil {
			return ferr
		}
	}
	if _, ferr := fmt.Fprintf(out, "%d tasks scheduled, %d conflicts\n", len(plan.Schedule.Tasks()), len(plan.Conflicts)); ferr != nil {
		return ferr
	}
	if len(plan.Conflicts) > 0 {
		return fmt.Errorf("%d conflicts found", len(plan.Conflicts))
	}
	return nil
}
