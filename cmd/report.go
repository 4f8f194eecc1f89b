package cmd

import (
	"github.com/spf13/cobra"
)

var showLoad bool

var reportCmd = &cobra.Command{
	Use:   "report [tasks.csv]",
	Short: "Print the weekly hours per task without drawing the chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&showLoad, "load", false, "also print the scheduled hours per day")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd, args)
	if err != nil {
		return err
	}
	return svc.Report(cmd.Context(), showLoad)
}
