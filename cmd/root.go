package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/planner/app"
	"github.com/kilianp07/planner/config"
	"github.com/kilianp07/planner/infra/logger"
)

var (
	cfgPath    string
	inputPath  string
	chartPath  string
	skipErrors bool
	showChart  bool
)

var rootCmd = &cobra.Command{
	Use:   "planner [tasks.csv]",
	Short: "Validate a weekly task plan, report time per task and draw it as a Gantt chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
	// runtime failures are not usage errors
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "task file, overrides input.path")
	rootCmd.PersistentFlags().BoolVar(&skipErrors, "skip", false, "skip incompatible tasks instead of aborting")
	rootCmd.Flags().StringVarP(&chartPath, "output", "o", "", "PNG output path, overrides chart.save_file")
	rootCmd.Flags().BoolVar(&showChart, "show", true, "print the chart to the terminal, overrides chart.show")
}

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig reads the configuration and applies the command line overrides.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if skipErrors {
		cfg.Planning.OnConflict = config.OnConflictSkip
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Chart.SaveFile = chartPath
	}
	if f := cmd.Flags().Lookup("show"); f != nil && f.Changed {
		cfg.Chart.Show = showChart
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newService(cmd *cobra.Command, args []string) (*app.Service, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, cmd.OutOrStdout())
}

func run(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd, args)
	if err != nil {
		return err
	}
	return svc.Run(cmd.Context())
}
