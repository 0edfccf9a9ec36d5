package commands

import (
	"dtr/internal/cli"
	"dtr/internal/config"
	"dtr/internal/storage"
	"dtr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	Report *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	reportViewer := ui.NewReportViewer(cfg, jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, jsonStorage, formatter),
		Report: NewReportCommand(cfg, jsonStorage, reportViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <exec1> <exec2>",
		Short: "Run a differential campaign against two executables",
		Long:  "Generate randomized inputs, run both executables against each input, and stop at the first observable divergence",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.TimeoutMS > 0 {
				cfg.TimeoutMS = flags.TimeoutMS
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Count, "count", "n", 0, "Number of cases to run (0 = run until divergence)")
	runCmd.Flags().IntVarP(&flags.TimeoutMS, "timeout", "t", 0, "Per-subprocess timeout in milliseconds (default 1000)")
	runCmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Seed for the random input generator (0 = time-based)")
	runCmd.Flags().IntVar(&flags.MaxStdinLen, "max-stdin", config.DefaultMaxStdinLen, "Maximum generated stdin length in bytes")
	runCmd.Flags().IntVar(&flags.MaxArgs, "max-args", config.DefaultMaxArgs, "Maximum number of generated arguments")
	runCmd.Flags().BoolVar(&flags.CompareStatus, "status", true, "Compare exit statuses")
	runCmd.Flags().BoolVar(&flags.CompareStdout, "stdout", true, "Compare standard output")
	runCmd.Flags().BoolVar(&flags.CompareStderr, "stderr", true, "Compare standard error")
	runCmd.Flags().BoolVar(&flags.Silent, "silent", false, "Suppress per-case output (not implemented yet)")
	runCmd.Flags().BoolVar(&flags.SuppressErrors, "suppress-errors", false, "Suppress the divergence report (not implemented yet)")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print every case as it runs (not implemented yet)")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output (not implemented yet)")
	rootCmd.AddCommand(runCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "View the last campaign's divergence interactively",
		Long:  "Display the divergence found by the last run in an interactive viewer",
		RunE:  c.Report.Execute,
	}
	rootCmd.AddCommand(reportCmd)
}
