package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"dtr/internal/campaign"
	"dtr/internal/config"
	"dtr/internal/domain"
	"dtr/internal/execution"
	"dtr/internal/generator"
	"dtr/internal/storage"
	"dtr/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	exec1, exec2 := args[0], args[1]
	flags := rc.config.Flags

	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := generator.Random(seed, flags.MaxStdinLen, flags.MaxArgs)
	cmp := domain.NewComparator(flags.CompareStatus, flags.CompareStdout, flags.CompareStderr)
	executor := execution.NewExecutor(rc.config.Timeout())

	runner, err := campaign.New(exec1, exec2, gen, cmp, executor)
	if err != nil {
		return err
	}
	runner.SetProgress(ui.NewProgressBar(flags.Count))

	opts := campaign.Options{
		Silent:         flags.Silent,
		SuppressErrors: flags.SuppressErrors,
		Verbose:        flags.Verbose,
		NoColor:        flags.NoColor,
	}

	// Abort cooperatively on Ctrl+C; a running case finishes first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	outcome, err := runner.Run(ctx, flags.Count, opts)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if outcome.Cancelled {
		rc.formatter.PrintCancelled(outcome.CasesRun)
		return nil
	}

	report := buildReport(exec1, exec2, outcome, duration)
	if err := rc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save campaign report: %w", err)
	}

	if outcome.Divergence == nil {
		rc.formatter.PrintAllEquivalent()
		return nil
	}

	rc.formatter.PrintDivergence(outcome.CasesRun, *outcome.Divergence)
	return nil
}

// buildReport converts an outcome into its persisted form
func buildReport(exec1, exec2 string, outcome campaign.Outcome, duration time.Duration) *domain.CampaignReport {
	report := &domain.CampaignReport{
		Meta: domain.CampaignMeta{
			Exec1:           exec1,
			Exec2:           exec2,
			CasesRun:        outcome.CasesRun,
			Equivalent:      outcome.Equivalent,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
	}
	if outcome.Divergence != nil {
		report.Divergence = domain.NewDivergenceRecord(*outcome.Divergence)
	}
	return report
}
