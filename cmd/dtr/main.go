package main

import (
	"fmt"
	"os"

	"dtr/internal/cli"
	"dtr/internal/cli/commands"
	"dtr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "dtr",
		Short:   "Differential test runner",
		Long:    `A differential test runner: feed randomized inputs to two executables, compare exit status, stdout and stderr, and report the first input on which they diverge.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
