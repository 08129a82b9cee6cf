package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mikaza-sukaza/i18ntool/cmd/i18ntool/commands"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create root options
	opts := newRootOpts(ctx)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "i18ntool",
		Short: "A tool for migrating hardcoded UI text to translation keys",
		Long: `i18ntool rewrites markup sources against an ordered catalog of
replacement rules, swapping hardcoded strings for t('...') translation
calls, and reports which rules fired and how many times.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(opts),
		commands.NewTestPlanCmd(opts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		opts.UserLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
