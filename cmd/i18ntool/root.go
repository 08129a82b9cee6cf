package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mikaza-sukaza/i18ntool/cmd/i18ntool/opts"
	i18nlog "github.com/mikaza-sukaza/i18ntool/pkg/log"
)

var (
	// Flags
	catalogFile string
	debug       bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) *opts.RootOpts {
	return &opts.RootOpts{
		CatalogPath: &catalogFile,
		UserLogger:  i18nlog.NewUserLogger(ctx),
		Reporter:    i18nlog.New(os.Stdout, zerolog.InfoLevel),
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&catalogFile, "config", "c", ".i18ntool.yaml", "catalog file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog
func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zlog.Logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
}
