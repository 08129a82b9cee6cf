// Package opts carries the shared dependencies of the CLI commands.
package opts

import (
	i18nlog "github.com/mikaza-sukaza/i18ntool/pkg/log"
)

// RootOpts holds dependencies initialized once by the root command.
type RootOpts struct {
	// CatalogPath points at the --config flag value; commands read it
	// at run time, after cobra has parsed flags.
	CatalogPath *string

	// UserLogger gives file-level user feedback.
	UserLogger *i18nlog.UserLogger

	// Reporter renders per-rule engine reports.
	Reporter *i18nlog.Logger
}
