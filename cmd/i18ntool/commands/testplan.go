package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mikaza-sukaza/i18ntool/cmd/i18ntool/opts"
	i18nlog "github.com/mikaza-sukaza/i18ntool/pkg/log"
	"github.com/mikaza-sukaza/i18ntool/pkg/testplan"
)

// NewTestPlanCmd creates a new testplan command
func NewTestPlanCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "testplan",
		Short: "Generate the QA test plan workbook",
		Long: `Testplan writes the comprehensive QA test plan as a multi-sheet
spreadsheet: module summary, critical test cases, and exit criteria,
with styled headers and frozen header rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := testplan.WriteFile(output); err != nil {
				return errors.Errorf("generating test plan: %w", err)
			}

			rootOpts.UserLogger.LogFileChange(i18nlog.FileChange{
				Type: i18nlog.FileUpdated,
				Path: output,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "Casa_Concierge_Comprehensive_Test_Plan.xlsx", "output workbook path")

	return cmd
}
