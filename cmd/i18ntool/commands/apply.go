package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/mikaza-sukaza/i18ntool/cmd/i18ntool/opts"
	"github.com/mikaza-sukaza/i18ntool/pkg/config"
	"github.com/mikaza-sukaza/i18ntool/pkg/operation"
	"github.com/mikaza-sukaza/i18ntool/pkg/storage"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		workspace string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the replacement catalog to its source files",
		Long: `Apply loads the catalog, compiles every rule, and runs them in listed
order against each source file. It will:
1. Compile every rule up front (a broken rule aborts before any write)
2. Transform each source file in memory
3. Write changed files back atomically
4. Report per-rule replacement counts, including zero-match rules`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, *rootOpts.CatalogPath)
			if err != nil {
				return errors.Errorf("loading catalog: %w", err)
			}

			store := storage.New(workspace, zerolog.Ctx(ctx))

			op, err := operation.NewApplyOperation(operation.Options{
				Config: cfg,
				Store:  store,
				Logger: rootOpts.Reporter,
				User:   rootOpts.UserLogger,
				DryRun: dryRun,
			})
			if err != nil {
				return errors.Errorf("creating apply operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("applying catalog: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", ".", "workspace root the catalog's source paths are relative to")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would change without writing anything")

	return cmd
}
