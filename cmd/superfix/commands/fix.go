package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/superfix/cmd/superfix/opts"
	"github.com/walteh/superfix/pkg/patch"
	"github.com/walteh/superfix/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite legacy constructor calls in all target files",
		Long: `Fix runs the batch rewrite over the configured targets.
It will:
1. Resolve the target list from the config
2. Rewrite super(weight) and super(weight, enabled) call sites
3. Write back only files whose content changed
4. Print one outcome line per file and the fixed-file total`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "fix").Logger().WithContext(ctx)

			// Resolve targets
			targets, err := opts.Config.ResolveTargets(ctx)
			if err != nil {
				return errors.Errorf("resolving targets: %w", err)
			}

			// Create patcher
			patcher, err := patch.New(patch.Options{
				Targets:  targets,
				Rewriter: rewrite.NewSuperCallRewriter(),
				Files:    opts.Files,
				DryRun:   dryRun,
				Async:    opts.Config.Async,
			})
			if err != nil {
				return errors.Errorf("creating patcher: %w", err)
			}

			// Run batch
			summary, err := patcher.Run(ctx)
			if err != nil {
				return errors.Errorf("running patch batch: %w", err)
			}

			// Print report
			opts.Reporter.Batch(summary)

			if summary.Failed > 0 {
				return errors.Errorf("%d of %d files failed", summary.Failed, len(summary.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report outcomes without writing files")

	return cmd
}
