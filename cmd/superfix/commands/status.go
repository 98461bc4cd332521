package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/superfix/cmd/superfix/opts"
	"github.com/walteh/superfix/pkg/patch"
	"github.com/walteh/superfix/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check which target files still contain legacy calls",
		Long: `Status inspects the configured targets without writing anything.
It will:
1. Resolve the target list from the config
2. Run the rewrite rules in dry-run mode
3. Report which files would change
4. Exit non-zero if any file still needs fixing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "status").Logger().WithContext(ctx)

			// Resolve targets
			targets, err := opts.Config.ResolveTargets(ctx)
			if err != nil {
				return errors.Errorf("resolving targets: %w", err)
			}

			// Create patcher in dry-run mode
			patcher, err := patch.New(patch.Options{
				Targets:  targets,
				Rewriter: rewrite.NewSuperCallRewriter(),
				Files:    opts.Files,
				DryRun:   true,
				Async:    opts.Config.Async,
			})
			if err != nil {
				return errors.Errorf("creating patcher: %w", err)
			}

			// Run check
			summary, err := patcher.Run(ctx)
			if err != nil {
				return errors.Errorf("checking targets: %w", err)
			}

			// Log result
			opts.Feedback.BatchCheck(summary)

			if summary.Failed > 0 {
				return errors.Errorf("%d of %d files failed", summary.Failed, len(summary.Results))
			}
			if summary.Fixed > 0 {
				return errors.Errorf("%d files need fixing", summary.Fixed)
			}
			return nil
		},
	}

	return cmd
}
