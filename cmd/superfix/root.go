package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/superfix/cmd/superfix/opts"
	"github.com/walteh/superfix/pkg/config"
	"github.com/walteh/superfix/pkg/fileman"
	"github.com/walteh/superfix/pkg/report"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	asyncFlag  bool
)

// initRootOpts fills the shared options after flags are parsed
func initRootOpts(ctx context.Context, rootOpts *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)

	// Load config
	cfg, err := config.LoadConfig(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if asyncFlag {
		cfg.Async = true
	}

	rootOpts.Config = cfg
	rootOpts.Files = fileman.New(cfg.Root)
	rootOpts.Reporter = report.New(os.Stdout, *logger)
	rootOpts.Feedback = report.NewUserFeedback(*logger)

	logger.Debug().Str("config", cfg.Location()).Msg("root options initialized")
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".superfix.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&asyncFlag, "async", false, "process targets concurrently")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
