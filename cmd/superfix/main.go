// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/superfix/cmd/superfix/commands"
	"github.com/walteh/superfix/cmd/superfix/opts"
	"github.com/walteh/superfix/pkg/report"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	// Create user feedback printer
	feedback := report.NewUserFeedback(log.Logger)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "superfix",
		Short: "A tool for rewriting legacy weighted-constructor calls",
		Long: `superfix rewrites super(weight) and super(weight, enabled) constructor
calls into the expanded setter form (super(); setWeight(...); setEnabled(...))
across a configured batch of source files.`,
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Root options are populated after flag parsing
	rootOpts := &opts.RootOpts{}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return initRootOpts(cmd.Context(), rootOpts)
	}

	// Add commands
	rootCmd.AddCommand(
		commands.NewFixCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		feedback.Validation(false, "command failed", err)
		os.Exit(1)
	}
}
