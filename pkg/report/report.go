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

package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/superfix/pkg/patch"
)

// 🎯 Reporter prints the per-file outcome lines and the trailing
// summary, mirroring every line to zerolog.
type Reporter struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new reporter
func New(console io.Writer, zlog zerolog.Logger) *Reporter {
	return &Reporter{
		zlog:    zlog,
		console: console,
	}
}

// 📝 FileOutcome prints the outcome line for a single target.
// The line text is the report contract; only the prefix is colored.
func (r *Reporter) FileOutcome(res patch.FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch res.Outcome {
	case patch.OutcomeSkipped:
		fmt.Fprintf(r.console, "%s %s not found\n",
			color.New(color.FgYellow).Sprint("SKIP:"), res.Path)
		r.zlog.Warn().Str("path", res.Path).Msg("target not found")
	case patch.OutcomeFixed:
		fmt.Fprintf(r.console, "%s %s\n",
			color.New(color.FgGreen).Sprint("FIXED:"), res.Path)
		r.zlog.Info().
			Str("path", res.Path).
			Int("replacements", res.Replacements).
			Msg("target fixed")
	case patch.OutcomeUnchanged:
		fmt.Fprintf(r.console, "%s %s\n",
			color.New(color.Faint).Sprint("NO CHANGE:"), res.Path)
		r.zlog.Info().Str("path", res.Path).Msg("target unchanged")
	case patch.OutcomeFailed:
		fmt.Fprintf(r.console, "%s %s: %v\n",
			color.New(color.FgRed).Sprint("ERROR:"), res.Path, res.Err)
		r.zlog.Error().Str("path", res.Path).Err(res.Err).Msg("target failed")
	}
}

// 📝 Summary prints the trailing blank line and the fixed-file total
func (r *Reporter) Summary(s *patch.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.console, "\nTotal files fixed: %d\n", s.Fixed)
	r.zlog.Info().
		Int("fixed", s.Fixed).
		Int("failed", s.Failed).
		Int("total", len(s.Results)).
		Msg("batch complete")
}

// 📝 Batch prints the whole report: one outcome line per result in
// order, then the summary.
func (r *Reporter) Batch(s *patch.Summary) {
	for _, res := range s.Results {
		r.FileOutcome(res)
	}
	r.Summary(s)
}
