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
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/superfix/pkg/patch"
)

// capturePterm redirects pterm's default printers into a buffer for
// the duration of a test.
func capturePterm(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	pterm.DisableColor()
	pterm.SetDefaultOutput(buf)
	// The package-level printers capture their Writer at init, so
	// SetDefaultOutput alone does not redirect them.
	printers := []*pterm.PrefixPrinter{&pterm.Debug, &pterm.Info, &pterm.Success, &pterm.Warning, &pterm.Error}
	prev := make([]io.Writer, len(printers))
	for i, p := range printers {
		prev[i] = p.Writer
		p.Writer = buf
	}
	t.Cleanup(func() {
		for i, p := range printers {
			p.Writer = prev[i]
		}
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableColor()
	})

	return buf
}

func TestUserFeedback_Validation(t *testing.T) {
	tests := []struct {
		name        string
		valid       bool
		description string
		err         error
		contains    []string
	}{
		{
			name:        "valid_result_prints_success",
			valid:       true,
			description: "config loaded",
			contains:    []string{"config loaded"},
		},
		{
			name:        "invalid_with_error_prints_cause",
			valid:       false,
			description: "command failed",
			err:         fmt.Errorf("loading config: no such file"),
			contains:    []string{"command failed", "loading config: no such file"},
		},
		{
			name:        "invalid_without_error_prints_warning",
			valid:       false,
			description: "nothing to do",
			contains:    []string{"nothing to do"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capturePterm(t)
			feedback := NewUserFeedback(zerolog.Nop())

			feedback.Validation(tt.valid, tt.description, tt.err)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestUserFeedback_BatchCheck(t *testing.T) {
	buf := capturePterm(t)
	feedback := NewUserFeedback(zerolog.Nop())

	summary := &patch.Summary{
		Results: []patch.FileResult{
			{Path: "src/Pounce.java", Outcome: patch.OutcomeFixed, Replacements: 2},
			{Path: "src/Clean.java", Outcome: patch.OutcomeUnchanged},
		},
		Fixed: 1,
	}

	feedback.BatchCheck(summary)

	output := buf.String()
	assert.Contains(t, output, "src/Pounce.java needs fixing (2 call sites)")
	assert.Contains(t, output, "src/Clean.java is clean")
	assert.Contains(t, output, "1 of 2 files need fixing")
}
