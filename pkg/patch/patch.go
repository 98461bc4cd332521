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

// Package patch applies rewrite rules to an ordered batch of files
package patch

// 📊 Outcome represents the result of processing one target file
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeSkipped           // Target does not exist
	OutcomeFixed             // Content changed and was written back
	OutcomeUnchanged         // No rule matched, nothing written
	OutcomeFailed            // Read or write error
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFixed:
		return "fixed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult records what happened to a single target
type FileResult struct {
	Path         string  // Target path, relative to the batch root
	Outcome      Outcome // What happened
	Replacements int     // Number of call sites rewritten
	Err          error   // Cause, when Outcome is OutcomeFailed
}

// 📈 Summary aggregates a full batch run. Results keeps the target
// order of the batch, so report order is deterministic even when the
// batch ran concurrently.
type Summary struct {
	Results []FileResult
	Fixed   int // Files whose content changed and was written
	Failed  int // Files that errored while reading or writing
}
