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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config represents the complete patcher configuration
type Config struct {
	// Root is the directory all target paths are resolved against
	Root string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`

	// Targets is the ordered list of files to patch. Order determines
	// report order. Entries are not deduplicated.
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty" hcl:"targets,optional"`

	// Globs are doublestar patterns expanded against Root; matches are
	// appended after Targets in sorted order.
	Globs []string `json:"globs,omitempty" yaml:"globs,omitempty" hcl:"globs,optional"`

	// Async processes targets concurrently while keeping report order
	Async bool `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`

	// location is the path the config was loaded from
	location string
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if len(cfg.Targets) == 0 && len(cfg.Globs) == 0 {
		return errors.Errorf("at least one of targets or globs is required")
	}

	// Set defaults
	if cfg.Root == "" {
		cfg.Root = "."
	}

	// Clean up paths. Cleaning preserves order and duplicates.
	cfg.Root = filepath.Clean(cfg.Root)
	for i, target := range cfg.Targets {
		cfg.Targets[i] = filepath.Clean(target)
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: %d targets, %d globs", cfg.Root, len(cfg.Targets), len(cfg.Globs))
}

// Location returns the path the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// 🎯 ResolveTargets returns the full ordered target list: explicit
// targets first, then the sorted matches of each glob pattern.
func (cfg *Config) ResolveTargets(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	targets := make([]string, 0, len(cfg.Targets))
	targets = append(targets, cfg.Targets...)

	rootFS := os.DirFS(cfg.Root)
	for _, pattern := range cfg.Globs {
		matches, err := doublestar.Glob(rootFS, pattern)
		if err != nil {
			return nil, errors.Errorf("expanding glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded glob pattern")
		targets = append(targets, matches...)
	}

	return targets, nil
}
