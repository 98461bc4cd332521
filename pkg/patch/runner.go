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

package patch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// 🔄 runSync processes targets one at a time in list order
func (p *Patcher) runSync(ctx context.Context) []FileResult {
	results := make([]FileResult, 0, len(p.targets))
	for _, path := range p.targets {
		results = append(results, p.processTarget(ctx, path))
	}
	return results
}

// ⚡ runAsync processes targets concurrently. Each worker writes into
// its own index slot, so the result slice keeps list order and the
// summary stays deterministic.
func (p *Patcher) runAsync(ctx context.Context) []FileResult {
	results := make([]FileResult, len(p.targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range p.targets {
		i, path := i, path
		g.Go(func() error {
			results[i] = p.processTarget(gctx, path)
			return nil
		})
	}

	// Workers never return errors; per-file failures land in results
	_ = g.Wait()

	return results
}
