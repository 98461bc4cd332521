package patch

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/superfix/pkg/fileman"
	"github.com/walteh/superfix/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the patcher
type Options struct {
	// Targets is the ordered list of files to process
	Targets []string
	// Rewriter applies the rewrite rules to file content
	Rewriter rewrite.Rewriter
	// Files performs all file system access
	Files fileman.FileManager
	// DryRun computes outcomes without writing anything
	DryRun bool
	// Async processes targets concurrently
	Async bool
}

// 🎮 Patcher processes a batch of target files
type Patcher struct {
	targets  []string
	rewriter rewrite.Rewriter
	files    fileman.FileManager
	dryRun   bool
	async    bool
}

// 🏭 New creates a new patcher with the given options
func New(opts Options) (*Patcher, error) {
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if err := opts.Rewriter.ValidateRules(); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return &Patcher{
		targets:  opts.Targets,
		rewriter: opts.Rewriter,
		files:    opts.Files,
		dryRun:   opts.DryRun,
		async:    opts.Async,
	}, nil
}

// 🏃 Run processes every target and returns the aggregated summary.
// A missing or failed target never aborts the batch; its outcome is
// recorded and processing continues with the next target.
func (p *Patcher) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Int("targets", len(p.targets)).
		Bool("async", p.async).
		Bool("dry_run", p.dryRun).
		Msg("starting patch batch")

	var results []FileResult
	if p.async {
		results = p.runAsync(ctx)
	} else {
		results = p.runSync(ctx)
	}

	summary := &Summary{Results: results}
	for _, res := range results {
		switch res.Outcome {
		case OutcomeFixed:
			summary.Fixed++
		case OutcomeFailed:
			summary.Failed++
		}
	}

	logger.Debug().
		Int("fixed", summary.Fixed).
		Int("failed", summary.Failed).
		Msg("patch batch complete")

	return summary, nil
}

// 📄 processTarget handles a single file: existence check, rewrite,
// conditional write-back.
func (p *Patcher) processTarget(ctx context.Context, path string) FileResult {
	logger := zerolog.Ctx(ctx)

	// Existence check
	exists, err := p.files.FileExists(ctx, path)
	if err != nil {
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("checking target: %w", err)}
	}
	if !exists {
		logger.Debug().Str("path", path).Msg("target not found")
		return FileResult{Path: path, Outcome: OutcomeSkipped}
	}

	// Read and rewrite
	content, err := p.files.ReadFile(ctx, path)
	if err != nil {
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("reading target: %w", err)}
	}

	result, err := p.rewriter.Rewrite(ctx, bytes.NewReader(content))
	if err != nil {
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("rewriting target: %w", err)}
	}

	// Unchanged content is never opened for writing
	if !result.WasModified {
		return FileResult{Path: path, Outcome: OutcomeUnchanged}
	}

	if !p.dryRun {
		if err := p.files.WriteFileAtomic(ctx, path, result.ModifiedContent); err != nil {
			return FileResult{Path: path, Outcome: OutcomeFailed, Err: errors.Errorf("writing target: %w", err)}
		}
	}

	logger.Debug().
		Str("path", path).
		Int("replacements", result.ReplacementCount).
		Msg("target rewritten")

	return FileResult{Path: path, Outcome: OutcomeFixed, Replacements: result.ReplacementCount}
}
