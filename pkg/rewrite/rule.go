package rewrite

import (
	"context"
	"io"
	"regexp"
)

// Rule defines a single pattern-based rewrite applied to file content
type Rule struct {
	// Name identifies the rule in logs and validation errors
	Name string

	// Pattern is the compiled expression matched against the content
	Pattern *regexp.Regexp

	// Expand builds the replacement text from the submatches of a
	// single occurrence. groups[0] is the full match.
	Expand func(groups []string) string
}

// Result contains the outcome of rewriting one piece of content
type Result struct {
	// WasModified indicates if any rule matched
	WasModified bool

	// ReplacementCount is the number of occurrences rewritten
	ReplacementCount int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// Rewriter defines the interface for content rewriting operations
type Rewriter interface {
	// Rewrite applies the configured rules to the content, in order.
	// Returns a Result containing the modified content and metadata.
	Rewrite(ctx context.Context, content io.Reader) (*Result, error)

	// ValidateRules checks that all configured rules are valid
	ValidateRules() error
}
