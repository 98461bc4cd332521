package rewrite

import (
	"context"
	"io"

	"gitlab.com/tozd/go/errors"
)

// RuleRewriter implements Rewriter by applying an ordered list of rules
type RuleRewriter struct {
	rules []Rule
}

// NewRuleRewriter creates a new RuleRewriter with the given rules.
// Rules are applied in the order given; earlier rules see the original
// text, later rules see the output of earlier ones.
func NewRuleRewriter(rules ...Rule) *RuleRewriter {
	return &RuleRewriter{rules: rules}
}

// Rewrite implements Rewriter.Rewrite
func (r *RuleRewriter) Rewrite(ctx context.Context, content io.Reader) (*Result, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Create result with original content
	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule
	currentContent := string(originalContent)
	for _, rule := range r.rules {
		if rule.Pattern == nil {
			continue
		}

		// Count non-overlapping occurrences before rewriting
		occurrences := len(rule.Pattern.FindAllStringIndex(currentContent, -1))
		if occurrences == 0 {
			continue
		}

		currentContent = rule.Pattern.ReplaceAllStringFunc(currentContent, func(match string) string {
			groups := rule.Pattern.FindStringSubmatch(match)
			return rule.Expand(groups)
		})

		result.WasModified = true
		result.ReplacementCount += occurrences
	}

	// Update final content
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements Rewriter.ValidateRules
func (r *RuleRewriter) ValidateRules() error {
	for i, rule := range r.rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == nil {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if rule.Expand == nil {
			return errors.Errorf("rule %d (%s): expand function is required", i, rule.Name)
		}
	}
	return nil
}
