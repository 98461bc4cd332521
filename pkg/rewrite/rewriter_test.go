package rewrite

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleRewriter_RuleOrder(t *testing.T) {
	// Two rules where the first consumes text the second would match.
	// Order must be respected: the second rule only sees leftovers.
	first := Rule{
		Name:    "first",
		Pattern: regexp.MustCompile(`ab`),
		Expand:  func(groups []string) string { return "X" },
	}
	second := Rule{
		Name:    "second",
		Pattern: regexp.MustCompile(`a`),
		Expand:  func(groups []string) string { return "Y" },
	}

	rewriter := NewRuleRewriter(first, second)
	result, err := rewriter.Rewrite(context.Background(), strings.NewReader("ab a"))
	require.NoError(t, err)

	assert.Equal(t, "X Y", string(result.ModifiedContent))
	assert.Equal(t, 2, result.ReplacementCount)
	assert.True(t, result.WasModified)
}

func TestRuleRewriter_CountsAllOccurrences(t *testing.T) {
	rule := Rule{
		Name:    "dots",
		Pattern: regexp.MustCompile(`\.`),
		Expand:  func(groups []string) string { return "!" },
	}

	rewriter := NewRuleRewriter(rule)
	result, err := rewriter.Rewrite(context.Background(), strings.NewReader("a.b.c."))
	require.NoError(t, err)

	assert.Equal(t, "a!b!c!", string(result.ModifiedContent))
	assert.Equal(t, 3, result.ReplacementCount)
}

func TestRuleRewriter_NoRules(t *testing.T) {
	rewriter := NewRuleRewriter()
	result, err := rewriter.Rewrite(context.Background(), strings.NewReader("untouched"))
	require.NoError(t, err)

	assert.Equal(t, "untouched", string(result.ModifiedContent))
	assert.False(t, result.WasModified)
	assert.Zero(t, result.ReplacementCount)
}

func TestRuleRewriter_ValidateRules(t *testing.T) {
	expand := func(groups []string) string { return "" }
	pattern := regexp.MustCompile(`x`)

	tests := []struct {
		name      string
		rules     []Rule
		wantError string
	}{
		{
			name:  "valid_rules",
			rules: SuperCallRules(),
		},
		{
			name: "missing_name",
			rules: []Rule{
				{Pattern: pattern, Expand: expand},
			},
			wantError: "name is required",
		},
		{
			name: "missing_pattern",
			rules: []Rule{
				{Name: "broken", Expand: expand},
			},
			wantError: "pattern is required",
		},
		{
			name: "missing_expand",
			rules: []Rule{
				{Name: "broken", Pattern: pattern},
			},
			wantError: "expand function is required",
		},
		{
			name:  "empty_rules",
			rules: []Rule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewriter := NewRuleRewriter(tt.rules...)
			err := rewriter.ValidateRules()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}
