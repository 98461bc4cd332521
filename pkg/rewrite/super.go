package rewrite

import (
	"fmt"
	"regexp"
)

// setterIndent is the fixed indentation for the generated setter
// statements. The target sources keep constructor bodies at two levels
// of four-space indent, so the replacement does not infer indentation
// from context.
const setterIndent = "        "

var (
	// matches super(<number>, <true|false>); with optional whitespace
	// around the boolean. The numeric literal is digits with optional
	// decimal points, no sign, no exponent.
	twoArgSuperPattern = regexp.MustCompile(`super\(([0-9.]+),\s*(true|false)\s*\);`)

	// matches super(<number>); with no second argument. Runs after the
	// two-argument rule, so a comma after the number can never reach it.
	oneArgSuperPattern = regexp.MustCompile(`super\(([0-9.]+)\);`)
)

// TwoArgSuperRule rewrites super(weight, enabled); into a bare super
// call followed by setWeight and setEnabled statements.
func TwoArgSuperRule() Rule {
	return Rule{
		Name:    "super-weight-enabled",
		Pattern: twoArgSuperPattern,
		Expand: func(groups []string) string {
			weight := groups[1]
			enabled := groups[2]
			return fmt.Sprintf("super();\n%ssetWeight(%s);\n%ssetEnabled(%s);", setterIndent, weight, setterIndent, enabled)
		},
	}
}

// OneArgSuperRule rewrites super(weight); into a bare super call
// followed by a setWeight statement.
func OneArgSuperRule() Rule {
	return Rule{
		Name:    "super-weight",
		Pattern: oneArgSuperPattern,
		Expand: func(groups []string) string {
			weight := groups[1]
			return fmt.Sprintf("super();\n%ssetWeight(%s);", setterIndent, weight)
		},
	}
}

// SuperCallRules returns the constructor-call rules in application
// order. The two-argument rule must run first so that two-argument
// calls are never partially consumed by the one-argument rule.
func SuperCallRules() []Rule {
	return []Rule{
		TwoArgSuperRule(),
		OneArgSuperRule(),
	}
}

// NewSuperCallRewriter creates a Rewriter configured with the
// constructor-call rules. Rewriting is idempotent: the expanded form
// contains no super(<number>...) shape, so a second pass is a no-op.
func NewSuperCallRewriter() *RuleRewriter {
	return NewRuleRewriter(SuperCallRules()...)
}
