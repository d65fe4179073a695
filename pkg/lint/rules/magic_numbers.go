package rules

import (
	"fmt"
	"strings"

	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
)

// Default option values for the magic number rule.
const (
	defaultAuthorizedNumbers = "-1,0,1"
	defaultAllowMagicIndexes = true
)

// MagicNumberRule flags numeric literals used directly without a named
// constant. Literals that take part in a larger computation are tolerated;
// a bare number assigned or passed as-is is not.
type MagicNumberRule struct {
	lint.BaseRule

	authorized map[string]struct{}
	allowIndex bool
}

// NewMagicNumberRule creates the rule with default options.
func NewMagicNumberRule() *MagicNumberRule {
	r := &MagicNumberRule{
		BaseRule: lint.NewBaseRule(
			"BSL001",
			"magic-number",
			"Numeric literals should be replaced with named constants",
			[]string{"badpractice"},
		),
	}
	r.configure(defaultAuthorizedNumbers, defaultAllowMagicIndexes)
	return r
}

// Options describes the configurable options.
func (r *MagicNumberRule) Options() []lint.OptionSpec {
	return []lint.OptionSpec{
		{
			Name:        "authorizedNumbers",
			Type:        lint.OptionString,
			Default:     defaultAuthorizedNumbers,
			Description: "Comma-separated literals that are never flagged",
		},
		{
			Name:        "allowMagicIndexes",
			Type:        lint.OptionBool,
			Default:     defaultAllowMagicIndexes,
			Description: "Tolerate numeric literals used as collection indexes",
		},
	}
}

// Configure applies and validates options.
func (r *MagicNumberRule) Configure(options map[string]any) error {
	decoded, err := lint.DecodeOptions(r.ID(), r.Options(), options)
	if err != nil {
		return err
	}
	r.configure(decoded["authorizedNumbers"].(string), decoded["allowMagicIndexes"].(bool))
	return nil
}

func (r *MagicNumberRule) configure(authorized string, allowIndex bool) {
	r.authorized = make(map[string]struct{})
	for _, entry := range strings.Split(authorized, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			r.authorized[entry] = struct{}{}
		}
	}
	r.allowIndex = allowIndex
}

// Kinds subscribes the rule to numeric literals.
func (r *MagicNumberRule) Kinds() []bslast.NodeKind {
	return []bslast.NodeKind{bslast.NodeNumberLiteral}
}

// Visit inspects one numeric literal.
func (r *MagicNumberRule) Visit(node *bslast.Node, ctx *lint.RuleContext) error {
	// A leading unary minus is part of the number for exclusion purposes,
	// so "-1" matches the authorized entry "-1".
	subject := node
	if parent := node.Parent; parent != nil && parent.Kind == bslast.NodeUnaryOp {
		subject = parent
	}

	text := strings.TrimSpace(string(subject.Text()))
	if text == "" {
		return nil
	}

	// Exclusion is an exact literal comparison: authorizing "1" does not
	// authorize "1.0".
	if _, ok := r.authorized[text]; ok {
		return nil
	}

	if !r.isMagicUse(subject) {
		return nil
	}

	ctx.ReportNode(subject, fmt.Sprintf("Magic number detected: %s", text))
	return nil
}

// isMagicUse reports whether the literal stands alone rather than taking
// part in a larger computation. Index positions count as standalone uses
// only when magic indexes are disallowed.
func (r *MagicNumberRule) isMagicUse(subject *bslast.Node) bool {
	expr := subject.Parent
	if expr == nil || expr.Kind != bslast.NodeExpression {
		// Literal outside an expression wrapper (e.g. a default parameter
		// value) is a direct use.
		return true
	}

	if isIndexOperand(expr) {
		return !r.allowIndex
	}

	return expr.ChildCount() <= 1
}

// isIndexOperand reports whether expr is the index operand of an index
// access, i.e. the bracketed expression in base[expr].
func isIndexOperand(expr *bslast.Node) bool {
	parent := expr.Parent
	return parent != nil &&
		parent.Kind == bslast.NodeIndexAccess &&
		parent.FirstChild != expr
}

// DefaultSeverity marks magic numbers as minor issues.
func (r *MagicNumberRule) DefaultSeverity() config.Severity {
	return config.SeverityMinor
}
