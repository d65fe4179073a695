// Package lint provides the rule engine, diagnostics, and registry for bsllint.
package lint

import (
	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
)

// Diagnostic represents a single issue found in a module.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "magic-number").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() bslast.SourcePosition {
	return bslast.SourcePosition{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "BSL001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["badpractice"]).
	Tags() []string

	// Options describes the configuration options the rule accepts.
	Options() []OptionSpec

	// Configure validates and applies rule options. It is called once per
	// run before any module is analyzed. Option values outside the declared
	// specs produce a *ConfigError.
	Configure(options map[string]any) error

	// Apply executes the rule against the given context.
	//
	// Rules must:
	//   - Report each violation through ctx.Report.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) error
}

// NodeVisitor is implemented by rules that inspect individual AST nodes.
// Visitor rules share a single tree traversal per module: the engine walks
// the tree once and dispatches each node to every visitor subscribed to its
// kind. A visitor rule's Apply is not called; Visit is.
type NodeVisitor interface {
	Rule

	// Kinds returns the node kinds the visitor wants to see.
	Kinds() []bslast.NodeKind

	// Visit inspects one node. Returning an error disables the visitor for
	// the remainder of the module.
	Visit(node *bslast.Node, ctx *RuleContext) error
}
