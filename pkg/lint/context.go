package lint

import (
	"context"

	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
)

// RuleContext provides all context needed by a rule to analyze one module.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. This is acceptable because
// RuleContext is a short-lived parameter object created per-rule-invocation,
// not a long-lived struct. It keeps the Rule interface small while still
// providing cancellation support via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Unit is the parsed module under analysis.
	Unit *bslast.Unit

	// Root is the AST root node (convenience alias for Unit.Root).
	Root *bslast.Node

	// Config is the resolved configuration.
	Config *config.Config

	// Options holds the rule's decoded options with defaults filled in.
	Options map[string]any

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// sink receives reported diagnostics.
	sink *Sink

	// rule is the resolved rule this context was built for. Report uses it
	// to fill identification and severity defaults.
	rule *ResolvedRule
}

// NewRuleContext creates a RuleContext for the given module and rule.
func NewRuleContext(
	ctx context.Context,
	unit *bslast.Unit,
	cfg *config.Config,
	rr *ResolvedRule,
	sink *Sink,
) *RuleContext {
	var root *bslast.Node
	if unit != nil {
		root = unit.Root
	}

	var options map[string]any
	if rr != nil {
		options = rr.Options
	}

	return &RuleContext{
		Ctx:      ctx,
		Unit:     unit,
		Root:     root,
		Config:   cfg,
		Options:  options,
		sink:     sink,
		rule:     rr,
	}
}

// Report sends a diagnostic to the sink, filling in the rule identity,
// resolved severity, and file path when the rule left them unset.
func (rc *RuleContext) Report(d Diagnostic) {
	if rc.rule != nil {
		if d.RuleID == "" {
			d.RuleID = rc.rule.Rule.ID()
		}
		if d.RuleName == "" {
			d.RuleName = rc.rule.Rule.Name()
		}
		if d.Severity == "" {
			d.Severity = rc.rule.Severity
		}
	}
	if d.FilePath == "" && rc.Unit != nil {
		d.FilePath = rc.Unit.Path
	}
	rc.sink.Append(d)
}

// ReportNode reports a diagnostic located at the given node.
func (rc *RuleContext) ReportNode(node *bslast.Node, message string) {
	d := Diagnostic{Message: message}
	if pos := node.SourcePosition(); pos.IsValid() {
		d.StartLine = pos.StartLine
		d.StartColumn = pos.StartColumn
		d.EndLine = pos.EndLine
		d.EndColumn = pos.EndColumn
	}
	rc.Report(d)
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.Options == nil {
		return defaultValue
	}
	if v, ok := rc.Options[key]; ok && v != nil {
		return v
	}
	return defaultValue
}

// OptionInt returns an integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}
