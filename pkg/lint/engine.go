package lint

import (
	"context"
	"fmt"

	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
)

// UnitResult contains the results of analyzing a single module.
type UnitResult struct {
	// Unit is the parsed module.
	Unit *bslast.Unit

	// Diagnostics contains all issues found, in report order.
	Diagnostics []Diagnostic

	// RuleErrors contains internal errors from rule execution, keyed by
	// rule ID. A failed rule never discards the diagnostics of others.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (ur *UnitResult) HasIssues() bool {
	return len(ur.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (ur *UnitResult) IssueCount() int {
	return len(ur.Diagnostics)
}

// Parser turns raw module source into a parsed Unit.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*bslast.Unit, error)
}

// Engine coordinates parsing and rule execution. Configure once, then
// analyze any number of modules, possibly concurrently.
type Engine struct {
	// Parser parses module files into Units.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry

	cfg      *config.Config
	resolved []ResolvedRule
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// Configure resolves and configures the rule set for cfg. It must be called
// before LintUnit or LintFile. Invalid configuration returns a *ConfigError
// and leaves the engine unconfigured.
func (e *Engine) Configure(cfg *config.Config) error {
	resolved, err := ResolveRules(e.Registry, cfg)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.resolved = resolved
	return nil
}

// ResolvedRules returns the rules the engine will run, in ID order.
func (e *Engine) ResolvedRules() []ResolvedRule {
	return e.resolved
}

// LintFile parses and analyzes a single module file.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte) (*UnitResult, error) {
	unit, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return e.LintUnit(ctx, unit)
}

// LintUnit runs the configured rules against a parsed module. Visitor rules
// share one tree traversal; remaining rules run through Apply afterwards,
// in ID order. Rule failures are isolated into RuleErrors.
func (e *Engine) LintUnit(ctx context.Context, unit *bslast.Unit) (*UnitResult, error) {
	if e.resolved == nil {
		return nil, fmt.Errorf("engine is not configured")
	}

	sink := NewSink()
	result := &UnitResult{
		Unit:       unit,
		RuleErrors: make(map[string]error),
	}

	walker := NewWalker()
	var applyRules []*ResolvedRule

	for i := range e.resolved {
		rr := &e.resolved[i]
		ruleCtx := NewRuleContext(ctx, unit, e.cfg, rr, sink)
		ruleCtx.Registry = e.Registry

		if visitor, ok := rr.Rule.(NodeVisitor); ok {
			walker.Subscribe(visitor, ruleCtx)
		} else {
			applyRules = append(applyRules, rr)
		}
	}

	if unit.Root != nil {
		visitorErrs, err := walker.Walk(unit.Root)
		for id, verr := range visitorErrs {
			result.RuleErrors[id] = verr
		}
		if err != nil {
			result.Diagnostics = sink.Diagnostics()
			return result, fmt.Errorf("analysis cancelled: %w", err)
		}
	}

	for _, rr := range applyRules {
		select {
		case <-ctx.Done():
			result.Diagnostics = sink.Diagnostics()
			return result, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, unit, e.cfg, rr, sink)
		ruleCtx.Registry = e.Registry

		if err := applyRule(rr.Rule, ruleCtx); err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
		}
	}

	result.Diagnostics = sink.Diagnostics()
	return result, nil
}

// applyRule runs a rule's Apply with panic isolation.
func applyRule(rule Rule, ruleCtx *RuleContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule panicked: %v", r)
		}
	}()
	return rule.Apply(ruleCtx)
}
