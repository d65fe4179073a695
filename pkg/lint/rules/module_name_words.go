package rules

import (
	"fmt"
	"regexp"

	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
)

// defaultNameWords lists filler words that carry no meaning in a module or
// routine name. Entries are regular expression alternatives.
const defaultNameWords = "процедуры|procedures|функции|functions|обработчики|handlers|модуль|module|функциональность|functionality"

// ModuleNameWordsRule flags module, procedure, and function names that
// contain generic filler words. The word list is matched anywhere in the
// name, ignoring case.
type ModuleNameWordsRule struct {
	lint.BaseRule

	pattern *regexp.Regexp
}

// NewModuleNameWordsRule creates the rule with default options.
func NewModuleNameWordsRule() *ModuleNameWordsRule {
	r := &ModuleNameWordsRule{
		BaseRule: lint.NewBaseRule(
			"BSL002",
			"module-name-words",
			"Names should not contain generic filler words",
			[]string{"standard"},
		),
	}
	// The default word list always compiles.
	r.pattern = regexp.MustCompile(`(?i)(` + defaultNameWords + `)`)
	return r
}

// Options describes the configurable options.
func (r *ModuleNameWordsRule) Options() []lint.OptionSpec {
	return []lint.OptionSpec{
		{
			Name:        "words",
			Type:        lint.OptionString,
			Default:     defaultNameWords,
			Description: "Pipe-separated word alternatives to flag in names",
		},
	}
}

// Configure compiles the configured word list.
func (r *ModuleNameWordsRule) Configure(options map[string]any) error {
	decoded, err := lint.DecodeOptions(r.ID(), r.Options(), options)
	if err != nil {
		return err
	}

	words := decoded["words"].(string)
	pattern, err := regexp.Compile(`(?i)(` + words + `)`)
	if err != nil {
		return &lint.ConfigError{
			RuleID: r.ID(),
			Option: "words",
			Reason: "invalid pattern: " + err.Error(),
		}
	}
	r.pattern = pattern
	return nil
}

// Kinds subscribes the rule to the module root and routine declarations.
func (r *ModuleNameWordsRule) Kinds() []bslast.NodeKind {
	return []bslast.NodeKind{bslast.NodeModule, bslast.NodeProcedure, bslast.NodeFunction}
}

// Visit checks one named declaration.
func (r *ModuleNameWordsRule) Visit(node *bslast.Node, ctx *lint.RuleContext) error {
	switch node.Kind {
	case bslast.NodeModule:
		name := ctx.Unit.ModuleName
		if match := r.pattern.FindString(name); match != "" {
			ctx.Report(lint.Diagnostic{
				Message:   fmt.Sprintf("Module name %q contains the generic word %q", name, match),
				StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1,
			})
		}
	case bslast.NodeProcedure, bslast.NodeFunction:
		if match := r.pattern.FindString(node.Name); match != "" {
			kind := "Procedure"
			if node.Kind == bslast.NodeFunction {
				kind = "Function"
			}
			// Point at the name identifier, not the whole body.
			target := node
			if fc := node.FirstChild; fc != nil && fc.Kind == bslast.NodeIdentifier {
				target = fc
			}
			ctx.ReportNode(target,
				fmt.Sprintf("%s name %q contains the generic word %q", kind, node.Name, match))
		}
	}
	return nil
}

// DefaultSeverity marks filler words as info-level issues.
func (r *ModuleNameWordsRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}
