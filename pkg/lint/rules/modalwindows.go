package rules

import (
	"fmt"
	"strings"

	"github.com/bsltools/bsllint/pkg/bslast"
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
)

// modalReplacements maps global platform methods that open modal windows to
// their asynchronous replacements. Keys are lowercase; both English and
// Russian method spellings are covered.
//
//nolint:gochecknoglobals // Read-only lookup table.
var modalReplacements = map[string]string{
	"doquerybox":                 "ShowQueryBox",
	"вопрос":                     "ПоказатьВопрос",
	"domessagebox":               "ShowMessageBox",
	"предупреждение":             "ПоказатьПредупреждение",
	"openformmodal":              "OpenForm",
	"открытьформумодально":       "ОткрытьФорму",
	"openvalue":                  "ShowValue",
	"открытьзначение":            "ПоказатьЗначение",
	"inputvalue":                 "ShowInputValue",
	"ввестизначение":             "ПоказатьВводЗначения",
	"inputstring":                "ShowInputString",
	"ввестистроку":               "ПоказатьВводСтроки",
	"inputnumber":                "ShowInputNumber",
	"ввестичисло":                "ПоказатьВводЧисла",
	"inputdate":                  "ShowInputDate",
	"ввестидату":                 "ПоказатьВводДаты",
	"putfile":                    "BeginPutFile",
	"поместитьфайл":              "НачатьПомещениеФайла",
	"getfile":                    "BeginGetFile",
	"получитьфайл":               "НачатьПолучениеФайла",
	"installaddin":               "BeginInstallAddIn",
	"установитьвнешнююкомпоненту": "НачатьУстановкуВнешнейКомпоненты",
	"runapp":                     "BeginRunningApplication",
	"запуститьприложение":        "НачатьЗапускПриложения",
	"installfilesystemextension": "BeginInstallFileSystemExtension",
}

// ModalWindowsRule flags calls to global platform methods that open modal
// windows. Modal windows block the web client; each method has an
// asynchronous counterpart that should be used instead.
type ModalWindowsRule struct {
	lint.BaseRule
}

// NewModalWindowsRule creates the rule.
func NewModalWindowsRule() *ModalWindowsRule {
	return &ModalWindowsRule{
		BaseRule: lint.NewBaseRule(
			"BSL003",
			"using-modal-windows",
			"Modal window methods should be replaced with their asynchronous counterparts",
			[]string{"standard", "deprecated"},
		),
	}
}

// Kinds subscribes the rule to call nodes.
func (r *ModalWindowsRule) Kinds() []bslast.NodeKind {
	return []bslast.NodeKind{bslast.NodeCall}
}

// Visit checks one call node.
func (r *ModalWindowsRule) Visit(node *bslast.Node, ctx *lint.RuleContext) error {
	// Only global calls count. A method call on a receiver may be an
	// application method that happens to share the name.
	if !isGlobalCall(node) {
		return nil
	}

	replacement, ok := modalReplacements[strings.ToLower(node.Name)]
	if !ok {
		return nil
	}

	d := lint.Diagnostic{
		Message:    fmt.Sprintf("Method %q opens a modal window", node.Name),
		Suggestion: fmt.Sprintf("Use %s instead", replacement),
	}
	if pos := node.SourcePosition(); pos.IsValid() {
		d.StartLine = pos.StartLine
		d.StartColumn = pos.StartColumn
		d.EndLine = pos.EndLine
		d.EndColumn = pos.EndColumn
	}
	ctx.Report(d)
	return nil
}

// isGlobalCall reports whether a call node is a call to a global method
// rather than a method call on a receiver or a constructor. Global calls
// carry their callee identifier as the first child.
func isGlobalCall(n *bslast.Node) bool {
	fc := n.FirstChild
	return fc != nil &&
		fc.Kind == bslast.NodeIdentifier &&
		strings.EqualFold(fc.Name, n.Name)
}

// DefaultSeverity marks modal window usage as a major issue.
func (r *ModalWindowsRule) DefaultSeverity() config.Severity {
	return config.SeverityMajor
}
