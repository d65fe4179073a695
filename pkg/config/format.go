package config

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "magic-number"
	RuleFormatID       RuleFormat = "id"       // "BSL001"
	RuleFormatCombined RuleFormat = "combined" // "BSL001/magic-number"
)

// IsValid returns true if the rule format is valid.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return true
	default:
		return false
	}
}

// FormatRuleID renders a rule identifier according to the configured format.
// Falls back to the ID when the name is unknown.
func FormatRuleID(format RuleFormat, ruleID, ruleName string) string {
	switch format {
	case RuleFormatID:
		return ruleID
	case RuleFormatCombined:
		if ruleName == "" {
			return ruleID
		}
		return ruleID + "/" + ruleName
	case RuleFormatName:
		fallthrough
	default:
		if ruleName == "" {
			return ruleID
		}
		return ruleName
	}
}
