package lint

import (
	"fmt"
	"math"
)

// OptionType identifies the value type of a rule option.
type OptionType string

// Supported option value types.
const (
	OptionString OptionType = "string"
	OptionInt    OptionType = "int"
	OptionBool   OptionType = "bool"
)

// OptionSpec describes one configurable option of a rule.
type OptionSpec struct {
	// Name is the option key as it appears in configuration files.
	Name string

	// Type is the expected value type.
	Type OptionType

	// Default is the value used when the option is not configured.
	Default any

	// Description explains what the option controls.
	Description string
}

// ConfigError reports invalid rule configuration. It aborts the run before
// any module is analyzed.
type ConfigError struct {
	// RuleID identifies the misconfigured rule.
	RuleID string

	// Option is the offending option key, if the error is option-specific.
	Option string

	// Reason describes what is wrong.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("rule %s: option %q: %s", e.RuleID, e.Option, e.Reason)
	}
	return fmt.Sprintf("rule %s: %s", e.RuleID, e.Reason)
}

// DecodeOptions validates raw option values against specs and returns a map
// with defaults filled in. Unknown keys and type mismatches are rejected
// with a *ConfigError.
func DecodeOptions(ruleID string, specs []OptionSpec, raw map[string]any) (map[string]any, error) {
	byName := make(map[string]OptionSpec, len(specs))
	decoded := make(map[string]any, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
		decoded[spec.Name] = spec.Default
	}

	for key, value := range raw {
		spec, ok := byName[key]
		if !ok {
			return nil, &ConfigError{RuleID: ruleID, Option: key, Reason: "unknown option"}
		}

		coerced, err := coerceOption(spec.Type, value)
		if err != nil {
			return nil, &ConfigError{RuleID: ruleID, Option: key, Reason: err.Error()}
		}
		decoded[key] = coerced
	}

	return decoded, nil
}

// coerceOption converts a raw decoded value to the declared option type.
// YAML decodes
// numbers as int or float64 depending on source formatting, so integral
// floats are accepted for int options.
func coerceOption(typ OptionType, value any) (any, error) {
	switch typ {
	case OptionString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("expected string, got %T", value)
	case OptionInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("expected integer, got %v", v)
			}
			return int(v), nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", value)
		}
	case OptionBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("expected boolean, got %T", value)
	default:
		return nil, fmt.Errorf("unsupported option type %q", typ)
	}
}
