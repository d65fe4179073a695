package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bsltools/bsllint/pkg/config"
)

// envVarPrefix is the prefix for all bsllint environment variables.
const envVarPrefix = "BSLLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LANGUAGE":         {field: "language", typ: envTypeString},
	"SEVERITY_DEFAULT": {field: "severity_default", typ: envTypeString},
	"JOBS":             {field: "jobs", typ: envTypeInt},
	"FORMAT":           {field: "format", typ: envTypeString},
	"RULE_FORMAT":      {field: "rule_format", typ: envTypeString},
	"IGNORE":           {field: "ignore", typ: envTypeSlice},
	"SPELL_CACHE":      {field: "spell_cache", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BSLLINT_ (e.g., BSLLINT_LANGUAGE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "language":
		cfg.Language = config.Language(value)
	case "severity_default":
		cfg.SeverityDefault = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "rule_format":
		cfg.RuleFormat = config.RuleFormat(value)
	case "spell_cache":
		cfg.SpellCachePath = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"BSLLINT_LANGUAGE":         "Spelling language: en or ru",
		"BSLLINT_SEVERITY_DEFAULT": "Default severity: info, minor, major, critical, or blocker",
		"BSLLINT_JOBS":             "Number of parallel workers (0 = auto)",
		"BSLLINT_FORMAT":           "Output format: text, json, or sarif",
		"BSLLINT_RULE_FORMAT":      "Rule identifier format: name, id, or combined",
		"BSLLINT_IGNORE":           "Comma-separated list of ignore patterns",
		"BSLLINT_SPELL_CACHE":      "Path to the persisted spelling cache",
	}
}
