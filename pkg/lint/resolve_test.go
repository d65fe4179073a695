package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsltools/bsllint/pkg/config"
)

func TestResolveRulesUnknownRuleKey(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "good"))

	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{"T999": {}}

	_, err := ResolveRules(registry, cfg)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "T999", cfgErr.RuleID)
}

func TestResolveRulesInvalidSeverity(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "good"))

	severity := "fatal"
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{"T001": {Severity: &severity}}

	_, err := ResolveRules(registry, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestResolveRulesEnableDisable(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "good"))
	registry.RegisterAlias("Legacy", "T001")

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"Legacy"}

	resolved, err := ResolveRules(registry, cfg)
	require.NoError(t, err)
	assert.Empty(t, resolved, "disabled via alias")

	cfg = config.NewConfig()
	disabled := false
	cfg.Rules = map[string]config.RuleConfig{"good": {Enabled: &disabled}}
	resolved, err = ResolveRules(registry, cfg)
	require.NoError(t, err)
	assert.Empty(t, resolved, "disabled via rule name key")
}

func TestResolveRulesDisabledRuleSkipsConfigure(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "good"))

	disabled := false
	cfg := config.NewConfig()
	// Unknown options would fail Configure, but the rule is disabled.
	// They still fail option decoding, which catches mistakes early.
	cfg.Rules = map[string]config.RuleConfig{
		"T001": {Enabled: &disabled},
	}

	resolved, err := ResolveRules(registry, cfg)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveRulesDefaults(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "good"))

	resolved, err := ResolveRules(registry, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Enabled)
	assert.Equal(t, config.SeverityMinor, resolved[0].Severity)
}
