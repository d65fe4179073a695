package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
	bslparser "github.com/bsltools/bsllint/pkg/parser/bsl"
)

// lintSource runs a single rule against source and returns its diagnostics.
func lintSource(t *testing.T, rule lint.Rule, cfg *config.Config, path, source string) []lint.Diagnostic {
	t.Helper()

	registry := lint.NewRegistry()
	registry.Register(rule)

	engine := lint.NewEngine(bslparser.New(), registry)
	require.NoError(t, engine.Configure(cfg))

	result, err := engine.LintFile(context.Background(), path, []byte(source))
	require.NoError(t, err)
	require.Empty(t, result.RuleErrors)

	return result.Diagnostics
}

// ruleConfig builds a config enabling one rule with the given options.
func ruleConfig(ruleID string, enabled bool, options map[string]any) *config.Config {
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		ruleID: {Enabled: &enabled, Options: options},
	}
	return cfg
}
