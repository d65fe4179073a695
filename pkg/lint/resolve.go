package lint

import "github.com/bsltools/bsllint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// Options holds the rule's decoded options with defaults filled in.
	Options map[string]any
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration. Invalid
// configuration aborts with a *ConfigError before any module is analyzed.
func ResolveRules(registry *Registry, cfg *config.Config) ([]ResolvedRule, error) {
	if cfg != nil {
		for key := range cfg.Rules {
			if _, _, ok := registry.Resolve(key); !ok {
				return nil, &ConfigError{RuleID: key, Reason: "unknown rule"}
			}
		}
	}

	var resolved []ResolvedRule
	for _, rule := range registry.Rules() {
		rr, err := resolveRule(registry, rule, cfg)
		if err != nil {
			return nil, err
		}
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved, nil
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) (ResolvedRule, error) {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	var rawOptions map[string]any

	if cfg != nil {
		// Explicit enable/disable from the CLI. Keys may be IDs, names, or
		// legacy aliases.
		for _, key := range cfg.EnableRules {
			if id, _, ok := registry.Resolve(key); ok && id == rule.ID() {
				rr.Enabled = true
				break
			}
		}
		for _, key := range cfg.DisableRules {
			if id, _, ok := registry.Resolve(key); ok && id == rule.ID() {
				rr.Enabled = false
				break
			}
		}

		// Rule-specific config, matched through the same key resolution.
		for key, ruleCfg := range cfg.Rules {
			id, _, ok := registry.Resolve(key)
			if !ok || id != rule.ID() {
				continue
			}

			if ruleCfg.Enabled != nil {
				rr.Enabled = *ruleCfg.Enabled
			}
			if ruleCfg.Severity != nil {
				sev := config.Severity(*ruleCfg.Severity)
				if !sev.IsValid() {
					return ResolvedRule{}, &ConfigError{
						RuleID: rule.ID(),
						Option: "severity",
						Reason: "unknown severity " + *ruleCfg.Severity,
					}
				}
				rr.Severity = sev
			}
			rawOptions = ruleCfg.Options
		}
	}

	options, err := DecodeOptions(rule.ID(), rule.Options(), rawOptions)
	if err != nil {
		return ResolvedRule{}, err
	}
	rr.Options = options

	if rr.Enabled {
		if err := rule.Configure(rawOptions); err != nil {
			return ResolvedRule{}, err
		}
	}

	return rr, nil
}
