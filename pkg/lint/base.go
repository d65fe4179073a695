package lint

import "github.com/bsltools/bsllint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface
// methods. Use NewBaseRule to construct.
type BaseRule struct {
	id   string   // Unique identifier (e.g., "BSL001")
	name string   // Human-readable name
	desc string   // Detailed description
	tags []string // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityMinor
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Options returns the rule's option specs. The default is no options.
func (r *BaseRule) Options() []OptionSpec {
	return nil
}

// Configure rejects any options, since the base rule declares none.
// Rules with options must override this.
func (r *BaseRule) Configure(options map[string]any) error {
	_, err := DecodeOptions(r.id, nil, options)
	return err
}

// Apply must be overridden by concrete rule implementations that are not
// node visitors. The default reports nothing.
func (r *BaseRule) Apply(_ *RuleContext) error {
	return nil
}
