// Package config defines core configuration types for bsllint.
// These types are pure data structures with no dependencies on the config loaders.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
	SeverityBlocker  Severity = "blocker"
)

// severityRank orders severities from least to most severe.
//
//nolint:gochecknoglobals // Read-only lookup table.
var severityRank = map[Severity]int{
	SeverityInfo:     0,
	SeverityMinor:    1,
	SeverityMajor:    2,
	SeverityCritical: 3,
	SeverityBlocker:  4,
}

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}

// Rank returns the ordering rank of the severity (higher is more severe).
// Unknown severities rank below info.
func (s Severity) Rank() int {
	if rank, ok := severityRank[s]; ok {
		return rank
	}
	return -1
}

// AtLeast returns true if s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// Severities returns all known severities from least to most severe.
func Severities() []Severity {
	return []Severity{
		SeverityInfo, SeverityMinor, SeverityMajor, SeverityCritical, SeverityBlocker,
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled" toml:"enabled"`
	Severity *string        `yaml:"severity" toml:"severity"`
	Options  map[string]any `yaml:"options" toml:"options"`
}

// Language identifies the natural language of identifiers and strings,
// used by spelling checks.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
)

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageRussian
}

// Config is the root configuration structure for bsllint.
type Config struct {
	// Language is the natural language used by spelling checks ("en" or "ru").
	Language Language `yaml:"language" toml:"language"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default" toml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// SpellCachePath, when set, persists the spelling memo cache between runs.
	SpellCachePath string `yaml:"spell_cache" toml:"spell_cache"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-" toml:"-"`

	// RetainTrees keeps parsed syntax trees alive after diagnostics are
	// collected. Off by default so memory is reclaimed per unit.
	RetainTrees bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Language:        LanguageEnglish,
		SeverityDefault: string(SeverityMinor),
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Format:          FormatText,
		RuleFormat:      RuleFormatName,
		Jobs:            0, // 0 means use GOMAXPROCS
	}
}
