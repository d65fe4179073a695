// Package rules contains the built-in bsllint rules.
//
// Each rule registers itself with lint.DefaultRegistry during init().
// Importing this package (typically with a blank import) makes all
// built-in rules available.
package rules

import "github.com/bsltools/bsllint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Useful for tests that need an isolated registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewMagicNumberRule())
	registry.Register(NewModuleNameWordsRule())
	registry.Register(NewModalWindowsRule())
	registry.Register(NewTypoRule())

	registerAliases(registry)
}

// registerAliases maps legacy rule keys to canonical IDs so configurations
// written for other BSL analyzers keep working.
func registerAliases(registry *lint.Registry) {
	registry.RegisterAlias("MagicNumber", "BSL001")
	registry.RegisterAlias("CommonModuleNameWords", "BSL002")
	registry.RegisterAlias("UsingModalWindows", "BSL003")
	registry.RegisterAlias("Typo", "BSL004")
}

//nolint:gochecknoinits // Self-registration keeps rule wiring in one place
func init() {
	RegisterAll(lint.DefaultRegistry)
}
