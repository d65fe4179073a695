// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldModules    = "modules"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldLanguage = "language"
	FieldJobs     = "jobs"
	FieldFormat   = "format"

	// Statistics fields.
	FieldModulesDiscovered = "modules_discovered"
	FieldModulesProcessed  = "modules_processed"
	FieldModulesWithIssues = "modules_with_issues"
	FieldDiagnosticsTotal  = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"

	// Word check fields.
	FieldWord  = "word"
	FieldWords = "words"
)
