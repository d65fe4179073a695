// Package wordcheck provides natural-language word checking for identifiers
// and string literals: a pooled checker engine, a per-language memoization
// cache, and camel-case tokenization helpers.
package wordcheck

// Match reports one suspect span inside a checked text.
type Match struct {
	// From is the byte offset where the suspect word begins.
	From int

	// To is the byte offset just past the suspect word.
	To int

	// Replacements holds suggested corrections. A match with no
	// replacements carries no usable signal and is treated as clean by
	// callers.
	Replacements []string
}

// Checker checks a whitespace-separated batch of words and reports matches
// for words it considers misspelled. Implementations may be expensive to
// construct; share them through a Pool.
type Checker interface {
	Check(text string) ([]Match, error)
}
