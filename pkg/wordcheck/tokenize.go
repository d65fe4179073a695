package wordcheck

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// formatStringPattern recognizes platform format strings such as "ЧЦ=10" or
// "ND=10; NFD=2" that look like identifiers but are not natural language.
//
//nolint:gochecknoglobals // Read-only compiled pattern.
var formatStringPattern = regexp.MustCompile(`(?i)(Л=|ЧЦ=|ЧДЦ=|ЧС=|ЧРД=|ЧРГ=|ЧН=|ЧВН=|ЧГ=|ЧО=|ДФ=|ДЛФ=|ДП=|БЛ=|БИ=|L=|ND=|NFD=|NS=|NDS=|NGS=|NZ=|NLZ=|NG=|NN=|NF=|DF=|DLF=|DE=|BF=|BT=)`)

// IsFormatString reports whether text looks like a platform format string.
func IsFormatString(text string) bool {
	return formatStringPattern.MatchString(text)
}

// Fold normalizes a word for case-insensitive comparison. Content is
// NFC-normalized first so decomposed Cyrillic input folds consistently.
// A Caser may be stateful and must not be shared across goroutines, so one
// is built per call.
func Fold(word string) string {
	return cases.Fold().String(norm.NFC.String(word))
}

// charClass buckets runes for camel-case splitting.
type charClass int

const (
	classOther charClass = iota
	classUpper
	classLower
	classDigit
)

func classify(r rune) charClass {
	switch {
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsLower(r):
		return classLower
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// SplitCamelCase splits text at character-class transitions with the camel
// case refinement: a run of uppercase letters followed by lowercase letters
// breaks before the last uppercase letter, so "HTTPHandler" yields
// ["HTTP", "Handler"] and "HandlerModule" yields ["Handler", "Module"].
// Runs without letters or digits are dropped.
func SplitCamelCase(text string) []string {
	var words []string
	runes := []rune(text)

	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && classify(runes[i]) == classify(runes[i-1]) {
			continue
		}

		if i < len(runes) && classify(runes[i]) == classLower && classify(runes[i-1]) == classUpper {
			// Upper run followed by lower: the last upper starts the next word.
			if i-1 > start {
				words = appendWord(words, runes[start:i-1])
			}
			start = i - 1
			continue
		}

		words = appendWord(words, runes[start:i])
		start = i
	}

	return words
}

func appendWord(words []string, runes []rune) []string {
	word := string(runes)
	if strings.IndexFunc(word, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0 {
		return words
	}
	return append(words, word)
}
