package wordcheck

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dictionary is a lexicon-backed Checker. Words absent from the lexicon are
// reported as matches, with near-miss lexicon entries offered as
// replacements. Lookups are case-folded, so a Dictionary is safe for
// concurrent use once built.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a checker over the given lexicon. Entries are folded,
// so lookups are case-insensitive.
func NewDictionary(lexicon []string) *Dictionary {
	words := make(map[string]struct{}, len(lexicon))
	for _, w := range lexicon {
		words[Fold(w)] = struct{}{}
	}
	return &Dictionary{words: words}
}

// Contains reports whether word is in the lexicon, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[Fold(word)]
	return ok
}

// Check scans text word by word and reports each word missing from the
// lexicon. Words without letters are skipped. Byte offsets in the returned
// matches index into text.
func (d *Dictionary) Check(text string) ([]Match, error) {
	var matches []Match

	offset := 0
	for offset < len(text) {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if !unicode.IsLetter(r) {
			offset += size
			continue
		}

		end := offset + size
		for end < len(text) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsLetter(r) {
				break
			}
			end += size
		}

		word := text[offset:end]
		if !d.Contains(word) {
			matches = append(matches, Match{
				From:         offset,
				To:           end,
				Replacements: d.suggest(word),
			})
		}
		offset = end
	}

	return matches, nil
}

// maxSuggestions caps the replacement list per match.
const maxSuggestions = 3

// suggest returns lexicon entries within edit distance 1 of word, where a
// transposition of adjacent letters counts as a single edit. Candidates are
// sorted so the suggestion list is identical across runs despite the map
// iteration order.
func (d *Dictionary) suggest(word string) []string {
	folded := Fold(word)
	var out []string
	for candidate := range d.words {
		if withinDistanceOne(folded, candidate) {
			out = append(out, candidate)
		}
	}
	sort.Strings(out)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// withinDistanceOne reports whether b can be produced from a by at most one
// substitution, insertion, deletion, or adjacent transposition.
func withinDistanceOne(a, b string) bool {
	if a == b {
		return true
	}

	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la-lb > 1 || lb-la > 1 {
		return false
	}

	// Find the first divergence.
	i := 0
	for i < la && i < lb && ra[i] == rb[i] {
		i++
	}

	switch {
	case la == lb:
		// Substitution: rest must match after the divergent rune.
		if string(ra[i+1:]) == string(rb[i+1:]) {
			return true
		}
		// Transposition of the two runes at the divergence point.
		return i+1 < la &&
			ra[i] == rb[i+1] && ra[i+1] == rb[i] &&
			string(ra[i+2:]) == string(rb[i+2:])
	case la > lb:
		// Deletion from a.
		return string(ra[i+1:]) == string(rb[i:])
	default:
		// Insertion into a.
		return string(ra[i:]) == string(rb[i+1:])
	}
}

// Lexicon returns the built-in lexicon for a language code, or nil when the
// language has no built-in lexicon.
func Lexicon(language string) []string {
	switch strings.ToLower(language) {
	case "en":
		return englishLexicon
	case "ru":
		return russianLexicon
	default:
		return nil
	}
}
