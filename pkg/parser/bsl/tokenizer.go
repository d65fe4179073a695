package bsl

import (
	"unicode"
	"unicode/utf8"

	"github.com/bsltools/bsllint/pkg/bslast"
)

// Tokenize splits BSL source content into a contiguous token stream covering
// [0, len(content)). The tokenizer never fails: bytes it cannot classify
// become TokOther tokens.
func Tokenize(content []byte) []bslast.Token {
	var tokens []bslast.Token
	pos := 0

	emit := func(kind bslast.TokenKind, end int) {
		tokens = append(tokens, bslast.Token{
			Kind:        kind,
			StartOffset: pos,
			EndOffset:   end,
		})
		pos = end
	}

	for pos < len(content) {
		c := content[pos]

		switch {
		case c == '\n':
			emit(bslast.TokNewline, pos+1)

		case c == '\r':
			end := pos + 1
			if end < len(content) && content[end] == '\n' {
				end++
			}
			emit(bslast.TokNewline, end)

		case c == ' ' || c == '\t':
			end := pos
			for end < len(content) && (content[end] == ' ' || content[end] == '\t') {
				end++
			}
			emit(bslast.TokWhitespace, end)

		case c == '/' && pos+1 < len(content) && content[pos+1] == '/':
			emit(bslast.TokComment, scanToLineEnd(content, pos))

		case c == '&':
			emit(bslast.TokDirective, scanToLineEnd(content, pos))

		case c == '"':
			emit(bslast.TokString, scanString(content, pos))

		case c == '\'':
			emit(bslast.TokDate, scanDate(content, pos))

		case c >= '0' && c <= '9':
			emit(bslast.TokNumber, scanNumber(content, pos))

		case isOperatorByte(c):
			end := pos + 1
			// Two-byte comparison operators: <>, <=, >=.
			if end < len(content) && (c == '<' || c == '>') &&
				(content[end] == '=' || (c == '<' && content[end] == '>')) {
				end++
			}
			emit(bslast.TokOperator, end)

		case isPunctByte(c):
			emit(bslast.TokPunct, pos+1)

		default:
			r, size := utf8.DecodeRune(content[pos:])
			if isIdentStart(r) {
				end := scanIdentifier(content, pos)
				kind := bslast.TokIdentifier
				if IsKeyword(string(content[pos:end])) {
					kind = bslast.TokKeyword
				}
				emit(kind, end)
			} else {
				emit(bslast.TokOther, pos+size)
			}
		}
	}

	return tokens
}

// scanToLineEnd returns the offset of the next newline (exclusive of it).
func scanToLineEnd(content []byte, pos int) int {
	for pos < len(content) && content[pos] != '\n' && content[pos] != '\r' {
		pos++
	}
	return pos
}

// scanString scans a double-quoted string literal starting at pos.
// Doubled quotes escape a quote; newlines are allowed so that multiline
// strings with '|' continuations tokenize as a single literal.
func scanString(content []byte, pos int) int {
	pos++ // opening quote
	for pos < len(content) {
		if content[pos] == '"' {
			if pos+1 < len(content) && content[pos+1] == '"' {
				pos += 2
				continue
			}
			return pos + 1
		}
		pos++
	}
	return pos // unterminated string runs to EOF
}

// scanDate scans a single-quoted date literal starting at pos.
func scanDate(content []byte, pos int) int {
	pos++ // opening quote
	for pos < len(content) && content[pos] != '\'' &&
		content[pos] != '\n' && content[pos] != '\r' {
		pos++
	}
	if pos < len(content) && content[pos] == '\'' {
		pos++
	}
	return pos
}

// scanNumber scans an integer or decimal literal.
func scanNumber(content []byte, pos int) int {
	for pos < len(content) && content[pos] >= '0' && content[pos] <= '9' {
		pos++
	}
	if pos+1 < len(content) && content[pos] == '.' &&
		content[pos+1] >= '0' && content[pos+1] <= '9' {
		pos++
		for pos < len(content) && content[pos] >= '0' && content[pos] <= '9' {
			pos++
		}
	}
	return pos
}

// scanIdentifier scans an identifier (Latin or Cyrillic letters, digits,
// underscores and '#' for preprocessor-like names).
func scanIdentifier(content []byte, pos int) int {
	for pos < len(content) {
		r, size := utf8.DecodeRune(content[pos:])
		if !isIdentPart(r) {
			break
		}
		pos += size
	}
	return pos
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '#' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isOperatorByte(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '=', '<', '>':
		return true
	default:
		return false
	}
}

func isPunctByte(c byte) bool {
	switch c {
	case '(', ')', '[', ']', ',', ';', '.', '?', '~', ':':
		return true
	default:
		return false
	}
}
