package bslast

// TokenKind classifies the type of a token in the BSL source.
type TokenKind uint16

// Token kinds cover every byte in the source.
const (
	TokIdentifier TokenKind = iota
	TokKeyword
	TokNumber
	TokString
	TokDate
	TokComment
	TokDirective // compilation directive, e.g. &AtServer
	TokOperator
	TokPunct
	TokWhitespace
	TokNewline

	TokOther
)

// Token represents a classified span of bytes in the BSL source.
// Tokens are contiguous and non-overlapping, covering [0, len(Content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// IsTrivia returns true for tokens the parser skips over.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case TokWhitespace, TokNewline, TokComment, TokDirective:
		return true
	default:
		return false
	}
}

// ValidateTokens checks that a token slice is valid:
//   - Tokens are contiguous and non-overlapping.
//   - Tokens cover the full content range [0, contentLen).
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].StartOffset != 0 {
		return false
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return tokens[len(tokens)-1].EndOffset == contentLen
}
