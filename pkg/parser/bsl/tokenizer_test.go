package bsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsltools/bsllint/pkg/bslast"
)

// nonTrivia filters the token stream down to what the parser consumes.
func nonTrivia(tokens []bslast.Token) []bslast.Token {
	var out []bslast.Token
	for _, tok := range tokens {
		if !tok.IsTrivia() {
			out = append(out, tok)
		}
	}
	return out
}

func tokenKinds(tokens []bslast.Token) []bslast.TokenKind {
	kinds := make([]bslast.TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenizeCoversContent(t *testing.T) {
	t.Parallel()

	content := []byte("Процедура Фу()\n\tСумма = 10.5; // итог\nКонецПроцедуры\n")
	tokens := Tokenize(content)

	assert.True(t, bslast.ValidateTokens(tokens, len(content)))
}

func TestTokenizeStatement(t *testing.T) {
	t.Parallel()

	content := []byte("Total = 10.5;")
	tokens := nonTrivia(Tokenize(content))

	assert.Equal(t, []bslast.TokenKind{
		bslast.TokIdentifier,
		bslast.TokOperator,
		bslast.TokNumber,
		bslast.TokPunct,
	}, tokenKinds(tokens))

	assert.Equal(t, "Total", string(tokens[0].Text(content)))
	assert.Equal(t, "10.5", string(tokens[2].Text(content)))
}

func TestTokenizeKeywordsBilingual(t *testing.T) {
	t.Parallel()

	content := []byte("Если ИНАЧЕ endif Export")
	tokens := nonTrivia(Tokenize(content))

	require.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.Equal(t, bslast.TokKeyword, tok.Kind,
			"token %q should be a keyword", string(tok.Text(content)))
	}
}

func TestTokenizeStringLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"simple", `"hello" + x`, `"hello"`},
		{"doubled quote escape", `"He said ""hi""" + x`, `"He said ""hi"""`},
		{"multiline continuation", "\"line1\n|line2\" + x", "\"line1\n|line2\""},
		{"unterminated runs to eof", `"open`, `"open`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content := []byte(tt.content)
			tokens := Tokenize(content)

			require.NotEmpty(t, tokens)
			assert.Equal(t, bslast.TokString, tokens[0].Kind)
			assert.Equal(t, tt.want, string(tokens[0].Text(content)))
		})
	}
}

func TestTokenizeDateLiteral(t *testing.T) {
	t.Parallel()

	content := []byte("D = '20240101';")
	tokens := nonTrivia(Tokenize(content))

	require.Len(t, tokens, 4)
	assert.Equal(t, bslast.TokDate, tokens[2].Kind)
	assert.Equal(t, "'20240101'", string(tokens[2].Text(content)))
}

func TestTokenizeCommentAndDirective(t *testing.T) {
	t.Parallel()

	content := []byte("&AtServer\nProcedure Foo() // note\nEndProcedure")
	tokens := Tokenize(content)

	require.NotEmpty(t, tokens)
	assert.Equal(t, bslast.TokDirective, tokens[0].Kind)
	assert.Equal(t, "&AtServer", string(tokens[0].Text(content)))

	var comment string
	for _, tok := range tokens {
		if tok.Kind == bslast.TokComment {
			comment = string(tok.Text(content))
		}
	}
	assert.Equal(t, "// note", comment)
}

func TestTokenizeComparisonOperators(t *testing.T) {
	t.Parallel()

	content := []byte("a <= b <> c >= d < e")
	var operators []string
	for _, tok := range Tokenize(content) {
		if tok.Kind == bslast.TokOperator {
			operators = append(operators, string(tok.Text(content)))
		}
	}

	assert.Equal(t, []string{"<=", "<>", ">=", "<"}, operators)
}

func TestTokenizeNewlines(t *testing.T) {
	t.Parallel()

	content := []byte("a\r\nb\nc")
	tokens := Tokenize(content)

	require.Len(t, tokens, 5)
	assert.Equal(t, bslast.TokNewline, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Len())
	assert.Equal(t, bslast.TokNewline, tokens[3].Kind)
	assert.Equal(t, 1, tokens[3].Len())
	assert.True(t, bslast.ValidateTokens(tokens, len(content)))
}

func TestTokenizeUnknownBytes(t *testing.T) {
	t.Parallel()

	content := []byte("@$")
	tokens := Tokenize(content)

	require.Len(t, tokens, 2)
	assert.Equal(t, bslast.TokOther, tokens[0].Kind)
	assert.Equal(t, bslast.TokOther, tokens[1].Kind)
}

func TestCanonicalKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Procedure", "procedure", true},
		{"ПРОЦЕДУРА", "procedure", true},
		{"КонецЕсли", "endif", true},
		{"Истина", "true", true},
		{"ВызватьИсключение", "raise", true},
		{"Variable", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			kw, ok := CanonicalKeyword(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, kw)
			assert.Equal(t, tt.ok, IsKeyword(tt.input))
		})
	}
}
