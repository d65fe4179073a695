package bslast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitModuleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"Orders.bsl", "Orders"},
		{"/src/CommonModules/Posting.bsl", "Posting"},
		{"script.os", "script"},
		{"NoExtension", "NoExtension"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewUnit(tt.path, nil).ModuleName)
		})
	}
}

func TestUnitTokenText(t *testing.T) {
	t.Parallel()

	content := []byte("Total = 42")
	unit := NewUnit("Orders.bsl", content)
	unit.Tokens = []Token{
		{Kind: TokIdentifier, StartOffset: 0, EndOffset: 5},
		{Kind: TokWhitespace, StartOffset: 5, EndOffset: 6},
		{Kind: TokOperator, StartOffset: 6, EndOffset: 7},
		{Kind: TokWhitespace, StartOffset: 7, EndOffset: 8},
		{Kind: TokNumber, StartOffset: 8, EndOffset: 10},
	}

	assert.Equal(t, "Total", unit.TokenText(0))
	assert.Equal(t, "42", unit.TokenText(4))
	assert.Empty(t, unit.TokenText(-1))
	assert.Empty(t, unit.TokenText(5))
}

func TestReleaseTree(t *testing.T) {
	t.Parallel()

	content := []byte("Total = 42\n")
	unit := NewUnit("Orders.bsl", content)
	unit.Tokens = []Token{{Kind: TokIdentifier, StartOffset: 0, EndOffset: 5}}
	unit.Root = NewNode(NodeModule)

	require.True(t, unit.Retained())

	unit.ReleaseTree()

	assert.False(t, unit.Retained())
	assert.Nil(t, unit.Root)
	assert.Nil(t, unit.Tokens)

	// Content and lines survive for reporting source context.
	assert.Equal(t, "Total = 42", unit.LineText(1))
}

func TestNodeSourcePosition(t *testing.T) {
	t.Parallel()

	content := []byte("a = 1\nbb = 22\n")
	unit := NewUnit("Orders.bsl", content)
	unit.Tokens = []Token{
		{Kind: TokIdentifier, StartOffset: 6, EndOffset: 8},
		{Kind: TokNumber, StartOffset: 11, EndOffset: 13},
	}

	node := NewNode(NodeAssignment)
	node.Unit = unit
	node.FirstToken = 0
	node.LastToken = 1

	pos := node.SourcePosition()
	require.True(t, pos.IsValid())
	assert.Equal(t, 2, pos.StartLine)
	assert.Equal(t, 1, pos.StartColumn)
	assert.Equal(t, 2, pos.EndLine)
	assert.Equal(t, 8, pos.EndColumn)
	assert.True(t, pos.IsSingleLine())

	assert.Equal(t, "bb = 22", string(node.Text()))
}

func TestTokenPosition(t *testing.T) {
	t.Parallel()

	unit := NewUnit("Orders.bsl", []byte("x\nlong = 9\n"))
	tok := Token{Kind: TokNumber, StartOffset: 9, EndOffset: 10}

	pos := unit.TokenPosition(tok)
	assert.Equal(t, 2, pos.StartLine)
	assert.Equal(t, 8, pos.StartColumn)
	assert.Equal(t, 2, pos.EndLine)
	assert.Equal(t, 9, pos.EndColumn)
}

func TestSourceRangeHelpers(t *testing.T) {
	t.Parallel()

	r := SourceRange{StartOffset: 3, EndOffset: 7}
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(6))
	assert.False(t, r.Contains(7))

	assert.True(t, SourceRange{StartOffset: 2, EndOffset: 2}.IsEmpty())
}

func TestTokenHelpers(t *testing.T) {
	t.Parallel()

	content := []byte("Alpha")
	tok := Token{Kind: TokIdentifier, StartOffset: 0, EndOffset: 5}
	assert.Equal(t, "Alpha", string(tok.Text(content)))
	assert.Equal(t, 5, tok.Len())
	assert.False(t, tok.IsEmpty())

	bad := Token{StartOffset: 2, EndOffset: 10}
	assert.Nil(t, bad.Text(content))

	assert.True(t, Token{Kind: TokComment}.IsTrivia())
	assert.True(t, Token{Kind: TokDirective}.IsTrivia())
	assert.False(t, Token{Kind: TokKeyword}.IsTrivia())
}

func TestValidateTokens(t *testing.T) {
	t.Parallel()

	valid := []Token{
		{StartOffset: 0, EndOffset: 3},
		{StartOffset: 3, EndOffset: 5},
	}
	assert.True(t, ValidateTokens(valid, 5))
	assert.False(t, ValidateTokens(valid, 6))

	gap := []Token{
		{StartOffset: 0, EndOffset: 2},
		{StartOffset: 3, EndOffset: 5},
	}
	assert.False(t, ValidateTokens(gap, 5))

	assert.True(t, ValidateTokens(nil, 0))
	assert.False(t, ValidateTokens(nil, 1))
	assert.False(t, ValidateTokens([]Token{{StartOffset: 1, EndOffset: 3}}, 3))
}
