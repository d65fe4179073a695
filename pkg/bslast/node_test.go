package bslast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	t.Parallel()

	parent := NewNode(NodeProcedure)
	first := NewNode(NodeAssignment)
	second := NewNode(NodeReturn)

	parent.AppendChild(first)
	parent.AppendChild(second)

	require.Same(t, first, parent.FirstChild)
	require.Same(t, second, parent.LastChild)
	assert.Same(t, parent, first.Parent)
	assert.Same(t, parent, second.Parent)
	assert.Same(t, second, first.Next)
	assert.Same(t, first, second.Prev)
	assert.Nil(t, first.Prev)
	assert.Nil(t, second.Next)
}

func TestChildrenAndCount(t *testing.T) {
	t.Parallel()

	parent := NewNode(NodeModule)
	assert.False(t, parent.HasChildren())
	assert.Equal(t, 0, parent.ChildCount())
	assert.Nil(t, parent.Children())

	kids := []*Node{
		NewNode(NodeProcedure),
		NewNode(NodeFunction),
		NewNode(NodeVarDecl),
	}
	for _, kid := range kids {
		parent.AppendChild(kid)
	}

	assert.True(t, parent.HasChildren())
	assert.Equal(t, 3, parent.ChildCount())
	assert.Equal(t, kids, parent.Children())
}

func TestAncestor(t *testing.T) {
	t.Parallel()

	module := NewNode(NodeModule)
	proc := NewNode(NodeProcedure)
	ifStmt := NewNode(NodeIf)
	literal := NewNode(NodeNumberLiteral)

	module.AppendChild(proc)
	proc.AppendChild(ifStmt)
	ifStmt.AppendChild(literal)

	assert.Same(t, proc, literal.Ancestor(NodeProcedure))
	assert.Same(t, module, literal.Ancestor(NodeModule))
	assert.Nil(t, literal.Ancestor(NodeFunction))
	assert.Nil(t, module.Ancestor(NodeModule))
}

func TestNodeKindPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, NewNode(NodeAssignment).IsStatement())
	assert.True(t, NewNode(NodeVarDecl).IsStatement())
	assert.False(t, NewNode(NodeProcedure).IsStatement())

	assert.True(t, NewNode(NodeCall).IsExpression())
	assert.True(t, NewNode(NodeStringLiteral).IsExpression())
	assert.False(t, NewNode(NodeIf).IsExpression())

	assert.True(t, NewNode(NodeNumberLiteral).IsLiteral())
	assert.True(t, NewNode(NodeUndefinedLiteral).IsLiteral())
	assert.False(t, NewNode(NodeIdentifier).IsLiteral())
}

func TestNewNodeHasEmptySpan(t *testing.T) {
	t.Parallel()

	node := NewNode(NodeRaw)
	assert.Equal(t, -1, node.FirstToken)
	assert.Equal(t, -1, node.LastToken)
	assert.Equal(t, SourceRange{}, node.SourceRange())
	assert.False(t, node.SourcePosition().IsValid())
}
