// Package bslast defines the syntax tree produced by parsing BSL source files.
package bslast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for BSL declarations, statements and expressions.
const (
	NodeModule NodeKind = iota

	// Declarations.
	NodeProcedure
	NodeFunction
	NodeParam
	NodeVarDecl

	// Statements.
	NodeAssignment
	NodeCallStatement
	NodeIf
	NodeWhile
	NodeFor
	NodeForEach
	NodeTry
	NodeReturn

	// Expressions. An expression node's children are its operand members;
	// operators live in the token stream. A single-child expression is a
	// bare operand, a multi-child expression is a compound one.
	NodeExpression
	NodeUnaryOp
	NodeCall
	NodeMemberAccess
	NodeIndexAccess
	NodeIdentifier
	NodeNumberLiteral
	NodeStringLiteral
	NodeDateLiteral
	NodeBoolLiteral
	NodeUndefinedLiteral

	// Fallback for unrecognized content.
	NodeRaw
)

// Node represents a single node in the BSL AST.
// Nodes form a tree structure with parent/child/sibling relationships;
// a parent exclusively owns its children.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into Unit.Tokens).
	// FirstToken <= LastToken for non-empty nodes.
	// Both are -1 for synthetic/degenerate nodes.
	FirstToken int
	LastToken  int

	// Unit is a back-reference to the containing Unit.
	Unit *Unit

	// Name holds the declared name for procedures, functions, params and
	// the called name for calls. Empty for other kinds.
	Name string
}

// NewNode creates a detached node of the given kind with an empty token span.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, FirstToken: -1, LastToken: -1}
}

// AppendChild links child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.Prev = n.LastChild
	child.Next = nil

	if n.LastChild != nil {
		n.LastChild.Next = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// IsStatement returns true if this is a statement-level node.
func (n *Node) IsStatement() bool {
	switch n.Kind {
	case NodeAssignment, NodeCallStatement, NodeIf, NodeWhile,
		NodeFor, NodeForEach, NodeTry, NodeReturn, NodeVarDecl:
		return true
	default:
		return false
	}
}

// IsExpression returns true if this is an expression-level node.
func (n *Node) IsExpression() bool {
	switch n.Kind {
	case NodeExpression, NodeUnaryOp, NodeCall, NodeMemberAccess,
		NodeIndexAccess, NodeIdentifier, NodeNumberLiteral, NodeStringLiteral,
		NodeDateLiteral, NodeBoolLiteral, NodeUndefinedLiteral:
		return true
	default:
		return false
	}
}

// IsLiteral returns true for literal expression nodes.
func (n *Node) IsLiteral() bool {
	switch n.Kind {
	case NodeNumberLiteral, NodeStringLiteral, NodeDateLiteral,
		NodeBoolLiteral, NodeUndefinedLiteral:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Ancestor returns the nearest ancestor of the given kind, or nil.
func (n *Node) Ancestor(kind NodeKind) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}
