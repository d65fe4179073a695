// Package bsl parses BSL (1C:Enterprise script) source files into bslast trees.
//
// The parser is deliberately tolerant: malformed input never aborts a parse.
// Unrecognized tokens become NodeRaw nodes so the surrounding structure is
// still analyzable, and the tree always covers what could be understood.
package bsl

import (
	"context"
	"fmt"
	"strings"

	"github.com/bsltools/bsllint/pkg/bslast"
)

// Parser parses BSL source files.
type Parser struct{}

// New creates a BSL parser.
func New() *Parser {
	return &Parser{}
}

// Parse tokenizes and parses one source file into a Unit.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*bslast.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	unit := bslast.NewUnit(path, content)
	unit.Tokens = Tokenize(content)

	ps := &parseState{unit: unit, last: -1}
	unit.Root = ps.parseModule()

	return unit, nil
}

// parseState tracks the cursor over the unit's token stream.
type parseState struct {
	unit *bslast.Unit
	pos  int // current token index
	last int // index of the last consumed non-trivia token
}

func (ps *parseState) newNode(kind bslast.NodeKind) *bslast.Node {
	n := bslast.NewNode(kind)
	n.Unit = ps.unit
	return n
}

// close records the token span [mark, ps.last] on n.
func (ps *parseState) close(n *bslast.Node, mark int) *bslast.Node {
	if mark <= ps.last {
		n.FirstToken = mark
		n.LastToken = ps.last
	}
	return n
}

// skipTrivia advances past whitespace, newlines, comments and directives.
func (ps *parseState) skipTrivia() {
	for ps.pos < len(ps.unit.Tokens) && ps.unit.Tokens[ps.pos].IsTrivia() {
		ps.pos++
	}
}

func (ps *parseState) eof() bool {
	ps.skipTrivia()
	return ps.pos >= len(ps.unit.Tokens)
}

// cur returns the current non-trivia token and its index.
func (ps *parseState) cur() (bslast.Token, int) {
	ps.skipTrivia()
	if ps.pos >= len(ps.unit.Tokens) {
		return bslast.Token{}, -1
	}
	return ps.unit.Tokens[ps.pos], ps.pos
}

func (ps *parseState) curText() string {
	tok, idx := ps.cur()
	if idx < 0 {
		return ""
	}
	return string(tok.Text(ps.unit.Content))
}

func (ps *parseState) curKind() bslast.TokenKind {
	tok, idx := ps.cur()
	if idx < 0 {
		return bslast.TokOther
	}
	return tok.Kind
}

// mark returns the index of the current non-trivia token.
func (ps *parseState) mark() int {
	_, idx := ps.cur()
	return idx
}

func (ps *parseState) advance() {
	ps.skipTrivia()
	if ps.pos < len(ps.unit.Tokens) {
		ps.last = ps.pos
		ps.pos++
	}
}

// atKeyword reports whether the current token is the given canonical keyword.
func (ps *parseState) atKeyword(canonical string) bool {
	if ps.curKind() != bslast.TokKeyword {
		return false
	}
	kw, _ := CanonicalKeyword(ps.curText())
	return kw == canonical
}

func (ps *parseState) acceptKeyword(canonical string) bool {
	if ps.atKeyword(canonical) {
		ps.advance()
		return true
	}
	return false
}

// atText reports whether the current operator/punct token has the given text.
func (ps *parseState) atText(text string) bool {
	kind := ps.curKind()
	if kind != bslast.TokOperator && kind != bslast.TokPunct {
		return false
	}
	return ps.curText() == text
}

func (ps *parseState) acceptText(text string) bool {
	if ps.atText(text) {
		ps.advance()
		return true
	}
	return false
}

// consumeRaw consumes exactly one token as a NodeRaw, guaranteeing progress.
func (ps *parseState) consumeRaw() *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(bslast.NodeRaw)
	ps.advance()
	return ps.close(n, mark)
}

// parseModule parses the whole token stream into a NodeModule root.
func (ps *parseState) parseModule() *bslast.Node {
	root := ps.newNode(bslast.NodeModule)
	root.Name = ps.unit.ModuleName

	for !ps.eof() {
		var child *bslast.Node
		switch {
		case ps.atKeyword("procedure"):
			child = ps.parseSub(bslast.NodeProcedure, "endprocedure")
		case ps.atKeyword("function"):
			child = ps.parseSub(bslast.NodeFunction, "endfunction")
		default:
			child = ps.parseStatement()
		}
		if child != nil {
			root.AppendChild(child)
		}
	}

	if len(ps.unit.Tokens) > 0 {
		root.FirstToken = 0
		root.LastToken = len(ps.unit.Tokens) - 1
	}
	return root
}

// parseSub parses a procedure or function declaration.
func (ps *parseState) parseSub(kind bslast.NodeKind, endKeyword string) *bslast.Node {
	mark := ps.mark()
	sub := ps.newNode(kind)
	ps.advance() // procedure / function keyword

	if ps.curKind() == bslast.TokIdentifier {
		nameMark := ps.mark()
		sub.Name = ps.curText()
		name := ps.newNode(bslast.NodeIdentifier)
		name.Name = sub.Name
		ps.advance()
		sub.AppendChild(ps.close(name, nameMark))
	}

	if ps.acceptText("(") {
		ps.parseParams(sub)
		ps.acceptText(")")
	}

	ps.acceptKeyword("export")

	for !ps.eof() && !ps.atKeyword(endKeyword) {
		// A stray sub start means the end keyword was lost; bail out so the
		// next declaration still parses.
		if ps.atKeyword("procedure") || ps.atKeyword("function") {
			break
		}
		if stmt := ps.parseStatement(); stmt != nil {
			sub.AppendChild(stmt)
		}
	}
	ps.acceptKeyword(endKeyword)

	return ps.close(sub, mark)
}

// parseParams parses a parameter list up to (but not including) the closing paren.
func (ps *parseState) parseParams(sub *bslast.Node) {
	for !ps.eof() && !ps.atText(")") {
		ps.acceptKeyword("val")

		if ps.curKind() == bslast.TokIdentifier {
			mark := ps.mark()
			param := ps.newNode(bslast.NodeParam)
			param.Name = ps.curText()
			ps.advance()
			if ps.acceptText("=") {
				param.AppendChild(ps.parseMember())
			}
			sub.AppendChild(ps.close(param, mark))
		} else {
			ps.advance() // skip unexpected token
		}

		if !ps.acceptText(",") {
			break
		}
	}
}

// parseStatement parses one statement; returns nil for bare semicolons.
func (ps *parseState) parseStatement() *bslast.Node {
	switch {
	case ps.atText(";"):
		ps.advance()
		return nil
	case ps.atKeyword("var"):
		return ps.parseVarDecl()
	case ps.atKeyword("if"):
		return ps.parseIf()
	case ps.atKeyword("while"):
		return ps.parseWhile()
	case ps.atKeyword("for"):
		return ps.parseFor()
	case ps.atKeyword("try"):
		return ps.parseTry()
	case ps.atKeyword("return"):
		return ps.parseReturn()
	case ps.atKeyword("raise"):
		mark := ps.mark()
		n := ps.newNode(bslast.NodeRaw)
		ps.advance()
		if !ps.atText(";") && !ps.eof() && !ps.startsStatementKeyword() {
			n.AppendChild(ps.parseExpression())
		}
		ps.acceptText(";")
		return ps.close(n, mark)
	case ps.atKeyword("break") || ps.atKeyword("continue") || ps.atKeyword("goto"):
		n := ps.consumeRaw()
		if ps.curKind() == bslast.TokIdentifier { // goto label
			ps.advance()
		}
		ps.acceptText(";")
		return n
	case ps.curKind() == bslast.TokIdentifier:
		return ps.parseAssignmentOrCall()
	default:
		return ps.consumeRaw()
	}
}

// startsStatementKeyword reports whether the current token begins or closes a
// statement-level construct.
func (ps *parseState) startsStatementKeyword() bool {
	for _, kw := range []string{
		"if", "elsif", "else", "endif", "while", "for", "do", "enddo",
		"try", "except", "endtry", "return", "var", "procedure", "function",
		"endprocedure", "endfunction",
	} {
		if ps.atKeyword(kw) {
			return true
		}
	}
	return false
}

func (ps *parseState) parseVarDecl() *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(bslast.NodeVarDecl)
	ps.advance() // var

	for ps.curKind() == bslast.TokIdentifier {
		nameMark := ps.mark()
		name := ps.newNode(bslast.NodeIdentifier)
		name.Name = ps.curText()
		ps.advance()
		n.AppendChild(ps.close(name, nameMark))

		ps.acceptKeyword("export")
		if !ps.acceptText(",") {
			break
		}
	}
	ps.acceptText(";")

	return ps.close(n, mark)
}

func (ps *parseState) parseIf() *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(bslast.NodeIf)
	ps.advance() // if
	n.AppendChild(ps.parseExpression())
	ps.acceptKeyword("then")

	for !ps.eof() && !ps.atKeyword("endif") {
		switch {
		case ps.atKeyword("elsif"):
			ps.advance()
			n.AppendChild(ps.parseExpression())
			ps.acceptKeyword("then")
		case ps.atKeyword("else"):
			ps.advance()
		case ps.atKeyword("endprocedure") || ps.atKeyword("endfunction"):
			// Unterminated if; let the enclosing sub close itself.
			return ps.close(n, mark)
		default:
			if stmt := ps.parseStatement(); stmt != nil {
				n.AppendChild(stmt)
			}
		}
	}
	ps.acceptKeyword("endif")
	ps.acceptText(";")

	return ps.close(n, mark)
}

func (ps *parseState) parseWhile() *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(bslast.NodeWhile)
	ps.advance() // while
	n.AppendChild(ps.parseExpression())
	ps.acceptKeyword("do")
	ps.parseLoopBody(n)
	return ps.close(n, mark)
}

func (ps *parseState) parseFor() *bslast.Node {
	mark := ps.mark()
	ps.advance() // for

	var n *bslast.Node
	if ps.acceptKeyword("each") {
		n = ps.newNode(bslast.NodeForEach)
		if ps.curKind() == bslast.TokIdentifier {
			nameMark := ps.mark()
			name := ps.newNode(bslast.NodeIdentifier)
			name.Name = ps.curText()
			ps.advance()
			n.AppendChild(ps.close(name, nameMark))
		}
		ps.acceptKeyword("in")
		n.AppendChild(ps.parseExpression())
	} else {
		n = ps.newNode(bslast.NodeFor)
		if ps.curKind() == bslast.TokIdentifier {
			nameMark := ps.mark()
			name := ps.newNode(bslast.NodeIdentifier)
			name.Name = ps.curText()
			ps.advance()
			n.AppendChild(ps.close(name, nameMark))
		}
		if ps.acceptText("=") {
			n.AppendChild(ps.parseExpression())
		}
		ps.acceptKeyword("to")
		n.AppendChild(ps.parseExpression())
	}

	ps.acceptKeyword("do")
	ps.parseLoopBody(n)
	return ps.close(n, mark)
}

// parseLoopBody parses statements up to the matching enddo.
func (ps *parseState) parseLoopBody(n *bslast.Node) {
	for !ps.eof() && !ps.atKeyword("enddo") {
		if ps.atKeyword("endprocedure") || ps.atKeyword("endfunction") {
			return
		}
		if stmt := ps.parseStatement(); stmt != nil {
			n.AppendChild(stmt)
		}
	}
	ps.acceptKeyword("enddo")
	ps.acceptText(";")
}

func (ps *parseState) parseTry() *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(bslast.NodeTry)
	ps.advance() // try

	for !ps.eof() && !ps.atKeyword("except") && !ps.atKeyword("endtry") {
		if ps.atKeyword("endprocedure") || ps.atKeyword("endfunction") {
			return ps.close(n, mark)
		}
		if stmt := ps.parseStatement(); stmt != nil {
			n.AppendChild(stmt)
		}
	}
	ps.acceptKeyword("except")
	for !ps.eof() && !ps.atKeyword("endtry") {
		if ps.atKeyword("endprocedure") || ps.atKeyword("endfunction") {
			return ps.close(n, mark)
		}
		if stmt := ps.parseStatement(); stmt != nil {
			n.AppendChild(stmt)
		}
	}
	ps.acceptKeyword("endtry")
	ps.acceptText(";")

	return ps.close(n, mark)
}

func (ps *parseState) parseReturn() *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(bslast.NodeReturn)
	ps.advance() // return
	if !ps.atText(";") && !ps.eof() && !ps.startsStatementKeyword() {
		n.AppendChild(ps.parseExpression())
	}
	ps.acceptText(";")
	return ps.close(n, mark)
}

func (ps *parseState) parseAssignmentOrCall() *bslast.Node {
	mark := ps.mark()
	designator := ps.parseDesignator()

	if ps.atText("=") {
		ps.advance()
		n := ps.newNode(bslast.NodeAssignment)
		n.AppendChild(designator)
		n.AppendChild(ps.parseExpression())
		ps.acceptText(";")
		return ps.close(n, mark)
	}

	n := ps.newNode(bslast.NodeCallStatement)
	n.AppendChild(designator)
	ps.acceptText(";")
	return ps.close(n, mark)
}

// binaryOperators in expression position.
//
//nolint:gochecknoglobals // Read-only lookup table.
var binaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"=": true, "<>": true, "<": true, ">": true, "<=": true, ">=": true,
}

func (ps *parseState) atBinaryOperator() bool {
	if ps.curKind() == bslast.TokOperator && binaryOperators[ps.curText()] {
		return true
	}
	return ps.atKeyword("and") || ps.atKeyword("or")
}

// parseExpression parses a flat expression: members separated by binary
// operators. Operators stay in the token stream; an expression node's
// children are its operand members only, so ChildCount distinguishes a bare
// operand (1) from a compound expression (>1).
func (ps *parseState) parseExpression() *bslast.Node {
	mark := ps.mark()
	expr := ps.newNode(bslast.NodeExpression)

	expr.AppendChild(ps.parseMember())
	for ps.atBinaryOperator() {
		ps.advance()
		expr.AppendChild(ps.parseMember())
	}

	return ps.close(expr, mark)
}

// parseMember parses one expression operand, with optional unary prefix.
func (ps *parseState) parseMember() *bslast.Node {
	if ps.atKeyword("not") || ((ps.atText("-") || ps.atText("+")) && ps.curKind() == bslast.TokOperator) {
		mark := ps.mark()
		u := ps.newNode(bslast.NodeUnaryOp)
		u.Name = strings.ToLower(ps.curText())
		ps.advance()
		u.AppendChild(ps.parsePrimary())
		return ps.close(u, mark)
	}
	return ps.parsePrimary()
}

func (ps *parseState) parsePrimary() *bslast.Node {
	switch ps.curKind() {
	case bslast.TokNumber:
		return ps.literal(bslast.NodeNumberLiteral)
	case bslast.TokString:
		return ps.literal(bslast.NodeStringLiteral)
	case bslast.TokDate:
		return ps.literal(bslast.NodeDateLiteral)
	case bslast.TokKeyword:
		switch kw, _ := CanonicalKeyword(ps.curText()); kw {
		case "true", "false":
			return ps.literal(bslast.NodeBoolLiteral)
		case "undefined", "null":
			return ps.literal(bslast.NodeUndefinedLiteral)
		case "new":
			return ps.parseNew()
		default:
			return ps.consumeRaw()
		}
	case bslast.TokPunct:
		switch ps.curText() {
		case "(":
			ps.advance()
			expr := ps.parseExpression()
			ps.acceptText(")")
			return expr
		case "?":
			return ps.parseTernary()
		default:
			return ps.consumeRaw()
		}
	case bslast.TokIdentifier:
		return ps.parseDesignator()
	default:
		return ps.consumeRaw()
	}
}

func (ps *parseState) literal(kind bslast.NodeKind) *bslast.Node {
	mark := ps.mark()
	n := ps.newNode(kind)
	n.Name = ps.curText()
	ps.advance()
	return ps.close(n, mark)
}

// parseNew parses a constructor expression: New TypeName(args).
// A constructor call has no callee identifier child, so it never counts as a
// global function call.
func (ps *parseState) parseNew() *bslast.Node {
	mark := ps.mark()
	call := ps.newNode(bslast.NodeCall)
	ps.advance() // new

	if ps.curKind() == bslast.TokIdentifier {
		call.Name = ps.curText()
		ps.advance()
	}
	if ps.acceptText("(") {
		ps.parseArgs(call)
		ps.acceptText(")")
	}

	return ps.close(call, mark)
}

// parseTernary parses ?(cond, a, b) as a call named "?".
func (ps *parseState) parseTernary() *bslast.Node {
	mark := ps.mark()
	call := ps.newNode(bslast.NodeCall)
	call.Name = "?"
	ps.advance() // ?
	if ps.acceptText("(") {
		ps.parseArgs(call)
		ps.acceptText(")")
	}
	return ps.close(call, mark)
}

// parseDesignator parses an identifier with chained member access, calls and
// index access: a.b(x).c[i].
func (ps *parseState) parseDesignator() *bslast.Node {
	mark := ps.mark()

	base := ps.newNode(bslast.NodeIdentifier)
	base.Name = ps.curText()
	ps.advance()
	ps.close(base, mark)

	for {
		switch {
		case ps.atText("."):
			ps.advance()
			if ps.curKind() != bslast.TokIdentifier && ps.curKind() != bslast.TokKeyword {
				return base
			}
			name := ps.curText()
			ps.advance()
			if ps.atText("(") {
				ps.advance()
				call := ps.newNode(bslast.NodeCall)
				call.Name = name
				call.AppendChild(base)
				ps.parseArgs(call)
				ps.acceptText(")")
				base = ps.close(call, mark)
			} else {
				access := ps.newNode(bslast.NodeMemberAccess)
				access.Name = name
				access.AppendChild(base)
				base = ps.close(access, mark)
			}

		case ps.atText("(") && base.Kind == bslast.NodeIdentifier:
			ps.advance()
			call := ps.newNode(bslast.NodeCall)
			call.Name = base.Name
			call.AppendChild(base)
			ps.parseArgs(call)
			ps.acceptText(")")
			base = ps.close(call, mark)

		case ps.atText("["):
			ps.advance()
			access := ps.newNode(bslast.NodeIndexAccess)
			access.AppendChild(base)
			access.AppendChild(ps.parseExpression())
			ps.acceptText("]")
			base = ps.close(access, mark)

		default:
			return base
		}
	}
}

// parseArgs parses a comma-separated argument list up to (but not including)
// the closing paren. Skipped arguments become empty expression nodes.
func (ps *parseState) parseArgs(call *bslast.Node) {
	for !ps.eof() && !ps.atText(")") {
		if ps.atText(",") {
			// Skipped argument: f(, x).
			call.AppendChild(ps.newNode(bslast.NodeExpression))
			ps.advance()
			continue
		}
		call.AppendChild(ps.parseExpression())
		if !ps.acceptText(",") {
			return
		}
	}
}
