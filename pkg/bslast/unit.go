package bslast

import (
	"path/filepath"
	"strings"
)

// Unit is one analyzed BSL source file: its content, line index, token
// stream and syntax tree. A Unit owns its tree; nodes reference back to it
// for position and text lookups.
type Unit struct {
	// Path is the file path the unit was read from.
	Path string

	// ModuleName is the module name derived from the file name.
	ModuleName string

	// Content is the raw source bytes.
	Content []byte

	// Lines is the pre-computed line index over Content.
	Lines []LineInfo

	// Tokens is the full token stream covering Content.
	Tokens []Token

	// Root is the module-level root node. Nil after ReleaseTree.
	Root *Node
}

// NewUnit creates a Unit for the given path and content with a built line
// index. Tokens and Root are filled in by the parser.
func NewUnit(path string, content []byte) *Unit {
	return &Unit{
		Path:       path,
		ModuleName: moduleNameFromPath(path),
		Content:    content,
		Lines:      BuildLines(content),
	}
}

// moduleNameFromPath derives the module name from the file base name.
func moduleNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TokenText returns the text of the token at the given index.
func (u *Unit) TokenText(idx int) string {
	if idx < 0 || idx >= len(u.Tokens) {
		return ""
	}
	return string(u.Tokens[idx].Text(u.Content))
}

// ReleaseTree drops the syntax tree and token stream so their memory can be
// reclaimed once diagnostics have been extracted. Content and the line index
// stay available for reporting source context.
func (u *Unit) ReleaseTree() {
	u.Root = nil
	u.Tokens = nil
}

// Retained reports whether the unit still holds its syntax tree.
func (u *Unit) Retained() bool {
	return u.Root != nil
}
