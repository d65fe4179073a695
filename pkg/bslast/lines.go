package bslast

import "sort"

// LineInfo describes one line of source content.
type LineInfo struct {
	// StartOffset is the byte index where the line begins.
	StartOffset int

	// NewlineStart is the byte index where the line's newline sequence
	// begins (equals EndOffset for a final line without a newline).
	NewlineStart int

	// EndOffset is the byte index just past the line's newline sequence.
	EndOffset int
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the unit.
func (u *Unit) LineCount() int {
	return len(u.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (u *Unit) LineAt(offset int) (int, int) {
	if offset < 0 || len(u.Lines) == 0 {
		return 0, 0
	}

	// Handle offset at or past end of content.
	if offset >= len(u.Content) {
		lastLine := u.Lines[len(u.Lines)-1]
		return len(u.Lines), offset - lastLine.StartOffset + 1
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(u.Lines), func(i int) bool {
		return u.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(u.Lines) {
		lineIdx = len(u.Lines) - 1
	}

	lineInfo := u.Lines[lineIdx]

	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}

// LineText returns the text of the 1-based line number without its newline.
// Returns an empty string for out-of-range lines.
func (u *Unit) LineText(lineNum int) string {
	if lineNum < 1 || lineNum > len(u.Lines) {
		return ""
	}
	info := u.Lines[lineNum-1]
	return string(u.Content[info.StartOffset:info.NewlineStart])
}
