package bslast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []LineInfo
	}{
		{
			name:    "empty content",
			content: "",
			want:    []LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "abc",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "lf endings",
			content: "ab\ncd\n",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 2, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "crlf endings",
			content: "ab\r\ncd",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 2, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "blank lines",
			content: "\n\n",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildLines([]byte(tt.content)))
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	unit := NewUnit("Orders.bsl", []byte("first\nsecond\r\nthird"))

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 3, 1, 4},
		{"newline byte", 5, 1, 6},
		{"start of second line", 6, 2, 1},
		{"carriage return", 12, 2, 7},
		{"start of third line", 14, 3, 1},
		{"last byte", 18, 3, 5},
		{"past end", 19, 3, 6},
		{"negative", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			line, col := unit.LineAt(tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestLineAtEmptyUnit(t *testing.T) {
	t.Parallel()

	unit := NewUnit("Empty.bsl", nil)
	line, col := unit.LineAt(0)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)
}

func TestLineText(t *testing.T) {
	t.Parallel()

	unit := NewUnit("Orders.bsl", []byte("first\nsecond\r\nthird"))

	assert.Equal(t, "first", unit.LineText(1))
	assert.Equal(t, "second", unit.LineText(2))
	assert.Equal(t, "third", unit.LineText(3))
	assert.Empty(t, unit.LineText(0))
	assert.Empty(t, unit.LineText(4))
}

func TestLineCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, NewUnit("a.bsl", nil).LineCount())
	assert.Equal(t, 1, NewUnit("a.bsl", []byte("x")).LineCount())
	assert.Equal(t, 3, NewUnit("a.bsl", []byte("x\ny\n")).LineCount())
}
