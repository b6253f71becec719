package svsyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPos(t *testing.T) {
	src := []byte("ab\ncd\nef")
	buf := NewBuffer("t.sv", src)

	cases := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1}, // 'c'
		{5, 2, 3}, // the second newline
		{6, 3, 1}, // 'e'
		{8, 3, 3}, // one past the end
	}
	for _, tc := range cases {
		pos := buf.Pos(tc.offset)
		assert.Equal(t, tc.wantLine, pos.Line, "offset %d line", tc.offset)
		assert.Equal(t, tc.wantCol, pos.Col, "offset %d col", tc.offset)
		assert.Equal(t, FileRef("t.sv"), pos.File)
	}
}

func TestSpanTextAndContains(t *testing.T) {
	buf := NewBuffer("t.sv", []byte("assign a = b;"))
	whole := Span{Buf: buf, Offset: 0, Length: len(buf.Bytes)}
	inner := Span{Buf: buf, Offset: 7, Length: 1} // "a"

	require.True(t, whole.Contains(inner))
	assert.False(t, inner.Contains(whole))
	assert.Equal(t, "a", inner.String())
	assert.Equal(t, 8, inner.End())
}

func TestUnion(t *testing.T) {
	buf := NewBuffer("t.sv", []byte("0123456789"))
	a := Span{Buf: buf, Offset: 2, Length: 2} // "23"
	b := Span{Buf: buf, Offset: 6, Length: 2} // "67"
	u := Union(a, b)
	assert.Equal(t, 2, u.Offset)
	assert.Equal(t, 8, u.End())
	assert.Equal(t, "234567", u.String())

	// Union is symmetric regardless of argument order.
	u2 := Union(b, a)
	assert.Equal(t, u, u2)
}
