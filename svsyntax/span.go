// Package svsyntax implements the grammar engine for the SystemVerilog /
// Verilog-2001 concrete syntax tree: the input cursor, lexical
// recognizers, the combinator framework, the left-recursion guard and
// failure memoization, and the generic node/traversal protocol. The
// ~700 named productions of the language grammar itself live in
// package svast, built on top of this engine.
package svsyntax

import "sort"

// FileRef identifies the source file a Buffer was read from, kept as a
// dedicated type so callers are not tempted to do path manipulation on it.
type FileRef string

// Buffer is the immutable input a single parse runs over. It is shared by
// reference across every Cursor clone taken during that parse.
type Buffer struct {
	File  FileRef
	Bytes []byte

	// lineStarts[i] is the byte offset of the first byte of line i+2
	// (line 1 always starts at offset 0 and is not stored).
	lineStarts []int
}

// NewBuffer builds a Buffer over src, precomputing the newline index used
// to answer Pos queries without mutating any per-token state.
func NewBuffer(file FileRef, src []byte) *Buffer {
	b := &Buffer{File: file, Bytes: src}
	for i, c := range src {
		if c == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
	return b
}

// Pos is a 1-indexed line/column position, suitable for diagnostics.
type Pos struct {
	File FileRef
	Line int
	Col  int
}

// Pos computes the line/column of a byte offset by binary search over the
// precomputed newline index. This is deliberately not tracked
// incrementally on Cursor: the combinator framework clones cursors
// constantly for speculative parsing, and an incrementally bumped
// line/col counter would need to be unwound on every Cursor.Restore.
func (b *Buffer) Pos(offset int) Pos {
	line := sort.SearchInts(b.lineStarts, offset+1)
	col := offset + 1
	if line > 0 {
		col = offset - b.lineStarts[line-1] + 1
	}
	return Pos{File: b.File, Line: line + 1, Col: col}
}

// Span is a cheap view over a contiguous run of bytes in a Buffer,
// identified by (offset, length). It is the universal leaf: every other
// node ultimately decomposes into spans.
type Span struct {
	Buf    *Buffer
	Offset int
	Length int
}

// End returns the offset one past the last byte covered by s.
func (s Span) End() int { return s.Offset + s.Length }

// Text returns the exact source bytes covered by s.
func (s Span) Text() []byte {
	if s.Buf == nil {
		return nil
	}
	return s.Buf.Bytes[s.Offset : s.Offset+s.Length]
}

// String renders a span's text for debugging/error messages.
func (s Span) String() string { return string(s.Text()) }

// Start returns the position of the first byte of s.
func (s Span) Start() Pos { return s.Buf.Pos(s.Offset) }

// Stop returns the position one past the last byte of s.
func (s Span) Stop() Pos { return s.Buf.Pos(s.End()) }

// Contains reports whether other lies wholly within s (used by the P2
// span-containment test helpers in invariants_test.go).
func (s Span) Contains(other Span) bool {
	return other.Offset >= s.Offset && other.End() <= s.End()
}

// Union returns the smallest span covering both a and b. Both must
// reference the same Buffer.
func Union(a, b Span) Span {
	start := a.Offset
	if b.Offset < start {
		start = b.Offset
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return Span{Buf: a.Buf, Offset: start, Length: end - start}
}
