package svsyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invariants_test.go exercises the engine's structural guarantees —
// lossless round trip, span containment and ordering, list
// well-formedness, delimiter balance, keyword exclusivity, determinism
// — directly against the combinator framework, independent of any
// one grammar family — every svast production inherits these for free
// by construction, so a synthetic production built from SepBy/ParenGroup
// is enough to pin the contract down.

// identList is a minimal synthetic production: '(' ident {',' ident} ')'
// — just enough structure (a Paren wrapping a List of Tokens) to exercise
// every property below without depending on svast.
func parseIdentList(c Cursor) (Cursor, Paren[List[Token]], *Failure) {
	return ParenGroup(func(c Cursor) (Cursor, List[Token], *Failure) {
		return SepBy(AnyIdentifier, Symbol(","))(c)
	})(c)
}

// Concatenating the text of every leaf span in pre-order reproduces the
// source exactly, including interior whitespace.
func TestInvariantLosslessRoundTrip(t *testing.T) {
	src := "( a ,  b,c )"
	c := newTestCursor(src)
	next, list, fail := parseIdentList(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, src, list.Span().String())

	// Leaves tile the buffer: each token span carries its leading trivia,
	// so concatenating just the leaf spans reproduces the source.
	var rebuilt []byte
	for _, n := range PreOrder(list) {
		if len(n.Children()) > 0 || n.Span().Length == 0 {
			continue
		}
		rebuilt = append(rebuilt, n.Span().Text()...)
	}
	assert.Equal(t, src, string(rebuilt))
}

// Every child's span lies wholly inside its parent's span, checked
// recursively over the whole tree.
func TestInvariantSpanContainment(t *testing.T) {
	c := newTestCursor("(a, b, c)")
	_, list, fail := parseIdentList(c)
	require.Nil(t, fail)

	var walk func(n Node)
	walk = func(n Node) {
		parent := n.Span()
		for _, child := range n.Children() {
			if child == nil {
				continue
			}
			cs := child.Span()
			if cs.Length == 0 {
				continue
			}
			assert.True(t, parent.Contains(cs), "child span %q not contained in parent span %q", cs.String(), parent.String())
			walk(child)
		}
	}
	walk(list)
}

// A node's children's spans are pairwise non-overlapping and appear
// in source order (each child starts no earlier than the previous one
// ends).
func TestInvariantSpanOrdering(t *testing.T) {
	c := newTestCursor("(a, b, c)")
	_, list, fail := parseIdentList(c)
	require.Nil(t, fail)

	var walk func(n Node)
	walk = func(n Node) {
		children := n.Children()
		prevEnd := -1
		for _, child := range children {
			if child == nil {
				continue
			}
			cs := child.Span()
			if cs.Length == 0 {
				continue
			}
			assert.GreaterOrEqual(t, cs.Offset, prevEnd, "child span %q overlaps or precedes its predecessor", cs.String())
			prevEnd = cs.End()
			walk(child)
		}
	}
	walk(list)
}

// Every non-empty list has exactly one more item than separator, and
// Children() strictly alternates item/sep/item/.../item.
func TestInvariantListWellFormedness(t *testing.T) {
	c := newTestCursor("a, b, c, d")
	_, list, fail := SepBy(AnyIdentifier, Symbol(","))(c)
	require.Nil(t, fail)
	require.Equal(t, len(list.Items), len(list.Seps)+1)

	children := list.Children()
	require.Len(t, children, len(list.Items)+len(list.Seps))
	for i, child := range children {
		tok := child.(Token)
		if i%2 == 0 {
			assert.Equal(t, TokIdentifier, tok.Kind)
		} else {
			assert.Equal(t, TokSymbol, tok.Kind)
		}
	}
}

// A Paren/Bracket/Brace node's Open/Close tokens are the matching
// delimiter kind, and the wrapped value's span lies strictly between
// them.
func TestInvariantDelimiterBalance(t *testing.T) {
	c := newTestCursor("(a, b)")
	_, p, fail := parseIdentList(c)
	require.Nil(t, fail)

	assert.Equal(t, "(", p.Open.Raw())
	assert.Equal(t, ")", p.Close.Raw())
	inner := p.Value.Span()
	assert.GreaterOrEqual(t, inner.Offset, p.Open.Span().End())
	assert.LessOrEqual(t, inner.End(), p.Close.Span().Offset)
}

// No identifier token's text equals a reserved keyword of the active
// language version — Keyword and AnyIdentifier are mutually exclusive by
// construction (the lexer classifies a reserved spelling as TokKeyword,
// never TokIdentifier), so this is a direct lexical check rather than a
// tree walk.
func TestInvariantKeywordExclusivity(t *testing.T) {
	c := newTestCursor("module")
	_, tok, fail := AnyIdentifier(c)
	require.NotNil(t, fail, "a reserved word must never lex as a plain identifier")
	assert.False(t, fail.Consumed)
	assert.Equal(t, Token{}, tok)

	c2 := newTestCursor("module")
	next, kwTok, fail2 := Keyword("module")(c2)
	require.Nil(t, fail2)
	assert.True(t, next.AtEnd())
	assert.Equal(t, TokKeyword, kwTok.Kind)
}

// Parsing the same (buffer, version) twice yields structurally
// identical trees — same span boundaries, same shape.
func TestInvariantDeterminism(t *testing.T) {
	src := "(a, bb, ccc)"
	run := func() (string, []int) {
		c := newTestCursor(src)
		_, list, fail := parseIdentList(c)
		require.Nil(t, fail)
		var offsets []int
		for _, n := range PreOrder(list) {
			offsets = append(offsets, n.Span().Offset, n.Span().End())
		}
		return list.Span().String(), offsets
	}
	text1, offsets1 := run()
	text2, offsets2 := run()
	assert.Equal(t, text1, text2)
	assert.Equal(t, offsets1, offsets2)
}
