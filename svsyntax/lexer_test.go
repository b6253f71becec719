package svsyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCursor(src string) Cursor {
	buf := NewBuffer("t.sv", []byte(src))
	return NewCursor(buf, 0, NoopLogger(), NewKeywordSet(V2017))
}

func TestNextTokenKeywordVsIdentifier(t *testing.T) {
	c := newTestCursor("module  foo")

	next, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokKeyword, tok.Kind)
	assert.Equal(t, "module", tok.Raw())
	assert.Empty(t, tok.LeadingTrivia)

	next, tok, fail = NextToken(next, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokIdentifier, tok.Kind)
	assert.Equal(t, "foo", tok.Raw())
	require.Len(t, tok.LeadingTrivia, 1)
	assert.Equal(t, TriviaWhitespace, tok.LeadingTrivia[0].Kind)
}

func TestNextTokenKeywordExclusivity(t *testing.T) {
	// "module" is reserved at every version; at V1995 "logic" is not.
	c1995 := NewCursor(NewBuffer("t.sv", []byte("logic")), 0, NoopLogger(), NewKeywordSet(V1995))
	_, tok, fail := NextToken(c1995, c1995.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokIdentifier, tok.Kind, "logic is not reserved pre-SystemVerilog")

	c2017 := NewCursor(NewBuffer("t.sv", []byte("logic")), 0, NoopLogger(), NewKeywordSet(V2017))
	_, tok, fail = NextToken(c2017, c2017.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokKeyword, tok.Kind, "logic is reserved from 1800-2005 on")
}

func TestScanTriviaLineAndBlockComments(t *testing.T) {
	c := newTestCursor("// a line comment\n/* a block\ncomment */ident")
	next, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokIdentifier, tok.Kind)
	assert.Equal(t, "ident", tok.Raw())
	// The line comment stops before its '\n', which is a whitespace piece.
	require.Len(t, tok.LeadingTrivia, 3)
	assert.Equal(t, TriviaLineComment, tok.LeadingTrivia[0].Kind)
	assert.Equal(t, TriviaWhitespace, tok.LeadingTrivia[1].Kind)
	assert.Equal(t, TriviaBlockComment, tok.LeadingTrivia[2].Kind)
	_ = next
}

func TestUnterminatedBlockCommentIsLexicalError(t *testing.T) {
	// "/* unterminated " must fail lexically at offset 0.
	c := newTestCursor("/* unterminated ")
	_, _, fail := NextToken(c, c.Keywords())
	require.NotNil(t, fail)
	assert.Equal(t, FailLexical, fail.Kind)
	assert.Equal(t, 0, fail.Offset)
	assert.True(t, fail.Consumed)
}

func TestUnterminatedStringIsLexicalError(t *testing.T) {
	c := newTestCursor(`"abc`)
	_, _, fail := NextToken(c, c.Keywords())
	require.NotNil(t, fail)
	assert.Equal(t, FailLexical, fail.Kind)
}

func TestScanNumberSizedAndBased(t *testing.T) {
	for _, src := range []string{"8'hFF", "4'b10x1", "3'o7", "2", "1.5", "1.5e3", "1e-2"} {
		c := newTestCursor(src)
		_, tok, fail := NextToken(c, c.Keywords())
		require.Nil(t, fail, src)
		assert.Equal(t, TokNumber, tok.Kind, src)
		assert.Equal(t, src, tok.Raw(), src)
	}
}

func TestScanNumberUnbased(t *testing.T) {
	// The size prefix is optional: based literals and single-bit
	// literals may open directly with the ' marker.
	for _, src := range []string{"'hFF", "'b101", "'o17", "'d42", "'sd5", "'0", "'1", "'x", "'z"} {
		c := newTestCursor(src)
		next, tok, fail := NextToken(c, c.Keywords())
		require.Nil(t, fail, src)
		assert.Equal(t, TokNumber, tok.Kind, src)
		assert.Equal(t, src, tok.Raw(), src)
		assert.True(t, next.AtEnd(), src)
	}

	// A ' that opens no base is still an unrecognized character.
	c := newTestCursor("'q")
	_, _, fail := NextToken(c, c.Keywords())
	require.NotNil(t, fail)
	assert.Equal(t, FailLexical, fail.Kind)
}

func TestScanTimeLiteral(t *testing.T) {
	for _, src := range []string{"10ns", "1.5us", "100s", "3fs"} {
		c := newTestCursor(src)
		_, tok, fail := NextToken(c, c.Keywords())
		require.Nil(t, fail, src)
		assert.Equal(t, TokTime, tok.Kind, src)
		assert.Equal(t, src, tok.Raw(), src)
	}

	// A longer identifier run is not a time unit, and based literals
	// never take one.
	c := newTestCursor("10nsx")
	_, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokNumber, tok.Kind)
	assert.Equal(t, "10", tok.Raw())
}

func TestDirectiveResidueBecomesTrivia(t *testing.T) {
	c := newTestCursor("`line 3 \"f.sv\" 0\nfoo")
	_, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokIdentifier, tok.Kind)
	assert.Equal(t, "foo", tok.Raw())
	require.Len(t, tok.LeadingTrivia, 2)
	assert.Equal(t, TriviaDirectiveResidue, tok.LeadingTrivia[0].Kind)
	assert.Equal(t, TriviaWhitespace, tok.LeadingTrivia[1].Kind)
}

func TestScanStringLiteral(t *testing.T) {
	c := newTestCursor(`"hello \"world\""`)
	_, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokString, tok.Kind)
	assert.Equal(t, `"hello \"world\""`, tok.Raw())
}

func TestScanSystemAndEscapedIdentifier(t *testing.T) {
	c := newTestCursor("$display")
	_, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokSystemIdentifier, tok.Kind)
	assert.Equal(t, "$display", tok.Raw())

	c = newTestCursor(`\a+b foo`)
	_, tok, fail = NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokEscapedIdentifier, tok.Kind)
	assert.Equal(t, `\a+b`, tok.Raw())
}

func TestScanSymbolLongestMatch(t *testing.T) {
	c := newTestCursor("<<<=rest")
	_, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, TokSymbol, tok.Kind)
	assert.Equal(t, "<<<=", tok.Raw())
}

func TestTokenSpanIncludesLeadingTrivia(t *testing.T) {
	c := newTestCursor("  foo")
	_, tok, fail := NextToken(c, c.Keywords())
	require.Nil(t, fail)
	assert.Equal(t, 0, tok.Span().Offset)
	assert.Equal(t, "  foo", tok.Span().String())
	assert.Equal(t, "foo", tok.Raw())
}
