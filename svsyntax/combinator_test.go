package svsyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltStickyOnConsume(t *testing.T) {
	// Both alternatives start with "#"; once the first alternative
	// consumes input and then fails, Alt must not fall through to the
	// second (sticky-on-consume).
	first := func(c Cursor) (Cursor, Token, *Failure) {
		n, _, fail := Symbol("#")(c)
		if fail != nil {
			return c, Token{}, fail
		}
		// "#" was consumed; mark the inner mismatch sticky the same way
		// real grammar productions do once they've committed past a
		// prefix (e.g. continuous_assign.go after "assign").
		_, _, fail = Symbol(";")(n)
		return c, Token{}, fail.WithConsumed(true)
	}
	second := Symbol("#")

	c := newTestCursor("#,")
	_, _, fail := Alt(first, second)(c)
	require.NotNil(t, fail)
	assert.True(t, fail.Consumed, "the committed first alternative's failure must propagate")
}

func TestAltFallsThroughOnZeroConsumption(t *testing.T) {
	c := newTestCursor("123")
	next, tok, fail := Alt(Keyword("module"), AnyNumber)(c)
	require.Nil(t, fail)
	assert.Equal(t, "123", tok.Raw())
	assert.True(t, next.AtEnd())
}

func TestOptAbsentOnZeroConsumptionFailure(t *testing.T) {
	c := newTestCursor("123")
	_, opt, fail := Opt(Keyword("module"))(c)
	require.Nil(t, fail)
	assert.False(t, opt.Present)
}

func TestMany0StopsOnZeroConsumption(t *testing.T) {
	c := newTestCursor("a a a")
	_, list, fail := Many0(AnyIdentifier)(c)
	require.Nil(t, fail)
	assert.Len(t, list.Items, 3)
}

func TestSepByAlternatesItemsWithSeparators(t *testing.T) {
	c := newTestCursor("a, b, c")
	next, list, fail := SepBy(AnyIdentifier, Symbol(","))(c)
	require.Nil(t, fail)
	require.Len(t, list.Items, 3)
	require.Len(t, list.Seps, 2)
	assert.True(t, next.AtEnd())

	// A list always has exactly one more item than separator.
	assert.Equal(t, len(list.Items), len(list.Seps)+1)
}

func TestSepByEmptyInputYieldsAbsentNotError(t *testing.T) {
	c := newTestCursor("123")
	_, list, fail := SepBy(AnyIdentifier, Symbol(","))(c)
	require.Nil(t, fail)
	assert.Empty(t, list.Items)
}

func TestListChildrenAlternateItemsAndSeparators(t *testing.T) {
	c := newTestCursor("a, b, c")
	_, list, fail := SepBy(AnyIdentifier, Symbol(","))(c)
	require.Nil(t, fail)
	children := list.Children()
	require.Len(t, children, 5) // a , b , c
	assert.Equal(t, "a", children[0].(Token).Raw())
	assert.Equal(t, ",", children[1].(Token).Raw())
	assert.Equal(t, "b", children[2].(Token).Raw())
	assert.Equal(t, ",", children[3].(Token).Raw())
	assert.Equal(t, "c", children[4].(Token).Raw())
}

func TestParenRecordsBothDelimiters(t *testing.T) {
	c := newTestCursor("(x)")
	open, openTok, fail := Symbol("(")(c)
	require.Nil(t, fail)
	next, ident, fail := AnyIdentifier(open)
	require.Nil(t, fail)
	next, closeTok, fail := Symbol(")")(next)
	require.Nil(t, fail)

	p := Paren[Token]{Open: openTok, Value: ident, Close: closeTok}
	assert.Equal(t, "(x)", p.Span().String())
	assert.True(t, next.AtEnd())
}
