package svast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlcore/svparse/svsyntax"
)

func parseCursor(src string) svsyntax.Cursor {
	buf := svsyntax.NewBuffer("t.sv", []byte(src))
	return svsyntax.NewCursor(buf, 0, svsyntax.NoopLogger(), svsyntax.NewKeywordSet(svsyntax.V2017))
}

// A plain net continuous assign.
func TestContinuousAssignNet(t *testing.T) {
	c := parseCursor("assign a = b;")
	next, ca, fail := ParseContinuousAssign(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, ca.Net.Present)
	assert.False(t, ca.Variable.Present)
	assert.Equal(t, "a", ca.Net.Value.Assignments.Items.Items[0].Lvalue.Ident.Name())
	assert.Equal(t, "assign a = b;", ca.Span().String())
}

// A delay control after `assign` commits to the variable
// form, with multiple assignments in the list.
func TestContinuousAssignVariableWithDelayAndList(t *testing.T) {
	c := parseCursor("assign #3 x = y, z = w;")
	next, ca, fail := ParseContinuousAssign(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, ca.Variable.Present)
	assert.False(t, ca.Net.Present)
	require.True(t, ca.Variable.Value.DelayControl.Present)
	assert.True(t, ca.Variable.Value.DelayControl.Value.Plain.Present)
	require.Len(t, ca.Variable.Value.Assignments.Items.Items, 2)
	assert.Equal(t, "x", ca.Variable.Value.Assignments.Items.Items[0].Lvalue.Ident.Name())
	assert.Equal(t, "z", ca.Variable.Value.Assignments.Items.Items[1].Lvalue.Ident.Name())
}

// A drive strength keeps the net form, with a delay3 allowed after it.
func TestContinuousAssignNetWithDriveStrength(t *testing.T) {
	c := parseCursor("assign (supply0, strong1) #3 a = b;")
	next, ca, fail := ParseContinuousAssign(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, ca.Net.Present)
	require.True(t, ca.Net.Value.DriveStrength.Present)
	require.True(t, ca.Net.Value.Delay3.Present)

	strengths := ca.Net.Value.DriveStrength.Value.Paren.Value
	require.Len(t, strengths.Items, 2)
	assert.Equal(t, "supply0", strengths.Items[0].Raw())
	assert.Equal(t, "strong1", strengths.Items[1].Raw())
}

// A net alias binding three or more lvalues together.
func TestNetAlias(t *testing.T) {
	c := parseCursor("alias a = b = c;")
	next, alias, fail := ParseNetAlias(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "a", alias.First.Ident.Name())
	require.Len(t, alias.Rest.Items, 2)
	assert.Equal(t, "b", alias.Rest.Items[0].Ident.Name())
	assert.Equal(t, "c", alias.Rest.Items[1].Ident.Name())
	assert.Equal(t, "alias a = b = c;", alias.Span().String())
}

// A constraint block mixing an ordinary expression, a
// uniqueness constraint, and an if/else constraint.
func TestConstraintBlockMixedItems(t *testing.T) {
	c := parseCursor("constraint c1 { a < b; unique {x, y}; if (p) a == 0; else a > 0; }")
	next, decl, fail := ParseConstraintDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "c1", decl.Name.Name())

	items := decl.Block.Brace.Value.Items
	require.Len(t, items, 3)

	require.True(t, items[0].Expression.Present)
	require.True(t, items[0].Expression.Value.Expr.Present)

	require.True(t, items[1].Expression.Present)
	require.True(t, items[1].Expression.Value.Uniqueness.Present)

	require.True(t, items[2].Expression.Present)
	require.True(t, items[2].Expression.Value.If.Present)
	assert.True(t, items[2].Expression.Value.If.Value.Else.Present)
}

// A parallel edge-sensitive path declaration with a leading
// edge identifier nested inside the outer parens.
func TestEdgeSensitivePathDeclarationParallel(t *testing.T) {
	c := parseCursor("(posedge clk => (q : d)) = (1, 2);")
	next, decl, fail := ParseEdgeSensitivePathDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Parallel.Present)
	assert.False(t, decl.Full.Present)

	p := decl.Parallel.Value
	require.True(t, p.Edge.Present)
	assert.Equal(t, "posedge", p.Edge.Value.Tok.Raw())
	assert.Equal(t, "clk", p.Input.Name())
	assert.Equal(t, "=>", p.EdgeOp.Raw())
	assert.Equal(t, "q", p.Output.Name())

	require.True(t, decl.Value.Paren.Present)
	delays := decl.Value.Paren.Value.Value.Items.Items
	require.Len(t, delays, 2)
	assert.Equal(t, "1", delays[0].Inner.Right.Operand.Number.Value.Raw())
	assert.Equal(t, "2", delays[1].Inner.Right.Operand.Number.Value.Raw())
}

// A full-form path description with a comma-separated input/output list
// and no leading edge identifier.
func TestEdgeSensitivePathDeclarationFullNoEdge(t *testing.T) {
	c := parseCursor("(a, b *> (c, d : e)) = 1;")
	next, decl, fail := ParseEdgeSensitivePathDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Full.Present)
	assert.False(t, decl.Full.Value.Edge.Present)
	require.Len(t, decl.Full.Value.Inputs.Items, 2)
	require.Len(t, decl.Full.Value.Outputs.Items, 2)
}

// A lexical failure observed through the grammar entry
// point: an unterminated block comment never reaches a syntactic
// production at all.
func TestParseSourceTextUnterminatedCommentIsLexicalFailure(t *testing.T) {
	_, fail := Parse([]byte("/* unterminated"), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.NotNil(t, fail)
	assert.Equal(t, svsyntax.FailLexical, fail.Kind)
}

// Lossless round trip: the span text of a parsed
// top-level construct reproduces the source byte-for-byte, including
// interior whitespace.
func TestLosslessRoundTrip(t *testing.T) {
	src := "assign   a  =  b ;"
	c := parseCursor(src)
	next, ca, fail := ParseContinuousAssign(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, src, ca.Span().String())
}

// Span containment: every child's span lies wholly inside
// its parent's span.
func TestSpanContainment(t *testing.T) {
	c := parseCursor("constraint c1 { a < b; }")
	_, decl, fail := ParseConstraintDeclaration(c)
	require.Nil(t, fail)

	parent := decl.Span()
	for _, child := range decl.Children() {
		if child == nil {
			continue
		}
		cs := child.Span()
		if cs.Length == 0 {
			continue
		}
		assert.True(t, parent.Contains(cs), "child span %q not contained in parent span %q", cs.String(), parent.String())
	}
}

// Determinism: parsing the same input twice yields
// structurally identical spans and text.
func TestParseIsDeterministic(t *testing.T) {
	src := "assign #2 a = b, c = d;"
	run := func() (svsyntax.Span, int) {
		c := parseCursor(src)
		next, ca, fail := ParseContinuousAssign(c)
		require.Nil(t, fail)
		return ca.Span(), next.Offset
	}
	span1, off1 := run()
	span2, off2 := run()
	assert.Equal(t, span1.String(), span2.String())
	assert.Equal(t, off1, off2)
}

// BinaryExpression's seed-parse/grow left recursion must produce a
// left-associative chain: "a + b + c" nests as ((a + b) + c), not
// (a + (b + c)).
func TestBinaryExpressionIsLeftAssociative(t *testing.T) {
	c := parseCursor("a + b + c")
	next, expr, fail := parseExpression(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())

	outer := expr.Inner
	require.True(t, outer.Left.Present, "outermost node must itself be a Left/Op/Right triple")
	assert.Equal(t, "c", outer.Right.Operand.Ident.Value.Name())
	assert.Equal(t, "+", outer.Op.Value.Raw())

	inner := *outer.Left.Value
	require.True(t, inner.Left.Present, "the left child must itself be a binary node, not the base case")
	assert.Equal(t, "b", inner.Right.Operand.Ident.Value.Name())
	assert.Equal(t, "a", inner.Left.Value.Span().String())
}

// Pre-order traversal (svsyntax.PreOrder) must visit a node before its
// children, and children in source order — so concatenating the leaf
// spans of the traversal reproduces the source — the lossless
// round trip observed through the generic-node protocol rather than
// through Span directly.
func TestPreOrderTraversalVisitsParentFirstThenChildrenInOrder(t *testing.T) {
	src := "assign a = b;"
	c := parseCursor(src)
	_, ca, fail := ParseContinuousAssign(c)
	require.Nil(t, fail)

	order := svsyntax.PreOrder(ca)
	require.NotEmpty(t, order)
	assert.Equal(t, KindContinuousAssign, order[0].NodeKind())

	var rebuilt []byte
	for _, n := range order {
		if len(n.Children()) == 0 && n.Span().Length > 0 {
			rebuilt = append(rebuilt, n.Span().Text()...)
		}
	}
	assert.Equal(t, src, string(rebuilt))
}

// A runaway nesting depth aborts deterministically with RecursionLimit
// instead of blowing the goroutine stack.
func TestRecursionLimitAborts(t *testing.T) {
	src := "a"
	for i := 0; i < 64; i++ {
		src = "(" + src + ")"
	}
	buf := svsyntax.NewBuffer("t.sv", []byte(src))
	c := svsyntax.NewCursor(buf, 16, svsyntax.NoopLogger(), svsyntax.NewKeywordSet(svsyntax.V2017))
	_, _, fail := parseExpression(c)
	require.NotNil(t, fail)
	assert.Equal(t, svsyntax.FailRecursionLimit, fail.Kind)
}

// Full source-text parse covering a whole module with a handful of
// member kinds interleaved, exercising SourceText/ModuleDeclaration/
// ModuleItem wiring end to end.
func TestParseModuleWithMixedItems(t *testing.T) {
	src := "module m (a, b);\n" +
		"  assign a = b;\n" +
		"  constraint c1 { a < b; }\n" +
		"endmodule\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	require.Len(t, root.Modules.Items, 1)

	mod := root.Modules.Items[0]
	assert.Equal(t, "m", mod.Name.Name())
	require.Len(t, mod.Items.Items, 2)
	assert.True(t, mod.Items.Items[0].ContinuousAssign.Present)
	assert.True(t, mod.Items.Items[1].Constraint.Present)
}
