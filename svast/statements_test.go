package svast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlcore/svparse/svsyntax"
)

func TestBlockingAssignment(t *testing.T) {
	c := parseCursor("a = b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Assignment.Present)
	require.True(t, stmt.Assignment.Value.Blocking.Present)
	assert.False(t, stmt.Assignment.Value.Nonblocking.Present)
	assert.Equal(t, "a", stmt.Assignment.Value.Blocking.Value.Lvalue.Ident.Name())
	assert.Equal(t, "a = b;", stmt.Span().String())
}

func TestNonblockingAssignment(t *testing.T) {
	c := parseCursor("a <= b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Assignment.Present)
	require.True(t, stmt.Assignment.Value.Nonblocking.Present)
	assert.Equal(t, "a", stmt.Assignment.Value.Nonblocking.Value.Lvalue.Ident.Name())
}

func TestNullStatement(t *testing.T) {
	c := parseCursor(";")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.True(t, stmt.Null.Present)
}

func TestConditionalStatementWithElse(t *testing.T) {
	c := parseCursor("if (a) b = c; else d = e;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Conditional.Present)

	cond := stmt.Conditional.Value
	assert.Equal(t, "a", cond.Cond.Value.Span().String())
	require.NotNil(t, cond.Then)
	assert.True(t, cond.Then.Assignment.Present)
	require.True(t, cond.Else.Present)
	require.NotNil(t, cond.Else.Value.Body)
	assert.True(t, cond.Else.Value.Body.Assignment.Present)
}

func TestConditionalStatementWithoutElse(t *testing.T) {
	c := parseCursor("if (a) b = c;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Conditional.Present)
	assert.False(t, stmt.Conditional.Value.Else.Present)
}

func TestCaseStatement(t *testing.T) {
	c := parseCursor("case (sel) 0: a = b; 1, 2: a = c; default: a = d; endcase")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Case.Present)

	items := stmt.Case.Value.Items.Items
	require.Len(t, items, 3)
	assert.Len(t, items[0].Exprs.Items, 1)
	assert.False(t, items[0].Default.Present)
	assert.Len(t, items[1].Exprs.Items, 2)
	assert.True(t, items[2].Default.Present)
}

func TestLoopStatementForever(t *testing.T) {
	c := parseCursor("forever a = b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Loop.Present)
	assert.True(t, stmt.Loop.Value.Forever.Present)
}

func TestLoopStatementWhile(t *testing.T) {
	c := parseCursor("while (a) b = c;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Loop.Present)
	require.True(t, stmt.Loop.Value.While.Present)
	assert.Equal(t, "a", stmt.Loop.Value.While.Value.Cond.Value.Span().String())
}

func TestLoopStatementFor(t *testing.T) {
	c := parseCursor("for (i = 0; i < n; i = i + 1) a = b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Loop.Present)
	require.True(t, stmt.Loop.Value.For.Present)

	f := stmt.Loop.Value.For.Value
	require.Len(t, f.Init.Items, 1)
	assert.Equal(t, "i", f.Init.Items[0].Lvalue.Ident.Name())
	require.True(t, f.Cond.Present)
	require.Len(t, f.Step.Items, 1)
}

func TestJumpStatements(t *testing.T) {
	cases := []string{"break;", "continue;", "return;", "return a;", "disable blk;"}
	for _, src := range cases {
		c := parseCursor(src)
		next, stmt, fail := ParseStatement(c)
		require.Nil(t, fail, "source: %s", src)
		require.True(t, next.AtEnd(), "source: %s", src)
		assert.True(t, stmt.Jump.Present, "source: %s", src)
	}
}

func TestProceduralTimingControlStatementWithDelay(t *testing.T) {
	c := parseCursor("#5 a = b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Timing.Present)
	assert.True(t, stmt.Timing.Value.Delay.Present)
	assert.False(t, stmt.Timing.Value.Event.Present)
	require.NotNil(t, stmt.Timing.Value.Body)
	assert.True(t, stmt.Timing.Value.Body.Assignment.Present)
}

func TestProceduralTimingControlStatementWithEventList(t *testing.T) {
	c := parseCursor("@(posedge clk or negedge rst) a <= b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Timing.Present)
	require.True(t, stmt.Timing.Value.Event.Present)

	ev := stmt.Timing.Value.Event.Value
	require.True(t, ev.Paren.Present)
	items := ev.Paren.Value.Value.Items.Items
	require.Len(t, items, 2)
	require.True(t, items[0].Edge.Present)
	assert.Equal(t, "posedge", items[0].Edge.Value.Raw())
	assert.Equal(t, "negedge", items[1].Edge.Value.Raw())
}

func TestProceduralTimingControlStatementWithStar(t *testing.T) {
	c := parseCursor("@* a = b;")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Timing.Present)
	require.True(t, stmt.Timing.Value.Event.Present)
	assert.True(t, stmt.Timing.Value.Event.Value.Star.Present)
}

func TestSeqBlockNested(t *testing.T) {
	c := parseCursor("begin a = b; if (c) d = e; end")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Block.Present)

	items := stmt.Block.Value.Items.Items
	require.Len(t, items, 2)
	assert.True(t, items[0].Assignment.Present)
	assert.True(t, items[1].Conditional.Present)
}

func TestSeqBlockLabeled(t *testing.T) {
	c := parseCursor("begin : blk a = b; end")
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, stmt.Block.Present)
	require.True(t, stmt.Block.Value.Label.Present)
	assert.Equal(t, "blk", stmt.Block.Value.Label.Value.Name.Name())
}

// Procedural blocks appear as module items and reach the full statement
// grammar through ModuleItem/SourceText.
func TestProceduralBlockInModule(t *testing.T) {
	src := "module m (clk, rst, q, d);\n" +
		"  always @(posedge clk or negedge rst) begin\n" +
		"    if (rst) q <= 0; else q <= d;\n" +
		"  end\n" +
		"endmodule\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	require.Len(t, root.Modules.Items, 1)

	mod := root.Modules.Items[0]
	require.Len(t, mod.Items.Items, 1)
	require.True(t, mod.Items.Items[0].Procedural.Present)

	block := mod.Items.Items[0].Procedural.Value
	assert.Equal(t, "always", block.Kw.Raw())
	require.True(t, block.Body.Block.Present)
	require.Len(t, block.Body.Block.Value.Items.Items, 1)
	assert.True(t, block.Body.Block.Value.Items.Items[0].Conditional.Present)
}

func TestProceduralBlockInitial(t *testing.T) {
	src := "module m ();\n  initial a = 0;\nendmodule\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	require.Len(t, root.Modules.Items, 1)
	mod := root.Modules.Items[0]
	require.Len(t, mod.Items.Items, 1)
	require.True(t, mod.Items.Items[0].Procedural.Present)
	assert.Equal(t, "initial", mod.Items.Items[0].Procedural.Value.Kw.Raw())
}

// Lossless round trip over a statement containing interior
// whitespace and a nested block.
func TestStatementLosslessRoundTrip(t *testing.T) {
	src := "if ( a )  begin  b  =  c ;  end"
	c := parseCursor(src)
	next, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, src, stmt.Span().String())
}

// Span containment over the richest statement form tested.
func TestStatementSpanContainment(t *testing.T) {
	c := parseCursor("for (i = 0; i < n; i = i + 1) begin a = b; end")
	_, stmt, fail := ParseStatement(c)
	require.Nil(t, fail)

	parent := stmt.Span()
	for _, child := range stmt.Children() {
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
