package svast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlcore/svparse/svsyntax"
)

func TestSimplePathDeclarationParallel(t *testing.T) {
	src := "(a => b) = 1;"
	c := parseCursor(src)
	next, decl, fail := ParseSimplePathDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Parallel.Present)
	assert.False(t, decl.Full.Present)
	assert.Equal(t, "a", decl.Parallel.Value.Input.Name())
	assert.Equal(t, "b", decl.Parallel.Value.Output.Name())
	assert.Equal(t, src, decl.Span().String())
}

func TestSimplePathDeclarationFullWithPolarity(t *testing.T) {
	c := parseCursor("(a, b +*> q1, q2) = (1, 2);")
	next, decl, fail := ParseSimplePathDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Full.Present)
	require.True(t, decl.Full.Value.Polarity.Present)
	assert.Equal(t, "+", decl.Full.Value.Polarity.Value.Tok.Raw())
	require.Len(t, decl.Full.Value.Inputs.Items, 2)
	require.Len(t, decl.Full.Value.Outputs.Items, 2)
}

// A simple path inside a module body must not be swallowed (or
// rejected) by the edge-sensitive alternative, which diverges only at
// the inner paren after the edge operator.
func TestSimplePathDeclarationInModule(t *testing.T) {
	src := "module m ();\n  (a => b) = 1;\n  (posedge clk => (q : d)) = (1, 2);\nendmodule\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	require.Len(t, root.Modules.Items, 1)

	items := root.Modules.Items[0].Items.Items
	require.Len(t, items, 2)
	assert.True(t, items[0].SimplePath.Present)
	assert.True(t, items[1].EdgePath.Present)
}

func TestStateDependentPathDeclarationSimpleInner(t *testing.T) {
	c := parseCursor("if (en) (a => b) = 1;")
	next, decl, fail := ParseStateDependentPathDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.SimplePath.Present)
	assert.False(t, decl.EdgePath.Present)
}

func TestStateDependentPathDeclarationEdgeInner(t *testing.T) {
	c := parseCursor("if (en) (posedge clk => (q : d)) = 2;")
	next, decl, fail := ParseStateDependentPathDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.EdgePath.Present)
	assert.False(t, decl.SimplePath.Present)
}

func TestSystemTimingCheckSetup(t *testing.T) {
	src := "$setup (d, posedge clk, 5);"
	c := parseCursor(src)
	next, check, fail := ParseSystemTimingCheck(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "$setup", check.Name.Raw())
	assert.False(t, check.Event1.Edge.Present)
	assert.Equal(t, "d", check.Event1.Terminal.Name())
	require.True(t, check.Event2.Edge.Present)
	assert.Equal(t, "posedge", check.Event2.Edge.Value.Tok.Raw())
	assert.False(t, check.Notifier.Present)
	assert.Equal(t, src, check.Span().String())
}

func TestSystemTimingCheckHoldWithNotifier(t *testing.T) {
	c := parseCursor("$hold (posedge clk, d, 3, notif);")
	next, check, fail := ParseSystemTimingCheck(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "$hold", check.Name.Raw())
	require.True(t, check.Notifier.Present)
	assert.Equal(t, "notif", check.Notifier.Value.Name.Name())
}

func TestSystemTimingCheckInModule(t *testing.T) {
	src := "module m ();\n  $setup (d, posedge clk, 5);\nendmodule\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	require.Len(t, root.Modules.Items, 1)
	items := root.Modules.Items[0].Items.Items
	require.Len(t, items, 1)
	assert.True(t, items[0].TimingCheck.Present)
}
