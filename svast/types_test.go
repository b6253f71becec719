package svast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlcore/svparse/svsyntax"
)

func TestParameterDeclaration(t *testing.T) {
	c := parseCursor("parameter WIDTH = 8, DEPTH = 16;")
	next, decl, fail := ParseParameterDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "parameter", decl.Kw.Raw())
	require.Len(t, decl.Items.Items, 2)
	assert.Equal(t, "WIDTH", decl.Items.Items[0].Name.Name())
	assert.Equal(t, "DEPTH", decl.Items.Items[1].Name.Name())
}

func TestLocalparamWithType(t *testing.T) {
	c := parseCursor("localparam int COUNT = 4;")
	next, decl, fail := ParseParameterDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "localparam", decl.Kw.Raw())
	require.True(t, decl.Type.Type.Present)
	assert.Equal(t, "int", decl.Type.Type.Value.Raw())
}

func TestTypedefEnum(t *testing.T) {
	src := "typedef enum logic [1:0] { IDLE = 0, RUN, DONE } state_t;"
	c := parseCursor(src)
	next, decl, fail := ParseTypeDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Enum.Present)
	assert.Equal(t, "state_t", decl.Name.Name())

	items := decl.Enum.Value.Items.Value.Items
	require.Len(t, items, 3)
	assert.Equal(t, "IDLE", items[0].Name.Name())
	assert.True(t, items[0].Init.Present)
	assert.False(t, items[1].Init.Present)
	assert.Equal(t, src, decl.Span().String())
}

func TestTypedefPackedStruct(t *testing.T) {
	src := "typedef struct packed { logic [7:0] addr; logic valid; } req_t;"
	c := parseCursor(src)
	next, decl, fail := ParseTypeDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Struct.Present)
	assert.True(t, decl.Struct.Value.Packed.Present)
	require.Len(t, decl.Struct.Value.Members.Value.Items, 2)
	assert.Equal(t, "req_t", decl.Name.Name())
}

func TestTypedefPlainDataType(t *testing.T) {
	c := parseCursor("typedef logic [3:0] nibble_t;")
	next, decl, fail := ParseTypeDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, decl.Plain.Present)
	assert.Equal(t, "nibble_t", decl.Name.Name())
}

func TestParameterAndTypedefInsideModule(t *testing.T) {
	src := "module m ();\n" +
		"  parameter W = 4;\n" +
		"  typedef enum { A, B } ab_t;\n" +
		"  wire [3:0] x;\n" +
		"endmodule\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	require.Len(t, root.Modules.Items, 1)

	items := root.Modules.Items[0].Items.Items
	require.Len(t, items, 3)
	assert.True(t, items[0].Parameter.Present)
	assert.True(t, items[1].Typedef.Present)
	assert.True(t, items[2].NetDeclaration.Present)
}
