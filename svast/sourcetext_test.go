package svast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlcore/svparse/svsyntax"
)

func TestInterfaceDeclaration(t *testing.T) {
	src := "interface bus_if (clk, data);\n  wire [7:0] data;\nendinterface"
	c := parseCursor(src)
	next, iface, fail := ParseInterfaceDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "bus_if", iface.Name.Name())
	require.True(t, iface.Ports.Present)
	require.Len(t, iface.Items.Items, 1)
	assert.True(t, iface.Items.Items[0].NetDeclaration.Present)
	assert.Equal(t, src, iface.Span().String())
}

func TestPackageDeclaration(t *testing.T) {
	src := "package pkg;\n  wire w;\nendpackage"
	c := parseCursor(src)
	next, pkg, fail := ParsePackageDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "pkg", pkg.Name.Name())
	require.Len(t, pkg.Items.Items, 1)
}

func TestProgramDeclaration(t *testing.T) {
	src := "program tb (clk);\n  initial a = 0;\nendprogram"
	c := parseCursor(src)
	next, prog, fail := ParseProgramDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "tb", prog.Name.Name())
	require.Len(t, prog.Items.Items, 1)
	assert.True(t, prog.Items.Items[0].Procedural.Present)
}

func TestClassDeclarationWithExtendsAndConstraint(t *testing.T) {
	src := "class packet extends base_packet;\n" +
		"  constraint legal { len > 0; }\n" +
		"endclass"
	c := parseCursor(src)
	next, cls, fail := ParseClassDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "packet", cls.Name.Name())
	require.True(t, cls.Extends.Present)
	assert.Equal(t, "base_packet", cls.Extends.Value.Base.Name())
	require.Len(t, cls.Items.Items, 1)
	assert.True(t, cls.Items.Items[0].Constraint.Present)
}

func TestSourceTextCollectsAllDeclarationKinds(t *testing.T) {
	src := "package pkg;\nendpackage\n" +
		"interface i;\nendinterface\n" +
		"class c;\nendclass\n" +
		"module m ();\nendmodule\n" +
		"program p;\nendprogram\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	assert.Len(t, root.Packages.Items, 1)
	assert.Len(t, root.Interfaces.Items, 1)
	assert.Len(t, root.Classes.Items, 1)
	assert.Len(t, root.Modules.Items, 1)
	assert.Len(t, root.Programs.Items, 1)
}
