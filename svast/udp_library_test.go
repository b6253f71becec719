package svast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlcore/svparse/svsyntax"
)

func TestUdpDeclarationCombinational(t *testing.T) {
	src := "primitive mux (out, a, b, sel);\n" +
		"output out;\n" +
		"input a, b, sel;\n" +
		"table\n" +
		"  0 1 0 : 0;\n" +
		"  1 0 1 : 1;\n" +
		"  x 1 0 : 0;\n" +
		"endtable\n" +
		"endprimitive"
	c := parseCursor(src)
	next, udp, fail := ParseUdpDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "mux", udp.Name.Name())
	require.Len(t, udp.Ports.Value.Items, 4)
	require.Len(t, udp.PortDecls.Items, 2)
	assert.Equal(t, "output", udp.PortDecls.Items[0].DirectionKw.Raw())
	require.Len(t, udp.PortDecls.Items[1].Idents.Items, 3)
	assert.False(t, udp.Init.Present)
	require.Len(t, udp.Entries.Items, 3)

	// First row: three level symbols, a colon, and the output value.
	row := udp.Entries.Items[0]
	require.Len(t, row.Symbols.Items, 5)
	assert.Equal(t, ":", row.Symbols.Items[3].Raw())
	assert.Equal(t, src, udp.Span().String())
}

func TestUdpDeclarationSequentialInitial(t *testing.T) {
	src := "primitive dff (q, clk, d);\n" +
		"output q;\n" +
		"reg q;\n" +
		"input clk, d;\n" +
		"initial q = 0;\n" +
		"table\n" +
		"  r 0 : ? : 0;\n" +
		"  r 1 : ? : 1;\n" +
		"endtable\n" +
		"endprimitive"
	c := parseCursor(src)
	next, udp, fail := ParseUdpDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	require.True(t, udp.Init.Present)
	assert.Equal(t, "q", udp.Init.Value.Name.Name())
	assert.Equal(t, "0", udp.Init.Value.Value.Raw())
	require.Len(t, udp.Entries.Items, 2)
}

func TestConfigDeclaration(t *testing.T) {
	src := "config cfg1;\n  design rtl.top;\nendconfig"
	c := parseCursor(src)
	next, cfg, fail := ParseConfigDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "cfg1", cfg.Name.Name())
	require.Len(t, cfg.Design.Cells.Items, 1)
	assert.Equal(t, "rtl.top", cfg.Design.Cells.Items[0].Name())
	assert.Equal(t, src, cfg.Span().String())
}

func TestLibraryDeclaration(t *testing.T) {
	src := `library rtl "top.v", "cells.v";`
	c := parseCursor(src)
	next, lib, fail := ParseLibraryDeclaration(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, "rtl", lib.Name.Name())
	require.Len(t, lib.Paths.Items, 2)
	assert.Equal(t, `"top.v"`, lib.Paths.Items[0].Raw())
	assert.Equal(t, src, lib.Span().String())
}

func TestIncludeStatement(t *testing.T) {
	c := parseCursor(`include "site.map";`)
	next, inc, fail := ParseIncludeStatement(c)
	require.Nil(t, fail)
	require.True(t, next.AtEnd())
	assert.Equal(t, `"site.map"`, inc.Path.Raw())
}

func TestLibraryDescriptionDispatch(t *testing.T) {
	cases := []struct {
		src  string
		pick func(d LibraryDescription) bool
	}{
		{`library l "a.v";`, func(d LibraryDescription) bool { return d.Library.Present }},
		{`include "m.map";`, func(d LibraryDescription) bool { return d.Include.Present }},
		{"config c;\n design top;\nendconfig", func(d LibraryDescription) bool { return d.Config.Present }},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			c := parseCursor(tc.src)
			next, d, fail := ParseLibraryDescription(c)
			require.Nil(t, fail)
			require.True(t, next.AtEnd())
			assert.True(t, tc.pick(d))
		})
	}
}

// Top-level declarations of different kinds interleave freely in one
// source text.
func TestSourceTextMixedTopLevelDeclarations(t *testing.T) {
	src := "module m ();\n  assign a = b;\nendmodule\n" +
		"config cfg1;\n  design m;\nendconfig\n" +
		"primitive buf1 (out, in);\ntable\n  0 : 0;\n  1 : 1;\nendtable\nendprimitive\n"
	root, fail := Parse([]byte(src), svsyntax.FileRef("t.sv"), svsyntax.V2017, svsyntax.ParseOptions{})
	require.Nil(t, fail)
	assert.Len(t, root.Modules.Items, 1)
	assert.Len(t, root.Configs.Items, 1)
	assert.Len(t, root.Primitives.Items, 1)
}
