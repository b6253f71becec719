package svast

import "github.com/hdlcore/svparse/svsyntax"

// library.go is the library-binding family: the library-map-file
// productions (library declarations, include statements) and the
// in-source config declaration. The liblist / cell-mapping rule
// productions are out of scope; the design statement is the one config
// item every supported scenario's config blocks actually use.
var (
	tagConfigDeclaration  = svsyntax.NewProductionTag("ConfigDeclaration")
	tagLibraryDeclaration = svsyntax.NewProductionTag("LibraryDeclaration")
	tagIncludeStatement   = svsyntax.NewProductionTag("IncludeStatement")
)

// DesignStatement is `design { [library .] cell_identifier } ;` — the
// library-qualifier prefix collapses into the cell identifier itself
// (hierarchical_identifier already tolerates a dotted prefix).
type DesignStatement struct {
	DesignKw svsyntax.Token
	Cells    svsyntax.List[HierarchicalIdentifier]
	Semi     svsyntax.Token
}

func (n DesignStatement) NodeKind() svsyntax.NodeKind { return KindDesignStatement }
func (n DesignStatement) Span() svsyntax.Span         { return childSpanOf(n.DesignKw, n.Cells, n.Semi) }
func (n DesignStatement) Children() []svsyntax.Node {
	return []svsyntax.Node{n.DesignKw, n.Cells, n.Semi}
}

func parseDesignStatement(c svsyntax.Cursor) (svsyntax.Cursor, DesignStatement, *svsyntax.Failure) {
	next, designKw, fail := svsyntax.Keyword("design")(c)
	if fail != nil {
		return c, DesignStatement{}, fail
	}
	next, cells, fail := svsyntax.Many0(parseHierarchicalIdentifier)(next)
	if fail != nil {
		return c, DesignStatement{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, DesignStatement{}, fail.WithConsumed(true)
	}
	return next, DesignStatement{DesignKw: designKw, Cells: cells, Semi: semi}, nil
}

// ConfigDeclaration is `config name ; design_statement endconfig`.
type ConfigDeclaration struct {
	ConfigKw svsyntax.Token
	Name     Identifier
	Semi     svsyntax.Token
	Design   DesignStatement
	EndKw    svsyntax.Token
}

func (n ConfigDeclaration) NodeKind() svsyntax.NodeKind { return KindConfigDeclaration }
func (n ConfigDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.ConfigKw, n.Name, n.Semi, n.Design, n.EndKw)
}
func (n ConfigDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.ConfigKw, n.Name, n.Semi, n.Design, n.EndKw}
}

var configDeclarationParser = svsyntax.Production(tagConfigDeclaration, parseConfigDeclarationBody)

func parseConfigDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, ConfigDeclaration, *svsyntax.Failure) {
	next, configKw, fail := svsyntax.Keyword("config")(c)
	if fail != nil {
		return c, ConfigDeclaration{}, fail
	}
	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, ConfigDeclaration{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, ConfigDeclaration{}, fail.WithConsumed(true)
	}
	next, design, fail := parseDesignStatement(next)
	if fail != nil {
		return c, ConfigDeclaration{}, fail.WithConsumed(true)
	}
	next, endKw, fail := svsyntax.Keyword("endconfig")(next)
	if fail != nil {
		return c, ConfigDeclaration{}, fail.WithConsumed(true)
	}
	return next, ConfigDeclaration{ConfigKw: configKw, Name: name, Semi: semi, Design: design, EndKw: endKw}, nil
}

// ParseConfigDeclaration is the exported entry point for the
// config_declaration production.
func ParseConfigDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, ConfigDeclaration, *svsyntax.Failure) {
	return configDeclarationParser(c)
}

// libraryPathToken is a file-path spec in a library map, simplified to a
// string literal or an identifier-shaped path — shell-style glob paths
// (`./rtl/*.v`) belong to the external driver's file loading, not to
// this byte-stream grammar.
func libraryPathToken(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Token, *svsyntax.Failure) {
	return svsyntax.Alt(svsyntax.AnyString, svsyntax.AnyIdentifier)(c)
}

// LibraryDeclaration is `library identifier file_path {, file_path} ;`.
type LibraryDeclaration struct {
	LibraryKw svsyntax.Token
	Name      Identifier
	Paths     svsyntax.List[svsyntax.Token]
	Semi      svsyntax.Token
}

func (n LibraryDeclaration) NodeKind() svsyntax.NodeKind { return KindLibraryDeclaration }
func (n LibraryDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.LibraryKw, n.Name, n.Paths, n.Semi)
}
func (n LibraryDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.LibraryKw, n.Name, n.Paths, n.Semi}
}

var libraryDeclarationParser = svsyntax.Production(tagLibraryDeclaration, func(c svsyntax.Cursor) (svsyntax.Cursor, LibraryDeclaration, *svsyntax.Failure) {
	next, libraryKw, fail := svsyntax.Keyword("library")(c)
	if fail != nil {
		return c, LibraryDeclaration{}, fail
	}
	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, LibraryDeclaration{}, fail.WithConsumed(true)
	}
	next, paths, fail := svsyntax.SepBy(libraryPathToken, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, LibraryDeclaration{}, fail.WithConsumed(true)
	}
	if len(paths.Items) == 0 {
		return c, LibraryDeclaration{}, c.Fail(svsyntax.FailSyntactic, "expected at least one file path", true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, LibraryDeclaration{}, fail.WithConsumed(true)
	}
	return next, LibraryDeclaration{LibraryKw: libraryKw, Name: name, Paths: paths, Semi: semi}, nil
})

// ParseLibraryDeclaration is the exported entry point for the
// library_declaration production.
func ParseLibraryDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, LibraryDeclaration, *svsyntax.Failure) {
	return libraryDeclarationParser(c)
}

// IncludeStatement is `include file_path ;` (library map form).
type IncludeStatement struct {
	IncludeKw svsyntax.Token
	Path      svsyntax.Token
	Semi      svsyntax.Token
}

func (n IncludeStatement) NodeKind() svsyntax.NodeKind { return KindIncludeStatement }
func (n IncludeStatement) Span() svsyntax.Span {
	return childSpanOf(n.IncludeKw, n.Path, n.Semi)
}
func (n IncludeStatement) Children() []svsyntax.Node {
	return []svsyntax.Node{n.IncludeKw, n.Path, n.Semi}
}

var includeStatementParser = svsyntax.Production(tagIncludeStatement, func(c svsyntax.Cursor) (svsyntax.Cursor, IncludeStatement, *svsyntax.Failure) {
	next, includeKw, fail := svsyntax.Keyword("include")(c)
	if fail != nil {
		return c, IncludeStatement{}, fail
	}
	next, path, fail := libraryPathToken(next)
	if fail != nil {
		return c, IncludeStatement{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, IncludeStatement{}, fail.WithConsumed(true)
	}
	return next, IncludeStatement{IncludeKw: includeKw, Path: path, Semi: semi}, nil
})

// ParseIncludeStatement is the exported entry point for the
// include_statement production.
func ParseIncludeStatement(c svsyntax.Cursor) (svsyntax.Cursor, IncludeStatement, *svsyntax.Failure) {
	return includeStatementParser(c)
}

// LibraryDescription is one item of a library map file: a library
// declaration, an include statement, or a config declaration.
type LibraryDescription struct {
	Library svsyntax.Optional[LibraryDeclaration]
	Include svsyntax.Optional[IncludeStatement]
	Config  svsyntax.Optional[ConfigDeclaration]
}

func (n LibraryDescription) NodeKind() svsyntax.NodeKind { return KindLibraryDescription }
func (n LibraryDescription) Span() svsyntax.Span {
	return childSpanOf(n.Library, n.Include, n.Config)
}
func (n LibraryDescription) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Library, n.Include, n.Config}
}

// ParseLibraryDescription is the exported entry point for the
// library_description production. All three alternatives open with
// their own keyword.
func ParseLibraryDescription(c svsyntax.Cursor) (svsyntax.Cursor, LibraryDescription, *svsyntax.Failure) {
	if next, v, fail := ParseLibraryDeclaration(c); fail == nil {
		return next, LibraryDescription{Library: svsyntax.Optional[LibraryDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, LibraryDescription{}, fail
	}
	if next, v, fail := ParseIncludeStatement(c); fail == nil {
		return next, LibraryDescription{Include: svsyntax.Optional[IncludeStatement]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, LibraryDescription{}, fail
	}
	next, v, fail := ParseConfigDeclaration(c)
	if fail != nil {
		return c, LibraryDescription{}, fail
	}
	return next, LibraryDescription{Config: svsyntax.Optional[ConfigDeclaration]{Value: v, Present: true}}, nil
}
