package svast

import "github.com/hdlcore/svparse/svsyntax"

// sourcetext.go is the top-level structure: a module_item ordered
// choice over the declaration/statement families this grammar
// implements, the bodied declaration headers (module, interface,
// program, package, class), and the source_text root production that
// svsyntax.Run is handed as its entry point.
var (
	tagModuleItem           = svsyntax.NewProductionTag("ModuleItem")
	tagModuleDeclaration    = svsyntax.NewProductionTag("ModuleDeclaration")
	tagInterfaceDeclaration = svsyntax.NewProductionTag("InterfaceDeclaration")
	tagProgramDeclaration   = svsyntax.NewProductionTag("ProgramDeclaration")
	tagPackageDeclaration   = svsyntax.NewProductionTag("PackageDeclaration")
	tagClassDeclaration     = svsyntax.NewProductionTag("ClassDeclaration")
	tagSourceText           = svsyntax.NewProductionTag("SourceText")
	tagProceduralBlock      = svsyntax.NewProductionTag("ProceduralBlock")
)

// ProceduralBlock is `(initial|always|always_comb|always_ff|always_latch)
// statement` — the module-item form that gives every construct in
// statements.go a way to appear inside a module body.
type ProceduralBlock struct {
	Kw   svsyntax.Token
	Body Statement
}

func (n ProceduralBlock) NodeKind() svsyntax.NodeKind { return KindProceduralBlock }
func (n ProceduralBlock) Span() svsyntax.Span         { return childSpanOf(n.Kw, n.Body) }
func (n ProceduralBlock) Children() []svsyntax.Node   { return []svsyntax.Node{n.Kw, n.Body} }

var proceduralBlockParser = svsyntax.Production(tagProceduralBlock, parseProceduralBlockBody)

func parseProceduralBlockBody(c svsyntax.Cursor) (svsyntax.Cursor, ProceduralBlock, *svsyntax.Failure) {
	next, kw, fail := svsyntax.Alt(
		svsyntax.Keyword("always_comb"),
		svsyntax.Keyword("always_latch"),
		svsyntax.Keyword("always_ff"),
		svsyntax.Keyword("always"),
		svsyntax.Keyword("initial"),
	)(c)
	if fail != nil {
		return c, ProceduralBlock{}, fail
	}
	next, body, fail := statementParser(next)
	if fail != nil {
		return c, ProceduralBlock{}, fail.WithConsumed(true)
	}
	return next, ProceduralBlock{Kw: kw, Body: body}, nil
}

// ParseProceduralBlock is the exported entry point for the
// procedural_block production.
func ParseProceduralBlock(c svsyntax.Cursor) (svsyntax.Cursor, ProceduralBlock, *svsyntax.Failure) {
	return proceduralBlockParser(c)
}

// ModuleItem is the ordered choice over every module-body construct this
// grammar supports. The keyword-led alternatives never collide on their
// lead token, so their relative order carries no weight; the
// `(`-led path declarations do share a prefix and are ordered
// most-specific first (edge-sensitive before simple), with each staying
// backtrackable until its distinguishing token.
type ModuleItem struct {
	ContinuousAssign svsyntax.Optional[ContinuousAssign]
	NetAlias         svsyntax.Optional[NetAlias]
	NetDeclaration   svsyntax.Optional[NetDeclaration]
	Parameter        svsyntax.Optional[ParameterDeclaration]
	Typedef          svsyntax.Optional[TypeDeclaration]
	Constraint       svsyntax.Optional[ConstraintDeclaration]
	EdgePath         svsyntax.Optional[EdgeSensitivePathDeclaration]
	SimplePath       svsyntax.Optional[SimplePathDeclaration]
	StatePath        svsyntax.Optional[StateDependentPathDeclaration]
	TimingCheck      svsyntax.Optional[SystemTimingCheck]
	Procedural       svsyntax.Optional[ProceduralBlock]
}

func (n ModuleItem) NodeKind() svsyntax.NodeKind { return KindModuleItem }
func (n ModuleItem) Span() svsyntax.Span {
	return childSpanOf(n.ContinuousAssign, n.NetAlias, n.NetDeclaration, n.Parameter, n.Typedef, n.Constraint, n.EdgePath, n.SimplePath, n.StatePath, n.TimingCheck, n.Procedural)
}
func (n ModuleItem) Children() []svsyntax.Node {
	return []svsyntax.Node{n.ContinuousAssign, n.NetAlias, n.NetDeclaration, n.Parameter, n.Typedef, n.Constraint, n.EdgePath, n.SimplePath, n.StatePath, n.TimingCheck, n.Procedural}
}

var moduleItemParser = svsyntax.Production(tagModuleItem, parseModuleItemBody)

func parseModuleItemBody(c svsyntax.Cursor) (svsyntax.Cursor, ModuleItem, *svsyntax.Failure) {
	if next, v, fail := ParseProceduralBlock(c); fail == nil {
		return next, ModuleItem{Procedural: svsyntax.Optional[ProceduralBlock]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseNetAlias(c); fail == nil {
		return next, ModuleItem{NetAlias: svsyntax.Optional[NetAlias]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseContinuousAssign(c); fail == nil {
		return next, ModuleItem{ContinuousAssign: svsyntax.Optional[ContinuousAssign]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseParameterDeclaration(c); fail == nil {
		return next, ModuleItem{Parameter: svsyntax.Optional[ParameterDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseTypeDeclaration(c); fail == nil {
		return next, ModuleItem{Typedef: svsyntax.Optional[TypeDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseConstraintDeclaration(c); fail == nil {
		return next, ModuleItem{Constraint: svsyntax.Optional[ConstraintDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseStateDependentPathDeclaration(c); fail == nil {
		return next, ModuleItem{StatePath: svsyntax.Optional[StateDependentPathDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseEdgeSensitivePathDeclaration(c); fail == nil {
		return next, ModuleItem{EdgePath: svsyntax.Optional[EdgeSensitivePathDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseSimplePathDeclaration(c); fail == nil {
		return next, ModuleItem{SimplePath: svsyntax.Optional[SimplePathDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	if next, v, fail := ParseSystemTimingCheck(c); fail == nil {
		return next, ModuleItem{TimingCheck: svsyntax.Optional[SystemTimingCheck]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ModuleItem{}, fail
	}
	next, v, fail := parseNetDeclaration(c)
	if fail != nil {
		return c, ModuleItem{}, fail
	}
	return next, ModuleItem{NetDeclaration: svsyntax.Optional[NetDeclaration]{Value: v, Present: true}}, nil
}

// ModuleDeclaration is `module name ( [port, ...] ) ; { module_item } endmodule`
// — the port list is a plain identifier list (ANSI/non-ANSI port
// direction/type distinctions are a later-stage concern the declaration
// layer above already resolves per-net-declaration, not at the port-list
// site).
type ModuleDeclaration struct {
	ModuleKw svsyntax.Token
	Name     Identifier
	Ports    svsyntax.Optional[svsyntax.Paren[svsyntax.List[Identifier]]]
	Semi     svsyntax.Token
	Items    svsyntax.List[ModuleItem]
	EndKw    svsyntax.Token
}

func (n ModuleDeclaration) NodeKind() svsyntax.NodeKind { return KindModuleDeclaration }
func (n ModuleDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.ModuleKw, n.Name, n.Ports, n.Semi, n.Items, n.EndKw)
}
func (n ModuleDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.ModuleKw, n.Name, n.Ports, n.Semi, n.Items, n.EndKw}
}

var moduleDeclarationParser = svsyntax.Production(tagModuleDeclaration, parseModuleDeclarationBody)

func parsePortList(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Paren[svsyntax.List[Identifier]], *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, svsyntax.Paren[svsyntax.List[Identifier]]{}, fail
	}
	next, ports, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, svsyntax.Paren[svsyntax.List[Identifier]]{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, svsyntax.Paren[svsyntax.List[Identifier]]{}, fail.WithConsumed(true)
	}
	return next, svsyntax.Paren[svsyntax.List[Identifier]]{Open: openTok, Value: ports, Close: closeTok}, nil
}

// declParts is the shared shape of every `<kw> name [( ports )] ;
// { module_item } <endkw>` declaration; module, interface, and program
// differ only in their delimiter keywords, so one body parser feeds all
// three (and package, which takes no port list).
type declParts struct {
	Kw    svsyntax.Token
	Name  Identifier
	Ports svsyntax.Optional[svsyntax.Paren[svsyntax.List[Identifier]]]
	Semi  svsyntax.Token
	Items svsyntax.List[ModuleItem]
	EndKw svsyntax.Token
}

func parseBodiedDecl(open, end string, withPorts bool) svsyntax.ParseFunc[declParts] {
	return func(c svsyntax.Cursor) (svsyntax.Cursor, declParts, *svsyntax.Failure) {
		next, kw, fail := svsyntax.Keyword(open)(c)
		if fail != nil {
			return c, declParts{}, fail
		}
		next, name, fail := parseIdentifier(next)
		if fail != nil {
			return c, declParts{}, fail.WithConsumed(true)
		}
		var ports svsyntax.Optional[svsyntax.Paren[svsyntax.List[Identifier]]]
		if withPorts {
			next, ports, fail = svsyntax.Opt(parsePortList)(next)
			if fail != nil {
				return c, declParts{}, fail.WithConsumed(true)
			}
		}
		next, semi, fail := svsyntax.Symbol(";")(next)
		if fail != nil {
			return c, declParts{}, fail.WithConsumed(true)
		}
		next, items, fail := svsyntax.Many0(moduleItemParser)(next)
		if fail != nil {
			return c, declParts{}, fail.WithConsumed(true)
		}
		next, endKw, fail := svsyntax.Keyword(end)(next)
		if fail != nil {
			return c, declParts{}, fail.WithConsumed(true)
		}
		return next, declParts{Kw: kw, Name: name, Ports: ports, Semi: semi, Items: items, EndKw: endKw}, nil
	}
}

func parseModuleDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, ModuleDeclaration, *svsyntax.Failure) {
	next, parts, fail := parseBodiedDecl("module", "endmodule", true)(c)
	if fail != nil {
		return c, ModuleDeclaration{}, fail
	}
	return next, ModuleDeclaration{
		ModuleKw: parts.Kw, Name: parts.Name, Ports: parts.Ports, Semi: parts.Semi,
		Items: parts.Items, EndKw: parts.EndKw,
	}, nil
}

// ParseModuleDeclaration is the exported entry point for the
// module_declaration production.
func ParseModuleDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, ModuleDeclaration, *svsyntax.Failure) {
	return moduleDeclarationParser(c)
}

// InterfaceDeclaration is `interface name [( port, ... )] ;
// { module_item } endinterface`. The module_item choice is reused for
// the interface, program, package, and class bodies: the item families
// this grammar implements are common to all of them.
type InterfaceDeclaration struct {
	InterfaceKw svsyntax.Token
	Name        Identifier
	Ports       svsyntax.Optional[svsyntax.Paren[svsyntax.List[Identifier]]]
	Semi        svsyntax.Token
	Items       svsyntax.List[ModuleItem]
	EndKw       svsyntax.Token
}

func (n InterfaceDeclaration) NodeKind() svsyntax.NodeKind { return KindInterfaceDeclaration }
func (n InterfaceDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.InterfaceKw, n.Name, n.Ports, n.Semi, n.Items, n.EndKw)
}
func (n InterfaceDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.InterfaceKw, n.Name, n.Ports, n.Semi, n.Items, n.EndKw}
}

var interfaceDeclarationParser = svsyntax.Production(tagInterfaceDeclaration, func(c svsyntax.Cursor) (svsyntax.Cursor, InterfaceDeclaration, *svsyntax.Failure) {
	next, parts, fail := parseBodiedDecl("interface", "endinterface", true)(c)
	if fail != nil {
		return c, InterfaceDeclaration{}, fail
	}
	return next, InterfaceDeclaration{
		InterfaceKw: parts.Kw, Name: parts.Name, Ports: parts.Ports, Semi: parts.Semi,
		Items: parts.Items, EndKw: parts.EndKw,
	}, nil
})

// ParseInterfaceDeclaration is the exported entry point for the
// interface_declaration production.
func ParseInterfaceDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, InterfaceDeclaration, *svsyntax.Failure) {
	return interfaceDeclarationParser(c)
}

// ProgramDeclaration is `program name [( port, ... )] ; { module_item }
// endprogram`.
type ProgramDeclaration struct {
	ProgramKw svsyntax.Token
	Name      Identifier
	Ports     svsyntax.Optional[svsyntax.Paren[svsyntax.List[Identifier]]]
	Semi      svsyntax.Token
	Items     svsyntax.List[ModuleItem]
	EndKw     svsyntax.Token
}

func (n ProgramDeclaration) NodeKind() svsyntax.NodeKind { return KindProgramDeclaration }
func (n ProgramDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.ProgramKw, n.Name, n.Ports, n.Semi, n.Items, n.EndKw)
}
func (n ProgramDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.ProgramKw, n.Name, n.Ports, n.Semi, n.Items, n.EndKw}
}

var programDeclarationParser = svsyntax.Production(tagProgramDeclaration, func(c svsyntax.Cursor) (svsyntax.Cursor, ProgramDeclaration, *svsyntax.Failure) {
	next, parts, fail := parseBodiedDecl("program", "endprogram", true)(c)
	if fail != nil {
		return c, ProgramDeclaration{}, fail
	}
	return next, ProgramDeclaration{
		ProgramKw: parts.Kw, Name: parts.Name, Ports: parts.Ports, Semi: parts.Semi,
		Items: parts.Items, EndKw: parts.EndKw,
	}, nil
})

// ParseProgramDeclaration is the exported entry point for the
// program_declaration production.
func ParseProgramDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, ProgramDeclaration, *svsyntax.Failure) {
	return programDeclarationParser(c)
}

// PackageDeclaration is `package name ; { module_item } endpackage` —
// no port list.
type PackageDeclaration struct {
	PackageKw svsyntax.Token
	Name      Identifier
	Semi      svsyntax.Token
	Items     svsyntax.List[ModuleItem]
	EndKw     svsyntax.Token
}

func (n PackageDeclaration) NodeKind() svsyntax.NodeKind { return KindPackageDeclaration }
func (n PackageDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.PackageKw, n.Name, n.Semi, n.Items, n.EndKw)
}
func (n PackageDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.PackageKw, n.Name, n.Semi, n.Items, n.EndKw}
}

var packageDeclarationParser = svsyntax.Production(tagPackageDeclaration, func(c svsyntax.Cursor) (svsyntax.Cursor, PackageDeclaration, *svsyntax.Failure) {
	next, parts, fail := parseBodiedDecl("package", "endpackage", false)(c)
	if fail != nil {
		return c, PackageDeclaration{}, fail
	}
	return next, PackageDeclaration{
		PackageKw: parts.Kw, Name: parts.Name, Semi: parts.Semi,
		Items: parts.Items, EndKw: parts.EndKw,
	}, nil
})

// ParsePackageDeclaration is the exported entry point for the
// package_declaration production.
func ParsePackageDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, PackageDeclaration, *svsyntax.Failure) {
	return packageDeclarationParser(c)
}

// ClassExtends is the `extends base_class` clause of a class header.
type ClassExtends struct {
	ExtendsKw svsyntax.Token
	Base      Identifier
}

func (n ClassExtends) NodeKind() svsyntax.NodeKind { return KindClassExtends }
func (n ClassExtends) Span() svsyntax.Span         { return childSpanOf(n.ExtendsKw, n.Base) }
func (n ClassExtends) Children() []svsyntax.Node   { return []svsyntax.Node{n.ExtendsKw, n.Base} }

// ClassDeclaration is `class name [extends base] ; { module_item }
// endclass` — constraint declarations, the class items the supported
// scenarios exercise, come in through the shared module_item choice.
type ClassDeclaration struct {
	ClassKw svsyntax.Token
	Name    Identifier
	Extends svsyntax.Optional[ClassExtends]
	Semi    svsyntax.Token
	Items   svsyntax.List[ModuleItem]
	EndKw   svsyntax.Token
}

func (n ClassDeclaration) NodeKind() svsyntax.NodeKind { return KindClassDeclaration }
func (n ClassDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.ClassKw, n.Name, n.Extends, n.Semi, n.Items, n.EndKw)
}
func (n ClassDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.ClassKw, n.Name, n.Extends, n.Semi, n.Items, n.EndKw}
}

var classDeclarationParser = svsyntax.Production(tagClassDeclaration, parseClassDeclarationBody)

func parseClassDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, ClassDeclaration, *svsyntax.Failure) {
	next, classKw, fail := svsyntax.Keyword("class")(c)
	if fail != nil {
		return c, ClassDeclaration{}, fail
	}
	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, ClassDeclaration{}, fail.WithConsumed(true)
	}
	extendsClause := func(c svsyntax.Cursor) (svsyntax.Cursor, ClassExtends, *svsyntax.Failure) {
		next, extendsKw, fail := svsyntax.Keyword("extends")(c)
		if fail != nil {
			return c, ClassExtends{}, fail
		}
		next, base, fail := parseIdentifier(next)
		if fail != nil {
			return c, ClassExtends{}, fail.WithConsumed(true)
		}
		return next, ClassExtends{ExtendsKw: extendsKw, Base: base}, nil
	}
	next, extends, fail := svsyntax.Opt(extendsClause)(next)
	if fail != nil {
		return c, ClassDeclaration{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, ClassDeclaration{}, fail.WithConsumed(true)
	}
	next, items, fail := svsyntax.Many0(moduleItemParser)(next)
	if fail != nil {
		return c, ClassDeclaration{}, fail.WithConsumed(true)
	}
	next, endKw, fail := svsyntax.Keyword("endclass")(next)
	if fail != nil {
		return c, ClassDeclaration{}, fail.WithConsumed(true)
	}
	return next, ClassDeclaration{
		ClassKw: classKw, Name: name, Extends: extends, Semi: semi, Items: items, EndKw: endKw,
	}, nil
}

// ParseClassDeclaration is the exported entry point for the
// class_declaration production.
func ParseClassDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, ClassDeclaration, *svsyntax.Failure) {
	return classDeclarationParser(c)
}

// SourceText is the grammar's root production: a sequence of top-level
// declarations, collected per kind so declarations of different kinds
// can freely interleave in one file.
type SourceText struct {
	Modules    svsyntax.List[ModuleDeclaration]
	Interfaces svsyntax.List[InterfaceDeclaration]
	Programs   svsyntax.List[ProgramDeclaration]
	Packages   svsyntax.List[PackageDeclaration]
	Classes    svsyntax.List[ClassDeclaration]
	Configs    svsyntax.List[ConfigDeclaration]
	Primitives svsyntax.List[UdpDeclaration]
}

func (n SourceText) NodeKind() svsyntax.NodeKind { return KindSourceText }
func (n SourceText) Span() svsyntax.Span {
	return childSpanOf(n.Modules, n.Interfaces, n.Programs, n.Packages, n.Classes, n.Configs, n.Primitives)
}
func (n SourceText) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Modules, n.Interfaces, n.Programs, n.Packages, n.Classes, n.Configs, n.Primitives}
}

// topLevelDeclaration is a single top-level item, collapsed into
// SourceText's per-kind lists by ParseSourceText; kept unexported since
// svsyntax.Run's generic Root parameter needs one concrete node type
// and SourceText itself — not this intermediate — fills that role.
type topLevelDeclaration struct {
	Module    svsyntax.Optional[ModuleDeclaration]
	Interface svsyntax.Optional[InterfaceDeclaration]
	Program   svsyntax.Optional[ProgramDeclaration]
	Package   svsyntax.Optional[PackageDeclaration]
	Class     svsyntax.Optional[ClassDeclaration]
	Config    svsyntax.Optional[ConfigDeclaration]
	Primitive svsyntax.Optional[UdpDeclaration]
}

func (n topLevelDeclaration) NodeKind() svsyntax.NodeKind { return KindTopLevelDeclaration }
func (n topLevelDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.Module, n.Interface, n.Program, n.Package, n.Class, n.Config, n.Primitive)
}
func (n topLevelDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Module, n.Interface, n.Program, n.Package, n.Class, n.Config, n.Primitive}
}

// Every alternative opens with its own reserved keyword, so the choice
// order below carries no disambiguation weight; failures before the
// keyword never consume.
func parseTopLevelDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, topLevelDeclaration, *svsyntax.Failure) {
	if next, v, fail := ParseModuleDeclaration(c); fail == nil {
		return next, topLevelDeclaration{Module: svsyntax.Optional[ModuleDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, topLevelDeclaration{}, fail
	}
	if next, v, fail := ParseInterfaceDeclaration(c); fail == nil {
		return next, topLevelDeclaration{Interface: svsyntax.Optional[InterfaceDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, topLevelDeclaration{}, fail
	}
	if next, v, fail := ParseProgramDeclaration(c); fail == nil {
		return next, topLevelDeclaration{Program: svsyntax.Optional[ProgramDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, topLevelDeclaration{}, fail
	}
	if next, v, fail := ParsePackageDeclaration(c); fail == nil {
		return next, topLevelDeclaration{Package: svsyntax.Optional[PackageDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, topLevelDeclaration{}, fail
	}
	if next, v, fail := ParseClassDeclaration(c); fail == nil {
		return next, topLevelDeclaration{Class: svsyntax.Optional[ClassDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, topLevelDeclaration{}, fail
	}
	if next, v, fail := ParseConfigDeclaration(c); fail == nil {
		return next, topLevelDeclaration{Config: svsyntax.Optional[ConfigDeclaration]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, topLevelDeclaration{}, fail
	}
	next, v, fail := ParseUdpDeclaration(c)
	if fail != nil {
		return c, topLevelDeclaration{}, fail
	}
	return next, topLevelDeclaration{Primitive: svsyntax.Optional[UdpDeclaration]{Value: v, Present: true}}, nil
}

var sourceTextParser = svsyntax.Production(tagSourceText, parseSourceTextBody)

func parseSourceTextBody(c svsyntax.Cursor) (svsyntax.Cursor, SourceText, *svsyntax.Failure) {
	next, items, fail := svsyntax.Many0(parseTopLevelDeclaration)(c)
	if fail != nil {
		return c, SourceText{}, fail
	}
	var out SourceText
	for _, item := range items.Items {
		switch {
		case item.Module.Present:
			out.Modules.Items = append(out.Modules.Items, item.Module.Value)
		case item.Interface.Present:
			out.Interfaces.Items = append(out.Interfaces.Items, item.Interface.Value)
		case item.Program.Present:
			out.Programs.Items = append(out.Programs.Items, item.Program.Value)
		case item.Package.Present:
			out.Packages.Items = append(out.Packages.Items, item.Package.Value)
		case item.Class.Present:
			out.Classes.Items = append(out.Classes.Items, item.Class.Value)
		case item.Config.Present:
			out.Configs.Items = append(out.Configs.Items, item.Config.Value)
		case item.Primitive.Present:
			out.Primitives.Items = append(out.Primitives.Items, item.Primitive.Value)
		}
	}
	return next, out, nil
}

// ParseSourceText is the exported root entry point, suitable as the
// entry ParseFunc passed to svsyntax.Run.
func ParseSourceText(c svsyntax.Cursor) (svsyntax.Cursor, SourceText, *svsyntax.Failure) {
	return sourceTextParser(c)
}

// Parse runs the full grammar over src under the given language version
// and options, returning a lossless SourceText root or the
// furthest-reached Failure.
func Parse(src []byte, file svsyntax.FileRef, version svsyntax.Version, opts svsyntax.ParseOptions) (SourceText, *svsyntax.Failure) {
	return svsyntax.Run(src, file, version, opts, ParseSourceText)
}

// ParseWithKeywords is Parse with an explicit, possibly overridden
// KeywordSet (built via svsyntax.KeywordOverrides.Apply), for callers
// parsing a vendor dialect with non-default reserved words.
func ParseWithKeywords(src []byte, file svsyntax.FileRef, ks *svsyntax.KeywordSet, opts svsyntax.ParseOptions) (SourceText, *svsyntax.Failure) {
	return svsyntax.RunWithKeywords(src, file, ks, opts, ParseSourceText)
}
