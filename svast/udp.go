package svast

import "github.com/hdlcore/svparse/svsyntax"

// udp.go is the user-defined-primitive declaration —
// `primitive name ( port, ... ) ; { port_decl } [initial ...] table
// entry ; ... endtable endprimitive` — with the table body kept as raw
// symbol rows (see UdpTableEntry).
var (
	tagUdpDeclaration = svsyntax.NewProductionTag("UdpDeclaration")
	tagUdpTableEntry  = svsyntax.NewProductionTag("UdpTableEntry")
	tagUdpPortDecl    = svsyntax.NewProductionTag("UdpPortDecl")
)

// UdpTableEntry is one row of a UDP table: a run of non-semicolon,
// non-brace table symbols (level/edge/output values) terminated by `;`.
// The symbol alphabet (0, 1, x, ?, -, b, r, f, p, n, *, :) is lexed as
// ordinary numbers/identifiers/symbols and kept verbatim rather than
// validated, since table-row legality is a semantic property of the UDP
// kind (combinational vs. sequential), not of the syntax.
type UdpTableEntry struct {
	Symbols svsyntax.List[svsyntax.Token]
	Semi    svsyntax.Token
}

func (n UdpTableEntry) NodeKind() svsyntax.NodeKind { return KindUdpTableEntry }
func (n UdpTableEntry) Span() svsyntax.Span         { return childSpanOf(n.Symbols, n.Semi) }
func (n UdpTableEntry) Children() []svsyntax.Node   { return []svsyntax.Node{n.Symbols, n.Semi} }

func udpTableSymbol(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Token, *svsyntax.Failure) {
	return svsyntax.Alt(svsyntax.AnyIdentifier, svsyntax.AnyNumber, svsyntax.Symbol(":"), svsyntax.Symbol("*"), svsyntax.Symbol("-"), svsyntax.Symbol("?"))(c)
}

func parseUdpTableEntry(c svsyntax.Cursor) (svsyntax.Cursor, UdpTableEntry, *svsyntax.Failure) {
	next, symbols, fail := svsyntax.Many1(udpTableSymbol)(c)
	if fail != nil {
		return c, UdpTableEntry{}, fail
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, UdpTableEntry{}, fail.WithConsumed(true)
	}
	return next, UdpTableEntry{Symbols: symbols, Semi: semi}, nil
}

// UdpPortDecl is `(input|output|reg) identifier {, identifier} ;` inside
// a primitive body.
type UdpPortDecl struct {
	DirectionKw svsyntax.Token
	Idents      svsyntax.List[Identifier]
	Semi        svsyntax.Token
}

func (n UdpPortDecl) NodeKind() svsyntax.NodeKind { return KindUdpPortDecl }
func (n UdpPortDecl) Span() svsyntax.Span {
	return childSpanOf(n.DirectionKw, n.Idents, n.Semi)
}
func (n UdpPortDecl) Children() []svsyntax.Node {
	return []svsyntax.Node{n.DirectionKw, n.Idents, n.Semi}
}

func parseUdpPortDecl(c svsyntax.Cursor) (svsyntax.Cursor, UdpPortDecl, *svsyntax.Failure) {
	next, dir, fail := svsyntax.Alt(
		svsyntax.Keyword("input"),
		svsyntax.Keyword("output"),
		svsyntax.Keyword("reg"),
	)(c)
	if fail != nil {
		return c, UdpPortDecl{}, fail
	}
	next, idents, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, UdpPortDecl{}, fail.WithConsumed(true)
	}
	if len(idents.Items) == 0 {
		return c, UdpPortDecl{}, c.Fail(svsyntax.FailSyntactic, "expected port identifier", true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, UdpPortDecl{}, fail.WithConsumed(true)
	}
	return next, UdpPortDecl{DirectionKw: dir, Idents: idents, Semi: semi}, nil
}

// UdpInitialStatement is `initial identifier = number ;`, the optional
// power-up value of a sequential primitive's output register.
type UdpInitialStatement struct {
	InitialKw svsyntax.Token
	Name      Identifier
	Eq        svsyntax.Token
	Value     svsyntax.Token
	Semi      svsyntax.Token
}

func (n UdpInitialStatement) NodeKind() svsyntax.NodeKind { return KindUdpInitialStatement }
func (n UdpInitialStatement) Span() svsyntax.Span {
	return childSpanOf(n.InitialKw, n.Name, n.Eq, n.Value, n.Semi)
}
func (n UdpInitialStatement) Children() []svsyntax.Node {
	return []svsyntax.Node{n.InitialKw, n.Name, n.Eq, n.Value, n.Semi}
}

func parseUdpInitialStatement(c svsyntax.Cursor) (svsyntax.Cursor, UdpInitialStatement, *svsyntax.Failure) {
	next, initialKw, fail := svsyntax.Keyword("initial")(c)
	if fail != nil {
		return c, UdpInitialStatement{}, fail
	}
	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, UdpInitialStatement{}, fail.WithConsumed(true)
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, UdpInitialStatement{}, fail.WithConsumed(true)
	}
	next, val, fail := svsyntax.AnyNumber(next)
	if fail != nil {
		return c, UdpInitialStatement{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, UdpInitialStatement{}, fail.WithConsumed(true)
	}
	return next, UdpInitialStatement{InitialKw: initialKw, Name: name, Eq: eq, Value: val, Semi: semi}, nil
}

// UdpDeclaration is `primitive name ( list_of_udp_port_identifiers ) ;
// { udp_port_declaration } [udp_initial_statement] table
// { udp_table_entry } endtable endprimitive`.
type UdpDeclaration struct {
	PrimitiveKw svsyntax.Token
	Name        Identifier
	Ports       svsyntax.Paren[svsyntax.List[Identifier]]
	Semi1       svsyntax.Token
	PortDecls   svsyntax.List[UdpPortDecl]
	Init        svsyntax.Optional[UdpInitialStatement]
	TableKw     svsyntax.Token
	Entries     svsyntax.List[UdpTableEntry]
	EndtableKw  svsyntax.Token
	EndprimKw   svsyntax.Token
}

func (n UdpDeclaration) NodeKind() svsyntax.NodeKind { return KindUdpDeclaration }
func (n UdpDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.PrimitiveKw, n.Name, n.Ports, n.Semi1, n.PortDecls, n.Init, n.TableKw, n.Entries, n.EndtableKw, n.EndprimKw)
}
func (n UdpDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.PrimitiveKw, n.Name, n.Ports, n.Semi1, n.PortDecls, n.Init, n.TableKw, n.Entries, n.EndtableKw, n.EndprimKw}
}

var udpDeclarationParser = svsyntax.Production(tagUdpDeclaration, parseUdpDeclarationBody)

func parseUdpDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, UdpDeclaration, *svsyntax.Failure) {
	next, primKw, fail := svsyntax.Keyword("primitive")(c)
	if fail != nil {
		return c, UdpDeclaration{}, fail
	}
	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, openTok, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, ports, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, semi1, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, portDecls, fail := svsyntax.Many0(parseUdpPortDecl)(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, initStmt, fail := svsyntax.Opt(parseUdpInitialStatement)(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, tableKw, fail := svsyntax.Keyword("table")(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, entries, fail := svsyntax.Many1(parseUdpTableEntry)(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, endtableKw, fail := svsyntax.Keyword("endtable")(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	next, endprimKw, fail := svsyntax.Keyword("endprimitive")(next)
	if fail != nil {
		return c, UdpDeclaration{}, fail.WithConsumed(true)
	}
	return next, UdpDeclaration{
		PrimitiveKw: primKw, Name: name,
		Ports:      svsyntax.Paren[svsyntax.List[Identifier]]{Open: openTok, Value: ports, Close: closeTok},
		Semi1:      semi1, PortDecls: portDecls, Init: initStmt,
		TableKw:    tableKw, Entries: entries,
		EndtableKw: endtableKw, EndprimKw: endprimKw,
	}, nil
}

// ParseUdpDeclaration is the exported entry point for the
// udp_declaration production.
func ParseUdpDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, UdpDeclaration, *svsyntax.Failure) {
	return udpDeclarationParser(c)
}
