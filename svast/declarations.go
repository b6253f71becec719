package svast

import "github.com/hdlcore/svparse/svsyntax"

var (
	tagNetLvalue            = svsyntax.NewProductionTag("NetLvalue")
	tagVariableAssignment   = svsyntax.NewProductionTag("VariableAssignment")
	tagDriveStrength        = svsyntax.NewProductionTag("DriveStrength")
	tagDelay3               = svsyntax.NewProductionTag("Delay3")
	tagDelayControl         = svsyntax.NewProductionTag("DelayControl")
	tagDataTypeOrImplicit   = svsyntax.NewProductionTag("DataTypeOrImplicit")
	tagNetDeclaration       = svsyntax.NewProductionTag("NetDeclaration")
)

// NetLvalue is, at this grammar's scope, a (possibly selected)
// hierarchical identifier — the braced-concatenation alternative
// `{net_lvalue, ...}` from the full grammar is not implemented (no
// production in the supported family set produces it as an argument).
type NetLvalue struct {
	Ident  HierarchicalIdentifier
	Select Select
}

func (n NetLvalue) NodeKind() svsyntax.NodeKind { return KindNetLvalue }
func (n NetLvalue) Span() svsyntax.Span         { return childSpanOf(n.Ident, n.Select) }
func (n NetLvalue) Children() []svsyntax.Node   { return []svsyntax.Node{n.Ident, n.Select} }

func parseNetLvalue(c svsyntax.Cursor) (svsyntax.Cursor, NetLvalue, *svsyntax.Failure) {
	next, ident, fail := parseHierarchicalIdentifier(c)
	if fail != nil {
		return c, NetLvalue{}, fail
	}
	next, sel, fail := parseSelect(next)
	if fail != nil {
		return c, NetLvalue{}, fail
	}
	return next, NetLvalue{Ident: ident, Select: sel}, nil
}

// VariableAssignment is `variable_lvalue = expression`; variable_lvalue
// is syntactically identical to net_lvalue at this grammar's depth (both
// resolve to a selected hierarchical reference), so it is reused
// directly rather than duplicated as a distinct type.
type VariableAssignment struct {
	Lvalue NetLvalue
	Eq     svsyntax.Token
	Value  Expression
}

func (n VariableAssignment) NodeKind() svsyntax.NodeKind { return KindVariableAssignment }
func (n VariableAssignment) Span() svsyntax.Span         { return childSpanOf(n.Lvalue, n.Eq, n.Value) }
func (n VariableAssignment) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Lvalue, n.Eq, n.Value}
}

// variable_assignment is part of the left-recursive cluster in the
// standard grammar (variable_lvalue can bottom out through
// concatenation productions that re-enter it indirectly); it keeps the
// full Production wrapper even though NetLvalue never actually recurses
// through it here, so adding the concatenation alternative later
// doesn't require re-plumbing the memoization.
var variableAssignmentParser = svsyntax.Production(tagVariableAssignment, parseVariableAssignmentBody)

func parseVariableAssignmentBody(c svsyntax.Cursor) (svsyntax.Cursor, VariableAssignment, *svsyntax.Failure) {
	next, lv, fail := parseNetLvalue(c)
	if fail != nil {
		return c, VariableAssignment{}, fail
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, VariableAssignment{}, fail
	}
	next, val, fail := parseExpression(next)
	if fail != nil {
		return c, VariableAssignment{}, fail.WithConsumed(true)
	}
	return next, VariableAssignment{Lvalue: lv, Eq: eq, Value: val}, nil
}

// driveStrengthKeywords lists the strength keywords a drive_strength
// pair may name. Validating the cross-product of legal (strength0,
// strength1) pairs is a semantic check, not a syntactic one; any two
// strength keywords are accepted here.
var driveStrengthKeywords = []string{
	"supply0", "supply1", "strong0", "strong1", "pull0", "pull1",
	"weak0", "weak1", "highz0", "highz1",
}

// DriveStrength is `(strength0, strength1)`.
type DriveStrength struct {
	Paren svsyntax.Paren[svsyntax.List[svsyntax.Token]]
}

func (n DriveStrength) NodeKind() svsyntax.NodeKind { return KindDriveStrength }
func (n DriveStrength) Span() svsyntax.Span         { return n.Paren.Span() }
func (n DriveStrength) Children() []svsyntax.Node   { return []svsyntax.Node{n.Paren} }

func parseDriveStrength(c svsyntax.Cursor) (svsyntax.Cursor, DriveStrength, *svsyntax.Failure) {
	alts := make([]svsyntax.ParseFunc[svsyntax.Token], len(driveStrengthKeywords))
	for i, kw := range driveStrengthKeywords {
		alts[i] = svsyntax.Keyword(kw)
	}
	open, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, DriveStrength{}, fail
	}
	next, list, fail := svsyntax.SepBy(svsyntax.Alt(alts...), svsyntax.Symbol(","))(open)
	if fail != nil {
		return c, DriveStrength{}, fail.WithConsumed(true)
	}
	if len(list.Items) == 0 {
		return c, DriveStrength{}, c.Fail(svsyntax.FailSyntactic, "expected drive strength keyword", false)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, DriveStrength{}, fail.WithConsumed(true)
	}
	return next, DriveStrength{Paren: svsyntax.Paren[svsyntax.List[svsyntax.Token]]{Open: openTok, Value: list, Close: closeTok}}, nil
}

// Delay3 is `# delay_value`, delay_value simplified to a single constant
// expression (the full grammar's `delay_value : mintypmax3` alternative
// is out of scope).
type Delay3 struct {
	Hash  svsyntax.Token
	Value ConstantExpression
}

func (n Delay3) NodeKind() svsyntax.NodeKind { return KindDelay3 }
func (n Delay3) Span() svsyntax.Span         { return childSpanOf(n.Hash, n.Value) }
func (n Delay3) Children() []svsyntax.Node   { return []svsyntax.Node{n.Hash, n.Value} }

func parseDelay3(c svsyntax.Cursor) (svsyntax.Cursor, Delay3, *svsyntax.Failure) {
	next, hash, fail := svsyntax.Symbol("#")(c)
	if fail != nil {
		return c, Delay3{}, fail
	}
	next, val, fail := parseConstantExpression(next)
	if fail != nil {
		return c, Delay3{}, fail.WithConsumed(true)
	}
	return next, Delay3{Hash: hash, Value: val}, nil
}

// DelayControl is `# delay_value` or `# ( mintypmax_expression )`; the
// parenthesized alternative is modeled directly using Expression.
type DelayControl struct {
	Hash  svsyntax.Token
	Plain svsyntax.Optional[ConstantExpression]
	Paren svsyntax.Optional[svsyntax.Paren[*Expression]]
}

func (n DelayControl) NodeKind() svsyntax.NodeKind { return KindDelayControl }
func (n DelayControl) Span() svsyntax.Span         { return childSpanOf(n.Hash, n.Plain, n.Paren) }
func (n DelayControl) Children() []svsyntax.Node   { return []svsyntax.Node{n.Hash, n.Plain, n.Paren} }

func parseDelayControl(c svsyntax.Cursor) (svsyntax.Cursor, DelayControl, *svsyntax.Failure) {
	next, hash, fail := svsyntax.Symbol("#")(c)
	if fail != nil {
		return c, DelayControl{}, fail
	}
	if p, paren, fail := parseParenExpr(next); fail == nil {
		return p, DelayControl{Hash: hash, Paren: svsyntax.Optional[svsyntax.Paren[*Expression]]{Value: paren, Present: true}}, nil
	} else if fail.Consumed {
		return c, DelayControl{}, fail
	}
	next, val, fail := parseConstantExpression(next)
	if fail != nil {
		return c, DelayControl{}, fail.WithConsumed(true)
	}
	return next, DelayControl{Hash: hash, Plain: svsyntax.Optional[ConstantExpression]{Value: val, Present: true}}, nil
}

// netTypeKeywords lists the net_type keywords a net declaration may
// open with.
var netTypeKeywords = []string{
	"supply0", "supply1", "tri", "triand", "trior", "trireg",
	"tri0", "tri1", "uwire", "wire", "wand", "wor",
}

// dataTypeKeywords lists the integer/real data type keywords the
// explicit alternative of data_type_or_implicit recognizes.
var dataTypeKeywords = []string{
	"logic", "bit", "reg", "byte", "shortint", "int", "longint",
	"integer", "real", "time",
}

// ConstantRange is `[ msb : lsb ]`, the packed-dimension form.
type ConstantRange struct {
	Open  svsyntax.Token
	Msb   ConstantExpression
	Colon svsyntax.Token
	Lsb   ConstantExpression
	Close svsyntax.Token
}

func (n ConstantRange) NodeKind() svsyntax.NodeKind { return KindConstantRange }
func (n ConstantRange) Span() svsyntax.Span {
	return childSpanOf(n.Open, n.Msb, n.Colon, n.Lsb, n.Close)
}
func (n ConstantRange) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Open, n.Msb, n.Colon, n.Lsb, n.Close}
}

func parseConstantRange(c svsyntax.Cursor) (svsyntax.Cursor, ConstantRange, *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("[")(c)
	if fail != nil {
		return c, ConstantRange{}, fail
	}
	next, msb, fail := parseConstantExpression(next)
	if fail != nil {
		return c, ConstantRange{}, fail.WithConsumed(true)
	}
	next, colon, fail := svsyntax.Symbol(":")(next)
	if fail != nil {
		return c, ConstantRange{}, fail.WithConsumed(true)
	}
	next, lsb, fail := parseConstantExpression(next)
	if fail != nil {
		return c, ConstantRange{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol("]")(next)
	if fail != nil {
		return c, ConstantRange{}, fail.WithConsumed(true)
	}
	return next, ConstantRange{Open: openTok, Msb: msb, Colon: colon, Lsb: lsb, Close: closeTok}, nil
}

// DataTypeOrImplicit is the standard's ambiguous data_type_or_implicit:
// the explicit data-type alternative (a type keyword) is tried first;
// the implicit alternative — optional signing plus packed dimensions,
// legally empty — applies only when the explicit form fails without
// consuming. Once either alternative has consumed input, that choice is
// final: sticky-on-consume applies here exactly as inside Alt, so a
// partial, later-invalid explicit type is never silently reinterpreted
// as implicit.
type DataTypeOrImplicit struct {
	Type    svsyntax.Optional[svsyntax.Token]
	Signing svsyntax.Optional[svsyntax.Token]
	Dims    svsyntax.List[ConstantRange]
}

func (n DataTypeOrImplicit) NodeKind() svsyntax.NodeKind { return KindDataTypeOrImplicit }
func (n DataTypeOrImplicit) Span() svsyntax.Span {
	return childSpanOf(n.Type, n.Signing, n.Dims)
}
func (n DataTypeOrImplicit) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Type, n.Signing, n.Dims}
}

func parseDataTypeOrImplicit(c svsyntax.Cursor) (svsyntax.Cursor, DataTypeOrImplicit, *svsyntax.Failure) {
	alts := make([]svsyntax.ParseFunc[svsyntax.Token], len(dataTypeKeywords))
	for i, kw := range dataTypeKeywords {
		alts[i] = svsyntax.Keyword(kw)
	}
	next, typeOpt, fail := svsyntax.Opt(svsyntax.Alt(alts...))(c)
	if fail != nil {
		return c, DataTypeOrImplicit{}, fail
	}
	next, signing, fail := svsyntax.Opt(svsyntax.Alt(svsyntax.Keyword("signed"), svsyntax.Keyword("unsigned")))(next)
	if fail != nil {
		return c, DataTypeOrImplicit{}, fail
	}
	next, dims, fail := svsyntax.Many0(parseConstantRange)(next)
	if fail != nil {
		return c, DataTypeOrImplicit{}, fail
	}
	return next, DataTypeOrImplicit{Type: typeOpt, Signing: signing, Dims: dims}, nil
}

// NetDeclaration is `net_type data_type_or_implicit [delay3]
// list_of_net_identifiers ;` — the list-of-identifiers form; the
// list-of-declaration-assignments form (`net_type ... a = expr, b = expr ;`)
// is left for later since no supported scenario exercises it.
type NetDeclaration struct {
	NetType svsyntax.Token
	Type    DataTypeOrImplicit
	Delay   svsyntax.Optional[Delay3]
	Idents  svsyntax.List[Identifier]
	Semi    svsyntax.Token
}

func (n NetDeclaration) NodeKind() svsyntax.NodeKind { return KindNetDeclaration }
func (n NetDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.NetType, n.Type, n.Delay, n.Idents, n.Semi)
}
func (n NetDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.NetType, n.Type, n.Delay, n.Idents, n.Semi}
}

func parseNetDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, NetDeclaration, *svsyntax.Failure) {
	alts := make([]svsyntax.ParseFunc[svsyntax.Token], len(netTypeKeywords))
	for i, kw := range netTypeKeywords {
		alts[i] = svsyntax.Keyword(kw)
	}
	next, netType, fail := svsyntax.Alt(alts...)(c)
	if fail != nil {
		return c, NetDeclaration{}, fail
	}
	next, dtype, fail := parseDataTypeOrImplicit(next)
	if fail != nil {
		return c, NetDeclaration{}, fail.WithConsumed(true)
	}
	next, delay, fail := svsyntax.Opt(parseDelay3)(next)
	if fail != nil {
		return c, NetDeclaration{}, fail.WithConsumed(true)
	}
	next, idents, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, NetDeclaration{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, NetDeclaration{}, fail.WithConsumed(true)
	}
	return next, NetDeclaration{NetType: netType, Type: dtype, Delay: delay, Idents: idents, Semi: semi}, nil
}
