package svast

import "github.com/hdlcore/svparse/svsyntax"

// types.go is the parameter and type-declaration family: parameter /
// localparam declarations, and typedef over enum, struct/union, and
// keyword data types.
var (
	tagParameterDeclaration = svsyntax.NewProductionTag("ParameterDeclaration")
	tagTypeDeclaration      = svsyntax.NewProductionTag("TypeDeclaration")
)

// ParamAssignment is `identifier = constant_expression`.
type ParamAssignment struct {
	Name  Identifier
	Eq    svsyntax.Token
	Value ConstantExpression
}

func (n ParamAssignment) NodeKind() svsyntax.NodeKind { return KindParamAssignment }
func (n ParamAssignment) Span() svsyntax.Span         { return childSpanOf(n.Name, n.Eq, n.Value) }
func (n ParamAssignment) Children() []svsyntax.Node   { return []svsyntax.Node{n.Name, n.Eq, n.Value} }

func parseParamAssignment(c svsyntax.Cursor) (svsyntax.Cursor, ParamAssignment, *svsyntax.Failure) {
	next, name, fail := parseIdentifier(c)
	if fail != nil {
		return c, ParamAssignment{}, fail
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, ParamAssignment{}, fail
	}
	next, val, fail := parseConstantExpression(next)
	if fail != nil {
		return c, ParamAssignment{}, fail.WithConsumed(true)
	}
	return next, ParamAssignment{Name: name, Eq: eq, Value: val}, nil
}

// ParameterDeclaration is `(parameter|localparam) data_type_or_implicit
// param_assignment {, param_assignment} ;`.
type ParameterDeclaration struct {
	Kw    svsyntax.Token
	Type  DataTypeOrImplicit
	Items svsyntax.List[ParamAssignment]
	Semi  svsyntax.Token
}

func (n ParameterDeclaration) NodeKind() svsyntax.NodeKind { return KindParameterDeclaration }
func (n ParameterDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.Kw, n.Type, n.Items, n.Semi)
}
func (n ParameterDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Kw, n.Type, n.Items, n.Semi}
}

var parameterDeclarationParser = svsyntax.Production(tagParameterDeclaration, func(c svsyntax.Cursor) (svsyntax.Cursor, ParameterDeclaration, *svsyntax.Failure) {
	next, kw, fail := svsyntax.Alt(svsyntax.Keyword("parameter"), svsyntax.Keyword("localparam"))(c)
	if fail != nil {
		return c, ParameterDeclaration{}, fail
	}
	next, dtype, fail := parseDataTypeOrImplicit(next)
	if fail != nil {
		return c, ParameterDeclaration{}, fail.WithConsumed(true)
	}
	next, items, fail := svsyntax.SepBy(parseParamAssignment, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, ParameterDeclaration{}, fail.WithConsumed(true)
	}
	if len(items.Items) == 0 {
		return c, ParameterDeclaration{}, c.Fail(svsyntax.FailSyntactic, "expected parameter assignment", true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, ParameterDeclaration{}, fail.WithConsumed(true)
	}
	return next, ParameterDeclaration{Kw: kw, Type: dtype, Items: items, Semi: semi}, nil
})

// ParseParameterDeclaration is the exported entry point for the
// parameter_declaration / local_parameter_declaration productions.
func ParseParameterDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, ParameterDeclaration, *svsyntax.Failure) {
	return parameterDeclarationParser(c)
}

// EnumItemInit is the `= constant_expression` initializer of one
// enumeration name.
type EnumItemInit struct {
	Eq    svsyntax.Token
	Value ConstantExpression
}

func (n EnumItemInit) NodeKind() svsyntax.NodeKind { return KindEnumItemInit }
func (n EnumItemInit) Span() svsyntax.Span         { return childSpanOf(n.Eq, n.Value) }
func (n EnumItemInit) Children() []svsyntax.Node   { return []svsyntax.Node{n.Eq, n.Value} }

// EnumItem is `identifier [= constant_expression]`.
type EnumItem struct {
	Name Identifier
	Init svsyntax.Optional[EnumItemInit]
}

func (n EnumItem) NodeKind() svsyntax.NodeKind { return KindEnumItem }
func (n EnumItem) Span() svsyntax.Span         { return childSpanOf(n.Name, n.Init) }
func (n EnumItem) Children() []svsyntax.Node   { return []svsyntax.Node{n.Name, n.Init} }

func parseEnumItem(c svsyntax.Cursor) (svsyntax.Cursor, EnumItem, *svsyntax.Failure) {
	next, name, fail := parseIdentifier(c)
	if fail != nil {
		return c, EnumItem{}, fail
	}
	initClause := func(c svsyntax.Cursor) (svsyntax.Cursor, EnumItemInit, *svsyntax.Failure) {
		next, eq, fail := svsyntax.Symbol("=")(c)
		if fail != nil {
			return c, EnumItemInit{}, fail
		}
		next, val, fail := parseConstantExpression(next)
		if fail != nil {
			return c, EnumItemInit{}, fail.WithConsumed(true)
		}
		return next, EnumItemInit{Eq: eq, Value: val}, nil
	}
	next, init, fail := svsyntax.Opt(initClause)(next)
	if fail != nil {
		return c, EnumItem{}, fail
	}
	return next, EnumItem{Name: name, Init: init}, nil
}

// EnumType is `enum [base_type] { enum_item {, enum_item} }`.
type EnumType struct {
	EnumKw svsyntax.Token
	Base   DataTypeOrImplicit
	Items  svsyntax.Brace[svsyntax.List[EnumItem]]
}

func (n EnumType) NodeKind() svsyntax.NodeKind { return KindEnumType }
func (n EnumType) Span() svsyntax.Span         { return childSpanOf(n.EnumKw, n.Base, n.Items) }
func (n EnumType) Children() []svsyntax.Node   { return []svsyntax.Node{n.EnumKw, n.Base, n.Items} }

func parseEnumType(c svsyntax.Cursor) (svsyntax.Cursor, EnumType, *svsyntax.Failure) {
	next, enumKw, fail := svsyntax.Keyword("enum")(c)
	if fail != nil {
		return c, EnumType{}, fail
	}
	next, base, fail := parseDataTypeOrImplicit(next)
	if fail != nil {
		return c, EnumType{}, fail.WithConsumed(true)
	}
	next, openTok, fail := svsyntax.Symbol("{")(next)
	if fail != nil {
		return c, EnumType{}, fail.WithConsumed(true)
	}
	next, items, fail := svsyntax.SepBy(parseEnumItem, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, EnumType{}, fail.WithConsumed(true)
	}
	if len(items.Items) == 0 {
		return c, EnumType{}, c.Fail(svsyntax.FailSyntactic, "expected enumeration name", true)
	}
	next, closeTok, fail := svsyntax.Symbol("}")(next)
	if fail != nil {
		return c, EnumType{}, fail.WithConsumed(true)
	}
	return next, EnumType{
		EnumKw: enumKw, Base: base,
		Items: svsyntax.Brace[svsyntax.List[EnumItem]]{Open: openTok, Value: items, Close: closeTok},
	}, nil
}

// StructMember is `data_type_or_implicit identifier {, identifier} ;`.
type StructMember struct {
	Type   DataTypeOrImplicit
	Idents svsyntax.List[Identifier]
	Semi   svsyntax.Token
}

func (n StructMember) NodeKind() svsyntax.NodeKind { return KindStructMember }
func (n StructMember) Span() svsyntax.Span         { return childSpanOf(n.Type, n.Idents, n.Semi) }
func (n StructMember) Children() []svsyntax.Node   { return []svsyntax.Node{n.Type, n.Idents, n.Semi} }

func parseStructMember(c svsyntax.Cursor) (svsyntax.Cursor, StructMember, *svsyntax.Failure) {
	next, dtype, fail := parseDataTypeOrImplicit(c)
	if fail != nil {
		return c, StructMember{}, fail
	}
	next, idents, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, StructMember{}, fail
	}
	if len(idents.Items) == 0 {
		return c, StructMember{}, c.Fail(svsyntax.FailSyntactic, "expected member identifier", false)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, StructMember{}, fail.WithConsumed(true)
	}
	return next, StructMember{Type: dtype, Idents: idents, Semi: semi}, nil
}

// StructType is `(struct|union) [packed] { struct_member+ }`.
type StructType struct {
	Kw      svsyntax.Token
	Packed  svsyntax.Optional[svsyntax.Token]
	Members svsyntax.Brace[svsyntax.List[StructMember]]
}

func (n StructType) NodeKind() svsyntax.NodeKind { return KindStructType }
func (n StructType) Span() svsyntax.Span         { return childSpanOf(n.Kw, n.Packed, n.Members) }
func (n StructType) Children() []svsyntax.Node   { return []svsyntax.Node{n.Kw, n.Packed, n.Members} }

func parseStructType(c svsyntax.Cursor) (svsyntax.Cursor, StructType, *svsyntax.Failure) {
	next, kw, fail := svsyntax.Alt(svsyntax.Keyword("struct"), svsyntax.Keyword("union"))(c)
	if fail != nil {
		return c, StructType{}, fail
	}
	next, packed, fail := svsyntax.Opt(svsyntax.Keyword("packed"))(next)
	if fail != nil {
		return c, StructType{}, fail.WithConsumed(true)
	}
	next, openTok, fail := svsyntax.Symbol("{")(next)
	if fail != nil {
		return c, StructType{}, fail.WithConsumed(true)
	}
	next, members, fail := svsyntax.Many1(parseStructMember)(next)
	if fail != nil {
		return c, StructType{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol("}")(next)
	if fail != nil {
		return c, StructType{}, fail.WithConsumed(true)
	}
	return next, StructType{
		Kw: kw, Packed: packed,
		Members: svsyntax.Brace[svsyntax.List[StructMember]]{Open: openTok, Value: members, Close: closeTok},
	}, nil
}

// TypeDeclaration is `typedef (enum_type|struct_type|data_type)
// identifier ;`. The plain data-type alternative must actually consume a
// type (an empty implicit type would swallow the new type's name as the
// base type).
type TypeDeclaration struct {
	TypedefKw svsyntax.Token
	Enum      svsyntax.Optional[EnumType]
	Struct    svsyntax.Optional[StructType]
	Plain     svsyntax.Optional[DataTypeOrImplicit]
	Name      Identifier
	Semi      svsyntax.Token
}

func (n TypeDeclaration) NodeKind() svsyntax.NodeKind { return KindTypeDeclaration }
func (n TypeDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.TypedefKw, n.Enum, n.Struct, n.Plain, n.Name, n.Semi)
}
func (n TypeDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.TypedefKw, n.Enum, n.Struct, n.Plain, n.Name, n.Semi}
}

var typeDeclarationParser = svsyntax.Production(tagTypeDeclaration, parseTypeDeclarationBody)

func parseTypeDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, TypeDeclaration, *svsyntax.Failure) {
	next, typedefKw, fail := svsyntax.Keyword("typedef")(c)
	if fail != nil {
		return c, TypeDeclaration{}, fail
	}

	decl := TypeDeclaration{TypedefKw: typedefKw}
	if n, enum, fail := parseEnumType(next); fail == nil {
		next, decl.Enum = n, svsyntax.Optional[EnumType]{Value: enum, Present: true}
	} else if fail.Consumed {
		return c, TypeDeclaration{}, fail
	} else if n, st, fail := parseStructType(next); fail == nil {
		next, decl.Struct = n, svsyntax.Optional[StructType]{Value: st, Present: true}
	} else if fail.Consumed {
		return c, TypeDeclaration{}, fail
	} else {
		n, plain, fail := parseDataTypeOrImplicit(next)
		if fail != nil {
			return c, TypeDeclaration{}, fail.WithConsumed(true)
		}
		if !plain.Type.Present && len(plain.Dims.Items) == 0 && !plain.Signing.Present {
			return c, TypeDeclaration{}, next.Fail(svsyntax.FailSyntactic, "expected data type after typedef", true)
		}
		next, decl.Plain = n, svsyntax.Optional[DataTypeOrImplicit]{Value: plain, Present: true}
	}

	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, TypeDeclaration{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, TypeDeclaration{}, fail.WithConsumed(true)
	}
	decl.Name = name
	decl.Semi = semi
	return next, decl, nil
}

// ParseTypeDeclaration is the exported entry point for the
// type_declaration production.
func ParseTypeDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, TypeDeclaration, *svsyntax.Failure) {
	return typeDeclarationParser(c)
}
