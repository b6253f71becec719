// Package svast is the concrete syntax tree and grammar layer built on
// top of svsyntax's combinator framework: one file per production
// family, each production a record or sum node type plus its parsing
// function, kept mechanically close to the BNF of the standard.
package svast

import (
	"strings"

	"github.com/hdlcore/svparse/svsyntax"
)

var (
	tagIdentifier             = svsyntax.NewProductionTag("Identifier")
	tagHierarchicalIdentifier = svsyntax.NewProductionTag("HierarchicalIdentifier")
	tagSelect                 = svsyntax.NewProductionTag("Select")
	tagPrimary                = svsyntax.NewProductionTag("Primary")
	tagUnaryExpression        = svsyntax.NewProductionTag("UnaryExpression")
	tagBinaryExpression       = svsyntax.NewProductionTag("BinaryExpression")
	tagExpression             = svsyntax.NewProductionTag("Expression")
	tagConstantExpression     = svsyntax.NewProductionTag("ConstantExpression")
)

const (
	KindIdentifier svsyntax.NodeKind = svsyntax.KindProductionBase + iota
	KindHierarchicalIdentifier
	KindSelect
	KindPrimary
	KindUnaryExpression
	KindBinaryExpression
	KindExpression
	KindParenExpression
	KindContinuousAssign
	KindContinuousAssignNet
	KindContinuousAssignVariable
	KindListOfNetAssignments
	KindListOfVariableAssignments
	KindNetAlias
	KindNetAssignment
	KindVariableAssignment
	KindNetLvalue
	KindDriveStrength
	KindDelay3
	KindDelayControl
	KindConstraintDeclaration
	KindConstraintBlock
	KindConstraintBlockItemSolve
	KindSolveBeforeList
	KindConstraintPrimary
	KindConstraintExpressionExpression
	KindConstraintExpressionArrow
	KindConstraintExpressionIf
	KindConstraintExpressionForeach
	KindConstraintExpressionDisable
	KindUniquenessConstraint
	KindConstraintSetBrace
	KindDistItem
	KindDistWeight
	KindPathDelayValue
	KindPathDelayValueParen
	KindListOfPathDelayExpressions
	KindEdgeSensitivePathDeclaration
	KindParallelEdgeSensitivePathDescription
	KindFullEdgeSensitivePathDescription
	KindDataSourceExpression
	KindEdgeIdentifier
	KindPolarityOperator
	KindStateDependentPathDeclaration
	KindUdpDeclaration
	KindUdpTableEntry
	KindConfigDeclaration
	KindDesignStatement
	KindModuleDeclaration
	KindModuleItem
	KindSourceText
	KindDataTypeOrImplicit
	KindNetDeclaration
	KindConstraintBlockItem
	KindConstraintExpressionSum
	KindExpressionOrDist
	KindDistClause
	KindConstraintSetElse
	KindConstraintSet
	KindBlockingAssignment
	KindNonblockingAssignment
	KindProceduralAssignmentStatement
	KindSeqBlock
	KindJumpStatement
	KindEventExpression
	KindEventExpressionItem
	KindEventControl
	KindProceduralTimingControlStatement
	KindConditionalStatement
	KindStatementElse
	KindCaseItem
	KindCaseStatement
	KindForInitItem
	KindLoopStatement
	KindNullStatement
	KindStatement
	KindLabeledColon
	KindReturnJump
	KindDisableJump
	KindForeverLoop
	KindCondLoop
	KindForLoop
	KindProceduralBlock
	KindTopLevelDeclaration
	KindConstantRange
	KindInterfaceDeclaration
	KindProgramDeclaration
	KindPackageDeclaration
	KindClassDeclaration
	KindClassExtends
	KindLibraryDeclaration
	KindIncludeStatement
	KindLibraryDescription
	KindUdpPortDecl
	KindUdpInitialStatement
	KindParamAssignment
	KindParameterDeclaration
	KindEnumItemInit
	KindEnumItem
	KindEnumType
	KindStructMember
	KindStructType
	KindTypeDeclaration
	KindParallelPathDescription
	KindFullPathDescription
	KindSimplePathDeclaration
	KindTimingCheckEvent
	KindTimingCheckNotifier
	KindSystemTimingCheck
)

// Identifier is a leaf wrapping any identifier-shaped token (plain,
// escaped, or system) — one struct rather than three, since
// svsyntax.Token already carries the distinction via its TokenKind.
type Identifier struct {
	Tok svsyntax.Token
}

func (n Identifier) Span() svsyntax.Span          { return n.Tok.Span() }
func (n Identifier) NodeKind() svsyntax.NodeKind   { return KindIdentifier }
func (n Identifier) Children() []svsyntax.Node     { return []svsyntax.Node{n.Tok} }
func (n Identifier) Name() string                  { return n.Tok.Raw() }

func parseIdentifier(c svsyntax.Cursor) (svsyntax.Cursor, Identifier, *svsyntax.Failure) {
	next, tok, fail := svsyntax.AnyIdentifier(c)
	if fail != nil {
		return c, Identifier{}, fail
	}
	return next, Identifier{Tok: tok}, nil
}

// HierarchicalIdentifier is a dot-separated chain of identifiers
// (pkg::sub.field style scoping is handled one level up by consumers
// that need it), kept as a flat list: the full grammar's optional
// bit-selects between segments are out of scope for the supported
// production families.
type HierarchicalIdentifier struct {
	Segments svsyntax.List[Identifier]
}

func (n HierarchicalIdentifier) Span() svsyntax.Span        { return n.Segments.Span() }
func (n HierarchicalIdentifier) NodeKind() svsyntax.NodeKind { return KindHierarchicalIdentifier }
func (n HierarchicalIdentifier) Children() []svsyntax.Node   { return []svsyntax.Node{n.Segments} }

// Name renders the dot-joined segment chain, e.g. "pkg.sub.field".
func (n HierarchicalIdentifier) Name() string {
	parts := make([]string, len(n.Segments.Items))
	for i, seg := range n.Segments.Items {
		parts[i] = seg.Name()
	}
	return strings.Join(parts, ".")
}

func parseHierarchicalIdentifier(c svsyntax.Cursor) (svsyntax.Cursor, HierarchicalIdentifier, *svsyntax.Failure) {
	next, list, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol("."))(c)
	if fail != nil {
		return c, HierarchicalIdentifier{}, fail
	}
	if len(list.Items) == 0 {
		// SepBy tolerates an empty match; an identifier chain must not,
		// or every expression production above it would accept a
		// zero-width match.
		return c, HierarchicalIdentifier{}, c.Fail(svsyntax.FailSyntactic, "expected identifier", false)
	}
	return next, HierarchicalIdentifier{Segments: list}, nil
}

// Select is the optional bit-/part-select suffix `[expr]` or
// `[expr:expr]` following a hierarchical identifier.
type Select struct {
	Bracket svsyntax.Optional[svsyntax.Bracket[*Expression]]
}

func (n Select) Span() svsyntax.Span {
	if !n.Bracket.Present {
		return svsyntax.Span{}
	}
	return n.Bracket.Value.Span()
}
func (n Select) NodeKind() svsyntax.NodeKind { return KindSelect }
func (n Select) Children() []svsyntax.Node   { return []svsyntax.Node{n.Bracket} }

func parseSelect(c svsyntax.Cursor) (svsyntax.Cursor, Select, *svsyntax.Failure) {
	open := func(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Bracket[*Expression], *svsyntax.Failure) {
		o, openTok, fail := svsyntax.Symbol("[")(c)
		if fail != nil {
			return c, svsyntax.Bracket[*Expression]{}, fail
		}
		o, expr, fail := parseExpression(o)
		if fail != nil {
			return c, svsyntax.Bracket[*Expression]{}, fail.WithConsumed(true)
		}
		o, closeTok, fail := svsyntax.Symbol("]")(o)
		if fail != nil {
			return c, svsyntax.Bracket[*Expression]{}, fail.WithConsumed(true)
		}
		return o, svsyntax.Bracket[*Expression]{Open: openTok, Value: &expr, Close: closeTok}, nil
	}
	next, opt, fail := svsyntax.Opt(open)(c)
	if fail != nil {
		return c, Select{}, fail
	}
	return next, Select{Bracket: opt}, nil
}

// Primary is the leaf level of the expression grammar: a number, string,
// or a (possibly selected) hierarchical identifier, or a parenthesized
// sub-expression.
type Primary struct {
	Number     svsyntax.Optional[svsyntax.Token]
	String     svsyntax.Optional[svsyntax.Token]
	Ident      svsyntax.Optional[HierarchicalIdentifier]
	Select     Select
	Paren      svsyntax.Optional[svsyntax.Paren[*Expression]]
}

func (n Primary) NodeKind() svsyntax.NodeKind { return KindPrimary }
func (n Primary) Span() svsyntax.Span {
	return childSpanOf(n.Number, n.String, n.Ident, n.Select, n.Paren)
}
func (n Primary) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Number, n.String, n.Ident, n.Select, n.Paren}
}

func parsePrimary(c svsyntax.Cursor) (svsyntax.Cursor, Primary, *svsyntax.Failure) {
	if next, paren, fail := parseParenExpr(c); fail == nil {
		return next, Primary{Paren: svsyntax.Optional[svsyntax.Paren[*Expression]]{Value: paren, Present: true}}, nil
	} else if fail.Consumed {
		return c, Primary{}, fail
	}
	if next, tok, fail := svsyntax.AnyNumber(c); fail == nil {
		return next, Primary{Number: svsyntax.Optional[svsyntax.Token]{Value: tok, Present: true}}, nil
	}
	if next, tok, fail := svsyntax.AnyString(c); fail == nil {
		return next, Primary{String: svsyntax.Optional[svsyntax.Token]{Value: tok, Present: true}}, nil
	}
	next, ident, fail := parseHierarchicalIdentifier(c)
	if fail != nil {
		return c, Primary{}, fail
	}
	next, sel, fail := parseSelect(next)
	if fail != nil {
		return c, Primary{}, fail
	}
	return next, Primary{Ident: svsyntax.Optional[HierarchicalIdentifier]{Value: ident, Present: true}, Select: sel}, nil
}

func parseParenExpr(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Paren[*Expression], *svsyntax.Failure) {
	open, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, svsyntax.Paren[*Expression]{}, fail
	}
	next, expr, fail := parseExpression(open)
	if fail != nil {
		return c, svsyntax.Paren[*Expression]{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, svsyntax.Paren[*Expression]{}, fail.WithConsumed(true)
	}
	return next, svsyntax.Paren[*Expression]{Open: openTok, Value: &expr, Close: closeTok}, nil
}

var unaryOps = []string{"!", "~", "-", "+", "&", "|", "^"}

// UnaryExpression is an optional prefix operator applied to a Primary.
type UnaryExpression struct {
	Op      svsyntax.Optional[svsyntax.Token]
	Operand Primary
}

func (n UnaryExpression) Span() svsyntax.Span        { return childSpanOf(n.Op, n.Operand) }
func (n UnaryExpression) NodeKind() svsyntax.NodeKind { return KindUnaryExpression }
func (n UnaryExpression) Children() []svsyntax.Node   { return []svsyntax.Node{n.Op, n.Operand} }

func parseUnaryExpression(c svsyntax.Cursor) (svsyntax.Cursor, UnaryExpression, *svsyntax.Failure) {
	opAlts := make([]svsyntax.ParseFunc[svsyntax.Token], len(unaryOps))
	for i, op := range unaryOps {
		opAlts[i] = svsyntax.Symbol(op)
	}
	next, opOpt, fail := svsyntax.Opt(svsyntax.Alt(opAlts...))(c)
	if fail != nil {
		return c, UnaryExpression{}, fail
	}
	next, primary, fail := parsePrimary(next)
	if fail != nil {
		return c, UnaryExpression{}, fail
	}
	return next, UnaryExpression{Op: opOpt, Operand: primary}, nil
}

var binaryOps = []string{
	"**", "*", "/", "%", "+", "-", "<<<", ">>>", "<<", ">>",
	"<=", ">=", "<", ">", "===", "!==", "==?", "!=?", "==", "!=",
	"&&&", "&&", "||", "->", "<->", "&", "|", "^~", "~^", "^",
}

// BinaryExpression is a left-associative chain of UnaryExpression
// operands separated by binary operators. The grammar's natural
// left-recursive shape (binary_expression := binary_expression op
// unary_expression | unary_expression) is expressed directly rather
// than hand-rewritten into an iterative precedence-climb; the
// seed-parse/grow machinery in the Production wrapper makes it
// terminate.
type BinaryExpression struct {
	Left  svsyntax.Optional[*BinaryExpression]
	Op    svsyntax.Optional[svsyntax.Token]
	Right UnaryExpression
}

func (n BinaryExpression) Span() svsyntax.Span {
	if n.Left.Present {
		return svsyntax.Union(n.Left.Value.Span(), n.Right.Span())
	}
	return n.Right.Span()
}
func (n BinaryExpression) NodeKind() svsyntax.NodeKind { return KindBinaryExpression }
func (n BinaryExpression) Children() []svsyntax.Node {
	if n.Left.Present {
		return []svsyntax.Node{n.Left.Value, n.Op, n.Right}
	}
	return []svsyntax.Node{n.Right}
}

// binaryExpressionParser is bound in init(): its body re-enters the
// parser by name (that is the left recursion), which Go's package
// initialization would reject as a cycle if written as a direct var
// initializer.
var binaryExpressionParser svsyntax.ParseFunc[BinaryExpression]

func init() {
	binaryExpressionParser = svsyntax.Production(tagBinaryExpression, parseBinaryExpressionBody)
}

func parseBinaryExpressionBody(c svsyntax.Cursor) (svsyntax.Cursor, BinaryExpression, *svsyntax.Failure) {
	recurse := func(c svsyntax.Cursor) (svsyntax.Cursor, BinaryExpression, *svsyntax.Failure) {
		next, left, fail := binaryExpressionParser(c)
		if fail != nil {
			return c, BinaryExpression{}, fail
		}
		opAlts := make([]svsyntax.ParseFunc[svsyntax.Token], len(binaryOps))
		for i, op := range binaryOps {
			opAlts[i] = svsyntax.Symbol(op)
		}
		next, opTok, fail := svsyntax.Alt(opAlts...)(next)
		if fail != nil {
			return c, BinaryExpression{}, fail
		}
		next, right, fail := parseUnaryExpression(next)
		if fail != nil {
			return c, BinaryExpression{}, fail.WithConsumed(true)
		}
		leftCopy := left
		return next, BinaryExpression{
			Left:  svsyntax.Optional[*BinaryExpression]{Value: &leftCopy, Present: true},
			Op:    svsyntax.Optional[svsyntax.Token]{Value: opTok, Present: true},
			Right: right,
		}, nil
	}
	base := func(c svsyntax.Cursor) (svsyntax.Cursor, BinaryExpression, *svsyntax.Failure) {
		next, right, fail := parseUnaryExpression(c)
		if fail != nil {
			return c, BinaryExpression{}, fail
		}
		return next, BinaryExpression{Right: right}, nil
	}
	return svsyntax.Alt(recurse, base)(c)
}

// Expression is the grammar's top-level expression production — a thin
// wrapper over BinaryExpression, since there is only one expression
// family at this grammar's depth.
type Expression struct {
	Inner BinaryExpression
}

func (n Expression) Span() svsyntax.Span        { return n.Inner.Span() }
func (n Expression) NodeKind() svsyntax.NodeKind { return KindExpression }
func (n Expression) Children() []svsyntax.Node   { return []svsyntax.Node{n.Inner} }

func parseExpression(c svsyntax.Cursor) (svsyntax.Cursor, Expression, *svsyntax.Failure) {
	next, inner, fail := binaryExpressionParser(c)
	if fail != nil {
		return c, Expression{}, fail
	}
	return next, Expression{Inner: inner}, nil
}

// ConstantExpression is, at this grammar's level of detail, the same
// production as Expression — the standard's "no hierarchical
// references, no calls" restriction on constant expressions is a
// semantic-analysis concern, not a syntactic one.
type ConstantExpression = Expression

func parseConstantExpression(c svsyntax.Cursor) (svsyntax.Cursor, ConstantExpression, *svsyntax.Failure) {
	return parseExpression(c)
}
