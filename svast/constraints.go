package svast

import "github.com/hdlcore/svparse/svsyntax"

// constraints.go is the random-constraint grammar family: constraint
// declarations, constraint blocks, solve-before ordering, expression /
// uniqueness / implication / if-else / foreach / disable-soft constraint
// forms, and dist weights. Two simplifications relative to the full
// standard grammar, each noted at its type: the class-scope prefix of a
// constraint primary is dropped, and loop_variables collapse to a plain
// identifier list.

var (
	tagConstraintDeclaration   = svsyntax.NewProductionTag("ConstraintDeclaration")
	tagConstraintBlockItem     = svsyntax.NewProductionTag("ConstraintBlockItem")
	tagConstraintExpression    = svsyntax.NewProductionTag("ConstraintExpression")
	tagConstraintSet           = svsyntax.NewProductionTag("ConstraintSet")
	tagDistItem                = svsyntax.NewProductionTag("DistItem")
)

// ConstraintDeclaration is `[static] constraint identifier constraint_block`.
type ConstraintDeclaration struct {
	Static       svsyntax.Optional[svsyntax.Token]
	ConstraintKw svsyntax.Token
	Name         Identifier
	Block        ConstraintBlock
}

func (n ConstraintDeclaration) NodeKind() svsyntax.NodeKind { return KindConstraintDeclaration }
func (n ConstraintDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.Static, n.ConstraintKw, n.Name, n.Block)
}
func (n ConstraintDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Static, n.ConstraintKw, n.Name, n.Block}
}

// ConstraintBlock is `{ constraint_block_item* }`.
type ConstraintBlock struct {
	Brace svsyntax.Brace[svsyntax.List[ConstraintBlockItem]]
}

func (n ConstraintBlock) NodeKind() svsyntax.NodeKind { return KindConstraintBlock }
func (n ConstraintBlock) Span() svsyntax.Span         { return n.Brace.Span() }
func (n ConstraintBlock) Children() []svsyntax.Node   { return []svsyntax.Node{n.Brace} }

// ConstraintBlockItem is either a `solve ... before ...;` ordering
// directive or a ConstraintExpression.
type ConstraintBlockItem struct {
	Solve      svsyntax.Optional[ConstraintBlockItemSolve]
	Expression svsyntax.Optional[ConstraintExpression]
}

func (n ConstraintBlockItem) NodeKind() svsyntax.NodeKind { return KindConstraintBlockItem }
func (n ConstraintBlockItem) Span() svsyntax.Span         { return childSpanOf(n.Solve, n.Expression) }
func (n ConstraintBlockItem) Children() []svsyntax.Node   { return []svsyntax.Node{n.Solve, n.Expression} }

type ConstraintBlockItemSolve struct {
	SolveKw  svsyntax.Token
	Before1  SolveBeforeList
	BeforeKw svsyntax.Token
	Before2  SolveBeforeList
	Semi     svsyntax.Token
}

func (n ConstraintBlockItemSolve) NodeKind() svsyntax.NodeKind { return KindConstraintBlockItemSolve }
func (n ConstraintBlockItemSolve) Span() svsyntax.Span {
	return childSpanOf(n.SolveKw, n.Before1, n.BeforeKw, n.Before2, n.Semi)
}
func (n ConstraintBlockItemSolve) Children() []svsyntax.Node {
	return []svsyntax.Node{n.SolveKw, n.Before1, n.BeforeKw, n.Before2, n.Semi}
}

type SolveBeforeList struct {
	Items svsyntax.List[ConstraintPrimary]
}

func (n SolveBeforeList) NodeKind() svsyntax.NodeKind { return KindSolveBeforeList }
func (n SolveBeforeList) Span() svsyntax.Span         { return n.Items.Span() }
func (n SolveBeforeList) Children() []svsyntax.Node   { return []svsyntax.Node{n.Items} }

// ConstraintPrimary is a hierarchical reference with an optional select
// (the class-scope prefix from the full standard grammar is dropped,
// see file doc comment).
type ConstraintPrimary struct {
	Ident  HierarchicalIdentifier
	Select Select
}

func (n ConstraintPrimary) NodeKind() svsyntax.NodeKind { return KindConstraintPrimary }
func (n ConstraintPrimary) Span() svsyntax.Span         { return childSpanOf(n.Ident, n.Select) }
func (n ConstraintPrimary) Children() []svsyntax.Node   { return []svsyntax.Node{n.Ident, n.Select} }

func parseConstraintPrimary(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintPrimary, *svsyntax.Failure) {
	next, ident, fail := parseHierarchicalIdentifier(c)
	if fail != nil {
		return c, ConstraintPrimary{}, fail
	}
	next, sel, fail := parseSelect(next)
	if fail != nil {
		return c, ConstraintPrimary{}, fail
	}
	return next, ConstraintPrimary{Ident: ident, Select: sel}, nil
}

// ConstraintExpression is a sum of six alternative shapes, represented
// as a struct with at most one Optional field Present — the same
// convention as ContinuousAssign.
type ConstraintExpression struct {
	Expr       svsyntax.Optional[ConstraintExpressionExpression]
	Uniqueness svsyntax.Optional[ConstraintExpressionUniqueness]
	Arrow      svsyntax.Optional[ConstraintExpressionArrow]
	If         svsyntax.Optional[ConstraintExpressionIf]
	Foreach    svsyntax.Optional[ConstraintExpressionForeach]
	Disable    svsyntax.Optional[ConstraintExpressionDisable]
}

func (n ConstraintExpression) NodeKind() svsyntax.NodeKind { return KindConstraintExpressionSum }
func (n ConstraintExpression) Span() svsyntax.Span {
	return childSpanOf(n.Expr, n.Uniqueness, n.Arrow, n.If, n.Foreach, n.Disable)
}
func (n ConstraintExpression) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Expr, n.Uniqueness, n.Arrow, n.If, n.Foreach, n.Disable}
}

type ConstraintExpressionExpression struct {
	Soft  svsyntax.Optional[svsyntax.Token]
	Value ExpressionOrDist
	Semi  svsyntax.Token
}

func (n ConstraintExpressionExpression) NodeKind() svsyntax.NodeKind {
	return KindConstraintExpressionExpression
}
func (n ConstraintExpressionExpression) Span() svsyntax.Span {
	return childSpanOf(n.Soft, n.Value, n.Semi)
}
func (n ConstraintExpressionExpression) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Soft, n.Value, n.Semi}
}

// ExpressionOrDist is `expression [dist { dist_list }]`.
type ExpressionOrDist struct {
	Value Expression
	Dist  svsyntax.Optional[DistClause]
}

func (n ExpressionOrDist) NodeKind() svsyntax.NodeKind { return KindExpressionOrDist }
func (n ExpressionOrDist) Span() svsyntax.Span         { return childSpanOf(n.Value, n.Dist) }
func (n ExpressionOrDist) Children() []svsyntax.Node   { return []svsyntax.Node{n.Value, n.Dist} }

type DistClause struct {
	DistKw svsyntax.Token
	Brace  svsyntax.Brace[svsyntax.List[DistItem]]
}

func (n DistClause) NodeKind() svsyntax.NodeKind { return KindDistClause }
func (n DistClause) Span() svsyntax.Span         { return childSpanOf(n.DistKw, n.Brace) }
func (n DistClause) Children() []svsyntax.Node   { return []svsyntax.Node{n.DistKw, n.Brace} }

type DistItem struct {
	Range  Expression
	Weight svsyntax.Optional[DistWeight]
}

func (n DistItem) NodeKind() svsyntax.NodeKind { return KindDistItem }
func (n DistItem) Span() svsyntax.Span         { return childSpanOf(n.Range, n.Weight) }
func (n DistItem) Children() []svsyntax.Node   { return []svsyntax.Node{n.Range, n.Weight} }

// DistWeight is `:= expression` or `:/ expression`.
type DistWeight struct {
	Op    svsyntax.Token
	Value Expression
}

func (n DistWeight) NodeKind() svsyntax.NodeKind { return KindDistWeight }
func (n DistWeight) Span() svsyntax.Span         { return childSpanOf(n.Op, n.Value) }
func (n DistWeight) Children() []svsyntax.Node   { return []svsyntax.Node{n.Op, n.Value} }

func parseDistWeight(c svsyntax.Cursor) (svsyntax.Cursor, DistWeight, *svsyntax.Failure) {
	next, op, fail := svsyntax.Alt(svsyntax.Symbol(":="), svsyntax.Symbol(":/"))(c)
	if fail != nil {
		return c, DistWeight{}, fail
	}
	next, val, fail := parseExpression(next)
	if fail != nil {
		return c, DistWeight{}, fail.WithConsumed(true)
	}
	return next, DistWeight{Op: op, Value: val}, nil
}

var distItemParser = svsyntax.Production(tagDistItem, func(c svsyntax.Cursor) (svsyntax.Cursor, DistItem, *svsyntax.Failure) {
	next, rng, fail := parseExpression(c)
	if fail != nil {
		return c, DistItem{}, fail
	}
	next, weight, fail := svsyntax.Opt(parseDistWeight)(next)
	if fail != nil {
		return c, DistItem{}, fail.WithConsumed(true)
	}
	return next, DistItem{Range: rng, Weight: weight}, nil
})

func parseExpressionOrDist(c svsyntax.Cursor) (svsyntax.Cursor, ExpressionOrDist, *svsyntax.Failure) {
	next, val, fail := parseExpression(c)
	if fail != nil {
		return c, ExpressionOrDist{}, fail
	}
	distClause := func(c svsyntax.Cursor) (svsyntax.Cursor, DistClause, *svsyntax.Failure) {
		next, distKw, fail := svsyntax.Keyword("dist")(c)
		if fail != nil {
			return c, DistClause{}, fail
		}
		next, openTok, fail := svsyntax.Symbol("{")(next)
		if fail != nil {
			return c, DistClause{}, fail.WithConsumed(true)
		}
		next, items, fail := svsyntax.SepBy(distItemParser, svsyntax.Symbol(","))(next)
		if fail != nil {
			return c, DistClause{}, fail.WithConsumed(true)
		}
		next, closeTok, fail := svsyntax.Symbol("}")(next)
		if fail != nil {
			return c, DistClause{}, fail.WithConsumed(true)
		}
		return next, DistClause{DistKw: distKw, Brace: svsyntax.Brace[svsyntax.List[DistItem]]{Open: openTok, Value: items, Close: closeTok}}, nil
	}
	next, dist, fail := svsyntax.Opt(distClause)(next)
	if fail != nil {
		return c, ExpressionOrDist{}, fail
	}
	return next, ExpressionOrDist{Value: val, Dist: dist}, nil
}

// ConstraintExpressionUniqueness is `unique { open_range_list } ;`.
type ConstraintExpressionUniqueness struct {
	UniqueKw svsyntax.Token
	Brace    svsyntax.Brace[svsyntax.List[Expression]]
	Semi     svsyntax.Token
}

func (n ConstraintExpressionUniqueness) NodeKind() svsyntax.NodeKind { return KindUniquenessConstraint }
func (n ConstraintExpressionUniqueness) Span() svsyntax.Span {
	return childSpanOf(n.UniqueKw, n.Brace, n.Semi)
}
func (n ConstraintExpressionUniqueness) Children() []svsyntax.Node {
	return []svsyntax.Node{n.UniqueKw, n.Brace, n.Semi}
}

// ConstraintExpressionArrow is `expression -> constraint_set`.
type ConstraintExpressionArrow struct {
	Cond  Expression
	Arrow svsyntax.Token
	Set   ConstraintSet
}

func (n ConstraintExpressionArrow) NodeKind() svsyntax.NodeKind { return KindConstraintExpressionArrow }
func (n ConstraintExpressionArrow) Span() svsyntax.Span         { return childSpanOf(n.Cond, n.Arrow, n.Set) }
func (n ConstraintExpressionArrow) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Cond, n.Arrow, n.Set}
}

func parseConstraintExpressionArrow(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintExpressionArrow, *svsyntax.Failure) {
	next, cond, fail := parseExpression(c)
	if fail != nil {
		return c, ConstraintExpressionArrow{}, fail
	}
	next, arrow, fail := svsyntax.Symbol("->")(next)
	if fail != nil {
		return c, ConstraintExpressionArrow{}, fail
	}
	next, set, fail := parseConstraintSet(next)
	if fail != nil {
		return c, ConstraintExpressionArrow{}, fail.WithConsumed(true)
	}
	return next, ConstraintExpressionArrow{Cond: cond, Arrow: arrow, Set: set}, nil
}

// ConstraintExpressionIf is `if ( expression ) constraint_set [else constraint_set]`.
type ConstraintExpressionIf struct {
	IfKw  svsyntax.Token
	Cond  svsyntax.Paren[Expression]
	Then  ConstraintSet
	Else  svsyntax.Optional[ConstraintSetElse]
}

type ConstraintSetElse struct {
	ElseKw svsyntax.Token
	Set    ConstraintSet
}

func (n ConstraintSetElse) NodeKind() svsyntax.NodeKind { return KindConstraintSetElse }
func (n ConstraintSetElse) Span() svsyntax.Span         { return childSpanOf(n.ElseKw, n.Set) }
func (n ConstraintSetElse) Children() []svsyntax.Node   { return []svsyntax.Node{n.ElseKw, n.Set} }

func (n ConstraintExpressionIf) NodeKind() svsyntax.NodeKind { return KindConstraintExpressionIf }
func (n ConstraintExpressionIf) Span() svsyntax.Span {
	return childSpanOf(n.IfKw, n.Cond, n.Then, n.Else)
}
func (n ConstraintExpressionIf) Children() []svsyntax.Node {
	return []svsyntax.Node{n.IfKw, n.Cond, n.Then, n.Else}
}

func parseConstraintExpressionIf(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintExpressionIf, *svsyntax.Failure) {
	next, ifKw, fail := svsyntax.Keyword("if")(c)
	if fail != nil {
		return c, ConstraintExpressionIf{}, fail
	}
	next, openTok, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, ConstraintExpressionIf{}, fail.WithConsumed(true)
	}
	next, cond, fail := parseExpression(next)
	if fail != nil {
		return c, ConstraintExpressionIf{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, ConstraintExpressionIf{}, fail.WithConsumed(true)
	}
	next, then, fail := parseConstraintSet(next)
	if fail != nil {
		return c, ConstraintExpressionIf{}, fail.WithConsumed(true)
	}
	elseClause := func(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintSetElse, *svsyntax.Failure) {
		next, elseKw, fail := svsyntax.Keyword("else")(c)
		if fail != nil {
			return c, ConstraintSetElse{}, fail
		}
		next, set, fail := parseConstraintSet(next)
		if fail != nil {
			return c, ConstraintSetElse{}, fail.WithConsumed(true)
		}
		return next, ConstraintSetElse{ElseKw: elseKw, Set: set}, nil
	}
	next, elseOpt, fail := svsyntax.Opt(elseClause)(next)
	if fail != nil {
		return c, ConstraintExpressionIf{}, fail
	}
	return next, ConstraintExpressionIf{
		IfKw: ifKw,
		Cond: svsyntax.Paren[Expression]{Open: openTok, Value: cond, Close: closeTok},
		Then: then,
		Else: elseOpt,
	}, nil
}

// ConstraintExpressionForeach is `foreach ( identifier [ loop_variables ] ) constraint_set`
// with loop_variables simplified to a comma-separated identifier list.
type ConstraintExpressionForeach struct {
	ForeachKw svsyntax.Token
	Open      svsyntax.Token
	Array     Identifier
	Vars      svsyntax.Bracket[svsyntax.List[Identifier]]
	Close     svsyntax.Token
	Set       ConstraintSet
}

func (n ConstraintExpressionForeach) NodeKind() svsyntax.NodeKind { return KindConstraintExpressionForeach }
func (n ConstraintExpressionForeach) Span() svsyntax.Span {
	return childSpanOf(n.ForeachKw, n.Open, n.Array, n.Vars, n.Close, n.Set)
}
func (n ConstraintExpressionForeach) Children() []svsyntax.Node {
	return []svsyntax.Node{n.ForeachKw, n.Open, n.Array, n.Vars, n.Close, n.Set}
}

func parseConstraintExpressionForeach(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintExpressionForeach, *svsyntax.Failure) {
	next, foreachKw, fail := svsyntax.Keyword("foreach")(c)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail
	}
	next, openParen, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	next, array, fail := parseIdentifier(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	next, openBracket, fail := svsyntax.Symbol("[")(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	next, vars, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	next, closeBracket, fail := svsyntax.Symbol("]")(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	next, closeParen, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	next, set, fail := parseConstraintSet(next)
	if fail != nil {
		return c, ConstraintExpressionForeach{}, fail.WithConsumed(true)
	}
	return next, ConstraintExpressionForeach{
		ForeachKw: foreachKw,
		Open:      openParen,
		Array:     array,
		Vars:      svsyntax.Bracket[svsyntax.List[Identifier]]{Open: openBracket, Value: vars, Close: closeBracket},
		Close:     closeParen,
		Set:       set,
	}, nil
}

// ConstraintExpressionDisable is `disable soft constraint_primary ;`.
type ConstraintExpressionDisable struct {
	DisableKw svsyntax.Token
	SoftKw    svsyntax.Token
	Primary   ConstraintPrimary
	Semi      svsyntax.Token
}

func (n ConstraintExpressionDisable) NodeKind() svsyntax.NodeKind { return KindConstraintExpressionDisable }
func (n ConstraintExpressionDisable) Span() svsyntax.Span {
	return childSpanOf(n.DisableKw, n.SoftKw, n.Primary, n.Semi)
}
func (n ConstraintExpressionDisable) Children() []svsyntax.Node {
	return []svsyntax.Node{n.DisableKw, n.SoftKw, n.Primary, n.Semi}
}

// ConstraintSet is either a single ConstraintExpression or a braced list
// of them.
type ConstraintSet struct {
	Single svsyntax.Optional[*ConstraintExpression]
	Brace  svsyntax.Optional[svsyntax.Brace[svsyntax.List[ConstraintExpression]]]
}

func (n ConstraintSet) NodeKind() svsyntax.NodeKind { return KindConstraintSet }
func (n ConstraintSet) Span() svsyntax.Span         { return childSpanOf(n.Single, n.Brace) }
func (n ConstraintSet) Children() []svsyntax.Node   { return []svsyntax.Node{n.Single, n.Brace} }

func parseConstraintBlockItem(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintBlockItem, *svsyntax.Failure) {
	solve := func(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintBlockItemSolve, *svsyntax.Failure) {
		next, solveKw, fail := svsyntax.Keyword("solve")(c)
		if fail != nil {
			return c, ConstraintBlockItemSolve{}, fail
		}
		next, before1, fail := parseSolveBeforeList(next)
		if fail != nil {
			return c, ConstraintBlockItemSolve{}, fail.WithConsumed(true)
		}
		next, beforeKw, fail := svsyntax.Keyword("before")(next)
		if fail != nil {
			return c, ConstraintBlockItemSolve{}, fail.WithConsumed(true)
		}
		next, before2, fail := parseSolveBeforeList(next)
		if fail != nil {
			return c, ConstraintBlockItemSolve{}, fail.WithConsumed(true)
		}
		next, semi, fail := svsyntax.Symbol(";")(next)
		if fail != nil {
			return c, ConstraintBlockItemSolve{}, fail.WithConsumed(true)
		}
		return next, ConstraintBlockItemSolve{SolveKw: solveKw, Before1: before1, BeforeKw: beforeKw, Before2: before2, Semi: semi}, nil
	}
	if next, s, fail := solve(c); fail == nil {
		return next, ConstraintBlockItem{Solve: svsyntax.Optional[ConstraintBlockItemSolve]{Value: s, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintBlockItem{}, fail
	}
	next, expr, fail := parseConstraintExpression(c)
	if fail != nil {
		return c, ConstraintBlockItem{}, fail
	}
	return next, ConstraintBlockItem{Expression: svsyntax.Optional[ConstraintExpression]{Value: expr, Present: true}}, nil
}

func parseSolveBeforeList(c svsyntax.Cursor) (svsyntax.Cursor, SolveBeforeList, *svsyntax.Failure) {
	next, list, fail := svsyntax.SepBy(parseConstraintPrimary, svsyntax.Symbol(","))(c)
	if fail != nil {
		return c, SolveBeforeList{}, fail
	}
	return next, SolveBeforeList{Items: list}, nil
}

func parseConstraintExpression(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintExpression, *svsyntax.Failure) {
	exprForm := func(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintExpressionExpression, *svsyntax.Failure) {
		next, soft, fail := svsyntax.Opt(svsyntax.Keyword("soft"))(c)
		if fail != nil {
			return c, ConstraintExpressionExpression{}, fail
		}
		next, val, fail := parseExpressionOrDist(next)
		if fail != nil {
			return c, ConstraintExpressionExpression{}, fail
		}
		next, semi, fail := svsyntax.Symbol(";")(next)
		if fail != nil {
			return c, ConstraintExpressionExpression{}, fail.WithConsumed(true)
		}
		return next, ConstraintExpressionExpression{Soft: soft, Value: val, Semi: semi}, nil
	}
	uniqueForm := func(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintExpressionUniqueness, *svsyntax.Failure) {
		next, uniqueKw, fail := svsyntax.Keyword("unique")(c)
		if fail != nil {
			return c, ConstraintExpressionUniqueness{}, fail
		}
		next, openTok, fail := svsyntax.Symbol("{")(next)
		if fail != nil {
			return c, ConstraintExpressionUniqueness{}, fail.WithConsumed(true)
		}
		next, items, fail := svsyntax.SepBy(parseExpression, svsyntax.Symbol(","))(next)
		if fail != nil {
			return c, ConstraintExpressionUniqueness{}, fail.WithConsumed(true)
		}
		next, closeTok, fail := svsyntax.Symbol("}")(next)
		if fail != nil {
			return c, ConstraintExpressionUniqueness{}, fail.WithConsumed(true)
		}
		next, semi, fail := svsyntax.Symbol(";")(next)
		if fail != nil {
			return c, ConstraintExpressionUniqueness{}, fail.WithConsumed(true)
		}
		return next, ConstraintExpressionUniqueness{
			UniqueKw: uniqueKw,
			Brace:    svsyntax.Brace[svsyntax.List[Expression]]{Open: openTok, Value: items, Close: closeTok},
			Semi:     semi,
		}, nil
	}

	// The arrow form is tried before the plain expression form: both
	// begin with an expression, and the expression form commits (sticky)
	// once it reaches its terminating `;`, which would otherwise make
	// `expr -> constraint_set` unreachable. The arrow form backs out
	// without consuming when no `->` follows its expression.
	if next, v, fail := parseConstraintExpressionArrow(c); fail == nil {
		return next, ConstraintExpression{Arrow: svsyntax.Optional[ConstraintExpressionArrow]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintExpression{}, fail
	}
	if next, v, fail := exprForm(c); fail == nil {
		return next, ConstraintExpression{Expr: svsyntax.Optional[ConstraintExpressionExpression]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintExpression{}, fail
	}
	if next, v, fail := uniqueForm(c); fail == nil {
		return next, ConstraintExpression{Uniqueness: svsyntax.Optional[ConstraintExpressionUniqueness]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintExpression{}, fail
	}
	if next, v, fail := parseConstraintExpressionIf(c); fail == nil {
		return next, ConstraintExpression{If: svsyntax.Optional[ConstraintExpressionIf]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintExpression{}, fail
	}
	if next, v, fail := parseConstraintExpressionForeach(c); fail == nil {
		return next, ConstraintExpression{Foreach: svsyntax.Optional[ConstraintExpressionForeach]{Value: v, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintExpression{}, fail
	}
	next, disableKw, fail := svsyntax.Keyword("disable")(c)
	if fail != nil {
		return c, ConstraintExpression{}, fail
	}
	next, softKw, fail := svsyntax.Keyword("soft")(next)
	if fail != nil {
		return c, ConstraintExpression{}, fail.WithConsumed(true)
	}
	next, primary, fail := parseConstraintPrimary(next)
	if fail != nil {
		return c, ConstraintExpression{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, ConstraintExpression{}, fail.WithConsumed(true)
	}
	return next, ConstraintExpression{Disable: svsyntax.Optional[ConstraintExpressionDisable]{
		Value: ConstraintExpressionDisable{DisableKw: disableKw, SoftKw: softKw, Primary: primary, Semi: semi}, Present: true,
	}}, nil
}

func parseConstraintSet(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintSet, *svsyntax.Failure) {
	braceForm := func(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Brace[svsyntax.List[ConstraintExpression]], *svsyntax.Failure) {
		next, openTok, fail := svsyntax.Symbol("{")(c)
		if fail != nil {
			return c, svsyntax.Brace[svsyntax.List[ConstraintExpression]]{}, fail
		}
		next, items, fail := svsyntax.Many0(parseConstraintExpression)(next)
		if fail != nil {
			return c, svsyntax.Brace[svsyntax.List[ConstraintExpression]]{}, fail.WithConsumed(true)
		}
		next, closeTok, fail := svsyntax.Symbol("}")(next)
		if fail != nil {
			return c, svsyntax.Brace[svsyntax.List[ConstraintExpression]]{}, fail.WithConsumed(true)
		}
		return next, svsyntax.Brace[svsyntax.List[ConstraintExpression]]{Open: openTok, Value: items, Close: closeTok}, nil
	}
	if next, b, fail := braceForm(c); fail == nil {
		return next, ConstraintSet{Brace: svsyntax.Optional[svsyntax.Brace[svsyntax.List[ConstraintExpression]]]{Value: b, Present: true}}, nil
	} else if fail.Consumed {
		return c, ConstraintSet{}, fail
	}
	next, expr, fail := parseConstraintExpression(c)
	if fail != nil {
		return c, ConstraintSet{}, fail
	}
	return next, ConstraintSet{Single: svsyntax.Optional[*ConstraintExpression]{Value: &expr, Present: true}}, nil
}

func parseConstraintBlock(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintBlock, *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("{")(c)
	if fail != nil {
		return c, ConstraintBlock{}, fail
	}
	next, items, fail := svsyntax.Many0(parseConstraintBlockItem)(next)
	if fail != nil {
		return c, ConstraintBlock{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol("}")(next)
	if fail != nil {
		return c, ConstraintBlock{}, fail.WithConsumed(true)
	}
	return next, ConstraintBlock{Brace: svsyntax.Brace[svsyntax.List[ConstraintBlockItem]]{Open: openTok, Value: items, Close: closeTok}}, nil
}

// ParseConstraintDeclaration is the exported entry point for the
// constraint_declaration production.
func ParseConstraintDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, ConstraintDeclaration, *svsyntax.Failure) {
	next, static, fail := svsyntax.Opt(svsyntax.Keyword("static"))(c)
	if fail != nil {
		return c, ConstraintDeclaration{}, fail
	}
	next, constraintKw, fail := svsyntax.Keyword("constraint")(next)
	if fail != nil {
		return c, ConstraintDeclaration{}, fail
	}
	next, name, fail := parseIdentifier(next)
	if fail != nil {
		return c, ConstraintDeclaration{}, fail.WithConsumed(true)
	}
	next, block, fail := parseConstraintBlock(next)
	if fail != nil {
		return c, ConstraintDeclaration{}, fail.WithConsumed(true)
	}
	return next, ConstraintDeclaration{Static: static, ConstraintKw: constraintKw, Name: name, Block: block}, nil
}
