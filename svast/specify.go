package svast

import "github.com/hdlcore/svparse/svsyntax"

// specify.go is the path-delay and edge-sensitive-path-declaration
// family of the specify-block grammar. Simplifications relative to the
// full standard grammar, matching the convention set in constraints.go:
//
//   - specify_input_terminal_descriptor / specify_output_terminal_descriptor
//     and list_of_path_inputs / list_of_path_outputs collapse to a plain
//     comma-separated identifier list (no bit-select / polarity terminal
//     forms — those are semantic distinctions over the same syntax here).
//   - module_path_expression is not a separate production; Expression is
//     reused directly, since module path expressions are syntactically
//     ordinary expressions restricted to net references, a semantic
//     distinction out of scope for this grammar.
var (
	tagPathDelayValue                = svsyntax.NewProductionTag("PathDelayValue")
	tagListOfPathDelayExpressions    = svsyntax.NewProductionTag("ListOfPathDelayExpressions")
	tagEdgeSensitivePathDeclaration  = svsyntax.NewProductionTag("EdgeSensitivePathDeclaration")
	tagSimplePathDeclaration         = svsyntax.NewProductionTag("SimplePathDeclaration")
	tagStateDependentPathDeclaration = svsyntax.NewProductionTag("StateDependentPathDeclaration")
	tagSystemTimingCheck             = svsyntax.NewProductionTag("SystemTimingCheck")
)

// PathDelayValue is a list_of_path_delay_expressions, optionally
// parenthesized — `expr` or `(expr, expr, ...)`.
type PathDelayValue struct {
	Paren svsyntax.Optional[svsyntax.Paren[ListOfPathDelayExpressions]]
	Plain svsyntax.Optional[ConstantExpression]
}

func (n PathDelayValue) NodeKind() svsyntax.NodeKind { return KindPathDelayValue }
func (n PathDelayValue) Span() svsyntax.Span         { return childSpanOf(n.Paren, n.Plain) }
func (n PathDelayValue) Children() []svsyntax.Node   { return []svsyntax.Node{n.Paren, n.Plain} }

func parsePathDelayValue(c svsyntax.Cursor) (svsyntax.Cursor, PathDelayValue, *svsyntax.Failure) {
	if next, openTok, fail := svsyntax.Symbol("(")(c); fail == nil {
		n, list, fail := svsyntax.SepBy(parseConstantExpression, svsyntax.Symbol(","))(next)
		if fail != nil {
			return c, PathDelayValue{}, fail.WithConsumed(true)
		}
		n, closeTok, fail := svsyntax.Symbol(")")(n)
		if fail != nil {
			return c, PathDelayValue{}, fail.WithConsumed(true)
		}
		paren := svsyntax.Paren[ListOfPathDelayExpressions]{
			Open: openTok, Value: ListOfPathDelayExpressions{Items: list}, Close: closeTok,
		}
		return n, PathDelayValue{Paren: svsyntax.Optional[svsyntax.Paren[ListOfPathDelayExpressions]]{Value: paren, Present: true}}, nil
	} else if fail.Consumed {
		return c, PathDelayValue{}, fail
	}
	next, val, fail := parseConstantExpression(c)
	if fail != nil {
		return c, PathDelayValue{}, fail
	}
	return next, PathDelayValue{Plain: svsyntax.Optional[ConstantExpression]{Value: val, Present: true}}, nil
}

// ListOfPathDelayExpressions is a comma-separated, non-empty list of
// constant expressions (the t_path_delay_expression alternative is
// reused directly as ConstantExpression — no distinct wrapper type in
// this grammar).
type ListOfPathDelayExpressions struct {
	Items svsyntax.List[ConstantExpression]
}

func (n ListOfPathDelayExpressions) NodeKind() svsyntax.NodeKind {
	return KindListOfPathDelayExpressions
}
func (n ListOfPathDelayExpressions) Span() svsyntax.Span       { return n.Items.Span() }
func (n ListOfPathDelayExpressions) Children() []svsyntax.Node { return []svsyntax.Node{n.Items} }

// EdgeIdentifier is `posedge` | `negedge` | `edge`.
type EdgeIdentifier struct {
	Tok svsyntax.Token
}

func (n EdgeIdentifier) NodeKind() svsyntax.NodeKind { return KindEdgeIdentifier }
func (n EdgeIdentifier) Span() svsyntax.Span         { return n.Tok.Span() }
func (n EdgeIdentifier) Children() []svsyntax.Node   { return nil }

func parseEdgeIdentifier(c svsyntax.Cursor) (svsyntax.Cursor, EdgeIdentifier, *svsyntax.Failure) {
	next, tok, fail := svsyntax.Alt(
		svsyntax.Keyword("posedge"),
		svsyntax.Keyword("negedge"),
		svsyntax.Keyword("edge"),
	)(c)
	if fail != nil {
		return c, EdgeIdentifier{}, fail
	}
	return next, EdgeIdentifier{Tok: tok}, nil
}

// PolarityOperator is `+` | `-`, the optional sign prefixing `=>` or
// `*>` in an edge-sensitive or simple path description.
type PolarityOperator struct {
	Tok svsyntax.Token
}

func (n PolarityOperator) NodeKind() svsyntax.NodeKind { return KindPolarityOperator }
func (n PolarityOperator) Span() svsyntax.Span         { return n.Tok.Span() }
func (n PolarityOperator) Children() []svsyntax.Node   { return nil }

func parsePolarityOperator(c svsyntax.Cursor) (svsyntax.Cursor, PolarityOperator, *svsyntax.Failure) {
	next, tok, fail := svsyntax.Alt(svsyntax.Symbol("+"), svsyntax.Symbol("-"))(c)
	if fail != nil {
		return c, PolarityOperator{}, fail
	}
	return next, PolarityOperator{Tok: tok}, nil
}

// DataSourceExpression stands in for the data_source_expression
// production; reused directly as Expression since no terminal form
// distinct from an ordinary expression is in scope here.
type DataSourceExpression struct {
	Expr Expression
}

func (n DataSourceExpression) NodeKind() svsyntax.NodeKind { return KindDataSourceExpression }
func (n DataSourceExpression) Span() svsyntax.Span         { return n.Expr.Span() }
func (n DataSourceExpression) Children() []svsyntax.Node   { return []svsyntax.Node{n.Expr} }

func parseDataSourceExpression(c svsyntax.Cursor) (svsyntax.Cursor, DataSourceExpression, *svsyntax.Failure) {
	next, expr, fail := parseExpression(c)
	if fail != nil {
		return c, DataSourceExpression{}, fail
	}
	return next, DataSourceExpression{Expr: expr}, nil
}

// ParallelEdgeSensitivePathDescription is
// `( specify_input_terminal_descriptor [polarity_operator] => ( specify_output_terminal_descriptor [polarity_operator] : data_source_expression ) )`.
// specify_input/output_terminal_descriptor both collapse to a plain
// identifier per the file doc comment.
type ParallelEdgeSensitivePathDescription struct {
	Open        svsyntax.Token
	Edge        svsyntax.Optional[EdgeIdentifier]
	Input       Identifier
	InPolarity  svsyntax.Optional[PolarityOperator]
	EdgeOp      svsyntax.Token
	InnerOpen   svsyntax.Token
	Output      Identifier
	OutPolarity svsyntax.Optional[PolarityOperator]
	Colon       svsyntax.Token
	Source      DataSourceExpression
	InnerClose  svsyntax.Token
	Close       svsyntax.Token
}

func (n ParallelEdgeSensitivePathDescription) NodeKind() svsyntax.NodeKind {
	return KindParallelEdgeSensitivePathDescription
}
func (n ParallelEdgeSensitivePathDescription) Span() svsyntax.Span {
	return childSpanOf(n.Open, n.Edge, n.Input, n.InPolarity, n.EdgeOp, n.InnerOpen, n.Output,
		n.OutPolarity, n.Colon, n.Source, n.InnerClose, n.Close)
}
func (n ParallelEdgeSensitivePathDescription) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Open, n.Edge, n.Input, n.InPolarity, n.EdgeOp, n.InnerOpen, n.Output,
		n.OutPolarity, n.Colon, n.Source, n.InnerClose, n.Close}
}

func edgeOperator(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Token, *svsyntax.Failure) {
	return svsyntax.Alt(svsyntax.Symbol("=>"), svsyntax.Symbol("*>"))(c)
}

// parseParallelEdgeSensitivePathDescription parses the edge identifier
// inside the outer parens, immediately after '(' — in the standard's
// BNF, opt(edge_identifier) is the first element of the parenthesized
// tuple rather than a prefix of the whole description.
//
// The parallel and full edge-sensitive forms share the whole
// `( edge? input...` prefix and only diverge at whether one or several
// terminals precede the edge operator; the simple (non-edge-sensitive)
// path forms share everything up to and including the operator and
// diverge only at the inner '(' that follows it. So this parser stays
// backtrackable (non-sticky) up to and including that inner '(' — only
// past it is the form committed.
func parseParallelEdgeSensitivePathDescription(c svsyntax.Cursor) (svsyntax.Cursor, ParallelEdgeSensitivePathDescription, *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail
	}
	next, edge, fail := svsyntax.Opt(parseEdgeIdentifier)(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail
	}
	next, input, fail := parseIdentifier(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail
	}
	next, inPol, fail := svsyntax.Opt(parsePolarityOperator)(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail
	}
	next, edgeOp, fail := edgeOperator(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail
	}
	next, innerOpen, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail
	}
	next, output, fail := parseIdentifier(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, outPol, fail := svsyntax.Opt(parsePolarityOperator)(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, colon, fail := svsyntax.Symbol(":")(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, source, fail := parseDataSourceExpression(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, innerClose, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, ParallelEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	return next, ParallelEdgeSensitivePathDescription{
		Open: openTok, Edge: edge, Input: input, InPolarity: inPol, EdgeOp: edgeOp, InnerOpen: innerOpen,
		Output: output, OutPolarity: outPol, Colon: colon, Source: source,
		InnerClose: innerClose, Close: closeTok,
	}, nil
}

// FullEdgeSensitivePathDescription is
// `( list_of_path_inputs [polarity_operator] => ( list_of_path_outputs [polarity_operator] : data_source_expression ) )`.
type FullEdgeSensitivePathDescription struct {
	Open        svsyntax.Token
	Edge        svsyntax.Optional[EdgeIdentifier]
	Inputs      svsyntax.List[Identifier]
	InPolarity  svsyntax.Optional[PolarityOperator]
	EdgeOp      svsyntax.Token
	InnerOpen   svsyntax.Token
	Outputs     svsyntax.List[Identifier]
	OutPolarity svsyntax.Optional[PolarityOperator]
	Colon       svsyntax.Token
	Source      DataSourceExpression
	InnerClose  svsyntax.Token
	Close       svsyntax.Token
}

func (n FullEdgeSensitivePathDescription) NodeKind() svsyntax.NodeKind {
	return KindFullEdgeSensitivePathDescription
}
func (n FullEdgeSensitivePathDescription) Span() svsyntax.Span {
	return childSpanOf(n.Open, n.Edge, n.Inputs, n.InPolarity, n.EdgeOp, n.InnerOpen, n.Outputs,
		n.OutPolarity, n.Colon, n.Source, n.InnerClose, n.Close)
}
func (n FullEdgeSensitivePathDescription) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Open, n.Edge, n.Inputs, n.InPolarity, n.EdgeOp, n.InnerOpen, n.Outputs,
		n.OutPolarity, n.Colon, n.Source, n.InnerClose, n.Close}
}

func parseFullEdgeSensitivePathDescription(c svsyntax.Cursor) (svsyntax.Cursor, FullEdgeSensitivePathDescription, *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail
	}
	next, edge, fail := svsyntax.Opt(parseEdgeIdentifier)(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail
	}
	next, inputs, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail
	}
	next, inPol, fail := svsyntax.Opt(parsePolarityOperator)(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail
	}
	next, edgeOp, fail := edgeOperator(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail
	}
	next, innerOpen, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail
	}
	next, outputs, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, outPol, fail := svsyntax.Opt(parsePolarityOperator)(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, colon, fail := svsyntax.Symbol(":")(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, source, fail := parseDataSourceExpression(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, innerClose, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, FullEdgeSensitivePathDescription{}, fail.WithConsumed(true)
	}
	return next, FullEdgeSensitivePathDescription{
		Open: openTok, Edge: edge, Inputs: inputs, InPolarity: inPol, EdgeOp: edgeOp, InnerOpen: innerOpen,
		Outputs: outputs, OutPolarity: outPol, Colon: colon, Source: source,
		InnerClose: innerClose, Close: closeTok,
	}, nil
}

// EdgeSensitivePathDeclaration is `path_description = path_delay_value ;`,
// where path_description is either the parallel or full form and itself
// carries the optional leading edge_identifier inside its outer parens
// (see ParallelEdgeSensitivePathDescription / FullEdgeSensitivePathDescription).
type EdgeSensitivePathDeclaration struct {
	Parallel svsyntax.Optional[ParallelEdgeSensitivePathDescription]
	Full     svsyntax.Optional[FullEdgeSensitivePathDescription]
	Eq       svsyntax.Token
	Value    PathDelayValue
	Semi     svsyntax.Token
}

func (n EdgeSensitivePathDeclaration) NodeKind() svsyntax.NodeKind {
	return KindEdgeSensitivePathDeclaration
}
func (n EdgeSensitivePathDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.Parallel, n.Full, n.Eq, n.Value, n.Semi)
}
func (n EdgeSensitivePathDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Parallel, n.Full, n.Eq, n.Value, n.Semi}
}

var edgeSensitivePathDeclarationParser = svsyntax.Production(tagEdgeSensitivePathDeclaration, parseEdgeSensitivePathDeclarationBody)

func parseEdgeSensitivePathDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, EdgeSensitivePathDeclaration, *svsyntax.Failure) {
	var next svsyntax.Cursor
	var parallel svsyntax.Optional[ParallelEdgeSensitivePathDescription]
	var full svsyntax.Optional[FullEdgeSensitivePathDescription]
	if n, p, fail := parseParallelEdgeSensitivePathDescription(c); fail == nil {
		next, parallel = n, svsyntax.Optional[ParallelEdgeSensitivePathDescription]{Value: p, Present: true}
	} else if fail.Consumed {
		return c, EdgeSensitivePathDeclaration{}, fail
	} else if n, f, fail := parseFullEdgeSensitivePathDescription(c); fail == nil {
		next, full = n, svsyntax.Optional[FullEdgeSensitivePathDescription]{Value: f, Present: true}
	} else {
		return c, EdgeSensitivePathDeclaration{}, fail
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, EdgeSensitivePathDeclaration{}, fail.WithConsumed(true)
	}
	next, val, fail := parsePathDelayValue(next)
	if fail != nil {
		return c, EdgeSensitivePathDeclaration{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, EdgeSensitivePathDeclaration{}, fail.WithConsumed(true)
	}
	return next, EdgeSensitivePathDeclaration{
		Parallel: parallel, Full: full, Eq: eq, Value: val, Semi: semi,
	}, nil
}

// ParseEdgeSensitivePathDeclaration is the exported entry point for the
// edge_sensitive_path_declaration production.
func ParseEdgeSensitivePathDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, EdgeSensitivePathDeclaration, *svsyntax.Failure) {
	return edgeSensitivePathDeclarationParser(c)
}

// ParallelPathDescription is `( input [polarity_operator] => output )`
// — the non-edge-sensitive one-to-one path.
type ParallelPathDescription struct {
	Open     svsyntax.Token
	Input    Identifier
	Polarity svsyntax.Optional[PolarityOperator]
	EdgeOp   svsyntax.Token
	Output   Identifier
	Close    svsyntax.Token
}

func (n ParallelPathDescription) NodeKind() svsyntax.NodeKind { return KindParallelPathDescription }
func (n ParallelPathDescription) Span() svsyntax.Span {
	return childSpanOf(n.Open, n.Input, n.Polarity, n.EdgeOp, n.Output, n.Close)
}
func (n ParallelPathDescription) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Open, n.Input, n.Polarity, n.EdgeOp, n.Output, n.Close}
}

func parseParallelPathDescription(c svsyntax.Cursor) (svsyntax.Cursor, ParallelPathDescription, *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, ParallelPathDescription{}, fail
	}
	next, input, fail := parseIdentifier(next)
	if fail != nil {
		return c, ParallelPathDescription{}, fail
	}
	next, pol, fail := svsyntax.Opt(parsePolarityOperator)(next)
	if fail != nil {
		return c, ParallelPathDescription{}, fail
	}
	next, edgeOp, fail := svsyntax.Symbol("=>")(next)
	if fail != nil {
		return c, ParallelPathDescription{}, fail
	}
	next, output, fail := parseIdentifier(next)
	if fail != nil {
		return c, ParallelPathDescription{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, ParallelPathDescription{}, fail.WithConsumed(true)
	}
	return next, ParallelPathDescription{
		Open: openTok, Input: input, Polarity: pol, EdgeOp: edgeOp, Output: output, Close: closeTok,
	}, nil
}

// FullPathDescription is `( input, ... [polarity_operator] *> output, ... )`.
type FullPathDescription struct {
	Open     svsyntax.Token
	Inputs   svsyntax.List[Identifier]
	Polarity svsyntax.Optional[PolarityOperator]
	EdgeOp   svsyntax.Token
	Outputs  svsyntax.List[Identifier]
	Close    svsyntax.Token
}

func (n FullPathDescription) NodeKind() svsyntax.NodeKind { return KindFullPathDescription }
func (n FullPathDescription) Span() svsyntax.Span {
	return childSpanOf(n.Open, n.Inputs, n.Polarity, n.EdgeOp, n.Outputs, n.Close)
}
func (n FullPathDescription) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Open, n.Inputs, n.Polarity, n.EdgeOp, n.Outputs, n.Close}
}

func parseFullPathDescription(c svsyntax.Cursor) (svsyntax.Cursor, FullPathDescription, *svsyntax.Failure) {
	next, openTok, fail := svsyntax.Symbol("(")(c)
	if fail != nil {
		return c, FullPathDescription{}, fail
	}
	next, inputs, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, FullPathDescription{}, fail
	}
	if len(inputs.Items) == 0 {
		return c, FullPathDescription{}, c.Fail(svsyntax.FailSyntactic, "expected path input", false)
	}
	next, pol, fail := svsyntax.Opt(parsePolarityOperator)(next)
	if fail != nil {
		return c, FullPathDescription{}, fail
	}
	next, edgeOp, fail := svsyntax.Symbol("*>")(next)
	if fail != nil {
		return c, FullPathDescription{}, fail
	}
	next, outputs, fail := svsyntax.SepBy(parseIdentifier, svsyntax.Symbol(","))(next)
	if fail != nil {
		return c, FullPathDescription{}, fail.WithConsumed(true)
	}
	if len(outputs.Items) == 0 {
		return c, FullPathDescription{}, c.Fail(svsyntax.FailSyntactic, "expected path output", true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, FullPathDescription{}, fail.WithConsumed(true)
	}
	return next, FullPathDescription{
		Open: openTok, Inputs: inputs, Polarity: pol, EdgeOp: edgeOp, Outputs: outputs, Close: closeTok,
	}, nil
}

// SimplePathDeclaration is `path_description = path_delay_value ;` for
// the non-edge-sensitive parallel and full path forms. Exactly one of
// Parallel/Full is Present.
type SimplePathDeclaration struct {
	Parallel svsyntax.Optional[ParallelPathDescription]
	Full     svsyntax.Optional[FullPathDescription]
	Eq       svsyntax.Token
	Value    PathDelayValue
	Semi     svsyntax.Token
}

func (n SimplePathDeclaration) NodeKind() svsyntax.NodeKind { return KindSimplePathDeclaration }
func (n SimplePathDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.Parallel, n.Full, n.Eq, n.Value, n.Semi)
}
func (n SimplePathDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Parallel, n.Full, n.Eq, n.Value, n.Semi}
}

var simplePathDeclarationParser = svsyntax.Production(tagSimplePathDeclaration, parseSimplePathDeclarationBody)

func parseSimplePathDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, SimplePathDeclaration, *svsyntax.Failure) {
	var next svsyntax.Cursor
	var parallel svsyntax.Optional[ParallelPathDescription]
	var full svsyntax.Optional[FullPathDescription]
	if n, p, fail := parseParallelPathDescription(c); fail == nil {
		next, parallel = n, svsyntax.Optional[ParallelPathDescription]{Value: p, Present: true}
	} else if fail.Consumed {
		return c, SimplePathDeclaration{}, fail
	} else if n, f, fail := parseFullPathDescription(c); fail == nil {
		next, full = n, svsyntax.Optional[FullPathDescription]{Value: f, Present: true}
	} else {
		return c, SimplePathDeclaration{}, fail
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, SimplePathDeclaration{}, fail.WithConsumed(true)
	}
	next, val, fail := parsePathDelayValue(next)
	if fail != nil {
		return c, SimplePathDeclaration{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, SimplePathDeclaration{}, fail.WithConsumed(true)
	}
	return next, SimplePathDeclaration{
		Parallel: parallel, Full: full, Eq: eq, Value: val, Semi: semi,
	}, nil
}

// ParseSimplePathDeclaration is the exported entry point for the
// simple_path_declaration production.
func ParseSimplePathDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, SimplePathDeclaration, *svsyntax.Failure) {
	return simplePathDeclarationParser(c)
}

// StateDependentPathDeclaration is `if ( module_path_expression ) <path>`,
// module_path_expression reused directly as Expression; the inner path
// is either an edge-sensitive or a simple path declaration, tried in
// that order (edge-sensitive is the more specific shape — it requires
// an inner paren after the edge operator).
type StateDependentPathDeclaration struct {
	IfKw       svsyntax.Token
	Paren      svsyntax.Paren[Expression]
	EdgePath   svsyntax.Optional[EdgeSensitivePathDeclaration]
	SimplePath svsyntax.Optional[SimplePathDeclaration]
}

func (n StateDependentPathDeclaration) NodeKind() svsyntax.NodeKind {
	return KindStateDependentPathDeclaration
}
func (n StateDependentPathDeclaration) Span() svsyntax.Span {
	return childSpanOf(n.IfKw, n.Paren, n.EdgePath, n.SimplePath)
}
func (n StateDependentPathDeclaration) Children() []svsyntax.Node {
	return []svsyntax.Node{n.IfKw, n.Paren, n.EdgePath, n.SimplePath}
}

var stateDependentPathDeclarationParser = svsyntax.Production(tagStateDependentPathDeclaration, parseStateDependentPathDeclarationBody)

func parseStateDependentPathDeclarationBody(c svsyntax.Cursor) (svsyntax.Cursor, StateDependentPathDeclaration, *svsyntax.Failure) {
	next, ifKw, fail := svsyntax.Keyword("if")(c)
	if fail != nil {
		return c, StateDependentPathDeclaration{}, fail
	}
	next, openTok, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, StateDependentPathDeclaration{}, fail.WithConsumed(true)
	}
	next, expr, fail := parseExpression(next)
	if fail != nil {
		return c, StateDependentPathDeclaration{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, StateDependentPathDeclaration{}, fail.WithConsumed(true)
	}
	decl := StateDependentPathDeclaration{
		IfKw:  ifKw,
		Paren: svsyntax.Paren[Expression]{Open: openTok, Value: expr, Close: closeTok},
	}
	if n, path, fail := parseEdgeSensitivePathDeclarationBody(next); fail == nil {
		decl.EdgePath = svsyntax.Optional[EdgeSensitivePathDeclaration]{Value: path, Present: true}
		return n, decl, nil
	} else if fail.Consumed {
		return c, StateDependentPathDeclaration{}, fail
	}
	n, path, fail := parseSimplePathDeclarationBody(next)
	if fail != nil {
		return c, StateDependentPathDeclaration{}, fail.WithConsumed(true)
	}
	decl.SimplePath = svsyntax.Optional[SimplePathDeclaration]{Value: path, Present: true}
	return n, decl, nil
}

// ParseStateDependentPathDeclaration is the exported entry point for the
// state_dependent_path_declaration family.
func ParseStateDependentPathDeclaration(c svsyntax.Cursor) (svsyntax.Cursor, StateDependentPathDeclaration, *svsyntax.Failure) {
	return stateDependentPathDeclarationParser(c)
}

// TimingCheckEvent is `[edge_identifier] terminal`, the event argument
// of a system timing check.
type TimingCheckEvent struct {
	Edge     svsyntax.Optional[EdgeIdentifier]
	Terminal Identifier
}

func (n TimingCheckEvent) NodeKind() svsyntax.NodeKind { return KindTimingCheckEvent }
func (n TimingCheckEvent) Span() svsyntax.Span         { return childSpanOf(n.Edge, n.Terminal) }
func (n TimingCheckEvent) Children() []svsyntax.Node   { return []svsyntax.Node{n.Edge, n.Terminal} }

func parseTimingCheckEvent(c svsyntax.Cursor) (svsyntax.Cursor, TimingCheckEvent, *svsyntax.Failure) {
	next, edge, fail := svsyntax.Opt(parseEdgeIdentifier)(c)
	if fail != nil {
		return c, TimingCheckEvent{}, fail
	}
	next, terminal, fail := parseIdentifier(next)
	if fail != nil {
		return c, TimingCheckEvent{}, fail
	}
	return next, TimingCheckEvent{Edge: edge, Terminal: terminal}, nil
}

type timingCheckNotifier struct {
	Comma svsyntax.Token
	Name  Identifier
}

func (n timingCheckNotifier) NodeKind() svsyntax.NodeKind { return KindTimingCheckNotifier }
func (n timingCheckNotifier) Span() svsyntax.Span         { return childSpanOf(n.Comma, n.Name) }
func (n timingCheckNotifier) Children() []svsyntax.Node   { return []svsyntax.Node{n.Comma, n.Name} }

// SystemTimingCheck is `$setup|$hold ( timing_check_event ,
// timing_check_event , limit [, notifier] ) ;`.
type SystemTimingCheck struct {
	Name     svsyntax.Token
	Open     svsyntax.Token
	Event1   TimingCheckEvent
	Comma1   svsyntax.Token
	Event2   TimingCheckEvent
	Comma2   svsyntax.Token
	Limit    ConstantExpression
	Notifier svsyntax.Optional[timingCheckNotifier]
	Close    svsyntax.Token
	Semi     svsyntax.Token
}

func (n SystemTimingCheck) NodeKind() svsyntax.NodeKind { return KindSystemTimingCheck }
func (n SystemTimingCheck) Span() svsyntax.Span {
	return childSpanOf(n.Name, n.Open, n.Event1, n.Comma1, n.Event2, n.Comma2, n.Limit, n.Notifier, n.Close, n.Semi)
}
func (n SystemTimingCheck) Children() []svsyntax.Node {
	return []svsyntax.Node{n.Name, n.Open, n.Event1, n.Comma1, n.Event2, n.Comma2, n.Limit, n.Notifier, n.Close, n.Semi}
}

// timingCheckName matches a system identifier with one of the given
// spellings ($setup, $hold).
func timingCheckName(names ...string) svsyntax.ParseFunc[svsyntax.Token] {
	return func(c svsyntax.Cursor) (svsyntax.Cursor, svsyntax.Token, *svsyntax.Failure) {
		next, tok, fail := svsyntax.AnyIdentifier(c)
		if fail != nil {
			return c, svsyntax.Token{}, fail
		}
		if tok.Kind == svsyntax.TokSystemIdentifier {
			for _, name := range names {
				if tok.Raw() == name {
					return next, tok, nil
				}
			}
		}
		return c, svsyntax.Token{}, c.Fail(svsyntax.FailSyntactic, "expected system timing check", false)
	}
}

var systemTimingCheckParser = svsyntax.Production(tagSystemTimingCheck, parseSystemTimingCheckBody)

func parseSystemTimingCheckBody(c svsyntax.Cursor) (svsyntax.Cursor, SystemTimingCheck, *svsyntax.Failure) {
	next, name, fail := timingCheckName("$setup", "$hold")(c)
	if fail != nil {
		return c, SystemTimingCheck{}, fail
	}
	next, openTok, fail := svsyntax.Symbol("(")(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, ev1, fail := parseTimingCheckEvent(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, comma1, fail := svsyntax.Symbol(",")(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, ev2, fail := parseTimingCheckEvent(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, comma2, fail := svsyntax.Symbol(",")(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, limit, fail := parseConstantExpression(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	notifier := func(c svsyntax.Cursor) (svsyntax.Cursor, timingCheckNotifier, *svsyntax.Failure) {
		next, comma, fail := svsyntax.Symbol(",")(c)
		if fail != nil {
			return c, timingCheckNotifier{}, fail
		}
		next, name, fail := parseIdentifier(next)
		if fail != nil {
			return c, timingCheckNotifier{}, fail.WithConsumed(true)
		}
		return next, timingCheckNotifier{Comma: comma, Name: name}, nil
	}
	next, notif, fail := svsyntax.Opt(notifier)(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, closeTok, fail := svsyntax.Symbol(")")(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, SystemTimingCheck{}, fail.WithConsumed(true)
	}
	return next, SystemTimingCheck{
		Name: name, Open: openTok, Event1: ev1, Comma1: comma1, Event2: ev2, Comma2: comma2,
		Limit: limit, Notifier: notif, Close: closeTok, Semi: semi,
	}, nil
}

// ParseSystemTimingCheck is the exported entry point for the
// $setup/$hold system timing check productions.
func ParseSystemTimingCheck(c svsyntax.Cursor) (svsyntax.Cursor, SystemTimingCheck, *svsyntax.Failure) {
	return systemTimingCheckParser(c)
}
