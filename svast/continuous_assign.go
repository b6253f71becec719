package svast

import "github.com/hdlcore/svparse/svsyntax"

// continuous_assign.go is the continuous_assign / net_alias /
// net_assignment family. The assignment-list productions sit inside the
// expression grammar's left-recursive cluster, so they carry the full
// Production wrapper rather than a bare parse function.

var (
	tagListOfNetAssignments      = svsyntax.NewProductionTag("ListOfNetAssignments")
	tagListOfVariableAssignments = svsyntax.NewProductionTag("ListOfVariableAssignments")
	tagNetAssignment             = svsyntax.NewProductionTag("NetAssignment")
	tagContinuousAssign          = svsyntax.NewProductionTag("ContinuousAssign")
)

// ContinuousAssign is `assign [drive_strength] [delay3] list_of_net_assignments ;`
// or `assign [delay_control] list_of_variable_assignments ;` — a
// net/variable sum kept as an Optional pair since Go has no sum type;
// exactly one of Net/Variable is ever Present.
type ContinuousAssign struct {
	Net      svsyntax.Optional[ContinuousAssignNet]
	Variable svsyntax.Optional[ContinuousAssignVariable]
}

func (n ContinuousAssign) NodeKind() svsyntax.NodeKind { return KindContinuousAssign }
func (n ContinuousAssign) Span() svsyntax.Span         { return childSpanOf(n.Net, n.Variable) }
func (n ContinuousAssign) Children() []svsyntax.Node   { return []svsyntax.Node{n.Net, n.Variable} }

type ContinuousAssignNet struct {
	AssignKw      svsyntax.Token
	DriveStrength svsyntax.Optional[DriveStrength]
	Delay3        svsyntax.Optional[Delay3]
	Assignments   ListOfNetAssignments
	Semi          svsyntax.Token
}

func (n ContinuousAssignNet) NodeKind() svsyntax.NodeKind { return KindContinuousAssignNet }
func (n ContinuousAssignNet) Span() svsyntax.Span {
	return childSpanOf(n.AssignKw, n.DriveStrength, n.Delay3, n.Assignments, n.Semi)
}
func (n ContinuousAssignNet) Children() []svsyntax.Node {
	return []svsyntax.Node{n.AssignKw, n.DriveStrength, n.Delay3, n.Assignments, n.Semi}
}

type ContinuousAssignVariable struct {
	AssignKw     svsyntax.Token
	DelayControl svsyntax.Optional[DelayControl]
	Assignments  ListOfVariableAssignments
	Semi         svsyntax.Token
}

func (n ContinuousAssignVariable) NodeKind() svsyntax.NodeKind { return KindContinuousAssignVariable }
func (n ContinuousAssignVariable) Span() svsyntax.Span {
	return childSpanOf(n.AssignKw, n.DelayControl, n.Assignments, n.Semi)
}
func (n ContinuousAssignVariable) Children() []svsyntax.Node {
	return []svsyntax.Node{n.AssignKw, n.DelayControl, n.Assignments, n.Semi}
}

type ListOfNetAssignments struct {
	Items svsyntax.List[NetAssignment]
}

func (n ListOfNetAssignments) NodeKind() svsyntax.NodeKind { return KindListOfNetAssignments }
func (n ListOfNetAssignments) Span() svsyntax.Span         { return n.Items.Span() }
func (n ListOfNetAssignments) Children() []svsyntax.Node   { return []svsyntax.Node{n.Items} }

type ListOfVariableAssignments struct {
	Items svsyntax.List[VariableAssignment]
}

func (n ListOfVariableAssignments) NodeKind() svsyntax.NodeKind { return KindListOfVariableAssignments }
func (n ListOfVariableAssignments) Span() svsyntax.Span         { return n.Items.Span() }
func (n ListOfVariableAssignments) Children() []svsyntax.Node   { return []svsyntax.Node{n.Items} }

// NetAlias is `alias net_lvalue = net_lvalue { = net_lvalue } ;`.
type NetAlias struct {
	AliasKw  svsyntax.Token
	First    NetLvalue
	Eq       svsyntax.Token
	Rest     svsyntax.List[NetLvalue]
	Semi     svsyntax.Token
}

func (n NetAlias) NodeKind() svsyntax.NodeKind { return KindNetAlias }
func (n NetAlias) Span() svsyntax.Span {
	return childSpanOf(n.AliasKw, n.First, n.Eq, n.Rest, n.Semi)
}
func (n NetAlias) Children() []svsyntax.Node {
	return []svsyntax.Node{n.AliasKw, n.First, n.Eq, n.Rest, n.Semi}
}

// NetAssignment is `net_lvalue = expression`.
type NetAssignment struct {
	Lvalue NetLvalue
	Eq     svsyntax.Token
	Value  Expression
}

func (n NetAssignment) NodeKind() svsyntax.NodeKind { return KindNetAssignment }
func (n NetAssignment) Span() svsyntax.Span         { return childSpanOf(n.Lvalue, n.Eq, n.Value) }
func (n NetAssignment) Children() []svsyntax.Node   { return []svsyntax.Node{n.Lvalue, n.Eq, n.Value} }

var netAssignmentParser = svsyntax.Production(tagNetAssignment, parseNetAssignmentBody)

func parseNetAssignmentBody(c svsyntax.Cursor) (svsyntax.Cursor, NetAssignment, *svsyntax.Failure) {
	next, lv, fail := parseNetLvalue(c)
	if fail != nil {
		return c, NetAssignment{}, fail
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, NetAssignment{}, fail
	}
	next, val, fail := parseExpression(next)
	if fail != nil {
		return c, NetAssignment{}, fail.WithConsumed(true)
	}
	return next, NetAssignment{Lvalue: lv, Eq: eq, Value: val}, nil
}

var listOfNetAssignmentsParser = svsyntax.Production(tagListOfNetAssignments, func(c svsyntax.Cursor) (svsyntax.Cursor, ListOfNetAssignments, *svsyntax.Failure) {
	next, list, fail := svsyntax.SepBy(netAssignmentParser, svsyntax.Symbol(","))(c)
	if fail != nil {
		return c, ListOfNetAssignments{}, fail
	}
	if len(list.Items) == 0 {
		return c, ListOfNetAssignments{}, c.Fail(svsyntax.FailSyntactic, "expected at least one net assignment", false)
	}
	return next, ListOfNetAssignments{Items: list}, nil
})

var listOfVariableAssignmentsParser = svsyntax.Production(tagListOfVariableAssignments, func(c svsyntax.Cursor) (svsyntax.Cursor, ListOfVariableAssignments, *svsyntax.Failure) {
	next, list, fail := svsyntax.SepBy(variableAssignmentParser, svsyntax.Symbol(","))(c)
	if fail != nil {
		return c, ListOfVariableAssignments{}, fail
	}
	if len(list.Items) == 0 {
		return c, ListOfVariableAssignments{}, c.Fail(svsyntax.FailSyntactic, "expected at least one variable assignment", false)
	}
	return next, ListOfVariableAssignments{Items: list}, nil
})

// ParseContinuousAssign is the exported entry point for the
// continuous_assign production. The net and variable alternatives share
// the `assign` prefix, so instead of ordered choice the prefix is
// factored out explicitly and the token after it decides the form: a
// bare `#` delay commits to the variable form (delay_control), anything
// else to the net form, whose delay3 may still follow a drive strength.
func ParseContinuousAssign(c svsyntax.Cursor) (svsyntax.Cursor, ContinuousAssign, *svsyntax.Failure) {
	next, kw, fail := svsyntax.Keyword("assign")(c)
	if fail != nil {
		return c, ContinuousAssign{}, fail
	}

	next, delayCtl, fail := svsyntax.Opt(parseDelayControl)(next)
	if fail != nil {
		return c, ContinuousAssign{}, fail.WithConsumed(true)
	}
	if delayCtl.Present {
		next, assigns, fail := listOfVariableAssignmentsParser(next)
		if fail != nil {
			return c, ContinuousAssign{}, fail.WithConsumed(true)
		}
		next, semi, fail := svsyntax.Symbol(";")(next)
		if fail != nil {
			return c, ContinuousAssign{}, fail.WithConsumed(true)
		}
		return next, ContinuousAssign{Variable: svsyntax.Optional[ContinuousAssignVariable]{Present: true, Value: ContinuousAssignVariable{
			AssignKw: kw, DelayControl: delayCtl, Assignments: assigns, Semi: semi,
		}}}, nil
	}

	next, strength, fail := svsyntax.Opt(parseDriveStrength)(next)
	if fail != nil {
		return c, ContinuousAssign{}, fail.WithConsumed(true)
	}
	next, delay, fail := svsyntax.Opt(parseDelay3)(next)
	if fail != nil {
		return c, ContinuousAssign{}, fail.WithConsumed(true)
	}
	next, assigns, fail := listOfNetAssignmentsParser(next)
	if fail != nil {
		return c, ContinuousAssign{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, ContinuousAssign{}, fail.WithConsumed(true)
	}
	return next, ContinuousAssign{Net: svsyntax.Optional[ContinuousAssignNet]{Present: true, Value: ContinuousAssignNet{
		AssignKw: kw, DriveStrength: strength, Delay3: delay, Assignments: assigns, Semi: semi,
	}}}, nil
}

// ParseNetAlias is the exported entry point for the net_alias production.
func ParseNetAlias(c svsyntax.Cursor) (svsyntax.Cursor, NetAlias, *svsyntax.Failure) {
	next, kw, fail := svsyntax.Keyword("alias")(c)
	if fail != nil {
		return c, NetAlias{}, fail
	}
	next, first, fail := parseNetLvalue(next)
	if fail != nil {
		return c, NetAlias{}, fail.WithConsumed(true)
	}
	next, eq, fail := svsyntax.Symbol("=")(next)
	if fail != nil {
		return c, NetAlias{}, fail.WithConsumed(true)
	}
	next, rest, fail := svsyntax.SepBy(parseNetLvalue, svsyntax.Symbol("="))(next)
	if fail != nil {
		return c, NetAlias{}, fail.WithConsumed(true)
	}
	next, semi, fail := svsyntax.Symbol(";")(next)
	if fail != nil {
		return c, NetAlias{}, fail.WithConsumed(true)
	}
	return next, NetAlias{AliasKw: kw, First: first, Eq: eq, Rest: rest, Semi: semi}, nil
}
