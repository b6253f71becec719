package svsyntax

// NodeKind is the generic tag every concrete node type and token leaf
// registers itself under, so that generic tooling can report a node's
// kind without a type switch over every grammar production.
type NodeKind uint16

const (
	KindUnknown NodeKind = iota
	KindKeyword
	KindSymbol
	KindIdentifier
	KindNumber
	KindString
	KindTime
	KindList
	KindParen
	KindBracket
	KindBrace
	KindOptional
	// Grammar-production kinds start here; svast declares its node kinds
	// as constants counting up from KindProductionBase so the two
	// numbering spaces never collide.
	KindProductionBase NodeKind = 256
)

// Node is the uniform, generic-node-handle protocol every CST node and
// token leaf implements: ask for a node's span, its kind
// tag, and its immediate children, without knowing the concrete Go type.
// Generic tools (linters, pretty-printers) consume only this interface.
type Node interface {
	Span() Span
	NodeKind() NodeKind
	Children() []Node
}

// Text returns the exact source text covered by n.
func Text(n Node) []byte {
	if n == nil {
		return nil
	}
	return n.Span().Text()
}

// Walker is the stateful pre-order iterator over a Node's subtree. Its
// state is a stack (a reversed worklist): each step pops the next
// handle, pushes its children in reverse order so they are popped (and
// therefore yielded) left-to-right, and yields the popped handle. This
// guarantees: for any node N, pre-order visits N first, then
// recursively each immediate child in source order.
type Walker struct {
	stack []Node
}

// NewWalker returns a Walker positioned to yield root first.
func NewWalker(root Node) *Walker {
	if root == nil {
		return &Walker{}
	}
	return &Walker{stack: []Node{root}}
}

// Next advances the walker, returning the next node in pre-order, or
// (nil, false) once the subtree is exhausted.
func (w *Walker) Next() (Node, bool) {
	if len(w.stack) == 0 {
		return nil, false
	}
	n := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] != nil {
			w.stack = append(w.stack, children[i])
		}
	}
	return n, true
}

// PreOrder collects the full pre-order sequence of root's subtree. Most
// callers should prefer streaming via Walker directly; this is a
// convenience for tests and small trees.
func PreOrder(root Node) []Node {
	w := NewWalker(root)
	var out []Node
	for {
		n, ok := w.Next()
		if !ok {
			return out
		}
		out = append(out, n)
	}
}

// childSpan folds a list of possibly-nil child nodes into the (first
// start, last end) union span used for every composite node's Span().
// A nil entry (an absent Optional slot) is skipped.
func childSpan(children ...Node) Span {
	var result Span
	has := false
	for _, c := range children {
		if c == nil {
			continue
		}
		s := c.Span()
		if s.Buf == nil {
			continue
		}
		if !has {
			result = s
			has = true
			continue
		}
		result = Union(result, s)
	}
	return result
}
