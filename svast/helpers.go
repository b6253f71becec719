package svast

import "github.com/hdlcore/svparse/svsyntax"

// childSpanOf folds a list of possibly-absent Node values (typically
// svsyntax.Optional[T] fields) into their union span, the svast-side
// counterpart of svsyntax's unexported childSpan helper used by the
// engine's own structural types.
func childSpanOf(nodes ...svsyntax.Node) svsyntax.Span {
	var result svsyntax.Span
	has := false
	for _, n := range nodes {
		if n == nil {
			continue
		}
		s := n.Span()
		if s.Buf == nil {
			continue
		}
		if !has {
			result = s
			has = true
			continue
		}
		result = svsyntax.Union(result, s)
	}
	return result
}
