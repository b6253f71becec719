package svast

import (
	"github.com/alecthomas/repr"
	"github.com/hdlcore/svparse/svsyntax"
)

// Dump renders a parsed node tree for human inspection; repr's
// Go-syntax dump with empty fields omitted reads well for deep
// Optional-heavy trees, so no hand-rolled pretty-printer is needed.
func Dump(n svsyntax.Node) string {
	return repr.String(n, repr.Indent("  "), repr.OmitEmpty(true))
}
