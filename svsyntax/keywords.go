package svsyntax

import "fmt"

// Version is the IEEE 1800/1364 language revision that parameterizes the
// active keyword set.
type Version int

const (
	// V1995 is plain Verilog-1995; no SystemVerilog keywords reserved.
	V1995 Version = iota + 1
	V2001
	V2005
	V2009
	V2012
	V2017
)

func (v Version) String() string {
	switch v {
	case V1995:
		return "1995"
	case V2001:
		return "2001"
	case V2005:
		return "2005"
	case V2009:
		return "2009"
	case V2012:
		return "2012"
	case V2017:
		return "2017"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// keywordInfo records, for one reserved word, the version it was first
// reserved in — SystemVerilog keywords accumulate across revisions, so
// one table with a version threshold per word serves every revision.
type keywordInfo struct {
	introducedIn Version
}

// defaultKeywords is the built-in IEEE 1800-2017 superset keyword table.
// Representative rather than exhaustive (~700 productions reference only
// a subset of the full reserved-word list directly as literal keywords;
// this table covers every keyword svast's grammar actually matches,
// plus enough of the wider reserved set to make IsKeyword meaningful for
// arbitrary identifiers).
var defaultKeywords = map[string]keywordInfo{
	// Verilog-1995 core
	"module": {V1995}, "endmodule": {V1995}, "begin": {V1995}, "end": {V1995},
	"input": {V1995}, "output": {V1995}, "inout": {V1995}, "wire": {V1995},
	"reg": {V1995}, "integer": {V1995}, "real": {V1995}, "time": {V1995},
	"parameter": {V1995}, "defparam": {V1995},
	"assign": {V1995}, "always": {V1995}, "initial": {V1995},
	"if": {V1995}, "else": {V1995}, "case": {V1995}, "casex": {V1995}, "casez": {V1995},
	"endcase": {V1995}, "default": {V1995}, "for": {V1995}, "while": {V1995},
	"forever": {V1995}, "repeat": {V1995}, "wait": {V1995}, "disable": {V1995},
	"function": {V1995}, "endfunction": {V1995}, "task": {V1995}, "endtask": {V1995},
	"posedge": {V1995}, "negedge": {V1995}, "edge": {V1995}, "or": {V1995}, "and": {V1995},
	"specify": {V1995}, "endspecify": {V1995}, "specparam": {V1995}, "ifnone": {V1995},
	"primitive": {V1995}, "endprimitive": {V1995}, "table": {V1995}, "endtable": {V1995},
	"supply0": {V1995}, "supply1": {V1995}, "tri": {V1995}, "triand": {V1995},
	"trior": {V1995}, "trireg": {V1995}, "tri0": {V1995}, "tri1": {V1995},
	"wand": {V1995}, "wor": {V1995},
	"strong0": {V1995}, "strong1": {V1995}, "pull0": {V1995}, "pull1": {V1995},
	"weak0": {V1995}, "weak1": {V1995}, "highz0": {V1995}, "highz1": {V1995},
	"small": {V1995}, "medium": {V1995}, "large": {V1995},
	"generate": {V1995}, "endgenerate": {V1995}, "genvar": {V1995},

	// Verilog-2001
	"config": {V2001}, "endconfig": {V2001}, "design": {V2001}, "instance": {V2001},
	"use": {V2001}, "liblist": {V2001}, "cell": {V2001}, "incdir": {V2001},
	"library": {V2001}, "include": {V2001},
	"signed": {V2001}, "unsigned": {V2001}, "automatic": {V2001}, "localparam": {V2001},

	// SystemVerilog-2005 / 1800-2005
	"logic": {V2005}, "bit": {V2005}, "byte": {V2005}, "shortint": {V2005},
	"longint": {V2005}, "int": {V2005}, "struct": {V2005}, "union": {V2005},
	"enum": {V2005}, "typedef": {V2005}, "packed": {V2005}, "interface": {V2005},
	"endinterface": {V2005}, "modport": {V2005}, "class": {V2005}, "endclass": {V2005},
	"extends": {V2005}, "package": {V2005}, "endpackage": {V2005}, "import": {V2005},
	"export": {V2005}, "program": {V2005}, "endprogram": {V2005}, "clocking": {V2005},
	"endclocking": {V2005}, "property": {V2005}, "endproperty": {V2005},
	"sequence": {V2005}, "endsequence": {V2005}, "assert": {V2005}, "assume": {V2005},
	"cover": {V2005}, "constraint": {V2005}, "randomize": {V2005}, "rand": {V2005},
	"randc": {V2005}, "static": {V2005}, "virtual": {V2005}, "extern": {V2005},
	"super": {V2005}, "this": {V2005}, "new": {V2005}, "null": {V2005},
	"foreach": {V2005}, "return": {V2005}, "break": {V2005}, "continue": {V2005},
	"do": {V2005}, "unique": {V2005}, "priority": {V2005}, "inside": {V2005},
	"dist": {V2005}, "solve": {V2005}, "before": {V2005}, "soft": {V2005},
	"alias": {V2005}, "wildcard": {V2005}, "ref": {V2005}, "const": {V2005},
	"pure": {V2005}, "protected": {V2005}, "local": {V2005}, "forkjoin": {V2005},
	"fork": {V2005}, "join": {V2005}, "join_any": {V2005}, "join_none": {V2005},
	"always_comb": {V2005}, "always_ff": {V2005}, "always_latch": {V2005},

	// 1800-2009 / 1800-2012
	"checker": {V2009}, "endchecker": {V2009}, "let": {V2009}, "final": {V2009},
	"implements": {V2012}, "interconnect": {V2012}, "nettype": {V2012},
	"with": {V2012}, "uwire": {V2012}, "var": {V2012},

	// 1800-2017
	"implies": {V2017},
}

// KeywordSet answers whether a given lowercase spelling is reserved at a
// specific Version. It is built once per Parse invocation: versions are
// parse parameters, not process-wide singletons.
type KeywordSet struct {
	version Version
	words   map[string]keywordInfo
}

// NewKeywordSet returns the keyword set active for version, drawn from
// the built-in table.
func NewKeywordSet(version Version) *KeywordSet {
	return &KeywordSet{version: version, words: defaultKeywords}
}

// IsKeyword reports whether lower (already lower-cased) is reserved at
// ks's version. The lexer first matches an identifier-shape token, then
// tests it against the active keyword set; callers needing an
// exact-spelling check use MatchesKeyword below.
func (ks *KeywordSet) IsKeyword(lower string) bool {
	info, ok := ks.words[lower]
	return ok && info.introducedIn <= ks.version
}

// MatchesKeyword reports whether lower is reserved at ks's version AND
// equals want.
func (ks *KeywordSet) MatchesKeyword(lower, want string) bool {
	return lower == want && ks.IsKeyword(lower)
}
