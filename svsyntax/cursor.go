package svsyntax

import "fmt"

// DefaultMaxDepth bounds speculative recursion per parse; exceeding it
// aborts deterministically with FailRecursionLimit.
const DefaultMaxDepth = 4000

type memoKey struct {
	tag    ProductionTag
	offset int
}

type recState int

const (
	recEvaluating recState = iota + 1
	recGrowing
)

type recFrame struct {
	state    recState
	detected bool
}

type seedEntry struct {
	cursor Cursor
	val    any
}

// tables is the interior-mutable side-channel every Cursor clone of one
// parse shares a pointer to: the failure-memoization map, the active
// left-recursion set, the transient seed store used while growing a
// left-recursive parse, and the recursion-depth counter. It is owned by
// the parse and dropped when the parse returns.
type tables struct {
	memo     map[memoKey]Failure
	active   map[memoKey]*recFrame
	seeds    map[memoKey]seedEntry
	depth    int
	maxDepth int
	log      Logger
	keywords *KeywordSet
}

func newTables(maxDepth int, log Logger, ks *KeywordSet) *tables {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &tables{
		memo:     make(map[memoKey]Failure),
		active:   make(map[memoKey]*recFrame),
		seeds:    make(map[memoKey]seedEntry),
		maxDepth: maxDepth,
		log:      log,
		keywords: ks,
	}
}

// Cursor is a lightweight value carrying the current byte offset, a
// reference to the whole buffer, and a pointer to the side tables
// shared by every clone taken during one parse. Advancing a
// Cursor never mutates those shared tables through the Cursor itself;
// only the combinator framework's memoization/recursion-guard wrappers
// touch tables, and always keyed by (production, offset) so concurrent
// speculative branches never corrupt each other's bookkeeping.
type Cursor struct {
	Offset int
	Buf    *Buffer
	tables *tables
}

// NewCursor returns a Cursor positioned at the start of buf, lexing
// keywords against ks.
func NewCursor(buf *Buffer, maxDepth int, log Logger, ks *KeywordSet) Cursor {
	return Cursor{Offset: 0, Buf: buf, tables: newTables(maxDepth, log, ks)}
}

// Keywords returns the KeywordSet active for this parse.
func (c Cursor) Keywords() *KeywordSet { return c.tables.keywords }

// AtEnd reports whether the cursor has consumed the entire buffer.
func (c Cursor) AtEnd() bool { return c.Offset >= len(c.Buf.Bytes) }

// Peek returns up to n bytes starting at the cursor without consuming
// them. The returned slice may be shorter than n near the end of input.
func (c Cursor) Peek(n int) []byte {
	end := c.Offset + n
	if end > len(c.Buf.Bytes) {
		end = len(c.Buf.Bytes)
	}
	if c.Offset >= end {
		return nil
	}
	return c.Buf.Bytes[c.Offset:end]
}

// PeekByte returns the byte at the cursor, and false at end of input.
func (c Cursor) PeekByte() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.Buf.Bytes[c.Offset], true
}

// Advance returns a new Cursor n bytes further along. It shares the same
// side tables — save/restore is simply keeping an old Cursor value
// around, since the tables persist across restores by design (memoized
// failures remain valid regardless of which speculative branch is live).
func (c Cursor) Advance(n int) Cursor {
	return Cursor{Offset: c.Offset + n, Buf: c.Buf, tables: c.tables}
}

// ConsumeWhile advances while pred holds for successive bytes, returning
// the consumed Span and the new Cursor.
func (c Cursor) ConsumeWhile(pred func(byte) bool) (Cursor, Span) {
	start := c.Offset
	i := c.Offset
	for i < len(c.Buf.Bytes) && pred(c.Buf.Bytes[i]) {
		i++
	}
	return c.Advance(i - start), Span{Buf: c.Buf, Offset: start, Length: i - start}
}

// spanFrom builds a Span covering [start, c.Offset).
func (c Cursor) spanFrom(start int) Span {
	return Span{Buf: c.Buf, Offset: start, Length: c.Offset - start}
}

func (c Cursor) fail(kind FailureKind, msg string, consumed bool) *Failure {
	return &Failure{Kind: kind, Offset: c.Offset, Buf: c.Buf, Message: msg, Consumed: consumed}
}

func (c Cursor) failf(kind FailureKind, consumed bool, format string, args ...any) *Failure {
	return c.fail(kind, fmt.Sprintf(format, args...), consumed)
}

// Fail builds a *Failure positioned at c for grammar productions outside
// package svsyntax (svast) that need to report a syntactic error not
// covered by a lower-level combinator's own failure.
func (c Cursor) Fail(kind FailureKind, msg string, consumed bool) *Failure {
	return c.fail(kind, msg, consumed)
}
