package svsyntax

// ParseOptions configures one invocation of Parse. The zero value is
// valid and uses DefaultMaxDepth with a no-op logger.
type ParseOptions struct {
	MaxDepth int
	Logger   Logger
}

// Result pairs a parsed root with a failure. Run and RunWithKeywords
// return the same two values directly, with a nil failure on success.
type Result[T Node] struct {
	Root    T
	Failure *Failure
}

// Run drives entry over src under version, returning the root value or
// the furthest-reached failure. This is the shape every svast top-level
// production (SourceText, Module, etc.) builds its exported Parse
// wrapper from.
func Run[T Node](src []byte, file FileRef, version Version, opts ParseOptions, entry ParseFunc[T]) (T, *Failure) {
	return RunWithKeywords(src, file, NewKeywordSet(version), opts, entry)
}

// RunWithKeywords is Run with an explicit KeywordSet, letting a caller
// supply one built via KeywordOverrides.Apply instead of the bare
// version-default table.
func RunWithKeywords[T Node](src []byte, file FileRef, ks *KeywordSet, opts ParseOptions, entry ParseFunc[T]) (T, *Failure) {
	log := opts.Logger
	if log == nil {
		log = NoopLogger()
	}
	buf := NewBuffer(file, src)
	c := NewCursor(buf, opts.MaxDepth, log, ks)

	next, root, fail := entry(c)
	if fail != nil {
		return root, fail
	}

	// Trailing trivia-only input is fine; trailing real tokens are not
	// (the grammar's entry point is expected to consume the whole file).
	rest, trivia, trailFail := scanTrivia(next)
	if trailFail != nil {
		return root, trailFail
	}
	_ = trivia
	if !rest.AtEnd() {
		return root, rest.fail(FailSyntactic, "unexpected trailing input", false)
	}
	return root, nil
}
