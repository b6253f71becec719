package svsyntax

// ParseFunc is the uniform shape every production and combinator is built
// from: given a Cursor, return the advanced Cursor and a value on
// success, or a non-nil *Failure with the input cursor unchanged.
type ParseFunc[T any] func(Cursor) (Cursor, T, *Failure)

// Memoize wraps body with packrat-style negative memoization keyed by
// (tag, offset): once a production is known to fail at a given offset it
// never re-runs there. Only failures are cached — the left-recursion
// guard below already bounds re-entry, and caching successful values
// would need a type-erased success cache with no benefit for a
// single-pass parse.
func Memoize[T any](tag ProductionTag, body ParseFunc[T]) ParseFunc[T] {
	return func(c Cursor) (Cursor, T, *Failure) {
		key := memoKey{tag: tag, offset: c.Offset}
		if f, ok := c.tables.memo[key]; ok {
			var zero T
			return c, zero, &f
		}
		next, val, fail := body(c)
		if fail != nil {
			c.tables.memo[key] = *fail
		}
		return next, val, fail
	}
}

// MaybeRecursive wraps a production body with the Warth seed-parse/grow
// algorithm so direct and indirect left recursion terminate instead of
// looping forever. body is invoked repeatedly:
// first to establish a seed (the longest non-left-recursive match, or
// failure), then — if the seed succeeded — again and again with the
// production marked "growing" and the current seed published, each time
// keeping the result only if it advanced the offset further than the
// previous seed. The loop stops the first time a growth attempt fails to
// advance, which is always reached since the buffer is finite.
func MaybeRecursive[T any](tag ProductionTag, body ParseFunc[T]) ParseFunc[T] {
	return func(c Cursor) (Cursor, T, *Failure) {
		key := memoKey{tag: tag, offset: c.Offset}

		if frame, active := c.tables.active[key]; active {
			switch frame.state {
			case recEvaluating:
				// Re-entering the same production at the same offset
				// while still seeding: this is the left-recursive call.
				// Fail without consuming so the enclosing alt() can try
				// a non-recursive alternative (that's what produces the
				// seed).
				frame.detected = true
				var zero T
				return c, zero, c.fail(FailSyntactic, "left-recursive entry (seeding)", false)
			case recGrowing:
				// Re-entry during a grow step: hand back the seed
				// established by the previous round.
				if seed, ok := c.tables.seeds[key]; ok {
					val, _ := seed.val.(T)
					return seed.cursor, val, nil
				}
				var zero T
				return c, zero, c.fail(FailInvariant, "growing recursion with no seed", false)
			}
		}

		c.tables.depth++
		if c.tables.depth > c.tables.maxDepth {
			c.tables.depth--
			c.tables.log.Warnf("recursion limit %d exceeded in %s at offset %d", c.tables.maxDepth, ProductionName(tag), c.Offset)
			var zero T
			// A hard abort, not an ordinary backtrackable failure: mark
			// it Consumed so sticky-on-consume prevents Alt from
			// quietly trying a sibling alternative instead.
			return c, zero, c.fail(FailRecursionLimit, "maximum speculative recursion depth exceeded", true)
		}

		frame := &recFrame{state: recEvaluating}
		c.tables.active[key] = frame
		next, val, fail := body(c)
		delete(c.tables.active, key)
		c.tables.depth--

		if !frame.detected {
			// No left recursion was observed for this (tag, offset): the
			// first result is final, recursive or not.
			return next, val, fail
		}

		// The left-recursive re-entry's failure was cached by Memoize under
		// this same key; drop it so the grow rounds below reach the seed
		// and later attempts at this offset are not refused from the cache.
		delete(c.tables.memo, key)

		if fail != nil {
			// The seed itself failed; there is nothing to grow.
			return next, val, fail
		}

		c.tables.log.Tracef("growing %s from offset %d", ProductionName(tag), c.Offset)

		// Seed established. Grow: re-run body with the production marked
		// Growing and the current-best result published as the seed,
		// accepting each re-run only if it advanced further than the
		// last. This always terminates because Offset is bounded by
		// len(buffer) and each accepted round strictly increases it.
		bestCursor, bestVal, bestOffset := next, val, next.Offset
		for {
			c.tables.seeds[key] = seedEntry{cursor: bestCursor, val: bestVal}
			c.tables.active[key] = &recFrame{state: recGrowing}
			grown, grownVal, grownFail := body(c)
			delete(c.tables.active, key)

			if grownFail != nil || grown.Offset <= bestOffset {
				break
			}
			bestCursor, bestVal, bestOffset = grown, grownVal, grown.Offset
		}
		delete(c.tables.seeds, key)
		return bestCursor, bestVal, nil
	}
}

// Production composes the two per-production wrappers every named
// production carries: failure memoization (outermost,
// so a repeated attempt at the same (tag, offset) — e.g. after a
// caller backtracks and retries — returns the cached failure without
// re-running the left-recursion machinery) around the seed-parse/grow
// left-recursion guard. Every svast top-level production variable is
// built with this, not with MaybeRecursive directly.
func Production[T any](tag ProductionTag, body ParseFunc[T]) ParseFunc[T] {
	return Memoize(tag, MaybeRecursive(tag, body))
}
