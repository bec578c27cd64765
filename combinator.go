package bnf

// A parserFn is one composable parsing step. On failure the cursor may be
// left mid-construct; callers that want to try something else rewind to
// their own mark.
type parserFn[T any] func(*cursor) (T, error)

// firstOf tries each alternative from the same starting position and
// returns the first that succeeds. The error returned is the last
// alternative's, but the deepest failure is already recorded on the cursor.
func firstOf[T any](alts ...parserFn[T]) parserFn[T] {
	return func(c *cursor) (T, error) {
		start := c.mark()
		var (
			zero T
			err  error
		)
		for _, alt := range alts {
			var v T
			if v, err = alt(c); err == nil {
				return v, nil
			}
			c.rewind(start)
		}
		return zero, err
	}
}

// zeroOrMore applies p until it fails, rewinding past the failed attempt.
// It never fails itself.
func zeroOrMore[T any](p parserFn[T]) parserFn[[]T] {
	return func(c *cursor) ([]T, error) {
		var out []T
		for {
			m := c.mark()
			v, err := p(c)
			if err != nil {
				c.rewind(m)
				return out, nil
			}
			out = append(out, v)
		}
	}
}

// oneOrMore is zeroOrMore with a mandatory first match.
func oneOrMore[T any](p parserFn[T]) parserFn[[]T] {
	return func(c *cursor) ([]T, error) {
		first, err := p(c)
		if err != nil {
			return nil, err
		}
		rest, _ := zeroOrMore(p)(c)
		return append([]T{first}, rest...), nil
	}
}
