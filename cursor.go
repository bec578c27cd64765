package bnf

import (
	"strings"
	"unicode/utf8"
)

// cursor is the shared position-tracked view of the input that every parser
// operates on. Backtracking is a matter of saving and restoring the
// position; the deepest failure recorded across all attempts is the one the
// driver ultimately reports.
type cursor struct {
	input   string
	pos     Position
	deepest *parseError
}

func newCursor(input string) *cursor {
	return &cursor{input: input, pos: Position{Line: 1, Column: 1}}
}

func (c *cursor) eof() bool {
	return c.pos.Offset >= len(c.input)
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	return r, true
}

// next consumes and returns the next rune, updating line/column accounting.
func (c *cursor) next() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	c.pos.Offset += size
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r, true
}

// eat consumes the next rune if it equals r.
func (c *cursor) eat(r rune) bool {
	if next, ok := c.peek(); ok && next == r {
		c.next()
		return true
	}
	return false
}

// eatString consumes s if it is the next input.
func (c *cursor) eatString(s string) bool {
	if !strings.HasPrefix(c.input[c.pos.Offset:], s) {
		return false
	}
	for range s {
		c.next()
	}
	return true
}

func (c *cursor) mark() Position { return c.pos }

func (c *cursor) rewind(m Position) { c.pos = m }

// fail records a failure at the current position and returns it. The cursor
// keeps whichever failure reached furthest into the input; at equal depth
// the most recent expectation wins, so the outermost parser's view of a
// stuck position is the one reported.
func (c *cursor) fail(expected string) error {
	err := &parseError{expected: expected, pos: c.pos}
	if c.deepest == nil || err.pos.Offset >= c.deepest.pos.Offset {
		c.deepest = err
	}
	return err
}
