package bnf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroOrMore(t *testing.T) {
	c := newCursor("aaab")
	letterA := func(c *cursor) (rune, error) {
		if c.eat('a') {
			return 'a', nil
		}
		return 0, c.fail(`"a"`)
	}
	out, err := zeroOrMore(letterA)(c)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, 3, c.pos.Offset)

	// Zero matches is still a success and consumes nothing.
	out, err = zeroOrMore(letterA)(c)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, 3, c.pos.Offset)
}

func TestOneOrMore(t *testing.T) {
	letterA := func(c *cursor) (rune, error) {
		if c.eat('a') {
			return 'a', nil
		}
		return 0, c.fail(`"a"`)
	}
	out, err := oneOrMore(letterA)(newCursor("aa"))
	require.NoError(t, err)
	require.Len(t, out, 2)

	_, err = oneOrMore(letterA)(newCursor("b"))
	require.Error(t, err)
}

func TestFirstOfRewinds(t *testing.T) {
	// The first alternative consumes input before failing; the second must
	// still see the original position.
	ab := func(c *cursor) (string, error) {
		if c.eat('a') && c.eat('b') {
			return "ab", nil
		}
		return "", c.fail(`"ab"`)
	}
	ac := func(c *cursor) (string, error) {
		if c.eat('a') && c.eat('c') {
			return "ac", nil
		}
		return "", c.fail(`"ac"`)
	}
	c := newCursor("ac")
	v, err := firstOf(ab, ac)(c)
	require.NoError(t, err)
	require.Equal(t, "ac", v)
	require.True(t, c.eof())

	_, err = firstOf(ab, ac)(newCursor("ad"))
	require.Error(t, err)
}
