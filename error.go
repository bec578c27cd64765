package bnf

import "fmt"

// Position of a rune within the input text.
//
// Offset is a 0-based byte offset; Line and Column are 1-based and count
// runes, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the failure returned when input cannot be parsed as a grammar.
//
// It always carries the furthest position the parser reached and a
// description of the construct expected there.
type Error interface {
	error
	// Unadorned message, without position information.
	Message() string
	// Expected describes the construct that could not be recognised.
	Expected() string
	// Position the parse stopped at.
	Position() Position
}

type parseError struct {
	expected string
	pos      Position
}

func (p *parseError) Message() string {
	return fmt.Sprintf("expected %s", p.expected)
}

func (p *parseError) Expected() string { return p.expected }

func (p *parseError) Position() Position { return p.pos }

func (p *parseError) Error() string {
	return fmt.Sprintf("%s: %s", p.pos, p.Message())
}
