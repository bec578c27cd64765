package bnf

import (
	"fmt"
	"io"
	"strings"
)

// Lexical predicates. Names are ASCII-only: a letter followed by letters,
// digits or dashes.

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameChar(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9') || r == '-'
}

func isHorizontal(r rune) bool {
	return r == ' ' || r == '\t'
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// skipHorizontal discards any run of spaces and tabs.
func skipHorizontal(c *cursor) {
	for {
		r, ok := c.peek()
		if !ok || !isHorizontal(r) {
			return
		}
		c.next()
	}
}

// lineEnd consumes at least one line terminator, optionally preceded by
// horizontal whitespace, then swallows any further run of blank space and
// terminators. It fails if no terminator is present.
func lineEnd(c *cursor) error {
	skipHorizontal(c)
	if r, ok := c.peek(); !ok || !isLineBreak(r) {
		return c.fail("line break")
	}
	for {
		r, ok := c.peek()
		if !ok || (!isHorizontal(r) && !isLineBreak(r)) {
			return nil
		}
		c.next()
	}
}

// parseName recognises a rule name: one ASCII letter followed by any number
// of letters, digits or dashes.
func parseName(c *cursor) (string, error) {
	r, ok := c.peek()
	if !ok || !isLetter(r) {
		return "", c.fail("rule name")
	}
	var sb strings.Builder
	sb.WriteRune(r)
	c.next()
	for {
		r, ok := c.peek()
		if !ok || !isNameChar(r) {
			return sb.String(), nil
		}
		sb.WriteRune(r)
		c.next()
	}
}

// parseLiteral recognises a single- or double-quoted literal. The body runs
// to the matching close quote and is captured verbatim: there are no
// escapes, so a double-quoted body may contain ' and vice versa.
func parseLiteral(c *cursor) (Term, error) {
	quote, ok := c.peek()
	if !ok || (quote != '"' && quote != '\'') {
		return nil, c.fail("string literal")
	}
	c.next()
	var sb strings.Builder
	for {
		r, ok := c.peek()
		if !ok {
			return nil, c.fail(fmt.Sprintf("closing %c", quote))
		}
		c.next()
		if r == quote {
			return Literal{Text: sb.String()}, nil
		}
		sb.WriteRune(r)
	}
}

// parseRuleRef recognises "<" name ">". The name parser rejects emptiness
// and leading non-letters, so <> and < > fail here.
func parseRuleRef(c *cursor) (Term, error) {
	if !c.eat('<') {
		return nil, c.fail(`"<"`)
	}
	name, err := parseName(c)
	if err != nil {
		return nil, err
	}
	if !c.eat('>') {
		return nil, c.fail(`">"`)
	}
	return RuleRef{Name: name}, nil
}

// parseTerm recognises the atomic unit of a rule body: a literal or a rule
// reference. The two are disambiguated by their leading character, so the
// first alternative to get past it wins outright.
func parseTerm(c *cursor) (Term, error) {
	term, err := firstOf(parseRuleRef, parseLiteral)(c)
	if err != nil {
		return nil, c.fail("term")
	}
	return term, nil
}

// parseSequence recognises one or more terms. No separator is required;
// horizontal whitespace between terms is discarded.
func parseSequence(c *cursor) (Sequence, error) {
	terms, err := oneOrMore(func(c *cursor) (Term, error) {
		skipHorizontal(c)
		return parseTerm(c)
	})(c)
	if err != nil {
		return nil, err
	}
	return Sequence(terms), nil
}

// parseAlternation recognises sequences separated by "|". Whitespace around
// the bar is insignificant.
func parseAlternation(c *cursor) (Alternation, error) {
	first, err := parseSequence(c)
	if err != nil {
		return nil, err
	}
	rest, _ := zeroOrMore(func(c *cursor) (Sequence, error) {
		skipHorizontal(c)
		if !c.eat('|') {
			return nil, c.fail(`"|"`)
		}
		skipHorizontal(c)
		return parseSequence(c)
	})(c)
	return append(Alternation{first}, rest...), nil
}

// parseRule recognises a full definition: <name> ::= alternation. Leading
// and trailing horizontal whitespace is consumed; the terminating line
// break, if any, is the syntax parser's to deal with.
func parseRule(c *cursor) (*Rule, error) {
	skipHorizontal(c)
	if !c.eat('<') {
		return nil, c.fail(`"<"`)
	}
	name, err := parseName(c)
	if err != nil {
		return nil, err
	}
	if !c.eat('>') {
		return nil, c.fail(`">"`)
	}
	skipHorizontal(c)
	if !c.eatString("::=") {
		return nil, c.fail(`"::="`)
	}
	skipHorizontal(c)
	body, err := parseAlternation(c)
	if err != nil {
		return nil, err
	}
	skipHorizontal(c)
	return &Rule{Name: name, Body: body}, nil
}

// parseSyntax recognises the whole document: one or more rules separated by
// line breaks, with trailing blank lines tolerated. Anything left over after
// that is an error.
func parseSyntax(c *cursor) (*Grammar, error) {
	first, err := parseRule(c)
	if err != nil {
		return nil, err
	}
	rest, _ := zeroOrMore(func(c *cursor) (*Rule, error) {
		if err := lineEnd(c); err != nil {
			return nil, err
		}
		return parseRule(c)
	})(c)
	m := c.mark()
	if err := lineEnd(c); err != nil {
		c.rewind(m)
	}
	if !c.eof() {
		return nil, c.fail("end of input")
	}
	return &Grammar{Rules: append([]*Rule{first}, rest...)}, nil
}

// ParseString parses a complete grammar document. On success the returned
// Grammar is complete and never aliased by the parser; on failure the error
// is an Error carrying the furthest position reached and the construct
// expected there. A partial document is never returned.
func ParseString(input string) (*Grammar, error) {
	c := newCursor(input)
	grammar, err := parseSyntax(c)
	if err != nil {
		if c.deepest != nil {
			return nil, c.deepest
		}
		return nil, err
	}
	return grammar, nil
}

// Parse reads all of r and parses it as a grammar document.
func Parse(r io.Reader) (*Grammar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}
