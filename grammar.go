package bnf

import (
	"encoding/json"
	"strings"
)

// A Term is an atomic grammar element: either a Literal to match verbatim
// or a RuleRef naming another rule. No further variants exist.
type Term interface {
	String() string
	term()
}

// Literal is a fixed string to match verbatim. The text is stored exactly
// as it appeared between the quotes; no escape processing is performed.
type Literal struct {
	Text string
}

func (Literal) term() {}

// String re-quotes the literal, preferring double quotes and falling back
// to single quotes when the text itself contains a double quote.
func (l Literal) String() string {
	if strings.ContainsRune(l.Text, '"') {
		return "'" + l.Text + "'"
	}
	return `"` + l.Text + `"`
}

func (l Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"literal": l.Text})
}

// RuleRef is a reference to another rule by name. The name is never empty
// and never contains whitespace.
type RuleRef struct {
	Name string
}

func (RuleRef) term() {}

func (r RuleRef) String() string {
	return "<" + r.Name + ">"
}

func (r RuleRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"ref": r.Name})
}

// A Sequence is an ordered, non-empty concatenation of terms forming one
// alternative of a rule body.
type Sequence []Term

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, term := range s {
		parts[i] = term.String()
	}
	return strings.Join(parts, " ")
}

// An Alternation is the ordered, non-empty list of alternatives making up
// the right-hand side of a rule. The parser preserves source order; any
// priority among alternatives is the consumer's business.
type Alternation []Sequence

func (a Alternation) String() string {
	parts := make([]string, len(a))
	for i, seq := range a {
		parts[i] = seq.String()
	}
	return strings.Join(parts, " | ")
}

// A Rule binds a name to its alternation body.
type Rule struct {
	Name string      `json:"name"`
	Body Alternation `json:"alternation"`
}

func (r *Rule) String() string {
	return "<" + r.Name + "> ::= " + r.Body.String()
}

// A Grammar is the complete parsed document: rule definitions in source
// order. Duplicate names are preserved, not rejected.
type Grammar struct {
	Rules []*Rule `json:"rules"`
}

// String emits the grammar in canonical textual form, one rule per line.
// Parsing the result yields an equal Grammar.
func (g *Grammar) String() string {
	parts := make([]string, len(g.Rules))
	for i, rule := range g.Rules {
		parts[i] = rule.String()
	}
	return strings.Join(parts, "\n")
}
