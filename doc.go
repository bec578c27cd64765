// Package bnf parses grammars written in a Backus–Naur-like notation into a
// structured document that other tools can validate, render or otherwise
// consume.
//
// The notation is the classic one:
//
//	<expr>  ::= <term> | <term> "+" <expr>
//	<term>  ::= 'x' | "(" <expr> ")"
//
// A rule binds a name to an alternation. Each alternative is a sequence of
// terms, and a term is either a quoted literal or a <reference> to another
// rule. Rules are separated by line breaks. Horizontal whitespace is
// insignificant everywhere except inside literals.
//
// Parse is the only entry point:
//
//	grammar, err := bnf.ParseString(`<greeting> ::= "hello" | "hi"`)
//
// The parser performs no semantic checks: duplicate rule names and
// references to rules that are never defined are preserved as written, for
// a later pass to reject or resolve as it sees fit.
package bnf
