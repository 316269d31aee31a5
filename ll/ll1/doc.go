/*
Package ll1 provides a table-driven LL(1)-parser. Clients have to use the
tools of package ll to build a grammar. The parser analyses the grammar and
constructs its prediction table on creation; grammars which are not LL(1) are
rejected before any input is parsed.

The parser creates a leftmost derivation for a sequence of tokens and records
it as a concrete syntax tree (see package tree). It does not recurse: the
derivation is kept on an explicit stack, so nesting depth of the input is
limited by memory only.

Parsing stops at the first error. There is no error recovery.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := ll.NewGrammarBuilder("Balanced")
	b.LHS("S").T("a").N("S").T("b").End()  // S  -->  a S b
	b.LHS("S").Epsilon()                   // S  -->
	g, err := b.Grammar()

Then create a parser and parse some input:

	p, err := ll1.NewParser(g)
	if err != nil { ... }  // e.g., grammar is ambiguous
	tokens := []topdown.Token{
		topdown.MakeToken("a", "a"), topdown.MakeToken("a", "a"),
		topdown.MakeToken("b", "b"), topdown.MakeToken("b", "b"),
	}
	t, err := p.Parse(tokens)

Tokens may be read from a scanner, too:

	t, err := p.ParseTokenizer(scanner.GoTokenizer("input", reader))

Errors are of type *topdown.Error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll1")
}
