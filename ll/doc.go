/*
Package ll implements prerequisites for LL(1) parsing: a grammar model and
the static analysis of grammars.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
identified by name; the name of a terminal has to match the name of the
tokens a scanner produces for it. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()   // S  ->  A a
    b.LHS("A").N("B").N("D").End()   // A  ->  B D
    b.LHS("B").T("b").End()          // B  ->  b
    b.LHS("B").Epsilon()             // B  ->
    b.LHS("D").T("d").End()          // D  ->  d
    b.LHS("D").Epsilon()             // D  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S ::= A a
   1: A ::= B D
   2: B ::= b
   3: B ::= ε
   4: D ::= d
   5: D ::= ε

The first left hand side is the start symbol, unless the builder is told
otherwise with SetStart. End of input is never part of a grammar; it is
represented by the marker symbol EOFMarker and implicitly follows the start
symbol.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an Analysis, which computes FIRST and FOLLOW sets
for the grammar and constructs the prediction table for an LL(1) parser.

    ga, err := ll.Analysis(g)  // analyser for grammar above
    for _, A := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
    }

    // Output:
    FIRST(S) = {a, b, d}
    FIRST(A) = {b, d, ε}
    FIRST(B) = {b, ε}
    FIRST(D) = {d, ε}

All sets are computed as fixed points, i.e. the computation runs until a full
round over all productions does not change any set. This copes with chains of
nullable non-terminals and with (mutual) left recursion.

The Prediction Table

For every production A ➞ α the PREDICT set holds the lookaheads which select
the production: the terminals of FIRST(α) and, if α may derive the empty
string, the symbols of FOLLOW(A). The prediction table maps each
(A, lookahead) pair to at most one production. If two different productions
claim the same slot, the grammar is not LL(1) and Analysis returns a
*topdown.AmbiguityError. The table is still built, with conflicting slots
holding both productions, to help with debugging the grammar (see
PredictTableAsHTML).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
