package ll

import (
	"fmt"
)

// GrammarAnalysis holds the results of the static analysis of a grammar:
// FIRST and FOLLOW sets of the non-terminals and the prediction table.
// A GrammarAnalysis is read-only and may be shared between parsers.
type GrammarAnalysis struct {
	g      *Grammar
	first  map[Symbol]*SymbolSet
	follow map[Symbol]*SymbolSet
	table  *PredictTable
}

// Analysis analyzes a grammar. It computes FIRST and FOLLOW sets and builds
// the prediction table.
//
// If the grammar is not LL(1), the returned error is a *topdown.AmbiguityError for
// the first colliding production. In this case the analysis is returned
// nevertheless, for clients wanting to inspect the conflicts. For all other
// errors the analysis is nil.
func Analysis(g *Grammar) (*GrammarAnalysis, error) {
	if g == nil {
		return nil, fmt.Errorf("cannot analyze nil grammar")
	}
	ga := &GrammarAnalysis{
		g:      g,
		first:  make(map[Symbol]*SymbolSet),
		follow: make(map[Symbol]*SymbolSet),
	}
	if err := ga.computeFirstSets(); err != nil {
		return nil, err
	}
	ga.computeFollowSets()
	var err error
	ga.table, err = buildPredictTable(ga)
	return ga, err
}

// Grammar returns the grammar this analysis is for.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// Table returns the prediction table.
func (ga *GrammarAnalysis) Table() *PredictTable {
	return ga.table
}

// First returns FIRST(sym). For a terminal t this is {t}, for markers the set
// contains just the marker. Symbols unknown to the grammar have an empty
// FIRST set.
func (ga *GrammarAnalysis) First(sym Symbol) *SymbolSet {
	if sym.Kind != NonTerminalKind {
		return NewSymbolSet(sym)
	}
	return NewSymbolSet(ga.first[sym].Values()...)
}

// FirstOfString returns FIRST of a sequence of symbols. The set contains
// the epsilon marker iff all symbols of the sequence are nullable, especially
// for the empty sequence.
func (ga *GrammarAnalysis) FirstOfString(syms SymbolString) *SymbolSet {
	f, _ := ga.firstOfString(syms)
	return f
}

// Follow returns FOLLOW(A) for a non-terminal A. The set may contain the EOF
// marker.
func (ga *GrammarAnalysis) Follow(A Symbol) *SymbolSet {
	return NewSymbolSet(ga.follow[A].Values()...)
}

// Nullable is a predicate: may A derive the empty string?
func (ga *GrammarAnalysis) Nullable(A Symbol) bool {
	return ga.first[A].Contains(EpsilonMarker)
}

// Dump is a debugging helper, tracing the FIRST and FOLLOW sets of all
// non-terminals.
func (ga *GrammarAnalysis) Dump() {
	for _, A := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s)  = %v", A, ga.first[A])
		tracer().Debugf("FOLLOW(%s) = %v", A, ga.follow[A])
	}
}
