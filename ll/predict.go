package ll

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll/sparse"
)

// PredictTable is the prediction table of an LL(1) parser. It maps
// (non-terminal, lookahead) to the production to expand. Lookaheads are
// terminals or EOFMarker.
//
// The table is stored as a sparse matrix with rows for non-terminals and
// columns for lookaheads. Entries hold production serials.
type PredictTable struct {
	g         *Grammar
	matrix    *sparse.IntMatrix
	rows      map[Symbol]int
	cols      map[Symbol]int
	rowsyms   []Symbol
	colsyms   []Symbol
	conflicts int
}

// PredictEntry is an entry of the prediction table.
type PredictEntry struct {
	NonTerminal Symbol
	Lookahead   Symbol
	Production  *Production
}

const noRule = sparse.DefaultNullValue

func newPredictTable(g *Grammar) *PredictTable {
	t := &PredictTable{
		g:       g,
		rows:    make(map[Symbol]int),
		cols:    make(map[Symbol]int),
		rowsyms: g.NonTerminals(),
		colsyms: append(g.Terminals(), EOFMarker),
	}
	for i, A := range t.rowsyms {
		t.rows[A] = i
	}
	for j, a := range t.colsyms {
		t.cols[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.rowsyms), len(t.colsyms), noRule)
	return t
}

// buildPredictTable registers every production A ➞ α for the lookaheads in
// FIRST(α) and, if α is nullable, for FOLLOW(A). All collisions are recorded in
// the table, but only the first one is reported.
func buildPredictTable(ga *GrammarAnalysis) (*PredictTable, error) {
	t := newPredictTable(ga.g)
	var err error
	register := func(p *Production, la Symbol) {
		if e := t.register(p, la); e != nil && err == nil {
			err = e
		}
	}
	for _, p := range ga.g.Productions() {
		L, _ := ga.firstOfString(p.RHS)
		for _, a := range L.Values() {
			if a == EpsilonMarker {
				for _, f := range ga.follow[p.LHS].Values() {
					register(p, f)
				}
			} else {
				register(p, a)
			}
		}
	}
	tracer().Infof("PREDICT table for %s with %d entries, %d conflicts",
		ga.g.Name, t.Size(), t.conflicts)
	return t, err
}

func (t *PredictTable) register(p *Production, la Symbol) error {
	i, j := t.rows[p.LHS], t.cols[la]
	v1, v2 := t.matrix.Values(i, j)
	serial := int32(p.Serial)
	switch {
	case v1 == noRule:
		t.matrix.Set(i, j, serial)
		return nil
	case v1 == serial || v2 == serial:
		return nil
	}
	held := t.g.Production(int(v1))
	tracer().Errorf("conflict for (%s, %s): %s vs. %s", p.LHS, la, held, p)
	t.conflicts++
	if v2 == noRule {
		t.matrix.Add(i, j, serial)
	}
	return topdown.NewAmbiguityError(p.String(), held.String(), la.String())
}

// Lookup returns the production to expand for a non-terminal A, given a
// lookahead symbol.
func (t *PredictTable) Lookup(A Symbol, lookahead Symbol) (*Production, bool) {
	i, ok := t.rows[A]
	if !ok {
		return nil, false
	}
	j, ok := t.cols[lookahead]
	if !ok {
		return nil, false
	}
	if v := t.matrix.Value(i, j); v != noRule {
		return t.g.Production(int(v)), true
	}
	return nil, false
}

// Size returns the number of slots occupied.
func (t *PredictTable) Size() int {
	return t.matrix.ValueCount()
}

// HasConflicts is true if the grammar is not LL(1).
func (t *PredictTable) HasConflicts() bool {
	return t.conflicts > 0
}

// Entries returns all entries, ordered by non-terminal (order of appearance in
// the grammar), then by lookahead. For conflicting slots the first production
// registered is returned.
func (t *PredictTable) Entries() []PredictEntry {
	entries := make([]PredictEntry, 0, t.Size())
	t.matrix.Each(func(i, j int, a, _ int32) {
		entries = append(entries, PredictEntry{
			NonTerminal: t.rowsyms[i],
			Lookahead:   t.colsyms[j],
			Production:  t.g.Production(int(a)),
		})
	})
	return entries
}

// Signature returns a fingerprint of the table's mapping. Tables built from
// equal grammars have equal signatures.
func (t *PredictTable) Signature() (string, error) {
	type slot struct {
		NonTerminal string
		Lookahead   string
		Rule        string
	}
	var content struct {
		Grammar string
		Slots   []slot
	}
	content.Grammar = t.g.Name
	for _, e := range t.Entries() {
		content.Slots = append(content.Slots, slot{
			NonTerminal: e.NonTerminal.Name,
			Lookahead:   e.Lookahead.Name,
			Rule:        e.Production.String(),
		})
	}
	return structhash.Hash(content, 1)
}
