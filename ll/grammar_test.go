package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, NonTerminal("S"), g.Start())
	assert.Equal(t, "D ::= ε", g.Production(5).String())
	assert.True(t, g.Production(5).RHS.IsEpsilon())
	assert.Equal(t, []Symbol{Terminal("a"), Terminal("b"), Terminal("d")}, g.Terminals())
	assert.Equal(t, []Symbol{NonTerminal("S"), NonTerminal("A"), NonTerminal("B"), NonTerminal("D")},
		g.NonTerminals())
	assert.Len(t, g.ProductionsFor(NonTerminal("B")), 2)
	sym, ok := g.SymbolByName("d")
	assert.True(t, ok)
	assert.True(t, sym.IsTerminal())
	assert.Nil(t, g.Production(6))
}

func TestBuilderStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A").T("a").End()
	b.LHS("S").N("A").End()
	b.SetStart("S")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != NonTerminal("S") {
		t.Errorf("expected start symbol S, is %s", g.Start())
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	_, err := NewGrammarBuilder("empty").Grammar()
	assert.Error(t, err, "grammar without productions")
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("X").T("a").End()
	_, err = b.Grammar()
	assert.Error(t, err, "undefined non-terminal X")
	//
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.SetStart("Z")
	_, err = b.Grammar()
	assert.Error(t, err, "start symbol without production")
	//
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a").Sym(EOFMarker).End()
	_, err = b.Grammar()
	assert.Error(t, err, "marker on right hand side")
}

func TestSymbolOrder(t *testing.T) {
	set := NewSymbolSet(EpsilonMarker, NonTerminal("A"), Terminal("b"), EOFMarker, Terminal("a"))
	assert.Equal(t, []Symbol{Terminal("a"), Terminal("b"), NonTerminal("A"), EpsilonMarker, EOFMarker},
		set.Values())
	assert.Equal(t, "{a, b, A, ε, #eof}", set.String())
	assert.False(t, set.Add(Terminal("a")))
	assert.True(t, set.Add(Terminal("c")))
	var nilset *SymbolSet
	assert.False(t, nilset.Contains(Terminal("a")))
	assert.Equal(t, 0, nilset.Size())
}
