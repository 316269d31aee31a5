package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// SymbolString is the right hand side of a production. An empty symbol string
// denotes epsilon.
type SymbolString []Symbol

// Epsilon is the empty right hand side.
var Epsilon = SymbolString{}

// IsEpsilon is a predicate.
func (rhs SymbolString) IsEpsilon() bool {
	return len(rhs) == 0
}

func (rhs SymbolString) String() string {
	if rhs.IsEpsilon() {
		return EpsilonMarker.Name
	}
	names := make([]string, len(rhs))
	for i, sym := range rhs {
		names[i] = sym.Name
	}
	return strings.Join(names, " ")
}

// Production is a grammar rule A ➞ α. Serial is the index of the rule within
// the grammar's list of productions.
type Production struct {
	Serial int
	LHS    Symbol
	RHS    SymbolString
}

func (p *Production) String() string {
	return fmt.Sprintf("%s ::= %s", p.LHS, p.RHS)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for context-free grammars. Grammars are created by a
// GrammarBuilder and are read-only thereafter.
type Grammar struct {
	Name         string
	start        Symbol
	rules        *arraylist.List    // of *Production
	terminals    *linkedhashmap.Map // name -> Symbol, in order of appearance
	nonterminals *linkedhashmap.Map // name -> Symbol, in order of appearance
	lhsRules     map[Symbol][]*Production
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		rules:        arraylist.New(),
		terminals:    linkedhashmap.New(),
		nonterminals: linkedhashmap.New(),
		lhsRules:     make(map[Symbol][]*Production),
	}
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Production returns production #i.
func (g *Grammar) Production(i int) *Production {
	p, ok := g.rules.Get(i)
	if !ok {
		return nil
	}
	return p.(*Production)
}

// Productions returns all productions, ordered by serial number.
func (g *Grammar) Productions() []*Production {
	prods := make([]*Production, 0, g.rules.Size())
	g.rules.Each(func(_ int, p interface{}) {
		prods = append(prods, p.(*Production))
	})
	return prods
}

// ProductionsFor returns the productions with left hand side A.
func (g *Grammar) ProductionsFor(A Symbol) []*Production {
	return g.lhsRules[A]
}

// NonTerminals returns the non-terminals in order of first appearance.
func (g *Grammar) NonTerminals() []Symbol {
	return symbolValues(g.nonterminals)
}

// Terminals returns the terminals in order of first appearance.
func (g *Grammar) Terminals() []Symbol {
	return symbolValues(g.terminals)
}

// Terminal returns the terminal for a token name, if it is part of the grammar.
func (g *Grammar) Terminal(name string) (Symbol, bool) {
	if sym, ok := g.terminals.Get(name); ok {
		return sym.(Symbol), true
	}
	return Symbol{}, false
}

// SymbolByName finds a grammar symbol. Non-terminals take precedence over
// terminals with the same name.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	if sym, ok := g.nonterminals.Get(name); ok {
		return sym.(Symbol), true
	}
	return g.Terminal(name)
}

// Dump is a debugging helper, tracing all productions of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, p := range g.Productions() {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------------")
}

func (g *Grammar) addProduction(lhs Symbol, rhs SymbolString) *Production {
	p := &Production{Serial: g.rules.Size(), LHS: lhs, RHS: rhs}
	g.register(lhs)
	for _, sym := range rhs {
		g.register(sym)
	}
	g.rules.Add(p)
	g.lhsRules[lhs] = append(g.lhsRules[lhs], p)
	return p
}

func (g *Grammar) register(sym Symbol) {
	m := g.terminals
	if sym.IsNonTerminal() {
		m = g.nonterminals
	}
	if _, found := m.Get(sym.Name); !found {
		m.Put(sym.Name, sym)
	}
}

func symbolValues(m *linkedhashmap.Map) []Symbol {
	syms := make([]Symbol, 0, m.Size())
	for _, v := range m.Values() {
		syms = append(syms, v.(Symbol))
	}
	return syms
}
