package ll

import "fmt"

// GrammarBuilder is used to construct a Grammar.
//
//     b := NewGrammarBuilder("G")
//     b.LHS("S").T("a").N("S").T("b").End()   // S  ->  a S b
//     b.LHS("S").Epsilon()                    // S  ->
//     g, err := b.Grammar()
//
// Every non-terminal used on a right hand side must appear as the left hand side
// of at least one production, otherwise Grammar() will fail.
type GrammarBuilder struct {
	g     *Grammar
	start string
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(gname)}
}

// RuleBuilder is a builder type for a single production.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs SymbolString
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if gb.start == "" {
		gb.start = name
	}
	return &RuleBuilder{gb: gb, lhs: NonTerminal(name)}
}

// SetStart sets the start symbol of the grammar. If it is never called, the
// left hand side of the first rule is the start symbol.
func (gb *GrammarBuilder) SetStart(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// N appends a non-terminal to the right hand side of a rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, NonTerminal(name))
	return rb
}

// T appends a terminal to the right hand side of a rule. name is the name of
// the tokens instantiating the terminal.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Terminal(name))
	return rb
}

// Sym appends an arbitrary symbol. Markers are rejected by Grammar().
func (rb *RuleBuilder) Sym(sym Symbol) *RuleBuilder {
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// End closes a rule and adds it to the grammar. A rule without any symbols on
// the right hand side is an epsilon-production.
func (rb *RuleBuilder) End() *Production {
	rhs := rb.rhs
	if rhs == nil {
		rhs = Epsilon
	}
	return rb.gb.g.addProduction(rb.lhs, rhs)
}

// Epsilon closes a rule as an epsilon-production and adds it to the grammar.
// Symbols collected so far are dropped.
func (rb *RuleBuilder) Epsilon() *Production {
	return rb.gb.g.addProduction(rb.lhs, Epsilon)
}

// Grammar returns the grammar built so far, after checking it for consistency.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := gb.g
	if g.rules.Empty() {
		return nil, fmt.Errorf("grammar %s has no productions", g.Name)
	}
	start := NonTerminal(gb.start)
	if len(g.ProductionsFor(start)) == 0 {
		return nil, fmt.Errorf("grammar %s: start symbol %s has no production", g.Name, gb.start)
	}
	g.start = start
	for _, p := range g.Productions() {
		for _, sym := range p.RHS {
			if sym.IsMarker() {
				return nil, fmt.Errorf("grammar %s: marker %s on right hand side of rule %d",
					g.Name, sym, p.Serial)
			} else if sym.IsNonTerminal() && len(g.ProductionsFor(sym)) == 0 {
				return nil, fmt.Errorf("grammar %s: non-terminal %s in rule %d has no production",
					g.Name, sym, p.Serial)
			}
		}
	}
	return g, nil
}
