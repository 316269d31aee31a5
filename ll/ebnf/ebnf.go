/*
Package ebnf reads grammars for package ll from EBNF descriptions, as
understood by golang.org/x/exp/ebnf:

    Production  = name "=" [ Expression ] "." .
    Expression  = Alternative { "|" Alternative } .
    Alternative = Term { Term } .
    Term        = name | token [ "…" token ] | Group | Option | Repetition .
    Group       = "(" Expression ")" .
    Option      = "[" Expression "]" .
    Repetition  = "{" Expression "}" .

Productions with a capitalized name become non-terminals. Lexical productions
(lower-case names) are not expanded, but are terminals named after the
production; the same holds for quoted tokens, which are terminals named by
their literal value. Scanners are expected to produce tokens with these names.

Alternatives result in multiple productions for a non-terminal. Groups,
options and repetitions introduce fresh non-terminals, named after the
production they occur in:

    A = x [ y ] .      becomes   A ::= x A_opt1,  A_opt1 ::= y | ε
    A = x { y } .      becomes   A ::= x A_rep1,  A_rep1 ::= y A_rep1 | ε
    A = ( x | y ) z .  becomes   A ::= A_grp1 z,  A_grp1 ::= x | y

Repetitions are right recursive, as LL(1) parsing demands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ebnf

import (
	"fmt"
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown/ll"
	"golang.org/x/exp/ebnf"
)

// tracer traces with key 'topdown.ebnf'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ebnf")
}

// Load reads an EBNF grammar from r and converts it to a grammar with start
// symbol start. If start is empty, the first non-lexical production in source
// order is the start symbol. name is used for error messages and as the
// grammar name.
func Load(name string, r io.Reader, start string) (*ll.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse grammar %s: %w", name, err)
	}
	prods := sourceOrder(grammar)
	if start == "" {
		if start = firstNonLexical(prods); start == "" {
			return nil, fmt.Errorf("grammar %s has no non-lexical production", name)
		}
		tracer().Debugf("grammar %s: start symbol is %s", name, start)
	}
	if err := ebnf.Verify(grammar, start); err != nil {
		return nil, fmt.Errorf("invalid grammar %s: %w", name, err)
	}
	c := &converter{b: ll.NewGrammarBuilder(name), counters: make(map[string]int)}
	c.b.SetStart(start)
	for _, prod := range prods {
		if isLexical(prod.Name.String) {
			continue
		}
		if err := c.convert(prod.Name.String, prod.Expr); err != nil {
			return nil, fmt.Errorf("grammar %s, production %s: %w", name, prod.Name.String, err)
		}
	}
	g, err := c.b.Grammar()
	if err != nil {
		return nil, err
	}
	g.Dump()
	return g, nil
}

func sourceOrder(grammar ebnf.Grammar) []*ebnf.Production {
	prods := make([]*ebnf.Production, 0, len(grammar))
	for _, p := range grammar {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Name.Pos().Offset < prods[j].Name.Pos().Offset
	})
	return prods
}

func firstNonLexical(prods []*ebnf.Production) string {
	for _, p := range prods {
		if !isLexical(p.Name.String) {
			return p.Name.String
		}
	}
	return ""
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// converter creates productions for a grammar builder. Productions for fresh
// non-terminals are queued and emitted after the production they occur in.
type converter struct {
	b        *ll.GrammarBuilder
	counters map[string]int
	pending  []rule
}

type rule struct {
	lhs string
	rhs ll.SymbolString
}

func (c *converter) convert(lhs string, expr ebnf.Expression) error {
	c.pending = c.pending[:0]
	alts, err := c.alternatives(lhs, expr)
	if err != nil {
		return err
	}
	for _, rhs := range alts {
		c.add(lhs, rhs)
	}
	for i := 0; i < len(c.pending); i++ { // pending may grow while emitting
		c.add(c.pending[i].lhs, c.pending[i].rhs)
	}
	return nil
}

func (c *converter) add(lhs string, rhs ll.SymbolString) {
	rb := c.b.LHS(lhs)
	for _, sym := range rhs {
		rb.Sym(sym)
	}
	p := rb.End()
	tracer().Debugf("%v", p)
}

func (c *converter) fresh(lhs, kind string) string {
	c.counters[lhs]++
	return fmt.Sprintf("%s_%s%d", lhs, kind, c.counters[lhs])
}

// alternatives converts an expression into a list of right hand sides.
func (c *converter) alternatives(lhs string, expr ebnf.Expression) ([]ll.SymbolString, error) {
	if expr == nil {
		return []ll.SymbolString{ll.Epsilon}, nil
	}
	var branches []ebnf.Expression
	if alt, ok := expr.(ebnf.Alternative); ok {
		branches = alt
	} else {
		branches = []ebnf.Expression{expr}
	}
	alts := make([]ll.SymbolString, 0, len(branches))
	for _, branch := range branches {
		rhs, err := c.sequence(lhs, branch)
		if err != nil {
			return nil, err
		}
		alts = append(alts, rhs)
	}
	return alts, nil
}

func (c *converter) sequence(lhs string, expr ebnf.Expression) (ll.SymbolString, error) {
	var terms []ebnf.Expression
	if seq, ok := expr.(ebnf.Sequence); ok {
		terms = seq
	} else {
		terms = []ebnf.Expression{expr}
	}
	rhs := make(ll.SymbolString, 0, len(terms))
	for _, term := range terms {
		sym, err := c.symbol(lhs, term)
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, sym)
	}
	return rhs, nil
}

func (c *converter) symbol(lhs string, term ebnf.Expression) (ll.Symbol, error) {
	switch x := term.(type) {
	case *ebnf.Name:
		if isLexical(x.String) {
			return ll.Terminal(x.String), nil
		}
		return ll.NonTerminal(x.String), nil
	case *ebnf.Token:
		return ll.Terminal(x.String), nil
	case *ebnf.Group:
		return c.helper(lhs, "grp", x.Body, false, false)
	case *ebnf.Option:
		return c.helper(lhs, "opt", x.Body, true, false)
	case *ebnf.Repetition:
		return c.helper(lhs, "rep", x.Body, true, true)
	case *ebnf.Range:
		return ll.Symbol{}, fmt.Errorf("%s: character range outside of lexical production",
			x.Pos())
	}
	return ll.Symbol{}, fmt.Errorf("%s: unexpected expression %T", term.Pos(), term)
}

// helper creates a fresh non-terminal N for the body of a group, option or
// repetition. Options and repetitions get an additional epsilon-production for N,
// repetitions have N appended to each alternative.
func (c *converter) helper(lhs, kind string, body ebnf.Expression, epsilon, recursive bool) (ll.Symbol, error) {
	name := c.fresh(lhs, kind)
	N := ll.NonTerminal(name)
	alts, err := c.alternatives(lhs, body)
	if err != nil {
		return N, err
	}
	for _, rhs := range alts {
		if recursive {
			rhs = append(append(ll.SymbolString{}, rhs...), N)
		}
		c.pending = append(c.pending, rule{lhs: name, rhs: rhs})
	}
	if epsilon {
		c.pending = append(c.pending, rule{lhs: name, rhs: ll.Epsilon})
	}
	return N, nil
}
