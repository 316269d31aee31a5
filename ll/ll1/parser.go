package ll1

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/tree"
)

// Parser is an LL(1)-parser type. Create and initialize one with ll1.NewParser(...).
// A parser holds no state between calls to Parse and may be used repeatedly.
type Parser struct {
	G         *ll.Grammar
	ga        *ll.GrammarAnalysis
	verbosity Verbosity
	trace     tracing.Trace
}

// Verbosity selects which parser events are traced with level Info. Events
// above the verbosity level are still traced with level Debug.
type Verbosity int

// Verbosity levels.
const (
	V0 Verbosity = iota // quiet
	V1                  // start prediction and outcome of a parse
	V2                  // every derivation step
)

// Option configures a parser.
type Option func(p *Parser)

// WithVerbosity sets the verbosity level of the parser. Default is V0.
func WithVerbosity(v Verbosity) Option {
	return func(p *Parser) {
		p.verbosity = v
	}
}

// WithTracer sets the tracer for a parser. Default is a tracer for key 'topdown.ll1'.
func WithTracer(t tracing.Trace) Option {
	return func(p *Parser) {
		p.trace = t
	}
}

// NewParser creates an LL(1) parser for a grammar. It analyses the grammar and
// builds the prediction table. If the grammar is not LL(1), NewParser returns
// a *topdown.AmbiguityError.
func NewParser(g *ll.Grammar, opts ...Option) (*Parser, error) {
	p := &Parser{G: g}
	for _, opt := range opts {
		opt(p)
	}
	if p.trace == nil {
		p.trace = tracer()
	}
	ga, err := ll.Analysis(g)
	if err != nil {
		p.trace.Errorf("grammar %s cannot be used for LL(1) parsing: %v", g.Name, err)
		return nil, err
	}
	p.ga = ga
	return p, nil
}

// Analysis returns the grammar analysis the parser was built from.
func (p *Parser) Analysis() *ll.GrammarAnalysis {
	return p.ga
}

func (p *Parser) log(v Verbosity, format string, args ...interface{}) {
	if p.verbosity >= v {
		p.trace.Infof(format, args...)
		return
	}
	p.trace.Debugf(format, args...)
}

func (p *Parser) step(format string, args ...interface{}) {
	p.log(V2, format, args...)
}

func (p *Parser) summary(format string, args ...interface{}) {
	p.log(V1, format, args...)
}

// frame is an entry of the derivation stack: a tree node and the symbols of
// its production not yet derived, i.e. rhs[dot:]. The leftmost pending symbol
// is derived next.
type frame struct {
	node tree.NodeID
	rhs  ll.SymbolString
	dot  int
}

func (f *frame) done() bool {
	return f.dot >= len(f.rhs)
}

func (f *frame) next() ll.Symbol {
	sym := f.rhs[f.dot]
	f.dot++
	return sym
}

// ParseTokenizer reads all tokens from a scanner and parses them.
func (p *Parser) ParseTokenizer(scan scanner.Tokenizer) (*tree.Tree, error) {
	return p.Parse(scanner.Collect(scan))
}

// Parse derives a sequence of tokens from the start symbol of the grammar and
// returns the syntax tree. Token names have to match terminal names of the
// grammar. A trailing EOF token (see package scanner) is ignored.
//
// Epsilon-productions do not create tree nodes. The leaves of the resulting
// tree are exactly the input tokens, in order.
func (p *Parser) Parse(tokens []topdown.Token) (*tree.Tree, error) {
	if n := len(tokens); n > 0 && tokens[n-1].Name == scanner.EOF {
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return nil, topdown.NewError(topdown.EmptyInput, "no tokens to parse for %s", p.G.Name)
	}
	in := input{tokens: tokens}
	table := p.ga.Table()
	start := p.G.Start()
	prod, ok := table.Lookup(start, in.lookahead())
	if !ok {
		return nil, topdown.TokenError(topdown.UnexpectedRootToken, in.current(),
			"%v cannot start %s", in.current(), start)
	}
	p.summary("parsing %d token(s), %s predicts %v", len(tokens), in.current(), prod)
	t := tree.New(start)
	stack := arraystack.New()
	stack.Push(&frame{node: t.Root(), rhs: prod.RHS})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(*frame)
		for !f.done() {
			sym := f.next()
			if sym.IsTerminal() {
				if in.exhausted() {
					return nil, p.unfinished(in, sym)
				}
				tok := in.current()
				if tok.Name != sym.Name {
					return nil, topdown.TokenError(topdown.UnmatchedToken, tok,
						"expected %s, have %v", sym, tok)
				}
				p.step("match %v", tok)
				if err := t.AppendChild(f.node, tree.Leaf(tok)); err != nil {
					return nil, fmt.Errorf("building tree: %w", err)
				}
				in.advance()
				continue
			}
			prod, ok := table.Lookup(sym, in.lookahead())
			if !ok {
				if in.exhausted() {
					return nil, p.unfinished(in, sym)
				}
				return nil, topdown.TokenError(topdown.NoProduction, in.current(),
					"no production for %s with lookahead %v", sym, in.current())
			}
			p.step("%s predicts %v", in.lookahead(), prod)
			if prod.RHS.IsEpsilon() {
				continue
			}
			n := t.NewNode(sym)
			if err := t.AppendChild(f.node, tree.Subtree(n)); err != nil {
				return nil, fmt.Errorf("building tree: %w", err)
			}
			stack.Push(f)
			f = &frame{node: n, rhs: prod.RHS}
		}
	}
	if !in.exhausted() {
		p.summary("derivation complete with %d token(s) left", len(tokens)-in.pos)
		return nil, topdown.TokenError(topdown.TokensRemain, in.current(),
			"%d token(s) left, starting with %v", len(tokens)-in.pos, in.current())
	}
	p.summary("accept: %d node(s), depth %d", t.Size(), t.Depth())
	return t, nil
}

func (p *Parser) unfinished(in input, expected ll.Symbol) error {
	p.summary("input ended while expecting %s", expected)
	last := in.tokens[len(in.tokens)-1]
	return topdown.TokenError(topdown.UnfinishedProduction, last,
		"input ended while expecting %s", expected)
}

// input is the token sequence with the parser's single shared cursor.
type input struct {
	tokens []topdown.Token
	pos    int
}

func (in *input) exhausted() bool {
	return in.pos >= len(in.tokens)
}

func (in *input) current() topdown.Token {
	return in.tokens[in.pos]
}

func (in *input) advance() {
	in.pos++
}

// lookahead is the terminal of the current token, or EOF at exhausted input.
func (in *input) lookahead() ll.Symbol {
	if in.exhausted() {
		return ll.EOFMarker
	}
	return ll.Terminal(in.tokens[in.pos].Name)
}
