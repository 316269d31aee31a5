package ll1

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/tree"
	"github.com/stretchr/testify/assert"
)

func balancedGrammar(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("Balanced")
	b.LHS("S").T("a").N("S").T("b").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func exprGrammar(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("Expr")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("ident").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func tokens(names string) []topdown.Token {
	var toks []topdown.Token
	for _, name := range strings.Fields(names) {
		toks = append(toks, topdown.MakeToken(name, name))
	}
	return toks
}

func TestBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	p, err := NewParser(balancedGrammar(t), WithVerbosity(V2))
	if err != nil {
		t.Fatal(err)
	}
	input := tokens("a a b b")
	tree, err := p.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", tree)
	assert.Equal(t, 2, tree.Count(ll.NonTerminal("S")))
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, input, tree.Leaves())
	root := tree.Children(tree.Root())
	if assert.Len(t, root, 3) {
		assert.True(t, root[0].IsLeaf())
		assert.False(t, root[1].IsLeaf())
		assert.True(t, root[2].IsLeaf())
		assert.Len(t, tree.Children(root[1].Node()), 2)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	p, err := NewParser(balancedGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		input string
		kind  topdown.ErrorKind
	}{
		{"", topdown.EmptyInput},
		{"a b b", topdown.TokensRemain},
		{"a a b", topdown.UnfinishedProduction},
		{"a", topdown.UnfinishedProduction},
		{"c", topdown.UnexpectedRootToken},
		{"a c", topdown.NoProduction},
		{"a b c", topdown.TokensRemain},
		{"b", topdown.TokensRemain},
	}
	for _, tt := range tests {
		tree, err := p.Parse(tokens(tt.input))
		assert.Nil(t, tree, "input %q", tt.input)
		if assert.Error(t, err, "input %q", tt.input) {
			var diag *topdown.Error
			if assert.True(t, errors.As(err, &diag), "input %q", tt.input) {
				assert.Equal(t, tt.kind, diag.Kind, "input %q: %v", tt.input, err)
			}
		}
	}
}

func TestUnmatchedToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	b := ll.NewGrammarBuilder("G")
	b.LHS("S").T("a").T("b").End()
	g, _ := b.Grammar()
	p, err := NewParser(g)
	if err != nil {
		t.Fatal(err)
	}
	input := tokens("a c")
	input[1].Loc = topdown.Location{Line: 3, Column: 7}
	_, err = p.Parse(input)
	assert.True(t, errors.Is(err, &topdown.Error{Kind: topdown.UnmatchedToken}))
	assert.True(t, strings.HasPrefix(err.Error(), "3:7: unmatched token"), err.Error())
	//
	_, err = p.Parse(tokens("a"))
	assert.True(t, errors.Is(err, &topdown.Error{Kind: topdown.UnfinishedProduction}))
}

func TestAmbiguousGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	b := ll.NewGrammarBuilder("G")
	b.LHS("A").T("a").End()
	b.LHS("A").T("a").T("b").End()
	g, _ := b.Grammar()
	p, err := NewParser(g)
	assert.Nil(t, p)
	var amb *topdown.AmbiguityError
	if assert.True(t, errors.As(err, &amb)) {
		assert.Equal(t, "A ::= a b", amb.Rule)
	}
}

func TestExpressionFromScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	p, err := NewParser(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	input := "a + b * (c + d)"
	tree, err := p.ParseTokenizer(scanner.GoTokenizer("expr", strings.NewReader(input)))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", tree)
	var lexemes []string
	for _, tok := range tree.Leaves() {
		lexemes = append(lexemes, tok.Value)
	}
	assert.Equal(t, strings.Fields("a + b * ( c + d )"), lexemes)
	assert.Equal(t, ll.NonTerminal("E"), tree.Symbol(tree.Root()))
	assert.Equal(t, 2, tree.Count(ll.NonTerminal("E")))
	//
	_, err = p.ParseTokenizer(scanner.GoTokenizer("expr", strings.NewReader("a + (b")))
	assert.True(t, errors.Is(err, &topdown.Error{Kind: topdown.UnfinishedProduction}), "%v", err)
}

func TestDeepNesting(t *testing.T) {
	p, err := NewParser(balancedGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	const depth = 20000
	input := append(tokens(strings.Repeat("a ", depth)), tokens(strings.Repeat("b ", depth))...)
	tree, err := p.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, depth, tree.Count(ll.NonTerminal("S")))
	assert.Equal(t, 2*depth, len(tree.Leaves()))
}

func TestTrailingEOFToken(t *testing.T) {
	p, err := NewParser(balancedGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	input := append(tokens("a b"), topdown.Token{Name: scanner.EOF})
	_, err = p.Parse(input)
	assert.NoError(t, err)
}

// --- Random derivations ----------------------------------------------------

// deriver produces a random leftmost derivation of a grammar, building the
// expected tree and token sequence along the way.
type deriver struct {
	g        *ll.Grammar
	rnd      *rand.Rand
	maxDepth int
	t        *tree.Tree
	tokens   []topdown.Token
}

func (d *deriver) derive() {
	start := d.g.Start()
	d.t = tree.New(start)
	d.tokens = nil
	d.expand(d.t.Root(), d.choose(start, 0), 0)
}

// choose picks a random production for A. Beyond maxDepth the production
// with the fewest non-terminals is taken, so derivations terminate.
func (d *deriver) choose(A ll.Symbol, depth int) *ll.Production {
	prods := d.g.ProductionsFor(A)
	if depth < d.maxDepth {
		return prods[d.rnd.Intn(len(prods))]
	}
	best, fewest := prods[0], -1
	for _, p := range prods {
		n := 0
		for _, sym := range p.RHS {
			if sym.IsNonTerminal() {
				n++
			}
		}
		if fewest < 0 || n < fewest {
			best, fewest = p, n
		}
	}
	return best
}

func (d *deriver) expand(n tree.NodeID, p *ll.Production, depth int) {
	for _, sym := range p.RHS {
		if sym.IsTerminal() {
			tok := topdown.MakeToken(sym.Name, fmt.Sprintf("%s%d", sym.Name, len(d.tokens)))
			d.tokens = append(d.tokens, tok)
			d.t.AppendChild(n, tree.Leaf(tok))
			continue
		}
		q := d.choose(sym, depth+1)
		if q.RHS.IsEpsilon() {
			continue
		}
		child := d.t.NewNode(sym)
		d.t.AppendChild(n, tree.Subtree(child))
		d.expand(child, q, depth+1)
	}
}

func TestRandomDerivations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	g := exprGrammar(t)
	p, err := NewParser(g)
	if err != nil {
		t.Fatal(err)
	}
	d := &deriver{g: g, rnd: rand.New(rand.NewSource(4711)), maxDepth: 12}
	for i := 0; i < 500; i++ {
		d.derive()
		parsed, err := p.Parse(d.tokens)
		if err != nil {
			t.Fatalf("derivation #%d: %v", i, err)
		}
		if !assert.Equal(t, d.t.String(), parsed.String(), "derivation #%d", i) {
			break
		}
		assert.Equal(t, d.tokens, parsed.Leaves())
	}
}

// --- Verbosity -------------------------------------------------------------

// recorder counts trace calls by level.
type recorder struct {
	tracing.Trace
	info, debug int
}

func (r *recorder) Infof(string, ...interface{})  { r.info++ }
func (r *recorder) Debugf(string, ...interface{}) { r.debug++ }

func TestVerbosityLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll1")
	defer teardown()
	//
	info := map[Verbosity]int{}
	for _, v := range []Verbosity{V0, V1, V2} {
		rec := &recorder{Trace: tracing.Select("topdown.ll1")}
		p, err := NewParser(balancedGrammar(t), WithVerbosity(v), WithTracer(rec))
		if err != nil {
			t.Fatal(err)
		}
		if _, err = p.Parse(tokens("a a b b")); err != nil {
			t.Fatal(err)
		}
		info[v] = rec.info
		t.Logf("verbosity %d: %d info, %d debug", v, rec.info, rec.debug)
	}
	assert.Equal(t, 0, info[V0])
	assert.Equal(t, 2, info[V1], "start prediction and accept")
	assert.Greater(t, info[V2], info[V1])
}
