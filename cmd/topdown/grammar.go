package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/ebnf"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/scanner/lexmach"
	"github.com/npillmayer/topdown/source"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"
)

// loadGrammar reads an EBNF grammar file. Without a start symbol given, the
// first non-lexical production of the file is the start symbol.
func loadGrammar(path string) (*ll.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar %s: %w", path, err)
	}
	defer f.Close()
	return ebnf.Load(path, f, *rootFlags.start)
}

// goTokenizer creates the default tokenizer for an input, configured from the
// application configuration. Identifier-like terminals of the grammar are keywords.
func goTokenizer(g *ll.Grammar, src *source.Source) scanner.Tokenizer {
	_, keywords := terminalClasses(g)
	return scanner.GoTokenizer(src.Name, src.Reader(),
		scanner.SkipComments(gconf.GetBool("scanner.skip-comments")),
		scanner.UnifyStrings(true),
		scanner.Keywords(keywords...),
	)
}

var tokenClasses = map[string]string{
	scanner.Ident:  `([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`,
	scanner.Int:    `[0-9]+`,
	scanner.Float:  `[0-9]+\.[0-9]+`,
	scanner.String: `"[^"]*"`,
}

// lmTokenizer creates a lexmachine scanner for an input. Rules are derived from
// the terminals of the grammar.
func lmTokenizer(g *ll.Grammar, src *source.Source) (scanner.Tokenizer, error) {
	literals, keywords := terminalClasses(g)
	init := func(lexer *lexmachine.Lexer) {
		for _, T := range g.Terminals() {
			if re, ok := tokenClasses[T.Name]; ok {
				lexer.Add([]byte(re), lexmach.MakeToken(T.Name))
			}
		}
		lexer.Add([]byte(`//[^\n]*`), lexmach.Skip)
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	LM, err := lexmach.NewLMAdapter(init, literals, keywords)
	if err != nil {
		return nil, fmt.Errorf("cannot create lexmachine scanner: %w", err)
	}
	sc, err := LM.Scanner(src.Text())
	if err != nil {
		return nil, err
	}
	return sc, nil
}

var identLike = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// terminalClasses splits the terminals of a grammar which are not token classes
// into literals and keywords.
func terminalClasses(g *ll.Grammar) (literals []string, keywords []string) {
	for _, T := range g.Terminals() {
		if _, ok := tokenClasses[T.Name]; ok {
			continue
		}
		if identLike.MatchString(T.Name) {
			keywords = append(keywords, T.Name)
		} else {
			literals = append(literals, T.Name)
		}
	}
	return
}

// reportError prints a parse error, showing the offending line of the input.
func reportError(src *source.Source, err error) {
	var diag *topdown.Error
	if !errors.As(err, &diag) || diag.Token == nil {
		pterm.Error.Println(err.Error())
		return
	}
	tok := *diag.Token
	if !tok.Loc.IsKnown() {
		tok = src.Position(tok)
	}
	pterm.Error.Println(fmt.Sprintf("%s:%s: %s", src.Name, tok.Loc, diag.Kind))
	line := src.Line(tok.Loc.Line)
	if line != "" && tok.Loc.Column > 0 {
		pterm.Println("    " + line)
		pterm.Println("    " + strings.Repeat(" ", tok.Loc.Column-1) + "^ " + diag.Msg)
	}
}
