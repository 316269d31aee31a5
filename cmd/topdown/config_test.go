package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll/ebnf"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/source"
	"github.com/stretchr/testify/assert"
)

const testConfig = `
[tracing]
adapter = "go"

[tracelevel]
root = "Info"
"topdown.ll1" = "Debug"

[parser]
verbosity = 2
depth = 12
`

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topdown.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	conf.InitDefaults()
	assert.Equal(t, "go", conf.GetString("tracing.adapter"))
	assert.Equal(t, "Debug", conf.GetString("tracelevel.topdown.ll1"))
	assert.Equal(t, "Info", conf.GetString("tracelevel.topdown.ll"), "default from root level")
	assert.Equal(t, 2, conf.GetInt("parser.verbosity"))
	assert.Equal(t, 12, conf.GetInt("parser.depth"))
	assert.True(t, conf.GetBool("scanner.skip-comments"))
	assert.False(t, conf.IsSet("unknown"))
	assert.False(t, conf.IsInteractive())
}

func TestDefaultConfig(t *testing.T) {
	conf, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	conf.Set("tracelevel.root", "Debug")
	conf.InitDefaults()
	assert.Equal(t, "Debug", conf.GetString("tracelevel.topdown.scanner"))
	assert.Equal(t, 0, conf.GetInt("parser.verbosity"))
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestTerminalClasses(t *testing.T) {
	src := `
Stmt = "if" Expr "then" Expr | ident ":=" Expr .
Expr = ident | int .
ident = "a" … "z" .
int = "0" … "9" .
`
	g, err := ebnf.Load("stmt", strings.NewReader(src), "Stmt")
	if err != nil {
		t.Fatal(err)
	}
	literals, keywords := terminalClasses(g)
	assert.Equal(t, []string{":="}, literals)
	assert.Equal(t, []string{"if", "then"}, keywords)
	//
	input := source.FromString("input", "if x then 1")
	expected := []string{"if", "ident", "then", "int"}
	assert.Equal(t, expected, tokenNames(scanner.Collect(goTokenizer(g, input))))
	lm, err := lmTokenizer(g, input)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, expected, tokenNames(scanner.Collect(lm)))
}

func tokenNames(tokens []topdown.Token) []string {
	var names []string
	for _, tok := range tokens {
		names = append(names, tok.Name)
	}
	return names
}

func writeGrammar(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "g.ebnf")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGrammarDefaultStart(t *testing.T) {
	// first production does not start a line and is preceded by a lexical one
	path := writeGrammar(t, "letter = \"a\" … \"z\" .  Start = letter Rest .\nRest = .\n")
	g, err := loadGrammar(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Start", g.Start().Name)
	//
	_, err = loadGrammar(writeGrammar(t, "letter = \"a\" … \"z\" .\n"))
	assert.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeGrammar(t, `
Expr = Term { "+" Term } .
Term = int | "(" Expr ")" .
int = "0" … "9" .
`)
	assert.NoError(t, runAnalyze(nil, []string{path}))
	//
	ambiguous := writeGrammar(t, "A = \"a\" | \"a\" \"b\" .\n")
	err := runAnalyze(nil, []string{ambiguous})
	var amb *topdown.AmbiguityError
	assert.True(t, errors.As(err, &amb), "expected ambiguity, got %v", err)
}

func TestReportError(t *testing.T) {
	src := source.FromString("input", "a a\nb c")
	tok := topdown.MakeToken("c", "c")
	tok.Span = topdown.Span{6, 7}
	err := topdown.TokenError(topdown.UnmatchedToken, tok, "expected b, have c")
	reportError(src, err) // must not panic on an unknown location
	reportError(src, errors.New("plain error"))
}
