package main

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/ll1"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/tree"
	"github.com/npillmayer/topdown/source"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source     *string
	lexmachine *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path>",
		Short:   "Parse a text stream and print the syntax tree",
		Example: `  cat src | topdown parse expr.ebnf --start Expr`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().String("source", "", "source file path (default stdin)")
	parseFlags.lexmachine = cmd.Flags().Bool("lexmachine", false, "tokenize with lexmachine instead of the Go tokenizer")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	p, err := newParser(g)
	if err != nil {
		return err
	}
	src, err := readSource(*parseFlags.source)
	if err != nil {
		return err
	}
	var tokenizer scanner.Tokenizer
	if *parseFlags.lexmachine {
		if tokenizer, err = lmTokenizer(g, src); err != nil {
			return err
		}
	} else {
		tokenizer = goTokenizer(g, src)
	}
	t, err := p.ParseTokenizer(tokenizer)
	if err != nil {
		reportError(src, err)
		return err
	}
	printTree(t)
	return nil
}

func newParser(g *ll.Grammar) (*ll1.Parser, error) {
	return ll1.NewParser(g,
		ll1.WithVerbosity(ll1.Verbosity(gconf.GetInt("parser.verbosity"))),
		ll1.WithTracer(tracer()),
	)
}

func readSource(path string) (*source.Source, error) {
	if path != "" {
		return source.Load(path)
	}
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return source.FromString("<stdin>", string(text)), nil
}

func printTree(t *tree.Tree) {
	items := t.Leveled()
	list := make(pterm.LeveledList, 0, len(items))
	for _, item := range items {
		list = append(list, pterm.LeveledListItem{Level: item.Level, Text: item.Text})
	}
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}
