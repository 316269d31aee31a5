package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/topdown/source"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file path>",
		Short:   "Parse lines interactively",
		Example: `  topdown repl expr.ebnf --start Expr`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	p, err := newParser(g)
	if err != nil {
		return err
	}
	repl, err := readline.New("topdown> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println(fmt.Sprintf("parsing with grammar %s, start symbol %s", g.Name, g.Start()))
	pterm.Info.Println("Quit with <ctrl>D")
	lineno := 1
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		src := source.FromString(fmt.Sprintf("line %d", lineno), line)
		lineno++
		t, err := p.ParseTokenizer(goTokenizer(g, src))
		if err != nil {
			reportError(src, err)
			continue
		}
		printTree(t)
	}
	pterm.Println("Good bye!")
	return nil
}
