package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	html *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze <grammar file path>",
		Short:   "Print FIRST, FOLLOW and PREDICT sets of a grammar",
		Example: `  topdown analyze expr.ebnf --start Expr --html predict.html`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.html = cmd.Flags().String("html", "", "export the PREDICT table to an HTML file")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	ga, err := ll.Analysis(g)
	if ga == nil {
		return err
	}
	printGrammar(g)
	printSets(ga)
	printPredictTable(ga)
	if *analyzeFlags.html != "" {
		if herr := exportHTML(ga, *analyzeFlags.html); herr != nil {
			return herr
		}
	}
	var amb *topdown.AmbiguityError
	if errors.As(err, &amb) {
		return fmt.Errorf("grammar %s is not LL(1): %w", g.Name, err)
	}
	pterm.Info.Println(fmt.Sprintf("grammar %s is LL(1)", g.Name))
	return err
}

func printGrammar(g *ll.Grammar) {
	pterm.DefaultSection.Println("Productions")
	for _, p := range g.Productions() {
		pterm.Println(fmt.Sprintf("%3d: %s", p.Serial, p))
	}
}

func printSets(ga *ll.GrammarAnalysis) {
	pterm.DefaultSection.Println("FIRST and FOLLOW")
	data := pterm.TableData{{"Non-terminal", "Nullable", "FIRST", "FOLLOW"}}
	for _, A := range ga.Grammar().NonTerminals() {
		data = append(data, []string{
			A.Name,
			fmt.Sprintf("%v", ga.Nullable(A)),
			ga.First(A).String(),
			ga.Follow(A).String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printPredictTable(ga *ll.GrammarAnalysis) {
	pterm.DefaultSection.Println("PREDICT")
	data := pterm.TableData{{"Non-terminal", "Lookahead", "Production"}}
	for _, e := range ga.Table().Entries() {
		data = append(data, []string{e.NonTerminal.Name, e.Lookahead.Name, e.Production.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if sig, err := ga.Table().Signature(); err == nil {
		pterm.Info.Println(fmt.Sprintf("table signature %s", sig))
	}
}

func exportHTML(ga *ll.GrammarAnalysis, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot export PREDICT table: %w", err)
	}
	defer f.Close()
	ll.PredictTableAsHTML(ga, f)
	tracer().Infof("exported PREDICT table to %s", path)
	return nil
}
