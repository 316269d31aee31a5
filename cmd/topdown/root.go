package main

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'topdown.cli'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.cli")
}

var rootFlags = struct {
	config *string
	trace  *string
	start  *string
}{}

var rootCmd = &cobra.Command{
	Use:   "topdown",
	Short: "Analyze LL(1) grammars and parse input with them",
	Long: `topdown provides three features:
- Computes FIRST, FOLLOW and PREDICT sets of a grammar and checks it for LL(1) conflicts.
- Parses input with an LL(1) parser and prints the syntax tree.
- Parses lines interactively.`,
	PersistentPreRunE: setup,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "configuration file (TOML)")
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "", "trace level [Debug|Info|Error]")
	rootFlags.start = rootCmd.PersistentFlags().StringP("start", "s", "", "start symbol (default: first production)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// setup reads the configuration and sets up tracing and display.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	conf, err := loadConfig(*rootFlags.config)
	if err != nil {
		return err
	}
	if *rootFlags.trace != "" {
		conf.Set("tracelevel.root", *rootFlags.trace)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("configuration loaded from %q", *rootFlags.config)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
