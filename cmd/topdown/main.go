/*
Command topdown is a workbench for LL(1) grammars. It reads grammars in EBNF
notation, reports FIRST, FOLLOW and PREDICT sets, and parses input with a
table-driven LL(1) parser.

    topdown analyze expr.ebnf --start Expr --html predict.html
    topdown parse expr.ebnf --start Expr --source input.txt
    topdown repl expr.ebnf --start Expr

Configuration is read from a TOML file (flag --config), e.g.

    [tracing]
    adapter = "go"

    [tracelevel]
    root = "Info"
    "topdown.ll1" = "Debug"

    [parser]
    verbosity = 1   # 0: quiet, 1: parse summary, 2: every derivation step

    [scanner]
    skip-comments = true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
