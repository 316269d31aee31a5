/*
Package topdown is an LL(1) parsing toolbox.

Topdown strives to be a small and predictable tool for parsing DSLs and
configuration languages with deterministic, table-driven top-down parsers.
Package structure is as follows:

■ ll: Package ll implements grammars and the static grammar analysis for
LL(1) parsing, i.e. FIRST-, FOLLOW- and PREDICT-sets, together with conflict
detection for the prediction table.

■ ll/ll1: Package ll1 implements a table-driven LL(1) parser which simulates a
leftmost derivation with an explicit derivation stack.

■ ll/tree: Package tree implements concrete syntax trees.

■ ll/ebnf: Package ebnf reads grammars from EBNF descriptions.

■ ll/scanner: Package scanner defines the interface between scanners and parsers,
with a default tokenizer for Go-like input and an adapter for lexmachine.

■ source: Package source loads input and maps byte offsets to line/column positions.

The base package contains data types which are used throughout all the other packages:
tokens, spans, locations and parser diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package topdown
