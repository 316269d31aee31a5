/*
Package lexmach adapts the lexmachine scanner generator
(github.com/timtadh/lexmachine) to the scanner.Tokenizer interface.

Tokens produced by the adapter carry the name of a grammar terminal, which is
what an LL(1) parser matches against. Literal punctuation and keywords are
named by their own text; every other token class is registered by the client
together with the terminal name it produces. A grammar with terminals "(",
")", "let" and a lexical production "ident" is tokenized like this:

	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), lexmach.MakeToken("ident"))
		lexer.Add([]byte(`( |\t|\n)+`), lexmach.Skip)
	}
	LM, err := lexmach.NewLMAdapter(init, []string{"(", ")"}, []string{"let"})
	...
	scan, err := LM.Scanner("let (x)")
	...
	tokens := scanner.Collect(scan)  // let ( ident )

Literals and keywords take precedence over the patterns added by init, thus
"let" is never scanned as ident. Every token has its byte span and its line
and column set. Input not matched by any pattern is reported to the error
handler and skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
