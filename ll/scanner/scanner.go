/*
Package scanner defines an interface for scanners to be used with the parsers
of package ll.

Tokens are of type topdown.Token. Their name is the name of the grammar terminal
they instantiate, so scanners have to agree with grammars on the naming of
tokens. End of input is signalled by a token with name EOF.

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
)

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}

// EOF is the name of the token signalling end of input.
const EOF = "#eof"

// Token names the Go tokenizer uses for token classes. Other tokens are named
// by their literal text, e.g. "+" or "(".
const (
	Ident     = "ident"
	Int       = "int"
	Float     = "float"
	Char      = "char"
	String    = "string"
	RawString = "rawstring"
	Comment   = "comment"
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() topdown.Token
	SetErrorHandler(func(error))
}

// Collect reads tokens from a tokenizer until EOF. The EOF token is not
// included.
func Collect(t Tokenizer) []topdown.Token {
	var tokens []topdown.Token
	for {
		tok := t.NextToken()
		if tok.Name == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error        func(error)         // error handler
	unifyStrings bool                // convert single chars and raw strings to strings
	keywords     map[string]struct{} // identifiers to be named by their lexeme
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
// Comments are skipped by default.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{keywords: make(map[string]struct{})}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() topdown.Token {
	r := t.Scan()
	if r == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return topdown.Token{Name: EOF, Span: topdown.Span{uint64(t.Pos().Offset), uint64(t.Pos().Offset)}}
	}
	lexeme := t.TokenText()
	tok := topdown.Token{
		Name:  t.tokenName(r, lexeme),
		Value: lexeme,
		Span:  topdown.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
		Loc:   topdown.Location{Line: t.Position.Line, Column: t.Position.Column},
	}
	tracer().Debugf("token %v at %s", tok, tok.Loc)
	return tok
}

func (t *DefaultTokenizer) tokenName(r rune, lexeme string) string {
	switch r {
	case scanner.Ident:
		if _, ok := t.keywords[lexeme]; ok {
			return lexeme
		}
		return Ident
	case scanner.Int:
		return Int
	case scanner.Float:
		return Float
	case scanner.Char:
		if t.unifyStrings {
			return String
		}
		return Char
	case scanner.String:
		return String
	case scanner.RawString:
		if t.unifyStrings {
			return String
		}
		return RawString
	case scanner.Comment:
		return Comment
	}
	return string(r)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// Keywords lets the tokenizer name identifiers from a list of keywords
// by their lexeme instead of "ident".
func Keywords(kw ...string) Option {
	return func(t *DefaultTokenizer) {
		for _, k := range kw {
			t.keywords[k] = struct{}{}
		}
	}
}
