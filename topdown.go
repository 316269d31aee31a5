package topdown

import "fmt"

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are usually produced by a scanner and
// instantiate terminals of a grammar.
//
// An example would be a token for an integer:
//
//    Name  = "int"         // name of the terminal symbol this token instantiates
//    Value = "4711"        // lexeme as it appeared in the input stream
//    Span  = 67…71         // occured from byte position 67 in the input stream
//    Loc   = 3:12          // line and column of the start of the lexeme
//
// Span and Loc are for diagnostic purposes only. They are not consulted by parsers.
type Token struct {
	Name  string
	Value string
	Span  Span
	Loc   Location
}

// MakeToken creates a token without any position information.
func MakeToken(name, value string) Token {
	return Token{Name: name, Value: value}
}

func (t Token) String() string {
	if t.Value == "" || t.Value == t.Name {
		return fmt.Sprintf("%q", t.Name)
	}
	return fmt.Sprintf("%s(%q)", t.Name, t.Value)
}

// TokenRetriever is a type for getting tokens at an input position.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is a predicate: is s the zero span?
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns a span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Locations -------------------------------------------------------------

// Location is a line/column position within a source. Both line and column start
// at 1. The zero value denotes an unknown location.
type Location struct {
	Line   int
	Column int
}

// IsKnown is a predicate: does l carry a position?
func (l Location) IsKnown() bool {
	return l.Line > 0
}

func (l Location) String() string {
	if !l.IsKnown() {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
