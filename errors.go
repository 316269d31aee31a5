package topdown

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes parser diagnostics.
type ErrorKind int

// Kinds of diagnostics. Ambiguity is raised at parser construction time,
// all the others during a parse run.
const (
	Ambiguity ErrorKind = iota + 1
	EmptyInput
	UnexpectedRootToken
	UnmatchedToken
	NoProduction
	UnfinishedProduction
	TokensRemain
)

var errorKindNames = []string{"?", "ambiguous rule", "empty input", "unexpected token for root grammar",
	"unmatched token", "unexpected token for derive", "unfinished production", "tokens remain"}

func (k ErrorKind) String() string {
	if k < Ambiguity || k > TokensRemain {
		return errorKindNames[0]
	}
	return errorKindNames[k]
}

// Error is the uniform failure type for grammar analysis and parsing.
// It carries a human readable message and, for parse errors, the offending
// token (if there is one).
type Error struct {
	Kind  ErrorKind
	Msg   string
	Token *Token
}

// NewError creates a diagnostic without a token.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// TokenError creates a diagnostic for an offending token.
func TokenError(kind ErrorKind, tok Token, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Token: &tok}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Token != nil && e.Token.Loc.IsKnown() {
		b.WriteString(e.Token.Loc.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Is lets errors.Is match diagnostics by kind, e.g.
//
//    errors.Is(err, &topdown.Error{Kind: topdown.TokensRemain})
//
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// AmbiguityError is raised during construction of a prediction table, if two
// productions claim the same (non-terminal, lookahead) slot. The grammar is not LL(1).
type AmbiguityError struct {
	Rule      string // the offending rule
	Held      string // the rule already holding the slot
	Lookahead string // lookahead of the slot
	diag      *Error
}

// NewAmbiguityError creates an ambiguity diagnostic naming the colliding rules.
func NewAmbiguityError(rule, held, lookahead string) *AmbiguityError {
	return &AmbiguityError{
		Rule:      rule,
		Held:      held,
		Lookahead: lookahead,
		diag: NewError(Ambiguity, "%s collides with %s on lookahead %s",
			rule, held, lookahead),
	}
}

func (e *AmbiguityError) Error() string {
	return e.diag.Error()
}

// Unwrap gives access to the uniform diagnostic.
func (e *AmbiguityError) Unwrap() error {
	return e.diag
}
