package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolKind tags grammar symbols.
type SymbolKind uint8

// Kinds of symbols. Epsilon and EOF are markers: they never occur on the
// right hand side of a production.
const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
	EpsilonKind
	EOFKind
)

// Symbol is a grammar symbol, i.e. either a terminal or a non-terminal,
// or one of the two markers EpsilonMarker and EOFMarker.
// Symbols are values and may be compared with ==.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Terminal returns a terminal symbol for a token name.
func Terminal(name string) Symbol {
	return Symbol{Kind: TerminalKind, Name: name}
}

// NonTerminal returns a non-terminal symbol.
func NonTerminal(name string) Symbol {
	return Symbol{Kind: NonTerminalKind, Name: name}
}

// EpsilonMarker denotes the empty string. It is a member of FIRST sets of
// nullable symbols only.
var EpsilonMarker = Symbol{Kind: EpsilonKind, Name: "ε"}

// EOFMarker denotes end of input. It is a member of FOLLOW sets and the lookahead
// at exhausted input.
var EOFMarker = Symbol{Kind: EOFKind, Name: "#eof"}

// IsTerminal is a predicate.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == TerminalKind
}

// IsNonTerminal is a predicate.
func (sym Symbol) IsNonTerminal() bool {
	return sym.Kind == NonTerminalKind
}

// IsMarker is true for EpsilonMarker and EOFMarker.
func (sym Symbol) IsMarker() bool {
	return sym.Kind == EpsilonKind || sym.Kind == EOFKind
}

func (sym Symbol) String() string {
	return sym.Name
}

// SymbolComparator orders symbols by kind first, then by name.
// It is suitable for ordered containers of package gods.
func SymbolComparator(s1, s2 interface{}) int {
	a, b := s1.(Symbol), s2.(Symbol)
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is an ordered set of symbols. Iteration order is determined by
// SymbolComparator, i.e. terminals come first, markers last.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set with initial members.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	s := &SymbolSet{set: treeset.NewWith(SymbolComparator)}
	for _, sym := range syms {
		s.set.Add(sym)
	}
	return s
}

// Add inserts a symbol and reports whether the set has changed.
func (s *SymbolSet) Add(sym Symbol) bool {
	if s.set.Contains(sym) {
		return false
	}
	s.set.Add(sym)
	return true
}

// Contains is a predicate. A nil set is empty.
func (s *SymbolSet) Contains(sym Symbol) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(sym)
}

// Size returns the number of members.
func (s *SymbolSet) Size() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Values returns the members in order.
func (s *SymbolSet) Values() []Symbol {
	if s == nil {
		return nil
	}
	syms := make([]Symbol, 0, s.set.Size())
	s.set.Each(func(_ int, v interface{}) {
		syms = append(syms, v.(Symbol))
	})
	return syms
}

// Equals compares two sets member by member.
func (s *SymbolSet) Equals(other *SymbolSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	a, b := s.Values(), other.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// union adds all members of other, returning true if s has changed.
func (s *SymbolSet) union(other *SymbolSet) bool {
	changed := false
	for _, sym := range other.Values() {
		if s.Add(sym) {
			changed = true
		}
	}
	return changed
}

// unionExcept is union with one symbol left out.
func (s *SymbolSet) unionExcept(other *SymbolSet, except Symbol) bool {
	changed := false
	for _, sym := range other.Values() {
		if sym != except && s.Add(sym) {
			changed = true
		}
	}
	return changed
}

func (s *SymbolSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sym := range s.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sym.String())
	}
	b.WriteByte('}')
	return b.String()
}
