package ll

import "fmt"

// computeFirstSets iterates over all productions until no FIRST set changes
// any more. A non-terminal A is nullable iff the epsilon marker is in FIRST(A).
func (ga *GrammarAnalysis) computeFirstSets() error {
	for _, A := range ga.g.NonTerminals() {
		ga.first[A] = NewSymbolSet()
	}
	prods := ga.g.Productions()
	for round := 1; ; round++ {
		more := false
		for _, p := range prods {
			f, err := ga.firstOfString(p.RHS)
			if err != nil {
				return fmt.Errorf("rule %d: %w", p.Serial, err)
			}
			if ga.first[p.LHS].union(f) {
				more = true
			}
		}
		tracer().Debugf("FIRST sets, round %d, changed = %v", round, more)
		if !more {
			break
		}
	}
	return nil
}

// firstOfString collects FIRST sets from the left. It stops at the first
// symbol which is not nullable; the epsilon marker is added only if all symbols
// are nullable.
func (ga *GrammarAnalysis) firstOfString(syms SymbolString) (*SymbolSet, error) {
	result := NewSymbolSet()
	for _, sym := range syms {
		switch sym.Kind {
		case TerminalKind:
			result.Add(sym)
			return result, nil
		case NonTerminalKind:
			f, ok := ga.first[sym]
			if !ok {
				return result, fmt.Errorf("undefined non-terminal %s", sym)
			}
			result.unionExcept(f, EpsilonMarker)
			if !f.Contains(EpsilonMarker) {
				return result, nil
			}
		default:
			return result, fmt.Errorf("marker %s in symbol string", sym)
		}
	}
	result.Add(EpsilonMarker)
	return result, nil
}
