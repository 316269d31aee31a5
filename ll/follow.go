package ll

// computeFollowSets iterates over all productions until no FOLLOW set changes
// any more. FIRST sets have to be complete.
//
// For every occurence of a non-terminal A in a rule B ➞ α A β:
// FIRST(β) without epsilon is a subset of FOLLOW(A). If β is empty or
// nullable, FOLLOW(B) is a subset of FOLLOW(A).
// End of input follows the start symbol.
func (ga *GrammarAnalysis) computeFollowSets() {
	for _, A := range ga.g.NonTerminals() {
		ga.follow[A] = NewSymbolSet()
	}
	ga.follow[ga.g.Start()].Add(EOFMarker)
	prods := ga.g.Productions()
	for round := 1; ; round++ {
		more := false
		for _, p := range prods {
			for i, A := range p.RHS {
				if !A.IsNonTerminal() {
					continue
				}
				beta, _ := ga.firstOfString(p.RHS[i+1:])
				if ga.follow[A].unionExcept(beta, EpsilonMarker) {
					more = true
				}
				if beta.Contains(EpsilonMarker) && ga.follow[A].union(ga.follow[p.LHS]) {
					more = true
				}
			}
		}
		tracer().Debugf("FOLLOW sets, round %d, changed = %v", round, more)
		if !more {
			break
		}
	}
}
