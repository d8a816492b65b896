package lsystem

// Rule rewrites a single symbol into a replacement sequence.
// A replacement may be empty (deletion), a single symbol (substitution),
// or longer than one symbol (growth).
type Rule[T comparable] struct {
	Symbol      T   // symbol the rule applies to
	Replacement []T // sequence substituted for the symbol
}

// Rewrite applies per-symbol rules to the axiom for the given number of
// iterations and returns the final generation.
//
// Each iteration scans the current sequence left to right. For every symbol
// the rules are tried in order; the first rule whose Symbol equals the
// current symbol appends its Replacement to the output. A symbol with no
// matching rule is a constant and passes through unchanged.
//
// Zero iterations returns the axiom as-is. An empty rule set makes every
// pass the identity. The input slices are never modified.
func Rewrite[T comparable](axiom []T, rules []Rule[T], iterations uint) []T {
	current := axiom
	for ; iterations > 0; iterations-- {
		next := make([]T, 0, growthHint(len(current)))
		for _, sym := range current {
			next = appendRewritten(next, sym, rules)
		}
		current = next
	}
	return current
}

// appendRewritten appends the rewrite of sym to out: the first matching
// rule's replacement, or sym itself when no rule matches.
func appendRewritten[T comparable](out []T, sym T, rules []Rule[T]) []T {
	for _, r := range rules {
		if r.Symbol == sym {
			return append(out, r.Replacement...)
		}
	}
	return append(out, sym)
}

// growthHint sizes the output buffer for one rewrite pass. Generations
// typically grow, so reserving twice the input length avoids most of the
// append reallocations without committing to a growth model.
func growthHint(n int) int {
	if n == 0 {
		return 0
	}
	return n * 2
}
