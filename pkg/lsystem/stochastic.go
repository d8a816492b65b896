package lsystem

// StochasticRule rewrites a fixed sub-sequence into a replacement sequence
// with a per-match acceptance probability.
type StochasticRule[T comparable] struct {
	Pattern     []T     // sub-sequence the rule matches; must be non-empty
	Replacement []T     // sequence substituted for the matched sub-sequence
	Chance      float64 // acceptance probability in [0.0, 1.0]
}

// RewriteStochastic applies stochastic pattern rules to the axiom for the
// given number of iterations and returns the final generation.
//
// Scanning works exactly as in [RewritePatterns], with one extra condition
// per candidate rule: after the pattern matches at the cursor, one
// independent uniform sample in [0, 1] is drawn from src and the rule is
// accepted only when sample <= Chance. A rejected rule is treated as
// non-matching and the scan falls through to the next rule in order, or to
// the literal pass-through when none accepts.
//
// Every candidate draws its own sample, so rules sharing a pattern have
// independently evaluated acceptance rather than a joint distribution.
// Expressing "replace A by B or C with 50% each" therefore takes a second
// rule conditioned on the first being rejected:
//
//	{Pattern: a, Replacement: b, Chance: 0.5},
//	{Pattern: a, Replacement: c, Chance: 1.0}, // always, given it was reached
//
// The comparison is closed on both ends: Chance 1.0 accepts every match and
// a sample of exactly 0.0 is accepted even at Chance 0.0. Values outside
// [0, 1] are not rejected; they simply never or always lose the comparison.
//
// A nil src falls back to a time-seeded [Source]. Zero iterations returns
// the axiom as-is. Returns [ErrEmptyPattern] if any rule has a zero-length
// pattern.
func RewriteStochastic[T comparable](axiom []T, rules []StochasticRule[T], iterations uint, src Source) ([]T, error) {
	for _, r := range rules {
		if len(r.Pattern) == 0 {
			return nil, ErrEmptyPattern
		}
	}
	if src == nil {
		src = newTimeSource()
	}

	current := axiom
	for ; iterations > 0; iterations-- {
		next := make([]T, 0, growthHint(len(current)))
		for i := 0; i < len(current); {
			r, ok := acceptRule(current, i, rules, src)
			if !ok {
				next = append(next, current[i])
				i++
				continue
			}
			next = append(next, r.Replacement...)
			i += len(r.Pattern)
		}
		current = next
	}
	return current, nil
}

// acceptRule returns the first rule whose pattern matches seq at position i
// and whose acceptance sample does not exceed its chance.
func acceptRule[T comparable](seq []T, i int, rules []StochasticRule[T], src Source) (StochasticRule[T], bool) {
	for _, r := range rules {
		if !matchAt(seq, i, r.Pattern) {
			continue
		}
		if src.UniformFloat(0, 1) <= r.Chance {
			return r, true
		}
	}
	var zero StochasticRule[T]
	return zero, false
}
