package lsystem

import "errors"

// ErrEmptyPattern is returned by the pattern-based engines when a rule
// carries a zero-length pattern. An empty pattern would match vacuously at
// every position without consuming input, so the scan could never advance;
// such rule sets are rejected before any rewriting happens.
var ErrEmptyPattern = errors.New("rule pattern must not be empty")

// PatternRule rewrites a fixed sub-sequence into a replacement sequence.
// Patterns longer than one symbol encode left/right context, which is what
// makes context-sensitive rewriting expressible with this rule shape.
type PatternRule[T comparable] struct {
	Pattern     []T // sub-sequence the rule matches; must be non-empty
	Replacement []T // sequence substituted for the matched sub-sequence
}

// RewritePatterns applies pattern rules to the axiom for the given number of
// iterations and returns the final generation.
//
// Each iteration scans with a cursor starting at position 0. At each
// position the rules are tried in order; a rule matches when its pattern
// fits in the remaining input and is element-wise equal to the sub-sequence
// at the cursor. The first match appends its Replacement to the output and
// advances the cursor by the pattern length, so no symbol is ever consumed
// twice and consumed symbols are never re-examined. When no rule matches,
// the single symbol at the cursor passes through and the cursor advances
// by one. Ties at a position go to the earlier rule regardless of pattern
// length.
//
// Zero iterations returns the axiom as-is. Returns [ErrEmptyPattern] if any
// rule has a zero-length pattern.
func RewritePatterns[T comparable](axiom []T, rules []PatternRule[T], iterations uint) ([]T, error) {
	for _, r := range rules {
		if len(r.Pattern) == 0 {
			return nil, ErrEmptyPattern
		}
	}

	current := axiom
	for ; iterations > 0; iterations-- {
		next := make([]T, 0, growthHint(len(current)))
		for i := 0; i < len(current); {
			r, ok := matchRule(current, i, rules)
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

// matchRule returns the first rule whose pattern matches seq at position i.
func matchRule[T comparable](seq []T, i int, rules []PatternRule[T]) (PatternRule[T], bool) {
	for _, r := range rules {
		if matchAt(seq, i, r.Pattern) {
			return r, true
		}
	}
	var zero PatternRule[T]
	return zero, false
}

// matchAt reports whether pattern occurs in seq starting at position i.
func matchAt[T comparable](seq []T, i int, pattern []T) bool {
	if i+len(pattern) > len(seq) {
		return false
	}
	for j, p := range pattern {
		if seq[i+j] != p {
			return false
		}
	}
	return true
}
