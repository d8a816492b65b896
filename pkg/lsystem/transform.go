package lsystem

import (
	"errors"
	"slices"
)

// ErrNilTransform is returned by [RewriteTransforms] when a rule carries a
// nil transform function. Like empty patterns, nil transforms are rejected
// up front rather than discovered mid-scan.
var ErrNilTransform = errors.New("rule transform must not be nil")

// TransformFunc computes a replacement sequence from a matched pattern.
// The function receives its own copy of the match and may return any
// sequence, including an empty one (deletion) or something longer than the
// input. It may be non-deterministic, for example by consulting a [Source];
// each invocation is independent.
type TransformFunc[T comparable] func(match []T) []T

// TransformRule rewrites a fixed sub-sequence via an arbitrary function of
// the matched pattern. This is the fully general rule shape: where the
// other variants carry replacement data, this one carries behavior.
type TransformRule[T comparable] struct {
	Pattern   []T              // sub-sequence the rule matches; must be non-empty
	Transform TransformFunc[T] // produces the replacement; must be non-nil
}

// RewriteTransforms applies transform rules to the axiom for the given
// number of iterations and returns the final generation.
//
// Scanning and matching work exactly as in [RewritePatterns]. On a match
// the rule's Transform is invoked with a copy of the matched pattern - not
// the whole sequence, and never shared between invocations - and whatever
// it returns is appended to the output.
//
// Zero iterations returns the axiom as-is. Returns [ErrEmptyPattern] if any
// rule has a zero-length pattern and [ErrNilTransform] if any rule has a
// nil transform.
func RewriteTransforms[T comparable](axiom []T, rules []TransformRule[T], iterations uint) ([]T, error) {
	for _, r := range rules {
		if len(r.Pattern) == 0 {
			return nil, ErrEmptyPattern
		}
		if r.Transform == nil {
			return nil, ErrNilTransform
		}
	}

	current := axiom
	for ; iterations > 0; iterations-- {
		next := make([]T, 0, growthHint(len(current)))
		for i := 0; i < len(current); {
			r, ok := matchTransformRule(current, i, rules)
			if !ok {
				next = append(next, current[i])
				i++
				continue
			}
			next = append(next, r.Transform(slices.Clone(r.Pattern))...)
			i += len(r.Pattern)
		}
		current = next
	}
	return current, nil
}

// matchTransformRule returns the first rule whose pattern matches seq at
// position i.
func matchTransformRule[T comparable](seq []T, i int, rules []TransformRule[T]) (TransformRule[T], bool) {
	for _, r := range rules {
		if matchAt(seq, i, r.Pattern) {
			return r, true
		}
	}
	var zero TransformRule[T]
	return zero, false
}
