// Package lsystem implements generic Lindenmayer system rewriting engines.
//
// # Overview
//
// An L-system iteratively rewrites a sequence of symbols by scanning it left
// to right and substituting matched sub-sequences according to a list of
// production rules. Starting from an initial sequence (the axiom), each
// iteration produces the next generation, which feeds the one after it.
// The classic algae system illustrates the idea:
//
//	axiom: A    rules: A → AB, B → A
//	A → AB → ABA → ABAAB → ABAABABA → ...
//
// The package provides four escalating engine variants that share one
// structural algorithm (single left-to-right scan, first matching rule wins,
// non-overlapping consumption) and differ only in rule shape:
//
//   - [Rewrite]: per-symbol deterministic rules ([Rule])
//   - [RewritePatterns]: multi-symbol pattern rules ([PatternRule]),
//     enabling context-sensitive rewriting
//   - [RewriteStochastic]: pattern rules gated by a per-match acceptance
//     probability ([StochasticRule])
//   - [RewriteTransforms]: pattern rules whose replacement is computed by an
//     arbitrary function of the matched pattern ([TransformRule])
//
// # Symbols
//
// All engines are generic over a symbol type T constrained to comparable.
// Symbols need nothing beyond value equality; there is no ordering or
// hashing requirement, and sequences are plain slices copied by value.
// Rune alphabets are the common case, but any comparable type works:
//
//	rules := []lsystem.Rule[rune]{
//	    {Symbol: 'A', Replacement: []rune("AB")},
//	    {Symbol: 'B', Replacement: []rune("A")},
//	}
//	out := lsystem.Rewrite([]rune("A"), rules, 3) // "ABAAB"
//
// # Rule Ordering
//
// Rule sets are ordered slices, never maps. A rule set may contain multiple
// rules for the same symbol or pattern; at each scan position the first rule
// in order that matches (and, for stochastic rules, is accepted) wins.
// Symbols with no matching rule are constants and pass through unchanged.
// The engines never reorder or deduplicate rules - priority is entirely the
// caller's responsibility, and the tie-break at a position is rule order,
// not pattern length.
//
// # Iteration
//
// Every engine takes an iteration count and applies the full rewrite pass
// that many times in an explicit loop; zero iterations returns the axiom
// unchanged. Sequence growth per iteration is unbounded (typically
// exponential) and is deliberately not limited by the engines.
//
// # Randomness
//
// The stochastic engine, and any transform function that wants randomness,
// draw from an injected [Source] rather than global state, so fixed-seed
// runs are reproducible. Use [NewSource] for a seeded source.
//
// # Concurrency
//
// Engines hold no shared state: each call owns its inputs and allocates its
// output, so concurrent calls need no synchronization. A [Source] shared
// across goroutines is the one exception and needs external serialization
// if reproducibility matters.
package lsystem
