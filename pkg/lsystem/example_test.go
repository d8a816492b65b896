package lsystem_test

import (
	"fmt"

	"github.com/verdantlab/lsys/pkg/lsystem"
)

func ExampleRewrite() {
	// Lindenmayer's algae system: A → AB, B → A
	rules := []lsystem.Rule[rune]{
		{Symbol: 'A', Replacement: []rune("AB")},
		{Symbol: 'B', Replacement: []rune("A")},
	}

	for n := uint(0); n <= 4; n++ {
		fmt.Println(string(lsystem.Rewrite([]rune("A"), rules, n)))
	}
	// Output:
	// A
	// AB
	// ABA
	// ABAAB
	// ABAABABA
}

func ExampleRewritePatterns_contextSensitive() {
	// Propagate a signal S one cell to the right per generation:
	// S next to a C moves into the C's place.
	rules := []lsystem.PatternRule[rune]{
		{Pattern: []rune("SC"), Replacement: []rune("CS")},
	}

	state := []rune("SCCC")
	for n := 0; n < 3; n++ {
		next, _ := lsystem.RewritePatterns(state, rules, 1)
		state = next
		fmt.Println(string(state))
	}
	// Output:
	// CSCC
	// CCSC
	// CCCS
}

func ExampleRewriteStochastic() {
	// A 50/50 split between B and C. The second rule's chance is 1.0,
	// meaning "always, given the first was rejected" - the engine never
	// renormalizes.
	rules := []lsystem.StochasticRule[rune]{
		{Pattern: []rune("A"), Replacement: []rune("B"), Chance: 0.5},
		{Pattern: []rune("A"), Replacement: []rune("C"), Chance: 1.0},
	}

	out, _ := lsystem.RewriteStochastic([]rune("AAAA"), rules, 1, lsystem.NewSource(1))
	for _, r := range out {
		if r != 'B' && r != 'C' {
			fmt.Println("unexpected symbol")
		}
	}
	fmt.Println(len(out))
	// Output:
	// 4
}

func ExampleRewriteTransforms() {
	// Replace every F with itself bracketed, computed from the match.
	rules := []lsystem.TransformRule[rune]{
		{Pattern: []rune("F"), Transform: func(m []rune) []rune {
			out := []rune{'['}
			out = append(out, m...)
			return append(out, ']')
		}},
	}

	out, _ := lsystem.RewriteTransforms([]rune("FF"), rules, 1)
	fmt.Println(string(out))
	// Output:
	// [F][F]
}
