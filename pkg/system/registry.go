package system

import "github.com/verdantlab/lsys/pkg/lsystem"

// builtins holds the registered demonstration systems, in display order.
var builtins = []*System{
	{
		Name:        "algae",
		Description: "Lindenmayer's original algae model (A → AB, B → A)",
		Engine:      EngineSymbol,
		Axiom:       []rune("A"),
		Symbol: []lsystem.Rule[rune]{
			{Symbol: 'A', Replacement: []rune("AB")},
			{Symbol: 'B', Replacement: []rune("A")},
		},
	},
	{
		Name:        "algae-pattern",
		Description: "the algae model expressed with sub-sequence rules",
		Engine:      EnginePattern,
		Axiom:       []rune("A"),
		Pattern: []lsystem.PatternRule[rune]{
			{Pattern: []rune("A"), Replacement: []rune("AB")},
			{Pattern: []rune("B"), Replacement: []rune("A")},
		},
	},
	{
		Name:        "signal",
		Description: "context-sensitive signal propagation (SC → CS)",
		Engine:      EnginePattern,
		Axiom:       []rune("SCCCCCCC"),
		Pattern: []lsystem.PatternRule[rune]{
			{Pattern: []rune("SC"), Replacement: []rune("CS")},
		},
	},
	{
		Name:        "algae-stochastic",
		Description: "algae with probabilistic growth (A → AB at 50%, B → A at 75%)",
		Engine:      EngineStochastic,
		Axiom:       []rune("A"),
		Stochastic: []lsystem.StochasticRule[rune]{
			{Pattern: []rune("A"), Replacement: []rune("AB"), Chance: 0.5},
			{Pattern: []rune("B"), Replacement: []rune("A"), Chance: 0.75},
		},
	},
	{
		Name:        "coin",
		Description: "50/50 branching (A → B or C), second rule conditioned on rejection",
		Engine:      EngineStochastic,
		Axiom:       []rune("AAAAAAAA"),
		Stochastic: []lsystem.StochasticRule[rune]{
			{Pattern: []rune("A"), Replacement: []rune("B"), Chance: 0.5},
			{Pattern: []rune("A"), Replacement: []rune("C"), Chance: 1.0},
		},
	},
	{
		Name:        "burst",
		Description: "each A repeats itself 0-3 times, drawn per match",
		Engine:      EngineTransform,
		Axiom:       []rune("A"),
		Transform: func(src lsystem.Source) []lsystem.TransformRule[rune] {
			return []lsystem.TransformRule[rune]{
				{Pattern: []rune("A"), Transform: func(m []rune) []rune {
					times := src.UniformInt(0, 3)
					out := make([]rune, 0, times*len(m))
					for range times {
						out = append(out, m...)
					}
					return out
				}},
			}
		},
	},
}

// All returns the built-in systems in display order. The returned slice is
// shared; callers must not modify it.
func All() []*System { return builtins }

// Find returns the built-in system with the given name, or nil if none
// matches.
func Find(name string) *System {
	for _, s := range builtins {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Names returns the names of all built-in systems in display order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, s := range builtins {
		names[i] = s.Name
	}
	return names
}
