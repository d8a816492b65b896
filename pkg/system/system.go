// Package system defines named, ready-to-derive L-systems over rune
// alphabets and a registry for looking them up by name.
//
// A [System] bundles an axiom with the rule set for exactly one engine
// variant from [github.com/verdantlab/lsys/pkg/lsystem] and knows how to
// derive itself. Systems are constructed in code - there is no external
// rule-definition syntax - and the built-ins in this package double as the
// demonstration alphabets for the CLI.
package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/verdantlab/lsys/pkg/lsystem"
)

// Sentinel errors for system derivation.
var (
	// ErrUnknownEngine is returned when a System carries an Engine value
	// the dispatcher does not recognize.
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrNoRules is returned when a System has no rule set for its engine.
	ErrNoRules = errors.New("system has no rules for its engine")
)

// Engine selects which rewriting variant a System uses.
type Engine string

// Engine variants, in order of increasing generality.
const (
	// EngineSymbol matches single symbols (deterministic).
	EngineSymbol Engine = "symbol"
	// EnginePattern matches fixed sub-sequences (deterministic,
	// context-sensitive).
	EnginePattern Engine = "pattern"
	// EngineStochastic matches sub-sequences gated by per-match acceptance
	// probabilities.
	EngineStochastic Engine = "stochastic"
	// EngineTransform matches sub-sequences and computes replacements with
	// arbitrary functions.
	EngineTransform Engine = "transform"
)

// Engines lists all engine variants.
func Engines() []Engine {
	return []Engine{EngineSymbol, EnginePattern, EngineStochastic, EngineTransform}
}

// System is a named L-system over a rune alphabet. Exactly one of the rule
// fields matching Engine must be populated; the others are ignored.
type System struct {
	Name        string // registry key, unique among built-ins
	Description string // one-line summary shown by the CLI
	Engine      Engine // which rewrite variant Derive dispatches to
	Axiom       []rune // generation zero

	// Symbol holds the rules for EngineSymbol.
	Symbol []lsystem.Rule[rune]
	// Pattern holds the rules for EnginePattern.
	Pattern []lsystem.PatternRule[rune]
	// Stochastic holds the rules for EngineStochastic.
	Stochastic []lsystem.StochasticRule[rune]
	// Transform builds the rules for EngineTransform against a randomness
	// source. It is a constructor rather than a plain slice so randomized
	// transforms can close over the per-derivation source.
	Transform func(src lsystem.Source) []lsystem.TransformRule[rune]
}

// Random reports whether deriving the system consumes randomness, which is
// the case for the stochastic and transform engines. Random systems cache
// and reproduce by seed; deterministic ones ignore it.
func (s *System) Random() bool {
	return s.Engine == EngineStochastic || s.Engine == EngineTransform
}

// Derive runs the system's engine for the given number of iterations and
// returns the final generation. src seeds the stochastic and transform
// engines and is ignored by the deterministic ones; nil is allowed and
// falls back to a time-seeded source.
func (s *System) Derive(iterations uint, src lsystem.Source) ([]rune, error) {
	if s.Random() && src == nil {
		src = lsystem.NewSource(uint64(time.Now().UnixNano()))
	}
	return s.deriveFrom(s.Axiom, iterations, src)
}

// Generations derives the system one iteration at a time and returns every
// generation from the axiom (index 0) through iteration n (index n). For
// random systems the incremental derivation consumes src exactly as a
// single n-iteration call would, so seeded runs stay reproducible.
func (s *System) Generations(n uint, src lsystem.Source) ([][]rune, error) {
	if s.Random() && src == nil {
		// Pin one source up front so all iterations share a stream.
		src = lsystem.NewSource(uint64(time.Now().UnixNano()))
	}

	out := make([][]rune, 0, n+1)
	current := s.Axiom
	out = append(out, current)
	for i := uint(0); i < n; i++ {
		next, err := s.deriveFrom(current, 1, src)
		if err != nil {
			return nil, err
		}
		current = next
		out = append(out, current)
	}
	return out, nil
}

// deriveFrom dispatches one derivation of the given axiom to the system's
// engine.
func (s *System) deriveFrom(axiom []rune, iterations uint, src lsystem.Source) ([]rune, error) {
	switch s.Engine {
	case EngineSymbol:
		if len(s.Symbol) == 0 {
			return nil, fmt.Errorf("%s: %w", s.Name, ErrNoRules)
		}
		return lsystem.Rewrite(axiom, s.Symbol, iterations), nil
	case EnginePattern:
		if len(s.Pattern) == 0 {
			return nil, fmt.Errorf("%s: %w", s.Name, ErrNoRules)
		}
		return lsystem.RewritePatterns(axiom, s.Pattern, iterations)
	case EngineStochastic:
		if len(s.Stochastic) == 0 {
			return nil, fmt.Errorf("%s: %w", s.Name, ErrNoRules)
		}
		return lsystem.RewriteStochastic(axiom, s.Stochastic, iterations, src)
	case EngineTransform:
		if s.Transform == nil {
			return nil, fmt.Errorf("%s: %w", s.Name, ErrNoRules)
		}
		return lsystem.RewriteTransforms(axiom, s.Transform(src), iterations)
	default:
		return nil, fmt.Errorf("%q: %w", s.Engine, ErrUnknownEngine)
	}
}
