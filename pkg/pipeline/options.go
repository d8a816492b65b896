// Package pipeline orchestrates derivations: registry lookup, cache check,
// engine execution, and result capture. Both the CLI and the HTTP server
// run derivations through a [Runner] so caching and observability behave
// identically on both surfaces.
package pipeline

import (
	"github.com/verdantlab/lsys/pkg/errors"
	"github.com/verdantlab/lsys/pkg/system"
)

// Options configures a single derivation request.
type Options struct {
	// System is the name of a registered system.
	System string

	// Iterations is the number of rewrite passes. Zero derives the axiom.
	Iterations uint

	// Seed seeds the randomness source for random systems. Deterministic
	// systems ignore it (and it is excluded from their cache keys).
	Seed uint64

	// Refresh bypasses the cache read (the result is still stored).
	Refresh bool
}

// ValidateAndSetDefaults validates the options and resolves the system.
func (o *Options) ValidateAndSetDefaults() (*system.System, error) {
	if err := errors.ValidateSystemName(o.System); err != nil {
		return nil, err
	}
	if err := errors.ValidateIterations(o.Iterations); err != nil {
		return nil, err
	}
	sys := system.Find(o.System)
	if sys == nil {
		return nil, errors.New(errors.ErrCodeSystemNotFound, "unknown system: %s", o.System)
	}
	return sys, nil
}
