// Package pkg provides the core libraries for lsys Lindenmayer system derivation.
//
// # Overview
//
// Lsys rewrites strings of symbols by repeatedly applying production rules,
// the way Lindenmayer systems model growth. The pkg directory is organized
// into five main areas:
//
//  1. [lsystem] - The rewriting engines (deterministic, pattern, stochastic, transform)
//  2. [system] - Named, ready-to-run systems and their registry
//  3. [pipeline] - Orchestration (validate → cache check → derive → cache store)
//  4. [cache] - Derivation caching (file, redis, mongodb, null backends)
//  5. [errors], [observability], [io], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow through lsys:
//
//	System name + iterations
//	         ↓
//	pipeline.Runner (validation, cache lookup)
//	         ↓
//	system.System (engine dispatch)
//	         ↓
//	lsystem rewriting (one generation per pass)
//	         ↓
//	pipeline.Result (all generations, cached for reuse)
//
// Both the CLI and the HTTP server sit on top of the pipeline, so a
// derivation behaves identically no matter which surface requested it.
package pkg
