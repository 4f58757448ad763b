// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph constructors for tests,
// benchmarks and the rewire CLI's generate mode.
//
// One orchestrator, BuildGraph, creates a core.Graph, resolves the builder
// configuration from functional options, and applies the given constructors
// in order. Same inputs, options, seed and constructor order produce an
// identical graph.
//
// Constructors:
//
//   - Path(n)         – simple path P_n (n ≥ 2).
//   - Cycle(n)        – simple cycle C_n (n ≥ 3).
//   - Complete(n)     – complete graph K_n (n ≥ 2); ordered pairs when the
//     graph is directed.
//   - RandomSparse(n, p) – Erdős–Rényi-like G(n, p): each admissible edge
//     is included independently with probability p. Requires a random
//     source (WithSeed or WithRand).
//
// Options:
//
//   - WithIDScheme(fn) – vertex ID generator, index → ID ("0","1",... by
//     default).
//   - WithSeed(s)      – deterministic random source for stochastic
//     constructors.
//   - WithRand(r)      – explicit random source.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrTooFewVertices     – size parameter below the constructor minimum.
//	ErrInvalidProbability – probability outside [0, 1].
//	ErrNeedRandSource     – stochastic constructor without an RNG.
//	ErrConstructFailed    – nil constructor or construction invariant broken.
//
// Constructors never panic at runtime; option constructors panic on
// programmer error (nil function, nil RNG).
package builder
