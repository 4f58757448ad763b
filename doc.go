// Package rewire is an in-memory graph-rewiring toolkit: Markov-chain
// edge randomization under configurable null models, holding chosen
// structural features constant.
//
// 🚀 What is rewire?
//
//	A small, deterministic library that brings together:
//		• core/    — mutable directed/undirected multigraph with stable edge
//		             IDs, O(1) adjacency and incremental degree counters
//		• rewire/  — the rewiring engine: Erdős–Rényi, degree-preserving,
//		             joint-degree-preserving, and three stochastic-blockmodel
//		             chains (rejection, alias-based degree-corrected,
//		             traditional)
//		• sampler/ — generic alias-method sampler: O(k) build, O(1) draw
//		• builder/ — deterministic graph constructors for fixtures and the CLI
//
// ✨ Why choose rewire?
//
//   - Exact invariants – degree sequences, block distributions and simple-
//     graph constraints are maintained across every accepted move
//   - Reproducible – all randomness flows through an injected *rand.Rand
//   - Observable – progress through zerolog, silent by default
//   - Extensible – bring your own block abstraction via BlockAssigner
//
// Quick example — shuffle a graph while preserving all degrees:
//
//	g, _ := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomSparse(500, 0.02),
//	)
//	failed, err := rewire.Rewire(g, rewire.Random, nil,
//	    rewire.WithIterations(100),
//	    rewire.WithSeed(42),
//	)
//
// The cmd/rewire binary wraps the same pipeline behind a viper-configured
// CLI that reads and writes TSV edge lists.
package rewire
