// Package rewire implements in-place Markov-chain edge randomization of a
// *core.Graph under several null models, holding chosen structural features
// constant.
//
// Overview:
//
// Given a directed or undirected multigraph with m edges, Rewire visits edge
// slots in random permutations and asks the selected strategy to propose and
// apply one rewiring move per visit. Accepted moves mutate the graph in
// place; rejected proposals are counted (and retried until success in
// persistence mode). The edge count is invariant under every strategy.
//
// Strategies:
//
//   - Erdos          – resample both endpoints uniformly; degrees change.
//     Draws from G(n,m) subject to the loop/parallel constraints.
//   - Random         – swap targets of uniformly chosen edge pairs; every
//     vertex keeps its exact in- and out-degree (configuration model).
//   - Correlated     – like Random, but the candidate partner is drawn from
//     edges whose target lies in the same block, so the joint
//     endpoint-block distribution is preserved as well.
//   - Probabilistic  – stochastic blockmodel by rejection: uniform partner
//     proposal with Metropolis–Hastings acceptance against a block-pair
//     probability function. Degrees preserved.
//   - Alias          – degree-corrected blockmodel: the partner's target
//     block is drawn by an O(1) alias sampler, the partner edge from
//     incrementally maintained per-block buckets, with the same M–H
//     correction. Degrees preserved.
//   - TradBlock      – "traditional" blockmodel: endpoint blocks are drawn
//     from a block-pair alias sampler and endpoints uniformly within their
//     blocks. Degrees are not preserved.
//
// Blocks:
//
// A block is a label attached to each vertex. DegreeBlocks (the default)
// labels a vertex with its (in-degree, out-degree) pair; PropertyBlocks
// labels it with a value from a caller-supplied map. The block-pair
// probability function corrProb(bs, bt) drives the three blockmodel
// strategies and is ignored by the others. Invalid values (NaN, ±Inf,
// negative) are coerced to 0; for Probabilistic and Alias a zero is then
// raised to the smallest positive float64 so that persistence mode cannot
// stall on an unreachable move — TradBlock keeps exact zeros.
//
// Iteration semantics:
//
//   - WithIterations(k) alone: k full sweeps, each visiting all m edge
//     slots in a fresh random permutation.
//   - WithIterations(k) plus WithNoSweep(): exactly k single-edge attempts.
//   - WithPersist(): every attempt is retried until it succeeds, so the
//     returned failure count is 0. Not guaranteed to terminate when no
//     accepting move exists (e.g. a single edge, or a complete simple
//     graph); callers pair it with feasible inputs.
//
// The returned count is the number of failed, non-retried proposals.
//
// Determinism:
//
// All randomness flows through the *rand.Rand supplied via WithRand or
// WithSeed; identical graphs, options and seeds yield identical results.
// Progress is reported through an optional zerolog.Logger (one event per
// sweep); the default logger is zerolog.Nop().
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNilGraph        – the graph pointer is nil.
//	ErrNilBlocks       – the block assigner is nil.
//	ErrNilRand         – no random source was supplied.
//	ErrNilCorrProb     – a blockmodel strategy was selected without a
//	                     probability function.
//	ErrUnknownStrategy – the strategy value is out of range.
//
// Graph mutation errors from package core propagate unchanged. In
// particular, rewiring with self-loops or parallel edges allowed requires a
// graph constructed with core.WithLoops() / core.WithMultiEdges().
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
//	// ... add edges ...
//	failed, err := rewire.Rewire(g, rewire.Random, nil,
//	    rewire.WithIterations(100),
//	    rewire.WithSeed(42),
//	)
package rewire
