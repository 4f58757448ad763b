// Package rewire: this file declares the Strategy enum, block abstractions,
// the correlation-probability functor and the Options/functional-option
// configuration surface.
package rewire

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rewire/core"
)

// Strategy selects the target ensemble of a rewiring run.
type Strategy int

const (
	// Erdos rewires toward a fully random G(n,m) graph; degrees change.
	Erdos Strategy = iota

	// Random preserves every vertex's in- and out-degree (configuration
	// model) via uniform edge-pair target swaps.
	Random

	// Correlated preserves degrees and the joint endpoint-block
	// distribution by swapping only within same-target-block edge buckets.
	Correlated

	// Probabilistic samples a stochastic blockmodel by rejection
	// (Metropolis–Hastings over uniform edge-pair proposals); degrees
	// preserved.
	Probabilistic

	// Alias samples a degree-corrected stochastic blockmodel using alias
	// samplers over target blocks; degrees preserved.
	Alias

	// TradBlock samples a traditional stochastic blockmodel by redrawing
	// endpoints from block-pair proposals; degrees are not preserved.
	TradBlock
)

// strategyNames maps Strategy values to their canonical lower-case names.
var strategyNames = [...]string{
	Erdos:         "erdos",
	Random:        "random",
	Correlated:    "correlated",
	Probabilistic: "probabilistic",
	Alias:         "alias",
	TradBlock:     "tradblock",
}

// String returns the canonical name of s, or "strategy(<n>)" out of range.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// valid reports whether s is one of the declared strategies.
func (s Strategy) valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}

// ParseStrategy maps a case-insensitive strategy name to its value.
// Returns ErrUnknownStrategy for unrecognized names.
func ParseStrategy(name string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == want {
			return Strategy(s), nil
		}
	}

	return 0, ErrUnknownStrategy
}

// preservesDegrees reports whether the strategy keeps every vertex's in-
// and out-degree invariant across accepted moves.
func (s Strategy) preservesDegrees() bool {
	switch s {
	case Random, Correlated, Probabilistic, Alias:
		return true
	default:
		return false
	}
}

// needsCorrProb reports whether the strategy consumes the block-pair
// probability function.
func (s Strategy) needsCorrProb() bool {
	switch s {
	case Probabilistic, Alias, TradBlock:
		return true
	default:
		return false
	}
}

// CorrProb is the block-pair correlation probability: an unnormalized,
// non-negative weight for an edge running from block bs to block bt.
// NaN, ±Inf and negative results are coerced to 0 by the engine.
type CorrProb[B comparable] func(bs, bt B) float64

// BlockAssigner maps a vertex to its block label. Implementations must be
// pure functions of current graph state; block values are used as map keys.
type BlockAssigner[B comparable] interface {
	// BlockOf returns the block of vertex id in g.
	BlockOf(id string, g *core.Graph) B
}

// DegreePair is the block label produced by DegreeBlocks.
type DegreePair struct {
	In  int
	Out int
}

// DegreeBlocks labels each vertex with its (in-degree, out-degree) pair.
// Under degree-preserving strategies the label of every vertex is constant
// for the duration of a rewiring run.
type DegreeBlocks struct{}

// BlockOf returns the (in, out) degree pair of id.
func (DegreeBlocks) BlockOf(id string, g *core.Graph) DegreePair {
	return DegreePair{In: g.InDegree(id), Out: g.OutDegree(id)}
}

// PropertyBlocks labels each vertex with a value from a caller-supplied
// map. Vertices absent from the map receive the zero value of B.
type PropertyBlocks[B comparable] struct {
	values map[string]B
}

// NewPropertyBlocks wraps a vertex→value map as a BlockAssigner.
func NewPropertyBlocks[B comparable](values map[string]B) PropertyBlocks[B] {
	return PropertyBlocks[B]{values: values}
}

// BlockOf returns the stored property value of id.
func (p PropertyBlocks[B]) BlockOf(id string, _ *core.Graph) B {
	return p.values[id]
}

// Options configures a rewiring run.
//
// Iterations    – number of sweeps (or single attempts with NoSweep).
// NoSweep       – perform one edge attempt per iteration instead of a sweep.
// SelfLoops     – allow proposals that create self-loops.
// ParallelEdges – allow proposals that create parallel edges.
// Persist       – retry each rejected proposal until it succeeds.
// Cache         – precompute the block-pair probability table (Probabilistic).
// Rand          – random source; required.
// Logger        – progress sink; defaults to zerolog.Nop().
type Options struct {
	Iterations    int
	NoSweep       bool
	SelfLoops     bool
	ParallelEdges bool
	Persist       bool
	Cache         bool
	Rand          *rand.Rand
	Logger        zerolog.Logger
}

// Option is a functional option for configuring a rewiring run.
type Option func(*Options)

// WithIterations sets the number of sweeps (or attempts under NoSweep).
// Panics on negative n; option constructors validate eagerly.
func WithIterations(n int) Option {
	if n < 0 {
		panic("rewire: WithIterations(negative)")
	}

	return func(o *Options) { o.Iterations = n }
}

// WithNoSweep switches an iteration from a full m-edge sweep to a single
// edge attempt.
func WithNoSweep() Option {
	return func(o *Options) { o.NoSweep = true }
}

// WithSelfLoops permits moves that create self-loops. The graph itself must
// also have been constructed with core.WithLoops().
func WithSelfLoops() Option {
	return func(o *Options) { o.SelfLoops = true }
}

// WithParallelEdges permits moves that create parallel edges. The graph
// itself must also have been constructed with core.WithMultiEdges().
func WithParallelEdges() Option {
	return func(o *Options) { o.ParallelEdges = true }
}

// WithPersist retries every rejected proposal until one succeeds, so the
// run performs exactly the requested number of accepted moves. See the
// package documentation for the termination caveat.
func WithPersist() Option {
	return func(o *Options) { o.Persist = true }
}

// WithCache precomputes the block-pair probability table for the
// Probabilistic strategy (the Alias strategy always caches).
func WithCache() Option {
	return func(o *Options) { o.Cache = true }
}

// WithRand provides the random source for the run. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rewire: WithRand(nil)")
	}

	return func(o *Options) { o.Rand = r }
}

// WithSeed provides a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the progress logger. The engine emits one Debug event per
// sweep; zerolog.Nop() (the default) silences them.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the baseline configuration: one sweep, full-sweep
// mode, simple-graph constraints (no self-loops, no parallel edges), no
// persistence, no cache, no random source, Nop logger.
func DefaultOptions() Options {
	return Options{
		Iterations: 1,
		Logger:     zerolog.Nop(),
	}
}
