package rewire

import (
	"github.com/katalvlaran/rewire/core"
)

// Rewire randomizes the edges of g in place under the selected strategy,
// using the default DegreeBlocks abstraction (vertices are labeled with
// their (in, out) degree pair).
//
// prob drives the blockmodel strategies (Probabilistic, Alias, TradBlock)
// and may be nil for the others. It returns the number of failed,
// non-retried proposals and the first graph-library error, if any.
//
// See the package documentation for strategy and option semantics.
func Rewire(g *core.Graph, strategy Strategy, prob CorrProb[DegreePair], opts ...Option) (uint64, error) {
	return RewireBlocks[DegreePair](g, strategy, DegreeBlocks{}, prob, opts...)
}

// RewireBlocks is the generic entry point: the block abstraction is
// supplied explicitly, monomorphized over the block type B.
//
// The driver snapshots the current edge set into a slot table, constructs
// the strategy (which may scan edges and build indices), and then for each
// iteration visits edge slots in a fresh random permutation, asking the
// strategy to propose and apply a rewiring move per visit. With
// WithPersist, rejected proposals are retried until one succeeds; otherwise
// they increment the returned failure count. With WithNoSweep, each
// iteration attempts a single edge instead of a full sweep.
//
// Complexity: O(n_iter · m) proposals without NoSweep (O(n_iter) with),
// each proposal O(1) apart from hash lookups; strategy construction is
// O(m + k²) for k distinct blocks.
func RewireBlocks[B comparable](g *core.Graph, strategy Strategy,
	blocks BlockAssigner[B], prob CorrProb[B], opts ...Option,
) (uint64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if blocks == nil {
		return 0, ErrNilBlocks
	}
	if !strategy.valid() {
		return 0, ErrUnknownStrategy
	}
	if strategy.needsCorrProb() && prob == nil {
		return 0, ErrNilCorrProb
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		return 0, ErrNilRand
	}

	// Snapshot the edge set: slot i is the stable handle for one edge for
	// the whole run, surviving the remove/add churn of every swap.
	snapshot := g.Edges()
	if len(snapshot) == 0 {
		return 0, nil
	}
	st := &rewireState{
		g:     g,
		edges: make([]edgeRec, len(snapshot)),
		rnd:   o.Rand,
	}
	for i, e := range snapshot {
		st.edges[i] = edgeRec{id: e.ID, from: e.From, to: e.To, weight: e.Weight}
	}

	var (
		strat proposer
		err   error
	)
	switch strategy {
	case Erdos:
		strat = newErdos(st)
	case Random:
		strat = newRandom(st)
	case Correlated:
		strat = newCorrelated[B](st, blocks)
	case Probabilistic:
		strat = newProbabilistic[B](st, blocks, prob, o.Cache)
	case Alias:
		strat, err = newAliasSBM[B](st, blocks, prob)
	case TradBlock:
		strat, err = newTradBlock[B](st, blocks, prob)
	}
	if err != nil {
		return 0, err
	}

	m := len(st.edges)
	var failed uint64
	for i := 0; i < o.Iterations; i++ {
		for _, ei := range o.Rand.Perm(m) {
			ok, perr := strat.propose(ei, o.SelfLoops, o.ParallelEdges)
			if perr != nil {
				return failed, perr
			}
			for o.Persist && !ok {
				ok, perr = strat.propose(ei, o.SelfLoops, o.ParallelEdges)
				if perr != nil {
					return failed, perr
				}
			}
			if !ok {
				failed++
			}
			if o.NoSweep {
				break
			}
		}
		o.Logger.Debug().
			Int("iteration", i+1).
			Int("of", o.Iterations).
			Str("strategy", strategy.String()).
			Bool("degree_preserving", strategy.preservesDegrees()).
			Uint64("failed", failed).
			Msg("rewire progress")
	}

	return failed, nil
}
